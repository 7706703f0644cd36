package service

import (
	"context"
	"encoding/json"
	"time"

	"Volunteer_Hub/internal/model"
	"Volunteer_Hub/internal/pkg"
	"Volunteer_Hub/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func parseID(hexID string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return primitive.NilObjectID, pkg.Invalidf("invalid id %q", hexID)
	}
	return id, nil
}

func IdentityOf(u *model.User) pkg.Identity {
	return pkg.Identity{UserID: u.ID.Hex(), Role: u.Role}
}

func userRef(u *model.User) *model.UserRef {
	if u == nil {
		return nil
	}
	return &model.UserRef{ID: u.ID.Hex(), Username: u.Username, FullName: u.FullName}
}

func userRefFrom(users map[primitive.ObjectID]model.User, id primitive.ObjectID) *model.UserRef {
	if id.IsZero() {
		return nil
	}
	u, ok := users[id]
	if !ok {
		return nil // 悬挂引用，存储里用户已不存在
	}
	return userRef(&u)
}

// recordEvent 事件落 outbox，尽力而为：失败只记日志，不影响主流程
func recordEvent(ctx context.Context, outbox repository.OutboxRepository, log *zap.Logger, eventType, key string, payload map[string]any) {
	if outbox == nil {
		return
	}
	payload["event_time"] = time.Now().UTC().Format(time.RFC3339Nano)
	raw, _ := json.Marshal(payload)
	ev := &model.OutboxEvent{
		EventType: eventType,
		Key:       key,
		Payload:   string(raw),
	}
	if err := outbox.Insert(ctx, ev); err != nil && log != nil {
		log.Warn("outbox insert failed", zap.String("event", eventType), zap.Error(err))
	}
}
