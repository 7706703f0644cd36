package repository

import (
	"context"

	"Volunteer_Hub/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 存储接口，mongodb 子包实现，单测用 testify mock 替身。
// 未命中/违反唯一约束统一翻译为 pkg 的错误值，service 不感知驱动错误。

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type CampaignRepository interface {
	Create(ctx context.Context, c *model.Campaign) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Campaign, error)
	List(ctx context.Context) ([]model.Campaign, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Campaign, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, a *model.Activity) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Activity, error)
	ListByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]model.Activity, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Activity, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByCampaign(ctx context.Context, campaignID primitive.ObjectID) error
	// AddParticipant 由存储保证幂等：已在名单内返回 ErrAlreadyRegistered
	AddParticipant(ctx context.Context, id, userID primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type TaskRepository interface {
	Create(ctx context.Context, t *model.Task) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Task, error)
	ListByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]model.Task, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Task, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByCampaign(ctx context.Context, campaignID primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type MemberRepository interface {
	// Create 依赖 (user, campaign) 唯一索引，重复返回 ErrConflict
	Create(ctx context.Context, m *model.Member) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Member, error)
	ListByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]model.Member, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.Member, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByCampaign(ctx context.Context, campaignID primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type OutboxRepository interface {
	Insert(ctx context.Context, ev *model.OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]model.OutboxEvent, error)
	MarkSent(ctx context.Context, id primitive.ObjectID) error
	MarkRetry(ctx context.Context, id primitive.ObjectID) error
}

// SessionStore 每用户单活跃 access token，登出即失效
type SessionStore interface {
	Save(ctx context.Context, userID, token string) error
	Get(ctx context.Context, userID string) (string, error)
	Extend(ctx context.Context, userID string) error
	Delete(ctx context.Context, userID string) error
}
