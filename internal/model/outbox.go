package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventMemberAdded        = "member.added"
	EventMemberRemoved      = "member.removed"
	EventActivityRegistered = "activity.registered"
	EventCampaignDeleted    = "campaign.deleted"
)

// OutboxEvent 待投递的领域事件，与业务写入同库落盘
type OutboxEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	EventType string             `bson:"eventType"`
	Key       string             `bson:"key"` // kafka 分区键，一般为实体 id
	Payload   string             `bson:"payload"`
	Status    int8               `bson:"status"` // 0=pending,1=sent,2=failed
	Retry     int                `bson:"retry"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
