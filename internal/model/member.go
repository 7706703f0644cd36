package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 战役内角色
const (
	MemberRoleLeader = "leader"
	MemberRoleMember = "member"
)

const (
	MemberActive    = "active"
	MemberInactive  = "inactive"
	MemberSuspended = "suspended"
)

func IsValidMemberRole(r string) bool {
	return r == MemberRoleLeader || r == MemberRoleMember
}

func IsValidMemberStatus(s string) bool {
	return s == MemberActive || s == MemberInactive || s == MemberSuspended
}

// Member (user, campaign) 唯一，由存储层唯一索引保证
type Member struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User             primitive.ObjectID `bson:"user" json:"user"`
	Campaign         primitive.ObjectID `bson:"campaign" json:"campaign"`
	Role             string             `bson:"role" json:"role"`
	JoinedDate       time.Time          `bson:"joinedDate" json:"joinedDate"`
	Responsibilities []string           `bson:"responsibilities" json:"responsibilities"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
