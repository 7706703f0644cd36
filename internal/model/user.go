package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 全局角色，与 Member 的战役内角色区分
const (
	RoleAdmin     = "admin"
	RoleLeader    = "leader"
	RoleVolunteer = "volunteer"
)

func IsValidRole(r string) bool {
	return r == RoleAdmin || r == RoleLeader || r == RoleVolunteer
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // bcrypt 哈希，永不下发
	FullName  string             `bson:"fullName" json:"fullName"`
	Phone     string             `bson:"phone" json:"phone"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
