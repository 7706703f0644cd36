package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ActivityUpcoming  = "upcoming"
	ActivityOngoing   = "ongoing"
	ActivityCompleted = "completed"
	ActivityCancelled = "cancelled"
)

func IsValidActivityStatus(s string) bool {
	switch s {
	case ActivityUpcoming, ActivityOngoing, ActivityCompleted, ActivityCancelled:
		return true
	}
	return false
}

type Activity struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Campaign     primitive.ObjectID   `bson:"campaign" json:"campaign"` // 所属战役，创建后不可变
	Name         string               `bson:"name" json:"name"`
	Description  string               `bson:"description" json:"description"`
	StartTime    time.Time            `bson:"startTime" json:"startTime"`
	EndTime      time.Time            `bson:"endTime" json:"endTime"`
	Location     string               `bson:"location" json:"location"`
	Organizer    primitive.ObjectID   `bson:"organizer" json:"organizer"`
	Participants []primitive.ObjectID `bson:"participants" json:"participants"` // 同一用户至多出现一次
	Status       string               `bson:"status" json:"status"`
	Requirements []string             `bson:"requirements" json:"requirements"`
	Images       []string             `bson:"images,omitempty" json:"images,omitempty"`
	Notes        string               `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}
