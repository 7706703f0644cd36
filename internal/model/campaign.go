package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CampaignPlanning  = "planning"
	CampaignOngoing   = "ongoing"
	CampaignCompleted = "completed"
)

func IsValidCampaignStatus(s string) bool {
	return s == CampaignPlanning || s == CampaignOngoing || s == CampaignCompleted
}

type Campaign struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	StartDate    time.Time          `bson:"startDate" json:"startDate"`
	EndDate      time.Time          `bson:"endDate" json:"endDate"`
	Location     string             `bson:"location" json:"location"`
	Status       string             `bson:"status" json:"status"`
	CreatedBy    primitive.ObjectID `bson:"createdBy" json:"createdBy"` // 创建后不可变
	CoverImage   string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Objectives   []string           `bson:"objectives" json:"objectives"`
	Requirements []string           `bson:"requirements" json:"requirements"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
