package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
	TaskCancelled  = "cancelled"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

func IsValidTaskStatus(s string) bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled:
		return true
	}
	return false
}

func IsValidTaskPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Task struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Campaign        primitive.ObjectID `bson:"campaign" json:"campaign"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	AssignedTo      primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"` // 可为空
	AssignedBy      primitive.ObjectID `bson:"assignedBy" json:"assignedBy"`
	DueDate         time.Time          `bson:"dueDate" json:"dueDate"`
	Status          string             `bson:"status" json:"status"`
	Priority        string             `bson:"priority" json:"priority"`
	CompletionNotes string             `bson:"completionNotes,omitempty" json:"completionNotes,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
