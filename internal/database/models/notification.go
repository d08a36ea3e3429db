package models

import (
	"github.com/google/uuid"
)

// Notification is an in-app message delivered to a single user
type Notification struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type    NotificationType `json:"type" gorm:"type:varchar(40);not null"`
	Message string           `json:"message" gorm:"not null;size:500"`
	Read    bool             `json:"read" gorm:"not null;default:false"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
