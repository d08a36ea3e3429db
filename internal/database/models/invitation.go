package models

import (
	"github.com/google/uuid"
)

// Invitation represents a request for a user to join a team.
// Accepting one transitions the target user's team back-reference;
// team size bounds are checked at accept time.
type Invitation struct {
	BaseModel
	TeamID     uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	FromUserID uuid.UUID        `json:"from_user_id" gorm:"type:uuid;not null" validate:"required"`
	ToUserID   uuid.UUID        `json:"to_user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status     InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// IsPending reports whether the invitation can still be resolved
func (i *Invitation) IsPending() bool {
	return i.Status == InvitationStatusPending
}
