package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// User represents a portal user: an admin, a team leader or a member
type User struct {
	BaseModel
	Email        string          `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FirstName    string          `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string          `json:"last_name" gorm:"size:100" validate:"max=100"`
	Role         UserRole        `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	PasswordHash string          `json:"-" gorm:"size:100"` // set for admins only
	TeamID       *uuid.UUID      `json:"team_id,omitempty" gorm:"type:uuid;index"`
	HackathonIDs json.RawMessage `json:"hackathon_ids,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// Hackathons decodes the hackathon IDs the user is registered for
func (u *User) Hackathons() ([]uuid.UUID, error) {
	if len(u.HackathonIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	if err := json.Unmarshal(u.HackathonIDs, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// AddHackathon appends a hackathon ID to the user's registrations if absent
func (u *User) AddHackathon(id uuid.UUID) error {
	ids, err := u.Hackathons()
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	raw, err := json.Marshal(append(ids, id))
	if err != nil {
		return err
	}
	u.HackathonIDs = raw
	return nil
}

// FullName returns the display name of the user
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
