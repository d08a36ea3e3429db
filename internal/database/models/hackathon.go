package models

import (
	"encoding/json"
	"time"
)

// ProblemStatement is one challenge track offered by a hackathon.
// The configured order matters: it is the tie-break order for concluded polls.
type ProblemStatement struct {
	Track       string     `json:"track" validate:"required"`
	Description string     `json:"description"`
	Difficulty  Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
}

// Hackathon represents a managed event with a submission window
// and an ordered list of problem statements
type Hackathon struct {
	BaseModel
	Title               string           `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description         string           `json:"description" gorm:"size:2000" validate:"max=2000"`
	StartDate           time.Time        `json:"start_date" gorm:"not null" validate:"required"`
	EndDate             time.Time        `json:"end_date" gorm:"not null" validate:"required"`
	SubmissionStartDate time.Time        `json:"submission_start_date" gorm:"not null" validate:"required"`
	SubmissionEndDate   time.Time        `json:"submission_end_date" gorm:"not null" validate:"required"`
	TeamCreationMode    TeamCreationMode `json:"team_creation_mode" gorm:"type:varchar(20);not null;default:'both'"`
	MinTeamSize         int              `json:"min_team_size" gorm:"not null;default:1" validate:"min=1"`
	MaxTeamSize         int              `json:"max_team_size" gorm:"not null;default:5" validate:"min=1"`
	ProblemStatements   json.RawMessage  `json:"problem_statements" gorm:"type:jsonb"`

	// Relationships
	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:HackathonID"`
}

// TableName returns the table name for Hackathon
func (Hackathon) TableName() string {
	return "hackathons"
}

// Tracks decodes the configured problem statements in order
func (h *Hackathon) Tracks() ([]ProblemStatement, error) {
	if len(h.ProblemStatements) == 0 {
		return nil, nil
	}
	var statements []ProblemStatement
	if err := json.Unmarshal(h.ProblemStatements, &statements); err != nil {
		return nil, err
	}
	return statements, nil
}

// SubmissionWindowOpen reports whether now falls inside the submission
// window. Boundaries are inclusive.
func (h *Hackathon) SubmissionWindowOpen(now time.Time) bool {
	return !now.Before(h.SubmissionStartDate) && !now.After(h.SubmissionEndDate)
}
