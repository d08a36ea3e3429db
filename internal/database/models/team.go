package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Team represents a hackathon team with its embedded poll and submission state
type Team struct {
	BaseModel
	HackathonID uuid.UUID `json:"hackathon_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_teams_hackathon_name" validate:"required"`
	Name        string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_teams_hackathon_name" validate:"required,min=1,max=100"`
	LeaderID    uuid.UUID `json:"leader_id" gorm:"type:uuid;not null" validate:"required"`

	// Poll is the embedded poll document; PollVersion guards every poll
	// write with a compare-and-swap so concurrent conclude/vote requests
	// surface as conflicts instead of silently losing writes.
	Poll        json.RawMessage `json:"poll,omitempty" gorm:"type:jsonb"`
	PollVersion int             `json:"-" gorm:"not null;default:0"`

	SelectedProblemStatement *string    `json:"selected_problem_statement,omitempty" gorm:"size:200"`
	SubmissionLink           *string    `json:"submission_link,omitempty" gorm:"size:500"`
	SubmittedAt              *time.Time `json:"submitted_at,omitempty"`

	// Relationships
	Members []User `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// PollState decodes the embedded poll document, or returns nil when the
// team has never started a poll
func (t *Team) PollState() (*Poll, error) {
	if len(t.Poll) == 0 {
		return nil, nil
	}
	var poll Poll
	if err := json.Unmarshal(t.Poll, &poll); err != nil {
		return nil, err
	}
	return &poll, nil
}

// SetPollState encodes the poll document onto the team
func (t *Team) SetPollState(poll *Poll) error {
	raw, err := json.Marshal(poll)
	if err != nil {
		return err
	}
	t.Poll = raw
	return nil
}

// HasSubmission reports whether a project link has been recorded
func (t *Team) HasSubmission() bool {
	return t.SubmissionLink != nil && *t.SubmissionLink != ""
}

// IsMember reports whether the given user is a current member
func (t *Team) IsMember(userID uuid.UUID) bool {
	for _, m := range t.Members {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// IsLeader reports whether the given user is the team leader
func (t *Team) IsLeader(userID uuid.UUID) bool {
	return t.LeaderID == userID
}
