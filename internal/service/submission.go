package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionService decides whether a submission attempt is currently
// allowed and records it. The window check reads the owning hackathon's
// submission dates; both boundaries are inclusive.
type SubmissionService struct {
	teamRepo      repository.TeamRepositoryInterface
	hackathonRepo repository.HackathonRepositoryInterface
	notifier      NotificationServiceInterface
	validator     *validator.Validate
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	teamRepo repository.TeamRepositoryInterface,
	hackathonRepo repository.HackathonRepositoryInterface,
	notifier NotificationServiceInterface,
	validator *validator.Validate,
) *SubmissionService {
	return &SubmissionService{
		teamRepo:      teamRepo,
		hackathonRepo: hackathonRepo,
		notifier:      notifier,
		validator:     validator,
	}
}

// SubmitProjectRequest represents the request to record a project link
type SubmitProjectRequest struct {
	SubmissionLink string `json:"submission_link" validate:"required"`
}

// SubmissionStatusResponse represents the submission timing and state of a team
type SubmissionStatusResponse struct {
	TeamID              uuid.UUID  `json:"team_id"`
	WindowState         string     `json:"window_state"` // not_open | open | closed
	SubmissionStartDate time.Time  `json:"submission_start_date"`
	SubmissionEndDate   time.Time  `json:"submission_end_date"`
	SubmissionLink      *string    `json:"submission_link,omitempty"`
	SubmittedAt         *time.Time `json:"submitted_at,omitempty"`
}

// Submit records the project link for the team, overwriting any prior
// submission (latest wins, no history). Only the leader may submit, the
// team must have a selected problem statement, and the clock must fall
// inside the hackathon's submission window.
func (s *SubmissionService) Submit(teamID, requesterID uuid.UUID, req *SubmitProjectRequest) (*SubmissionStatusResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrEmptySubmissionLink
	}
	link := strings.TrimSpace(req.SubmissionLink)
	if link == "" {
		return nil, apperrors.ErrEmptySubmissionLink
	}

	team, err := s.teamRepo.GetWithMembers(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if !team.IsLeader(requesterID) {
		return nil, apperrors.ErrNotTeamLeader
	}

	if team.SelectedProblemStatement == nil || *team.SelectedProblemStatement == "" {
		return nil, apperrors.ErrProblemStatementUnset
	}

	hackathon, err := s.hackathonRepo.GetByID(team.HackathonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to get hackathon: %w", err)
	}

	now := time.Now().UTC()
	if !hackathon.SubmissionWindowOpen(now) {
		if now.Before(hackathon.SubmissionStartDate) {
			return nil, apperrors.ErrSubmissionTooEarly
		}
		return nil, apperrors.ErrSubmissionTooLate
	}

	if err := s.teamRepo.UpdateSubmission(team.ID, link, now); err != nil {
		return nil, fmt.Errorf("failed to record submission: %w", err)
	}
	team.SubmissionLink = &link
	team.SubmittedAt = &now

	recipients := make([]uuid.UUID, len(team.Members))
	for i, m := range team.Members {
		recipients[i] = m.ID
	}
	// Best effort; a failed notification does not undo the submission.
	_ = s.notifier.Notify(recipients, models.NotificationSubmissionReceived,
		fmt.Sprintf("Team %q submitted their project", team.Name))

	return s.toStatusResponse(team, hackathon, now), nil
}

// Status reports the submission window state and any recorded submission
func (s *SubmissionService) Status(teamID uuid.UUID) (*SubmissionStatusResponse, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	hackathon, err := s.hackathonRepo.GetByID(team.HackathonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to get hackathon: %w", err)
	}

	return s.toStatusResponse(team, hackathon, time.Now().UTC()), nil
}

func (s *SubmissionService) toStatusResponse(team *models.Team, hackathon *models.Hackathon, now time.Time) *SubmissionStatusResponse {
	state := "closed"
	if hackathon.SubmissionWindowOpen(now) {
		state = "open"
	} else if now.Before(hackathon.SubmissionStartDate) {
		state = "not_open"
	}

	return &SubmissionStatusResponse{
		TeamID:              team.ID,
		WindowState:         state,
		SubmissionStartDate: hackathon.SubmissionStartDate,
		SubmissionEndDate:   hackathon.SubmissionEndDate,
		SubmissionLink:      team.SubmissionLink,
		SubmittedAt:         team.SubmittedAt,
	}
}
