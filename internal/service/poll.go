package service

import (
	"errors"
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PollService manages the lifecycle of a team's single active poll over
// problem-statement tracks: start, vote, conclude, status.
//
// There is no timer-driven expiry. A poll past its end time stops
// accepting votes as soon as the next vote or status read compares the
// clock against ends_at; the leader may still conclude it.
type PollService struct {
	teamRepo      repository.TeamRepositoryInterface
	hackathonRepo repository.HackathonRepositoryInterface
	notifier      NotificationServiceInterface
	validator     *validator.Validate
	minDuration   int
	maxDuration   int
}

// NewPollService creates a new poll service. Duration bounds are in minutes.
func NewPollService(
	teamRepo repository.TeamRepositoryInterface,
	hackathonRepo repository.HackathonRepositoryInterface,
	notifier NotificationServiceInterface,
	validator *validator.Validate,
	minDuration, maxDuration int,
) *PollService {
	return &PollService{
		teamRepo:      teamRepo,
		hackathonRepo: hackathonRepo,
		notifier:      notifier,
		validator:     validator,
		minDuration:   minDuration,
		maxDuration:   maxDuration,
	}
}

// StartPollRequest represents the request to start a team poll
type StartPollRequest struct {
	DurationMinutes int `json:"duration_minutes" validate:"required,min=1"`
}

// VoteRequest represents a member's vote for a track
type VoteRequest struct {
	Track string `json:"track" validate:"required"`
}

// PollStatusResponse represents the observable state of a team's poll
type PollStatusResponse struct {
	TeamID                   uuid.UUID      `json:"team_id"`
	PollActive               bool           `json:"poll_active"`
	Tracks                   []string       `json:"tracks,omitempty"`
	VoteCounts               map[string]int `json:"vote_counts,omitempty"`
	TotalVotes               int            `json:"total_votes"`
	StartedAt                *time.Time     `json:"started_at,omitempty"`
	EndsAt                   *time.Time     `json:"ends_at,omitempty"`
	SelectedProblemStatement *string        `json:"selected_problem_statement,omitempty"`
}

// ConcludePollResponse represents the outcome of a concluded poll
type ConcludePollResponse struct {
	TeamID                  uuid.UUID      `json:"team_id"`
	WinningProblemStatement string         `json:"winning_problem_statement"`
	VoteCounts              map[string]int `json:"vote_counts"`
	TotalVotes              int            `json:"total_votes"`
}

// Start creates a new poll for the team using the hackathon's configured
// problem statements as candidate tracks. Only the leader may start one,
// and only when no poll is currently active.
func (s *PollService) Start(teamID, requesterID uuid.UUID, req *StartPollRequest) (*PollStatusResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.DurationMinutes < s.minDuration || req.DurationMinutes > s.maxDuration {
		return nil, apperrors.ErrInvalidPollDuration
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

	now := time.Now().UTC()

	existing, err := team.PollState()
	if err != nil {
		return nil, fmt.Errorf("failed to decode poll state: %w", err)
	}
	if existing != nil && existing.IsActive && !existing.Expired(now) {
		return nil, apperrors.ErrPollAlreadyActive
	}

	hackathon, err := s.hackathonRepo.GetByID(team.HackathonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to get hackathon: %w", err)
	}

	statements, err := hackathon.Tracks()
	if err != nil {
		return nil, fmt.Errorf("failed to decode problem statements: %w", err)
	}
	if len(statements) == 0 {
		return nil, apperrors.ErrNoProblemStatements
	}

	tracks := make([]string, len(statements))
	for i, ps := range statements {
		tracks[i] = ps.Track
	}

	poll := &models.Poll{
		IsActive:          true,
		ProblemStatements: tracks,
		Votes:             map[string]string{},
		StartedAt:         now,
		EndsAt:            now.Add(time.Duration(req.DurationMinutes) * time.Minute),
	}

	if err := s.writePoll(team, poll, nil); err != nil {
		return nil, err
	}

	s.notifyMembers(team, models.NotificationPollStarted,
		fmt.Sprintf("A problem statement poll is open for team %q until %s", team.Name, poll.EndsAt.Format(time.RFC3339)))

	return s.toStatusResponse(team, poll, now), nil
}

// Vote records or overwrites the member's vote. Re-voting replaces the
// prior choice: the last vote per user wins.
func (s *PollService) Vote(teamID, requesterID uuid.UUID, req *VoteRequest) (*PollStatusResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetWithMembers(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if !team.IsMember(requesterID) {
		return nil, apperrors.ErrNotTeamMember
	}

	poll, err := team.PollState()
	if err != nil {
		return nil, fmt.Errorf("failed to decode poll state: %w", err)
	}
	if poll == nil || !poll.IsActive {
		return nil, apperrors.ErrNoActivePoll
	}

	now := time.Now().UTC()
	if poll.Expired(now) {
		return nil, apperrors.ErrPollExpired
	}

	if !poll.HasTrack(req.Track) {
		return nil, apperrors.ErrUnknownTrack
	}

	if poll.Votes == nil {
		poll.Votes = map[string]string{}
	}
	poll.Votes[requesterID.String()] = req.Track

	if err := s.writePoll(team, poll, nil); err != nil {
		return nil, err
	}

	return s.toStatusResponse(team, poll, now), nil
}

// Conclude tallies the votes and records the winning track as the
// team's selected problem statement. Ties resolve to the earliest
// candidate track in the hackathon's configured order. The leader may
// conclude an expired poll; expiry only stops votes.
func (s *PollService) Conclude(teamID, requesterID uuid.UUID) (*ConcludePollResponse, error) {
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

	poll, err := team.PollState()
	if err != nil {
		return nil, fmt.Errorf("failed to decode poll state: %w", err)
	}
	if poll == nil || !poll.IsActive {
		return nil, apperrors.ErrNoActivePoll
	}

	// A recorded submission freezes the selected problem statement.
	if team.HasSubmission() {
		return nil, apperrors.ErrProblemStatementLocked
	}

	winner := poll.Winner()
	counts := poll.VoteCounts()
	poll.IsActive = false

	if err := s.writePoll(team, poll, &winner); err != nil {
		return nil, err
	}

	s.notifyMembers(team, models.NotificationPollConcluded,
		fmt.Sprintf("Team %q selected problem statement %q", team.Name, winner))

	return &ConcludePollResponse{
		TeamID:                  team.ID,
		WinningProblemStatement: winner,
		VoteCounts:              counts,
		TotalVotes:              len(poll.Votes),
	}, nil
}

// Status reports the poll state to a team member. An active poll past
// its end time is reported as inactive without writing anything back.
func (s *PollService) Status(teamID, requesterID uuid.UUID) (*PollStatusResponse, error) {
	team, err := s.teamRepo.GetWithMembers(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if !team.IsMember(requesterID) && !team.IsLeader(requesterID) {
		return nil, apperrors.ErrNotTeamMember
	}

	poll, err := team.PollState()
	if err != nil {
		return nil, fmt.Errorf("failed to decode poll state: %w", err)
	}
	if poll == nil {
		return &PollStatusResponse{
			TeamID:                   team.ID,
			PollActive:               false,
			SelectedProblemStatement: team.SelectedProblemStatement,
		}, nil
	}

	return s.toStatusResponse(team, poll, time.Now().UTC()), nil
}

// writePoll persists the poll document through the compare-and-swap
// guard and bumps the in-memory version to match.
func (s *PollService) writePoll(team *models.Team, poll *models.Poll, selected *string) error {
	if err := team.SetPollState(poll); err != nil {
		return fmt.Errorf("failed to encode poll state: %w", err)
	}

	ok, err := s.teamRepo.UpdatePollCAS(team.ID, team.PollVersion, team.Poll, selected)
	if err != nil {
		return fmt.Errorf("failed to write poll state: %w", err)
	}
	if !ok {
		return apperrors.ErrConcurrentPollUpdate
	}

	team.PollVersion++
	if selected != nil {
		team.SelectedProblemStatement = selected
	}
	return nil
}

func (s *PollService) notifyMembers(team *models.Team, event models.NotificationType, message string) {
	recipients := make([]uuid.UUID, len(team.Members))
	for i, m := range team.Members {
		recipients[i] = m.ID
	}
	if err := s.notifier.Notify(recipients, event, message); err != nil {
		// Notification delivery must not fail the poll write.
		logger.New().WithField("team_id", team.ID).Warnf("failed to notify members: %v", err)
	}
}

func (s *PollService) toStatusResponse(team *models.Team, poll *models.Poll, now time.Time) *PollStatusResponse {
	startedAt := poll.StartedAt
	endsAt := poll.EndsAt
	return &PollStatusResponse{
		TeamID:                   team.ID,
		PollActive:               poll.AcceptingVotes(now),
		Tracks:                   poll.ProblemStatements,
		VoteCounts:               poll.VoteCounts(),
		TotalVotes:               len(poll.Votes),
		StartedAt:                &startedAt,
		EndsAt:                   &endsAt,
		SelectedProblemStatement: team.SelectedProblemStatement,
	}
}
