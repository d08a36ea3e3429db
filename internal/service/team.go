package service

import (
	"errors"
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo          repository.TeamRepositoryInterface
	hackathonRepo repository.HackathonRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	notifier      NotificationServiceInterface
	validator     *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	repo repository.TeamRepositoryInterface,
	hackathonRepo repository.HackathonRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	notifier NotificationServiceInterface,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		repo:          repo,
		hackathonRepo: hackathonRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		validator:     validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	HackathonID uuid.UUID  `json:"hackathon_id" validate:"required"`
	Name        string     `json:"name" validate:"required,min=1,max=100"`
	LeaderID    *uuid.UUID `json:"leader_id,omitempty"` // admins may create a team on behalf of a leader
}

// TeamMemberResponse represents a member inside a team response
type TeamMemberResponse struct {
	ID       uuid.UUID       `json:"id"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Role     models.UserRole `json:"role"`
	IsLeader bool            `json:"is_leader"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID                       uuid.UUID            `json:"id"`
	HackathonID              uuid.UUID            `json:"hackathon_id"`
	Name                     string               `json:"name"`
	LeaderID                 uuid.UUID            `json:"leader_id"`
	Members                  []TeamMemberResponse `json:"members"`
	PollActive               bool                 `json:"poll_active"`
	SelectedProblemStatement *string              `json:"selected_problem_statement,omitempty"`
	SubmissionLink           *string              `json:"submission_link,omitempty"`
	SubmittedAt              *time.Time           `json:"submitted_at,omitempty"`
	CreatedAt                string               `json:"created_at"`
	UpdatedAt                string               `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams    []TeamResponse `json:"teams"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new team. The hackathon's team creation mode gates
// who may create: admins, participants, or both. The leader becomes the
// first member and gets the leader role.
func (s *TeamService) Create(req *CreateTeamRequest, requesterID uuid.UUID, requesterRole models.UserRole) (*TeamResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	hackathon, err := s.hackathonRepo.GetByID(req.HackathonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to verify hackathon: %w", err)
	}

	switch hackathon.TeamCreationMode {
	case models.TeamCreationModeAdmin:
		if requesterRole != models.UserRoleAdmin {
			return nil, apperrors.ErrTeamCreationClosed
		}
	case models.TeamCreationModeParticipant:
		if requesterRole == models.UserRoleAdmin {
			return nil, apperrors.ErrTeamCreationClosed
		}
	}

	// Admins nominate a leader; participants lead the team they create.
	leaderID := requesterID
	if requesterRole == models.UserRoleAdmin {
		if req.LeaderID == nil {
			return nil, apperrors.NewValidationError("leader_id", "required when an admin creates a team")
		}
		leaderID = *req.LeaderID
	}

	leader, err := s.userRepo.GetByID(leaderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify leader: %w", err)
	}
	if leader.TeamID != nil {
		return nil, apperrors.ErrUserAlreadyInTeam
	}

	existingByName, err := s.repo.GetByName(req.HackathonID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existingByName != nil {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		HackathonID: req.HackathonID,
		Name:        req.Name,
		LeaderID:    leader.ID,
	}
	// The leader joins as the first member and gets promoted.
	if leader.Role == models.UserRoleMember {
		leader.Role = models.UserRoleLeader
	}
	if err := leader.AddHackathon(req.HackathonID); err != nil {
		return nil, fmt.Errorf("failed to register leader for hackathon: %w", err)
	}
	if err := s.repo.CreateWithLeader(team, leader); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	team.Members = []models.User{*leader}

	return s.toResponse(team), nil
}

// GetByID retrieves a team with its members
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team), nil
}

// ListByHackathon retrieves teams for a hackathon with pagination
func (s *TeamService) ListByHackathon(hackathonID uuid.UUID, page, pageSize int) (*TeamListResponse, error) {
	if _, err := s.hackathonRepo.GetByID(hackathonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to verify hackathon: %w", err)
	}

	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize
	teams, total, err := s.repo.GetByHackathonID(hackathonID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	return s.toListResponse(teams, total, page, pageSize), nil
}

// ListAll retrieves all teams with pagination
func (s *TeamService) ListAll(page, pageSize int) (*TeamListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize
	teams, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	return s.toListResponse(teams, total, page, pageSize), nil
}

// RemoveMember detaches a member from the team. The team leader or an
// admin may remove members; the leader cannot be removed this way
// (delete the team instead).
func (s *TeamService) RemoveMember(teamID, memberID, requesterID uuid.UUID, requesterRole models.UserRole) error {
	team, err := s.repo.GetWithMembers(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if requesterRole != models.UserRoleAdmin && team.LeaderID != requesterID {
		return apperrors.ErrNotTeamLeader
	}
	if memberID == team.LeaderID {
		return apperrors.NewValidationError("user_id", "the team leader cannot be removed from the team")
	}

	isMember := false
	for _, m := range team.Members {
		if m.ID == memberID {
			isMember = true
			break
		}
	}
	if !isMember {
		return apperrors.ErrNotTeamMember
	}

	if err := s.userRepo.SetTeam(memberID, nil); err != nil {
		return fmt.Errorf("failed to detach member: %w", err)
	}

	_ = s.notifier.Notify([]uuid.UUID{memberID}, models.NotificationMemberRemoved,
		fmt.Sprintf("You have been removed from team %q", team.Name))

	return nil
}

// Delete deletes a team and detaches its members
func (s *TeamService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.userRepo.ClearTeamForMembers(id); err != nil {
		return fmt.Errorf("failed to detach members: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

func (s *TeamService) toListResponse(teams []models.Team, total int64, page, pageSize int) *TeamListResponse {
	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.toResponse(&team)
	}
	return &TeamListResponse{
		Teams:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	members := make([]TeamMemberResponse, len(team.Members))
	for i, m := range team.Members {
		members[i] = TeamMemberResponse{
			ID:       m.ID,
			Email:    m.Email,
			FullName: m.FullName(),
			Role:     m.Role,
			IsLeader: m.ID == team.LeaderID,
		}
	}

	pollActive := false
	if poll, err := team.PollState(); err == nil && poll != nil {
		pollActive = poll.AcceptingVotes(time.Now().UTC())
	}

	return &TeamResponse{
		ID:                       team.ID,
		HackathonID:              team.HackathonID,
		Name:                     team.Name,
		LeaderID:                 team.LeaderID,
		Members:                  members,
		PollActive:               pollActive,
		SelectedProblemStatement: team.SelectedProblemStatement,
		SubmissionLink:           team.SubmissionLink,
		SubmittedAt:              team.SubmittedAt,
		CreatedAt:                team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                team.UpdatedAt.Format(time.RFC3339),
	}
}
