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

// InvitationService handles join/invite requests between leaders and users.
// Team size bounds are checked against the hackathon's configured
// min/max at accept time.
type InvitationService struct {
	repo          repository.InvitationRepositoryInterface
	teamRepo      repository.TeamRepositoryInterface
	hackathonRepo repository.HackathonRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	notifier      NotificationServiceInterface
	validator     *validator.Validate
}

// NewInvitationService creates a new invitation service
func NewInvitationService(
	repo repository.InvitationRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	hackathonRepo repository.HackathonRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	notifier NotificationServiceInterface,
	validator *validator.Validate,
) *InvitationService {
	return &InvitationService{
		repo:          repo,
		teamRepo:      teamRepo,
		hackathonRepo: hackathonRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		validator:     validator,
	}
}

// CreateInvitationRequest represents the request to invite a user to a team
type CreateInvitationRequest struct {
	TeamID   uuid.UUID `json:"team_id" validate:"required"`
	ToUserID uuid.UUID `json:"to_user_id" validate:"required"`
}

// InvitationResponse represents the response for invitation operations
type InvitationResponse struct {
	ID         uuid.UUID               `json:"id"`
	TeamID     uuid.UUID               `json:"team_id"`
	TeamName   string                  `json:"team_name,omitempty"`
	FromUserID uuid.UUID               `json:"from_user_id"`
	ToUserID   uuid.UUID               `json:"to_user_id"`
	Status     models.InvitationStatus `json:"status"`
	CreatedAt  string                  `json:"created_at"`
}

// InvitationListResponse represents a paginated list of invitations
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Invite creates a pending invitation from the team leader to a user
func (s *InvitationService) Invite(req *CreateInvitationRequest, fromUserID uuid.UUID) (*InvitationResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if !team.IsLeader(fromUserID) {
		return nil, apperrors.ErrNotTeamLeader
	}

	target, err := s.userRepo.GetByID(req.ToUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if target.TeamID != nil {
		return nil, apperrors.ErrUserAlreadyInTeam
	}

	existing, err := s.repo.GetPending(req.TeamID, req.ToUserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending invitation: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrInvitationExists
	}

	hackathon, err := s.hackathonRepo.GetByID(team.HackathonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hackathon: %w", err)
	}
	count, err := s.teamRepo.GetMemberCount(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	if count >= int64(hackathon.MaxTeamSize) {
		return nil, apperrors.ErrTeamFull
	}

	invitation := &models.Invitation{
		TeamID:     req.TeamID,
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Status:     models.InvitationStatusPending,
	}
	if err := s.repo.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	_ = s.notifier.Notify([]uuid.UUID{req.ToUserID}, models.NotificationInvitationReceived,
		fmt.Sprintf("You have been invited to join team %q", team.Name))

	return s.toResponse(invitation, team.Name), nil
}

// Accept resolves a pending invitation and attaches the user to the team.
// Size bounds are re-checked here because the team may have filled up
// between invite and accept.
func (s *InvitationService) Accept(id, requesterID uuid.UUID) (*InvitationResponse, error) {
	invitation, err := s.getResolvable(id, requesterID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.TeamID != nil {
		return nil, apperrors.ErrUserAlreadyInTeam
	}

	team, err := s.teamRepo.GetByID(invitation.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	hackathon, err := s.hackathonRepo.GetByID(team.HackathonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hackathon: %w", err)
	}
	count, err := s.teamRepo.GetMemberCount(team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}
	if count >= int64(hackathon.MaxTeamSize) {
		return nil, apperrors.ErrTeamFull
	}

	user.TeamID = &team.ID
	if err := user.AddHackathon(team.HackathonID); err != nil {
		return nil, fmt.Errorf("failed to register user for hackathon: %w", err)
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to attach user to team: %w", err)
	}

	invitation.Status = models.InvitationStatusAccepted
	if err := s.repo.Update(invitation); err != nil {
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}

	_ = s.notifier.Notify([]uuid.UUID{invitation.FromUserID}, models.NotificationInvitationAccepted,
		fmt.Sprintf("%s joined team %q", user.FullName(), team.Name))

	return s.toResponse(invitation, team.Name), nil
}

// Decline resolves a pending invitation without side effects on membership
func (s *InvitationService) Decline(id, requesterID uuid.UUID) (*InvitationResponse, error) {
	invitation, err := s.getResolvable(id, requesterID)
	if err != nil {
		return nil, err
	}

	invitation.Status = models.InvitationStatusDeclined
	if err := s.repo.Update(invitation); err != nil {
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}

	_ = s.notifier.Notify([]uuid.UUID{invitation.FromUserID}, models.NotificationInvitationDeclined,
		"Your team invitation was declined")

	return s.toResponse(invitation, ""), nil
}

// ListForUser retrieves invitations addressed to a user
func (s *InvitationService) ListForUser(userID uuid.UUID, page, pageSize int) (*InvitationListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	invitations, total, err := s.repo.GetByToUserID(userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	responses := make([]InvitationResponse, len(invitations))
	for i, inv := range invitations {
		teamName := ""
		if inv.Team != nil {
			teamName = inv.Team.Name
		}
		responses[i] = *s.toResponse(&inv, teamName)
	}

	return &InvitationListResponse{
		Invitations: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// getResolvable loads an invitation and checks that the requester is
// the invitee and the invitation is still pending
func (s *InvitationService) getResolvable(id, requesterID uuid.UUID) (*models.Invitation, error) {
	invitation, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	if invitation.ToUserID != requesterID {
		return nil, apperrors.ErrNotInvitee
	}
	if !invitation.IsPending() {
		return nil, apperrors.ErrInvitationResolved
	}
	return invitation, nil
}

func (s *InvitationService) toResponse(inv *models.Invitation, teamName string) *InvitationResponse {
	return &InvitationResponse{
		ID:         inv.ID,
		TeamID:     inv.TeamID,
		TeamName:   teamName,
		FromUserID: inv.FromUserID,
		ToUserID:   inv.ToUserID,
		Status:     inv.Status,
		CreatedAt:  inv.CreatedAt.Format(time.RFC3339),
	}
}
