package repository

import (
	"encoding/json"
	"time"

	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// HackathonRepositoryInterface defines the interface for hackathon repository operations
type HackathonRepositoryInterface interface {
	Create(hackathon *models.Hackathon) error
	GetByID(id uuid.UUID) (*models.Hackathon, error)
	GetAll(limit, offset int) ([]models.Hackathon, int64, error)
	Update(hackathon *models.Hackathon) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	CreateWithLeader(team *models.Team, leader *models.User) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetByName(hackathonID uuid.UUID, name string) (*models.Team, error)
	GetByHackathonID(hackathonID uuid.UUID, limit, offset int) ([]models.Team, int64, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	Update(team *models.Team) error
	UpdatePollCAS(teamID uuid.UUID, expectedVersion int, poll json.RawMessage, selected *string) (bool, error)
	UpdateSubmission(teamID uuid.UUID, link string, submittedAt time.Time) error
	Delete(id uuid.UUID) error
	GetMemberCount(teamID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	SetTeam(userID uuid.UUID, teamID *uuid.UUID) error
	ClearTeamForMembers(teamID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.Invitation) error
	GetByID(id uuid.UUID) (*models.Invitation, error)
	GetPending(teamID, toUserID uuid.UUID) (*models.Invitation, error)
	GetByToUserID(toUserID uuid.UUID, limit, offset int) ([]models.Invitation, int64, error)
	Update(invitation *models.Invitation) error
	Delete(id uuid.UUID) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	CreateBatch(notifications []models.Notification) error
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	MarkAllRead(userID uuid.UUID) error
}
