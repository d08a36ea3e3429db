package service

import (
	"io"

	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// HackathonServiceInterface defines the interface for hackathon service
type HackathonServiceInterface interface {
	Create(req *CreateHackathonRequest) (*HackathonResponse, error)
	GetByID(id uuid.UUID) (*HackathonResponse, error)
	List(page, pageSize int) (*HackathonListResponse, error)
	Update(id uuid.UUID, req *UpdateHackathonRequest) (*HackathonResponse, error)
	Delete(id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest, requesterID uuid.UUID, requesterRole models.UserRole) (*TeamResponse, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	ListByHackathon(hackathonID uuid.UUID, page, pageSize int) (*TeamListResponse, error)
	ListAll(page, pageSize int) (*TeamListResponse, error)
	RemoveMember(teamID, memberID, requesterID uuid.UUID, requesterRole models.UserRole) error
	Delete(id uuid.UUID) error
}

// PollServiceInterface defines the interface for the team poll lifecycle
type PollServiceInterface interface {
	Start(teamID, requesterID uuid.UUID, req *StartPollRequest) (*PollStatusResponse, error)
	Vote(teamID, requesterID uuid.UUID, req *VoteRequest) (*PollStatusResponse, error)
	Conclude(teamID, requesterID uuid.UUID) (*ConcludePollResponse, error)
	Status(teamID, requesterID uuid.UUID) (*PollStatusResponse, error)
}

// SubmissionServiceInterface defines the interface for the submission gate
type SubmissionServiceInterface interface {
	Submit(teamID, requesterID uuid.UUID, req *SubmitProjectRequest) (*SubmissionStatusResponse, error)
	Status(teamID uuid.UUID) (*SubmissionStatusResponse, error)
}

// InvitationServiceInterface defines the interface for team invitations
type InvitationServiceInterface interface {
	Invite(req *CreateInvitationRequest, fromUserID uuid.UUID) (*InvitationResponse, error)
	Accept(id, requesterID uuid.UUID) (*InvitationResponse, error)
	Decline(id, requesterID uuid.UUID) (*InvitationResponse, error)
	ListForUser(userID uuid.UUID, page, pageSize int) (*InvitationListResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	VerifyUser(req *VerifyUserRequest) (*UserResponse, error)
	AdminLogin(req *AdminLoginRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	List(page, pageSize int) (*UserListResponse, error)
	UploadRoster(r io.Reader) (*RosterUploadResponse, error)
}

// NotificationServiceInterface defines the interface for the notification emitter
type NotificationServiceInterface interface {
	Notify(recipients []uuid.UUID, event models.NotificationType, message string) error
	ListForUser(userID uuid.UUID, page, pageSize int) (*NotificationListResponse, error)
	MarkAllRead(userID uuid.UUID) error
}
