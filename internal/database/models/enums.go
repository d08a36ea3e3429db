package models

// UserRole defines the portal-wide role of a user
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleLeader UserRole = "leader"
	UserRoleMember UserRole = "member"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleLeader, UserRoleMember:
		return true
	}
	return false
}

// TeamCreationMode defines who may create teams for a hackathon
type TeamCreationMode string

const (
	TeamCreationModeAdmin       TeamCreationMode = "admin"
	TeamCreationModeParticipant TeamCreationMode = "participant"
	TeamCreationModeBoth        TeamCreationMode = "both"
)

// IsValid checks if the TeamCreationMode is valid
func (m TeamCreationMode) IsValid() bool {
	switch m {
	case TeamCreationModeAdmin, TeamCreationModeParticipant, TeamCreationModeBoth:
		return true
	}
	return false
}

// Difficulty defines the difficulty grade of a problem statement
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid checks if the Difficulty is valid
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// InvitationStatus defines the lifecycle state of a team invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
)

// IsValid checks if the InvitationStatus is valid
func (s InvitationStatus) IsValid() bool {
	switch s {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusDeclined:
		return true
	}
	return false
}

// NotificationType enumerates in-app notification events
type NotificationType string

const (
	NotificationPollStarted        NotificationType = "poll_started"
	NotificationPollConcluded      NotificationType = "poll_concluded"
	NotificationInvitationReceived NotificationType = "invitation_received"
	NotificationInvitationAccepted NotificationType = "invitation_accepted"
	NotificationInvitationDeclined NotificationType = "invitation_declined"
	NotificationSubmissionReceived NotificationType = "submission_received"
	NotificationMemberRemoved      NotificationType = "member_removed"
)
