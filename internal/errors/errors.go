package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in hackathon"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ForbiddenError represents a role or leadership check failure
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// InvalidStateError represents an operation rejected by the current
// poll or submission timing state
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// ConflictError represents an operation colliding with concurrent or
// duplicate state, such as a second active poll
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrHackathonNotFound  = &NotFoundError{Entity: "hackathon"}
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrInvitationNotFound = &NotFoundError{Entity: "invitation"}
)

// Already Exists Errors
var (
	ErrTeamExists       = &AlreadyExistsError{Entity: "team", Context: "with this name in the hackathon"}
	ErrInvitationExists = &AlreadyExistsError{Entity: "invitation", Context: "pending for this user"}
)

// Authorization Errors
var (
	ErrNotTeamLeader = &ForbiddenError{Message: "requester is not the team leader"}
	ErrNotTeamMember = &ForbiddenError{Message: "user is not a member of this team"}
	ErrAdminOnly     = &ForbiddenError{Message: "operation requires admin role"}
	ErrNotInvitee    = &ForbiddenError{Message: "invitation is addressed to another user"}
)

// Poll State Errors
var (
	ErrPollAlreadyActive     = &ConflictError{Message: "a poll is already active for this team"}
	ErrNoActivePoll          = &InvalidStateError{Message: "no active poll for this team"}
	ErrPollExpired           = &InvalidStateError{Message: "poll has expired"}
	ErrConcurrentPollUpdate  = &ConflictError{Message: "poll was modified concurrently, retry"}
	ErrUnknownTrack          = &ValidationError{Field: "track", Message: "track is not configured for this hackathon"}
	ErrInvalidPollDuration   = &ValidationError{Field: "duration_minutes", Message: "duration is out of the allowed range"}
	ErrNoProblemStatements   = &InvalidStateError{Message: "hackathon has no problem statements configured"}
	ErrProblemStatementUnset = &InvalidStateError{Message: "team has not selected a problem statement"}
)

// Submission Errors
var (
	ErrSubmissionTooEarly     = &InvalidStateError{Message: "submission window has not opened yet"}
	ErrSubmissionTooLate      = &InvalidStateError{Message: "submission window has closed"}
	ErrEmptySubmissionLink    = &ValidationError{Field: "submission_link", Message: "link must not be empty"}
	ErrProblemStatementLocked = &ConflictError{Message: "problem statement is locked after submission"}
)

// Membership Errors
var (
	ErrTeamFull           = &ConflictError{Message: "team has reached the maximum size"}
	ErrUserAlreadyInTeam  = &ConflictError{Message: "user already belongs to a team"}
	ErrInvitationResolved = &InvalidStateError{Message: "invitation is no longer pending"}
	ErrTeamCreationClosed = &ForbiddenError{Message: "team creation mode does not allow this requester"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
)

// Hackathon Configuration Errors
var (
	ErrInvalidTeamSizeBounds = &ValidationError{Field: "max_team_size", Message: "must not be less than min_team_size"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var forbiddenErr *ForbiddenError
	return errors.As(err, &forbiddenErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewForbiddenError creates a new ForbiddenError
func NewForbiddenError(message string) error {
	return &ForbiddenError{Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(message string) error {
	return &InvalidStateError{Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}
