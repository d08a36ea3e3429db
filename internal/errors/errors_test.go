package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "hackathon"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrHackathonNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrTeamFull))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team", Context: "in the hackathon"}
		assert.Equal(t, "team already exists in the hackathon", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "team", Context: "in hackathon"}
		err2 := &AlreadyExistsError{Entity: "team", Context: "in hackathon"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTeamExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(ErrInvalidTeamSizeBounds))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestStateAndConflictErrors(t *testing.T) {
	t.Run("IsInvalidState helper", func(t *testing.T) {
		assert.True(t, IsInvalidState(ErrPollExpired))
		assert.True(t, IsInvalidState(ErrSubmissionTooLate))
		assert.False(t, IsInvalidState(ErrPollAlreadyActive))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrPollAlreadyActive))
		assert.True(t, IsConflict(ErrConcurrentPollUpdate))
		assert.True(t, IsConflict(ErrProblemStatementLocked))
		assert.False(t, IsConflict(ErrNoActivePoll))
	})

	t.Run("IsForbidden helper", func(t *testing.T) {
		assert.True(t, IsForbidden(ErrNotTeamLeader))
		assert.True(t, IsForbidden(ErrTeamCreationClosed))
		assert.False(t, IsForbidden(ErrInvalidCredentials))
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrAdminOnly))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("NewForbiddenError", func(t *testing.T) {
		err := NewForbiddenError("not allowed")
		assert.Equal(t, "not allowed", err.Error())
		assert.True(t, IsForbidden(err))
	})

	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := NewInvalidStateError("wrong state")
		assert.True(t, IsInvalidState(err))
	})

	t.Run("NewConflictError", func(t *testing.T) {
		err := NewConflictError("collision")
		assert.True(t, IsConflict(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Poll state errors", func(t *testing.T) {
		assert.Error(t, ErrPollAlreadyActive)
		assert.Error(t, ErrNoActivePoll)
		assert.Error(t, ErrPollExpired)
		assert.Error(t, ErrConcurrentPollUpdate)
		assert.Error(t, ErrUnknownTrack)
		assert.Error(t, ErrNoProblemStatements)
	})

	t.Run("Submission and membership errors", func(t *testing.T) {
		assert.Error(t, ErrSubmissionTooEarly)
		assert.Error(t, ErrSubmissionTooLate)
		assert.Error(t, ErrProblemStatementLocked)
		assert.Error(t, ErrTeamFull)
		assert.Error(t, ErrUserAlreadyInTeam)
		assert.Error(t, ErrInvitationResolved)
		assert.Error(t, ErrInvalidTeamSizeBounds)
	})
}
