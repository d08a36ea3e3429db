package auth_test

import (
	"testing"
	"time"

	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidateToken(t *testing.T) {
	service := auth.NewService("test-secret", 24)
	userID := uuid.New()

	token, err := service.IssueToken(userID, "alice@test.com", models.UserRoleLeader)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@test.com", claims.Email)
	assert.Equal(t, models.UserRoleLeader, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := auth.NewService("secret-one", 24)
	verifier := auth.NewService("secret-two", 24)

	token, err := issuer.IssueToken(uuid.New(), "alice@test.com", models.UserRoleMember)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	service := auth.NewService("test-secret", 24)

	_, err := service.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	secret := "test-secret"
	claims := &auth.Claims{
		UserID: uuid.New(),
		Email:  "alice@test.com",
		Role:   models.UserRoleMember,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	service := auth.NewService(secret, 24)
	_, err = service.ValidateToken(signed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestValidateTokenRejectsUnsignedAlgorithm(t *testing.T) {
	claims := &auth.Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	service := auth.NewService("test-secret", 24)
	_, err = service.ValidateToken(signed)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
