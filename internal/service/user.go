package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for users: verification, admin
// login and roster uploads
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{repo: repo, validator: validator}
}

// VerifyUserRequest represents the request to verify a participant email
type VerifyUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AdminLoginRequest represents the admin credential login request
type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse represents the response for user operations
type UserResponse struct {
	ID           uuid.UUID       `json:"id"`
	Email        string          `json:"email"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Role         models.UserRole `json:"role"`
	TeamID       *uuid.UUID      `json:"team_id,omitempty"`
	HackathonIDs []uuid.UUID     `json:"hackathon_ids,omitempty"`
	CreatedAt    string          `json:"created_at"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// RosterUploadResponse reports the outcome of a CSV roster upload
type RosterUploadResponse struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// VerifyUser looks a participant up by email. Unknown emails are rejected;
// the portal roster is provisioned by admins.
func (s *UserService) VerifyUser(req *VerifyUserRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return s.toResponse(user), nil
}

// AdminLogin verifies admin credentials against the stored bcrypt hash
func (s *UserService) AdminLogin(req *AdminLoginRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Role != models.UserRoleAdmin || user.PasswordHash == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.toResponse(user), nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return s.toResponse(user), nil
}

// List retrieves users with pagination
func (s *UserService) List(page, pageSize int) (*UserListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	users, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = *s.toResponse(&u)
	}

	return &UserListResponse{
		Users:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UploadRoster ingests a CSV of participants. Expected columns:
// email, first_name, last_name. A header row is detected and skipped.
// Rows whose email already exists are skipped, not treated as errors.
func (s *UserService) UploadRoster(r io.Reader) (*RosterUploadResponse, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &RosterUploadResponse{}
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewValidationError("csv", fmt.Sprintf("malformed CSV near line %d", line+1))
		}
		line++

		if len(record) < 2 {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: expected at least email and first name", line))
			continue
		}

		email := normalizeEmail(record[0])
		if line == 1 && strings.EqualFold(email, "email") {
			continue // header row
		}
		if s.validator.Var(email, "required,email") != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid email %q", line, record[0]))
			continue
		}

		lastName := ""
		if len(record) > 2 {
			lastName = strings.TrimSpace(record[2])
		}
		user := &models.User{
			Email:     email,
			FirstName: strings.TrimSpace(record[1]),
			LastName:  lastName,
			Role:      models.UserRoleMember,
		}

		if existing, err := s.repo.GetByEmail(email); err == nil && existing != nil {
			result.Skipped++
			continue
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing user: %w", err)
		}

		if err := s.repo.Create(user); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.Created++
	}

	return result, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	hackathonIDs, _ := user.Hackathons()
	return &UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         user.Role,
		TeamID:       user.TeamID,
		HackathonIDs: hackathonIDs,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}
}
