package service

import (
	"encoding/json"
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

// HackathonService handles business logic for hackathons
type HackathonService struct {
	repo      repository.HackathonRepositoryInterface
	validator *validator.Validate
}

// NewHackathonService creates a new hackathon service
func NewHackathonService(repo repository.HackathonRepositoryInterface, validator *validator.Validate) *HackathonService {
	return &HackathonService{repo: repo, validator: validator}
}

// CreateHackathonRequest represents the request to create a hackathon
type CreateHackathonRequest struct {
	Title               string                    `json:"title" validate:"required,min=1,max=200"`
	Description         string                    `json:"description" validate:"max=2000"`
	StartDate           time.Time                 `json:"start_date" validate:"required"`
	EndDate             time.Time                 `json:"end_date" validate:"required"`
	SubmissionStartDate time.Time                 `json:"submission_start_date" validate:"required"`
	SubmissionEndDate   time.Time                 `json:"submission_end_date" validate:"required"`
	TeamCreationMode    models.TeamCreationMode   `json:"team_creation_mode" validate:"omitempty,oneof=admin participant both"`
	MinTeamSize         int                       `json:"min_team_size" validate:"required,min=1"`
	MaxTeamSize         int                       `json:"max_team_size" validate:"required,min=1"`
	ProblemStatements   []models.ProblemStatement `json:"problem_statements" validate:"dive"`
}

// UpdateHackathonRequest represents the request to update a hackathon
type UpdateHackathonRequest struct {
	Title               string                    `json:"title" validate:"required,min=1,max=200"`
	Description         string                    `json:"description" validate:"max=2000"`
	StartDate           time.Time                 `json:"start_date" validate:"required"`
	EndDate             time.Time                 `json:"end_date" validate:"required"`
	SubmissionStartDate time.Time                 `json:"submission_start_date" validate:"required"`
	SubmissionEndDate   time.Time                 `json:"submission_end_date" validate:"required"`
	TeamCreationMode    models.TeamCreationMode   `json:"team_creation_mode" validate:"omitempty,oneof=admin participant both"`
	MinTeamSize         int                       `json:"min_team_size" validate:"required,min=1"`
	MaxTeamSize         int                       `json:"max_team_size" validate:"required,min=1"`
	ProblemStatements   []models.ProblemStatement `json:"problem_statements" validate:"dive"`
}

// HackathonResponse represents the response for hackathon operations
type HackathonResponse struct {
	ID                  uuid.UUID                 `json:"id"`
	Title               string                    `json:"title"`
	Description         string                    `json:"description"`
	StartDate           time.Time                 `json:"start_date"`
	EndDate             time.Time                 `json:"end_date"`
	SubmissionStartDate time.Time                 `json:"submission_start_date"`
	SubmissionEndDate   time.Time                 `json:"submission_end_date"`
	TeamCreationMode    models.TeamCreationMode   `json:"team_creation_mode"`
	MinTeamSize         int                       `json:"min_team_size"`
	MaxTeamSize         int                       `json:"max_team_size"`
	ProblemStatements   []models.ProblemStatement `json:"problem_statements"`
	CreatedAt           string                    `json:"created_at"`
	UpdatedAt           string                    `json:"updated_at"`
}

// HackathonListResponse represents a paginated list of hackathons
type HackathonListResponse struct {
	Hackathons []HackathonResponse `json:"hackathons"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// Create creates a new hackathon
func (s *HackathonService) Create(req *CreateHackathonRequest) (*HackathonResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := validateEventDates(req.StartDate, req.EndDate, req.SubmissionStartDate, req.SubmissionEndDate); err != nil {
		return nil, err
	}
	if req.MaxTeamSize < req.MinTeamSize {
		return nil, apperrors.ErrInvalidTeamSizeBounds
	}
	if err := validateProblemStatements(req.ProblemStatements); err != nil {
		return nil, err
	}

	mode := req.TeamCreationMode
	if mode == "" {
		mode = models.TeamCreationModeBoth
	}

	statementsJSON, err := json.Marshal(req.ProblemStatements)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal problem statements: %w", err)
	}

	hackathon := &models.Hackathon{
		Title:               req.Title,
		Description:         req.Description,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		SubmissionStartDate: req.SubmissionStartDate,
		SubmissionEndDate:   req.SubmissionEndDate,
		TeamCreationMode:    mode,
		MinTeamSize:         req.MinTeamSize,
		MaxTeamSize:         req.MaxTeamSize,
		ProblemStatements:   statementsJSON,
	}

	if err := s.repo.Create(hackathon); err != nil {
		return nil, fmt.Errorf("failed to create hackathon: %w", err)
	}

	return s.toResponse(hackathon), nil
}

// GetByID retrieves a hackathon by ID
func (s *HackathonService) GetByID(id uuid.UUID) (*HackathonResponse, error) {
	hackathon, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to get hackathon: %w", err)
	}

	return s.toResponse(hackathon), nil
}

// List retrieves hackathons with pagination
func (s *HackathonService) List(page, pageSize int) (*HackathonListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	hackathons, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathons: %w", err)
	}

	responses := make([]HackathonResponse, len(hackathons))
	for i, h := range hackathons {
		responses[i] = *s.toResponse(&h)
	}

	return &HackathonListResponse{
		Hackathons: responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// Update updates a hackathon. Running polls are unaffected because each
// poll snapshots its candidate tracks at start time.
func (s *HackathonService) Update(id uuid.UUID, req *UpdateHackathonRequest) (*HackathonResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := validateEventDates(req.StartDate, req.EndDate, req.SubmissionStartDate, req.SubmissionEndDate); err != nil {
		return nil, err
	}
	if req.MaxTeamSize < req.MinTeamSize {
		return nil, apperrors.ErrInvalidTeamSizeBounds
	}
	if err := validateProblemStatements(req.ProblemStatements); err != nil {
		return nil, err
	}

	hackathon, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHackathonNotFound
		}
		return nil, fmt.Errorf("failed to get hackathon: %w", err)
	}

	statementsJSON, err := json.Marshal(req.ProblemStatements)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal problem statements: %w", err)
	}

	hackathon.Title = req.Title
	hackathon.Description = req.Description
	hackathon.StartDate = req.StartDate
	hackathon.EndDate = req.EndDate
	hackathon.SubmissionStartDate = req.SubmissionStartDate
	hackathon.SubmissionEndDate = req.SubmissionEndDate
	if req.TeamCreationMode != "" {
		hackathon.TeamCreationMode = req.TeamCreationMode
	}
	hackathon.MinTeamSize = req.MinTeamSize
	hackathon.MaxTeamSize = req.MaxTeamSize
	hackathon.ProblemStatements = statementsJSON

	if err := s.repo.Update(hackathon); err != nil {
		return nil, fmt.Errorf("failed to update hackathon: %w", err)
	}

	return s.toResponse(hackathon), nil
}

// Delete deletes a hackathon
func (s *HackathonService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHackathonNotFound
		}
		return fmt.Errorf("failed to get hackathon: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete hackathon: %w", err)
	}
	return nil
}

// validateEventDates enforces start <= end and the submission window
// ordered and contained within the event dates
func validateEventDates(start, end, subStart, subEnd time.Time) error {
	if end.Before(start) {
		return apperrors.NewValidationError("end_date", "must not be before start_date")
	}
	if subEnd.Before(subStart) {
		return apperrors.NewValidationError("submission_end_date", "must not be before submission_start_date")
	}
	if subStart.Before(start) || subEnd.After(end) {
		return apperrors.NewValidationError("submission_window", "must fall within the event dates")
	}
	return nil
}

func validateProblemStatements(statements []models.ProblemStatement) error {
	seen := make(map[string]bool, len(statements))
	for _, ps := range statements {
		if ps.Track == "" {
			return apperrors.NewValidationError("problem_statements", "track name must not be empty")
		}
		if ps.Difficulty != "" && !ps.Difficulty.IsValid() {
			return apperrors.NewValidationError("problem_statements", "invalid difficulty")
		}
		if seen[ps.Track] {
			return apperrors.NewValidationError("problem_statements", "duplicate track: "+ps.Track)
		}
		seen[ps.Track] = true
	}
	return nil
}

func (s *HackathonService) toResponse(h *models.Hackathon) *HackathonResponse {
	statements, _ := h.Tracks()
	return &HackathonResponse{
		ID:                  h.ID,
		Title:               h.Title,
		Description:         h.Description,
		StartDate:           h.StartDate,
		EndDate:             h.EndDate,
		SubmissionStartDate: h.SubmissionStartDate,
		SubmissionEndDate:   h.SubmissionEndDate,
		TeamCreationMode:    h.TeamCreationMode,
		MinTeamSize:         h.MinTeamSize,
		MaxTeamSize:         h.MaxTeamSize,
		ProblemStatements:   statements,
		CreatedAt:           h.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           h.UpdatedAt.Format(time.RFC3339),
	}
}
