package repository

import (
	"encoding/json"
	"time"

	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// CreateWithLeader creates the team and attaches the leader as its first
// member in one transaction, so a failed leader write never leaves a
// memberless team row behind.
func (r *TeamRepository) CreateWithLeader(team *models.Team, leader *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		leader.TeamID = &team.ID
		return tx.Save(leader).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with all its members
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by name within a hackathon
func (r *TeamRepository) GetByName(hackathonID uuid.UUID, name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "hackathon_id = ? AND name = ?", hackathonID, name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByHackathonID retrieves all teams for a hackathon with pagination
func (r *TeamRepository) GetByHackathonID(hackathonID uuid.UUID, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Where("hackathon_id = ?", hackathonID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("hackathon_id = ?", hackathonID).
		Preload("Members").
		Limit(limit).Offset(offset).
		Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// GetAll retrieves all teams with pagination
func (r *TeamRepository) GetAll(limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	if err := r.db.Model(&models.Team{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Members").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// UpdatePollCAS writes the poll document and optionally the selected
// problem statement, guarded by a compare-and-swap on poll_version.
// Returns false when another writer won the race.
func (r *TeamRepository) UpdatePollCAS(teamID uuid.UUID, expectedVersion int, poll json.RawMessage, selected *string) (bool, error) {
	updates := map[string]interface{}{
		"poll":         poll,
		"poll_version": expectedVersion + 1,
	}
	if selected != nil {
		updates["selected_problem_statement"] = *selected
	}

	result := r.db.Model(&models.Team{}).
		Where("id = ? AND poll_version = ?", teamID, expectedVersion).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateSubmission records the submission link, overwriting any prior one
func (r *TeamRepository) UpdateSubmission(teamID uuid.UUID, link string, submittedAt time.Time) error {
	return r.db.Model(&models.Team{}).
		Where("id = ?", teamID).
		Updates(map[string]interface{}{
			"submission_link": link,
			"submitted_at":    submittedAt,
		}).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}

// GetMemberCount returns the number of members in a team
func (r *TeamRepository) GetMemberCount(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}
