package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HackathonRepository handles database operations for hackathons
type HackathonRepository struct {
	db *gorm.DB
}

// NewHackathonRepository creates a new hackathon repository
func NewHackathonRepository(db *gorm.DB) *HackathonRepository {
	return &HackathonRepository{db: db}
}

// Create creates a new hackathon
func (r *HackathonRepository) Create(hackathon *models.Hackathon) error {
	return r.db.Create(hackathon).Error
}

// GetByID retrieves a hackathon by ID
func (r *HackathonRepository) GetByID(id uuid.UUID) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	err := r.db.First(&hackathon, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &hackathon, nil
}

// GetAll retrieves all hackathons with pagination, newest first
func (r *HackathonRepository) GetAll(limit, offset int) ([]models.Hackathon, int64, error) {
	var hackathons []models.Hackathon
	var total int64

	if err := r.db.Model(&models.Hackathon{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("start_date DESC").Limit(limit).Offset(offset).Find(&hackathons).Error
	if err != nil {
		return nil, 0, err
	}

	return hackathons, total, nil
}

// Update updates a hackathon
func (r *HackathonRepository) Update(hackathon *models.Hackathon) error {
	return r.db.Save(hackathon).Error
}

// Delete deletes a hackathon
func (r *HackathonRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Hackathon{}, "id = ?", id).Error
}
