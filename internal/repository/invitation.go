package repository

import (
	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvitationRepository handles database operations for team invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(invitation *models.Invitation) error {
	return r.db.Create(invitation).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(id uuid.UUID) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetPending retrieves the pending invitation for a user on a team, if any
func (r *InvitationRepository) GetPending(teamID, toUserID uuid.UUID) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.db.First(&invitation,
		"team_id = ? AND to_user_id = ? AND status = ?",
		teamID, toUserID, models.InvitationStatusPending).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// GetByToUserID retrieves invitations addressed to a user, newest first
func (r *InvitationRepository) GetByToUserID(toUserID uuid.UUID, limit, offset int) ([]models.Invitation, int64, error) {
	var invitations []models.Invitation
	var total int64

	if err := r.db.Model(&models.Invitation{}).Where("to_user_id = ?", toUserID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("to_user_id = ?", toUserID).
		Preload("Team").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&invitations).Error
	if err != nil {
		return nil, 0, err
	}

	return invitations, total, nil
}

// Update updates an invitation
func (r *InvitationRepository) Update(invitation *models.Invitation) error {
	return r.db.Save(invitation).Error
}

// Delete deletes an invitation
func (r *InvitationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Invitation{}, "id = ?", id).Error
}
