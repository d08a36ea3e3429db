package service

import (
	"fmt"
	"time"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/repository"

	"github.com/google/uuid"
)

// NotificationService persists in-app notifications and serves them back.
// It is the emitter behind poll, invitation and submission events.
type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotificationResponse represents a single notification
type NotificationResponse struct {
	ID        uuid.UUID               `json:"id"`
	Type      models.NotificationType `json:"type"`
	Message   string                  `json:"message"`
	Read      bool                    `json:"read"`
	CreatedAt time.Time               `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Notify fans a single event out to every recipient
func (s *NotificationService) Notify(recipients []uuid.UUID, event models.NotificationType, message string) error {
	if len(recipients) == 0 {
		return nil
	}

	notifications := make([]models.Notification, len(recipients))
	for i, userID := range recipients {
		notifications[i] = models.Notification{
			UserID:  userID,
			Type:    event,
			Message: message,
		}
	}
	if err := s.repo.CreateBatch(notifications); err != nil {
		return fmt.Errorf("failed to store notifications: %w", err)
	}
	return nil
}

// ListForUser retrieves a user's notifications, newest first
func (s *NotificationService) ListForUser(userID uuid.UUID, page, pageSize int) (*NotificationListResponse, error) {
	page, pageSize = normalizePagination(page, pageSize)
	offset := (page - 1) * pageSize

	notifications, total, err := s.repo.GetByUserID(userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}

	return &NotificationListResponse{
		Notifications: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// MarkAllRead marks every notification of the user as read
func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	if err := s.repo.MarkAllRead(userID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
