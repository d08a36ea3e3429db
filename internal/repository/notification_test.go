//go:build integration

package repository_test

import (
	"testing"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// NotificationRepositoryTestSuite exercises notification persistence
type NotificationRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo      *repository.NotificationRepository
	userRepo  *repository.UserRepository
	factories *testutils.FactorySet
}

func TestNotificationRepositoryTestSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	s := &NotificationRepositoryTestSuite{
		BaseTestSuite: base,
		repo:          repository.NewNotificationRepository(base.DB),
		userRepo:      repository.NewUserRepository(base.DB),
		factories:     testutils.NewFactorySet(),
	}
	suite.Run(t, s)
}

func (s *NotificationRepositoryTestSuite) seedUser() *models.User {
	user := s.factories.User.Create()
	s.Require().NoError(s.userRepo.Create(user))
	return user
}

func (s *NotificationRepositoryTestSuite) TestCreateBatchAndList() {
	alice := s.seedUser()
	bob := s.seedUser()

	batch := []models.Notification{
		{UserID: alice.ID, Type: models.NotificationPollStarted, Message: "Poll started"},
		{UserID: bob.ID, Type: models.NotificationPollStarted, Message: "Poll started"},
	}
	s.Require().NoError(s.repo.CreateBatch(batch))

	notifications, total, err := s.repo.GetByUserID(alice.ID, 10, 0)
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(1), total)
	s.Require().Len(notifications, 1)
	assert.Equal(s.T(), "Poll started", notifications[0].Message)
	assert.False(s.T(), notifications[0].Read)
}

func (s *NotificationRepositoryTestSuite) TestCreateBatchEmpty() {
	assert.NoError(s.T(), s.repo.CreateBatch(nil))
}

func (s *NotificationRepositoryTestSuite) TestGetByUserIDUnknownUser() {
	notifications, total, err := s.repo.GetByUserID(uuid.New(), 10, 0)
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(0), total)
	assert.Empty(s.T(), notifications)
}

func (s *NotificationRepositoryTestSuite) TestMarkAllRead() {
	user := s.seedUser()

	batch := []models.Notification{
		{UserID: user.ID, Type: models.NotificationInvitationReceived, Message: "one"},
		{UserID: user.ID, Type: models.NotificationPollConcluded, Message: "two"},
	}
	s.Require().NoError(s.repo.CreateBatch(batch))

	s.Require().NoError(s.repo.MarkAllRead(user.ID))

	notifications, _, err := s.repo.GetByUserID(user.ID, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(notifications, 2)
	for _, n := range notifications {
		assert.True(s.T(), n.Read)
	}
}
