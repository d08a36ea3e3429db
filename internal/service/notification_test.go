package service_test

import (
	"testing"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NotificationServiceTestSuite defines the test suite for NotificationService
type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockRepo            *mocks.MockNotificationRepositoryInterface
	notificationService *service.NotificationService
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.notificationService = service.NewNotificationService(suite.mockRepo)
}

func (suite *NotificationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationServiceTestSuite) TestNotifyFansOutToAllRecipients() {
	recipients := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	suite.mockRepo.EXPECT().CreateBatch(gomock.Len(3)).DoAndReturn(func(batch []models.Notification) error {
		for i, n := range batch {
			assert.Equal(suite.T(), recipients[i], n.UserID)
			assert.Equal(suite.T(), models.NotificationPollStarted, n.Type)
			assert.Equal(suite.T(), "A poll has started", n.Message)
		}
		return nil
	})

	err := suite.notificationService.Notify(recipients, models.NotificationPollStarted, "A poll has started")

	assert.NoError(suite.T(), err)
}

func (suite *NotificationServiceTestSuite) TestNotifyNoRecipients() {
	err := suite.notificationService.Notify(nil, models.NotificationPollStarted, "nobody to tell")

	assert.NoError(suite.T(), err)
}

func (suite *NotificationServiceTestSuite) TestListForUser() {
	userID := uuid.New()
	stored := []models.Notification{
		{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, Type: models.NotificationPollConcluded, Message: "Poll concluded", Read: false},
		{BaseModel: models.BaseModel{ID: uuid.New()}, UserID: userID, Type: models.NotificationInvitationReceived, Message: "You were invited", Read: true},
	}

	suite.mockRepo.EXPECT().GetByUserID(userID, 20, 0).Return(stored, int64(2), nil)

	result, err := suite.notificationService.ListForUser(userID, 1, 20)

	suite.Require().NoError(err)
	suite.Require().Len(result.Notifications, 2)
	assert.Equal(suite.T(), models.NotificationPollConcluded, result.Notifications[0].Type)
	assert.False(suite.T(), result.Notifications[0].Read)
	assert.True(suite.T(), result.Notifications[1].Read)
}

func (suite *NotificationServiceTestSuite) TestMarkAllRead() {
	userID := uuid.New()
	suite.mockRepo.EXPECT().MarkAllRead(userID).Return(nil)

	err := suite.notificationService.MarkAllRead(userID)

	assert.NoError(suite.T(), err)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
