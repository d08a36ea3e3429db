package handlers_test

import (
	"net/http"
	"testing"

	"hackathon-portal-backend/internal/api/handlers"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/service"
	"hackathon-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PollHandlerTestSuite defines the test suite for PollHandler
type PollHandlerTestSuite struct {
	suite.Suite
	httpSuite       *testutils.HTTPTestSuite
	ctrl            *gomock.Controller
	mockPollService *mocks.MockPollServiceInterface

	teamID      uuid.UUID
	requesterID uuid.UUID
}

func (suite *PollHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPollService = mocks.NewMockPollServiceInterface(suite.ctrl)
	suite.teamID = uuid.New()
	suite.requesterID = uuid.New()

	handler := handlers.NewPollHandler(suite.mockPollService)
	suite.httpSuite = testutils.SetupHTTPTest()

	teams := suite.httpSuite.Router.Group("/teams")
	teams.Use(testutils.AuthStub(suite.requesterID, "leader@test.com", models.UserRoleLeader))
	teams.POST("/:id/poll/start", handler.StartPoll)
	teams.POST("/:id/poll/vote", handler.Vote)
	teams.POST("/:id/poll/conclude", handler.ConcludePoll)
	teams.GET("/:id/poll/status", handler.PollStatus)
}

func (suite *PollHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PollHandlerTestSuite) TestStartPoll() {
	suite.mockPollService.EXPECT().
		Start(suite.teamID, suite.requesterID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, req *service.StartPollRequest) (*service.PollStatusResponse, error) {
			assert.Equal(suite.T(), 30, req.DurationMinutes)
			return &service.PollStatusResponse{
				TeamID:     suite.teamID,
				PollActive: true,
				Tracks:     []string{"AI/ML", "Web"},
				VoteCounts: map[string]int{"AI/ML": 0, "Web": 0},
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/"+suite.teamID.String()+"/poll/start",
		map[string]interface{}{"duration_minutes": 30})

	var response service.PollStatusResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.True(suite.T(), response.PollActive)
	assert.Equal(suite.T(), []string{"AI/ML", "Web"}, response.Tracks)
}

func (suite *PollHandlerTestSuite) TestStartPollNotLeader() {
	suite.mockPollService.EXPECT().
		Start(suite.teamID, suite.requesterID, gomock.Any()).
		Return(nil, apperrors.ErrNotTeamLeader)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/"+suite.teamID.String()+"/poll/start",
		map[string]interface{}{"duration_minutes": 30})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "")
}

func (suite *PollHandlerTestSuite) TestStartPollAlreadyActive() {
	suite.mockPollService.EXPECT().
		Start(suite.teamID, suite.requesterID, gomock.Any()).
		Return(nil, apperrors.ErrPollAlreadyActive)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/"+suite.teamID.String()+"/poll/start",
		map[string]interface{}{"duration_minutes": 30})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

func (suite *PollHandlerTestSuite) TestStartPollInvalidTeamID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/not-a-uuid/poll/start",
		map[string]interface{}{"duration_minutes": 30})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid id")
}

func (suite *PollHandlerTestSuite) TestVote() {
	suite.mockPollService.EXPECT().
		Vote(suite.teamID, suite.requesterID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, req *service.VoteRequest) (*service.PollStatusResponse, error) {
			assert.Equal(suite.T(), "AI/ML", req.Track)
			return &service.PollStatusResponse{
				TeamID:     suite.teamID,
				PollActive: true,
				VoteCounts: map[string]int{"AI/ML": 1, "Web": 0},
				TotalVotes: 1,
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/"+suite.teamID.String()+"/poll/vote",
		map[string]interface{}{"track": "AI/ML"})

	var response service.PollStatusResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 1, response.TotalVotes)
}

func (suite *PollHandlerTestSuite) TestVoteExpiredPoll() {
	suite.mockPollService.EXPECT().
		Vote(suite.teamID, suite.requesterID, gomock.Any()).
		Return(nil, apperrors.ErrPollExpired)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/"+suite.teamID.String()+"/poll/vote",
		map[string]interface{}{"track": "AI/ML"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *PollHandlerTestSuite) TestConcludePoll() {
	suite.mockPollService.EXPECT().
		Conclude(suite.teamID, suite.requesterID).
		Return(&service.ConcludePollResponse{
			TeamID:                  suite.teamID,
			WinningProblemStatement: "AI/ML",
			VoteCounts:              map[string]int{"AI/ML": 2, "Web": 1},
			TotalVotes:              3,
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/"+suite.teamID.String()+"/poll/conclude", nil)

	var response service.ConcludePollResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "AI/ML", response.WinningProblemStatement)
	assert.Equal(suite.T(), 3, response.TotalVotes)
}

func (suite *PollHandlerTestSuite) TestConcludePollConcurrentUpdate() {
	suite.mockPollService.EXPECT().
		Conclude(suite.teamID, suite.requesterID).
		Return(nil, apperrors.ErrConcurrentPollUpdate)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/"+suite.teamID.String()+"/poll/conclude", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

func (suite *PollHandlerTestSuite) TestConcludePollLockedBySubmission() {
	suite.mockPollService.EXPECT().
		Conclude(suite.teamID, suite.requesterID).
		Return(nil, apperrors.ErrProblemStatementLocked)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/"+suite.teamID.String()+"/poll/conclude", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

func (suite *PollHandlerTestSuite) TestPollStatus() {
	suite.mockPollService.EXPECT().
		Status(suite.teamID, suite.requesterID).
		Return(&service.PollStatusResponse{TeamID: suite.teamID, PollActive: false}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/teams/"+suite.teamID.String()+"/poll/status", nil)

	var response service.PollStatusResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.False(suite.T(), response.PollActive)
}

func (suite *PollHandlerTestSuite) TestPollStatusNotMember() {
	suite.mockPollService.EXPECT().
		Status(suite.teamID, suite.requesterID).
		Return(nil, apperrors.ErrNotTeamMember)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/teams/"+suite.teamID.String()+"/poll/status", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "")
}

func TestPollHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PollHandlerTestSuite))
}

// PollValidationHTTPTestSuite runs the real PollService behind the
// handler to pin the status code for malformed poll input end to end.
type PollValidationHTTPTestSuite struct {
	suite.Suite
	httpSuite *testutils.HTTPTestSuite
	ctrl      *gomock.Controller

	teamID      uuid.UUID
	requesterID uuid.UUID
}

func (suite *PollValidationHTTPTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.teamID = uuid.New()
	suite.requesterID = uuid.New()

	pollService := service.NewPollService(
		mocks.NewMockTeamRepositoryInterface(suite.ctrl),
		mocks.NewMockHackathonRepositoryInterface(suite.ctrl),
		mocks.NewMockNotificationServiceInterface(suite.ctrl),
		validator.New(),
		1, 120,
	)
	handler := handlers.NewPollHandler(pollService)
	suite.httpSuite = testutils.SetupHTTPTest()

	teams := suite.httpSuite.Router.Group("/teams")
	teams.Use(testutils.AuthStub(suite.requesterID, "leader@test.com", models.UserRoleLeader))
	teams.POST("/:id/poll/start", handler.StartPoll)
	teams.POST("/:id/poll/vote", handler.Vote)
}

func (suite *PollValidationHTTPTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PollValidationHTTPTestSuite) TestStartPollZeroDuration() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/"+suite.teamID.String()+"/poll/start",
		map[string]interface{}{"duration_minutes": 0})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *PollValidationHTTPTestSuite) TestStartPollNegativeDuration() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/"+suite.teamID.String()+"/poll/start",
		map[string]interface{}{"duration_minutes": -5})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *PollValidationHTTPTestSuite) TestVoteEmptyTrack() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost,
		"/teams/"+suite.teamID.String()+"/poll/vote",
		map[string]interface{}{"track": ""})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func TestPollValidationHTTPTestSuite(t *testing.T) {
	suite.Run(t, new(PollValidationHTTPTestSuite))
}
