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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	httpSuite       *testutils.HTTPTestSuite
	ctrl            *gomock.Controller
	mockTeamService *mocks.MockTeamServiceInterface

	requesterID uuid.UUID
	hackathonID uuid.UUID
}

func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.requesterID = uuid.New()
	suite.hackathonID = uuid.New()

	handler := handlers.NewTeamHandler(suite.mockTeamService)
	suite.httpSuite = testutils.SetupHTTPTest()

	router := suite.httpSuite.Router
	router.Use(testutils.AuthStub(suite.requesterID, "member@test.com", models.UserRoleMember))
	router.POST("/teams", handler.CreateTeam)
	router.GET("/teams", handler.ListTeams)
	router.GET("/teams/:id", handler.GetTeam)
	router.DELETE("/teams/:id", handler.DeleteTeam)
	router.DELETE("/teams/:id/members/:user_id", handler.RemoveMember)
	router.GET("/hackathons/:id/teams", handler.ListTeamsByHackathon)
}

func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	teamID := uuid.New()
	suite.mockTeamService.EXPECT().
		Create(gomock.Any(), suite.requesterID, models.UserRoleMember).
		DoAndReturn(func(req *service.CreateTeamRequest, _ uuid.UUID, _ models.UserRole) (*service.TeamResponse, error) {
			assert.Equal(suite.T(), suite.hackathonID, req.HackathonID)
			assert.Equal(suite.T(), "query-crunchers", req.Name)
			return &service.TeamResponse{
				ID:          teamID,
				HackathonID: suite.hackathonID,
				Name:        req.Name,
				LeaderID:    suite.requesterID,
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/teams", map[string]interface{}{
		"hackathon_id": suite.hackathonID.String(),
		"name":         "query-crunchers",
	})

	var response service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), teamID, response.ID)
	assert.Equal(suite.T(), suite.requesterID, response.LeaderID)
}

func (suite *TeamHandlerTestSuite) TestCreateTeamDuplicateName() {
	suite.mockTeamService.EXPECT().
		Create(gomock.Any(), suite.requesterID, models.UserRoleMember).
		Return(nil, apperrors.ErrTeamExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/teams", map[string]interface{}{
		"hackathon_id": suite.hackathonID.String(),
		"name":         "query-crunchers",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "")
}

func (suite *TeamHandlerTestSuite) TestCreateTeamCreationClosed() {
	suite.mockTeamService.EXPECT().
		Create(gomock.Any(), suite.requesterID, models.UserRoleMember).
		Return(nil, apperrors.ErrTeamCreationClosed)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/teams", map[string]interface{}{
		"hackathon_id": suite.hackathonID.String(),
		"name":         "query-crunchers",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "")
}

func (suite *TeamHandlerTestSuite) TestCreateTeamMalformedBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/teams", map[string]interface{}{
		"hackathon_id": "not-a-uuid",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *TeamHandlerTestSuite) TestGetTeam() {
	teamID := uuid.New()
	suite.mockTeamService.EXPECT().GetByID(teamID).Return(&service.TeamResponse{
		ID:   teamID,
		Name: "query-crunchers",
	}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/teams/"+teamID.String(), nil)

	var response service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "query-crunchers", response.Name)
}

func (suite *TeamHandlerTestSuite) TestGetTeamNotFound() {
	teamID := uuid.New()
	suite.mockTeamService.EXPECT().GetByID(teamID).Return(nil, apperrors.ErrTeamNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/teams/"+teamID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

func (suite *TeamHandlerTestSuite) TestListTeamsByHackathonQuery() {
	suite.mockTeamService.EXPECT().
		ListByHackathon(suite.hackathonID, 2, 10).
		Return(&service.TeamListResponse{Teams: []service.TeamResponse{}, Total: 0, Page: 2, PageSize: 10}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/teams?hackathon_id="+suite.hackathonID.String()+"&page=2&page_size=10", nil)

	var response service.TeamListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), 2, response.Page)
}

func (suite *TeamHandlerTestSuite) TestListTeamsInvalidHackathonID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/teams?hackathon_id=nope", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid hackathon ID")
}

func (suite *TeamHandlerTestSuite) TestListAllTeams() {
	suite.mockTeamService.EXPECT().
		ListAll(1, 20).
		Return(&service.TeamListResponse{
			Teams:    []service.TeamResponse{{Name: "a"}, {Name: "b"}},
			Total:    2,
			Page:     1,
			PageSize: 20,
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/teams", nil)

	var response service.TeamListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Teams, 2)
}

func (suite *TeamHandlerTestSuite) TestListTeamsByHackathonPath() {
	suite.mockTeamService.EXPECT().
		ListByHackathon(suite.hackathonID, 1, 20).
		Return(&service.TeamListResponse{Teams: []service.TeamResponse{}, Page: 1, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/hackathons/"+suite.hackathonID.String()+"/teams", nil)

	testutils.AssertSuccessResponse(suite.T(), recorder, http.StatusOK)
}

func (suite *TeamHandlerTestSuite) TestRemoveMember() {
	teamID := uuid.New()
	memberID := uuid.New()
	suite.mockTeamService.EXPECT().
		RemoveMember(teamID, memberID, suite.requesterID, models.UserRoleMember).
		Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete,
		"/teams/"+teamID.String()+"/members/"+memberID.String(), nil)

	var response map[string]string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "member removed from team", response["message"])
}

func (suite *TeamHandlerTestSuite) TestRemoveMemberNotLeader() {
	teamID := uuid.New()
	memberID := uuid.New()
	suite.mockTeamService.EXPECT().
		RemoveMember(teamID, memberID, suite.requesterID, models.UserRoleMember).
		Return(apperrors.ErrNotTeamLeader)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete,
		"/teams/"+teamID.String()+"/members/"+memberID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "")
}

func (suite *TeamHandlerTestSuite) TestRemoveMemberInvalidUserID() {
	teamID := uuid.New()

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete,
		"/teams/"+teamID.String()+"/members/nope", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid user_id")
}

func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	teamID := uuid.New()
	suite.mockTeamService.EXPECT().Delete(teamID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/teams/"+teamID.String(), nil)

	var response map[string]string
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), "team deleted successfully", response["message"])
}

func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
