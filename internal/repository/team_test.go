//go:build integration

package repository_test

import (
	"testing"
	"time"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite exercises team persistence against a real Postgres
type TeamRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo      *repository.TeamRepository
	userRepo  *repository.UserRepository
	factories *testutils.FactorySet
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	base := testutils.SetupTestSuite(t)
	s := &TeamRepositoryTestSuite{
		BaseTestSuite: base,
		repo:          repository.NewTeamRepository(base.DB),
		userRepo:      repository.NewUserRepository(base.DB),
		factories:     testutils.NewFactorySet(),
	}
	suite.Run(t, s)
}

// seedTeam persists a hackathon and a team in it, returning the team
func (s *TeamRepositoryTestSuite) seedTeam() *models.Team {
	hackathon := s.factories.Hackathon.Create()
	s.Require().NoError(s.DB.Create(hackathon).Error)

	team := s.factories.Team.WithHackathon(hackathon.ID)
	s.Require().NoError(s.repo.Create(team))
	return team
}

func (s *TeamRepositoryTestSuite) TestCreateAndGetByID() {
	team := s.seedTeam()

	got, err := s.repo.GetByID(team.ID)
	s.Require().NoError(err)
	assert.Equal(s.T(), team.Name, got.Name)
	assert.Equal(s.T(), 0, got.PollVersion)
}

func (s *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	team := s.factories.Team.Create()

	_, err := s.repo.GetByID(team.ID)
	assert.ErrorIs(s.T(), err, gorm.ErrRecordNotFound)
}

func (s *TeamRepositoryTestSuite) TestCreateWithLeader() {
	hackathon := s.factories.Hackathon.Create()
	s.Require().NoError(s.DB.Create(hackathon).Error)

	leader := s.factories.User.Create()
	s.Require().NoError(s.userRepo.Create(leader))

	team := s.factories.Team.WithHackathon(hackathon.ID)
	team.LeaderID = leader.ID
	s.Require().NoError(s.repo.CreateWithLeader(team, leader))

	got, err := s.repo.GetWithMembers(team.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Members, 1)
	assert.Equal(s.T(), leader.ID, got.Members[0].ID)

	persisted, err := s.userRepo.GetByID(leader.ID)
	s.Require().NoError(err)
	s.Require().NotNil(persisted.TeamID)
	assert.Equal(s.T(), team.ID, *persisted.TeamID)
}

func (s *TeamRepositoryTestSuite) TestCreateWithLeaderRollsBackOnLeaderFailure() {
	hackathon := s.factories.Hackathon.Create()
	s.Require().NoError(s.DB.Create(hackathon).Error)

	other := s.factories.User.Create()
	s.Require().NoError(s.userRepo.Create(other))
	leader := s.factories.User.Create()
	s.Require().NoError(s.userRepo.Create(leader))

	// duplicate email makes the leader write violate the unique index,
	// which must take the team insert down with it
	leader.Email = other.Email

	team := s.factories.Team.WithHackathon(hackathon.ID)
	team.LeaderID = leader.ID
	assert.Error(s.T(), s.repo.CreateWithLeader(team, leader))

	_, err := s.repo.GetByName(hackathon.ID, team.Name)
	assert.ErrorIs(s.T(), err, gorm.ErrRecordNotFound)
}

func (s *TeamRepositoryTestSuite) TestUniqueNamePerHackathon() {
	team := s.seedTeam()

	duplicate := s.factories.Team.WithHackathon(team.HackathonID)
	duplicate.Name = team.Name
	assert.Error(s.T(), s.repo.Create(duplicate))

	// the same name in a different hackathon is fine
	otherHackathon := s.factories.Hackathon.Create()
	s.Require().NoError(s.DB.Create(otherHackathon).Error)
	elsewhere := s.factories.Team.WithHackathon(otherHackathon.ID)
	elsewhere.Name = team.Name
	assert.NoError(s.T(), s.repo.Create(elsewhere))
}

func (s *TeamRepositoryTestSuite) TestGetByName() {
	team := s.seedTeam()

	got, err := s.repo.GetByName(team.HackathonID, team.Name)
	s.Require().NoError(err)
	assert.Equal(s.T(), team.ID, got.ID)

	_, err = s.repo.GetByName(team.HackathonID, "no-such-team")
	assert.ErrorIs(s.T(), err, gorm.ErrRecordNotFound)
}

func (s *TeamRepositoryTestSuite) TestGetWithMembers() {
	team := s.seedTeam()

	member := s.factories.User.WithTeam(team.ID)
	s.Require().NoError(s.userRepo.Create(member))

	got, err := s.repo.GetWithMembers(team.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Members, 1)
	assert.Equal(s.T(), member.ID, got.Members[0].ID)
}

func (s *TeamRepositoryTestSuite) TestUpdatePollCAS() {
	team := s.seedTeam()

	poll := &models.Poll{
		IsActive:          true,
		ProblemStatements: []string{"AI/ML", "Web"},
		Votes:             map[string]string{},
		StartedAt:         time.Now().UTC(),
		EndsAt:            time.Now().UTC().Add(30 * time.Minute),
	}
	s.Require().NoError(team.SetPollState(poll))

	ok, err := s.repo.UpdatePollCAS(team.ID, 0, team.Poll, nil)
	s.Require().NoError(err)
	assert.True(s.T(), ok)

	got, err := s.repo.GetByID(team.ID)
	s.Require().NoError(err)
	assert.Equal(s.T(), 1, got.PollVersion)

	state, err := got.PollState()
	s.Require().NoError(err)
	s.Require().NotNil(state)
	assert.True(s.T(), state.IsActive)
	assert.Equal(s.T(), []string{"AI/ML", "Web"}, state.ProblemStatements)
}

func (s *TeamRepositoryTestSuite) TestUpdatePollCASVersionMismatch() {
	team := s.seedTeam()

	poll := &models.Poll{IsActive: true, ProblemStatements: []string{"AI/ML"}}
	s.Require().NoError(team.SetPollState(poll))

	// stale expected version loses the race
	ok, err := s.repo.UpdatePollCAS(team.ID, 3, team.Poll, nil)
	s.Require().NoError(err)
	assert.False(s.T(), ok)

	got, err := s.repo.GetByID(team.ID)
	s.Require().NoError(err)
	assert.Equal(s.T(), 0, got.PollVersion)
	assert.Empty(s.T(), got.Poll)
}

func (s *TeamRepositoryTestSuite) TestUpdatePollCASWritesSelection() {
	team := s.seedTeam()

	poll := &models.Poll{IsActive: false, ProblemStatements: []string{"AI/ML"}}
	s.Require().NoError(team.SetPollState(poll))

	winner := "AI/ML"
	ok, err := s.repo.UpdatePollCAS(team.ID, 0, team.Poll, &winner)
	s.Require().NoError(err)
	assert.True(s.T(), ok)

	got, err := s.repo.GetByID(team.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.SelectedProblemStatement)
	assert.Equal(s.T(), "AI/ML", *got.SelectedProblemStatement)
}

func (s *TeamRepositoryTestSuite) TestUpdateSubmissionOverwrites() {
	team := s.seedTeam()

	first := time.Now().UTC().Truncate(time.Second)
	s.Require().NoError(s.repo.UpdateSubmission(team.ID, "https://example.com/v1", first))

	second := first.Add(time.Hour)
	s.Require().NoError(s.repo.UpdateSubmission(team.ID, "https://example.com/v2", second))

	got, err := s.repo.GetByID(team.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.SubmissionLink)
	assert.Equal(s.T(), "https://example.com/v2", *got.SubmissionLink)
	s.Require().NotNil(got.SubmittedAt)
	assert.WithinDuration(s.T(), second, *got.SubmittedAt, time.Second)
}

func (s *TeamRepositoryTestSuite) TestGetByHackathonIDPagination() {
	hackathon := s.factories.Hackathon.Create()
	s.Require().NoError(s.DB.Create(hackathon).Error)

	for i := 0; i < 3; i++ {
		team := s.factories.Team.WithHackathon(hackathon.ID)
		s.Require().NoError(s.repo.Create(team))
	}

	teams, total, err := s.repo.GetByHackathonID(hackathon.ID, 2, 0)
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(3), total)
	assert.Len(s.T(), teams, 2)

	teams, total, err = s.repo.GetByHackathonID(hackathon.ID, 2, 2)
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(3), total)
	assert.Len(s.T(), teams, 1)
}

func (s *TeamRepositoryTestSuite) TestGetMemberCount() {
	team := s.seedTeam()

	for i := 0; i < 2; i++ {
		member := s.factories.User.WithTeam(team.ID)
		s.Require().NoError(s.userRepo.Create(member))
	}

	count, err := s.repo.GetMemberCount(team.ID)
	s.Require().NoError(err)
	assert.Equal(s.T(), int64(2), count)
}

func (s *TeamRepositoryTestSuite) TestDelete() {
	team := s.seedTeam()

	s.Require().NoError(s.repo.Delete(team.ID))

	_, err := s.repo.GetByID(team.ID)
	assert.ErrorIs(s.T(), err, gorm.ErrRecordNotFound)
}
