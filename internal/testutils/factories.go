package testutils

import (
	"encoding/json"
	"time"

	"hackathon-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// HackathonFactory provides methods to create test Hackathon data
type HackathonFactory struct{}

// NewHackathonFactory creates a new HackathonFactory
func NewHackathonFactory() *HackathonFactory {
	return &HackathonFactory{}
}

// Create creates a test Hackathon with default values. The event runs for
// a week starting now, with the submission window open for the whole event.
func (f *HackathonFactory) Create() *models.Hackathon {
	now := time.Now()
	statements, _ := json.Marshal([]models.ProblemStatement{
		{Track: "AI/ML", Description: "Build something with machine learning", Difficulty: models.DifficultyHard},
		{Track: "Web", Description: "Build a web application", Difficulty: models.DifficultyMedium},
		{Track: "Mobile", Description: "Build a mobile application", Difficulty: models.DifficultyEasy},
	})

	return &models.Hackathon{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:               "Test Hackathon",
		Description:         "A test hackathon for testing purposes",
		StartDate:           now.Add(-time.Hour),
		EndDate:             now.Add(7 * 24 * time.Hour),
		SubmissionStartDate: now.Add(-time.Hour),
		SubmissionEndDate:   now.Add(7 * 24 * time.Hour),
		TeamCreationMode:    models.TeamCreationModeBoth,
		MinTeamSize:         1,
		MaxTeamSize:         5,
		ProblemStatements:   statements,
	}
}

// WithTitle sets a custom title for the hackathon
func (f *HackathonFactory) WithTitle(title string) *models.Hackathon {
	hackathon := f.Create()
	hackathon.Title = title
	return hackathon
}

// WithTracks replaces the configured problem statements
func (f *HackathonFactory) WithTracks(tracks ...string) *models.Hackathon {
	hackathon := f.Create()
	statements := make([]models.ProblemStatement, 0, len(tracks))
	for _, track := range tracks {
		statements = append(statements, models.ProblemStatement{
			Track:      track,
			Difficulty: models.DifficultyMedium,
		})
	}
	raw, _ := json.Marshal(statements)
	hackathon.ProblemStatements = raw
	return hackathon
}

// WithSubmissionWindow sets the submission window bounds
func (f *HackathonFactory) WithSubmissionWindow(start, end time.Time) *models.Hackathon {
	hackathon := f.Create()
	hackathon.SubmissionStartDate = start
	hackathon.SubmissionEndDate = end
	return hackathon
}

// WithTeamCreationMode sets who may create teams
func (f *HackathonFactory) WithTeamCreationMode(mode models.TeamCreationMode) *models.Hackathon {
	hackathon := f.Create()
	hackathon.TeamCreationMode = mode
	return hackathon
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     "user-" + id.String()[:8] + "@test.com",
		FirstName: "Test",
		LastName:  "User",
		Role:      models.UserRoleMember,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithTeam sets the team ID for the user
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		HackathonID: uuid.New(),
		Name:        "test-team-" + id.String()[:8],
		LeaderID:    uuid.New(),
	}
}

// WithHackathon sets the hackathon ID for the team
func (f *TeamFactory) WithHackathon(hackathonID uuid.UUID) *models.Team {
	team := f.Create()
	team.HackathonID = hackathonID
	return team
}

// WithLeader sets the leader ID for the team
func (f *TeamFactory) WithLeader(leaderID uuid.UUID) *models.Team {
	team := f.Create()
	team.LeaderID = leaderID
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithPoll encodes the given poll document onto the team
func (f *TeamFactory) WithPoll(poll *models.Poll) *models.Team {
	team := f.Create()
	_ = team.SetPollState(poll)
	return team
}

// InvitationFactory provides methods to create test Invitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending test Invitation with default values
func (f *InvitationFactory) Create() *models.Invitation {
	return &models.Invitation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:     uuid.New(),
		FromUserID: uuid.New(),
		ToUserID:   uuid.New(),
		Status:     models.InvitationStatusPending,
	}
}

// WithTeam sets the team ID for the invitation
func (f *InvitationFactory) WithTeam(teamID uuid.UUID) *models.Invitation {
	invitation := f.Create()
	invitation.TeamID = teamID
	return invitation
}

// WithUsers sets the inviter and invitee
func (f *InvitationFactory) WithUsers(from, to uuid.UUID) *models.Invitation {
	invitation := f.Create()
	invitation.FromUserID = from
	invitation.ToUserID = to
	return invitation
}

// FactorySet provides access to all factories
type FactorySet struct {
	Hackathon  *HackathonFactory
	User       *UserFactory
	Team       *TeamFactory
	Invitation *InvitationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Hackathon:  NewHackathonFactory(),
		User:       NewUserFactory(),
		Team:       NewTeamFactory(),
		Invitation: NewInvitationFactory(),
	}
}

// CreateTeamWithMembers builds a hackathon, a team in it, and the given
// number of users where the first one is the leader. Nothing is persisted.
func (fs *FactorySet) CreateTeamWithMembers(memberCount int) (*models.Hackathon, *models.Team, []*models.User) {
	hackathon := fs.Hackathon.Create()

	leader := fs.User.WithRole(models.UserRoleLeader)
	team := fs.Team.WithHackathon(hackathon.ID)
	team.LeaderID = leader.ID
	leader.TeamID = &team.ID

	users := []*models.User{leader}
	for i := 1; i < memberCount; i++ {
		member := fs.User.WithTeam(team.ID)
		users = append(users, member)
	}
	team.Members = make([]models.User, 0, len(users))
	for _, u := range users {
		team.Members = append(team.Members, *u)
	}

	return hackathon, team, users
}
