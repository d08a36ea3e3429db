package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activePoll(tracks []string) *Poll {
	now := time.Now().UTC()
	return &Poll{
		IsActive:          true,
		ProblemStatements: tracks,
		Votes:             map[string]string{},
		StartedAt:         now,
		EndsAt:            now.Add(30 * time.Minute),
	}
}

func TestPollExpired(t *testing.T) {
	poll := activePoll([]string{"AI/ML"})
	now := time.Now().UTC()

	assert.False(t, poll.Expired(now))
	assert.False(t, poll.Expired(poll.EndsAt))
	assert.True(t, poll.Expired(poll.EndsAt.Add(time.Second)))
}

func TestPollAcceptingVotes(t *testing.T) {
	poll := activePoll([]string{"AI/ML"})
	now := time.Now().UTC()

	assert.True(t, poll.AcceptingVotes(now))

	poll.IsActive = false
	assert.False(t, poll.AcceptingVotes(now))

	poll.IsActive = true
	assert.False(t, poll.AcceptingVotes(poll.EndsAt.Add(time.Second)))
}

func TestPollVoteCountsInitializesAllTracks(t *testing.T) {
	poll := activePoll([]string{"AI/ML", "Web", "Mobile"})
	poll.Votes[uuid.NewString()] = "Web"

	counts := poll.VoteCounts()

	assert.Equal(t, map[string]int{"AI/ML": 0, "Web": 1, "Mobile": 0}, counts)
}

func TestPollVoteCountsLatestVotePerUser(t *testing.T) {
	poll := activePoll([]string{"AI/ML", "Web"})
	voter := uuid.NewString()
	poll.Votes[voter] = "AI/ML"
	poll.Votes[voter] = "Web"

	counts := poll.VoteCounts()

	assert.Equal(t, 0, counts["AI/ML"])
	assert.Equal(t, 1, counts["Web"])
}

func TestPollWinner(t *testing.T) {
	poll := activePoll([]string{"AI/ML", "Web"})
	poll.Votes[uuid.NewString()] = "Web"
	poll.Votes[uuid.NewString()] = "Web"
	poll.Votes[uuid.NewString()] = "AI/ML"

	assert.Equal(t, "Web", poll.Winner())
}

func TestPollWinnerTieResolvesToEarliestTrack(t *testing.T) {
	poll := activePoll([]string{"Mobile", "AI/ML", "Web"})
	poll.Votes[uuid.NewString()] = "Web"
	poll.Votes[uuid.NewString()] = "AI/ML"

	// AI/ML and Web tie with one vote each; AI/ML comes first in the
	// configured order.
	assert.Equal(t, "AI/ML", poll.Winner())
}

func TestPollWinnerZeroVotes(t *testing.T) {
	poll := activePoll([]string{"Mobile", "AI/ML"})

	assert.Equal(t, "Mobile", poll.Winner())
}

func TestPollWinnerNoTracks(t *testing.T) {
	poll := activePoll(nil)

	assert.Equal(t, "", poll.Winner())
}

func TestTeamPollStateRoundTrip(t *testing.T) {
	team := &Team{}

	state, err := team.PollState()
	require.NoError(t, err)
	assert.Nil(t, state)

	poll := activePoll([]string{"AI/ML"})
	require.NoError(t, team.SetPollState(poll))

	state, err = team.PollState()
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.True(t, state.IsActive)
	assert.Equal(t, []string{"AI/ML"}, state.ProblemStatements)
}

func TestHackathonSubmissionWindowInclusiveBounds(t *testing.T) {
	start := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	hackathon := &Hackathon{SubmissionStartDate: start, SubmissionEndDate: end}

	assert.False(t, hackathon.SubmissionWindowOpen(start.Add(-time.Second)))
	assert.True(t, hackathon.SubmissionWindowOpen(start))
	assert.True(t, hackathon.SubmissionWindowOpen(start.Add(time.Hour)))
	assert.True(t, hackathon.SubmissionWindowOpen(end))
	assert.False(t, hackathon.SubmissionWindowOpen(end.Add(time.Second)))
}
