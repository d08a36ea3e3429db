package models

import (
	"time"
)

// Poll is the embedded voting state of a team, stored as jsonb on the
// teams row. A team has at most one poll; a concluded poll stays on the
// row (is_active=false) until the next start overwrites it.
type Poll struct {
	IsActive          bool              `json:"is_active"`
	ProblemStatements []string          `json:"problem_statements"`
	Votes             map[string]string `json:"votes"` // user ID -> track
	StartedAt         time.Time         `json:"started_at"`
	EndsAt            time.Time         `json:"ends_at"`
}

// Expired reports whether the poll has passed its end time.
// Expiry is evaluated lazily at read/vote time; no timer runs.
func (p *Poll) Expired(now time.Time) bool {
	return now.After(p.EndsAt)
}

// AcceptingVotes reports whether a vote can still be recorded
func (p *Poll) AcceptingVotes(now time.Time) bool {
	return p.IsActive && !p.Expired(now)
}

// HasTrack reports whether the track was a candidate when the poll started
func (p *Poll) HasTrack(track string) bool {
	for _, t := range p.ProblemStatements {
		if t == track {
			return true
		}
	}
	return false
}

// VoteCounts tallies votes per track. Only the latest vote per user is
// stored, so each user contributes at most one count.
func (p *Poll) VoteCounts() map[string]int {
	counts := make(map[string]int, len(p.ProblemStatements))
	for _, track := range p.ProblemStatements {
		counts[track] = 0
	}
	for _, track := range p.Votes {
		counts[track]++
	}
	return counts
}

// Winner picks the track with the most votes. Ties resolve to the
// earliest candidate track in the poll's configured order, which keeps
// the outcome deterministic even though vote maps are unordered.
func (p *Poll) Winner() string {
	if len(p.ProblemStatements) == 0 {
		return ""
	}
	counts := p.VoteCounts()
	winner := p.ProblemStatements[0]
	best := counts[winner]
	for _, track := range p.ProblemStatements[1:] {
		if counts[track] > best {
			winner = track
			best = counts[track]
		}
	}
	return winner
}
