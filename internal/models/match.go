package models

import (
	"time"
)

// Period is the half of the match being played
type Period string

const (
	// PeriodFirst is the first half
	PeriodFirst Period = "1st"

	// PeriodSecond is the second half
	PeriodSecond Period = "2nd"
)

// MatchStatus represents where a match is in its lifecycle
type MatchStatus string

const (
	// MatchStatusInProgress indicates the match is being tracked
	MatchStatusInProgress MatchStatus = "in_progress"

	// MatchStatusAwaitingPeriodEnd indicates an end of period is waiting for confirmation
	MatchStatusAwaitingPeriodEnd MatchStatus = "awaiting_period_end"

	// MatchStatusVoting indicates play is over and player votes are being collected
	MatchStatusVoting MatchStatus = "voting"

	// MatchStatusFinished indicates the match record was handed to history
	MatchStatusFinished MatchStatus = "finished"

	// MatchStatusDiscarded indicates the match was thrown away without a record
	MatchStatusDiscarded MatchStatus = "discarded"
)

// IsActive returns true if the match can still be mutated
func (s MatchStatus) IsActive() bool {
	return s == MatchStatusInProgress || s == MatchStatusAwaitingPeriodEnd || s == MatchStatusVoting
}

// MatchState is the aggregate state of a live match
type MatchState struct {
	// ID is the unique identifier for the match
	ID string `json:"id"`

	TeamName     string `json:"team_name"`
	OpponentName string `json:"opponent_name"`

	// StartedAt is when the match was begun
	StartedAt time.Time `json:"started_at"`

	// Roster is the fixed size squad in slot order
	Roster []*Player `json:"roster"`

	// EventLog holds entries newest-first
	EventLog []*GameLogEntry `json:"event_log"`

	// NextSequence is the sequence number the next log entry receives
	NextSequence int64 `json:"next_sequence"`

	MatchSeconds int         `json:"match_seconds"`
	IsRunning    bool        `json:"is_running"`
	Period       Period      `json:"period"`
	Status       MatchStatus `json:"status"`

	// OpponentScore is edited directly and never negative
	OpponentScore int `json:"opponent_score"`

	// HomeScoreAdjustment reconciles scoring events that are not tracked as stats
	HomeScoreAdjustment int `json:"home_score_adjustment"`

	CompletedSets int `json:"completed_sets"`
	TotalSets     int `json:"total_sets"`
}

// FindPlayer returns the roster slot with the given ID
func (m *MatchState) FindPlayer(playerID string) (*Player, bool) {
	for _, p := range m.Roster {
		if p.ID == playerID {
			return p, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the match state
func (m *MatchState) Clone() *MatchState {
	if m == nil {
		return nil
	}
	out := *m
	out.Roster = make([]*Player, len(m.Roster))
	for i, p := range m.Roster {
		out.Roster[i] = p.Clone()
	}
	out.EventLog = make([]*GameLogEntry, len(m.EventLog))
	for i, e := range m.EventLog {
		out.EventLog[i] = e.Clone()
	}
	return &out
}

// Snapshot is the persisted form of a match used to resume after an interruption
type Snapshot struct {
	// Version is the snapshot format version
	Version int `json:"version"`

	// SavedAt is when the snapshot was written
	SavedAt time.Time `json:"saved_at"`

	// State is the full match state
	State *MatchState `json:"state"`
}

// SnapshotVersion is the current snapshot format version
const SnapshotVersion = 1
