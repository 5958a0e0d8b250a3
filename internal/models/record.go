package models

import (
	"time"
)

// MatchResult is the outcome of a finished match from the home team's view
type MatchResult string

const (
	MatchResultWin  MatchResult = "win"
	MatchResultLoss MatchResult = "loss"
	MatchResultDraw MatchResult = "draw"
)

// ResultFor compares two scores, a draw on equality
func ResultFor(home, away int) MatchResult {
	switch {
	case home > away:
		return MatchResultWin
	case home < away:
		return MatchResultLoss
	default:
		return MatchResultDraw
	}
}

// Votes records the player of the match voting tiers
type Votes struct {
	ThreePointsID string `json:"three_points_id"`
	TwoPointsID   string `json:"two_points_id"`
	OnePointID    string `json:"one_point_id"`
}

// MatchData is the full match detail embedded in a record
type MatchData struct {
	Roster          []*Player       `json:"roster"`
	EventLog        []*GameLogEntry `json:"event_log"`
	MatchSeconds    int             `json:"match_seconds"`
	Period          Period          `json:"period"`
	CompletedSets   int             `json:"completed_sets"`
	TotalSets       int             `json:"total_sets"`
	OpponentScore   int             `json:"opponent_score"`
	ScoreAdjustment int             `json:"score_adjustment"`
}

// MatchRecord is the finished match handed to history storage
type MatchRecord struct {
	// ID is the match ID the record was produced from
	ID string `json:"id"`

	// Date is when the match was finished
	Date time.Time `json:"date"`

	TeamName     string `json:"team_name"`
	OpponentName string `json:"opponent_name"`

	// FinalScore is rendered as "H - A"
	FinalScore string      `json:"final_score"`
	Result     MatchResult `json:"result"`

	Data MatchData `json:"data"`

	// Voting is nil when votes were skipped
	Voting *Votes `json:"voting,omitempty"`
}
