package models

import "fmt"

// LogEntryType classifies an event log entry
type LogEntryType string

const (
	LogEntryTry          LogEntryType = "try"
	LogEntryPenalty      LogEntryType = "penalty"
	LogEntryError        LogEntryType = "error"
	LogEntryYellowCard   LogEntryType = "yellow_card"
	LogEntryRedCard      LogEntryType = "red_card"
	LogEntrySubstitution LogEntryType = "substitution"
	LogEntryBigPlay      LogEntryType = "big_play"
	LogEntryOther        LogEntryType = "other"
)

// Substitution directions recorded as the entry reason
const (
	SubstitutionOn  = "on"
	SubstitutionOff = "off"
)

// FieldPosition is a point on the field in percentage space
type FieldPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Valid reports whether both axes fall within 0-100
func (p FieldPosition) Valid() bool {
	return p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100
}

// GameLogEntry records something notable that happened during the match.
// Entries are immutable once appended to the log.
type GameLogEntry struct {
	// ID is the unique identifier for the entry
	ID string `json:"id"`

	// Sequence is a monotonic creation counter within the match
	Sequence int64 `json:"sequence"`

	// MatchSecond is the match clock value when the entry was created
	MatchSecond int `json:"match_second"`

	// FormattedTime is MatchSecond rendered as MM:SS
	FormattedTime string `json:"formatted_time"`

	// PlayerID is the roster slot the entry is about
	PlayerID string `json:"player_id"`

	// PlayerName and PlayerNumber are captured at creation so later edits don't rewrite history
	PlayerName   string `json:"player_name"`
	PlayerNumber string `json:"player_number"`

	Type   LogEntryType `json:"type"`
	Period Period       `json:"period"`

	// Stat is the stat kind behind the entry, if any
	Stat StatKind `json:"stat,omitempty"`

	Reason      string         `json:"reason,omitempty"`
	Location    string         `json:"location,omitempty"`
	ImpactValue *int           `json:"impact_value,omitempty"`
	Position    *FieldPosition `json:"position,omitempty"`
}

// Clone returns a deep copy of the entry
func (e *GameLogEntry) Clone() *GameLogEntry {
	if e == nil {
		return nil
	}
	out := *e
	out.ImpactValue = cloneInt(e.ImpactValue)
	if e.Position != nil {
		pos := *e.Position
		out.Position = &pos
	}
	return &out
}

// FormatMatchTime renders match seconds as MM:SS
func FormatMatchTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
