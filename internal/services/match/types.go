package match

import (
	"time"

	"github.com/KirkDiggler/touchline/internal/common/clock"
	"github.com/KirkDiggler/touchline/internal/common/uuid"
	"github.com/KirkDiggler/touchline/internal/metrics"
	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/KirkDiggler/touchline/internal/repositories/history"
	"github.com/KirkDiggler/touchline/internal/repositories/snapshot"
	"github.com/sirupsen/logrus"
)

// Defaults applied by New when the config leaves a value unset
const (
	DefaultSquadSize          = 18
	DefaultStartingOnField    = 13
	DefaultLockSignalDuration = 2 * time.Second
	DefaultPersistTimeout     = 2 * time.Second
)

// Config holds configuration for the match service
type Config struct {
	// SquadSize is the number of roster slots a new match gets
	SquadSize int

	// StartingOnField is how many of the first slots start on the field
	StartingOnField int

	// LockSignalDuration is how long a rejected stat keeps the locked signal raised
	LockSignalDuration time.Duration

	// PersistTimeout bounds each snapshot save
	PersistTimeout time.Duration

	// Weights overrides the default impact weights when set
	Weights *metrics.Weights

	// Repository dependencies
	SnapshotRepo snapshot.Repository
	HistoryRepo  history.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        logrus.FieldLogger
}

// Observer receives a copy of the match state after every change
type Observer func(state *models.MatchState)

// SquadSelection pre-fills a roster slot from an external squad list
type SquadSelection struct {
	ExternalID   string
	Name         string
	JerseyNumber string
}

// BeginMatchInput contains parameters for starting a match
type BeginMatchInput struct {
	TeamName     string
	OpponentName string

	// Selections are matched to roster slots by jersey number
	Selections []SquadSelection
}

// BeginMatchOutput contains the new match
type BeginMatchOutput struct {
	State *models.MatchState

	// Unmatched lists selections whose jersey number matched no free slot
	Unmatched []SquadSelection
}

// CheckResumeInput contains parameters for checking for an interrupted match
type CheckResumeInput struct{}

// CheckResumeOutput describes the match that can be resumed, if any
type CheckResumeOutput struct {
	Available    bool
	MatchID      string
	TeamName     string
	OpponentName string
	MatchSeconds int
	Period       models.Period
	SavedAt      time.Time
}

// ResumeMatchInput contains parameters for resuming a match
type ResumeMatchInput struct{}

// ResumeMatchOutput contains the restored match
type ResumeMatchOutput struct {
	State *models.MatchState
}

// GetStateInput contains parameters for reading the match state
type GetStateInput struct{}

// PendingContext is a stat waiting for location and reason
type PendingContext struct {
	PlayerID string
	Stat     models.StatKind
	Delta    int
}

// GetStateOutput contains the match state and transient signals
type GetStateOutput struct {
	// State is nil when no match has been started
	State *models.MatchState

	// Locked is raised for a short while after a stat was rejected on a stopped clock
	Locked bool

	// Pending is set while a stat waits for context
	Pending *PendingContext
}

// GetMetricsInput contains parameters for computing match metrics
type GetMetricsInput struct{}

// GetMetricsOutput contains the computed metrics
type GetMetricsOutput struct {
	Summary metrics.Summary
}

// GetTimelineInput filters the event log
type GetTimelineInput struct {
	// Types keeps only entries of these types when not empty
	Types []models.LogEntryType

	// PlayerID keeps only entries for this player when set
	PlayerID string
}

// GetTimelineOutput contains the ordered entries
type GetTimelineOutput struct {
	Entries []*models.GameLogEntry
}

// StartClockInput contains parameters for starting the clock
type StartClockInput struct{}

// StartClockOutput contains the clock state
type StartClockOutput struct {
	IsRunning bool
}

// StopClockInput contains parameters for stopping the clock
type StopClockInput struct{}

// StopClockOutput contains the clock state
type StopClockOutput struct {
	IsRunning bool
}

// TickInput contains parameters for a clock tick
type TickInput struct{}

// TickOutput reports whether the tick advanced the clock
type TickOutput struct {
	Ticked       bool
	MatchSeconds int
}

// ApplyStatDeltaInput contains parameters for changing a stat
type ApplyStatDeltaInput struct {
	PlayerID string
	Stat     models.StatKind
	Delta    int

	// Preauthorized bypasses the stopped clock guard
	Preauthorized bool

	// SkipLog applies the change without a log entry
	SkipLog bool
}

// ApplyStatDeltaOutput contains the result of changing a stat
type ApplyStatDeltaOutput struct {
	// Applied is true when the stat value changed
	Applied bool

	// Value is the stat value after the change
	Value int

	// Locked is true when the change was rejected because the clock is stopped
	Locked bool

	// NeedsContext is true when the change was parked until context is captured
	NeedsContext bool

	// Entry is the log entry the change produced, if any
	Entry *models.GameLogEntry
}

// ConfirmStatContextInput contains the context for a parked stat
type ConfirmStatContextInput struct {
	Position *models.FieldPosition
	Reason   string
	Location string
}

// SkipStatContextInput contains parameters for applying a parked stat without context
type SkipStatContextInput struct{}

// ConfirmStatContextOutput contains the result of applying a parked stat
type ConfirmStatContextOutput struct {
	PlayerID string
	Stat     models.StatKind
	Value    int
	Entry    *models.GameLogEntry
}

// CancelStatContextInput contains parameters for discarding a parked stat
type CancelStatContextInput struct{}

// CancelStatContextOutput reports whether anything was discarded
type CancelStatContextOutput struct {
	Cancelled bool
}

// RecordBigPlayInput contains parameters for logging a big play
type RecordBigPlayInput struct {
	PlayerID string
	Stat     models.StatKind
	Position *models.FieldPosition
	Reason   string
	Location string
}

// RecordBigPlayOutput contains the produced entry
type RecordBigPlayOutput struct {
	Value int
	Entry *models.GameLogEntry
}

// IssueCardInput contains parameters for carding a player
type IssueCardInput struct {
	PlayerID string
	Card     models.CardStatus
	Reason   string
}

// IssueCardOutput contains the carded player and the log entry
type IssueCardOutput struct {
	Player *models.Player
	Entry  *models.GameLogEntry
}

// ClearCardInput contains parameters for clearing a yellow card
type ClearCardInput struct {
	PlayerID string
}

// ClearCardOutput reports whether a card was cleared
type ClearCardOutput struct {
	Cleared bool
	Player  *models.Player
}

// OverrideCardInput contains parameters for correcting a card
type OverrideCardInput struct {
	PlayerID string
	Card     models.CardStatus
}

// OverrideCardOutput contains the corrected player
type OverrideCardOutput struct {
	Player *models.Player
}

// EligibleForCardInput contains parameters for listing cardable players
type EligibleForCardInput struct{}

// EligibleForCardOutput lists players who have not been sent off
type EligibleForCardOutput struct {
	Players []*models.Player
}

// ToggleFieldStatusInput contains parameters for substituting a player
type ToggleFieldStatusInput struct {
	PlayerID string
}

// ToggleFieldStatusOutput contains the substituted player and log entry
type ToggleFieldStatusOutput struct {
	Player *models.Player
	Entry  *models.GameLogEntry
}

// UpdatePlayerDetailsInput edits a roster slot; nil fields are left alone
type UpdatePlayerDetailsInput struct {
	PlayerID     string
	Name         *string
	JerseyNumber *string
}

// UpdatePlayerDetailsOutput contains the edited player
type UpdatePlayerDetailsOutput struct {
	Player *models.Player
}

// CompleteSetInput contains parameters for a completed set
type CompleteSetInput struct{}

// FailSetInput contains parameters for an uncompleted set
type FailSetInput struct{}

// SetOutput contains the set counters
type SetOutput struct {
	// Applied is false when the clock was stopped
	Applied       bool
	CompletedSets int
	TotalSets     int
}

// AdjustScoreInput contains a score change
type AdjustScoreInput struct {
	Delta int
}

// AdjustScoreOutput contains the adjusted value
type AdjustScoreOutput struct {
	Value int
	Score metrics.MatchScore
}

// RequestEndPeriodInput contains parameters for requesting the end of a period
type RequestEndPeriodInput struct{}

// ConfirmEndPeriodInput contains parameters for confirming the end of a period
type ConfirmEndPeriodInput struct{}

// CancelEndPeriodInput contains parameters for cancelling the end of a period
type CancelEndPeriodInput struct{}

// EndPeriodOutput contains the period and status after the transition
type EndPeriodOutput struct {
	Period models.Period
	Status models.MatchStatus
}

// FinishMatchInput contains parameters for finishing a match
type FinishMatchInput struct {
	// Votes is nil when voting was skipped
	Votes *models.Votes
}

// FinishMatchOutput contains the record handed to history
type FinishMatchOutput struct {
	Record *models.MatchRecord
}

// DiscardMatchInput contains parameters for discarding a match
type DiscardMatchInput struct{}

// DiscardMatchOutput reports whether an in-memory match was discarded
type DiscardMatchOutput struct {
	Discarded bool
}
