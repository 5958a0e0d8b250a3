package match

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/touchline/internal/services/match Service

import (
	"context"
)

// Service defines the live match tracking operations
type Service interface {
	// BeginMatch creates a fresh match with a seeded roster
	BeginMatch(ctx context.Context, input *BeginMatchInput) (*BeginMatchOutput, error)

	// CheckResume reports whether an interrupted match can be resumed
	CheckResume(ctx context.Context, input *CheckResumeInput) (*CheckResumeOutput, error)

	// ResumeMatch restores the interrupted match from its snapshot
	ResumeMatch(ctx context.Context, input *ResumeMatchInput) (*ResumeMatchOutput, error)

	// GetState returns a copy of the current match state
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// GetMetrics computes totals, leaders, impact and score
	GetMetrics(ctx context.Context, input *GetMetricsInput) (*GetMetricsOutput, error)

	// GetTimeline returns log entries oldest-first
	GetTimeline(ctx context.Context, input *GetTimelineInput) (*GetTimelineOutput, error)

	// StartClock starts the match clock
	StartClock(ctx context.Context, input *StartClockInput) (*StartClockOutput, error)

	// StopClock stops the match clock
	StopClock(ctx context.Context, input *StopClockInput) (*StopClockOutput, error)

	// Tick advances the match clock by one second if it is running
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// ApplyStatDelta changes a player's stat, possibly parking it until context is captured
	ApplyStatDelta(ctx context.Context, input *ApplyStatDeltaInput) (*ApplyStatDeltaOutput, error)

	// ConfirmStatContext applies the parked stat with a location and reason
	ConfirmStatContext(ctx context.Context, input *ConfirmStatContextInput) (*ConfirmStatContextOutput, error)

	// SkipStatContext applies the parked stat without context
	SkipStatContext(ctx context.Context, input *SkipStatContextInput) (*ConfirmStatContextOutput, error)

	// CancelStatContext throws the parked stat away
	CancelStatContext(ctx context.Context, input *CancelStatContextInput) (*CancelStatContextOutput, error)

	// RecordBigPlay logs a big play and counts it against the player
	RecordBigPlay(ctx context.Context, input *RecordBigPlayInput) (*RecordBigPlayOutput, error)

	// IssueCard shows a player a yellow or red card
	IssueCard(ctx context.Context, input *IssueCardInput) (*IssueCardOutput, error)

	// ClearCard clears a served yellow card
	ClearCard(ctx context.Context, input *ClearCardInput) (*ClearCardOutput, error)

	// OverrideCard corrects a card entered by mistake
	OverrideCard(ctx context.Context, input *OverrideCardInput) (*OverrideCardOutput, error)

	// EligibleForCard lists players who can still be carded
	EligibleForCard(ctx context.Context, input *EligibleForCardInput) (*EligibleForCardOutput, error)

	// ToggleFieldStatus substitutes a player on or off
	ToggleFieldStatus(ctx context.Context, input *ToggleFieldStatusInput) (*ToggleFieldStatusOutput, error)

	// UpdatePlayerDetails edits a roster slot's name or jersey number
	UpdatePlayerDetails(ctx context.Context, input *UpdatePlayerDetailsInput) (*UpdatePlayerDetailsOutput, error)

	// CompleteSet records a completed set while the clock runs
	CompleteSet(ctx context.Context, input *CompleteSetInput) (*SetOutput, error)

	// FailSet records an uncompleted set while the clock runs
	FailSet(ctx context.Context, input *FailSetInput) (*SetOutput, error)

	// AdjustOpponentScore changes the opponent score
	AdjustOpponentScore(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error)

	// AdjustHomeScore changes the manual home score adjustment
	AdjustHomeScore(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error)

	// RequestEndPeriod stops the clock and asks for confirmation to end the period
	RequestEndPeriod(ctx context.Context, input *RequestEndPeriodInput) (*EndPeriodOutput, error)

	// ConfirmEndPeriod moves to the second half or to voting
	ConfirmEndPeriod(ctx context.Context, input *ConfirmEndPeriodInput) (*EndPeriodOutput, error)

	// CancelEndPeriod returns to play without ending the period
	CancelEndPeriod(ctx context.Context, input *CancelEndPeriodInput) (*EndPeriodOutput, error)

	// FinishMatch hands the finished record to history and clears the snapshot
	FinishMatch(ctx context.Context, input *FinishMatchInput) (*FinishMatchOutput, error)

	// DiscardMatch throws the match away without a record
	DiscardMatch(ctx context.Context, input *DiscardMatchInput) (*DiscardMatchOutput, error)

	// Subscribe registers an observer notified with a copy of the state after every change
	Subscribe(observer Observer) (unsubscribe func())
}
