package match

// MatchError is a custom error type for match tracking errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoActiveMatch      MatchError = "no active match"
	ErrMatchInProgress    MatchError = "a match is already in progress"
	ErrNoSnapshot         MatchError = "no match available to resume"
	ErrInvalidMatchState  MatchError = "invalid match state"
	ErrPlayerNotFound     MatchError = "player not found"
	ErrNoPlayerSelected   MatchError = "no player selected"
	ErrUnknownStat        MatchError = "unknown stat kind"
	ErrNotBigPlay         MatchError = "stat kind is not a big play"
	ErrNoPendingContext   MatchError = "no stat is waiting for context"
	ErrInvalidPosition    MatchError = "field position must be within 0-100 on both axes"
	ErrInvalidCard        MatchError = "invalid card"
	ErrPlayerRedCarded    MatchError = "player has been sent off"
	ErrInvalidVotes       MatchError = "votes must name three different players from the roster"
	ErrNilConfig          MatchError = "config cannot be nil"
	ErrNilSnapshotRepo    MatchError = "snapshot repository cannot be nil"
	ErrNilHistoryRepo     MatchError = "history repository cannot be nil"
	ErrNilClock           MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator   MatchError = "UUID generator cannot be nil"
	ErrInvalidSquadConfig MatchError = "starting on-field count cannot exceed squad size"
)
