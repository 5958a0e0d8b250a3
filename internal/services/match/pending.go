package match

import (
	"context"

	"github.com/KirkDiggler/touchline/internal/models"
)

// contextFlow is the state of the two-phase stat entry. It is never persisted.
type contextFlow interface {
	isContextFlow()
}

// flowIdle means no stat is waiting for context
type flowIdle struct{}

// flowAwaitingContext holds a stat change that has not been applied yet
type flowAwaitingContext struct {
	playerID string
	stat     models.StatKind
	delta    int
}

func (flowIdle) isContextFlow()            {}
func (flowAwaitingContext) isContextFlow() {}

// ConfirmStatContext applies the parked stat with the captured context
func (s *service) ConfirmStatContext(ctx context.Context, input *ConfirmStatContextInput) (*ConfirmStatContextOutput, error) {
	if input.Position != nil && !input.Position.Valid() {
		return nil, ErrInvalidPosition
	}

	s.lock()
	defer s.unlock()

	return s.resolvePending(ctx, entryDetails{
		reason:   input.Reason,
		location: input.Location,
		position: input.Position,
	})
}

// SkipStatContext applies the parked stat without location or reason
func (s *service) SkipStatContext(ctx context.Context, input *SkipStatContextInput) (*ConfirmStatContextOutput, error) {
	s.lock()
	defer s.unlock()

	return s.resolvePending(ctx, entryDetails{})
}

// CancelStatContext drops the parked stat, leaving the match untouched
func (s *service) CancelStatContext(ctx context.Context, input *CancelStatContextInput) (*CancelStatContextOutput, error) {
	s.lock()
	defer s.unlock()

	if _, ok := s.flow.(flowAwaitingContext); !ok {
		return &CancelStatContextOutput{}, nil
	}
	s.flow = flowIdle{}
	return &CancelStatContextOutput{Cancelled: true}, nil
}

// resolvePending applies the parked stat. Called with mu held.
func (s *service) resolvePending(ctx context.Context, details entryDetails) (*ConfirmStatContextOutput, error) {
	pending, ok := s.flow.(flowAwaitingContext)
	if !ok {
		return nil, ErrNoPendingContext
	}
	if _, err := s.activeMatch(); err != nil {
		s.flow = flowIdle{}
		return nil, err
	}
	player, err := s.findPlayer(pending.playerID)
	if err != nil {
		s.flow = flowIdle{}
		return nil, err
	}

	details.stat = pending.stat
	value, entry := s.applyStat(player, pending.stat, pending.delta, true, details)
	s.flow = flowIdle{}
	s.commit(ctx)

	return &ConfirmStatContextOutput{
		PlayerID: player.ID,
		Stat:     pending.stat,
		Value:    value,
		Entry:    entry.Clone(),
	}, nil
}
