package match

import (
	"context"

	"github.com/KirkDiggler/touchline/internal/models"
)

// StartClock starts the match clock. Starting a running clock is a no-op.
func (s *service) StartClock(ctx context.Context, input *StartClockInput) (*StartClockOutput, error) {
	s.lock()
	defer s.unlock()

	state, err := s.activeMatch()
	if err != nil {
		return nil, err
	}
	if state.Status != models.MatchStatusInProgress {
		return nil, ErrInvalidMatchState
	}
	if !state.IsRunning {
		state.IsRunning = true
		s.log.WithField("match_second", state.MatchSeconds).Debug("clock started")
		s.commit(ctx)
	}
	return &StartClockOutput{IsRunning: true}, nil
}

// StopClock stops the match clock. Stopping a stopped clock is a no-op.
func (s *service) StopClock(ctx context.Context, input *StopClockInput) (*StopClockOutput, error) {
	s.lock()
	defer s.unlock()

	state, err := s.activeMatch()
	if err != nil {
		return nil, err
	}
	if state.IsRunning {
		state.IsRunning = false
		s.log.WithField("match_second", state.MatchSeconds).Debug("clock stopped")
		s.commit(ctx)
	}
	return &StopClockOutput{IsRunning: false}, nil
}

// Tick advances match time by one second and accrues field time for every
// on-field player who has not been sent off
func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	s.lock()
	defer s.unlock()

	if s.state == nil || !s.state.Status.IsActive() || !s.state.IsRunning {
		out := &TickOutput{}
		if s.state != nil {
			out.MatchSeconds = s.state.MatchSeconds
		}
		return out, nil
	}

	s.state.MatchSeconds++
	for _, p := range s.state.Roster {
		if p.AccruesFieldTime() {
			p.TotalSecondsOnField++
		}
	}
	s.commit(ctx)

	return &TickOutput{
		Ticked:       true,
		MatchSeconds: s.state.MatchSeconds,
	}, nil
}
