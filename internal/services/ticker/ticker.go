package ticker

import (
	"context"
	"time"

	"github.com/KirkDiggler/touchline/internal/common/clock"
	"github.com/KirkDiggler/touchline/internal/services/match"
	"github.com/sirupsen/logrus"
)

// DefaultInterval is one match second
const DefaultInterval = time.Second

// TickerError is a custom error type for ticker errors
type TickerError string

// Error implements the error interface
func (e TickerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig   TickerError = "config cannot be nil"
	ErrNilClock    TickerError = "clock cannot be nil"
	ErrNilTickable TickerError = "match service cannot be nil"
)

// Tickable is the part of the match service the runner drives
type Tickable interface {
	Tick(ctx context.Context, input *match.TickInput) (*match.TickOutput, error)
}

// Config holds configuration for the runner
type Config struct {
	// Interval between ticks, defaults to one second
	Interval time.Duration

	Match  Tickable
	Clock  clock.Clock
	Logger logrus.FieldLogger
}

// Runner calls Tick on the match once per interval until its context ends
type Runner struct {
	interval time.Duration
	match    Tickable
	clock    clock.Clock
	log      logrus.FieldLogger
}

// New creates a new runner
func New(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Match == nil {
		return nil, ErrNilTickable
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		interval: interval,
		match:    cfg.Match,
		clock:    cfg.Clock,
		log:      log.WithField("component", "ticker"),
	}, nil
}

// Run blocks until ctx is done. The match decides whether a tick counts, so
// the runner ticks regardless of the clock state.
func (r *Runner) Run(ctx context.Context) {
	t := r.clock.NewTicker(r.interval)
	defer t.Stop()

	r.log.WithField("interval", r.interval).Debug("ticker started")
	for {
		select {
		case <-ctx.Done():
			r.log.Debug("ticker stopped")
			return
		case <-t.C():
			if _, err := r.match.Tick(ctx, &match.TickInput{}); err != nil {
				r.log.WithError(err).Warn("tick failed")
			}
		}
	}
}
