package match

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/touchline/internal/common/clock"
	"github.com/KirkDiggler/touchline/internal/common/uuid"
	"github.com/KirkDiggler/touchline/internal/metrics"
	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/KirkDiggler/touchline/internal/repositories/history"
	"github.com/KirkDiggler/touchline/internal/repositories/snapshot"
	"github.com/sirupsen/logrus"
)

// service implements the Service interface
type service struct {
	// mu serializes every read and mutation of the match
	mu sync.Mutex

	config       *Config
	weights      metrics.Weights
	snapshotRepo snapshot.Repository
	historyRepo  history.Repository
	snapshots    *snapshotWriter
	clock        clock.Clock
	uuid         uuid.UUID
	log          logrus.FieldLogger

	// state is nil until a match is begun or resumed
	state       *models.MatchState
	flow        contextFlow
	lockedUntil time.Time

	observers      map[int]Observer
	nextObserverID int

	// outbox holds the state to publish once mu is released
	outbox *models.MatchState
}

// New creates a new match service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SnapshotRepo == nil {
		return nil, ErrNilSnapshotRepo
	}
	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	resolved := *cfg
	if resolved.SquadSize <= 0 {
		resolved.SquadSize = DefaultSquadSize
	}
	if resolved.StartingOnField <= 0 {
		resolved.StartingOnField = DefaultStartingOnField
	}
	if resolved.StartingOnField > resolved.SquadSize {
		return nil, ErrInvalidSquadConfig
	}
	if resolved.LockSignalDuration <= 0 {
		resolved.LockSignalDuration = DefaultLockSignalDuration
	}
	if resolved.PersistTimeout <= 0 {
		resolved.PersistTimeout = DefaultPersistTimeout
	}

	weights := metrics.DefaultWeights()
	if resolved.Weights != nil {
		weights = resolved.Weights.Clone()
	}

	log := resolved.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("component", "match")

	return &service{
		config:       &resolved,
		weights:      weights,
		snapshotRepo: resolved.SnapshotRepo,
		historyRepo:  resolved.HistoryRepo,
		snapshots:    newSnapshotWriter(resolved.SnapshotRepo, resolved.PersistTimeout, log),
		clock:        resolved.Clock,
		uuid:         resolved.UUIDGenerator,
		log:          log,
		flow:         flowIdle{},
		observers:    make(map[int]Observer),
	}, nil
}

// lock acquires the service mutex; pair it with a deferred unlock
func (s *service) lock() {
	s.mu.Lock()
}

// unlock releases the mutex and then publishes any committed state
func (s *service) unlock() {
	state := s.outbox
	s.outbox = nil
	var observers []Observer
	if state != nil {
		observers = make([]Observer, 0, len(s.observers))
		for id := 0; id < s.nextObserverID; id++ {
			if obs, ok := s.observers[id]; ok {
				observers = append(observers, obs)
			}
		}
	}
	s.mu.Unlock()

	for _, obs := range observers {
		obs(state.Clone())
	}
}

// activeMatch returns the current match or ErrNoActiveMatch
func (s *service) activeMatch() (*models.MatchState, error) {
	if s.state == nil || !s.state.Status.IsActive() {
		return nil, ErrNoActiveMatch
	}
	return s.state, nil
}

// findPlayer looks up a roster slot in the active match
func (s *service) findPlayer(playerID string) (*models.Player, error) {
	if playerID == "" {
		return nil, ErrNoPlayerSelected
	}
	player, ok := s.state.FindPlayer(playerID)
	if !ok {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

// commit hands the state to the snapshot writer and queues it for observers.
// Called with mu held; it never waits on the store.
func (s *service) commit(ctx context.Context) {
	if s.state == nil {
		return
	}
	if s.state.Status.IsActive() {
		s.persist()
	} else {
		s.clearSnapshot()
	}
	s.outbox = s.state.Clone()
}

// persist queues a snapshot of the current state. Failures are logged by the
// writer and never surface to the caller.
func (s *service) persist() {
	s.snapshots.save(&models.Snapshot{
		Version: models.SnapshotVersion,
		SavedAt: s.clock.Now(),
		State:   s.state.Clone(),
	})
}

func (s *service) clearSnapshot() {
	s.snapshots.clear()
}

// Close writes any pending snapshot and stops the snapshot writer
func (s *service) Close() {
	s.snapshots.close()
}

// Subscribe registers an observer notified after every committed change
func (s *service) Subscribe(observer Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextObserverID
	s.nextObserverID++
	s.observers[id] = observer

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// GetState returns a copy of the match state with the transient signals
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	s.lock()
	defer s.unlock()

	out := &GetStateOutput{
		Locked: s.clock.Now().Before(s.lockedUntil),
	}
	if s.state != nil {
		out.State = s.state.Clone()
	}
	if pending, ok := s.flow.(flowAwaitingContext); ok {
		out.Pending = &PendingContext{
			PlayerID: pending.playerID,
			Stat:     pending.stat,
			Delta:    pending.delta,
		}
	}
	return out, nil
}

// GetMetrics computes totals, leaders, impact and score for the current match
func (s *service) GetMetrics(ctx context.Context, input *GetMetricsInput) (*GetMetricsOutput, error) {
	s.lock()
	defer s.unlock()

	if s.state == nil {
		return nil, ErrNoActiveMatch
	}
	return &GetMetricsOutput{
		Summary: metrics.Summarize(s.state, s.weights),
	}, nil
}
