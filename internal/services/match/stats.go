package match

import (
	"context"

	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/sirupsen/logrus"
)

// ApplyStatDelta changes a player's stat.
//
// While the clock is stopped the change is rejected and the locked signal is
// raised, unless the caller marks it preauthorized. Positive changes to stats
// that need context are parked until ConfirmStatContext or SkipStatContext.
func (s *service) ApplyStatDelta(ctx context.Context, input *ApplyStatDeltaInput) (*ApplyStatDeltaOutput, error) {
	if !input.Stat.Valid() {
		return nil, ErrUnknownStat
	}

	s.lock()
	defer s.unlock()

	state, err := s.activeMatch()
	if err != nil {
		return nil, err
	}
	player, err := s.findPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}

	if input.Delta == 0 {
		return &ApplyStatDeltaOutput{Value: player.Stat(input.Stat)}, nil
	}

	if !state.IsRunning && !input.Preauthorized {
		s.lockedUntil = s.clock.Now().Add(s.config.LockSignalDuration)
		s.log.WithFields(logrus.Fields{
			"player_id": player.ID,
			"stat":      input.Stat,
		}).Debug("stat rejected while clock stopped")
		return &ApplyStatDeltaOutput{
			Value:  player.Stat(input.Stat),
			Locked: true,
		}, nil
	}

	if input.Delta > 0 && input.Stat.NeedsContext() {
		s.flow = flowAwaitingContext{
			playerID: player.ID,
			stat:     input.Stat,
			delta:    input.Delta,
		}
		return &ApplyStatDeltaOutput{
			Value:        player.Stat(input.Stat),
			NeedsContext: true,
		}, nil
	}

	before := player.Stat(input.Stat)
	value, entry := s.applyStat(player, input.Stat, input.Delta, !input.SkipLog, entryDetails{stat: input.Stat})
	if value == before && entry == nil {
		return &ApplyStatDeltaOutput{Value: value}, nil
	}
	s.commit(ctx)

	return &ApplyStatDeltaOutput{
		Applied: value != before,
		Value:   value,
		Entry:   entry.Clone(),
	}, nil
}

// RecordBigPlay counts a big play against the player and logs it with its impact value.
// Big plays are not gated by the clock.
func (s *service) RecordBigPlay(ctx context.Context, input *RecordBigPlayInput) (*RecordBigPlayOutput, error) {
	if !input.Stat.Valid() {
		return nil, ErrUnknownStat
	}
	if !input.Stat.IsBigPlay() {
		return nil, ErrNotBigPlay
	}
	if input.Position != nil && !input.Position.Valid() {
		return nil, ErrInvalidPosition
	}

	s.lock()
	defer s.unlock()

	if _, err := s.activeMatch(); err != nil {
		return nil, err
	}
	player, err := s.findPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}

	impact := s.weights.Weight(input.Stat)
	value, _ := s.applyStat(player, input.Stat, 1, false, entryDetails{})
	entry := s.appendEntry(player, models.LogEntryBigPlay, entryDetails{
		stat:     input.Stat,
		reason:   input.Reason,
		location: input.Location,
		impact:   &impact,
		position: input.Position,
	})
	s.commit(ctx)

	return &RecordBigPlayOutput{
		Value: value,
		Entry: entry.Clone(),
	}, nil
}

// applyStat changes the stat with a floor of zero and, for positive changes,
// appends the stat's log entry when withLog is set. Called with mu held.
func (s *service) applyStat(player *models.Player, stat models.StatKind, delta int, withLog bool, details entryDetails) (int, *models.GameLogEntry) {
	value := player.Stat(stat) + delta
	if value < 0 {
		value = 0
	}
	if player.Stats == nil {
		player.Stats = make(map[models.StatKind]int)
	}
	player.Stats[stat] = value

	if delta <= 0 || !withLog {
		return value, nil
	}
	def, _ := stat.Definition()
	return value, s.appendEntry(player, def.LogType, details)
}
