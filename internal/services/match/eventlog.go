package match

import (
	"context"
	"sort"

	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/sirupsen/logrus"
)

// entryDetails carries the optional context attached to a log entry
type entryDetails struct {
	stat     models.StatKind
	reason   string
	location string
	impact   *int
	position *models.FieldPosition
}

// appendEntry stamps a new entry with the current match time and puts it at the
// front of the log.
// Called with mu held, after every validation for the operation has passed.
func (s *service) appendEntry(player *models.Player, entryType models.LogEntryType, details entryDetails) *models.GameLogEntry {
	state := s.state
	entry := &models.GameLogEntry{
		ID:            s.uuid.NewUUID(),
		Sequence:      state.NextSequence,
		MatchSecond:   state.MatchSeconds,
		FormattedTime: models.FormatMatchTime(state.MatchSeconds),
		PlayerID:      player.ID,
		PlayerName:    player.Name,
		PlayerNumber:  player.JerseyNumber,
		Type:          entryType,
		Period:        state.Period,
		Stat:          details.stat,
		Reason:        details.reason,
		Location:      details.location,
		ImpactValue:   details.impact,
	}
	if details.position != nil {
		pos := *details.position
		entry.Position = &pos
	}
	state.NextSequence++
	state.EventLog = append([]*models.GameLogEntry{entry}, state.EventLog...)

	s.log.WithFields(logrus.Fields{
		"type":      entryType,
		"player_id": player.ID,
		"time":      entry.FormattedTime,
	}).Debug("log entry appended")

	return entry
}

// GetTimeline returns entries ordered by match second, then insertion order
func (s *service) GetTimeline(ctx context.Context, input *GetTimelineInput) (*GetTimelineOutput, error) {
	s.lock()
	defer s.unlock()

	if s.state == nil {
		return nil, ErrNoActiveMatch
	}

	types := make(map[models.LogEntryType]bool, len(input.Types))
	for _, t := range input.Types {
		types[t] = true
	}

	entries := make([]*models.GameLogEntry, 0, len(s.state.EventLog))
	for _, e := range s.state.EventLog {
		if len(types) > 0 && !types[e.Type] {
			continue
		}
		if input.PlayerID != "" && e.PlayerID != input.PlayerID {
			continue
		}
		entries = append(entries, e.Clone())
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].MatchSecond != entries[j].MatchSecond {
			return entries[i].MatchSecond < entries[j].MatchSecond
		}
		return entries[i].Sequence < entries[j].Sequence
	})

	return &GetTimelineOutput{Entries: entries}, nil
}
