package match

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/touchline/internal/metrics"
	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/KirkDiggler/touchline/internal/repositories/history"
	"github.com/KirkDiggler/touchline/internal/repositories/snapshot"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
)

// BeginMatch starts a fresh match in the first period with the clock stopped
func (s *service) BeginMatch(ctx context.Context, input *BeginMatchInput) (*BeginMatchOutput, error) {
	s.lock()
	defer s.unlock()

	if s.state != nil && s.state.Status.IsActive() {
		return nil, ErrMatchInProgress
	}

	roster, unmatched := s.buildRoster(input.Selections)
	s.state = &models.MatchState{
		ID:           s.uuid.NewUUID(),
		TeamName:     strings.TrimSpace(input.TeamName),
		OpponentName: strings.TrimSpace(input.OpponentName),
		StartedAt:    s.clock.Now(),
		Roster:       roster,
		EventLog:     []*models.GameLogEntry{},
		NextSequence: 1,
		Period:       models.PeriodFirst,
		Status:       models.MatchStatusInProgress,
	}
	s.flow = flowIdle{}
	s.lockedUntil = s.clock.Now()

	s.log.WithFields(logrus.Fields{
		"match_id":  s.state.ID,
		"team":      s.state.TeamName,
		"opponent":  s.state.OpponentName,
		"unmatched": len(unmatched),
	}).Info("match started")
	s.commit(ctx)

	return &BeginMatchOutput{
		State:     s.state.Clone(),
		Unmatched: unmatched,
	}, nil
}

// buildRoster seeds the squad slots and fills them from selections by jersey number
func (s *service) buildRoster(selections []SquadSelection) ([]*models.Player, []SquadSelection) {
	roster := make([]*models.Player, 0, s.config.SquadSize)
	byJersey := make(map[string]*models.Player, s.config.SquadSize)
	for i := 1; i <= s.config.SquadSize; i++ {
		stats := make(map[models.StatKind]int, len(models.StatDefinitions))
		for _, kind := range models.AllStatKinds() {
			stats[kind] = 0
		}
		p := &models.Player{
			ID:           s.uuid.NewUUID(),
			Name:         fmt.Sprintf("Player %d", i),
			JerseyNumber: strconv.Itoa(i),
			Stats:        stats,
			CardStatus:   models.CardNone,
			IsOnField:    i <= s.config.StartingOnField,
		}
		roster = append(roster, p)
		byJersey[p.JerseyNumber] = p
	}

	var unmatched []SquadSelection
	claimed := mapset.NewThreadUnsafeSet[string]()
	for _, sel := range selections {
		number := strings.TrimSpace(sel.JerseyNumber)
		p, ok := byJersey[number]
		if !ok || claimed.Contains(number) {
			unmatched = append(unmatched, sel)
			continue
		}
		claimed.Add(number)
		if name := strings.TrimSpace(sel.Name); name != "" {
			p.Name = name
		}
		p.ExternalID = sel.ExternalID
	}
	return roster, unmatched
}

// loadSnapshot reads the resume slot. Read failures count as no snapshot.
func (s *service) loadSnapshot(ctx context.Context) (*models.Snapshot, bool) {
	// the slot must reflect every change made before the read
	s.snapshots.flush()

	ctx, cancel := context.WithTimeout(ctx, s.config.PersistTimeout)
	defer cancel()

	out, err := s.snapshotRepo.LoadSnapshot(ctx, &snapshot.LoadSnapshotInput{})
	if err != nil {
		s.log.WithError(err).Warn("failed to load match snapshot")
		return nil, false
	}
	if !out.Found || out.Snapshot == nil || out.Snapshot.State == nil {
		return nil, false
	}
	if out.Snapshot.Version != models.SnapshotVersion {
		s.log.WithField("version", out.Snapshot.Version).Warn("ignoring snapshot with unknown version")
		return nil, false
	}
	if !out.Snapshot.State.Status.IsActive() {
		return nil, false
	}
	return out.Snapshot, true
}

// CheckResume reports whether an interrupted match is waiting in the resume slot
func (s *service) CheckResume(ctx context.Context, input *CheckResumeInput) (*CheckResumeOutput, error) {
	s.lock()
	defer s.unlock()

	if s.state != nil && s.state.Status.IsActive() {
		return &CheckResumeOutput{}, nil
	}
	snap, ok := s.loadSnapshot(ctx)
	if !ok {
		return &CheckResumeOutput{}, nil
	}
	return &CheckResumeOutput{
		Available:    true,
		MatchID:      snap.State.ID,
		TeamName:     snap.State.TeamName,
		OpponentName: snap.State.OpponentName,
		MatchSeconds: snap.State.MatchSeconds,
		Period:       snap.State.Period,
		SavedAt:      snap.SavedAt,
	}, nil
}

// ResumeMatch restores the interrupted match exactly as it was saved. A stat
// that was waiting for context is not restored.
func (s *service) ResumeMatch(ctx context.Context, input *ResumeMatchInput) (*ResumeMatchOutput, error) {
	s.lock()
	defer s.unlock()

	if s.state != nil && s.state.Status.IsActive() {
		return nil, ErrMatchInProgress
	}
	snap, ok := s.loadSnapshot(ctx)
	if !ok {
		return nil, ErrNoSnapshot
	}

	s.state = snap.State
	if s.state.EventLog == nil {
		s.state.EventLog = []*models.GameLogEntry{}
	}
	for _, p := range s.state.Roster {
		if p.Stats == nil {
			p.Stats = make(map[models.StatKind]int)
		}
	}
	s.flow = flowIdle{}
	s.lockedUntil = s.clock.Now()
	s.outbox = s.state.Clone()

	s.log.WithFields(logrus.Fields{
		"match_id":     s.state.ID,
		"match_second": s.state.MatchSeconds,
		"saved_at":     snap.SavedAt,
	}).Info("match resumed")

	return &ResumeMatchOutput{State: s.state.Clone()}, nil
}

// CompleteSet counts a completed set. Ignored while the clock is stopped.
func (s *service) CompleteSet(ctx context.Context, input *CompleteSetInput) (*SetOutput, error) {
	return s.recordSet(ctx, true)
}

// FailSet counts an uncompleted set. Ignored while the clock is stopped.
func (s *service) FailSet(ctx context.Context, input *FailSetInput) (*SetOutput, error) {
	return s.recordSet(ctx, false)
}

func (s *service) recordSet(ctx context.Context, completed bool) (*SetOutput, error) {
	s.lock()
	defer s.unlock()

	state, err := s.activeMatch()
	if err != nil {
		return nil, err
	}
	out := &SetOutput{}
	if state.IsRunning {
		if completed {
			state.CompletedSets++
		}
		state.TotalSets++
		out.Applied = true
		s.commit(ctx)
	}
	out.CompletedSets = state.CompletedSets
	out.TotalSets = state.TotalSets
	return out, nil
}

// AdjustOpponentScore changes the opponent score, floored at zero
func (s *service) AdjustOpponentScore(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error) {
	s.lock()
	defer s.unlock()

	state, err := s.activeMatch()
	if err != nil {
		return nil, err
	}
	value := state.OpponentScore + input.Delta
	if value < 0 {
		value = 0
	}
	if value != state.OpponentScore {
		state.OpponentScore = value
		s.commit(ctx)
	}
	return &AdjustScoreOutput{
		Value: value,
		Score: metrics.Score(state),
	}, nil
}

// AdjustHomeScore changes the manual home adjustment used for points that
// are not tracked as stats
func (s *service) AdjustHomeScore(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error) {
	s.lock()
	defer s.unlock()

	state, err := s.activeMatch()
	if err != nil {
		return nil, err
	}
	if input.Delta != 0 {
		state.HomeScoreAdjustment += input.Delta
		s.commit(ctx)
	}
	return &AdjustScoreOutput{
		Value: state.HomeScoreAdjustment,
		Score: metrics.Score(state),
	}, nil
}

// RequestEndPeriod stops the clock and waits for confirmation
func (s *service) RequestEndPeriod(ctx context.Context, input *RequestEndPeriodInput) (*EndPeriodOutput, error) {
	s.lock()
	defer s.unlock()

	state, err := s.activeMatch()
	if err != nil {
		return nil, err
	}
	if state.Status != models.MatchStatusInProgress {
		return nil, ErrInvalidMatchState
	}
	state.IsRunning = false
	state.Status = models.MatchStatusAwaitingPeriodEnd
	s.commit(ctx)

	return &EndPeriodOutput{Period: state.Period, Status: state.Status}, nil
}

// ConfirmEndPeriod moves from the first half to the second, or from the
// second half to voting. The clock stays stopped.
func (s *service) ConfirmEndPeriod(ctx context.Context, input *ConfirmEndPeriodInput) (*EndPeriodOutput, error) {
	s.lock()
	defer s.unlock()

	state, err := s.activeMatch()
	if err != nil {
		return nil, err
	}
	if state.Status != models.MatchStatusAwaitingPeriodEnd {
		return nil, ErrInvalidMatchState
	}

	ended := state.Period
	if state.Period == models.PeriodFirst {
		state.Period = models.PeriodSecond
		state.Status = models.MatchStatusInProgress
	} else {
		state.Status = models.MatchStatusVoting
	}
	s.log.WithFields(logrus.Fields{
		"match_id":     state.ID,
		"period":       ended,
		"match_second": state.MatchSeconds,
	}).Info("period ended")
	s.commit(ctx)

	return &EndPeriodOutput{Period: state.Period, Status: state.Status}, nil
}

// CancelEndPeriod returns to play. The clock must be restarted explicitly.
func (s *service) CancelEndPeriod(ctx context.Context, input *CancelEndPeriodInput) (*EndPeriodOutput, error) {
	s.lock()
	defer s.unlock()

	state, err := s.activeMatch()
	if err != nil {
		return nil, err
	}
	if state.Status != models.MatchStatusAwaitingPeriodEnd {
		return nil, ErrInvalidMatchState
	}
	state.Status = models.MatchStatusInProgress
	s.commit(ctx)

	return &EndPeriodOutput{Period: state.Period, Status: state.Status}, nil
}

// FinishMatch builds the match record, hands it to history and clears the
// resume slot. The match stays in voting if history refuses the record.
func (s *service) FinishMatch(ctx context.Context, input *FinishMatchInput) (*FinishMatchOutput, error) {
	s.lock()
	defer s.unlock()

	state, err := s.activeMatch()
	if err != nil {
		return nil, err
	}
	if state.Status != models.MatchStatusVoting {
		return nil, ErrInvalidMatchState
	}
	if input.Votes != nil {
		if err := validateVotes(state, input.Votes); err != nil {
			return nil, err
		}
	}

	record := s.buildRecord(state, input.Votes)
	if err := s.historyRepo.SaveRecord(ctx, &history.SaveRecordInput{Record: record}); err != nil {
		return nil, fmt.Errorf("failed to save match record: %w", err)
	}

	state.IsRunning = false
	state.Status = models.MatchStatusFinished
	s.flow = flowIdle{}
	s.log.WithFields(logrus.Fields{
		"match_id": state.ID,
		"score":    record.FinalScore,
		"result":   record.Result,
	}).Info("match finished")
	s.commit(ctx)

	return &FinishMatchOutput{Record: record}, nil
}

func (s *service) buildRecord(state *models.MatchState, votes *models.Votes) *models.MatchRecord {
	score := metrics.Score(state)
	copied := state.Clone()

	record := &models.MatchRecord{
		ID:           state.ID,
		Date:         s.clock.Now(),
		TeamName:     state.TeamName,
		OpponentName: state.OpponentName,
		FinalScore:   fmt.Sprintf("%d - %d", score.Home, score.Away),
		Result:       models.ResultFor(score.Home, score.Away),
		Data: models.MatchData{
			Roster:          copied.Roster,
			EventLog:        copied.EventLog,
			MatchSeconds:    state.MatchSeconds,
			Period:          state.Period,
			CompletedSets:   state.CompletedSets,
			TotalSets:       state.TotalSets,
			OpponentScore:   score.Away,
			ScoreAdjustment: state.HomeScoreAdjustment,
		},
	}
	if votes != nil {
		v := *votes
		record.Voting = &v
	}
	return record
}

// validateVotes requires three different roster players
func validateVotes(state *models.MatchState, votes *models.Votes) error {
	picks := mapset.NewThreadUnsafeSet[string]()
	for _, id := range []string{votes.ThreePointsID, votes.TwoPointsID, votes.OnePointID} {
		if id == "" {
			return ErrInvalidVotes
		}
		if _, ok := state.FindPlayer(id); !ok {
			return ErrInvalidVotes
		}
		picks.Add(id)
	}
	if picks.Cardinality() != 3 {
		return ErrInvalidVotes
	}
	return nil
}

// DiscardMatch ends the match without a record and empties the resume slot.
// With no match in memory it still clears a leftover snapshot.
func (s *service) DiscardMatch(ctx context.Context, input *DiscardMatchInput) (*DiscardMatchOutput, error) {
	s.lock()
	defer s.unlock()

	if s.state == nil || !s.state.Status.IsActive() {
		s.clearSnapshot()
		return &DiscardMatchOutput{}, nil
	}

	s.state.IsRunning = false
	s.state.Status = models.MatchStatusDiscarded
	s.flow = flowIdle{}
	s.log.WithField("match_id", s.state.ID).Info("match discarded")
	s.commit(ctx)

	return &DiscardMatchOutput{Discarded: true}, nil
}
