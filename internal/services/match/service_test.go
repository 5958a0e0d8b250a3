package match

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/touchline/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/touchline/internal/common/uuid/mocks"
	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/KirkDiggler/touchline/internal/repositories/history"
	historyMocks "github.com/KirkDiggler/touchline/internal/repositories/history/mocks"
	"github.com/KirkDiggler/touchline/internal/repositories/snapshot"
	snapshotMocks "github.com/KirkDiggler/touchline/internal/repositories/snapshot/mocks"
	"github.com/sirupsen/logrus"
	logTest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MatchServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockSnapshotRepo *snapshotMocks.MockRepository
	mockHistoryRepo  *historyMocks.MockRepository
	mockClock        *clockMocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	logHook          *logTest.Hook
	matchService     *service
	ctx              context.Context

	// Test data
	now       time.Time
	nextID    int
	saved     *models.Snapshot
	saveCount int
	saveErr   error
	cleared   int
}

func (s *MatchServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSnapshotRepo = snapshotMocks.NewMockRepository(s.mockCtrl)
	s.mockHistoryRepo = historyMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.ctx = context.Background()

	s.now = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.nextID = 0
	s.saved = nil
	s.saveCount = 0
	s.saveErr = nil
	s.cleared = 0

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.nextID++
		return fmt.Sprintf("id-%d", s.nextID)
	}).AnyTimes()

	s.mockSnapshotRepo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *snapshot.SaveSnapshotInput) error {
			s.saveCount++
			if s.saveErr != nil {
				return s.saveErr
			}
			s.saved = input.Snapshot
			return nil
		}).AnyTimes()
	s.mockSnapshotRepo.EXPECT().LoadSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *snapshot.LoadSnapshotInput) (*snapshot.LoadSnapshotOutput, error) {
			return &snapshot.LoadSnapshotOutput{Snapshot: s.saved, Found: s.saved != nil}, nil
		}).AnyTimes()
	s.mockSnapshotRepo.EXPECT().ClearSnapshot(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *snapshot.ClearSnapshotInput) error {
			s.cleared++
			s.saved = nil
			return nil
		}).AnyTimes()

	s.matchService = s.newService()
}

func (s *MatchServiceTestSuite) TearDownTest() {
	s.matchService.Close()
	s.mockCtrl.Finish()
}

// flush waits for queued snapshot writes so the recorded saves can be read
func (s *MatchServiceTestSuite) flush() {
	s.matchService.snapshots.flush()
}

func (s *MatchServiceTestSuite) newService() *service {
	logger, hook := logTest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	s.logHook = hook

	svc, err := New(&Config{
		SnapshotRepo:  s.mockSnapshotRepo,
		HistoryRepo:   s.mockHistoryRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Logger:        logger,
	})
	s.Require().NoError(err)
	return svc
}

// begin starts a match with the default squad and returns its state
func (s *MatchServiceTestSuite) begin() *models.MatchState {
	out, err := s.matchService.BeginMatch(s.ctx, &BeginMatchInput{
		TeamName:     "Wests",
		OpponentName: "Norths",
	})
	s.Require().NoError(err)
	s.flush()
	return out.State
}

func (s *MatchServiceTestSuite) startClock() {
	_, err := s.matchService.StartClock(s.ctx, &StartClockInput{})
	s.Require().NoError(err)
	s.flush()
}

func (s *MatchServiceTestSuite) tick(n int) {
	for i := 0; i < n; i++ {
		_, err := s.matchService.Tick(s.ctx, &TickInput{})
		s.Require().NoError(err)
	}
	s.flush()
}

func (s *MatchServiceTestSuite) state() *models.MatchState {
	out, err := s.matchService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	return out.State
}

func (s *MatchServiceTestSuite) player(state *models.MatchState, jersey int) *models.Player {
	for _, p := range state.Roster {
		if p.JerseyNumber == fmt.Sprint(jersey) {
			return p
		}
	}
	s.FailNow("no player with jersey", jersey)
	return nil
}

func (s *MatchServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{HistoryRepo: s.mockHistoryRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilSnapshotRepo)

	_, err = New(&Config{SnapshotRepo: s.mockSnapshotRepo, Clock: s.mockClock, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilHistoryRepo)

	_, err = New(&Config{SnapshotRepo: s.mockSnapshotRepo, HistoryRepo: s.mockHistoryRepo, UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{SnapshotRepo: s.mockSnapshotRepo, HistoryRepo: s.mockHistoryRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)

	_, err = New(&Config{
		SnapshotRepo:    s.mockSnapshotRepo,
		HistoryRepo:     s.mockHistoryRepo,
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
		SquadSize:       10,
		StartingOnField: 11,
	})
	s.ErrorIs(err, ErrInvalidSquadConfig)
}

func (s *MatchServiceTestSuite) TestBeginMatchSeedsRoster() {
	out, err := s.matchService.BeginMatch(s.ctx, &BeginMatchInput{
		TeamName:     " Wests ",
		OpponentName: "Norths",
		Selections: []SquadSelection{
			{ExternalID: "ext-1", Name: "Sam Carter", JerseyNumber: "1"},
			{ExternalID: "ext-2", Name: "Duplicate", JerseyNumber: "1"},
			{ExternalID: "ext-3", Name: "Outsider", JerseyNumber: "42"},
		},
	})
	s.Require().NoError(err)

	state := out.State
	s.Equal("Wests", state.TeamName)
	s.Equal(models.PeriodFirst, state.Period)
	s.Equal(models.MatchStatusInProgress, state.Status)
	s.False(state.IsRunning)
	s.Equal(0, state.MatchSeconds)
	s.Require().Len(state.Roster, DefaultSquadSize)

	onField := 0
	for i, p := range state.Roster {
		s.Equal(fmt.Sprint(i+1), p.JerseyNumber)
		s.Equal(models.CardNone, p.CardStatus)
		if p.IsOnField {
			onField++
		}
	}
	s.Equal(DefaultStartingOnField, onField)

	s.Equal("Sam Carter", state.Roster[0].Name)
	s.Equal("ext-1", state.Roster[0].ExternalID)
	s.Equal("Player 2", state.Roster[1].Name)
	s.Require().Len(out.Unmatched, 2)
	s.Equal("ext-2", out.Unmatched[0].ExternalID)
	s.Equal("ext-3", out.Unmatched[1].ExternalID)

	s.flush()
	s.Require().NotNil(s.saved)
	s.Equal(state.ID, s.saved.State.ID)
}

func (s *MatchServiceTestSuite) TestBeginMatchWhileActive() {
	s.begin()

	_, err := s.matchService.BeginMatch(s.ctx, &BeginMatchInput{})
	s.ErrorIs(err, ErrMatchInProgress)
}

func (s *MatchServiceTestSuite) TestOperationsWithoutMatch() {
	_, err := s.matchService.StartClock(s.ctx, &StartClockInput{})
	s.ErrorIs(err, ErrNoActiveMatch)

	_, err = s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: "x", Stat: models.StatTries, Delta: 1})
	s.ErrorIs(err, ErrNoActiveMatch)

	out, err := s.matchService.Tick(s.ctx, &TickInput{})
	s.NoError(err)
	s.False(out.Ticked)
}

func (s *MatchServiceTestSuite) TestTickAccruesFieldTimeForEligiblePlayers() {
	state := s.begin()
	starter := s.player(state, 1)
	reserve := s.player(state, 14)
	sentOff := s.player(state, 2)

	_, err := s.matchService.IssueCard(s.ctx, &IssueCardInput{PlayerID: sentOff.ID, Card: models.CardRed, Reason: "Foul play"})
	s.Require().NoError(err)
	// putting a sent-off player back on does not earn field time
	_, err = s.matchService.ToggleFieldStatus(s.ctx, &ToggleFieldStatusInput{PlayerID: sentOff.ID})
	s.Require().NoError(err)

	s.startClock()
	s.tick(3)

	state = s.state()
	s.Equal(3, state.MatchSeconds)
	s.Equal(3, s.player(state, 1).TotalSecondsOnField)
	s.Equal(starter.ID, s.player(state, 1).ID)
	s.Equal(0, s.player(state, 14).TotalSecondsOnField)
	s.Equal(reserve.ID, s.player(state, 14).ID)
	s.True(s.player(state, 2).IsOnField)
	s.Equal(0, s.player(state, 2).TotalSecondsOnField)
}

func (s *MatchServiceTestSuite) TestTickWhileStoppedDoesNothing() {
	s.begin()
	before := s.saveCount

	out, err := s.matchService.Tick(s.ctx, &TickInput{})
	s.Require().NoError(err)
	s.False(out.Ticked)
	s.Equal(0, s.state().MatchSeconds)
	s.flush()
	s.Equal(before, s.saveCount)
}

func (s *MatchServiceTestSuite) TestStartClockIsIdempotent() {
	s.begin()
	s.startClock()
	saves := s.saveCount

	s.startClock()
	s.Equal(saves, s.saveCount)
	s.True(s.state().IsRunning)

	_, err := s.matchService.StopClock(s.ctx, &StopClockInput{})
	s.Require().NoError(err)
	_, err = s.matchService.StopClock(s.ctx, &StopClockInput{})
	s.Require().NoError(err)
	s.False(s.state().IsRunning)
}

func (s *MatchServiceTestSuite) TestTryUpdatesScoreAndLeaders() {
	state := s.begin()
	p3 := s.player(state, 3)
	s.startClock()
	s.tick(75)

	out, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: p3.ID, Stat: models.StatTries, Delta: 1})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(1, out.Value)
	s.Require().NotNil(out.Entry)
	s.Equal(models.LogEntryTry, out.Entry.Type)
	s.Equal("01:15", out.Entry.FormattedTime)
	s.Equal(p3.ID, out.Entry.PlayerID)

	metricsOut, err := s.matchService.GetMetrics(s.ctx, &GetMetricsInput{})
	s.Require().NoError(err)
	summary := metricsOut.Summary
	s.Equal(4, summary.Score.Home)
	s.Equal(1, summary.Totals.Totals[models.StatTries])
	s.Equal(1, summary.Totals.MaxValues[models.StatTries])
	s.Equal(1, summary.Totals.LeaderCounts[models.StatTries])
	s.Equal(p3.ID, summary.Ranking[0].PlayerID)

	s.flush()
	s.Require().NotNil(s.saved)
	s.Equal(1, s.player(s.saved.State, 3).Stat(models.StatTries))
}

func (s *MatchServiceTestSuite) TestOtherStatsLogAsOther() {
	state := s.begin()
	s.startClock()

	out, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{
		PlayerID: s.player(state, 5).ID,
		Stat:     models.StatTackles,
		Delta:    1,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Entry)
	s.Equal(models.LogEntryOther, out.Entry.Type)
	s.Equal(models.StatTackles, out.Entry.Stat)

	out, err = s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{
		PlayerID: s.player(state, 5).ID,
		Stat:     models.StatTackles,
		Delta:    1,
		SkipLog:  true,
	})
	s.Require().NoError(err)
	s.Nil(out.Entry)
	s.Equal(2, out.Value)
	s.Len(s.state().EventLog, 1)
}

func (s *MatchServiceTestSuite) TestStatRejectedWhileClockStopped() {
	state := s.begin()
	p4 := s.player(state, 4)
	saves := s.saveCount

	out, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: p4.ID, Stat: models.StatTackles, Delta: 1})
	s.Require().NoError(err)
	s.True(out.Locked)
	s.False(out.Applied)
	s.flush()
	s.Equal(saves, s.saveCount)

	stateOut, err := s.matchService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.True(stateOut.Locked)
	s.Equal(0, s.player(stateOut.State, 4).Stat(models.StatTackles))
	s.Empty(stateOut.State.EventLog)

	// the signal clears on its own
	s.now = s.now.Add(DefaultLockSignalDuration)
	stateOut, err = s.matchService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.False(stateOut.Locked)
}

func (s *MatchServiceTestSuite) TestPreauthorizedBypassesGuard() {
	state := s.begin()

	out, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{
		PlayerID:      s.player(state, 4).ID,
		Stat:          models.StatKicks,
		Delta:         1,
		Preauthorized: true,
	})
	s.Require().NoError(err)
	s.False(out.Locked)
	s.True(out.Applied)
}

func (s *MatchServiceTestSuite) TestNegativeDeltaIsFlooredAndSilent() {
	state := s.begin()
	p6 := s.player(state, 6)
	s.startClock()

	_, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: p6.ID, Stat: models.StatTries, Delta: 1})
	s.Require().NoError(err)

	out, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: p6.ID, Stat: models.StatTries, Delta: -1})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(0, out.Value)
	s.Nil(out.Entry)

	out, err = s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: p6.ID, Stat: models.StatTries, Delta: -1})
	s.Require().NoError(err)
	s.False(out.Applied)
	s.Equal(0, out.Value)

	s.Len(s.state().EventLog, 1)
}

func (s *MatchServiceTestSuite) TestApplyStatDeltaValidation() {
	state := s.begin()
	s.startClock()

	_, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: s.player(state, 1).ID, Stat: "scrums", Delta: 1})
	s.ErrorIs(err, ErrUnknownStat)

	_, err = s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: "missing", Stat: models.StatTries, Delta: 1})
	s.ErrorIs(err, ErrPlayerNotFound)

	_, err = s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{Stat: models.StatTries, Delta: 1})
	s.ErrorIs(err, ErrNoPlayerSelected)
}

func (s *MatchServiceTestSuite) TestPenaltyWaitsForContext() {
	state := s.begin()
	p7 := s.player(state, 7)
	s.startClock()
	s.tick(10)

	out, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: p7.ID, Stat: models.StatPenaltiesConceded, Delta: 1})
	s.Require().NoError(err)
	s.True(out.NeedsContext)
	s.False(out.Applied)

	stateOut, err := s.matchService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Equal(0, s.player(stateOut.State, 7).Stat(models.StatPenaltiesConceded))
	s.Empty(stateOut.State.EventLog)
	s.Require().NotNil(stateOut.Pending)
	s.Equal(p7.ID, stateOut.Pending.PlayerID)

	confirm, err := s.matchService.ConfirmStatContext(s.ctx, &ConfirmStatContextInput{
		Position: &models.FieldPosition{X: 40, Y: 60},
		Reason:   "High tackle",
	})
	s.Require().NoError(err)
	s.Equal(1, confirm.Value)
	s.Require().NotNil(confirm.Entry)
	s.Equal(models.LogEntryPenalty, confirm.Entry.Type)
	s.Equal("High tackle", confirm.Entry.Reason)
	s.Equal(&models.FieldPosition{X: 40, Y: 60}, confirm.Entry.Position)

	stateOut, err = s.matchService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Nil(stateOut.Pending)
	s.Equal(1, s.player(stateOut.State, 7).Stat(models.StatPenaltiesConceded))
	s.Len(stateOut.State.EventLog, 1)
}

func (s *MatchServiceTestSuite) TestConfirmedContextBypassesGuard() {
	state := s.begin()
	s.startClock()

	_, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: s.player(state, 8).ID, Stat: models.StatErrors, Delta: 1})
	s.Require().NoError(err)

	// the whistle went while the coach was picking the spot
	_, err = s.matchService.StopClock(s.ctx, &StopClockInput{})
	s.Require().NoError(err)

	out, err := s.matchService.SkipStatContext(s.ctx, &SkipStatContextInput{})
	s.Require().NoError(err)
	s.Equal(1, out.Value)
	s.Equal(models.LogEntryError, out.Entry.Type)
	s.Nil(out.Entry.Position)
	s.Empty(out.Entry.Reason)
}

func (s *MatchServiceTestSuite) TestCancelContextLeavesStateUntouched() {
	state := s.begin()
	s.startClock()
	before := s.state()
	saves := s.saveCount

	_, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: s.player(state, 9).ID, Stat: models.StatErrors, Delta: 1})
	s.Require().NoError(err)

	out, err := s.matchService.CancelStatContext(s.ctx, &CancelStatContextInput{})
	s.Require().NoError(err)
	s.True(out.Cancelled)

	stateOut, err := s.matchService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Equal(before, stateOut.State)
	s.Nil(stateOut.Pending)
	s.flush()
	s.Equal(saves, s.saveCount)

	_, err = s.matchService.ConfirmStatContext(s.ctx, &ConfirmStatContextInput{})
	s.ErrorIs(err, ErrNoPendingContext)
}

func (s *MatchServiceTestSuite) TestConfirmRejectsPositionOffField() {
	state := s.begin()
	s.startClock()
	_, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: s.player(state, 9).ID, Stat: models.StatErrors, Delta: 1})
	s.Require().NoError(err)

	_, err = s.matchService.ConfirmStatContext(s.ctx, &ConfirmStatContextInput{Position: &models.FieldPosition{X: 120, Y: 10}})
	s.ErrorIs(err, ErrInvalidPosition)

	// still waiting
	stateOut, err := s.matchService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.NotNil(stateOut.Pending)
}

func (s *MatchServiceTestSuite) TestRecordBigPlay() {
	state := s.begin()
	p10 := s.player(state, 10)

	// big plays are not gated by the clock
	out, err := s.matchService.RecordBigPlay(s.ctx, &RecordBigPlayInput{
		PlayerID: p10.ID,
		Stat:     models.StatLineBreaks,
		Position: &models.FieldPosition{X: 55, Y: 20},
		Location: "Left edge",
	})
	s.Require().NoError(err)
	s.Equal(1, out.Value)
	s.Require().NotNil(out.Entry)
	s.Equal(models.LogEntryBigPlay, out.Entry.Type)
	s.Equal(models.StatLineBreaks, out.Entry.Stat)
	s.Require().NotNil(out.Entry.ImpactValue)
	s.Equal(5, *out.Entry.ImpactValue)

	state = s.state()
	s.Len(state.EventLog, 1)
	s.Equal(1, s.player(state, 10).Stat(models.StatLineBreaks))

	_, err = s.matchService.RecordBigPlay(s.ctx, &RecordBigPlayInput{PlayerID: p10.ID, Stat: models.StatTackles})
	s.ErrorIs(err, ErrNotBigPlay)
}

func (s *MatchServiceTestSuite) TestYellowCardThenClear() {
	state := s.begin()
	p9 := s.player(state, 9)
	s.startClock()
	s.tick(625)

	out, err := s.matchService.IssueCard(s.ctx, &IssueCardInput{PlayerID: p9.ID, Card: models.CardYellow, Reason: "Dissent"})
	s.Require().NoError(err)
	s.Equal(models.CardYellow, out.Player.CardStatus)
	s.False(out.Player.IsOnField)
	s.Require().NotNil(out.Player.SinBinStartTime)
	s.Equal(625, *out.Player.SinBinStartTime)
	s.Equal(models.LogEntryYellowCard, out.Entry.Type)
	s.Equal("Dissent", out.Entry.Reason)
	s.Equal("10:25", out.Entry.FormattedTime)

	s.tick(120)
	elapsed, ok := s.player(s.state(), 9).SinBinElapsed(s.state().MatchSeconds)
	s.True(ok)
	s.Equal(120, elapsed)

	clearOut, err := s.matchService.ClearCard(s.ctx, &ClearCardInput{PlayerID: p9.ID})
	s.Require().NoError(err)
	s.True(clearOut.Cleared)
	s.Equal(models.CardNone, clearOut.Player.CardStatus)
	s.Nil(clearOut.Player.SinBinStartTime)
	s.False(clearOut.Player.IsOnField)
}

func (s *MatchServiceTestSuite) TestRedCardIsTerminal() {
	state := s.begin()
	p11 := s.player(state, 11)

	_, err := s.matchService.IssueCard(s.ctx, &IssueCardInput{PlayerID: p11.ID, Card: models.CardRed, Reason: "Punching"})
	s.Require().NoError(err)

	_, err = s.matchService.IssueCard(s.ctx, &IssueCardInput{PlayerID: p11.ID, Card: models.CardYellow})
	s.ErrorIs(err, ErrPlayerRedCarded)

	_, err = s.matchService.ClearCard(s.ctx, &ClearCardInput{PlayerID: p11.ID})
	s.ErrorIs(err, ErrPlayerRedCarded)

	eligible, err := s.matchService.EligibleForCard(s.ctx, &EligibleForCardInput{})
	s.Require().NoError(err)
	s.Len(eligible.Players, DefaultSquadSize-1)
	for _, p := range eligible.Players {
		s.NotEqual(p11.ID, p.ID)
	}

	// a mistaken red can be corrected
	override, err := s.matchService.OverrideCard(s.ctx, &OverrideCardInput{PlayerID: p11.ID, Card: models.CardNone})
	s.Require().NoError(err)
	s.Equal(models.CardNone, override.Player.CardStatus)
	s.Len(s.state().EventLog, 1)
}

func (s *MatchServiceTestSuite) TestIssueCardValidation() {
	state := s.begin()

	_, err := s.matchService.IssueCard(s.ctx, &IssueCardInput{Card: models.CardYellow})
	s.ErrorIs(err, ErrNoPlayerSelected)

	_, err = s.matchService.IssueCard(s.ctx, &IssueCardInput{PlayerID: s.player(state, 1).ID, Card: models.CardNone})
	s.ErrorIs(err, ErrInvalidCard)
}

func (s *MatchServiceTestSuite) TestToggleFieldStatus() {
	state := s.begin()
	p1 := s.player(state, 1)
	s.startClock()
	s.tick(30)
	_, err := s.matchService.StopClock(s.ctx, &StopClockInput{})
	s.Require().NoError(err)

	// substitutions are not gated by the clock
	out, err := s.matchService.ToggleFieldStatus(s.ctx, &ToggleFieldStatusInput{PlayerID: p1.ID})
	s.Require().NoError(err)
	s.False(out.Player.IsOnField)
	s.Require().NotNil(out.Player.LastSubstitutionTime)
	s.Equal(30, *out.Player.LastSubstitutionTime)
	s.Equal(models.LogEntrySubstitution, out.Entry.Type)
	s.Equal(models.SubstitutionOff, out.Entry.Reason)

	out, err = s.matchService.ToggleFieldStatus(s.ctx, &ToggleFieldStatusInput{PlayerID: p1.ID})
	s.Require().NoError(err)
	s.True(out.Player.IsOnField)
	s.Equal(models.SubstitutionOn, out.Entry.Reason)
}

func (s *MatchServiceTestSuite) TestUpdatePlayerDetails() {
	state := s.begin()
	p2 := s.player(state, 2)
	name := "Alex Reid"
	number := "22"

	out, err := s.matchService.UpdatePlayerDetails(s.ctx, &UpdatePlayerDetailsInput{
		PlayerID:     p2.ID,
		Name:         &name,
		JerseyNumber: &number,
	})
	s.Require().NoError(err)
	s.Equal("Alex Reid", out.Player.Name)
	s.Equal("22", out.Player.JerseyNumber)
}

func (s *MatchServiceTestSuite) TestSetsOnlyCountWhileRunning() {
	s.begin()

	out, err := s.matchService.CompleteSet(s.ctx, &CompleteSetInput{})
	s.Require().NoError(err)
	s.False(out.Applied)
	s.Equal(0, out.TotalSets)

	s.startClock()
	_, err = s.matchService.CompleteSet(s.ctx, &CompleteSetInput{})
	s.Require().NoError(err)
	out, err = s.matchService.FailSet(s.ctx, &FailSetInput{})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(1, out.CompletedSets)
	s.Equal(2, out.TotalSets)
}

func (s *MatchServiceTestSuite) TestScoreAdjustments() {
	s.begin()

	out, err := s.matchService.AdjustOpponentScore(s.ctx, &AdjustScoreInput{Delta: 6})
	s.Require().NoError(err)
	s.Equal(6, out.Value)

	out, err = s.matchService.AdjustOpponentScore(s.ctx, &AdjustScoreInput{Delta: -10})
	s.Require().NoError(err)
	s.Equal(0, out.Value)
	s.Equal(0, out.Score.Away)

	out, err = s.matchService.AdjustHomeScore(s.ctx, &AdjustScoreInput{Delta: 2})
	s.Require().NoError(err)
	s.Equal(2, out.Value)
	s.Equal(2, out.Score.Home)
}

func (s *MatchServiceTestSuite) TestPeriodTransitions() {
	s.begin()
	s.startClock()

	out, err := s.matchService.RequestEndPeriod(s.ctx, &RequestEndPeriodInput{})
	s.Require().NoError(err)
	s.Equal(models.MatchStatusAwaitingPeriodEnd, out.Status)
	s.False(s.state().IsRunning)

	_, err = s.matchService.StartClock(s.ctx, &StartClockInput{})
	s.ErrorIs(err, ErrInvalidMatchState)

	out, err = s.matchService.CancelEndPeriod(s.ctx, &CancelEndPeriodInput{})
	s.Require().NoError(err)
	s.Equal(models.MatchStatusInProgress, out.Status)
	s.Equal(models.PeriodFirst, out.Period)

	_, err = s.matchService.RequestEndPeriod(s.ctx, &RequestEndPeriodInput{})
	s.Require().NoError(err)
	out, err = s.matchService.ConfirmEndPeriod(s.ctx, &ConfirmEndPeriodInput{})
	s.Require().NoError(err)
	s.Equal(models.PeriodSecond, out.Period)
	s.Equal(models.MatchStatusInProgress, out.Status)
	s.False(s.state().IsRunning)

	_, err = s.matchService.RequestEndPeriod(s.ctx, &RequestEndPeriodInput{})
	s.Require().NoError(err)
	out, err = s.matchService.ConfirmEndPeriod(s.ctx, &ConfirmEndPeriodInput{})
	s.Require().NoError(err)
	s.Equal(models.MatchStatusVoting, out.Status)

	_, err = s.matchService.ConfirmEndPeriod(s.ctx, &ConfirmEndPeriodInput{})
	s.ErrorIs(err, ErrInvalidMatchState)
}

// toVoting plays through both halves
func (s *MatchServiceTestSuite) toVoting() {
	for i := 0; i < 2; i++ {
		_, err := s.matchService.RequestEndPeriod(s.ctx, &RequestEndPeriodInput{})
		s.Require().NoError(err)
		_, err = s.matchService.ConfirmEndPeriod(s.ctx, &ConfirmEndPeriodInput{})
		s.Require().NoError(err)
	}
}

func (s *MatchServiceTestSuite) TestFinishMatch() {
	state := s.begin()
	p3, p5, p12 := s.player(state, 3), s.player(state, 5), s.player(state, 12)
	s.startClock()
	_, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: p3.ID, Stat: models.StatTries, Delta: 1})
	s.Require().NoError(err)
	_, err = s.matchService.AdjustOpponentScore(s.ctx, &AdjustScoreInput{Delta: 4})
	s.Require().NoError(err)

	_, err = s.matchService.FinishMatch(s.ctx, &FinishMatchInput{})
	s.ErrorIs(err, ErrInvalidMatchState)

	s.toVoting()

	votes := &models.Votes{ThreePointsID: p3.ID, TwoPointsID: p5.ID, OnePointID: p12.ID}
	var saved *models.MatchRecord
	s.mockHistoryRepo.EXPECT().SaveRecord(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input *history.SaveRecordInput) error {
			saved = input.Record
			return nil
		})

	out, err := s.matchService.FinishMatch(s.ctx, &FinishMatchInput{Votes: votes})
	s.Require().NoError(err)
	s.Equal(saved, out.Record)
	s.Equal(state.ID, out.Record.ID)
	s.Equal("4 - 4", out.Record.FinalScore)
	s.Equal(models.MatchResultDraw, out.Record.Result)
	s.Equal(s.now, out.Record.Date)
	s.Equal(votes, out.Record.Voting)
	s.Len(out.Record.Data.Roster, DefaultSquadSize)
	s.Len(out.Record.Data.EventLog, 1)

	s.Equal(models.MatchStatusFinished, s.state().Status)
	s.flush()
	s.Nil(s.saved)
	s.Equal(1, s.cleared)

	// a fresh match can start once the last one is finished
	s.begin()
}

func (s *MatchServiceTestSuite) TestFinishMatchRejectsBadVotes() {
	state := s.begin()
	s.toVoting()
	p1, p2 := s.player(state, 1), s.player(state, 2)

	tests := []*models.Votes{
		{ThreePointsID: p1.ID, TwoPointsID: p1.ID, OnePointID: p2.ID},
		{ThreePointsID: p1.ID, TwoPointsID: p2.ID},
		{ThreePointsID: p1.ID, TwoPointsID: p2.ID, OnePointID: "stranger"},
	}
	for _, votes := range tests {
		_, err := s.matchService.FinishMatch(s.ctx, &FinishMatchInput{Votes: votes})
		s.ErrorIs(err, ErrInvalidVotes)
	}
	s.Equal(models.MatchStatusVoting, s.state().Status)
}

func (s *MatchServiceTestSuite) TestFinishMatchKeepsMatchWhenHistoryFails() {
	s.begin()
	s.toVoting()
	s.mockHistoryRepo.EXPECT().SaveRecord(s.ctx, gomock.Any()).Return(errors.New("disk full"))

	_, err := s.matchService.FinishMatch(s.ctx, &FinishMatchInput{})
	s.Error(err)
	s.Equal(models.MatchStatusVoting, s.state().Status)
	s.flush()
	s.NotNil(s.saved)
	s.Equal(0, s.cleared)
}

func (s *MatchServiceTestSuite) TestDiscardMatch() {
	s.begin()

	out, err := s.matchService.DiscardMatch(s.ctx, &DiscardMatchInput{})
	s.Require().NoError(err)
	s.True(out.Discarded)
	s.Equal(models.MatchStatusDiscarded, s.state().Status)
	s.flush()
	s.Nil(s.saved)

	// nothing in memory still clears the slot
	out, err = s.matchService.DiscardMatch(s.ctx, &DiscardMatchInput{})
	s.Require().NoError(err)
	s.False(out.Discarded)
	s.flush()
	s.Equal(2, s.cleared)
}

func (s *MatchServiceTestSuite) TestPersistenceFailureIsSwallowed() {
	state := s.begin()
	s.startClock()
	s.saveErr = errors.New("redis down")

	out, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: s.player(state, 3).ID, Stat: models.StatTries, Delta: 1})
	s.Require().NoError(err)
	s.True(out.Applied)
	s.Equal(1, s.player(s.state(), 3).Stat(models.StatTries))

	s.flush()
	entry := s.logHook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal(logrus.WarnLevel, entry.Level)
	s.Equal("failed to save match snapshot", entry.Message)
}

func (s *MatchServiceTestSuite) TestResumeRestoresState() {
	state := s.begin()
	s.startClock()
	s.tick(42)
	_, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: s.player(state, 3).ID, Stat: models.StatTries, Delta: 1})
	s.Require().NoError(err)
	_, err = s.matchService.IssueCard(s.ctx, &IssueCardInput{PlayerID: s.player(state, 4).ID, Card: models.CardYellow, Reason: "Offside"})
	s.Require().NoError(err)
	// a parked stat is not carried across a restart
	_, err = s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: s.player(state, 5).ID, Stat: models.StatErrors, Delta: 1})
	s.Require().NoError(err)
	before := s.state()

	// simulate a restart
	s.matchService.Close()
	s.matchService = s.newService()

	check, err := s.matchService.CheckResume(s.ctx, &CheckResumeInput{})
	s.Require().NoError(err)
	s.True(check.Available)
	s.Equal(before.ID, check.MatchID)
	s.Equal(42, check.MatchSeconds)

	out, err := s.matchService.ResumeMatch(s.ctx, &ResumeMatchInput{})
	s.Require().NoError(err)
	s.Equal(before, out.State)

	stateOut, err := s.matchService.GetState(s.ctx, &GetStateInput{})
	s.Require().NoError(err)
	s.Nil(stateOut.Pending)

	_, err = s.matchService.ResumeMatch(s.ctx, &ResumeMatchInput{})
	s.ErrorIs(err, ErrMatchInProgress)
}

func (s *MatchServiceTestSuite) TestResumeWithoutSnapshot() {
	check, err := s.matchService.CheckResume(s.ctx, &CheckResumeInput{})
	s.Require().NoError(err)
	s.False(check.Available)

	_, err = s.matchService.ResumeMatch(s.ctx, &ResumeMatchInput{})
	s.ErrorIs(err, ErrNoSnapshot)
}

func (s *MatchServiceTestSuite) TestSubscribeReceivesCommittedState() {
	state := s.begin()
	var seen []*models.MatchState
	unsubscribe := s.matchService.Subscribe(func(st *models.MatchState) {
		seen = append(seen, st)
	})

	s.startClock()
	s.tick(1)
	s.Require().Len(seen, 2)
	s.True(seen[0].IsRunning)
	s.Equal(1, seen[1].MatchSeconds)

	// rejected and parked changes are not published
	_, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: s.player(state, 1).ID, Stat: models.StatErrors, Delta: 1})
	s.Require().NoError(err)
	s.Len(seen, 2)

	unsubscribe()
	s.tick(1)
	s.Len(seen, 2)
}

func (s *MatchServiceTestSuite) TestTimelineOrdersAndFilters() {
	state := s.begin()
	p1, p2 := s.player(state, 1), s.player(state, 2)
	s.startClock()

	s.tick(5)
	_, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: p1.ID, Stat: models.StatTries, Delta: 1})
	s.Require().NoError(err)
	_, err = s.matchService.ToggleFieldStatus(s.ctx, &ToggleFieldStatusInput{PlayerID: p2.ID})
	s.Require().NoError(err)
	s.tick(5)
	_, err = s.matchService.IssueCard(s.ctx, &IssueCardInput{PlayerID: p1.ID, Card: models.CardYellow})
	s.Require().NoError(err)

	out, err := s.matchService.GetTimeline(s.ctx, &GetTimelineInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)
	s.Equal(models.LogEntryTry, out.Entries[0].Type)
	s.Equal(models.LogEntrySubstitution, out.Entries[1].Type)
	s.Equal(models.LogEntryYellowCard, out.Entries[2].Type)
	s.Less(out.Entries[0].Sequence, out.Entries[1].Sequence)

	out, err = s.matchService.GetTimeline(s.ctx, &GetTimelineInput{PlayerID: p1.ID})
	s.Require().NoError(err)
	s.Len(out.Entries, 2)

	out, err = s.matchService.GetTimeline(s.ctx, &GetTimelineInput{Types: []models.LogEntryType{models.LogEntrySubstitution}})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 1)
	s.Equal(p2.ID, out.Entries[0].PlayerID)
}

func (s *MatchServiceTestSuite) TestEventLogIsNewestFirst() {
	state := s.begin()
	s.startClock()

	_, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{PlayerID: s.player(state, 1).ID, Stat: models.StatTries, Delta: 1})
	s.Require().NoError(err)
	s.tick(3)
	_, err = s.matchService.ToggleFieldStatus(s.ctx, &ToggleFieldStatusInput{PlayerID: s.player(state, 2).ID})
	s.Require().NoError(err)

	log := s.state().EventLog
	s.Require().Len(log, 2)
	s.Equal(models.LogEntrySubstitution, log[0].Type)
	s.Equal(3, log[0].MatchSecond)
	s.Equal(models.LogEntryTry, log[1].Type)
	s.Greater(log[0].Sequence, log[1].Sequence)

	s.flush()
	s.Require().NotNil(s.saved)
	s.Equal(models.LogEntrySubstitution, s.saved.State.EventLog[0].Type)
}

func (s *MatchServiceTestSuite) TestStatsNeverGoNegative() {
	state := s.begin()
	s.startClock()
	p7, p8 := s.player(state, 7), s.player(state, 8)

	steps := []struct {
		player *models.Player
		stat   models.StatKind
		delta  int
	}{
		{p7, models.StatTackles, -1},
		{p7, models.StatTackles, 2},
		{p7, models.StatTackles, -5},
		{p8, models.StatTries, 1},
		{p8, models.StatTries, -1},
		{p8, models.StatTries, -1},
		{p8, models.StatKicks, 3},
		{p7, models.StatBallCarries, -2},
		{p7, models.StatBallCarries, 1},
		{p8, models.StatKicks, -2},
		{p8, models.StatKicks, -2},
		{p7, models.StatTackles, 1},
	}

	expected := map[string]map[models.StatKind]int{p7.ID: {}, p8.ID: {}}
	for i, step := range steps {
		out, err := s.matchService.ApplyStatDelta(s.ctx, &ApplyStatDeltaInput{
			PlayerID: step.player.ID,
			Stat:     step.stat,
			Delta:    step.delta,
		})
		s.Require().NoError(err, "step %d", i)

		want := expected[step.player.ID][step.stat] + step.delta
		if want < 0 {
			want = 0
		}
		expected[step.player.ID][step.stat] = want
		s.Equal(want, out.Value, "step %d", i)

		for _, p := range s.state().Roster {
			for kind, value := range p.Stats {
				s.GreaterOrEqual(value, 0, "step %d: %s %s", i, p.JerseyNumber, kind)
			}
		}
	}

	current := s.state()
	s.Equal(1, s.player(current, 7).Stat(models.StatTackles))
	s.Equal(1, s.player(current, 7).Stat(models.StatBallCarries))
	s.Equal(0, s.player(current, 8).Stat(models.StatTries))
	s.Equal(0, s.player(current, 8).Stat(models.StatKicks))
}

func TestMatchServiceSuite(t *testing.T) {
	suite.Run(t, new(MatchServiceTestSuite))
}
