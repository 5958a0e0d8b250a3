package ticker

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/touchline/internal/common/clock/mocks"
	"github.com/KirkDiggler/touchline/internal/services/match"
	matchMocks "github.com/KirkDiggler/touchline/internal/services/match/mocks"
	logTest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RunnerTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClock  *clockMocks.MockClock
	mockTicker *clockMocks.MockTicker
	mockMatch  *matchMocks.MockService
	ticks      chan time.Time
	runner     *Runner
}

func (s *RunnerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockTicker = clockMocks.NewMockTicker(s.mockCtrl)
	s.mockMatch = matchMocks.NewMockService(s.mockCtrl)
	s.ticks = make(chan time.Time)

	logger, _ := logTest.NewNullLogger()
	runner, err := New(&Config{
		Match:  s.mockMatch,
		Clock:  s.mockClock,
		Logger: logger,
	})
	s.Require().NoError(err)
	s.runner = runner
}

func (s *RunnerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RunnerTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilTickable)

	_, err = New(&Config{Match: s.mockMatch})
	s.ErrorIs(err, ErrNilClock)
}

func (s *RunnerTestSuite) TestRunTicksUntilCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.mockClock.EXPECT().NewTicker(DefaultInterval).Return(s.mockTicker)
	s.mockTicker.EXPECT().C().Return((<-chan time.Time)(s.ticks)).AnyTimes()
	s.mockTicker.EXPECT().Stop()

	ticked := make(chan struct{}, 3)
	s.mockMatch.EXPECT().Tick(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *match.TickInput) (*match.TickOutput, error) {
			ticked <- struct{}{}
			return &match.TickOutput{Ticked: true}, nil
		}).Times(2)
	s.mockMatch.EXPECT().Tick(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *match.TickInput) (*match.TickOutput, error) {
			ticked <- struct{}{}
			return nil, errors.New("boom")
		})

	done := make(chan struct{})
	go func() {
		s.runner.Run(ctx)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		s.ticks <- time.Now()
		<-ticked
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("runner did not stop")
	}
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerTestSuite))
}
