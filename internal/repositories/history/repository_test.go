package history

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo  func() (Repository, func())
	repo     Repository
	teardown func()
	testNow  time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo, s.teardown = s.newRepo()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.teardown()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (Repository, func()) {
			mr, err := miniredis.Run()
			if err != nil {
				t.Fatalf("miniredis: %v", err)
			}
			client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
			repo, err := NewRedis(&Config{RedisClient: client})
			if err != nil {
				t.Fatalf("new redis repository: %v", err)
			}
			return repo, func() {
				client.Close()
				mr.Close()
			}
		},
	})
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() (Repository, func()) {
			db, err := sql.Open("sqlite", ":memory:")
			if err != nil {
				t.Fatalf("open sqlite: %v", err)
			}
			db.SetMaxOpenConns(1)
			repo, err := NewSQLite(&SQLiteConfig{DB: db})
			if err != nil {
				t.Fatalf("new sqlite repository: %v", err)
			}
			return repo, func() {
				db.Close()
			}
		},
	})
}

func (s *RepositoryTestSuite) record(id string, date time.Time) *models.MatchRecord {
	return &models.MatchRecord{
		ID:           id,
		Date:         date,
		TeamName:     "Home",
		OpponentName: "Away",
		FinalScore:   "18 - 12",
		Result:       models.MatchResultWin,
		Data: models.MatchData{
			Roster: []*models.Player{
				{ID: "p1", Name: "Alex", JerseyNumber: "1", Stats: map[models.StatKind]int{models.StatTries: 3}, CardStatus: models.CardNone},
			},
			EventLog: []*models.GameLogEntry{
				{ID: "e1", Sequence: 1, MatchSecond: 60, FormattedTime: "01:00", PlayerID: "p1", Type: models.LogEntryTry, Period: models.PeriodFirst},
			},
			MatchSeconds:    4800,
			Period:          models.PeriodSecond,
			CompletedSets:   20,
			TotalSets:       25,
			OpponentScore:   12,
			ScoreAdjustment: 6,
		},
		Voting: &models.Votes{ThreePointsID: "p1", TwoPointsID: "p2", OnePointID: "p3"},
	}
}

func (s *RepositoryTestSuite) TestSaveAndGetRecord() {
	record := s.record("match-1", s.testNow)

	err := s.repo.SaveRecord(context.Background(), &SaveRecordInput{Record: record})
	s.Require().NoError(err)

	got, err := s.repo.GetRecord(context.Background(), &GetRecordInput{RecordID: "match-1"})
	s.Require().NoError(err)
	s.Equal("18 - 12", got.FinalScore)
	s.Equal(models.MatchResultWin, got.Result)
	s.True(record.Date.Equal(got.Date))
	s.Equal(record.Data, got.Data)
	s.Equal(record.Voting, got.Voting)
}

func (s *RepositoryTestSuite) TestGetMissingRecord() {
	_, err := s.repo.GetRecord(context.Background(), &GetRecordInput{RecordID: "missing"})
	s.ErrorIs(err, ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestListRecordsNewestFirst() {
	s.Require().NoError(s.repo.SaveRecord(context.Background(), &SaveRecordInput{Record: s.record("old", s.testNow)}))
	s.Require().NoError(s.repo.SaveRecord(context.Background(), &SaveRecordInput{Record: s.record("new", s.testNow.Add(7*24*time.Hour))}))
	s.Require().NoError(s.repo.SaveRecord(context.Background(), &SaveRecordInput{Record: s.record("mid", s.testNow.Add(24*time.Hour))}))

	out, err := s.repo.ListRecords(context.Background(), &ListRecordsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 3)
	s.Equal("new", out.Records[0].ID)
	s.Equal("mid", out.Records[1].ID)
	s.Equal("old", out.Records[2].ID)

	limited, err := s.repo.ListRecords(context.Background(), &ListRecordsInput{Limit: 2})
	s.Require().NoError(err)
	s.Len(limited.Records, 2)
	s.Equal("new", limited.Records[0].ID)
}

func (s *RepositoryTestSuite) TestListEmpty() {
	out, err := s.repo.ListRecords(context.Background(), &ListRecordsInput{})
	s.Require().NoError(err)
	s.NotNil(out.Records)
	s.Len(out.Records, 0)
}

func (s *RepositoryTestSuite) TestSaveRecordValidation() {
	s.Error(s.repo.SaveRecord(context.Background(), nil))
	s.Error(s.repo.SaveRecord(context.Background(), &SaveRecordInput{Record: &models.MatchRecord{}}))
}

func (s *RepositoryTestSuite) TestSaveRecordTwiceReplaces() {
	record := s.record("match-1", s.testNow)
	s.Require().NoError(s.repo.SaveRecord(context.Background(), &SaveRecordInput{Record: record}))

	record.FinalScore = "20 - 12"
	s.Require().NoError(s.repo.SaveRecord(context.Background(), &SaveRecordInput{Record: record}))

	out, err := s.repo.ListRecords(context.Background(), &ListRecordsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Records, 1)
	s.Equal("20 - 12", out.Records[0].FinalScore)
}
