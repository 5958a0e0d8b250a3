package metrics

import (
	"testing"

	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func player(id string, card models.CardStatus, stats map[models.StatKind]int) *models.Player {
	return &models.Player{
		ID:         id,
		Name:       "Player " + id,
		Stats:      stats,
		CardStatus: card,
	}
}

func TestImpact(t *testing.T) {
	weights := DefaultWeights()
	tests := []struct {
		name   string
		player *models.Player
		want   int
	}{
		{
			name:   "no stats",
			player: player("1", models.CardNone, nil),
			want:   0,
		},
		{
			name: "weighted sum",
			player: player("1", models.CardNone, map[models.StatKind]int{
				models.StatTackles: 10,
				models.StatTries:   1,
				models.StatErrors:  2,
			}),
			want: 10*2 + 10 - 2*2,
		},
		{
			name: "big plays count",
			player: player("1", models.CardNone, map[models.StatKind]int{
				models.StatLineBreaks: 2,
				models.StatOffloads:   1,
			}),
			want: 2*5 + 3,
		},
		{
			name: "yellow card penalty applied once",
			player: player("1", models.CardYellow, map[models.StatKind]int{
				models.StatTackles: 3,
			}),
			want: 6 - 5,
		},
		{
			name: "red card penalty applied once",
			player: player("1", models.CardRed, map[models.StatKind]int{
				models.StatPenaltiesConceded: 2,
			}),
			want: -6 - 15,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Impact(tt.player, weights))
		})
	}
}

func TestTotalsLeaders(t *testing.T) {
	roster := []*models.Player{
		player("1", models.CardNone, map[models.StatKind]int{models.StatTackles: 5, models.StatTries: 1}),
		player("2", models.CardNone, map[models.StatKind]int{models.StatTackles: 5}),
		player("3", models.CardNone, map[models.StatKind]int{models.StatTackles: 2}),
	}

	totals := Totals(roster)

	assert.Equal(t, 12, totals.Totals[models.StatTackles])
	assert.Equal(t, 5, totals.MaxValues[models.StatTackles])
	assert.Equal(t, 2, totals.LeaderCounts[models.StatTackles])
	assert.Equal(t, 1, totals.Totals[models.StatTries])
	assert.Equal(t, 1, totals.LeaderCounts[models.StatTries])

	assert.True(t, IsLeader(totals, roster[0], models.StatTackles))
	assert.True(t, IsLeader(totals, roster[1], models.StatTackles))
	assert.False(t, IsLeader(totals, roster[2], models.StatTackles))

	// nobody leads a stat nobody has recorded
	assert.Equal(t, 0, totals.MaxValues[models.StatKicks])
	assert.Equal(t, 0, totals.LeaderCounts[models.StatKicks])
	assert.False(t, IsLeader(totals, roster[2], models.StatKicks))
}

func TestScore(t *testing.T) {
	state := &models.MatchState{
		Roster: []*models.Player{
			player("1", models.CardNone, map[models.StatKind]int{models.StatTries: 2, models.StatKicks: 3}),
			player("2", models.CardNone, map[models.StatKind]int{models.StatTries: 1}),
		},
		HomeScoreAdjustment: 1,
		OpponentScore:       12,
	}

	score := Score(state)
	assert.Equal(t, 3*PointsPerTry+3*PointsPerKick, score.Derived)
	assert.Equal(t, score.Derived+1, score.Home)
	assert.Equal(t, 12, score.Away)
}

func TestSummarizeIsDeterministic(t *testing.T) {
	state := &models.MatchState{
		Roster: []*models.Player{
			player("a", models.CardNone, map[models.StatKind]int{models.StatTackles: 1}),
			player("b", models.CardNone, map[models.StatKind]int{models.StatTries: 1}),
			player("c", models.CardNone, map[models.StatKind]int{models.StatTackles: 1}),
		},
	}

	first := Summarize(state, DefaultWeights())
	second := Summarize(state, DefaultWeights())
	assert.Equal(t, first, second)

	require.Len(t, first.Ranking, 3)
	assert.Equal(t, "b", first.Ranking[0].PlayerID)
	// ties keep roster order
	assert.Equal(t, "a", first.Ranking[1].PlayerID)
	assert.Equal(t, "c", first.Ranking[2].PlayerID)
}

func TestWeightsOverlay(t *testing.T) {
	base := DefaultWeights()

	w, err := base.Overlay(map[string]int{"tackles": 7})
	require.NoError(t, err)
	assert.Equal(t, 7, w.Weight(models.StatTackles))
	assert.Equal(t, 2, base.Weight(models.StatTackles))

	_, err = base.Overlay(map[string]int{"scrums": 1})
	assert.Error(t, err)
}
