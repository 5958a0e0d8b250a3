package metrics

import (
	"sort"

	"github.com/KirkDiggler/touchline/internal/models"
)

// Points awarded by the tracked scoring stats
const (
	PointsPerTry  = 4
	PointsPerKick = 2
)

// TeamTotals aggregates each stat kind across the roster
type TeamTotals struct {
	// Totals is the team sum per kind
	Totals map[models.StatKind]int

	// MaxValues is the highest individual value per kind
	MaxValues map[models.StatKind]int

	// LeaderCounts is how many players share the highest value. Zero when nobody has recorded the stat.
	LeaderCounts map[models.StatKind]int
}

// MatchScore is the current scoreline
type MatchScore struct {
	// Derived is the home score computed from tracked tries and kicks
	Derived int

	// Home is Derived plus the manual adjustment
	Home int

	// Away is the opponent score as entered
	Away int
}

// PlayerImpact pairs a roster slot with its impact score
type PlayerImpact struct {
	PlayerID string
	Name     string
	Impact   int
}

// Summary bundles every derived value for a match
type Summary struct {
	Totals TeamTotals
	Score  MatchScore

	// Impact is keyed by player ID
	Impact map[string]int

	// Ranking orders players by impact, highest first, ties in roster order
	Ranking []PlayerImpact
}

// Totals computes team sums, max values and leader counts
func Totals(roster []*models.Player) TeamTotals {
	kinds := models.AllStatKinds()
	out := TeamTotals{
		Totals:       make(map[models.StatKind]int, len(kinds)),
		MaxValues:    make(map[models.StatKind]int, len(kinds)),
		LeaderCounts: make(map[models.StatKind]int, len(kinds)),
	}
	for _, kind := range kinds {
		total, max, count := 0, 0, 0
		for _, p := range roster {
			v := p.Stat(kind)
			total += v
			switch {
			case v > max:
				max = v
				count = 1
			case v == max && v > 0:
				count++
			}
		}
		out.Totals[kind] = total
		out.MaxValues[kind] = max
		out.LeaderCounts[kind] = count
	}
	return out
}

// IsLeader reports whether the player holds the team high for the kind
func IsLeader(totals TeamTotals, player *models.Player, kind models.StatKind) bool {
	max := totals.MaxValues[kind]
	return max > 0 && player.Stat(kind) == max
}

// Impact computes the weighted sum of a player's stats plus any card penalty
func Impact(player *models.Player, weights Weights) int {
	score := 0
	for _, kind := range models.AllStatKinds() {
		score += weights.Weight(kind) * player.Stat(kind)
	}
	switch player.CardStatus {
	case models.CardYellow:
		score += weights.YellowCard
	case models.CardRed:
		score += weights.RedCard
	}
	return score
}

// Score computes the scoreline from tracked stats and manual corrections
func Score(state *models.MatchState) MatchScore {
	derived := 0
	for _, p := range state.Roster {
		derived += p.Stat(models.StatTries)*PointsPerTry + p.Stat(models.StatKicks)*PointsPerKick
	}
	away := state.OpponentScore
	if away < 0 {
		away = 0
	}
	return MatchScore{
		Derived: derived,
		Home:    derived + state.HomeScoreAdjustment,
		Away:    away,
	}
}

// Summarize computes every derived value for the match
func Summarize(state *models.MatchState, weights Weights) Summary {
	summary := Summary{
		Totals:  Totals(state.Roster),
		Score:   Score(state),
		Impact:  make(map[string]int, len(state.Roster)),
		Ranking: make([]PlayerImpact, 0, len(state.Roster)),
	}
	for _, p := range state.Roster {
		impact := Impact(p, weights)
		summary.Impact[p.ID] = impact
		summary.Ranking = append(summary.Ranking, PlayerImpact{
			PlayerID: p.ID,
			Name:     p.Name,
			Impact:   impact,
		})
	}
	sort.SliceStable(summary.Ranking, func(i, j int) bool {
		return summary.Ranking[i].Impact > summary.Ranking[j].Impact
	})
	return summary
}
