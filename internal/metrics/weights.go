package metrics

import (
	"fmt"

	"github.com/KirkDiggler/touchline/internal/models"
)

// Weights are the signed multipliers used to compute a player's impact score
type Weights struct {
	// Stats holds one weight per stat kind; missing kinds weigh zero
	Stats map[models.StatKind]int

	// YellowCard is added once while a player holds a yellow card
	YellowCard int

	// RedCard is added once when a player has been sent off
	RedCard int
}

// DefaultWeights returns the built-in weight table
func DefaultWeights() Weights {
	return Weights{
		Stats: map[models.StatKind]int{
			models.StatTackles:           2,
			models.StatBallCarries:       1,
			models.StatPenaltiesConceded: -3,
			models.StatErrors:            -2,
			models.StatTries:             10,
			models.StatKicks:             2,
			models.StatLineBreaks:        5,
			models.StatOffloads:          3,
			models.StatTryAssists:        6,
			models.StatTrySavers:         6,
			models.StatForcedTurnovers:   4,
			models.StatFortyTwenties:     5,
		},
		YellowCard: -5,
		RedCard:    -15,
	}
}

// Weight returns the weight for a stat kind
func (w Weights) Weight(kind models.StatKind) int {
	return w.Stats[kind]
}

// Clone returns a copy that can be modified without touching w
func (w Weights) Clone() Weights {
	out := Weights{
		Stats:      make(map[models.StatKind]int, len(w.Stats)),
		YellowCard: w.YellowCard,
		RedCard:    w.RedCard,
	}
	for k, v := range w.Stats {
		out.Stats[k] = v
	}
	return out
}

// Overlay returns a copy of w with the given stat weights replaced
func (w Weights) Overlay(stats map[string]int) (Weights, error) {
	out := w.Clone()
	for key, value := range stats {
		kind := models.StatKind(key)
		if !kind.Valid() {
			return Weights{}, fmt.Errorf("unknown stat kind %q", key)
		}
		out.Stats[kind] = value
	}
	return out, nil
}
