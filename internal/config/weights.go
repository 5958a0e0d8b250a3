package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/KirkDiggler/touchline/internal/metrics"
)

// weightsFile is the TOML layout of a weights file:
//
//	yellow_card = -5
//	red_card = -15
//
//	[stats]
//	tackles = 2
//	tries = 10
type weightsFile struct {
	Stats      map[string]int `toml:"stats"`
	YellowCard *int           `toml:"yellow_card"`
	RedCard    *int           `toml:"red_card"`
}

// LoadWeights overlays the weights in path on the defaults. An empty path
// returns the defaults.
func LoadWeights(path string) (metrics.Weights, error) {
	weights := metrics.DefaultWeights()
	if path == "" {
		return weights, nil
	}

	var file weightsFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return metrics.Weights{}, fmt.Errorf("failed to decode weights file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return metrics.Weights{}, fmt.Errorf("unknown keys in weights file: %v", undecoded)
	}

	weights, err = weights.Overlay(file.Stats)
	if err != nil {
		return metrics.Weights{}, fmt.Errorf("invalid weights file: %w", err)
	}
	if file.YellowCard != nil {
		weights.YellowCard = *file.YellowCard
	}
	if file.RedCard != nil {
		weights.RedCard = *file.RedCard
	}
	return weights, nil
}
