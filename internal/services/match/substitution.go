package match

import (
	"context"
	"strings"

	"github.com/KirkDiggler/touchline/internal/models"
)

// ToggleFieldStatus moves a player on or off the field. Carded players can
// be toggled; whether that is appropriate is left to the coach.
func (s *service) ToggleFieldStatus(ctx context.Context, input *ToggleFieldStatusInput) (*ToggleFieldStatusOutput, error) {
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

	player.IsOnField = !player.IsOnField
	at := state.MatchSeconds
	player.LastSubstitutionTime = &at

	direction := models.SubstitutionOff
	if player.IsOnField {
		direction = models.SubstitutionOn
	}
	entry := s.appendEntry(player, models.LogEntrySubstitution, entryDetails{reason: direction})
	s.commit(ctx)

	return &ToggleFieldStatusOutput{
		Player: player.Clone(),
		Entry:  entry.Clone(),
	}, nil
}

// UpdatePlayerDetails edits a slot's name or jersey number. Existing log
// entries keep the details they were written with.
func (s *service) UpdatePlayerDetails(ctx context.Context, input *UpdatePlayerDetailsInput) (*UpdatePlayerDetailsOutput, error) {
	s.lock()
	defer s.unlock()

	if _, err := s.activeMatch(); err != nil {
		return nil, err
	}
	player, err := s.findPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}

	changed := false
	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" && name != player.Name {
			player.Name = name
			changed = true
		}
	}
	if input.JerseyNumber != nil {
		if number := strings.TrimSpace(*input.JerseyNumber); number != player.JerseyNumber {
			player.JerseyNumber = number
			changed = true
		}
	}
	if changed {
		s.commit(ctx)
	}

	return &UpdatePlayerDetailsOutput{Player: player.Clone()}, nil
}
