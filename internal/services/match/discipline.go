package match

import (
	"context"

	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/sirupsen/logrus"
)

// IssueCard shows a yellow or red card. The player leaves the field and a
// yellow card starts the sin-bin at the current match second.
func (s *service) IssueCard(ctx context.Context, input *IssueCardInput) (*IssueCardOutput, error) {
	if input.PlayerID == "" {
		return nil, ErrNoPlayerSelected
	}
	var entryType models.LogEntryType
	switch input.Card {
	case models.CardYellow:
		entryType = models.LogEntryYellowCard
	case models.CardRed:
		entryType = models.LogEntryRedCard
	default:
		return nil, ErrInvalidCard
	}

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
	if player.CardStatus == models.CardRed {
		return nil, ErrPlayerRedCarded
	}

	player.CardStatus = input.Card
	player.IsOnField = false
	if input.Card == models.CardYellow {
		start := state.MatchSeconds
		player.SinBinStartTime = &start
	} else {
		player.SinBinStartTime = nil
	}
	entry := s.appendEntry(player, entryType, entryDetails{reason: input.Reason})

	s.log.WithFields(logrus.Fields{
		"player_id": player.ID,
		"card":      input.Card,
	}).Info("card issued")
	s.commit(ctx)

	return &IssueCardOutput{
		Player: player.Clone(),
		Entry:  entry.Clone(),
	}, nil
}

// ClearCard clears a yellow card once the sin-bin is served. The player
// stays off the field until substituted back on.
func (s *service) ClearCard(ctx context.Context, input *ClearCardInput) (*ClearCardOutput, error) {
	s.lock()
	defer s.unlock()

	if _, err := s.activeMatch(); err != nil {
		return nil, err
	}
	player, err := s.findPlayer(input.PlayerID)
	if err != nil {
		return nil, err
	}

	switch player.CardStatus {
	case models.CardRed:
		return nil, ErrPlayerRedCarded
	case models.CardNone:
		return &ClearCardOutput{Player: player.Clone()}, nil
	}

	player.CardStatus = models.CardNone
	player.SinBinStartTime = nil
	s.commit(ctx)

	return &ClearCardOutput{
		Cleared: true,
		Player:  player.Clone(),
	}, nil
}

// OverrideCard sets a card directly to correct a mistaken entry. No log entry
// is written. Any card takes the player off the field.
func (s *service) OverrideCard(ctx context.Context, input *OverrideCardInput) (*OverrideCardOutput, error) {
	if !input.Card.Valid() {
		return nil, ErrInvalidCard
	}

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

	previous := player.CardStatus
	player.CardStatus = input.Card
	switch input.Card {
	case models.CardYellow:
		player.IsOnField = false
		if previous != models.CardYellow || player.SinBinStartTime == nil {
			start := state.MatchSeconds
			player.SinBinStartTime = &start
		}
	case models.CardRed:
		player.IsOnField = false
		player.SinBinStartTime = nil
	default:
		player.SinBinStartTime = nil
	}

	s.log.WithFields(logrus.Fields{
		"player_id": player.ID,
		"from":      previous,
		"to":        input.Card,
	}).Info("card overridden")
	s.commit(ctx)

	return &OverrideCardOutput{Player: player.Clone()}, nil
}

// EligibleForCard lists the players who have not been sent off, in roster order
func (s *service) EligibleForCard(ctx context.Context, input *EligibleForCardInput) (*EligibleForCardOutput, error) {
	s.lock()
	defer s.unlock()

	state, err := s.activeMatch()
	if err != nil {
		return nil, err
	}
	players := make([]*models.Player, 0, len(state.Roster))
	for _, p := range state.Roster {
		if p.CardStatus != models.CardRed {
			players = append(players, p.Clone())
		}
	}
	return &EligibleForCardOutput{Players: players}, nil
}
