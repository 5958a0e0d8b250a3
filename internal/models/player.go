package models

// CardStatus represents a player's disciplinary state
type CardStatus string

const (
	// CardNone indicates the player is not carded
	CardNone CardStatus = "none"

	// CardYellow indicates the player is in the sin-bin
	CardYellow CardStatus = "yellow"

	// CardRed indicates the player has been sent off for the rest of the match
	CardRed CardStatus = "red"
)

// Valid reports whether the status is one of the known card states
func (c CardStatus) Valid() bool {
	return c == CardNone || c == CardYellow || c == CardRed
}

// Player represents one roster slot in a match
type Player struct {
	// ID is owned by this match instance
	ID string `json:"id"`

	// ExternalID references the squad directory entry, if any
	ExternalID string `json:"external_id,omitempty"`

	// Name is the display name of the player
	Name string `json:"name"`

	// JerseyNumber is free text and not guaranteed unique while editing
	JerseyNumber string `json:"jersey_number"`

	// Stats holds a non-negative count per stat kind
	Stats map[StatKind]int `json:"stats"`

	// CardStatus is the player's current card
	CardStatus CardStatus `json:"card_status"`

	// IsOnField indicates the player is currently on the field
	IsOnField bool `json:"is_on_field"`

	// TotalSecondsOnField only ever increases
	TotalSecondsOnField int `json:"total_seconds_on_field"`

	// LastSubstitutionTime is the match second of the last field status change
	LastSubstitutionTime *int `json:"last_substitution_time,omitempty"`

	// SinBinStartTime is the match second a yellow card was issued
	SinBinStartTime *int `json:"sin_bin_start_time,omitempty"`
}

// Stat returns the count for a kind, zero if never recorded
func (p *Player) Stat(kind StatKind) int {
	if p.Stats == nil {
		return 0
	}
	return p.Stats[kind]
}

// AccruesFieldTime reports whether a clock tick counts towards the player's time on field
func (p *Player) AccruesFieldTime() bool {
	return p.IsOnField && p.CardStatus != CardRed
}

// SinBinElapsed returns the seconds served in the sin-bin, or false when not sin-binned
func (p *Player) SinBinElapsed(matchSeconds int) (int, bool) {
	if p.CardStatus != CardYellow || p.SinBinStartTime == nil {
		return 0, false
	}
	elapsed := matchSeconds - *p.SinBinStartTime
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed, true
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	out.Stats = make(map[StatKind]int, len(p.Stats))
	for k, v := range p.Stats {
		out.Stats[k] = v
	}
	out.LastSubstitutionTime = cloneInt(p.LastSubstitutionTime)
	out.SinBinStartTime = cloneInt(p.SinBinStartTime)
	return &out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
