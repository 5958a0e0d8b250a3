package models

// StatKind identifies a countable per-player statistic
type StatKind string

const (
	// StatTackles counts completed tackles
	StatTackles StatKind = "tackles"

	// StatBallCarries counts hit-ups and runs with the ball
	StatBallCarries StatKind = "ball_carries"

	// StatPenaltiesConceded counts penalties given away
	StatPenaltiesConceded StatKind = "penalties_conceded"

	// StatErrors counts handling errors and turnovers
	StatErrors StatKind = "errors"

	// StatTries counts tries scored
	StatTries StatKind = "tries"

	// StatKicks counts successful goal kicks
	StatKicks StatKind = "kicks"

	// Big play kinds are logged through the richer big play flow

	StatLineBreaks      StatKind = "line_breaks"
	StatOffloads        StatKind = "offloads"
	StatTryAssists      StatKind = "try_assists"
	StatTrySavers       StatKind = "try_savers"
	StatForcedTurnovers StatKind = "forced_turnovers"
	StatFortyTwenties   StatKind = "forty_twenties"
)

// StatDefinition describes how a stat kind behaves in the engine
type StatDefinition struct {
	// Label is the human readable name
	Label string

	// Sign is +1 for stats that help the team and -1 for stats that hurt it
	Sign int

	// LogType is the entry type a positive increment produces
	LogType LogEntryType

	// NeedsContext marks kinds whose increments wait for a location and reason
	NeedsContext bool

	// BigPlay marks kinds recorded through the big play flow
	BigPlay bool
}

// statOrder fixes iteration order so derived values never depend on map order
var statOrder = []StatKind{
	StatTackles,
	StatBallCarries,
	StatPenaltiesConceded,
	StatErrors,
	StatTries,
	StatKicks,
	StatLineBreaks,
	StatOffloads,
	StatTryAssists,
	StatTrySavers,
	StatForcedTurnovers,
	StatFortyTwenties,
}

// StatDefinitions is the exhaustive table of stat kinds
var StatDefinitions = map[StatKind]StatDefinition{
	StatTackles:           {Label: "Tackles", Sign: 1, LogType: LogEntryOther},
	StatBallCarries:       {Label: "Ball Carries", Sign: 1, LogType: LogEntryOther},
	StatPenaltiesConceded: {Label: "Penalties Conceded", Sign: -1, LogType: LogEntryPenalty, NeedsContext: true},
	StatErrors:            {Label: "Errors", Sign: -1, LogType: LogEntryError, NeedsContext: true},
	StatTries:             {Label: "Tries", Sign: 1, LogType: LogEntryTry},
	StatKicks:             {Label: "Kicks", Sign: 1, LogType: LogEntryOther},
	StatLineBreaks:        {Label: "Line Breaks", Sign: 1, LogType: LogEntryOther, BigPlay: true},
	StatOffloads:          {Label: "Offloads", Sign: 1, LogType: LogEntryOther, BigPlay: true},
	StatTryAssists:        {Label: "Try Assists", Sign: 1, LogType: LogEntryOther, BigPlay: true},
	StatTrySavers:         {Label: "Try Savers", Sign: 1, LogType: LogEntryOther, BigPlay: true},
	StatForcedTurnovers:   {Label: "Forced Turnovers", Sign: 1, LogType: LogEntryOther, BigPlay: true},
	StatFortyTwenties:     {Label: "40/20s", Sign: 1, LogType: LogEntryOther, BigPlay: true},
}

// AllStatKinds returns every stat kind in display order
func AllStatKinds() []StatKind {
	out := make([]StatKind, len(statOrder))
	copy(out, statOrder)
	return out
}

// BigPlayKinds returns the kinds recorded through the big play flow
func BigPlayKinds() []StatKind {
	var out []StatKind
	for _, kind := range statOrder {
		if StatDefinitions[kind].BigPlay {
			out = append(out, kind)
		}
	}
	return out
}

// Definition returns the table entry for the kind
func (k StatKind) Definition() (StatDefinition, bool) {
	def, ok := StatDefinitions[k]
	return def, ok
}

// Valid reports whether the kind is part of the table
func (k StatKind) Valid() bool {
	_, ok := StatDefinitions[k]
	return ok
}

// Label returns the display label, falling back to the raw kind
func (k StatKind) Label() string {
	if def, ok := StatDefinitions[k]; ok {
		return def.Label
	}
	return string(k)
}

// NeedsContext reports whether positive increments require a location and reason
func (k StatKind) NeedsContext() bool {
	return StatDefinitions[k].NeedsContext
}

// IsBigPlay reports whether the kind belongs to the big play flow
func (k StatKind) IsBigPlay() bool {
	return StatDefinitions[k].BigPlay
}
