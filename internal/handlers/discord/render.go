package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/touchline/internal/metrics"
	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/bwmarrin/discordgo"
)

// entryIcons prefixes timeline lines by entry type
var entryIcons = map[models.LogEntryType]string{
	models.LogEntryTry:          "🏉",
	models.LogEntryPenalty:      "🚩",
	models.LogEntryError:        "❌",
	models.LogEntryYellowCard:   "🟨",
	models.LogEntryRedCard:      "🟥",
	models.LogEntrySubstitution: "🔁",
	models.LogEntryBigPlay:      "⭐",
	models.LogEntryOther:        "•",
}

func matchTitle(state *models.MatchState) string {
	team, opponent := state.TeamName, state.OpponentName
	if team == "" {
		team = "Home"
	}
	if opponent == "" {
		opponent = "Opposition"
	}
	return fmt.Sprintf("%s vs %s", team, opponent)
}

func playerLabel(p *models.Player) string {
	return fmt.Sprintf("#%s %s", p.JerseyNumber, p.Name)
}

// describeEntry renders a log entry as one line
func describeEntry(e *models.GameLogEntry) string {
	if e == nil {
		return "Recorded."
	}

	var what string
	switch e.Type {
	case models.LogEntrySubstitution:
		what = "subbed " + e.Reason
	case models.LogEntryYellowCard:
		what = "yellow card"
	case models.LogEntryRedCard:
		what = "red card"
	default:
		what = strings.ToLower(e.Stat.Label())
		if what == "" {
			what = string(e.Type)
		}
	}

	line := fmt.Sprintf("%s `%s` #%s %s: %s", entryIcons[e.Type], e.FormattedTime, e.PlayerNumber, e.PlayerName, what)
	if e.Type != models.LogEntrySubstitution && e.Reason != "" {
		line += " (" + e.Reason + ")"
	}
	if e.Location != "" {
		line += " @ " + e.Location
	}
	if e.ImpactValue != nil {
		line += fmt.Sprintf(" [%+d]", *e.ImpactValue)
	}
	return line
}

// renderTimeline lists the newest entries first
func renderTimeline(entries []*models.GameLogEntry, limit int) string {
	if len(entries) == 0 {
		return "Nothing has happened yet."
	}
	var b strings.Builder
	shown := 0
	for n := len(entries) - 1; n >= 0 && shown < limit; n-- {
		b.WriteString(describeEntry(entries[n]))
		b.WriteString("\n")
		shown++
	}
	if hidden := len(entries) - shown; hidden > 0 {
		fmt.Fprintf(&b, "…and %d earlier", hidden)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderStatus builds the scoreboard embed
func renderStatus(state *models.MatchState, summary metrics.Summary) *discordgo.MessageEmbed {
	clockState := "stopped"
	if state.IsRunning {
		clockState = "running"
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Clock", Value: fmt.Sprintf("%s (%s)", models.FormatMatchTime(state.MatchSeconds), clockState), Inline: true},
		{Name: "Half", Value: string(state.Period), Inline: true},
		{Name: "Sets", Value: fmt.Sprintf("%d/%d", state.CompletedSets, state.TotalSets), Inline: true},
	}

	var sinBin, sentOff []string
	for _, p := range state.Roster {
		if elapsed, ok := p.SinBinElapsed(state.MatchSeconds); ok {
			sinBin = append(sinBin, fmt.Sprintf("%s (%s)", playerLabel(p), models.FormatMatchTime(elapsed)))
		}
		if p.CardStatus == models.CardRed {
			sentOff = append(sentOff, playerLabel(p))
		}
	}
	if len(sinBin) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Sin bin", Value: strings.Join(sinBin, "\n")})
	}
	if len(sentOff) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Sent off", Value: strings.Join(sentOff, "\n")})
	}

	if leaders := renderLeaders(state, summary.Totals); leaders != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Leaders", Value: leaders})
	}

	var top []string
	for n, r := range summary.Ranking {
		if n == 3 {
			break
		}
		top = append(top, fmt.Sprintf("%d. %s (%d)", n+1, r.Name, r.Impact))
	}
	if len(top) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Impact", Value: strings.Join(top, "\n")})
	}

	return &discordgo.MessageEmbed{
		Title:       matchTitle(state),
		Description: fmt.Sprintf("**%d - %d**", summary.Score.Home, summary.Score.Away),
		Color:       colorInfo,
		Fields:      fields,
	}
}

// renderLeaders names the leader per recorded stat, or the count when tied
func renderLeaders(state *models.MatchState, totals metrics.TeamTotals) string {
	var lines []string
	for _, kind := range models.AllStatKinds() {
		max := totals.MaxValues[kind]
		if max == 0 {
			continue
		}
		if count := totals.LeaderCounts[kind]; count > 1 {
			lines = append(lines, fmt.Sprintf("%s: %d players on %d", kind.Label(), count, max))
			continue
		}
		for _, p := range state.Roster {
			if metrics.IsLeader(totals, p, kind) {
				lines = append(lines, fmt.Sprintf("%s: %s (%d)", kind.Label(), playerLabel(p), max))
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

// renderRecord summarises a finished match
func renderRecord(record *models.MatchRecord) *discordgo.MessageEmbed {
	color := colorWarning
	switch record.Result {
	case models.MatchResultWin:
		color = colorSuccess
	case models.MatchResultLoss:
		color = colorError
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Result", Value: string(record.Result), Inline: true},
		{Name: "Played", Value: models.FormatMatchTime(record.Data.MatchSeconds), Inline: true},
	}
	if record.Voting != nil {
		names := make(map[string]string, len(record.Data.Roster))
		for _, p := range record.Data.Roster {
			names[p.ID] = playerLabel(p)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Votes",
			Value: fmt.Sprintf("3: %s\n2: %s\n1: %s",
				names[record.Voting.ThreePointsID], names[record.Voting.TwoPointsID], names[record.Voting.OnePointID]),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Full time: %s vs %s", record.TeamName, record.OpponentName),
		Description: fmt.Sprintf("**%s**", record.FinalScore),
		Color:       color,
		Fields:      fields,
	}
}
