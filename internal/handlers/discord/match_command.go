package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/touchline/internal/models"
	"github.com/KirkDiggler/touchline/internal/services/match"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Button and modal IDs
const (
	ButtonResumeMatch    = "match_resume"
	ButtonDiscardMatch   = "match_discard"
	ButtonClockStart     = "match_clock_start"
	ButtonClockStop      = "match_clock_stop"
	ButtonContextDetails = "match_context_details"
	ButtonContextSkip    = "match_context_skip"
	ButtonContextCancel  = "match_context_cancel"
	ButtonPeriodConfirm  = "match_period_confirm"
	ButtonPeriodCancel   = "match_period_cancel"

	ModalContext = "match_context_modal"

	inputX        = "x"
	inputY        = "y"
	inputReason   = "reason"
	inputLocation = "location"
)

// timelineLimit caps how many entries /match timeline shows
const timelineLimit = 15

// MatchCommand handles the /match command and its buttons
type MatchCommand struct {
	BaseCommand
	matchService match.Service
	log          logrus.FieldLogger
}

// NewMatchCommand creates a new match command handler
func NewMatchCommand(matchService match.Service, log logrus.FieldLogger) *MatchCommand {
	playerOption := func(required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "player",
			Description: "Jersey number",
			Required:    required,
		}
	}
	reasonOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "reason",
		Description: "Reason",
	}

	return &MatchCommand{
		BaseCommand: BaseCommand{
			Name:        "match",
			Description: "Live match tracking",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a new match",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "team", Description: "Your team", Required: true},
						{Type: discordgo.ApplicationCommandOptionString, Name: "opponent", Description: "Opposition", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clock",
					Description: "Start or stop the match clock",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "action",
							Description: "Start or stop",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "start", Value: "start"},
								{Name: "stop", Value: "stop"},
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stat",
					Description: "Record a stat",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption(true),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "kind",
							Description: "Stat",
							Required:    true,
							Choices:     statChoices(models.AllStatKinds()),
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "delta",
							Description: "Change, defaults to +1",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "bigplay",
					Description: "Log a big play",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption(true),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "kind",
							Description: "Big play",
							Required:    true,
							Choices:     statChoices(models.BigPlayKinds()),
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "location",
							Description: "Where on the field",
						},
						reasonOption,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "card",
					Description: "Show a player a card",
					Options: []*discordgo.ApplicationCommandOption{
						playerOption(true),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "kind",
							Description: "Card",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "yellow", Value: string(models.CardYellow)},
								{Name: "red", Value: string(models.CardRed)},
							},
						},
						reasonOption,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clearcard",
					Description: "Clear a served yellow card",
					Options:     []*discordgo.ApplicationCommandOption{playerOption(true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sub",
					Description: "Move a player on or off the field",
					Options:     []*discordgo.ApplicationCommandOption{playerOption(true)},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "score",
					Description: "Adjust a score",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "side",
							Description: "Which score",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "home", Value: "home"},
								{Name: "opponent", Value: "opponent"},
							},
						},
						{Type: discordgo.ApplicationCommandOptionInteger, Name: "delta", Description: "Points to add or remove", Required: true},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Record a set",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "result",
							Description: "Completed or not",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "complete", Value: "complete"},
								{Name: "fail", Value: "fail"},
							},
						},
					},
				},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "endperiod", Description: "End the current half"},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "status", Description: "Show the scoreboard"},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "timeline", Description: "Show recent events"},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "finish",
					Description: "Finish the match with optional votes",
					Options: []*discordgo.ApplicationCommandOption{
						{Type: discordgo.ApplicationCommandOptionString, Name: "three", Description: "Three points (jersey)"},
						{Type: discordgo.ApplicationCommandOptionString, Name: "two", Description: "Two points (jersey)"},
						{Type: discordgo.ApplicationCommandOptionString, Name: "one", Description: "One point (jersey)"},
					},
				},
				{Type: discordgo.ApplicationCommandOptionSubCommand, Name: "discard", Description: "Throw the match away"},
			},
		},
		matchService: matchService,
		log:          log,
	}
}

func statChoices(kinds []models.StatKind) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(kinds))
	for _, kind := range kinds {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  kind.Label(),
			Value: string(kind),
		})
	}
	return choices
}

// CustomIDs lists the buttons and modals the command owns
func (c *MatchCommand) CustomIDs() []string {
	return []string{
		ButtonResumeMatch,
		ButtonDiscardMatch,
		ButtonClockStart,
		ButtonClockStop,
		ButtonContextDetails,
		ButtonContextSkip,
		ButtonContextCancel,
		ButtonPeriodConfirm,
		ButtonPeriodCancel,
		ModalContext,
	}
}

// Handle processes a Discord interaction for the match command
func (c *MatchCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}
	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return RespondWithEphemeralMessage(s, i, "Pick a /match subcommand.")
	}

	resp, err := c.respondCommand(context.Background(), data.Options[0])
	if err != nil {
		return RespondWithError(s, i, c.userMessage(err))
	}
	return s.InteractionRespond(i.Interaction, resp)
}

// HandleComponent processes the command's buttons and modals
func (c *MatchCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	var (
		resp *discordgo.InteractionResponse
		err  error
	)
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		resp, err = c.respondButton(ctx, i.MessageComponentData().CustomID)
	case discordgo.InteractionModalSubmit:
		data := i.ModalSubmitData()
		resp, err = c.respondModal(ctx, data.CustomID, modalValues(data.Components))
	default:
		return nil
	}
	if err != nil {
		return RespondWithError(s, i, c.userMessage(err))
	}
	return s.InteractionRespond(i.Interaction, resp)
}

// respondCommand runs a subcommand and builds its response
func (c *MatchCommand) respondCommand(ctx context.Context, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "start":
		return c.handleStart(ctx, opts)
	case "clock":
		if stringOption(opts, "action") == "stop" {
			return c.stopClock(ctx)
		}
		return c.startClock(ctx)
	case "stat":
		return c.handleStat(ctx, opts)
	case "bigplay":
		return c.handleBigPlay(ctx, opts)
	case "card":
		return c.handleCard(ctx, opts)
	case "clearcard":
		return c.handleClearCard(ctx, opts)
	case "sub":
		return c.handleSub(ctx, opts)
	case "score":
		return c.handleScore(ctx, opts)
	case "set":
		return c.handleSet(ctx, opts)
	case "endperiod":
		return c.handleEndPeriod(ctx)
	case "status":
		return c.handleStatus(ctx)
	case "timeline":
		return c.handleTimeline(ctx)
	case "finish":
		return c.handleFinish(ctx, opts)
	case "discard":
		return c.discard(ctx)
	default:
		return nil, fmt.Errorf("unknown subcommand %q", sub.Name)
	}
}

// respondButton handles a button click
func (c *MatchCommand) respondButton(ctx context.Context, customID string) (*discordgo.InteractionResponse, error) {
	switch customID {
	case ButtonResumeMatch:
		out, err := c.matchService.ResumeMatch(ctx, &match.ResumeMatchInput{})
		if err != nil {
			return nil, err
		}
		return updateResponse(fmt.Sprintf("Resumed %s at %s.", matchTitle(out.State), models.FormatMatchTime(out.State.MatchSeconds))), nil
	case ButtonDiscardMatch:
		if _, err := c.matchService.DiscardMatch(ctx, &match.DiscardMatchInput{}); err != nil {
			return nil, err
		}
		return updateResponse("Match discarded. Use `/match start` to begin a new one."), nil
	case ButtonClockStart:
		return c.startClock(ctx)
	case ButtonClockStop:
		return c.stopClock(ctx)
	case ButtonContextDetails:
		return contextModal(), nil
	case ButtonContextSkip:
		out, err := c.matchService.SkipStatContext(ctx, &match.SkipStatContextInput{})
		if err != nil {
			return nil, err
		}
		return updateResponse(describeEntry(out.Entry)), nil
	case ButtonContextCancel:
		if _, err := c.matchService.CancelStatContext(ctx, &match.CancelStatContextInput{}); err != nil {
			return nil, err
		}
		return updateResponse("Cancelled. Nothing was recorded."), nil
	case ButtonPeriodConfirm:
		out, err := c.matchService.ConfirmEndPeriod(ctx, &match.ConfirmEndPeriodInput{})
		if err != nil {
			return nil, err
		}
		if out.Status == models.MatchStatusVoting {
			return updateResponse("Full time. Use `/match finish` to record votes and save the match."), nil
		}
		return updateResponse("Half time. Start the clock when the second half kicks off."), nil
	case ButtonPeriodCancel:
		if _, err := c.matchService.CancelEndPeriod(ctx, &match.CancelEndPeriodInput{}); err != nil {
			return nil, err
		}
		return updateResponse("Play on. The clock is stopped until you start it."), nil
	default:
		return nil, fmt.Errorf("unknown button %q", customID)
	}
}

// respondModal handles the stat context form
func (c *MatchCommand) respondModal(ctx context.Context, customID string, values map[string]string) (*discordgo.InteractionResponse, error) {
	if customID != ModalContext {
		return nil, fmt.Errorf("unknown modal %q", customID)
	}

	input := &match.ConfirmStatContextInput{
		Reason:   strings.TrimSpace(values[inputReason]),
		Location: strings.TrimSpace(values[inputLocation]),
	}
	x, y := strings.TrimSpace(values[inputX]), strings.TrimSpace(values[inputY])
	if x != "" || y != "" {
		pos, err := parsePosition(x, y)
		if err != nil {
			return nil, err
		}
		input.Position = pos
	}

	out, err := c.matchService.ConfirmStatContext(ctx, input)
	if err != nil {
		return nil, err
	}
	return messageResponse(describeEntry(out.Entry), false), nil
}

func (c *MatchCommand) handleStart(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	check, err := c.matchService.CheckResume(ctx, &match.CheckResumeInput{})
	if err != nil {
		return nil, err
	}
	if check.Available {
		return embedResponse(&discordgo.MessageEmbed{
			Title: "Unfinished match found",
			Description: fmt.Sprintf("%s vs %s was interrupted at %s in the %s half.",
				check.TeamName, check.OpponentName, models.FormatMatchTime(check.MatchSeconds), check.Period),
			Color: colorWarning,
		}, []discordgo.MessageComponent{
			discordgo.Button{Label: "Resume", Style: discordgo.PrimaryButton, CustomID: ButtonResumeMatch},
			discordgo.Button{Label: "Discard", Style: discordgo.DangerButton, CustomID: ButtonDiscardMatch},
		}, true), nil
	}

	out, err := c.matchService.BeginMatch(ctx, &match.BeginMatchInput{
		TeamName:     stringOption(opts, "team"),
		OpponentName: stringOption(opts, "opponent"),
	})
	if err != nil {
		return nil, err
	}
	return embedResponse(&discordgo.MessageEmbed{
		Title:       matchTitle(out.State),
		Description: fmt.Sprintf("Squad of %d ready. Start the clock at kick off.", len(out.State.Roster)),
		Color:       colorSuccess,
	}, []discordgo.MessageComponent{
		discordgo.Button{Label: "Start clock", Style: discordgo.SuccessButton, CustomID: ButtonClockStart},
	}, false), nil
}

func (c *MatchCommand) startClock(ctx context.Context) (*discordgo.InteractionResponse, error) {
	if _, err := c.matchService.StartClock(ctx, &match.StartClockInput{}); err != nil {
		return nil, err
	}
	return messageResponse("Clock running.", true), nil
}

func (c *MatchCommand) stopClock(ctx context.Context) (*discordgo.InteractionResponse, error) {
	if _, err := c.matchService.StopClock(ctx, &match.StopClockInput{}); err != nil {
		return nil, err
	}
	return messageResponse("Clock stopped.", true), nil
}

func (c *MatchCommand) handleStat(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	player, err := c.resolvePlayer(ctx, stringOption(opts, "player"))
	if err != nil {
		return nil, err
	}
	kind := models.StatKind(stringOption(opts, "kind"))
	delta := 1
	if opt, ok := opts["delta"]; ok {
		delta = int(opt.IntValue())
	}

	out, err := c.matchService.ApplyStatDelta(ctx, &match.ApplyStatDeltaInput{
		PlayerID: player.ID,
		Stat:     kind,
		Delta:    delta,
	})
	if err != nil {
		return nil, err
	}

	switch {
	case out.Locked:
		return messageResponse("The clock is stopped. Start it to record stats.", true), nil
	case out.NeedsContext:
		return embedResponse(&discordgo.MessageEmbed{
			Title:       fmt.Sprintf("%s: %s", kind.Label(), playerLabel(player)),
			Description: "Add where it happened and why, or skip.",
			Color:       colorWarning,
		}, []discordgo.MessageComponent{
			discordgo.Button{Label: "Add details", Style: discordgo.PrimaryButton, CustomID: ButtonContextDetails},
			discordgo.Button{Label: "Skip", Style: discordgo.SecondaryButton, CustomID: ButtonContextSkip},
			discordgo.Button{Label: "Cancel", Style: discordgo.DangerButton, CustomID: ButtonContextCancel},
		}, true), nil
	case out.Entry != nil:
		return messageResponse(describeEntry(out.Entry), false), nil
	default:
		return messageResponse(fmt.Sprintf("%s for %s: %d", kind.Label(), playerLabel(player), out.Value), true), nil
	}
}

func (c *MatchCommand) handleBigPlay(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	player, err := c.resolvePlayer(ctx, stringOption(opts, "player"))
	if err != nil {
		return nil, err
	}
	out, err := c.matchService.RecordBigPlay(ctx, &match.RecordBigPlayInput{
		PlayerID: player.ID,
		Stat:     models.StatKind(stringOption(opts, "kind")),
		Location: stringOption(opts, "location"),
		Reason:   stringOption(opts, "reason"),
	})
	if err != nil {
		return nil, err
	}
	return messageResponse(describeEntry(out.Entry), false), nil
}

func (c *MatchCommand) handleCard(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	player, err := c.resolvePlayer(ctx, stringOption(opts, "player"))
	if err != nil {
		return nil, err
	}
	out, err := c.matchService.IssueCard(ctx, &match.IssueCardInput{
		PlayerID: player.ID,
		Card:     models.CardStatus(stringOption(opts, "kind")),
		Reason:   stringOption(opts, "reason"),
	})
	if err != nil {
		return nil, err
	}
	return messageResponse(describeEntry(out.Entry), false), nil
}

func (c *MatchCommand) handleClearCard(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	player, err := c.resolvePlayer(ctx, stringOption(opts, "player"))
	if err != nil {
		return nil, err
	}
	out, err := c.matchService.ClearCard(ctx, &match.ClearCardInput{PlayerID: player.ID})
	if err != nil {
		return nil, err
	}
	if !out.Cleared {
		return messageResponse(fmt.Sprintf("%s has no card to clear.", playerLabel(player)), true), nil
	}
	return messageResponse(fmt.Sprintf("%s has served their time. Use `/match sub` to bring them back on.", playerLabel(player)), false), nil
}

func (c *MatchCommand) handleSub(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	player, err := c.resolvePlayer(ctx, stringOption(opts, "player"))
	if err != nil {
		return nil, err
	}
	out, err := c.matchService.ToggleFieldStatus(ctx, &match.ToggleFieldStatusInput{PlayerID: player.ID})
	if err != nil {
		return nil, err
	}
	return messageResponse(describeEntry(out.Entry), false), nil
}

func (c *MatchCommand) handleScore(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	input := &match.AdjustScoreInput{}
	if opt, ok := opts["delta"]; ok {
		input.Delta = int(opt.IntValue())
	}

	var (
		out *match.AdjustScoreOutput
		err error
	)
	if stringOption(opts, "side") == "opponent" {
		out, err = c.matchService.AdjustOpponentScore(ctx, input)
	} else {
		out, err = c.matchService.AdjustHomeScore(ctx, input)
	}
	if err != nil {
		return nil, err
	}
	return messageResponse(fmt.Sprintf("Score: %d - %d", out.Score.Home, out.Score.Away), false), nil
}

func (c *MatchCommand) handleSet(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	var (
		out *match.SetOutput
		err error
	)
	if stringOption(opts, "result") == "fail" {
		out, err = c.matchService.FailSet(ctx, &match.FailSetInput{})
	} else {
		out, err = c.matchService.CompleteSet(ctx, &match.CompleteSetInput{})
	}
	if err != nil {
		return nil, err
	}
	if !out.Applied {
		return messageResponse("The clock is stopped. Sets only count during play.", true), nil
	}
	return messageResponse(fmt.Sprintf("Sets: %d/%d", out.CompletedSets, out.TotalSets), true), nil
}

func (c *MatchCommand) handleEndPeriod(ctx context.Context) (*discordgo.InteractionResponse, error) {
	out, err := c.matchService.RequestEndPeriod(ctx, &match.RequestEndPeriodInput{})
	if err != nil {
		return nil, err
	}
	return embedResponse(&discordgo.MessageEmbed{
		Title:       fmt.Sprintf("End the %s half?", out.Period),
		Description: "The clock has been stopped.",
		Color:       colorWarning,
	}, []discordgo.MessageComponent{
		discordgo.Button{Label: "End half", Style: discordgo.DangerButton, CustomID: ButtonPeriodConfirm},
		discordgo.Button{Label: "Keep playing", Style: discordgo.SecondaryButton, CustomID: ButtonPeriodCancel},
	}, true), nil
}

func (c *MatchCommand) handleStatus(ctx context.Context) (*discordgo.InteractionResponse, error) {
	state, err := c.matchService.GetState(ctx, &match.GetStateInput{})
	if err != nil {
		return nil, err
	}
	if state.State == nil {
		return messageResponse("No match yet. Use `/match start`.", true), nil
	}
	metricsOut, err := c.matchService.GetMetrics(ctx, &match.GetMetricsInput{})
	if err != nil {
		return nil, err
	}

	var buttons []discordgo.MessageComponent
	if state.State.Status == models.MatchStatusInProgress {
		if state.State.IsRunning {
			buttons = append(buttons, discordgo.Button{Label: "Stop clock", Style: discordgo.SecondaryButton, CustomID: ButtonClockStop})
		} else {
			buttons = append(buttons, discordgo.Button{Label: "Start clock", Style: discordgo.SuccessButton, CustomID: ButtonClockStart})
		}
	}
	return embedResponse(renderStatus(state.State, metricsOut.Summary), buttons, false), nil
}

func (c *MatchCommand) handleTimeline(ctx context.Context) (*discordgo.InteractionResponse, error) {
	out, err := c.matchService.GetTimeline(ctx, &match.GetTimelineInput{})
	if err != nil {
		return nil, err
	}
	return embedResponse(&discordgo.MessageEmbed{
		Title:       "Timeline",
		Description: renderTimeline(out.Entries, timelineLimit),
		Color:       colorInfo,
	}, nil, true), nil
}

func (c *MatchCommand) handleFinish(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponse, error) {
	jerseys := []string{stringOption(opts, "three"), stringOption(opts, "two"), stringOption(opts, "one")}

	var votes *models.Votes
	if jerseys[0] != "" || jerseys[1] != "" || jerseys[2] != "" {
		ids := make([]string, len(jerseys))
		for n, jersey := range jerseys {
			if jersey == "" {
				return nil, match.ErrInvalidVotes
			}
			player, err := c.resolvePlayer(ctx, jersey)
			if err != nil {
				return nil, err
			}
			ids[n] = player.ID
		}
		votes = &models.Votes{ThreePointsID: ids[0], TwoPointsID: ids[1], OnePointID: ids[2]}
	}

	out, err := c.matchService.FinishMatch(ctx, &match.FinishMatchInput{Votes: votes})
	if err != nil {
		return nil, err
	}
	return embedResponse(renderRecord(out.Record), nil, false), nil
}

func (c *MatchCommand) discard(ctx context.Context) (*discordgo.InteractionResponse, error) {
	out, err := c.matchService.DiscardMatch(ctx, &match.DiscardMatchInput{})
	if err != nil {
		return nil, err
	}
	if !out.Discarded {
		return messageResponse("No match in progress. Any saved match was cleared.", true), nil
	}
	return messageResponse("Match discarded.", false), nil
}

// resolvePlayer finds a roster slot by jersey number
func (c *MatchCommand) resolvePlayer(ctx context.Context, jersey string) (*models.Player, error) {
	jersey = strings.TrimPrefix(strings.TrimSpace(jersey), "#")
	if jersey == "" {
		return nil, match.ErrNoPlayerSelected
	}
	out, err := c.matchService.GetState(ctx, &match.GetStateInput{})
	if err != nil {
		return nil, err
	}
	if out.State == nil {
		return nil, match.ErrNoActiveMatch
	}
	for _, p := range out.State.Roster {
		if p.JerseyNumber == jersey {
			return p, nil
		}
	}
	return nil, match.ErrPlayerNotFound
}

// userMessage turns an error into text for the coach. Unexpected errors are logged.
func (c *MatchCommand) userMessage(err error) string {
	var matchErr match.MatchError
	if errors.As(err, &matchErr) {
		msg := matchErr.Error()
		return strings.ToUpper(msg[:1]) + msg[1:] + "."
	}
	c.log.WithError(err).Error("match command failed")
	return "Something went wrong. Try again."
}

// contextModal asks for the field position and reason of a parked stat
func contextModal() *discordgo.InteractionResponse {
	row := func(input discordgo.TextInput) discordgo.ActionsRow {
		return discordgo.ActionsRow{Components: []discordgo.MessageComponent{input}}
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: ModalContext,
			Title:    "Stat details",
			Components: []discordgo.MessageComponent{
				row(discordgo.TextInput{CustomID: inputX, Label: "Across the field (0-100)", Style: discordgo.TextInputShort, MaxLength: 5}),
				row(discordgo.TextInput{CustomID: inputY, Label: "Down the field (0-100)", Style: discordgo.TextInputShort, MaxLength: 5}),
				row(discordgo.TextInput{CustomID: inputLocation, Label: "Location", Style: discordgo.TextInputShort, MaxLength: 50}),
				row(discordgo.TextInput{CustomID: inputReason, Label: "Reason", Style: discordgo.TextInputParagraph, MaxLength: 200}),
			},
		},
	}
}

// modalValues flattens the text inputs of a submitted modal by custom ID
func modalValues(components []discordgo.MessageComponent) map[string]string {
	values := make(map[string]string)
	var visit func(discordgo.MessageComponent)
	visit = func(component discordgo.MessageComponent) {
		switch v := component.(type) {
		case *discordgo.ActionsRow:
			for _, child := range v.Components {
				visit(child)
			}
		case discordgo.ActionsRow:
			for _, child := range v.Components {
				visit(child)
			}
		case *discordgo.TextInput:
			values[v.CustomID] = v.Value
		case discordgo.TextInput:
			values[v.CustomID] = v.Value
		}
	}
	for _, component := range components {
		visit(component)
	}
	return values
}

// parsePosition reads a field coordinate; both axes are required once either is given
func parsePosition(x, y string) (*models.FieldPosition, error) {
	px, errX := strconv.ParseFloat(x, 64)
	py, errY := strconv.ParseFloat(y, 64)
	if errX != nil || errY != nil {
		return nil, match.ErrInvalidPosition
	}
	pos := &models.FieldPosition{X: px, Y: py}
	if !pos.Valid() {
		return nil, match.ErrInvalidPosition
	}
	return pos, nil
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := opts[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(opt.StringValue())
}
