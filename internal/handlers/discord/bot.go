package discord

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/touchline/internal/services/match"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// Bot represents the Discord bot instance
type Bot struct {
	session      *discordgo.Session
	commands     map[string]CommandHandler
	commandIDs   map[string]string // Maps command name to command ID
	components   map[string]ComponentHandler
	matchService match.Service
	config       *Config
	log          logrus.FieldLogger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Match service
	MatchService match.Service

	Logger logrus.FieldLogger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.MatchService == nil {
		return nil, errors.New("match service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		components:   make(map[string]ComponentHandler),
		matchService: cfg.MatchService,
		config:       cfg,
		log:          log.WithField("component", "discord"),
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	matchCmd := NewMatchCommand(b.matchService, b.log)
	if err := b.RegisterCommand(matchCmd); err != nil {
		return fmt.Errorf("failed to register match command: %w", err)
	}

	b.log.Info("bot is now running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.log.WithError(err).WithField("command", cmdName).Warn("failed to delete command")
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord. Commands that own
// components are routed their button and modal interactions as well.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	log := b.log.WithField("command", cmd.GetName())
	if b.config.GuildID != "" {
		log = log.WithField("guild_id", b.config.GuildID)
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	if ch, ok := cmd.(ComponentHandler); ok {
		for _, id := range ch.CustomIDs() {
			b.components[id] = ch
		}
	}
	log.WithField("command_id", createdCmd.ID).Info("registered command")

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var (
		name string
		err  error
	)
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name = i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			err = h.Handle(s, i)
		}
	case discordgo.InteractionMessageComponent:
		name = i.MessageComponentData().CustomID
		err = b.handleComponent(s, i, name)
	case discordgo.InteractionModalSubmit:
		name = i.ModalSubmitData().CustomID
		err = b.handleComponent(s, i, name)
	}
	if err != nil {
		b.log.WithError(err).WithField("interaction", name).Error("failed to handle interaction")
	}
}

func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) error {
	h, ok := b.components[customID]
	if !ok {
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}
	return h.HandleComponent(s, i)
}
