package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/diceduel/internal/services/game"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	editor      boardEditor
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	board       *boardRef
	logger      *zap.Logger
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// boardEditor is the part of the session used to redraw the board
type boardEditor interface {
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// boardRef remembers which message currently shows the board
type boardRef struct {
	mu        sync.Mutex
	channelID string
	messageID string
}

func (r *boardRef) set(channelID, messageID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.channelID = channelID
	r.messageID = messageID
}

func (r *boardRef) get() (string, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.channelID, r.messageID
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:     session,
		editor:      session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		board:       &boardRef{},
		logger:      logger,
		config:      cfg,
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

	diceDuelCmd := NewDiceDuelCommand(b.gameService, b.board, b.logger)
	if err := b.RegisterCommand(diceDuelCmd); err != nil {
		return fmt.Errorf("failed to register diceduel command: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID, guildID := b.commandScope()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err),
			)
		} else {
			b.logger.Info("deleted command", zap.String("command", cmdName), zap.String("command_id", cmdID))
		}
	}

	return b.session.Close()
}

func (b *Bot) commandScope() (string, string) {
	appID := b.config.ApplicationID
	if appID == "" && b.session.State != nil && b.session.State.User != nil {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// An empty guild ID registers the command globally
	return appID, b.config.GuildID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID, guildID := b.commandScope()

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", guildID),
	)

	return nil
}

// HandleResult redraws the board once a roll has resolved. It is the
// session's result listener.
func (b *Bot) HandleResult(output *game.ResolveOutput) {
	if b == nil {
		return
	}

	channelID, messageID := b.board.get()
	if messageID == "" {
		b.logger.Debug("no board posted, skipping redraw")
		return
	}

	ctx := context.Background()
	state, err := b.gameService.GetState(ctx, &game.GetStateInput{})
	if err != nil {
		b.logger.Warn("failed to get state for redraw", zap.Error(err))
		return
	}

	if _, err := b.editor.ChannelMessageEditComplex(boardEdit(channelID, messageID, state)); err != nil {
		b.logger.Warn("failed to redraw board",
			zap.String("channel_id", channelID),
			zap.String("message_id", messageID),
			zap.Error(err),
		)
	}
}

// boardEdit builds the edit that replaces the board contents
func boardEdit(channelID, messageID string, state *game.GetStateOutput) *discordgo.MessageEdit {
	embeds := []*discordgo.MessageEmbed{renderBoardEmbed(state)}
	components := renderBoardComponents(state)

	return &discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Embeds:     &embeds,
		Components: &components,
	}
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("failed to handle command", zap.String("command", name), zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("failed to handle component interaction", zap.Error(err))
		}
	}
}

// handleComponentInteraction handles button clicks and the prediction menu
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	// Whichever board was clicked becomes the one redrawn on results
	if i.Message != nil {
		b.board.set(i.ChannelID, i.Message.ID)
	}

	data := i.MessageComponentData()
	response, err := b.componentResponse(context.Background(), data.CustomID, data.Values)
	if err != nil {
		b.logger.Error("board action failed", zap.String("custom_id", data.CustomID), zap.Error(err))
		return RespondWithError(s, i, "Something went wrong, please try again.")
	}

	return s.InteractionRespond(i.Interaction, response)
}

// componentResponse applies a board action and returns the response to send
func (b *Bot) componentResponse(ctx context.Context, customID string, values []string) (*discordgo.InteractionResponse, error) {
	var err error

	switch {
	case customID == ButtonRoll:
		_, err = b.gameService.RollDice(ctx, &game.RollDiceInput{})
	case customID == ButtonPlayAgain:
		_, err = b.gameService.Reset(ctx, &game.ResetInput{})
	case customID == SelectPredict:
		prediction := ""
		if len(values) > 0 {
			prediction = values[0]
		}
		_, err = b.gameService.SetPrediction(ctx, &game.SetPredictionInput{Prediction: prediction})
	default:
		count, ok := parseDiceButtonID(customID)
		if !ok {
			return nil, fmt.Errorf("unknown component: %s", customID)
		}
		_, err = b.gameService.Configure(ctx, &game.ConfigureInput{DiceCount: count})
	}

	if err != nil {
		if notice := actionNotice(err); notice != nil {
			return notice, nil
		}
		return nil, err
	}

	state, err := b.gameService.GetState(ctx, &game.GetStateInput{})
	if err != nil {
		return nil, err
	}

	return boardResponse(discordgo.InteractionResponseUpdateMessage, state), nil
}

// actionNotice turns a refused action into a private notice, or nil if the
// error is not one the player caused
func actionNotice(err error) *discordgo.InteractionResponse {
	var predErr *game.PredictionError
	switch {
	case errors.As(err, &predErr):
		return ephemeralEmbedResponse(renderErrorEmbed("Invalid prediction", predErr.Message))
	case errors.Is(err, game.ErrRollInProgress):
		return ephemeralEmbedResponse(renderErrorEmbed("Hold on", "The dice are already rolling!"))
	case errors.Is(err, game.ErrInvalidDiceCount):
		return ephemeralEmbedResponse(renderErrorEmbed("Invalid dice count", "Choose 1, 2 or 3 dice."))
	case errors.Is(err, game.ErrInvalidGameState):
		return ephemeralEmbedResponse(renderErrorEmbed("Not now", "That action isn't available right now."))
	case errors.Is(err, game.ErrSessionClosed):
		return ephemeralEmbedResponse(renderErrorEmbed("Closed", "The game is shutting down."))
	}
	return nil
}
