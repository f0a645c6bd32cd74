package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/KirkDiggler/diceduel/internal/services/game"
)

// DiceDuelCommand handles the /diceduel command
type DiceDuelCommand struct {
	BaseCommand
	gameService game.Service
	board       *boardRef
	logger      *zap.Logger
}

// NewDiceDuelCommand creates a new diceduel command handler
func NewDiceDuelCommand(gameService game.Service, board *boardRef, logger *zap.Logger) *DiceDuelCommand {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &DiceDuelCommand{
		BaseCommand: BaseCommand{
			Name:        "diceduel",
			Description: "Predict the total of your dice roll",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "play",
					Description: "Post the game board",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show your wins, games played and win rate",
				},
			},
		},
		gameService: gameService,
		board:       board,
		logger:      logger,
	}
}

// Handle processes a Discord interaction for the diceduel command
func (c *DiceDuelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	subcommand := "play"
	if len(data.Options) > 0 {
		subcommand = data.Options[0].Name
	}

	ctx := context.Background()

	switch subcommand {
	case "play":
		return c.handlePlay(ctx, s, i)
	case "stats":
		response, err := c.statsResponse(ctx)
		if err != nil {
			c.logger.Error("failed to build stats", zap.Error(err))
			return RespondWithError(s, i, "Could not load your stats.")
		}
		return s.InteractionRespond(i.Interaction, response)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", subcommand))
	}
}

// handlePlay posts the board and remembers it for later redraws
func (c *DiceDuelCommand) handlePlay(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	response, err := c.playResponse(ctx)
	if err != nil {
		c.logger.Error("failed to build board", zap.Error(err))
		return RespondWithError(s, i, "Could not load the game.")
	}

	if err := s.InteractionRespond(i.Interaction, response); err != nil {
		return fmt.Errorf("failed to post board: %w", err)
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		// The board still works; results just show up on the next click
		c.logger.Warn("failed to fetch board message", zap.Error(err))
		return nil
	}

	c.board.set(msg.ChannelID, msg.ID)
	c.logger.Debug("board posted", zap.String("channel_id", msg.ChannelID), zap.String("message_id", msg.ID))
	return nil
}

func (c *DiceDuelCommand) playResponse(ctx context.Context) (*discordgo.InteractionResponse, error) {
	state, err := c.gameService.GetState(ctx, &game.GetStateInput{})
	if err != nil {
		return nil, err
	}

	return boardResponse(discordgo.InteractionResponseChannelMessageWithSource, state), nil
}

func (c *DiceDuelCommand) statsResponse(ctx context.Context) (*discordgo.InteractionResponse, error) {
	state, err := c.gameService.GetState(ctx, &game.GetStateInput{})
	if err != nil {
		return nil, err
	}

	return ephemeralEmbedResponse(renderStatsEmbed(state)), nil
}
