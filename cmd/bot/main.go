package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/diceduel/internal/common/clock"
	"github.com/KirkDiggler/diceduel/internal/common/uuid"
	"github.com/KirkDiggler/diceduel/internal/config"
	"github.com/KirkDiggler/diceduel/internal/dice"
	"github.com/KirkDiggler/diceduel/internal/handlers/discord"
	"github.com/KirkDiggler/diceduel/internal/observability"
	statsRepo "github.com/KirkDiggler/diceduel/internal/repositories/stats"
	gameService "github.com/KirkDiggler/diceduel/internal/services/game"
	"github.com/KirkDiggler/diceduel/internal/services/messaging"
	statsStore "github.com/KirkDiggler/diceduel/internal/services/stats"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to an optional YAML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	repo, closeRepo, err := newStatsRepository(cfg.Storage)
	if err != nil {
		logger.Fatal("creating stats repository", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeRepo()

	store, err := statsStore.New(&statsStore.Config{
		Repository: repo,
		Logger:     logger.Named("stats"),
	})
	if err != nil {
		logger.Fatal("creating stats store", zap.Error(err))
	}

	messagingSvc, err := messaging.New(&messaging.Config{})
	if err != nil {
		logger.Fatal("creating messaging service", zap.Error(err))
	}

	// The bot is created after the session, so the listener resolves it lazily
	var bot *discord.Bot

	gameSvc, err := gameService.New(ctx, &gameService.Config{
		RollDelay:        cfg.Game.RollDelay,
		DefaultDiceCount: cfg.Game.DefaultDiceCount,
		ResultListener: func(output *gameService.ResolveOutput) {
			bot.HandleResult(output)
		},
		DiceRoller:       dice.New(&dice.Config{Seed: cfg.Dice.Seed}),
		Clock:            &clock.DefaultClock{},
		UUIDGenerator:    uuid.New(),
		StatsStore:       store,
		MessagingService: messagingSvc,
		Logger:           logger.Named("game"),
	})
	if err != nil {
		logger.Fatal("creating game service", zap.Error(err))
	}

	bot, err = discord.New(&discord.Config{
		Token:         cfg.Discord.Token,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		GameService:   gameSvc,
		Logger:        logger.Named("discord"),
	})
	if err != nil {
		logger.Fatal("creating Discord bot", zap.Error(err))
	}

	if err := bot.Start(); err != nil {
		logger.Fatal("starting Discord bot", zap.Error(err))
	}

	logger.Info("dice duel started",
		zap.String("storage", cfg.Storage.Driver),
		zap.Duration("roll_delay", cfg.Game.RollDelay),
	)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		logger.Warn("stopping bot", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := gameSvc.Close(shutdownCtx); err != nil {
		logger.Warn("flushing stats", zap.Error(err))
	}

	logger.Info("dice duel has been shut down")
}

// newStatsRepository opens the configured backend and returns its cleanup func
func newStatsRepository(cfg config.StorageConfig) (statsRepo.Repository, func(), error) {
	switch cfg.Driver {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		repo, err := statsRepo.NewRedis(&statsRepo.Config{
			RedisClient: redisClient,
			Key:         cfg.Key,
		})
		if err != nil {
			redisClient.Close()
			return nil, nil, err
		}
		return repo, func() { redisClient.Close() }, nil

	case "sqlite":
		repo, err := statsRepo.NewSQLite(&statsRepo.SQLiteConfig{
			Path: cfg.SQLitePath,
			Key:  cfg.Key,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { repo.Close() }, nil

	case "file":
		repo, err := statsRepo.NewFile(&statsRepo.FileConfig{
			Path: cfg.FilePath,
		})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
