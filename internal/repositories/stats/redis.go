package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/diceduel/internal/models"
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Key the record is stored under, defaults to DefaultKey
	Key string
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis creates a new Redis-backed stats repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	return &redisRepository{
		client: cfg.RedisClient,
		key:    key,
	}, nil
}

// GetStats reads the stats record from Redis
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.Stats, error) {
	statsJSON, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStatsNotFound
		}
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return decodeStats(statsJSON)
}

// SaveStats writes the stats record to Redis
func (r *redisRepository) SaveStats(ctx context.Context, input *SaveStatsInput) error {
	statsJSON, err := encodeStats(input)
	if err != nil {
		return err
	}

	// No expiration, stats live forever
	if err := r.client.Set(ctx, r.key, statsJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}

	return nil
}
