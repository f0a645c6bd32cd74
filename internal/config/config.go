// Package config provides Viper-based configuration loading for Dice Duel.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// MinRollDelay is the shortest pause allowed between a roll and its result.
const MinRollDelay = 900 * time.Millisecond

// GameConfig holds round settings.
type GameConfig struct {
	// RollDelay is how long the dice stay "in the air" before the result is revealed.
	RollDelay time.Duration `mapstructure:"roll_delay"`
	// DefaultDiceCount is the number of dice selected when the session starts.
	DefaultDiceCount int `mapstructure:"default_dice_count"`
}

// DiceConfig holds random source settings.
type DiceConfig struct {
	// Seed fixes the random source when non-zero.
	Seed int64 `mapstructure:"seed"`
}

// StorageConfig selects and configures the stats backend.
type StorageConfig struct {
	// Driver is one of "file", "redis", "sqlite".
	Driver string `mapstructure:"driver"`
	// Key is the record key for the redis and sqlite drivers.
	Key           string `mapstructure:"key"`
	FilePath      string `mapstructure:"file_path"`
	SQLitePath    string `mapstructure:"sqlite_path"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// DiscordConfig holds bot credentials.
type DiscordConfig struct {
	Token string `mapstructure:"token"`
	// ApplicationID falls back to the session user when empty.
	ApplicationID string `mapstructure:"application_id"`
	// GuildID registers commands for a single guild, useful during development.
	GuildID string `mapstructure:"guild_id"`
}

// Config is the top-level application configuration.
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Dice    DiceConfig    `mapstructure:"dice"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
	Discord DiscordConfig `mapstructure:"discord"`
}

// Validate checks all configuration invariants and reports every violation at once.
func (c Config) Validate() error {
	var errs []string

	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateStorage(c.Storage); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Discord.Token == "" {
		errs = append(errs, "discord.token must not be empty")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.RollDelay < MinRollDelay {
		errs = append(errs, fmt.Sprintf("game.roll_delay must be >= %s, got %s", MinRollDelay, g.RollDelay))
	}
	if g.DefaultDiceCount < 1 || g.DefaultDiceCount > 3 {
		errs = append(errs, fmt.Sprintf("game.default_dice_count must be 1-3, got %d", g.DefaultDiceCount))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateStorage(s StorageConfig) error {
	switch s.Driver {
	case "file":
		if s.FilePath == "" {
			return errors.New("storage.file_path must not be empty for the file driver")
		}
	case "sqlite":
		if s.SQLitePath == "" {
			return errors.New("storage.sqlite_path must not be empty for the sqlite driver")
		}
	case "redis":
		if s.RedisAddr == "" {
			return errors.New("storage.redis_addr must not be empty for the redis driver")
		}
		if s.RedisDB < 0 {
			return fmt.Errorf("storage.redis_db must be >= 0, got %d", s.RedisDB)
		}
	default:
		return fmt.Errorf("storage.driver must be one of [file, redis, sqlite], got %q", s.Driver)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load builds the configuration from defaults, an optional YAML file at path
// (skipped when path is empty), a .env file in the working directory, and
// DICEDUEL_ prefixed environment variables, then validates the result.
func Load(path string) (Config, error) {
	// A missing .env file is normal outside development
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("DICEDUEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("game.roll_delay", "1s")
	v.SetDefault("game.default_dice_count", 1)

	v.SetDefault("dice.seed", 0)

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.key", "diceGameStats")
	v.SetDefault("storage.file_path", "data/stats.json")
	v.SetDefault("storage.sqlite_path", "data/diceduel.db")
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.redis_password", "")
	v.SetDefault("storage.redis_db", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("discord.token", "")
	v.SetDefault("discord.application_id", "")
	v.SetDefault("discord.guild_id", "")
}
