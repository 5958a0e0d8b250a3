package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "TOUCHLINE_"

// History backends
const (
	HistoryBackendRedis  = "redis"
	HistoryBackendSQLite = "sqlite"
)

// Config is the process configuration read from the environment
type Config struct {
	RedisAddr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`

	// SnapshotSlot names the resume slot, one per device
	SnapshotSlot string `env:"SNAPSHOT_SLOT" envDefault:"current"`

	HistoryBackend string `env:"HISTORY_BACKEND" envDefault:"redis"`
	SQLitePath     string `env:"SQLITE_PATH"     envDefault:"touchline.db"`

	HTTPAddr       string   `env:"HTTP_ADDR"       envDefault:":8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	DiscordToken         string `env:"DISCORD_TOKEN"`
	DiscordApplicationID string `env:"DISCORD_APPLICATION_ID"`
	DiscordGuildID       string `env:"DISCORD_GUILD_ID"`

	SquadSize       int `env:"SQUAD_SIZE"        envDefault:"18"`
	StartingOnField int `env:"STARTING_ON_FIELD" envDefault:"13"`

	LockSignalDuration time.Duration `env:"LOCK_SIGNAL_DURATION" envDefault:"2s"`
	PersistTimeout     time.Duration `env:"PERSIST_TIMEOUT"      envDefault:"2s"`
	TickInterval       time.Duration `env:"TICK_INTERVAL"        envDefault:"1s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// WeightsFile is an optional TOML file of impact weights
	WeightsFile string `env:"WEIGHTS_FILE"`
}

// Load reads envFile into the environment when it exists, then parses the
// TOUCHLINE_ variables. Variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the struct tags cannot express
func (c *Config) Validate() error {
	switch c.HistoryBackend {
	case HistoryBackendRedis, HistoryBackendSQLite:
	default:
		return fmt.Errorf("unknown history backend %q", c.HistoryBackend)
	}
	if c.SquadSize <= 0 {
		return fmt.Errorf("squad size must be positive, got %d", c.SquadSize)
	}
	if c.StartingOnField <= 0 || c.StartingOnField > c.SquadSize {
		return fmt.Errorf("starting on-field count must be between 1 and %d, got %d", c.SquadSize, c.StartingOnField)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive")
	}
	return nil
}
