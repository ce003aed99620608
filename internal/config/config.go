// Package config loads companion settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/dice-companion/internal/errors"
)

// Profile store backends
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config holds the companion settings. None of them change how rolls are
// resolved.
type Config struct {
	DataDir      string        `env:"DICE_COMPANION_DATA_DIR"      envDefault:"data"`
	Store        string        `env:"DICE_COMPANION_STORE"         envDefault:"file"`
	RedisAddr    string        `env:"DICE_COMPANION_REDIS_ADDR"    envDefault:"localhost:6379"`
	LogLevel     string        `env:"DICE_COMPANION_LOG_LEVEL"     envDefault:"info"`
	MotionSettle time.Duration `env:"DICE_COMPANION_MOTION_SETTLE" envDefault:"0s"`
	MotionPoll   time.Duration `env:"DICE_COMPANION_MOTION_POLL"   envDefault:"100ms"`
}

// Load reads an optional .env file and parses the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	return Parse()
}

// Parse reads the environment without touching .env files
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("DataDir", c.DataDir, vb)
	errors.ValidateEnum("Store", c.Store, []string{StoreFile, StoreRedis}, vb)
	if c.Store == StoreRedis {
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.InvalidField("LogLevel", err.Error())
	}
	if c.MotionSettle < 0 {
		vb.InvalidField("MotionSettle", "must not be negative")
	}
	if c.MotionPoll <= 0 {
		vb.InvalidField("MotionPoll", "must be positive")
	}

	return vb.Build()
}

// ParseLogLevel maps debug, info, warn and error to slog levels
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", level)
	}
	return l, nil
}
