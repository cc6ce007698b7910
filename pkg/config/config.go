package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cbodonnell/robocleaner/pkg/log"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "ROBOCLEANER"
	configName = "robocleaner"
)

// Keys shared by viper, env vars (ROBOCLEANER_<KEY> with dots as underscores)
// and cobra flags.
const (
	KeyPort             = "port"
	KeyLogLevel         = "log-level"
	KeyDatabaseURL      = "database-url"
	KeyFieldMap         = "field-map"
	KeyMaxMoves         = "battery.max-moves"
	KeyPenaltyTurns     = "battery.penalty-turns"
	KeyMoveDuration     = "move-duration"
	KeyFeedbackInterval = "feedback-interval"
)

const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultDatabaseURL      = "sqlite://robocleaner.db"
	DefaultMaxMoves         = 20
	DefaultPenaltyTurns     = 3
	DefaultMoveDuration     = 500 * time.Millisecond
	DefaultFeedbackInterval = 100 * time.Millisecond
)

type Config struct {
	Port        int
	LogLevel    string
	DatabaseURL string
	// FieldMap is a path to a field map file. Empty selects the built-in map.
	FieldMap         string
	MaxMoves         int
	PenaltyTurns     int
	MoveDuration     time.Duration
	FeedbackInterval time.Duration
}

// New returns a viper instance with defaults and env bindings set. Flags can be
// bound to it before Load is called.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyDatabaseURL, DefaultDatabaseURL)
	v.SetDefault(KeyFieldMap, "")
	v.SetDefault(KeyMaxMoves, DefaultMaxMoves)
	v.SetDefault(KeyPenaltyTurns, DefaultPenaltyTurns)
	v.SetDefault(KeyMoveDuration, DefaultMoveDuration)
	v.SetDefault(KeyFeedbackInterval, DefaultFeedbackInterval)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and returns the validated config.
// An empty path searches the working directory for robocleaner.{toml,yaml,json}.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		log.Debug("Loaded config file %s", v.ConfigFileUsed())
	}

	cfg := &Config{
		Port:             v.GetInt(KeyPort),
		LogLevel:         v.GetString(KeyLogLevel),
		DatabaseURL:      v.GetString(KeyDatabaseURL),
		FieldMap:         v.GetString(KeyFieldMap),
		MaxMoves:         v.GetInt(KeyMaxMoves),
		PenaltyTurns:     v.GetInt(KeyPenaltyTurns),
		MoveDuration:     v.GetDuration(KeyMoveDuration),
		FeedbackInterval: v.GetDuration(KeyFeedbackInterval),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.MaxMoves <= 0 {
		return fmt.Errorf("battery max moves must be positive, got %d", c.MaxMoves)
	}
	if c.PenaltyTurns < 0 {
		return fmt.Errorf("battery penalty turns must not be negative, got %d", c.PenaltyTurns)
	}
	if c.MoveDuration <= 0 {
		return fmt.Errorf("move duration must be positive, got %s", c.MoveDuration)
	}
	if c.FeedbackInterval <= 0 {
		return fmt.Errorf("feedback interval must be positive, got %s", c.FeedbackInterval)
	}
	return nil
}
