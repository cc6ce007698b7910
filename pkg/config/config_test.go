package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Port:             DefaultPort,
		LogLevel:         DefaultLogLevel,
		DatabaseURL:      DefaultDatabaseURL,
		MaxMoves:         DefaultMaxMoves,
		PenaltyTurns:     DefaultPenaltyTurns,
		MoveDuration:     DefaultMoveDuration,
		FeedbackInterval: DefaultFeedbackInterval,
	}, cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "robocleaner.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = 9090
log-level = "debug"
move-duration = "2s"

[battery]
max-moves = 5
penalty-turns = 7
`), 0o600))

	t.Setenv("ROBOCLEANER_PORT", "9191")
	t.Setenv("ROBOCLEANER_BATTERY_MAX_MOVES", "12")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 12, cfg.MaxMoves)
	assert.Equal(t, 7, cfg.PenaltyTurns)
	assert.Equal(t, 2*time.Second, cfg.MoveDuration)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:             DefaultPort,
			LogLevel:         DefaultLogLevel,
			MaxMoves:         DefaultMaxMoves,
			PenaltyTurns:     DefaultPenaltyTurns,
			MoveDuration:     DefaultMoveDuration,
			FeedbackInterval: DefaultFeedbackInterval,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "zero penalty", mutate: func(c *Config) { c.PenaltyTurns = 0 }},
		{name: "port out of range", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
		{name: "empty battery", mutate: func(c *Config) { c.MaxMoves = 0 }, wantErr: true},
		{name: "negative penalty", mutate: func(c *Config) { c.PenaltyTurns = -1 }, wantErr: true},
		{name: "zero move duration", mutate: func(c *Config) { c.MoveDuration = 0 }, wantErr: true},
		{name: "zero feedback interval", mutate: func(c *Config) { c.FeedbackInterval = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
