package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("citadels", flag.ContinueOnError)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Players)
	assert.Equal(t, 8, cfg.EndCitySize)
	assert.Equal(t, "file", cfg.Store)
	assert.Equal(t, "saves", cfg.SaveDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "Player 1", cfg.HumanName)
	assert.True(t, cfg.Pace)
	assert.False(t, cfg.Debug)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CITADELS_PLAYERS", "5")
	t.Setenv("CITADELS_STORE", "sqlite")
	t.Setenv("CITADELS_SEED", "42")

	cfg, err := Parse(newFlagSet(), []string{"-players", "6", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Players)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"too few players", nil, []string{"-players", "3"}},
		{"too many players", map[string]string{"CITADELS_PLAYERS": "8"}, nil},
		{"store", nil, []string{"-store", "tape"}},
		{"end size", nil, []string{"-end", "-1"}},
		{"log level", map[string]string{"CITADELS_LOG_LEVEL": "loud"}, nil},
		{"bad env value", map[string]string{"CITADELS_SEED": "abc"}, nil},
		{"unknown flag", nil, []string{"-colour"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			fs := newFlagSet()
			fs.SetOutput(io.Discard)
			_, err := Parse(fs, tt.args)
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CITADELS_HUMAN_NAME=Ada\n"), 0o600))
	t.Setenv("CITADELS_HUMAN_NAME", "")
	os.Unsetenv("CITADELS_HUMAN_NAME")

	require.NoError(t, LoadDotEnv(path))
	cfg, err := Parse(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Ada", cfg.HumanName)

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
