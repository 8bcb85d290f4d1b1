package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/creature-battle/internal/errors"
)

var keys = []string{
	"BATTLE_ID", "BATTLE_SEED", "BATTLE_MAX_TURNS", "TRAITS_FILE",
	"REDIS_URL", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
}

// clearEnv blanks every key for the test and unsets it so .env files apply
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadFiles_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "duel", cfg.Battle.ID)
	assert.Equal(t, int64(42), cfg.Battle.Seed)
	assert.Equal(t, 30, cfg.Battle.MaxTurns)
	assert.Empty(t, cfg.Battle.TraitsFile)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadFiles_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("BATTLE_SEED", "7")
	t.Setenv("BATTLE_MAX_TURNS", "12")
	t.Setenv("TRAITS_FILE", "traits.yaml")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := LoadFiles()
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Battle.Seed)
	assert.Equal(t, 12, cfg.Battle.MaxTurns)
	assert.Equal(t, "traits.yaml", cfg.Battle.TraitsFile)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestLoadFiles_DotEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BATTLE_ID=rematch\nREDIS_URL=redis://localhost:6379/1\n"), 0o600))

	// Set variables are not overridden by the file
	t.Setenv("BATTLE_SEED", "99")

	cfg, err := LoadFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "rematch", cfg.Battle.ID)
	assert.Equal(t, int64(99), cfg.Battle.Seed)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoadFiles_InvalidMaxTurns(t *testing.T) {
	clearEnv(t)
	t.Setenv("BATTLE_MAX_TURNS", "0")

	_, err := LoadFiles()
	assert.True(t, errors.IsInvalidArgument(err))
}
