package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("empty path falls back to defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, defaults(), cfg)
		require.NoError(t, cfg.Validate())
	})

	t.Run("a partial file keeps defaults for missing keys", func(t *testing.T) {
		path := writeConfig(t, "games: 3\nhidden_deck: true\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Games)
		require.True(t, cfg.HiddenDeck)
		require.Equal(t, defaults().Episodes, cfg.Episodes)
		require.Equal(t, defaults().Goroutines, cfg.Goroutines)
	})

	t.Run("a full file overrides everything", func(t *testing.T) {
		path := writeConfig(t, `
seed: 42
games: 10
goroutines: 4
episodes: 0
duration_ms: 250
cutoff: 40
top_k: 3
output_dir: out
season_times: [8, 8, 7, 6]
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, int64(42), cfg.Seed)
		require.Equal(t, 250*time.Millisecond, cfg.Duration())
		require.Equal(t, []int{8, 8, 7, 6}, cfg.SeasonTimes)
	})

	t.Run("a missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed YAML is an error", func(t *testing.T) {
		path := writeConfig(t, "games: [unclosed\n")
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects a missing budget", func(t *testing.T) {
		cfg := defaults()
		cfg.Episodes = 0
		cfg.DurationMS = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive games and goroutines", func(t *testing.T) {
		cfg := defaults()
		cfg.Games = 0
		require.Error(t, cfg.Validate())

		cfg = defaults()
		cfg.Goroutines = -1
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive season times", func(t *testing.T) {
		cfg := defaults()
		cfg.SeasonTimes = []int{8, 0, 7, 6}
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects more seasons than the deck holds", func(t *testing.T) {
		cfg := defaults()
		cfg.SeasonTimes = []int{8, 8, 7, 6, 5}
		require.Error(t, cfg.Validate())
	})
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}
