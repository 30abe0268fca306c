package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pursuit/agent"
	"pursuit/meta"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pursuit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PURSUIT_DEPTH", "")
	t.Setenv("PURSUIT_SEED", "")
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load("")

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.Equal(t, meta.DEPTH, cfg.Depth)
		require.Len(t, cfg.Rounds, meta.ROUNDS)
		require.Equal(t, agent.Search, cfg.Evader)
	})

	t.Run("file overrides the defaults it names", func(t *testing.T) {
		clearEnv(t)
		path := writeFile(t, `
seekers: 2
depth: 3
rounds: [false, true, false]
seekers_agent: search
map_file: maps/small.txt
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 2, cfg.Seekers)
		require.Equal(t, 3, cfg.Depth)
		require.Equal(t, []bool{false, true, false}, cfg.Rounds)
		require.Equal(t, agent.Search, cfg.SeekersAgent)
		require.Equal(t, "maps/small.txt", cfg.MapFile)
		require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns, "Unnamed fields should keep their defaults")
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PURSUIT_DEPTH", "2")
		t.Setenv("PURSUIT_SEED", "99")
		t.Setenv("LOG_LEVEL", "debug")
		path := writeFile(t, "depth: 4\nseed: 3\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 2, cfg.Depth)
		require.Equal(t, uint64(99), cfg.Seed)
		require.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("rejects invalid settings", func(t *testing.T) {
		clearEnv(t)
		cases := map[string]string{
			"too many seekers": "seekers: 6\n",
			"no seekers":       "seekers: 0\n",
			"zero depth":       "depth: 0\n",
			"empty rounds":     "rounds: []\n",
			"unknown agent":    "evader: psychic\n",
			"not yaml":         "seekers: [\n",
		}
		for name, content := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := Load(writeFile(t, content))
				require.Error(t, err)
			})
		}
	})

	t.Run("rejects a bad environment value", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PURSUIT_DEPTH", "deep")

		_, err := Load("")

		require.Error(t, err)
	})

	t.Run("missing file fails", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}
