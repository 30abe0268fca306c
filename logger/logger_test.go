package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("uses the configured level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		var buf bytes.Buffer

		level := Setup(&buf, "debug")
		log.Debug().Msg("searching")

		require.Equal(t, zerolog.DebugLevel, level)
		require.Contains(t, buf.String(), "Logger initialized")
		require.Contains(t, buf.String(), "searching")
	})

	t.Run("environment overrides the configured level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		var buf bytes.Buffer

		level := Setup(&buf, "debug")
		log.Info().Msg("hidden")

		require.Equal(t, zerolog.WarnLevel, level)
		require.NotContains(t, buf.String(), "hidden")
	})

	t.Run("bad or empty level falls back to info", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		var buf bytes.Buffer

		require.Equal(t, zerolog.InfoLevel, Setup(&buf, "loud"))
		require.Equal(t, zerolog.InfoLevel, Setup(&buf, ""))
	})
}
