// Package logger sets up the global zerolog logger for command line runs.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Init points the global logger at stderr. LOG_LEVEL overrides level; an
// unparsable level falls back to info.
func Init(level string) {
	Setup(os.Stderr, level)
}

// Setup is Init with an explicit output.
func Setup(out io.Writer, level string) zerolog.Level {
	zerolog.TimeFieldFormat = milliTimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: milliTimeFormat,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}).With().Timestamp().Logger()

	log.Debug().Str("level", parsed.String()).Msg("Logger initialized")
	return parsed
}
