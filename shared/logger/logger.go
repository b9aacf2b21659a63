// Package logger sets up the global zerolog logger. Everything else logs through
// github.com/rs/zerolog/log directly.
package logger

import (
	"estate/config"
	"estate/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a console logger at trace level so configuration loading can log
// before Configure runs.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = New(os.Stdout, constant.ServerEnvDevelopment, "")
	log.Trace().Msg("Zerolog initialized.")
}

// Configure applies the configured level and switches production to JSON lines.
func Configure(cfg *config.Config) {
	SetLogLevel(cfg)

	log.Logger = New(os.Stdout, cfg.Server.Env, cfg.App.Name)
}

// New builds a logger for env. Production writes JSON tagged with the app name;
// other environments use the human readable console writer.
func New(out io.Writer, env, app string) zerolog.Logger {
	if env != constant.ServerEnvProduction {
		return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	}

	return zerolog.New(out).With().Timestamp().Str("app", app).Logger()
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(cfg *config.Config) {
	level := ParseLevel(cfg.Server.LogLevel)
	zerolog.SetGlobalLevel(level)

	log.Trace().Str("loglevel", level.String()).Msg("Log level set.")
}

// ParseLevel maps a level name to a zerolog level. Unknown or empty names fall back to trace.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == constant.Empty {
		return zerolog.TraceLevel
	}

	return level
}
