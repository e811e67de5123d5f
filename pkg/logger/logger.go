package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds logger configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Pretty bool      // Enable pretty console output
	Output io.Writer // Defaults to stdout
}

// New creates a new structured logger
func New(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(cfg.Level))
	zerolog.TimeFieldFormat = time.RFC3339

	var output io.Writer = os.Stdout
	if cfg.Output != nil {
		output = cfg.Output
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: "15:04:05",
		}
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Caller().
		Logger()
}

// ParseLevel maps a level name to a zerolog level; unknown names mean info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetGlobalLogger sets the package-level logger
func SetGlobalLogger(l zerolog.Logger) {
	log.Logger = l
}

// EngineLogger adapts a zerolog logger to printf-style logging interfaces
// such as the distribution engine's
type EngineLogger struct {
	log zerolog.Logger
}

// NewEngineLogger wraps l, tagging every entry with component=engine
func NewEngineLogger(l zerolog.Logger) *EngineLogger {
	return &EngineLogger{log: l.With().Str("component", "engine").Logger()}
}

func (e *EngineLogger) Debugf(format string, args ...any) {
	e.log.Debug().Msg(fmt.Sprintf(format, args...))
}

func (e *EngineLogger) Infof(format string, args ...any) {
	e.log.Info().Msg(fmt.Sprintf(format, args...))
}

func (e *EngineLogger) Warnf(format string, args ...any) {
	e.log.Warn().Msg(fmt.Sprintf(format, args...))
}

func (e *EngineLogger) Errorf(format string, args ...any) {
	e.log.Error().Msg(fmt.Sprintf(format, args...))
}
