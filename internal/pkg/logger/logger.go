package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger implements ports.Logger on top of zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// New creates a logger writing human readable lines to w. Only warnings and
// errors are emitted unless verbose is set.
func New(w io.Writer, verbose bool) *ZerologLogger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	return &ZerologLogger{log: zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

// NewStderr creates a logger on stderr, keeping stdout for the report.
func NewStderr(verbose bool) *ZerologLogger {
	return New(os.Stderr, verbose)
}

// FromZerolog wraps an already configured zerolog logger.
func FromZerolog(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{log: l}
}

func (l *ZerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}
