package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// consoleTimeFormat keeps interactive sessions readable; JSON entries carry full timestamps
const consoleTimeFormat = "15:04:05"

var levels = map[LogLevel]zerolog.Level{
	LogLevelTrace: zerolog.TraceLevel,
	LogLevelDebug: zerolog.DebugLevel,
	LogLevelInfo:  zerolog.InfoLevel,
	LogLevelWarn:  zerolog.WarnLevel,
	LogLevelError: zerolog.ErrorLevel,
	LogLevelOff:   zerolog.Disabled,
}

// NewLogger builds a logger writing to w.
// Rendered curves own stdout, so the binary passes stderr here.
// Console output is colored only when w is a terminal.
func NewLogger(cfg *Config, w io.Writer) (*zerolog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var l zerolog.Logger
	switch cfg.Format {
	case LogFormatConsole:
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !isTerminal(w),
			TimeFormat: consoleTimeFormat,
		})
	default:
		l = zerolog.New(w)
	}

	l = l.Level(level).With().Timestamp().Logger()
	return &l, nil
}

// Component returns a child logger tagging every entry with the emitting component
func Component(logger *zerolog.Logger, name string) *zerolog.Logger {
	if logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	l := logger.With().Str("component", name).Logger()
	return &l
}

func parseLogLevel(level LogLevel) (zerolog.Level, error) {
	if l, ok := levels[level]; ok {
		return l, nil
	}
	return zerolog.NoLevel, fmt.Errorf("invalid log level: %s", level)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
