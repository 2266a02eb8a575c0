package log

type LogLevel string

const (
	LogLevelTrace LogLevel = "trace"
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	// LogLevelOff silences every entry, including clamp warnings
	LogLevelOff LogLevel = "off"
)

type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

// Config selects verbosity and encoding; clamp adjustments are logged at warn
type Config struct {
	Level  LogLevel  `env:"LOG_LEVEL,default=warn" validate:"required,oneof=trace debug info warn error off"`
	Format LogFormat `env:"LOG_FORMAT,default=console" validate:"required,oneof=json console"`
}
