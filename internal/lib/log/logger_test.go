package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&Config{Level: LogLevelInfo, Format: LogFormatJSON}, &buf)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Str("variant", "hill").Msg("computed series")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "hill", entry["variant"])
	assert.Equal(t, "computed series", entry["message"])
}

func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&Config{Level: LogLevelWarn, Format: LogFormatConsole}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("clamped out-of-range parameter")
	assert.Contains(t, buf.String(), "clamped out-of-range parameter")
}

func TestNewLogger_ConsoleWithoutTerminalHasNoColor(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&Config{Level: LogLevelWarn, Format: LogFormatConsole}, &buf)
	require.NoError(t, err)

	logger.Warn().Str("field", "half_max").Msg("clamped out-of-range parameter")
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "field=half_max")
}

func TestNewLogger_Off(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&Config{Level: LogLevelOff, Format: LogFormatJSON}, &buf)
	require.NoError(t, err)

	logger.Error().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(&Config{Level: "verbose", Format: LogFormatJSON}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	Component(&base, "series").Info().Msg("computed series")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "series", entry["component"])

	assert.NotNil(t, Component(nil, "series"))
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level   LogLevel
		want    zerolog.Level
		wantErr bool
	}{
		{LogLevelTrace, zerolog.TraceLevel, false},
		{LogLevelDebug, zerolog.DebugLevel, false},
		{LogLevelInfo, zerolog.InfoLevel, false},
		{LogLevelWarn, zerolog.WarnLevel, false},
		{LogLevelError, zerolog.ErrorLevel, false},
		{LogLevelOff, zerolog.Disabled, false},
		{"verbose", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			got, err := parseLogLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
