package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T, level LogLevel, format LogFormat) (*CLILogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, err := NewLogger(&LoggerConfig{
		Level:  level,
		Format: format,
		Output: &buf,
	})
	require.NoError(t, err)
	return logger, &buf
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{" INFO ", LogLevelInfo, false},
		{"", LogLevelInfo, false},
		{"warning", LogLevelWarn, false},
		{"error", LogLevelError, false},
		{"verbose", LogLevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLogFormat(t *testing.T) {
	f, err := ParseLogFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, LogFormatJSON, f)

	f, err = ParseLogFormat("compact")
	require.NoError(t, err)
	assert.Equal(t, LogFormatCompact, f)

	_, err = ParseLogFormat("xml")
	assert.Error(t, err)
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(t, LogLevelWarn, LogFormatText)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("shown %d", 1)
	logger.Error("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN shown 1")
	assert.Contains(t, out, "ERROR shown 2")
}

func TestLogger_TextFieldsAreSorted(t *testing.T) {
	logger, buf := newBufferLogger(t, LogLevelDebug, LogFormatText)

	logger.WithFields(map[string]interface{}{"locale": "en-US", "lcid": "0x0409"}).Debug("built record")

	assert.Contains(t, buf.String(), "DEBUG {lcid=0x0409, locale=en-US} built record")
	assert.NotContains(t, buf.String(), "\033[", "color disabled")
}

func TestLogger_WithFieldDoesNotLeak(t *testing.T) {
	logger, buf := newBufferLogger(t, LogLevelInfo, LogFormatText)

	logger.WithField("locale", "de-DE").Info("first")
	logger.Info("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "locale=de-DE")
	assert.NotContains(t, lines[1], "locale=")
}

func TestLogger_JSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(t, LogLevelInfo, LogFormatJSON)

	logger.WithField("written", 3).Info("export finished")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "export finished", entry["message"])
	assert.Equal(t, float64(3), entry["written"])
}

func TestLogger_CompactFormat(t *testing.T) {
	logger, buf := newBufferLogger(t, LogLevelInfo, LogFormatCompact)

	logger.Warn("careful")

	assert.Regexp(t, `^W \d{2}:\d{2}:\d{2} careful\n$`, buf.String())
}

func TestLogger_FileOutput(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "localecsv.log")

	logger, err := NewLogger(&LoggerConfig{
		Level:      LogLevelInfo,
		Output:     &buf,
		EnableFile: true,
		FilePath:   path,
	})
	require.NoError(t, err)

	logger.Info("to both")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}
