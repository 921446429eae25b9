package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/readyvault/internal/calculation"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ calculation.Logger = ZerologAdapter{}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"unknown", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.level))
		})
	}
}

func TestNew_WritesToConsole(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Console: &buf})
	require.NoError(t, err)

	logger.Info().Msg("test message")
	logger.Debug().Msg("hidden")

	assert.Contains(t, buf.String(), "test message")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_PrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Console: &buf, Pretty: true})
	require.NoError(t, err)

	logger.Debug().Msg("pretty message")

	assert.Contains(t, buf.String(), "pretty message")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestNew_FileSink(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "readyvault.log")

	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", File: path, Console: &buf})
	require.NoError(t, err)

	logger.Warn().Str("user", "u1").Msg("written twice")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written twice")
	assert.Contains(t, buf.String(), "written twice")
}

func TestZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).Level(zerolog.DebugLevel)
	adapter := NewAdapter(base, "engine")

	adapter.Debugf("debug %d", 1)
	adapter.Infof("info %s", "two")
	adapter.Warnf("warn")
	adapter.Errorf("error %v", true)

	out := buf.String()
	assert.Contains(t, out, `"component":"engine"`)
	assert.Contains(t, out, "debug 1")
	assert.Contains(t, out, "info two")
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "error true")
}
