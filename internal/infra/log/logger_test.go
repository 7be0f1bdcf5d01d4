package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"vidtube/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "vidtube"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONCarriesServiceAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := newLogger(newConfig("info", false), &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", slog.String("video_id", "v1"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible", record["msg"])
	assert.Equal(t, "vidtube", record["service"])
	assert.Equal(t, "test", record["env"])
	assert.Equal(t, "v1", record["video_id"])
}

func TestNewLogger_PrettyUsesText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := newLogger(newConfig("debug", true), &buf)
	require.NoError(t, err)

	logger.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "service=vidtube")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := newLogger(newConfig("loud", false), &bytes.Buffer{})
	assert.Error(t, err)
}
