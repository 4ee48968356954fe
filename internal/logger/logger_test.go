package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goccy/go-json"
)

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)

	log.Info("restored ROM", "subtype", "linear")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "restored ROM", entry["msg"])
	assert.Equal(t, "linear", entry["subtype"])
}

func TestJSONLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelWarn)

	log.Debug("dropped")
	log.Info("dropped too")
	assert.Zero(t, buf.Len())

	log.Error("kept")
	assert.NotZero(t, buf.Len())
}

func TestWithAttachesAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo).With("component", "iostep")

	log.Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "iostep", entry["component"])
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Info("nowhere")
	})
}
