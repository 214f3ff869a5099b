package logrus

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/raykavin/goplotly/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "info", JSON: true, Out: &buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"plot": "abc", "traces": 2}).Info("stored")
	log.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "stored", entry["msg"])
	require.Equal(t, "abc", entry["plot"])
	require.EqualValues(t, 2, entry["traces"])
	require.Equal(t, "info", entry["level"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLogrusAdapter_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "trace", Out: &buf})
	require.NoError(t, err)
	require.Equal(t, logger.TraceLevel, log.GetLevel())

	log.SetLevel(logger.ErrorLevel)
	require.Equal(t, logger.ErrorLevel, log.GetLevel())

	log.Warnf("dropped %d", 1)
	require.Zero(t, buf.Len())

	log.WithError(errors.New("boom")).Error("failed")
	require.Contains(t, buf.String(), "error=boom")
	require.Contains(t, buf.String(), "msg=failed")
}
