package zerolog

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

	log.WithField("plot", "abc").Info("stored")
	log.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "stored", entry["message"])
	require.Equal(t, "abc", entry["plot"])
	require.Equal(t, "info", entry["level"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestZerologAdapter_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "trace", JSON: true, Out: &buf})
	require.NoError(t, err)

	log.SetLevel(logger.ErrorLevel)
	require.Equal(t, logger.ErrorLevel, log.GetLevel())

	log.Warn("dropped")
	require.Zero(t, buf.Len())

	log.WithError(errors.New("boom")).Error("failed")
	require.Contains(t, buf.String(), `"error":"boom"`)
}

func TestNop(t *testing.T) {
	require.NotPanics(t, func() {
		Nop().WithFields(map[string]any{"a": 1}).Infof("%d", 1)
	})
}
