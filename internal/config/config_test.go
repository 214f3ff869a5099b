package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/raykavin/goplotly/pkg/export"
	"github.com/raykavin/goplotly/pkg/logger"
	"github.com/raykavin/goplotly/pkg/logger/logrus"
	"github.com/raykavin/goplotly/pkg/logger/zerolog"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"WEBDRIVER_PATH", "WEBDRIVER_PORT", "WEBDRIVER_BROWSER", "WEBDRIVER_TIMEOUT", "BROWSER_PATH",
	"PLOTLY_PORT", "PLOTLY_STORE", "PLOTLY_CACHE_SIZE", "PLOTLY_JS_PATH",
	"LOG_LEVEL", "LOG_BACKEND", "LOG_JSON", "LOG_COLORED", "LOG_TIME_LAYOUT",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	want := &Config{
		WebDriver: WebDriverConfig{Port: 4444, Browser: export.Chrome, Timeout: 30 * time.Second},
		Preview:   PreviewConfig{Port: 8080, Store: ":memory:", CacheSize: 64},
		Log: LogConfig{
			Level:      "info",
			Backend:    BackendZerolog,
			Colored:    true,
			TimeLayout: time.RFC3339,
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBDRIVER_PATH", "/opt/geckodriver")
	t.Setenv("WEBDRIVER_PORT", "5555")
	t.Setenv("WEBDRIVER_BROWSER", "Firefox")
	t.Setenv("WEBDRIVER_TIMEOUT", "1m30s")
	t.Setenv("PLOTLY_CACHE_SIZE", "8")
	t.Setenv("LOG_BACKEND", "logrus")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "/opt/geckodriver", cfg.WebDriver.Path)
	require.Equal(t, 5555, cfg.WebDriver.Port)
	require.Equal(t, export.Firefox, cfg.WebDriver.Browser)
	require.Equal(t, 90*time.Second, cfg.WebDriver.Timeout)
	require.Equal(t, 8, cfg.Preview.CacheSize)
	require.Equal(t, BackendLogrus, cfg.Log.Backend)
	require.True(t, cfg.Log.JSON)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLOTLY_PORT", "9090")

	path := filepath.Join(t.TempDir(), "plotly.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plotly_port: 7070\nplotly_store: /tmp/plots.db\nwebdriver_timeout: 1d\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Preview.Port)
	require.Equal(t, "/tmp/plots.db", cfg.Preview.Store)
	require.Equal(t, 24*time.Hour, cfg.WebDriver.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "WEBDRIVER_BROWSER", value: "safari"},
		{key: "WEBDRIVER_TIMEOUT", value: "soon"},
		{key: "LOG_BACKEND", value: "syslog"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.key)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestLogConfig_Logger(t *testing.T) {
	log, err := LogConfig{Level: "debug", Backend: BackendLogrus}.Logger()
	require.NoError(t, err)
	require.IsType(t, &logrus.LogrusAdapter{}, log)
	require.Equal(t, logger.DebugLevel, log.GetLevel())

	log, err = LogConfig{Level: "warn", Backend: BackendZerolog, TimeLayout: time.RFC3339}.Logger()
	require.NoError(t, err)
	require.IsType(t, &zerolog.ZerologAdapter{}, log)

	_, err = LogConfig{Level: "chatty", Backend: BackendZerolog}.Logger()
	require.Error(t, err)
}

func TestPreviewConfig_OpenStore(t *testing.T) {
	store, err := PreviewConfig{Store: ":memory:"}.OpenStore()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = PreviewConfig{Store: filepath.Join(t.TempDir(), "plots.db")}.OpenStore()
	require.NoError(t, err)
	require.NoError(t, store.Close())
}
