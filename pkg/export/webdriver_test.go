package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/raykavin/goplotly/pkg/logger/zerolog"
	"github.com/stretchr/testify/require"
)

func TestWebDriver_IsRunning(t *testing.T) {
	fake := &fakeWebDriver{ready: true}
	port := startFakeWebDriver(t, fake)

	wd := NewWebDriver(port, Chrome, WithDriverLogger(zerolog.Nop()))
	require.True(t, wd.IsRunning(context.Background()))

	fake.mu.Lock()
	fake.ready = false
	fake.mu.Unlock()
	require.False(t, wd.IsRunning(context.Background()))

	closed := NewWebDriver(freePort(t), Chrome, WithDriverLogger(zerolog.Nop()))
	require.False(t, closed.IsRunning(context.Background()))
}

func TestWebDriver_IsRunningStatusBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "ready", body: `{"value":{"ready":true,"message":"ok"}}`, want: true},
		{name: "busy", body: `{"value":{"ready":false,"message":"Session already started"}}`},
		{name: "ready outside value", body: `{"ready":true}`},
		{name: "not json", body: `ready`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			port, err := strconv.Atoi(server.URL[strings.LastIndex(server.URL, ":")+1:])
			require.NoError(t, err)

			wd := NewWebDriver(port, Firefox, WithDriverLogger(zerolog.Nop()))
			require.Equal(t, tt.want, wd.IsRunning(context.Background()))
		})
	}
}

func TestWebDriver_ConnectOrSpawnExternal(t *testing.T) {
	port := startFakeWebDriver(t, &fakeWebDriver{ready: true})

	wd := NewWebDriver(port, Chrome,
		WithDriverPath(filepath.Join(t.TempDir(), "missing")),
		WithDriverLogger(zerolog.Nop()))
	require.NoError(t, wd.ConnectOrSpawn(context.Background()))
	require.NoError(t, wd.Stop())

	require.Contains(t, wd.Diagnostics(), "Is External: true")
	require.Contains(t, wd.Diagnostics(), "WebDriver Responding: true")
}

func TestWebDriver_ConnectOrSpawnNotFound(t *testing.T) {
	t.Setenv(WebDriverPathEnv, filepath.Join(t.TempDir(), "chromedriver"))

	wd := NewWebDriver(freePort(t), Chrome, WithDriverLogger(zerolog.Nop()))
	err := wd.ConnectOrSpawn(context.Background())
	require.ErrorIs(t, err, ErrWebDriverNotFound)
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}

	path := filepath.Join(t.TempDir(), "driver.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestWebDriver_ConnectOrSpawnExited(t *testing.T) {
	path := writeScript(t, `echo "starting on $1"; exit 3`)

	wd := NewWebDriver(freePort(t), Chrome,
		WithDriverPath(path),
		WithReadyTimeout(10*time.Second),
		WithDriverLogger(zerolog.Nop()))

	err := wd.ConnectOrSpawn(context.Background())
	require.ErrorIs(t, err, ErrWebDriverExited)
	require.Contains(t, wd.Diagnostics(), "Process Status: Exited")
}

func TestWebDriver_ConnectOrSpawnTimeout(t *testing.T) {
	path := writeScript(t, `exec sleep 30`)

	wd := NewWebDriver(freePort(t), Chrome,
		WithDriverPath(path),
		WithReadyTimeout(300*time.Millisecond),
		WithDriverLogger(zerolog.Nop()))

	start := time.Now()
	err := wd.ConnectOrSpawn(context.Background())
	require.ErrorIs(t, err, ErrWebDriverTimeout)
	require.Less(t, time.Since(start), 10*time.Second)

	// the process was killed after the failed start
	require.NoError(t, wd.Stop())
}

func TestWebDriverPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geckodriver")
	require.NoError(t, os.WriteFile(path, nil, 0o755))

	t.Setenv(WebDriverPathEnv, path)
	got, err := WebDriverPath(Firefox)
	require.NoError(t, err)
	require.Equal(t, path, got)

	t.Setenv(WebDriverPathEnv, path+".missing")
	_, err = WebDriverPath(Firefox)
	require.ErrorIs(t, err, ErrWebDriverNotFound)
}

func TestParseBrowser(t *testing.T) {
	b, err := ParseBrowser(" Firefox ")
	require.NoError(t, err)
	require.Equal(t, Firefox, b)
	require.Equal(t, "geckodriver", b.DriverBinary())
	require.Equal(t, "chromedriver", Chrome.DriverBinary())

	_, err = ParseBrowser("safari")
	require.Error(t, err)
}
