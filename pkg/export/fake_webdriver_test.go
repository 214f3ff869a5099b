package export

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type executeCall struct {
	Script string            `json:"script"`
	Args   []json.RawMessage `json:"args"`
}

// fakeWebDriver answers the subset of the W3C protocol used by the exporter.
type fakeWebDriver struct {
	mu           sync.Mutex
	ready        bool
	result       any
	sessions     int
	closed       int
	capabilities map[string]any
	navigated    []string
	executed     []executeCall
}

func (f *fakeWebDriver) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /status", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeValue(w, http.StatusOK, map[string]any{"ready": f.ready, "message": "fake"})
	})

	mux.HandleFunc("POST /session", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Capabilities struct {
				AlwaysMatch map[string]any `json:"alwaysMatch"`
			} `json:"capabilities"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeValue(w, http.StatusBadRequest, map[string]any{"error": "invalid argument", "message": err.Error()})
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		f.sessions++
		f.capabilities = body.Capabilities.AlwaysMatch
		writeValue(w, http.StatusOK, map[string]any{"sessionId": "session-" + strconv.Itoa(f.sessions)})
	})

	mux.HandleFunc("POST /session/{id}/url", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			URL string `json:"url"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		f.mu.Lock()
		defer f.mu.Unlock()
		f.navigated = append(f.navigated, body.URL)
		writeValue(w, http.StatusOK, nil)
	})

	mux.HandleFunc("POST /session/{id}/execute/async", func(w http.ResponseWriter, r *http.Request) {
		var call executeCall
		_ = json.NewDecoder(r.Body).Decode(&call)

		f.mu.Lock()
		defer f.mu.Unlock()
		f.executed = append(f.executed, call)
		writeValue(w, http.StatusOK, f.result)
	})

	mux.HandleFunc("DELETE /session/{id}", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.closed++
		writeValue(w, http.StatusOK, nil)
	})

	return mux
}

func writeValue(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"value": value})
}

// startFakeWebDriver serves f on 127.0.0.1 and returns its port.
func startFakeWebDriver(t *testing.T, f *fakeWebDriver) int {
	t.Helper()

	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)

	_, port, err := net.SplitHostPort(server.Listener.Addr().String())
	require.NoError(t, err)
	n, err := strconv.Atoi(port)
	require.NoError(t, err)
	return n
}

// freePort returns a port nothing listens on.
func freePort(t *testing.T) int {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())
	return port
}

func (f *fakeWebDriver) setResult(result any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.result = result
}

func (f *fakeWebDriver) executedCalls() []executeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]executeCall(nil), f.executed...)
}

func (f *fakeWebDriver) navigatedURLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.navigated...)
}

func (f *fakeWebDriver) sessionCounts() (opened, closed int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions, f.closed
}

func (f *fakeWebDriver) lastCapabilities() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.capabilities
}
