package plot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/raykavin/goplotly/pkg/common"
	"github.com/raykavin/goplotly/pkg/layout"
	"github.com/raykavin/goplotly/pkg/logger/zerolog"
	"github.com/raykavin/goplotly/pkg/traces"
	"github.com/stretchr/testify/require"
)

func newTestPreview(t *testing.T) (*PreviewServer, *httptest.Server) {
	t.Helper()

	preview, err := NewPreviewServer(newTestStore(t), WithLogger(zerolog.Nop()), WithCacheSize(2))
	require.NoError(t, err)

	server := httptest.NewServer(preview.Handler())
	t.Cleanup(func() {
		server.Close()
		require.NoError(t, preview.Shutdown(context.Background()))
	})
	return preview, server
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestPreviewServer_API(t *testing.T) {
	_, server := newTestPreview(t)

	resp, err := http.Post(server.URL+"/api/plots", "application/json", strings.NewReader(markersPlot().String()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "/plots/"+created.ID, resp.Header.Get("Location"))

	status, body := get(t, server.URL+"/api/plots/"+created.ID)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, markersPlot().String(), body)

	status, body = get(t, server.URL+"/plots/"+created.ID)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "goplotlyPreview(")
	require.Contains(t, body, `"mode":"markers"`)

	status, body = get(t, server.URL+"/")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, `href="/plots/`+created.ID+`"`)

	status, _ = get(t, server.URL+"/health")
	require.Equal(t, http.StatusOK, status)
}

func TestPreviewServer_APIErrors(t *testing.T) {
	_, server := newTestPreview(t)

	status, _ := get(t, server.URL+"/api/plots/missing")
	require.Equal(t, http.StatusNotFound, status)

	status, _ = get(t, server.URL+"/plots/missing")
	require.Equal(t, http.StatusNotFound, status)

	resp, err := http.Post(server.URL+"/api/plots", "application/json", strings.NewReader(`{"data":`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	status, _ = get(t, server.URL+"/ws")
	require.Equal(t, http.StatusBadRequest, status)

	status, body := get(t, server.URL+"/")
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "No plot stored yet")
}

func TestPreviewServer_Delete(t *testing.T) {
	preview, server := newTestPreview(t)
	require.NoError(t, preview.Publish("gone", markersPlot()))
	require.Equal(t, []string{"gone"}, preview.Live())

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/plots/gone", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.Empty(t, preview.Live())
	status, _ := get(t, server.URL+"/plots/gone")
	require.Equal(t, http.StatusNotFound, status)
}

func TestPreviewServer_PageCache(t *testing.T) {
	preview, server := newTestPreview(t)
	require.NoError(t, preview.Publish("cached", markersPlot()))

	_, first := get(t, server.URL+"/plots/cached")
	require.Contains(t, first, `"mode":"markers"`)

	require.NoError(t, preview.Publish("cached", NewPlot().AddTrace(traces.NewBar([]string{"a"}, []int{1}))))

	_, second := get(t, server.URL+"/plots/cached")
	require.Contains(t, second, `"type":"bar"`)
	require.NotContains(t, second, `"mode":"markers"`)
}

func dial(t *testing.T, server *httptest.Server, id string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?plot=" + id
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

type received struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func read(t *testing.T, conn *websocket.Conn) received {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg received
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestPreviewServer_WebSocket(t *testing.T) {
	preview, server := newTestPreview(t)
	require.NoError(t, preview.Publish("live", markersPlot()))
	require.NoError(t, preview.Publish("other", NewPlot()))

	conn := dial(t, server, "live")

	msg := read(t, conn)
	require.Equal(t, MessageReact, msg.Type)
	require.JSONEq(t, markersPlot().String(), string(msg.Payload))

	// updates of other plots are not delivered
	require.NoError(t, preview.Publish("other", markersPlot()))

	require.NoError(t, preview.PushRestyle("live", traces.ScatterModifyAllName("renamed"), 0))
	msg = read(t, conn)
	require.Equal(t, MessageRestyle, msg.Type)
	require.JSONEq(t, `{"update":{"name":"renamed"},"traces":[0]}`, string(msg.Payload))

	require.NoError(t, preview.PushRelayout("live", layout.ModifyTitle(common.NewTitle("New"))))
	msg = read(t, conn)
	require.Equal(t, MessageRelayout, msg.Type)
	require.JSONEq(t, `{"update":{"title":{"text":"New"}}}`, string(msg.Payload))

	require.NoError(t, preview.PushAnimate("live", layout.AnimateFrames("f1")))
	msg = read(t, conn)
	require.Equal(t, MessageAnimate, msg.Type)
	require.JSONEq(t, `{"args":[["f1"],{}]}`, string(msg.Payload))

	updated := NewPlot().AddTrace(traces.NewBar([]string{"a"}, []int{1}))
	require.NoError(t, preview.Publish("live", updated))
	msg = read(t, conn)
	require.Equal(t, MessageReact, msg.Type)
	require.JSONEq(t, updated.String(), string(msg.Payload))

	require.Equal(t, []string{"live", "other"}, preview.Live())
}

func TestPreviewServer_PushErrors(t *testing.T) {
	preview, _ := newTestPreview(t)

	err := preview.PushRelayout("missing", layout.ModifyWidth(10))
	require.ErrorIs(t, err, ErrPlotNotFound)

	require.NoError(t, preview.Publish("p", NewPlot()))

	err = preview.PushRestyle("p", []int{1})
	require.ErrorIs(t, err, ErrInvalidUpdate)

	err = preview.PushRelayout("p", nil)
	require.ErrorIs(t, err, ErrInvalidUpdate)
}
