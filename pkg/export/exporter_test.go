package export

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/raykavin/goplotly/pkg/logger/zerolog"
	"github.com/stretchr/testify/require"
)

const testPlot = `{"data":[{"type":"scatter","x":[1,2],"y":[3,4]}],"layout":{},"config":{}}`

func newTestExporter(t *testing.T, fake *fakeWebDriver, options ...ExporterOption) *StaticExporter {
	t.Helper()

	fake.ready = true
	port := startFakeWebDriver(t, fake)

	options = append([]ExporterOption{WithWebDriverPort(port), WithLogger(zerolog.Nop())}, options...)
	exporter := NewStaticExporter(options...)
	t.Cleanup(func() { exporter.Close(context.Background()) })
	return exporter
}

func TestStaticExporter_WriteToStringPNG(t *testing.T) {
	fake := &fakeWebDriver{result: "data:image/png;base64,iVBORw0KGgo="}
	exporter := newTestExporter(t, fake)

	data, err := exporter.WriteToString(context.Background(), []byte(testPlot), PNG, 640, 480, 1.5)
	require.NoError(t, err)
	require.Equal(t, "iVBORw0KGgo=", data)

	calls := fake.executedCalls()
	require.Len(t, calls, 1)
	call := calls[0]
	require.Equal(t, imageScript, call.Script)
	require.Len(t, call.Args, 5)
	require.JSONEq(t, testPlot, string(call.Args[0]))
	require.JSONEq(t, `"png"`, string(call.Args[1]))
	require.JSONEq(t, `640`, string(call.Args[2]))
	require.JSONEq(t, `480`, string(call.Args[3]))
	require.JSONEq(t, `1.5`, string(call.Args[4]))

	navigated := fake.navigatedURLs()
	require.Len(t, navigated, 1)
	require.True(t, strings.HasPrefix(navigated[0], "data:text/html,"))
	page, err := url.PathUnescape(strings.TrimPrefix(navigated[0], "data:text/html,"))
	require.NoError(t, err)
	require.Contains(t, page, PlotlyCDN)
	require.Contains(t, page, `id="plotly-html-element"`)
}

func TestStaticExporter_Capabilities(t *testing.T) {
	fake := &fakeWebDriver{result: "data:image/png;base64,AA=="}
	exporter := newTestExporter(t, fake, WithBrowserArgs("--headless"), WithBrowserBinary("/opt/chrome"))

	_, err := exporter.WriteToString(context.Background(), []byte(testPlot), PNG, 10, 10, 1)
	require.NoError(t, err)

	b, err := json.Marshal(fake.lastCapabilities())
	require.NoError(t, err)
	require.JSONEq(t, `{
		"browserName": "chrome",
		"goog:chromeOptions": {"args": ["--headless"], "binary": "/opt/chrome"}
	}`, string(b))

	firefox := NewStaticExporter(WithBrowser(Firefox), WithLogger(zerolog.Nop())).capabilities()
	require.Equal(t, "firefox", firefox["browserName"])
	options := firefox["moz:firefoxOptions"].(map[string]any)
	require.Equal(t, []string{"-headless", "--no-remote"}, options["args"])
	require.Contains(t, options, "prefs")
}

func TestStaticExporter_SessionReused(t *testing.T) {
	fake := &fakeWebDriver{result: "data:image/jpeg;base64,AA=="}
	exporter := newTestExporter(t, fake)

	for range 3 {
		_, err := exporter.WriteToString(context.Background(), []byte(testPlot), JPEG, 10, 10, 1)
		require.NoError(t, err)
	}
	opened, _ := fake.sessionCounts()
	require.Equal(t, 1, opened)
	require.Len(t, fake.executedCalls(), 3)

	require.NoError(t, exporter.Close(context.Background()))
	_, closed := fake.sessionCounts()
	require.Equal(t, 1, closed)
}

func TestStaticExporter_WriteToStringSVG(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="10"><g class="a b"></g></svg>`
	fake := &fakeWebDriver{result: "data:image/svg+xml," + url.PathEscape(svg)}
	exporter := newTestExporter(t, fake)

	data, err := exporter.WriteToString(context.Background(), []byte(testPlot), SVG, 10, 10, 1)
	require.NoError(t, err)
	require.Equal(t, svg, data)
}

func TestStaticExporter_PDF(t *testing.T) {
	fake := &fakeWebDriver{result: "data:application/pdf;filename=generated.pdf;base64,JVBERi0="}
	exporter := newTestExporter(t, fake)

	data, err := exporter.WriteToString(context.Background(), []byte(testPlot), PDF, 800, 600, 1)
	require.NoError(t, err)
	require.Equal(t, "JVBERi0=", data)

	call := fake.executedCalls()[0]
	require.Equal(t, pdfScript, call.Script)
	require.Len(t, call.Args, 7)
	require.JSONEq(t, `"svg"`, string(call.Args[1]))
	require.JSONEq(t, `150`, string(call.Args[5]))
	require.JSONEq(t, `true`, string(call.Args[6]))
}

func TestStaticExporter_Errors(t *testing.T) {
	fake := &fakeWebDriver{result: "ERROR:Error: invalid layout"}
	exporter := newTestExporter(t, fake)
	ctx := context.Background()

	_, err := exporter.WriteToString(ctx, []byte(testPlot), PNG, 10, 10, 1)
	require.ErrorIs(t, err, ErrExportFailed)
	require.ErrorContains(t, err, "invalid layout")

	_, err = exporter.WriteToString(ctx, []byte(testPlot), EPS, 10, 10, 1)
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = exporter.WriteToString(ctx, []byte(`{"data":`), PNG, 10, 10, 1)
	require.Error(t, err)

	fake.setResult(42)
	_, err = exporter.WriteToString(ctx, []byte(testPlot), PNG, 10, 10, 1)
	require.ErrorIs(t, err, ErrInvalidImageData)

	fake.setResult("not a data url")
	_, err = exporter.WriteToString(ctx, []byte(testPlot), PNG, 10, 10, 1)
	require.ErrorIs(t, err, ErrInvalidImageData)
}

func TestStaticExporter_NoWebDriver(t *testing.T) {
	exporter := NewStaticExporter(
		WithWebDriverPort(freePort(t)),
		WithSpawn(false),
		WithLogger(zerolog.Nop()))

	_, err := exporter.WriteToString(context.Background(), []byte(testPlot), PNG, 10, 10, 1)
	require.ErrorIs(t, err, ErrSession)
}

func TestStaticExporter_WriteFig(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	fake := &fakeWebDriver{result: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)}
	exporter := newTestExporter(t, fake)

	dir := t.TempDir()
	err := exporter.WriteFig(context.Background(), filepath.Join(dir, "chart.jpg"), []byte(testPlot), PNG, 10, 10, 1)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "chart.png"))
	require.NoError(t, err)
	require.Equal(t, png, content)
	require.NoFileExists(t, filepath.Join(dir, "chart.jpg"))
}

func TestStaticExporter_Offline(t *testing.T) {
	fake := &fakeWebDriver{result: "data:image/png;base64,AA=="}
	exporter := newTestExporter(t, fake, WithOffline([]byte("window.Plotly = {};")))

	_, err := exporter.WriteToString(context.Background(), []byte(testPlot), PNG, 10, 10, 1)
	require.NoError(t, err)

	navigated := fake.navigatedURLs()
	require.True(t, strings.HasPrefix(navigated[0], "file://"))
	// the page is removed once the export is done
	path := strings.TrimPrefix(navigated[0], "file://")
	require.NoFileExists(t, filepath.FromSlash(path))
}

func TestStaticExporter_ExportBatch(t *testing.T) {
	fake := &fakeWebDriver{result: "data:image/webp;base64,AA=="}
	exporter := newTestExporter(t, fake)

	dir := t.TempDir()
	jobs := make([]Job, 0, 5)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		jobs = append(jobs, Job{
			Path:     filepath.Join(dir, name),
			Document: []byte(testPlot),
			Format:   WEBP,
			Width:    10,
			Height:   10,
			Scale:    1,
		})
	}

	var mu sync.Mutex
	done := make([]string, 0)
	failures := make([]error, 0)
	err := exporter.ExportBatch(context.Background(), jobs, func(job Job, err error) {
		mu.Lock()
		defer mu.Unlock()
		done = append(done, filepath.Base(job.Path))
		if err != nil {
			failures = append(failures, err)
		}
	})
	require.NoError(t, err)
	require.Empty(t, failures)
	require.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, done)
	require.FileExists(t, filepath.Join(dir, "c.webp"))
	opened, _ := fake.sessionCounts()
	require.Equal(t, 1, opened)

	err = exporter.ExportBatch(context.Background(), []Job{{Path: "x", Format: EPS}}, nil)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseImageFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    ImageFormat
		wantErr bool
	}{
		{"png", PNG, false},
		{"JPG", JPEG, false},
		{" jpeg ", JPEG, false},
		{"webp", WEBP, false},
		{"svg", SVG, false},
		{"pdf", PDF, false},
		{"eps", "", true},
		{"gif", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseImageFormat(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
