package export

import (
	"bytes"
	"context"
	"embed"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"text/template"
	"time"

	"github.com/pkg/errors"
	"github.com/raykavin/goplotly/pkg/logger"
	"github.com/samber/lo"
)

const (
	PlotlyCDN   = "https://cdn.plot.ly/plotly-2.35.2.min.js"
	MathJaxCDN  = "https://cdn.jsdelivr.net/npm/mathjax@3.2.2/es5/tex-svg.js"
	HTML2PDFCDN = "https://cdnjs.cloudflare.com/ajax/libs/html2pdf.js/0.10.1/html2pdf.bundle.min.js"

	// DefaultPDFDelay is how long the PDF script waits for the rendered
	// image before capturing it.
	DefaultPDFDelay = 150 * time.Millisecond

	errorPrefix = "ERROR:"
)

var (
	//go:embed scripts
	scriptFiles embed.FS

	pageTemplate = template.Must(template.ParseFS(scriptFiles, "scripts/page.html"))
	imageScript  = mustRead("scripts/image.js")
	pdfScript    = mustRead("scripts/pdf.js")
)

func mustRead(name string) string {
	content, err := scriptFiles.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return string(content)
}

// StaticExporter renders plot documents to images in a headless browser
// driven through WebDriver. The WebDriver and its browser session are
// started by the first export and reused until Close. Exports are
// serialized on the single session.
type StaticExporter struct {
	mu sync.Mutex

	port          int
	browser       Browser
	browserArgs   []string
	browserBinary string
	driverPath    string
	spawn         bool
	offline       bool
	scripts       []string
	pdfDelay      time.Duration
	readyTimeout  time.Duration
	client        *http.Client
	log           logger.Logger

	driver  *WebDriver
	session *session
}

// ExporterOption configures a StaticExporter.
type ExporterOption func(*StaticExporter)

func WithWebDriverPort(port int) ExporterOption {
	return func(e *StaticExporter) {
		e.port = port
	}
}

// WithBrowser selects the browser, and with it the WebDriver binary and the
// default browser arguments.
func WithBrowser(browser Browser) ExporterOption {
	return func(e *StaticExporter) {
		e.browser = browser
		e.browserArgs = DefaultBrowserArgs(browser)
	}
}

// WithBrowserArgs replaces the browser command line arguments.
func WithBrowserArgs(args ...string) ExporterOption {
	return func(e *StaticExporter) {
		e.browserArgs = args
	}
}

// WithBrowserBinary sets the browser executable the WebDriver starts.
func WithBrowserBinary(path string) ExporterOption {
	return func(e *StaticExporter) {
		e.browserBinary = path
	}
}

// WithWebDriverPath sets the WebDriver binary spawned when none is running,
// instead of the one found by WebDriverPath.
func WithWebDriverPath(path string) ExporterOption {
	return func(e *StaticExporter) {
		e.driverPath = path
	}
}

// WithSpawn controls whether a WebDriver is spawned when none is running.
func WithSpawn(spawn bool) ExporterOption {
	return func(e *StaticExporter) {
		e.spawn = spawn
	}
}

// WithOffline inlines the given scripts (plotly.js, and html2pdf for PDF
// export) in the export page instead of loading them from CDNs.
func WithOffline(scripts ...[]byte) ExporterOption {
	return func(e *StaticExporter) {
		e.offline = true
		e.scripts = make([]string, 0, len(scripts))
		for _, script := range scripts {
			e.scripts = append(e.scripts, string(script))
		}
	}
}

func WithPDFDelay(delay time.Duration) ExporterOption {
	return func(e *StaticExporter) {
		e.pdfDelay = delay
	}
}

// WithWebDriverTimeout sets how long a spawned WebDriver gets to become
// ready.
func WithWebDriverTimeout(timeout time.Duration) ExporterOption {
	return func(e *StaticExporter) {
		e.readyTimeout = timeout
	}
}

func WithLogger(log logger.Logger) ExporterOption {
	return func(e *StaticExporter) {
		e.log = log
	}
}

func WithHTTPClient(client *http.Client) ExporterOption {
	return func(e *StaticExporter) {
		e.client = client
	}
}

// NewStaticExporter creates an exporter. No process is started until the
// first export.
func NewStaticExporter(options ...ExporterOption) *StaticExporter {
	e := &StaticExporter{
		port:         DefaultWebDriverPort,
		browser:      Chrome,
		browserArgs:  DefaultBrowserArgs(Chrome),
		spawn:        true,
		pdfDelay:     DefaultPDFDelay,
		readyTimeout: DefaultReadyTimeout(),
		client:       http.DefaultClient,
		log:          DefaultLog,
	}
	for _, option := range options {
		option(e)
	}

	driverOptions := []WebDriverOption{
		WithReadyTimeout(e.readyTimeout),
		WithDriverLogger(e.log),
	}
	if e.driverPath != "" {
		driverOptions = append(driverOptions, WithDriverPath(e.driverPath))
	}
	e.driver = NewWebDriver(e.port, e.browser, driverOptions...)
	return e
}

// DefaultBrowserArgs returns the headless arguments used for browser.
func DefaultBrowserArgs(browser Browser) []string {
	if browser == Firefox {
		return []string{"-headless", "--no-remote"}
	}

	if runtime.GOOS == "windows" {
		return []string{
			"--headless=new",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-breakpad",
			"--no-first-run",
			"--no-default-browser-check",
			"--disable-background-networking",
			"--disable-sync",
			"--disable-translate",
			"--disable-background-timer-throttling",
			"--disable-renderer-backgrounding",
			"--disable-backgrounding-occluded-windows",
			"--disable-ipc-flooding-protection",
			"--disable-extensions",
			"--hide-scrollbars",
			"--mute-audio",
			"--use-angle=swiftshader",
			"--disable-software-rasterizer",
		}
	}

	return []string{
		"--headless",
		"--no-sandbox",
		"--disable-gpu-sandbox",
		"--disable-dev-shm-usage",
		"--disable-extensions",
		"--disable-background-networking",
		"--disable-sync",
		"--disable-translate",
		"--disable-background-timer-throttling",
		"--disable-renderer-backgrounding",
		"--disable-features=VizDisplayCompositor",
		"--memory-pressure-off",
		"--enable-unsafe-swiftshader",
		"--use-mock-keychain",
		"--password-store=basic",
		"--disable-web-security",
		"--disable-breakpad",
		"--no-first-run",
		"--no-default-browser-check",
		"--disable-backgrounding-occluded-windows",
		"--disable-ipc-flooding-protection",
	}
}

// capabilities returns the W3C capabilities of the browser session.
func (e *StaticExporter) capabilities() map[string]any {
	options := map[string]any{"args": e.browserArgs}
	if e.browserBinary != "" {
		options["binary"] = e.browserBinary
	}

	key := "goog:chromeOptions"
	if e.browser == Firefox {
		key = "moz:firefoxOptions"
		options["prefs"] = map[string]any{
			"layers.acceleration.disabled":        true,
			"gfx.webrender.all":                   false,
			"gfx.webrender.software":              true,
			"webgl.disabled":                      false,
			"webgl.force-enabled":                 true,
			"webgl.enable-webgl2":                 true,
			"webgl.software-rendering":            true,
			"webgl.software-rendering.force":      true,
			"gfx.canvas.azure.accelerated":        false,
			"gfx.canvas.azure.accelerated-layers": false,
			"gfx.content.azure.backends":          "cairo",
			"gfx.2d.force-enabled":                true,
			"gfx.2d.force-software":               true,
		}
	}

	return map[string]any{
		"browserName": string(e.browser),
		key:           options,
	}
}

// WriteFig exports plotJSON to path. The extension of path is replaced by
// the format's.
func (e *StaticExporter) WriteFig(ctx context.Context, path string, plotJSON []byte, format ImageFormat, width, height int, scale float64) error {
	data, err := e.export(ctx, plotJSON, format, width, height, scale)
	if err != nil {
		return err
	}

	content := []byte(data)
	if format != SVG {
		if content, err = base64.StdEncoding.DecodeString(data); err != nil {
			return errors.Wrapf(ErrInvalidImageData, "failed to decode %s: %v", format, err)
		}
	}

	path = strings.TrimSuffix(path, filepath.Ext(path)) + "." + format.Extension()
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	e.log.WithFields(map[string]any{"path": path, "format": format}).Debug("Image exported")
	return nil
}

// WriteToString exports plotJSON and returns the image: SVG markup for SVG,
// base64 encoded data otherwise.
func (e *StaticExporter) WriteToString(ctx context.Context, plotJSON []byte, format ImageFormat, width, height int, scale float64) (string, error) {
	return e.export(ctx, plotJSON, format, width, height, scale)
}

// Diagnostics describes the WebDriver state.
func (e *StaticExporter) Diagnostics() string {
	return e.driver.Diagnostics()
}

// Close ends the browser session and stops the WebDriver if the exporter
// spawned it.
func (e *StaticExporter) Close(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil {
		if err := e.session.close(ctx); err != nil {
			e.log.WithError(err).Error("Failed to close WebDriver session")
		}
		e.session = nil
	}
	return e.driver.Stop()
}

func (e *StaticExporter) export(ctx context.Context, plotJSON []byte, format ImageFormat, width, height int, scale float64) (string, error) {
	if err := format.Validate(); err != nil {
		return "", err
	}
	if !json.Valid(plotJSON) {
		return "", errors.New("plot document is not valid JSON")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.ensureSession(ctx)
	if err != nil {
		return "", err
	}

	pageURL, cleanup, err := e.pageURL()
	if err != nil {
		return "", err
	}
	defer cleanup()

	if err := s.navigate(ctx, pageURL); err != nil {
		return "", err
	}

	script, args := imageScript, []any{json.RawMessage(plotJSON), format, width, height, scale}
	if format == PDF {
		script = pdfScript
		args = []any{
			json.RawMessage(plotJSON), SVG, width, height, scale,
			e.pdfDelay.Milliseconds(),
			e.browser == Chrome,
		}
	}

	raw, err := s.executeAsync(ctx, script, args)
	if err != nil {
		return "", errors.Wrap(err, "failed to extract static image from browser session")
	}

	var result string
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", errors.Wrapf(ErrInvalidImageData, "script returned %s", raw)
	}
	if message, failed := strings.CutPrefix(result, errorPrefix); failed {
		return "", errors.Wrap(ErrExportFailed, message)
	}

	if format == SVG {
		return e.extractPlain(result, format)
	}
	return e.extractEncoded(result, format)
}

func (e *StaticExporter) ensureSession(ctx context.Context) (*session, error) {
	if e.session != nil {
		return e.session, nil
	}

	if e.spawn {
		if err := e.driver.ConnectOrSpawn(ctx); err != nil {
			return nil, err
		}
	}

	e.log.WithField("url", e.driver.URL()).Debug("Creating WebDriver session")
	s, err := newSession(ctx, e.client, e.driver.URL(), e.capabilities())
	if err != nil {
		return nil, err
	}
	e.session = s
	return s, nil
}

// pageURL returns the URL of the export page: a data URL, or a temporary
// file in offline mode since inlined bundles are too large for a data URL.
func (e *StaticExporter) pageURL() (string, func(), error) {
	var page bytes.Buffer
	err := pageTemplate.Execute(&page, map[string]any{
		"Offline":     e.offline,
		"Scripts":     e.scripts,
		"PlotlyURL":   PlotlyCDN,
		"MathJaxURL":  MathJaxCDN,
		"HTML2PDFURL": HTML2PDFCDN,
	})
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to render export page")
	}

	if !e.offline {
		return "data:text/html," + url.PathEscape(page.String()), func() {}, nil
	}

	path := filepath.Join(os.TempDir(), "plotly_"+lo.RandomString(22, lo.AlphanumericCharset)+".html")
	if err := os.WriteFile(path, page.Bytes(), 0o644); err != nil {
		return "", nil, errors.Wrap(err, "failed to write export page")
	}
	return "file://" + filepath.ToSlash(path), func() { os.Remove(path) }, nil
}

// extractPlain returns the URL encoded payload of a data URL.
func (e *StaticExporter) extractPlain(dataURL string, format ImageFormat) (string, error) {
	header, data, ok := strings.Cut(dataURL, ",")
	if !ok {
		return "", errors.Wrapf(ErrInvalidImageData, "invalid %s data URL", format)
	}
	e.checkType(header, format)

	decoded, err := url.PathUnescape(data)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidImageData, "invalid %s encoding: %v", format, err)
	}
	return decoded, nil
}

// extractEncoded returns the base64 payload of a data URL.
func (e *StaticExporter) extractEncoded(dataURL string, format ImageFormat) (string, error) {
	header, rest, ok := strings.Cut(dataURL, ";")
	if !ok {
		return "", errors.Wrapf(ErrInvalidImageData, "invalid %s base64 data URL", format)
	}
	e.checkType(header, format)

	_, data, ok := strings.Cut(rest, ",")
	if !ok {
		return "", errors.Wrapf(ErrInvalidImageData, "no %s data in data URL", format)
	}
	return data, nil
}

// checkType logs a mismatch between the requested format and the media
// type of the data URL.
func (e *StaticExporter) checkType(header string, format ImageFormat) {
	_, subtype, ok := strings.Cut(header, "/")
	if !ok {
		e.log.Warn("Failed to read the image format of the data URL")
		return
	}
	if !strings.Contains(subtype, format.Extension()) {
		e.log.Errorf("Requested image format %q, got %q", format, subtype)
	}
}
