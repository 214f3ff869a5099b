package export

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/jpillora/backoff"
	"github.com/pkg/errors"
	"github.com/raykavin/goplotly/pkg/logger"
)

const (
	// WebDriverPathEnv names the WebDriver binary used when one has to be
	// spawned.
	WebDriverPathEnv = "WEBDRIVER_PATH"

	DefaultWebDriverPort = 4444
	WebDriverHost        = "http://127.0.0.1"

	pollInterval  = 100 * time.Millisecond
	statusTimeout = 5 * time.Second
)

// Browser is the headless browser driven by the WebDriver.
type Browser string

const (
	Chrome  Browser = "chrome"
	Firefox Browser = "firefox"
)

// ParseBrowser converts "chrome" or "firefox" into a Browser.
func ParseBrowser(name string) (Browser, error) {
	switch b := Browser(strings.ToLower(strings.TrimSpace(name))); b {
	case Chrome, Firefox:
		return b, nil
	default:
		return "", errors.Errorf("unknown browser %q", name)
	}
}

// DriverBinary returns the executable name of the browser's WebDriver.
func (b Browser) DriverBinary() string {
	if b == Firefox {
		return "geckodriver"
	}
	return "chromedriver"
}

// DefaultReadyTimeout is how long a spawned WebDriver gets to answer its
// status endpoint.
func DefaultReadyTimeout() time.Duration {
	if runtime.GOOS == "windows" {
		return 60 * time.Second
	}
	return 30 * time.Second
}

// WebDriverPath returns the WebDriver binary named by WEBDRIVER_PATH, or the
// browser's driver found on the PATH.
func WebDriverPath(browser Browser) (string, error) {
	if path := os.Getenv(WebDriverPathEnv); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(ErrWebDriverNotFound, "invalid %s %q: %v", WebDriverPathEnv, path, err)
		}
		return path, nil
	}

	path, err := exec.LookPath(browser.DriverBinary())
	if err != nil {
		return "", errors.Wrapf(ErrWebDriverNotFound, "set %s or install %s", WebDriverPathEnv, browser.DriverBinary())
	}
	return path, nil
}

// WebDriver manages the WebDriver process listening on one port. A driver
// already answering on the port is reused and never stopped; a driver
// spawned by ConnectOrSpawn is killed by Stop.
type WebDriver struct {
	mu           sync.Mutex
	port         int
	browser      Browser
	path         string
	readyTimeout time.Duration
	client       *http.Client
	log          logger.Logger

	cmd      *exec.Cmd
	exited   chan struct{}
	external bool
}

// WebDriverOption configures a WebDriver.
type WebDriverOption func(*WebDriver)

// WithDriverPath sets the binary to spawn instead of WebDriverPath.
func WithDriverPath(path string) WebDriverOption {
	return func(wd *WebDriver) {
		wd.path = path
	}
}

func WithReadyTimeout(timeout time.Duration) WebDriverOption {
	return func(wd *WebDriver) {
		wd.readyTimeout = timeout
	}
}

func WithDriverLogger(log logger.Logger) WebDriverOption {
	return func(wd *WebDriver) {
		wd.log = log
	}
}

func NewWebDriver(port int, browser Browser, options ...WebDriverOption) *WebDriver {
	wd := &WebDriver{
		port:         port,
		browser:      browser,
		readyTimeout: DefaultReadyTimeout(),
		client:       &http.Client{Timeout: statusTimeout},
		log:          DefaultLog,
	}
	for _, option := range options {
		option(wd)
	}
	return wd
}

// URL returns the base URL of the WebDriver.
func (wd *WebDriver) URL() string {
	return fmt.Sprintf("%s:%d", WebDriverHost, wd.port)
}

// IsRunning reports whether a WebDriver answers ready on the port.
func (wd *WebDriver) IsRunning(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wd.URL()+"/status", nil)
	if err != nil {
		return false
	}

	resp, err := wd.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}
	var status struct {
		Value struct {
			Ready bool `json:"ready"`
		} `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return false
	}
	return status.Value.Ready
}

// ConnectOrSpawn reuses a WebDriver already running on the port, or spawns
// one and waits until it is ready.
func (wd *WebDriver) ConnectOrSpawn(ctx context.Context) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()

	if wd.cmd != nil && !wd.hasExited() {
		return nil
	}

	if wd.IsRunning(ctx) {
		wd.log.WithField("port", wd.port).Info("WebDriver already running, connecting to it")
		wd.external = true
		return nil
	}

	if err := wd.spawn(); err != nil {
		return err
	}

	if err := wd.waitForReady(ctx); err != nil {
		wd.log.Errorf("WebDriver failed to start on port %d:\n%s", wd.port, wd.diagnostics())
		wd.kill()
		return err
	}
	return nil
}

func (wd *WebDriver) spawn() error {
	path := wd.path
	if path == "" {
		var err error
		if path, err = WebDriverPath(wd.browser); err != nil {
			return err
		}
		wd.path = path
	}
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(ErrWebDriverNotFound, "%s: %v", path, err)
	}

	args := []string{fmt.Sprintf("--port=%d", wd.port)}
	if wd.browser == Chrome {
		args = append(args, "--verbose")
	}

	cmd := exec.Command(path, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to pipe webdriver stdout")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return errors.Wrap(err, "failed to pipe webdriver stderr")
	}

	wd.log.WithFields(map[string]any{"path": path, "args": args}).Info("Spawning WebDriver")
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "failed to spawn %s", path)
	}

	// The pipes are drained so the driver never blocks on a full buffer
	var drained sync.WaitGroup
	drained.Add(2)
	go wd.drain(&drained, "stdout", stdout)
	go wd.drain(&drained, "stderr", stderr)

	exited := make(chan struct{})
	go func() {
		drained.Wait()
		if err := cmd.Wait(); err != nil {
			wd.log.WithError(err).Debug("WebDriver process ended")
		}
		close(exited)
	}()

	wd.cmd = cmd
	wd.exited = exited
	wd.external = false
	return nil
}

func (wd *WebDriver) drain(done *sync.WaitGroup, stream string, r io.Reader) {
	defer done.Done()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		wd.log.WithFields(map[string]any{"port": wd.port, "stream": stream}).Trace(scanner.Text())
	}
}

func (wd *WebDriver) hasExited() bool {
	if wd.exited == nil {
		return true
	}
	select {
	case <-wd.exited:
		return true
	default:
		return false
	}
}

func (wd *WebDriver) waitForReady(ctx context.Context) error {
	start := time.Now()
	deadline := time.NewTimer(wd.readyTimeout)
	defer deadline.Stop()

	b := &backoff.Backoff{
		Min: pollInterval,
		Max: pollInterval,
	}

	for {
		if wd.IsRunning(ctx) {
			wd.log.Infof("WebDriver ready on port %d after %s", wd.port, time.Since(start))
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-wd.exited:
			return errors.Wrapf(ErrWebDriverExited, "port %d", wd.port)
		case <-deadline.C:
			return errors.Wrapf(ErrWebDriverTimeout, "port %d within %s", wd.port, wd.readyTimeout)
		case <-time.After(b.Duration()):
		}
	}
}

// Stop kills the WebDriver if it was spawned by ConnectOrSpawn. Drivers
// found already running are left alone.
func (wd *WebDriver) Stop() error {
	wd.mu.Lock()
	defer wd.mu.Unlock()

	if wd.external {
		wd.log.WithField("port", wd.port).Warn("Not stopping external WebDriver")
		return nil
	}
	return wd.kill()
}

func (wd *WebDriver) kill() error {
	if wd.cmd == nil || wd.hasExited() {
		return nil
	}

	wd.log.WithField("pid", wd.cmd.Process.Pid).Info("Stopping WebDriver")
	if err := wd.cmd.Process.Kill(); err != nil {
		return errors.Wrap(err, "failed to kill webdriver")
	}
	<-wd.exited
	return nil
}

// Diagnostics describes the driver state, for error reports.
func (wd *WebDriver) Diagnostics() string {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return wd.diagnostics()
}

func (wd *WebDriver) diagnostics() string {
	var b strings.Builder
	b.WriteString("WebDriver Diagnostics:\n")
	fmt.Fprintf(&b, "  Port: %d\n", wd.port)
	fmt.Fprintf(&b, "  Browser: %s\n", wd.browser)
	fmt.Fprintf(&b, "  Driver Path: %q\n", wd.path)
	fmt.Fprintf(&b, "  Is External: %t\n", wd.external)

	if wd.cmd != nil && wd.cmd.Process != nil {
		fmt.Fprintf(&b, "  Process ID: %d\n", wd.cmd.Process.Pid)
		if wd.hasExited() {
			fmt.Fprintf(&b, "  Process Status: Exited with %s\n", wd.cmd.ProcessState)
		} else {
			b.WriteString("  Process Status: Running\n")
		}
	} else {
		b.WriteString("  Process ID: None (no child process)\n")
	}

	fmt.Fprintf(&b, "  WebDriver Responding: %t\n", wd.IsRunning(context.Background()))
	fmt.Fprintf(&b, "  Status URL: %s/status\n", wd.URL())
	return b.String()
}
