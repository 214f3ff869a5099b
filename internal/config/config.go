// Package config loads the settings of the plotly command from the
// environment and an optional configuration file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/raykavin/goplotly/pkg/export"
	"github.com/raykavin/goplotly/pkg/logger"
	"github.com/raykavin/goplotly/pkg/logger/logrus"
	"github.com/raykavin/goplotly/pkg/logger/zerolog"
	"github.com/raykavin/goplotly/pkg/plot"
	"github.com/spf13/viper"
	"github.com/xhit/go-str2duration/v2"
)

// Log backends
const (
	BackendZerolog = "zerolog"
	BackendLogrus  = "logrus"
)

// Config holds every setting of the command line tool.
type Config struct {
	WebDriver    WebDriverConfig
	Preview      PreviewConfig
	Log          LogConfig
	PlotlyJSPath string
}

// WebDriverConfig configures static image export.
type WebDriverConfig struct {
	Path        string
	Port        int
	Browser     export.Browser
	BrowserPath string
	Timeout     time.Duration
}

// PreviewConfig configures the preview server.
type PreviewConfig struct {
	Port      int
	Store     string
	CacheSize int
}

type LogConfig struct {
	Level      string
	Backend    string
	JSON       bool
	Colored    bool
	TimeLayout string
}

// Load reads the configuration. Environment variables take precedence over
// the file at path, which is optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("WEBDRIVER_PORT", export.DefaultWebDriverPort)
	v.SetDefault("WEBDRIVER_BROWSER", string(export.Chrome))
	v.SetDefault("WEBDRIVER_TIMEOUT", "30s")
	v.SetDefault("PLOTLY_PORT", plot.DefaultPreviewPort)
	v.SetDefault("PLOTLY_STORE", ":memory:")
	v.SetDefault("PLOTLY_CACHE_SIZE", plot.DefaultPreviewCacheSize)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_BACKEND", BackendZerolog)
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("LOG_COLORED", true)
	v.SetDefault("LOG_TIME_LAYOUT", time.RFC3339)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	browser, err := export.ParseBrowser(v.GetString("WEBDRIVER_BROWSER"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEBDRIVER_BROWSER: %w", err)
	}

	timeout, err := str2duration.ParseDuration(v.GetString("WEBDRIVER_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEBDRIVER_TIMEOUT: %w", err)
	}

	backend := strings.ToLower(v.GetString("LOG_BACKEND"))
	if backend != BackendZerolog && backend != BackendLogrus {
		return nil, fmt.Errorf("invalid LOG_BACKEND %q", backend)
	}

	return &Config{
		WebDriver: WebDriverConfig{
			Path:        v.GetString(export.WebDriverPathEnv),
			Port:        v.GetInt("WEBDRIVER_PORT"),
			Browser:     browser,
			BrowserPath: v.GetString("BROWSER_PATH"),
			Timeout:     timeout,
		},
		Preview: PreviewConfig{
			Port:      v.GetInt("PLOTLY_PORT"),
			Store:     v.GetString("PLOTLY_STORE"),
			CacheSize: v.GetInt("PLOTLY_CACHE_SIZE"),
		},
		Log: LogConfig{
			Level:      v.GetString("LOG_LEVEL"),
			Backend:    backend,
			JSON:       v.GetBool("LOG_JSON"),
			Colored:    v.GetBool("LOG_COLORED"),
			TimeLayout: v.GetString("LOG_TIME_LAYOUT"),
		},
		PlotlyJSPath: v.GetString(plot.PlotlyJSPathEnv),
	}, nil
}

// Logger builds the logger selected by the configuration, writing to stderr.
func (c LogConfig) Logger() (logger.Logger, error) {
	if c.Backend == BackendLogrus {
		log, err := logrus.New(logrus.Options{
			Level:      c.Level,
			TimeLayout: c.TimeLayout,
			Colored:    c.Colored,
			JSON:       c.JSON,
			Out:        os.Stderr,
		})
		if err != nil {
			return nil, err
		}
		return log, nil
	}

	log, err := zerolog.NewZerolog(c.Level, c.TimeLayout, c.Colored, c.JSON)
	if err != nil {
		return nil, err
	}
	return log, nil
}

// ExporterOptions returns the options of a static exporter using this
// WebDriver configuration.
func (c WebDriverConfig) ExporterOptions(log logger.Logger) []export.ExporterOption {
	options := []export.ExporterOption{
		export.WithWebDriverPort(c.Port),
		export.WithBrowser(c.Browser),
		export.WithWebDriverTimeout(c.Timeout),
		export.WithLogger(log),
	}
	if c.Path != "" {
		options = append(options, export.WithWebDriverPath(c.Path))
	}
	if c.BrowserPath != "" {
		options = append(options, export.WithBrowserBinary(c.BrowserPath))
	}
	return options
}

// OpenStore opens the plot store named by the configuration.
func (c PreviewConfig) OpenStore() (*plot.Store, error) {
	if c.Store == "" || c.Store == ":memory:" {
		return plot.NewMemoryStore()
	}
	return plot.NewStore(c.Store, plot.DefaultStoreConfig())
}
