package export

import "github.com/pkg/errors"

var (
	// ErrWebDriverNotFound is returned when no WebDriver binary is
	// configured through WEBDRIVER_PATH or found on the PATH.
	ErrWebDriverNotFound = errors.New("webdriver binary not found")

	// ErrWebDriverTimeout is returned when a spawned WebDriver does not
	// answer its status endpoint in time.
	ErrWebDriverTimeout = errors.New("webdriver did not become ready")

	// ErrWebDriverExited is returned when a spawned WebDriver process exits
	// before becoming ready.
	ErrWebDriverExited = errors.New("webdriver exited before becoming ready")

	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrExportFailed is returned when plotly.js reports an error in the
	// browser.
	ErrExportFailed = errors.New("export failed in browser")

	// ErrInvalidImageData is returned when the browser answers with data
	// that is not a data URL of the requested kind.
	ErrInvalidImageData = errors.New("invalid image data")

	// ErrSession is returned for failed WebDriver protocol commands.
	ErrSession = errors.New("webdriver session error")
)
