package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/raykavin/goplotly/pkg/export"
)

const showNameLength = 22

// openFile is replaced in tests.
var openFile = browser.OpenFile

// Show writes the plot page to a temporary file and opens it with the
// default application for HTML files. It returns the file path.
func Show(p *Plot) (string, error) {
	page, err := p.ToHTML()
	if err != nil {
		return "", err
	}
	return showPage(page)
}

// ShowImage opens a page that renders the plot as a static image.
func ShowImage(p *Plot, format export.ImageFormat, width, height int) (string, error) {
	page, err := p.ToStaticImageHTML(format, width, height)
	if err != nil {
		return "", err
	}
	return showPage(page)
}

func showPage(page string) (string, error) {
	path := filepath.Join(os.TempDir(), "plotly_"+randomID(showNameLength)+".html")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	DefaultLog.WithField("path", path).Debug("opening plot")
	if err := openFile(path); err != nil {
		return path, fmt.Errorf("%w: %w", ErrDefaultAppNotFound, err)
	}
	return path, nil
}
