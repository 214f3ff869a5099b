package export

import (
	"strings"

	"github.com/pkg/errors"
)

// ImageFormat is a static image format.
type ImageFormat string

const (
	PNG  ImageFormat = "png"
	JPEG ImageFormat = "jpeg"
	WEBP ImageFormat = "webp"
	SVG  ImageFormat = "svg"
	PDF  ImageFormat = "pdf"

	// EPS is recognized so that it can be rejected with ErrUnsupportedFormat.
	EPS ImageFormat = "eps"
)

// Formats lists the formats the exporter produces.
var Formats = []ImageFormat{PNG, JPEG, WEBP, SVG, PDF}

// ParseImageFormat converts a name such as "png" or "JPG" into an
// ImageFormat.
func ParseImageFormat(name string) (ImageFormat, error) {
	format := ImageFormat(strings.ToLower(strings.TrimSpace(name)))
	if format == "jpg" {
		format = JPEG
	}
	if err := format.Validate(); err != nil {
		return "", err
	}
	return format, nil
}

// Validate returns ErrUnsupportedFormat for formats the exporter cannot
// produce.
func (f ImageFormat) Validate() error {
	for _, supported := range Formats {
		if f == supported {
			return nil
		}
	}
	return errors.Wrapf(ErrUnsupportedFormat, "%q", string(f))
}

// Extension returns the file extension for the format, without the dot.
func (f ImageFormat) Extension() string {
	return string(f)
}

func (f ImageFormat) String() string {
	return string(f)
}
