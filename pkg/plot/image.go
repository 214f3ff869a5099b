package plot

import (
	"context"
	"fmt"
	"strings"

	"github.com/raykavin/goplotly/pkg/export"
)

// ImageExporter renders plot documents to static images. export.StaticExporter
// implements it.
type ImageExporter interface {
	WriteFig(ctx context.Context, path string, plotJSON []byte, format export.ImageFormat, width, height int, scale float64) error
	WriteToString(ctx context.Context, plotJSON []byte, format export.ImageFormat, width, height int, scale float64) (string, error)
}

var _ ImageExporter = (*export.StaticExporter)(nil)

func (p *Plot) marshalForExport() ([]byte, error) {
	doc, err := p.ToJSON()
	if err != nil {
		return nil, err
	}
	return []byte(doc), nil
}

// WriteImage exports the plot to path.
func (p *Plot) WriteImage(ctx context.Context, exporter ImageExporter, path string, format export.ImageFormat, width, height int, scale float64) error {
	doc, err := p.marshalForExport()
	if err != nil {
		return err
	}
	return exporter.WriteFig(ctx, path, doc, format, width, height, scale)
}

// ToBase64 exports the plot and returns the base64 encoded image, without
// the data URL prefix. SVG cannot be base64 encoded; use ToSVG.
func (p *Plot) ToBase64(ctx context.Context, exporter ImageExporter, format export.ImageFormat, width, height int, scale float64) (string, error) {
	if format == export.SVG {
		return "", fmt.Errorf("%w: svg is returned as text, use ToSVG", export.ErrUnsupportedFormat)
	}
	doc, err := p.marshalForExport()
	if err != nil {
		return "", err
	}
	data, err := exporter.WriteToString(ctx, doc, format, width, height, scale)
	if err != nil {
		return "", err
	}
	if _, encoded, ok := strings.Cut(data, ";base64,"); ok {
		return encoded, nil
	}
	return data, nil
}

// ToSVG exports the plot as SVG markup.
func (p *Plot) ToSVG(ctx context.Context, exporter ImageExporter, width, height int, scale float64) (string, error) {
	doc, err := p.marshalForExport()
	if err != nil {
		return "", err
	}
	return exporter.WriteToString(ctx, doc, export.SVG, width, height, scale)
}
