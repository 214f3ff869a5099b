package plot

import (
	"context"
	"testing"

	"github.com/raykavin/goplotly/pkg/export"
	"github.com/stretchr/testify/require"
)

type exportCall struct {
	path   string
	doc    string
	format export.ImageFormat
	width  int
	height int
	scale  float64
}

type fakeExporter struct {
	calls  []exportCall
	result string
}

func (f *fakeExporter) WriteFig(_ context.Context, path string, plotJSON []byte, format export.ImageFormat, width, height int, scale float64) error {
	f.calls = append(f.calls, exportCall{path, string(plotJSON), format, width, height, scale})
	return nil
}

func (f *fakeExporter) WriteToString(_ context.Context, plotJSON []byte, format export.ImageFormat, width, height int, scale float64) (string, error) {
	f.calls = append(f.calls, exportCall{"", string(plotJSON), format, width, height, scale})
	return f.result, nil
}

func TestPlot_WriteImage(t *testing.T) {
	exporter := &fakeExporter{}

	err := markersPlot().WriteImage(context.Background(), exporter, "out.png", export.PNG, 800, 600, 1)
	require.NoError(t, err)
	require.Equal(t, []exportCall{{
		path:   "out.png",
		doc:    markersPlot().String(),
		format: export.PNG,
		width:  800,
		height: 600,
		scale:  1,
	}}, exporter.calls)
}

func TestPlot_ToBase64(t *testing.T) {
	exporter := &fakeExporter{result: "data:image/png;base64,iVBORw0KGgo="}

	encoded, err := markersPlot().ToBase64(context.Background(), exporter, export.PNG, 100, 100, 1)
	require.NoError(t, err)
	require.Equal(t, "iVBORw0KGgo=", encoded)

	_, err = markersPlot().ToBase64(context.Background(), exporter, export.SVG, 100, 100, 1)
	require.ErrorIs(t, err, export.ErrUnsupportedFormat)
	require.Len(t, exporter.calls, 1)
}

func TestPlot_ToSVG(t *testing.T) {
	exporter := &fakeExporter{result: "<svg></svg>"}

	svg, err := markersPlot().ToSVG(context.Background(), exporter, 100, 50, 2)
	require.NoError(t, err)
	require.Equal(t, "<svg></svg>", svg)
	require.Equal(t, export.SVG, exporter.calls[0].format)
}
