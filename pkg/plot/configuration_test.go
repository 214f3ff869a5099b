package plot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfiguration_MarshalJSON(t *testing.T) {
	tests := []struct {
		name   string
		config *Configuration
		want   string
	}{
		{"empty", NewConfiguration(), `{}`},
		{"double click false", NewConfiguration().WithDoubleClick(DoubleClickFalse), `{"doubleClick":false}`},
		{"double click reset", NewConfiguration().WithDoubleClick(DoubleClickResetAutoSize), `{"doubleClick":"reset+autosize"}`},
		{"mode bar hover", NewConfiguration().WithDisplayModeBar(DisplayModeBarHover), `{"displayModeBar":"hover"}`},
		{"mode bar false", NewConfiguration().WithDisplayModeBar(DisplayModeBarFalse), `{"displayModeBar":false}`},
		{"mode bar true", NewConfiguration().WithDisplayModeBar(DisplayModeBarTrue), `{"displayModeBar":true}`},
		{"logo", NewConfiguration().WithDisplayLogo(false), `{"displaylogo":false}`},
		{"pixel ratio", NewConfiguration().WithPlotGLPixelRatio(PlotGLPixelRatioTwo), `{"plotGlPixelRatio":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.config)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(b))
		})
	}
}

func TestConfiguration_MarshalJSONFull(t *testing.T) {
	config := NewConfiguration().
		WithStaticPlot(true).
		WithScrollZoom(true).
		WithEditable(false).
		WithResponsive(true).
		WithLocale("pt-BR").
		WithPlotlyServerURL("https://example.com").
		WithModeBarButtonsToRemove([]ModeBarButtonName{ModeBarButtonLasso2D, ModeBarButtonSelect2D}).
		WithToImageButtonOptions(NewToImageButtonOptions().
			WithFormat(ImageButtonFormatSVG).
			WithFilename("chart").
			WithWidth(800).
			WithHeight(600).
			WithScale(2))

	b, err := json.Marshal(config)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"staticPlot": true,
		"scrollZoom": true,
		"editable": false,
		"responsive": true,
		"locale": "pt-BR",
		"plotlyServerURL": "https://example.com",
		"modeBarButtonsToRemove": ["lasso2d", "select2d"],
		"toImageButtonOptions": {"format": "svg", "filename": "chart", "width": 800, "height": 600, "scale": 2}
	}`, string(b))
}

func TestConfiguration_Clone(t *testing.T) {
	original := NewConfiguration().
		WithModeBarButtonsToRemove([]ModeBarButtonName{ModeBarButtonZoom2D}).
		WithToImageButtonOptions(NewToImageButtonOptions().WithWidth(100))

	clone := original.Clone()
	clone.ModeBarButtonsToRemove[0] = ModeBarButtonPan2D
	clone.ToImageButtonOptions.WithWidth(200)

	require.Equal(t, ModeBarButtonZoom2D, original.ModeBarButtonsToRemove[0])
	require.Equal(t, 100, *original.ToImageButtonOptions.Width)
}
