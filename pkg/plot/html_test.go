package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/raykavin/goplotly/pkg/common"
	"github.com/raykavin/goplotly/pkg/export"
	"github.com/raykavin/goplotly/pkg/layout"
	"github.com/stretchr/testify/require"
)

func TestPlot_ToHTML(t *testing.T) {
	page, err := markersPlot().
		SetLayout(layout.NewLayout().WithTitle(common.NewTitle("Prices"))).
		ToHTML()
	require.NoError(t, err)

	require.Contains(t, page, "<title>Prices</title>")
	require.Contains(t, page, `<script src="`+PlotlyCDN+`"></script>`)
	require.Contains(t, page, `id="`+defaultDivID+`"`)
	require.Contains(t, page, `"mode":"markers"`)
	require.Contains(t, page, "goplotlyRender(")
	require.NotContains(t, page, "<img")
}

func TestPlot_ToHTMLLocalPlotly(t *testing.T) {
	bundle := []byte("window.Plotly = {local: true};")

	page, err := NewPlot(WithPlotlyJS(bundle)).UseLocalPlotly().ToHTML()
	require.NoError(t, err)
	require.Contains(t, page, string(bundle))
	require.NotContains(t, page, PlotlyCDN)
}

func TestPlot_ToHTMLLocalPlotlyFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plotly.min.js")
	require.NoError(t, os.WriteFile(path, []byte("var fromEnv = 1;"), 0o644))
	t.Setenv(PlotlyJSPathEnv, path)

	page, err := NewPlot().UseLocalPlotly().ToHTML()
	require.NoError(t, err)
	require.Contains(t, page, "var fromEnv = 1;")
}

func TestPlot_ToHTMLLocalPlotlyMissing(t *testing.T) {
	t.Setenv(PlotlyJSPathEnv, "")

	_, err := NewPlot().UseLocalPlotly().ToHTML()
	require.ErrorIs(t, err, ErrPlotlyJSNotFound)

	t.Setenv(PlotlyJSPathEnv, filepath.Join(t.TempDir(), "missing.js"))
	_, err = NewPlot().UseLocalPlotly().ToHTML()
	require.ErrorIs(t, err, ErrPlotlyJSNotFound)
}

func TestPlot_WriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.html")
	require.NoError(t, markersPlot().WriteHTML(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(content), "<!doctype html>"))
}

func TestPlot_ToInlineHTML(t *testing.T) {
	fragment, err := markersPlot().ToInlineHTML("my-div")
	require.NoError(t, err)
	require.Contains(t, fragment, `id="my-div"`)
	require.NotContains(t, fragment, "<html")

	fragment, err = markersPlot().ToInlineHTML("")
	require.NoError(t, err)
	match := regexp.MustCompile(`id="([A-Za-z0-9]+)"`).FindStringSubmatch(fragment)
	require.Len(t, match, 2)
	require.Len(t, match[1], divIDLength)
}

func TestPlot_ToStaticImageHTML(t *testing.T) {
	page, err := markersPlot().ToStaticImageHTML(export.PNG, 640, 480)
	require.NoError(t, err)
	require.Contains(t, page, "<img")
	require.Contains(t, page, `"format":"png"`)
	require.Contains(t, page, `"width":640`)

	_, err = markersPlot().ToStaticImageHTML(export.PDF, 640, 480)
	require.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestPlot_NotebookDisplay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, markersPlot().NotebookDisplay(&buf))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "EVCXR_BEGIN_CONTENT text/html\n"))
	require.True(t, strings.HasSuffix(out, "\nEVCXR_END_CONTENT\n"))
	require.Contains(t, out, "require.config")
}

func TestPlot_LabDisplay(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, markersPlot().LabDisplay(&buf))

	doc, err := markersPlot().ToJSON()
	require.NoError(t, err)
	require.Equal(t,
		"EVCXR_BEGIN_CONTENT application/vnd.plotly.v1+json\n"+doc+"\nEVCXR_END_CONTENT\n",
		buf.String())
}
