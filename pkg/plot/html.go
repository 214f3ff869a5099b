package plot

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/raykavin/goplotly/pkg/export"
	"github.com/samber/lo"
)

// Static assets embedded in the binary
var (
	//go:embed assets
	staticFiles embed.FS
)

const (
	// PlotlyCDN is the plotly.js bundle loaded by rendered pages.
	PlotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

	// PlotlyJSPathEnv names a local plotly.js bundle used by UseLocalPlotly
	// when no bundle was given through WithPlotlyJS.
	PlotlyJSPathEnv = "PLOTLY_JS_PATH"

	defaultDivID = "plotly-html-element"
	divIDLength  = 20
)

// pageAssets holds the parsed page templates and the transpiled scripts.
type pageAssets struct {
	pages     *template.Template
	plotJS    template.JS
	previewJS template.JS
}

var defaultAssets = sync.OnceValues(func() (*pageAssets, error) {
	return loadAssets(false)
})

func loadAssets(debug bool) (*pageAssets, error) {
	pages, err := template.ParseFS(staticFiles, "assets/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	plotJS, err := transpile("assets/js/plot.js", debug)
	if err != nil {
		return nil, err
	}
	previewJS, err := transpile("assets/js/preview.js", debug)
	if err != nil {
		return nil, err
	}

	return &pageAssets{pages: pages, plotJS: plotJS, previewJS: previewJS}, nil
}

func transpile(name string, debug bool) (template.JS, error) {
	source, err := staticFiles.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}

	result := api.Transform(string(source), api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifySyntax:      !debug,
		MinifyIdentifiers: !debug,
		MinifyWhitespace:  !debug,
	})
	if len(result.Errors) > 0 {
		return "", fmt.Errorf("script %s failed with: %v", name, result.Errors)
	}

	return template.JS(result.Code), nil
}

type pageData struct {
	Title          string
	DivID          string
	Document       template.JS
	Bootstrap      template.JS
	Remote         bool
	PlotlyURL      string
	PlotlyURLNoExt string
	PlotlyJS       template.JS
	ExportImage    bool
	Image          template.JS
	PlotID         string
}

func (p *Plot) pageData(divID string) (*pageData, error) {
	doc, err := p.ToJSON()
	if err != nil {
		return nil, err
	}
	return &pageData{
		Title:          p.title(),
		DivID:          divID,
		Document:       template.JS(doc),
		Remote:         true,
		PlotlyURL:      PlotlyCDN,
		PlotlyURLNoExt: strings.TrimSuffix(PlotlyCDN, ".js"),
		Image:          template.JS("null"),
	}, nil
}

func (p *Plot) title() string {
	if p.layout != nil && p.layout.Title != nil && p.layout.Title.Text != nil {
		return *p.layout.Title.Text
	}
	if p.rawLayout != nil {
		var raw struct {
			Title struct {
				Text string `json:"text"`
			} `json:"title"`
		}
		if json.Unmarshal(p.rawLayout, &raw) == nil && raw.Title.Text != "" {
			return raw.Title.Text
		}
	}
	return "plotly"
}

func render(name string, data *pageData, w io.Writer) error {
	assets, err := defaultAssets()
	if err != nil {
		return err
	}
	if data.Bootstrap == "" {
		data.Bootstrap = assets.plotJS
	}
	if err := assets.pages.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

func renderString(name string, data *pageData) (string, error) {
	var buf bytes.Buffer
	if err := render(name, data, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// localPlotlyJS returns the bundle given through WithPlotlyJS, or the
// content of the PLOTLY_JS_PATH file.
func (p *Plot) localPlotlyJS() (template.JS, error) {
	if len(p.plotlyJS) > 0 {
		return template.JS(p.plotlyJS), nil
	}
	path := os.Getenv(PlotlyJSPathEnv)
	if path == "" {
		return "", ErrPlotlyJSNotFound
	}
	bundle, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPlotlyJSNotFound, err)
	}
	return template.JS(bundle), nil
}

func (p *Plot) fullPage(data *pageData) error {
	if p.remotePlotly {
		return nil
	}
	bundle, err := p.localPlotlyJS()
	if err != nil {
		return err
	}
	data.Remote = false
	data.PlotlyJS = bundle
	return nil
}

// RenderHTML writes a standalone HTML document showing the plot.
func (p *Plot) RenderHTML(w io.Writer) error {
	data, err := p.pageData(defaultDivID)
	if err != nil {
		return err
	}
	if err := p.fullPage(data); err != nil {
		return err
	}
	return render("plot.html", data, w)
}

// ToHTML returns a standalone HTML document showing the plot.
func (p *Plot) ToHTML() (string, error) {
	var buf bytes.Buffer
	if err := p.RenderHTML(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteHTML writes the standalone HTML document to path.
func (p *Plot) WriteHTML(path string) error {
	page, err := p.ToHTML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ToInlineHTML returns a <div> and <script> fragment for pages that already
// load plotly.js. An empty divID is replaced by a random one.
func (p *Plot) ToInlineHTML(divID string) (string, error) {
	if divID == "" {
		divID = randomID(divIDLength)
	}
	data, err := p.pageData(divID)
	if err != nil {
		return "", err
	}
	return renderString("inline.html", data)
}

// ToStaticImageHTML returns a standalone document that replaces the
// interactive plot by an image produced by plotly.js once it is drawn.
// Only the formats plotly.js can produce in a browser are accepted.
func (p *Plot) ToStaticImageHTML(format export.ImageFormat, width, height int) (string, error) {
	switch format {
	case export.PNG, export.JPEG, export.WEBP, export.SVG:
	default:
		return "", fmt.Errorf("%w: %q in a browser page", export.ErrUnsupportedFormat, format)
	}

	data, err := p.pageData(defaultDivID)
	if err != nil {
		return "", err
	}
	if err := p.fullPage(data); err != nil {
		return "", err
	}

	image, err := json.Marshal(map[string]any{
		"format": format,
		"width":  width,
		"height": height,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode image options: %w", err)
	}
	data.ExportImage = true
	data.Image = template.JS(image)

	return renderString("plot.html", data)
}

// NotebookHTML returns the fragment displayed by Jupyter notebooks, which
// load plotly.js through require.js.
func (p *Plot) NotebookHTML() (string, error) {
	data, err := p.pageData(randomID(divIDLength))
	if err != nil {
		return "", err
	}
	return renderString("notebook.html", data)
}

// NotebookDisplay writes the notebook fragment framed for the evcxr kernel.
func (p *Plot) NotebookDisplay(w io.Writer) error {
	page, err := p.NotebookHTML()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "EVCXR_BEGIN_CONTENT text/html\n%s\nEVCXR_END_CONTENT\n", page)
	return err
}

// LabDisplay writes the plot document framed for JupyterLab's plotly
// renderer.
func (p *Plot) LabDisplay(w io.Writer) error {
	doc, err := p.ToJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "EVCXR_BEGIN_CONTENT application/vnd.plotly.v1+json\n%s\nEVCXR_END_CONTENT\n", doc)
	return err
}

func randomID(n int) string {
	return lo.RandomString(n, lo.AlphanumericCharset)
}
