package layout

import (
	"fmt"
	"strings"

	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
)

// BuiltinTheme names a template shipped with the package.
type BuiltinTheme string

const (
	ThemeDefault          BuiltinTheme = "default"
	ThemePlotlyWhite      BuiltinTheme = "plotly_white"
	ThemePlotlyDark       BuiltinTheme = "plotly_dark"
	ThemeSeaborn          BuiltinTheme = "seaborn"
	ThemeSeabornWhitegrid BuiltinTheme = "seaborn_whitegrid"
	ThemeSeabornDark      BuiltinTheme = "seaborn_dark"
	ThemeMatplotlib       BuiltinTheme = "matplotlib"
	ThemePlotnine         BuiltinTheme = "plotnine"
)

var builtinThemes = map[BuiltinTheme]func() *Template{
	ThemeDefault:          DefaultTheme,
	ThemePlotlyWhite:      PlotlyWhite,
	ThemePlotlyDark:       PlotlyDark,
	ThemeSeaborn:          Seaborn,
	ThemeSeabornWhitegrid: SeabornWhitegrid,
	ThemeSeabornDark:      SeabornDark,
	ThemeMatplotlib:       Matplotlib,
	ThemePlotnine:         Plotnine,
}

// Template builds a fresh copy of the theme.
func (t BuiltinTheme) Template() *Template {
	if build, ok := builtinThemes[t]; ok {
		return build()
	}
	return DefaultTheme()
}

// ThemeByName looks a built-in theme up by name, ignoring case and treating
// "-" like "_".
func ThemeByName(name string) (*Template, error) {
	key := BuiltinTheme(strings.ReplaceAll(strings.ToLower(name), "-", "_"))
	build, ok := builtinThemes[key]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return build(), nil
}

var (
	plasma = []common.ColorScaleElement{
		{Position: 0, Color: "#0d0887"},
		{Position: 0.1111111111111111, Color: "#46039f"},
		{Position: 0.2222222222222222, Color: "#7201a8"},
		{Position: 0.3333333333333333, Color: "#9c179e"},
		{Position: 0.4444444444444444, Color: "#bd3786"},
		{Position: 0.5555555555555556, Color: "#d8576b"},
		{Position: 0.6666666666666666, Color: "#ed7953"},
		{Position: 0.7777777777777778, Color: "#fb9f3a"},
		{Position: 0.8888888888888888, Color: "#fdca26"},
		{Position: 1, Color: "#f0f921"},
	}
	piyg = []common.ColorScaleElement{
		{Position: 0, Color: "#8e0152"},
		{Position: 0.1, Color: "#c51b7d"},
		{Position: 0.2, Color: "#de77ae"},
		{Position: 0.3, Color: "#f1b6da"},
		{Position: 0.4, Color: "#fde0ef"},
		{Position: 0.5, Color: "#f7f7f7"},
		{Position: 0.6, Color: "#e6f5d0"},
		{Position: 0.7, Color: "#b8e186"},
		{Position: 0.8, Color: "#7fbc41"},
		{Position: 0.9, Color: "#4d9221"},
		{Position: 1, Color: "#276419"},
	}
	plotlyColorway = []string{
		"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
		"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
	}
	seabornColorway = []string{"#4c72b0", "#55a868", "#c44e52", "#8172b2", "#ccb974", "#64b5cd"}
)

func colorway(values []string) []color.Color {
	out := make([]color.Color, len(values))
	for i, v := range values {
		out[i] = color.Raw(v)
	}
	return out
}

// DefaultTheme is an empty template: the renderer's own defaults apply.
func DefaultTheme() *Template {
	return NewTemplate(NewLayout())
}

func PlotlyWhite() *Template {
	return plotlyTheme("#2a3f5f", "#ffffff", "#EBF0F8", "#EBF0F8")
}

func PlotlyDark() *Template {
	return plotlyTheme("#f2f5fa", "#111111", "#283442", "#506784")
}

func plotlyTheme(fontColor, background, grid, line string) *Template {
	axis := func() *Axis {
		return NewAxis().
			WithAutoMargin(true).
			WithGridColor(color.Raw(grid)).
			WithLineColor(color.Raw(line)).
			WithZeroLineColor(color.Raw(grid)).
			WithZeroLineWidth(2)
	}

	l := NewLayout().
		WithColorAxis(NewColorAxis().WithColorBar(common.NewColorBar().WithOutlineWidth(0))).
		WithColorScale(NewLayoutColorScale().
			WithSequential(common.NewColorScale(plasma...)).
			WithSequentialMinus(common.NewColorScale(plasma...)).
			WithDiverging(common.NewColorScale(piyg...))).
		WithColorway(colorway(plotlyColorway)).
		WithFont(common.NewFont().WithColor(color.Raw(fontColor))).
		WithHoverLabel(common.NewLabel().WithAlign("left")).
		WithHoverMode(HoverModeClosest).
		WithPaperBackgroundColor(color.Raw(background)).
		WithPlotBackgroundColor(color.Raw(background)).
		WithTitle((&common.Title{}).WithX(0.05)).
		WithXAxis(axis()).
		WithYAxis(axis())
	return NewTemplate(l)
}

type seabornStyle struct {
	family     string
	size       int
	fontColor  string
	colorway   []string
	background string
	grid       string
	line       string
}

func seabornTheme(style seabornStyle) *Template {
	axis := func() *Axis {
		return NewAxis().
			WithAutoMargin(true).
			WithGridColor(color.Raw(style.grid)).
			WithLineColor(color.Raw(style.line)).
			WithZeroLineColor(color.Raw(style.grid)).
			WithZeroLineWidth(1)
	}

	return NewTemplate(NewLayout().
		WithFont(common.NewFont().
			WithFamily(style.family).
			WithSize(style.size).
			WithColor(color.Raw(style.fontColor))).
		WithColorway(colorway(style.colorway)).
		WithPaperBackgroundColor(color.Raw(style.background)).
		WithPlotBackgroundColor(color.Raw(style.background)).
		WithHoverLabel(common.NewLabel().WithAlign("left")).
		WithHoverMode(HoverModeClosest).
		WithXAxis(axis()).
		WithYAxis(axis()))
}

// Seaborn follows seaborn's "darkgrid" style and "deep" palette.
func Seaborn() *Template {
	return seabornTheme(seabornStyle{
		family: "DejaVu Sans", size: 12, fontColor: "#333333", colorway: seabornColorway,
		background: "#EAEAF2", grid: "#D3D3D3", line: "#CCCCCC",
	})
}

func SeabornWhitegrid() *Template {
	return seabornTheme(seabornStyle{
		family: "DejaVu Sans", size: 12, fontColor: "#333333", colorway: seabornColorway,
		background: "#FFFFFF", grid: "#E5E5E5", line: "#CCCCCC",
	})
}

func SeabornDark() *Template {
	return seabornTheme(seabornStyle{
		family: "DejaVu Sans", size: 12, fontColor: "#eaeaf2", colorway: seabornColorway,
		background: "#222222", grid: "#444444", line: "#888888",
	})
}

// Plotnine follows the ggplot2 inspired default of plotnine.
func Plotnine() *Template {
	return seabornTheme(seabornStyle{
		family: "DejaVu Sans", size: 12, fontColor: "#525252",
		colorway:   []string{"#F8766D", "#7CAE00", "#00BFC4", "#C77CFF", "#E58700", "#00B0F6", "#FF61C3"},
		background: "#EBEBEB", grid: "#FFFFFF", line: "#CCCCCC",
	})
}

// Matplotlib mimics matplotlib's classic publication style.
func Matplotlib() *Template {
	axis := func() *Axis {
		return NewAxis().
			WithAutoMargin(true).
			WithShowLine(true).
			WithLineColor(color.Black).
			WithLineWidth(2).
			WithTicks(TicksDirectionOutside).
			WithTickWidth(2).
			WithTickColor(color.Black).
			WithMirror(true).
			WithGridColor(color.Raw("#e5e5e5")).
			WithZeroLineColor(color.Raw("#e5e5e5")).
			WithZeroLineWidth(1)
	}

	return NewTemplate(NewLayout().
		WithFont(common.NewFont().WithFamily("Arial").WithSize(26).WithColor(color.Black)).
		WithColorway(colorway([]string{
			"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
			"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
		})).
		WithPaperBackgroundColor(color.White).
		WithPlotBackgroundColor(color.White).
		WithHoverLabel(common.NewLabel().WithAlign("left")).
		WithHoverMode(HoverModeClosest).
		WithXAxis(axis()).
		WithYAxis(axis()))
}
