package layout

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/raykavin/goplotly/pkg/common"
	"github.com/stretchr/testify/require"
)

func TestLayout_MarshalJSONEmpty(t *testing.T) {
	b, err := json.Marshal(NewLayout())
	require.NoError(t, err)
	require.Equal(t, `{}`, string(b))
}

func TestLayout_SetAxis(t *testing.T) {
	tests := []struct {
		name string
		set  func(l *Layout)
		key  string
	}{
		{name: "first x axis", set: func(l *Layout) { l.SetXAxis(1, NewAxis().WithNTicks(3)) }, key: "xaxis"},
		{name: "second x axis", set: func(l *Layout) { l.SetXAxis(2, NewAxis().WithNTicks(3)) }, key: "xaxis2"},
		{name: "eighth y axis", set: func(l *Layout) { l.SetYAxis(8, NewAxis().WithNTicks(3)) }, key: "yaxis8"},
		{name: "first z axis", set: func(l *Layout) { l.SetZAxis(1, NewAxis().WithNTicks(3)) }, key: "zaxis"},
		{name: "beyond direct fields", set: func(l *Layout) { l.SetXAxis(12, NewAxis().WithNTicks(3)) }, key: "xaxis12"},
		{name: "by name", set: func(l *Layout) { l.AxisByName("yaxis42", NewAxis().WithNTicks(3)) }, key: "yaxis42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLayout()
			tt.set(l)

			got, err := l.ToJSON()
			require.NoError(t, err)
			require.JSONEq(t, `{"`+tt.key+`":{"nticks":3}}`, got)
		})
	}
}

func TestLayout_MarshalJSONMergesNamedAxes(t *testing.T) {
	l := NewLayout().
		WithTitle(common.NewTitle("grid")).
		WithXAxis(NewAxis().WithNTicks(1)).
		WithYAxis(NewAxis().WithNTicks(2))
	l.SetXAxis(1, NewAxis().WithNTicks(10))
	l.SetXAxis(10, NewAxis().WithNTicks(100))
	l.SetYAxis(9, NewAxis().WithNTicks(90))

	got, err := l.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"title": {"text": "grid"},
		"xaxis": {"nticks": 10},
		"yaxis": {"nticks": 2},
		"xaxis10": {"nticks": 100},
		"yaxis9": {"nticks": 90}
	}`, got)

	// The direct field is untouched by serialization.
	require.Equal(t, 1, *l.XAxis.NTicks)
}

func TestLayout_MarshalJSONOnlyNamedAxes(t *testing.T) {
	l := NewLayout().AxisByName("xaxis9", NewAxis())

	b, err := json.Marshal(l)
	require.NoError(t, err)
	require.Equal(t, `{"xaxis9":{}}`, string(b))
}

func TestLayout_Axis(t *testing.T) {
	l := NewLayout().WithYAxis(NewAxis().WithNTicks(4))
	l.SetXAxis(3, NewAxis().WithNTicks(5))

	require.Equal(t, 4, *l.Axis("yaxis").NTicks)
	require.Equal(t, 5, *l.Axis("xaxis3").NTicks)
	require.Nil(t, l.Axis("xaxis"))
}

func TestAxisKey(t *testing.T) {
	require.Equal(t, "xaxis", AxisKey("x", 1))
	require.Equal(t, "yaxis2", AxisKey("y", 2))
	require.Equal(t, "x", AxisRef("x", 1))
	require.Equal(t, "y7", AxisRef("y", 7))
}

func TestLayout_ToJSONError(t *testing.T) {
	l := NewLayout().WithBarGap(math.NaN())

	_, err := l.ToJSON()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to serialize layout")
}

func TestLayout_Clone(t *testing.T) {
	l := NewLayout().WithTitle(common.NewTitle("original"))
	l.SetXAxis(2, NewAxis().WithNTicks(2))

	c := l.Clone()
	*c.Title.Text = "copy"
	c.Axes["xaxis2"].NTicks = nil

	require.Equal(t, "original", *l.Title.Text)
	require.Equal(t, 2, *l.Axes["xaxis2"].NTicks)
}

func TestLayout_Enums(t *testing.T) {
	l := NewLayout().
		WithHoverMode(HoverModeFalse).
		WithDragMode(DragModeFalse).
		WithBarNorm(BarNormEmpty).
		WithUniformText(NewUniformText().WithMode(UniformTextModeFalse)).
		WithLegend(NewLegend().WithItemClick(ItemClickFalse).WithItemDoubleClick(ItemClickToggleOthers))

	got, err := l.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"hovermode": false,
		"dragmode": false,
		"barnorm": "",
		"uniformtext": {"mode": false},
		"legend": {"itemclick": false, "itemdoubleclick": "toggleothers"}
	}`, got)
}

func TestRelayout_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		relayout Relayout
		want     string
	}{
		{name: "title", relayout: ModifyTitle(common.NewTitle("X")), want: `{"title":{"text":"X"}}`},
		{name: "scalar", relayout: ModifyWidth(20), want: `{"width":20}`},
		{name: "enum", relayout: ModifyBarMode(BarModeStack), want: `{"barmode":"stack"}`},
		{name: "named axis", relayout: ModifyAxis("xaxis12", NewAxis().WithVisible(false)), want: `{"xaxis12":{"visible":false}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.relayout)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(b))
		})
	}
}

func TestRadialAxis_MarshalJSON(t *testing.T) {
	axis := NewRadialAxis().
		WithVisible(true).
		WithAutoRange(AutoRangeFalse).
		WithAttributes(NewPolarAxisAttributes().
			WithShowGrid(false).
			WithTicks(NewPolarAxisTicks().WithNTicks(4)))

	b, err := json.Marshal(NewLayout().WithPolar(NewLayoutPolar().WithRadialAxis(axis)))
	require.NoError(t, err)
	require.JSONEq(t, `{"polar":{"radialaxis":{
		"visible": true,
		"autorange": false,
		"showgrid": false,
		"nticks": 4
	}}}`, string(b))
}

func TestMapbox_Style(t *testing.T) {
	b, err := json.Marshal(NewMapbox().WithStyle(MapboxStyleCartoDarkMatter).WithCenter(NewCenter(45.5, -73.6)))
	require.NoError(t, err)
	require.JSONEq(t, `{"style":"carto-darkmatter","center":{"lat":45.5,"lon":-73.6}}`, string(b))
}
