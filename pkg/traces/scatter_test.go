package traces

import (
	"encoding/json"
	"testing"

	"github.com/raykavin/goplotly/pkg/color"
	"github.com/raykavin/goplotly/pkg/common"
	"github.com/stretchr/testify/require"
)

func TestScatter_ToJSON(t *testing.T) {
	trace := NewScatter([]int{1, 2, 3, 4}, []int{10, 15, 13, 17}).
		WithMode(common.ModeMarkers)

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.Equal(t, `{"type":"scatter","x":[1,2,3,4],"y":[10,15,13,17],"mode":"markers"}`, got)
}

func TestScatter_OmitsUnsetFields(t *testing.T) {
	got, err := NewScatter([]float64{}, []float64{}).ToJSON()
	require.NoError(t, err)
	require.Equal(t, `{"type":"scatter"}`, got)
}

func TestScatter_Setters(t *testing.T) {
	trace := NewScatter([]string{"a", "b"}, []float64{1, 2}).
		WithName("series").
		WithVisible(common.VisibleLegendOnly).
		WithTextArray([]string{"first", "second"}).
		WithTextPosition(common.PositionTopCenter).
		WithMarker(common.NewMarker().WithSize(8).WithColor(color.NewRgb(255, 0, 0))).
		WithFillColor(color.Hex(0x00ff00)).
		WithErrorY(common.NewErrorData(common.ErrorTypePercent).WithValue(5))

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "scatter",
		"name": "series",
		"visible": "legendonly",
		"x": ["a", "b"],
		"y": [1, 2],
		"text": ["first", "second"],
		"textposition": "top center",
		"marker": {"size": 8, "color": "rgb(255, 0, 0)"},
		"error_y": {"type": "percent", "value": 5},
		"fillcolor": "#00ff00"
	}`, got)
}

func TestScatter_WithWebGLMode(t *testing.T) {
	trace := NewScatter([]int{1}, []int{1}).WithWebGLMode(true)
	require.Equal(t, common.PlotTypeScatterGL, trace.PlotType())

	trace.WithWebGLMode(false)
	require.Equal(t, common.PlotTypeScatter, trace.PlotType())
}

func TestScatter_CloneWithChannelMeta(t *testing.T) {
	src := NewScatter([]int{1, 2}, []int{3, 4})
	src.Meta = make(chan struct{})

	clone, ok := src.Clone().(*Scatter[int, int])
	require.True(t, ok)
	require.Nil(t, clone.Meta)
	require.NotNil(t, src.Meta)

	clone.X[0] = 100
	require.Equal(t, 1, src.X[0])
}

func TestScatter_Clone(t *testing.T) {
	src := NewScatter([]int{1, 2}, []int{3, 4}).
		WithName("a").
		WithMarker(common.NewMarker().WithSize(3))

	clone, ok := src.Clone().(*Scatter[int, int])
	require.True(t, ok)

	clone.X[0] = 100
	clone.WithName("b")
	clone.Marker.WithSize(10)

	require.Equal(t, 1, src.X[0])
	require.Equal(t, "a", *src.Name)
	require.Equal(t, 3, src.Marker.Size.Value)

	a, err := src.ToJSON()
	require.NoError(t, err)
	b, err := NewScatter([]int{1, 2}, []int{3, 4}).WithName("a").WithMarker(common.NewMarker().WithSize(3)).ToJSON()
	require.NoError(t, err)
	require.Equal(t, b, a)
}

func TestScatter_AssignAxes(t *testing.T) {
	trace := NewScatter([]int{1}, []int{1})
	var assigner AxisAssigner = trace
	assigner.AssignAxes("x2", "y3")

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"scatter","x":[1],"y":[1],"xaxis":"x2","yaxis":"y3"}`, got)
}

func TestScatterPolar_WithWebGLMode(t *testing.T) {
	trace := NewScatterPolar([]float64{0, 90}, []float64{1, 2}).WithWebGLMode(true)

	raw, err := json.Marshal(trace)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"scatterpolargl","theta":[0,90],"r":[1,2]}`, string(raw))
}
