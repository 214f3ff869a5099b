package plot

import (
	"math"
	"testing"

	"github.com/raykavin/goplotly/pkg/common"
	"github.com/raykavin/goplotly/pkg/layout"
	"github.com/raykavin/goplotly/pkg/traces"
	"github.com/stretchr/testify/require"
)

func markersPlot() *Plot {
	return NewPlot().AddTrace(
		traces.NewScatter([]int{1, 2, 3, 4}, []int{10, 15, 13, 17}).
			WithMode(common.ModeMarkers),
	)
}

func TestPlot_ToJSON(t *testing.T) {
	doc, err := markersPlot().ToJSON()
	require.NoError(t, err)
	require.Equal(t,
		`{"data":[{"type":"scatter","x":[1,2,3,4],"y":[10,15,13,17],"mode":"markers"}],"layout":{},"config":{}}`,
		doc)
}

func TestPlot_ToJSONEmpty(t *testing.T) {
	doc, err := NewPlot().ToJSON()
	require.NoError(t, err)
	require.Equal(t, `{"data":[],"layout":{},"config":{}}`, doc)
}

func TestPlot_ToJSONOrderAndParts(t *testing.T) {
	p := NewPlot().
		AddTraces(
			traces.NewScatter([]int{1}, []int{1}),
			traces.NewBar([]string{"a"}, []int{2}),
		).
		SetLayout(layout.NewLayout().WithTitle(common.NewTitle("Sales"))).
		SetConfiguration(NewConfiguration().WithResponsive(true)).
		AddFrame(layout.NewFrame("f1"))

	doc, err := p.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"data": [
			{"type": "scatter", "x": [1], "y": [1]},
			{"type": "bar", "x": ["a"], "y": [2]}
		],
		"layout": {"title": {"text": "Sales"}},
		"config": {"responsive": true},
		"frames": [{"name": "f1"}]
	}`, doc)
}

func TestPlot_ToJSONError(t *testing.T) {
	p := NewPlot().AddTrace(traces.NewScatter([]float64{math.NaN()}, []float64{1}))

	_, err := p.ToJSON()
	require.ErrorIs(t, err, ErrSerialization)
	require.Equal(t, `{"data":[],"layout":{},"config":{}}`, p.String())
}

func TestPlot_Equal(t *testing.T) {
	require.True(t, markersPlot().Equal(markersPlot()))
	require.False(t, markersPlot().Equal(NewPlot()))
	require.False(t, markersPlot().Equal(nil))

	var p *Plot
	require.True(t, p.Equal(nil))
}

func TestPlot_Clone(t *testing.T) {
	original := markersPlot().SetLayout(layout.NewLayout().WithWidth(400))
	clone := original.Clone()
	require.True(t, original.Equal(clone))

	clone.Layout().WithWidth(800)
	clone.AddTrace(traces.NewScatter([]int{1}, []int{1}))

	require.Equal(t, 400, *original.Layout().Width)
	require.Len(t, original.Data(), 1)
	require.Len(t, clone.Data(), 2)
}

func TestFromJSON(t *testing.T) {
	doc := `{"data":[{"type":"bar","x":["a"],"y":[1]},{"y":[3]}],"layout":{"title":{"text":"T"}},"config":{"displaylogo":false},"frames":[{"name":"a"}]}`

	p, err := FromJSON([]byte(doc))
	require.NoError(t, err)
	require.Len(t, p.Data(), 2)
	require.Equal(t, common.PlotTypeBar, p.Data()[0].PlotType())
	require.Equal(t, common.PlotTypeScatter, p.Data()[1].PlotType())
	require.Equal(t, "T", p.title())

	out, err := p.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, doc, out)
}

func TestFromJSON_SetLayoutReplacesRaw(t *testing.T) {
	p, err := FromJSON([]byte(`{"data":[],"layout":{"width":1},"config":null}`))
	require.NoError(t, err)
	p.SetLayout(layout.NewLayout().WithHeight(2))

	out, err := p.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"data":[],"layout":{"height":2},"config":{}}`, out)
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"data":`))
	require.Error(t, err)

	_, err = FromJSON([]byte(`{"data":[1]}`))
	require.ErrorContains(t, err, "failed to decode trace 0")
}
