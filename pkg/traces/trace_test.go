package traces

import (
	"encoding/json"
	"testing"

	"github.com/raykavin/goplotly/pkg/common"
	"github.com/stretchr/testify/require"
)

func TestRestyle_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		restyle Restyle
		want    string
	}{
		{
			name:    "per trace",
			restyle: BarModifyVisible([]common.Visible{common.VisibleTrue, common.VisibleFalse}),
			want:    `{"visible":[true,false]}`,
		},
		{
			name:    "all traces",
			restyle: ScatterModifyAllName("same"),
			want:    `{"name":"same"}`,
		},
		{
			name:    "generic field",
			restyle: ScatterModifyY([][]int{{1, 2}, {3}}),
			want:    `{"y":[[1,2],[3]]}`,
		},
		{
			name:    "dim field uses element type",
			restyle: ScatterModifyAllText("label"),
			want:    `{"text":"label"}`,
		},
		{
			name:    "nested object",
			restyle: HistogramModifyAllMarker(common.NewMarker().WithOpacity(0.5)),
			want:    `{"marker":{"opacity":0.5}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.restyle)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestNewRawTrace(t *testing.T) {
	raw, err := NewRawTrace([]byte(`{"type":"bar","name":"b","x":[1,2]}`))
	require.NoError(t, err)
	require.Equal(t, common.PlotTypeBar, raw.PlotType())

	var name string
	found, err := raw.Attribute("name", &name)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "b", name)

	found, err = raw.Attribute("y", &name)
	require.NoError(t, err)
	require.False(t, found)

	out, err := json.Marshal(raw)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"bar","name":"b","x":[1,2]}`, string(out))
}

func TestNewRawTrace_DefaultsToScatter(t *testing.T) {
	raw, err := NewRawTrace([]byte(`{"x":[1]}`))
	require.NoError(t, err)
	require.Equal(t, common.PlotTypeScatter, raw.PlotType())

	_, err = NewRawTrace([]byte(`[1,2]`))
	require.Error(t, err)
}

func TestRawTrace_Clone(t *testing.T) {
	raw, err := NewRawTrace([]byte(`{"type":"pie"}`))
	require.NoError(t, err)

	clone := raw.Clone().(*RawTrace)
	clone.Data[2] = 'X'
	require.JSONEq(t, `{"type":"pie"}`, string(raw.Data))
}

func TestTrace_ToJSON_NaN(t *testing.T) {
	_, err := NewScatter([]float64{1}, []float64{0}).WithOpacity(nan()).ToJSON()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to serialize trace")
}
