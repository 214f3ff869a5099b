package traces

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxMean_MarshalJSON(t *testing.T) {
	tests := []struct {
		mean BoxMean
		want string
	}{
		{BoxMeanTrue, `true`},
		{BoxMeanFalse, `false`},
		{BoxMeanStandardDeviation, `"sd"`},
	}

	for _, tt := range tests {
		t.Run(string(tt.mean), func(t *testing.T) {
			got, err := json.Marshal(tt.mean)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestBoxPoints_MarshalJSON(t *testing.T) {
	got, err := json.Marshal([]BoxPoints{BoxPointsAll, BoxPointsFalse, BoxPointsSuspectedOutliers})
	require.NoError(t, err)
	require.Equal(t, `["all",false,"suspectedoutliers"]`, string(got))
}

func TestBoxPlot_ToJSON(t *testing.T) {
	trace := NewBoxPlot([]float64{1, 2, 3}).
		WithName("samples").
		WithBoxMean(BoxMeanStandardDeviation).
		WithBoxPoints(BoxPointsFalse)

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"box","y":[1,2,3],"name":"samples","boxmean":"sd","boxpoints":false}`, got)
}

func TestNewHorizontalBoxPlot(t *testing.T) {
	got, err := NewHorizontalBoxPlot([]int{4, 5}).ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"box","x":[4,5]}`, got)
}
