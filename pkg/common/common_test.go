package common

import (
	"encoding/json"
	"testing"

	"github.com/raykavin/goplotly/pkg/color"
	"github.com/stretchr/testify/require"
)

func TestDim_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		dim  *Dim[int]
		want string
		len  int
	}{
		{name: "scalar", dim: Scalar(3), want: `3`, len: 1},
		{name: "vector", dim: Vector([]int{1, 2, 3}), want: `[1,2,3]`, len: 3},
		{name: "matrix", dim: Matrix([][]int{{1, 2}, {3, 4}}), want: `[[1,2],[3,4]]`, len: 2},
		{name: "empty vector", dim: Vector([]int{}), want: `[]`, len: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.dim)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(b))
			require.Equal(t, tt.len, tt.dim.Len())
		})
	}

	require.True(t, Scalar("a").IsScalar())
	require.False(t, Vector([]string{"a"}).IsScalar())
}

func TestVisible_MarshalJSON(t *testing.T) {
	b, err := json.Marshal([]Visible{VisibleTrue, VisibleFalse, VisibleLegendOnly})
	require.NoError(t, err)
	require.Equal(t, `[true,false,"legendonly"]`, string(b))
}

func TestColorScale_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(ColorScaleFromPalette(ColorScalePaletteGreys))
	require.NoError(t, err)
	require.Equal(t, `"Greys"`, string(b))

	b, err = json.Marshal(NewColorScale(
		ColorScaleElement{Position: 0, Color: "#000000"},
		ColorScaleElement{Position: 1, Color: "#ffffff"},
	))
	require.NoError(t, err)
	require.Equal(t, `[[0,"#000000"],[1,"#ffffff"]]`, string(b))
}

func TestMarker_Omission(t *testing.T) {
	b, err := json.Marshal(NewMarker())
	require.NoError(t, err)
	require.Equal(t, `{}`, string(b))

	b, err = json.Marshal(NewMarker().
		WithSizeArray([]int{4, 8}).
		WithColor(color.DarkRed))
	require.NoError(t, err)
	require.JSONEq(t, `{"size":[4,8],"color":"darkred"}`, string(b))
}

func TestTitle_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewTitle("Sales").WithFont(NewFont().WithSize(18)))
	require.NoError(t, err)
	require.JSONEq(t, `{"text":"Sales","font":{"size":18}}`, string(b))
}

func TestDeepCopy(t *testing.T) {
	type payload struct {
		Name   *string
		Values []int
		Meta   any
	}

	require.Nil(t, DeepCopy[payload](nil))

	name := "a"
	src := &payload{Name: &name, Values: []int{1, 2}, Meta: map[string]any{"k": []int{3}}}
	dst := DeepCopy(src)

	*dst.Name = "b"
	dst.Values[0] = 100
	dst.Meta.(map[string]any)["k"].([]int)[0] = 300

	require.Equal(t, "a", *src.Name)
	require.Equal(t, []int{1, 2}, src.Values)
	require.Equal(t, map[string]any{"k": []int{3}}, src.Meta)
}

func TestDeepCopy_Channel(t *testing.T) {
	type payload struct {
		Values []int
		Meta   any
	}

	ch := make(chan int)
	src := &payload{Values: []int{1}, Meta: ch}

	var dst *payload
	require.NotPanics(t, func() { dst = DeepCopy(src) })
	require.Nil(t, dst.Meta)
	require.Equal(t, ch, src.Meta)

	dst.Values[0] = 2
	require.Equal(t, []int{1}, src.Values)
}

func TestMarshalBoolOrString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "true", want: `true`},
		{in: "false", want: `false`},
		{in: "legendonly", want: `"legendonly"`},
		{in: "", want: `""`},
		{in: "True", want: `"True"`},
	}

	for _, tt := range tests {
		got, err := MarshalBoolOrString(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, string(got))
	}
}
