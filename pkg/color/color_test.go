package color

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRgb_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewRgb(80, 90, 100))
	require.NoError(t, err)
	require.Equal(t, `"rgb(80, 90, 100)"`, string(b))
}

func TestRgba_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewRgba(80, 90, 100, 0.2))
	require.NoError(t, err)
	require.Equal(t, `"rgba(80, 90, 100, 0.2)"`, string(b))

	b, err = json.Marshal(NewRgba(0, 0, 0, 1))
	require.NoError(t, err)
	require.Equal(t, `"rgba(0, 0, 0, 1)"`, string(b))
}

func TestNamedColor_MarshalJSON(t *testing.T) {
	b, err := json.Marshal([]Color{AliceBlue, LightGoldenrodYellow, Transparent})
	require.NoError(t, err)
	require.Equal(t, `["aliceblue","lightgoldenrodyellow","transparent"]`, string(b))
	require.True(t, RebeccaPurple.IsValid())
	require.False(t, NamedColor("notacolor").IsValid())
}

func TestRaw_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Raw("#ff00aa"))
	require.NoError(t, err)
	require.Equal(t, `"#ff00aa"`, string(b))
	require.Equal(t, Raw("#00ff0a"), Hex(0x00ff0a))
}

func TestColors(t *testing.T) {
	colors := Colors([]Rgb{{1, 2, 3}, {4, 5, 6}})
	b, err := json.Marshal(colors)
	require.NoError(t, err)
	require.Equal(t, `["rgb(1, 2, 3)","rgb(4, 5, 6)"]`, string(b))
}
