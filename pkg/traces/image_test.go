package traces

import (
	"image"
	stdcolor "image/color"
	"testing"

	"github.com/raykavin/goplotly/pkg/color"
	"github.com/stretchr/testify/require"
)

func TestPixelColor_MarshalJSON(t *testing.T) {
	got, err := NewImage(RgbImage{{color.NewRgb(1, 2, 3)}}).ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"image","z":[[[1,2,3]]]}`, got)

	got, err = NewImage(RgbaImage{{color.NewRgba(1, 2, 3, 0.5)}}).ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"image","z":[[[1,2,3,0.5]]]}`, got)
}

func TestStdImage_ImageData(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, stdcolor.NRGBA{R: 255, A: 255})
	img.Set(1, 0, stdcolor.NRGBA{B: 255, A: 255})

	data := StdImage{img}.ImageData()
	require.Len(t, data, 1)
	require.Equal(t, []PixelColor{{R: 255}, {B: 255}}, data[0])

	img.Set(1, 0, stdcolor.NRGBA{B: 255, A: 0})
	data = StdImage{img}.ImageData()
	require.True(t, data[0][1].HasA)
	require.Zero(t, data[0][1].A)
}

func TestImage_WithZMax(t *testing.T) {
	trace := NewImage(RgbImage{{color.NewRgb(0, 0, 0)}}).
		WithColorModel(ColorModelRGB).
		WithZMax(RgbImage{{color.NewRgb(255, 255, 255)}}).
		WithZSmooth(ZSmoothFalse)

	got, err := trace.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"image","z":[[[0,0,0]]],"colormodel":"rgb","zmax":[[[255,255,255]]],"zsmooth":false}`, got)
}
