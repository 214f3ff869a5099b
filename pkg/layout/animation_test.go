package layout

import (
	"encoding/json"
	"testing"

	"github.com/raykavin/goplotly/pkg/traces"
	"github.com/stretchr/testify/require"
)

func TestAnimation_MarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		animation *Animation
		want      string
	}{
		{name: "all frames", animation: AllFrames(), want: `[null,{}]`},
		{name: "named frames", animation: AnimateFrames("a", "b"), want: `[["a","b"],{}]`},
		{name: "empty names", animation: AnimateFrames(), want: `[[],{}]`},
		{
			name:      "pause",
			animation: Pause(),
			want:      `[[null],{"frame":{"duration":0,"redraw":false},"transition":{"duration":0},"mode":"immediate"}]`,
		},
		{
			name: "options",
			animation: AllFrames().WithOptions(NewAnimationOptions().
				WithFrame(NewFrameSettings().WithDuration(500).WithRedraw(true)).
				WithTransition(NewTransitionSettings().WithDuration(300).WithEasing(AnimationEasingCubicInOut)).
				WithFromCurrent(true)),
			want: `[null,{"frame":{"duration":500,"redraw":true},"transition":{"duration":300,"easing":"cubic-in-out"},"fromcurrent":true}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.animation)
			require.NoError(t, err)
			require.Equal(t, tt.want, string(b))
		})
	}
}

func TestAnimation_IsPause(t *testing.T) {
	require.True(t, Pause().IsPause())
	require.False(t, AllFrames().IsPause())
	require.False(t, AnimateFrames("x").IsPause())
}

func TestFrame_MarshalJSON(t *testing.T) {
	frame := NewFrame("2007").
		WithGroup("years").
		WithTraces([]int{0}).
		AddTrace(traces.NewScatter([]int{1, 2}, []int{3, 4})).
		WithLayout(NewLayout().WithWidth(400))

	b, err := json.Marshal(frame)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"group": "years",
		"name": "2007",
		"traces": [0],
		"data": [{"type": "scatter", "x": [1, 2], "y": [3, 4]}],
		"layout": {"width": 400}
	}`, string(b))
}
