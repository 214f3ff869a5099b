package layout

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/raykavin/goplotly/pkg/common"
	"github.com/raykavin/goplotly/pkg/traces"
	"github.com/stretchr/testify/require"
)

func visibleRestyle() traces.Restyle {
	return traces.BarModifyVisible([]common.Visible{common.VisibleTrue, common.VisibleFalse})
}

func TestButtonBuilder_Build(t *testing.T) {
	tests := []struct {
		name    string
		builder *ButtonBuilder
		want    string
	}{
		{
			name:    "nothing pushed",
			builder: NewButtonBuilder(),
			want:    `{"method":"skip","args":null}`,
		},
		{
			name:    "restyle only",
			builder: NewButtonBuilder().PushRestyle(visibleRestyle()),
			want:    `{"method":"restyle","args":[{"visible":[true,false]}]}`,
		},
		{
			name:    "relayout only",
			builder: NewButtonBuilder().PushRelayout(ModifyTitle(common.NewTitle("X"))),
			want:    `{"method":"relayout","args":[{"title":{"text":"X"}}]}`,
		},
		{
			name: "restyle and relayout",
			builder: NewButtonBuilder().
				PushRestyle(visibleRestyle()).
				PushRelayout(ModifyTitle(common.NewTitle("X"))),
			want: `{"method":"update","args":[{"visible":[true,false]},{"title":{"text":"X"}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			button, err := tt.builder.Build()
			require.NoError(t, err)

			b, err := json.Marshal(button)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestButtonBuilder_BuildFull(t *testing.T) {
	button, err := NewButtonBuilder().
		WithLabel("Label").
		WithName("Name").
		WithTemplateItemName("Template").
		WithVisible(true).
		PushRestyle(visibleRestyle()).
		PushRelayout(ModifyTitle(common.NewTitle("Hello"))).
		PushRelayout(ModifyWidth(20)).
		Build()
	require.NoError(t, err)

	b, err := json.Marshal(button)
	require.NoError(t, err)
	require.Equal(t,
		`{"args":[{"visible":[true,false]},{"title":{"text":"Hello"},"width":20}],"label":"Label","method":"update","name":"Name","templateitemname":"Template","visible":true}`,
		string(b))
}

func TestButtonBuilder_PushRestyleLastWriteWins(t *testing.T) {
	button, err := NewButtonBuilder().
		PushRestyle(traces.ScatterModifyAllName("first")).
		PushRestyle(traces.ScatterModifyAllName("second")).
		Build()
	require.NoError(t, err)
	require.JSONEq(t, `[{"name":"second"}]`, string(button.Args))
}

func TestButtonBuilder_InvalidObject(t *testing.T) {
	_, err := NewButtonBuilder().PushRestyle(nil).Build()
	require.ErrorIs(t, err, ErrInvalidRestyleObject)

	_, err = NewButtonBuilder().PushRelayout([]int{1, 2}).Build()
	require.ErrorIs(t, err, ErrInvalidRelayoutObject)

	var controlErr *ControlBuilderError
	require.True(t, errors.As(err, &controlErr))
	require.Equal(t, InvalidRelayoutObject, controlErr.Kind)
	require.Equal(t, "[1,2]", controlErr.Detail)
}

func TestButtonBuilder_FirstErrorWins(t *testing.T) {
	_, err := NewButtonBuilder().
		PushRestyle(traces.ScatterModifyAllOpacity(math.NaN())).
		PushRelayout(nil).
		PushRestyle(visibleRestyle()).
		Build()
	require.ErrorIs(t, err, ErrRestyleSerialization)
	require.NotErrorIs(t, err, ErrInvalidRelayoutObject)
}

func TestSliderStepBuilder_Build(t *testing.T) {
	step, err := NewSliderStepBuilder().
		WithLabel("2007").
		WithValue(2007).
		PushRestyle(visibleRestyle()).
		Build()
	require.NoError(t, err)

	b, err := json.Marshal(step)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"args": [{"visible": [true, false]}],
		"label": "2007",
		"method": "restyle",
		"value": 2007
	}`, string(b))
}

func TestSliderStepBuilder_BuildAnimation(t *testing.T) {
	step, err := NewSliderStepBuilder().
		WithLabel("frame 1").
		PushRestyle(visibleRestyle()).
		WithAnimation(AnimateFrames("frame1")).
		Build()
	require.NoError(t, err)
	require.Equal(t, MethodAnimate, *step.Method)
	require.JSONEq(t, `[["frame1"],{}]`, string(step.Args))
}

func TestSliderStepBuilder_Skip(t *testing.T) {
	step, err := NewSliderStepBuilder().Build()
	require.NoError(t, err)
	require.Equal(t, MethodSkip, *step.Method)
	require.Equal(t, "null", string(step.Args))
}

func TestSliderStepBuilder_ValueError(t *testing.T) {
	_, err := NewSliderStepBuilder().
		WithValue(math.Inf(1)).
		PushRestyle(visibleRestyle()).
		Build()
	require.ErrorIs(t, err, ErrValueSerialization)
}

func TestControlBuilderError_Error(t *testing.T) {
	err := &ControlBuilderError{Kind: InvalidRestyleObject, Detail: "null"}
	require.Equal(t, "restyle is not a JSON object: null", err.Error())
	require.ErrorIs(t, err, ErrInvalidRestyleObject)
	require.NotErrorIs(t, err, ErrInvalidRelayoutObject)
}

func TestUpdateMenu_MarshalJSON(t *testing.T) {
	button, err := NewButtonBuilder().WithLabel("Show").PushRestyle(visibleRestyle()).Build()
	require.NoError(t, err)

	menu := NewUpdateMenu().
		WithType(UpdateMenuTypeButtons).
		WithDirection(UpdateMenuDirectionRight).
		WithButtons([]Button{*button})

	b, err := json.Marshal(menu)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "buttons",
		"direction": "right",
		"buttons": [{"args": [{"visible": [true, false]}], "label": "Show", "method": "restyle"}]
	}`, string(b))
}
