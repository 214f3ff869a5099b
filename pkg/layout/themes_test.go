package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    BuiltinTheme
		wantErr bool
	}{
		{name: "exact", input: "plotly_dark", want: ThemePlotlyDark},
		{name: "upper case", input: "Seaborn", want: ThemeSeaborn},
		{name: "dashes", input: "seaborn-whitegrid", want: ThemeSeabornWhitegrid},
		{name: "unknown", input: "solarized", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ThemeByName(tt.input)
			if tt.wantErr {
				require.ErrorContains(t, err, `unknown theme "solarized"`)
				return
			}
			require.NoError(t, err)

			want, err := tt.want.Template().Layout.ToJSON()
			require.NoError(t, err)
			gotJSON, err := got.Layout.ToJSON()
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(want, gotJSON))
		})
	}
}

func TestBuiltinTheme_Template(t *testing.T) {
	for name, build := range builtinThemes {
		t.Run(string(name), func(t *testing.T) {
			a, b := build(), name.Template()
			require.NotSame(t, a.Layout, b.Layout)

			_, err := b.Layout.ToJSON()
			require.NoError(t, err)
		})
	}

	require.Equal(t, `{}`, mustJSON(t, BuiltinTheme("missing").Template().Layout))
}

func TestPlotlyDark(t *testing.T) {
	got := mustJSON(t, NewLayout().WithTemplate(PlotlyDark()))
	require.Contains(t, got, `"paper_bgcolor":"#111111"`)
	require.Contains(t, got, `"colorway":["#636efa"`)
	require.Contains(t, got, `"hovermode":"closest"`)
}

func mustJSON(t *testing.T, l *Layout) string {
	t.Helper()
	s, err := l.ToJSON()
	require.NoError(t, err)
	return s
}
