package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    Level
		wantErr bool
	}{
		{name: "debug", want: DebugLevel},
		{name: " INFO ", want: InfoLevel},
		{name: "warning", want: WarnLevel},
		{name: "disabled", want: Disabled},
		{name: "verbose", want: NoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "warn", WarnLevel.String())
	require.Equal(t, "trace", TraceLevel.String())
	require.Equal(t, "nolevel", NoLevel.String())
}
