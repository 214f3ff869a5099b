package plot

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raykavin/goplotly/pkg/export"
	"github.com/stretchr/testify/require"
)

func stubOpenFile(t *testing.T, err error) *[]string {
	t.Helper()

	opened := make([]string, 0)
	previous := openFile
	openFile = func(path string) error {
		opened = append(opened, path)
		return err
	}
	t.Cleanup(func() { openFile = previous })
	return &opened
}

func TestShow(t *testing.T) {
	opened := stubOpenFile(t, nil)

	path, err := Show(markersPlot())
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	require.Equal(t, []string{path}, *opened)
	name := filepath.Base(path)
	require.True(t, strings.HasPrefix(name, "plotly_"))
	require.Len(t, strings.TrimSuffix(strings.TrimPrefix(name, "plotly_"), ".html"), showNameLength)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), `"mode":"markers"`)
}

func TestShow_NoApplication(t *testing.T) {
	stubOpenFile(t, errors.New("exec: \"xdg-open\": executable file not found in $PATH"))

	path, err := Show(markersPlot())
	t.Cleanup(func() { os.Remove(path) })
	require.ErrorIs(t, err, ErrDefaultAppNotFound)
	require.FileExists(t, path)
}

func TestShowImage(t *testing.T) {
	opened := stubOpenFile(t, nil)

	path, err := ShowImage(markersPlot(), export.SVG, 300, 200)
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })
	require.Len(t, *opened, 1)

	_, err = ShowImage(markersPlot(), export.EPS, 300, 200)
	require.ErrorIs(t, err, export.ErrUnsupportedFormat)
	require.Len(t, *opened, 1)
}
