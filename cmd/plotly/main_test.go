package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raykavin/goplotly/pkg/export"
	"github.com/stretchr/testify/require"
)

const barDocument = `{
	"data": [
		{"type": "bar", "name": "sales", "x": ["a", "b", "c"], "y": [1, 2, 3]},
		{"type": "scatter", "x": [1, 2], "y": [3, 4], "xaxis": "x2", "yaxis": "y2"},
		{"type": "pie", "values": [1, 2, 3, 4]}
	],
	"layout": {"title": {"text": "Quarterly"}},
	"config": {}
}`

func writeDocument(t *testing.T, name, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender_FullPage(t *testing.T) {
	path := writeDocument(t, "bar.json", barDocument)
	output := filepath.Join(t.TempDir(), "bar.html")

	out, err := execute(t, "render", path, "-o", output)
	require.NoError(t, err)
	require.Contains(t, out, "3 traces")

	page, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(page), "<title>Quarterly</title>")
	require.Contains(t, string(page), `"name":"sales"`)
}

func TestRender_Inline(t *testing.T) {
	path := writeDocument(t, "bar.json", barDocument)
	output := filepath.Join(t.TempDir(), "bar.html")

	_, err := execute(t, "render", path, "-o", output, "--inline", "--div-id", "chart")
	require.NoError(t, err)

	page, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(page), `id="chart"`)
	require.NotContains(t, string(page), "<html")
}

func TestRender_Errors(t *testing.T) {
	_, err := execute(t, "render", filepath.Join(t.TempDir(), "missing.json"), "-o", "out.html")
	require.Error(t, err)

	path := writeDocument(t, "broken.json", `{"data": [1]}`)
	_, err = execute(t, "render", path, "-o", filepath.Join(t.TempDir(), "out.html"))
	require.Error(t, err)

	_, err = execute(t, "render", path)
	require.ErrorContains(t, err, "output")
}

func TestInspect(t *testing.T) {
	path := writeDocument(t, "bar.json", barDocument)

	out, err := execute(t, "inspect", path)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Contains(t, out, "TYPE")
	require.True(t, containsRow(lines, "0", "bar", "sales", "-", "3"), out)
	require.True(t, containsRow(lines, "1", "scatter", "-", "x2/y2", "2"), out)
	require.True(t, containsRow(lines, "2", "pie", "-", "-", "4"), out)
	require.Contains(t, out, "3 TRACES")
	require.Contains(t, out, "0 frames")
}

func containsRow(lines []string, cells ...string) bool {
	for _, line := range lines {
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == '|' })
		if len(fields) != len(cells) {
			continue
		}
		match := true
		for i, field := range fields {
			if strings.TrimSpace(field) != cells[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestBuildJobs(t *testing.T) {
	path := writeDocument(t, "bar.json", barDocument)
	exportWidth, exportHeight, exportScale = 640, 480, 2

	jobs, err := buildJobs([]string{path}, export.SVG, "out")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.Equal(t, filepath.Join("out", "bar.svg"), jobs[0].Path)
	require.Equal(t, export.SVG, jobs[0].Format)
	require.Equal(t, 640, jobs[0].Width)
	require.Equal(t, 480, jobs[0].Height)
	require.Equal(t, 2.0, jobs[0].Scale)
	require.JSONEq(t, barDocument, string(jobs[0].Document))
}

func TestExport_InvalidFormat(t *testing.T) {
	path := writeDocument(t, "bar.json", barDocument)

	_, err := execute(t, "export", path, "--format", "eps")
	require.ErrorIs(t, err, export.ErrUnsupportedFormat)

	_, err = execute(t, "export", path, "--timeout", "whenever")
	require.ErrorContains(t, err, "invalid timeout")
}
