package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/raykavin/goplotly/pkg/export"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/xhit/go-str2duration/v2"
)

// Export command flags
var (
	exportFormat  string
	exportWidth   int
	exportHeight  int
	exportScale   float64
	exportOutDir  string
	exportTimeout string
)

func buildExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export <plot.json>...",
		Short: "Export plot documents to static images through a WebDriver",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runExport,
	}

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.PNG), "Image format: png, jpeg, webp, svg or pdf")
	exportCmd.Flags().IntVarP(&exportWidth, "width", "W", 800, "Image width in pixels")
	exportCmd.Flags().IntVarP(&exportHeight, "height", "H", 600, "Image height in pixels")
	exportCmd.Flags().Float64VarP(&exportScale, "scale", "s", 1, "Image scale factor")
	exportCmd.Flags().StringVarP(&exportOutDir, "out-dir", "o", ".", "Output directory")
	exportCmd.Flags().StringVarP(&exportTimeout, "timeout", "t", "10m", "Time allowed for the whole batch (e.g. 90s, 1h)")

	return exportCmd
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseImageFormat(exportFormat)
	if err != nil {
		return err
	}

	timeout, err := str2duration.ParseDuration(exportTimeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}

	jobs, err := buildJobs(args, format, exportOutDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", exportOutDir, err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	exporter := export.NewStaticExporter(cfg.WebDriver.ExporterOptions(log)...)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := exporter.Close(closeCtx); err != nil {
			log.WithError(err).Warn("Failed to close exporter")
		}
	}()

	var (
		mu       sync.Mutex
		failures []string
	)
	progressBar := progressbar.Default(int64(len(jobs)), "exporting")
	err = exporter.ExportBatch(ctx, jobs, func(job export.Job, err error) {
		if err != nil {
			mu.Lock()
			failures = append(failures, job.Path)
			mu.Unlock()
			return
		}
		if err := progressBar.Add(1); err != nil {
			log.Warnf("update progressbar fail: %v", err)
		}
	})
	if err != nil {
		log.WithField("diagnostics", exporter.Diagnostics()).Debug("WebDriver state")
		return fmt.Errorf("export failed (%s): %w", strings.Join(failures, ", "), err)
	}

	cmd.Printf("exported %d plots to %s\n", len(jobs), exportOutDir)
	return nil
}

// buildJobs reads every document and names its image after the source
// file.
func buildJobs(paths []string, format export.ImageFormat, outDir string) ([]export.Job, error) {
	jobs := make([]export.Job, 0, len(paths))
	for _, path := range paths {
		p, _, err := readPlot(path)
		if err != nil {
			return nil, err
		}
		doc, err := p.ToJSON()
		if err != nil {
			return nil, err
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		jobs = append(jobs, export.Job{
			Path:     filepath.Join(outDir, name+"."+format.Extension()),
			Document: []byte(doc),
			Format:   format,
			Width:    exportWidth,
			Height:   exportHeight,
			Scale:    exportScale,
		})
	}
	return jobs, nil
}
