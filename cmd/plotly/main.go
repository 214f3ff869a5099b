// Command plotly renders, serves, exports and inspects stored plot
// documents.
package main

import (
	"fmt"
	"os"

	"github.com/raykavin/goplotly/internal/config"
	"github.com/raykavin/goplotly/pkg/logger"
	"github.com/raykavin/goplotly/pkg/plot"
	"github.com/spf13/cobra"
)

var (
	configPath string

	cfg *config.Config
	log logger.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "plotly",
		Short:             "Render, preview and export plotly documents",
		Version:           "1.0.0",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (yaml, json or toml)")

	rootCmd.AddCommand(
		buildRenderCmd(),
		buildServeCmd(),
		buildExportCmd(),
		buildInspectCmd(),
	)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	log, err = cfg.Log.Logger()
	if err != nil {
		return err
	}
	return nil
}

// readPlot decodes the document stored in path.
func readPlot(path string) (*plot.Plot, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var options []plot.Option
	if cfg != nil && cfg.PlotlyJSPath != "" {
		bundle, err := os.ReadFile(cfg.PlotlyJSPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read plotly.js bundle: %w", err)
		}
		options = append(options, plot.WithPlotlyJS(bundle))
	}

	p, err := plot.FromJSON(data, options...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, data, nil
}
