package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// Render command flags
var (
	renderOutput string
	renderInline bool
	renderDivID  string
	renderLocal  bool
)

func buildRenderCmd() *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render <plot.json>",
		Short: "Render a plot document to HTML",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file path (e.g. ./plot.html)")
	renderCmd.Flags().BoolVar(&renderInline, "inline", false, "Write a <div> fragment instead of a full page")
	renderCmd.Flags().StringVar(&renderDivID, "div-id", "", "Id of the plot <div> (random when empty)")
	renderCmd.Flags().BoolVar(&renderLocal, "local", false, "Embed plotly.js from PLOTLY_JS_PATH instead of the CDN")

	renderCmd.MarkFlagRequired("output")

	return renderCmd
}

func runRender(cmd *cobra.Command, args []string) error {
	p, _, err := readPlot(args[0])
	if err != nil {
		return err
	}
	if renderLocal {
		p.UseLocalPlotly()
	}

	var page string
	if renderInline {
		page, err = p.ToInlineHTML(renderDivID)
	} else {
		page, err = p.ToHTML()
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(renderOutput, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOutput, err)
	}

	cmd.Printf("wrote %s (%s, %d traces)\n", renderOutput, humanize.Bytes(uint64(len(page))), len(p.Data()))
	return nil
}
