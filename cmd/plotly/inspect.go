package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/raykavin/goplotly/pkg/plot"
	"github.com/raykavin/goplotly/pkg/traces"
	"github.com/spf13/cobra"
)

func buildInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <plot.json>",
		Short: "Print the traces of a plot document",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	p, data, err := readPlot(args[0])
	if err != nil {
		return err
	}
	return writeInspect(cmd.OutOrStdout(), args[0], p, len(data))
}

// writeInspect prints one row per trace and a footer with the document
// size.
func writeInspect(w io.Writer, name string, p *plot.Plot, size int) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Type", "Name", "Axes", "Points"})
	table.SetFooterAlignment(tablewriter.ALIGN_RIGHT)

	for i, trace := range p.Data() {
		row, err := traceRow(i, trace)
		if err != nil {
			return fmt.Errorf("trace %d: %w", i, err)
		}
		table.Append(row)
	}

	table.SetFooter([]string{
		"", "", "", strconv.Itoa(len(p.Data())) + " traces", humanize.Bytes(uint64(size)),
	})
	table.Render()

	_, err := fmt.Fprintf(w, "%s: %d frames\n", name, len(p.Frames()))
	return err
}

func traceRow(index int, trace traces.Trace) ([]string, error) {
	raw, ok := trace.(*traces.RawTrace)
	if !ok {
		s, err := trace.ToJSON()
		if err != nil {
			return nil, err
		}
		if raw, err = traces.NewRawTrace([]byte(s)); err != nil {
			return nil, err
		}
	}

	var name, xAxis, yAxis string
	if _, err := raw.Attribute("name", &name); err != nil {
		return nil, err
	}
	if _, err := raw.Attribute("xaxis", &xAxis); err != nil {
		return nil, err
	}
	if _, err := raw.Attribute("yaxis", &yAxis); err != nil {
		return nil, err
	}

	axes := "-"
	if xAxis != "" || yAxis != "" {
		axes = fmt.Sprintf("%s/%s", orDefault(xAxis, "x"), orDefault(yAxis, "y"))
	}

	points := "-"
	for _, key := range []string{"x", "y", "z", "values", "lat"} {
		var values []json.RawMessage
		found, err := raw.Attribute(key, &values)
		if err != nil {
			// scalar attributes are not counted
			continue
		}
		if found {
			points = strconv.Itoa(len(values))
			break
		}
	}

	return []string{strconv.Itoa(index), string(raw.PlotType()), orDefault(name, "-"), axes, points}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
