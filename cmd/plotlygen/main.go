// Command plotlygen writes the fluent setters of the chart builder packages
// and the restyle/relayout helpers derived from the same field lists.
//
//	go run ./cmd/plotlygen --dir pkg/traces --kind trace
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dir       string
	kind      string
	typeNames []string
	relayout  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "plotlygen",
		Short:        "Generate builder setters and partial update helpers",
		Version:      "1.0.0",
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	rootCmd.Flags().StringVarP(&dir, "dir", "d", ".", "Package directory")
	rootCmd.Flags().StringVarP(&kind, "kind", "k", string(KindCommon), "Package kind: common, trace or layout")
	rootCmd.Flags().StringSliceVarP(&typeNames, "type", "t", nil, "Only generate for these types")
	rootCmd.Flags().StringVar(&relayout, "relayout-type", "Layout", "Struct that gets relayout helpers (layout kind)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	k, err := ParseKind(kind)
	if err != nil {
		return err
	}

	pkg, err := Load(dir)
	if err != nil {
		return err
	}

	structs := pkg.Structs
	if len(typeNames) > 0 {
		structs = filterStructs(structs, typeNames)
	}

	files, err := Render(pkg.Name, structs, k, relayout)
	if err != nil {
		return err
	}

	// a partial run would truncate the checked-in files
	if len(typeNames) > 0 {
		for _, f := range files {
			cmd.Printf("// %s\n%s\n", f.Name, f.Source)
		}
		return nil
	}

	for _, f := range files {
		if err := f.Write(dir); err != nil {
			return err
		}
		cmd.Printf("wrote %s (%d structs)\n", f.Name, f.Count)
	}
	return nil
}
