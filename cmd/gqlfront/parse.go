package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gqlfront/internal/diagfmt"
	"gqlfront/internal/driver"
	"gqlfront/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.gql|directory|->",
	Short: "Parse GQL sources and print their syntax trees",
	Long:  `Parse builds a syntax tree for a GQL source file or every *.gql file in a directory; diagnostics go to stderr`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().String("ui", "auto", "progress view for directory targets (auto|on|off)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	fs, results, err := parseTargetWithUI(cmd, args[0], driverOptions())
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	diags, hasErrors := collectDiagnostics(results)
	if len(diags) > 0 {
		opts := diagfmt.PrettyOpts{Color: useColor(os.Stderr), Context: contextLines()}
		if err := diagfmt.Pretty(os.Stderr, diags, fs, opts); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for i := range results {
		if err := writeTree(out, &results[i], fs, format); err != nil {
			return err
		}
	}
	if hasErrors {
		return exitCode(1)
	}
	return nil
}

func writeTree(w io.Writer, r *driver.FileResult, fs *source.FileSet, format string) error {
	if r.AST == nil {
		return nil
	}
	if format == "json" {
		return diagfmt.FormatASTJSON(w, r.AST)
	}
	return diagfmt.FormatASTPretty(w, r.AST, fs)
}
