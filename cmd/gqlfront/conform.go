package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gqlfront/internal/conformance"
)

var conformCmd = &cobra.Command{
	Use:   "conform [flags] <directory>",
	Short: "Check the parser against a directory of samples",
	Long: `Conform parses every sample under <directory>/valid and <directory>/invalid.
Valid samples must parse cleanly; invalid samples must report errors, including
any codes listed in a sibling .codes file.`,
	Args: cobra.ExactArgs(1),
	RunE: runConform,
}

func init() {
	conformCmd.Flags().BoolP("quiet", "q", false, "print failures and the summary only")
}

func runConform(cmd *cobra.Command, args []string) error {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	sum, err := conformance.Run(cmd.Context(), args[0], settings.cfg.Driver.Jobs, parserOptions())
	if err != nil {
		return err
	}

	colored := useColor(os.Stdout)
	pass := paint(color.FgGreen, colored)
	fail := paint(color.FgRed, colored)
	out := cmd.OutOrStdout()
	for _, c := range sum.Cases {
		rel, err := filepath.Rel(args[0], c.Path)
		if err != nil {
			rel = c.Path
		}
		rel = filepath.ToSlash(rel)
		if c.Failed {
			fmt.Fprintf(out, "%s %s: %s\n", fail.Sprint("FAIL"), rel, c.Reason)
		} else if !quiet {
			fmt.Fprintf(out, "%s %s\n", pass.Sprint("PASS"), rel)
		}
	}
	fmt.Fprintf(out, "%d passed, %d failed\n", sum.Passed, sum.Failed)
	if !sum.OK() {
		return exitCode(1)
	}
	return nil
}

func paint(attr color.Attribute, enable bool) *color.Color {
	c := color.New(attr, color.Bold)
	if enable {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
