package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gqlfront/internal/diagfmt"
	"gqlfront/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.gql|->",
	Short: "Tokenize a GQL source file",
	Long:  `Tokenize breaks a GQL source file into tokens with their keyword tier and leading trivia`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiagnostics := settings.cfg.Parser.MaxErrors
	var result *driver.TokenizeResult
	if args[0] == stdinName {
		content, err := readStdin()
		if err != nil {
			return err
		}
		result = driver.TokenizeSource("<stdin>", content, maxDiagnostics)
	} else {
		result, err = driver.Tokenize(args[0], maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{Color: useColor(os.Stderr), Context: contextLines()}
		if err := diagfmt.Pretty(os.Stderr, result.Bag.Items(), result.FileSet, opts); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	} else {
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return exitCode(1)
	}
	return nil
}
