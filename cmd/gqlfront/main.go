package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gqlfront/internal/version"
)

var rootCmd = &cobra.Command{
	Use:               "gqlfront",
	Short:             "Resilient ISO GQL front-end",
	Long:              `gqlfront tokenizes and parses ISO GQL queries, reporting every problem it can recover from`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// exitCode is returned by commands that finished normally but must make the
// process exit non-zero, e.g. when a query has errors.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(conformCmd)
	rootCmd.AddCommand(versionCmd)

	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Int("max-diagnostics", 100, "maximum number of errors to report per file (0 = unlimited)")
	flags.Int("max-depth", 0, "maximum nesting depth before the parser gives up on a construct (0 = default)")
	flags.Int("context", 0, "source lines shown around each diagnostic")
	flags.Int("jobs", 0, "max parallel workers for directory processing (0 = auto)")
	flags.String("cache-dir", "", "directory of the diagnostic cache (default: user cache dir)")
	flags.String("config", "", "path to gqlfront.toml (default: search upward from the working directory)")
	flags.BoolP("verbose", "v", false, "log driver activity to stderr")
}

func main() {
	os.Exit(run())
}

func run() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var code exitCode
	if errors.As(err, &code) {
		return int(code)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	return 2
}
