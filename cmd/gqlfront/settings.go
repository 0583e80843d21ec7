package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gqlfront/internal/config"
	"gqlfront/internal/driver"
	"gqlfront/parser"
)

// cliSettings is the merged view of gqlfront.toml and the command line.
// Flags that were set explicitly win over the file.
type cliSettings struct {
	cfg    config.Config
	logger *slog.Logger
}

var settings = cliSettings{cfg: config.Default(), logger: slog.New(slog.DiscardHandler)}

func loadSettings(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	settings.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	path, err := flags.GetString("config")
	if err != nil {
		return err
	}
	var cfg config.Config
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.Discover(".")
		if errors.Is(err, config.ErrNotFound) {
			err = nil
		}
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.Path != "" {
		settings.logger.Debug("loaded settings", "path", cfg.Path)
	}

	if err := overrideString(cmd, "color", &cfg.Output.Color); err != nil {
		return err
	}
	if err := overrideString(cmd, "cache-dir", &cfg.Driver.CacheDir); err != nil {
		return err
	}
	for name, dst := range map[string]*int{
		"max-diagnostics": &cfg.Parser.MaxErrors,
		"max-depth":       &cfg.Parser.MaxDepth,
		"context":         &cfg.Output.Context,
		"jobs":            &cfg.Driver.Jobs,
	} {
		if err := overrideInt(cmd, name, dst); err != nil {
			return err
		}
	}
	if cfg.Parser.MaxErrors == 0 && !cmd.Flags().Changed("max-diagnostics") {
		if cfg.Parser.MaxErrors, err = flags.GetInt("max-diagnostics"); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	settings.cfg = cfg
	return nil
}

func overrideString(cmd *cobra.Command, name string, dst *string) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	*dst = v
	return nil
}

func overrideInt(cmd *cobra.Command, name string, dst *int) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	*dst = v
	return nil
}

// useColor resolves the color setting for output written to f.
func useColor(f *os.File) bool {
	switch settings.cfg.Output.Color {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func parserOptions() parser.Options {
	return parser.Options{
		MaxDepth:  settings.cfg.Parser.MaxDepth,
		MaxErrors: settings.cfg.Parser.MaxErrors,
	}
}

func driverOptions() driver.Options {
	return driver.Options{
		Parser: parserOptions(),
		Jobs:   settings.cfg.Driver.Jobs,
		Logger: settings.logger,
	}
}

// contextLines is the configured snippet context, defaulting to one line.
func contextLines() int {
	if settings.cfg.Output.Context > 0 {
		return settings.cfg.Output.Context
	}
	return 1
}
