package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gqlfront/internal/driver"
	"gqlfront/internal/ui"
	"gqlfront/source"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

// The progress view goes to stderr so it never mixes with report output.
func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stderr)
	}
}

type parseOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
	err     error
}

// parseTargetWithUI behaves like parseTarget but shows a progress view when
// the target is a directory and the --ui flag allows it.
func parseTargetWithUI(cmd *cobra.Command, target string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	modeStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(modeStr)
	if err != nil {
		return nil, nil, err
	}
	if target == stdinName || !shouldUseTUI(mode) {
		return parseTarget(cmd.Context(), target, opts)
	}
	st, err := os.Stat(target)
	if err != nil || !st.IsDir() {
		return parseTarget(cmd.Context(), target, opts)
	}
	files, err := driver.ListFiles(target)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", target, err)
	}
	return runParseWithUI(cmd.Context(), cmd.Name()+" "+target, files, target, opts)
}

func runParseWithUI(ctx context.Context, title string, files []string, dir string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ParseDir(ctx, dir, opts)
		outcomeCh <- parseOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// The view may quit early on Ctrl+C; keep draining so the workers finish.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		settings.logger.Debug("progress view failed", "err", uiErr)
	}
	return outcome.fs, outcome.results, outcome.err
}
