package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gqlfront/diag"
	"gqlfront/internal/diagfmt"
	"gqlfront/internal/driver"
	"gqlfront/internal/observ"
	"gqlfront/internal/version"
	"gqlfront/source"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.gql|directory|->",
	Short: "Report diagnostics for GQL sources",
	Long:  `Diag parses a GQL source file or every *.gql file in a directory and reports all diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "", "output format (pretty|simple|json|msgpack|sarif); default from config")
	diagCmd.Flags().String("path-mode", "auto", "how file paths are shown (auto|absolute|relative|basename)")
	diagCmd.Flags().Bool("no-warnings", false, "drop warnings from the output")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in json output")
	diagCmd.Flags().Bool("suggest", false, "include fix suggestions in json output")
	diagCmd.Flags().Bool("preview", false, "show fix previews under pretty output")
	diagCmd.Flags().Bool("disk-cache", false, "serve unchanged files from the diagnostic cache")
	diagCmd.Flags().Bool("timings", false, "print phase timings to stderr")
	diagCmd.Flags().String("ui", "auto", "progress view for directory targets (auto|on|off)")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = settings.cfg.Output.Format
	}
	pathModeStr, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, err := diagfmt.ParsePathMode(pathModeStr)
	if err != nil {
		return err
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}

	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	timer := observ.NewTimer()

	opts := driverOptions()
	if useCache || settings.cfg.Driver.CacheDir != "" {
		cache, err := driver.OpenDiskCache(settings.cfg.Driver.CacheDir, "gqlfront")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = cache
		opts.DiagnosticsOnly = true
		settings.logger.Debug("diagnostic cache enabled", "dir", cache.Dir())
	}

	endParse := timer.Begin("parse")
	fs, results, err := parseTargetWithUI(cmd, args[0], opts)
	if err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}
	endParse(len(results))
	diags, hasErrors := collectDiagnostics(results)
	if noWarnings {
		kept := diags[:0]
		for _, d := range diags {
			if d.Severity != diag.SevWarning {
				kept = append(kept, d)
			}
		}
		diags = kept
	}

	endRender := timer.Begin("render")
	if err := writeDiagnostics(cmd, format, diags, fs, diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         pathMode,
		IncludeNotes:     withNotes,
		IncludeFixes:     suggest,
	}, preview, args); err != nil {
		return err
	}
	endRender(0)
	if timings {
		if err := timer.WriteSummary(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	if hasErrors {
		return exitCode(1)
	}
	return nil
}

func writeDiagnostics(cmd *cobra.Command, format string, diags []diag.Diagnostic, fs *source.FileSet, jsonOpts diagfmt.JSONOpts, preview bool, args []string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		return diagfmt.Pretty(out, diags, fs, diagfmt.PrettyOpts{
			Color:       useColor(os.Stdout),
			Context:     contextLines(),
			PathMode:    jsonOpts.PathMode,
			ShowPreview: preview,
		})
	case "simple":
		return diagfmt.Simple(out, diags, fs, jsonOpts.PathMode)
	case "json":
		return diagfmt.JSON(out, diags, fs, jsonOpts)
	case "msgpack":
		return diagfmt.Msgpack(out, diags, fs, jsonOpts)
	case "sarif":
		return diagfmt.Sarif(out, diags, fs, diagfmt.SarifRunMeta{
			ToolName:       "gqlfront",
			ToolVersion:    version.Current().Version,
			InvocationArgs: append([]string{"diag"}, args...),
		})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
