package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gqlfront/internal/fix"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.gql|directory>",
	Short: "Apply suggested fixes to GQL sources",
	Long:  "Parse the sources, list the fixes offered by diagnostics, and apply them according to the chosen strategy.",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().Bool("all", false, "apply every preferred fix")
	fixCmd.Flags().Bool("once", false, "apply the first available fix (default)")
	fixCmd.Flags().String("id", "", "apply the fix with a specific identifier")
	fixCmd.Flags().Bool("list", false, "list available fixes and their identifiers without applying them")
	fixCmd.Flags().Bool("dry-run", false, "print the fixed source instead of writing files")
}

func runFix(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	applyAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	applyOnce, err := cmd.Flags().GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := cmd.Flags().GetString("id")
	if err != nil {
		return err
	}
	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	if targetID != "" && (applyAll || applyOnce) {
		return fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnce {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}

	mode := fix.ApplyModeOnce
	if targetID != "" {
		mode = fix.ApplyModeID
	} else if applyAll {
		mode = fix.ApplyModeAll
	}

	fs, results, err := parseTarget(cmd.Context(), targetPath, driverOptions())
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	diags, _ := collectDiagnostics(results)
	out := cmd.OutOrStdout()

	if list {
		return listFixes(out, fix.Candidates(diags))
	}

	// Standard input can only be fixed in a dry run.
	if targetPath == stdinName {
		dryRun = true
	}
	settings.logger.Debug("applying fixes", "mode", mode.String(), "dry_run", dryRun)
	res, applyErr := fix.Apply(fs, diags, fix.ApplyOptions{Mode: mode, TargetID: targetID, DryRun: dryRun})
	if dryRun && applyErr == nil {
		for _, change := range res.FileChanges {
			if _, err := fmt.Fprintf(out, "== %s ==\n%s\n", change.Path, change.Content); err != nil {
				return err
			}
		}
	}
	return handleApplyResult(out, res, applyErr)
}

func listFixes(out io.Writer, cands []fix.Candidate) error {
	if len(cands) == 0 {
		_, err := fmt.Fprintln(out, "No fixes available.")
		return err
	}
	for _, c := range cands {
		marker := " "
		if c.Fix.IsPreferred {
			marker = "*"
		}
		if _, err := fmt.Fprintf(out, "%s %s  %s (%s)\n", marker, c.ID, c.Fix.Title, c.Diag.Message); err != nil {
			return err
		}
	}
	return nil
}

func handleApplyResult(out io.Writer, res *fix.ApplyResult, applyErr error) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 {
		fmt.Fprintf(out, "Applied %d fix(es):\n", len(res.Applied))
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			fmt.Fprintf(out, "  %s [%s] %s (%d edits)\n", item.Title, item.ID, location, item.EditCount)
		}
	}
	if len(res.FileChanges) > 0 {
		fmt.Fprintln(out, "Updated files:")
		for _, change := range res.FileChanges {
			fmt.Fprintf(out, "  %s (%d edits)\n", change.Path, change.EditCount)
		}
	}
	if len(res.Skipped) > 0 {
		fmt.Fprintln(out, "Skipped fixes:")
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if skip.Title != "" {
				fmt.Fprintf(out, "  %s [%s]: %s\n", skip.Title, id, skip.Reason)
			} else {
				fmt.Fprintf(out, "  [%s]: %s\n", id, skip.Reason)
			}
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) {
			fmt.Fprintln(out, "No applicable fixes found.")
			return nil
		}
		return applyErr
	}
	return nil
}

