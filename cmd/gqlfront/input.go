package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"gqlfront/diag"
	"gqlfront/internal/driver"
	"gqlfront/source"
)

// stdinName is the argument that reads the query from standard input.
const stdinName = "-"

func readStdin() ([]byte, error) {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return content, nil
}

// parseTarget parses a file, standard input or every *.gql file under a
// directory.
func parseTarget(ctx context.Context, target string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	if target == stdinName {
		content, err := readStdin()
		if err != nil {
			return nil, nil, err
		}
		fs, res, err := driver.ParseSource(ctx, "<stdin>", content, opts)
		if err != nil {
			return nil, nil, err
		}
		return fs, []driver.FileResult{res}, nil
	}

	st, err := os.Stat(target)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat path: %w", err)
	}
	if st.IsDir() {
		return driver.ParseDir(ctx, target, opts)
	}
	fs, res, err := driver.Parse(ctx, target, opts)
	if err != nil {
		return nil, nil, err
	}
	return fs, []driver.FileResult{res}, nil
}

func collectDiagnostics(results []driver.FileResult) (diags []diag.Diagnostic, hasErrors bool) {
	for i := range results {
		diags = append(diags, results[i].Diagnostics...)
		hasErrors = hasErrors || results[i].HasErrors()
	}
	return diags, hasErrors
}
