// Package driver loads GQL files and runs the front-end over them, one file
// at a time or a whole directory in parallel.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/parser"
	"gqlfront/source"
)

// Options configures a driver run.
type Options struct {
	Parser parser.Options
	// Jobs bounds parallel parsing; zero selects GOMAXPROCS.
	Jobs int
	// Cache, if set, serves and stores diagnostics keyed by file content.
	// Cached results carry no AST.
	Cache *DiskCache
	// DiagnosticsOnly allows results to come from Cache.
	DiagnosticsOnly bool
	Logger          *slog.Logger
	// Progress, if set, receives per-file events from ParseDir and
	// ParseFiles.
	Progress ProgressSink
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// FileResult is the outcome of parsing one file.
type FileResult struct {
	Path   string
	FileID source.FileID
	// AST is nil when the result was served from the cache.
	AST         *ast.Program
	Diagnostics []diag.Diagnostic
	Tokens      int
	Cached      bool
	Elapsed     time.Duration
}

// HasErrors reports whether any diagnostic has error severity.
func (r *FileResult) HasErrors() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].IsError() {
			return true
		}
	}
	return false
}

// Parse loads and parses a single file.
func Parse(ctx context.Context, path string, opts Options) (*source.FileSet, FileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, FileResult{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	res, err := parseLoaded(ctx, fs.Get(fileID), opts)
	return fs, res, err
}

// ParseSource parses in-memory content registered under name.
func ParseSource(ctx context.Context, name string, content []byte, opts Options) (*source.FileSet, FileResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddNormalized(name, content)
	fs.Get(fileID).Flags |= source.FileVirtual
	res, err := parseLoaded(ctx, fs.Get(fileID), opts)
	return fs, res, err
}

func parseLoaded(ctx context.Context, file *source.File, opts Options) (FileResult, error) {
	if err := ctx.Err(); err != nil {
		return FileResult{}, err
	}
	log := opts.logger()
	start := time.Now()
	out := FileResult{Path: file.Path, FileID: file.ID}

	key := cacheKey(file.Hash, opts.Parser)
	if opts.DiagnosticsOnly && opts.Cache != nil {
		var payload DiskPayload
		ok, err := opts.Cache.Get(key, &payload)
		if err != nil {
			log.Warn("cache read failed", "path", file.Path, "err", err)
		}
		if ok && payload.valid(file.Hash) {
			out.Diagnostics = payload.restore(file.ID)
			out.Tokens = payload.Tokens
			out.Cached = true
			out.Elapsed = time.Since(start)
			log.Debug("cache hit", "path", file.Path)
			return out, nil
		}
	}

	res := parser.ParseFile(file, opts.Parser)
	out.AST = res.AST
	out.Diagnostics = res.Diagnostics
	out.Tokens = res.Tokens
	out.Elapsed = time.Since(start)
	log.Debug("parsed", "path", file.Path, "tokens", res.Tokens,
		"diagnostics", len(res.Diagnostics), "elapsed", out.Elapsed)

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, newPayload(file.Hash, res)); err != nil {
			log.Warn("cache write failed", "path", file.Path, "err", err)
		}
	}
	return out, nil
}
