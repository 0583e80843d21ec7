package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"gqlfront/diag"
	"gqlfront/source"
)

// Ext is the extension of GQL source files.
const Ext = ".gql"

// ListFiles returns every *.gql file under dir in sorted order.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, Ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every *.gql file under dir in parallel. Results follow
// the sorted file order. A file that fails to load yields a result with a
// single I/O diagnostic; only cancellation aborts the run.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	results, err := parseFiles(ctx, fileSet, files, opts)
	return fileSet, results, err
}

// ParseFiles parses the given paths in parallel into one file set.
func ParseFiles(ctx context.Context, paths []string, opts Options) (*source.FileSet, []FileResult, error) {
	fileSet := source.NewFileSet()
	if len(paths) == 0 {
		return fileSet, nil, nil
	}
	results, err := parseFiles(ctx, fileSet, paths, opts)
	return fileSet, results, err
}

func parseFiles(ctx context.Context, fileSet *source.FileSet, files []string, opts Options) ([]FileResult, error) {
	// Files are loaded up front: FileSet is not safe for concurrent Add.
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			continue
		}
		fileIDs[i] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log := opts.logger()
	log.Debug("parsing files", "count", len(files), "jobs", jobs)

	for _, path := range files {
		opts.report(Event{File: path, Status: StatusQueued})
	}

	// Each goroutine owns results[i].
	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErr, bad := loadErrors[i]; bad {
				results[i] = FileResult{
					Path: path,
					Diagnostics: []diag.Diagnostic{
						diag.NewError(diag.IOLoadFile, source.Span{}, "failed to load file: "+loadErr.Error()),
					},
				}
				opts.report(Event{File: path, Status: StatusError})
				return nil
			}
			opts.report(Event{File: path, Status: StatusWorking})
			res, err := parseLoaded(gctx, fileSet.Get(fileIDs[i]), opts)
			if err != nil {
				return err
			}
			res.Path = path
			results[i] = res
			status := StatusDone
			if res.HasErrors() {
				status = StatusError
			}
			opts.report(Event{File: path, Status: status, Cached: res.Cached, Elapsed: res.Elapsed})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
