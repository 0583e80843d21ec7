// Package conformance checks the parser against a directory of GQL samples.
//
// Samples under valid/ must parse without errors. Samples under invalid/
// must produce at least one error and still yield a tree. An invalid sample
// may list the expected diagnostic codes (one ID per line, e.g. SYN2002) in
// a sibling file with the .codes extension; the reported codes must then
// contain each of them.
package conformance

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gqlfront/diag"
	"gqlfront/internal/driver"
	"gqlfront/parser"
)

// Kind classifies a sample by the directory it lives in.
type Kind uint8

const (
	KindValid Kind = iota
	KindInvalid
)

func (k Kind) String() string {
	if k == KindInvalid {
		return "invalid"
	}
	return "valid"
}

// CodesExt is the extension of expected-code files.
const CodesExt = ".codes"

// Case is the outcome of one sample.
type Case struct {
	Path string
	Kind Kind
	// Want lists expected code IDs from the .codes file, if any.
	Want []string
	// Got lists the reported error code IDs in report order.
	Got    []string
	Failed bool
	Reason string
}

// Summary aggregates a run.
type Summary struct {
	Cases  []Case
	Passed int
	Failed int
}

// OK reports whether every case passed.
func (s *Summary) OK() bool { return s.Failed == 0 }

// Run parses every sample under dir/valid and dir/invalid with up to jobs
// files in flight. Cases are sorted by path within each kind, valid first.
func Run(ctx context.Context, dir string, jobs int, popts parser.Options) (*Summary, error) {
	sum := &Summary{}
	found := false
	for _, kind := range []Kind{KindValid, KindInvalid} {
		sub := filepath.Join(dir, kind.String())
		if _, err := os.Stat(sub); errors.Is(err, os.ErrNotExist) {
			continue
		}
		found = true
		_, results, err := driver.ParseDir(ctx, sub, driver.Options{Parser: popts, Jobs: jobs})
		if err != nil {
			return nil, fmt.Errorf("conformance %s: %w", kind, err)
		}
		for i := range results {
			c := check(&results[i], kind)
			if c.Failed {
				sum.Failed++
			} else {
				sum.Passed++
			}
			sum.Cases = append(sum.Cases, c)
		}
	}
	if !found {
		return nil, fmt.Errorf("conformance: %s has neither valid/ nor invalid/", dir)
	}
	return sum, nil
}

func check(r *driver.FileResult, kind Kind) Case {
	c := Case{Path: r.Path, Kind: kind}
	for _, d := range r.Diagnostics {
		if d.IsError() {
			c.Got = append(c.Got, d.Code.ID())
		}
	}
	if ioErr(r.Diagnostics) {
		return c.fail("file could not be loaded")
	}

	switch kind {
	case KindValid:
		if len(c.Got) > 0 {
			return c.fail("unexpected errors: " + strings.Join(c.Got, ", "))
		}
	case KindInvalid:
		if len(c.Got) == 0 {
			return c.fail("expected at least one error")
		}
		if r.AST == nil {
			return c.fail("no tree produced")
		}
		want, err := readCodes(strings.TrimSuffix(r.Path, driver.Ext) + CodesExt)
		if err != nil {
			return c.fail(err.Error())
		}
		c.Want = want
		for _, w := range want {
			if !slices.Contains(c.Got, w) {
				return c.fail("missing expected " + w)
			}
		}
	}
	return c
}

func (c Case) fail(reason string) Case {
	c.Failed = true
	c.Reason = reason
	return c
}

func ioErr(diags []diag.Diagnostic) bool {
	for _, d := range diags {
		if d.Code == diag.IOLoadFile {
			return true
		}
	}
	return false
}

// readCodes returns the non-empty, non-comment lines of path. A missing
// file means no expectations.
func readCodes(path string) ([]string, error) {
	// #nosec G304 -- path is derived from a sample path
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	var codes []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	return codes, nil
}
