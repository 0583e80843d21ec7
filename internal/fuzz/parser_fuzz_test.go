package fuzztests

import (
	"context"
	"testing"
	"time"

	"gqlfront/internal/testkit"
	"gqlfront/parser"
	"gqlfront/source"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func parseInput(input []byte, opts parser.Options) (parser.Result, *source.File) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.gql", input))
	return parser.ParseFile(file, opts), file
}

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		res, file := parseInput(clampInput(input), parser.Options{MaxErrors: 128})
		if res.AST == nil {
			t.Fatal("nil tree")
		}
		if err := testkit.CheckSpanInvariants(res.AST, file); err != nil {
			t.Fatal(err)
		}
		if err := testkit.CheckDiagnostics(res.Diagnostics, file); err != nil {
			t.Fatal(err)
		}
		if testkit.CountBad(res.AST) > 0 && !res.HasErrors() {
			t.Fatal("placeholder node without an error diagnostic")
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
// It uses a timeout to detect infinite loops that could be caused by
// malformed input or edge cases in error recovery.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Recovery edge cases: unclosed nesting, stray closers, runaway depth.
	f.Add([]byte("MATCH ((((((((((((n"))
	f.Add([]byte(")))]]]}}}"))
	f.Add([]byte("RETURN ;;;; RETURN"))
	f.Add([]byte("MATCH (a)-[-[-[-[(b)"))
	f.Add([]byte("CREATE GRAPH TYPE t { NODE { NODE { NODE"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = parseInput(input, parser.Options{MaxErrors: 128, MaxDepth: 64})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], "..."...)
}
