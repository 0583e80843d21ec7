package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFuzzInput = 1 << 16 // 64 KiB
	maxSeedBytes = 64 << 10
)

var languageSeeds = []string{
	"",
	"MATCH (n:Person) RETURN n.name",
	"MATCH (a)-[e:KNOWS]->{1,3}(b) WHERE a.age > 30 RETURN a, b ORDER BY a.name LIMIT 5",
	"MATCH (n:Person {",
	"MATCH (a)-[e->(b) RETURN a",
	"RETURN CASE WHEN a THEN b",
	"LET x 1 RETURN x",
	"CREATE GRAPH TYPE t { NODE Person { name STRING }",
	"RETURN a IS TYPED LIST<LIST<LIST<INT",
	"}{}{",
	"RETURN 'unterminated",
	"/* open comment",
	"RETURN \"a\"\"b\", `x`, $p, $\"q\"",
	"SESSION SET VALUE $v = 1; COMMIT;;",
	"RETURN .name",
	"ORDER BY %0",
	"CREATE GRAPH TYPE t { (a) ) }",
	"MATCH (n)) RETURN n,",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every *.gql sample from the repository testdata.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".gql" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
