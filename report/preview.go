package report

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"gqlfront/source"
)

type editPreview struct {
	before []string
	after  []string
}

// buildPreview applies one edit to the whole lines it touches.
func buildPreview(fs *source.FileSet, edit Edit) (editPreview, error) {
	file := fs.Get(edit.Span.File)
	if file == nil {
		return editPreview{}, fmt.Errorf("file %d not found in file set", edit.Span.File)
	}
	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return editPreview{}, fmt.Errorf("file content overflow: %w", err)
	}

	startLine, endLine := edit.Start.Line, max(edit.End.Line, edit.Start.Line)
	blockStart := file.LineStart(startLine)
	blockEnd := size
	if endLine < file.LineCount() {
		blockEnd = file.LineStart(endLine+1) - 1
	}
	blockEnd = max(min(blockEnd, size), blockStart)

	spStart, spEnd := min(edit.Span.Start, size), min(edit.Span.End, size)
	if spStart < blockStart || spEnd > blockEnd || spEnd < spStart {
		return editPreview{}, fmt.Errorf("edit span %s outside preview block", edit.Span)
	}
	original := string(file.Content[blockStart:blockEnd])
	relStart, relEnd := int(spStart-blockStart), int(spEnd-blockStart)

	var after strings.Builder
	after.Grow(len(original) + len(edit.NewText))
	after.WriteString(original[:relStart])
	after.WriteString(edit.NewText)
	after.WriteString(original[relEnd:])

	return editPreview{
		before: strings.Split(original, "\n"),
		after:  strings.Split(after.String(), "\n"),
	}, nil
}
