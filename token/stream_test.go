package token

import (
	"testing"

	"gqlfront/source"
)

func mkToks(kinds ...Kind) []Token {
	out := make([]Token, 0, len(kinds))
	var off uint32
	for _, k := range kinds {
		out = append(out, Token{Kind: k, Span: source.Span{Start: off, End: off + 1}})
		off += 2
	}
	return out
}

func TestStream_EOFSentinelForever(t *testing.T) {
	s := NewStream(mkToks(Word, Comma, EOF))
	if s.Len() != 2 {
		t.Fatalf("Len = %d", s.Len())
	}
	s.Advance()
	s.Advance()
	for i := 0; i < 5; i++ {
		if tok := s.Advance(); tok.Kind != EOF {
			t.Fatalf("advance past end returned %v", tok.Kind)
		}
	}
	if s.Pos() != 2 || !s.AtEOF() {
		t.Fatalf("pos=%d", s.Pos())
	}
	if s.Peek(100).Kind != EOF || s.Peek(-100).Kind != EOF {
		t.Fatal("out of range peeks must yield EOF")
	}
}

func TestStream_SynthesizesEOF(t *testing.T) {
	s := NewStream(mkToks(Word))
	s.Advance()
	eof := s.Current()
	if eof.Kind != EOF || eof.Span.Start != 1 || !eof.Span.Empty() {
		t.Fatalf("synthesized EOF = %+v", eof)
	}
	if NewStream(nil).Current().Kind != EOF {
		t.Fatal("empty stream must be at EOF")
	}
}

func TestStream_PeekAndBacktrack(t *testing.T) {
	s := NewStream(mkToks(Word, Comma, LParen, EOF))
	if s.Peek(1).Kind != Comma || s.Peek(2).Kind != LParen {
		t.Fatal("peek broken")
	}
	mark := s.Pos()
	s.Advance()
	s.Advance()
	if got := s.Consumed(mark); len(got) != 2 {
		t.Fatalf("Consumed = %d tokens", len(got))
	}
	if s.PrevSpan().Start != 2 {
		t.Fatalf("PrevSpan = %v", s.PrevSpan())
	}
	s.SetPos(mark + 1)
	if s.Kind() != Comma {
		t.Fatalf("after SetPos current = %v", s.Kind())
	}
	s.SetPos(99)
	if !s.AtEOF() {
		t.Fatal("SetPos must clamp")
	}
}

func TestStream_PrevSpanAtStart(t *testing.T) {
	s := NewStream(mkToks(Word, EOF))
	if sp := s.PrevSpan(); !sp.Empty() || sp.Start != 0 {
		t.Fatalf("PrevSpan at start = %v", sp)
	}
}
