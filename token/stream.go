package token

import "gqlfront/source"

// Stream is a cursor over a token sequence that ends in EOF. Reads past the
// end return the final EOF token indefinitely, so callers never bounds-check.
// Advance only moves forward; SetPos exists for bounded backtracking at known
// disambiguation points.
type Stream struct {
	toks []Token
	pos  int
	eof  Token
}

// NewStream wraps toks. A missing trailing EOF is synthesized at the end of
// the last token.
func NewStream(toks []Token) *Stream {
	s := &Stream{toks: toks}
	if n := len(toks); n > 0 && toks[n-1].Kind == EOF {
		s.eof = toks[n-1]
		s.toks = toks[:n-1]
	} else if n > 0 {
		end := toks[n-1].Span.ZeroideToEnd()
		s.eof = Token{Kind: EOF, Span: end}
	} else {
		s.eof = Token{Kind: EOF}
	}
	return s
}

// Current returns the token under the cursor.
func (s *Stream) Current() Token {
	return s.Peek(0)
}

// Peek returns the token n positions ahead of the cursor.
func (s *Stream) Peek(n int) Token {
	i := s.pos + n
	if i < 0 || i >= len(s.toks) {
		return s.eof
	}
	return s.toks[i]
}

// Kind is shorthand for Current().Kind.
func (s *Stream) Kind() Kind {
	if s.pos < len(s.toks) {
		return s.toks[s.pos].Kind
	}
	return EOF
}

// Advance consumes the current token and returns it. At EOF it returns EOF
// without moving.
func (s *Stream) Advance() Token {
	if s.pos >= len(s.toks) {
		return s.eof
	}
	t := s.toks[s.pos]
	s.pos++
	return t
}

// Pos returns the number of tokens consumed so far.
func (s *Stream) Pos() int {
	return s.pos
}

// SetPos moves the cursor to a position previously returned by Pos.
func (s *Stream) SetPos(pos int) {
	switch {
	case pos < 0:
		s.pos = 0
	case pos > len(s.toks):
		s.pos = len(s.toks)
	default:
		s.pos = pos
	}
}

// PrevSpan returns the span of the last consumed token, or an empty span at
// the start of the input.
func (s *Stream) PrevSpan() source.Span {
	if s.pos == 0 {
		if len(s.toks) > 0 {
			return s.toks[0].Span.ZeroideToStart()
		}
		return s.eof.Span.ZeroideToStart()
	}
	return s.toks[s.pos-1].Span
}

// AtEOF reports whether all tokens were consumed.
func (s *Stream) AtEOF() bool {
	return s.pos >= len(s.toks)
}

// Consumed returns the tokens in [from, Pos()).
func (s *Stream) Consumed(from int) []Token {
	if from < 0 {
		from = 0
	}
	if from > s.pos {
		return nil
	}
	return s.toks[from:s.pos]
}

// Len returns the number of tokens excluding the EOF sentinel.
func (s *Stream) Len() int {
	return len(s.toks)
}

// EOFToken returns the sentinel.
func (s *Stream) EOFToken() Token {
	return s.eof
}
