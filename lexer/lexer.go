package lexer

import (
	"gqlfront/diag"
	"gqlfront/source"
	"gqlfront/token"
)

// Lexer turns a source file into tokens. It never fails: malformed input
// yields Invalid tokens (or best-effort literals) plus diagnostics, and the
// scan resumes right after the bad lexeme.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	hold   []token.Trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading trivia attached.
// After the input is exhausted it returns EOF forever.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.EOF, Span: lx.emptySpan()}
		if len(lx.hold) > 0 {
			tok.Leading = lx.hold
			lx.hold = nil
		}
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case (ch == 'X' || ch == 'x') && lx.cursor.PeekAt(1) == '\'':
		tok = lx.scanByteString()
	case ch == '@' && lx.cursor.PeekAt(1) == '\'':
		tok = lx.scanString()
	case isIdentStartByte(ch), ch >= utf8RuneSelf:
		tok = lx.scanWord()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		tok = lx.scanNumber()
	case ch == '\'':
		tok = lx.scanString()
	case ch == '"' || ch == '`':
		tok = lx.scanQuotedIdent()
	case ch == '$':
		tok = lx.scanParam()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

// Tokenize scans the whole file. The result always ends with exactly one
// EOF token.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// TokenizeString scans src as an anonymous virtual file and returns the
// tokens together with the lexical diagnostics in discovery order.
func TokenizeString(src string) ([]token.Token, []diag.Diagnostic) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<input>", []byte(src)))
	bag := diag.NewBag(0)
	toks := Tokenize(file, Options{Reporter: diag.BagReporter{Bag: bag}})
	return toks, bag.Items()
}
