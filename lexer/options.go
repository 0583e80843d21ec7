package lexer

import (
	"gqlfront/diag"
	"gqlfront/source"
)

// DefaultMaxTokenLength bounds words, numbers and delimited identifiers.
const DefaultMaxTokenLength = 1 << 16

type Options struct {
	// Reporter receives lexical diagnostics. It may be nil; lexing continues
	// either way.
	Reporter diag.Reporter
	// MaxTokenLength caps a single word, number or delimited identifier.
	// Zero selects DefaultMaxTokenLength.
	MaxTokenLength int
	// SkipNFCCheck disables the normalization warning for identifiers.
	SkipNFCCheck bool
}

func (o Options) maxTokenLength() uint32 {
	if o.MaxTokenLength <= 0 || o.MaxTokenLength > 1<<30 {
		return DefaultMaxTokenLength
	}
	return uint32(o.MaxTokenLength)
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(diag.NewError(code, sp, msg))
	}
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(diag.NewWarning(code, sp, msg))
	}
}
