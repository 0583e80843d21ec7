package parser

import (
	"fortio.org/safecast"

	"gqlfront/ast"
	"gqlfront/diag"
	"gqlfront/lexer"
	"gqlfront/source"
	"gqlfront/token"
)

// DefaultMaxDepth bounds recursive descent when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

type Options struct {
	// MaxDepth caps the nesting of expressions, patterns, types and nested
	// queries. Zero selects DefaultMaxDepth.
	MaxDepth int
	// MaxErrors stops recording error diagnostics after this many; zero
	// means no limit. Parsing always runs to the end of input.
	MaxErrors int
	// Reporter, if set, also receives every diagnostic as it is emitted.
	Reporter diag.Reporter
	// SkipNFCCheck disables the identifier normalization warning.
	SkipNFCCheck bool
}

// Result is the outcome of a parse. AST is never nil: empty input yields a
// Program without statements, and malformed input yields a tree with
// placeholders. Diagnostics are in discovery order: lexical ones first,
// then syntactic ones.
type Result struct {
	AST         *ast.Program
	Diagnostics []diag.Diagnostic
	// Tokens is the number of significant tokens, EOF excluded.
	Tokens int
}

// HasErrors reports whether any diagnostic has error severity.
func (r Result) HasErrors() bool {
	for i := range r.Diagnostics {
		if r.Diagnostics[i].IsError() {
			return true
		}
	}
	return false
}

// Parser holds the state of one parse. All state is local to the parse, so
// independent parses may run concurrently.
type Parser struct {
	s        *token.Stream
	file     *source.File
	opts     Options
	maxDepth int
	bag      *diag.Bag
	sink     *diag.DedupReporter

	depth    int
	depthHit bool

	errors   int
	limitHit bool
	// lastErrAt is the start offset of the last syntax error; a second
	// error at the same offset is a cascade and is dropped.
	lastErrAt int64
}

// Parse parses src as an anonymous in-memory file with default options.
func Parse(src string) Result {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<input>", []byte(src)))
	return ParseFile(file, Options{})
}

// ParseFile tokenizes and parses file.
func ParseFile(file *source.File, opts Options) Result {
	p := newParser(file, opts)
	toks := lexer.Tokenize(file, lexer.Options{
		Reporter:     diag.ReporterFunc(p.emit),
		SkipNFCCheck: opts.SkipNFCCheck,
	})
	return p.run(toks)
}

// ParseTokens parses an already tokenized file. toks must come from
// lexer.Tokenize on the same file.
func ParseTokens(file *source.File, toks []token.Token, opts Options) Result {
	return newParser(file, opts).run(toks)
}

func newParser(file *source.File, opts Options) *Parser {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	p := &Parser{
		file:      file,
		opts:      opts,
		maxDepth:  maxDepth,
		bag:       diag.NewBag(0),
		lastErrAt: -1,
	}
	p.sink = diag.NewDedupReporter(diag.ReporterFunc(func(d diag.Diagnostic) {
		p.bag.Add(d)
		if opts.Reporter != nil {
			opts.Reporter.Report(d)
		}
	}))
	return p
}

func (p *Parser) run(toks []token.Token) Result {
	p.s = token.NewStream(toks)
	prog := p.parseProgram()
	ast.Enclose(prog)
	return Result{
		AST:         prog,
		Diagnostics: p.bag.Items(),
		Tokens:      p.s.Len(),
	}
}

// parseProgram is the top-level loop:
//
//	program := [statement (';' statement)*] [';'] EOF
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{Base: ast.At(p.fileSpan())}
	afterSep := true
	for !p.at(token.EOF) {
		start := p.s.Pos()

		if p.at(token.Semicolon) {
			tok := p.advance()
			if afterSep {
				p.warnAt(diag.SynEmptyStatement, tok.Span, "empty statement")
			}
			afterSep = true
			continue
		}

		prog.Stmts = append(prog.Stmts, p.parseStatement())
		afterSep = false

		switch {
		case p.at(token.EOF):
		case p.at(token.Semicolon):
			p.advance()
			afterSep = true
		case p.startsStatement():
			p.errAt(diag.SynExpectSemicolon, p.s.PrevSpan().ZeroideToEnd(),
				"expected ';' before "+p.tok().Describe())
		default:
			if bad := p.skipTrailing(); bad != nil {
				prog.Stmts = append(prog.Stmts, bad)
			}
		}

		if !p.guardProgress(start) {
			break
		}
	}
	return prog
}

// skipTrailing reports input left over after a statement and skips it up
// to the next statement boundary. The skipped tokens become a BadStmt.
func (p *Parser) skipTrailing() ast.Stmt {
	tok := p.tok()
	if tok.Kind == token.RParen || tok.Kind == token.RBracket || tok.Kind == token.RBrace {
		p.errAt(diag.SynUnexpectedToken, tok.Span, "unmatched "+tok.Kind.String())
		p.advance()
		return &ast.BadStmt{Base: ast.At(tok.Span), Reason: "unmatched closing delimiter"}
	}
	p.errAt(diag.SynTrailingInput, tok.Span, "unexpected "+tok.Describe()+" after statement")
	sp, ok := p.recover(syncTop)
	if !ok {
		return nil
	}
	return &ast.BadStmt{Base: ast.At(sp), Reason: "unexpected input after statement"}
}

func (p *Parser) fileSpan() source.Span {
	end, err := safecast.Conv[uint32](len(p.file.Content))
	if err != nil {
		end = ^uint32(0)
	}
	return source.Span{File: p.file.ID, Start: 0, End: end}
}
