package token

// Kind represents the lexical category of a token. Keywords are not kinds:
// every word is a Word token classified by Keyword and Tier.
type Kind uint8

const (
	// Invalid marks an erroneous lexeme; a diagnostic was emitted for it.
	Invalid Kind = iota
	// EOF terminates every token sequence.
	EOF

	Word          // regular identifier or keyword
	QuotedIdent   // "delimited" or `delimited` identifier; Text holds the unescaped name
	IntLit        // 42, 0x2A, 0o52, 0b101010, 1_000
	FloatLit      // 1.5, .5, 1e3, 2.0f, 3m
	StringLit     // 'text', @'raw'; Text holds the unescaped value
	ByteStringLit // X'0AFF'
	Param         // $name or $"name"; Text holds the name
	SubstParam    // $$name

	LParen     // (
	RParen     // )
	LBracket   // [
	RBracket   // ]
	LBrace     // {
	RBrace     // }
	Comma      // ,
	Semicolon  // ;
	Dot        // .
	DotDot     // ..
	Colon      // :
	ColonColon // ::

	Eq          // =
	NotEq       // <>
	Lt          // <
	Gt          // >
	LtEq        // <=
	GtEq        // >=
	Plus        // +
	Minus       // -
	Star        // *
	Slash       // /
	Percent     // %
	Amp         // &
	Pipe        // |
	Bang        // !
	Question    // ?
	Tilde       // ~
	Caret       // ^
	Concat      // ||
	FatArrow    // =>
	MultisetAlt // |+|

	RightArrow // ->
	LeftArrow  // <-
	BothArrow  // <->
	LeftTilde  // <~
	RightTilde // ~>

	kindCount
)

var kindNames = [kindCount]string{
	Invalid:       "invalid token",
	EOF:           "end of input",
	Word:          "word",
	QuotedIdent:   "delimited identifier",
	IntLit:        "integer literal",
	FloatLit:      "numeric literal",
	StringLit:     "string literal",
	ByteStringLit: "byte string literal",
	Param:         "parameter",
	SubstParam:    "substituted parameter",
	LParen:        "'('",
	RParen:        "')'",
	LBracket:      "'['",
	RBracket:      "']'",
	LBrace:        "'{'",
	RBrace:        "'}'",
	Comma:         "','",
	Semicolon:     "';'",
	Dot:           "'.'",
	DotDot:        "'..'",
	Colon:         "':'",
	ColonColon:    "'::'",
	Eq:            "'='",
	NotEq:         "'<>'",
	Lt:            "'<'",
	Gt:            "'>'",
	LtEq:          "'<='",
	GtEq:          "'>='",
	Plus:          "'+'",
	Minus:         "'-'",
	Star:          "'*'",
	Slash:         "'/'",
	Percent:       "'%'",
	Amp:           "'&'",
	Pipe:          "'|'",
	Bang:          "'!'",
	Question:      "'?'",
	Tilde:         "'~'",
	Caret:         "'^'",
	Concat:        "'||'",
	FatArrow:      "'=>'",
	MultisetAlt:   "'|+|'",
	RightArrow:    "'->'",
	LeftArrow:     "'<-'",
	BothArrow:     "'<->'",
	LeftTilde:     "'<~'",
	RightTilde:    "'~>'",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown token"
}

// IsOperator reports whether k is punctuation or an operator.
func (k Kind) IsOperator() bool {
	return k >= LParen && k < kindCount
}

// IsLiteral reports whether k is a numeric, string or byte string literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case IntLit, FloatLit, StringLit, ByteStringLit:
		return true
	default:
		return false
	}
}

// Closer returns the closing delimiter matching an opening one.
func (k Kind) Closer() (Kind, bool) {
	switch k {
	case LParen:
		return RParen, true
	case LBracket:
		return RBracket, true
	case LBrace:
		return RBrace, true
	default:
		return Invalid, false
	}
}
