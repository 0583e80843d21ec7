package ast

// BinaryOp enumerates binary operators in precedence groups.
type BinaryOp uint8

const (
	OpOr BinaryOp = iota
	OpXor
	OpAnd
	OpEq
	OpNotEq
	OpLt
	OpGt
	OpLtEq
	OpGtEq
	OpConcat
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

var binaryOpNames = [...]string{
	OpOr:     "OR",
	OpXor:    "XOR",
	OpAnd:    "AND",
	OpEq:     "=",
	OpNotEq:  "<>",
	OpLt:     "<",
	OpGt:     ">",
	OpLtEq:   "<=",
	OpGtEq:   ">=",
	OpConcat: "||",
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpMod:    "%",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

type UnaryOp uint8

const (
	OpNot UnaryOp = iota
	OpPlus
	OpNeg
)

func (op UnaryOp) String() string {
	switch op {
	case OpNot:
		return "NOT"
	case OpPlus:
		return "+"
	case OpNeg:
		return "-"
	default:
		return "?"
	}
}

// IsKind selects the predicate of an IS expression.
type IsKind uint8

const (
	IsNull IsKind = iota
	IsTrue
	IsFalse
	IsUnknown
	IsNormalized
	IsDirected
	IsLabeled
	IsTyped
	IsSourceOf
	IsDestinationOf
)

var isKindNames = [...]string{
	IsNull:          "NULL",
	IsTrue:          "TRUE",
	IsFalse:         "FALSE",
	IsUnknown:       "UNKNOWN",
	IsNormalized:    "NORMALIZED",
	IsDirected:      "DIRECTED",
	IsLabeled:       "LABELED",
	IsTyped:         "TYPED",
	IsSourceOf:      "SOURCE OF",
	IsDestinationOf: "DESTINATION OF",
}

func (k IsKind) String() string {
	if int(k) < len(isKindNames) {
		return isKindNames[k]
	}
	return "?"
}

type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitByteString
	LitTrue
	LitFalse
	LitUnknown
	LitNull
	LitTemporal // DATE '…', TIME '…', DURATION '…' and friends
)

var litKindNames = [...]string{
	LitInt:        "int",
	LitFloat:      "float",
	LitString:     "string",
	LitByteString: "bytes",
	LitTrue:       "true",
	LitFalse:      "false",
	LitUnknown:    "unknown",
	LitNull:       "null",
	LitTemporal:   "temporal",
}

func (k LitKind) String() string {
	if int(k) < len(litKindNames) {
		return litKindNames[k]
	}
	return "?"
}

// SetQuantifier is the optional ALL/DISTINCT of RETURN, SELECT, aggregates
// and set operators.
type SetQuantifier uint8

const (
	QuantNone SetQuantifier = iota
	QuantAll
	QuantDistinct
)

func (q SetQuantifier) String() string {
	switch q {
	case QuantAll:
		return "ALL"
	case QuantDistinct:
		return "DISTINCT"
	default:
		return ""
	}
}

// SetOp joins the operands of a composite query.
type SetOp uint8

const (
	SetUnion SetOp = iota
	SetExcept
	SetIntersect
	SetOtherwise
	SetNext
)

func (op SetOp) String() string {
	switch op {
	case SetUnion:
		return "UNION"
	case SetExcept:
		return "EXCEPT"
	case SetIntersect:
		return "INTERSECT"
	case SetOtherwise:
		return "OTHERWISE"
	case SetNext:
		return "NEXT"
	default:
		return "?"
	}
}

// EdgeDir is the orientation of an edge pattern.
type EdgeDir uint8

const (
	EdgeRight             EdgeDir = iota // -[ ]->  ->
	EdgeLeft                             // <-[ ]-  <-
	EdgeUndirected                       // ~[ ]~   ~
	EdgeLeftOrUndirected                 // <~[ ]~  <~
	EdgeRightOrUndirected                // ~[ ]~>  ~>
	EdgeLeftOrRight                      // <-[ ]-> <->
	EdgeAny                              // -[ ]-   -
)

var edgeDirNames = [...]string{
	EdgeRight:             "->",
	EdgeLeft:              "<-",
	EdgeUndirected:        "~",
	EdgeLeftOrUndirected:  "<~",
	EdgeRightOrUndirected: "~>",
	EdgeLeftOrRight:       "<->",
	EdgeAny:               "-",
}

func (d EdgeDir) String() string {
	if int(d) < len(edgeDirNames) {
		return edgeDirNames[d]
	}
	return "?"
}

// PathMode restricts which paths a pattern matches.
type PathMode uint8

const (
	ModeNone PathMode = iota
	ModeWalk
	ModeTrail
	ModeSimple
	ModeAcyclic
)

func (m PathMode) String() string {
	switch m {
	case ModeWalk:
		return "WALK"
	case ModeTrail:
		return "TRAIL"
	case ModeSimple:
		return "SIMPLE"
	case ModeAcyclic:
		return "ACYCLIC"
	default:
		return ""
	}
}

// SearchKind is the path search prefix of a path pattern.
type SearchKind uint8

const (
	SearchNone SearchKind = iota
	SearchAll
	SearchAny
	SearchAllShortest
	SearchAnyShortest
	SearchCountedShortest
	SearchCountedShortestGroups
)

func (k SearchKind) String() string {
	switch k {
	case SearchAll:
		return "ALL"
	case SearchAny:
		return "ANY"
	case SearchAllShortest:
		return "ALL SHORTEST"
	case SearchAnyShortest:
		return "ANY SHORTEST"
	case SearchCountedShortest:
		return "SHORTEST"
	case SearchCountedShortestGroups:
		return "SHORTEST GROUPS"
	default:
		return ""
	}
}

// MatchMode is the edge/element uniqueness mode of MATCH.
type MatchMode uint8

const (
	MatchModeNone MatchMode = iota
	MatchRepeatableElements
	MatchDifferentEdges
)

type QuantKind uint8

const (
	QuantStar     QuantKind = iota // *
	QuantPlus                      // +
	QuantQuestion                  // ?
	QuantRange                     // {n}, {n,}, {,m}, {n,m}
)

type SortDir uint8

const (
	SortDefault SortDir = iota
	SortAsc
	SortDesc
)

type NullsOrder uint8

const (
	NullsDefault NullsOrder = iota
	NullsFirst
	NullsLast
)

type DetachMode uint8

const (
	DetachDefault DetachMode = iota
	DetachYes
	DetachNo
)

type TxMode uint8

const (
	TxDefault TxMode = iota
	TxReadOnly
	TxReadWrite
)
