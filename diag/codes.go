package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadNumber           Code = 1004
	LexTokenTooLong        Code = 1005
	LexUnterminatedIdent   Code = 1006
	LexBadEscape           Code = 1007
	LexEmptyIdent          Code = 1008
	LexNotNormalized       Code = 1009
	LexBadParameter        Code = 1010

	// syntax
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedParen      Code = 2002
	SynUnclosedBracket    Code = 2003
	SynUnclosedBrace      Code = 2004
	SynUnclosedAngle      Code = 2005
	SynExpectSemicolon    Code = 2006
	SynExpectIdentifier   Code = 2007
	SynExpectExpression   Code = 2008
	SynExpectKeyword      Code = 2009
	SynExpectType         Code = 2010
	SynExpectPattern      Code = 2011
	SynExpectStatement    Code = 2012
	SynExpectClause       Code = 2013
	SynReservedIdent      Code = 2014
	SynPreReservedIdent   Code = 2015
	SynNoProgress         Code = 2016
	SynTrailingInput      Code = 2017
	SynTrailingComma      Code = 2019
	SynBadQuantifier      Code = 2020
	SynBadEdge            Code = 2021
	SynExpectElementType  Code = 2023
	SynClauseOrder        Code = 2025
	SynEmptyStatement     Code = 2026
	SynAmbiguityFallback  Code = 2027 // not emitted: the parser resolves ambiguity by a fixed tie-break
	SynExpectLabel        Code = 2028
	SynExpectGraphRef     Code = 2029
	SynUnsupportedSyntax  Code = 2030
	SynExpectPropertyName Code = 2031

	// resource limits
	LimitInfo         Code = 2900
	LimitNestingDepth Code = 2901
	LimitTooManyDiags Code = 2902

	// tooling
	IOLoadFile Code = 3001
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown error",
	LexInfo:                "Lexical information",
	LexUnknownChar:         "Unknown character",
	LexUnterminatedString:  "Unterminated string",
	LexUnterminatedComment: "Unterminated bracketed comment",
	LexBadNumber:           "Malformed number",
	LexTokenTooLong:        "Token too long",
	LexUnterminatedIdent:   "Unterminated delimited identifier",
	LexBadEscape:           "Invalid escape sequence",
	LexEmptyIdent:          "Empty delimited identifier",
	LexNotNormalized:       "Identifier is not in NFC",
	LexBadParameter:        "Malformed parameter",
	SynInfo:                "Syntax information",
	SynUnexpectedToken:     "Unexpected token",
	SynUnclosedParen:       "Unclosed parenthesis",
	SynUnclosedBracket:     "Unclosed bracket",
	SynUnclosedBrace:       "Unclosed brace",
	SynUnclosedAngle:       "Unclosed angle bracket",
	SynExpectSemicolon:     "Expected statement terminator",
	SynExpectIdentifier:    "Expected identifier",
	SynExpectExpression:    "Expected expression",
	SynExpectKeyword:       "Expected keyword",
	SynExpectType:          "Expected type",
	SynExpectPattern:       "Expected pattern",
	SynExpectStatement:     "Expected statement",
	SynExpectClause:        "Expected clause",
	SynReservedIdent:       "Reserved word used as identifier",
	SynPreReservedIdent:    "Pre-reserved word used as identifier",
	SynNoProgress:          "Parser made no progress",
	SynTrailingInput:       "Unexpected trailing input",
	SynTrailingComma:       "Trailing comma",
	SynBadQuantifier:       "Malformed quantifier",
	SynBadEdge:             "Malformed edge pattern",
	SynExpectElementType:   "Expected element type",
	SynClauseOrder:         "Clause out of order",
	SynEmptyStatement:      "Empty statement",
	SynAmbiguityFallback:   "Ambiguous construct",
	SynExpectLabel:         "Expected label expression",
	SynExpectGraphRef:      "Expected graph reference",
	SynUnsupportedSyntax:   "Unsupported syntax",
	SynExpectPropertyName:  "Expected property name",
	LimitInfo:              "Resource limit information",
	LimitNestingDepth:      "Nesting depth limit exceeded",
	LimitTooManyDiags:      "Too many diagnostics",
	IOLoadFile:             "Failed to load file",
}

// ID returns the stable short identifier of the code, e.g. SYN2001.
func (c Code) ID() string {
	ic := int(c)
	switch {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2900 && ic < 3000:
		return fmt.Sprintf("LIM%04d", ic)
	case ic >= 2000 && ic < 2900:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
