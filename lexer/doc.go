// Package lexer converts GQL source text into tokens.
//
// The scan is a single left-to-right pass with longest-match semantics. It
// is total: unknown characters, unterminated strings, identifiers and
// comments, malformed numbers and bad escapes are reported through
// Options.Reporter and the scan resumes right after the offending lexeme.
// The token sequence always ends with exactly one EOF token.
//
// Whitespace and comments ("//", "--", "/* */") are attached to the
// following token as leading trivia.
package lexer
