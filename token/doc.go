// Package token defines GQL token kinds, the three-tier keyword table and
// the Stream cursor the parser reads from.
//
// The tokenizer never decides whether a word is a keyword or an identifier:
// it emits a Word carrying Keyword and Tier metadata and leaves the choice to
// the grammar function that consumes it.
package token
