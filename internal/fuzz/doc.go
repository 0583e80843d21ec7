// Package fuzztests houses Go fuzz harnesses for the GQL front-end
// (source -> lexer -> parser). They check that every input yields a token
// stream ending in EOF and a tree, never a panic or a hang.
package fuzztests
