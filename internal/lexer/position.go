// Package lexer provides lexical analysis (tokenization) for Eli source text.
// It transforms raw source into a stream of classified tokens that a parser
// can consume, tracking positions for diagnostics.
package lexer

import "strconv"

// Position is a location in the source text.
//
// Line is 0-based and advances on every newline character ('\n' or '\r')
// consumed. Col is a raw character count from the start of lexing: it is
// incremented once per character consumed, never reset at line boundaries,
// and keeps advancing through comments and literal scans. Diagnostics
// depend on both behaviors staying exactly as they are.
type Position struct {
	Line int
	Col  int
}

// String returns the position as "line:col".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

// Before reports whether p is located before other in the source.
// Col is an absolute character offset, so it orders positions on its own.
func (p Position) Before(other Position) bool {
	return p.Col < other.Col
}

// After reports whether p is located after other in the source.
func (p Position) After(other Position) bool {
	return p.Col > other.Col
}
