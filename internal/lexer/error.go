package lexer

import (
	"errors"
	"fmt"
)

// ErrIdentRejected is the identifier validation failure. The message text,
// capital Ls included, is part of the tool's contract.
var ErrIdentRejected = errors.New("'l' faiLs the ELi Linter")

// Error is a positioned lexical error. Pos is the cursor position at the
// point of failure. The underlying cause is either ErrIdentRejected or a
// strconv parse error for a malformed numeric literal, reachable through
// errors.Is and errors.As.
type Error struct {
	Pos Position
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error at %s: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
