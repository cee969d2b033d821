package lexer

// Stream is a lazy, single-pass view over a Lexer's tokens. It terminates
// at end of input or at the first lexical error; the error is retained and
// reported by Err, in the manner of bufio.Scanner, so the caller owns the
// logging policy. A Stream is not restartable.
type Stream struct {
	lex  *Lexer
	err  error
	done bool
}

// Stream returns a lazy token sequence driving l. The lexer must not be
// pulled from directly while the stream is in use.
func (l *Lexer) Stream() *Stream {
	return &Stream{lex: l}
}

// Next returns the next token. ok is false once the input is exhausted or
// lexing has failed, and stays false on further calls; check Err to tell
// the two apart.
func (s *Stream) Next() (LexedToken, bool) {
	if s.done {
		return LexedToken{}, false
	}

	tok, err := s.lex.Lex()
	if err != nil {
		s.err = err
		s.done = true
		return LexedToken{}, false
	}
	if tok.Token.Type == TokenEOF {
		s.done = true
		return LexedToken{}, false
	}
	return tok, true
}

// Err returns the error that terminated the stream, or nil if the stream
// is still live or ended at EOF.
func (s *Stream) Err() error {
	return s.err
}

// Collect drains the remaining tokens into a slice, stopping at end of
// input or at the first error.
func (s *Stream) Collect() []LexedToken {
	var toks []LexedToken
	for {
		tok, ok := s.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}
