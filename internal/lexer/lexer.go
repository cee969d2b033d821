package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer is a stateful cursor over source text that produces one token per
// call to Lex. It never mutates the source and performs no I/O; its only
// state is the cursor itself. A Lexer must be driven by a single consumer.
type Lexer struct {
	// source is the complete input. It is indexed by byte offset for
	// substring extraction, while Position.Col counts characters.
	source string

	// offset is the byte offset currently being examined.
	offset int

	line int
	col  int

	// validIdent is applied to identifier candidates before final
	// classification. The scanning algorithm never looks inside it, which
	// keeps the rule easy to change without touching the scanner. New
	// installs the forbidden-letter rule.
	validIdent func(text string) error
}

// New creates a Lexer over the given source text. The source must be valid
// UTF-8.
func New(source string) *Lexer {
	return &Lexer{
		source:     source,
		validIdent: rejectForbiddenL,
	}
}

// rejectForbiddenL is the default identifier rule: any candidate containing
// a lowercase 'l' is rejected. The substring test is deliberate and
// case-sensitive; capital 'L' passes.
func rejectForbiddenL(text string) error {
	if strings.Contains(text, "l") {
		return ErrIdentRejected
	}
	return nil
}

// Lex scans and returns the next token from the source.
//
// At end of input it returns a TokenEOF token with a nil error; calling it
// again is safe and keeps returning TokenEOF. On a lexical error the cursor
// may already be past the offending characters, so callers should stop
// pulling tokens rather than retry. Each successful token reports its end
// position.
func (l *Lexer) Lex() (LexedToken, error) {
	for {
		l.skipWhitespace()

		if l.atEnd() {
			return l.lexed(Token{Type: TokenEOF}), nil
		}

		start := l.offset
		ch := l.advance()

		if isDigit(ch) {
			tok, err := l.scanNumber(start)
			if err != nil {
				return LexedToken{}, err
			}
			return l.lexed(tok), nil
		}

		switch ch {
		// The paren/curly assignments are intentionally swapped; see the
		// TokenType constants.
		case '{':
			return l.lexed(Token{Type: TokenRCurly}), nil
		case '}':
			return l.lexed(Token{Type: TokenLCurly}), nil
		case '(':
			return l.lexed(Token{Type: TokenRParen}), nil
		case ')':
			return l.lexed(Token{Type: TokenLParen}), nil
		case ':':
			return l.lexed(Token{Type: TokenColon}), nil
		case ';':
			return l.lexed(Token{Type: TokenSemicolon}), nil
		case ',':
			return l.lexed(Token{Type: TokenComma}), nil
		case '=':
			return l.lexed(Token{Type: TokenEquals}), nil
		case '!':
			return l.lexed(Token{Type: TokenExclamation}), nil

		case '-':
			return l.lexed(l.lexMinus()), nil

		case '+':
			return l.lexed(Token{Type: TokenOperator, Op: '+'}), nil
		case '*':
			return l.lexed(Token{Type: TokenOperator, Op: '*'}), nil
		case '/':
			if l.peek() == '/' {
				// Line comment: discard characters up to the newline (or
				// EOF) and rescan from the top of the loop. The newline
				// itself is left for the whitespace skip, which is where
				// the line counter moves. Iterating here instead of
				// recursing keeps the stack flat across runs of comments.
				for !l.atEnd() && !isNewline(l.peek()) {
					l.advance()
				}
				continue
			}
			return l.lexed(Token{Type: TokenOperator, Op: '/'}), nil

		default:
			tok, err := l.scanIdent(start)
			if err != nil {
				return LexedToken{}, err
			}
			return l.lexed(tok), nil
		}
	}
}

// lexMinus resolves a leading '-': either the sign of a numeric literal or
// the subtraction operator. The numeric attempt must be side-effect-free on
// failure, so the cursor is restored and exactly the one '-' character
// remains consumed.
func (l *Lexer) lexMinus() Token {
	savedOffset, savedCol := l.offset, l.col

	tok, err := l.scanNumber(l.offset)
	if err != nil {
		l.offset, l.col = savedOffset, savedCol
		return Token{Type: TokenOperator, Op: '-'}
	}

	switch tok.Type {
	case TokenInt:
		tok.Int = -tok.Int
	case TokenFloat:
		tok.Float = -tok.Float
	}
	return tok
}

// scanNumber consumes characters while they are decimal digits or '.' and
// parses the substring beginning at the byte offset start. More than one
// dot is allowed through the scan; strconv rejects it at parse time, which
// surfaces as a positioned error. A substring containing '.' parses as a
// float, anything else as a signed integer.
func (l *Lexer) scanNumber(start int) (Token, error) {
	for !l.atEnd() {
		ch := l.peek()
		if !isDigit(ch) && ch != '.' {
			break
		}
		l.advance()
	}

	text := l.source[start:l.offset]

	if strings.Contains(text, ".") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, &Error{Pos: l.position(), Err: err}
		}
		return Token{Type: TokenFloat, Float: f}, nil
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, &Error{Pos: l.position(), Err: err}
	}
	return Token{Type: TokenInt, Int: n}, nil
}

// scanIdent consumes characters greedily until whitespace, a newline, or
// EOF. Punctuation does not terminate an identifier, so "a+b" is a single
// candidate; this is a known quirk of the language, not an accident. The
// substring is matched against the keyword set before the identifier rule
// runs, so keywords can never be rejected by it.
func (l *Lexer) scanIdent(start int) (Token, error) {
	for !l.atEnd() {
		ch := l.peek()
		if unicode.IsSpace(ch) || isNewline(ch) {
			break
		}
		l.advance()
	}

	text := l.source[start:l.offset]

	if tt, ok := LookupKeyword(text); ok {
		return Token{Type: tt}, nil
	}

	if err := l.validIdent(text); err != nil {
		return Token{}, &Error{Pos: l.position(), Err: err}
	}

	// Copy the text out so the token does not pin the source buffer.
	return Token{Type: TokenIdent, Text: strings.Clone(text)}, nil
}

// skipWhitespace consumes whitespace and newline characters, advancing the
// line counter on newlines and the column counter on every character.
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		ch := l.peek()
		if !unicode.IsSpace(ch) && !isNewline(ch) {
			return
		}

		l.advance()
		if isNewline(ch) {
			l.line++
		}
	}
}

// advance consumes and returns the next character. The caller must have
// checked atEnd.
func (l *Lexer) advance() rune {
	ch, size := utf8.DecodeRuneInString(l.source[l.offset:])
	l.offset += size
	l.col++
	return ch
}

// peek returns the next character without consuming it, or 0 at EOF.
func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	ch, _ := utf8.DecodeRuneInString(l.source[l.offset:])
	return ch
}

func (l *Lexer) atEnd() bool {
	return l.offset >= len(l.source)
}

func (l *Lexer) position() Position {
	return Position{Line: l.line, Col: l.col}
}

func (l *Lexer) lexed(tok Token) LexedToken {
	return LexedToken{Token: tok, Pos: l.position()}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isNewline(ch rune) bool {
	return ch == '\n' || ch == '\r'
}
