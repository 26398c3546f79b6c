package token

import (
	"strings"
	"unicode"

	"github.com/474420502/xjsonpath/internal/xerr"
)

// Lexer turns a path string into a stream of Tokens with one-token
// lookahead, the minimum a recursive-descent parser needs to disambiguate
// e.g. ':' alone from a second ':' starting a slice step.
type Lexer struct {
	r      *Reader
	peeked *Token
}

func New(path string) *Lexer {
	return &Lexer{r: NewReader(path)}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked == nil {
		t, err := l.scan()
		if err != nil {
			return Token{}, err
		}
		l.peeked = &t
	}
	return *l.peeked, nil
}

// Next returns and consumes the next token.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t, nil
	}
	return l.scan()
}

func (l *Lexer) scan() (Token, error) {
	if l.r.Eof() {
		off := l.r.Offset()
		return Token{Kind: EOF, Start: off, End: off}, nil
	}

	start, ch, _ := l.r.Peek()

	switch {
	case ch == '$':
		l.r.Advance()
		return Token{Kind: Absolute, Start: start, End: start + 1}, nil
	case ch == '@':
		l.r.Advance()
		return Token{Kind: Relative, Start: start, End: start + 1}, nil
	case ch == '.':
		l.r.Advance()
		return Token{Kind: Dot, Start: start, End: start + 1}, nil
	case ch == '[':
		l.r.Advance()
		return Token{Kind: OpenArray, Start: start, End: start + 1}, nil
	case ch == ']':
		l.r.Advance()
		return Token{Kind: CloseArray, Start: start, End: start + 1}, nil
	case ch == '(':
		l.r.Advance()
		return Token{Kind: OpenParen, Start: start, End: start + 1}, nil
	case ch == ')':
		l.r.Advance()
		return Token{Kind: CloseParen, Start: start, End: start + 1}, nil
	case ch == '?':
		l.r.Advance()
		return Token{Kind: Question, Start: start, End: start + 1}, nil
	case ch == ',':
		l.r.Advance()
		return Token{Kind: Comma, Start: start, End: start + 1}, nil
	case ch == '*':
		l.r.Advance()
		return Token{Kind: Asterisk, Start: start, End: start + 1}, nil
	case ch == ':':
		l.r.Advance()
		return Token{Kind: Split, Start: start, End: start + 1}, nil
	case ch == '=':
		l.r.Advance()
		if _, ch2, ok := l.r.Peek(); ok && ch2 == '=' {
			l.r.Advance()
			return Token{Kind: Equal, Start: start, End: start + 2}, nil
		}
		return Token{}, xerr.Syntax(start, "expected '==', found a bare '='")
	case ch == '!':
		l.r.Advance()
		if _, ch2, ok := l.r.Peek(); ok && ch2 == '=' {
			l.r.Advance()
			return Token{Kind: NotEqual, Start: start, End: start + 2}, nil
		}
		return Token{}, xerr.Syntax(start, "expected '!=' after '!'")
	case ch == '<':
		l.r.Advance()
		if _, ch2, ok := l.r.Peek(); ok && ch2 == '=' {
			l.r.Advance()
			return Token{Kind: LessEq, Start: start, End: start + 2}, nil
		}
		return Token{Kind: Less, Start: start, End: start + 1}, nil
	case ch == '>':
		l.r.Advance()
		if _, ch2, ok := l.r.Peek(); ok && ch2 == '=' {
			l.r.Advance()
			return Token{Kind: GreaterEq, Start: start, End: start + 2}, nil
		}
		return Token{Kind: Greater, Start: start, End: start + 1}, nil
	case ch == '&':
		l.r.Advance()
		if _, ch2, ok := l.r.Peek(); ok && ch2 == '&' {
			l.r.Advance()
			return Token{Kind: And, Start: start, End: start + 2}, nil
		}
		return Token{}, xerr.Syntax(start, "expected '&&', found a bare '&'")
	case ch == '|':
		l.r.Advance()
		if _, ch2, ok := l.r.Peek(); ok && ch2 == '|' {
			l.r.Advance()
			return Token{Kind: Or, Start: start, End: start + 2}, nil
		}
		return Token{}, xerr.Syntax(start, "expected '||', found a bare '|'")
	case ch == '"':
		return l.scanQuoted('"', DoubleQuoted)
	case ch == '\'':
		return l.scanQuoted('\'', SingleQuoted)
	case isWhitespace(ch):
		_, runes := l.r.TakeWhile(isWhitespace)
		return Token{Kind: Whitespace, Start: start, End: start + len(runes)}, nil
	case isKeyRune(ch):
		_, runes := l.r.TakeWhile(isKeyRune)
		lit := string(runes)
		return Token{Kind: Key, Start: start, End: start + len(runes), Literal: lit}, nil
	default:
		return Token{}, xerr.Syntax(start, "unexpected character %q", ch)
	}
}

func (l *Lexer) scanQuoted(quote rune, kind Kind) (Token, error) {
	startOff, _, _ := l.r.Advance() // consume opening quote
	var sb strings.Builder
	for {
		off, ch, ok := l.r.Peek()
		if !ok {
			return Token{}, xerr.Eof("unterminated quoted string starting at offset %d", startOff)
		}
		if ch == '\\' {
			l.r.Advance()
			_, esc, ok2 := l.r.Advance()
			if !ok2 {
				return Token{}, xerr.Eof("unterminated escape in quoted string starting at offset %d", startOff)
			}
			switch esc {
			case '\\':
				sb.WriteRune('\\')
			case '"':
				sb.WriteRune('"')
			case '\'':
				sb.WriteRune('\'')
			default:
				return Token{}, xerr.Syntax(off, "invalid escape sequence '\\%c'", esc)
			}
			continue
		}
		if ch == quote {
			l.r.Advance()
			return Token{Kind: kind, Start: startOff, End: off + 1, Literal: sb.String()}, nil
		}
		l.r.Advance()
		sb.WriteRune(ch)
	}
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// isKeyRune matches both bareword object keys and the digits/sign of a
// numeric bracket literal; the parser decides which interpretation applies.
func isKeyRune(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_' || ch == '-'
}
