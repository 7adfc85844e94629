package rvlang

import "iter"

const (
	msgUnterminatedString = "Strings must begin and end with single quotes"
	msgUnrecognized       = "Unrecognized character..."
)

type Scanner struct {
	src     string
	start   int
	current int
	line    int
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		src:  src,
		line: 1,
	}
}

// Tokens yields every token of src up to and including EOF.
func Tokens(src string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := NewScanner(src)
		for {
			token := s.ScanToken()
			if !yield(token) {
				return
			}
			if token.Kind == TokenEOF {
				return
			}
		}
	}
}

func (s *Scanner) ScanToken() Token {
	s.skipWhitespace()
	s.start = s.current

	if s.isDone() {
		return s.makeToken(TokenEOF)
	}

	c := s.advance()
	if isAlpha(c) {
		return s.identifier()
	}
	if isDigit(c) {
		return s.number()
	}

	switch c {
	case '(':
		return s.makeToken(TokenLParen)
	case ')':
		return s.makeToken(TokenRParen)
	case '{':
		return s.makeToken(TokenLBrace)
	case '}':
		return s.makeToken(TokenRBrace)
	case ';':
		return s.makeToken(TokenSemicolon)
	case ',':
		return s.makeToken(TokenComma)
	case '.':
		return s.makeToken(TokenDot)
	case '-':
		return s.makeToken(TokenMinus)
	case '+':
		return s.makeToken(TokenPlus)
	case '/':
		return s.makeToken(TokenSlash)
	case '*':
		return s.makeToken(TokenAsterisk)
	case '!':
		return s.makeToken(s.choose('=', TokenBangEqual, TokenBang))
	case '=':
		return s.makeToken(s.choose('=', TokenDoubleEqual, TokenEqual))
	case '<':
		return s.makeToken(s.choose('=', TokenLessEqual, TokenLess))
	case '>':
		return s.makeToken(s.choose('=', TokenGreaterEqual, TokenGreater))
	case '\'':
		return s.quoted()
	}

	return s.errorToken(msgUnrecognized)
}

func (s *Scanner) isDone() bool {
	return s.current >= len(s.src)
}

func (s *Scanner) advance() byte {
	s.current++
	return s.src[s.current-1]
}

func (s *Scanner) peek() byte {
	if s.isDone() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

func (s *Scanner) match(expected byte) bool {
	if s.isDone() || s.src[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) choose(next byte, matched, otherwise TokenKind) TokenKind {
	if s.match(next) {
		return matched
	}
	return otherwise
}

func (s *Scanner) makeToken(kind TokenKind) Token {
	return Token{
		Kind:   kind,
		Start:  s.start,
		Length: s.current - s.start,
		Line:   s.line,
	}
}

func (s *Scanner) errorToken(msg string) Token {
	return Token{
		Kind:    TokenError,
		Start:   s.start,
		Line:    s.line,
		Message: msg,
	}
}

func (s *Scanner) skipWhitespace() {
	for {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '-':
			if s.peekNext() != '-' {
				return
			}
			// comment to end of line
			for s.peek() != '\n' && !s.isDone() {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) identifier() Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	if kind, ok := keywords[s.src[s.start:s.current]]; ok {
		return s.makeToken(kind)
	}
	return s.makeToken(TokenIdentifier)
}

func (s *Scanner) number() Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	return s.makeToken(TokenNumber)
}

func (s *Scanner) quoted() Token {
	for s.peek() != '\'' && !s.isDone() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isDone() {
		return s.errorToken(msgUnterminatedString)
	}
	// closing quote
	s.advance()
	return s.makeToken(TokenString)
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '_' || c == '$'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
