package parser

import "github.com/k0kubun/rbparse/encoding"

// Scanner advances through a borrowed source buffer, producing one Token
// per call to Next. It never copies source text; every Token it returns is
// a span of byte offsets into source. Out-of-range reads are treated as a
// NUL byte, matching spec behavior for end-of-source lookahead.
type Scanner struct {
	source []byte
	pos    int
	line   int
	enc    encoding.Set
}

// New returns a Scanner positioned at the start of source, using enc to
// decide which bytes continue an identifier.
func New(source []byte, enc encoding.Set) *Scanner {
	return &Scanner{source: source, line: 1, enc: enc}
}

// Line reports the current 1-based line: one more than the number of '\n'
// bytes scanned so far.
func (s *Scanner) Line() int { return s.line }

func (s *Scanner) byteAt(i int) byte {
	if i < 0 || i >= len(s.source) {
		return 0
	}
	return s.source[i]
}

func (s *Scanner) peek(offset int) byte { return s.byteAt(s.pos + offset) }

// advance consumes and returns the byte at pos, unconditionally moving the
// cursor forward even past end-of-source (peek there keeps returning \0).
func (s *Scanner) advance() byte {
	b := s.byteAt(s.pos)
	s.pos++
	return b
}

// match consumes the byte at pos if it equals want, reporting whether it did.
func (s *Scanner) match(want byte) bool {
	if s.byteAt(s.pos) == want {
		s.pos++
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (s *Scanner) isIdentStart(b byte) bool {
	return b == '_' || s.enc.IsAlnum(b)
}

// Next scans and returns the next token, advancing the cursor past it.
func (s *Scanner) Next() Token {
	for {
		start := s.pos
		c := s.peek(0)

		switch {
		case c == 0 || c == 0x04 || c == 0x1A:
			s.pos++
			return Token{EOF, start, start}
		case c == ' ' || c == '\t' || c == '\f' || c == '\r' || c == '\v':
			for {
				c = s.peek(0)
				if c == ' ' || c == '\t' || c == '\f' || c == '\r' || c == '\v' {
					s.pos++
					continue
				}
				break
			}
			continue
		case c == '\n':
			for s.peek(0) == '\n' {
				s.line++
				s.pos++
			}
			return Token{NEWLINE, start, s.pos}
		}

		switch c {
		case ',':
			s.pos++
			return Token{COMMA, start, s.pos}
		case ';':
			s.pos++
			return Token{SEMICOLON, start, s.pos}
		case ':':
			s.pos++
			return Token{COLON, start, s.pos}
		case '?':
			s.pos++
			return Token{QUESTION_MARK, start, s.pos}
		case '(':
			s.pos++
			return Token{LEFT_PARENTHESIS, start, s.pos}
		case ')':
			s.pos++
			return Token{RIGHT_PARENTHESIS, start, s.pos}
		case '[':
			s.pos++
			return Token{LEFT_BRACKET, start, s.pos}
		case ']':
			s.pos++
			return Token{RIGHT_BRACKET, start, s.pos}
		case '~':
			s.pos++
			return Token{TILDE, start, s.pos}
		case '=':
			s.pos++
			if s.match('~') {
				return Token{EQUAL_TILDE, start, s.pos}
			}
			if s.match('=') {
				if s.match('=') {
					return Token{TRIPLE_EQUAL, start, s.pos}
				}
				return Token{DOUBLE_EQUAL, start, s.pos}
			}
			return Token{EQUAL, start, s.pos}
		case '<':
			s.pos++
			if s.match('<') {
				if s.match('=') {
					return Token{SHIFT_LEFT_EQUAL, start, s.pos}
				}
				return Token{SHIFT_LEFT, start, s.pos}
			}
			if s.match('=') {
				if s.match('>') {
					return Token{COMPARE, start, s.pos}
				}
				return Token{LESS_EQUAL, start, s.pos}
			}
			return Token{LESS, start, s.pos}
		case '>':
			s.pos++
			if s.match('>') {
				if s.match('=') {
					return Token{SHIFT_RIGHT_EQUAL, start, s.pos}
				}
				return Token{SHIFT_RIGHT, start, s.pos}
			}
			if s.match('=') {
				return Token{GREATER_EQUAL, start, s.pos}
			}
			return Token{GREATER, start, s.pos}
		case '+':
			s.pos++
			if s.match('=') {
				return Token{PLUS_EQUAL, start, s.pos}
			}
			return Token{PLUS, start, s.pos}
		case '-':
			s.pos++
			if s.match('=') {
				return Token{MINUS_EQUAL, start, s.pos}
			}
			return Token{MINUS, start, s.pos}
		case '*':
			s.pos++
			if s.match('*') {
				if s.match('=') {
					return Token{DOUBLE_STAR_EQUAL, start, s.pos}
				}
				return Token{DOUBLE_STAR, start, s.pos}
			}
			if s.match('=') {
				return Token{STAR_EQUAL, start, s.pos}
			}
			return Token{STAR, start, s.pos}
		case '/':
			s.pos++
			if s.match('=') {
				return Token{SLASH_EQUAL, start, s.pos}
			}
			return Token{SLASH, start, s.pos}
		case '%':
			s.pos++
			if s.match('=') {
				return Token{PERCENT_EQUAL, start, s.pos}
			}
			return Token{PERCENT, start, s.pos}
		case '&':
			s.pos++
			if s.match('&') {
				if s.match('=') {
					return Token{DOUBLE_AMPERSAND_EQUAL, start, s.pos}
				}
				return Token{DOUBLE_AMPERSAND, start, s.pos}
			}
			if s.match('=') {
				return Token{AMPERSAND_EQUAL, start, s.pos}
			}
			return Token{AMPERSAND, start, s.pos}
		case '|':
			s.pos++
			if s.match('|') {
				if s.match('=') {
					return Token{DOUBLE_PIPE_EQUAL, start, s.pos}
				}
				return Token{DOUBLE_PIPE, start, s.pos}
			}
			if s.match('=') {
				return Token{PIPE_EQUAL, start, s.pos}
			}
			return Token{PIPE, start, s.pos}
		case '^':
			s.pos++
			if s.match('=') {
				return Token{CARET_EQUAL, start, s.pos}
			}
			return Token{CARET, start, s.pos}
		case '.':
			s.pos++
			// Bare '.' is not a token in this subset; it yields EOF. This is
			// a known limitation preserved from the reference scanner, not
			// a bug to fix here.
			if !s.match('.') {
				return Token{EOF, start, s.pos}
			}
			if s.match('.') {
				return Token{TRIPLE_DOT, start, s.pos}
			}
			return Token{DOUBLE_DOT, start, s.pos}
		case '!':
			s.pos++
			if s.match('~') {
				return Token{BANG_TILDE, start, s.pos}
			}
			if s.match('=') {
				return Token{BANG_EQUAL, start, s.pos}
			}
			return Token{BANG, start, s.pos}
		case '$':
			s.pos++
			return s.lexGlobalVariable(start)
		}

		if isDigit(c) {
			return s.lexInteger(start)
		}
		if s.isIdentStart(c) {
			return s.lexIdentifier(start)
		}

		// Zero-width identifier run: the current byte starts neither a
		// punctuator, digit, global variable, nor identifier. The scanner's
		// universal "I don't know" signal is EOF, without consuming.
		return Token{EOF, start, start}
	}
}

func (s *Scanner) lexInteger(start int) Token {
	for isDigit(s.peek(0)) {
		s.pos++
	}
	return Token{INTEGER, start, s.pos}
}

func (s *Scanner) lexIdentifier(start int) Token {
	for s.isIdentStart(s.peek(0)) {
		s.pos++
	}

	if s.peek(1) != '=' && (s.match('!') || s.match('?')) {
		name := s.source[start:s.pos]
		if string(name) == "defined?" {
			return Token{DEFINED, start, s.pos}
		}
		return Token{METHOD_IDENTIFIER, start, s.pos}
	}

	name := string(s.source[start:s.pos])
	if kind, ok := keywords[name]; ok {
		return Token{kind, start, s.pos}
	}
	return Token{IDENTIFIER, start, s.pos}
}

// lexGlobalVariable scans everything after the leading '$', following the
// reference scanner's per-sigil dispatch. $-X takes exactly one ident byte
// after the '-' (so "$-xy" scans as "$-x"), even though it never scans the
// rest of a longer name the way $_ does; that maximal-munch quirk is
// preserved rather than fixed. A '$' at end of source is a one-byte
// GLOBAL_VARIABLE.
func (s *Scanner) lexGlobalVariable(start int) Token {
	if s.pos >= len(s.source) {
		return Token{GLOBAL_VARIABLE, start, s.pos}
	}
	c := s.advance()
	switch c {
	case '_':
		if s.isIdentStart(s.peek(0)) {
			break
		}
		return Token{GLOBAL_VARIABLE, start, s.pos}
	case '~', '*', '$', '?', '!', '@', '/', '\\', ';', ',', '.', '=', ':', '<', '>':
		return Token{GLOBAL_VARIABLE, start, s.pos}
	case '-':
		if s.isIdentStart(s.peek(0)) {
			s.pos++
		}
		return Token{GLOBAL_VARIABLE, start, s.pos}
	case '&', '`', '\'', '+':
		return Token{BACK_REFERENCE, start, s.pos}
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		for isDigit(s.peek(0)) {
			s.pos++
		}
		return Token{NTH_REFERENCE, start, s.pos}
	}

	for s.isIdentStart(s.peek(0)) {
		s.pos++
	}
	return Token{GLOBAL_VARIABLE, start, s.pos}
}
