package query

import "fmt"

// Lexer tokenizes query strings
type Lexer struct {
	input string
	pos   int  // position of the next unread character
	ch    byte // current character, 0 at end of input
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
	l.pos++
}

// peekChar looks at the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isAlnum(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

// readWord reads a run of letters and digits starting at the current
// character.
func (l *Lexer) readWord() string {
	start := l.pos - 1
	for isAlnum(l.ch) {
		l.readChar()
	}
	return l.input[start : l.pos-1]
}

// readLiteral reads a double-quoted literal. The literal body is restricted
// to letters and digits; there are no escape sequences.
func (l *Lexer) readLiteral() Token {
	start := l.pos - 1
	l.readChar() // skip opening quote

	body := l.readWord()
	switch {
	case l.ch == '"' && body != "":
		l.readChar() // skip closing quote
		return Token{Type: TokenString, Value: body, Pos: start}
	case l.ch == 0:
		return Token{Type: TokenError, Value: "unterminated literal", Pos: start}
	default:
		return Token{Type: TokenError, Value: "literal may contain only letters and digits", Pos: start}
	}
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.pos - 1
	switch {
	case l.ch == 0:
		return Token{Type: TokenEOF, Pos: pos}
	case l.ch == ',':
		l.readChar()
		return Token{Type: TokenComma, Value: ",", Pos: pos}
	case l.ch == '=':
		l.readChar()
		return Token{Type: TokenEqual, Value: "=", Pos: pos}
	case l.ch == '>':
		// Longest match: try ">=" before ">".
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Token{Type: TokenGreaterEqual, Value: ">=", Pos: pos}
		}
		l.readChar()
		return Token{Type: TokenGreater, Value: ">", Pos: pos}
	case l.ch == '"':
		return l.readLiteral()
	case isAlnum(l.ch):
		word := l.readWord()
		// Keywords are exact and case-sensitive.
		switch word {
		case "PROJECT":
			return Token{Type: TokenProject, Value: word, Pos: pos}
		case "FILTER":
			return Token{Type: TokenFilter, Value: word, Pos: pos}
		}
		return Token{Type: TokenIdent, Value: word, Pos: pos}
	default:
		ch := l.ch
		l.readChar()
		return Token{Type: TokenError, Value: fmt.Sprintf("unexpected character %q", string(ch)), Pos: pos}
	}
}

// Tokenize scans the whole input into a token slice. The slice always ends
// with a TokenEOF, or with a TokenError at the offending position.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			return tokens
		}
	}
}
