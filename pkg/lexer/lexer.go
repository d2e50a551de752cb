package lexer

import (
	"strconv"

	"github.com/conneroisu/scm/pkg/scmerr"
)

// Lexer scans a string of scm source text into a Token stream.
type Lexer struct {
	input string

	pos     int // index of ch within input
	readPos int // index of the next character to read
	ch      byte

	line   int
	column int

	buffered    *Token
	bufferedErr error
}

// New creates a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\n' {
		l.readChar()
	}
}

// Peek returns the next token without consuming it. Calling Peek
// repeatedly before an Advance always returns the same token.
func (l *Lexer) Peek() (Token, error) {
	if l.buffered == nil && l.bufferedErr == nil {
		tok, err := l.nextToken()
		if err != nil {
			l.bufferedErr = err
			return Token{}, err
		}
		l.buffered = &tok
	}
	if l.bufferedErr != nil {
		return Token{}, l.bufferedErr
	}
	return *l.buffered, nil
}

// Advance consumes and returns the next token.
func (l *Lexer) Advance() (Token, error) {
	tok, err := l.Peek()
	if err != nil {
		return Token{}, err
	}
	l.buffered = nil
	return tok, nil
}

// IsEnd reports whether the stream has no more tokens, swallowing any
// lexical error (a subsequent Peek or Advance call reports it).
func (l *Lexer) IsEnd() bool {
	tok, err := l.Peek()
	return err == nil && tok.Type == TokenEOF
}

func (l *Lexer) checkTerminator() error {
	switch {
	case l.ch == 0, l.ch == ' ', l.ch == '\n', l.ch == '(', l.ch == ')':
		return nil
	default:
		return scmerr.NewSyntaxErrorAt(l.line, l.column, "unexpected character %q after token", l.ch)
	}
}

func (l *Lexer) nextToken() (Token, error) {
	l.skipWhitespace()

	line, column := l.line, l.column

	switch {
	case l.ch == 0:
		return Token{Type: TokenEOF, Line: line, Column: column}, nil

	case l.ch == '(':
		l.readChar()
		return Token{Type: TokenOpenParen, Literal: "(", Line: line, Column: column}, nil

	case l.ch == ')':
		l.readChar()
		return l.finish(Token{Type: TokenCloseParen, Literal: ")", Line: line, Column: column})

	case l.ch == '\'':
		l.readChar()
		return Token{Type: TokenQuote, Literal: "'", Line: line, Column: column}, nil

	case l.ch == '.':
		l.readChar()
		return l.finish(Token{Type: TokenDot, Literal: ".", Line: line, Column: column})

	case isDigit(l.ch) || ((l.ch == '+' || l.ch == '-') && isDigit(l.peekChar())):
		return l.readNumber(line, column)

	case isSymbolStart(l.ch):
		return l.readSymbolOrBoolean(line, column)

	default:
		return Token{}, scmerr.NewSyntaxErrorAt(line, column, "unexpected character %q", l.ch)
	}
}

func (l *Lexer) finish(tok Token) (Token, error) {
	if err := l.checkTerminator(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

func (l *Lexer) readNumber(line, column int) (Token, error) {
	start := l.pos
	if l.ch == '+' || l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	literal := l.input[start:l.pos]
	if _, err := strconv.ParseInt(literal, 10, 64); err != nil {
		return Token{}, scmerr.NewSyntaxErrorAt(line, column, "invalid integer literal %q", literal)
	}
	return l.finish(Token{Type: TokenInteger, Literal: literal, Line: line, Column: column})
}

func (l *Lexer) readSymbolOrBoolean(line, column int) (Token, error) {
	start := l.pos
	l.readChar()
	for isSymbolContinue(l.ch) {
		l.readChar()
	}
	literal := l.input[start:l.pos]

	switch literal {
	case "#t", "#f":
		return l.finish(Token{Type: TokenBoolean, Literal: literal, Line: line, Column: column})
	default:
		return l.finish(Token{Type: TokenSymbol, Literal: literal, Line: line, Column: column})
	}
}
