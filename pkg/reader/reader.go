package reader

import (
	"strconv"

	"github.com/conneroisu/scm/internal/heap"
	"github.com/conneroisu/scm/pkg/lexer"
	"github.com/conneroisu/scm/pkg/scmerr"
)

// Reader reads one value at a time from a Lexer, allocating onto h.
type Reader struct {
	lex *lexer.Lexer
	h   *heap.Heap
}

// New creates a Reader pulling tokens from lex and allocating values on h.
func New(lex *lexer.Lexer, h *heap.Heap) *Reader {
	return &Reader{lex: lex, h: h}
}

// Read parses exactly one value and returns its handle. It does not
// consume anything past that value; a caller that expects source to
// contain only a single expression should check that the lexer reports
// end of input afterward.
func (r *Reader) Read() (heap.Handle, error) {
	tok, err := r.lex.Peek()
	if err != nil {
		return heap.InvalidHandle, err
	}

	switch tok.Type {
	case lexer.TokenInteger:
		r.lex.Advance()
		n, convErr := strconv.ParseInt(tok.Literal, 10, 64)
		if convErr != nil {
			return heap.InvalidHandle, scmerr.NewSyntaxErrorAt(tok.Line, tok.Column, "invalid integer literal %q", tok.Literal)
		}
		return r.h.NewNumber(n), nil

	case lexer.TokenBoolean:
		r.lex.Advance()
		return r.h.Bool(tok.Literal == "#t"), nil

	case lexer.TokenSymbol:
		r.lex.Advance()
		return r.h.NewSymbol(tok.Literal), nil

	case lexer.TokenQuote:
		r.lex.Advance()
		inner, err := r.Read()
		if err != nil {
			return heap.InvalidHandle, err
		}
		quote := r.h.NewSymbol("quote")
		return r.h.SliceToList([]heap.Handle{quote, inner}), nil

	case lexer.TokenOpenParen:
		r.lex.Advance()
		return r.readList()

	case lexer.TokenCloseParen:
		return heap.InvalidHandle, scmerr.NewSyntaxErrorAt(tok.Line, tok.Column, "unexpected ')'")

	case lexer.TokenDot:
		return heap.InvalidHandle, scmerr.NewSyntaxErrorAt(tok.Line, tok.Column, "unexpected '.'")

	case lexer.TokenEOF:
		return heap.InvalidHandle, scmerr.NewSyntaxErrorAt(tok.Line, tok.Column, "unexpected end of input")

	default:
		return heap.InvalidHandle, scmerr.NewSyntaxErrorAt(tok.Line, tok.Column, "unexpected token")
	}
}

// readList parses the elements of a list after the opening "(" has
// already been consumed, including an optional ". tail" before the
// closing ")".
func (r *Reader) readList() (heap.Handle, error) {
	var elems []heap.Handle

	for {
		tok, err := r.lex.Peek()
		if err != nil {
			return heap.InvalidHandle, err
		}

		switch tok.Type {
		case lexer.TokenCloseParen:
			r.lex.Advance()
			return r.h.SliceToList(elems), nil

		case lexer.TokenDot:
			if len(elems) == 0 {
				return heap.InvalidHandle, scmerr.NewSyntaxErrorAt(tok.Line, tok.Column, "'.' must follow at least one element")
			}
			r.lex.Advance()
			tail, err := r.Read()
			if err != nil {
				return heap.InvalidHandle, err
			}
			closeTok, err := r.lex.Peek()
			if err != nil {
				return heap.InvalidHandle, err
			}
			if closeTok.Type != lexer.TokenCloseParen {
				return heap.InvalidHandle, scmerr.NewSyntaxErrorAt(closeTok.Line, closeTok.Column, "expected ')' after dotted tail")
			}
			r.lex.Advance()
			return r.h.SliceToImproperList(elems, tail), nil

		case lexer.TokenEOF:
			return heap.InvalidHandle, scmerr.NewSyntaxErrorAt(tok.Line, tok.Column, "unexpected end of input inside list")

		default:
			elem, err := r.Read()
			if err != nil {
				return heap.InvalidHandle, err
			}
			elems = append(elems, elem)
		}
	}
}
