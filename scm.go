// Package scm implements a small Scheme-dialect interpreter.
//
// The library's only entry point is Interpreter: New creates one with a
// fresh heap and a base environment bound with every special form and
// primitive procedure the language defines, and Run reads exactly one
// expression from a string, evaluates it against the interpreter's
// persistent environment, and returns its printed representation.
// Repeated calls to Run on the same Interpreter share state, so a
// "(define x ...)" in one call is visible to a later call that reads x.
package scm

import (
	"github.com/conneroisu/scm/internal/heap"
	"github.com/conneroisu/scm/pkg/eval"
	"github.com/conneroisu/scm/pkg/lexer"
	"github.com/conneroisu/scm/pkg/reader"
	"github.com/conneroisu/scm/pkg/scmerr"
)

// Interpreter owns a heap and a persistent base environment across
// repeated calls to Run.
type Interpreter struct {
	heap    *heap.Heap
	baseEnv heap.Handle
}

// New creates an Interpreter with the standard base environment already
// bound.
func New() *Interpreter {
	h := heap.New()
	env := eval.NewBaseEnvironment(h)
	return &Interpreter{heap: h, baseEnv: env}
}

// Run reads exactly one expression from source, evaluates it, and
// returns its printed representation. Trailing, non-whitespace content
// after that expression is a SyntaxError. A bare "()" (an operator-less
// application) is a RuntimeError, even though EmptyList otherwise
// self-evaluates everywhere else a value can appear.
//
// Run performs a garbage collection rooted at the base environment
// after every evaluation, so heap usage does not grow without bound
// across many calls on a long-lived Interpreter.
func (i *Interpreter) Run(source string) (string, error) {
	lex := lexer.New(source)
	rdr := reader.New(lex, i.heap)

	expr, err := rdr.Read()
	if err != nil {
		return "", err
	}

	trailing, err := lex.Peek()
	if err != nil {
		return "", err
	}
	if trailing.Type != lexer.TokenEOF {
		return "", scmerr.NewSyntaxErrorAt(trailing.Line, trailing.Column, "unexpected trailing input after expression")
	}

	if i.heap.Kind(expr) == heap.KindEmptyList {
		return "", scmerr.NewRuntimeError("cannot evaluate empty application ()")
	}

	result, err := eval.Eval(i.heap, expr, i.baseEnv)
	if err != nil {
		return "", err
	}

	printed := i.heap.Print(result)
	i.heap.Collect(i.baseEnv)
	return printed, nil
}

// Drop releases every value the Interpreter's heap still holds. The
// Interpreter must not be used again afterward.
func (i *Interpreter) Drop() {
	i.heap.Release()
}
