package eval

import (
	"errors"
	"testing"

	"github.com/conneroisu/scm/internal/heap"
	"github.com/conneroisu/scm/pkg/lexer"
	"github.com/conneroisu/scm/pkg/reader"
	"github.com/conneroisu/scm/pkg/scmerr"
)

func evalSource(t *testing.T, h *heap.Heap, env heap.Handle, src string) (heap.Handle, error) {
	t.Helper()
	r := reader.New(lexer.New(src), h)
	expr, err := r.Read()
	if err != nil {
		t.Fatalf("Read(%q): unexpected error: %v", src, err)
	}
	return Eval(h, expr, env)
}

func testEval(t *testing.T, src, expected string) {
	t.Helper()
	h := heap.New()
	env := NewBaseEnvironment(h)
	result, err := evalSource(t, h, env, src)
	if err != nil {
		t.Fatalf("eval(%q): unexpected error: %v", src, err)
	}
	if got := h.Print(result); got != expected {
		t.Errorf("eval(%q) = %q, expected %q", src, got, expected)
	}
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct{ src, expected string }{
		{"(+ 1 2 3)", "6"},
		{"(+ )", "0"},
		{"(* 2 3 4)", "24"},
		{"(* )", "1"},
		{"(- 10 3 2)", "5"},
		{"(- 5)", "5"},
		{"(/ 20 2 5)", "2"},
		{"(min 3 1 2)", "1"},
		{"(max 3 1 2)", "3"},
		{"(abs -5)", "5"},
	}
	for _, tt := range tests {
		testEval(t, tt.src, tt.expected)
	}
}

func TestEvalComparisons(t *testing.T) {
	tests := []struct{ src, expected string }{
		{"(< 1 2 3)", "#t"},
		{"(< 1 3 2)", "#f"},
		{"(= 1 1 1)", "#t"},
		{"(>= 3 3 2)", "#t"},
		{"(not #f)", "#t"},
		{"(not 0)", "#f"},
	}
	for _, tt := range tests {
		testEval(t, tt.src, tt.expected)
	}
}

func TestEvalIf(t *testing.T) {
	testEval(t, "(if #t 1 2)", "1")
	testEval(t, "(if #f 1 2)", "2")
	testEval(t, "(if #f 1)", "()")
}

func TestEvalAndOr(t *testing.T) {
	testEval(t, "(and)", "#t")
	testEval(t, "(and 1 2 3)", "3")
	testEval(t, "(and 1 #f 3)", "#f")
	testEval(t, "(or)", "#f")
	testEval(t, "(or #f #f 3)", "3")
	testEval(t, "(or #f #f)", "#f")
}

func TestEvalDefineAndLookup(t *testing.T) {
	h := heap.New()
	env := NewBaseEnvironment(h)

	if _, err := evalSource(t, h, env, "(define x 10)"); err != nil {
		t.Fatalf("define: unexpected error: %v", err)
	}
	result, err := evalSource(t, h, env, "(+ x 5)")
	if err != nil {
		t.Fatalf("lookup: unexpected error: %v", err)
	}
	if got := h.Print(result); got != "15" {
		t.Fatalf("got %q, expected %q", got, "15")
	}
}

func TestEvalLambdaAndClosures(t *testing.T) {
	h := heap.New()
	env := NewBaseEnvironment(h)

	if _, err := evalSource(t, h, env, "(define (adder n) (lambda (x) (+ x n)))"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := evalSource(t, h, env, "(define add5 (adder 5))"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := evalSource(t, h, env, "(add5 10)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := h.Print(result); got != "15" {
		t.Fatalf("got %q, expected %q", got, "15")
	}
}

func TestEvalShadowingSpecialForm(t *testing.T) {
	h := heap.New()
	env := NewBaseEnvironment(h)

	// Shadow "if" locally with an ordinary procedure; inside that scope
	// "if" is no longer the conditional, so all three arguments must be
	// evaluated eagerly like a normal application.
	src := "((lambda (if) (if 1 2 3)) (lambda (a b c) (list a b c)))"
	result, err := evalSource(t, h, env, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := h.Print(result), "(1 2 3)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEvalPairsAndLists(t *testing.T) {
	testEval(t, "(cons 1 2)", "(1 . 2)")
	testEval(t, "(car (cons 1 2))", "1")
	testEval(t, "(cdr (cons 1 2))", "2")
	testEval(t, "(list 1 2 3)", "(1 2 3)")
	testEval(t, "(list-ref (list 1 2 3) 1)", "2")
	testEval(t, "(list-tail (list 1 2 3) 1)", "(2 3)")
	testEval(t, "(null? (list))", "#t")
	testEval(t, "(list? (list 1 2))", "#t")
	testEval(t, "(list? (cons 1 2))", "#f")
	testEval(t, "(pair? (cons 1 2))", "#t")
}

func TestEvalMutation(t *testing.T) {
	h := heap.New()
	env := NewBaseEnvironment(h)

	if _, err := evalSource(t, h, env, "(define p (cons 1 2))"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := evalSource(t, h, env, "(set-car! p 9)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := evalSource(t, h, env, "p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := h.Print(result), "(9 . 2)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEvalCyclicListStaysEvaluable(t *testing.T) {
	h := heap.New()
	env := NewBaseEnvironment(h)

	if _, err := evalSource(t, h, env, "(define x (list 1 2 3))"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := evalSource(t, h, env, "(set-cdr! (list-tail x 2) x)"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := evalSource(t, h, env, "(car x)")
	if err != nil {
		t.Fatalf("unexpected error evaluating through a cycle: %v", err)
	}
	if got, want := h.Print(result), "1"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	x, err := evalSource(t, h, env, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.IsProperList(x) {
		t.Fatalf("a cyclic spine must not be reported as a proper list")
	}
}

func TestEvalErrorKinds(t *testing.T) {
	h := heap.New()
	env := NewBaseEnvironment(h)

	_, err := evalSource(t, h, env, "undefined-name")
	var nameErr *scmerr.NameError
	if !errors.As(err, &nameErr) {
		t.Fatalf("expected a NameError, got %v (%T)", err, err)
	}

	_, err = evalSource(t, h, env, "(1 2)")
	var runtimeErr *scmerr.RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("expected a RuntimeError for applying a non-procedure, got %v (%T)", err, err)
	}

	_, err = evalSource(t, h, env, "(if)")
	var syntaxErr *scmerr.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected a SyntaxError for a malformed special form, got %v (%T)", err, err)
	}

	_, err = evalSource(t, h, env, "(/ 1 0)")
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("expected a RuntimeError for division by zero, got %v (%T)", err, err)
	}
}
