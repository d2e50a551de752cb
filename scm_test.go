package scm

import (
	"errors"
	"testing"

	"github.com/conneroisu/scm/pkg/scmerr"
)

func mustRun(t *testing.T, interp *Interpreter, source, expected string) {
	t.Helper()
	got, err := interp.Run(source)
	if err != nil {
		t.Fatalf("Run(%q): unexpected error: %v", source, err)
	}
	if got != expected {
		t.Fatalf("Run(%q) = %q, expected %q", source, got, expected)
	}
}

func TestRunArithmetic(t *testing.T) {
	interp := New()
	defer interp.Drop()
	mustRun(t, interp, "(+ 1 2 3)", "6")
}

func TestRunConditional(t *testing.T) {
	interp := New()
	defer interp.Drop()
	mustRun(t, interp, "(if (> 3 2) 'yes 'no)", "yes")
}

func TestRunDottedQuoteNormalizesOnPrint(t *testing.T) {
	interp := New()
	defer interp.Drop()
	mustRun(t, interp, "'(1 . (2 . (3 . ())))", "(1 2 3)")
}

func TestRunRecursiveFactorial(t *testing.T) {
	interp := New()
	defer interp.Drop()
	mustRun(t, interp, "(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))", "()")
	mustRun(t, interp, "(fact 5)", "120")
}

func TestRunMutationAcrossCalls(t *testing.T) {
	interp := New()
	defer interp.Drop()
	mustRun(t, interp, "(define p (cons 1 2))", "()")
	mustRun(t, interp, "(set-car! p 10)", "()")
	mustRun(t, interp, "p", "(10 . 2)")
}

func TestRunClosureCapturesEnvironment(t *testing.T) {
	interp := New()
	defer interp.Drop()
	mustRun(t, interp, "(define (make-adder k) (lambda (x) (+ x k)))", "()")
	mustRun(t, interp, "(define add3 (make-adder 3))", "()")
	mustRun(t, interp, "(add3 10)", "13")
}

func TestRunCycleSurvivesAcrossTopLevelCalls(t *testing.T) {
	interp := New()
	defer interp.Drop()
	mustRun(t, interp, "(define x (list 1 2 3))", "()")
	mustRun(t, interp, "(set-cdr! (cdr (cdr x)) x)", "()")
	// The cycle must stay evaluable across repeated top-level calls; car
	// doesn't walk the spine, so this is safe to assert directly.
	mustRun(t, interp, "(car x)", "1")
	mustRun(t, interp, "(car (cdr x))", "2")
}

func TestRunArithmeticIdentities(t *testing.T) {
	interp := New()
	defer interp.Drop()
	mustRun(t, interp, "(+ )", "0")
	mustRun(t, interp, "(* )", "1")
	mustRun(t, interp, "(+ 42)", "42")
	mustRun(t, interp, "(* 42)", "42")
}

func TestRunChainVacuity(t *testing.T) {
	interp := New()
	defer interp.Drop()
	mustRun(t, interp, "(< )", "#t")
	mustRun(t, interp, "(< 5)", "#t")
	mustRun(t, interp, "(= )", "#t")
	mustRun(t, interp, "(= 5)", "#t")
}

func TestRunTruthiness(t *testing.T) {
	interp := New()
	defer interp.Drop()
	mustRun(t, interp, "(if 0 'a 'b)", "a")
	mustRun(t, interp, "(if '() 'a 'b)", "a")
	mustRun(t, interp, "(if #f 'a 'b)", "b")
	mustRun(t, interp, "(not 0)", "#f")
	mustRun(t, interp, "(not #f)", "#t")
}

func TestRunLookupShadowing(t *testing.T) {
	interp := New()
	defer interp.Drop()
	mustRun(t, interp, "(define x 1)", "()")
	mustRun(t, interp, "(define (shadow) (define x 2) x)", "()")
	mustRun(t, interp, "(shadow)", "2")
	mustRun(t, interp, "x", "1")

	mustRun(t, interp, "(define y 1)", "()")
	mustRun(t, interp, "(define (bump) (set! y (+ y 1)))", "()")
	mustRun(t, interp, "(bump)", "()")
	mustRun(t, interp, "y", "2")
}

func runError(t *testing.T, source string) error {
	t.Helper()
	interp := New()
	defer interp.Drop()
	_, err := interp.Run(source)
	if err == nil {
		t.Fatalf("Run(%q): expected an error, got none", source)
	}
	return err
}

func TestRunErrorScenarios(t *testing.T) {
	var runtimeErr *scmerr.RuntimeError
	if err := runError(t, "(car '())"); !errors.As(err, &runtimeErr) {
		t.Errorf("(car '()): expected RuntimeError, got %v (%T)", err, err)
	}

	var nameErr *scmerr.NameError
	if err := runError(t, "(foo 1)"); !errors.As(err, &nameErr) {
		t.Errorf("(foo 1): expected NameError, got %v (%T)", err, err)
	}

	if err := runError(t, "(1 2)"); !errors.As(err, &runtimeErr) {
		t.Errorf("(1 2): expected RuntimeError, got %v (%T)", err, err)
	}

	var syntaxErr *scmerr.SyntaxError
	if err := runError(t, "(define x"); !errors.As(err, &syntaxErr) {
		t.Errorf("(define x: expected SyntaxError, got %v (%T)", err, err)
	}
}

func TestRunEmptyApplicationIsRuntimeError(t *testing.T) {
	var runtimeErr *scmerr.RuntimeError
	if err := runError(t, "()"); !errors.As(err, &runtimeErr) {
		t.Errorf("(): expected RuntimeError, got %v (%T)", err, err)
	}
}

func TestRunTrailingInputIsSyntaxError(t *testing.T) {
	var syntaxErr *scmerr.SyntaxError
	if err := runError(t, "1 2"); !errors.As(err, &syntaxErr) {
		t.Errorf("\"1 2\": expected SyntaxError, got %v (%T)", err, err)
	}
}
