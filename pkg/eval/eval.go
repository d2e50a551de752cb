package eval

import (
	"fmt"

	"github.com/conneroisu/scm/internal/heap"
	"github.com/conneroisu/scm/pkg/scmerr"
)

// Eval computes the value of expr in env.
func Eval(h *heap.Heap, expr heap.Handle, env heap.Handle) (heap.Handle, error) {
	switch h.Kind(expr) {
	case heap.KindNumber, heap.KindBoolean, heap.KindEmptyList, heap.KindPrimitive, heap.KindClosure:
		return expr, nil
	case heap.KindSymbol:
		return h.Lookup(env, h.Symbol(expr))
	case heap.KindPair:
		return evalPair(h, expr, env)
	default:
		panic(fmt.Sprintf("eval: unexpected value kind %v", h.Kind(expr)))
	}
}

func evalPair(h *heap.Heap, expr heap.Handle, env heap.Handle) (heap.Handle, error) {
	opVal, err := Eval(h, h.Car(expr), env)
	if err != nil {
		return heap.InvalidHandle, err
	}

	if h.Kind(opVal) == heap.KindPrimitive {
		if prim := h.Primitive(opVal); prim.SpecialForm {
			rawArgs, err := h.ListToSlice(h.Cdr(expr))
			if err != nil {
				return heap.InvalidHandle, scmerr.NewSyntaxError("%s: arguments must form a proper list", prim.Name)
			}
			return prim.Eval(h, rawArgs, env)
		}
	}

	rawArgs, err := h.ListToSlice(h.Cdr(expr))
	if err != nil {
		return heap.InvalidHandle, scmerr.NewRuntimeError("cannot apply to a dotted argument list")
	}

	args := make([]heap.Handle, len(rawArgs))
	for i, a := range rawArgs {
		v, err := Eval(h, a, env)
		if err != nil {
			return heap.InvalidHandle, err
		}
		args[i] = v
	}

	return Apply(h, opVal, args)
}

// Apply invokes fn, a Primitive or Closure, against already-evaluated
// arguments.
func Apply(h *heap.Heap, fn heap.Handle, args []heap.Handle) (heap.Handle, error) {
	switch h.Kind(fn) {
	case heap.KindPrimitive:
		prim := h.Primitive(fn)
		if err := checkArity(prim, len(args)); err != nil {
			return heap.InvalidHandle, err
		}
		return prim.Apply(h, args)

	case heap.KindClosure:
		params := h.ClosureParams(fn)
		if len(params) != len(args) {
			return heap.InvalidHandle, scmerr.NewRuntimeError(
				"procedure expects %d argument(s), got %d", len(params), len(args))
		}
		callEnv := h.Extend(h.ClosureEnv(fn))
		for i, p := range params {
			h.Define(callEnv, p, args[i])
		}
		body := h.ClosureBody(fn)
		result := h.Empty()
		for _, expr := range body {
			v, err := Eval(h, expr, callEnv)
			if err != nil {
				return heap.InvalidHandle, err
			}
			result = v
		}
		return result, nil

	default:
		return heap.InvalidHandle, scmerr.NewRuntimeError("cannot apply a non-procedure value")
	}
}

func checkArity(prim *heap.Primitive, n int) error {
	if n < prim.MinArgs || (prim.MaxArgs >= 0 && n > prim.MaxArgs) {
		return scmerr.NewRuntimeError("%s expects %s, got %d", prim.Name, arityDescription(prim), n)
	}
	return nil
}

func arityDescription(prim *heap.Primitive) string {
	switch {
	case prim.MaxArgs < 0 && prim.MinArgs == 0:
		return "any number of arguments"
	case prim.MaxArgs < 0:
		return fmt.Sprintf("at least %d argument(s)", prim.MinArgs)
	case prim.MinArgs == prim.MaxArgs:
		return fmt.Sprintf("exactly %d argument(s)", prim.MinArgs)
	default:
		return fmt.Sprintf("between %d and %d argument(s)", prim.MinArgs, prim.MaxArgs)
	}
}
