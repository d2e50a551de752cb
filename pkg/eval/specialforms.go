package eval

import (
	"github.com/conneroisu/scm/internal/heap"
	"github.com/conneroisu/scm/pkg/scmerr"
)

func newSpecialForm(h *heap.Heap, name string, fn func(h *heap.Heap, args []heap.Handle, env heap.Handle) (heap.Handle, error)) heap.Handle {
	return h.NewPrimitive(&heap.Primitive{Name: name, SpecialForm: true, Eval: fn})
}

func quoteForm(h *heap.Heap, args []heap.Handle, env heap.Handle) (heap.Handle, error) {
	if len(args) != 1 {
		return heap.InvalidHandle, scmerr.NewSyntaxError("quote expects exactly 1 argument, got %d", len(args))
	}
	return args[0], nil
}

func ifForm(h *heap.Heap, args []heap.Handle, env heap.Handle) (heap.Handle, error) {
	if len(args) != 2 && len(args) != 3 {
		return heap.InvalidHandle, scmerr.NewSyntaxError("if expects 2 or 3 arguments, got %d", len(args))
	}
	cond, err := Eval(h, args[0], env)
	if err != nil {
		return heap.InvalidHandle, err
	}
	if h.IsTruthy(cond) {
		return Eval(h, args[1], env)
	}
	if len(args) == 3 {
		return Eval(h, args[2], env)
	}
	return h.Empty(), nil
}

func andForm(h *heap.Heap, args []heap.Handle, env heap.Handle) (heap.Handle, error) {
	if len(args) == 0 {
		return h.True(), nil
	}
	var result heap.Handle
	for _, a := range args {
		v, err := Eval(h, a, env)
		if err != nil {
			return heap.InvalidHandle, err
		}
		result = v
		if h.Kind(v) == heap.KindBoolean && !h.Boolean(v) {
			return v, nil
		}
	}
	return result, nil
}

func orForm(h *heap.Heap, args []heap.Handle, env heap.Handle) (heap.Handle, error) {
	if len(args) == 0 {
		return h.False(), nil
	}
	var result heap.Handle
	for _, a := range args {
		v, err := Eval(h, a, env)
		if err != nil {
			return heap.InvalidHandle, err
		}
		result = v
		if !(h.Kind(v) == heap.KindBoolean && !h.Boolean(v)) {
			return v, nil
		}
	}
	return result, nil
}

func defineForm(h *heap.Heap, args []heap.Handle, env heap.Handle) (heap.Handle, error) {
	if len(args) < 1 {
		return heap.InvalidHandle, scmerr.NewSyntaxError("define requires at least a name")
	}

	switch h.Kind(args[0]) {
	case heap.KindSymbol:
		if len(args) != 2 {
			return heap.InvalidHandle, scmerr.NewSyntaxError("define expects (define name expr)")
		}
		val, err := Eval(h, args[1], env)
		if err != nil {
			return heap.InvalidHandle, err
		}
		h.Define(env, h.Symbol(args[0]), val)
		return h.Empty(), nil

	case heap.KindPair:
		nameHandle := h.Car(args[0])
		if h.Kind(nameHandle) != heap.KindSymbol {
			return heap.InvalidHandle, scmerr.NewSyntaxError("define: procedure name must be a symbol")
		}
		params, err := symbolListToNames(h, h.Cdr(args[0]), "define")
		if err != nil {
			return heap.InvalidHandle, err
		}
		body := args[1:]
		if len(body) == 0 {
			return heap.InvalidHandle, scmerr.NewSyntaxError("define: procedure body must have at least one expression")
		}
		closure := h.NewClosure(env, params, body)
		h.Define(env, h.Symbol(nameHandle), closure)
		return h.Empty(), nil

	default:
		return heap.InvalidHandle, scmerr.NewSyntaxError("define: malformed first argument")
	}
}

func setForm(h *heap.Heap, args []heap.Handle, env heap.Handle) (heap.Handle, error) {
	if len(args) != 2 {
		return heap.InvalidHandle, scmerr.NewSyntaxError("set! expects (set! name expr)")
	}
	if h.Kind(args[0]) != heap.KindSymbol {
		return heap.InvalidHandle, scmerr.NewSyntaxError("set!: first argument must be a symbol")
	}
	val, err := Eval(h, args[1], env)
	if err != nil {
		return heap.InvalidHandle, err
	}
	if err := h.Assign(env, h.Symbol(args[0]), val); err != nil {
		return heap.InvalidHandle, err
	}
	return h.Empty(), nil
}

func lambdaForm(h *heap.Heap, args []heap.Handle, env heap.Handle) (heap.Handle, error) {
	if len(args) < 2 {
		return heap.InvalidHandle, scmerr.NewSyntaxError("lambda expects a parameter list and at least one body expression")
	}
	params, err := symbolListToNames(h, args[0], "lambda")
	if err != nil {
		return heap.InvalidHandle, err
	}
	return h.NewClosure(env, params, args[1:]), nil
}

func setCarForm(h *heap.Heap, args []heap.Handle, env heap.Handle) (heap.Handle, error) {
	if len(args) != 2 {
		return heap.InvalidHandle, scmerr.NewSyntaxError("set-car! expects (set-car! pair expr)")
	}
	pair, err := Eval(h, args[0], env)
	if err != nil {
		return heap.InvalidHandle, err
	}
	if h.Kind(pair) != heap.KindPair {
		return heap.InvalidHandle, scmerr.NewRuntimeError("set-car!: first argument must be a pair")
	}
	val, err := Eval(h, args[1], env)
	if err != nil {
		return heap.InvalidHandle, err
	}
	h.SetCar(pair, val)
	return h.Empty(), nil
}

func setCdrForm(h *heap.Heap, args []heap.Handle, env heap.Handle) (heap.Handle, error) {
	if len(args) != 2 {
		return heap.InvalidHandle, scmerr.NewSyntaxError("set-cdr! expects (set-cdr! pair expr)")
	}
	pair, err := Eval(h, args[0], env)
	if err != nil {
		return heap.InvalidHandle, err
	}
	if h.Kind(pair) != heap.KindPair {
		return heap.InvalidHandle, scmerr.NewRuntimeError("set-cdr!: first argument must be a pair")
	}
	val, err := Eval(h, args[1], env)
	if err != nil {
		return heap.InvalidHandle, err
	}
	h.SetCdr(pair, val)
	return h.Empty(), nil
}

// symbolListToNames flattens a parameter-list handle into plain strings,
// reporting a SyntaxError tagged with form for any element that isn't a
// symbol or for a parameter list that isn't a proper list.
func symbolListToNames(h *heap.Heap, list heap.Handle, form string) ([]string, error) {
	handles, err := h.ListToSlice(list)
	if err != nil {
		return nil, scmerr.NewSyntaxError("%s: malformed parameter list", form)
	}
	names := make([]string, len(handles))
	for i, elem := range handles {
		if h.Kind(elem) != heap.KindSymbol {
			return nil, scmerr.NewSyntaxError("%s: parameter must be a symbol", form)
		}
		names[i] = h.Symbol(elem)
	}
	return names, nil
}
