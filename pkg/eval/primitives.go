package eval

import (
	"github.com/conneroisu/scm/internal/heap"
	"github.com/conneroisu/scm/pkg/scmerr"
)

func asNumber(h *heap.Heap, handle heap.Handle) (int64, error) {
	if h.Kind(handle) != heap.KindNumber {
		return 0, scmerr.NewRuntimeError("expected a number")
	}
	return h.Number(handle), nil
}

func newPrimitive(h *heap.Heap, name string, minArgs, maxArgs int, fn func(h *heap.Heap, args []heap.Handle) (heap.Handle, error)) heap.Handle {
	return h.NewPrimitive(&heap.Primitive{Name: name, MinArgs: minArgs, MaxArgs: maxArgs, Apply: fn})
}

func primAdd(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	var sum int64
	for _, a := range args {
		n, err := asNumber(h, a)
		if err != nil {
			return heap.InvalidHandle, err
		}
		sum += n
	}
	return h.NewNumber(sum), nil
}

func primMul(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	product := int64(1)
	for _, a := range args {
		n, err := asNumber(h, a)
		if err != nil {
			return heap.InvalidHandle, err
		}
		product *= n
	}
	return h.NewNumber(product), nil
}

func primSub(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	acc, err := asNumber(h, args[0])
	if err != nil {
		return heap.InvalidHandle, err
	}
	for _, a := range args[1:] {
		n, err := asNumber(h, a)
		if err != nil {
			return heap.InvalidHandle, err
		}
		acc -= n
	}
	return h.NewNumber(acc), nil
}

func primDiv(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	acc, err := asNumber(h, args[0])
	if err != nil {
		return heap.InvalidHandle, err
	}
	for _, a := range args[1:] {
		n, err := asNumber(h, a)
		if err != nil {
			return heap.InvalidHandle, err
		}
		if n == 0 {
			return heap.InvalidHandle, scmerr.NewRuntimeError("/: division by zero")
		}
		acc /= n
	}
	return h.NewNumber(acc), nil
}

func primMin(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	acc, err := asNumber(h, args[0])
	if err != nil {
		return heap.InvalidHandle, err
	}
	for _, a := range args[1:] {
		n, err := asNumber(h, a)
		if err != nil {
			return heap.InvalidHandle, err
		}
		if n < acc {
			acc = n
		}
	}
	return h.NewNumber(acc), nil
}

func primMax(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	acc, err := asNumber(h, args[0])
	if err != nil {
		return heap.InvalidHandle, err
	}
	for _, a := range args[1:] {
		n, err := asNumber(h, a)
		if err != nil {
			return heap.InvalidHandle, err
		}
		if n > acc {
			acc = n
		}
	}
	return h.NewNumber(acc), nil
}

func primAbs(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	n, err := asNumber(h, args[0])
	if err != nil {
		return heap.InvalidHandle, err
	}
	if n < 0 {
		n = -n
	}
	return h.NewNumber(n), nil
}

func chainCompare(h *heap.Heap, args []heap.Handle, cmp func(a, b int64) bool) (heap.Handle, error) {
	for i := 0; i+1 < len(args); i++ {
		a, err := asNumber(h, args[i])
		if err != nil {
			return heap.InvalidHandle, err
		}
		b, err := asNumber(h, args[i+1])
		if err != nil {
			return heap.InvalidHandle, err
		}
		if !cmp(a, b) {
			return h.False(), nil
		}
	}
	return h.True(), nil
}

func primLess(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return chainCompare(h, args, func(a, b int64) bool { return a < b })
}

func primGreater(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return chainCompare(h, args, func(a, b int64) bool { return a > b })
}

func primLessEq(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return chainCompare(h, args, func(a, b int64) bool { return a <= b })
}

func primGreaterEq(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return chainCompare(h, args, func(a, b int64) bool { return a >= b })
}

func primNumEq(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return chainCompare(h, args, func(a, b int64) bool { return a == b })
}

func primNot(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	v := args[0]
	if h.Kind(v) == heap.KindBoolean && !h.Boolean(v) {
		return h.True(), nil
	}
	return h.False(), nil
}

func primNumberP(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return h.Bool(h.Kind(args[0]) == heap.KindNumber), nil
}

func primBooleanP(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return h.Bool(h.Kind(args[0]) == heap.KindBoolean), nil
}

func primSymbolP(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return h.Bool(h.Kind(args[0]) == heap.KindSymbol), nil
}

func primPairP(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return h.Bool(h.Kind(args[0]) == heap.KindPair), nil
}

func primNullP(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return h.Bool(h.Kind(args[0]) == heap.KindEmptyList), nil
}

func primListP(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return h.Bool(h.IsProperList(args[0])), nil
}

func primCons(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return h.NewPair(args[0], args[1]), nil
}

func primCar(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	if h.Kind(args[0]) != heap.KindPair {
		return heap.InvalidHandle, scmerr.NewRuntimeError("car: expected a pair")
	}
	return h.Car(args[0]), nil
}

func primCdr(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	if h.Kind(args[0]) != heap.KindPair {
		return heap.InvalidHandle, scmerr.NewRuntimeError("cdr: expected a pair")
	}
	return h.Cdr(args[0]), nil
}

func primList(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	return h.SliceToList(args), nil
}

func primListRef(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	idx, err := asNumber(h, args[1])
	if err != nil {
		return heap.InvalidHandle, err
	}
	if idx < 0 {
		return heap.InvalidHandle, scmerr.NewRuntimeError("list-ref: index must be non-negative")
	}
	cur := args[0]
	for i := int64(0); i < idx; i++ {
		if h.Kind(cur) != heap.KindPair {
			return heap.InvalidHandle, scmerr.NewRuntimeError("list-ref: index out of range")
		}
		cur = h.Cdr(cur)
	}
	if h.Kind(cur) != heap.KindPair {
		return heap.InvalidHandle, scmerr.NewRuntimeError("list-ref: index out of range")
	}
	return h.Car(cur), nil
}

func primListTail(h *heap.Heap, args []heap.Handle) (heap.Handle, error) {
	idx, err := asNumber(h, args[1])
	if err != nil {
		return heap.InvalidHandle, err
	}
	if idx < 0 {
		return heap.InvalidHandle, scmerr.NewRuntimeError("list-tail: index must be non-negative")
	}
	cur := args[0]
	for i := int64(0); i < idx; i++ {
		if h.Kind(cur) != heap.KindPair {
			return heap.InvalidHandle, scmerr.NewRuntimeError("list-tail: index out of range")
		}
		cur = h.Cdr(cur)
	}
	return cur, nil
}

// registerPrimitives binds every special form and procedure the
// catalog names into env.
func registerPrimitives(h *heap.Heap, env heap.Handle) {
	special := []struct {
		name string
		fn   func(h *heap.Heap, args []heap.Handle, env heap.Handle) (heap.Handle, error)
	}{
		{"quote", quoteForm},
		{"if", ifForm},
		{"and", andForm},
		{"or", orForm},
		{"define", defineForm},
		{"set!", setForm},
		{"lambda", lambdaForm},
		{"set-car!", setCarForm},
		{"set-cdr!", setCdrForm},
	}
	for _, sf := range special {
		h.Define(env, sf.name, newSpecialForm(h, sf.name, sf.fn))
	}

	procedures := []struct {
		name    string
		minArgs int
		maxArgs int
		fn      func(h *heap.Heap, args []heap.Handle) (heap.Handle, error)
	}{
		{"+", 0, -1, primAdd},
		{"*", 0, -1, primMul},
		{"-", 1, -1, primSub},
		{"/", 1, -1, primDiv},
		{"min", 1, -1, primMin},
		{"max", 1, -1, primMax},
		{"abs", 1, 1, primAbs},
		{"<", 0, -1, primLess},
		{">", 0, -1, primGreater},
		{"<=", 0, -1, primLessEq},
		{">=", 0, -1, primGreaterEq},
		{"=", 0, -1, primNumEq},
		{"not", 1, 1, primNot},
		{"number?", 1, 1, primNumberP},
		{"boolean?", 1, 1, primBooleanP},
		{"symbol?", 1, 1, primSymbolP},
		{"pair?", 1, 1, primPairP},
		{"null?", 1, 1, primNullP},
		{"list?", 1, 1, primListP},
		{"cons", 2, 2, primCons},
		{"car", 1, 1, primCar},
		{"cdr", 1, 1, primCdr},
		{"list", 0, -1, primList},
		{"list-ref", 2, 2, primListRef},
		{"list-tail", 2, 2, primListTail},
	}
	for _, p := range procedures {
		h.Define(env, p.name, newPrimitive(h, p.name, p.minArgs, p.maxArgs, p.fn))
	}
}

// NewBaseEnvironment allocates the root environment frame with every
// special form and primitive procedure bound, ready to be extended by
// user definitions.
func NewBaseEnvironment(h *heap.Heap) heap.Handle {
	env := h.NewEnvironment(heap.InvalidHandle)
	registerPrimitives(h, env)
	return env
}
