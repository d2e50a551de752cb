package heap

import "github.com/conneroisu/scm/pkg/scmerr"

// ListToSlice flattens a proper list (a chain of Pairs ending in the
// empty list) into a slice of element handles. It returns a
// *scmerr.RuntimeError if handle is not a proper list, including when it
// is an improper (dotted) list.
func (h *Heap) ListToSlice(handle Handle) ([]Handle, error) {
	var out []Handle
	cur := handle
	for {
		switch h.Kind(cur) {
		case KindEmptyList:
			return out, nil
		case KindPair:
			out = append(out, h.Car(cur))
			cur = h.Cdr(cur)
		default:
			return nil, scmerr.NewRuntimeError("expected a proper list")
		}
	}
}

// SliceToList builds a fresh proper list out of items, in order.
func (h *Heap) SliceToList(items []Handle) Handle {
	return h.SliceToImproperList(items, h.Empty())
}

// SliceToImproperList builds a fresh list out of items terminated by
// tail instead of the empty list, producing a dotted list when tail is
// not itself a list.
func (h *Heap) SliceToImproperList(items []Handle, tail Handle) Handle {
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = h.NewPair(items[i], result)
	}
	return result
}

// IsProperList reports whether handle is a finite chain of Pairs ending
// in the empty list. It uses Floyd's tortoise-and-hare walk so a cyclic
// spine is correctly reported as not a proper list instead of looping
// forever.
func (h *Heap) IsProperList(handle Handle) bool {
	slow, fast := handle, handle
	for {
		if h.Kind(fast) == KindEmptyList {
			return true
		}
		if h.Kind(fast) != KindPair {
			return false
		}
		fast = h.Cdr(fast)
		if h.Kind(fast) == KindEmptyList {
			return true
		}
		if h.Kind(fast) != KindPair {
			return false
		}
		fast = h.Cdr(fast)
		slow = h.Cdr(slow)
		if fast == slow {
			return false
		}
	}
}
