package heap

import (
	"strconv"
	"strings"
)

// Print renders handle in the printed representation used for the result
// of a top-level evaluation: integers in decimal, #t/#f for booleans,
// symbols verbatim, () for the empty list, lists as parenthesized,
// space-separated elements with a " . " before a non-list tail.
//
// A pair spine that reaches a cell it is still in the middle of printing
// (a cycle built by set-car! or set-cdr!) renders the remainder as "..."
// instead of recursing forever. Structure that is merely shared, not
// cyclic, is printed in full each time it appears.
func (h *Heap) Print(handle Handle) string {
	return h.print(handle, make(map[Handle]bool))
}

func (h *Heap) print(handle Handle, seen map[Handle]bool) string {
	obj := h.get(handle)
	switch obj.kind {
	case KindNumber:
		return strconv.FormatInt(obj.number, 10)
	case KindBoolean:
		if obj.boolean {
			return "#t"
		}
		return "#f"
	case KindSymbol:
		return obj.symbol
	case KindEmptyList:
		return "()"
	case KindPrimitive:
		return "#<primitive:" + obj.prim.Name + ">"
	case KindClosure:
		return "#<procedure>"
	case KindEnvironment:
		return "#<environment>"
	case KindPair:
		return h.printPair(handle, seen)
	default:
		return "#<unknown>"
	}
}

func (h *Heap) printPair(handle Handle, seen map[Handle]bool) string {
	var sb strings.Builder
	var visited []Handle
	defer func() {
		for _, c := range visited {
			delete(seen, c)
		}
	}()
	sb.WriteByte('(')
	cur := handle
	first := true
loop:
	for {
		if seen[cur] {
			sb.WriteString(" ...")
			break loop
		}
		seen[cur] = true
		visited = append(visited, cur)
		obj := h.get(cur)
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(h.print(obj.car, seen))

		next := obj.cdr
		switch h.get(next).kind {
		case KindEmptyList:
			break loop
		case KindPair:
			cur = next
		default:
			sb.WriteString(" . ")
			sb.WriteString(h.print(next, seen))
			break loop
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
