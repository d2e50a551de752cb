// Package heap implements the runtime value system for scm.
//
// Unlike a conventional Go interpreter that leans on the host garbage
// collector, every scm value is an entity tracked by an explicit Heap and
// addressed by an opaque Handle. The Heap owns allocation, field access,
// and reachability: a value only survives a Collect if something still
// points to it, directly or transitively, from a supplied root.
//
// Value Kinds:
//
//	Number      64-bit signed integers
//	Boolean     #t / #f
//	Symbol      identifiers (not interned: each NewSymbol is a new value)
//	Pair        a mutable cons cell (car, cdr)
//	EmptyList   the unique value '()
//	Primitive   a built-in procedure or special form
//	Closure     a user-defined procedure (params, body, captured env)
//	Environment a chain of binding frames
//
// Children:
//
// Pair, Closure, and Environment are the only kinds that can hold
// references to other values; Collect walks those edges to find every
// value reachable from a root and discards the rest.
//
// Environment lookup, define, and assign live in environment.go; list
// flattening and the cycle-safe IsProperList walk live in list.go; the
// printed-form renderer lives in print.go.
package heap
