// Package reader builds heap values directly out of a token stream.
//
// scm is homoiconic: there is no separate AST type distinct from runtime
// data. Reading "(+ 1 2)" allocates exactly the Pair/Symbol/Number chain
// that the evaluator will later walk, the same chain a program could
// build itself with cons and quote. The reader's only job is turning
// tokens into that chain, including the two pieces of surface syntax that
// have no literal heap representation of their own: a dotted tail after
// "." and the quote abbreviation "'x", which reads as (quote x).
package reader
