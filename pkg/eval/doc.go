// Package eval provides the expression evaluator for the scm interpreter.
//
// The evaluator is the last stage of the pipeline: it takes a value the
// reader built directly out of source text and computes its result by
// walking it. There is no separate compilation or AST-lowering step.
//
// Evaluation Strategy:
//   - Numbers, booleans, the empty list, primitives, and closures
//     evaluate to themselves.
//   - A symbol evaluates by looking its name up in the current
//     environment chain, nearest frame first.
//   - A pair evaluates its car; if that value is a special-form
//     Primitive, the rest of the pair is handled unevaluated by that
//     form's own rules, otherwise every remaining element is evaluated
//     left to right and the result is applied as a procedure call.
//
// Error Handling:
//
// Eval and Apply return scmerr.SyntaxError for malformed special-form
// shapes, scmerr.NameError for unbound symbols, and scmerr.RuntimeError
// for every other semantic violation (type mismatches, arity mismatches,
// division by zero, applying a non-procedure).
package eval
