// Package gen emits the conditional chain for a parsed clause list.
//
// The expansion is a right fold over the clauses: the innermost piece is the
// default body (or nothing, in statement form) and each clause wraps the rest
// in `if guard { body } else ...`. Clause 1 therefore becomes the outermost
// test, which gives first-success-wins evaluation with no control-flow
// machinery beyond the host's own `if`.
//
// Two emission modes exist. Statement mode produces a plain if/else chain.
// Expression mode (when the block carries a result type) produces an
// immediately invoked function literal returning that type; every guard must
// fall through to a default, so a missing default is rejected here rather
// than left for the compiler to trip over.
package gen
