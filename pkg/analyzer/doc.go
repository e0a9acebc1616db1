// Package analyzer lowers value.Value form trees produced by pkg/reader
// into types.Node, recognising special forms (def, fn, let*, if, do, quote,
// quasiquote, and, or, loop, recur, delay, lazy-seq) and treating everything else as
// ordinary application or a self-evaluating literal.
package analyzer
