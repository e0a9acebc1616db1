// Package value implements the runtime value system of the evaluator core.
//
// Every datum the interpreter manipulates — numbers, collections, symbols,
// functions, reference cells, lazily realised sequences, compiled regexes —
// is a Value. The package is organised as a tagged union rather than a class
// hierarchy: Kind() reports a variant tag, and callers type-switch on the
// concrete Go type to extract a payload. This mirrors how the value system
// of a small dynamic language is supposed to look in Go: no inheritance,
// no runtime reflection in the hot path, just a closed set of concrete
// types behind one interface.
//
// Design principles:
//
// Immutability:
//
//	Persistent collections and scalar values are immutable after
//	construction. The handful of mutable cells (Atom, Var, Volatile,
//	Transient, Matcher, Promise, and a MultiFn's method table) are the
//	deliberate, explicit exceptions.
//
// Structural sharing:
//
//	assoc/conj/dissoc on a persistent collection return a new Value that
//	may share backing storage with its predecessor. Callers must never
//	mutate through either.
//
// Equality vs numeric equality:
//
//	Eql is structural and variant-respecting (a Vector is never Eql to a
//	List). NumEquals coerces int/float and is used for the language-level
//	== operator.
package value
