// Package builtins implements the host call interface: a table of
// {name, func} built-ins installed as vars in the interpreter. Each func
// validates its own arity and argument types, so a malformed call produces
// the same ArityError/TypeError a user function would raise rather than a
// Go panic; registration adds no wrapper.
package builtins
