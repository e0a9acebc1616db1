// Package corerr defines the error taxonomy shared by every layer of the
// evaluator core. Built-ins, the collection layer, the dispatch engine, and
// the regex engine all report failures through a single *CoreError so the
// external interpreter can surface a stable, inspectable error channel
// instead of an assortment of ad-hoc error strings.
package corerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a CoreError per the error taxonomy.
type Kind int

const (
	// Arity means an argument count fell outside the accepted range.
	Arity Kind = iota
	// Type means an operand variant was rejected by the operation.
	Type
	// DivisionByZero means a zero divisor reached /, mod, rem, or quot.
	DivisionByZero
	// ArithmeticOverflow means a checked-arithmetic form wrapped.
	ArithmeticOverflow
	// NoMethod means multimethod dispatch found no applicable method.
	NoMethod
	// AmbiguousDispatch means multiple methods tied with no prefer order.
	AmbiguousDispatch
	// State means an operation was invalid in the value's current lifecycle
	// state: a frozen transient, a deref of an undelivered promise, a pop of
	// an empty vector, or a re-entrant delay/lazy-seq realisation.
	State
	// Eval means the upstream read/analyse/run pipeline failed.
	Eval
	// Index means an out-of-range vector/string index was requested.
	Index
)

func (k Kind) String() string {
	switch k {
	case Arity:
		return "ArityError"
	case Type:
		return "TypeError"
	case DivisionByZero:
		return "DivisionByZero"
	case ArithmeticOverflow:
		return "ArithmeticOverflow"
	case NoMethod:
		return "NoMethodError"
	case AmbiguousDispatch:
		return "AmbiguousDispatchError"
	case State:
		return "StateError"
	case Eval:
		return "EvalError"
	case Index:
		return "IndexError"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// CoreError is the single error type every component in this module
// returns. Op names the built-in or operation that failed.
type CoreError struct {
	Kind  Kind
	Op    string
	Msg   string
	cause error
}

func (e *CoreError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Op, e.Msg)
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/As.
func (e *CoreError) Unwrap() error { return e.cause }

// New builds a CoreError with no wrapped cause.
func New(kind Kind, op, format string, args ...any) *CoreError {
	return &CoreError{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a CoreError that wraps an upstream cause, preserving it for
// errors.Is/As and for %+v stack-trace formatting via github.com/pkg/errors.
func Wrap(kind Kind, op string, cause error, format string, args ...any) *CoreError {
	return &CoreError{
		Kind:  kind,
		Op:    op,
		Msg:   fmt.Sprintf(format, args...),
		cause: errors.WithStack(cause),
	}
}

// Arityf is a convenience constructor for the common "wrong arg count" case.
func Arityf(op string, want string, got int) *CoreError {
	return New(Arity, op, "expects %s argument(s), got %d", want, got)
}

// Typef is a convenience constructor for the common "wrong operand type" case.
func Typef(op, format string, args ...any) *CoreError {
	return New(Type, op, format, args...)
}

// Is reports whether err is a *CoreError of the given kind.
func Is(err error, kind Kind) bool {
	var ce *CoreError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}

	return false
}
