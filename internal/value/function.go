package value

import (
	"fmt"
	"strings"
)

// Function is a closure over a captured Environment, with formal
// parameters and (optionally) a variadic rest parameter. Body is an
// interface{} rather than a concrete AST type to keep this package free of
// a dependency on internal/types' Node type; pkg/interpreter type-asserts
// it back to []types.Node when it evaluates a call.
type Function struct {
	Name     string
	Params   []string
	Variadic string // name of the rest parameter, or "" if not variadic
	Body     any
	Env      Environment
}

// NewFunction creates a closure over env.
func NewFunction(name string, params []string, variadic string, body any, env Environment) *Function {
	return &Function{Name: name, Params: params, Variadic: variadic, Body: body, Env: env}
}

func (f *Function) Kind() Kind          { return KindFunction }
func (f *Function) Equals(Value) bool   { return false }
func (f *Function) WriteTo(sb *strings.Builder, _ PrintMode) {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	fmt.Fprintf(sb, "#<fn %s>", name)
}

// Builtin is a host-implemented function. Arity/type validation happens
// inside fn; the registration layer in pkg/builtins installs fn under a
// name as it is, without a wrapper, and fn receives only the argument
// slice.
type Builtin struct {
	Name string
	fn   func(args []Value) (Value, error)
}

// NewBuiltin wraps a Go function as a callable Builtin Value.
func NewBuiltin(name string, fn func(args []Value) (Value, error)) *Builtin {
	return &Builtin{Name: name, fn: fn}
}

func (b *Builtin) Kind() Kind { return KindFunction }
func (b *Builtin) Equals(v Value) bool {
	other, ok := v.(*Builtin)

	return ok && b.Name == other.Name
}
func (b *Builtin) WriteTo(sb *strings.Builder, _ PrintMode) { fmt.Fprintf(sb, "#<builtin %s>", b.Name) }

// Apply calls the wrapped Go function directly. Builtins never need the
// tree-walker, unlike Function, so this does not go through pkg/interpreter.
func (b *Builtin) Apply(args []Value) (Value, error) { return b.fn(args) }

// PartialFn is the result of `partial f a b`: a callable that prepends a
// fixed argument prefix to whatever arguments it is later called with.
type PartialFn struct {
	Fn     Value
	Preset []Value
}

func NewPartialFn(fn Value, preset ...Value) *PartialFn {
	return &PartialFn{Fn: fn, Preset: append([]Value(nil), preset...)}
}

func (p *PartialFn) Kind() Kind        { return KindPartial }
func (p *PartialFn) Equals(Value) bool { return false }
func (p *PartialFn) WriteTo(sb *strings.Builder, _ PrintMode) { sb.WriteString("#<partial-fn>") }

// Args returns the full argument list (preset prefix followed by args).
func (p *PartialFn) Args(args []Value) []Value {
	out := make([]Value, 0, len(p.Preset)+len(args))
	out = append(out, p.Preset...)

	return append(out, args...)
}

// CompFn is the result of `comp f g h`: calling it calls the rightmost
// function first and threads its result leftward.
type CompFn struct {
	Fns []Value // in comp() call order: comp(f, g, h) applies h, then g, then f
}

func NewCompFn(fns ...Value) *CompFn { return &CompFn{Fns: append([]Value(nil), fns...)} }

func (c *CompFn) Kind() Kind        { return KindComp }
func (c *CompFn) Equals(Value) bool { return false }
func (c *CompFn) WriteTo(sb *strings.Builder, _ PrintMode) { sb.WriteString("#<comp-fn>") }
