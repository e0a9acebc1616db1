package value

import (
	"fmt"
	"strings"
)

// Var is a namespace-owned mutable cell, the binding target of a top-level
// def. Resolving a symbol that names a Var yields the Var's root value, not
// the Var itself — code that wants the cell uses `resolve`/`var` to get it
// explicitly.
type Var struct {
	NS   string
	Name string
	Root Value
}

// NewVar creates a Var bound to root in namespace ns.
func NewVar(ns, name string, root Value) *Var {
	return &Var{NS: ns, Name: name, Root: root}
}

func (v *Var) Kind() Kind        { return KindVar }
func (v *Var) Equals(Value) bool { return false }
func (v *Var) WriteTo(sb *strings.Builder, _ PrintMode) {
	fmt.Fprintf(sb, "#'%s/%s", v.NS, v.Name)
}

// Set assigns a new root value (def re-evaluation, set!).
func (v *Var) Set(val Value) { v.Root = val }
