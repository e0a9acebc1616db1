package value

import "strings"

// Reduced wraps a Value to signal "stop reducing". Reduction drivers (see
// pkg/builtins/reductions.go) unwrap it and halt as soon as they observe one.
type Reduced struct {
	Val Value
}

func NewReduced(v Value) *Reduced { return &Reduced{Val: v} }

func (r *Reduced) Kind() Kind        { return KindReduced }
func (r *Reduced) Equals(Value) bool { return false }
func (r *Reduced) WriteTo(sb *strings.Builder, mode PrintMode) {
	sb.WriteString("#<reduced ")
	r.Val.WriteTo(sb, mode)
	sb.WriteByte('>')
}

// Unreduced returns the inner value if v is Reduced, else v itself.
func Unreduced(v Value) Value {
	if r, ok := v.(*Reduced); ok {
		return r.Val
	}

	return v
}

// IsReduced reports whether v is a Reduced sentinel.
func IsReduced(v Value) bool {
	_, ok := v.(*Reduced)

	return ok
}
