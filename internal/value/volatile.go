package value

import "strings"

// Volatile is a plain mutable cell with no atomicity guarantee: vreset!
// and vswap! update it directly.
type Volatile struct {
	val Value
}

func NewVolatile(init Value) *Volatile { return &Volatile{val: init} }

func (v *Volatile) Kind() Kind        { return KindVolatile }
func (v *Volatile) Equals(Value) bool { return false }
func (v *Volatile) WriteTo(sb *strings.Builder, mode PrintMode) {
	sb.WriteString("#<volatile ")
	v.val.WriteTo(sb, mode)
	sb.WriteByte('>')
}

func (v *Volatile) Deref() Value { return v.val }

func (v *Volatile) Reset(val Value) Value {
	v.val = val

	return val
}

func (v *Volatile) Swap(f func(Value) (Value, error)) (Value, error) {
	next, err := f(v.val)
	if err != nil {
		return nil, err
	}
	v.val = next

	return next, nil
}
