package value

import (
	"strings"

	"github.com/chaploud/clj-runtime/internal/corerr"
)

// Vector is an ordered, O(1)-indexed persistent sequence. conj appends at
// the end. Conj/Assoc/Pop each copy the whole backing array, so no storage
// is shared between a vector and the ones derived from it.
type Vector struct {
	elems []Value
}

// NewVector builds a Vector from the given elements, copying the slice so
// the caller's backing array can't alias it.
func NewVector(elems ...Value) *Vector {
	return &Vector{elems: append([]Value(nil), elems...)}
}

func (v *Vector) Kind() Kind { return KindVector }
func (v *Vector) Len() int   { return len(v.elems) }

// Elements returns a defensive copy of the backing slice.
func (v *Vector) Elements() []Value { return append([]Value(nil), v.elems...) }

// Get returns the element at i, or Nil{} if i is out of range (distinct
// from Nth, which errors on an out-of-range index).
func (v *Vector) Get(i int) Value {
	if i >= 0 && i < len(v.elems) {
		return v.elems[i]
	}

	return Nil{}
}

// Nth is the strict indexed accessor: out of range is an IndexError.
func (v *Vector) Nth(i int) (Value, error) {
	if i < 0 || i >= len(v.elems) {
		return nil, corerr.New(corerr.Index, "nth", "index %d out of bounds for vector of length %d", i, len(v.elems))
	}

	return v.elems[i], nil
}

// Conj appends x, returning a new Vector.
func (v *Vector) Conj(x Value) *Vector {
	next := make([]Value, len(v.elems)+1)
	copy(next, v.elems)
	next[len(v.elems)] = x

	return &Vector{elems: next}
}

// Assoc sets index i to x. i == Len() is equivalent to Conj.
func (v *Vector) Assoc(i int, x Value) (*Vector, error) {
	switch {
	case i == len(v.elems):
		return v.Conj(x), nil
	case i < 0 || i > len(v.elems):
		return nil, corerr.New(corerr.Index, "assoc", "index %d out of bounds for vector of length %d", i, len(v.elems))
	}
	next := make([]Value, len(v.elems))
	copy(next, v.elems)
	next[i] = x

	return &Vector{elems: next}, nil
}

// Pop removes the last element, returning a new Vector.
func (v *Vector) Pop() (*Vector, error) {
	if len(v.elems) == 0 {
		return nil, corerr.New(corerr.State, "pop", "can't pop an empty vector")
	}

	return &Vector{elems: append([]Value(nil), v.elems[:len(v.elems)-1]...)}, nil
}

func (v *Vector) Equals(other Value) bool {
	o, ok := other.(*Vector)
	if !ok || len(v.elems) != len(o.elems) {
		return false
	}
	for i, e := range v.elems {
		if !Eql(e, o.elems[i]) {
			return false
		}
	}

	return true
}

func (v *Vector) WriteTo(sb *strings.Builder, mode PrintMode) {
	sb.WriteByte('[')
	for i, e := range v.elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		e.WriteTo(sb, mode)
	}
	sb.WriteByte(']')
}

// Seq returns nil, or a List holding the same elements in order, matching
// the empty|lazy-seq|list contract collections share (this implementation
// never needs the lazy-seq branch since a Vector's elements are already
// realised).
func (v *Vector) Seq() Value {
	if len(v.elems) == 0 {
		return Nil{}
	}

	return NewList(v.elems...)
}
