package value

import "strings"

// Set is an unordered collection of distinct values, implemented as a Map
// keyed by element with Nil{} values.
type Set struct {
	m *Map
}

// EmptySet is the canonical empty set.
var EmptySet = &Set{m: EmptyMap}

// NewSet builds a Set from elems, discarding duplicates (first occurrence
// wins its position).
func NewSet(elems ...Value) *Set {
	m := EmptyMap
	for _, e := range elems {
		m = m.Assoc(e, Nil{})
	}

	return &Set{m: m}
}

func (s *Set) Kind() Kind  { return KindSet }
func (s *Set) Count() int  { return s.m.Count() }
func (s *Set) Contains(v Value) bool { return s.m.Contains(v) }

// Elements returns the set's members in insertion order.
func (s *Set) Elements() []Value { return s.m.Keys() }

// Conj returns a new Set with v added (a no-op Value-wise if already present).
func (s *Set) Conj(v Value) *Set { return &Set{m: s.m.Assoc(v, Nil{})} }

// Disj returns a new Set with v removed.
func (s *Set) Disj(v Value) *Set { return &Set{m: s.m.Dissoc(v)} }

// Seq returns a List of the set's elements, or Nil{} if empty.
func (s *Set) Seq() Value {
	if s.Count() == 0 {
		return Nil{}
	}

	return NewList(s.Elements()...)
}

func (s *Set) Equals(other Value) bool {
	o, ok := other.(*Set)
	if !ok || s.Count() != o.Count() {
		return false
	}
	for _, e := range s.Elements() {
		if !o.Contains(e) {
			return false
		}
	}

	return true
}

func (s *Set) WriteTo(sb *strings.Builder, mode PrintMode) {
	sb.WriteString("#{")
	for i, e := range s.Elements() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		e.WriteTo(sb, mode)
	}
	sb.WriteByte('}')
}
