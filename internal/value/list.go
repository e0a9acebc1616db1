package value

import (
	"strings"

	"github.com/chaploud/clj-runtime/internal/corerr"
)

// List is a singly linked, persistent sequence. conj adds at the front.
// Structural sharing is automatic: Cons just wraps the existing tail.
type List struct {
	head Value
	tail *List // nil marks the empty list
	n    int
}

// EmptyList is the canonical empty list singleton.
var EmptyList = &List{}

// NewList builds a List from elems in order (elems[0] becomes the head).
func NewList(elems ...Value) *List {
	l := EmptyList
	for i := len(elems) - 1; i >= 0; i-- {
		l = l.Cons(elems[i])
	}

	return l
}

func (l *List) Kind() Kind { return KindList }
func (l *List) Count() int { return l.n }

// IsEmpty reports whether the list has no elements.
func (l *List) IsEmpty() bool { return l.tail == nil && l.n == 0 }

// First returns the head element, or Nil{} if the list is empty.
func (l *List) First() Value {
	if l.IsEmpty() {
		return Nil{}
	}

	return l.head
}

// Rest returns the tail list, or the empty list if there is no tail.
func (l *List) Rest() *List {
	if l.IsEmpty() || l.tail == nil {
		return EmptyList
	}

	return l.tail
}

// Cons prepends x, returning a new List that shares l as its tail.
func (l *List) Cons(x Value) *List {
	return &List{head: x, tail: l, n: l.n + 1}
}

// Elements returns the list's elements in order as a fresh slice.
func (l *List) Elements() []Value {
	out := make([]Value, 0, l.n)
	for cur := l; !cur.IsEmpty(); cur = cur.Rest() {
		out = append(out, cur.First())
	}

	return out
}

func (l *List) Equals(other Value) bool {
	o, ok := other.(*List)
	if !ok || l.n != o.n {
		return false
	}
	a, b := l, o
	for !a.IsEmpty() {
		if !Eql(a.First(), b.First()) {
			return false
		}
		a, b = a.Rest(), b.Rest()
	}

	return true
}

func (l *List) WriteTo(sb *strings.Builder, mode PrintMode) {
	sb.WriteByte('(')
	for cur, i := l, 0; !cur.IsEmpty(); cur, i = cur.Rest(), i+1 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		cur.First().WriteTo(sb, mode)
	}
	sb.WriteByte(')')
}

// NthList is a convenience used by builtins that index into a list
// positionally (e.g. destructuring); it is O(n).
func NthList(l *List, i int) (Value, error) {
	cur := l
	for ; i > 0 && !cur.IsEmpty(); i-- {
		cur = cur.Rest()
	}
	if cur.IsEmpty() {
		return nil, corerr.New(corerr.Index, "nth", "index out of bounds for list")
	}

	return cur.First(), nil
}
