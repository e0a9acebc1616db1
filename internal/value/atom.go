package value

import (
	"strings"
	"sync"
)

// Atom is a mutable cell exposing compare-and-swap semantics. On a
// single-threaded substrate CAS reduces to
// load-modify-store; we keep a real mutex-guarded CAS anyway since nothing
// about the Go Value model prevents a future multi-goroutine host from
// reusing this type, and it costs nothing on the single-threaded path.
type Atom struct {
	mu  sync.Mutex
	val Value
}

// NewAtom creates an Atom holding init.
func NewAtom(init Value) *Atom { return &Atom{val: init} }

func (a *Atom) Kind() Kind        { return KindAtom }
func (a *Atom) Equals(Value) bool { return false }

func (a *Atom) WriteTo(sb *strings.Builder, mode PrintMode) {
	sb.WriteString("#<atom ")
	a.Deref().WriteTo(sb, mode)
	sb.WriteByte('>')
}

// Deref returns the current value.
func (a *Atom) Deref() Value {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.val
}

// Reset unconditionally sets the value, returning it.
func (a *Atom) Reset(v Value) Value {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.val = v

	return v
}

// CompareAndSet sets the value to newVal iff the current value Eql's old,
// reporting whether the swap happened.
func (a *Atom) CompareAndSet(old, newVal Value) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !Eql(a.val, old) {
		return false
	}
	a.val = newVal

	return true
}

// Swap applies f to the current value and stores the result, returning it.
// Errors from f abort the swap, leaving the Atom unchanged.
func (a *Atom) Swap(f func(Value) (Value, error)) (Value, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	next, err := f(a.val)
	if err != nil {
		return nil, err
	}
	a.val = next

	return next, nil
}
