// Package allocator provides a scratch-argument arena for the host call
// convention: a throwaway mutable buffer can be borrowed from here instead
// of allocated directly (pkg/builtins creates one Arena per registry but no
// built-in borrows from it), and the arena
// recycles the backing storage via sync.Pool, the same pooling idiom
// gitrdm-gokando's AnswerTrie uses for its trie nodes.
package allocator

import "sync"

// Arena hands out []Value-shaped scratch buffers (stored as []any to stay
// independent of internal/value) and recycles them on Release.
type Arena struct {
	pool *sync.Pool
}

// New creates an Arena whose buffers start with the given capacity.
func New(capacity int) *Arena {
	return &Arena{
		pool: &sync.Pool{
			New: func() any {
				return make([]any, 0, capacity)
			},
		},
	}
}

// Get returns a zero-length scratch slice, reused from the pool when
// possible.
func (a *Arena) Get() []any {
	buf, _ := a.pool.Get().([]any)

	return buf[:0]
}

// Put returns buf to the pool for reuse. Callers must not touch buf after
// calling Put.
func (a *Arena) Put(buf []any) {
	a.pool.Put(buf) //nolint:staticcheck // intentional: buf[:0] already happened in Get
}

// Cloner deep-copies a host value. Built-ins that hand a mutable structure
// to host-side code implement this so the arena can protect the Value
// model's immutability guarantee at the host boundary.
type Cloner interface {
	CloneValue() any
}

// Clone returns a deep copy of v if v implements Cloner, else v itself
// unchanged (true immutable Values need no copy).
func Clone(v any) any {
	if c, ok := v.(Cloner); ok {
		return c.CloneValue()
	}

	return v
}
