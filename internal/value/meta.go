package value

import (
	"sync"

	"github.com/chaploud/clj-runtime/internal/corerr"
)

// metaTable holds metadata maps keyed by Value identity rather than widening
// every Value variant with a Meta field. Only composite values (those boxed
// behind a pointer) can carry metadata; Eql-comparable scalars cannot be
// keyed this way and simply never appear here.
var (
	metaTable   = map[any]*Map{}
	metaTableMu sync.RWMutex
)

// GetMeta returns the metadata map attached to v, or nil if it has none.
func GetMeta(v Value) *Map {
	key, ok := metaKey(v)
	if !ok {
		return nil
	}
	metaTableMu.RLock()
	defer metaTableMu.RUnlock()

	return metaTable[key]
}

// WithMeta returns v unchanged (metadata does not affect Equals/hash) but
// records m as its metadata map, replacing any previous entry.
func WithMeta(v Value, m *Map) (Value, error) {
	key, ok := metaKey(v)
	if !ok {
		return nil, typeErrorNoMeta(v)
	}
	metaTableMu.Lock()
	metaTable[key] = m
	metaTableMu.Unlock()

	return v, nil
}

// metaKey returns a comparable identity key for pointer-boxed Values.
func metaKey(v Value) (any, bool) {
	switch v.(type) {
	case *Vector, *List, *Map, *Set, *Symbol, *Function, *Var:
		return v, true
	default:
		return nil, false
	}
}

func typeErrorNoMeta(v Value) error {
	return corerr.Typef("with-meta", "%s values cannot carry metadata", TypeName(v))
}
