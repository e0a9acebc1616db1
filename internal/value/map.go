package value

import "strings"

// mapEntry is one key/value pair of a persistent Map, held in insertion
// order.
type mapEntry struct {
	key Value
	val Value
}

// Map is a persistent key→value mapping. Iteration order of a Map built by
// repeated Assoc is insertion order (see DESIGN.md for the HAMT trade-off
// this forgoes). Lookup uses a structural
// hash index over the insertion-order slice so Get/Contains are O(1)
// average instead of a full Eql scan, without changing the externally
// observable insertion-ordered iteration. Assoc and Dissoc copy the entry
// slice and rebuild the index, so each is O(n).
type Map struct {
	entries []mapEntry
	index   map[uint64][]int // hash -> indices into entries, for collisions
}

// EmptyMap is the canonical empty map.
var EmptyMap = &Map{}

// NewMap builds a Map from alternating key, value arguments. Later
// duplicate keys overwrite earlier ones but keep the earlier key's
// position, matching assoc semantics applied in order.
func NewMap(kvs ...Value) *Map {
	m := EmptyMap
	for i := 0; i+1 < len(kvs); i += 2 {
		m = m.Assoc(kvs[i], kvs[i+1])
	}

	return m
}

func (m *Map) Kind() Kind { return KindMap }
func (m *Map) Count() int { return len(m.entries) }

func (m *Map) findIndex(k Value) int {
	if m.index == nil {
		return -1
	}
	h := StructuralHash(k)
	for _, i := range m.index[h] {
		if Eql(m.entries[i].key, k) {
			return i
		}
	}

	return -1
}

// Get returns the value for k, or def if k is absent.
func (m *Map) Get(k, def Value) Value {
	if i := m.findIndex(k); i >= 0 {
		return m.entries[i].val
	}

	return def
}

// Contains reports whether k is present.
func (m *Map) Contains(k Value) bool { return m.findIndex(k) >= 0 }

func (m *Map) rebuildIndex() map[uint64][]int {
	idx := make(map[uint64][]int, len(m.entries))
	for i, e := range m.entries {
		h := StructuralHash(e.key)
		idx[h] = append(idx[h], i)
	}

	return idx
}

// Assoc returns a new Map with k bound to v.
func (m *Map) Assoc(k, v Value) *Map {
	if i := m.findIndex(k); i >= 0 {
		entries := append([]mapEntry(nil), m.entries...)
		entries[i] = mapEntry{key: k, val: v}
		nm := &Map{entries: entries}
		nm.index = nm.rebuildIndex()

		return nm
	}
	entries := make([]mapEntry, len(m.entries)+1)
	copy(entries, m.entries)
	entries[len(m.entries)] = mapEntry{key: k, val: v}
	nm := &Map{entries: entries}
	nm.index = nm.rebuildIndex()

	return nm
}

// Dissoc returns a new Map with k removed, or m itself if k was absent.
func (m *Map) Dissoc(k Value) *Map {
	i := m.findIndex(k)
	if i < 0 {
		return m
	}
	entries := make([]mapEntry, 0, len(m.entries)-1)
	entries = append(entries, m.entries[:i]...)
	entries = append(entries, m.entries[i+1:]...)
	nm := &Map{entries: entries}
	nm.index = nm.rebuildIndex()

	return nm
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []Value {
	out := make([]Value, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.key
	}

	return out
}

// Vals returns the values in insertion order.
func (m *Map) Vals() []Value {
	out := make([]Value, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.val
	}

	return out
}

// Seq returns a List of [k v] 2-element Vectors, or Nil{} if empty.
func (m *Map) Seq() Value {
	if len(m.entries) == 0 {
		return Nil{}
	}
	pairs := make([]Value, len(m.entries))
	for i, e := range m.entries {
		pairs[i] = NewVector(e.key, e.val)
	}

	return NewList(pairs...)
}

func (m *Map) Equals(other Value) bool {
	o, ok := other.(*Map)
	if !ok || len(m.entries) != len(o.entries) {
		return false
	}
	for _, e := range m.entries {
		if !o.Contains(e.key) || !Eql(o.Get(e.key, Nil{}), e.val) {
			return false
		}
	}

	return true
}

func (m *Map) WriteTo(sb *strings.Builder, mode PrintMode) {
	sb.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		e.key.WriteTo(sb, mode)
		sb.WriteByte(' ')
		e.val.WriteTo(sb, mode)
	}
	sb.WriteByte('}')
}
