package value

import "strings"

// MultiFn is a dispatcher: it holds a dispatch function, a method table
// keyed by dispatch value, an optional default method, an optional prefer
// table, and an optional local hierarchy. The dispatch procedure itself
// (isa? resolution, prefer-table tie-breaking) lives in pkg/hierarchy,
// which depends on this package, not the other way around — MultiFn is
// pure data here.
//
// Methods/PreferTable/Hierarchy are reassigned wholesale on every mutation
// (defmethod, remove-method, prefer-method): a new persistent Map is built
// and the pointer is swapped rather than mutating the map in place.
type MultiFn struct {
	Name        string
	DispatchFn  Value
	Methods     *Map // dispatch-value -> method Value
	Default     Value
	PreferTable *Map // preferred dispatch-value -> *Set of dispatch-values it beats

	// Hierarchy, when non-nil, is an *Opaque wrapping a *pkg/hierarchy.Hierarchy
	// this multi-fn dispatches against instead of the global hierarchy. It is
	// Opaque rather than a typed field because internal/value cannot import
	// pkg/hierarchy without a cycle; pkg/interpreter unwraps it.
	Hierarchy *Opaque
}

// NewMultiFn creates a MultiFn with empty method/prefer tables.
func NewMultiFn(name string, dispatchFn Value) *MultiFn {
	return &MultiFn{
		Name:        name,
		DispatchFn:  dispatchFn,
		Methods:     EmptyMap,
		PreferTable: EmptyMap,
	}
}

func (m *MultiFn) Kind() Kind        { return KindMultiFn }
func (m *MultiFn) Equals(Value) bool { return false }
func (m *MultiFn) WriteTo(sb *strings.Builder, _ PrintMode) {
	sb.WriteString("#<multi-fn ")
	sb.WriteString(m.Name)
	sb.WriteByte('>')
}

// AddMethod installs or replaces the method for dispatchVal.
func (m *MultiFn) AddMethod(dispatchVal, method Value) {
	m.Methods = m.Methods.Assoc(dispatchVal, method)
}

// RemoveMethod drops the method registered for dispatchVal.
func (m *MultiFn) RemoveMethod(dispatchVal Value) {
	m.Methods = m.Methods.Dissoc(dispatchVal)
}

// RemoveAllMethods clears the method table and the default method.
func (m *MultiFn) RemoveAllMethods() {
	m.Methods = EmptyMap
	m.Default = nil
}

// Prefer records that preferred beats over when dispatch is ambiguous
// between them.
func (m *MultiFn) Prefer(preferred, over Value) {
	existing, ok := m.PreferTable.Get(preferred, nil).(*Set)
	if !ok {
		existing = EmptySet
	}
	m.PreferTable = m.PreferTable.Assoc(preferred, existing.Conj(over))
}

// Prefers reports whether a beats b, directly or transitively through a
// chain of prefer-method entries (a beats x, x beats b, ...).
func (m *MultiFn) Prefers(a, b Value) bool {
	visited := map[string]bool{}
	queue := []Value{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		k := Repr(cur)
		if visited[k] {
			continue
		}
		visited[k] = true
		set, ok := m.PreferTable.Get(cur, nil).(*Set)
		if !ok {
			continue
		}
		for _, beaten := range set.Elements() {
			if Eql(beaten, b) {
				return true
			}
			queue = append(queue, beaten)
		}
	}

	return false
}
