package hierarchy

import (
	"sync"

	"github.com/chaploud/clj-runtime/internal/value"
)

// Hierarchy is a directed acyclic parent relation over arbitrary Values
// (typically keywords or symbols used as type tags). It backs both isa?
// and multimethod dispatch.
type Hierarchy struct {
	mu      sync.RWMutex
	parents map[string]map[string]value.Value // child key -> parent key -> parent Value
	byKey   map[string]value.Value            // key -> canonical Value, for Ancestors/Descendants output
}

// New creates an empty Hierarchy.
func New() *Hierarchy {
	return &Hierarchy{
		parents: make(map[string]map[string]value.Value),
		byKey:   make(map[string]value.Value),
	}
}

var (
	globalMu sync.RWMutex
	global   = New()
)

// Global returns the process-wide default hierarchy that derive/isa?/
// make-hierarchy-less builtins operate on.
func Global() *Hierarchy {
	globalMu.RLock()
	defer globalMu.RUnlock()

	return global
}

// Reset discards the global hierarchy's accumulated relations. Intended for
// test isolation between cases that call derive.
func Reset() {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = New()
}

func key(v value.Value) string { return value.Repr(v) }

// Derive adds parent as a direct ancestor of child. It refuses to introduce
// a cycle (deriving an existing ancestor as a descendant).
func (h *Hierarchy) Derive(child, parent value.Value) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.isAncestorLocked(parent, child) {
		return nil // already related this way; derive is idempotent, not an error
	}
	if value.Eql(child, parent) || h.isAncestorLocked(child, parent) {
		return nil // would close a cycle; refused without an error
	}

	ck, pk := key(child), key(parent)
	h.byKey[ck] = child
	h.byKey[pk] = parent
	if h.parents[ck] == nil {
		h.parents[ck] = make(map[string]value.Value)
	}
	h.parents[ck][pk] = parent

	return nil
}

// Underive removes a direct parent relation, if present.
func (h *Hierarchy) Underive(child, parent value.Value) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.parents[key(child)]; ok {
		delete(set, key(parent))
	}
}

// IsA reports whether child equals parent, has parent as a (transitive)
// ancestor, or (when both are equal-length vectors) is isa? parent
// element-wise, supporting dispatch on a vector of tags.
func (h *Hierarchy) IsA(child, parent value.Value) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.isALocked(child, parent)
}

// isALocked is IsA's body, callable recursively without re-acquiring
// h.mu (sync.RWMutex.RLock is not safe to nest). Caller holds h.mu.
func (h *Hierarchy) isALocked(child, parent value.Value) bool {
	if value.Eql(child, parent) {
		return true
	}
	if h.isAncestorLocked(parent, child) {
		return true
	}
	cv, cok := child.(*value.Vector)
	pv, pok := parent.(*value.Vector)
	if !cok || !pok || cv.Len() != pv.Len() {
		return false
	}
	for i := 0; i < cv.Len(); i++ {
		if !h.isALocked(cv.Get(i), pv.Get(i)) {
			return false
		}
	}

	return true
}

// isAncestorLocked reports whether ancestor is reachable by walking parent
// edges from descendant. Caller holds h.mu.
func (h *Hierarchy) isAncestorLocked(ancestor, descendant value.Value) bool {
	ak := key(ancestor)
	visited := map[string]bool{}
	queue := []string{key(descendant)}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for pk := range h.parents[cur] {
			if pk == ak {
				return true
			}
			queue = append(queue, pk)
		}
	}

	return false
}

// Ancestors returns every tag that v derives from, directly or transitively.
func (h *Hierarchy) Ancestors(v value.Value) []value.Value {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []value.Value
	seen := map[string]bool{}
	queue := []string{key(v)}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for pk, pv := range h.parents[cur] {
			if seen[pk] {
				continue
			}
			seen[pk] = true
			out = append(out, pv)
			queue = append(queue, pk)
		}
	}

	return out
}

// Descendants returns every tag that derives from v, directly or
// transitively.
func (h *Hierarchy) Descendants(v value.Value) []value.Value {
	h.mu.RLock()
	defer h.mu.RUnlock()

	vk := key(v)
	var out []value.Value
	for ck, set := range h.parents {
		if _, ok := set[vk]; ok {
			out = append(out, h.byKey[ck])

			continue
		}
	}
	// transitive: repeat until fixed point over the direct result set
	frontier := out
	seen := map[string]bool{}
	for _, d := range out {
		seen[key(d)] = true
	}
	for len(frontier) > 0 {
		var next []value.Value
		for _, f := range frontier {
			fk := key(f)
			for ck, set := range h.parents {
				if _, ok := set[fk]; ok && !seen[ck] {
					seen[ck] = true
					v := h.byKey[ck]
					out = append(out, v)
					next = append(next, v)
				}
			}
		}
		frontier = next
	}

	return out
}
