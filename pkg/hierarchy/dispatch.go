package hierarchy

import (
	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

// candidate pairs a registered dispatch key with its method.
type candidate struct {
	key    value.Value
	method value.Value
}

// Resolve implements the dispatch procedure: an exact match on
// the method table wins outright; otherwise every method whose key the
// dispatch value isa? is a candidate, the most specific one (by isa? or by
// an explicit prefer-method entry) is chosen, a genuine tie is an
// AmbiguousDispatchError, and no candidates falls back to the default
// method or a NoMethodError.
func Resolve(mf *value.MultiFn, h *Hierarchy, dispatchVal value.Value) (value.Value, error) {
	if exact := mf.Methods.Get(dispatchVal, nil); exact != nil {
		return exact, nil
	}

	var candidates []candidate
	for _, k := range mf.Methods.Keys() {
		if h.IsA(dispatchVal, k) {
			candidates = append(candidates, candidate{key: k, method: mf.Methods.Get(k, nil)})
		}
	}

	if len(candidates) == 0 {
		if mf.Default != nil {
			return mf.Default, nil
		}

		return nil, corerr.New(corerr.NoMethod, mf.Name, "no method found for dispatch value %s", value.Repr(dispatchVal))
	}

	if len(candidates) == 1 {
		return candidates[0].method, nil
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if dominates(mf, h, c.key, best.key) {
			best = c
		}
	}
	for _, c := range candidates {
		if value.Eql(c.key, best.key) {
			continue
		}
		if !dominates(mf, h, best.key, c.key) {
			return nil, corerr.New(corerr.AmbiguousDispatch, mf.Name,
				"ambiguous dispatch for value %s: %s and %s are not comparable",
				value.Repr(dispatchVal), value.Repr(best.key), value.Repr(c.key))
		}
	}

	return best.method, nil
}

// dominates reports whether a should be preferred over b: either an
// explicit prefer-method entry says so, or a is strictly more specific
// than b in the hierarchy.
func dominates(mf *value.MultiFn, h *Hierarchy, a, b value.Value) bool {
	if mf.Prefers(a, b) {
		return true
	}
	if mf.Prefers(b, a) {
		return false
	}

	return h.IsA(a, b) && !h.IsA(b, a)
}
