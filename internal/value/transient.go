package value

import (
	"strings"

	"github.com/chaploud/clj-runtime/internal/corerr"
)

// TransientKind records which persistent collection a Transient is building.
type TransientKind byte

const (
	TransientVector TransientKind = iota
	TransientMap
	TransientSet
)

// Transient is a single-threaded mutable builder returned by transient().
// It is not a valid map/set key and does not implement Equals; it must not
// escape the building scope. Using it after Persistent!
// freezes it fails with a StateError.
type Transient struct {
	kind   TransientKind
	frozen bool

	vec []Value  // TransientVector
	mp  *Map     // TransientMap (rebuilt each mutation, but never re-copied for freeze)
	set *Set     // TransientSet
}

// NewTransient returns a builder seeded from a persistent collection.
func NewTransient(coll Value) (*Transient, error) {
	switch c := coll.(type) {
	case *Vector:
		return &Transient{kind: TransientVector, vec: c.Elements()}, nil
	case *Map:
		return &Transient{kind: TransientMap, mp: c}, nil
	case *Set:
		return &Transient{kind: TransientSet, set: c}, nil
	default:
		return nil, corerr.Typef("transient", "expects a vector, map, or set, got %s", TypeName(coll))
	}
}

func (t *Transient) Kind() Kind { return KindTransient }

// Equals always returns false: transients are not comparable.
func (t *Transient) Equals(Value) bool { return false }

func (t *Transient) WriteTo(sb *strings.Builder, _ PrintMode) {
	sb.WriteString("#<transient>")
}

func (t *Transient) checkLive(op string) error {
	if t.frozen {
		return corerr.New(corerr.State, op, "transient used after persistent!")
	}

	return nil
}

// ConjBang appends/adds x, mutating the builder in place.
func (t *Transient) ConjBang(x Value) error {
	if err := t.checkLive("conj!"); err != nil {
		return err
	}
	switch t.kind {
	case TransientVector:
		t.vec = append(t.vec, x)
	case TransientSet:
		t.set = t.set.Conj(x)
	default:
		return corerr.Typef("conj!", "cannot conj! onto a map transient; use assoc!")
	}

	return nil
}

// AssocBang sets key/index k to v, mutating the builder in place.
func (t *Transient) AssocBang(k, v Value) error {
	if err := t.checkLive("assoc!"); err != nil {
		return err
	}
	switch t.kind {
	case TransientMap:
		t.mp = t.mp.Assoc(k, v)
	case TransientVector:
		i, ok := k.(Int)
		if !ok {
			return corerr.Typef("assoc!", "vector transient requires an int index, got %s", TypeName(k))
		}
		idx := int(i)
		switch {
		case idx == len(t.vec):
			t.vec = append(t.vec, v)
		case idx < 0 || idx > len(t.vec):
			return corerr.New(corerr.Index, "assoc!", "index %d out of bounds", idx)
		default:
			t.vec[idx] = v
		}
	default:
		return corerr.Typef("assoc!", "cannot assoc! onto a set transient")
	}

	return nil
}

// DissocBang removes k, mutating a map builder in place.
func (t *Transient) DissocBang(k Value) error {
	if err := t.checkLive("dissoc!"); err != nil {
		return err
	}
	if t.kind != TransientMap {
		return corerr.Typef("dissoc!", "dissoc! requires a map transient")
	}
	t.mp = t.mp.Dissoc(k)

	return nil
}

// DisjBang removes v, mutating a set builder in place.
func (t *Transient) DisjBang(v Value) error {
	if err := t.checkLive("disj!"); err != nil {
		return err
	}
	if t.kind != TransientSet {
		return corerr.Typef("disj!", "disj! requires a set transient")
	}
	t.set = t.set.Disj(v)

	return nil
}

// Persistent freezes the builder and returns the finished persistent
// collection. The builder itself becomes unusable afterward.
func (t *Transient) Persistent() (Value, error) {
	if err := t.checkLive("persistent!"); err != nil {
		return nil, err
	}
	t.frozen = true
	switch t.kind {
	case TransientVector:
		return NewVector(t.vec...), nil
	case TransientMap:
		return t.mp, nil
	case TransientSet:
		return t.set, nil
	default:
		return nil, corerr.New(corerr.State, "persistent!", "unknown transient kind")
	}
}
