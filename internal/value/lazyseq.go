package value

import (
	"strings"

	"github.com/chaploud/clj-runtime/internal/corerr"
)

// LazySeq is a deferred sequence: first observation invokes its producer
// thunk, interprets the result as a sequence, caches it, and drops the
// thunk reference. Realisation is idempotent and not thread-safe — this is
// a single-writer cell.
type LazySeq struct {
	thunk      func() (Value, error)
	cached     Value
	realised   bool
	inProgress bool
}

// NewLazySeq wraps thunk in an unrealised LazySeq.
func NewLazySeq(thunk func() (Value, error)) *LazySeq {
	return &LazySeq{thunk: thunk}
}

func (l *LazySeq) Kind() Kind        { return KindLazySeq }
func (l *LazySeq) Equals(Value) bool { return false }

func (l *LazySeq) WriteTo(sb *strings.Builder, mode PrintMode) {
	if !l.realised {
		sb.WriteString("#<lazy-seq>")

		return
	}
	l.cached.WriteTo(sb, mode)
}

// Realised reports whether the thunk has been run.
func (l *LazySeq) Realised() bool { return l.realised }

// Realise forces the sequence, chaining through any further lazy-seqs the
// thunk returns until a concrete value (Nil, List, Vector, Str) is reached.
func (l *LazySeq) Realise() (Value, error) {
	if l.realised {
		return l.cached, nil
	}
	if l.inProgress {
		return nil, corerr.New(corerr.State, "lazy-seq", "lazy-seq realised re-entrantly from within its own thunk")
	}
	l.inProgress = true
	v, err := l.thunk()
	l.inProgress = false
	if err != nil {
		return nil, err
	}
	if next, ok := v.(*LazySeq); ok {
		v, err = next.Realise()
		if err != nil {
			return nil, err
		}
	}
	if v == nil {
		v = Nil{}
	}
	l.cached = v
	l.realised = true
	l.thunk = nil

	return v, nil
}

// SeqElements realises v (if it is a LazySeq) and returns its elements as
// a flat slice, treating Nil as empty, List/Vector/Set directly, and Str
// as a sequence of Char elements. It is the common entry point every
// sequence-consuming built-in uses to normalise its argument.
func SeqElements(v Value) ([]Value, error) {
	switch t := v.(type) {
	case Nil:
		return nil, nil
	case *List:
		return t.Elements(), nil
	case *Vector:
		return t.Elements(), nil
	case *Set:
		return t.Elements(), nil
	case *Map:
		pairs := t.Seq()
		return SeqElements(pairs)
	case Str:
		runes := []rune(string(t))
		out := make([]Value, len(runes))
		for i, r := range runes {
			out[i] = Char(r)
		}

		return out, nil
	case *LazySeq:
		realised, err := t.Realise()
		if err != nil {
			return nil, err
		}

		return SeqElements(realised)
	default:
		return nil, corerr.Typef("seq", "cannot treat %s as a sequence", TypeName(v))
	}
}
