package value

import (
	"strings"

	"github.com/chaploud/clj-runtime/internal/corerr"
)

// Delay is a thunk cell: the first Force runs the thunk once, caches the
// result, and sets Realised. Re-entrant Force while the thunk is already
// running is detected and reported rather than left to recurse forever.
type Delay struct {
	thunk      func() (Value, error)
	cached     Value
	realised   bool
	inProgress bool
}

// NewDelay wraps thunk in an unrealised Delay.
func NewDelay(thunk func() (Value, error)) *Delay {
	return &Delay{thunk: thunk}
}

func (d *Delay) Kind() Kind        { return KindDelay }
func (d *Delay) Equals(Value) bool { return false }

func (d *Delay) WriteTo(sb *strings.Builder, mode PrintMode) {
	if !d.realised {
		sb.WriteString("#<delay pending>")

		return
	}
	sb.WriteString("#<delay ")
	d.cached.WriteTo(sb, mode)
	sb.WriteByte('>')
}

// Realised reports whether Force has completed at least once.
func (d *Delay) Realised() bool { return d.realised }

// Force runs the thunk on first call, caching and returning its result on
// every call thereafter without re-running it.
func (d *Delay) Force() (Value, error) {
	if d.realised {
		return d.cached, nil
	}
	if d.inProgress {
		return nil, corerr.New(corerr.State, "force", "delay realised re-entrantly from within its own thunk")
	}
	d.inProgress = true
	v, err := d.thunk()
	d.inProgress = false
	if err != nil {
		return nil, err
	}
	d.cached = v
	d.realised = true
	d.thunk = nil

	return v, nil
}
