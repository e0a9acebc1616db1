package value

import (
	"strings"

	"github.com/chaploud/clj-runtime/internal/corerr"
)

// Promise is a one-shot delivery cell. A second Deliver is a silent no-op.
// Deref on an undelivered promise fails at once with a StateError, since
// this core is single-threaded and cannot block waiting for another
// goroutine to deliver; there is no separate deadlock error kind.
type Promise struct {
	val       Value
	delivered bool
}

func NewPromise() *Promise { return &Promise{} }

func (p *Promise) Kind() Kind        { return KindPromise }
func (p *Promise) Equals(Value) bool { return false }

func (p *Promise) WriteTo(sb *strings.Builder, mode PrintMode) {
	if !p.delivered {
		sb.WriteString("#<promise pending>")

		return
	}
	sb.WriteString("#<promise ")
	p.val.WriteTo(sb, mode)
	sb.WriteByte('>')
}

// Delivered reports whether Deliver has succeeded.
func (p *Promise) Delivered() bool { return p.delivered }

// Deliver sets the promise's value iff it is not already delivered.
func (p *Promise) Deliver(v Value) {
	if p.delivered {
		return
	}
	p.val = v
	p.delivered = true
}

// Deref returns the delivered value, or a StateError if undelivered.
func (p *Promise) Deref() (Value, error) {
	if !p.delivered {
		return nil, corerr.New(corerr.State, "deref", "deref of undelivered promise would block forever")
	}

	return p.val, nil
}
