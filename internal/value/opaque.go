package value

import (
	"fmt"
	"strings"
)

// Opaque wraps a host-side handle (file handles, random sources, whatever a
// built-in needs to stash) that has no readable literal form. It is
// printable only.
type Opaque struct {
	Tag     string
	Payload any
}

func NewOpaque(tag string, payload any) *Opaque {
	return &Opaque{Tag: tag, Payload: payload}
}

func (o *Opaque) Kind() Kind { return KindOpaque }
func (o *Opaque) Equals(other Value) bool {
	oo, ok := other.(*Opaque)

	return ok && oo == o
}

func (o *Opaque) WriteTo(sb *strings.Builder, _ PrintMode) {
	fmt.Fprintf(sb, "#<%s>", o.Tag)
}
