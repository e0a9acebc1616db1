package value

import (
	"strings"
	"sync"
)

// Symbol is a name with an optional namespace, resolved against an
// Environment. Equals compares namespace and name; there is no pointer
// fast path.
type Symbol struct {
	NS   string
	Name string
}

func (s *Symbol) Kind() Kind { return KindSymbol }
func (s *Symbol) Equals(v Value) bool {
	other, ok := v.(*Symbol)

	return ok && s.NS == other.NS && s.Name == other.Name
}

func (s *Symbol) WriteTo(sb *strings.Builder, _ PrintMode) {
	if s.NS != "" {
		sb.WriteString(s.NS)
		sb.WriteByte('/')
	}
	sb.WriteString(s.Name)
}

var symbolTable sync.Map // string -> *Symbol

// NewSymbol interns a symbol by "ns/name" (or "name" with no namespace).
func NewSymbol(ns, name string) *Symbol {
	key := ns + "\x00" + name
	if existing, ok := symbolTable.Load(key); ok {
		return existing.(*Symbol)
	}
	sym := &Symbol{NS: ns, Name: name}
	actual, _ := symbolTable.LoadOrStore(key, sym)

	return actual.(*Symbol)
}

// Keyword is an interned, self-evaluating symbolic name. A Keyword is
// callable: applying it to a map looks itself up as a key (implemented in
// pkg/interpreter's Apply, since that is where the calling convention
// lives).
type Keyword struct {
	NS   string
	Name string
}

func (k *Keyword) Kind() Kind { return KindKeyword }
func (k *Keyword) Equals(v Value) bool {
	other, ok := v.(*Keyword)

	return ok && k.NS == other.NS && k.Name == other.Name
}

func (k *Keyword) WriteTo(sb *strings.Builder, _ PrintMode) {
	sb.WriteByte(':')
	if k.NS != "" {
		sb.WriteString(k.NS)
		sb.WriteByte('/')
	}
	sb.WriteString(k.Name)
}

var keywordTable sync.Map // string -> *Keyword

// NewKeyword interns a keyword by "ns/name" (or "name" with no namespace).
func NewKeyword(ns, name string) *Keyword {
	key := ns + "\x00" + name
	if existing, ok := keywordTable.Load(key); ok {
		return existing.(*Keyword)
	}
	kw := &Keyword{NS: ns, Name: name}
	actual, _ := keywordTable.LoadOrStore(key, kw)

	return actual.(*Keyword)
}
