package value

import "strings"

// Protocol is a named set of method signatures (arities only — bodies are
// supplied per-type by extend). Methods maps method name to a ProtocolFn.
type Protocol struct {
	Name    string
	Methods *Map // string method name wrapped in Str -> *ProtocolFn
}

func NewProtocol(name string) *Protocol {
	return &Protocol{Name: name, Methods: EmptyMap}
}

func (p *Protocol) Kind() Kind        { return KindProtocol }
func (p *Protocol) Equals(Value) bool { return false }
func (p *Protocol) WriteTo(sb *strings.Builder, _ PrintMode) {
	sb.WriteString("#<protocol ")
	sb.WriteString(p.Name)
	sb.WriteByte('>')
}

// ProtocolFn dispatches on the runtime ClassName of its first argument,
// looking up an implementation in Impls. It is the protocol analogue of
// MultiFn, but keyed directly by class name rather than by an arbitrary
// dispatch function with isa? resolution.
type ProtocolFn struct {
	Name     string
	Proto    *Protocol
	Impls    *Map // ClassName string (as Str) -> implementing Function/Builtin
	Fallback Value
}

func NewProtocolFn(name string, proto *Protocol) *ProtocolFn {
	return &ProtocolFn{Name: name, Proto: proto, Impls: EmptyMap}
}

func (pf *ProtocolFn) Kind() Kind        { return KindProtocolFn }
func (pf *ProtocolFn) Equals(Value) bool { return false }
func (pf *ProtocolFn) WriteTo(sb *strings.Builder, _ PrintMode) {
	sb.WriteString("#<protocol-fn ")
	sb.WriteString(pf.Name)
	sb.WriteByte('>')
}

// Extend installs impl as the implementation of this protocol method for
// the given class name.
func (pf *ProtocolFn) Extend(className string, impl Value) {
	pf.Impls = pf.Impls.Assoc(Str(className), impl)
}

// ImplFor looks up the implementation registered for className.
func (pf *ProtocolFn) ImplFor(className string) (Value, bool) {
	v := pf.Impls.Get(Str(className), nil)
	if v == nil {
		return nil, false
	}

	return v, true
}
