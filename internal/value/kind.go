package value

import "fmt"

// Kind is the tag of the Value union.
type Kind byte

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindChar
	KindString
	KindKeyword
	KindSymbol
	KindList
	KindVector
	KindMap
	KindSet
	KindFunction
	KindPartial
	KindComp
	KindMultiFn
	KindProtocol
	KindProtocolFn
	KindVar
	KindAtom
	KindLazySeq
	KindDelay
	KindVolatile
	KindReduced
	KindTransient
	KindPromise
	KindRegex
	KindMatcher
	KindOpaque
)

var kindNames = [...]string{
	KindNil:        "nil",
	KindBool:       "bool",
	KindInt:        "int",
	KindFloat:      "float",
	KindChar:       "char",
	KindString:     "string",
	KindKeyword:    "keyword",
	KindSymbol:     "symbol",
	KindList:       "list",
	KindVector:     "vector",
	KindMap:        "map",
	KindSet:        "set",
	KindFunction:   "function",
	KindPartial:    "partial-fn",
	KindComp:       "comp-fn",
	KindMultiFn:    "multi-fn",
	KindProtocol:   "protocol",
	KindProtocolFn: "protocol-fn",
	KindVar:        "var",
	KindAtom:       "atom",
	KindLazySeq:    "lazy-seq",
	KindDelay:      "delay",
	KindVolatile:   "volatile",
	KindReduced:    "reduced",
	KindTransient:  "transient",
	KindPromise:    "promise",
	KindRegex:      "regex",
	KindMatcher:    "matcher",
	KindOpaque:     "opaque",
}

// String returns the short symbolic tag used by type-name.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", byte(k))
}

// TypeName returns the short symbolic tag for a value.
func TypeName(v Value) string { return v.Kind().String() }

// ClassName returns a host-style class tag, used by built-ins such as
// toString/pr-str error messages that want a Go-flavoured name instead of
// the short symbolic one.
func ClassName(v Value) string {
	switch v.(type) {
	case Nil:
		return "value.Nil"
	case Bool:
		return "value.Bool"
	case Int:
		return "value.Int"
	case Float:
		return "value.Float"
	case Char:
		return "value.Char"
	case Str:
		return "value.Str"
	case *Keyword:
		return "value.Keyword"
	case *Symbol:
		return "value.Symbol"
	case *List:
		return "value.List"
	case *Vector:
		return "value.Vector"
	case *Map:
		return "value.Map"
	case *Set:
		return "value.Set"
	case *Function:
		return "value.Function"
	case *Builtin:
		return "value.Builtin"
	case *PartialFn:
		return "value.PartialFn"
	case *CompFn:
		return "value.CompFn"
	case *MultiFn:
		return "value.MultiFn"
	default:
		return fmt.Sprintf("%T", v)
	}
}
