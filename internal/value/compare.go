package value

import (
	"strings"

	"github.com/chaploud/clj-runtime/internal/corerr"
)

// Ordering is the result of Compare: -1, 0, or 1.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare yields an Ordering for numeric pairs (coerced), string, keyword,
// and symbol pairs (byte order). Any other pairing fails with a TypeError.
func Compare(a, b Value) (Ordering, error) {
	if af, aOk := AsFloat(a); aOk {
		if bf, bOk := AsFloat(b); bOk {
			switch {
			case af < bf:
				return Less, nil
			case af > bf:
				return Greater, nil
			default:
				return Equal, nil
			}
		}

		return 0, corerr.Typef("compare", "cannot compare %s with %s", TypeName(a), TypeName(b))
	}

	switch av := a.(type) {
	case Str:
		bv, ok := b.(Str)
		if !ok {
			return 0, corerr.Typef("compare", "cannot compare string with %s", TypeName(b))
		}

		return byteOrder(string(av), string(bv)), nil

	case *Keyword:
		bv, ok := b.(*Keyword)
		if !ok {
			return 0, corerr.Typef("compare", "cannot compare keyword with %s", TypeName(b))
		}

		return byteOrder(keywordKey(av), keywordKey(bv)), nil

	case *Symbol:
		bv, ok := b.(*Symbol)
		if !ok {
			return 0, corerr.Typef("compare", "cannot compare symbol with %s", TypeName(b))
		}

		return byteOrder(symbolKey(av), symbolKey(bv)), nil

	default:
		return 0, corerr.Typef("compare", "cannot compare values of type %s", TypeName(a))
	}
}

func byteOrder(a, b string) Ordering {
	switch strings.Compare(a, b) {
	case -1:
		return Less
	case 1:
		return Greater
	default:
		return Equal
	}
}

func keywordKey(k *Keyword) string { return k.NS + "/" + k.Name }
func symbolKey(s *Symbol) string   { return s.NS + "/" + s.Name }
