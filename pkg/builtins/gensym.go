package builtins

import (
	"strings"

	"github.com/google/uuid"

	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

// gensymTag returns a short, unique suffix suitable for a symbol name.
// uuid.New is cryptographically random, so a collision across gensym calls
// within one process is not a practical concern.
func gensymTag() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

func (r *Registry) installGensym() {
	r.def("gensym", func(args []value.Value) (value.Value, error) {
		prefix := "G__"
		switch len(args) {
		case 0:
		case 1:
			s, ok := args[0].(value.Str)
			if !ok {
				return nil, corerr.Typef("gensym", "expected a string prefix, got %s", value.TypeName(args[0]))
			}
			prefix = string(s)
		default:
			return nil, corerr.Arityf("gensym", "0 or 1", len(args))
		}

		return value.NewSymbol("", prefix+gensymTag()), nil
	})
}
