package builtins

import (
	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

func (r *Registry) installMeta() {
	r.def("meta", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("meta", "1", len(args))
		}
		m := value.GetMeta(args[0])
		if m == nil {
			return value.Nil{}, nil
		}

		return m, nil
	})

	r.def("with-meta", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("with-meta", "2", len(args))
		}
		m, ok := args[1].(*value.Map)
		if !ok {
			return nil, corerr.Typef("with-meta", "expected a map, got %s", value.TypeName(args[1]))
		}

		return value.WithMeta(args[0], m)
	})
}
