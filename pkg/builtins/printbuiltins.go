package builtins

import "github.com/chaploud/clj-runtime/internal/value"

func (r *Registry) installPrint() {
	r.def("pr", func(args []value.Value) (value.Value, error) {
		for i, a := range args {
			if i > 0 {
				r.Out.WriteByte(' ')
			}
			r.Out.WriteString(value.Repr(a))
		}
		r.Out.Flush()

		return value.Nil{}, nil
	})

	r.def("prn", func(args []value.Value) (value.Value, error) {
		for i, a := range args {
			if i > 0 {
				r.Out.WriteByte(' ')
			}
			r.Out.WriteString(value.Repr(a))
		}
		r.Out.WriteByte('\n')
		r.Out.Flush()

		return value.Nil{}, nil
	})

	r.def("print", func(args []value.Value) (value.Value, error) {
		for i, a := range args {
			if i > 0 {
				r.Out.WriteByte(' ')
			}
			r.Out.WriteString(value.Display(a))
		}
		r.Out.Flush()

		return value.Nil{}, nil
	})

	r.def("println", func(args []value.Value) (value.Value, error) {
		for i, a := range args {
			if i > 0 {
				r.Out.WriteByte(' ')
			}
			r.Out.WriteString(value.Display(a))
		}
		r.Out.WriteByte('\n')
		r.Out.Flush()

		return value.Nil{}, nil
	})

	r.def("pr-str", func(args []value.Value) (value.Value, error) {
		var sb []byte
		for i, a := range args {
			if i > 0 {
				sb = append(sb, ' ')
			}
			sb = append(sb, []byte(value.Repr(a))...)
		}

		return value.Str(string(sb)), nil
	})
}
