package builtins

import (
	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

func chainCompare(op string, args []value.Value, ok func(value.Ordering) bool) (value.Value, error) {
	if len(args) < 1 {
		return nil, corerr.Arityf(op, "at least 1", len(args))
	}
	for i := 0; i+1 < len(args); i++ {
		cmp, err := value.Compare(args[i], args[i+1])
		if err != nil {
			return nil, err
		}
		if !ok(cmp) {
			return value.Bool(false), nil
		}
	}

	return value.Bool(true), nil
}

func (r *Registry) installComparison() {
	r.def("=", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return nil, corerr.Arityf("=", "at least 1", len(args))
		}
		for i := 0; i+1 < len(args); i++ {
			if !value.SeqEquals(args[i], args[i+1]) {
				return value.Bool(false), nil
			}
		}

		return value.Bool(true), nil
	})

	r.def("not=", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return nil, corerr.Arityf("not=", "at least 1", len(args))
		}
		for i := 0; i+1 < len(args); i++ {
			if !value.SeqEquals(args[i], args[i+1]) {
				return value.Bool(true), nil
			}
		}

		return value.Bool(false), nil
	})

	r.def("==", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return nil, corerr.Arityf("==", "at least 1", len(args))
		}
		for i := 0; i+1 < len(args); i++ {
			if !value.NumEquals(args[i], args[i+1]) {
				return value.Bool(false), nil
			}
		}

		return value.Bool(true), nil
	})

	r.def("<", func(args []value.Value) (value.Value, error) {
		return chainCompare("<", args, func(o value.Ordering) bool { return o == value.Less })
	})
	r.def(">", func(args []value.Value) (value.Value, error) {
		return chainCompare(">", args, func(o value.Ordering) bool { return o == value.Greater })
	})
	r.def("<=", func(args []value.Value) (value.Value, error) {
		return chainCompare("<=", args, func(o value.Ordering) bool { return o != value.Greater })
	})
	r.def(">=", func(args []value.Value) (value.Value, error) {
		return chainCompare(">=", args, func(o value.Ordering) bool { return o != value.Less })
	})

	r.def("compare", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("compare", "2", len(args))
		}
		cmp, err := value.Compare(args[0], args[1])
		if err != nil {
			return nil, err
		}

		return value.Int(cmp), nil
	})
}
