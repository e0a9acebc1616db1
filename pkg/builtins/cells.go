package builtins

import (
	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

func (r *Registry) installCells() {
	r.def("atom", func(args []value.Value) (value.Value, error) {
		init := value.Value(value.Nil{})
		if len(args) == 1 {
			init = args[0]
		} else if len(args) > 1 {
			return nil, corerr.Arityf("atom", "0 or 1", len(args))
		}

		return value.NewAtom(init), nil
	})

	r.def("volatile!", func(args []value.Value) (value.Value, error) {
		init := value.Value(value.Nil{})
		if len(args) == 1 {
			init = args[0]
		} else if len(args) > 1 {
			return nil, corerr.Arityf("volatile!", "0 or 1", len(args))
		}

		return value.NewVolatile(init), nil
	})

	r.def("deref", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("deref", "1", len(args))
		}
		switch v := args[0].(type) {
		case *value.Atom:
			return v.Deref(), nil
		case *value.Volatile:
			return v.Deref(), nil
		case *value.Delay:
			return v.Force()
		case *value.Promise:
			return v.Deref()
		default:
			return nil, corerr.Typef("deref", "cannot deref %s", value.TypeName(args[0]))
		}
	})

	r.def("reset!", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("reset!", "2", len(args))
		}
		switch v := args[0].(type) {
		case *value.Atom:
			return v.Reset(args[1]), nil
		case *value.Volatile:
			return v.Reset(args[1]), nil
		default:
			return nil, corerr.Typef("reset!", "expected an atom or volatile, got %s", value.TypeName(args[0]))
		}
	})

	r.def("compare-and-set!", func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return nil, corerr.Arityf("compare-and-set!", "3", len(args))
		}
		a, ok := args[0].(*value.Atom)
		if !ok {
			return nil, corerr.Typef("compare-and-set!", "expected an atom, got %s", value.TypeName(args[0]))
		}

		return value.Bool(a.CompareAndSet(args[1], args[2])), nil
	})

	r.def("swap!", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, corerr.Arityf("swap!", "at least 2", len(args))
		}
		extra := args[2:]
		apply := func(cur value.Value) (value.Value, error) {
			return r.In.Apply(args[1], append([]value.Value{cur}, extra...))
		}
		switch v := args[0].(type) {
		case *value.Atom:
			return v.Swap(apply)
		case *value.Volatile:
			return v.Swap(apply)
		default:
			return nil, corerr.Typef("swap!", "expected an atom or volatile, got %s", value.TypeName(args[0]))
		}
	})

	r.def("force", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("force", "1", len(args))
		}
		d, ok := args[0].(*value.Delay)
		if !ok {
			return args[0], nil
		}

		return d.Force()
	})

	r.def("promise", func(args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return nil, corerr.Arityf("promise", "0", len(args))
		}

		return value.NewPromise(), nil
	})

	r.def("deliver", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("deliver", "2", len(args))
		}
		p, ok := args[0].(*value.Promise)
		if !ok {
			return nil, corerr.Typef("deliver", "expected a promise, got %s", value.TypeName(args[0]))
		}
		p.Deliver(args[1])

		return p, nil
	})

	r.def("reduced", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("reduced", "1", len(args))
		}

		return value.NewReduced(args[0]), nil
	})

	r.def("reduced?", unaryPred("reduced?", value.IsReduced))
	r.def("unreduced", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("unreduced", "1", len(args))
		}

		return value.Unreduced(args[0]), nil
	})

	r.def("transient", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("transient", "1", len(args))
		}

		return value.NewTransient(args[0])
	})

	r.def("persistent!", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("persistent!", "1", len(args))
		}
		t, ok := args[0].(*value.Transient)
		if !ok {
			return nil, corerr.Typef("persistent!", "expected a transient, got %s", value.TypeName(args[0]))
		}

		return t.Persistent()
	})

	r.def("conj!", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("conj!", "2", len(args))
		}
		t, ok := args[0].(*value.Transient)
		if !ok {
			return nil, corerr.Typef("conj!", "expected a transient, got %s", value.TypeName(args[0]))
		}

		return t, t.ConjBang(args[1])
	})

	r.def("assoc!", func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return nil, corerr.Arityf("assoc!", "3", len(args))
		}
		t, ok := args[0].(*value.Transient)
		if !ok {
			return nil, corerr.Typef("assoc!", "expected a transient, got %s", value.TypeName(args[0]))
		}

		return t, t.AssocBang(args[1], args[2])
	})

	r.def("dissoc!", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("dissoc!", "2", len(args))
		}
		t, ok := args[0].(*value.Transient)
		if !ok {
			return nil, corerr.Typef("dissoc!", "expected a transient, got %s", value.TypeName(args[0]))
		}

		return t, t.DissocBang(args[1])
	})

	r.def("disj!", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("disj!", "2", len(args))
		}
		t, ok := args[0].(*value.Transient)
		if !ok {
			return nil, corerr.Typef("disj!", "expected a transient, got %s", value.TypeName(args[0]))
		}

		return t, t.DisjBang(args[1])
	})
}
