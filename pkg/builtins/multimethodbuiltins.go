package builtins

import (
	"fmt"

	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
	"github.com/chaploud/clj-runtime/pkg/hierarchy"
)

func (r *Registry) installMultimethods() {
	r.def("make-hierarchy", func(args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return nil, corerr.Arityf("make-hierarchy", "0", len(args))
		}

		return value.NewOpaque("hierarchy", hierarchy.New()), nil
	})

	r.def("make-multi-fn", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 && len(args) != 3 {
			return nil, corerr.Arityf("make-multi-fn", "2 or 3", len(args))
		}
		name, ok := args[0].(value.Str)
		if !ok {
			return nil, corerr.Typef("make-multi-fn", "name must be a string, got %s", value.TypeName(args[0]))
		}
		mf := value.NewMultiFn(string(name), args[1])
		if len(args) == 3 {
			h, err := asHierarchyOpaque("make-multi-fn", args[2])
			if err != nil {
				return nil, err
			}
			mf.Hierarchy = h
		}

		return mf, nil
	})

	r.def("add-method", func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return nil, corerr.Arityf("add-method", "3", len(args))
		}
		mf, ok := args[0].(*value.MultiFn)
		if !ok {
			return nil, corerr.Typef("add-method", "expected a multi-fn, got %s", value.TypeName(args[0]))
		}
		mf.AddMethod(args[1], args[2])

		return mf, nil
	})

	r.def("remove-method", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("remove-method", "2", len(args))
		}
		mf, ok := args[0].(*value.MultiFn)
		if !ok {
			return nil, corerr.Typef("remove-method", "expected a multi-fn, got %s", value.TypeName(args[0]))
		}
		mf.RemoveMethod(args[1])

		return mf, nil
	})

	r.def("remove-all-methods", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("remove-all-methods", "1", len(args))
		}
		mf, ok := args[0].(*value.MultiFn)
		if !ok {
			return nil, corerr.Typef("remove-all-methods", "expected a multi-fn, got %s", value.TypeName(args[0]))
		}
		mf.RemoveAllMethods()

		return mf, nil
	})

	r.def("prefer-method", func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return nil, corerr.Arityf("prefer-method", "3", len(args))
		}
		mf, ok := args[0].(*value.MultiFn)
		if !ok {
			return nil, corerr.Typef("prefer-method", "expected a multi-fn, got %s", value.TypeName(args[0]))
		}
		mf.Prefer(args[1], args[2])

		return mf, nil
	})

	r.def("derive", func(args []value.Value) (value.Value, error) {
		h, rest, err := optionalHierarchy("derive", args, 2)
		if err != nil {
			return nil, err
		}

		return value.Nil{}, h.Derive(rest[0], rest[1])
	})

	r.def("underive", func(args []value.Value) (value.Value, error) {
		h, rest, err := optionalHierarchy("underive", args, 2)
		if err != nil {
			return nil, err
		}
		h.Underive(rest[0], rest[1])

		return value.Nil{}, nil
	})

	r.def("isa?", func(args []value.Value) (value.Value, error) {
		h, rest, err := optionalHierarchy("isa?", args, 2)
		if err != nil {
			return nil, err
		}

		return value.Bool(h.IsA(rest[0], rest[1])), nil
	})

	r.def("ancestors", func(args []value.Value) (value.Value, error) {
		h, rest, err := optionalHierarchy("ancestors", args, 1)
		if err != nil {
			return nil, err
		}

		return value.NewSet(h.Ancestors(rest[0])...), nil
	})

	r.def("descendants", func(args []value.Value) (value.Value, error) {
		h, rest, err := optionalHierarchy("descendants", args, 1)
		if err != nil {
			return nil, err
		}

		return value.NewSet(h.Descendants(rest[0])...), nil
	})
}

// asHierarchyOpaque type-checks v as an *Opaque wrapping a *hierarchy.Hierarchy,
// the Value representation make-hierarchy returns.
func asHierarchyOpaque(op string, v value.Value) (*value.Opaque, error) {
	o, ok := v.(*value.Opaque)
	if !ok {
		return nil, corerr.Typef(op, "expected a hierarchy, got %s", value.TypeName(v))
	}
	if _, ok := o.Payload.(*hierarchy.Hierarchy); !ok {
		return nil, corerr.Typef(op, "expected a hierarchy, got %s", value.TypeName(v))
	}

	return o, nil
}

// optionalHierarchy accepts either n args (operating on the global hierarchy)
// or n+1 args whose first is a make-hierarchy value, returning the resolved
// hierarchy and the remaining n args.
func optionalHierarchy(op string, args []value.Value, n int) (*hierarchy.Hierarchy, []value.Value, error) {
	switch len(args) {
	case n:
		return hierarchy.Global(), args, nil
	case n + 1:
		o, err := asHierarchyOpaque(op, args[0])
		if err != nil {
			return nil, nil, err
		}

		return o.Payload.(*hierarchy.Hierarchy), args[1:], nil
	default:
		return nil, nil, corerr.Arityf(op, fmt.Sprintf("%d or %d", n, n+1), len(args))
	}
}
