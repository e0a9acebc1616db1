package builtins

import (
	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

func (r *Registry) installCollections() {
	r.def("vector", func(args []value.Value) (value.Value, error) {
		return value.NewVector(args...), nil
	})

	r.def("list", func(args []value.Value) (value.Value, error) {
		return value.NewList(args...), nil
	})

	r.def("hash-map", func(args []value.Value) (value.Value, error) {
		return value.NewMap(args...), nil
	})

	r.def("hash-set", func(args []value.Value) (value.Value, error) {
		return value.NewSet(args...), nil
	})

	r.def("conj", func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return value.EmptyList, nil
		}
		coll := args[0]
		for _, x := range args[1:] {
			var err error
			coll, err = conjOne(coll, x)
			if err != nil {
				return nil, err
			}
		}

		return coll, nil
	})

	r.def("cons", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("cons", "2", len(args))
		}
		elems, err := value.SeqElements(args[1])
		if err != nil {
			return nil, err
		}

		return value.NewList(append([]value.Value{args[0]}, elems...)...), nil
	})

	r.def("first", func(args []value.Value) (value.Value, error) {
		elems, err := seqArg("first", args)
		if err != nil {
			return nil, err
		}
		if len(elems) == 0 {
			return value.Nil{}, nil
		}

		return elems[0], nil
	})

	r.def("rest", func(args []value.Value) (value.Value, error) {
		elems, err := seqArg("rest", args)
		if err != nil {
			return nil, err
		}
		if len(elems) <= 1 {
			return value.EmptyList, nil
		}

		return value.NewList(elems[1:]...), nil
	})

	r.def("next", func(args []value.Value) (value.Value, error) {
		elems, err := seqArg("next", args)
		if err != nil {
			return nil, err
		}
		if len(elems) <= 1 {
			return value.Nil{}, nil
		}

		return value.NewList(elems[1:]...), nil
	})

	r.def("last", func(args []value.Value) (value.Value, error) {
		elems, err := seqArg("last", args)
		if err != nil {
			return nil, err
		}
		if len(elems) == 0 {
			return value.Nil{}, nil
		}

		return elems[len(elems)-1], nil
	})

	r.def("count", func(args []value.Value) (value.Value, error) {
		elems, err := seqArg("count", args)
		if err != nil {
			return nil, err
		}

		return value.Int(len(elems)), nil
	})

	r.def("seq", func(args []value.Value) (value.Value, error) {
		elems, err := seqArg("seq", args)
		if err != nil {
			return nil, err
		}
		if len(elems) == 0 {
			return value.Nil{}, nil
		}

		return value.NewList(elems...), nil
	})

	r.def("reverse", func(args []value.Value) (value.Value, error) {
		elems, err := seqArg("reverse", args)
		if err != nil {
			return nil, err
		}
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			out[len(elems)-1-i] = e
		}

		return value.NewList(out...), nil
	})

	r.def("concat", func(args []value.Value) (value.Value, error) {
		var out []value.Value
		for _, a := range args {
			elems, err := value.SeqElements(a)
			if err != nil {
				return nil, err
			}
			out = append(out, elems...)
		}

		return value.NewList(out...), nil
	})

	r.def("into", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("into", "2", len(args))
		}
		elems, err := value.SeqElements(args[1])
		if err != nil {
			return nil, err
		}
		coll := args[0]
		for _, e := range elems {
			coll, err = conjOne(coll, e)
			if err != nil {
				return nil, err
			}
		}

		return coll, nil
	})

	r.def("nth", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 || len(args) > 3 {
			return nil, corerr.Arityf("nth", "2 or 3", len(args))
		}
		i, ok := args[1].(value.Int)
		if !ok {
			return nil, corerr.Typef("nth", "index must be an int, got %s", value.TypeName(args[1]))
		}
		switch c := args[0].(type) {
		case *value.Vector:
			v, err := c.Nth(int(i))
			if err != nil {
				if len(args) == 3 {
					return args[2], nil
				}

				return nil, err
			}

			return v, nil
		default:
			elems, err := value.SeqElements(args[0])
			if err != nil {
				return nil, err
			}
			if int(i) < 0 || int(i) >= len(elems) {
				if len(args) == 3 {
					return args[2], nil
				}

				return nil, corerr.New(corerr.Index, "nth", "index %d out of bounds", i)
			}

			return elems[i], nil
		}
	})

	r.def("get", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 || len(args) > 3 {
			return nil, corerr.Arityf("get", "2 or 3", len(args))
		}
		def := value.Value(value.Nil{})
		if len(args) == 3 {
			def = args[2]
		}
		switch c := args[0].(type) {
		case *value.Map:
			return c.Get(args[1], def), nil
		case *value.Set:
			if c.Contains(args[1]) {
				return args[1], nil
			}

			return def, nil
		case *value.Vector:
			i, ok := args[1].(value.Int)
			if !ok || int(i) < 0 || int(i) >= c.Len() {
				return def, nil
			}

			return c.Get(int(i)), nil
		default:
			return def, nil
		}
	})

	r.def("contains?", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("contains?", "2", len(args))
		}
		switch c := args[0].(type) {
		case *value.Map:
			return value.Bool(c.Contains(args[1])), nil
		case *value.Set:
			return value.Bool(c.Contains(args[1])), nil
		case *value.Vector:
			i, ok := args[1].(value.Int)

			return value.Bool(ok && int(i) >= 0 && int(i) < c.Len()), nil
		default:
			return value.Bool(false), nil
		}
	})

	r.def("assoc", func(args []value.Value) (value.Value, error) {
		if len(args) < 3 || len(args)%2 == 0 {
			return nil, corerr.New(corerr.Arity, "assoc", "assoc requires an odd number of arguments >= 3")
		}
		coll := args[0]
		for i := 1; i+1 < len(args); i += 2 {
			var err error
			coll, err = assocOne(coll, args[i], args[i+1])
			if err != nil {
				return nil, err
			}
		}

		return coll, nil
	})

	r.def("dissoc", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return nil, corerr.Arityf("dissoc", "at least 1", len(args))
		}
		m, ok := args[0].(*value.Map)
		if !ok {
			return nil, corerr.Typef("dissoc", "expected a map, got %s", value.TypeName(args[0]))
		}
		for _, k := range args[1:] {
			m = m.Dissoc(k)
		}

		return m, nil
	})

	r.def("disj", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return nil, corerr.Arityf("disj", "at least 1", len(args))
		}
		s, ok := args[0].(*value.Set)
		if !ok {
			return nil, corerr.Typef("disj", "expected a set, got %s", value.TypeName(args[0]))
		}
		for _, e := range args[1:] {
			s = s.Disj(e)
		}

		return s, nil
	})

	r.def("keys", func(args []value.Value) (value.Value, error) {
		m, ok := unaryMap("keys", args)
		if ok != nil {
			return nil, ok
		}

		return value.NewList(m.Keys()...), nil
	})

	r.def("vals", func(args []value.Value) (value.Value, error) {
		m, ok := unaryMap("vals", args)
		if ok != nil {
			return nil, ok
		}

		return value.NewList(m.Vals()...), nil
	})

	r.def("subs", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 || len(args) > 3 {
			return nil, corerr.Arityf("subs", "2 or 3", len(args))
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, corerr.Typef("subs", "expected a string, got %s", value.TypeName(args[0]))
		}
		runes := []rune(string(s))
		start, ok := args[1].(value.Int)
		if !ok {
			return nil, corerr.Typef("subs", "start index must be an int")
		}
		end := value.Int(len(runes))
		if len(args) == 3 {
			e, ok := args[2].(value.Int)
			if !ok {
				return nil, corerr.Typef("subs", "end index must be an int")
			}
			end = e
		}
		if start < 0 || end > value.Int(len(runes)) || start > end {
			return nil, corerr.New(corerr.Index, "subs", "string index out of bounds: [%d, %d) of length %d", start, end, len(runes))
		}

		return value.Str(string(runes[start:end])), nil
	})
}

func unaryMap(op string, args []value.Value) (*value.Map, error) {
	if len(args) != 1 {
		return nil, corerr.Arityf(op, "1", len(args))
	}
	m, ok := args[0].(*value.Map)
	if !ok {
		return nil, corerr.Typef(op, "expected a map, got %s", value.TypeName(args[0]))
	}

	return m, nil
}

func seqArg(op string, args []value.Value) ([]value.Value, error) {
	if len(args) != 1 {
		return nil, corerr.Arityf(op, "1", len(args))
	}

	return value.SeqElements(args[0])
}

func conjOne(coll, x value.Value) (value.Value, error) {
	switch c := coll.(type) {
	case *value.List:
		return c.Cons(x), nil
	case *value.Vector:
		return c.Conj(x), nil
	case *value.Set:
		return c.Conj(x), nil
	case *value.Map:
		pair, ok := x.(*value.Vector)
		if !ok || pair.Len() != 2 {
			return nil, corerr.Typef("conj", "conj onto a map requires a 2-element vector, got %s", value.TypeName(x))
		}

		return c.Assoc(pair.Get(0), pair.Get(1)), nil
	case value.Nil:
		return value.NewList(x), nil
	default:
		return nil, corerr.Typef("conj", "cannot conj onto %s", value.TypeName(coll))
	}
}

func assocOne(coll, k, v value.Value) (value.Value, error) {
	switch c := coll.(type) {
	case *value.Map:
		return c.Assoc(k, v), nil
	case *value.Vector:
		i, ok := k.(value.Int)
		if !ok {
			return nil, corerr.Typef("assoc", "vector index must be an int, got %s", value.TypeName(k))
		}

		return c.Assoc(int(i), v)
	case value.Nil:
		return value.NewMap(k, v), nil
	default:
		return nil, corerr.Typef("assoc", "cannot assoc onto %s", value.TypeName(coll))
	}
}
