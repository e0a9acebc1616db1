package builtins

import (
	"sort"

	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

func (r *Registry) installReductions() {
	r.def("apply", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, corerr.Arityf("apply", "at least 2", len(args))
		}
		last, err := value.SeqElements(args[len(args)-1])
		if err != nil {
			return nil, err
		}
		callArgs := append(append([]value.Value{}, args[1:len(args)-1]...), last...)

		return r.In.Apply(args[0], callArgs)
	})

	r.def("map", func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, corerr.Arityf("map", "at least 2", len(args))
		}
		fn := args[0]
		seqs := make([][]value.Value, len(args)-1)
		minLen := -1
		for i, s := range args[1:] {
			elems, err := value.SeqElements(s)
			if err != nil {
				return nil, err
			}
			seqs[i] = elems
			if minLen == -1 || len(elems) < minLen {
				minLen = len(elems)
			}
		}
		out := make([]value.Value, 0, minLen)
		for i := 0; i < minLen; i++ {
			callArgs := make([]value.Value, len(seqs))
			for j, s := range seqs {
				callArgs[j] = s[i]
			}
			v, err := r.In.Apply(fn, callArgs)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}

		return value.NewList(out...), nil
	})

	r.def("filter", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("filter", "2", len(args))
		}
		elems, err := value.SeqElements(args[1])
		if err != nil {
			return nil, err
		}
		var out []value.Value
		for _, e := range elems {
			keep, err := r.In.Apply(args[0], []value.Value{e})
			if err != nil {
				return nil, err
			}
			if value.Truthy(keep) {
				out = append(out, e)
			}
		}

		return value.NewList(out...), nil
	})

	r.def("remove", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("remove", "2", len(args))
		}
		elems, err := value.SeqElements(args[1])
		if err != nil {
			return nil, err
		}
		var out []value.Value
		for _, e := range elems {
			drop, err := r.In.Apply(args[0], []value.Value{e})
			if err != nil {
				return nil, err
			}
			if !value.Truthy(drop) {
				out = append(out, e)
			}
		}

		return value.NewList(out...), nil
	})

	r.def("reduce", func(args []value.Value) (value.Value, error) {
		var fn, init value.Value
		var seq []value.Value
		var err error
		switch len(args) {
		case 2:
			fn = args[0]
			seq, err = value.SeqElements(args[1])
			if err != nil {
				return nil, err
			}
			if len(seq) == 0 {
				return r.In.Apply(fn, nil)
			}
			init = seq[0]
			seq = seq[1:]
		case 3:
			fn = args[0]
			init = args[1]
			seq, err = value.SeqElements(args[2])
			if err != nil {
				return nil, err
			}
		default:
			return nil, corerr.Arityf("reduce", "2 or 3", len(args))
		}

		acc := init
		for _, e := range seq {
			v, err := r.In.Apply(fn, []value.Value{acc, e})
			if err != nil {
				return nil, err
			}
			if value.IsReduced(v) {
				return value.Unreduced(v), nil
			}
			acc = v
		}

		return acc, nil
	})

	r.def("every?", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("every?", "2", len(args))
		}
		elems, err := value.SeqElements(args[1])
		if err != nil {
			return nil, err
		}
		for _, e := range elems {
			v, err := r.In.Apply(args[0], []value.Value{e})
			if err != nil {
				return nil, err
			}
			if !value.Truthy(v) {
				return value.Bool(false), nil
			}
		}

		return value.Bool(true), nil
	})

	r.def("some", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("some", "2", len(args))
		}
		elems, err := value.SeqElements(args[1])
		if err != nil {
			return nil, err
		}
		for _, e := range elems {
			v, err := r.In.Apply(args[0], []value.Value{e})
			if err != nil {
				return nil, err
			}
			if value.Truthy(v) {
				return v, nil
			}
		}

		return value.Nil{}, nil
	})

	r.def("sort", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, corerr.Arityf("sort", "1 or 2", len(args))
		}
		seqArg := args[0]
		var cmpFn value.Value
		if len(args) == 2 {
			cmpFn, seqArg = args[0], args[1]
		}
		elems, err := value.SeqElements(seqArg)
		if err != nil {
			return nil, err
		}
		out := append([]value.Value(nil), elems...)
		var sortErr error
		sort.SliceStable(out, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			if cmpFn != nil {
				v, err := r.In.Apply(cmpFn, []value.Value{out[i], out[j]})
				if err != nil {
					sortErr = err

					return false
				}
				n, ok := v.(value.Int)

				return ok && n < 0
			}
			cmp, err := value.Compare(out[i], out[j])
			if err != nil {
				sortErr = err

				return false
			}

			return cmp == value.Less
		})
		if sortErr != nil {
			return nil, sortErr
		}

		return value.NewList(out...), nil
	})

	r.def("comp", func(args []value.Value) (value.Value, error) {
		return value.NewCompFn(args...), nil
	})

	r.def("partial", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 {
			return nil, corerr.Arityf("partial", "at least 1", len(args))
		}

		return value.NewPartialFn(args[0], args[1:]...), nil
	})
}
