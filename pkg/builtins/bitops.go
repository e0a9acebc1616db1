package builtins

import (
	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

func (r *Registry) installBitOps() {
	r.def("bit-and", intPairOp("bit-and", func(a, b int64) (int64, error) { return a & b, nil }))
	r.def("bit-or", intPairOp("bit-or", func(a, b int64) (int64, error) { return a | b, nil }))
	r.def("bit-xor", intPairOp("bit-xor", func(a, b int64) (int64, error) { return a ^ b, nil }))
	r.def("bit-shift-left", intPairOp("bit-shift-left", func(a, b int64) (int64, error) { return a << uint(b), nil }))
	r.def("bit-shift-right", intPairOp("bit-shift-right", func(a, b int64) (int64, error) { return a >> uint(b), nil }))
	r.def("unsigned-bit-shift-right", intPairOp("unsigned-bit-shift-right", func(a, b int64) (int64, error) {
		return int64(uint64(a) >> uint(b)), nil
	}))

	r.def("bit-not", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("bit-not", "1", len(args))
		}
		i, ok := args[0].(value.Int)
		if !ok {
			return nil, corerr.Typef("bit-not", "expected an integer, got %s", value.TypeName(args[0]))
		}

		return ^i, nil
	})
}
