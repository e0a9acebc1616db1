package builtins

import (
	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

func unaryPred(op string, fn func(value.Value) bool) BuiltinFn {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf(op, "1", len(args))
		}

		return value.Bool(fn(args[0])), nil
	}
}

func (r *Registry) installPredicates() {
	r.def("nil?", unaryPred("nil?", func(v value.Value) bool { _, ok := v.(value.Nil); return ok }))
	r.def("true?", unaryPred("true?", func(v value.Value) bool { b, ok := v.(value.Bool); return ok && bool(b) }))
	r.def("false?", unaryPred("false?", func(v value.Value) bool { b, ok := v.(value.Bool); return ok && !bool(b) }))
	r.def("boolean?", unaryPred("boolean?", func(v value.Value) bool { _, ok := v.(value.Bool); return ok }))
	r.def("int?", unaryPred("int?", func(v value.Value) bool { _, ok := v.(value.Int); return ok }))
	r.def("float?", unaryPred("float?", func(v value.Value) bool { _, ok := v.(value.Float); return ok }))
	r.def("number?", unaryPred("number?", value.IsNumeric))
	r.def("string?", unaryPred("string?", func(v value.Value) bool { _, ok := v.(value.Str); return ok }))
	r.def("char?", unaryPred("char?", func(v value.Value) bool { _, ok := v.(value.Char); return ok }))
	r.def("keyword?", unaryPred("keyword?", func(v value.Value) bool { _, ok := v.(*value.Keyword); return ok }))
	r.def("symbol?", unaryPred("symbol?", func(v value.Value) bool { _, ok := v.(*value.Symbol); return ok }))
	r.def("list?", unaryPred("list?", func(v value.Value) bool { _, ok := v.(*value.List); return ok }))
	r.def("vector?", unaryPred("vector?", func(v value.Value) bool { _, ok := v.(*value.Vector); return ok }))
	r.def("map?", unaryPred("map?", func(v value.Value) bool { _, ok := v.(*value.Map); return ok }))
	r.def("set?", unaryPred("set?", func(v value.Value) bool { _, ok := v.(*value.Set); return ok }))
	r.def("fn?", unaryPred("fn?", func(v value.Value) bool {
		switch v.(type) {
		case *value.Function, *value.Builtin, *value.PartialFn, *value.CompFn, *value.MultiFn:
			return true
		default:
			return false
		}
	}))
	r.def("empty?", unaryPred("empty?", func(v value.Value) bool {
		elems, err := value.SeqElements(v)

		return err == nil && len(elems) == 0
	}))
	r.def("some?", unaryPred("some?", func(v value.Value) bool { _, ok := v.(value.Nil); return !ok }))
	r.def("zero?", unaryPred("zero?", func(v value.Value) bool { f, ok := value.AsFloat(v); return ok && f == 0 }))
	r.def("pos?", unaryPred("pos?", func(v value.Value) bool { f, ok := value.AsFloat(v); return ok && f > 0 }))
	r.def("neg?", unaryPred("neg?", func(v value.Value) bool { f, ok := value.AsFloat(v); return ok && f < 0 }))
	r.def("even?", unaryPred("even?", func(v value.Value) bool { i, ok := v.(value.Int); return ok && i%2 == 0 }))
	r.def("odd?", unaryPred("odd?", func(v value.Value) bool { i, ok := v.(value.Int); return ok && i%2 != 0 }))

	r.def("not", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("not", "1", len(args))
		}

		return value.Bool(!value.Truthy(args[0])), nil
	})
}
