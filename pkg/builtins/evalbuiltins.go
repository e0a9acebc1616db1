package builtins

import (
	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
	"github.com/chaploud/clj-runtime/pkg/analyzer"
	"github.com/chaploud/clj-runtime/pkg/reader"
)

func (r *Registry) installEval() {
	evalErr := func(op string, err error) error {
		return corerr.Wrap(corerr.Eval, op, err, "%v", err)
	}

	r.def("read-string", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("read-string", "1", len(args))
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, corerr.Typef("read-string", "expected a string, got %s", value.TypeName(args[0]))
		}
		rd := reader.New(string(s))
		form, err := rd.Read()
		if err != nil {
			return nil, evalErr("read-string", err)
		}

		return form, nil
	})

	r.def("eval", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("eval", "1", len(args))
		}
		node, err := analyzer.New(r.In.CurrentNS).Analyze(args[0])
		if err != nil {
			return nil, evalErr("eval", err)
		}
		v, err := r.In.Eval(node, value.NewEnv())
		if err != nil {
			return nil, evalErr("eval", err)
		}

		return v, nil
	})

	r.def("load-string", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("load-string", "1", len(args))
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, corerr.Typef("load-string", "expected a string, got %s", value.TypeName(args[0]))
		}
		forms, err := reader.New(string(s)).ReadAll()
		if err != nil {
			return nil, evalErr("load-string", err)
		}
		an := analyzer.New(r.In.CurrentNS)
		var result value.Value = value.Nil{}
		for _, f := range forms {
			node, err := an.Analyze(f)
			if err != nil {
				return nil, evalErr("load-string", err)
			}
			result, err = r.In.Eval(node, value.NewEnv())
			if err != nil {
				return nil, evalErr("load-string", err)
			}
		}

		return result, nil
	})

	r.def("resolve", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("resolve", "1", len(args))
		}
		sym, ok := args[0].(*value.Symbol)
		if !ok {
			return nil, corerr.Typef("resolve", "expected a symbol, got %s", value.TypeName(args[0]))
		}
		va := r.In.Intern(r.In.CurrentNS, sym.Name)

		return va, nil
	})
}
