package builtins

import (
	"strconv"
	"strings"

	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

func (r *Registry) installCasts() {
	r.def("keyword", func(args []value.Value) (value.Value, error) {
		switch len(args) {
		case 1:
			s, ok := args[0].(value.Str)
			if !ok {
				if sym, ok := args[0].(*value.Symbol); ok {
					return value.NewKeyword(sym.NS, sym.Name), nil
				}

				return nil, corerr.Typef("keyword", "expected a string or symbol, got %s", value.TypeName(args[0]))
			}
			if ns, name, ok := strings.Cut(string(s), "/"); ok {
				return value.NewKeyword(ns, name), nil
			}

			return value.NewKeyword("", string(s)), nil
		case 2:
			ns, ok1 := args[0].(value.Str)
			name, ok2 := args[1].(value.Str)
			if !ok1 || !ok2 {
				return nil, corerr.Typef("keyword", "expected two strings")
			}

			return value.NewKeyword(string(ns), string(name)), nil
		default:
			return nil, corerr.Arityf("keyword", "1 or 2", len(args))
		}
	})

	r.def("symbol", func(args []value.Value) (value.Value, error) {
		switch len(args) {
		case 1:
			s, ok := args[0].(value.Str)
			if !ok {
				return nil, corerr.Typef("symbol", "expected a string, got %s", value.TypeName(args[0]))
			}
			if ns, name, ok := strings.Cut(string(s), "/"); ok {
				return value.NewSymbol(ns, name), nil
			}

			return value.NewSymbol("", string(s)), nil
		case 2:
			ns, ok1 := args[0].(value.Str)
			name, ok2 := args[1].(value.Str)
			if !ok1 || !ok2 {
				return nil, corerr.Typef("symbol", "expected two strings")
			}

			return value.NewSymbol(string(ns), string(name)), nil
		default:
			return nil, corerr.Arityf("symbol", "1 or 2", len(args))
		}
	})

	r.def("int", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("int", "1", len(args))
		}
		switch v := args[0].(type) {
		case value.Int:
			return v, nil
		case value.Float:
			return value.Int(int64(v)), nil
		case value.Char:
			return value.Int(v), nil
		case value.Str:
			n, err := strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
			if err != nil {
				return nil, corerr.Wrap(corerr.Type, "int", err, "cannot parse %q as an integer", v)
			}

			return value.Int(n), nil
		default:
			return nil, corerr.Typef("int", "cannot convert %s to int", value.TypeName(args[0]))
		}
	})

	r.def("double", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("double", "1", len(args))
		}
		f, ok := value.AsFloat(args[0])
		if !ok {
			return nil, corerr.Typef("double", "cannot convert %s to double", value.TypeName(args[0]))
		}

		return value.Float(f), nil
	})

	r.def("char", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("char", "1", len(args))
		}
		if i, ok := args[0].(value.Int); ok {
			return value.Char(rune(i)), nil
		}
		if c, ok := args[0].(value.Char); ok {
			return c, nil
		}

		return nil, corerr.Typef("char", "cannot convert %s to char", value.TypeName(args[0]))
	})

	r.def("str->int", func(args []value.Value) (value.Value, error) {
		return r.dispatch1("int", args)
	})

	r.def("parse-long", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("parse-long", "1", len(args))
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, corerr.Typef("parse-long", "expected a string, got %s", value.TypeName(args[0]))
		}
		n, err := strconv.ParseInt(strings.TrimSpace(string(s)), 10, 64)
		if err != nil {
			return value.Nil{}, nil
		}

		return value.Int(n), nil
	})

	r.def("parse-double", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("parse-double", "1", len(args))
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, corerr.Typef("parse-double", "expected a string, got %s", value.TypeName(args[0]))
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
		if err != nil {
			return value.Nil{}, nil
		}

		return value.Float(f), nil
	})

	r.def("parse-boolean", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("parse-boolean", "1", len(args))
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, corerr.Typef("parse-boolean", "expected a string, got %s", value.TypeName(args[0]))
		}
		switch strings.TrimSpace(string(s)) {
		case "true":
			return value.Bool(true), nil
		case "false":
			return value.Bool(false), nil
		default:
			return value.Nil{}, nil
		}
	})
}

func (r *Registry) dispatch1(name string, args []value.Value) (value.Value, error) {
	fn, ok := r.In.Intern(r.In.CurrentNS, name).Root.(*value.Builtin)
	if !ok {
		return nil, corerr.New(corerr.Eval, name, "builtin not installed")
	}

	return fn.Apply(args)
}
