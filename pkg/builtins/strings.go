package builtins

import (
	"strings"

	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
	"github.com/chaploud/clj-runtime/pkg/regex"
)

func (r *Registry) installStrings() {
	r.def("str", func(args []value.Value) (value.Value, error) {
		var sb strings.Builder
		for _, a := range args {
			if _, ok := a.(value.Nil); ok {
				continue
			}
			sb.WriteString(value.Display(a))
		}

		return value.Str(sb.String()), nil
	})

	r.def("name", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("name", "1", len(args))
		}
		switch v := args[0].(type) {
		case *value.Keyword:
			return value.Str(v.Name), nil
		case *value.Symbol:
			return value.Str(v.Name), nil
		case value.Str:
			return v, nil
		default:
			return nil, corerr.Typef("name", "expected a named value, got %s", value.TypeName(args[0]))
		}
	})

	r.def("namespace", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("namespace", "1", len(args))
		}
		switch v := args[0].(type) {
		case *value.Keyword:
			if v.NS == "" {
				return value.Nil{}, nil
			}

			return value.Str(v.NS), nil
		case *value.Symbol:
			if v.NS == "" {
				return value.Nil{}, nil
			}

			return value.Str(v.NS), nil
		default:
			return nil, corerr.Typef("namespace", "expected a named value, got %s", value.TypeName(args[0]))
		}
	})

	r.def("upper-case", stringUnary("upper-case", strings.ToUpper))
	r.def("lower-case", stringUnary("lower-case", strings.ToLower))
	r.def("trim", stringUnary("trim", strings.TrimSpace))

	r.def("string-split", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("string-split", "2", len(args))
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, corerr.Typef("string-split", "expected a string, got %s", value.TypeName(args[0]))
		}
		var parts []string
		switch sep := args[1].(type) {
		case value.Str:
			parts = strings.Split(string(s), string(sep))
		case *value.Regex:
			parts = sep.Compiled.Split(string(s), -1)
		default:
			return nil, corerr.Typef("string-split", "separator must be a string or regex, got %s", value.TypeName(args[1]))
		}
		elems := make([]value.Value, len(parts))
		for i, p := range parts {
			elems[i] = value.Str(p)
		}

		return value.NewVector(elems...), nil
	})

	r.def("str/join", func(args []value.Value) (value.Value, error) {
		if len(args) < 1 || len(args) > 2 {
			return nil, corerr.Arityf("str/join", "1 or 2", len(args))
		}
		sep := ""
		seqV := args[0]
		if len(args) == 2 {
			s, ok := args[0].(value.Str)
			if !ok {
				return nil, corerr.Typef("str/join", "separator must be a string")
			}
			sep = string(s)
			seqV = args[1]
		}
		elems, err := value.SeqElements(seqV)
		if err != nil {
			return nil, err
		}
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = value.Display(e)
		}

		return value.Str(strings.Join(parts, sep)), nil
	})

	r.def("string-replace", func(args []value.Value) (value.Value, error) {
		return stringReplace("string-replace", args, regex.ReplacePattern, strings.ReplaceAll)
	})

	r.def("string-replace-first", func(args []value.Value) (value.Value, error) {
		return stringReplace("string-replace-first", args, regex.ReplaceFirstPattern,
			func(subject, match, repl string) string { return strings.Replace(subject, match, repl, 1) })
	})
}

// stringReplace backs both string-replace and string-replace-first: match
// may be a literal string or a compiled regex, with the replacement
// supporting $0-$9 back-references only in the regex case.
func stringReplace(
	op string, args []value.Value,
	regexOp func(pattern *value.Regex, subject, replacement string) string,
	literalOp func(subject, match, replacement string) string,
) (value.Value, error) {
	if len(args) != 3 {
		return nil, corerr.Arityf(op, "3", len(args))
	}
	s, ok := args[0].(value.Str)
	if !ok {
		return nil, corerr.Typef(op, "expected a string, got %s", value.TypeName(args[0]))
	}
	repl, ok := args[2].(value.Str)
	if !ok {
		return nil, corerr.Typef(op, "replacement must be a string")
	}
	switch match := args[1].(type) {
	case value.Str:
		return value.Str(literalOp(string(s), string(match), string(repl))), nil
	case *value.Regex:
		return value.Str(regexOp(match, string(s), string(repl))), nil
	default:
		return nil, corerr.Typef(op, "match must be a string or regex, got %s", value.TypeName(args[1]))
	}
}

func stringUnary(op string, fn func(string) string) BuiltinFn {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf(op, "1", len(args))
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, corerr.Typef(op, "expected a string, got %s", value.TypeName(args[0]))
		}

		return value.Str(fn(string(s))), nil
	}
}
