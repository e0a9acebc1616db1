package builtins

import (
	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
	"github.com/chaploud/clj-runtime/pkg/regex"
)

func (r *Registry) installRegex() {
	r.def("re-pattern", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("re-pattern", "1", len(args))
		}
		s, ok := args[0].(value.Str)
		if !ok {
			return nil, corerr.Typef("re-pattern", "expected a string, got %s", value.TypeName(args[0]))
		}

		return regex.Compile(string(s))
	})

	r.def("re-matcher", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("re-matcher", "2", len(args))
		}
		pat, ok := args[0].(*value.Regex)
		if !ok {
			return nil, corerr.Typef("re-matcher", "expected a regex, got %s", value.TypeName(args[0]))
		}
		subject, ok := args[1].(value.Str)
		if !ok {
			return nil, corerr.Typef("re-matcher", "expected a string, got %s", value.TypeName(args[1]))
		}

		return value.NewMatcher(pat, string(subject)), nil
	})

	r.def("re-matches", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("re-matches", "2", len(args))
		}
		pat, ok := args[0].(*value.Regex)
		if !ok {
			return nil, corerr.Typef("re-matches", "expected a regex, got %s", value.TypeName(args[0]))
		}
		subject, ok := args[1].(value.Str)
		if !ok {
			return nil, corerr.Typef("re-matches", "expected a string, got %s", value.TypeName(args[1]))
		}

		return regex.Matches(pat, string(subject)), nil
	})

	r.def("re-find", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 && len(args) != 2 {
			return nil, corerr.Arityf("re-find", "1 or 2", len(args))
		}
		if len(args) == 2 {
			pat, ok := args[0].(*value.Regex)
			if !ok {
				return nil, corerr.Typef("re-find", "expected a regex, got %s", value.TypeName(args[0]))
			}
			subject, ok := args[1].(value.Str)
			if !ok {
				return nil, corerr.Typef("re-find", "expected a string, got %s", value.TypeName(args[1]))
			}

			return regex.Find(pat, string(subject)), nil
		}
		m, ok := args[0].(*value.Matcher)
		if !ok {
			return nil, corerr.Typef("re-find", "expected a matcher, got %s", value.TypeName(args[0]))
		}

		return regex.FindFromMatcher(m), nil
	})

	r.def("re-seq", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf("re-seq", "2", len(args))
		}
		pat, ok := args[0].(*value.Regex)
		if !ok {
			return nil, corerr.Typef("re-seq", "expected a regex, got %s", value.TypeName(args[0]))
		}
		subject, ok := args[1].(value.Str)
		if !ok {
			return nil, corerr.Typef("re-seq", "expected a string, got %s", value.TypeName(args[1]))
		}

		return regex.Seq(pat, string(subject)), nil
	})

	r.def("re-groups", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("re-groups", "1", len(args))
		}
		m, ok := args[0].(*value.Matcher)
		if !ok {
			return nil, corerr.Typef("re-groups", "expected a matcher, got %s", value.TypeName(args[0]))
		}
		if m.LastGroups == nil {
			return value.Nil{}, nil
		}

		return regex.GroupsToValue(m.LastGroups), nil
	})
}
