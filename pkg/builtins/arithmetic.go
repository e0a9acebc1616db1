package builtins

import (
	"math"

	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

func numericArgs(op string, args []value.Value) error {
	for _, a := range args {
		if !value.IsNumeric(a) {
			return corerr.Typef(op, "expected a number, got %s", value.TypeName(a))
		}
	}

	return nil
}

func addOverflows(a, b int64) bool {
	if b > 0 && a > math.MaxInt64-b {
		return true
	}
	if b < 0 && a < math.MinInt64-b {
		return true
	}

	return false
}

func subOverflows(a, b int64) bool {
	if b < 0 && a > math.MaxInt64+b {
		return true
	}
	if b > 0 && a < math.MinInt64+b {
		return true
	}

	return false
}

func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	result := a * b

	return result/b != a
}

// arith folds args left to right with intOp when every arg is an Int, or
// floatOp once any Float is present (Clojure-style numeric contagion).
func arith(op string, args []value.Value, identity int64,
	intOp func(a, b int64) (int64, error), floatOp func(a, b float64) float64,
) (value.Value, error) {
	if err := numericArgs(op, args); err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return value.Int(identity), nil
	}

	allInt := true
	for _, a := range args {
		if _, ok := a.(value.Int); !ok {
			allInt = false

			break
		}
	}

	if allInt {
		acc := int64(args[0].(value.Int))
		for _, a := range args[1:] {
			var err error
			acc, err = intOp(acc, int64(a.(value.Int)))
			if err != nil {
				return nil, err
			}
		}

		return value.Int(acc), nil
	}

	acc, _ := value.AsFloat(args[0])
	for _, a := range args[1:] {
		f, _ := value.AsFloat(a)
		acc = floatOp(acc, f)
	}

	return value.Float(acc), nil
}

func (r *Registry) installArithmetic() {
	// Plain +, -, *, inc, dec wrap silently on int64 overflow (Go's native
	// two's-complement wraparound); the checked forms below (+', -', *',
	// inc', dec') raise ArithmeticOverflow instead.
	r.def("+", func(args []value.Value) (value.Value, error) {
		return arith("+", args, 0,
			func(a, b int64) (int64, error) { return a + b, nil },
			func(a, b float64) float64 { return a + b })
	})

	r.def("-", func(args []value.Value) (value.Value, error) {
		if err := numericArgs("-", args); err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, corerr.Arityf("-", "at least 1", 0)
		}
		if len(args) == 1 {
			if i, ok := args[0].(value.Int); ok {
				return -i, nil
			}
			f, _ := value.AsFloat(args[0])

			return value.Float(-f), nil
		}

		return arith("-", args, 0,
			func(a, b int64) (int64, error) { return a - b, nil },
			func(a, b float64) float64 { return a - b })
	})

	r.def("*", func(args []value.Value) (value.Value, error) {
		return arith("*", args, 1,
			func(a, b int64) (int64, error) { return a * b, nil },
			func(a, b float64) float64 { return a * b })
	})

	r.def("+'", func(args []value.Value) (value.Value, error) {
		return arith("+'", args, 0,
			func(a, b int64) (int64, error) {
				if addOverflows(a, b) {
					return 0, corerr.New(corerr.ArithmeticOverflow, "+'", "integer overflow adding %d and %d", a, b)
				}

				return a + b, nil
			},
			func(a, b float64) float64 { return a + b })
	})

	r.def("-'", func(args []value.Value) (value.Value, error) {
		if err := numericArgs("-'", args); err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, corerr.Arityf("-'", "at least 1", 0)
		}
		if len(args) == 1 {
			if i, ok := args[0].(value.Int); ok {
				if i == math.MinInt64 {
					return nil, corerr.New(corerr.ArithmeticOverflow, "-'", "integer overflow negating %d", i)
				}

				return -i, nil
			}
			f, _ := value.AsFloat(args[0])

			return value.Float(-f), nil
		}

		return arith("-'", args, 0,
			func(a, b int64) (int64, error) {
				if subOverflows(a, b) {
					return 0, corerr.New(corerr.ArithmeticOverflow, "-'", "integer overflow subtracting %d from %d", b, a)
				}

				return a - b, nil
			},
			func(a, b float64) float64 { return a - b })
	})

	r.def("*'", func(args []value.Value) (value.Value, error) {
		return arith("*'", args, 1,
			func(a, b int64) (int64, error) {
				if mulOverflows(a, b) {
					return 0, corerr.New(corerr.ArithmeticOverflow, "*'", "integer overflow multiplying %d and %d", a, b)
				}

				return a * b, nil
			},
			func(a, b float64) float64 { return a * b })
	})

	r.def("/", func(args []value.Value) (value.Value, error) {
		if err := numericArgs("/", args); err != nil {
			return nil, err
		}
		if len(args) == 0 {
			return nil, corerr.Arityf("/", "at least 1", 0)
		}
		if len(args) == 1 {
			args = []value.Value{value.Int(1), args[0]}
		}
		acc, _ := value.AsFloat(args[0])
		allInt := isInt(args[0])
		for _, a := range args[1:] {
			f, _ := value.AsFloat(a)
			if f == 0 {
				return nil, corerr.New(corerr.DivisionByZero, "/", "division by zero")
			}
			acc /= f
			allInt = allInt && isInt(a)
		}
		if allInt && acc == math.Trunc(acc) {
			return value.Int(int64(acc)), nil
		}

		return value.Float(acc), nil
	})

	r.def("quot", intPairOp("quot", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, corerr.New(corerr.DivisionByZero, "quot", "division by zero")
		}

		return a / b, nil
	}))

	r.def("rem", intPairOp("rem", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, corerr.New(corerr.DivisionByZero, "rem", "division by zero")
		}

		return a % b, nil
	}))

	r.def("mod", intPairOp("mod", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, corerr.New(corerr.DivisionByZero, "mod", "division by zero")
		}
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}

		return m, nil
	}))

	r.def("inc", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("inc", "1", len(args))
		}

		return r.applyTwoArgArith("+", args[0], value.Int(1))
	})

	r.def("dec", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("dec", "1", len(args))
		}

		return r.applyTwoArgArith("-", args[0], value.Int(1))
	})

	r.def("inc'", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("inc'", "1", len(args))
		}

		return r.applyTwoArgArith("+'", args[0], value.Int(1))
	})

	r.def("dec'", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, corerr.Arityf("dec'", "1", len(args))
		}

		return r.applyTwoArgArith("-'", args[0], value.Int(1))
	})

	r.def("min", minMaxOp("min", func(cmp int) bool { return cmp < 0 }))
	r.def("max", minMaxOp("max", func(cmp int) bool { return cmp > 0 }))
}

// minMaxOp folds args left to right, keeping whichever of the running best
// and the next arg wins according to keep, and preserving that winner's
// own numeric variant (Int stays Int, Float stays Float) rather than
// coercing through float64.
func minMaxOp(op string, keep func(cmp int) bool) BuiltinFn {
	return func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return nil, corerr.Arityf(op, "at least 1", 0)
		}
		if err := numericArgs(op, args); err != nil {
			return nil, err
		}
		best := args[0]
		bestF, _ := value.AsFloat(best)
		for _, a := range args[1:] {
			f, _ := value.AsFloat(a)
			if keep(numCompare(f, bestF)) {
				best, bestF = a, f
			}
		}

		return best, nil
	}
}

func numCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isInt(v value.Value) bool {
	_, ok := v.(value.Int)

	return ok
}

func intPairOp(op string, fn func(a, b int64) (int64, error)) BuiltinFn {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, corerr.Arityf(op, "2", len(args))
		}
		a, aok := args[0].(value.Int)
		b, bok := args[1].(value.Int)
		if !aok || !bok {
			return nil, corerr.Typef(op, "%s requires two integers", op)
		}
		v, err := fn(int64(a), int64(b))
		if err != nil {
			return nil, err
		}

		return value.Int(v), nil
	}
}

func (r *Registry) applyTwoArgArith(op string, a, b value.Value) (value.Value, error) {
	v, ok := r.In.Intern(r.In.CurrentNS, op).Root.(*value.Builtin)
	if !ok {
		return nil, corerr.New(corerr.Eval, op, "builtin %s not installed", op)
	}

	return v.Apply([]value.Value{a, b})
}
