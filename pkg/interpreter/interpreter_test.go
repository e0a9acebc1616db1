package interpreter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaploud/clj-runtime/internal/value"
	"github.com/chaploud/clj-runtime/pkg/analyzer"
	"github.com/chaploud/clj-runtime/pkg/builtins"
	"github.com/chaploud/clj-runtime/pkg/hierarchy"
	"github.com/chaploud/clj-runtime/pkg/interpreter"
	"github.com/chaploud/clj-runtime/pkg/reader"
)

// newEngine mirrors cmd/clj's wiring: a fresh interpreter with every
// built-in installed, evaluating against a fresh global hierarchy so tests
// don't leak derive/prefer state into each other.
func newEngine(t *testing.T) *interpreter.Interpreter {
	t.Helper()
	hierarchy.Reset()
	in := interpreter.New("user")
	builtins.NewRegistry(in, noopWriter{}).InstallAll()

	return in
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }

func evalAll(t *testing.T, in *interpreter.Interpreter, src string) value.Value {
	t.Helper()
	forms, err := reader.New(src).ReadAll()
	require.NoError(t, err)
	an := analyzer.New(in.CurrentNS)
	var last value.Value = value.Nil{}
	for _, f := range forms {
		node, err := an.Analyze(f)
		require.NoError(t, err)
		last, err = in.Eval(node, value.NewEnv())
		require.NoError(t, err)
	}

	return last
}

func TestArithmeticAndLet(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, "(let* [x 2 y 3] (+ (* x y) 1))")
	assert.Equal(t, value.Int(7), got)
}

func TestIfAndPredicates(t *testing.T) {
	in := newEngine(t)
	assert.Equal(t, value.Bool(true), evalAll(t, in, "(if (> 3 2) true false)"))
	assert.Equal(t, value.Bool(false), evalAll(t, in, "(nil? 1)"))
}

func TestFnAndApply(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, "(def square (fn* [x] (* x x))) (square 6)")
	assert.Equal(t, value.Int(36), got)
}

func TestVariadicFn(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, "(def f (fn* [a & rest] (count rest))) (f 1 2 3 4)")
	assert.Equal(t, value.Int(3), got)
}

func TestRecurLoop(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, `
		(loop* [i 0 acc 0]
		  (if (== i 5)
		    acc
		    (recur (+ i 1) (+ acc i))))`)
	assert.Equal(t, value.Int(10), got)
}

func TestRecurInFnTrampolines(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, `
		(def count-down
		  (fn* [n acc]
		    (if (== n 0) acc (recur (- n 1) (+ acc 1)))))
		(count-down 10000 0)`)
	assert.Equal(t, value.Int(10000), got, "recur must not grow the Go call stack")
}

func TestQuasiquoteUnquoteSplicing(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, "(def xs (list 2 3)) `(1 ~@xs 4)")
	l, ok := got.(*value.List)
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2), value.Int(3), value.Int(4)}, l.Elements())
}

func TestCollectionBuiltins(t *testing.T) {
	in := newEngine(t)
	assert.Equal(t, value.Int(3), evalAll(t, in, "(count [1 2 3])"))
	assert.Equal(t, value.Int(1), evalAll(t, in, "(first [1 2 3])"))
	assert.Equal(t, value.Bool(true), evalAll(t, in, "(contains? {:a 1} :a)"))
}

func TestAtomSwapBuiltin(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, "(def a (atom 1)) (swap! a inc) (deref a)")
	assert.Equal(t, value.Int(2), got)
}

func TestMapFilterReduce(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, "(reduce + 0 (filter even? (map inc [1 2 3 4 5])))")
	assert.Equal(t, value.Int(12), got)
}

func TestReducedShortCircuits(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, `
		(reduce
		  (fn* [acc x] (if (== x 3) (reduced acc) (+ acc x)))
		  0
		  [1 2 3 4 5])`)
	assert.Equal(t, value.Int(3), got)
}

func TestCompAndPartial(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, "((comp inc inc) 1)")
	assert.Equal(t, value.Int(3), got)

	got = evalAll(t, in, "((partial + 10) 5)")
	assert.Equal(t, value.Int(15), got)
}

func TestTransientPersistentRoundTrip(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, `
		(persistent!
		  (conj! (conj! (transient []) 1) 2))`)
	v, ok := got.(*value.Vector)
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2)}, v.Elements())
}

func TestKeywordAsLookupFn(t *testing.T) {
	in := newEngine(t)
	assert.Equal(t, value.Int(5), evalAll(t, in, "(:a {:a 5})"))
	assert.Equal(t, value.Value(value.Nil{}), evalAll(t, in, "(:missing {:a 5})"))
	assert.Equal(t, value.Int(9), evalAll(t, in, "(:missing {:a 5} 9)"))
}

func TestMultiMethodDispatch(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, `
		(def area (make-multi-fn "area" :shape-type))
		(add-method area :circle (fn* [s] 1))
		(add-method area :square (fn* [s] 2))
		(area {:shape-type :square})`)
	assert.Equal(t, value.Int(2), got)
}

func TestMultiMethodNoMatchingMethod(t *testing.T) {
	in := newEngine(t)
	forms, err := reader.New(`
		(def area (make-multi-fn "area" :shape-type))
		(add-method area :circle (fn* [s] 1))
		(area {:shape-type :triangle})`).ReadAll()
	require.NoError(t, err)
	an := analyzer.New(in.CurrentNS)
	var lastErr error
	for _, f := range forms {
		node, err := an.Analyze(f)
		require.NoError(t, err)
		_, lastErr = in.Eval(node, value.NewEnv())
	}
	assert.Error(t, lastErr)
}
