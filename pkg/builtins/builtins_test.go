package builtins_test

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

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func newEngine(t *testing.T) *interpreter.Interpreter {
	t.Helper()
	hierarchy.Reset()
	in := interpreter.New("user")
	builtins.NewRegistry(in, discard{}).InstallAll()

	return in
}

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

func TestStringBuiltins(t *testing.T) {
	in := newEngine(t)
	assert.Equal(t, value.Str("HELLO"), evalAll(t, in, `(upper-case "hello")`))
	assert.Equal(t, value.Str("a,b,c"), evalAll(t, in, `(str/join "," ["a" "b" "c"])`))
	assert.Equal(t, value.Str("ab"), evalAll(t, in, `(str "a" nil "b")`))
}

func TestCastBuiltins(t *testing.T) {
	in := newEngine(t)
	assert.Equal(t, value.NewKeyword("", "foo"), evalAll(t, in, `(keyword "foo")`))
	assert.Equal(t, value.Int(42), evalAll(t, in, `(int "42")`))
	assert.Equal(t, value.Float(3.0), evalAll(t, in, `(double 3)`))
}

func TestGensymProducesDistinctSymbols(t *testing.T) {
	in := newEngine(t)
	a := evalAll(t, in, "(gensym)")
	b := evalAll(t, in, "(gensym)")
	assert.False(t, value.Eql(a, b))

	prefixed := evalAll(t, in, `(gensym "tmp")`).(*value.Symbol)
	assert.Contains(t, prefixed.Name, "tmp")
}

func TestMetaRoundTrip(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, `
		(def v (with-meta [1 2 3] {:doc "a vector"}))
		(meta v)`)
	m, ok := got.(*value.Map)
	require.True(t, ok)
	assert.Equal(t, value.Str("a vector"), m.Get(value.NewKeyword("", "doc"), value.Nil{}))
}

func TestMetaOnUnsupportedValueIsTypeError(t *testing.T) {
	in := newEngine(t)
	forms, err := reader.New(`(with-meta 42 {:a 1})`).ReadAll()
	require.NoError(t, err)
	an := analyzer.New(in.CurrentNS)
	node, err := an.Analyze(forms[0])
	require.NoError(t, err)
	_, err = in.Eval(node, value.NewEnv())
	assert.Error(t, err)
}

func TestRegexBuiltins(t *testing.T) {
	in := newEngine(t)
	assert.Equal(t, value.Str("42"), evalAll(t, in, `(re-find #"\d+" "a42b")`))
	got := evalAll(t, in, `(re-seq #"\d+" "1 22 333")`)
	ls, ok := got.(*value.LazySeq)
	require.True(t, ok)
	v, err := ls.Realise()
	require.NoError(t, err)
	l := v.(*value.List)
	assert.Equal(t, 3, l.Count())
}

func TestReGroups(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, `
		(def m (re-matcher #"(\d+)-(\d+)" "12-34"))
		(re-find m)
		(re-groups m)`)
	v, ok := got.(*value.Vector)
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Str("12-34"), value.Str("12"), value.Str("34")}, v.Elements())
}

func TestReGroupsBeforeAnyMatchIsNil(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, `
		(def m (re-matcher #"\d+" "abc"))
		(re-groups m)`)
	assert.Equal(t, value.Value(value.Nil{}), got)
}

func TestStringReplaceLiteralAndRegex(t *testing.T) {
	in := newEngine(t)
	assert.Equal(t, value.Str("a_b_"), evalAll(t, in, `(string-replace "a1b2" #"\d" "_")`))
	assert.Equal(t, value.Str("xbxb"), evalAll(t, in, `(string-replace "abab" "a" "x")`))
	assert.Equal(t, value.Str("x-34"), evalAll(t, in, `(string-replace-first "12-34" #"\d+" "x")`))
	assert.Equal(t, value.Str("[12]-[34]"), evalAll(t, in, `(string-replace "12-34" #"(\d+)" "[$1]")`))
}

func TestStringSplitLiteralAndRegex(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, `(string-split "a1b22c" #"\d+")`).(*value.Vector)
	assert.Equal(t, []value.Value{value.Str("a"), value.Str("b"), value.Str("c")}, got.Elements())

	got = evalAll(t, in, `(string-split "a,b,c" ",")`).(*value.Vector)
	assert.Equal(t, []value.Value{value.Str("a"), value.Str("b"), value.Str("c")}, got.Elements())
}

func TestArithmeticWrapsSilentlyUnlessChecked(t *testing.T) {
	in := newEngine(t)
	maxInt := evalAll(t, in, `(+ 9223372036854775807 1)`)
	assert.Equal(t, value.Int(-9223372036854775808), maxInt, "plain + wraps like native int64 addition")

	forms, err := reader.New(`(+' 9223372036854775807 1)`).ReadAll()
	require.NoError(t, err)
	an := analyzer.New(in.CurrentNS)
	node, err := an.Analyze(forms[0])
	require.NoError(t, err)
	_, err = in.Eval(node, value.NewEnv())
	assert.Error(t, err, "checked +' raises on the same overflow")
}

func TestMinMaxPreserveVariant(t *testing.T) {
	in := newEngine(t)
	assert.Equal(t, value.Int(1), evalAll(t, in, `(min 3 1 2)`))
	assert.Equal(t, value.Float(2.5), evalAll(t, in, `(max 1 2.5 2)`))
}

func TestBitOps(t *testing.T) {
	in := newEngine(t)
	assert.Equal(t, value.Int(8), evalAll(t, in, `(bit-and 12 10)`))
	assert.Equal(t, value.Int(14), evalAll(t, in, `(bit-or 12 10)`))
	assert.Equal(t, value.Int(6), evalAll(t, in, `(bit-xor 12 10)`))
	assert.Equal(t, value.Int(-13), evalAll(t, in, `(bit-not 12)`))
	assert.Equal(t, value.Int(48), evalAll(t, in, `(bit-shift-left 12 2)`))
	assert.Equal(t, value.Int(3), evalAll(t, in, `(bit-shift-right 12 2)`))
	assert.Equal(t, value.Int(3), evalAll(t, in, `(unsigned-bit-shift-right 12 2)`))
}

func TestParseBuiltins(t *testing.T) {
	in := newEngine(t)
	assert.Equal(t, value.Int(42), evalAll(t, in, `(parse-long "  42 ")`))
	assert.Equal(t, value.Value(value.Nil{}), evalAll(t, in, `(parse-long "nope")`))
	assert.Equal(t, value.Float(3.5), evalAll(t, in, `(parse-double "3.5")`))
	assert.Equal(t, value.Bool(true), evalAll(t, in, `(parse-boolean "true")`))
	assert.Equal(t, value.Value(value.Nil{}), evalAll(t, in, `(parse-boolean "nope")`))
}

func TestSeqEqualsThroughEqualsBuiltin(t *testing.T) {
	in := newEngine(t)
	assert.Equal(t, value.Bool(true), evalAll(t, in, `(= [1 2 3] (list 1 2 3))`))
	assert.Equal(t, value.Bool(false), evalAll(t, in, `(= [1 2 3] [1 2])`))
}

func TestMultiFnWithLocalHierarchy(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, `
		(def h (make-hierarchy))
		(derive h :square :shape)
		(def area (make-multi-fn "area" :shape-type h))
		(add-method area :shape (fn* [s] 0))
		(area {:shape-type :square})`)
	assert.Equal(t, value.Int(0), got, "square resolves to the shape method via the local hierarchy's derive")

	assert.Equal(t, value.Bool(false), evalAll(t, in, `(isa? :square :shape)`),
		"a local hierarchy's relations must not leak into the global one")
}

func TestDelayAndLazySeqSpecialForms(t *testing.T) {
	in := newEngine(t)
	got := evalAll(t, in, `
		(def calls (atom 0))
		(def d (delay (swap! calls inc) 42))
		(force d)
		(force d)
		(deref calls)`)
	assert.Equal(t, value.Int(1), got, "delay's body runs exactly once across repeated force")

	got = evalAll(t, in, `(first (lazy-seq (list 1 2 3)))`)
	assert.Equal(t, value.Int(1), got)
}
