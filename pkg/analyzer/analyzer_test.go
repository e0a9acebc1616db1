package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaploud/clj-runtime/internal/types"
	"github.com/chaploud/clj-runtime/internal/value"
	"github.com/chaploud/clj-runtime/pkg/reader"
)

func analyzeSrc(t *testing.T, src string) types.Node {
	t.Helper()
	form, err := reader.New(src).Read()
	require.NoError(t, err)
	node, err := New("user").Analyze(form)
	require.NoError(t, err)

	return node
}

func TestAnalyzeLiteralAndVarRef(t *testing.T) {
	_, ok := analyzeSrc(t, "42").(*types.LiteralNode)
	assert.True(t, ok)

	_, ok = analyzeSrc(t, "x").(*types.VarRefNode)
	assert.True(t, ok)
}

func TestAnalyzeIfArity(t *testing.T) {
	_, err := New("user").Analyze(mustRead(t, "(if a b c d)"))
	assert.Error(t, err)
}

func TestAnalyzeLet(t *testing.T) {
	node := analyzeSrc(t, "(let* [x 1 y 2] y)").(*types.LetNode)
	require.Len(t, node.Bindings, 2)
	assert.Equal(t, "x", node.Bindings[0].Name)
	assert.Equal(t, "y", node.Bindings[1].Name)
}

func TestAnalyzeLetOddBindingsFails(t *testing.T) {
	_, err := New("user").Analyze(mustRead(t, "(let* [x] x)"))
	assert.Error(t, err)
}

func TestAnalyzeFnVariadic(t *testing.T) {
	node := analyzeSrc(t, "(fn* [x & rest] rest)").(*types.FnNode)
	assert.Equal(t, []string{"x"}, node.Params)
	assert.Equal(t, "rest", node.Variadic)
}

func TestAnalyzeDef(t *testing.T) {
	node := analyzeSrc(t, "(def answer 42)").(*types.DefNode)
	assert.Equal(t, "user", node.NS)
	assert.Equal(t, "answer", node.Name)
	assert.NotNil(t, node.Init)
}

func TestAnalyzeApply(t *testing.T) {
	node := analyzeSrc(t, "(f 1 2)").(*types.ApplyNode)
	assert.Len(t, node.Args, 2)
}

func TestAnalyzeQuoteDoesNotEvaluateTemplate(t *testing.T) {
	node := analyzeSrc(t, "'(1 2 3)").(*types.QuoteNode)
	l, ok := node.Form.(*value.List)
	require.True(t, ok)
	assert.Equal(t, 3, l.Count())
}

func TestAnalyzeDelay(t *testing.T) {
	node := analyzeSrc(t, "(delay (+ 1 2))").(*types.DelayNode)
	require.Len(t, node.Body, 1)
}

func TestAnalyzeLazySeq(t *testing.T) {
	node := analyzeSrc(t, "(lazy-seq (list 1 2))").(*types.LazySeqNode)
	require.Len(t, node.Body, 1)
}

func mustRead(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := reader.New(src).Read()
	require.NoError(t, err)

	return v
}
