package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaploud/clj-runtime/internal/value"
)

func readOne(t *testing.T, src string) value.Value {
	t.Helper()
	v, err := New(src).Read()
	require.NoError(t, err)

	return v
}

func TestReadScalars(t *testing.T) {
	assert.Equal(t, value.Int(42), readOne(t, "42"))
	assert.Equal(t, value.Float(3.5), readOne(t, "3.5"))
	assert.Equal(t, value.Bool(true), readOne(t, "true"))
	assert.Equal(t, value.Nil{}, readOne(t, "nil"))
	assert.Equal(t, value.Str("hi\n"), readOne(t, `"hi\n"`))
	assert.Equal(t, value.Char('a'), readOne(t, `\a`))
	assert.Equal(t, value.Char('\n'), readOne(t, `\newline`))
	assert.Equal(t, value.NewKeyword("", "foo"), readOne(t, ":foo"))
	assert.Equal(t, value.NewKeyword("ns", "foo"), readOne(t, ":ns/foo"))
	assert.Equal(t, value.NewSymbol("", "foo"), readOne(t, "foo"))
}

func TestReadCollections(t *testing.T) {
	v := readOne(t, "(1 2 3)")
	l, ok := v.(*value.List)
	require.True(t, ok)
	assert.Equal(t, 3, l.Count())

	vec := readOne(t, "[1 2 3]").(*value.Vector)
	assert.Equal(t, 3, vec.Len())

	m := readOne(t, "{:a 1 :b 2}").(*value.Map)
	assert.Equal(t, 2, m.Count())

	st := readOne(t, "#{1 2 3}").(*value.Set)
	assert.Equal(t, 3, st.Count())
}

func TestReadMapOddArgsFails(t *testing.T) {
	_, err := New("{:a}").Read()
	assert.Error(t, err)
}

func TestReaderMacros(t *testing.T) {
	expectForm := func(src, head string) {
		v := readOne(t, src)
		l := v.(*value.List)
		sym := l.First().(*value.Symbol)
		assert.Equal(t, head, sym.Name)
	}
	expectForm("'x", "quote")
	expectForm("`x", "quasiquote")
	expectForm("~x", "unquote")
	expectForm("~@x", "unquote-splicing")
}

func TestDiscardReaderMacro(t *testing.T) {
	forms, err := New("(1 #_2 3)").Read()
	require.NoError(t, err)
	l := forms.(*value.List)
	assert.Equal(t, 2, l.Count())
}

func TestReadAllReadsEveryTopLevelForm(t *testing.T) {
	forms, err := New("1 2 3").ReadAll()
	require.NoError(t, err)
	assert.Len(t, forms, 3)
}

func TestReadRegexLiteral(t *testing.T) {
	v := readOne(t, `#"\d+"`)
	re, ok := v.(*value.Regex)
	require.True(t, ok)
	assert.Equal(t, `\d+`, re.Source)
}

func TestReadInvalidRegexLiteralIsAnError(t *testing.T) {
	_, err := New(`#"("`).Read()
	assert.Error(t, err)
}

func TestReadUnterminatedStringIsAnError(t *testing.T) {
	_, err := New(`"abc`).Read()
	assert.Error(t, err)
}
