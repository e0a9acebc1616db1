package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaploud/clj-runtime/internal/value"
)

func compileOrFail(t *testing.T, src string) *value.Regex {
	t.Helper()
	p, err := Compile(src)
	require.NoError(t, err)

	return p
}

func TestCompileInvalidPattern(t *testing.T) {
	_, err := Compile("(unterminated")
	assert.Error(t, err)
}

func TestMatchesWholeString(t *testing.T) {
	p := compileOrFail(t, `\d+`)
	assert.Equal(t, value.Str("123"), Matches(p, "123"))
	assert.Equal(t, value.Value(value.Nil{}), Matches(p, "a123"), "re-matches must anchor to the whole subject")
}

func TestMatchesWithGroups(t *testing.T) {
	p := compileOrFail(t, `(\d+)-(\d+)`)
	got := Matches(p, "12-34")
	vec, ok := got.(*value.Vector)
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Str("12-34"), value.Str("12"), value.Str("34")}, vec.Elements())
}

func TestFindFirstMatchAnywhere(t *testing.T) {
	p := compileOrFail(t, `\d+`)
	assert.Equal(t, value.Str("42"), Find(p, "abc 42 def"))
	assert.Equal(t, value.Value(value.Nil{}), Find(p, "no digits"))
}

func TestFindFromMatcherAdvancesState(t *testing.T) {
	p := compileOrFail(t, `\d+`)
	m := value.NewMatcher(p, "1 22 333")

	assert.Equal(t, value.Str("1"), FindFromMatcher(m))
	assert.Equal(t, value.Str("22"), FindFromMatcher(m))
	assert.Equal(t, value.Str("333"), FindFromMatcher(m))
	assert.Equal(t, value.Value(value.Nil{}), FindFromMatcher(m))
	assert.True(t, m.Done)
}

func TestFindFromMatcherZeroWidthAdvances(t *testing.T) {
	p := compileOrFail(t, `x*`)
	m := value.NewMatcher(p, "ab")

	first := FindFromMatcher(m)
	assert.Equal(t, value.Str(""), first)
	assert.Equal(t, 1, m.Pos, "a zero-width match must advance the cursor by one byte")
}

func TestSeqCollectsAllMatches(t *testing.T) {
	p := compileOrFail(t, `\d+`)
	seq := Seq(p, "1 22 333")
	v, err := seq.Realise()
	require.NoError(t, err)
	l, ok := v.(*value.List)
	require.True(t, ok)
	assert.Equal(t, []value.Value{value.Str("1"), value.Str("22"), value.Str("333")}, l.Elements())
}

func TestExpandReplacementDollarGroups(t *testing.T) {
	got := ExpandReplacement(`$1-$2`, []string{"12-34", "12", "34"})
	assert.Equal(t, "12-34", got)
}

func TestExpandReplacementEscapedLiteral(t *testing.T) {
	got := ExpandReplacement(`\$1 literal`, []string{"x"})
	assert.Equal(t, "$1 literal", got)
}

func TestReplaceAll(t *testing.T) {
	got, err := ReplaceAll(`\d+`, "a1 b22", "[$0]")
	require.NoError(t, err)
	assert.Equal(t, "a[1] b[22]", got)
}

func TestReplacePatternZeroWidthAdvances(t *testing.T) {
	p := compileOrFail(t, `x*`)
	got := ReplacePattern(p, "abc", "-")
	assert.Equal(t, "-a-b-c-", got)
}

func TestReplaceFirstPattern(t *testing.T) {
	p := compileOrFail(t, `\d+`)
	got := ReplaceFirstPattern(p, "a1 b22", "[$0]")
	assert.Equal(t, "a[1] b22", got)
}

func TestFindFromMatcherRecordsLastGroups(t *testing.T) {
	p := compileOrFail(t, `(\d+)-(\d+)`)
	m := value.NewMatcher(p, "12-34")
	FindFromMatcher(m)
	assert.Equal(t, []string{"12-34", "12", "34"}, m.LastGroups)
}
