package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaploud/clj-runtime/internal/corerr"
	"github.com/chaploud/clj-runtime/internal/value"
)

func kw(name string) *value.Keyword { return value.NewKeyword("", name) }

func TestDeriveAndIsA(t *testing.T) {
	h := New()
	require.NoError(t, h.Derive(kw("square"), kw("shape")))
	require.NoError(t, h.Derive(kw("rect"), kw("shape")))

	assert.True(t, h.IsA(kw("square"), kw("shape")))
	assert.True(t, h.IsA(kw("square"), kw("square")), "isa? is reflexive")
	assert.False(t, h.IsA(kw("shape"), kw("square")))
}

func TestDeriveTransitive(t *testing.T) {
	h := New()
	require.NoError(t, h.Derive(kw("square"), kw("rect")))
	require.NoError(t, h.Derive(kw("rect"), kw("shape")))

	assert.True(t, h.IsA(kw("square"), kw("shape")))
}

func TestDeriveRefusesCycle(t *testing.T) {
	h := New()
	require.NoError(t, h.Derive(kw("a"), kw("b")))
	require.NoError(t, h.Derive(kw("b"), kw("a")))

	assert.True(t, h.IsA(kw("a"), kw("b")))
	assert.False(t, h.IsA(kw("b"), kw("a")))
}

func TestAncestorsAndDescendants(t *testing.T) {
	h := New()
	require.NoError(t, h.Derive(kw("square"), kw("rect")))
	require.NoError(t, h.Derive(kw("rect"), kw("shape")))

	anc := h.Ancestors(kw("square"))
	assert.Contains(t, anc, value.Value(kw("rect")))
	assert.Contains(t, anc, value.Value(kw("shape")))

	desc := h.Descendants(kw("shape"))
	assert.Contains(t, desc, value.Value(kw("rect")))
	assert.Contains(t, desc, value.Value(kw("square")))
}

func TestResolveExactMatchWinsOverHierarchy(t *testing.T) {
	h := New()
	require.NoError(t, h.Derive(kw("square"), kw("shape")))
	mf := value.NewMultiFn("area", value.Nil{})
	mf.AddMethod(kw("shape"), value.Str("generic"))
	mf.AddMethod(kw("square"), value.Str("exact"))

	got, err := Resolve(mf, h, kw("square"))
	require.NoError(t, err)
	assert.Equal(t, value.Str("exact"), got)
}

func TestResolveFallsBackToIsACandidate(t *testing.T) {
	h := New()
	require.NoError(t, h.Derive(kw("square"), kw("shape")))
	mf := value.NewMultiFn("area", value.Nil{})
	mf.AddMethod(kw("shape"), value.Str("generic"))

	got, err := Resolve(mf, h, kw("square"))
	require.NoError(t, err)
	assert.Equal(t, value.Str("generic"), got)
}

func TestResolveNoMethodError(t *testing.T) {
	h := New()
	mf := value.NewMultiFn("area", value.Nil{})
	_, err := Resolve(mf, h, kw("triangle"))
	require.Error(t, err)
	assert.True(t, corerr.Is(err, corerr.NoMethod))
}

func TestResolveUsesDefault(t *testing.T) {
	h := New()
	mf := value.NewMultiFn("area", value.Nil{})
	mf.Default = value.Str("fallback")
	got, err := Resolve(mf, h, kw("triangle"))
	require.NoError(t, err)
	assert.Equal(t, value.Str("fallback"), got)
}

func TestResolveAmbiguousWithoutPrefer(t *testing.T) {
	h := New()
	require.NoError(t, h.Derive(kw("square"), kw("a")))
	require.NoError(t, h.Derive(kw("square"), kw("b")))
	mf := value.NewMultiFn("area", value.Nil{})
	mf.AddMethod(kw("a"), value.Str("via-a"))
	mf.AddMethod(kw("b"), value.Str("via-b"))

	_, err := Resolve(mf, h, kw("square"))
	require.Error(t, err)
	assert.True(t, corerr.Is(err, corerr.AmbiguousDispatch))
}

func TestResolveAmbiguityBrokenByPrefer(t *testing.T) {
	h := New()
	require.NoError(t, h.Derive(kw("square"), kw("a")))
	require.NoError(t, h.Derive(kw("square"), kw("b")))
	mf := value.NewMultiFn("area", value.Nil{})
	mf.AddMethod(kw("a"), value.Str("via-a"))
	mf.AddMethod(kw("b"), value.Str("via-b"))
	mf.Prefer(kw("a"), kw("b"))

	got, err := Resolve(mf, h, kw("square"))
	require.NoError(t, err)
	assert.Equal(t, value.Str("via-a"), got)
}

func TestResolveAmbiguityBrokenByTransitivePrefer(t *testing.T) {
	h := New()
	require.NoError(t, h.Derive(kw("square"), kw("a")))
	require.NoError(t, h.Derive(kw("square"), kw("b")))
	require.NoError(t, h.Derive(kw("square"), kw("c")))
	mf := value.NewMultiFn("area", value.Nil{})
	mf.AddMethod(kw("a"), value.Str("via-a"))
	mf.AddMethod(kw("b"), value.Str("via-b"))
	mf.AddMethod(kw("c"), value.Str("via-c"))
	mf.Prefer(kw("a"), kw("b"))
	mf.Prefer(kw("b"), kw("c"))

	got, err := Resolve(mf, h, kw("square"))
	require.NoError(t, err)
	assert.Equal(t, value.Str("via-a"), got, "a beats c transitively through b, so a must win over all three")
}

func TestIsAVectorPairwise(t *testing.T) {
	h := New()
	require.NoError(t, h.Derive(kw("square"), kw("shape")))
	require.NoError(t, h.Derive(kw("red"), kw("color")))

	child := value.NewVector(kw("square"), kw("red"))
	parent := value.NewVector(kw("shape"), kw("color"))
	assert.True(t, h.IsA(child, parent))
	assert.False(t, h.IsA(child, value.NewVector(kw("shape"))), "different lengths never match")

	mismatched := value.NewVector(kw("shape"), kw("square"))
	assert.False(t, h.IsA(child, mismatched))
}
