package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorConjAndNth(t *testing.T) {
	v := NewVector(Int(1), Int(2), Int(3))
	v2 := v.Conj(Int(4))

	assert.Equal(t, 3, v.Len(), "original vector must be unmodified by Conj")
	assert.Equal(t, 4, v2.Len())

	got, err := v2.Nth(3)
	require.NoError(t, err)
	assert.Equal(t, Int(4), got)
}

func TestVectorNthOutOfBounds(t *testing.T) {
	v := NewVector(Int(1))
	_, err := v.Nth(5)
	require.Error(t, err)
	assert.True(t, isKind(t, err, "IndexError"))
}

func TestVectorGetDefaultsToNil(t *testing.T) {
	v := NewVector(Int(1))
	assert.Equal(t, Value(Nil{}), v.Get(9))
}

func TestVectorPopEmpty(t *testing.T) {
	_, err := EmptyVector().Pop()
	require.Error(t, err)
}

func TestVectorAssoc(t *testing.T) {
	v := NewVector(Int(1), Int(2))
	v2, err := v.Assoc(1, Int(9))
	require.NoError(t, err)
	assert.Equal(t, Int(1), v.Get(1), "original unmodified")
	assert.Equal(t, Int(9), v2.Get(1))

	// assoc at len(v) is equivalent to conj
	v3, err := v.Assoc(2, Int(3))
	require.NoError(t, err)
	assert.Equal(t, 3, v3.Len())
}

func TestVectorEquals(t *testing.T) {
	a := NewVector(Int(1), Int(2))
	b := NewVector(Int(1), Int(2))
	c := NewVector(Int(1), Int(3))
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func EmptyVector() *Vector { return NewVector() }

func isKind(t *testing.T, err error, kind string) bool {
	t.Helper()

	return err.Error()[:len(kind)] == kind
}
