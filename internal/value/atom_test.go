package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomResetAndDeref(t *testing.T) {
	a := NewAtom(Int(1))
	assert.Equal(t, Int(1), a.Deref())
	assert.Equal(t, Int(2), a.Reset(Int(2)))
	assert.Equal(t, Int(2), a.Deref())
}

func TestAtomCompareAndSet(t *testing.T) {
	a := NewAtom(Int(1))
	assert.False(t, a.CompareAndSet(Int(99), Int(2)), "CAS against a stale value must fail")
	assert.True(t, a.CompareAndSet(Int(1), Int(2)))
	assert.Equal(t, Int(2), a.Deref())
}

func TestAtomSwap(t *testing.T) {
	a := NewAtom(Int(10))
	got, err := a.Swap(func(cur Value) (Value, error) {
		return Int(cur.(Int) + 1), nil
	})
	require.NoError(t, err)
	assert.Equal(t, Int(11), got)
	assert.Equal(t, Int(11), a.Deref())
}

func TestSeqEqualsAcrossListAndVector(t *testing.T) {
	l := NewList(Int(1), Int(2))
	v := NewVector(Int(1), Int(2))
	assert.True(t, SeqEquals(l, v))
	assert.False(t, Eql(l, v), "Eql must never cross List/Vector variant tags")
}

func TestNumEquals(t *testing.T) {
	assert.True(t, NumEquals(Int(2), Float(2.0)))
	assert.False(t, NumEquals(Int(2), Str("2")))
}
