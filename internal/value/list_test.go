package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListConsAndRest(t *testing.T) {
	l := NewList(Int(2), Int(3))
	l2 := l.Cons(Int(1))

	assert.Equal(t, Int(2), l.First(), "original list must be unmodified by Cons")
	assert.Equal(t, Int(1), l2.First())
	assert.Equal(t, Int(2), l2.Rest().First())
}

func TestEmptyListRestAndFirst(t *testing.T) {
	assert.True(t, EmptyList.IsEmpty())
	assert.Equal(t, Value(Nil{}), EmptyList.First())
	assert.Equal(t, EmptyList, EmptyList.Rest())
}

func TestListEquals(t *testing.T) {
	a := NewList(Int(1), Int(2))
	b := NewList(Int(1), Int(2))
	c := NewList(Int(1), Int(3))
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestNthList(t *testing.T) {
	l := NewList(Int(10), Int(20), Int(30))
	got, err := NthList(l, 1)
	assert.NoError(t, err)
	assert.Equal(t, Int(20), got)

	_, err = NthList(l, 10)
	assert.Error(t, err)
}
