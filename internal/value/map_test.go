package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapAssocGetDissoc(t *testing.T) {
	m := NewMap(NewKeyword("", "a"), Int(1), NewKeyword("", "b"), Int(2))

	assert.Equal(t, Int(1), m.Get(NewKeyword("", "a"), Nil{}))
	assert.Equal(t, Value(Nil{}), m.Get(NewKeyword("", "z"), Nil{}))
	assert.True(t, m.Contains(NewKeyword("", "b")))

	m2 := m.Dissoc(NewKeyword("", "a"))
	assert.False(t, m2.Contains(NewKeyword("", "a")))
	assert.True(t, m.Contains(NewKeyword("", "a")), "Dissoc must not mutate the receiver")
}

func TestMapAssocOverwritePreservesPosition(t *testing.T) {
	m := NewMap(NewKeyword("", "a"), Int(1), NewKeyword("", "b"), Int(2))
	m2 := m.Assoc(NewKeyword("", "a"), Int(9))

	keys := m2.Keys()
	assert.Equal(t, NewKeyword("", "a"), keys[0], "overwriting a key keeps its original position")
	assert.Equal(t, Int(9), m2.Get(NewKeyword("", "a"), Nil{}))
}

func TestMapIterationOrderIsInsertionOrder(t *testing.T) {
	m := NewMap(
		NewKeyword("", "z"), Int(1),
		NewKeyword("", "a"), Int(2),
		NewKeyword("", "m"), Int(3),
	)
	keys := m.Keys()
	assert.Equal(t, []Value{
		NewKeyword("", "z"),
		NewKeyword("", "a"),
		NewKeyword("", "m"),
	}, keys)
}

func TestMapEquals(t *testing.T) {
	a := NewMap(NewKeyword("", "x"), Int(1))
	b := NewMap(NewKeyword("", "x"), Int(1))
	assert.True(t, a.Equals(b))

	c := NewMap(NewKeyword("", "x"), Int(2))
	assert.False(t, a.Equals(c))
}
