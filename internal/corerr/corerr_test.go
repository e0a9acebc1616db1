package corerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindStrings(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Arity, "ArityError"},
		{Type, "TypeError"},
		{DivisionByZero, "DivisionByZero"},
		{ArithmeticOverflow, "ArithmeticOverflow"},
		{NoMethod, "NoMethodError"},
		{AmbiguousDispatch, "AmbiguousDispatchError"},
		{State, "StateError"},
		{Eval, "EvalError"},
		{Index, "IndexError"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.kind.String())
	}
}

func TestArityf(t *testing.T) {
	err := Arityf("+", "at least 1", 0)
	assert.True(t, Is(err, Arity))
	assert.Contains(t, err.Error(), "ArityError")
	assert.Contains(t, err.Error(), "+")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(Eval, "read-string", cause, "could not parse")
	assert.True(t, Is(err, Eval))
	assert.ErrorIs(t, err, cause)
}

func TestIsFalseForNonCoreError(t *testing.T) {
	assert.False(t, Is(errors.New("plain"), Type))
}
