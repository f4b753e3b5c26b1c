package ipv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrefixLengthBounds(t *testing.T) {
	_, err := NewPrefixLength(-1)
	assert.Error(t, err)

	_, err = NewPrefixLength(33)
	assert.Error(t, err)

	l, err := NewPrefixLength(32)
	require.NoError(t, err)
	assert.Equal(t, MaxPrefixLength, l)
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	l := PrefixLength(16)
	up, err := l.Increment()
	require.NoError(t, err)
	down, err := up.Decrement()
	require.NoError(t, err)
	assert.Equal(t, l, down)
}

func TestIncrementAtBoundFails(t *testing.T) {
	_, err := MaxPrefixLength.Increment()
	assert.Error(t, err)

	_, err = MinLength.Decrement()
	assert.Error(t, err)
}

func TestNeg(t *testing.T) {
	assert.Equal(t, PrefixLength(24), PrefixLength(8).Neg())
	assert.Equal(t, PrefixLength(8), PrefixLength(8).Neg().Neg())
}
