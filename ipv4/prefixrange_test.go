package ipv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrefixRangeBothForms(t *testing.T) {
	output, err := ParsePrefixRange("10.0.0.0/8^8-16")
	require.NoError(t, err)

	input, err := ParsePrefixRange("10.0.0.0/8,8,16")
	require.NoError(t, err)

	assert.Equal(t, output, input)
	assert.Equal(t, "10.0.0.0/8^8-16", output.String())
}

func TestNewPrefixRangeRejectsInverted(t *testing.T) {
	p := NewPrefix(AddressFromBytes(10, 0, 0, 0), 8)
	_, err := NewPrefixRange(p, 16, 8)
	assert.Error(t, err)
}

func TestNewPrefixRangeRejectsLowerShorterThanPrefix(t *testing.T) {
	p := NewPrefix(AddressFromBytes(10, 0, 0, 0), 16)
	_, err := NewPrefixRange(p, 8, 16)
	assert.Error(t, err)
}

func TestRangeFromPrefixIsSingleton(t *testing.T) {
	p := NewPrefix(AddressFromBytes(10, 0, 0, 0), 8)
	r := RangeFromPrefix(p)
	assert.Equal(t, PrefixLength(8), r.Lower())
	assert.Equal(t, PrefixLength(8), r.Upper())
}

func TestOrLonger(t *testing.T) {
	r := RangeFromPrefix(NewPrefix(AddressFromBytes(10, 0, 0, 0), 8))
	widened := r.OrLonger()
	assert.Equal(t, MaxPrefixLength, widened.Upper())
}

func TestRangeIterateCount(t *testing.T) {
	r, err := NewPrefixRange(NewPrefix(AddressFromBytes(1, 0, 0, 0), 8), 8, 10)
	require.NoError(t, err)

	got := r.Iterate()
	assert.Len(t, got, 1+2+4)
}

func TestRangeContains(t *testing.T) {
	outer, err := NewPrefixRange(NewPrefix(AddressFromBytes(10, 0, 0, 0), 8), 8, 24)
	require.NoError(t, err)
	inner, err := NewPrefixRange(NewPrefix(AddressFromBytes(10, 1, 0, 0), 16), 16, 20)
	require.NoError(t, err)

	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
}
