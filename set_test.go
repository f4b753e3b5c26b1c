package prefixset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-prefixset/prefixset/ipv4"
)

func TestParseAddressDispatch(t *testing.T) {
	v4, err := ParseAddress("192.0.2.1")
	require.NoError(t, err)
	assert.True(t, v4.IsV4())
	assert.Equal(t, "192.0.2.1", v4.String())

	v6, err := ParseAddress("2001:db8::1")
	require.NoError(t, err)
	assert.True(t, v6.IsV6())
	assert.Equal(t, "2001:db8::1", v6.String())
}

func TestParsePrefixDispatch(t *testing.T) {
	v4, err := ParsePrefix("192.0.2.0/24")
	require.NoError(t, err)
	assert.True(t, v4.IsV4())

	v6, err := ParsePrefix("2001:db8::/32")
	require.NoError(t, err)
	assert.True(t, v6.IsV6())
}

func TestPrefixContainsMismatchedFamilyErrors(t *testing.T) {
	p, err := ParsePrefix("192.0.2.0/24")
	require.NoError(t, err)
	a, err := ParseAddress("2001:db8::1")
	require.NoError(t, err)

	_, err = p.Contains(a)
	require.Error(t, err)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, AfiMismatch, pe.Kind)
}

func TestCrossFamilyPartition(t *testing.T) {
	v4, err := ParsePrefix("192.0.2.0/24")
	require.NoError(t, err)
	v6, err := ParsePrefix("2001:db8::/32")
	require.NoError(t, err)

	elsewhere, err := ipv4.ParsePrefix("10.0.0.0/8")
	require.NoError(t, err)

	set := Partition([]AnyPrefix{v4, v6})

	v4Half, v6Half := set.Partition()
	assert.True(t, v4Half.Contains(*v4.V4))
	assert.False(t, v4Half.Contains(elsewhere))
	assert.True(t, v6Half.Contains(*v6.V6))
	assert.Equal(t, 1, len(v4Half.Ranges()))
	assert.Equal(t, 1, len(v6Half.Ranges()))

	assert.True(t, set.Contains(v4))
	assert.True(t, set.Contains(v6))
}

func TestAnyPrefixSetAlgebra(t *testing.T) {
	a, err := ParsePrefix("192.0.2.0/24")
	require.NoError(t, err)
	b, err := ParsePrefix("2001:db8::/32")
	require.NoError(t, err)

	s := Partition([]AnyPrefix{a})
	u := Partition([]AnyPrefix{a, b})

	assert.True(t, s.IsSubsetOf(u))
	assert.True(t, s.Union(u).Equal(u))
	assert.True(t, u.Difference(s).Contains(b))
	assert.False(t, u.Difference(s).Contains(a))
}
