package ipv6

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, s string) PrefixRange {
	t.Helper()
	r, err := ParsePrefixRange(s)
	require.NoError(t, err)
	return r
}

func mustPrefix(t *testing.T, s string) Prefix {
	t.Helper()
	p, err := ParsePrefix(s)
	require.NoError(t, err)
	return p
}

func TestUnionAggregatesSiblings(t *testing.T) {
	a := FromRanges(mustRange(t, "2001:db8::/33,33,40"))
	b := FromRanges(mustRange(t, "2001:db8:8000::/33,33,40"))

	got := a.Union(b).Ranges()

	require.Len(t, got, 1)
	assert.Equal(t, mustRange(t, "2001:db8::/32,33,40"), got[0])
}

func TestIntersectDisjointLengthRanges(t *testing.T) {
	a := FromRanges(mustRange(t, "2001:db8::/32,32,35"))
	b := FromRanges(mustRange(t, "2001:db8::/32,36,39"))

	assert.True(t, a.Intersect(b).IsEmpty())
}

func TestInsertionMembership(t *testing.T) {
	p := mustPrefix(t, "2001:db8::/32")
	s := Zero().InsertPrefix(p)
	assert.True(t, s.Contains(p))

	s = s.RemovePrefix(p)
	assert.False(t, s.Contains(p))
}

func TestAlgebraLaws(t *testing.T) {
	s := FromPrefixes(mustPrefix(t, "2001:db8::/32"), mustPrefix(t, "fc00::/7"))
	u := FromPrefixes(mustPrefix(t, "fc00::/7"), mustPrefix(t, "2001::/16"))

	assert.True(t, s.Union(Zero()).Equal(s))
	assert.True(t, s.Union(s).Equal(s))
	assert.True(t, s.Intersect(s).Equal(s))
	assert.True(t, s.Union(u).Equal(u.Union(s)))
	assert.True(t, s.Complement().Complement().Equal(s))
	assert.True(t, s.Union(u).Complement().Equal(s.Complement().Intersect(u.Complement())))
}

func TestSubprefixIteratorCount(t *testing.T) {
	p := mustPrefix(t, "2001:db8::/32")
	it := p.Subprefixes(34)
	got := it.Rest()
	require.Len(t, got, 4)
	assert.Equal(t, PrefixLength(34), got[0].Length())
}

func TestLenSaturatesForUniverse(t *testing.T) {
	assert.Equal(t, maxUint128, One().Len())
	assert.Equal(t, uint128{0, 0}, Zero().Len())
}
