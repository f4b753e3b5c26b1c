package ipv4

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
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
	a := FromRanges(mustRange(t, "2.0.0.0/8,8,16"))
	b := FromRanges(mustRange(t, "3.0.0.0/8,8,16"))

	got := a.Union(b).Ranges()

	require.Len(t, got, 1)
	assert.Equal(t, mustRange(t, "2.0.0.0/7,8,16"), got[0])
}

func TestIntersectDisjointLengthRanges(t *testing.T) {
	a := FromRanges(mustRange(t, "1.0.0.0/8,8,11"))
	b := FromRanges(mustRange(t, "1.0.0.0/8,12,15"))

	assert.True(t, a.Intersect(b).IsEmpty())
}

func TestSymDifferenceDeaggregates(t *testing.T) {
	a := FromRanges(mustRange(t, "1.0.0.0/8,12,16"))
	b := FromRanges(mustRange(t, "1.0.0.0/12,12,16"))

	got := a.SymDifference(b).Ranges()

	want := []PrefixRange{
		mustRange(t, "1.16.0.0/12,12,16"),
		mustRange(t, "1.32.0.0/11,12,16"),
		mustRange(t, "1.64.0.0/10,12,16"),
		mustRange(t, "1.128.0.0/9,12,16"),
	}
	sortRanges(want)
	sortRanges(got)
	if diff := cmp.Diff(want, got, cmp.Exporter(func(reflect.Type) bool { return true })); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}
}

func sortRanges(rs []PrefixRange) {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j].String() < rs[j-1].String(); j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}

func TestComplementOfHostPrefix(t *testing.T) {
	s := FromPrefixes(mustPrefix(t, "1.0.0.0/8"))
	comp := s.Complement()

	assert.False(t, comp.Contains(mustPrefix(t, "1.0.0.0/8")))
	assert.True(t, comp.Contains(mustPrefix(t, "2.0.0.0/8")))
	assert.True(t, comp.Contains(mustPrefix(t, "0.0.0.0/7")))
	assert.True(t, comp.Contains(mustPrefix(t, "128.0.0.0/1")))

	// s and its complement partition the universe.
	assert.True(t, s.Union(comp).Equal(One()))
	assert.True(t, s.Intersect(comp).IsEmpty())
}

func TestInsertionMembership(t *testing.T) {
	p := mustPrefix(t, "10.0.0.0/8")
	s := Zero().InsertPrefix(p)
	assert.True(t, s.Contains(p))

	s = s.RemovePrefix(p)
	assert.False(t, s.Contains(p))
}

func TestInsertFromIsFoldOfInsert(t *testing.T) {
	items := []PrefixRange{
		RangeFromPrefix(mustPrefix(t, "10.0.0.0/8")),
		RangeFromPrefix(mustPrefix(t, "20.0.0.0/8")),
		RangeFromPrefix(mustPrefix(t, "30.0.0.0/8")),
	}

	folded := Zero()
	for _, it := range items {
		folded = folded.Insert(it)
	}

	assert.True(t, Zero().InsertFrom(items).Equal(folded))
}

func TestAlgebraLaws(t *testing.T) {
	s := FromPrefixes(mustPrefix(t, "10.0.0.0/8"), mustPrefix(t, "172.16.0.0/12"))
	tt := FromPrefixes(mustPrefix(t, "172.16.0.0/12"), mustPrefix(t, "192.168.0.0/16"))
	u := One()

	assert.True(t, s.Union(Zero()).Equal(s))
	assert.True(t, s.Intersect(u).Equal(s))
	assert.True(t, s.Union(s).Equal(s))
	assert.True(t, s.Intersect(s).Equal(s))
	assert.True(t, s.Union(tt).Equal(tt.Union(s)))
	assert.True(t, s.Intersect(tt).Equal(tt.Intersect(s)))
	assert.True(t, s.Complement().Complement().Equal(s))
	assert.True(t, s.Union(tt).Complement().Equal(s.Complement().Intersect(tt.Complement())))
	assert.True(t, s.Difference(tt).Equal(s.Intersect(tt.Complement())))
}

func TestRoundTripPrefixesAfterAggregation(t *testing.T) {
	ps := []Prefix{
		mustPrefix(t, "2.0.0.0/8"),
		mustPrefix(t, "3.0.0.0/8"),
	}
	s := FromPrefixes(ps...)

	got := s.Prefixes()
	require.Len(t, got, 2)
	assert.Equal(t, ps, got)
}

func TestLenAnalytic(t *testing.T) {
	s := FromRanges(mustRange(t, "1.0.0.0/8,8,10"))
	// lengths 8, 9, 10 below 1.0.0.0/8: 1 + 2 + 4 = 7 prefixes
	assert.Equal(t, uint64(7), s.Len())
	assert.Equal(t, uint64(0), Zero().Len())
}
