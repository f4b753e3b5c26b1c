package ipv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrefixMasksHostBits(t *testing.T) {
	addr := AddressFromBytes(10, 1, 2, 3)
	p := NewPrefix(addr, 8)
	assert.Equal(t, AddressFromBytes(10, 0, 0, 0), p.Network())
}

func TestParsePrefixRoundTrip(t *testing.T) {
	p, err := ParsePrefix("192.0.2.0/24")
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.0/24", p.String())
}

func TestParsePrefixRejectsMalformed(t *testing.T) {
	tests := []string{
		"192.0.2.0",
		"192.0.2.0/33",
		"192.0.2.0/-1",
		"192.0.2.0/01",
		"192.0.2.0/",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			_, err := ParsePrefix(s)
			assert.Error(t, err)
		})
	}
}

func TestPrefixCompare(t *testing.T) {
	a := NewPrefix(AddressFromBytes(10, 0, 0, 0), 8)
	b := NewPrefix(AddressFromBytes(10, 1, 0, 0), 16)
	c := NewPrefix(AddressFromBytes(11, 0, 0, 0), 8)

	assert.Equal(t, Equal, a.Compare(a).Kind)
	assert.Equal(t, Superprefix, a.Compare(b).Kind)
	assert.Equal(t, Subprefix, b.Compare(a).Kind)
	assert.Equal(t, Divergent, a.Compare(c).Kind)
}

func TestSubprefixIteratorCount(t *testing.T) {
	p := NewPrefix(AddressFromBytes(192, 0, 2, 0), 24)
	it := p.Subprefixes(26)
	got := it.Rest()

	require.Len(t, got, 4)
	wantStarts := []byte{0, 64, 128, 192}
	for i, want := range wantStarts {
		assert.Equal(t, AddressFromBytes(192, 0, 2, want), got[i].Network())
		assert.Equal(t, PrefixLength(26), got[i].Length())
	}
}

func TestSubprefixesAtOwnLengthIsSingleton(t *testing.T) {
	p := NewPrefix(AddressFromBytes(10, 0, 0, 0), 8)
	it := p.Subprefixes(8)
	got := it.Rest()
	require.Len(t, got, 1)
	assert.Equal(t, p, got[0])
}

func TestContainsPrefix(t *testing.T) {
	supernet := NewPrefix(AddressFromBytes(10, 0, 0, 0), 8)
	subnet := NewPrefix(AddressFromBytes(10, 1, 0, 0), 16)
	other := NewPrefix(AddressFromBytes(11, 0, 0, 0), 8)

	assert.True(t, supernet.ContainsPrefix(subnet))
	assert.True(t, supernet.ContainsPrefix(supernet))
	assert.False(t, subnet.ContainsPrefix(supernet))
	assert.False(t, supernet.ContainsPrefix(other))
}

func TestIsSibling(t *testing.T) {
	a := NewPrefix(AddressFromBytes(10, 0, 0, 0), 9)
	b := NewPrefix(AddressFromBytes(10, 128, 0, 0), 9)
	c := NewPrefix(AddressFromBytes(11, 0, 0, 0), 9)

	assert.True(t, a.IsSibling(b))
	assert.False(t, a.IsSibling(c))
}
