package ipv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddressRejectsLeadingZero(t *testing.T) {
	_, err := ParseAddress("010.0.0.1")
	assert.Error(t, err)
}

func TestParseAddressRoundTrip(t *testing.T) {
	a, err := ParseAddress("192.0.2.1")
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.1", a.String())
}

func TestCommonLength(t *testing.T) {
	a := AddressFromBytes(10, 0, 0, 1)
	b := AddressFromBytes(10, 0, 0, 2)
	assert.Equal(t, PrefixLength(30), CommonLength(a, b))
	assert.Equal(t, MaxPrefixLength, CommonLength(a, a))
}

func TestRFCAddressClassPredicates(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		is   func(Address) bool
	}{
		{"loopback", AddressFromBytes(127, 0, 0, 1), Address.IsLoopback},
		{"link-local", AddressFromBytes(169, 254, 1, 1), Address.IsLinkLocal},
		{"multicast", AddressFromBytes(224, 0, 0, 1), Address.IsMulticast},
		{"benchmark", AddressFromBytes(198, 18, 0, 1), Address.IsBenchmark},
		{"documentation", AddressFromBytes(192, 0, 2, 1), Address.IsDocumentation},
		{"private", AddressFromBytes(10, 1, 2, 3), Address.IsPrivate},
		{"private", AddressFromBytes(172, 16, 0, 1), Address.IsPrivate},
		{"private", AddressFromBytes(192, 168, 1, 1), Address.IsPrivate},
		{"shared", AddressFromBytes(100, 64, 0, 1), Address.IsShared},
		{"this-net", AddressFromBytes(0, 1, 2, 3), Address.IsThisNet},
		{"unspecified", AddressFromBytes(0, 0, 0, 0), Address.IsUnspecified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.is(tt.addr))
			assert.False(t, tt.addr.IsGlobal())
		})
	}
}

func TestIsGlobalPortControlAnycastException(t *testing.T) {
	assert.False(t, AddressFromBytes(192, 0, 0, 1).IsGlobal())
	assert.True(t, AddressFromBytes(192, 0, 0, 9).IsGlobal())
	assert.True(t, AddressFromBytes(192, 0, 0, 10).IsGlobal())
}

func TestIsGlobalOrdinaryAddress(t *testing.T) {
	assert.True(t, AddressFromBytes(8, 8, 8, 8).IsGlobal())
}
