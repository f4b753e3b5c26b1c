package ipv6

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddressRoundTrip(t *testing.T) {
	a, err := ParseAddress("2001:db8::1")
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::1", a.String())
}

func TestParseAddressRejectsIPv4(t *testing.T) {
	_, err := ParseAddress("192.0.2.1")
	assert.Error(t, err)
}

func TestCommonLength(t *testing.T) {
	a, _ := ParseAddress("2001:db8::1")
	b, _ := ParseAddress("2001:db8::2")
	assert.Equal(t, PrefixLength(126), CommonLength(a, b))
	assert.Equal(t, MaxPrefixLength, CommonLength(a, a))
}

func TestRFCAddressClassPredicates(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		is   func(Address) bool
	}{
		{"loopback", Localhost, Address.IsLoopback},
		{"link-local", AddressFromUint64(0xfe80000000000000, 1), Address.IsLinkLocal},
		{"multicast", AddressFromUint64(0xff00000000000000, 0), Address.IsMulticast},
		{"unique-local", AddressFromUint64(0xfc00000000000001, 0), Address.IsUniqueLocal},
		{"documentation", AddressFromUint64(0x20010db800000000, 1), Address.IsDocumentation},
		{"unspecified", Zero, Address.IsUnspecified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.is(tt.addr))
			assert.False(t, tt.addr.IsGlobal())
		})
	}
}

func TestIsGlobalOrdinaryAddress(t *testing.T) {
	addr, _ := ParseAddress("2001:db8::1")
	assert.False(t, addr.IsGlobal()) // 2001:db8::/32 is documentation space

	addr, _ = ParseAddress("2606:4700:4700::1111")
	assert.True(t, addr.IsGlobal())
}
