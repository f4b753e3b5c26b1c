package ipv4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetmaskHostmaskComplementary(t *testing.T) {
	for l := MinLength; ; {
		net := NetmaskFromLength(l)
		host := HostmaskFromLength(l)

		assert.Equal(t, Ones, net.Address().Or(host.Address()), "length %s", l)
		assert.Equal(t, Zero, net.Address().And(host.Address()), "length %s", l)

		next, err := l.Increment()
		if err != nil {
			break
		}
		l = next
	}
}

func TestNetmaskFromLengthEdges(t *testing.T) {
	assert.Equal(t, Zero, NetmaskFromLength(MinLength).Address())
	assert.Equal(t, Ones, NetmaskFromLength(MaxPrefixLength).Address())
	assert.Equal(t, Ones, HostmaskFromLength(MinLength).Address())
	assert.Equal(t, Zero, HostmaskFromLength(MaxPrefixLength).Address())
}

func TestBitmaskBooleanClosure(t *testing.T) {
	a := Bitmask(AddressFromBytes(0xff, 0x00, 0xff, 0x00))
	b := Bitmask(AddressFromBytes(0x0f, 0x0f, 0x0f, 0x0f))

	assert.Equal(t, Bitmask(AddressFromBytes(0xf0, 0x00, 0xf0, 0x00)), a.And(b.Not()))
	assert.Equal(t, Bitmask(AddressFromBytes(0xff, 0x0f, 0xff, 0x0f)), a.Or(b))
}
