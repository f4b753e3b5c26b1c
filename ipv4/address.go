// Package ipv4 implements the IPv4 address family: addresses, prefix
// lengths, masks, prefixes, prefix ranges, and the gluemap trie backing
// PrefixSet.
package ipv4

import (
	"fmt"
	"math/bits"
	"net"
)

// MaxLength is the number of bits in an IPv4 address.
const MaxLength = 32

// Address represents an IPv4 address as an unsigned 32 bit integer.
type Address struct {
	ui uint32
}

// Zero, Ones, Localhost and Unspecified are the family's fixed address
// constants.
var (
	Zero        = Address{0}
	Ones        = Address{^uint32(0)}
	Localhost   = Address{0x7f000001}
	Unspecified = Address{0}
)

// AddressFromUint32 returns the IPv4 address from its 32 bit unsigned
// representation.
func AddressFromUint32(ui uint32) Address {
	return Address{ui}
}

// AddressFromBytes returns the IPv4 address of the `a.b.c.d`.
func AddressFromBytes(a, b, c, d byte) Address {
	return Address{
		ui: uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d),
	}
}

// AddressFromNetIP converts a net.IP holding an IPv4 address into an
// Address.
func AddressFromNetIP(ip net.IP) (Address, error) {
	return fromSlice(ip.To4())
}

// ParseAddress parses `s` as a dotted-quad IPv4 address. Leading zeros on
// an octet are rejected to avoid octal ambiguity, matching the textual
// grammar this family commits to.
func ParseAddress(s string) (Address, error) {
	if err := checkDottedQuadSyntax(s); err != nil {
		return Address{}, err
	}
	netIP := net.ParseIP(s)
	if netIP == nil {
		return Address{}, parseErrorf("invalid IPv4 address %q", s)
	}
	netIPv4 := netIP.To4()
	if netIPv4 == nil {
		return Address{}, parseErrorf("address %q is not IPv4", s)
	}
	return AddressFromNetIP(netIPv4)
}

// checkDottedQuadSyntax rejects octets with leading zeros (e.g. "010"),
// which net.ParseIP accepts but the stable textual grammar does not.
func checkDottedQuadSyntax(s string) error {
	octet := 0
	digits := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '.' {
			if digits == 0 {
				return parseErrorf("invalid IPv4 address %q", s)
			}
			if digits > 1 && octet == 0 {
				return parseErrorf("invalid IPv4 address %q: leading zero", s)
			}
			if digits > 1 && s[i-digits] == '0' {
				return parseErrorf("invalid IPv4 address %q: leading zero", s)
			}
			octet = 0
			digits = 0
			continue
		}
		c := s[i]
		if c < '0' || c > '9' {
			return parseErrorf("invalid IPv4 address %q", s)
		}
		octet = octet*10 + int(c-'0')
		digits++
		if digits > 3 {
			return parseErrorf("invalid IPv4 address %q", s)
		}
	}
	return nil
}

// MinAddress returns the address, a or b, which sorts first.
func MinAddress(a, b Address) Address {
	if a.LessThan(b) {
		return a
	}
	return b
}

// MaxAddress returns the address, a or b, which sorts last.
func MaxAddress(a, b Address) Address {
	if a.LessThan(b) {
		return b
	}
	return a
}

// ToNetIP returns a net.IP representation of the address, always 4 bytes.
func (a Address) ToNetIP() net.IP {
	x, y, z, w := a.toBytes()
	return net.IPv4(x, y, z, w)
}

// Equal reports whether a and b are the same address.
func (a Address) Equal(b Address) bool {
	return a == b
}

// LessThan reports whether a sorts strictly before b.
func (a Address) LessThan(b Address) bool {
	return a.ui < b.ui
}

// String returns the dotted-quad representation of a.
func (a Address) String() string {
	x, y, z, w := a.toBytes()
	return fmt.Sprintf("%d.%d.%d.%d", x, y, z, w)
}

// Uint32 returns the address as a uint32.
func (a Address) Uint32() uint32 {
	return a.ui
}

// And returns the bitwise AND of a with m.
func (a Address) And(m Address) Address { return Address{a.ui & m.ui} }

// Or returns the bitwise OR of a with m.
func (a Address) Or(m Address) Address { return Address{a.ui | m.ui} }

// Xor returns the bitwise XOR of a with b.
func (a Address) Xor(b Address) Address { return Address{a.ui ^ b.ui} }

// CommonLength returns the number of leading bits shared between a and b,
// i.e. leading_zeros(a^b). Two equal addresses share MaxLength bits.
func CommonLength(a, b Address) PrefixLength {
	return PrefixLength(bits.LeadingZeros32(a.Xor(b).ui))
}

func (a Address) toBytes() (x, y, z, w byte) {
	x = byte(a.ui >> 24)
	y = byte(a.ui >> 16)
	z = byte(a.ui >> 8)
	w = byte(a.ui)
	return
}

func fromSlice(s []byte) (Address, error) {
	if len(s) != 4 {
		return Address{}, parseErrorf("address must be 4 bytes, got %d", len(s))
	}
	return AddressFromBytes(s[0], s[1], s[2], s[3]), nil
}

// RFC address-class predicates. These are carried as a supplement to the
// core (see SPEC_FULL.md §5); they classify the address against the
// literal ranges every family must know about.

// IsLoopback reports whether a is in 127.0.0.0/8.
func (a Address) IsLoopback() bool { return LoopbackNet.Contains(a) }

// IsLinkLocal reports whether a is in 169.254.0.0/16.
func (a Address) IsLinkLocal() bool { return LinkLocalNet.Contains(a) }

// IsMulticast reports whether a is in 224.0.0.0/4.
func (a Address) IsMulticast() bool { return MulticastNet.Contains(a) }

// IsBenchmark reports whether a is in 198.18.0.0/15.
func (a Address) IsBenchmark() bool { return BenchmarkNet.Contains(a) }

// IsDocumentation reports whether a falls in one of the three
// documentation ranges (RFC 5737).
func (a Address) IsDocumentation() bool {
	for _, net := range DocumentationNets {
		if net.Contains(a) {
			return true
		}
	}
	return false
}

// IsPrivate reports whether a falls in one of the three RFC 1918 private
// ranges.
func (a Address) IsPrivate() bool {
	for _, net := range PrivateNets {
		if net.Contains(a) {
			return true
		}
	}
	return false
}

// IsShared reports whether a is in the shared address space, 100.64.0.0/10
// (RFC 6598), used by carrier-grade NAT.
func (a Address) IsShared() bool { return SharedNet.Contains(a) }

// IsThisNet reports whether a is in 0.0.0.0/8.
func (a Address) IsThisNet() bool { return ThisNet.Contains(a) }

// IsUnspecified reports whether a is the all-zeros address.
func (a Address) IsUnspecified() bool { return a == Unspecified }

// IsGlobal reports whether a is globally routable: none of the special-use
// ranges above apply, with the documented exception of 192.0.0.9 and
// 192.0.0.10 inside the IETF protocol-assignment block 192.0.0.0/24, which
// are treated as global (port-control anycast) rather than following the
// rest of that block. Callers should re-confirm current IANA assignments;
// this mirrors an explicitly open question in the governing design.
func (a Address) IsGlobal() bool {
	if a == portControlAnycast1 || a == portControlAnycast2 {
		return true
	}
	if ProtocolAssignmentsNet.Contains(a) {
		return false
	}
	switch {
	case a.IsUnspecified(),
		a.IsLoopback(),
		a.IsLinkLocal(),
		a.IsMulticast(),
		a.IsBenchmark(),
		a.IsDocumentation(),
		a.IsPrivate(),
		a.IsShared(),
		a.IsThisNet(),
		Ones == a:
		return false
	default:
		return true
	}
}

var (
	portControlAnycast1 = AddressFromBytes(192, 0, 0, 9)
	portControlAnycast2 = AddressFromBytes(192, 0, 0, 10)
)
