// Package ipv6 implements the IPv6 address family: addresses, prefix
// lengths, masks, prefixes, prefix ranges, and the gluemap trie backing
// PrefixSet.
package ipv6

import (
	"net"
)

// MaxLength is the number of bits in an IPv6 address.
const MaxLength = 128

// Address represents an IPv6 address as an unsigned 128 bit integer,
// built on the family's uint128 primitive.
type Address struct {
	v uint128
}

// Zero, Ones, Localhost and Unspecified are the family's fixed address
// constants.
var (
	Zero        = Address{uint128{0, 0}}
	Ones        = Address{uint128{^uint64(0), ^uint64(0)}}
	Localhost   = Address{uint128{0, 1}}
	Unspecified = Address{uint128{0, 0}}
)

// AddressFromUint64 returns the address from its high/low 64 bit halves.
func AddressFromUint64(high, low uint64) Address {
	return Address{uint128{high, low}}
}

// AddressFromBytes converts a 16 byte slice into an Address.
func AddressFromBytes(s []byte) (Address, error) {
	return fromSlice(s)
}

// AddressFromNetIP converts a net.IP holding an IPv6 address into an
// Address.
func AddressFromNetIP(ip net.IP) (Address, error) {
	return fromSlice(ip.To16())
}

// ParseAddress parses s as an IPv6 address using the standard textual
// grammar (RFC 5952 compressed form accepted on input).
func ParseAddress(s string) (Address, error) {
	netIP := net.ParseIP(s)
	if netIP == nil {
		return Address{}, parseErrorf("invalid IPv6 address %q", s)
	}
	v4 := netIP.To4()
	if v4 != nil && !isV4MappedLiteral(s) {
		return Address{}, parseErrorf("address %q is not IPv6", s)
	}
	return AddressFromNetIP(netIP)
}

// isV4MappedLiteral reports whether s is written in IPv6 notation, i.e.
// contains a colon. net.ParseIP gives a bare IPv4 literal and an
// IPv4-mapped IPv6 literal (e.g. "::ffff:192.0.2.1") the same value; only
// the colon form is a legal IPv6 literal here.
func isV4MappedLiteral(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			return true
		}
	}
	return false
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

// ToNetIP returns a net.IP representation of a, always 16 bytes.
func (a Address) ToNetIP() net.IP {
	return net.IP(a.v.ToBytes())
}

// Equal reports whether a and b are the same address.
func (a Address) Equal(b Address) bool { return a == b }

// LessThan reports whether a sorts strictly before b.
func (a Address) LessThan(b Address) bool { return a.v.Compare(b.v) < 0 }

// String returns the canonical textual representation of a.
func (a Address) String() string {
	return a.ToNetIP().String()
}

// Uint64 returns the address as its high/low 64 bit halves.
func (a Address) Uint64() (high, low uint64) { return a.v.Uint64() }

// And returns the bitwise AND of a with m.
func (a Address) And(m Address) Address { return Address{a.v.And(m.v)} }

// Or returns the bitwise OR of a with m.
func (a Address) Or(m Address) Address { return Address{a.v.Or(m.v)} }

// Xor returns the bitwise XOR of a with b.
func (a Address) Xor(b Address) Address { return Address{a.v.Xor(b.v)} }

// CommonLength returns the number of leading bits shared between a and b.
// Two equal addresses share MaxLength bits.
func CommonLength(a, b Address) PrefixLength {
	return PrefixLength(a.Xor(b).v.LeadingZeros())
}

func fromSlice(s []byte) (Address, error) {
	if len(s) != 16 {
		return Address{}, parseErrorf("address must be 16 bytes, got %d", len(s))
	}
	return Address{Uint128FromBytes(s)}, nil
}

// RFC address-class predicates. These are carried as a supplement to the
// core (see SPEC_FULL.md §5); they classify the address against the
// literal ranges every family must know about.

// IsLoopback reports whether a is ::1.
func (a Address) IsLoopback() bool { return a == Localhost }

// IsLinkLocal reports whether a is in fe80::/10.
func (a Address) IsLinkLocal() bool { return LinkLocalNet.Contains(a) }

// IsMulticast reports whether a is in ff00::/8.
func (a Address) IsMulticast() bool { return MulticastNet.Contains(a) }

// IsUniqueLocal reports whether a is in fc00::/7 (RFC 4193).
func (a Address) IsUniqueLocal() bool { return UniqueLocalNet.Contains(a) }

// IsDocumentation reports whether a is in 2001:db8::/32 (RFC 3849).
func (a Address) IsDocumentation() bool { return DocumentationNet.Contains(a) }

// IsIPv4Mapped reports whether a is in ::ffff:0:0/96.
func (a Address) IsIPv4Mapped() bool { return IPv4MappedNet.Contains(a) }

// IsUnspecified reports whether a is the all-zeros address.
func (a Address) IsUnspecified() bool { return a == Unspecified }

// IsGlobal reports whether a is globally routable: none of the
// special-use ranges above apply, and a falls within the assigned global
// unicast space, 2000::/3.
func (a Address) IsGlobal() bool {
	switch {
	case a.IsUnspecified(),
		a.IsLoopback(),
		a.IsLinkLocal(),
		a.IsMulticast(),
		a.IsUniqueLocal(),
		a.IsDocumentation(),
		a.IsIPv4Mapped():
		return false
	default:
		return GlobalUnicastNet.Contains(a)
	}
}
