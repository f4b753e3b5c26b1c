package ipv6

import "net"

// Netmask, Hostmask and Bitmask are the three phantom-typed mask flavours
// sharing the family's address primitive. Netmask and Hostmask are only
// ever constructed from a PrefixLength; Bitmask is the general type closed
// under the bitwise operators, used internally by the gluemap machinery.
type (
	Netmask  Address
	Hostmask Address
	Bitmask  Address
)

// NetmaskFromLength returns ONES << (MaxLength - l). uint128's shift
// already saturates to zero past its width, so no edge special-casing is
// needed here the way the 32 bit family requires.
func NetmaskFromLength(l PrefixLength) Netmask {
	return Netmask{v: Ones.v.LeftShift(MaxLength - l.Int())}
}

// HostmaskFromLength returns ONES >> l.
func HostmaskFromLength(l PrefixLength) Hostmask {
	return Hostmask{v: Ones.v.RightShift(l.Int())}
}

// Length returns the number of leading 1 bits in m.
func (m Netmask) Length() PrefixLength {
	return PrefixLength(Address(m).v.Complement().LeadingZeros())
}

// Length returns the number of leading 1 bits in the equivalent netmask,
// i.e. MaxLength minus the number of trailing 1 bits in m.
func (m Hostmask) Length() PrefixLength {
	return MaxPrefixLength - PrefixLength(Address(m).v.Complement().TrailingZeros())
}

// Address views the mask as a plain Address, for use in bitwise
// combination with an Address.
func (m Netmask) Address() Address  { return Address(m) }
func (m Hostmask) Address() Address { return Address(m) }
func (m Bitmask) Address() Address  { return Address(m) }

// ToNetIPMask returns the net.IPMask representation of m.
func (m Netmask) ToNetIPMask() net.IPMask {
	return net.CIDRMask(m.Length().Int(), MaxLength)
}

func (m Netmask) String() string  { return Address(m).String() }
func (m Hostmask) String() string { return Address(m).String() }
func (m Bitmask) String() string  { return Address(m).String() }

// And, Or, Xor and Not give Bitmask closure under the boolean operators.
func (m Bitmask) And(n Bitmask) Bitmask { return Bitmask{v: m.v.And(n.v)} }
func (m Bitmask) Or(n Bitmask) Bitmask  { return Bitmask{v: m.v.Or(n.v)} }
func (m Bitmask) Xor(n Bitmask) Bitmask { return Bitmask{v: m.v.Xor(n.v)} }
func (m Bitmask) Not() Bitmask          { return Bitmask{v: m.v.Complement()} }
