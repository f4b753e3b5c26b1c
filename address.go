package prefixset

import (
	"net"
	"strings"

	"github.com/go-prefixset/prefixset/ipv4"
	"github.com/go-prefixset/prefixset/ipv6"
)

// AnyAddress holds exactly one of a v4 or v6 address. The zero value
// holds neither and is only useful as a placeholder.
type AnyAddress struct {
	V4 *ipv4.Address
	V6 *ipv6.Address
}

// ParseAddress parses s as whichever family its textual form indicates: a
// bare colon anywhere in the input selects IPv6, per the families'
// disjoint textual grammars.
func ParseAddress(s string) (AnyAddress, error) {
	if strings.ContainsRune(s, ':') {
		a, err := ipv6.ParseAddress(s)
		if err != nil {
			return AnyAddress{}, err
		}
		return AnyAddress{V6: &a}, nil
	}
	a, err := ipv4.ParseAddress(s)
	if err != nil {
		return AnyAddress{}, err
	}
	return AnyAddress{V4: &a}, nil
}

// AddressFromNetIP converts a net.IP into whichever family it carries.
func AddressFromNetIP(ip net.IP) (AnyAddress, error) {
	if v4 := ip.To4(); v4 != nil {
		a, err := ipv4.AddressFromNetIP(v4)
		if err != nil {
			return AnyAddress{}, err
		}
		return AnyAddress{V4: &a}, nil
	}
	a, err := ipv6.AddressFromNetIP(ip)
	if err != nil {
		return AnyAddress{}, err
	}
	return AnyAddress{V6: &a}, nil
}

// IsV4 reports whether a holds an IPv4 address.
func (a AnyAddress) IsV4() bool { return a.V4 != nil }

// IsV6 reports whether a holds an IPv6 address.
func (a AnyAddress) IsV6() bool { return a.V6 != nil }

// String renders whichever address a holds, or "" if neither.
func (a AnyAddress) String() string {
	switch {
	case a.V4 != nil:
		return a.V4.String()
	case a.V6 != nil:
		return a.V6.String()
	default:
		return ""
	}
}

// ToNetIP returns the net.IP form of whichever address a holds.
func (a AnyAddress) ToNetIP() net.IP {
	switch {
	case a.V4 != nil:
		return a.V4.ToNetIP()
	case a.V6 != nil:
		return a.V6.ToNetIP()
	default:
		return nil
	}
}

// SameFamily reports whether a and b hold addresses of the same family.
func (a AnyAddress) SameFamily(b AnyAddress) bool {
	return a.IsV4() == b.IsV4() && a.IsV6() == b.IsV6()
}
