package prefixset

import (
	"net"
	"strings"

	"github.com/go-prefixset/prefixset/ipv4"
	"github.com/go-prefixset/prefixset/ipv6"
)

// AnyPrefix holds exactly one of a v4 or v6 prefix. The zero value holds
// neither and is only useful as a placeholder.
type AnyPrefix struct {
	V4 *ipv4.Prefix
	V6 *ipv6.Prefix
}

// ParsePrefix parses s as whichever family its textual form indicates.
func ParsePrefix(s string) (AnyPrefix, error) {
	if strings.ContainsRune(s, ':') {
		p, err := ipv6.ParsePrefix(s)
		if err != nil {
			return AnyPrefix{}, err
		}
		return AnyPrefix{V6: &p}, nil
	}
	p, err := ipv4.ParsePrefix(s)
	if err != nil {
		return AnyPrefix{}, err
	}
	return AnyPrefix{V4: &p}, nil
}

// PrefixFromNetIPNet converts a *net.IPNet into whichever family it carries.
func PrefixFromNetIPNet(n *net.IPNet) (AnyPrefix, error) {
	return ParsePrefix(n.String())
}

// IsV4 reports whether p holds an IPv4 prefix.
func (p AnyPrefix) IsV4() bool { return p.V4 != nil }

// IsV6 reports whether p holds an IPv6 prefix.
func (p AnyPrefix) IsV6() bool { return p.V6 != nil }

// String renders whichever prefix p holds, or "" if neither.
func (p AnyPrefix) String() string {
	switch {
	case p.V4 != nil:
		return p.V4.String()
	case p.V6 != nil:
		return p.V6.String()
	default:
		return ""
	}
}

// Address returns the network address of whichever prefix p holds.
func (p AnyPrefix) Address() AnyAddress {
	switch {
	case p.V4 != nil:
		a := p.V4.Network()
		return AnyAddress{V4: &a}
	case p.V6 != nil:
		a := p.V6.Network()
		return AnyAddress{V6: &a}
	default:
		return AnyAddress{}
	}
}

// Contains reports whether addr falls within p. It returns an AfiMismatch
// error if p and addr belong to different address families.
func (p AnyPrefix) Contains(addr AnyAddress) (bool, error) {
	switch {
	case p.V4 != nil && addr.V4 != nil:
		return p.V4.Contains(*addr.V4), nil
	case p.V6 != nil && addr.V6 != nil:
		return p.V6.Contains(*addr.V6), nil
	default:
		return false, afiMismatch("prefix %s and address %s are from different address families", p, addr)
	}
}

// ContainsPrefix reports whether other falls within p. It returns an
// AfiMismatch error if p and other belong to different address families.
func (p AnyPrefix) ContainsPrefix(other AnyPrefix) (bool, error) {
	switch {
	case p.V4 != nil && other.V4 != nil:
		return p.V4.ContainsPrefix(*other.V4), nil
	case p.V6 != nil && other.V6 != nil:
		return p.V6.ContainsPrefix(*other.V6), nil
	default:
		return false, afiMismatch("prefix %s and prefix %s are from different address families", p, other)
	}
}
