package prefixset

import (
	"net"

	"github.com/go-prefixset/prefixset/internal/pserr"
	"github.com/go-prefixset/prefixset/ipv4"
	"github.com/go-prefixset/prefixset/ipv6"
)

// AnyNetmask holds exactly one of a v4 or v6 netmask.
type AnyNetmask struct {
	V4 *ipv4.Netmask
	V6 *ipv6.Netmask
}

// NetmaskFromNetIPMask converts a net.IPMask into whichever family its
// byte length indicates.
func NetmaskFromNetIPMask(mask net.IPMask) (AnyNetmask, error) {
	ones, bits := mask.Size()
	if ones < 0 || bits < 0 {
		return AnyNetmask{}, parseErrorf("invalid net.IPMask")
	}
	switch bits {
	case 8 * net.IPv6len:
		l, err := ipv6.NewPrefixLength(ones)
		if err != nil {
			return AnyNetmask{}, err
		}
		m := ipv6.NetmaskFromLength(l)
		return AnyNetmask{V6: &m}, nil
	case 8 * net.IPv4len:
		l, err := ipv4.NewPrefixLength(ones)
		if err != nil {
			return AnyNetmask{}, err
		}
		m := ipv4.NetmaskFromLength(l)
		return AnyNetmask{V4: &m}, nil
	default:
		return AnyNetmask{}, parseErrorf("invalid net.IPMask size: %d bits", bits)
	}
}

// IsV4 reports whether m holds an IPv4 netmask.
func (m AnyNetmask) IsV4() bool { return m.V4 != nil }

// IsV6 reports whether m holds an IPv6 netmask.
func (m AnyNetmask) IsV6() bool { return m.V6 != nil }

// String renders whichever netmask m holds, or "" if neither.
func (m AnyNetmask) String() string {
	switch {
	case m.V4 != nil:
		return m.V4.String()
	case m.V6 != nil:
		return m.V6.String()
	default:
		return ""
	}
}

// ToNetIPMask returns the net.IPMask representation of whichever netmask m
// holds.
func (m AnyNetmask) ToNetIPMask() net.IPMask {
	switch {
	case m.V4 != nil:
		return m.V4.ToNetIPMask()
	case m.V6 != nil:
		return m.V6.ToNetIPMask()
	default:
		return nil
	}
}

func parseErrorf(format string, args ...interface{}) *Error {
	return pserr.New(ParseError, format, args...)
}
