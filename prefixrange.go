package prefixset

import (
	"strings"

	"github.com/go-prefixset/prefixset/ipv4"
	"github.com/go-prefixset/prefixset/ipv6"
)

// AnyPrefixRange holds exactly one of a v4 or v6 prefix range.
type AnyPrefixRange struct {
	V4 *ipv4.PrefixRange
	V6 *ipv6.PrefixRange
}

// ParsePrefixRange parses s as whichever family its textual form indicates.
func ParsePrefixRange(s string) (AnyPrefixRange, error) {
	if strings.ContainsRune(s, ':') {
		r, err := ipv6.ParsePrefixRange(s)
		if err != nil {
			return AnyPrefixRange{}, err
		}
		return AnyPrefixRange{V6: &r}, nil
	}
	r, err := ipv4.ParsePrefixRange(s)
	if err != nil {
		return AnyPrefixRange{}, err
	}
	return AnyPrefixRange{V4: &r}, nil
}

// RangeFromPrefix lifts p to the singleton range over its own length.
func RangeFromPrefix(p AnyPrefix) AnyPrefixRange {
	switch {
	case p.V4 != nil:
		r := ipv4.RangeFromPrefix(*p.V4)
		return AnyPrefixRange{V4: &r}
	case p.V6 != nil:
		r := ipv6.RangeFromPrefix(*p.V6)
		return AnyPrefixRange{V6: &r}
	default:
		return AnyPrefixRange{}
	}
}

// IsV4 reports whether r holds an IPv4 range.
func (r AnyPrefixRange) IsV4() bool { return r.V4 != nil }

// IsV6 reports whether r holds an IPv6 range.
func (r AnyPrefixRange) IsV6() bool { return r.V6 != nil }

// String renders whichever range r holds, or "" if neither.
func (r AnyPrefixRange) String() string {
	switch {
	case r.V4 != nil:
		return r.V4.String()
	case r.V6 != nil:
		return r.V6.String()
	default:
		return ""
	}
}

// Prefix returns the range's base prefix.
func (r AnyPrefixRange) Prefix() AnyPrefix {
	switch {
	case r.V4 != nil:
		p := r.V4.Prefix()
		return AnyPrefix{V4: &p}
	case r.V6 != nil:
		p := r.V6.Prefix()
		return AnyPrefix{V6: &p}
	default:
		return AnyPrefix{}
	}
}

// Iterate returns every prefix r denotes.
func (r AnyPrefixRange) Iterate() []AnyPrefix {
	switch {
	case r.V4 != nil:
		ps := r.V4.Iterate()
		out := make([]AnyPrefix, len(ps))
		for i, p := range ps {
			p := p
			out[i] = AnyPrefix{V4: &p}
		}
		return out
	case r.V6 != nil:
		ps := r.V6.Iterate()
		out := make([]AnyPrefix, len(ps))
		for i, p := range ps {
			p := p
			out[i] = AnyPrefix{V6: &p}
		}
		return out
	default:
		return nil
	}
}
