package prefixset

import (
	"strings"

	"github.com/go-prefixset/prefixset/ipv4"
	"github.com/go-prefixset/prefixset/ipv6"
)

// AnyPrefixSet holds a v4 half and a v6 half side by side. Every operation
// is pointwise: it acts on V4 and V6 independently and never mixes
// families. The zero value is the empty set in both families.
type AnyPrefixSet struct {
	V4 *ipv4.Set
	V6 *ipv6.Set
}

func (s *AnyPrefixSet) v4() *ipv4.Set {
	if s == nil {
		return nil
	}
	return s.V4
}

func (s *AnyPrefixSet) v6() *ipv6.Set {
	if s == nil {
		return nil
	}
	return s.V6
}

// Partition splits prefixes by family and returns the resulting set.
func Partition(prefixes []AnyPrefix) *AnyPrefixSet {
	s := &AnyPrefixSet{}
	for _, p := range prefixes {
		s = s.InsertPrefix(p)
	}
	return s
}

// Partition splits s back into its v4 and v6 halves.
func (s *AnyPrefixSet) Partition() (*ipv4.Set, *ipv6.Set) {
	return s.v4(), s.v6()
}

// IsEmpty reports whether s contains no prefixes in either family.
func (s *AnyPrefixSet) IsEmpty() bool {
	return s.v4().IsEmpty() && s.v6().IsEmpty()
}

// Contains reports whether p is a member of s, dispatching to p's family.
func (s *AnyPrefixSet) Contains(p AnyPrefix) bool {
	switch {
	case p.V4 != nil:
		return s.v4().Contains(*p.V4)
	case p.V6 != nil:
		return s.v6().Contains(*p.V6)
	default:
		return false
	}
}

// InsertPrefix returns the set containing s plus p.
func (s *AnyPrefixSet) InsertPrefix(p AnyPrefix) *AnyPrefixSet {
	switch {
	case p.V4 != nil:
		return &AnyPrefixSet{V4: s.v4().InsertPrefix(*p.V4), V6: s.v6()}
	case p.V6 != nil:
		return &AnyPrefixSet{V4: s.v4(), V6: s.v6().InsertPrefix(*p.V6)}
	default:
		return s
	}
}

// RemovePrefix returns the set containing s minus p.
func (s *AnyPrefixSet) RemovePrefix(p AnyPrefix) *AnyPrefixSet {
	switch {
	case p.V4 != nil:
		return &AnyPrefixSet{V4: s.v4().RemovePrefix(*p.V4), V6: s.v6()}
	case p.V6 != nil:
		return &AnyPrefixSet{V4: s.v4(), V6: s.v6().RemovePrefix(*p.V6)}
	default:
		return s
	}
}

// Union returns the pointwise union of s and other.
func (s *AnyPrefixSet) Union(other *AnyPrefixSet) *AnyPrefixSet {
	return &AnyPrefixSet{V4: s.v4().Union(other.v4()), V6: s.v6().Union(other.v6())}
}

// Intersect returns the pointwise intersection of s and other.
func (s *AnyPrefixSet) Intersect(other *AnyPrefixSet) *AnyPrefixSet {
	return &AnyPrefixSet{V4: s.v4().Intersect(other.v4()), V6: s.v6().Intersect(other.v6())}
}

// Plus is an alias for Union.
func (s *AnyPrefixSet) Plus(other *AnyPrefixSet) *AnyPrefixSet { return s.Union(other) }

// Times is an alias for Intersect.
func (s *AnyPrefixSet) Times(other *AnyPrefixSet) *AnyPrefixSet { return s.Intersect(other) }

// Difference returns the pointwise difference of s and other.
func (s *AnyPrefixSet) Difference(other *AnyPrefixSet) *AnyPrefixSet {
	return &AnyPrefixSet{V4: s.v4().Difference(other.v4()), V6: s.v6().Difference(other.v6())}
}

// SymDifference returns the pointwise symmetric difference of s and other.
func (s *AnyPrefixSet) SymDifference(other *AnyPrefixSet) *AnyPrefixSet {
	return &AnyPrefixSet{V4: s.v4().SymDifference(other.v4()), V6: s.v6().SymDifference(other.v6())}
}

// Complement returns, within each family's own universe, the prefixes not
// in s.
func (s *AnyPrefixSet) Complement() *AnyPrefixSet {
	return &AnyPrefixSet{V4: s.v4().Complement(), V6: s.v6().Complement()}
}

// IsSubsetOf reports whether every prefix in s is also in other, family by
// family.
func (s *AnyPrefixSet) IsSubsetOf(other *AnyPrefixSet) bool {
	return s.v4().IsSubsetOf(other.v4()) && s.v6().IsSubsetOf(other.v6())
}

// Equal reports whether s and other denote the same prefixes in both
// families.
func (s *AnyPrefixSet) Equal(other *AnyPrefixSet) bool {
	return s.v4().Equal(other.v4()) && s.v6().Equal(other.v6())
}

// Ranges returns every range in s, v4 half first.
func (s *AnyPrefixSet) Ranges() []AnyPrefixRange {
	var out []AnyPrefixRange
	for _, r := range s.v4().Ranges() {
		r := r
		out = append(out, AnyPrefixRange{V4: &r})
	}
	for _, r := range s.v6().Ranges() {
		r := r
		out = append(out, AnyPrefixRange{V6: &r})
	}
	return out
}

// String renders the v4 half and the v6 half, space separated.
func (s *AnyPrefixSet) String() string {
	var parts []string
	if v4 := s.v4(); v4 != nil && !v4.IsEmpty() {
		parts = append(parts, v4.String())
	}
	if v6 := s.v6(); v6 != nil && !v6.IsEmpty() {
		parts = append(parts, v6.String())
	}
	return strings.Join(parts, " ")
}
