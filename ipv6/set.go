package ipv6

import "strings"

// Set is an immutable set of IPv6 prefixes, represented internally as a
// gluemap trie. The zero value is the empty set.
type Set struct {
	trie *node
}

// Zero returns the empty set.
func Zero() *Set { return &Set{} }

// One returns the universe: every prefix of every length.
func One() *Set { return &Set{trie: universeNode()} }

// FromPrefixes returns the set containing exactly the given prefixes.
// Aggregation may merge sibling prefixes into one range on their common
// supernet, but that supernet itself does not become a member.
func FromPrefixes(ps ...Prefix) *Set {
	s := Zero()
	for _, p := range ps {
		s = s.InsertPrefix(p)
	}
	return s
}

// FromRanges returns the set that is the union of the given prefix ranges.
func FromRanges(rs ...PrefixRange) *Set {
	s := Zero()
	for _, r := range rs {
		s = s.Insert(r)
	}
	return s
}

// IsEmpty reports whether s contains no prefixes.
func (s *Set) IsEmpty() bool { return s == nil || s.trie == nil }

// maxUint128 saturates Len when the true count would need 129 bits, which
// only the full universe (and ranges close to it) can reach.
var maxUint128 = uint128{^uint64(0), ^uint64(0)}

// Len returns the number of individual prefixes s denotes, as a uint128
// since a single broad range can denote far more than a uint64 can hold.
// It saturates at the largest representable uint128 rather than wrapping
// when the true count needs a 129th bit (reachable only by ranges at or
// near the full /0..128 universe).
func (s *Set) Len() uint128 {
	total := uint128{0, 0}
	for _, r := range s.Ranges() {
		count, overflow := rangeCount(r)
		if overflow {
			return maxUint128
		}
		next := total.AddUint128(count)
		if next.Compare(total) < 0 {
			return maxUint128
		}
		total = next
	}
	return total
}

// rangeCount returns 2^(hi-plen+1) - 2^(lo-plen). When hi-plen+1 is 128
// the top term wraps to zero and the subtraction still yields the exact,
// representable count; only hi-plen+1 == 129 overflows.
func rangeCount(r PrefixRange) (count uint128, overflow bool) {
	plen := r.Prefix().Length().Int()
	lo := r.Lower().Int()
	hi := r.Upper().Int()
	if hi-plen+1 > MaxLength {
		return uint128{}, true
	}
	top := uint128{0, 1}.LeftShift(hi - plen + 1)
	bottom := uint128{0, 1}.LeftShift(lo - plen)
	return top.SubtractUint128(bottom), false
}

// Contains reports whether p is a member of s.
func (s *Set) Contains(p Prefix) bool {
	return contains(s.root(), p)
}

// Ranges returns the minimal set of prefix ranges describing s, in
// pre-order: shorter (less specific) entries before the longer entries
// nested beneath them.
func (s *Set) Ranges() []PrefixRange {
	return ranges(s.root())
}

// Prefixes expands Ranges, in their order, into every individual member
// prefix; within each range the prefixes come ascending by length and then
// by address within a length. The result as a whole is not sorted. This
// can be extremely large for broad ranges; prefer Ranges and Len where
// possible.
func (s *Set) Prefixes() []Prefix {
	var out []Prefix
	for _, r := range s.Ranges() {
		out = append(out, r.Iterate()...)
	}
	return out
}

// Insert returns the set containing s plus every prefix denoted by item.
func (s *Set) Insert(item PrefixRange) *Set {
	leaf := nodeFromRange(item.Prefix(), item.Lower(), item.Upper())
	return &Set{trie: unionNodes(s.root(), leaf)}
}

// InsertPrefix returns the set containing s plus p.
func (s *Set) InsertPrefix(p Prefix) *Set {
	return s.Insert(RangeFromPrefix(p))
}

// InsertFrom folds Insert over items in order.
func (s *Set) InsertFrom(items []PrefixRange) *Set {
	out := s
	for _, item := range items {
		out = out.Insert(item)
	}
	return out
}

// Remove returns the set containing s minus every prefix denoted by item.
func (s *Set) Remove(item PrefixRange) *Set {
	leaf := nodeFromRange(item.Prefix(), item.Lower(), item.Upper())
	return &Set{trie: differenceNodes(s.root(), leaf)}
}

// RemovePrefix returns the set containing s minus p.
func (s *Set) RemovePrefix(p Prefix) *Set {
	return s.Remove(RangeFromPrefix(p))
}

// RemoveFrom folds Remove over items in order.
func (s *Set) RemoveFrom(items []PrefixRange) *Set {
	out := s
	for _, item := range items {
		out = out.Remove(item)
	}
	return out
}

// Clear returns the empty set.
func (s *Set) Clear() *Set { return Zero() }

// Union returns the set of prefixes in s or other (or both).
func (s *Set) Union(other *Set) *Set {
	return &Set{trie: unionNodes(s.root(), other.root())}
}

// Intersect returns the set of prefixes in both s and other.
func (s *Set) Intersect(other *Set) *Set {
	return &Set{trie: intersectNodes(s.root(), other.root())}
}

// Plus is an alias for Union.
func (s *Set) Plus(other *Set) *Set { return s.Union(other) }

// Times is an alias for Intersect.
func (s *Set) Times(other *Set) *Set { return s.Intersect(other) }

// Difference returns the set of prefixes in s but not in other.
func (s *Set) Difference(other *Set) *Set {
	return &Set{trie: differenceNodes(s.root(), other.root())}
}

// SymDifference returns the set of prefixes in exactly one of s, other,
// per the identity (s | other) &^ (s & other).
func (s *Set) SymDifference(other *Set) *Set {
	return s.Union(other).Difference(s.Intersect(other))
}

// Complement returns the set of every prefix not in s.
func (s *Set) Complement() *Set {
	return One().Difference(s)
}

// IsSubsetOf reports whether every prefix in s is also in other.
func (s *Set) IsSubsetOf(other *Set) bool {
	return s.Difference(other).IsEmpty()
}

// Equal reports whether s and other denote the same prefixes.
func (s *Set) Equal(other *Set) bool {
	return s.IsSubsetOf(other) && other.IsSubsetOf(s)
}

func (s *Set) root() *node {
	if s == nil {
		return nil
	}
	return s.trie
}

// String renders s as a space separated list of ranges in output form.
func (s *Set) String() string {
	rs := s.Ranges()
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}
