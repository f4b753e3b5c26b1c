package ipv4

import "fmt"

// PrefixRange denotes every subprefix of Prefix whose length lies in
// [Lower, Upper].
type PrefixRange struct {
	prefix       Prefix
	lower, upper PrefixLength
}

// NewPrefixRange validates prefix.Length() <= lower <= upper and returns
// the range, or a BadRange error.
func NewPrefixRange(prefix Prefix, lower, upper PrefixLength) (PrefixRange, error) {
	if lower > upper {
		return PrefixRange{}, badRangef("lower bound %s exceeds upper bound %s", lower, upper)
	}
	if prefix.Length() > lower {
		return PrefixRange{}, badRangef("lower bound %s is shorter than prefix length %s", lower, prefix.Length())
	}
	return PrefixRange{prefix: prefix, lower: lower, upper: upper}, nil
}

// RangeFromPrefix lifts a bare prefix to the singleton range (P, P.length, P.length).
func RangeFromPrefix(p Prefix) PrefixRange {
	return PrefixRange{prefix: p, lower: p.Length(), upper: p.Length()}
}

// ParsePrefixRange parses the input form "<prefix>,<lower>,<upper>" or the
// output form "<prefix>^<lower>-<upper>".
func ParsePrefixRange(s string) (PrefixRange, error) {
	if idx := indexByte(s, '^'); idx >= 0 {
		prefixPart := s[:idx]
		rest := s[idx+1:]
		dash := indexByte(rest, '-')
		if dash < 0 {
			return PrefixRange{}, parseErrorf("invalid prefix range %q", s)
		}
		return buildRange(prefixPart, rest[:dash], rest[dash+1:])
	}
	parts := splitAll(s, ',')
	if len(parts) != 3 {
		return PrefixRange{}, parseErrorf("invalid prefix range %q: expected prefix,lower,upper", s)
	}
	return buildRange(parts[0], parts[1], parts[2])
}

func buildRange(prefixPart, lowerPart, upperPart string) (PrefixRange, error) {
	prefix, err := ParsePrefix(prefixPart)
	if err != nil {
		return PrefixRange{}, err
	}
	lowerN, err := parseDecimalLength(lowerPart)
	if err != nil {
		return PrefixRange{}, err
	}
	upperN, err := parseDecimalLength(upperPart)
	if err != nil {
		return PrefixRange{}, err
	}
	lower, err := NewPrefixLength(lowerN)
	if err != nil {
		return PrefixRange{}, err
	}
	upper, err := NewPrefixLength(upperN)
	if err != nil {
		return PrefixRange{}, err
	}
	return NewPrefixRange(prefix, lower, upper)
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func splitAll(s string, sep byte) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

// Prefix returns the range's base prefix.
func (r PrefixRange) Prefix() Prefix { return r.prefix }

// Lower returns the lower bound of the length range, inclusive.
func (r PrefixRange) Lower() PrefixLength { return r.lower }

// Upper returns the upper bound of the length range, inclusive.
func (r PrefixRange) Upper() PrefixLength { return r.upper }

// WithLengthRange widens or narrows the lower bound to max(r.Lower(), lo)
// and replaces the upper bound with hi. Fails with BadRange if the result
// would be empty.
func (r PrefixRange) WithLengthRange(lo, hi PrefixLength) (PrefixRange, error) {
	newLower := r.lower
	if lo > newLower {
		newLower = lo
	}
	return NewPrefixRange(r.prefix, newLower, hi)
}

// WithIntersection clips both ends of r to other's bounds.
func (r PrefixRange) WithIntersection(other PrefixRange) (PrefixRange, error) {
	lo := r.lower
	if other.lower > lo {
		lo = other.lower
	}
	hi := r.upper
	if other.upper < hi {
		hi = other.upper
	}
	return NewPrefixRange(r.prefix, lo, hi)
}

// OrLonger widens the upper bound to MaxLength.
func (r PrefixRange) OrLonger() PrefixRange {
	return PrefixRange{prefix: r.prefix, lower: r.lower, upper: MaxPrefixLength}
}

// OrLongerExcl increments the lower bound, then widens the upper bound to
// MaxLength.
func (r PrefixRange) OrLongerExcl() (PrefixRange, error) {
	lo, err := r.lower.Increment()
	if err != nil {
		return PrefixRange{}, err
	}
	return NewPrefixRange(r.prefix, lo, MaxPrefixLength)
}

// Contains reports whether other is contained in r: r's prefix contains
// other's prefix, and other's length range lies within r's.
func (r PrefixRange) Contains(other PrefixRange) bool {
	if !r.prefix.ContainsPrefix(other.prefix) {
		return false
	}
	return r.lower <= other.lower && other.upper <= r.upper
}

// String renders r as "<prefix>^<lower>-<upper>", the output form.
func (r PrefixRange) String() string {
	return fmt.Sprintf("%s^%s-%s", r.prefix, r.lower, r.upper)
}

// Iterate returns every Prefix the range denotes, ascending by length then
// by address within a length.
func (r PrefixRange) Iterate() []Prefix {
	var out []Prefix
	for l := r.lower; ; {
		it := r.prefix.Subprefixes(l)
		out = append(out, it.Rest()...)
		next, err := l.Increment()
		if err != nil || l == r.upper {
			break
		}
		l = next
	}
	return out
}
