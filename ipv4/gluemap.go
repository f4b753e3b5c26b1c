package ipv4

import "math/bits"

// glueMap is a bitset over prefix lengths [0, MaxLength]. Bit i set means
// the prefix formed by a node's bit-pattern truncated to length i is a
// member of the set. MaxLength+1 = 33 bits fit a single uint64; the shape
// (test/set/clear/union/intersect/xor/not, maximal-run iteration) is
// adapted from a fixed-width word-array bitset, scaled down to this
// family's width (see SPEC_FULL.md §4).
type glueMap uint64

func lengthBit(l PrefixLength) glueMap {
	return glueMap(1) << uint(l.Int())
}

func glueMapRange(lower, upper PrefixLength) glueMap {
	if lower > upper {
		return 0
	}
	width := uint(upper.Int()-lower.Int()) + 1
	var span glueMap
	if width >= 64 {
		span = ^glueMap(0)
	} else {
		span = (glueMap(1) << width) - 1
	}
	return span << uint(lower.Int())
}

func (g glueMap) test(l PrefixLength) bool {
	return g&lengthBit(l) != 0
}

func (g glueMap) set(l PrefixLength) glueMap {
	return g | lengthBit(l)
}

func (g glueMap) clear(l PrefixLength) glueMap {
	return g &^ lengthBit(l)
}

func (g glueMap) union(h glueMap) glueMap { return g | h }
func (g glueMap) intersect(h glueMap) glueMap { return g & h }
func (g glueMap) xor(h glueMap) glueMap { return g ^ h }
func (g glueMap) sub(h glueMap) glueMap { return g &^ h }

// not returns the complement of g restricted to the lengths legal at a
// node whose branch length is from: bits below from are always invalid
// (invariant 4 of the trie) and are never set by complement.
func (g glueMap) not(from PrefixLength) glueMap {
	mask := glueMapRange(from, MaxPrefixLength)
	return (^g) & mask
}

func (g glueMap) isZero() bool { return g == 0 }

func (g glueMap) count() int { return bits.OnesCount64(uint64(g)) }

// lengthRange is a maximal run of consecutive set bits, [Lower, Upper].
type lengthRange struct {
	Lower, Upper PrefixLength
}

// runs returns the maximal runs of set bits in g, in ascending order.
func (g glueMap) runs() []lengthRange {
	var out []lengthRange
	l := MinLength
	for {
		// find next set bit at or after l
		start, found := g.nextSet(l)
		if !found {
			return out
		}
		end := start
		for {
			next, err := end.Increment()
			if err != nil || !g.test(next) {
				break
			}
			end = next
		}
		out = append(out, lengthRange{Lower: start, Upper: end})
		next, err := end.Increment()
		if err != nil {
			return out
		}
		l = next
	}
}

func (g glueMap) nextSet(from PrefixLength) (PrefixLength, bool) {
	shifted := uint64(g) >> uint(from.Int())
	if shifted == 0 {
		return 0, false
	}
	return from + PrefixLength(bits.TrailingZeros64(shifted)), true
}
