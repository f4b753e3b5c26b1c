package ipv6

// glueMap is a bitset over prefix lengths [0, MaxLength]. Bit i set means
// the prefix formed by a node's bit-pattern truncated to length i is a
// member of the set. MaxLength+1 = 129 bits do not fit a single uint128,
// so the top bit (length 128) is carried separately from the other 128
// (see SPEC_FULL.md §4 for the shape this is adapted from).
type glueMap struct {
	rest uint128
	top  bool
}

func lengthBit(l PrefixLength) glueMap {
	if l.Int() == MaxLength {
		return glueMap{top: true}
	}
	return glueMap{rest: uint128{0, 1}.LeftShift(l.Int())}
}

func glueMapRange(lower, upper PrefixLength) glueMap {
	if lower > upper {
		return glueMap{}
	}
	var g glueMap
	for l := lower; ; {
		g = g.set(l)
		if l == upper {
			break
		}
		next, err := l.Increment()
		if err != nil {
			break
		}
		l = next
	}
	return g
}

func (g glueMap) test(l PrefixLength) bool {
	if l.Int() == MaxLength {
		return g.top
	}
	bit := uint128{0, 1}.LeftShift(l.Int())
	return g.rest.And(bit) != (uint128{})
}

func (g glueMap) set(l PrefixLength) glueMap {
	if l.Int() == MaxLength {
		return glueMap{rest: g.rest, top: true}
	}
	return glueMap{rest: g.rest.Or(uint128{0, 1}.LeftShift(l.Int())), top: g.top}
}

func (g glueMap) clear(l PrefixLength) glueMap {
	if l.Int() == MaxLength {
		return glueMap{rest: g.rest, top: false}
	}
	bit := uint128{0, 1}.LeftShift(l.Int())
	return glueMap{rest: g.rest.And(bit.Complement()), top: g.top}
}

func (g glueMap) union(h glueMap) glueMap {
	return glueMap{rest: g.rest.Or(h.rest), top: g.top || h.top}
}

func (g glueMap) intersect(h glueMap) glueMap {
	return glueMap{rest: g.rest.And(h.rest), top: g.top && h.top}
}

func (g glueMap) xor(h glueMap) glueMap {
	return glueMap{rest: g.rest.Xor(h.rest), top: g.top != h.top}
}

func (g glueMap) sub(h glueMap) glueMap {
	return glueMap{rest: g.rest.And(h.rest.Complement()), top: g.top && !h.top}
}

// not returns the complement of g restricted to the lengths legal at a
// node whose branch length is from.
func (g glueMap) not(from PrefixLength) glueMap {
	mask := glueMapRange(from, MaxPrefixLength)
	full := glueMap{rest: g.rest.Complement(), top: !g.top}
	return full.intersect(mask)
}

func (g glueMap) isZero() bool { return g.rest == (uint128{}) && !g.top }

func (g glueMap) count() int {
	c := g.rest.OnesCount()
	if g.top {
		c++
	}
	return c
}

// lengthRange is a maximal run of consecutive set bits, [Lower, Upper].
type lengthRange struct {
	Lower, Upper PrefixLength
}

// runs returns the maximal runs of set bits in g, in ascending order.
func (g glueMap) runs() []lengthRange {
	var out []lengthRange
	l := MinLength
	for {
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
	for l := from; ; {
		if g.test(l) {
			return l, true
		}
		if l.Int() == MaxLength {
			return 0, false
		}
		next, _ := l.Increment()
		l = next
	}
}
