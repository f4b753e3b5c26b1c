package ipv4

// node is one branch point of the gluemap trie backing Set. A node's own
// glue bit at length L means every length-L prefix descending from the
// node's own prefix is a member, independent of whatever left/right
// record about lengths beyond L. Containment for a query prefix is
// decided by walking the true ancestor chain from the root and stopping
// at the first node whose glue carries the query's length.
type node struct {
	prefix Prefix
	glue   glueMap
	left   *node
	right  *node
}

func nodeFromPrefix(p Prefix) *node {
	return &node{prefix: p, glue: lengthBit(p.Length())}
}

func nodeFromRange(p Prefix, lower, upper PrefixLength) *node {
	g := glueMapRange(lower, upper)
	if g == 0 {
		return nil
	}
	return &node{prefix: p, glue: g}
}

// bitAt reports the value of the bit at 0-indexed position pos (0 is the
// most significant bit) of addr. It is only ever called with pos strictly
// less than MaxLength, the branch point below a node whose own length is
// pos.
func bitAt(addr Address, pos PrefixLength) bool {
	return addr.Uint32()&(uint32(1)<<uint(MaxLength-1-pos.Int())) != 0
}

func childIsRight(p Prefix, parentLength PrefixLength) bool {
	return bitAt(p.Network(), parentLength)
}

// childPrefix returns the immediate child of p on the given branch. p must
// be strictly shorter than MaxLength.
func childPrefix(p Prefix, right bool) Prefix {
	length, err := p.length.Increment()
	if err != nil {
		return p
	}
	addr := p.addr
	if right {
		addr = Address{ui: addr.ui | (uint32(1) << uint(MaxLength-length.Int()))}
	}
	return NewPrefix(addr, length)
}

func isEmpty(n *node) bool {
	return n == nil || (n.glue.isZero() && n.left == nil && n.right == nil)
}

func isImmediateChild(parent, child Prefix) bool {
	return child.Length().Int() == parent.Length().Int()+1
}

// glueOp combines the own-glue bitmaps of two operands at an aligned trie
// position.
type glueOp func(a, b glueMap) glueMap

func orOp(a, b glueMap) glueMap     { return a.union(b) }
func andOp(a, b glueMap) glueMap    { return a.intersect(b) }
func andNotOp(a, b glueMap) glueMap { return a.sub(b) }

// combine merges two subtrees, given the glue already known to cover pos by
// virtue of shallower ancestors on each side (aAmbient, bAmbient). pos is
// the trie position this call is responsible for: whichever of a, b is
// non-nil is rooted at pos or a strict descendant of it, and if both are
// nil, pos is where a synthetic node carrying op(aAmbient, bAmbient) would
// live.
//
// An ancestor's own glue is never finalized until the branch actually
// carrying the other operand's content has been walked all the way down:
// when one side runs out of explicit structure before the other, the
// branch away from the remaining content is materialized explicitly
// (combineOneSide) rather than folded into a selfGlue computed from
// ambient alone. That is what lets andNotOp split a wide covering bit
// across the sibling that keeps it and the sibling that loses it, instead
// of silently reasserting the whole bit at the common ancestor.
func combine(pos Prefix, a, b *node, aAmbient, bAmbient glueMap, op glueOp) *node {
	switch {
	case a == nil && b == nil:
		g := op(aAmbient, bAmbient)
		if g.isZero() {
			return nil
		}
		return &node{prefix: pos, glue: g}
	case a == nil:
		return combineOneSide(pos, b, aAmbient, bAmbient, op, false)
	case b == nil:
		return combineOneSide(pos, a, bAmbient, aAmbient, op, true)
	}

	ord := a.prefix.Compare(b.prefix)
	switch ord.Kind {
	case Equal:
		ambA := a.glue.union(aAmbient)
		ambB := b.glue.union(bAmbient)
		var left, right *node
		if a.prefix.Length() < MaxPrefixLength {
			left = combine(childPrefix(a.prefix, false), a.left, b.left, ambA, ambB, op)
			right = combine(childPrefix(a.prefix, true), a.right, b.right, ambA, ambB, op)
		}
		return pack(a.prefix, op(ambA, ambB), left, right)

	case Superprefix: // a is the ancestor, strictly shorter than b
		ambA := a.glue.union(aAmbient)
		if childIsRight(b.prefix, a.prefix.Length()) {
			right := combine(childPrefix(a.prefix, true), a.right, b, ambA, bAmbient, op)
			left := combine(childPrefix(a.prefix, false), a.left, nil, ambA, bAmbient, op)
			return pack(a.prefix, glueMap(0), left, right)
		}
		left := combine(childPrefix(a.prefix, false), a.left, b, ambA, bAmbient, op)
		right := combine(childPrefix(a.prefix, true), a.right, nil, ambA, bAmbient, op)
		return pack(a.prefix, glueMap(0), left, right)

	case Subprefix: // b is the ancestor, strictly shorter than a
		ambB := b.glue.union(bAmbient)
		if childIsRight(a.prefix, b.prefix.Length()) {
			right := combine(childPrefix(b.prefix, true), a, b.right, aAmbient, ambB, op)
			left := combine(childPrefix(b.prefix, false), nil, b.left, aAmbient, ambB, op)
			return pack(b.prefix, glueMap(0), left, right)
		}
		left := combine(childPrefix(b.prefix, false), a, b.left, aAmbient, ambB, op)
		right := combine(childPrefix(b.prefix, true), nil, b.right, aAmbient, ambB, op)
		return pack(b.prefix, glueMap(0), left, right)

	default: // Divergent: neither side is an ancestor of the other
		common := ord.Common
		selfGlue := op(aAmbient, bAmbient)
		if childIsRight(a.prefix, common.Length()) {
			right := combine(childPrefix(common, true), a, nil, aAmbient, bAmbient, op)
			left := combine(childPrefix(common, false), nil, b, aAmbient, bAmbient, op)
			return pack(common, selfGlue, left, right)
		}
		left := combine(childPrefix(common, false), a, nil, aAmbient, bAmbient, op)
		right := combine(childPrefix(common, true), nil, b, aAmbient, bAmbient, op)
		return pack(common, selfGlue, left, right)
	}
}

// combineOneSide handles the case where one whole operand subtree is nil
// while the other, present, carries real structure possibly strictly
// deeper than pos. otherAmbient is the absent side's inherited ambient;
// presentAmbient is present's own. presentFirst controls argument order
// passed to op.
//
// If the branch away from present would end up carrying no coverage
// (offGlue is zero), present.prefix is used directly, exactly as if pos
// and present.prefix coincided: no filler nodes are produced for the
// common case of combining against an empty operand. Only when the away
// branch would carry real, nonzero coverage does this walk down bit by
// bit from pos to present.prefix, materializing that sibling explicitly
// at each level instead of letting it evaporate.
func combineOneSide(pos Prefix, present *node, otherAmbient, presentAmbient glueMap, op glueOp, presentFirst bool) *node {
	var offGlue glueMap
	if presentFirst {
		offGlue = op(presentAmbient, otherAmbient)
	} else {
		offGlue = op(otherAmbient, presentAmbient)
	}
	if offGlue.isZero() || pos.Length() == present.prefix.Length() {
		return combineOneSideCore(present, otherAmbient, presentAmbient, op, presentFirst)
	}

	onRight := childIsRight(present.prefix, pos.Length())
	on := combineOneSide(childPrefix(pos, onRight), present, otherAmbient, presentAmbient, op, presentFirst)
	off := &node{prefix: childPrefix(pos, !onRight), glue: offGlue}
	if onRight {
		return pack(pos, glueMap(0), off, on)
	}
	return pack(pos, glueMap(0), on, off)
}

// combineOneSideCore is the base of combineOneSide once pos has reached
// present.prefix exactly (or the walk was skipped because there was
// nothing for it to preserve).
func combineOneSideCore(present *node, otherAmbient, presentAmbient glueMap, op glueOp, presentFirst bool) *node {
	ambP := present.glue.union(presentAmbient)
	var selfGlue glueMap
	if presentFirst {
		selfGlue = op(ambP, otherAmbient)
	} else {
		selfGlue = op(otherAmbient, ambP)
	}
	var left, right *node
	if present.prefix.Length() < MaxPrefixLength {
		if presentFirst {
			left = combine(childPrefix(present.prefix, false), present.left, nil, ambP, otherAmbient, op)
			right = combine(childPrefix(present.prefix, true), present.right, nil, ambP, otherAmbient, op)
		} else {
			left = combine(childPrefix(present.prefix, false), nil, present.left, otherAmbient, ambP, op)
			right = combine(childPrefix(present.prefix, true), nil, present.right, otherAmbient, ambP, op)
		}
	}
	return pack(present.prefix, selfGlue, left, right)
}

func pack(prefix Prefix, glue glueMap, left, right *node) *node {
	if glue.isZero() && left == nil && right == nil {
		return nil
	}
	return &node{prefix: prefix, glue: glue, left: left, right: right}
}

// aggregate canonicalizes a raw combine() result: it strips bits already
// implied by an ancestor, lifts bits common to both children up into self,
// and collapses nodes left with no glue of their own. The lift only fires
// when left and right are both genuine immediate children of n (one bit
// deeper): a child promoted up from a collapsed grandchild during this
// same pass covers only part of its nominal half, so treating it as if it
// spoke for the whole half would silently reclaim coverage combine split
// off on purpose.
func aggregate(n *node, parentMask glueMap) *node {
	if n == nil {
		return nil
	}
	inherited := n.glue.union(parentMask)
	left := aggregate(n.left, inherited)
	right := aggregate(n.right, inherited)
	selfGlue := n.glue.sub(parentMask)

	if left != nil && right != nil && isImmediateChild(n.prefix, left.prefix) && isImmediateChild(n.prefix, right.prefix) {
		common := left.glue.intersect(right.glue)
		if !common.isZero() {
			selfGlue = selfGlue.union(common)
			left.glue = left.glue.sub(common)
			right.glue = right.glue.sub(common)
		}
	}
	if isEmpty(left) {
		left = nil
	}
	if isEmpty(right) {
		right = nil
	}

	if selfGlue.isZero() {
		switch {
		case left == nil && right == nil:
			return nil
		case left == nil:
			return right
		case right == nil:
			return left
		}
	}
	return &node{prefix: n.prefix, glue: selfGlue, left: left, right: right}
}

// trieRoot is the position handed to combine when there is no enclosing
// structure to derive one from (top-level Set operations always combine
// with zero ambient on both sides, so this placeholder is never actually
// examined: combineOneSide's fast path resolves to the real operand's own
// prefix before it would matter).
var trieRoot = NewPrefix(Zero, MinLength)

func unionNodes(a, b *node) *node {
	return aggregate(combine(trieRoot, a, b, 0, 0, orOp), 0)
}

func intersectNodes(a, b *node) *node {
	return aggregate(combine(trieRoot, a, b, 0, 0, andOp), 0)
}

// differenceNodes computes a minus b. Subtracting b directly would require
// andNotOp to see b's full structure soundly at every depth at once;
// instead b is decomposed into its own canonical, flat range list and each
// range is subtracted as a leaf in turn, so every subtraction has to
// reckon with at most one flat subtrahend against whatever a has become so
// far.
func differenceNodes(a, b *node) *node {
	result := a
	for _, r := range ranges(b) {
		leaf := nodeFromRange(r.Prefix(), r.Lower(), r.Upper())
		result = aggregate(combine(trieRoot, result, leaf, 0, 0, andNotOp), 0)
	}
	return aggregate(result, 0)
}

func contains(root *node, q Prefix) bool {
	n := root
	for n != nil {
		ord := n.prefix.Compare(q)
		switch ord.Kind {
		case Equal:
			return n.glue.test(q.Length())
		case Superprefix:
			if n.glue.test(q.Length()) {
				return true
			}
			if childIsRight(q, n.prefix.Length()) {
				n = n.right
			} else {
				n = n.left
			}
		default:
			return false
		}
	}
	return false
}

// ranges appends, in pre-order, every maximal run of set bits found while
// walking the trie: a node's own runs first, then its left subtree, then
// its right.
func ranges(n *node) []PrefixRange {
	var out []PrefixRange
	walkRanges(n, &out)
	return out
}

func walkRanges(n *node, out *[]PrefixRange) {
	if n == nil {
		return
	}
	for _, r := range n.glue.runs() {
		*out = append(*out, PrefixRange{prefix: n.prefix, lower: r.Lower, upper: r.Upper})
	}
	walkRanges(n.left, out)
	walkRanges(n.right, out)
}

func universeNode() *node {
	return nodeFromRange(NewPrefix(Zero, MinLength), MinLength, MaxPrefixLength)
}
