package ipv6

import (
	"fmt"
	"net"
)

// Prefix is a (network, length) pair with host bits zeroed at
// construction. The zero value is ::/0.
type Prefix struct {
	addr   Address
	length PrefixLength
}

// NewPrefix masks the host bits of addr with the netmask for length and
// returns the resulting Prefix.
func NewPrefix(addr Address, length PrefixLength) Prefix {
	return Prefix{addr: addr.And(NetmaskFromLength(length).Address()), length: length}
}

// PrefixFromNetIPNet converts a *net.IPNet holding an IPv6 network.
func PrefixFromNetIPNet(n *net.IPNet) (Prefix, error) {
	if n == nil {
		return Prefix{}, parseErrorf("nil *net.IPNet")
	}
	ones, bitlen := n.Mask.Size()
	if bitlen != MaxLength {
		return Prefix{}, parseErrorf("IPNet is not IPv6")
	}
	addr, err := AddressFromNetIP(n.IP)
	if err != nil {
		return Prefix{}, err
	}
	length, err := NewPrefixLength(ones)
	if err != nil {
		return Prefix{}, err
	}
	return NewPrefix(addr, length), nil
}

// ParsePrefix parses `<address>/<length>` per the stable textual grammar:
// length is decimal, at most 3 digits, no leading zeros, within bounds.
func ParsePrefix(s string) (Prefix, error) {
	addrPart, lengthPart, ok := splitOnce(s, '/')
	if !ok {
		return Prefix{}, parseErrorf("invalid prefix %q: missing '/'", s)
	}
	addr, err := ParseAddress(addrPart)
	if err != nil {
		return Prefix{}, err
	}
	n, err := parseDecimalLength(lengthPart)
	if err != nil {
		return Prefix{}, err
	}
	length, err := NewPrefixLength(n)
	if err != nil {
		return Prefix{}, err
	}
	return NewPrefix(addr, length), nil
}

func splitOnce(s string, sep byte) (before, after string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

func parseDecimalLength(s string) (int, error) {
	if len(s) == 0 || len(s) > 3 {
		return 0, parseErrorf("invalid prefix length %q", s)
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, parseErrorf("invalid prefix length %q: leading zero", s)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, parseErrorf("invalid prefix length %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// Network returns the network address of p (host bits already zero).
func (p Prefix) Network() Address { return p.addr }

// Length returns the prefix length.
func (p Prefix) Length() PrefixLength { return p.length }

// Netmask returns the netmask corresponding to p's length.
func (p Prefix) Netmask() Netmask { return NetmaskFromLength(p.length) }

// Hostmask returns the hostmask corresponding to p's length.
func (p Prefix) Hostmask() Hostmask { return HostmaskFromLength(p.length) }

// Broadcast returns the last address covered by p.
func (p Prefix) Broadcast() Address { return p.addr.Or(p.Hostmask().Address()) }

// CommonWith returns the longest common prefix of p and other: the
// shorter of their two lengths, further shortened to the number of bits
// the two networks actually share.
func (p Prefix) CommonWith(other Prefix) Prefix {
	minLength := p.length
	if other.length < minLength {
		minLength = other.length
	}
	commonLength := CommonLength(p.addr, other.addr)
	if commonLength < minLength {
		minLength = commonLength
	}
	return NewPrefix(p.addr, minLength)
}

// Contains reports whether addr falls within p.
func (p Prefix) Contains(addr Address) bool {
	return addr.And(p.Netmask().Address()) == p.addr
}

// ContainsPrefix reports whether other is equal to or a strict subprefix
// of p.
func (p Prefix) ContainsPrefix(other Prefix) bool {
	ord := p.Compare(other)
	return ord.Kind == Equal || ord.Kind == Superprefix
}

// Supernet returns the immediate supernet of p, or ok=false if p is
// already /0.
func (p Prefix) Supernet() (Prefix, bool) {
	l, err := p.length.Decrement()
	if err != nil {
		return Prefix{}, false
	}
	return NewPrefix(p.addr, l), true
}

// IsSibling reports whether p and other share an immediate supernet.
func (p Prefix) IsSibling(other Prefix) bool {
	ps, pok := p.Supernet()
	os, ook := other.Supernet()
	return pok && ook && ps == os
}

// Equal reports whether p and other denote the same prefix.
func (p Prefix) Equal(other Prefix) bool {
	return p.addr == other.addr && p.length == other.length
}

// String renders p as "<address>/<length>".
func (p Prefix) String() string {
	return fmt.Sprintf("%s/%s", p.addr, p.length)
}

// SubprefixIter iterates the subprefixes of a Prefix at a fixed longer
// length, in ascending address order. Counts are carried in uint128 since
// a short IPv6 prefix split deep can denote far more children than fits
// in a uint64. delta == MaxLength (::/0 split into individual /128s) denotes
// 2^128 subprefixes, one more than uint128 can hold; that case is tracked by
// cycling on address wraparound (full) rather than counting down from n.
type SubprefixIter struct {
	length  PrefixLength
	cur     uint128
	start   uint128
	step    uint128
	n       uint128
	i       uint128
	full    bool
	started bool
}

// Subprefixes returns an iterator over the 2^(newLength-p.Length())
// subprefixes of p at newLength. newLength == p.Length() yields a
// singleton iterator over p itself.
func (p Prefix) Subprefixes(newLength PrefixLength) SubprefixIter {
	base := NewPrefix(p.addr, newLength)
	if newLength <= p.length {
		return SubprefixIter{length: newLength, cur: base.addr.v, step: uint128{0, 0}, n: uint128{0, 1}}
	}
	delta := newLength.Int() - p.length.Int()
	step := uint128{0, 1}.LeftShift(MaxLength - newLength.Int())
	if delta >= MaxLength {
		return SubprefixIter{length: newLength, cur: base.addr.v, start: base.addr.v, step: step, full: true}
	}
	n := uint128{0, 1}.LeftShift(delta)
	return SubprefixIter{length: newLength, cur: base.addr.v, step: step, n: n}
}

// Next returns the next subprefix and true, or the zero Prefix and false
// once exhausted.
func (it *SubprefixIter) Next() (Prefix, bool) {
	if it.full {
		if it.started && it.cur == it.start {
			return Prefix{}, false
		}
		it.started = true
		p := Prefix{addr: Address{it.cur}, length: it.length}
		it.cur = it.cur.AddUint128(it.step)
		return p, true
	}
	if it.i.Compare(it.n) >= 0 {
		return Prefix{}, false
	}
	p := Prefix{addr: Address{it.cur}, length: it.length}
	it.cur = it.cur.AddUint128(it.step)
	it.i = it.i.AddUint64(1)
	return p, true
}

// Rest drains the iterator into a slice.
func (it *SubprefixIter) Rest() []Prefix {
	out := make([]Prefix, 0)
	for {
		p, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}
