// Copyright (c) 2025 The try-tries-and-trees Authors
// SPDX-License-Identifier: MIT

package tbm

import (
	"fmt"
	"net/netip"
)

// Prefix is the data unit stored in a [Tree]: a network address, a
// prefix length and caller-supplied metadata. Equality and ordering
// only ever consider the top Len bits of Addr; host bits beyond Len
// never affect identity.
type Prefix[M any] struct {
	Addr netip.Addr
	Len  int
	Meta M
}

// NewPrefix builds a Prefix from a standard [netip.Prefix] plus
// metadata. The address is canonicalized (host bits cleared) the same
// way [netip.Prefix.Masked] does.
func NewPrefix[M any](p netip.Prefix, meta M) (Prefix[M], error) {
	if !p.IsValid() {
		return Prefix[M]{}, fmt.Errorf("%w: %v", ErrInvalidPrefix, p)
	}
	m := p.Masked()
	return Prefix[M]{Addr: m.Addr(), Len: m.Bits(), Meta: meta}, nil
}

// netip returns the plain netip.Prefix view of p, discarding metadata.
func (p Prefix[M]) netip() netip.Prefix {
	return netip.PrefixFrom(p.Addr, p.Len)
}

// String renders the prefix in CIDR notation, for diagnostics.
func (p Prefix[M]) String() string {
	return p.netip().String()
}

// canonicalKey returns the packed, left-aligned network value (see
// addrFamily) masked to Len significant bits, together with Len. Two
// prefixes compare equal iff their canonicalKey results are equal.
func (p Prefix[M]) canonicalKey() (af af, net uint128, length int, err error) {
	a, net, err := addrFamily(p.Addr)
	if err != nil {
		return nil, uint128{}, 0, fmt.Errorf("%w: %v", ErrInvalidPrefix, err)
	}
	if p.Len < 0 || p.Len > a.bits() {
		return nil, uint128{}, 0, fmt.Errorf("%w: /%d on a %d-bit address", ErrInvalidPrefix, p.Len, a.bits())
	}
	return a, net.and(topMask(p.Len)), p.Len, nil
}

// equalPrefix reports whether p and q denote the same canonical prefix.
func equalPrefix[M any](p, q Prefix[M]) bool {
	af1, net1, len1, err1 := p.canonicalKey()
	af2, net2, len2, err2 := q.canonicalKey()
	if err1 != nil || err2 != nil {
		return false
	}
	return af1.bits() == af2.bits() && len1 == len2 && net1.equal(net2)
}

// lessPrefix orders by canonical network value, then by length, so
// that a sequence of matches from shortest to longest (as produced by
// [Tree.LookupAll]) is naturally non-decreasing in specificity.
func lessPrefix[M any](p, q Prefix[M]) bool {
	_, net1, len1, _ := p.canonicalKey()
	_, net2, len2, _ := q.canonicalKey()
	if !net1.equal(net2) {
		return net1.less(net2)
	}
	return len1 < len2
}
