// Copyright (c) 2025 The try-tries-and-trees Authors
// SPDX-License-Identifier: MIT

package tbm

import (
	"slices"

	"github.com/NLnetLabs/try-tries-and-trees/internal/bitset"
)

// node is one level of the multibit tree-bitmap, sized for a stride of
// width s bits (3 <= s <= 8). It carries two bitmaps:
//
//   - pfxbitarr, popcount-indexed by the ART-style base index
//     idx(nibble, len) = nibble>>(s-len) + (1<<len), for len in [0,s].
//     idx ranges over [1, 2^(s+1)-1]; idx 0 is never produced and stays
//     permanently unset, which is the "reserved" bit of §3.
//   - ptrbitarr, indexed directly by the full s-bit nibble value, so it
//     ranges over [0, 2^s-1] -- exactly half the addressable range of
//     pfxbitarr, as required.
//
// pfxVec and ptrVec are the node's two dense vectors: arena indices
// into the tree's prefix and node arenas respectively, kept in lock
// step with their bitmap's popcount-rank order.
type node struct {
	stride uint8

	pfxbitarr bitset.BitSet
	ptrbitarr bitset.BitSet

	pfxVec []uint32
	ptrVec []uint32
}

func newNode(stride uint8) node {
	return node{stride: stride}
}

// pfxBaseIndex is the ART base-index generalized to a variable stride,
// see the node doc comment.
func pfxBaseIndex(nibble uint32, length int, stride uint8) uint {
	return uint(nibble>>(uint(stride)-uint(length))) + (1 << uint(length))
}

// ptrBaseIndex is just the full nibble value; every value in
// [0, 2^stride-1] is addressable, no slot is reserved.
func ptrBaseIndex(fullNibble uint32) uint {
	return uint(fullNibble)
}

// pfxRank returns the 0-based position the entry at bitPos has in
// pfxVec: the number of set bits at or below bitPos, minus one. Matches
// [bitset.BitSet.Rank]'s "up to and including" semantics. The bit at
// bitPos must already be set, which is why insertPrefixAt sets it
// before asking for the rank.
func (n *node) pfxRank(bitPos uint) int {
	return n.pfxbitarr.Rank(bitPos) - 1
}

func (n *node) ptrRank(bitPos uint) int {
	return n.ptrbitarr.Rank(bitPos) - 1
}

// isEmpty reports whether the node has neither prefixes nor children.
func (n *node) isEmpty() bool {
	return len(n.pfxVec) == 0 && len(n.ptrVec) == 0
}

// evalPrefix is the read-only half of §4.3's evaluate() for the
// "terminal nibble" case: it reports the bit position for (nibble,
// length) and whether a prefix is already stored there (ExistingPrefix
// vs NewPrefix in the spec's outcome enum). nibble must be the node's
// raw, full-stride-width nibble value, not pre-shifted or truncated to
// length bits -- pfxBaseIndex performs the one and only shift.
func (n *node) evalPrefix(nibble uint32, length int) (bitPos uint, exists bool) {
	bitPos = pfxBaseIndex(nibble, length, n.stride)
	return bitPos, n.pfxbitarr.Test(bitPos)
}

// evalChild is the read-only half of evaluate() for the "descend"
// case: NewChild vs ExistingChild.
func (n *node) evalChild(fullNibble uint32) (bitPos uint, exists bool) {
	bitPos = ptrBaseIndex(fullNibble)
	return bitPos, n.ptrbitarr.Test(bitPos)
}

// insertPrefixAt records a brand-new prefix at bitPos, pointing at
// arenaIdx in the tree's prefix arena. Caller must have verified via
// evalPrefix that the bit was not already set.
func (n *node) insertPrefixAt(bitPos uint, arenaIdx uint32) {
	n.pfxbitarr.Set(bitPos)
	rank := n.pfxRank(bitPos)
	n.pfxVec = slices.Insert(n.pfxVec, rank, arenaIdx)
}

// prefixArenaIdx returns the arena index stored at bitPos. Caller must
// have verified the bit is set.
func (n *node) prefixArenaIdx(bitPos uint) uint32 {
	return n.pfxVec[n.pfxRank(bitPos)]
}

// setPrefixArenaIdx overwrites the arena index stored at bitPos, used
// by [Tree.Upsert] to replace metadata in place without touching the
// bitmap.
func (n *node) setPrefixArenaIdx(bitPos uint, arenaIdx uint32) {
	n.pfxVec[n.pfxRank(bitPos)] = arenaIdx
}

// insertChildAt records a brand-new child node at bitPos (a full
// nibble value), pointing at arenaIdx in the tree's node arena.
func (n *node) insertChildAt(bitPos uint, arenaIdx uint32) {
	n.ptrbitarr.Set(bitPos)
	rank := n.ptrRank(bitPos)
	n.ptrVec = slices.Insert(n.ptrVec, rank, arenaIdx)
}

func (n *node) childArenaIdx(bitPos uint) uint32 {
	return n.ptrVec[n.ptrRank(bitPos)]
}

// searchStride is §4.3's search_stride(): for each length L from 0
// through nibbleLen (L=0 is the node's own default-route slot), if
// this node stores a prefix at (nibble, L), append its arena index to
// matches (ascending L, so later appends are always the more specific
// match within this node). pfxBaseIndex takes the raw, full-width
// nibble and does its own shift per L; it must never be pre-shifted by
// the caller. It then reports whether the walk should continue into a
// child.
func (n *node) searchStride(nibble uint32, nibbleLen int, queryLen, startBit int, matches *[]uint32) (childArena uint32, descend bool) {
	for l := 0; l <= nibbleLen; l++ {
		bitPos := pfxBaseIndex(nibble, l, n.stride)
		if n.pfxbitarr.Test(bitPos) {
			*matches = append(*matches, n.prefixArenaIdx(bitPos))
		}
	}

	if queryLen < startBit+nibbleLen {
		return 0, false
	}

	childBitPos, hasChild := n.evalChild(nibble)
	if !hasChild {
		return 0, false
	}

	return n.childArenaIdx(childBitPos), true
}
