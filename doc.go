// Copyright (c) 2025 The try-tries-and-trees Authors
// SPDX-License-Identifier: MIT

// Package tbm provides an in-memory routing information base (RIB) for
// IPv4 and IPv6 prefixes with longest-prefix-match (LPM) lookup.
//
// The core data structure is a multibit tree-bitmap (TBM): a radix tree
// compressed by consuming a variable number of address bits per level
// ("strides"). Every internal node carries two popcount-indexed bitmaps,
// pfxbitarr and ptrbitarr, that encode which internal prefixes terminate
// in the node and which child nodes exist, both addressed in O(1) via
// rank queries on the bitmaps.
//
// Nodes and prefixes live in an arena: two append-only slices owned by
// the [Tree], referenced by stable integer indices rather than pointers.
// The arena only grows; nothing is ever deleted or relocated.
//
// The default stride schedule is 7,5,5,5,3,4,3, which sums to 32 for
// IPv4 and is repeated to sum to 128 for IPv6. Callers may supply any
// schedule that sums to the address width and uses strides in [3,8].
//
// Two simpler reference tries with the same lookup contract live in
// sibling packages bintrie (one bit per level) and radixtrie
// (path-compressed). Both exist as test oracles: for any prefix set and
// any query, the TBM and either reference trie must agree on the
// longest match.
package tbm
