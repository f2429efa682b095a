// Copyright (c) 2025 The try-tries-and-trees Authors
// SPDX-License-Identifier: MIT

package radixtrie

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tbm "github.com/NLnetLabs/try-tries-and-trees"
)

func mustPfx(t *testing.T, cidr string, meta int) tbm.Prefix[int] {
	t.Helper()
	p, err := tbm.NewPrefix(netip.MustParsePrefix(cidr), meta)
	require.NoError(t, err)
	return p
}

func TestRadixTrieLongestMatch(t *testing.T) {
	tr := New[int]()
	for i, cidr := range []string{"0.0.0.0/0", "10.0.0.0/8", "10.1.0.0/16", "10.1.2.0/24"} {
		require.NoError(t, tr.Insert(mustPfx(t, cidr, i)))
	}

	got, ok := tr.LookupLPM(netip.MustParseAddr("10.1.2.3"))
	require.True(t, ok)
	assert.Equal(t, "10.1.2.0/24", got.String())

	got, ok = tr.LookupLPM(netip.MustParseAddr("11.0.0.0"))
	require.True(t, ok)
	assert.Equal(t, "0.0.0.0/0", got.String())
}

func TestRadixTrieSplitOnDivergence(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert(mustPfx(t, "192.0.0.0/23", 1)))
	require.NoError(t, tr.Insert(mustPfx(t, "193.0.0.0/23", 2)))
	require.NoError(t, tr.Insert(mustPfx(t, "192.0.0.0/16", 3)))

	got, ok := tr.LookupLPM(netip.MustParseAddr("192.0.1.0"))
	require.True(t, ok)
	assert.Equal(t, "192.0.0.0/23", got.String())

	got, ok = tr.LookupLPM(netip.MustParseAddr("193.0.0.5"))
	require.True(t, ok)
	assert.Equal(t, "193.0.0.0/23", got.String())
}

func TestRadixTrieNoMatch(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert(mustPfx(t, "1.0.128.0/24", 1)))
	_, ok := tr.LookupLPM(netip.MustParseAddr("1.0.0.0"))
	assert.False(t, ok)
}

func TestRadixTrieDuplicateAndUpsert(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert(mustPfx(t, "10.0.0.0/8", 1)))
	err := tr.Insert(mustPfx(t, "10.0.0.0/8", 2))
	assert.ErrorIs(t, err, tbm.ErrDuplicate)

	require.NoError(t, tr.Upsert(mustPfx(t, "10.0.0.0/8", 2)))
	got, ok := tr.LookupLPM(netip.MustParseAddr("10.1.1.1"))
	require.True(t, ok)
	assert.Equal(t, 2, got.Meta)
	assert.Equal(t, 1, tr.Len())
}

func TestRadixTrieIPv6(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.Insert(mustPfx(t, "2001:db8::/32", 1)))
	got, ok := tr.LookupLPM(netip.MustParseAddr("2001:db8:1::"))
	require.True(t, ok)
	assert.Equal(t, "2001:db8::/32", got.String())
}
