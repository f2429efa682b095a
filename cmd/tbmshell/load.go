// Copyright (c) 2025 The try-tries-and-trees Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"net/netip"
	"os"

	tbm "github.com/NLnetLabs/try-tries-and-trees"
	"github.com/NLnetLabs/try-tries-and-trees/internal/csvload"
)

// tbmTree is the metadata type tbmshell stores: the raw u32 metadata
// column from the input CSV, per spec §6's input format.
type tbmTree = tbm.Tree[uint32]

func loadTreeFromFile(path string) (*tbmTree, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csvload.Load(f)
	if err != nil {
		return nil, 0, err
	}

	tree := tbm.NewTree[uint32]()
	count := 0
	for _, row := range rows {
		p, err := tbm.NewPrefix(row.Prefix, row.Meta)
		if err != nil {
			log.WithError(err).WithField("prefix", row.Prefix).Warn("skipping invalid row")
			continue
		}
		if err := tree.Upsert(p); err != nil {
			log.WithError(err).WithField("prefix", row.Prefix).Warn("skipping row")
			continue
		}
		count++
	}
	return tree, count, nil
}

func printLookup(tree *tbmTree, addrStr string) error {
	addr, err := netip.ParseAddr(addrStr)
	if err != nil {
		return fmt.Errorf("parsing address %q: %w", addrStr, err)
	}

	got, ok := tree.LookupLPM(addr)
	if !ok {
		fmt.Printf("%s: no match\n", addr)
		return nil
	}
	fmt.Printf("%s: %s (meta=%d)\n", addr, got.String(), got.Meta)
	return nil
}
