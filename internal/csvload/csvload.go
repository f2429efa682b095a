// Copyright (c) 2025 The try-tries-and-trees Authors
// SPDX-License-Identifier: MIT

// Package csvload reads the prefix CSV format described in spec §6:
// a header row followed by (ipv4_dotted, prefix_length, u32_metadata)
// rows. It is an external collaborator, out of scope for the tbm core
// per spec §1, grounded in the teacher's own cmd/routes.go pattern of
// scanning a line-oriented file with bufio.Scanner and parsing each
// line with net/netip.
package csvload

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/netip"
	"strconv"
)

// Row is one parsed line of the input CSV.
type Row struct {
	Prefix netip.Prefix
	Meta   uint32
}

// Load reads every row from r, skipping the header line. Malformed
// rows are reported with their 1-based line number.
func Load(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("csvload: reading header: %w", err)
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvload: line %d: %w", line, err)
		}

		length, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("csvload: line %d: bad prefix length %q: %w", line, rec[1], err)
		}
		addr, err := netip.ParseAddr(rec[0])
		if err != nil {
			return nil, fmt.Errorf("csvload: line %d: bad address %q: %w", line, rec[0], err)
		}
		meta, err := strconv.ParseUint(rec[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("csvload: line %d: bad metadata %q: %w", line, rec[2], err)
		}

		pfx := netip.PrefixFrom(addr, length).Masked()
		rows = append(rows, Row{Prefix: pfx, Meta: uint32(meta)})
	}

	return rows, nil
}
