// Copyright (c) 2025 The try-tries-and-trees Authors
// SPDX-License-Identifier: MIT

package tbm

import "errors"

// Sentinel errors for the taxonomy of §7. Use [errors.Is] to test
// against them; wrapping with the offending value is done via %w.
var (
	// ErrInvalidPrefix is returned when a prefix length exceeds the
	// address family's bit width, or the address itself is invalid.
	ErrInvalidPrefix = errors.New("tbm: invalid prefix")

	// ErrInvalidStrideSchedule is returned by [NewTreeWithSchedules] when the
	// strides don't sum to the address width, or one of them falls
	// outside [3,8].
	ErrInvalidStrideSchedule = errors.New("tbm: invalid stride schedule")

	// ErrDuplicate is returned by [Tree.Insert] when the prefix (in
	// canonical form) is already present. The existing entry is left
	// untouched; see [Tree.Upsert] for overwrite semantics.
	ErrDuplicate = errors.New("tbm: duplicate prefix")
)
