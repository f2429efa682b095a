// Copyright (c) 2025 The try-tries-and-trees Authors
// SPDX-License-Identifier: MIT

package tbm

import "fmt"

// DefaultScheduleIPv4 is the repeating 7,5,5,5,3,4,3 pattern, truncated
// to sum to 32.
var DefaultScheduleIPv4 = []uint8{7, 5, 5, 5, 3, 4, 3}

// DefaultScheduleIPv6 repeats the same pattern to sum to 128.
var DefaultScheduleIPv6 = []uint8{7, 5, 5, 5, 3, 4, 3, 7, 5, 5, 5, 3, 4, 3, 7, 5, 5, 5, 3, 4, 3, 7, 5, 5, 5, 3, 4, 3}

const (
	minStride = 3
	maxStride = 8
)

// schedule is a frozen, validated sequence of stride widths summing
// exactly to an address family's bit width. Once built it is never
// mutated; a [Tree] keeps one for its lifetime.
type schedule struct {
	strides []uint8
	// cumEnd[i] is the bit offset at which stride i ends, i.e. the sum
	// of strides[0:i+1]. Precomputed so Insert/Lookup don't re-sum.
	cumEnd []int
}

// newSchedule validates strides and freezes it into a schedule.
func newSchedule(strides []uint8, bits int) (schedule, error) {
	if len(strides) == 0 {
		return schedule{}, fmt.Errorf("%w: empty schedule", ErrInvalidStrideSchedule)
	}

	cumEnd := make([]int, len(strides))
	sum := 0
	for i, s := range strides {
		if s < minStride || s > maxStride {
			return schedule{}, fmt.Errorf("%w: stride %d at position %d outside [%d,%d]",
				ErrInvalidStrideSchedule, s, i, minStride, maxStride)
		}
		sum += int(s)
		cumEnd[i] = sum
	}

	if sum != bits {
		return schedule{}, fmt.Errorf("%w: strides sum to %d, want %d", ErrInvalidStrideSchedule, sum, bits)
	}

	frozen := make([]uint8, len(strides))
	copy(frozen, strides)
	return schedule{strides: frozen, cumEnd: cumEnd}, nil
}

func (s schedule) depth() int { return len(s.strides) }
