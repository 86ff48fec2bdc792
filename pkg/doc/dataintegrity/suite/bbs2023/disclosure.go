/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// MergeIndexes returns the union of the given sets, ascending and without duplicates. The result is
// the only list passed to proof derivation.
func MergeIndexes(sets ...IndexSet) IndexSet {
	merged := IndexSet{}

	for _, set := range sets {
		merged = append(merged, set...)
	}

	slices.Sort(merged)

	return slices.Compact(merged)
}

// ValidateIndexes checks that every index addresses one of total messages and that the list is
// strictly ascending.
func ValidateIndexes(indexes IndexSet, total int) error {
	for i, idx := range indexes {
		if idx < 0 || idx >= total {
			return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, idx, total)
		}

		if i > 0 && indexes[i-1] >= idx {
			return fmt.Errorf("%w: %d follows %d", ErrMalformedIndexes, idx, indexes[i-1])
		}
	}

	return nil
}

// IsSubset reports whether every index of subset is present in set. Both lists must be ascending.
func IsSubset(subset, set IndexSet) bool {
	j := 0

	for _, idx := range subset {
		for j < len(set) && set[j] < idx {
			j++
		}

		if j == len(set) || set[j] != idx {
			return false
		}
	}

	return true
}
