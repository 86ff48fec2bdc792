/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

// QuadSequence is an ordered list of canonical N-Quads statements without line terminators.
type QuadSequence []string

// IndexSet is a list of message indexes. Sets handed to the signature primitive are ascending and
// free of duplicates.
type IndexSet []int

// ResolveIndexes returns, in ascending order, every position of full whose statement also occurs in
// framed. Statements are matched by value, so a statement repeated in full is reported at each of its
// positions even when framed selected a single logical occurrence.
func ResolveIndexes(full, framed QuadSequence) IndexSet {
	selected := make(map[string]struct{}, len(framed))
	for _, statement := range framed {
		selected[statement] = struct{}{}
	}

	indexes := IndexSet{}

	for i, statement := range full {
		if _, ok := selected[statement]; ok {
			indexes = append(indexes, i)
		}
	}

	return indexes
}

// Duplicates reports every statement that occurs more than once in seq with its positions.
func Duplicates(seq QuadSequence) map[string]IndexSet {
	positions := make(map[string]IndexSet, len(seq))
	for i, statement := range seq {
		positions[statement] = append(positions[statement], i)
	}

	duplicates := map[string]IndexSet{}

	for statement, indexes := range positions {
		if len(indexes) > 1 {
			duplicates[statement] = indexes
		}
	}

	return duplicates
}
