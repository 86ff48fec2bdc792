/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageSet(t *testing.T) {
	options := QuadSequence{"o0 .", "o1 ."}
	document := QuadSequence{"d0 .", "d1 .", "d2 ."}

	messages := AssembleMessages(options, document)

	require.Equal(t, 2, messages.ProofN())
	require.Equal(t, 5, messages.Len())
	require.Equal(t, IndexSet{0, 1}, messages.OptionIndexes())
	require.Equal(t, document, messages.DocumentStatements())
	require.Equal(t, IndexSet{2, 4}, messages.MessageIndexes(IndexSet{0, 2}))
	require.Equal(t, [][]byte{[]byte("o0 ."), []byte("o1 ."), []byte("d0 ."), []byte("d1 ."), []byte("d2 .")},
		messages.Bytes())

	docIdx, err := messages.DocumentIndex(3)
	require.NoError(t, err)
	require.Equal(t, 1, docIdx)

	_, err = messages.DocumentIndex(1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = messages.DocumentIndex(5)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	selected, err := messages.Select(IndexSet{0, 3})
	require.NoError(t, err)
	require.Equal(t, QuadSequence{"o0 .", "d1 ."}, selected)

	_, err = messages.Select(IndexSet{3, 0})
	require.ErrorIs(t, err, ErrMalformedIndexes)

	t.Run("inputs are not aliased", func(t *testing.T) {
		opts := QuadSequence{"o ."}
		doc := QuadSequence{"d ."}

		set := AssembleMessages(opts, doc)
		opts[0] = "changed ."
		doc[0] = "changed ."

		require.Equal(t, [][]byte{[]byte("o ."), []byte("d .")}, set.Bytes())

		statements := set.DocumentStatements()
		statements[0] = "changed ."
		require.Equal(t, QuadSequence{"d ."}, set.DocumentStatements())
	})
}
