/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package context_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	ldcontext "github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/context"
)

func TestParseDocuments(t *testing.T) {
	t.Run("single document", func(t *testing.T) {
		docs, err := ldcontext.ParseDocuments([]byte(`{
			"url": "https://example.com/ctx/v1",
			"content": {"@context": {"name": "https://schema.org/name"}}
		}`))
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, "https://example.com/ctx/v1", docs[0].URL)
		require.JSONEq(t, `{"@context": {"name": "https://schema.org/name"}}`, string(docs[0].Content))
	})

	t.Run("array of documents", func(t *testing.T) {
		docs, err := ldcontext.ParseDocuments([]byte(`
		[
			{"url": "https://example.com/a", "content": {"@context": {}}},
			{"url": "https://example.com/b", "documentURL": "https://cdn.example.com/b", "content": {"@context": {}}}
		]`))
		require.NoError(t, err)
		require.Len(t, docs, 2)
		require.Equal(t, "https://cdn.example.com/b", docs[1].DocumentURL)
	})

	tests := []struct {
		name string
		data string
		err  string
	}{
		{name: "empty", data: "  ", err: "empty context documents"},
		{name: "not json", data: "{", err: "unmarshal context document"},
		{name: "bad array", data: "[1]", err: "unmarshal context documents"},
		{name: "missing url", data: `{"content": {}}`, err: "url and content are required"},
		{name: "missing content", data: `[{"url": "https://example.com/a"}]`, err: "url and content are required"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := ldcontext.ParseDocuments([]byte(tc.data))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.err)
		})
	}
}
