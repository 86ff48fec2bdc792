/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package context

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Document is a JSON-LD context document with associated metadata.
type Document struct {
	URL         string          `json:"url,omitempty"`         // URL is a context URL that shows up in the documents.
	DocumentURL string          `json:"documentURL,omitempty"` // The final URL of the loaded context document.
	Content     json.RawMessage `json:"content,omitempty"`     // Content of the context document.
}

// ParseDocuments parses either a single context document or a JSON array of them.
func ParseDocuments(data []byte) ([]Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty context documents")
	}

	var docs []Document

	if data[0] == '[' {
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("unmarshal context documents: %w", err)
		}
	} else {
		var doc Document

		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal context document: %w", err)
		}

		docs = append(docs, doc)
	}

	for i, doc := range docs {
		if doc.URL == "" || len(doc.Content) == 0 {
			return nil, fmt.Errorf("context document %d: url and content are required", i)
		}
	}

	return docs, nil
}
