/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package documentloader provides a local-only JSON-LD document loader preloaded with embedded contexts.
package documentloader

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bluele/gcache"
	"github.com/piprate/json-gold/ld"

	ldcontext "github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/context"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/context/embed"
)

// ErrContextNotFound is returned when JSON-LD context document is not found in the loader.
var ErrContextNotFound = errors.New("context document not found")

// DocumentLoader is an implementation of ld.DocumentLoader that only resolves preloaded contexts.
// The underlying gcache is thread safe, so one loader can serve concurrent pipelines.
type DocumentLoader struct {
	store gcache.Cache
}

// Opts configures DocumentLoader during creation.
type Opts func(opts *documentLoaderOpts)

type documentLoaderOpts struct {
	extraContexts []ldcontext.Document
}

// WithExtraContexts sets the extra contexts (in addition to embedded) for preloading.
func WithExtraContexts(contexts ...ldcontext.Document) Opts {
	return func(opts *documentLoaderOpts) {
		opts.extraContexts = append(opts.extraContexts, contexts...)
	}
}

// NewDocumentLoader returns a new DocumentLoader with the embedded contexts and any extra contexts preloaded.
// Extra contexts override embedded ones with the same URL.
func NewDocumentLoader(opts ...Opts) (*DocumentLoader, error) {
	options := &documentLoaderOpts{}

	for i := range opts {
		opts[i](options)
	}

	loader := &DocumentLoader{store: gcache.New(0).Build()}

	contexts := append(append([]ldcontext.Document{}, embed.Contexts...), options.extraContexts...)

	for _, doc := range contexts {
		if err := loader.save(doc); err != nil {
			return nil, fmt.Errorf("save context document %s: %w", doc.URL, err)
		}
	}

	return loader, nil
}

func (l *DocumentLoader) save(doc ldcontext.Document) error {
	if doc.URL == "" {
		return errors.New("context URL is required")
	}

	content, err := ld.DocumentFromReader(bytes.NewReader(doc.Content))
	if err != nil {
		return fmt.Errorf("document from reader: %w", err)
	}

	documentURL := doc.DocumentURL
	if documentURL == "" {
		documentURL = doc.URL
	}

	return l.store.Set(doc.URL, &ld.RemoteDocument{
		DocumentURL: documentURL,
		Document:    content,
	})
}

// LoadDocument resolves a JSON-LD context document by URL. Unknown URLs are never fetched remotely;
// ErrContextNotFound is returned instead.
func (l *DocumentLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	v, err := l.store.Get(u)
	if err != nil {
		if errors.Is(err, gcache.KeyNotFoundError) {
			return nil, fmt.Errorf("%w: %s", ErrContextNotFound, u)
		}

		return nil, fmt.Errorf("get context from store: %w", err)
	}

	rd, ok := v.(*ld.RemoteDocument)
	if !ok {
		return nil, fmt.Errorf("unexpected context document type %T", v)
	}

	return &ld.RemoteDocument{
		DocumentURL: rd.DocumentURL,
		Document:    rd.Document,
		ContextURL:  rd.ContextURL,
	}, nil
}
