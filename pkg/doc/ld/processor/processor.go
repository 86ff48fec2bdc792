/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package processor wraps the json-gold JSON-LD processor with the settings used for selective
// disclosure: URDNA2015 canonicalization into N-Quads statements, @explicit framing and
// reconstruction of a document from a subset of its statements.
package processor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/piprate/json-gold/ld"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/util/maphelpers"
)

const (
	format           = "application/n-quads"
	defaultAlgorithm = "URDNA2015"
	skolemPrefix     = "urn:bnid:"
)

var logger = log.New("bbs2023/json-ld-processor")

// ErrMissingDocumentLoader is returned when an operation needs to resolve contexts without a loader.
var ErrMissingDocumentLoader = errors.New("document loader is required")

// processorOpts holds options for JSON-LD operations.
type processorOpts struct {
	documentLoader ld.DocumentLoader
}

// Opts are the options for JSON-LD operations on docs (like canonicalization or framing).
type Opts func(opts *processorOpts)

// WithDocumentLoader option is for passing the JSON-LD document loader. Every operation
// resolves contexts only through this loader.
func WithDocumentLoader(loader ld.DocumentLoader) Opts {
	return func(opts *processorOpts) {
		opts.documentLoader = loader
	}
}

// Processor is a JSON-LD 1.1 processor.
type Processor struct {
	algorithm string
}

// Default returns new JSON-LD processor with default RDF dataset algorithm.
func Default() *Processor {
	return &Processor{defaultAlgorithm}
}

func (p *Processor) ldOptions(procOptions *processorOpts) *ld.JsonLdOptions {
	ldOptions := ld.NewJsonLdOptions("")
	ldOptions.ProcessingMode = ld.JsonLd_1_1
	ldOptions.Algorithm = p.algorithm
	ldOptions.Format = format
	ldOptions.ProduceGeneralizedRdf = true
	ldOptions.DocumentLoader = procOptions.documentLoader

	return ldOptions
}

// GetCanonicalDocument returns the canonical N-Quads of the given JSON-LD document. The input is not modified.
func (p *Processor) GetCanonicalDocument(doc map[string]interface{}, opts ...Opts) ([]byte, error) {
	procOptions := prepareOpts(opts)

	if procOptions.documentLoader == nil {
		return nil, ErrMissingDocumentLoader
	}

	view, err := ld.NewJsonLdProcessor().Normalize(doc, p.ldOptions(procOptions))
	if err != nil {
		return nil, fmt.Errorf("failed to normalize JSON-LD document: %w", err)
	}

	result, ok := view.(string)
	if !ok {
		return nil, fmt.Errorf("failed to normalize JSON-LD document, invalid view")
	}

	return []byte(result), nil
}

// GetCanonicalStatements returns the canonical N-Quads of the document split into statements,
// one per line, without line terminators and without the trailing empty entry.
func (p *Processor) GetCanonicalStatements(doc map[string]interface{}, opts ...Opts) ([]string, error) {
	canonical, err := p.GetCanonicalDocument(doc, opts...)
	if err != nil {
		return nil, err
	}

	return SplitMessageIntoLines(string(canonical)), nil
}

// Frame selects the substructure of inputDoc matched by frameDoc. Neither input is modified.
//
// Nodes sharing an identifier are merged while framing, so blank nodes of inputDoc should be
// labelled first (see FromStatements and TransformBlankNode) when the framed statements are
// compared with the statements of the input.
func (p *Processor) Frame(inputDoc map[string]interface{}, frameDoc map[string]interface{},
	opts ...Opts) (map[string]interface{}, error) {
	procOptions := prepareOpts(opts)

	if procOptions.documentLoader == nil {
		return nil, ErrMissingDocumentLoader
	}

	ldOptions := p.ldOptions(procOptions)
	ldOptions.OmitGraph = true

	framedInputDoc, err := ld.NewJsonLdProcessor().Frame(maphelpers.CopyMap(inputDoc), maphelpers.CopyMap(frameDoc),
		ldOptions)
	if err != nil {
		return nil, fmt.Errorf("framing failed: %w", err)
	}

	framedInputDoc["@context"] = frameDoc["@context"]

	return framedInputDoc, nil
}

// FromStatements rebuilds a JSON-LD document from canonical statements and compacts it with context.
func (p *Processor) FromStatements(statements []string, context interface{},
	opts ...Opts) (map[string]interface{}, error) {
	procOptions := prepareOpts(opts)

	if procOptions.documentLoader == nil {
		return nil, ErrMissingDocumentLoader
	}

	ldOptions := p.ldOptions(procOptions)
	proc := ld.NewJsonLdProcessor()

	transformedDoc, err := proc.FromRDF(strings.Join(statements, "\n"), ldOptions)
	if err != nil {
		return nil, fmt.Errorf("rdf processing failed: %w", err)
	}

	if ctx, ok := context.(map[string]interface{}); !ok || ctx["@context"] == nil {
		context = map[string]interface{}{"@context": context}
	}

	transformedDocMap, err := proc.Compact(transformedDoc, context, ldOptions)
	if err != nil {
		return nil, fmt.Errorf("compacting failed: %w", err)
	}

	logger.Debugf("rebuilt document from %d statements", len(statements))

	return transformedDocMap, nil
}

// prepareOpts prepare processorOpts from given Opts arguments.
func prepareOpts(opts []Opts) *processorOpts {
	procOpts := &processorOpts{}

	for _, opt := range opts {
		opt(procOpts)
	}

	return procOpts
}

// SplitMessageIntoLines splits canonical N-Quads into statements, dropping empty lines.
func SplitMessageIntoLines(msg string) []string {
	rows := strings.Split(msg, "\n")

	msgs := make([]string, 0, len(rows))

	for i := range rows {
		if strings.TrimSpace(rows[i]) != "" {
			msgs = append(msgs, rows[i])
		}
	}

	return msgs
}

// TransformBlankNode replaces blank node identifiers in the RDF statement with IRIs.
// For example, transform from "_:c14n0" to "<urn:bnid:_:c14n0>".
func TransformBlankNode(row string) string {
	return mapTerms(row, func(term string) string {
		if strings.HasPrefix(term, "_:") {
			return "<" + skolemPrefix + term + ">"
		}

		return term
	})
}

// RestoreBlankNode reverses TransformBlankNode.
// For example, transform from "<urn:bnid:_:c14n0>" to "_:c14n0".
func RestoreBlankNode(row string) string {
	return mapTerms(row, func(term string) string {
		if strings.HasPrefix(term, "<"+skolemPrefix+"_:") && strings.HasSuffix(term, ">") {
			return term[len(skolemPrefix)+1 : len(term)-1]
		}

		return term
	})
}

// mapTerms applies fn to every term of an N-Quads statement except literals.
func mapTerms(row string, fn func(term string) string) string {
	var sb strings.Builder

	for i := 0; i < len(row); {
		if row[i] == ' ' {
			sb.WriteByte(' ')
			i++

			continue
		}

		end := termEnd(row, i)

		if row[i] == '"' {
			sb.WriteString(row[i:end])
		} else {
			sb.WriteString(fn(row[i:end]))
		}

		i = end
	}

	return sb.String()
}

// termEnd returns the index just after the term starting at start. A literal runs to its closing
// quote, then to the end of its datatype or language tag.
func termEnd(row string, start int) int {
	i := start

	if row[i] == '"' {
		for i++; i < len(row) && row[i] != '"'; i++ {
			if row[i] == '\\' {
				i++
			}
		}
	}

	if i >= len(row) {
		return len(row)
	}

	if sep := strings.IndexByte(row[i:], ' '); sep >= 0 {
		return i + sep
	}

	return len(row)
}
