/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/piprate/json-gold/ld"

	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/processor"
)

// HeaderMode selects what a base proof binds into the BBS header.
type HeaderMode int

const (
	// HeaderModeMandatory binds the required reveal statements into the header, so that altering
	// them after issuance invalidates every signature and proof.
	HeaderModeMandatory HeaderMode = iota
	// HeaderModeNone signs with an empty header. Mandatory disclosure cannot be used in this mode.
	HeaderModeNone
)

// String returns the flag value of the mode.
func (m HeaderMode) String() string {
	switch m {
	case HeaderModeMandatory:
		return "mandatory"
	case HeaderModeNone:
		return "none"
	default:
		return "HeaderMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseHeaderMode parses a mode from its flag value.
func ParseHeaderMode(s string) (HeaderMode, error) {
	switch strings.ToLower(s) {
	case "mandatory", "":
		return HeaderModeMandatory, nil
	case "none":
		return HeaderModeNone, nil
	default:
		return 0, fmt.Errorf("unknown header mode %q", s)
	}
}

const (
	securityVocab       = "https://w3id.org/security#"
	mandatoryHeaderType = "MandatoryDisclosure"
)

// nolint:gochecknoglobals
var headerNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://w3id.org/security#MandatoryDisclosure"))

// HeaderProtector computes the header bytes for a required reveal set. Issuer, holder and verifier
// must compute identical bytes from the same set.
type HeaderProtector struct {
	mode   HeaderMode
	loader ld.DocumentLoader
	proc   *processor.Processor
}

// NewHeaderProtector creates a HeaderProtector.
func NewHeaderProtector(mode HeaderMode, loader ld.DocumentLoader) *HeaderProtector {
	return &HeaderProtector{mode: mode, loader: loader, proc: processor.Default()}
}

// Mode returns the configured mode.
func (h *HeaderProtector) Mode() HeaderMode {
	return h.mode
}

// Header returns the canonical N-Quads of the mandatory disclosure document for required. In
// HeaderModeNone it returns an empty header and rejects a non-empty required set.
func (h *HeaderProtector) Header(required IndexSet) ([]byte, error) {
	if h.mode == HeaderModeNone {
		if len(required) > 0 {
			return nil, ErrMandatoryDisclosureDisabled
		}

		return []byte{}, nil
	}

	canonical, err := h.proc.GetCanonicalDocument(headerDocument(required), processor.WithDocumentLoader(h.loader))
	if err != nil {
		return nil, fmt.Errorf("%w: canonicalize header: %w", ErrTransformation, err)
	}

	return canonical, nil
}

func headerDocument(required IndexSet) map[string]interface{} {
	names := make([]string, len(required))
	values := make([]interface{}, len(required))

	for i, idx := range required {
		names[i] = strconv.Itoa(idx)
		values[i] = float64(idx)
	}

	id := uuid.NewSHA1(headerNamespace, []byte(strings.Join(names, ",")))

	return map[string]interface{}{
		"@context": map[string]interface{}{
			"id":     "@id",
			"type":   "@type",
			"@vocab": securityVocab,
		},
		"id":                       id.URN(),
		"type":                     mandatoryHeaderType,
		"requiredRevealStatements": values,
	}
}
