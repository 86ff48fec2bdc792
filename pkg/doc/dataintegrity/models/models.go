/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

const (
	// DataIntegrityProof is the type of every proof produced by this module.
	DataIntegrityProof = "DataIntegrityProof"

	// DateTimeFormat is the date-time format used by data integrity proofs, which matches RFC3339.
	DateTimeFormat = time.RFC3339

	// AssertionMethod is the proof purpose of issued credentials.
	AssertionMethod = "assertionMethod"
	// Authentication is the proof purpose of presentations bound to a challenge.
	Authentication = "authentication"
)

// Proof implements the data integrity proof model:
// https://www.w3.org/TR/vc-data-integrity/#proofs
//
// RequiredRevealStatements carries the mandatory disclosure indexes of a base proof and is repeated in
// the derived proof. DisclosedIndexes is only set on derived proofs.
type Proof struct {
	ID                       string `json:"id,omitempty"`
	Type                     string `json:"type"`
	CryptoSuite              string `json:"cryptosuite,omitempty"`
	ProofPurpose             string `json:"proofPurpose"`
	VerificationMethod       string `json:"verificationMethod"`
	Created                  string `json:"created,omitempty"`
	Domain                   string `json:"domain,omitempty"`
	Challenge                string `json:"challenge,omitempty"`
	ProofValue               string `json:"proofValue,omitempty"`
	RequiredRevealStatements []int  `json:"requiredRevealStatements,omitempty"`
	DisclosedIndexes         []int  `json:"disclosedIndexes,omitempty"`
}

// ParseProof decodes a proof object taken from a generic JSON document. Integer lists decoded by
// encoding/json arrive as float64 values and are converted without loss.
func ParseProof(raw interface{}) (*Proof, error) {
	proofMap, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("proof must be a JSON object, got %T", raw)
	}

	proof := &Proof{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           proof,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("create proof decoder: %w", err)
	}

	if err = decoder.Decode(proofMap); err != nil {
		return nil, fmt.Errorf("decode proof: %w", err)
	}

	return proof, nil
}

// Options returns the proof configuration that is canonicalized and signed alongside a document: the
// proof without its value and without the index lists. The document context is used for expansion.
func (p *Proof) Options(docContext interface{}) map[string]interface{} {
	options := map[string]interface{}{
		"@context":           docContext,
		"type":               p.Type,
		"verificationMethod": p.VerificationMethod,
		"proofPurpose":       p.ProofPurpose,
	}

	if p.CryptoSuite != "" {
		options["cryptosuite"] = p.CryptoSuite
	}

	if p.Created != "" {
		options["created"] = p.Created
	}

	if p.Challenge != "" {
		options["challenge"] = p.Challenge
	}

	if p.Domain != "" {
		options["domain"] = p.Domain
	}

	return options
}

// ProofOptions provides options for signing or verifying a data integrity proof.
type ProofOptions struct {
	Purpose              string
	VerificationMethodID string
	SuiteType            string
	ProofType            string
	Domain               string
	Challenge            string
	Created              time.Time
	MaxAge               int64

	// MandatoryFrame selects the statements the issuer requires every presentation to reveal.
	MandatoryFrame map[string]interface{}
	// MandatorySelections are JSONPath selections a mandatory frame is built from. Use instead of MandatoryFrame.
	MandatorySelections []string
}

// DeriveOptions provides options for deriving a selective disclosure presentation.
type DeriveOptions struct {
	// Frame selects the statements the holder chooses to reveal.
	Frame map[string]interface{}
	// Selections are JSONPath selections a frame is built from. Use instead of Frame.
	Selections []string

	Created   time.Time
	Domain    string
	Challenge string
}
