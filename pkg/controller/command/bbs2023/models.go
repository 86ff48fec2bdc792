/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"encoding/json"
	"time"
)

// IssueRequest is model for signing a credential with a bbs-2023 base proof.
type IssueRequest struct {
	// unsecured credential
	Credential json.RawMessage `json:"credential"`
	// issuer verification method, must be known to the key store
	VerificationMethod string `json:"verificationMethod"`
	// proof purpose, assertionMethod by default
	ProofPurpose string `json:"proofPurpose,omitempty"`
	// proof creation date, now by default
	Created *time.Time `json:"created,omitempty"`
	// JSONPath selections every presentation must reveal
	MandatorySelections []string `json:"mandatorySelections,omitempty"`
	// JSON-LD frame selecting what every presentation must reveal
	MandatoryFrame map[string]interface{} `json:"mandatoryFrame,omitempty"`
}

// IssueResponse is model for a signed credential.
type IssueResponse struct {
	Credential json.RawMessage `json:"credential"`
}

// PresentRequest is model for deriving a presentation from a signed credential.
type PresentRequest struct {
	// credential secured with a bbs-2023 base proof
	Credential json.RawMessage `json:"credential"`
	// JSONPath selections the holder chooses to reveal
	Selections []string `json:"selections,omitempty"`
	// JSON-LD frame selecting what the holder chooses to reveal
	Frame     map[string]interface{} `json:"frame,omitempty"`
	Challenge string                 `json:"challenge,omitempty"`
	Domain    string                 `json:"domain,omitempty"`
	Created   *time.Time             `json:"created,omitempty"`
}

// PresentResponse is model for a derived presentation.
type PresentResponse struct {
	Presentation json.RawMessage `json:"presentation"`
}

// VerifyRequest is model for verifying a derived presentation.
type VerifyRequest struct {
	Presentation json.RawMessage `json:"presentation"`
	// expected challenge, not checked when empty
	Challenge string `json:"challenge,omitempty"`
	// expected domain, not checked when empty
	Domain string `json:"domain,omitempty"`
}

// VerifyCredentialRequest is model for verifying the base proof of a signed credential.
type VerifyCredentialRequest struct {
	Credential json.RawMessage `json:"credential"`
	// expected proof purpose, not checked when empty
	ProofPurpose string `json:"proofPurpose,omitempty"`
	// maximum proof age in seconds, not checked when zero
	MaxAge int64 `json:"maxAge,omitempty"`
}

// VerifyResponse is model for verification results.
type VerifyResponse struct {
	Verified bool `json:"verified"`
}
