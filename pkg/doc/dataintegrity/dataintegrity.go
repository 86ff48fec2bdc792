/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package dataintegrity adds data integrity proofs to JSON documents and verifies them, dispatching
// the cryptographic steps to the registered suites by their cryptosuite identifier.
package dataintegrity

import (
	"errors"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
)

var logger = log.New("bbs2023/dataintegrity")

const proofPath = "proof"

var (
	// ErrUnsupportedSuite is returned when a Signer or Verifier is required to use
	// a cryptographic suite it has no initialized implementation for.
	ErrUnsupportedSuite = errors.New("data integrity proof requires unsupported cryptographic suite")
	// ErrProofGeneration is returned when Signer.AddProof() fails to generate a
	// proof using a supported cryptographic suite.
	ErrProofGeneration = errors.New("data integrity proof generation error")
	// ErrMissingProof is returned when a document has no proof field.
	ErrMissingProof = errors.New("missing data integrity proof")
	// ErrMalformedProof is returned when the proof isn't a JSON object or is
	// missing necessary standard fields.
	ErrMalformedProof = errors.New("malformed data integrity proof")
	// ErrWrongProofType is returned when the proof isn't a Data Integrity proof.
	ErrWrongProofType = errors.New("proof provided is not a data integrity proof")
	// ErrMismatchedPurpose is returned when the proof purpose does not match the
	// expected purpose provided in the proof options.
	ErrMismatchedPurpose = errors.New("data integrity proof does not match expected purpose")
	// ErrOutOfDate is returned when a proof was created more than
	// models.ProofOptions.MaxAge seconds ago.
	ErrOutOfDate = errors.New("data integrity proof out of date")
	// ErrInvalidDomain is returned when a proof does not carry the expected domain.
	ErrInvalidDomain = errors.New("data integrity proof has invalid domain")
	// ErrInvalidChallenge is returned when a proof does not carry the expected challenge.
	ErrInvalidChallenge = errors.New("data integrity proof has invalid challenge")
)
