/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package suite

import (
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/models"
)

// RequiresCreated specifies that a data integrity suite implementation must
// tell the caller whether it requires the proof.Created field to exist.
type RequiresCreated interface {
	RequiresCreated() bool
}

// Signer provides the transform, hash and proof generation steps of the data
// integrity Add Proof algorithm.
type Signer interface {
	// CreateProof creates a base proof over doc using this implementation's
	// cryptographic suite.
	CreateProof(doc []byte, opts *models.ProofOptions) (*models.Proof, error)
	RequiresCreated
}

// Verifier provides the transform, hash and proof verification steps of the
// data integrity Verify Proof algorithm.
//
// A proof that fails cryptographic verification yields false with a nil error.
// Errors are reserved for input that could not be processed.
type Verifier interface {
	VerifyProof(doc []byte, proof *models.Proof, opts *models.ProofOptions) (bool, error)
	RequiresCreated
}

// Deriver derives a selective disclosure presentation from a credential
// secured with a base proof.
type Deriver interface {
	DeriveProof(signedCredential []byte, opts *models.DeriveOptions) ([]byte, error)
}

// DerivedVerifier verifies presentations produced by a Deriver.
type DerivedVerifier interface {
	VerifyDerivedProof(presentation []byte, opts *models.ProofOptions) (bool, error)
}

// Suite implements a data integrity cryptographic suite for proof creation,
// derivation and verification.
type Suite interface {
	Signer
	Verifier
	Deriver
	DerivedVerifier
}

// Type returns the cryptographic suite identifier, the value of the proof's
// cryptosuite property.
type Type interface {
	Type() string
}

// SignerInitializer initializes a Signer.
type SignerInitializer interface {
	Signer() (Signer, error)
	Type
}

// VerifierInitializer initializes a Verifier.
type VerifierInitializer interface {
	Verifier() (Verifier, error)
	Type
}
