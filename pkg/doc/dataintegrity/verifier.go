/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataintegrity

import (
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/models"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/suite"
)

// Verifier implements the Verify Proof algorithm of the verifiable credential
// W3C Data Integrity model, using a set of provided cryptographic suites.
//
// Envelope problems are reported as errors. A proof that is well formed but does
// not verify yields false with a nil error.
type Verifier struct {
	suites map[string]suite.Verifier
	now    func() time.Time
}

// NewVerifier initializes a Verifier that supports using the provided
// cryptographic suites to perform data integrity verification.
func NewVerifier(suites ...suite.VerifierInitializer) (*Verifier, error) {
	verifier := &Verifier{
		suites: map[string]suite.Verifier{},
		now:    time.Now,
	}

	for _, initializer := range suites {
		suiteType := initializer.Type()

		if _, ok := verifier.suites[suiteType]; ok {
			continue
		}

		verifierSuite, err := initializer.Verifier()
		if err != nil {
			return nil, err
		}

		verifier.suites[suiteType] = verifierSuite
	}

	return verifier, nil
}

// VerifyProof verifies the base data integrity proof on the given JSON document.
func (v *Verifier) VerifyProof(doc []byte, opts *models.ProofOptions) (bool, error) {
	if opts == nil {
		opts = &models.ProofOptions{}
	}

	proof, verifierSuite, err := v.checkEnvelope(doc, opts)
	if err != nil {
		return false, err
	}

	unsecuredDoc, err := sjson.DeleteBytes(doc, proofPath)
	if err != nil {
		return false, ErrMalformedProof
	}

	return verifierSuite.VerifyProof(unsecuredDoc, proof, opts)
}

// VerifyPresentation verifies the derived proof of a selective disclosure
// presentation. The suite named by the presentation proof must support derived proofs.
func (v *Verifier) VerifyPresentation(presentation []byte, opts *models.ProofOptions) (bool, error) {
	if opts == nil {
		opts = &models.ProofOptions{}
	}

	_, verifierSuite, err := v.checkEnvelope(presentation, opts)
	if err != nil {
		return false, err
	}

	derivedVerifier, ok := verifierSuite.(suite.DerivedVerifier)
	if !ok {
		return false, ErrUnsupportedSuite
	}

	return derivedVerifier.VerifyDerivedProof(presentation, opts)
}

func (v *Verifier) checkEnvelope(doc []byte, opts *models.ProofOptions) (*models.Proof, suite.Verifier, error) {
	proofRaw := gjson.GetBytes(doc, proofPath)

	if !proofRaw.Exists() {
		return nil, nil, ErrMissingProof
	}

	proof := &models.Proof{}

	if err := json.Unmarshal([]byte(proofRaw.Raw), proof); err != nil {
		return nil, nil, ErrMalformedProof
	}

	if proof.Type == "" || proof.VerificationMethod == "" || proof.ProofPurpose == "" {
		return nil, nil, ErrMalformedProof
	}

	if proof.Type != models.DataIntegrityProof {
		return nil, nil, ErrWrongProofType
	}

	verifierSuite, ok := v.suites[proof.CryptoSuite]
	if !ok {
		return nil, nil, ErrUnsupportedSuite
	}

	if verifierSuite.RequiresCreated() && proof.Created == "" {
		return nil, nil, ErrMalformedProof
	}

	if opts.Purpose != "" && proof.ProofPurpose != opts.Purpose {
		return nil, nil, ErrMismatchedPurpose
	}

	if proof.Created != "" {
		createdTime, err := time.Parse(models.DateTimeFormat, proof.Created)
		if err != nil {
			return nil, nil, ErrMalformedProof
		}

		if opts.MaxAge > 0 && v.now().Sub(createdTime) > time.Second*time.Duration(opts.MaxAge) {
			return nil, nil, ErrOutOfDate
		}
	}

	if opts.Domain != "" && opts.Domain != proof.Domain {
		return nil, nil, ErrInvalidDomain
	}

	if opts.Challenge != "" && opts.Challenge != proof.Challenge {
		return nil, nil, ErrInvalidChallenge
	}

	return proof, verifierSuite, nil
}
