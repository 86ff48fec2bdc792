/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"fmt"

	"github.com/hyperledger/aries-bbs2023-go/pkg/crypto/primitive/bbs12381g2pub"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/models"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/util/maphelpers"
)

// VerifyProof verifies the base proof of an issued credential. doc is the credential without its proof.
func (s *Suite) VerifyProof(doc []byte, proof *models.Proof, _ *models.ProofOptions) (bool, error) {
	if proof == nil {
		return false, fmt.Errorf("%w: proof is required", ErrTransformation)
	}

	docMap, err := parseDocument(doc)
	if err != nil {
		return false, err
	}

	delete(docMap, proofKey)

	messages, err := s.assemble(docMap, proof)
	if err != nil {
		return false, err
	}

	required := IndexSet(proof.RequiredRevealStatements)

	if err = ValidateIndexes(required, messages.Len()); err != nil {
		return false, err
	}

	header, err := s.headers.Header(required)
	if err != nil {
		return false, err
	}

	signature, err := decodeProofValue(proof.ProofValue)
	if err != nil {
		return false, err
	}

	pubKey, err := s.publicKey(proof.VerificationMethod)
	if err != nil {
		return false, err
	}

	scalars, err := s.scalars(messages.Bytes())
	if err != nil {
		return false, err
	}

	gens, err := s.generators(messages.Len())
	if err != nil {
		return false, err
	}

	valid, err := s.primitives.Verify(pubKey, signature, header, scalars, gens)
	if err != nil {
		return false, fmt.Errorf("%w: verify signature: %w", ErrPrimitive, err)
	}

	return valid, nil
}

// VerifyDerivedProof verifies a presentation produced by DeriveProof.
//
// Indexes that cannot address the proven messages are input errors. Everything else that does not
// match, including a revealed credential that canonicalizes differently or altered required indexes,
// yields false without a reason.
func (s *Suite) VerifyDerivedProof(presentation []byte, _ *models.ProofOptions) (bool, error) { //nolint:funlen,gocyclo
	presentationMap, err := parseDocument(presentation)
	if err != nil {
		return false, err
	}

	_, presentationProof, err := splitProof(presentationMap)
	if err != nil {
		return false, err
	}

	credential, err := singleCredential(presentationMap)
	if err != nil {
		return false, err
	}

	revealed, baseProof, err := splitProof(credential)
	if err != nil {
		return false, err
	}

	proofBytes, err := decodeProofValue(presentationProof.ProofValue)
	if err != nil {
		return false, err
	}

	undisclosed, err := s.primitives.NumUndisclosed(proofBytes)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrPrimitive, err)
	}

	disclosed := IndexSet(presentationProof.DisclosedIndexes)
	required := IndexSet(presentationProof.RequiredRevealStatements)
	total := undisclosed + len(disclosed)

	if err = ValidateIndexes(disclosed, total); err != nil {
		return false, err
	}

	if err = ValidateIndexes(required, total); err != nil {
		return false, err
	}

	messages, err := s.assemble(revealed, baseProof)
	if err != nil {
		return false, err
	}

	if !consistentDisclosure(messages, disclosed, required) ||
		baseProof.VerificationMethod != presentationProof.VerificationMethod {
		logger.Debugf("presentation disclosure does not match the revealed credential")

		return false, nil
	}

	header, err := s.headers.Header(required)
	if err != nil {
		return false, err
	}

	ph, err := s.canonicalBytes(presentationProof.Options(revealed[ldCtxKey]))
	if err != nil {
		return false, err
	}

	pubKey, err := s.publicKey(presentationProof.VerificationMethod)
	if err != nil {
		return false, err
	}

	scalars, err := s.scalars(messages.Bytes())
	if err != nil {
		return false, err
	}

	gens, err := s.generators(total)
	if err != nil {
		return false, err
	}

	valid, err := s.primitives.ProofVerify(pubKey, proofBytes, header, ph, scalars, disclosed, gens)
	if err != nil {
		return false, fmt.Errorf("%w: verify proof: %w", ErrPrimitive, err)
	}

	return valid, nil
}

// consistentDisclosure checks that the revealed messages line up with the disclosed indexes: one
// message per index, every options statement at its own position and the required set disclosed.
func consistentDisclosure(messages *MessageSet, disclosed, required IndexSet) bool {
	if len(disclosed) != messages.Len() {
		return false
	}

	for i := 0; i < messages.ProofN(); i++ {
		if disclosed[i] != i {
			return false
		}
	}

	return IsSubset(required, disclosed)
}

func singleCredential(presentation map[string]interface{}) (map[string]interface{}, error) {
	raw := presentation[vcKey]

	if list, ok := raw.([]interface{}); ok {
		if len(list) != 1 {
			return nil, fmt.Errorf("%w: expected one verifiable credential, got %d", ErrTransformation, len(list))
		}

		raw = list[0]
	}

	credential, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: verifiable credential must be a JSON object", ErrTransformation)
	}

	return maphelpers.CopyMap(credential), nil
}

// compile-time check that the primitive implementation satisfies the suite contract.
var _ Primitives = (*bbs12381g2pub.BBSG2Pub)(nil)
