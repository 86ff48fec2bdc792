/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/models"
)

// DeriveProof derives a presentation from a credential secured with a bbs-2023 base proof. The
// presentation reveals every proof options statement, the required reveal statements and the
// statements selected by opts. The base signature is checked before anything is derived.
func (s *Suite) DeriveProof(signedCredential []byte, opts *models.DeriveOptions) ([]byte, error) {
	if opts == nil {
		opts = &models.DeriveOptions{}
	}

	docMap, err := parseDocument(signedCredential)
	if err != nil {
		return nil, err
	}

	unsecured, baseProof, err := splitProof(docMap)
	if err != nil {
		return nil, err
	}

	messages, err := s.assemble(unsecured, baseProof)
	if err != nil {
		return nil, err
	}

	required := IndexSet(baseProof.RequiredRevealStatements)

	if err = ValidateIndexes(required, messages.Len()); err != nil {
		return nil, err
	}

	header, err := s.headers.Header(required)
	if err != nil {
		return nil, err
	}

	signature, err := decodeProofValue(baseProof.ProofValue)
	if err != nil {
		return nil, err
	}

	pubKey, err := s.publicKey(baseProof.VerificationMethod)
	if err != nil {
		return nil, err
	}

	scalars, err := s.scalars(messages.Bytes())
	if err != nil {
		return nil, err
	}

	gens, err := s.generators(messages.Len())
	if err != nil {
		return nil, err
	}

	valid, err := s.primitives.Verify(pubKey, signature, header, scalars, gens)
	if err != nil {
		return nil, fmt.Errorf("%w: verify base signature: %w", ErrPrimitive, err)
	}

	if !valid {
		return nil, ErrInvalidBaseProof
	}

	holderFrame, err := buildFrame(unsecured, opts.Frame, opts.Selections)
	if err != nil {
		return nil, err
	}

	selective, err := s.selectStatements(unsecured[ldCtxKey], messages, holderFrame)
	if err != nil {
		return nil, err
	}

	disclosed := MergeIndexes(messages.OptionIndexes(), required, selective)

	presentationProof := s.presentationProof(baseProof, opts)

	ph, err := s.canonicalBytes(presentationProof.Options(unsecured[ldCtxKey]))
	if err != nil {
		return nil, err
	}

	proofBytes, err := s.primitives.ProofGen(pubKey, signature, header, ph, scalars, disclosed, gens)
	if err != nil {
		return nil, fmt.Errorf("%w: derive proof: %w", ErrPrimitive, err)
	}

	presentationProof.ProofValue, err = encodeProofValue(proofBytes)
	if err != nil {
		return nil, err
	}

	presentationProof.DisclosedIndexes = disclosed

	if len(required) > 0 {
		presentationProof.RequiredRevealStatements = required
	}

	revealed, err := s.revealedCredential(unsecured, messages, disclosed, baseProof)
	if err != nil {
		return nil, err
	}

	logger.Debugf("derived proof disclosing %d of %d messages", len(disclosed), messages.Len())

	presentation := map[string]interface{}{
		ldCtxKey: unsecured[ldCtxKey],
		typeKey:  []interface{}{vpType},
		vcKey:    []interface{}{revealed},
		proofKey: presentationProof,
	}

	out, err := json.Marshal(presentation)
	if err != nil {
		return nil, fmt.Errorf("marshal presentation: %w", err)
	}

	return out, nil
}

func (s *Suite) presentationProof(baseProof *models.Proof, opts *models.DeriveOptions) *models.Proof {
	created := opts.Created
	if created.IsZero() {
		created = s.now()
	}

	return &models.Proof{
		Type:               models.DataIntegrityProof,
		CryptoSuite:        SuiteType,
		ProofPurpose:       baseProof.ProofPurpose,
		VerificationMethod: baseProof.VerificationMethod,
		Created:            created.UTC().Format(models.DateTimeFormat),
		Challenge:          opts.Challenge,
		Domain:             opts.Domain,
	}
}

// revealedCredential rebuilds the credential from the disclosed document statements and attaches the
// base proof options, without the signature, so that a verifier can rebuild the options statements.
func (s *Suite) revealedCredential(unsecured map[string]interface{}, messages *MessageSet, disclosed IndexSet,
	baseProof *models.Proof) (map[string]interface{}, error) {
	var documentIndexes IndexSet

	for _, idx := range disclosed {
		if idx >= messages.ProofN() {
			documentIndexes = append(documentIndexes, idx)
		}
	}

	statements, err := messages.Select(documentIndexes)
	if err != nil {
		return nil, err
	}

	revealed := map[string]interface{}{}

	if len(statements) > 0 {
		revealed, err = s.rebuild(statements, unsecured[ldCtxKey], messages.DocumentStatements())
		if err != nil {
			return nil, err
		}
	}

	revealed[ldCtxKey] = unsecured[ldCtxKey]

	baseOptions := baseProof.Options(nil)
	delete(baseOptions, ldCtxKey)

	revealed[proofKey] = baseOptions

	return revealed, nil
}

// rebuild turns the disclosed statements back into a document that canonicalizes to exactly those
// statements. The document is nested under the root node of the credential when possible.
func (s *Suite) rebuild(statements QuadSequence, ctx interface{},
	all QuadSequence) (map[string]interface{}, error) {
	flat, err := s.labelBlankNodes(statements, ctx)
	if err != nil {
		return nil, err
	}

	if root, ok := rootNode(all); ok {
		nested, err := s.proc.Frame(flat, map[string]interface{}{ldCtxKey: ctx, "@id": root}, s.loaderOpt())
		if err == nil && s.reproduces(nested, statements) {
			return nested, nil
		}

		logger.Debugf("revealed credential is not nested under %s", root)
	}

	if !s.reproduces(flat, statements) {
		return nil, fmt.Errorf("%w: disclosed statements do not round trip through the revealed credential",
			ErrTransformation)
	}

	return flat, nil
}

func (s *Suite) reproduces(doc map[string]interface{}, statements QuadSequence) bool {
	got, err := s.documentStatements(doc)
	if err != nil {
		return false
	}

	return slices.Equal(got, statements)
}
