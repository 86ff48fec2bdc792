/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/models"
)

// CreateProof signs doc and returns the base proof. The statements selected by opts.MandatoryFrame
// or opts.MandatorySelections become the required reveal statements of the proof.
func (s *Suite) CreateProof(doc []byte, opts *models.ProofOptions) (*models.Proof, error) {
	if err := checkProofOptions(opts); err != nil {
		return nil, err
	}

	docMap, err := parseDocument(doc)
	if err != nil {
		return nil, err
	}

	if _, ok := docMap[proofKey]; ok {
		return nil, fmt.Errorf("%w: document already has a proof", ErrTransformation)
	}

	mandatoryFrame, err := buildFrame(docMap, opts.MandatoryFrame, opts.MandatorySelections)
	if err != nil {
		return nil, err
	}

	if mandatoryFrame != nil && s.headers.Mode() == HeaderModeNone {
		return nil, ErrMandatoryDisclosureDisabled
	}

	if s.keys == nil {
		return nil, fmt.Errorf("%w: no key manager", ErrMissingKey)
	}

	created := opts.Created
	if created.IsZero() {
		created = s.now()
	}

	proof := &models.Proof{
		Type:               models.DataIntegrityProof,
		CryptoSuite:        SuiteType,
		ProofPurpose:       opts.Purpose,
		VerificationMethod: opts.VerificationMethodID,
		Created:            created.UTC().Format(models.DateTimeFormat),
		Domain:             opts.Domain,
		Challenge:          opts.Challenge,
	}

	if proof.ProofPurpose == "" {
		proof.ProofPurpose = models.AssertionMethod
	}

	messages, err := s.assemble(docMap, proof)
	if err != nil {
		return nil, err
	}

	required, err := s.selectStatements(docMap[ldCtxKey], messages, mandatoryFrame)
	if err != nil {
		return nil, err
	}

	header, err := s.headers.Header(required)
	if err != nil {
		return nil, err
	}

	signature, err := s.sign(proof.VerificationMethod, header, messages)
	if err != nil {
		return nil, err
	}

	proof.ProofValue, err = encodeProofValue(signature)
	if err != nil {
		return nil, err
	}

	if len(required) > 0 {
		proof.RequiredRevealStatements = required
	}

	logger.Debugf("created base proof over %d messages with %d required", messages.Len(), len(required))

	return proof, nil
}

// Issue signs doc and returns it with the base proof attached.
func (s *Suite) Issue(doc []byte, opts *models.ProofOptions) ([]byte, error) {
	proof, err := s.CreateProof(doc, opts)
	if err != nil {
		return nil, err
	}

	proofRaw, err := json.Marshal(proof)
	if err != nil {
		return nil, fmt.Errorf("marshal proof: %w", err)
	}

	signed, err := sjson.SetRawBytes(doc, proofKey, proofRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: attach proof: %w", ErrTransformation, err)
	}

	return signed, nil
}

func (s *Suite) sign(verificationMethod string, header []byte, messages *MessageSet) ([]byte, error) {
	privKey, err := s.keys.PrivateKey(verificationMethod)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingKey, verificationMethod, err)
	}

	pubKey, err := s.primitives.PublicFromPrivate(privKey)
	if err != nil {
		return nil, fmt.Errorf("%w: derive public key: %w", ErrPrimitive, err)
	}

	scalars, err := s.scalars(messages.Bytes())
	if err != nil {
		return nil, err
	}

	gens, err := s.generators(messages.Len())
	if err != nil {
		return nil, err
	}

	signature, err := s.primitives.Sign(privKey, pubKey, header, scalars, gens)
	if err != nil {
		return nil, fmt.Errorf("%w: sign: %w", ErrPrimitive, err)
	}

	return signature, nil
}

func checkProofOptions(opts *models.ProofOptions) error {
	if opts == nil {
		return fmt.Errorf("%w: proof options are required", ErrTransformation)
	}

	if opts.SuiteType != "" && opts.SuiteType != SuiteType {
		return fmt.Errorf("%w: unsupported cryptosuite %q", ErrTransformation, opts.SuiteType)
	}

	if opts.ProofType != "" && opts.ProofType != models.DataIntegrityProof {
		return fmt.Errorf("%w: unsupported proof type %q", ErrTransformation, opts.ProofType)
	}

	if opts.VerificationMethodID == "" {
		return fmt.Errorf("%w: verification method is required", ErrTransformation)
	}

	return nil
}
