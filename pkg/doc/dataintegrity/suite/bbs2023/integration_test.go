/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	dataintegrity "github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/models"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/suite/bbs2023"
	"github.com/hyperledger/aries-bbs2023-go/pkg/kms/localbbs"
)

const degreeCredential = `{
  "@context": [
    "https://www.w3.org/ns/credentials/v2",
    "https://www.w3.org/ns/credentials/examples/v2"
  ],
  "id": "http://university.example/credentials/3732",
  "type": ["VerifiableCredential", "ExampleDegreeCredential"],
  "issuer": "https://university.example/issuers/565049",
  "validFrom": "2010-01-01T00:00:00Z",
  "credentialSubject": {
    "id": "did:example:ebfeb1f712ebc6f1c276e12ec21",
    "degreeName": "Bachelor of Science and Arts",
    "degreeType": "BachelorDegree",
    "alumniOf": "Example University"
  }
}`

func TestDataIntegrityEnvelope(t *testing.T) {
	keys := localbbs.New()

	keyPair, err := keys.Create(bytes.Repeat([]byte{1}, 32))
	require.NoError(t, err)

	signer, err := dataintegrity.NewSigner(bbs2023.NewSignerInitializer(bbs2023.WithKeyManager(keys)))
	require.NoError(t, err)

	verifier, err := dataintegrity.NewVerifier(bbs2023.NewVerifierInitializer())
	require.NoError(t, err)

	signed, err := signer.AddProof([]byte(degreeCredential), &models.ProofOptions{
		SuiteType:            bbs2023.SuiteType,
		VerificationMethodID: keyPair.VerificationMethod,
		Purpose:              models.AssertionMethod,
		MandatorySelections:  []string{"$.issuer", "$.credentialSubject.alumniOf"},
	})
	require.NoError(t, err)

	valid, err := verifier.VerifyProof(signed, &models.ProofOptions{Purpose: models.AssertionMethod})
	require.NoError(t, err)
	require.True(t, valid)

	_, err = verifier.VerifyProof(signed, &models.ProofOptions{Purpose: models.Authentication})
	require.ErrorIs(t, err, dataintegrity.ErrMismatchedPurpose)

	holder, err := bbs2023.New()
	require.NoError(t, err)

	presentation, err := holder.DeriveProof(signed, &models.DeriveOptions{
		Selections: []string{"$.credentialSubject.degreeName"},
		Challenge:  "0e7a2b4c",
		Domain:     "verifier.example",
	})
	require.NoError(t, err)
	require.Contains(t, string(presentation), "Bachelor of Science and Arts")
	require.Contains(t, string(presentation), "Example University")
	require.NotContains(t, string(presentation), "BachelorDegree")

	valid, err = verifier.VerifyPresentation(presentation, &models.ProofOptions{
		Challenge: "0e7a2b4c",
		Domain:    "verifier.example",
	})
	require.NoError(t, err)
	require.True(t, valid)

	_, err = verifier.VerifyPresentation(presentation, &models.ProofOptions{Challenge: "replayed"})
	require.ErrorIs(t, err, dataintegrity.ErrInvalidChallenge)

	_, err = verifier.VerifyPresentation(presentation, &models.ProofOptions{Domain: "other.example"})
	require.ErrorIs(t, err, dataintegrity.ErrInvalidDomain)

	_, err = signer.AddProof(signed, &models.ProofOptions{
		SuiteType:            bbs2023.SuiteType,
		VerificationMethodID: keyPair.VerificationMethod,
	})
	require.ErrorIs(t, err, dataintegrity.ErrProofGeneration)
}
