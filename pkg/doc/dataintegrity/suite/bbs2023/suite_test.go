/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"bytes"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"golang.org/x/exp/slices"

	"github.com/hyperledger/aries-bbs2023-go/pkg/crypto/primitive/bbs12381g2pub"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/models"
	"github.com/hyperledger/aries-bbs2023-go/pkg/kms/localbbs"
)

const addressCredential = `{
  "@context": ["https://www.w3.org/ns/credentials/v2"],
  "type": ["VerifiableCredential"],
  "issuer": "https://vc.example/issuers/5678",
  "validFrom": "2023-01-01T00:00:00Z",
  "credentialSubject": {
    "jobTitle": "Engineer",
    "email": "alice@example.com",
    "address": {
      "streetAddress": "12 Main Street",
      "postalCode": "90210"
    }
  }
}`

const employeeCredential = `{
  "@context": ["https://www.w3.org/ns/credentials/v2"],
  "id": "urn:uuid:4a1a7a1e-3c1f-4b7e-9d6a-6d2f0f7a9b10",
  "type": ["VerifiableCredential"],
  "issuer": "https://vc.example/issuers/5678",
  "validFrom": "2023-01-01T00:00:00Z",
  "credentialSubject": {
    "id": "did:example:abcdefgh",
    "jobTitle": "Engineer",
    "email": "alice@example.com",
    "employer": "Example Corp"
  }
}`

// nolint:gochecknoglobals
var (
	testSeed    = bytes.Repeat([]byte{7}, 32)
	testCreated = time.Date(2023, 8, 15, 23, 36, 38, 0, time.UTC)
)

func newTestSuite(t *testing.T, opts ...Opt) (*Suite, *localbbs.KeyPair) {
	t.Helper()

	keys := localbbs.New()

	keyPair, err := keys.Create(testSeed)
	require.NoError(t, err)

	s, err := New(append([]Opt{
		WithKeyManager(keys),
		WithClock(func() time.Time { return testCreated }),
	}, opts...)...)
	require.NoError(t, err)

	return s, keyPair
}

func issueEmployeeCredential(t *testing.T, s *Suite, vm string, selections ...string) []byte {
	t.Helper()

	signed, err := s.Issue([]byte(employeeCredential), &models.ProofOptions{
		VerificationMethodID: vm,
		MandatorySelections:  selections,
	})
	require.NoError(t, err)

	return signed
}

func indexesAt(t *testing.T, doc []byte, path string) IndexSet {
	t.Helper()

	indexes := IndexSet{}

	for _, v := range gjson.GetBytes(doc, path).Array() {
		indexes = append(indexes, int(v.Int()))
	}

	return indexes
}

func TestSuite_IssueAndVerifyBaseProof(t *testing.T) {
	s, keyPair := newTestSuite(t)

	signed := issueEmployeeCredential(t, s, keyPair.VerificationMethod, "$.issuer", "$.validFrom")

	docMap, err := parseDocument(signed)
	require.NoError(t, err)

	proof, err := models.ParseProof(docMap[proofKey])
	require.NoError(t, err)

	require.Equal(t, models.DataIntegrityProof, proof.Type)
	require.Equal(t, SuiteType, proof.CryptoSuite)
	require.Equal(t, models.AssertionMethod, proof.ProofPurpose)
	require.Equal(t, keyPair.VerificationMethod, proof.VerificationMethod)
	require.Equal(t, "2023-08-15T23:36:38Z", proof.Created)
	require.Equal(t, byte('z'), proof.ProofValue[0])
	require.NotEmpty(t, proof.RequiredRevealStatements)
	require.True(t, sort.IntsAreSorted(proof.RequiredRevealStatements))

	signature, err := decodeProofValue(proof.ProofValue)
	require.NoError(t, err)
	require.Len(t, signature, 112)

	valid, err := s.VerifyProof(signed, proof, nil)
	require.NoError(t, err)
	require.True(t, valid)

	t.Run("issuance is deterministic", func(t *testing.T) {
		again := issueEmployeeCredential(t, s, keyPair.VerificationMethod, "$.issuer", "$.validFrom")
		require.Equal(t, signed, again)
	})

	t.Run("altered document", func(t *testing.T) {
		tampered := bytes.Replace(signed, []byte("Engineer"), []byte("Manager"), 1)

		valid, err := s.VerifyProof(tampered, proof, nil)
		require.NoError(t, err)
		require.False(t, valid)
	})

	t.Run("altered required set", func(t *testing.T) {
		altered := *proof
		altered.RequiredRevealStatements = proof.RequiredRevealStatements[1:]

		valid, err := s.VerifyProof(signed, &altered, nil)
		require.NoError(t, err)
		require.False(t, valid)
	})

	t.Run("required index out of range", func(t *testing.T) {
		altered := *proof
		altered.RequiredRevealStatements = []int{1000}

		_, err := s.VerifyProof(signed, &altered, nil)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("altered proof options", func(t *testing.T) {
		altered := *proof
		altered.Created = "2024-01-01T00:00:00Z"

		valid, err := s.VerifyProof(signed, &altered, nil)
		require.NoError(t, err)
		require.False(t, valid)
	})

	t.Run("missing proof", func(t *testing.T) {
		_, err := s.VerifyProof(signed, nil, nil)
		require.ErrorIs(t, err, ErrTransformation)
	})
}

func TestSuite_CreateProofErrors(t *testing.T) {
	s, keyPair := newTestSuite(t)
	vm := keyPair.VerificationMethod

	tests := []struct {
		name    string
		suite   *Suite
		doc     string
		opts    *models.ProofOptions
		wantErr error
	}{
		{name: "nil options", opts: nil, wantErr: ErrTransformation},
		{
			name:    "missing verification method",
			opts:    &models.ProofOptions{},
			wantErr: ErrTransformation,
		},
		{
			name:    "other cryptosuite",
			opts:    &models.ProofOptions{VerificationMethodID: vm, SuiteType: "ecdsa-sd-2023"},
			wantErr: ErrTransformation,
		},
		{
			name:    "other proof type",
			opts:    &models.ProofOptions{VerificationMethodID: vm, ProofType: "Ed25519Signature2020"},
			wantErr: ErrTransformation,
		},
		{
			name:    "not JSON",
			doc:     "not json",
			opts:    &models.ProofOptions{VerificationMethodID: vm},
			wantErr: ErrTransformation,
		},
		{
			name:    "invalid selection",
			opts:    &models.ProofOptions{VerificationMethodID: vm, MandatorySelections: []string{"$..issuer"}},
			wantErr: ErrTransformation,
		},
		{
			name: "frame and selections",
			opts: &models.ProofOptions{
				VerificationMethodID: vm,
				MandatoryFrame:       map[string]interface{}{},
				MandatorySelections:  []string{"$.issuer"},
			},
			wantErr: ErrTransformation,
		},
		{
			name:    "unknown key",
			opts:    &models.ProofOptions{VerificationMethodID: "did:example:other#key-1"},
			wantErr: ErrMissingKey,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := tc.doc
			if doc == "" {
				doc = employeeCredential
			}

			_, err := s.CreateProof([]byte(doc), tc.opts)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("already secured", func(t *testing.T) {
		signed := issueEmployeeCredential(t, s, vm)

		_, err := s.Issue(signed, &models.ProofOptions{VerificationMethodID: vm})
		require.ErrorIs(t, err, ErrTransformation)
	})

	t.Run("no key manager", func(t *testing.T) {
		withoutKeys, err := New()
		require.NoError(t, err)

		_, err = withoutKeys.CreateProof([]byte(employeeCredential), &models.ProofOptions{VerificationMethodID: vm})
		require.ErrorIs(t, err, ErrMissingKey)
	})
}

func TestSuite_DeriveAndVerify(t *testing.T) {
	s, keyPair := newTestSuite(t)

	signed := issueEmployeeCredential(t, s, keyPair.VerificationMethod, "$.issuer", "$.validFrom")
	required := indexesAt(t, signed, "proof.requiredRevealStatements")

	presentation, err := s.DeriveProof(signed, &models.DeriveOptions{
		Selections: []string{"$.credentialSubject.jobTitle"},
		Challenge:  "1f44ff55-6f3e-4b3a-8e20-3b8d4f8b1a2c",
		Domain:     "verifier.example",
	})
	require.NoError(t, err)

	require.Contains(t, string(presentation), "Engineer")
	require.Contains(t, string(presentation), "https://vc.example/issuers/5678")
	require.NotContains(t, string(presentation), "alice@example.com")
	require.NotContains(t, string(presentation), "Example Corp")

	require.Equal(t, "Engineer",
		gjson.GetBytes(presentation, "verifiableCredential.0.credentialSubject.jobTitle").String())
	require.Equal(t, "VerifiablePresentation", gjson.GetBytes(presentation, "type.0").String())
	require.Equal(t, SuiteType, gjson.GetBytes(presentation, "proof.cryptosuite").String())
	require.Equal(t, keyPair.VerificationMethod, gjson.GetBytes(presentation, "proof.verificationMethod").String())
	require.False(t, gjson.GetBytes(presentation, "verifiableCredential.0.proof.proofValue").Exists())
	require.Equal(t, required, indexesAt(t, presentation, "proof.requiredRevealStatements"))

	disclosed := indexesAt(t, presentation, "proof.disclosedIndexes")
	require.True(t, sort.IntsAreSorted(disclosed))
	require.True(t, IsSubset(required, disclosed))
	require.Equal(t, 0, disclosed[0])

	proofBytes, err := decodeProofValue(gjson.GetBytes(presentation, "proof.proofValue").String())
	require.NoError(t, err)

	undisclosed, err := bbs12381g2pub.New().NumUndisclosed(proofBytes)
	require.NoError(t, err)
	require.Equal(t, 2, undisclosed)

	valid, err := s.VerifyDerivedProof(presentation, nil)
	require.NoError(t, err)
	require.True(t, valid)

	t.Run("verifier with its own suite instance", func(t *testing.T) {
		verifier, err := New()
		require.NoError(t, err)

		valid, err := verifier.VerifyDerivedProof(presentation, nil)
		require.NoError(t, err)
		require.True(t, valid)
	})

	t.Run("presentations are unlinkable", func(t *testing.T) {
		other, err := s.DeriveProof(signed, &models.DeriveOptions{
			Selections: []string{"$.credentialSubject.jobTitle"},
			Challenge:  "1f44ff55-6f3e-4b3a-8e20-3b8d4f8b1a2c",
			Domain:     "verifier.example",
		})
		require.NoError(t, err)
		require.NotEqual(t,
			gjson.GetBytes(presentation, "proof.proofValue").String(),
			gjson.GetBytes(other, "proof.proofValue").String())
		require.Equal(t, disclosed, indexesAt(t, other, "proof.disclosedIndexes"))
	})

	notDisclosed := -1

	for i := 0; notDisclosed < 0; i++ {
		if !slices.Contains(disclosed, i) {
			notDisclosed = i
		}
	}

	t.Run("tampered presentations", func(t *testing.T) {
		extended := append(IndexSet{notDisclosed}, disclosed...)
		sort.Ints(extended)

		swapped := append(IndexSet{}, disclosed...)
		last := len(swapped) - 1
		swapped[last], swapped[last-1] = swapped[last-1], swapped[last]

		outOfRange := append(IndexSet{}, disclosed...)
		outOfRange[last] = 1000

		tests := []struct {
			name    string
			path    string
			value   interface{}
			replace [2]string
			wantErr error
		}{
			{name: "required set without one index", path: "proof.requiredRevealStatements", value: required[1:]},
			{name: "revealed value", replace: [2]string{"Engineer", "Manager"}},
			{name: "challenge", path: "proof.challenge", value: "another challenge"},
			{name: "domain", path: "proof.domain", value: "other.example"},
			{name: "presentation created", path: "proof.created", value: "2030-01-01T00:00:00Z"},
			{name: "base options", path: "verifiableCredential.0.proof.created", value: "2030-01-01T00:00:00Z"},
			{name: "verification method", path: "proof.verificationMethod", value: "did:example:other#key-1"},
			{name: "extra disclosed index", path: "proof.disclosedIndexes", value: extended},
			{
				name: "unsorted disclosed indexes", path: "proof.disclosedIndexes", value: swapped,
				wantErr: ErrMalformedIndexes,
			},
			{
				name: "disclosed index out of range", path: "proof.disclosedIndexes", value: outOfRange,
				wantErr: ErrIndexOutOfRange,
			},
			{
				name: "required index out of range", path: "proof.requiredRevealStatements", value: []int{1000},
				wantErr: ErrIndexOutOfRange,
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				tampered := presentation

				if tc.path != "" {
					tampered, err = sjson.SetBytes(presentation, tc.path, tc.value)
					require.NoError(t, err)
				} else {
					tampered = bytes.Replace(presentation, []byte(tc.replace[0]), []byte(tc.replace[1]), -1)
				}

				valid, err := s.VerifyDerivedProof(tampered, nil)
				if tc.wantErr != nil {
					require.ErrorIs(t, err, tc.wantErr)

					return
				}

				require.NoError(t, err)
				require.False(t, valid)
			})
		}
	})

	t.Run("required statement missing from revealed credential", func(t *testing.T) {
		tampered, err := sjson.SetBytes(presentation, "proof.requiredRevealStatements",
			MergeIndexes(required, IndexSet{notDisclosed}))
		require.NoError(t, err)

		valid, err := s.VerifyDerivedProof(tampered, nil)
		require.NoError(t, err)
		require.False(t, valid)
	})

	t.Run("malformed presentations", func(t *testing.T) {
		twoCredentials, err := sjson.SetRawBytes(presentation, "verifiableCredential.-1",
			[]byte(gjson.GetBytes(presentation, "verifiableCredential.0").Raw))
		require.NoError(t, err)

		withoutProof, err := sjson.DeleteBytes(presentation, "proof")
		require.NoError(t, err)

		badProofValue, err := sjson.SetBytes(presentation, "proof.proofValue", "zAAAA")
		require.NoError(t, err)

		for _, doc := range [][]byte{[]byte("{"), twoCredentials, withoutProof, badProofValue} {
			valid, err := s.VerifyDerivedProof(doc, nil)
			require.Error(t, err)
			require.False(t, valid)
		}
	})
}

func TestSuite_DeriveVariants(t *testing.T) {
	s, keyPair := newTestSuite(t)

	signed := issueEmployeeCredential(t, s, keyPair.VerificationMethod, "$.issuer")

	tests := []struct {
		name        string
		opts        *models.DeriveOptions
		undisclosed int
		revealed    []string
		hidden      []string
	}{
		{
			name:        "required statements only",
			opts:        nil,
			undisclosed: 5,
			revealed:    []string{"https://vc.example/issuers/5678"},
			hidden:      []string{"Engineer", "alice@example.com"},
		},
		{
			name: "explicit frame",
			opts: &models.DeriveOptions{Frame: map[string]interface{}{
				"@context":  []interface{}{"https://www.w3.org/ns/credentials/v2"},
				"type":      "VerifiableCredential",
				"@explicit": true,
				"credentialSubject": map[string]interface{}{
					"@explicit": true,
					"email":     map[string]interface{}{},
				},
			}},
			undisclosed: 3,
			revealed:    []string{"alice@example.com"},
			hidden:      []string{"Engineer", "Example Corp"},
		},
		{
			name:        "whole subject",
			opts:        &models.DeriveOptions{Selections: []string{"$.credentialSubject"}},
			undisclosed: 1,
			revealed:    []string{"alice@example.com", "Engineer", "Example Corp"},
			hidden:      []string{"2023-01-01T00:00:00Z"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			presentation, err := s.DeriveProof(signed, tc.opts)
			require.NoError(t, err)

			for _, value := range tc.revealed {
				require.Contains(t, string(presentation), value)
			}

			for _, value := range tc.hidden {
				require.NotContains(t, string(presentation), value)
			}

			proofBytes, err := decodeProofValue(gjson.GetBytes(presentation, "proof.proofValue").String())
			require.NoError(t, err)

			undisclosed, err := bbs12381g2pub.New().NumUndisclosed(proofBytes)
			require.NoError(t, err)
			require.Equal(t, tc.undisclosed, undisclosed)

			valid, err := s.VerifyDerivedProof(presentation, nil)
			require.NoError(t, err)
			require.True(t, valid)
		})
	}

	t.Run("tampered credential", func(t *testing.T) {
		tampered := bytes.Replace(signed, []byte("Engineer"), []byte("Manager"), 1)

		_, err := s.DeriveProof(tampered, nil)
		require.ErrorIs(t, err, ErrInvalidBaseProof)
	})

	t.Run("frame and selections", func(t *testing.T) {
		_, err := s.DeriveProof(signed, &models.DeriveOptions{
			Frame:      map[string]interface{}{},
			Selections: []string{"$.credentialSubject"},
		})
		require.ErrorIs(t, err, ErrTransformation)
	})

	t.Run("unsecured credential", func(t *testing.T) {
		_, err := s.DeriveProof([]byte(employeeCredential), nil)
		require.ErrorIs(t, err, ErrTransformation)
	})

	t.Run("selection not in credential", func(t *testing.T) {
		_, err := s.DeriveProof(signed, &models.DeriveOptions{Selections: []string{"$.credentialSubject.age"}})
		require.ErrorIs(t, err, ErrTransformation)
	})
}

func TestSuite_HeaderModeNone(t *testing.T) {
	s, keyPair := newTestSuite(t, WithHeaderMode(HeaderModeNone))
	require.Equal(t, HeaderModeNone, s.HeaderMode())

	_, err := s.CreateProof([]byte(employeeCredential), &models.ProofOptions{
		VerificationMethodID: keyPair.VerificationMethod,
		MandatorySelections:  []string{"$.issuer"},
	})
	require.ErrorIs(t, err, ErrMandatoryDisclosureDisabled)

	signed := issueEmployeeCredential(t, s, keyPair.VerificationMethod)
	require.False(t, gjson.GetBytes(signed, "proof.requiredRevealStatements").Exists())

	presentation, err := s.DeriveProof(signed, &models.DeriveOptions{
		Selections: []string{"$.credentialSubject.jobTitle"},
	})
	require.NoError(t, err)

	valid, err := s.VerifyDerivedProof(presentation, nil)
	require.NoError(t, err)
	require.True(t, valid)

	t.Run("presentation with required statements", func(t *testing.T) {
		mandatory, _ := newTestSuite(t)

		signedMandatory := issueEmployeeCredential(t, mandatory, keyPair.VerificationMethod, "$.issuer")

		presentation, err := mandatory.DeriveProof(signedMandatory, nil)
		require.NoError(t, err)

		_, err = s.VerifyDerivedProof(presentation, nil)
		require.ErrorIs(t, err, ErrMandatoryDisclosureDisabled)
	})

	t.Run("mandatory verifier rejects empty header signature", func(t *testing.T) {
		mandatory, _ := newTestSuite(t)

		valid, err := mandatory.VerifyDerivedProof(presentation, nil)
		require.NoError(t, err)
		require.False(t, valid)
	})
}

func TestSuite_ConcurrentUse(t *testing.T) {
	s, keyPair := newTestSuite(t)

	signed := issueEmployeeCredential(t, s, keyPair.VerificationMethod, "$.issuer")

	const workers = 4

	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			presentation, err := s.DeriveProof(signed, &models.DeriveOptions{
				Selections: []string{"$.credentialSubject.jobTitle"},
			})
			if err != nil {
				results <- err

				return
			}

			valid, err := s.VerifyDerivedProof(presentation, nil)
			if err == nil && !valid {
				err = ErrInvalidBaseProof
			}

			results <- err
		}()
	}

	for i := 0; i < workers; i++ {
		require.NoError(t, <-results)
	}
}

func TestSingleCredential(t *testing.T) {
	credential := map[string]interface{}{"id": "urn:uuid:1"}

	got, err := singleCredential(map[string]interface{}{vcKey: credential})
	require.NoError(t, err)
	require.Equal(t, credential, got)

	got["id"] = "changed"
	require.Equal(t, "urn:uuid:1", credential["id"])

	_, err = singleCredential(map[string]interface{}{vcKey: []interface{}{}})
	require.ErrorIs(t, err, ErrTransformation)

	_, err = singleCredential(map[string]interface{}{vcKey: "urn:uuid:1"})
	require.ErrorIs(t, err, ErrTransformation)

	raw, err := json.Marshal(map[string]interface{}{vcKey: []interface{}{credential}})
	require.NoError(t, err)

	parsed, err := parseDocument(raw)
	require.NoError(t, err)

	_, err = singleCredential(parsed)
	require.NoError(t, err)
}

func TestSuite_DeriveWithoutDocumentStatements(t *testing.T) {
	for _, mode := range []HeaderMode{HeaderModeMandatory, HeaderModeNone} {
		t.Run(mode.String(), func(t *testing.T) {
			s, keyPair := newTestSuite(t, WithHeaderMode(mode))

			signed := issueEmployeeCredential(t, s, keyPair.VerificationMethod)

			doc, err := parseDocument([]byte(employeeCredential))
			require.NoError(t, err)

			statements, err := s.canonicalize(doc)
			require.NoError(t, err)

			presentation, err := s.DeriveProof(signed, nil)
			require.NoError(t, err)

			require.NotContains(t, string(presentation), "Engineer")
			require.Equal(t, "https://www.w3.org/ns/credentials/v2",
				gjson.GetBytes(presentation, "verifiableCredential.0.@context.0").String())
			require.False(t, gjson.GetBytes(presentation, "verifiableCredential.0.credentialSubject").Exists())

			proofBytes, err := decodeProofValue(gjson.GetBytes(presentation, "proof.proofValue").String())
			require.NoError(t, err)

			undisclosed, err := bbs12381g2pub.New().NumUndisclosed(proofBytes)
			require.NoError(t, err)
			require.Equal(t, len(statements), undisclosed)

			valid, err := s.VerifyDerivedProof(presentation, nil)
			require.NoError(t, err)
			require.True(t, valid)
		})
	}
}

func TestSuite_BlankNodeCredential(t *testing.T) {
	s, keyPair := newTestSuite(t)

	signed, err := s.Issue([]byte(addressCredential), &models.ProofOptions{
		VerificationMethodID: keyPair.VerificationMethod,
		MandatorySelections:  []string{"$.issuer"},
	})
	require.NoError(t, err)

	tests := []struct {
		name       string
		selections []string
		path       string
		want       string
		hidden     []string
	}{
		{
			name:   "required statements only",
			hidden: []string{"Engineer", "90210", "12 Main Street"},
		},
		{
			name:       "subject property",
			selections: []string{"$.credentialSubject.jobTitle"},
			path:       "verifiableCredential.0.credentialSubject.jobTitle",
			want:       "Engineer",
			hidden:     []string{"alice@example.com", "90210"},
		},
		{
			name:       "nested property",
			selections: []string{"$.credentialSubject.address.postalCode"},
			path:       "verifiableCredential.0.credentialSubject.address.postalCode",
			want:       "90210",
			hidden:     []string{"Engineer", "12 Main Street"},
		},
		{
			name:       "whole nested object",
			selections: []string{"$.credentialSubject.address"},
			path:       "verifiableCredential.0.credentialSubject.address.streetAddress",
			want:       "12 Main Street",
			hidden:     []string{"Engineer", "alice@example.com"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			presentation, err := s.DeriveProof(signed, &models.DeriveOptions{Selections: tc.selections})
			require.NoError(t, err)

			require.Equal(t, "https://vc.example/issuers/5678",
				gjson.GetBytes(presentation, "verifiableCredential.0.issuer").String())

			if tc.path != "" {
				require.Equal(t, tc.want, gjson.GetBytes(presentation, tc.path).String())
			}

			for _, value := range tc.hidden {
				require.NotContains(t, string(presentation), value)
			}

			valid, err := s.VerifyDerivedProof(presentation, nil)
			require.NoError(t, err)
			require.True(t, valid)

			tampered := bytes.Replace(presentation, []byte("vc.example"), []byte("vc.invalid"), -1)

			valid, err = s.VerifyDerivedProof(tampered, nil)
			require.NoError(t, err)
			require.False(t, valid)
		})
	}
}

func TestRootNode(t *testing.T) {
	root, ok := rootNode(QuadSequence{
		`_:c14n0 <https://www.w3.org/2018/credentials#credentialSubject> _:c14n1 .`,
		`_:c14n1 <https://schema.org/jobTitle> "Engineer" .`,
	})
	require.True(t, ok)
	require.Equal(t, "urn:bnid:_:c14n0", root)

	root, ok = rootNode(QuadSequence{
		`<urn:uuid:1> <https://www.w3.org/2018/credentials#issuer> <https://vc.example/issuers/5678> .`,
	})
	require.True(t, ok)
	require.Equal(t, "urn:uuid:1", root)

	_, ok = rootNode(QuadSequence{
		`<urn:a> <https://schema.org/name> "a" .`,
		`<urn:b> <https://schema.org/name> "b" .`,
	})
	require.False(t, ok)

	_, ok = rootNode(nil)
	require.False(t, ok)
}
