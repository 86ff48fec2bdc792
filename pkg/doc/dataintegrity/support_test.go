/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataintegrity

import (
	"errors"

	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/models"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/suite"
)

const mockSuiteType = "mock-suite-2023"

var errExpected = errors.New("expected error")

type mockSuite struct {
	CreateProofVal       *models.Proof
	CreateProofErr       error
	ReqCreatedVal        bool
	VerifyProofVal       bool
	VerifyProofErr       error
	VerifyDerivedVal     bool
	VerifyDerivedErr     error
	verifiedDoc          []byte
	verifiedPresentation []byte
	verifiedOpts         *models.ProofOptions
}

type mockSuiteInitializer struct {
	mockSuite *mockSuite
	initErr   error
	typeStr   string
}

func (m *mockSuite) CreateProof([]byte, *models.ProofOptions) (*models.Proof, error) {
	return m.CreateProofVal, m.CreateProofErr
}

func (m *mockSuite) RequiresCreated() bool {
	return m.ReqCreatedVal
}

func (m *mockSuite) VerifyProof(doc []byte, _ *models.Proof, opts *models.ProofOptions) (bool, error) {
	m.verifiedDoc = doc
	m.verifiedOpts = opts

	return m.VerifyProofVal, m.VerifyProofErr
}

func (m *mockSuite) DeriveProof([]byte, *models.DeriveOptions) ([]byte, error) {
	return nil, errExpected
}

func (m *mockSuite) VerifyDerivedProof(presentation []byte, opts *models.ProofOptions) (bool, error) {
	m.verifiedPresentation = presentation
	m.verifiedOpts = opts

	return m.VerifyDerivedVal, m.VerifyDerivedErr
}

func (m *mockSuiteInitializer) Signer() (suite.Signer, error) {
	return m.mockSuite, m.initErr
}

func (m *mockSuiteInitializer) Verifier() (suite.Verifier, error) {
	return m.mockSuite, m.initErr
}

func (m *mockSuiteInitializer) Type() string {
	return m.typeStr
}

type baseOnlySuite struct{}

func (baseOnlySuite) VerifyProof([]byte, *models.Proof, *models.ProofOptions) (bool, error) {
	return true, nil
}

func (baseOnlySuite) RequiresCreated() bool {
	return false
}

type baseOnlyInitializer struct{}

func (baseOnlyInitializer) Verifier() (suite.Verifier, error) {
	return baseOnlySuite{}, nil
}

func (baseOnlyInitializer) Type() string {
	return mockSuiteType
}
