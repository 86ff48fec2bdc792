/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/command"
	cmdbbs "github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/bbs2023"
	"github.com/hyperledger/aries-bbs2023-go/pkg/kms/localbbs"
)

const credential = `{
  "@context": ["https://www.w3.org/ns/credentials/v2"],
  "id": "urn:uuid:0c07c1ce-57cb-41af-bef2-1b932b986873",
  "type": ["VerifiableCredential"],
  "issuer": "https://issuer.example",
  "validFrom": "2024-01-01T00:00:00Z",
  "credentialSubject": {
    "id": "did:example:holder",
    "name": "Pat Smith",
    "birthDate": "1990-05-05"
  }
}`

func newRouter(t *testing.T, op *Operation) *mux.Router {
	t.Helper()

	router := mux.NewRouter()

	for _, h := range op.GetRESTHandlers() {
		router.HandleFunc(h.Path(), h.Handle()).Methods(h.Method())
	}

	return router
}

func post(t *testing.T, router http.Handler, path string, body interface{}, response interface{}) int {
	t.Helper()

	reqBytes, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(reqBytes))
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if response != nil {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), response))
	}

	return rr.Code
}

func TestOperation(t *testing.T) {
	keys := localbbs.New()

	keyPair, err := keys.Create(nil)
	require.NoError(t, err)

	op, err := New(keys)
	require.NoError(t, err)
	require.Len(t, op.GetRESTHandlers(), 4)

	router := newRouter(t, op)

	var issued cmdbbs.IssueResponse

	require.Equal(t, http.StatusOK, post(t, router, IssuePath, &cmdbbs.IssueRequest{
		Credential:          json.RawMessage(credential),
		VerificationMethod:  keyPair.VerificationMethod,
		MandatorySelections: []string{"$.issuer"},
	}, &issued))

	var verifiedCredential cmdbbs.VerifyResponse

	require.Equal(t, http.StatusOK, post(t, router, VerifyCredentialPath, &cmdbbs.VerifyCredentialRequest{
		Credential: issued.Credential,
	}, &verifiedCredential))
	require.True(t, verifiedCredential.Verified)

	var presented cmdbbs.PresentResponse

	require.Equal(t, http.StatusOK, post(t, router, PresentPath, &cmdbbs.PresentRequest{
		Credential: issued.Credential,
		Selections: []string{"$.credentialSubject.name"},
		Domain:     "rp.example",
	}, &presented))
	require.NotContains(t, string(presented.Presentation), "1990-05-05")

	var verified cmdbbs.VerifyResponse

	require.Equal(t, http.StatusOK, post(t, router, VerifyPath, &cmdbbs.VerifyRequest{
		Presentation: presented.Presentation,
		Domain:       "rp.example",
	}, &verified))
	require.True(t, verified.Verified)

	t.Run("validation error is a bad request", func(t *testing.T) {
		errBody := map[string]interface{}{}

		require.Equal(t, http.StatusBadRequest, post(t, router, IssuePath, &cmdbbs.IssueRequest{}, &errBody))
		require.EqualValues(t, cmdbbs.InvalidRequestErrorCode, errBody["code"])
	})

	t.Run("execute error is an internal server error", func(t *testing.T) {
		errBody := map[string]interface{}{}

		require.Equal(t, http.StatusInternalServerError, post(t, router, VerifyPath, &cmdbbs.VerifyRequest{
			Presentation: presented.Presentation,
			Domain:       "other.example",
		}, &errBody))
		require.EqualValues(t, cmdbbs.VerifyPresentationErrorCode, errBody["code"])
	})

	t.Run("command failures are forwarded", func(t *testing.T) {
		failing := &Operation{command: &mockCommand{err: command.NewExecuteError(cmdbbs.DeriveProofErrorCode,
			errors.New("derive failed"))}}
		failing.registerHandler()

		errBody := map[string]interface{}{}

		require.Equal(t, http.StatusInternalServerError,
			post(t, newRouter(t, failing), PresentPath, &cmdbbs.PresentRequest{}, &errBody))
		require.Equal(t, "derive failed", errBody["message"])
	})
}

type mockCommand struct {
	err command.Error
}

func (m *mockCommand) Issue(io.Writer, io.Reader) command.Error {
	return m.err
}

func (m *mockCommand) Present(io.Writer, io.Reader) command.Error {
	return m.err
}

func (m *mockCommand) Verify(io.Writer, io.Reader) command.Error {
	return m.err
}

func (m *mockCommand) VerifyCredential(io.Writer, io.Reader) command.Error {
	return m.err
}
