/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"fmt"
	"io"
	"net/http"

	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/command"
	cmdbbs "github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/bbs2023"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/internal/cmdutil"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/rest"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/suite/bbs2023"
)

// constants for bbs2023 operations.
const (
	OperationID          = "/bbs2023"
	IssuePath            = OperationID + "/issue"
	PresentPath          = OperationID + "/present"
	VerifyPath           = OperationID + "/verify"
	VerifyCredentialPath = OperationID + "/verify-credential"
)

type bbsCommand interface {
	Issue(rw io.Writer, req io.Reader) command.Error
	Present(rw io.Writer, req io.Reader) command.Error
	Verify(rw io.Writer, req io.Reader) command.Error
	VerifyCredential(rw io.Writer, req io.Reader) command.Error
}

// Operation contains selective disclosure operations provided by controller REST API.
type Operation struct {
	handlers []rest.Handler
	command  bbsCommand
}

// New returns new bbs2023 operations rest client instance.
func New(keys bbs2023.KeyManager, opts ...bbs2023.Opt) (*Operation, error) {
	cmd, err := cmdbbs.New(keys, opts...)
	if err != nil {
		return nil, fmt.Errorf("create bbs2023 command: %w", err)
	}

	o := &Operation{command: cmd}
	o.registerHandler()

	return o, nil
}

// GetRESTHandlers get all controller API handler available for this service.
func (o *Operation) GetRESTHandlers() []rest.Handler {
	return o.handlers
}

// registerHandler register handlers to be exposed from this service as REST API endpoints.
func (o *Operation) registerHandler() {
	o.handlers = []rest.Handler{
		cmdutil.NewHTTPHandler(IssuePath, http.MethodPost, o.Issue),
		cmdutil.NewHTTPHandler(PresentPath, http.MethodPost, o.Present),
		cmdutil.NewHTTPHandler(VerifyPath, http.MethodPost, o.Verify),
		cmdutil.NewHTTPHandler(VerifyCredentialPath, http.MethodPost, o.VerifyCredential),
	}
}

// Issue swagger:route POST /bbs2023/issue bbs2023 issueReq
//
// Signs a credential with a bbs-2023 base proof.
//
// Responses:
//
//	default: genericError
//	    200: issueRes
func (o *Operation) Issue(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.Issue, rw, req.Body)
}

// Present swagger:route POST /bbs2023/present bbs2023 presentReq
//
// Derives a selective disclosure presentation from a signed credential.
//
// Responses:
//
//	default: genericError
//	    200: presentRes
func (o *Operation) Present(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.Present, rw, req.Body)
}

// Verify swagger:route POST /bbs2023/verify bbs2023 verifyReq
//
// Verifies a derived presentation.
//
// Responses:
//
//	default: genericError
//	    200: verifyRes
func (o *Operation) Verify(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.Verify, rw, req.Body)
}

// VerifyCredential swagger:route POST /bbs2023/verify-credential bbs2023 verifyCredentialReq
//
// Verifies the base proof of a signed credential.
//
// Responses:
//
//	default: genericError
//	    200: verifyRes
func (o *Operation) VerifyCredential(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.VerifyCredential, rw, req.Body)
}
