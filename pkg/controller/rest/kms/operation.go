/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"io"
	"net/http"

	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/command"
	cmdkms "github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/kms"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/internal/cmdutil"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/rest"
)

// constants for KMS operations.
const (
	KmsOperationID   = "/bbs2023/keys"
	CreateKeySetPath = KmsOperationID
	ImportKeyPath    = KmsOperationID + "/import"
)

type kmsCommand interface {
	CreateKeySet(rw io.Writer, req io.Reader) command.Error
	ImportKey(rw io.Writer, req io.Reader) command.Error
}

// Operation contains key management operations provided by controller REST API.
type Operation struct {
	handlers []rest.Handler
	command  kmsCommand
}

// New returns new kms operations rest client instance.
func New(keys cmdkms.KeyStore) *Operation {
	o := &Operation{command: cmdkms.New(keys)}
	o.registerHandler()

	return o
}

// GetRESTHandlers get all controller API handler available for this service.
func (o *Operation) GetRESTHandlers() []rest.Handler {
	return o.handlers
}

// registerHandler register handlers to be exposed from this service as REST API endpoints.
func (o *Operation) registerHandler() {
	o.handlers = []rest.Handler{
		cmdutil.NewHTTPHandler(CreateKeySetPath, http.MethodPost, o.CreateKeySet),
		cmdutil.NewHTTPHandler(ImportKeyPath, http.MethodPost, o.ImportKey),
	}
}

// CreateKeySet swagger:route POST /bbs2023/keys kms createKeySet
//
// Creates a BLS12-381 G2 key pair and returns its verification method.
//
// Responses:
//
//	default: genericError
//	    200: createKeySetRes
func (o *Operation) CreateKeySet(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.CreateKeySet, rw, req.Body)
}

// ImportKey swagger:route POST /bbs2023/keys/import kms importKey
//
// Imports a BLS12-381 private key.
//
// Responses:
//
//	default: genericError
//	    200: createKeySetRes
func (o *Operation) ImportKey(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.ImportKey, rw, req.Body)
}
