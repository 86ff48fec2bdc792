/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/command"
)

var logger = log.New("bbs2023/rest")

// Handler http handler for each controller API endpoint.
type Handler interface {
	Path() string
	Method() string
	Handle() http.HandlerFunc
}

// genericErrorBody is the body of every error response.
//
// swagger:response genericError
type genericErrorBody struct {
	// error code
	Code command.Code `json:"code"`
	// error message
	Message string `json:"message"`
}

// Execute executes given command with args provided and writes command response or error to rw.
func Execute(exec command.Exec, rw http.ResponseWriter, req io.Reader) {
	var buf bytes.Buffer

	if err := exec(&buf, req); err != nil {
		SendError(rw, err)

		return
	}

	rw.Header().Set("Content-Type", "application/json")

	if _, err := rw.Write(buf.Bytes()); err != nil {
		logger.Errorf("Unable to send response, %s", err)
	}
}

// SendError sends a command error to rw: validation errors as 400 Bad Request, anything else
// as 500 Internal Server Error.
func SendError(rw http.ResponseWriter, err command.Error) {
	var status int

	switch err.Type() {
	case command.ValidationError:
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	SendHTTPStatusError(rw, status, err.Code(), err)
}

// SendHTTPStatusError sends an error body with the given status code.
func SendHTTPStatusError(rw http.ResponseWriter, httpStatus int, code command.Code, err error) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(httpStatus)

	if e := json.NewEncoder(rw).Encode(genericErrorBody{Code: code, Message: err.Error()}); e != nil {
		logger.Errorf("Unable to send error response, %s", e)
	}
}
