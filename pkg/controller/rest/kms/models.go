/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/kms"
)

// createKeySetReq model
//
// This is used for createKeySet request.
//
// swagger:parameters createKeySet
type createKeySetReq struct { // nolint: unused,deadcode
	// Params for createKeySet
	//
	// in: body
	kms.CreateKeySetRequest
}

// createKeySetRes model
//
// This is used for returning the created or imported key.
//
// swagger:response createKeySetRes
type createKeySetRes struct { // nolint: unused,deadcode

	// in: body
	kms.CreateKeySetResponse
}

// importKeyReq model
//
// This is used for import key request.
//
// swagger:parameters importKey
type importKeyReq struct { // nolint: unused,deadcode

	// in: body
	kms.ImportKeyRequest
}
