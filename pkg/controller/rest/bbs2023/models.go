/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	cmdbbs "github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/bbs2023"
)

// issueReq model
//
// swagger:parameters issueReq
type issueReq struct { // nolint: unused,deadcode
	// in: body
	cmdbbs.IssueRequest
}

// issueRes model
//
// swagger:response issueRes
type issueRes struct { // nolint: unused,deadcode
	// in: body
	cmdbbs.IssueResponse
}

// presentReq model
//
// swagger:parameters presentReq
type presentReq struct { // nolint: unused,deadcode
	// in: body
	cmdbbs.PresentRequest
}

// presentRes model
//
// swagger:response presentRes
type presentRes struct { // nolint: unused,deadcode
	// in: body
	cmdbbs.PresentResponse
}

// verifyReq model
//
// swagger:parameters verifyReq
type verifyReq struct { // nolint: unused,deadcode
	// in: body
	cmdbbs.VerifyRequest
}

// verifyCredentialReq model
//
// swagger:parameters verifyCredentialReq
type verifyCredentialReq struct { // nolint: unused,deadcode
	// in: body
	cmdbbs.VerifyCredentialRequest
}

// verifyRes model
//
// swagger:response verifyRes
type verifyRes struct { // nolint: unused,deadcode
	// in: body
	cmdbbs.VerifyResponse
}
