/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package embed holds the JSON-LD contexts compiled into the binary. Remote context resolution is not
// supported, so every context a credential references must be embedded here or registered explicitly.
package embed

import (
	_ "embed" //nolint:gci // required for go:embed

	ldcontext "github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/context"
)

const (
	// CredentialsV2URL is the URL of the verifiable credentials 2.0 context.
	CredentialsV2URL = "https://www.w3.org/ns/credentials/v2"
	// CredentialsExamplesV2URL is the URL of the credentials examples context.
	CredentialsExamplesV2URL = "https://www.w3.org/ns/credentials/examples/v2"
	// DataIntegrityV2URL is the URL of the data integrity 2.0 context.
	DataIntegrityV2URL = "https://w3id.org/security/data-integrity/v2"
)

// nolint:gochecknoglobals // required for go:embed
var (
	//go:embed third_party/w3.org/credentials_v2.jsonld
	w3orgCredentialsV2 []byte
	//go:embed third_party/w3.org/credentials_examples_v2.jsonld
	w3orgCredentialsExamplesV2 []byte
	//go:embed third_party/w3id.org/data_integrity_v2.jsonld
	w3idDataIntegrityV2 []byte
)

// Contexts contains JSON-LD contexts embedded into a Go binary.
var Contexts = []ldcontext.Document{ //nolint:gochecknoglobals
	{
		URL:         CredentialsV2URL,
		DocumentURL: CredentialsV2URL,
		Content:     w3orgCredentialsV2,
	},
	{
		URL:         CredentialsExamplesV2URL,
		DocumentURL: CredentialsExamplesV2URL,
		Content:     w3orgCredentialsExamplesV2,
	},
	{
		URL:         DataIntegrityV2URL,
		DocumentURL: "https://w3c.github.io/vc-data-integrity/contexts/data-integrity/v2",
		Content:     w3idDataIntegrityV2,
	},
}
