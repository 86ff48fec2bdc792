/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

// CreateKeySetRequest is model for creating a BBS key pair.
type CreateKeySetRequest struct {
	// Seed is an optional hex encoded 32 byte seed. The same seed always gives the same key.
	Seed string `json:"seed,omitempty"`
	// ExportPrivateKey returns the hex encoded private key in the response.
	ExportPrivateKey bool `json:"exportPrivateKey,omitempty"`
}

// CreateKeySetResponse for returning a key pair.
type CreateKeySetResponse struct {
	// verification method of the key, usable as proof verificationMethod
	VerificationMethod string `json:"verificationMethod"`
	// did:key of the public key
	DID string `json:"did"`
	// public key base64 URL encoded
	PublicKey string `json:"publicKey"`
	// private key hex encoded, only set when requested
	PrivateKey string `json:"privateKey,omitempty"`
}

// ImportKeyRequest is model for importing a BBS private key.
type ImportKeyRequest struct {
	// hex encoded private key
	PrivateKey string `json:"privateKey"`
}
