/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import "errors"

var (
	// ErrIndexOutOfRange is returned when a required or disclosed index does not address a message.
	ErrIndexOutOfRange = errors.New("message index out of range")
	// ErrMalformedIndexes is returned when an index list is not strictly ascending.
	ErrMalformedIndexes = errors.New("message indexes must be ascending and unique")
	// ErrTransformation is returned when a document cannot be parsed, framed or canonicalized.
	ErrTransformation = errors.New("bbs-2023 transformation error")
	// ErrPrimitive is returned when the signature primitive rejects its input.
	ErrPrimitive = errors.New("bbs-2023 signature primitive error")
	// ErrMandatoryDisclosureDisabled is returned when required statements are used while the suite
	// runs without header protection.
	ErrMandatoryDisclosureDisabled = errors.New("mandatory disclosure requires header protection")
	// ErrInvalidBaseProof is returned when a holder is asked to derive from a credential whose base
	// signature does not verify.
	ErrInvalidBaseProof = errors.New("base proof does not verify")
	// ErrMissingKey is returned when no private key is available for a verification method.
	ErrMissingKey = errors.New("no private key for verification method")
)
