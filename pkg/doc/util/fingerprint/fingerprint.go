/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package fingerprint encodes and decodes BLS12-381 G2 public keys as multikey fingerprints
// and resolves them from did:key style verification method identifiers.
package fingerprint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-varint"
)

const (
	// BLS12381g2PubKeyMultiCodec for BLS12-381 G2 public key in multicodec table.
	// source: https://github.com/multiformats/multicodec/blob/master/table.csv.
	BLS12381g2PubKeyMultiCodec = 0xeb

	// Default BLS 12-381 public key length in G2 field.
	bls12381G2PublicKeyLen = 96

	didKeyPrefix = "did:key:"
)

// ErrUnsupportedVerificationMethod is returned when a verification method does not embed a multikey.
var ErrUnsupportedVerificationMethod = errors.New("unsupported verification method")

// KeyFingerprint generates a multicodec fingerprint for pubKeyValue (raw key []byte).
func KeyFingerprint(code uint64, pubKeyValue []byte) string {
	multicodecValue := varint.ToUvarint(code)

	buf := make([]byte, 0, len(multicodecValue)+len(pubKeyValue))
	buf = append(buf, multicodecValue...)
	buf = append(buf, pubKeyValue...)

	return fmt.Sprintf("z%s", base58.Encode(buf))
}

// CreateDIDKeyByCode creates a did:key ID and its key ID from the multicodec key fingerprint.
func CreateDIDKeyByCode(code uint64, pubKey []byte) (string, string) {
	methodID := KeyFingerprint(code, pubKey)
	didKey := didKeyPrefix + methodID
	keyID := fmt.Sprintf("%s#%s", didKey, methodID)

	return didKey, keyID
}

// CreateBLS12381G2DIDKey creates a did:key ID and its key ID for a compressed BLS12-381 G2 public key.
func CreateBLS12381G2DIDKey(pubKey []byte) (string, string) {
	return CreateDIDKeyByCode(BLS12381g2PubKeyMultiCodec, pubKey)
}

// PubKeyFromFingerprint decodes a multibase fingerprint into its multicodec code and raw key bytes.
func PubKeyFromFingerprint(fingerprint string) ([]byte, uint64, error) {
	encoding, mc, err := multibase.Decode(fingerprint)
	if err != nil {
		return nil, 0, fmt.Errorf("decode fingerprint: %w", err)
	}

	if encoding != multibase.Base58BTC {
		return nil, 0, fmt.Errorf("unexpected fingerprint encoding %q", multibase.EncodingToStr[encoding])
	}

	code, n, err := varint.FromUvarint(mc)
	if err != nil {
		return nil, 0, fmt.Errorf("decode multicodec prefix: %w", err)
	}

	return mc[n:], code, nil
}

// BLS12381G2PubKeyFromFingerprint decodes a fingerprint and checks it carries a BLS12-381 G2 key.
func BLS12381G2PubKeyFromFingerprint(fingerprint string) ([]byte, error) {
	pubKey, code, err := PubKeyFromFingerprint(fingerprint)
	if err != nil {
		return nil, err
	}

	if code != BLS12381g2PubKeyMultiCodec {
		return nil, fmt.Errorf("unexpected multicodec 0x%x, expected BLS12-381 G2", code)
	}

	if len(pubKey) != bls12381G2PublicKeyLen {
		return nil, fmt.Errorf("invalid BLS12-381 G2 public key size %d", len(pubKey))
	}

	return pubKey, nil
}

// PubKeyFromVerificationMethod resolves the BLS12-381 G2 public key embedded in a verification method:
// either the fragment of an identifier (did:key:z...#z..., https://issuer.example#z...) or a bare did:key.
func PubKeyFromVerificationMethod(verificationMethod string) ([]byte, error) {
	fp := verificationMethod

	switch {
	case strings.Contains(verificationMethod, "#"):
		fp = verificationMethod[strings.LastIndex(verificationMethod, "#")+1:]
	case strings.HasPrefix(verificationMethod, didKeyPrefix):
		fp = strings.TrimPrefix(verificationMethod, didKeyPrefix)
	}

	if !strings.HasPrefix(fp, "z") {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVerificationMethod, verificationMethod)
	}

	return BLS12381G2PubKeyFromFingerprint(fp)
}
