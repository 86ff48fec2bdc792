/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package fingerprint

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateBLS12381G2DIDKey(t *testing.T) {
	pubKey := bytes.Repeat([]byte{0x42}, bls12381G2PublicKeyLen)

	didKey, keyID := CreateBLS12381G2DIDKey(pubKey)
	require.True(t, strings.HasPrefix(didKey, "did:key:z"))
	require.Equal(t, didKey+"#"+strings.TrimPrefix(didKey, "did:key:"), keyID)

	for _, vm := range []string{keyID, didKey, "https://issuer.example/keys#" + strings.TrimPrefix(didKey, "did:key:")} {
		resolved, err := PubKeyFromVerificationMethod(vm)
		require.NoError(t, err, vm)
		require.Equal(t, pubKey, resolved)
	}
}

func TestPubKeyFromFingerprint(t *testing.T) {
	t.Run("wrong codec", func(t *testing.T) {
		fp := KeyFingerprint(0xed, bytes.Repeat([]byte{1}, 32))

		key, code, err := PubKeyFromFingerprint(fp)
		require.NoError(t, err)
		require.Equal(t, uint64(0xed), code)
		require.Len(t, key, 32)

		_, err = BLS12381G2PubKeyFromFingerprint(fp)
		require.EqualError(t, err, "unexpected multicodec 0xed, expected BLS12-381 G2")
	})

	t.Run("wrong key size", func(t *testing.T) {
		fp := KeyFingerprint(BLS12381g2PubKeyMultiCodec, []byte{1, 2, 3})

		_, err := BLS12381G2PubKeyFromFingerprint(fp)
		require.EqualError(t, err, "invalid BLS12-381 G2 public key size 3")
	})

	t.Run("not base58btc", func(t *testing.T) {
		tests := []struct {
			fingerprint string
			err         string
		}{
			{fingerprint: "f0102", err: `unexpected fingerprint encoding "base16"`},
			{fingerprint: "mAQI", err: `unexpected fingerprint encoding "base64"`},
			{fingerprint: "q123", err: "decode fingerprint: "},
		}

		for _, tc := range tests {
			t.Run(tc.fingerprint, func(t *testing.T) {
				_, _, err := PubKeyFromFingerprint(tc.fingerprint)
				require.ErrorContains(t, err, tc.err)
			})
		}
	})

	t.Run("unsupported verification method", func(t *testing.T) {
		_, err := PubKeyFromVerificationMethod("https://issuer.example/keys#key-1")
		require.ErrorIs(t, err, ErrUnsupportedVerificationMethod)
	})
}
