/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs12381g2pub_test

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/aries-bbs2023-go/pkg/crypto/primitive/bbs12381g2pub"
)

func TestGenerateKeyPair(t *testing.T) {
	h := sha256.New

	seed := make([]byte, 32)

	pubKey, privKey, err := bbs12381g2pub.GenerateKeyPair(h, seed)
	require.NoError(t, err)
	require.NotNil(t, pubKey)
	require.NotNil(t, privKey)

	t.Run("seed is deterministic", func(t *testing.T) {
		_, privKey2, err := bbs12381g2pub.GenerateKeyPair(h, seed)
		require.NoError(t, err)
		require.True(t, privKey.FR.Equal(privKey2.FR))
	})

	t.Run("marshal round trip", func(t *testing.T) {
		privKeyBytes, err := privKey.Marshal()
		require.NoError(t, err)
		require.Len(t, privKeyBytes, 32)

		privKeyUnmarshalled, err := bbs12381g2pub.UnmarshalPrivateKey(privKeyBytes)
		require.NoError(t, err)
		require.True(t, privKey.FR.Equal(privKeyUnmarshalled.FR))

		pubKeyBytes, err := pubKey.Marshal()
		require.NoError(t, err)
		require.Len(t, pubKeyBytes, 96)

		pubKeyUnmarshalled, err := bbs12381g2pub.UnmarshalPublicKey(pubKeyBytes)
		require.NoError(t, err)
		require.True(t, pubKey.PointG2.Equal(pubKeyUnmarshalled.PointG2))

		derived, err := bbs12381g2pub.New().PublicFromPrivate(privKeyBytes)
		require.NoError(t, err)
		require.Equal(t, pubKeyBytes, derived)
	})

	t.Run("invalid seed size", func(t *testing.T) {
		_, _, err := bbs12381g2pub.GenerateKeyPair(h, []byte("short"))
		require.EqualError(t, err, "invalid size of seed")
	})

	t.Run("random seed", func(t *testing.T) {
		_, privKey2, err := bbs12381g2pub.GenerateKeyPair(h, nil)
		require.NoError(t, err)
		require.False(t, privKey.FR.Equal(privKey2.FR))
	})
}

func TestUnmarshalKeys_Errors(t *testing.T) {
	_, err := bbs12381g2pub.UnmarshalPrivateKey([]byte("too short"))
	require.EqualError(t, err, "invalid size of private key")

	_, err = bbs12381g2pub.UnmarshalPrivateKey(make([]byte, 32))
	require.EqualError(t, err, "invalid private key: zero")

	nonCanonical := make([]byte, 32)
	for i := range nonCanonical {
		nonCanonical[i] = 0xff
	}

	_, err = bbs12381g2pub.UnmarshalPrivateKey(nonCanonical)
	require.Error(t, err)

	_, err = bbs12381g2pub.UnmarshalPublicKey([]byte("too short"))
	require.EqualError(t, err, "invalid size of public key")

	_, err = bbs12381g2pub.UnmarshalPublicKey(make([]byte, 96))
	require.Error(t, err)
}
