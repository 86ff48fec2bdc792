/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs12381g2pub

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"hash"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/hkdf"
)

const (
	seedSize         = frCompressedSize
	generateKeySalt  = "BBS-SIG-KEYGEN-SALT-"
	maxKeygenRetries = 255
)

// PublicKey defines BLS Public Key.
type PublicKey struct {
	PointG2 *bls12381.G2Affine
}

// PrivateKey defines BLS Private Key.
type PrivateKey struct {
	FR *fr.Element
}

// UnmarshalPrivateKey unmarshals PrivateKey.
func UnmarshalPrivateKey(privKeyBytes []byte) (*PrivateKey, error) {
	if len(privKeyBytes) != frCompressedSize {
		return nil, errors.New("invalid size of private key")
	}

	scalar, err := parseFr(privKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	if scalar.IsZero() {
		return nil, errors.New("invalid private key: zero")
	}

	return &PrivateKey{FR: scalar}, nil
}

// Marshal marshals PrivateKey.
func (k *PrivateKey) Marshal() ([]byte, error) {
	return frToBytes(k.FR), nil
}

// PublicKey returns a Public Key as G2 point generated from the Private Key.
func (k *PrivateKey) PublicKey() *PublicKey {
	var (
		s   big.Int
		jac bls12381.G2Jac
		pk  bls12381.G2Affine
	)

	k.FR.BigInt(&s)
	jac.FromAffine(&p2)
	jac.ScalarMultiplication(&jac, &s)
	pk.FromJacobian(&jac)

	return &PublicKey{PointG2: &pk}
}

// UnmarshalPublicKey parses a PublicKey from bytes.
func UnmarshalPublicKey(pubKeyBytes []byte) (*PublicKey, error) {
	if len(pubKeyBytes) != bls12381G2PublicKeyLen {
		return nil, errors.New("invalid size of public key")
	}

	var pk bls12381.G2Affine

	if _, err := pk.SetBytes(pubKeyBytes); err != nil {
		return nil, fmt.Errorf("deserialize public key: %w", err)
	}

	if pk.IsInfinity() {
		return nil, errors.New("invalid public key: identity")
	}

	return &PublicKey{PointG2: &pk}, nil
}

// Marshal marshals PublicKey.
func (pk *PublicKey) Marshal() ([]byte, error) {
	b := pk.PointG2.Bytes()

	return b[:], nil
}

// GenerateKeyPair generates BBS PublicKey and PrivateKey pair. A nil seed is replaced by random bytes.
func GenerateKeyPair(h func() hash.Hash, seed []byte) (*PublicKey, *PrivateKey, error) {
	if len(seed) != 0 && len(seed) != seedSize {
		return nil, nil, errors.New("invalid size of seed")
	}

	okm, err := generateOKM(seed, h)
	if err != nil {
		return nil, nil, err
	}

	privKey := &PrivateKey{FR: okm}

	return privKey.PublicKey(), privKey, nil
}

func generateOKM(ikm []byte, h func() hash.Hash) (*fr.Element, error) {
	if ikm == nil {
		ikm = make([]byte, seedSize)

		if _, err := rand.Read(ikm); err != nil {
			return nil, fmt.Errorf("create random seed: %w", err)
		}
	}

	salt := sha256.Sum256([]byte(generateKeySalt))
	info := i2osp(expandLen, 2)

	for i := 0; i < maxKeygenRetries; i++ {
		okm := make([]byte, expandLen)

		if _, err := io.ReadFull(newHKDF(h, append(append([]byte{}, ikm...), 0), salt[:], info), okm); err != nil {
			return nil, fmt.Errorf("derive key material: %w", err)
		}

		var sk fr.Element

		sk.SetBytes(okm)

		if !sk.IsZero() {
			return &sk, nil
		}

		salt = sha256.Sum256(salt[:])
	}

	return nil, errors.New("failed to derive a non-zero private key")
}

func newHKDF(h func() hash.Hash, ikm, salt, info []byte) io.Reader {
	return hkdf.New(h, ikm, salt, info)
}
