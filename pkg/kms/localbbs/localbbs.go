/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package localbbs is an in-memory store of BBS+ BLS12-381 G2 private keys addressed by their did:key
// verification method.
package localbbs

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/bluele/gcache"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
	"github.com/hyperledger/aries-bbs2023-go/pkg/crypto/primitive/bbs12381g2pub"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/util/fingerprint"
)

var logger = log.New("bbs2023/localbbs")

// ErrKeyNotFound is returned when no key is stored for a verification method.
var ErrKeyNotFound = errors.New("key not found")

// KeyPair is a stored key with its verification method.
type KeyPair struct {
	VerificationMethod string
	DID                string
	PublicKey          []byte
	PrivateKey         []byte
}

// KeyStore keeps private keys in memory. The underlying gcache is thread safe.
type KeyStore struct {
	store gcache.Cache
}

// New creates an empty KeyStore.
func New() *KeyStore {
	return &KeyStore{store: gcache.New(0).Build()}
}

// Create generates a key pair and stores it. A nil seed generates a random key, a 32 byte seed
// generates the same key every time.
func (k *KeyStore) Create(seed []byte) (*KeyPair, error) {
	pubKey, privKey, err := bbs12381g2pub.GenerateKeyPair(sha256.New, seed)
	if err != nil {
		return nil, fmt.Errorf("generate key pair: %w", err)
	}

	privKeyBytes, err := privKey.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}

	pubKeyBytes, err := pubKey.Marshal()
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}

	return k.save(privKeyBytes, pubKeyBytes)
}

// Import stores an existing private key.
func (k *KeyStore) Import(privKey []byte) (*KeyPair, error) {
	pubKey, err := bbs12381g2pub.New().PublicFromPrivate(privKey)
	if err != nil {
		return nil, fmt.Errorf("import private key: %w", err)
	}

	return k.save(append([]byte{}, privKey...), pubKey)
}

func (k *KeyStore) save(privKey, pubKey []byte) (*KeyPair, error) {
	didKey, keyID := fingerprint.CreateBLS12381G2DIDKey(pubKey)

	if err := k.store.Set(keyID, privKey); err != nil {
		return nil, fmt.Errorf("store key %s: %w", keyID, err)
	}

	logger.Debugf("stored key %s", keyID)

	return &KeyPair{
		VerificationMethod: keyID,
		DID:                didKey,
		PublicKey:          pubKey,
		PrivateKey:         privKey,
	}, nil
}

// PrivateKey returns the private key of a verification method.
func (k *KeyStore) PrivateKey(verificationMethod string) ([]byte, error) {
	v, err := k.store.Get(verificationMethod)
	if err != nil {
		if errors.Is(err, gcache.KeyNotFoundError) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, verificationMethod)
		}

		return nil, err
	}

	privKey, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected key type %T", v)
	}

	return append([]byte{}, privKey...), nil
}

// Remove deletes the key of a verification method.
func (k *KeyStore) Remove(verificationMethod string) bool {
	return k.store.Remove(verificationMethod)
}
