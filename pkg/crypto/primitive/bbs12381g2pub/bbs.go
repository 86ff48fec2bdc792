/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bbs12381g2pub contains BBS signing primitives and keys where the public key is a point in G2
// of BLS12-381. Signatures and proofs bind a header, and proofs additionally bind a presentation header.
//
// All curve arithmetic is provided by gnark-crypto; this package only sequences the scheme.
package bbs12381g2pub

import (
	"errors"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// BBSG2Pub defines the BBS signature scheme where public key is a point in the field of G2.
type BBSG2Pub struct{}

// New creates a new BBSG2Pub.
func New() *BBSG2Pub {
	return &BBSG2Pub{}
}

const (
	// Signature length: A (compressed G1) || e || s.
	bls12381SignatureLen = g1CompressedSize + 2*frCompressedSize

	// Default BLS 12-381 public key length in G2 field.
	bls12381G2PublicKeyLen = 96

	// Number of bytes in G1 X coordinate.
	g1CompressedSize = 48

	// Number of bytes in scalar compressed form.
	frCompressedSize = 32

	// Number of bytes expanded before reducing to a scalar.
	expandLen = 48

	// Fixed part of a proof: A', Abar, D followed by c, e^, r2^, r3^, s^.
	proofFixedLen = 3*g1CompressedSize + 5*frCompressedSize

	ciphersuiteID = "BBS_BLS12381G1_XOF:SHAKE-256_SSWU_RO_"
)

// nolint:gochecknoglobals
var (
	dstHashToScalar    = []byte(ciphersuiteID + "H2S_")
	dstMapMessage      = []byte(ciphersuiteID + "MAP_MSG_TO_SCALAR_AS_HASH_")
	dstGeneratorSeed   = []byte(ciphersuiteID + "MESSAGE_GENERATOR_SEED")
	dstGenerator       = []byte(ciphersuiteID + "SIG_GENERATOR_DST_")
	dstSignatureNonces = []byte(ciphersuiteID + "SIG_DET_DST_")

	errMessageCount = errors.New("messages count does not match generators count")
)

// nolint:gochecknoglobals
var p1, p2 = func() (bls12381.G1Affine, bls12381.G2Affine) {
	_, _, g1Aff, g2Aff := bls12381.Generators()

	return g1Aff, g2Aff
}()

// MessagesToScalars maps every byte message to a scalar.
func (bbs *BBSG2Pub) MessagesToScalars(messages [][]byte) ([]*SignatureMessage, error) {
	return MessagesToScalars(messages)
}

// PrepareGenerators creates generator material for exactly count messages.
func (bbs *BBSG2Pub) PrepareGenerators(count int) (*Generators, error) {
	return PrepareGenerators(count)
}

// PublicFromPrivate derives the compressed public key of a private key.
func (bbs *BBSG2Pub) PublicFromPrivate(privKeyBytes []byte) ([]byte, error) {
	privKey, err := UnmarshalPrivateKey(privKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("unmarshal private key: %w", err)
	}

	return privKey.PublicKey().Marshal()
}

// Sign signs the messages with the private key, binding header into the signature.
func (bbs *BBSG2Pub) Sign(privKeyBytes, pubKeyBytes, header []byte, messages []*SignatureMessage,
	gens *Generators) ([]byte, error) {
	privKey, err := UnmarshalPrivateKey(privKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("unmarshal private key: %w", err)
	}

	pubKey, err := UnmarshalPublicKey(pubKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	if len(messages) == 0 {
		return nil, errors.New("messages are not defined")
	}

	if gens == nil || len(messages) != gens.Count() {
		return nil, errMessageCount
	}

	signature, err := newSignature(privKey, pubKey, header, messages, gens)
	if err != nil {
		return nil, err
	}

	return signature.ToBytes()
}

// Verify checks a signature over all messages. It returns false for a signature that does not verify
// and an error only for undecodable inputs.
func (bbs *BBSG2Pub) Verify(pubKeyBytes, sigBytes, header []byte, messages []*SignatureMessage,
	gens *Generators) (bool, error) {
	pubKey, err := UnmarshalPublicKey(pubKeyBytes)
	if err != nil {
		return false, fmt.Errorf("parse public key: %w", err)
	}

	signature, err := ParseSignature(sigBytes)
	if err != nil {
		return false, fmt.Errorf("parse signature: %w", err)
	}

	if gens == nil || len(messages) != gens.Count() {
		return false, nil
	}

	return signature.Verify(pubKey, header, messages, gens)
}

// ProofGen derives a zero-knowledge proof of knowledge of the signature, revealing the messages
// at disclosedIndexes. The indexes must be ascending and unique.
func (bbs *BBSG2Pub) ProofGen(pubKeyBytes, sigBytes, header, presentationHeader []byte,
	messages []*SignatureMessage, disclosedIndexes []int, gens *Generators) ([]byte, error) {
	pubKey, err := UnmarshalPublicKey(pubKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	signature, err := ParseSignature(sigBytes)
	if err != nil {
		return nil, fmt.Errorf("parse signature: %w", err)
	}

	if gens == nil || len(messages) != gens.Count() {
		return nil, errMessageCount
	}

	if err = checkIndexes(disclosedIndexes, len(messages)); err != nil {
		return nil, err
	}

	proof, err := newPoKOfSignatureProof(signature, pubKey, header, presentationHeader, messages,
		disclosedIndexes, gens)
	if err != nil {
		return nil, err
	}

	return proof.ToBytes(), nil
}

// ProofVerify verifies a proof for the disclosed messages. The number of generators must equal the
// number of disclosed messages plus the undisclosed count encoded in the proof; otherwise the proof
// does not verify.
func (bbs *BBSG2Pub) ProofVerify(pubKeyBytes, proofBytes, header, presentationHeader []byte,
	disclosedMessages []*SignatureMessage, disclosedIndexes []int, gens *Generators) (bool, error) {
	pubKey, err := UnmarshalPublicKey(pubKeyBytes)
	if err != nil {
		return false, fmt.Errorf("parse public key: %w", err)
	}

	proof, err := ParsePoKOfSignatureProof(proofBytes)
	if err != nil {
		return false, fmt.Errorf("parse signature proof: %w", err)
	}

	if len(disclosedIndexes) != len(disclosedMessages) {
		return false, fmt.Errorf("%d disclosed indexes for %d disclosed messages",
			len(disclosedIndexes), len(disclosedMessages))
	}

	total := len(disclosedMessages) + len(proof.mHat)

	if err = checkIndexes(disclosedIndexes, total); err != nil {
		return false, err
	}

	if gens == nil || gens.Count() != total {
		return false, nil
	}

	return proof.verify(pubKey, header, presentationHeader, disclosedMessages, disclosedIndexes, gens)
}

// NumUndisclosed returns the number of undisclosed messages encoded in a proof.
func (bbs *BBSG2Pub) NumUndisclosed(proofBytes []byte) (int, error) {
	return numUndisclosed(proofBytes)
}

func checkIndexes(indexes []int, total int) error {
	for i, idx := range indexes {
		if idx < 0 || idx >= total {
			return fmt.Errorf("index %d out of range [0, %d)", idx, total)
		}

		if i > 0 && indexes[i-1] >= idx {
			return errors.New("indexes must be ascending and unique")
		}
	}

	return nil
}
