/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"github.com/hyperledger/aries-bbs2023-go/pkg/crypto/primitive/bbs12381g2pub"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/util/fingerprint"
)

//go:generate mockgen -destination ../../../../internal/gomocks/doc/dataintegrity/suite/bbs2023/mocks.gen.go -package mocks . Primitives,KeyManager

// Primitives is the BBS signature scheme the suite sequences. Verification functions report a
// signature or proof that does not verify as false and use errors for undecodable input only.
type Primitives interface {
	MessagesToScalars(messages [][]byte) ([]*bbs12381g2pub.SignatureMessage, error)
	PrepareGenerators(count int) (*bbs12381g2pub.Generators, error)
	PublicFromPrivate(privKey []byte) ([]byte, error)
	Sign(privKey, pubKey, header []byte, messages []*bbs12381g2pub.SignatureMessage,
		gens *bbs12381g2pub.Generators) ([]byte, error)
	Verify(pubKey, signature, header []byte, messages []*bbs12381g2pub.SignatureMessage,
		gens *bbs12381g2pub.Generators) (bool, error)
	ProofGen(pubKey, signature, header, presentationHeader []byte, messages []*bbs12381g2pub.SignatureMessage,
		disclosedIndexes []int, gens *bbs12381g2pub.Generators) ([]byte, error)
	ProofVerify(pubKey, proof, header, presentationHeader []byte,
		disclosedMessages []*bbs12381g2pub.SignatureMessage, disclosedIndexes []int,
		gens *bbs12381g2pub.Generators) (bool, error)
	NumUndisclosed(proof []byte) (int, error)
}

// KeyManager provides the issuer's private key for a verification method.
type KeyManager interface {
	PrivateKey(verificationMethod string) ([]byte, error)
}

// KeyResolver resolves the public key bytes of a verification method.
type KeyResolver func(verificationMethod string) ([]byte, error)

// MultikeyResolver resolves did:key and multikey verification methods of BLS12-381 G2 keys.
func MultikeyResolver(verificationMethod string) ([]byte, error) {
	return fingerprint.PubKeyFromVerificationMethod(verificationMethod)
}
