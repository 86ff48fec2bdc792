/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs12381g2pub

import (
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Signature defines BLS signature.
type Signature struct {
	A *bls12381.G1Affine
	E *fr.Element
	S *fr.Element
}

// ParseSignature parses a Signature from bytes.
func ParseSignature(sigBytes []byte) (*Signature, error) {
	if len(sigBytes) != bls12381SignatureLen {
		return nil, errors.New("invalid size of signature")
	}

	pointG1, err := parseG1(sigBytes[:g1CompressedSize])
	if err != nil {
		return nil, err
	}

	e, err := parseFr(sigBytes[g1CompressedSize : g1CompressedSize+frCompressedSize])
	if err != nil {
		return nil, fmt.Errorf("parse e: %w", err)
	}

	s, err := parseFr(sigBytes[g1CompressedSize+frCompressedSize:])
	if err != nil {
		return nil, fmt.Errorf("parse s: %w", err)
	}

	return &Signature{A: pointG1, E: e, S: s}, nil
}

// ToBytes converts signature to bytes using compression of G1 point and E, S FR points.
func (s *Signature) ToBytes() ([]byte, error) {
	bytes := make([]byte, 0, bls12381SignatureLen)

	bytes = append(bytes, g1Bytes(s.A)...)
	bytes = append(bytes, frToBytes(s.E)...)
	bytes = append(bytes, frToBytes(s.S)...)

	return bytes, nil
}

// Verify is used for signature verification.
func (s *Signature) Verify(pubKey *PublicKey, header []byte, messages []*SignatureMessage,
	gens *Generators) (bool, error) {
	if s.A.IsInfinity() {
		return false, nil
	}

	domain, err := calculateDomain(pubKey, gens, header)
	if err != nil {
		return false, err
	}

	b := computeB(s.S, domain, messages, gens)

	var (
		e    big.Int
		w    bls12381.G2Jac
		term bls12381.G2Jac
		q1   bls12381.G2Affine
	)

	s.E.BigInt(&e)
	term.FromAffine(&p2)
	term.ScalarMultiplication(&term, &e)
	w.FromAffine(pubKey.PointG2)
	w.AddAssign(&term)
	q1.FromJacobian(&w)

	return compareTwoPairings(s.A, &q1, b, &p2)
}

func newSignature(privKey *PrivateKey, pubKey *PublicKey, header []byte, messages []*SignatureMessage,
	gens *Generators) (*Signature, error) {
	domain, err := calculateDomain(pubKey, gens, header)
	if err != nil {
		return nil, err
	}

	e, s, err := signatureNonces(privKey, domain, messages)
	if err != nil {
		return nil, err
	}

	var exp fr.Element

	exp.Add(privKey.FR, e)

	if exp.IsZero() {
		return nil, errors.New("invalid signature nonce")
	}

	exp.Inverse(&exp)

	b := computeB(s, domain, messages, gens)

	return &Signature{A: g1Mul(b, &exp), E: e, S: s}, nil
}

// signatureNonces derives e and s from the key, the domain and the messages.
func signatureNonces(privKey *PrivateKey, domain *fr.Element,
	messages []*SignatureMessage) (*fr.Element, *fr.Element, error) {
	input := make([]byte, 0, frCompressedSize*(len(messages)+2))

	input = append(input, frToBytes(privKey.FR)...)
	input = append(input, frToBytes(domain)...)

	for _, msg := range messages {
		input = append(input, frToBytes(msg.FR)...)
	}

	nonces, err := hashToScalars(input, dstSignatureNonces, 2)
	if err != nil {
		return nil, nil, err
	}

	return &nonces[0], &nonces[1], nil
}

// calculateDomain binds the public key, the generators and the header into one scalar.
func calculateDomain(pubKey *PublicKey, gens *Generators, header []byte) (*fr.Element, error) {
	pkBytes, err := pubKey.Marshal()
	if err != nil {
		return nil, err
	}

	input := make([]byte, 0, len(pkBytes)+g1CompressedSize*(gens.Count()+2)+len(header)+len(ciphersuiteID)+16)

	input = append(input, pkBytes...)
	input = append(input, i2osp(uint64(gens.Count()), 8)...)
	input = append(input, g1Bytes(gens.Q1)...)
	input = append(input, g1Bytes(gens.Q2)...)

	for _, h := range gens.H {
		input = append(input, g1Bytes(h)...)
	}

	input = append(input, ciphersuiteID...)
	input = append(input, i2osp(uint64(len(header)), 8)...)
	input = append(input, header...)

	return hashToScalar(input, dstHashToScalar)
}

// computeB returns P1 + Q1*s + Q2*domain + sum(H_i*m_i).
func computeB(s, domain *fr.Element, messages []*SignatureMessage, gens *Generators) *bls12381.G1Affine {
	cb := new(commitmentBuilder).addPoint(&p1).add(gens.Q1, s).add(gens.Q2, domain)

	for i, msg := range messages {
		cb.add(gens.H[i], msg.FR)
	}

	return cb.build()
}
