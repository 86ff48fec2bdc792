/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs12381g2pub

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/sha3"
)

const maxDSTLen = 255

// expandMessageXOF implements expand_message_xof with SHAKE-256.
func expandMessageXOF(msg, dst []byte, lenInBytes int) ([]byte, error) {
	if len(dst) > maxDSTLen {
		return nil, errors.New("dst is too long")
	}

	if lenInBytes > 0xffff {
		return nil, errors.New("requested output is too long")
	}

	h := sha3.NewShake256()

	_, _ = h.Write(msg)
	_, _ = h.Write(i2osp(uint64(lenInBytes), 2))
	_, _ = h.Write(dst)
	_, _ = h.Write([]byte{byte(len(dst))})

	out := make([]byte, lenInBytes)

	_, _ = h.Read(out)

	return out, nil
}

// hashToScalars expands msg and reduces count chunks of expandLen bytes modulo r.
func hashToScalars(msg, dst []byte, count int) ([]fr.Element, error) {
	uniform, err := expandMessageXOF(msg, dst, count*expandLen)
	if err != nil {
		return nil, err
	}

	scalars := make([]fr.Element, count)

	for i := range scalars {
		scalars[i].SetBytes(uniform[i*expandLen : (i+1)*expandLen])
	}

	return scalars, nil
}

func hashToScalar(msg, dst []byte) (*fr.Element, error) {
	scalars, err := hashToScalars(msg, dst, 1)
	if err != nil {
		return nil, err
	}

	return &scalars[0], nil
}

// parseFr decodes a scalar and rejects non-canonical encodings.
func parseFr(data []byte) (*fr.Element, error) {
	if len(data) != frCompressedSize {
		return nil, fmt.Errorf("invalid size of scalar: %d", len(data))
	}

	var e fr.Element

	e.SetBytes(data)

	if canonical := e.Bytes(); !bytes.Equal(canonical[:], data) {
		return nil, errors.New("scalar is not canonical")
	}

	return &e, nil
}

func frToBytes(e *fr.Element) []byte {
	b := e.Bytes()

	return b[:]
}

func createRandSignatureFr() (*fr.Element, error) {
	var e fr.Element

	if _, err := e.SetRandom(); err != nil {
		return nil, fmt.Errorf("create random scalar: %w", err)
	}

	return &e, nil
}

func i2osp(v uint64, size int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)

	return buf[8-size:]
}

// commitmentBuilder accumulates a sum of G1 scalar products.
type commitmentBuilder struct {
	acc bls12381.G1Jac
}

func (cb *commitmentBuilder) add(base *bls12381.G1Affine, scalar *fr.Element) *commitmentBuilder {
	var (
		k    big.Int
		term bls12381.G1Jac
	)

	scalar.BigInt(&k)
	term.FromAffine(base)
	term.ScalarMultiplication(&term, &k)

	cb.acc.AddAssign(&term)

	return cb
}

func (cb *commitmentBuilder) addPoint(p *bls12381.G1Affine) *commitmentBuilder {
	var term bls12381.G1Jac

	term.FromAffine(p)
	cb.acc.AddAssign(&term)

	return cb
}

func (cb *commitmentBuilder) build() *bls12381.G1Affine {
	var res bls12381.G1Affine

	res.FromJacobian(&cb.acc)

	return &res
}

func g1Mul(base *bls12381.G1Affine, scalar *fr.Element) *bls12381.G1Affine {
	return new(commitmentBuilder).add(base, scalar).build()
}

func g1Bytes(p *bls12381.G1Affine) []byte {
	b := p.Bytes()

	return b[:]
}

func parseG1(data []byte) (*bls12381.G1Affine, error) {
	if len(data) != g1CompressedSize {
		return nil, fmt.Errorf("invalid size of G1 point: %d", len(data))
	}

	var p bls12381.G1Affine

	if _, err := p.SetBytes(data); err != nil {
		return nil, fmt.Errorf("deserialize G1 point: %w", err)
	}

	return &p, nil
}

// compareTwoPairings checks e(a1, b1) == e(a2, b2).
func compareTwoPairings(a1 *bls12381.G1Affine, b1 *bls12381.G2Affine,
	a2 *bls12381.G1Affine, b2 *bls12381.G2Affine) (bool, error) {
	var negB2 bls12381.G2Affine

	negB2.Neg(b2)

	return bls12381.PairingCheck([]bls12381.G1Affine{*a1, *a2}, []bls12381.G2Affine{*b1, negB2})
}
