/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs12381g2pub

import (
	"errors"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// PoKOfSignatureProof defines a proof of knowledge of a signature with some messages disclosed.
type PoKOfSignatureProof struct {
	aPrime *bls12381.G1Affine
	aBar   *bls12381.G1Affine
	d      *bls12381.G1Affine

	c     *fr.Element
	eHat  *fr.Element
	r2Hat *fr.Element
	r3Hat *fr.Element
	sHat  *fr.Element
	mHat  []*fr.Element
}

func numUndisclosed(proofBytes []byte) (int, error) {
	if len(proofBytes) < proofFixedLen || (len(proofBytes)-proofFixedLen)%frCompressedSize != 0 {
		return 0, fmt.Errorf("invalid size of signature proof: %d", len(proofBytes))
	}

	return (len(proofBytes) - proofFixedLen) / frCompressedSize, nil
}

// ParsePoKOfSignatureProof parses a proof from bytes.
func ParsePoKOfSignatureProof(proofBytes []byte) (*PoKOfSignatureProof, error) {
	undisclosed, err := numUndisclosed(proofBytes)
	if err != nil {
		return nil, err
	}

	points := make([]*bls12381.G1Affine, 3)

	for i := range points {
		points[i], err = parseG1(proofBytes[i*g1CompressedSize : (i+1)*g1CompressedSize])
		if err != nil {
			return nil, err
		}
	}

	scalars := make([]*fr.Element, 5+undisclosed)
	offset := 3 * g1CompressedSize

	for i := range scalars {
		scalars[i], err = parseFr(proofBytes[offset : offset+frCompressedSize])
		if err != nil {
			return nil, fmt.Errorf("parse proof scalar %d: %w", i, err)
		}

		offset += frCompressedSize
	}

	return &PoKOfSignatureProof{
		aPrime: points[0],
		aBar:   points[1],
		d:      points[2],
		c:      scalars[0],
		eHat:   scalars[1],
		r2Hat:  scalars[2],
		r3Hat:  scalars[3],
		sHat:   scalars[4],
		mHat:   scalars[5:],
	}, nil
}

// ToBytes converts the proof to bytes.
func (p *PoKOfSignatureProof) ToBytes() []byte {
	out := make([]byte, 0, proofFixedLen+len(p.mHat)*frCompressedSize)

	for _, point := range []*bls12381.G1Affine{p.aPrime, p.aBar, p.d} {
		out = append(out, g1Bytes(point)...)
	}

	for _, scalar := range append([]*fr.Element{p.c, p.eHat, p.r2Hat, p.r3Hat, p.sHat}, p.mHat...) {
		out = append(out, frToBytes(scalar)...)
	}

	return out
}

type proofBlindings struct {
	r1, r2, eTilde, r2Tilde, r3Tilde, sTilde *fr.Element
	mTilde                                   []*fr.Element
}

func newProofBlindings(undisclosed int) (*proofBlindings, error) {
	scalars := make([]*fr.Element, 6+undisclosed)

	for i := range scalars {
		s, err := createRandSignatureFr()
		if err != nil {
			return nil, err
		}

		scalars[i] = s
	}

	return &proofBlindings{
		r1:      scalars[0],
		r2:      scalars[1],
		eTilde:  scalars[2],
		r2Tilde: scalars[3],
		r3Tilde: scalars[4],
		sTilde:  scalars[5],
		mTilde:  scalars[6:],
	}, nil
}

func newPoKOfSignatureProof(signature *Signature, pubKey *PublicKey, header, presentationHeader []byte,
	messages []*SignatureMessage, disclosedIndexes []int, gens *Generators) (*PoKOfSignatureProof, error) {
	undisclosedIndexes := complementIndexes(disclosedIndexes, len(messages))

	blindings, err := newProofBlindings(len(undisclosedIndexes))
	if err != nil {
		return nil, err
	}

	if blindings.r1.IsZero() {
		return nil, errors.New("invalid proof blinding")
	}

	domain, err := calculateDomain(pubKey, gens, header)
	if err != nil {
		return nil, err
	}

	b := computeB(signature.S, domain, messages, gens)

	var r3, negE, negR3Tilde, sPrime fr.Element

	r3.Inverse(blindings.r1)
	negE.Neg(signature.E)
	negR3Tilde.Neg(blindings.r3Tilde)

	// s' = r2 * r3 + s
	sPrime.Mul(blindings.r2, &r3)
	sPrime.Add(&sPrime, signature.S)

	aPrime := g1Mul(signature.A, blindings.r1)
	bR1 := g1Mul(b, blindings.r1)
	aBar := new(commitmentBuilder).add(aPrime, &negE).addPoint(bR1).build()
	d := new(commitmentBuilder).addPoint(bR1).add(gens.Q1, blindings.r2).build()

	c1 := new(commitmentBuilder).add(aPrime, blindings.eTilde).add(gens.Q1, blindings.r2Tilde).build()

	c2Builder := new(commitmentBuilder).add(d, &negR3Tilde).add(gens.Q1, blindings.sTilde)
	for i, j := range undisclosedIndexes {
		c2Builder.add(gens.H[j], blindings.mTilde[i])
	}

	c2 := c2Builder.build()

	disclosedMessages := make([]*SignatureMessage, len(disclosedIndexes))
	for i, idx := range disclosedIndexes {
		disclosedMessages[i] = messages[idx]
	}

	c, err := proofChallenge(aPrime, aBar, d, c1, c2, disclosedIndexes, disclosedMessages, domain,
		presentationHeader)
	if err != nil {
		return nil, err
	}

	mHat := make([]*fr.Element, len(undisclosedIndexes))
	for i, j := range undisclosedIndexes {
		mHat[i] = respond(c, messages[j].FR, blindings.mTilde[i])
	}

	return &PoKOfSignatureProof{
		aPrime: aPrime,
		aBar:   aBar,
		d:      d,
		c:      c,
		eHat:   respond(c, signature.E, blindings.eTilde),
		r2Hat:  respond(c, blindings.r2, blindings.r2Tilde),
		r3Hat:  respond(c, &r3, blindings.r3Tilde),
		sHat:   respond(c, &sPrime, blindings.sTilde),
		mHat:   mHat,
	}, nil
}

func (p *PoKOfSignatureProof) verify(pubKey *PublicKey, header, presentationHeader []byte,
	disclosedMessages []*SignatureMessage, disclosedIndexes []int, gens *Generators) (bool, error) {
	if p.aPrime.IsInfinity() {
		return false, nil
	}

	domain, err := calculateDomain(pubKey, gens, header)
	if err != nil {
		return false, err
	}

	undisclosedIndexes := complementIndexes(disclosedIndexes, gens.Count())

	var negD bls12381.G1Affine

	negD.Neg(p.d)

	// C1 = (Abar - D) * c + A' * e^ + Q1 * r2^
	aBarMinusD := new(commitmentBuilder).addPoint(p.aBar).addPoint(&negD).build()
	c1 := new(commitmentBuilder).add(aBarMinusD, p.c).add(p.aPrime, p.eHat).add(gens.Q1, p.r2Hat).build()

	// T = P1 + Q2 * domain + sum(H_i * m_i) over disclosed messages
	tBuilder := new(commitmentBuilder).addPoint(&p1).add(gens.Q2, domain)
	for i, idx := range disclosedIndexes {
		tBuilder.add(gens.H[idx], disclosedMessages[i].FR)
	}

	t := tBuilder.build()

	// C2 = T * c - D * r3^ + Q1 * s^ + sum(H_j * m^_j) over undisclosed messages
	c2Builder := new(commitmentBuilder).add(t, p.c).add(&negD, p.r3Hat).add(gens.Q1, p.sHat)
	for i, j := range undisclosedIndexes {
		c2Builder.add(gens.H[j], p.mHat[i])
	}

	c2 := c2Builder.build()

	c, err := proofChallenge(p.aPrime, p.aBar, p.d, c1, c2, disclosedIndexes, disclosedMessages, domain,
		presentationHeader)
	if err != nil {
		return false, err
	}

	if !c.Equal(p.c) {
		return false, nil
	}

	return compareTwoPairings(p.aPrime, pubKey.PointG2, p.aBar, &p2)
}

func proofChallenge(aPrime, aBar, d, c1, c2 *bls12381.G1Affine, disclosedIndexes []int,
	disclosedMessages []*SignatureMessage, domain *fr.Element, presentationHeader []byte) (*fr.Element, error) {
	input := make([]byte, 0, 5*g1CompressedSize+len(disclosedIndexes)*(8+frCompressedSize)+
		frCompressedSize+len(presentationHeader)+16)

	for _, p := range []*bls12381.G1Affine{aPrime, aBar, d, c1, c2} {
		input = append(input, g1Bytes(p)...)
	}

	input = append(input, i2osp(uint64(len(disclosedIndexes)), 8)...)

	for i, idx := range disclosedIndexes {
		input = append(input, i2osp(uint64(idx), 8)...)
		input = append(input, frToBytes(disclosedMessages[i].FR)...)
	}

	input = append(input, frToBytes(domain)...)
	input = append(input, i2osp(uint64(len(presentationHeader)), 8)...)
	input = append(input, presentationHeader...)

	return hashToScalar(input, dstHashToScalar)
}

// respond returns c * secret + blinding.
func respond(c, secret, blinding *fr.Element) *fr.Element {
	var res fr.Element

	res.Mul(c, secret)
	res.Add(&res, blinding)

	return &res
}

func complementIndexes(indexes []int, total int) []int {
	disclosed := make(map[int]struct{}, len(indexes))
	for _, idx := range indexes {
		disclosed[idx] = struct{}{}
	}

	complement := make([]int, 0, total-len(indexes))

	for i := 0; i < total; i++ {
		if _, ok := disclosed[i]; !ok {
			complement = append(complement, i)
		}
	}

	return complement
}
