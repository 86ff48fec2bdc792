/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs12381g2pub

import (
	"errors"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Generators holds the public G1 points needed to sign Count() messages:
// Q1 for the signature blinding scalar, Q2 for the domain and one H per message.
type Generators struct {
	Q1 *bls12381.G1Affine
	Q2 *bls12381.G1Affine
	H  []*bls12381.G1Affine
}

// Count returns the number of message generators.
func (g *Generators) Count() int {
	return len(g.H)
}

// PrepareGenerators deterministically creates generators for count messages.
// Generators for a smaller count are a prefix of those for a larger count.
func PrepareGenerators(count int) (*Generators, error) {
	if count < 0 {
		return nil, errors.New("generators count must not be negative")
	}

	points := make([]*bls12381.G1Affine, count+2)

	for i := range points {
		seed := append([]byte{}, dstGeneratorSeed...)
		seed = append(seed, i2osp(uint64(i), 8)...)

		p, err := bls12381.HashToG1(seed, dstGenerator)
		if err != nil {
			return nil, fmt.Errorf("hash generator %d to curve: %w", i, err)
		}

		points[i] = &p
	}

	return &Generators{Q1: points[0], Q2: points[1], H: points[2:]}, nil
}
