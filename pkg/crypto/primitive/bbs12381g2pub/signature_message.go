/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs12381g2pub

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// SignatureMessage defines a message to be used for a signature check.
type SignatureMessage struct {
	FR *fr.Element
}

// ParseSignatureMessage maps a byte message to its scalar.
func ParseSignatureMessage(message []byte) (*SignatureMessage, error) {
	elm, err := hashToScalar(message, dstMapMessage)
	if err != nil {
		return nil, err
	}

	return &SignatureMessage{FR: elm}, nil
}

// MessagesToScalars maps every byte message to its scalar, preserving order.
func MessagesToScalars(messages [][]byte) ([]*SignatureMessage, error) {
	scalars := make([]*SignatureMessage, len(messages))

	for i, msg := range messages {
		sm, err := ParseSignatureMessage(msg)
		if err != nil {
			return nil, fmt.Errorf("map message %d to scalar: %w", i, err)
		}

		scalars[i] = sm
	}

	return scalars, nil
}
