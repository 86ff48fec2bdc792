/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package clicmd

import (
	"github.com/spf13/cobra"

	kmscmd "github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/kms"
)

const (
	seedFlagName  = "seed"
	seedEnvKey    = "BBS2023_KEY_SEED"
	seedFlagUsage = "Hex encoded 32 byte seed. A random key is generated if not set." +
		" Alternatively, this can be set with the following environment variable: " + seedEnvKey
)

func keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a BLS12-381 G2 key pair",
		Long:  `Generate a BLS12-381 G2 key pair and print its did:key verification method and private key`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := getUserSetVar(cmd, seedFlagName, seedEnvKey, true)
			if err != nil {
				return err
			}

			a, err := newAgent(cmd)
			if err != nil {
				return err
			}

			var keySet kmscmd.CreateKeySetResponse

			err = a.exec(kmscmd.CommandName, kmscmd.CreateKeySetCommandMethod, &kmscmd.CreateKeySetRequest{
				Seed:             seed,
				ExportPrivateKey: true,
			}, &keySet)
			if err != nil {
				return err
			}

			return writeOutput(cmd, &keySet)
		},
	}

	cmd.Flags().StringP(seedFlagName, "", "", seedFlagUsage)
	cmd.Flags().StringP(outFlagName, outFlagShorthand, "", outFlagUsage)

	return cmd
}
