/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package clicmd

import (
	"errors"

	"github.com/spf13/cobra"

	bbscmd "github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/bbs2023"
)

const (
	presentationFlagName      = "presentation"
	presentationFlagShorthand = "p"
	presentationFlagUsage     = "Path to a derived presentation JSON file."

	baseCredentialFlagUsage = "Path to a signed credential JSON file. Its base proof is verified" +
		" when no presentation is given."

	maxAgeFlagName  = "max-age"
	maxAgeFlagUsage = "Maximum base proof age in seconds. Not checked if zero."
)

var (
	errNothingToVerify = errors.New("either --" + presentationFlagName + " or --" + credentialFlagName +
		" is required")
	errNotVerified = errors.New("proof not verified")
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a derived presentation or the base proof of a signed credential",
		Long: `Verify a derived presentation or the base proof of a signed credential.` +
			` The command fails when the proof does not verify.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			presentationPath, _ := cmd.Flags().GetString(presentationFlagName) // nolint:errcheck
			credentialPath, _ := cmd.Flags().GetString(credentialFlagName)     // nolint:errcheck

			var (
				result bbscmd.VerifyResponse
				err    error
			)

			switch {
			case presentationPath != "":
				err = verifyPresentation(cmd, presentationPath, &result)
			case credentialPath != "":
				err = verifyCredential(cmd, credentialPath, &result)
			default:
				err = errNothingToVerify
			}

			if err != nil {
				return err
			}

			if err := writeOutput(cmd, &result); err != nil {
				return err
			}

			if !result.Verified {
				return errNotVerified
			}

			return nil
		},
	}

	cmd.Flags().StringP(presentationFlagName, presentationFlagShorthand, "", presentationFlagUsage)
	cmd.Flags().StringP(credentialFlagName, credentialFlagShorthand, "", baseCredentialFlagUsage)
	cmd.Flags().StringP(challengeFlagName, "", "", "Expected challenge. Not checked if empty.")
	cmd.Flags().StringP(domainFlagName, "", "", "Expected domain. Not checked if empty.")
	cmd.Flags().StringP(purposeFlagName, "", "", "Expected base proof purpose. Not checked if empty.")
	cmd.Flags().Int64P(maxAgeFlagName, "", 0, maxAgeFlagUsage)
	cmd.Flags().StringP(outFlagName, outFlagShorthand, "", outFlagUsage)

	return cmd
}

func verifyPresentation(cmd *cobra.Command, path string, result *bbscmd.VerifyResponse) error {
	presentation, err := readJSONFile(path)
	if err != nil {
		return err
	}

	challenge, _ := cmd.Flags().GetString(challengeFlagName) // nolint:errcheck
	domain, _ := cmd.Flags().GetString(domainFlagName)       // nolint:errcheck

	a, err := newAgent(cmd)
	if err != nil {
		return err
	}

	return a.exec(bbscmd.CommandName, bbscmd.VerifyCommandMethod, &bbscmd.VerifyRequest{
		Presentation: presentation,
		Challenge:    challenge,
		Domain:       domain,
	}, result)
}

func verifyCredential(cmd *cobra.Command, path string, result *bbscmd.VerifyResponse) error {
	credential, err := readJSONFile(path)
	if err != nil {
		return err
	}

	purpose, _ := cmd.Flags().GetString(purposeFlagName) // nolint:errcheck
	maxAge, _ := cmd.Flags().GetInt64(maxAgeFlagName)    // nolint:errcheck

	a, err := newAgent(cmd)
	if err != nil {
		return err
	}

	return a.exec(bbscmd.CommandName, bbscmd.VerifyCredentialCommandMethod, &bbscmd.VerifyCredentialRequest{
		Credential:   credential,
		ProofPurpose: purpose,
		MaxAge:       maxAge,
	}, result)
}
