/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package clicmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	bbscmd "github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/bbs2023"
	kmscmd "github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/kms"
)

const (
	credentialFlagName      = "credential"
	credentialFlagShorthand = "c"
	credentialFlagUsage     = "Path to the credential JSON file."

	keyFileFlagName  = "key-file"
	keyFileFlagUsage = "Path to a key file written by keygen."

	privateKeyFlagName  = "private-key"
	privateKeyEnvKey    = "BBS2023_PRIVATE_KEY" // nolint:gosec
	privateKeyFlagUsage = "Hex encoded issuer private key, used when no key file is given." +
		" Alternatively, this can be set with the following environment variable: " + privateKeyEnvKey

	mandatoryFlagName  = "mandatory"
	mandatoryFlagUsage = "JSONPath of a value every presentation must reveal, e.g. $.issuer." +
		" This flag can be repeated."

	mandatoryFrameFlagName  = "mandatory-frame"
	mandatoryFrameFlagUsage = "Path to a JSON-LD frame selecting what every presentation must reveal." +
		" Cannot be combined with --" + mandatoryFlagName + "."

	purposeFlagName  = "purpose"
	purposeFlagUsage = "Proof purpose. Defaults to assertionMethod."

	createdFlagName  = "created"
	createdFlagUsage = "Proof creation time in RFC3339 format. Defaults to now."
)

var errMissingKey = errors.New("either --" + keyFileFlagName + " or --" + privateKeyFlagName + " is required")

func issueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Sign a credential with a bbs-2023 base proof",
		RunE: func(cmd *cobra.Command, args []string) error {
			credentialPath, _ := cmd.Flags().GetString(credentialFlagName) // nolint:errcheck
			keyFile, _ := cmd.Flags().GetString(keyFileFlagName)           // nolint:errcheck
			mandatory, _ := cmd.Flags().GetStringSlice(mandatoryFlagName)  // nolint:errcheck
			framePath, _ := cmd.Flags().GetString(mandatoryFrameFlagName)  // nolint:errcheck
			purpose, _ := cmd.Flags().GetString(purposeFlagName)           // nolint:errcheck

			credential, err := readJSONFile(credentialPath)
			if err != nil {
				return err
			}

			privateKey, err := issuerPrivateKey(cmd, keyFile)
			if err != nil {
				return err
			}

			frame, err := readFrameFile(framePath)
			if err != nil {
				return err
			}

			created, err := parseCreated(cmd)
			if err != nil {
				return err
			}

			a, err := newAgent(cmd)
			if err != nil {
				return err
			}

			var keySet kmscmd.CreateKeySetResponse

			err = a.exec(kmscmd.CommandName, kmscmd.ImportKeyCommandMethod,
				&kmscmd.ImportKeyRequest{PrivateKey: privateKey}, &keySet)
			if err != nil {
				return err
			}

			var issued bbscmd.IssueResponse

			err = a.exec(bbscmd.CommandName, bbscmd.IssueCommandMethod, &bbscmd.IssueRequest{
				Credential:          credential,
				VerificationMethod:  keySet.VerificationMethod,
				ProofPurpose:        purpose,
				Created:             created,
				MandatorySelections: mandatory,
				MandatoryFrame:      frame,
			}, &issued)
			if err != nil {
				return err
			}

			return writeOutput(cmd, issued.Credential)
		},
	}

	cmd.Flags().StringP(credentialFlagName, credentialFlagShorthand, "", credentialFlagUsage)
	cmd.Flags().StringP(keyFileFlagName, "", "", keyFileFlagUsage)
	cmd.Flags().StringP(privateKeyFlagName, "", "", privateKeyFlagUsage)
	cmd.Flags().StringSliceP(mandatoryFlagName, "", []string{}, mandatoryFlagUsage)
	cmd.Flags().StringP(mandatoryFrameFlagName, "", "", mandatoryFrameFlagUsage)
	cmd.Flags().StringP(purposeFlagName, "", "", purposeFlagUsage)
	cmd.Flags().StringP(createdFlagName, "", "", createdFlagUsage)
	cmd.Flags().StringP(outFlagName, outFlagShorthand, "", outFlagUsage)

	return cmd
}

func issuerPrivateKey(cmd *cobra.Command, keyFile string) (string, error) {
	if keyFile != "" {
		data, err := readJSONFile(keyFile)
		if err != nil {
			return "", err
		}

		var keySet kmscmd.CreateKeySetResponse

		if err := json.Unmarshal(data, &keySet); err != nil {
			return "", fmt.Errorf("key file %s: %w", keyFile, err)
		}

		if keySet.PrivateKey == "" {
			return "", fmt.Errorf("key file %s has no private key", keyFile)
		}

		return keySet.PrivateKey, nil
	}

	privateKey, err := getUserSetVar(cmd, privateKeyFlagName, privateKeyEnvKey, true)
	if err != nil {
		return "", err
	}

	if privateKey == "" {
		return "", errMissingKey
	}

	return privateKey, nil
}

func parseCreated(cmd *cobra.Command) (*time.Time, error) {
	value, err := cmd.Flags().GetString(createdFlagName)
	if err != nil || value == "" {
		return nil, err
	}

	created, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", createdFlagName, err)
	}

	return &created, nil
}
