/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package clicmd

import (
	"github.com/spf13/cobra"

	bbscmd "github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/bbs2023"
)

const (
	selectionFlagName  = "selection"
	selectionFlagUsage = "JSONPath of a value to reveal, e.g. $.credentialSubject.jobTitle. This flag can be repeated."

	frameFlagName  = "frame"
	frameFlagUsage = "Path to a JSON-LD frame selecting what to reveal. Cannot be combined with --" +
		selectionFlagName + "."

	challengeFlagName  = "challenge"
	challengeFlagUsage = "Challenge bound into the presentation proof."

	domainFlagName  = "domain"
	domainFlagUsage = "Domain bound into the presentation proof."
)

func presentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "present",
		Short: "Derive a selective disclosure presentation from a signed credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			credentialPath, _ := cmd.Flags().GetString(credentialFlagName) // nolint:errcheck
			selections, _ := cmd.Flags().GetStringSlice(selectionFlagName) // nolint:errcheck
			framePath, _ := cmd.Flags().GetString(frameFlagName)           // nolint:errcheck
			challenge, _ := cmd.Flags().GetString(challengeFlagName)       // nolint:errcheck
			domain, _ := cmd.Flags().GetString(domainFlagName)             // nolint:errcheck

			credential, err := readJSONFile(credentialPath)
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

			var presented bbscmd.PresentResponse

			err = a.exec(bbscmd.CommandName, bbscmd.PresentCommandMethod, &bbscmd.PresentRequest{
				Credential: credential,
				Selections: selections,
				Frame:      frame,
				Challenge:  challenge,
				Domain:     domain,
				Created:    created,
			}, &presented)
			if err != nil {
				return err
			}

			return writeOutput(cmd, presented.Presentation)
		},
	}

	cmd.Flags().StringP(credentialFlagName, credentialFlagShorthand, "", credentialFlagUsage)
	cmd.Flags().StringSliceP(selectionFlagName, "", []string{}, selectionFlagUsage)
	cmd.Flags().StringP(frameFlagName, "", "", frameFlagUsage)
	cmd.Flags().StringP(challengeFlagName, "", "", challengeFlagUsage)
	cmd.Flags().StringP(domainFlagName, "", "", domainFlagUsage)
	cmd.Flags().StringP(createdFlagName, "", "", createdFlagUsage)
	cmd.Flags().StringP(outFlagName, outFlagShorthand, "", outFlagUsage)

	return cmd
}
