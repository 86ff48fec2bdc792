/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bbs2023-agent-rest (BBS selective disclosure REST server).
//
// Terms Of Service:
//
//	Schemes: https
//	Version: 0.1.0
//	License: SPDX-License-Identifier: Apache-2.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package main

import (
	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-bbs2023-go/cmd/bbs2023-agent-rest/startcmd"
	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
)

// This is an application which starts the bbs-2023 controller API on given port.
func main() {
	rootCmd := &cobra.Command{
		Use: "bbs2023-agent-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	logger := log.New("bbs2023/agent-rest")

	startCmd, err := startcmd.Cmd(&startcmd.HTTPServer{})
	if err != nil {
		logger.Fatalf(err.Error())
	}

	rootCmd.AddCommand(startCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("Failed to run bbs2023-agent-rest: %s", err)
	}
}
