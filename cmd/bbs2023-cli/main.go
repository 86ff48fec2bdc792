/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/hyperledger/aries-bbs2023-go/cmd/bbs2023-cli/clicmd"
	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
)

// This is an application which issues, derives and verifies bbs-2023 credentials stored in JSON files.
func main() {
	logger := log.New("bbs2023/cli")

	if err := clicmd.Cmd().Execute(); err != nil {
		logger.Fatalf("Failed to run bbs2023-cli: %s", err)
	}
}
