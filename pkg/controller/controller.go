/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package controller

import (
	"fmt"

	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/command"
	bbscmd "github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/bbs2023"
	kmscmd "github.com/hyperledger/aries-bbs2023-go/pkg/controller/command/kms"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/rest"
	bbsrest "github.com/hyperledger/aries-bbs2023-go/pkg/controller/rest/bbs2023"
	kmsrest "github.com/hyperledger/aries-bbs2023-go/pkg/controller/rest/kms"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/suite/bbs2023"
	"github.com/hyperledger/aries-bbs2023-go/pkg/kms/localbbs"
)

type allOpts struct {
	suiteOpts []bbs2023.Opt
}

// Opt represents a controller option.
type Opt func(opts *allOpts)

// WithSuiteOptions passes options to the bbs-2023 suites behind the controller, for example a document
// loader or a header mode.
func WithSuiteOptions(suiteOpts ...bbs2023.Opt) Opt {
	return func(opts *allOpts) {
		opts.suiteOpts = append(opts.suiteOpts, suiteOpts...)
	}
}

// GetRESTHandlers returns all REST handlers provided by controller.
func GetRESTHandlers(keys *localbbs.KeyStore, opts ...Opt) ([]rest.Handler, error) {
	restAPIOpts := &allOpts{}
	// Apply options
	for _, opt := range opts {
		opt(restAPIOpts)
	}

	bbsOp, err := bbsrest.New(keys, restAPIOpts.suiteOpts...)
	if err != nil {
		return nil, fmt.Errorf("create bbs2023 rest command : %w", err)
	}

	kmsOp := kmsrest.New(keys)

	var allHandlers []rest.Handler
	allHandlers = append(allHandlers, kmsOp.GetRESTHandlers()...)
	allHandlers = append(allHandlers, bbsOp.GetRESTHandlers()...)

	return allHandlers, nil
}

// GetCommandHandlers returns all command handlers provided by controller.
func GetCommandHandlers(keys *localbbs.KeyStore, opts ...Opt) ([]command.Handler, error) {
	cmdOpts := &allOpts{}
	// Apply options
	for _, opt := range opts {
		opt(cmdOpts)
	}

	bbsCmd, err := bbscmd.New(keys, cmdOpts.suiteOpts...)
	if err != nil {
		return nil, fmt.Errorf("create bbs2023 command : %w", err)
	}

	var allHandlers []command.Handler
	allHandlers = append(allHandlers, kmscmd.New(keys).GetHandlers()...)
	allHandlers = append(allHandlers, bbsCmd.GetHandlers()...)

	return allHandlers, nil
}
