/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/command"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/internal/cmdutil"
	"github.com/hyperledger/aries-bbs2023-go/pkg/internal/logutil"
	"github.com/hyperledger/aries-bbs2023-go/pkg/kms/localbbs"
)

var logger = log.New("bbs2023/command/kms")

// Error codes.
const (
	// InvalidRequestErrorCode is typically a code for invalid requests.
	InvalidRequestErrorCode = command.Code(iota + command.KMS)
	// CreateKeySetError is for failures while creating a key pair.
	CreateKeySetError
	// ImportKeyError is for failures while importing a key.
	ImportKeyError
)

// constants for KMS commands.
const (
	// command name.
	CommandName = "kms"

	// command methods.
	CreateKeySetCommandMethod = "CreateKeySet"
	ImportKeyCommandMethod    = "ImportKey"

	// error messages.
	errEmptyPrivateKey = "private key is mandatory"
)

// KeyStore creates and imports BBS key pairs.
type KeyStore interface {
	Create(seed []byte) (*localbbs.KeyPair, error)
	Import(privKey []byte) (*localbbs.KeyPair, error)
}

// Command contains key management operations provided by the controller.
type Command struct {
	keys KeyStore
}

// New returns new kms command instance.
func New(keys KeyStore) *Command {
	return &Command{keys: keys}
}

// GetHandlers returns list of all commands supported by this controller command.
func (o *Command) GetHandlers() []command.Handler {
	return []command.Handler{
		cmdutil.NewCommandHandler(CommandName, CreateKeySetCommandMethod, o.CreateKeySet),
		cmdutil.NewCommandHandler(CommandName, ImportKeyCommandMethod, o.ImportKey),
	}
}

// CreateKeySet creates a BLS12-381 G2 key pair, stores the private key and returns the verification method.
func (o *Command) CreateKeySet(rw io.Writer, req io.Reader) command.Error {
	var request CreateKeySetRequest

	if req != nil {
		if err := json.NewDecoder(req).Decode(&request); err != nil && err != io.EOF {
			logutil.LogInfo(logger, CommandName, CreateKeySetCommandMethod, err.Error())

			return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("failed request decode : %w", err))
		}
	}

	var seed []byte

	if request.Seed != "" {
		decoded, err := hex.DecodeString(request.Seed)
		if err != nil {
			logutil.LogInfo(logger, CommandName, CreateKeySetCommandMethod, err.Error())

			return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("invalid seed: %w", err))
		}

		seed = decoded
	}

	keyPair, err := o.keys.Create(seed)
	if err != nil {
		logutil.LogError(logger, CommandName, CreateKeySetCommandMethod, err.Error())

		return command.NewExecuteError(CreateKeySetError, err)
	}

	command.WriteNillableResponse(rw, keySetResponse(keyPair, request.ExportPrivateKey), logger)

	logutil.LogDebug(logger, CommandName, CreateKeySetCommandMethod, "success",
		logutil.CreateKeyValueString("verificationMethod", keyPair.VerificationMethod))

	return nil
}

// ImportKey stores an existing private key and returns its verification method.
func (o *Command) ImportKey(rw io.Writer, req io.Reader) command.Error {
	var request ImportKeyRequest

	if err := json.NewDecoder(req).Decode(&request); err != nil {
		logutil.LogInfo(logger, CommandName, ImportKeyCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("failed request decode : %w", err))
	}

	if request.PrivateKey == "" {
		logutil.LogDebug(logger, CommandName, ImportKeyCommandMethod, errEmptyPrivateKey)

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf(errEmptyPrivateKey))
	}

	privKey, err := hex.DecodeString(request.PrivateKey)
	if err != nil {
		logutil.LogInfo(logger, CommandName, ImportKeyCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("invalid private key: %w", err))
	}

	keyPair, err := o.keys.Import(privKey)
	if err != nil {
		logutil.LogError(logger, CommandName, ImportKeyCommandMethod, err.Error())

		return command.NewExecuteError(ImportKeyError, err)
	}

	command.WriteNillableResponse(rw, keySetResponse(keyPair, false), logger)

	logutil.LogDebug(logger, CommandName, ImportKeyCommandMethod, "success",
		logutil.CreateKeyValueString("verificationMethod", keyPair.VerificationMethod))

	return nil
}

func keySetResponse(keyPair *localbbs.KeyPair, exportPrivateKey bool) *CreateKeySetResponse {
	res := &CreateKeySetResponse{
		VerificationMethod: keyPair.VerificationMethod,
		DID:                keyPair.DID,
		PublicKey:          base64.RawURLEncoding.EncodeToString(keyPair.PublicKey),
	}

	if exportPrivateKey {
		res.PrivateKey = hex.EncodeToString(keyPair.PrivateKey)
	}

	return res
}
