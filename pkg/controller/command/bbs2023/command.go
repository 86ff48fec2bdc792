/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/command"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/internal/cmdutil"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/models"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/suite/bbs2023"
	"github.com/hyperledger/aries-bbs2023-go/pkg/internal/logutil"
)

var logger = log.New("bbs2023/command/bbs2023")

// Error codes.
const (
	// InvalidRequestErrorCode is typically a code for invalid requests.
	InvalidRequestErrorCode = command.Code(iota + command.BBS2023)
	// IssueCredentialErrorCode is for failures while signing a credential.
	IssueCredentialErrorCode
	// DeriveProofErrorCode is for failures while deriving a presentation.
	DeriveProofErrorCode
	// VerifyPresentationErrorCode is for presentations that cannot be verified.
	VerifyPresentationErrorCode
	// VerifyCredentialErrorCode is for credentials that cannot be verified.
	VerifyCredentialErrorCode
)

// constants for the bbs2023 commands.
const (
	// command name.
	CommandName = "bbs2023"

	// command methods.
	IssueCommandMethod            = "Issue"
	PresentCommandMethod          = "Present"
	VerifyCommandMethod           = "Verify"
	VerifyCredentialCommandMethod = "VerifyCredential"

	// error messages.
	errEmptyCredential         = "credential is mandatory"
	errEmptyPresentation       = "presentation is mandatory"
	errEmptyVerificationMethod = "verification method is mandatory"
)

// Command runs issuance, presentation and verification with the bbs-2023 suite.
type Command struct {
	signer   *dataintegrity.Signer
	verifier *dataintegrity.Verifier
	holder   *bbs2023.Suite
}

// New returns new bbs2023 command instance. keys provides the issuer private keys, opts configure the suite.
func New(keys bbs2023.KeyManager, opts ...bbs2023.Opt) (*Command, error) {
	suiteOpts := append([]bbs2023.Opt{bbs2023.WithKeyManager(keys)}, opts...)

	holder, err := bbs2023.New(suiteOpts...)
	if err != nil {
		return nil, fmt.Errorf("create bbs-2023 suite: %w", err)
	}

	signer, err := dataintegrity.NewSigner(bbs2023.NewSignerInitializer(suiteOpts...))
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	verifier, err := dataintegrity.NewVerifier(bbs2023.NewVerifierInitializer(suiteOpts...))
	if err != nil {
		return nil, fmt.Errorf("create verifier: %w", err)
	}

	return &Command{signer: signer, verifier: verifier, holder: holder}, nil
}

// GetHandlers returns list of all commands supported by this controller command.
func (o *Command) GetHandlers() []command.Handler {
	return []command.Handler{
		cmdutil.NewCommandHandler(CommandName, IssueCommandMethod, o.Issue),
		cmdutil.NewCommandHandler(CommandName, PresentCommandMethod, o.Present),
		cmdutil.NewCommandHandler(CommandName, VerifyCommandMethod, o.Verify),
		cmdutil.NewCommandHandler(CommandName, VerifyCredentialCommandMethod, o.VerifyCredential),
	}
}

// Issue signs a credential with a bbs-2023 base proof.
func (o *Command) Issue(rw io.Writer, req io.Reader) command.Error {
	var request IssueRequest

	if cmdErr := decode(req, &request, IssueCommandMethod); cmdErr != nil {
		return cmdErr
	}

	if isEmptyJSON(request.Credential) {
		logutil.LogDebug(logger, CommandName, IssueCommandMethod, errEmptyCredential)

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf(errEmptyCredential))
	}

	if request.VerificationMethod == "" {
		logutil.LogDebug(logger, CommandName, IssueCommandMethod, errEmptyVerificationMethod)

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf(errEmptyVerificationMethod))
	}

	signed, err := o.signer.AddProof(request.Credential, &models.ProofOptions{
		Purpose:              request.ProofPurpose,
		VerificationMethodID: request.VerificationMethod,
		SuiteType:            bbs2023.SuiteType,
		ProofType:            models.DataIntegrityProof,
		Created:              timeOrZero(request.Created),
		MandatoryFrame:       request.MandatoryFrame,
		MandatorySelections:  request.MandatorySelections,
	})
	if err != nil {
		logutil.LogError(logger, CommandName, IssueCommandMethod, err.Error(),
			logutil.CreateKeyValueString("verificationMethod", request.VerificationMethod))

		return command.NewExecuteError(IssueCredentialErrorCode, err)
	}

	command.WriteNillableResponse(rw, &IssueResponse{Credential: signed}, logger)

	logutil.LogDebug(logger, CommandName, IssueCommandMethod, "success")

	return nil
}

// Present derives a selective disclosure presentation from a signed credential.
func (o *Command) Present(rw io.Writer, req io.Reader) command.Error {
	var request PresentRequest

	if cmdErr := decode(req, &request, PresentCommandMethod); cmdErr != nil {
		return cmdErr
	}

	if isEmptyJSON(request.Credential) {
		logutil.LogDebug(logger, CommandName, PresentCommandMethod, errEmptyCredential)

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf(errEmptyCredential))
	}

	presentation, err := o.holder.DeriveProof(request.Credential, &models.DeriveOptions{
		Frame:      request.Frame,
		Selections: request.Selections,
		Created:    timeOrZero(request.Created),
		Domain:     request.Domain,
		Challenge:  request.Challenge,
	})
	if err != nil {
		logutil.LogError(logger, CommandName, PresentCommandMethod, err.Error())

		return command.NewExecuteError(DeriveProofErrorCode, err)
	}

	command.WriteNillableResponse(rw, &PresentResponse{Presentation: presentation}, logger)

	logutil.LogDebug(logger, CommandName, PresentCommandMethod, "success")

	return nil
}

// Verify verifies a derived presentation. A proof that does not verify is reported as verified false.
func (o *Command) Verify(rw io.Writer, req io.Reader) command.Error {
	var request VerifyRequest

	if cmdErr := decode(req, &request, VerifyCommandMethod); cmdErr != nil {
		return cmdErr
	}

	if isEmptyJSON(request.Presentation) {
		logutil.LogDebug(logger, CommandName, VerifyCommandMethod, errEmptyPresentation)

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf(errEmptyPresentation))
	}

	verified, err := o.verifier.VerifyPresentation(request.Presentation, &models.ProofOptions{
		Domain:    request.Domain,
		Challenge: request.Challenge,
	})
	if err != nil {
		logutil.LogError(logger, CommandName, VerifyCommandMethod, err.Error())

		return command.NewExecuteError(VerifyPresentationErrorCode, err)
	}

	command.WriteNillableResponse(rw, &VerifyResponse{Verified: verified}, logger)

	logutil.LogDebug(logger, CommandName, VerifyCommandMethod, "success",
		logutil.CreateKeyValueString("verified", fmt.Sprint(verified)))

	return nil
}

// VerifyCredential verifies the base proof of a signed credential.
func (o *Command) VerifyCredential(rw io.Writer, req io.Reader) command.Error {
	var request VerifyCredentialRequest

	if cmdErr := decode(req, &request, VerifyCredentialCommandMethod); cmdErr != nil {
		return cmdErr
	}

	if isEmptyJSON(request.Credential) {
		logutil.LogDebug(logger, CommandName, VerifyCredentialCommandMethod, errEmptyCredential)

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf(errEmptyCredential))
	}

	verified, err := o.verifier.VerifyProof(request.Credential, &models.ProofOptions{
		Purpose: request.ProofPurpose,
		MaxAge:  request.MaxAge,
	})
	if err != nil {
		logutil.LogError(logger, CommandName, VerifyCredentialCommandMethod, err.Error())

		return command.NewExecuteError(VerifyCredentialErrorCode, err)
	}

	command.WriteNillableResponse(rw, &VerifyResponse{Verified: verified}, logger)

	logutil.LogDebug(logger, CommandName, VerifyCredentialCommandMethod, "success",
		logutil.CreateKeyValueString("verified", fmt.Sprint(verified)))

	return nil
}

func decode(req io.Reader, v interface{}, method string) command.Error {
	if req == nil {
		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("empty request"))
	}

	if err := json.NewDecoder(req).Decode(v); err != nil {
		logutil.LogInfo(logger, CommandName, method, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, fmt.Errorf("failed request decode : %w", err))
	}

	return nil
}

// isEmptyJSON reports whether raw carries no value, including an explicit null.
func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)

	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}
