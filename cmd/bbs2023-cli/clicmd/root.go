/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package clicmd holds the bbs2023-cli commands. Each command reads JSON files, runs the matching
// controller command and writes the JSON result to a file or to standard output.
package clicmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/command"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/suite/bbs2023"
	ldcontext "github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/context"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/documentloader"
	"github.com/hyperledger/aries-bbs2023-go/pkg/kms/localbbs"
)

const (
	logLevelFlagName  = "log-level"
	logLevelEnvKey    = "BBS2023_LOG_LEVEL"
	logLevelFlagUsage = "Log level." +
		" Possible values [INFO] [DEBUG] [ERROR] [WARNING] [CRITICAL] . Defaults to INFO if not set." +
		" Alternatively, this can be set with the following environment variable: " + logLevelEnvKey

	headerModeFlagName  = "header-mode"
	headerModeEnvKey    = "BBS2023_HEADER_MODE"
	headerModeFlagUsage = "Whether the mandatory reveal statements are bound into the signature header." +
		" Possible values [mandatory] [none]. Defaults to mandatory if not set." +
		" Alternatively, this can be set with the following environment variable: " + headerModeEnvKey

	contextFileFlagName      = "context-file"
	contextFileEnvKey        = "BBS2023_CONTEXT_FILE"
	contextFileFlagShorthand = "x"
	contextFileFlagUsage     = "Path to a JSON file with extra JSON-LD context documents." +
		" This flag can be repeated, allowing for multiple files." +
		" Alternatively, this can be set with the following environment variable (in CSV format): " +
		contextFileEnvKey

	outFlagName      = "out"
	outFlagShorthand = "o"
	outFlagUsage     = "Output file. Defaults to standard output if not set."
)

var (
	errMissingFile = errors.New("input file path is required")
	logger         = log.New("bbs2023/cli")
)

// Cmd returns the bbs2023-cli root command.
func Cmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bbs2023-cli",
		Short:         "bbs-2023 selective disclosure tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringP(logLevelFlagName, "", "", logLevelFlagUsage)
	rootCmd.PersistentFlags().StringP(headerModeFlagName, "", "", headerModeFlagUsage)
	rootCmd.PersistentFlags().StringSliceP(contextFileFlagName, contextFileFlagShorthand, []string{},
		contextFileFlagUsage)

	rootCmd.AddCommand(keygenCmd(), issueCmd(), presentCmd(), verifyCmd())

	return rootCmd
}

// agent dispatches to the controller commands by name and method.
type agent struct {
	handlers map[string]map[string]command.Exec
}

func newAgent(cmd *cobra.Command) (*agent, error) {
	logLevel, err := getUserSetVar(cmd, logLevelFlagName, logLevelEnvKey, true)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		level, parseErr := log.ParseLevel(logLevel)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse log level '%s' : %w", logLevel, parseErr)
		}

		log.SetLevel("", level)
	}

	headerModeValue, err := getUserSetVar(cmd, headerModeFlagName, headerModeEnvKey, true)
	if err != nil {
		return nil, err
	}

	headerMode, err := bbs2023.ParseHeaderMode(headerModeValue)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", headerModeFlagName, err)
	}

	contextFiles, err := getUserSetVars(cmd, contextFileFlagName, contextFileEnvKey)
	if err != nil {
		return nil, err
	}

	var contexts []ldcontext.Document

	for _, path := range contextFiles {
		data, readErr := os.ReadFile(path) // nolint:gosec
		if readErr != nil {
			return nil, fmt.Errorf("read context file %s: %w", path, readErr)
		}

		docs, parseErr := ldcontext.ParseDocuments(data)
		if parseErr != nil {
			return nil, fmt.Errorf("context file %s: %w", path, parseErr)
		}

		contexts = append(contexts, docs...)
	}

	loader, err := documentloader.NewDocumentLoader(documentloader.WithExtraContexts(contexts...))
	if err != nil {
		return nil, fmt.Errorf("create document loader: %w", err)
	}

	commands, err := controller.GetCommandHandlers(localbbs.New(), controller.WithSuiteOptions(
		bbs2023.WithDocumentLoader(loader), bbs2023.WithHeaderMode(headerMode)))
	if err != nil {
		return nil, err
	}

	a := &agent{handlers: make(map[string]map[string]command.Exec)}

	for _, c := range commands {
		fnMap, ok := a.handlers[c.Name()]
		if !ok {
			fnMap = make(map[string]command.Exec)
		}

		fnMap[c.Method()] = c.Handle()
		a.handlers[c.Name()] = fnMap
	}

	return a, nil
}

// exec marshals request, runs the named command and unmarshals its output into response.
func (a *agent) exec(name, method string, request, response interface{}) error {
	exec, ok := a.handlers[name][method]
	if !ok {
		return fmt.Errorf("command %s %s not found", name, method)
	}

	req, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshal %s %s request: %w", name, method, err)
	}

	var buf bytes.Buffer

	if cmdErr := exec(&buf, bytes.NewReader(req)); cmdErr != nil {
		logger.Debugf("%s %s failed with code %d", name, method, cmdErr.Code())

		return fmt.Errorf("%s %s: %w", name, method, cmdErr)
	}

	if err := json.Unmarshal(buf.Bytes(), response); err != nil {
		return fmt.Errorf("unmarshal %s %s result: %w", name, method, err)
	}

	return nil
}

func getUserSetVar(cmd *cobra.Command, flagName, envKey string, isOptional bool) (string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf(flagName+" flag not found: %s", err)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	if isOptional || isSet {
		return value, nil
	}

	return "", errors.New("Neither " + flagName + " (command line flag) nor " + envKey +
		" (environment variable) have been set.")
}

func getUserSetVars(cmd *cobra.Command, flagName, envKey string) ([]string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetStringSlice(flagName)
		if err != nil {
			return nil, fmt.Errorf(flagName+" flag not found: %s", err)
		}

		return value, nil
	}

	if value, isSet := os.LookupEnv(envKey); isSet && value != "" {
		return strings.Split(value, ","), nil
	}

	return nil, nil
}

func readJSONFile(path string) (json.RawMessage, error) {
	if path == "" {
		return nil, errMissingFile
	}

	data, err := os.ReadFile(path) // nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%s is not valid JSON", path)
	}

	return data, nil
}

func readFrameFile(path string) (map[string]interface{}, error) {
	if path == "" {
		return nil, nil
	}

	data, err := readJSONFile(path)
	if err != nil {
		return nil, err
	}

	var frame map[string]interface{}

	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, fmt.Errorf("frame %s: %w", path, err)
	}

	return frame, nil
}

func writeOutput(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	data = append(data, '\n')

	out, err := cmd.Flags().GetString(outFlagName)
	if err != nil {
		return err
	}

	if out == "" {
		_, err = cmd.OutOrStdout().Write(data)

		return err
	}

	return os.WriteFile(out, data, 0o600)
}
