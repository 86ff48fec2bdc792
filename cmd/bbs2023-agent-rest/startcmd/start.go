/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
	"github.com/hyperledger/aries-bbs2023-go/pkg/controller"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/suite/bbs2023"
	ldcontext "github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/context"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/documentloader"
	"github.com/hyperledger/aries-bbs2023-go/pkg/kms/localbbs"
)

const (
	// api host flag.
	agentHostFlagName      = "api-host"
	agentHostEnvKey        = "BBS2023_API_HOST"
	agentHostFlagShorthand = "a"
	agentHostFlagUsage     = "Host Name:Port." +
		" Alternatively, this can be set with the following environment variable: " + agentHostEnvKey

	// api token flag.
	agentTokenFlagName      = "api-token"
	agentTokenEnvKey        = "BBS2023_API_TOKEN" // nolint:gosec
	agentTokenFlagShorthand = "t"
	agentTokenFlagUsage     = "Check for bearer token in the authorization header (optional)." +
		" Alternatively, this can be set with the following environment variable: " + agentTokenEnvKey

	// log level.
	agentLogLevelFlagName  = "log-level"
	agentLogLevelEnvKey    = "BBS2023_LOG_LEVEL"
	agentLogLevelFlagUsage = "Log level." +
		" Possible values [INFO] [DEBUG] [ERROR] [WARNING] [CRITICAL] . Defaults to INFO if not set." +
		" Alternatively, this can be set with the following environment variable: " + agentLogLevelEnvKey

	agentTLSCertFileFlagName      = "tls-cert-file"
	agentTLSCertFileEnvKey        = "BBS2023_TLS_CERT_FILE"
	agentTLSCertFileFlagShorthand = "c"
	agentTLSCertFileFlagUsage     = "tls certificate file." +
		" Alternatively, this can be set with the following environment variable: " + agentTLSCertFileEnvKey

	agentTLSKeyFileFlagName      = "tls-key-file"
	agentTLSKeyFileEnvKey        = "BBS2023_TLS_KEY_FILE"
	agentTLSKeyFileFlagShorthand = "k"
	agentTLSKeyFileFlagUsage     = "tls key file." +
		" Alternatively, this can be set with the following environment variable: " + agentTLSKeyFileEnvKey

	// header mode flag.
	headerModeFlagName  = "header-mode"
	headerModeEnvKey    = "BBS2023_HEADER_MODE"
	headerModeFlagUsage = "Whether the mandatory reveal statements are bound into the signature header." +
		" Possible values [mandatory] [none]. Defaults to mandatory if not set." +
		" Alternatively, this can be set with the following environment variable: " + headerModeEnvKey

	// context file flag.
	contextFileFlagName      = "context-file"
	contextFileEnvKey        = "BBS2023_CONTEXT_FILE"
	contextFileFlagShorthand = "x"
	contextFileFlagUsage     = "Path to a JSON file with extra JSON-LD context documents" +
		" ({url, documentURL, content} or an array of them)." +
		" This flag can be repeated, allowing for multiple files." +
		" Alternatively, this can be set with the following environment variable (in CSV format): " +
		contextFileEnvKey
)

var (
	errMissingHost = errors.New("host not provided")
	logger         = log.New("bbs2023/agent-rest")
)

type agentParameters struct {
	server                  server
	host, token             string
	tlsCertFile, tlsKeyFile string
	headerMode              bbs2023.HeaderMode
	contextFiles            []string
}

type server interface {
	ListenAndServe(host string, router http.Handler, certFile, keyFile string) error
}

// HTTPServer represents an actual server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler, certFile, keyFile string) error {
	if certFile != "" && keyFile != "" {
		return http.ListenAndServeTLS(host, certFile, keyFile, router)
	}

	return http.ListenAndServe(host, router) // nolint:gosec
}

// Cmd returns the Cobra start command.
func Cmd(server server) (*cobra.Command, error) {
	startCmd := createStartCMD(server)

	createFlags(startCmd)

	return startCmd, nil
}

func createStartCMD(server server) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the REST server",
		Long:  `Start the bbs-2023 selective disclosure controller`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := newAgentParameters(server, cmd)
			if err != nil {
				return err
			}

			return startAgent(parameters)
		},
	}
}

func newAgentParameters(server server, cmd *cobra.Command) (*agentParameters, error) {
	logLevel, err := getUserSetVar(cmd, agentLogLevelFlagName, agentLogLevelEnvKey, true)
	if err != nil {
		return nil, err
	}

	err = setLogLevel(logLevel)
	if err != nil {
		return nil, err
	}

	host, err := getUserSetVar(cmd, agentHostFlagName, agentHostEnvKey, false)
	if err != nil {
		return nil, err
	}

	token, err := getUserSetVar(cmd, agentTokenFlagName, agentTokenEnvKey, true)
	if err != nil {
		return nil, err
	}

	tlsCertFile, err := getUserSetVar(cmd, agentTLSCertFileFlagName, agentTLSCertFileEnvKey, true)
	if err != nil {
		return nil, err
	}

	tlsKeyFile, err := getUserSetVar(cmd, agentTLSKeyFileFlagName, agentTLSKeyFileEnvKey, true)
	if err != nil {
		return nil, err
	}

	headerModeValue, err := getUserSetVar(cmd, headerModeFlagName, headerModeEnvKey, true)
	if err != nil {
		return nil, err
	}

	headerMode, err := bbs2023.ParseHeaderMode(headerModeValue)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", headerModeFlagName, err)
	}

	contextFiles, err := getUserSetVars(cmd, contextFileFlagName, contextFileEnvKey, true)
	if err != nil {
		return nil, err
	}

	return &agentParameters{
		server:       server,
		host:         host,
		token:        token,
		tlsCertFile:  tlsCertFile,
		tlsKeyFile:   tlsKeyFile,
		headerMode:   headerMode,
		contextFiles: contextFiles,
	}, nil
}

func createFlags(startCmd *cobra.Command) {
	// agent host flag
	startCmd.Flags().StringP(agentHostFlagName, agentHostFlagShorthand, "", agentHostFlagUsage)

	// agent token flag
	startCmd.Flags().StringP(agentTokenFlagName, agentTokenFlagShorthand, "", agentTokenFlagUsage)

	// log level
	startCmd.Flags().StringP(agentLogLevelFlagName, "", "", agentLogLevelFlagUsage)

	// tls cert file
	startCmd.Flags().StringP(agentTLSCertFileFlagName,
		agentTLSCertFileFlagShorthand, "", agentTLSCertFileFlagUsage)

	// tls key file
	startCmd.Flags().StringP(agentTLSKeyFileFlagName,
		agentTLSKeyFileFlagShorthand, "", agentTLSKeyFileFlagUsage)

	// header mode
	startCmd.Flags().StringP(headerModeFlagName, "", "", headerModeFlagUsage)

	// extra JSON-LD contexts
	startCmd.Flags().StringSliceP(contextFileFlagName, contextFileFlagShorthand, []string{}, contextFileFlagUsage)
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

func getUserSetVars(cmd *cobra.Command, flagName, envKey string, isOptional bool) ([]string, error) {
	if cmd.Flags().Changed(flagName) {
		value, err := cmd.Flags().GetStringSlice(flagName)
		if err != nil {
			return nil, fmt.Errorf(flagName+" flag not found: %s", err)
		}

		return value, nil
	}

	value, isSet := os.LookupEnv(envKey)

	var values []string

	if isSet && value != "" {
		values = strings.Split(value, ",")
	}

	if isOptional || isSet {
		return values, nil
	}

	return nil, fmt.Errorf(" %s not set. "+
		"It must be set via either command line or environment variable", flagName)
}

func setLogLevel(logLevel string) error {
	if logLevel != "" {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("failed to parse log level '%s' : %w", logLevel, err)
		}

		log.SetLevel("", level)

		logger.Infof("logger level set to %s", logLevel)
	}

	return nil
}

func validateAuthorizationBearerToken(w http.ResponseWriter, r *http.Request, token string) bool {
	actHdr := r.Header.Get("Authorization")
	expHdr := "Bearer " + token

	if subtle.ConstantTimeCompare([]byte(actHdr), []byte(expHdr)) != 1 {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Unauthorised.\n")) // nolint:gosec,errcheck

		return false
	}

	return true
}

func authorizationMiddleware(token string) mux.MiddlewareFunc {
	middleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if validateAuthorizationBearerToken(w, r, token) {
				next.ServeHTTP(w, r)
			}
		})
	}

	return middleware
}

func loadContextFiles(paths []string) ([]ldcontext.Document, error) {
	var docs []ldcontext.Document

	for _, path := range paths {
		data, err := os.ReadFile(path) // nolint:gosec
		if err != nil {
			return nil, fmt.Errorf("read context file %s: %w", path, err)
		}

		fileDocs, err := ldcontext.ParseDocuments(data)
		if err != nil {
			return nil, fmt.Errorf("context file %s: %w", path, err)
		}

		docs = append(docs, fileDocs...)
	}

	return docs, nil
}

func createRouter(parameters *agentParameters) (http.Handler, error) {
	contexts, err := loadContextFiles(parameters.contextFiles)
	if err != nil {
		return nil, err
	}

	loader, err := documentloader.NewDocumentLoader(documentloader.WithExtraContexts(contexts...))
	if err != nil {
		return nil, fmt.Errorf("create document loader: %w", err)
	}

	// get all HTTP REST API handlers available for controller API
	handlers, err := controller.GetRESTHandlers(localbbs.New(), controller.WithSuiteOptions(
		bbs2023.WithDocumentLoader(loader), bbs2023.WithHeaderMode(parameters.headerMode)))
	if err != nil {
		return nil, fmt.Errorf("failed to get rest service api : %w", err)
	}

	router := mux.NewRouter()

	if parameters.token != "" {
		router.Use(authorizationMiddleware(parameters.token))
	}

	for _, handler := range handlers {
		router.HandleFunc(handler.Path(), handler.Handle()).Methods(handler.Method())
	}

	return cors.New(
		cors.Options{
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodHead},
			AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		},
	).Handler(router), nil
}

func startAgent(parameters *agentParameters) error {
	if parameters.host == "" {
		return errMissingHost
	}

	handler, err := createRouter(parameters)
	if err != nil {
		return fmt.Errorf("failed to start bbs2023 agent rest on port [%s], cause: %w", parameters.host, err)
	}

	logger.Infof("Starting bbs2023 agent rest on host [%s], header mode [%s]", parameters.host,
		parameters.headerMode)

	err = parameters.server.ListenAndServe(parameters.host, handler, parameters.tlsCertFile, parameters.tlsKeyFile)
	if err != nil {
		return fmt.Errorf("failed to start bbs2023 agent rest on port [%s], cause:  %w", parameters.host, err)
	}

	return nil
}
