/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bbs2023 implements the bbs-2023 data integrity cryptographic suite: BBS signatures over
// canonical JSON-LD statements with issuer mandated and holder selected disclosure.
//
// An issuer signs the proof options statements followed by the document statements and may require
// some document statements to be revealed in every presentation. The required indexes are bound into
// the BBS header. A holder derives a zero-knowledge proof revealing the required statements, the
// statements its own frame selects and all proof options statements. A verifier rebuilds the message
// indexes from the revealed credential and the indexes carried by the presentation proof.
package bbs2023

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/multiformats/go-multibase"
	"github.com/piprate/json-gold/ld"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
	"github.com/hyperledger/aries-bbs2023-go/pkg/crypto/primitive/bbs12381g2pub"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/models"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/dataintegrity/suite"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/documentloader"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/frame"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/processor"
	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/util/maphelpers"
)

var logger = log.New("bbs2023/suite")

const (
	// SuiteType "bbs-2023" is the data integrity cryptosuite identifier of this suite.
	SuiteType = "bbs-2023"

	ldCtxKey           = "@context"
	proofKey           = "proof"
	typeKey            = "type"
	vcKey              = "verifiableCredential"
	vpType             = "VerifiablePresentation"
	proofValueEncoding = multibase.Base58BTC
)

// Suite implements the bbs-2023 cryptographic suite. A Suite holds read-only collaborators only and
// is safe for concurrent use.
type Suite struct {
	loader     ld.DocumentLoader
	primitives Primitives
	headers    *HeaderProtector
	keys       KeyManager
	resolveKey KeyResolver
	now        func() time.Time
	proc       *processor.Processor
}

type options struct {
	loader     ld.DocumentLoader
	primitives Primitives
	headerMode HeaderMode
	keys       KeyManager
	resolveKey KeyResolver
	now        func() time.Time
}

// Opt configures a Suite.
type Opt func(opts *options)

// WithDocumentLoader sets the JSON-LD document loader. The default loader serves the embedded contexts.
func WithDocumentLoader(loader ld.DocumentLoader) Opt {
	return func(opts *options) {
		opts.loader = loader
	}
}

// WithPrimitives replaces the BBS implementation.
func WithPrimitives(primitives Primitives) Opt {
	return func(opts *options) {
		opts.primitives = primitives
	}
}

// WithHeaderMode selects what is bound into the BBS header. The default is HeaderModeMandatory.
func WithHeaderMode(mode HeaderMode) Opt {
	return func(opts *options) {
		opts.headerMode = mode
	}
}

// WithKeyManager sets the source of issuer private keys. Issuance fails without one.
func WithKeyManager(keys KeyManager) Opt {
	return func(opts *options) {
		opts.keys = keys
	}
}

// WithKeyResolver replaces the resolution of verification methods to public keys.
func WithKeyResolver(resolver KeyResolver) Opt {
	return func(opts *options) {
		opts.resolveKey = resolver
	}
}

// WithClock sets the time source used for proof creation dates.
func WithClock(now func() time.Time) Opt {
	return func(opts *options) {
		opts.now = now
	}
}

// New creates a Suite.
func New(opts ...Opt) (*Suite, error) {
	o := &options{
		primitives: bbs12381g2pub.New(),
		headerMode: HeaderModeMandatory,
		resolveKey: MultikeyResolver,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.loader == nil {
		loader, err := documentloader.NewDocumentLoader()
		if err != nil {
			return nil, fmt.Errorf("create document loader: %w", err)
		}

		o.loader = loader
	}

	return &Suite{
		loader:     o.loader,
		primitives: o.primitives,
		headers:    NewHeaderProtector(o.headerMode, o.loader),
		keys:       o.keys,
		resolveKey: o.resolveKey,
		now:        o.now,
		proc:       processor.Default(),
	}, nil
}

// SuiteInitializer is the initializer for Suite.
type SuiteInitializer func() (suite.Suite, error)

// NewInitializer constructs an initializer for Suite.
func NewInitializer(opts ...Opt) SuiteInitializer {
	return func() (suite.Suite, error) {
		return New(opts...)
	}
}

type initializer SuiteInitializer

// Signer private, implements suite.SignerInitializer.
func (i initializer) Signer() (suite.Signer, error) {
	return i()
}

// Verifier private, implements suite.VerifierInitializer.
func (i initializer) Verifier() (suite.Verifier, error) {
	return i()
}

// Type private, implements suite.SignerInitializer and
// suite.VerifierInitializer.
func (i initializer) Type() string {
	return SuiteType
}

// NewSignerInitializer returns a suite.SignerInitializer that initializes a bbs-2023 signing Suite.
func NewSignerInitializer(opts ...Opt) suite.SignerInitializer {
	return initializer(NewInitializer(opts...))
}

// NewVerifierInitializer returns a suite.VerifierInitializer that initializes a bbs-2023 verification Suite.
func NewVerifierInitializer(opts ...Opt) suite.VerifierInitializer {
	return initializer(NewInitializer(opts...))
}

// RequiresCreated returns true: proof creation dates are canonicalized into the signed options.
func (s *Suite) RequiresCreated() bool {
	return true
}

// HeaderMode returns the configured header mode.
func (s *Suite) HeaderMode() HeaderMode {
	return s.headers.Mode()
}

func parseDocument(doc []byte) (map[string]interface{}, error) {
	docMap := map[string]interface{}{}

	if err := json.Unmarshal(doc, &docMap); err != nil {
		return nil, fmt.Errorf("%w: bbs-2023 suite expects JSON-LD payload: %w", ErrTransformation, err)
	}

	return docMap, nil
}

// splitProof returns a copy of doc without its proof, and the parsed proof.
func splitProof(doc map[string]interface{}) (map[string]interface{}, *models.Proof, error) {
	raw, ok := doc[proofKey]
	if !ok {
		return nil, nil, fmt.Errorf("%w: document has no proof", ErrTransformation)
	}

	proof, err := models.ParseProof(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrTransformation, err)
	}

	if proof.CryptoSuite != SuiteType {
		return nil, nil, fmt.Errorf("%w: unexpected cryptosuite %q", ErrTransformation, proof.CryptoSuite)
	}

	unsecured := maphelpers.CopyMap(doc)
	delete(unsecured, proofKey)

	return unsecured, proof, nil
}

func (s *Suite) canonicalize(doc map[string]interface{}) (QuadSequence, error) {
	statements, err := s.proc.GetCanonicalStatements(doc, s.loaderOpt())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransformation, err)
	}

	return statements, nil
}

func (s *Suite) canonicalBytes(doc map[string]interface{}) ([]byte, error) {
	canonical, err := s.proc.GetCanonicalDocument(doc, s.loaderOpt())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransformation, err)
	}

	return canonical, nil
}

// assemble canonicalizes the proof options and the unsecured document into the signed message set.
func (s *Suite) assemble(unsecured map[string]interface{}, proof *models.Proof) (*MessageSet, error) {
	optionStatements, err := s.canonicalize(proof.Options(unsecured[ldCtxKey]))
	if err != nil {
		return nil, err
	}

	docStatements, err := s.documentStatements(unsecured)
	if err != nil {
		return nil, err
	}

	messages := AssembleMessages(optionStatements, docStatements)

	logger.Debugf("assembled %d messages, proofN=%d", messages.Len(), messages.ProofN())

	return messages, nil
}

// documentStatements canonicalizes doc. Blank nodes labelled by labelBlankNodes are restored to
// their canonical labels and the statements sorted back into canonical order, so a revealed
// credential yields exactly the statements it was built from.
func (s *Suite) documentStatements(doc map[string]interface{}) (QuadSequence, error) {
	statements, err := s.canonicalize(doc)
	if err != nil {
		return nil, err
	}

	restored := make(QuadSequence, len(statements))
	changed := false

	for i, statement := range statements {
		restored[i] = processor.RestoreBlankNode(statement)
		changed = changed || restored[i] != statement
	}

	if changed {
		sort.Strings(restored)
	}

	return restored, nil
}

// labelBlankNodes rebuilds a document from statements with every blank node turned into a
// urn:bnid IRI carrying its canonical label.
func (s *Suite) labelBlankNodes(statements QuadSequence, ctx interface{}) (map[string]interface{}, error) {
	labelled := make([]string, len(statements))
	for i, statement := range statements {
		labelled[i] = processor.TransformBlankNode(statement)
	}

	doc, err := s.proc.FromStatements(labelled, ctx, s.loaderOpt())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransformation, err)
	}

	return doc, nil
}

// selectStatements frames the document statements of messages and returns the message indexes of
// the statements the frame keeps. A nil frame selects nothing.
func (s *Suite) selectStatements(ctx interface{}, messages *MessageSet,
	frameDoc map[string]interface{}) (IndexSet, error) {
	if frameDoc == nil {
		return IndexSet{}, nil
	}

	docStatements := messages.DocumentStatements()

	labelled, err := s.labelBlankNodes(docStatements, ctx)
	if err != nil {
		return nil, err
	}

	framed, err := s.proc.Frame(labelled, frameDoc, s.loaderOpt())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransformation, err)
	}

	framedStatements, err := s.documentStatements(framed)
	if err != nil {
		return nil, err
	}

	for statement, positions := range Duplicates(docStatements) {
		logger.Warnf("statement repeated at document positions %v is disclosed at all of them: %s",
			positions, statement)
	}

	return messages.MessageIndexes(ResolveIndexes(docStatements, framedStatements)), nil
}

// rootNode returns the node id of the only subject in statements that is not the object of
// another statement.
func rootNode(statements QuadSequence) (string, bool) {
	var subjects []string

	seen := map[string]struct{}{}
	objects := map[string]struct{}{}

	for _, statement := range statements {
		terms := strings.SplitN(processor.TransformBlankNode(statement), " ", 4)
		if len(terms) < 3 {
			continue
		}

		if _, ok := seen[terms[0]]; !ok {
			seen[terms[0]] = struct{}{}
			subjects = append(subjects, terms[0])
		}

		if strings.HasPrefix(terms[2], "<") {
			objects[terms[2]] = struct{}{}
		}
	}

	root := ""

	for _, subject := range subjects {
		if _, ok := objects[subject]; ok {
			continue
		}

		if root != "" {
			return "", false
		}

		root = subject
	}

	return strings.TrimSuffix(strings.TrimPrefix(root, "<"), ">"), root != ""
}

// buildFrame returns the explicit frame, or one built from JSONPath selections over doc. Giving both is an error.
func buildFrame(doc, explicit map[string]interface{}, selections []string) (map[string]interface{}, error) {
	if len(selections) == 0 {
		return explicit, nil
	}

	if explicit != nil {
		return nil, fmt.Errorf("%w: a frame and JSONPath selections are mutually exclusive", ErrTransformation)
	}

	built, err := frame.FromSelections(doc, selections)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransformation, err)
	}

	return built, nil
}

func (s *Suite) scalars(messages [][]byte) ([]*bbs12381g2pub.SignatureMessage, error) {
	scalars, err := s.primitives.MessagesToScalars(messages)
	if err != nil {
		return nil, fmt.Errorf("%w: map messages to scalars: %w", ErrPrimitive, err)
	}

	return scalars, nil
}

func (s *Suite) generators(count int) (*bbs12381g2pub.Generators, error) {
	gens, err := s.primitives.PrepareGenerators(count)
	if err != nil {
		return nil, fmt.Errorf("%w: prepare generators: %w", ErrPrimitive, err)
	}

	return gens, nil
}

func (s *Suite) publicKey(verificationMethod string) ([]byte, error) {
	pubKey, err := s.resolveKey(verificationMethod)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve key of %s: %w", ErrTransformation, verificationMethod, err)
	}

	return pubKey, nil
}

func decodeProofValue(value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: empty proofValue", ErrTransformation)
	}

	_, decoded, err := multibase.Decode(value)
	if err != nil {
		return nil, fmt.Errorf("%w: decode proofValue: %w", ErrTransformation, err)
	}

	return decoded, nil
}

func encodeProofValue(value []byte) (string, error) {
	encoded, err := multibase.Encode(proofValueEncoding, value)
	if err != nil {
		return "", fmt.Errorf("%w: encode proofValue: %w", ErrTransformation, err)
	}

	return encoded, nil
}

func (s *Suite) loaderOpt() processor.Opts {
	return processor.WithDocumentLoader(s.loader)
}
