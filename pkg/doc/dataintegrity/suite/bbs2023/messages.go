/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import "fmt"

// MessageSet is the ordered message sequence signed by a base proof: the canonical proof options
// statements followed by the canonical document statements. It is never modified after assembly.
//
// The options count (ProofN) is not transmitted. Every role derives it from its own canonicalization,
// so diverging canonical forms shift all document indexes and make verification fail.
type MessageSet struct {
	statements QuadSequence
	proofN     int
}

// AssembleMessages concatenates the options and document statements.
func AssembleMessages(options, document QuadSequence) *MessageSet {
	statements := make(QuadSequence, 0, len(options)+len(document))
	statements = append(statements, options...)
	statements = append(statements, document...)

	return &MessageSet{statements: statements, proofN: len(options)}
}

// ProofN returns the number of proof options statements, the offset of the first document statement.
func (m *MessageSet) ProofN() int {
	return m.proofN
}

// Len returns the total number of messages.
func (m *MessageSet) Len() int {
	return len(m.statements)
}

// OptionIndexes returns the message indexes of all proof options statements.
func (m *MessageSet) OptionIndexes() IndexSet {
	indexes := make(IndexSet, m.proofN)
	for i := range indexes {
		indexes[i] = i
	}

	return indexes
}

// DocumentIndex maps a message index to its position in the document statements.
func (m *MessageSet) DocumentIndex(messageIndex int) (int, error) {
	if messageIndex < m.proofN || messageIndex >= len(m.statements) {
		return 0, fmt.Errorf("%w: %d is not a document message in [%d, %d)", ErrIndexOutOfRange,
			messageIndex, m.proofN, len(m.statements))
	}

	return messageIndex - m.proofN, nil
}

// MessageIndexes maps positions in the document statements to message indexes.
func (m *MessageSet) MessageIndexes(documentIndexes IndexSet) IndexSet {
	indexes := make(IndexSet, len(documentIndexes))
	for i, idx := range documentIndexes {
		indexes[i] = idx + m.proofN
	}

	return indexes
}

// DocumentStatements returns the document part of the sequence.
func (m *MessageSet) DocumentStatements() QuadSequence {
	return append(QuadSequence{}, m.statements[m.proofN:]...)
}

// Select returns the statements at the given message indexes.
func (m *MessageSet) Select(indexes IndexSet) (QuadSequence, error) {
	if err := ValidateIndexes(indexes, len(m.statements)); err != nil {
		return nil, err
	}

	selected := make(QuadSequence, len(indexes))
	for i, idx := range indexes {
		selected[i] = m.statements[idx]
	}

	return selected, nil
}

// Bytes returns every message as UTF-8 bytes, in order.
func (m *MessageSet) Bytes() [][]byte {
	messages := make([][]byte, len(m.statements))
	for i, statement := range m.statements {
		messages[i] = []byte(statement)
	}

	return messages
}
