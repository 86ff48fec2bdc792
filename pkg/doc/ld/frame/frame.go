/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package frame builds JSON-LD frames with explicit inclusion from JSONPath selections, so that a
// caller can name the credential fields to reveal instead of writing a frame by hand.
package frame

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log"
)

var logger = log.New("bbs2023/frame")

const (
	explicitKey = "@explicit"
	contextKey  = "@context"
	idKey       = "id"
	typeKey     = "type"
)

var (
	// ErrInvalidSelection is returned when a JSONPath selection cannot be parsed or uses an
	// unsupported construct.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrSelectionNotFound is returned when a JSONPath selection matches nothing in the document.
	ErrSelectionNotFound = errors.New("selection does not match the document")
)

// FromSelections validates every JSONPath selection against doc and merges them into a single frame.
// The frame reuses the document context, pins the root node by id and type when present, and
// marks every object on a selected path as explicit so that only the selected leaves are kept.
func FromSelections(doc map[string]interface{}, selections []string) (map[string]interface{}, error) {
	builder := gval.Full(jsonpath.PlaceholderExtension())

	frame := map[string]interface{}{
		contextKey:  doc[contextKey],
		explicitKey: true,
	}

	if id, ok := doc[idKey]; ok {
		frame[idKey] = id
	}

	if t, ok := doc[typeKey]; ok {
		frame[typeKey] = t
	}

	for _, selection := range selections {
		segments, err := parsePath(selection)
		if err != nil {
			return nil, err
		}

		if err = checkSelection(builder, doc, selection); err != nil {
			return nil, err
		}

		addPath(frame, segments)
	}

	logger.Debugf("built frame from %d selections", len(selections))

	return frame, nil
}

func checkSelection(builder gval.Language, doc map[string]interface{}, selection string) error {
	path, err := builder.NewEvaluable(selection)
	if err != nil {
		return fmt.Errorf("%w: build json path evaluator for [%s]: %v", ErrInvalidSelection, selection, err)
	}

	value, err := path(context.TODO(), doc)
	if err != nil {
		return fmt.Errorf("%w: [%s]: %v", ErrSelectionNotFound, selection, err)
	}

	if values, ok := value.([]interface{}); value == nil || (ok && len(values) == 0) {
		return fmt.Errorf("%w: [%s]", ErrSelectionNotFound, selection)
	}

	return nil
}

func addPath(frame map[string]interface{}, segments []string) {
	node := frame

	for i, segment := range segments {
		child, exists := node[segment].(map[string]interface{})

		// an empty frame already reveals the whole subtree
		if exists && len(child) == 0 {
			return
		}

		if i == len(segments)-1 {
			node[segment] = map[string]interface{}{}

			return
		}

		if !exists {
			child = map[string]interface{}{explicitKey: true}
			node[segment] = child
		}

		node = child
	}
}

// parsePath splits a JSONPath of the form $.a.b, $['a']['b'] or $.a[*].b into its property names.
// Array subscripts are dropped since framing applies to every element of a set.
func parsePath(path string) ([]string, error) {
	if !strings.HasPrefix(path, "$") {
		return nil, fmt.Errorf("%w: [%s] must start with $", ErrInvalidSelection, path)
	}

	var segments []string

	rest := path[1:]

	for rest != "" {
		switch {
		case strings.HasPrefix(rest, ".."):
			return nil, fmt.Errorf("%w: [%s] recursive descent is not supported", ErrInvalidSelection, path)
		case rest[0] == '.':
			end := strings.IndexAny(rest[1:], ".[")
			if end < 0 {
				end = len(rest) - 1
			}

			name := rest[1 : end+1]
			if name == "" || name == "*" {
				return nil, fmt.Errorf("%w: [%s] has an empty or wildcard property", ErrInvalidSelection, path)
			}

			segments = append(segments, name)
			rest = rest[end+1:]
		case rest[0] == '[':
			end := strings.Index(rest, "]")
			if end < 0 {
				return nil, fmt.Errorf("%w: [%s] has an unterminated subscript", ErrInvalidSelection, path)
			}

			subscript := rest[1:end]
			rest = rest[end+1:]

			if name, ok := quotedName(subscript); ok {
				segments = append(segments, name)

				continue
			}

			if _, err := strconv.Atoi(subscript); err != nil && subscript != "*" {
				return nil, fmt.Errorf("%w: [%s] has an unsupported subscript %q", ErrInvalidSelection, path, subscript)
			}
		default:
			return nil, fmt.Errorf("%w: [%s] unexpected character %q", ErrInvalidSelection, path, rest[0])
		}
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: [%s] selects the whole document", ErrInvalidSelection, path)
	}

	return segments, nil
}

func quotedName(subscript string) (string, bool) {
	if len(subscript) < 2 {
		return "", false
	}

	first, last := subscript[0], subscript[len(subscript)-1]
	if first != last || (first != '\'' && first != '"') {
		return "", false
	}

	return subscript[1 : len(subscript)-1], true
}
