/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package kms

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/aries-bbs2023-go/pkg/controller/command"
	"github.com/hyperledger/aries-bbs2023-go/pkg/kms/localbbs"
)

const testSeed = "0707070707070707070707070707070707070707070707070707070707070707"

func TestNew(t *testing.T) {
	cmd := New(localbbs.New())
	require.NotNil(t, cmd)
	require.Len(t, cmd.GetHandlers(), 2)
}

func TestCreateKeySet(t *testing.T) {
	t.Run("deterministic key from seed", func(t *testing.T) {
		cmd := New(localbbs.New())

		var first, second bytes.Buffer

		require.Nil(t, cmd.CreateKeySet(&first, strings.NewReader(`{"seed":"`+testSeed+`","exportPrivateKey":true}`)))
		require.Nil(t, cmd.CreateKeySet(&second, strings.NewReader(`{"seed":"`+testSeed+`"}`)))

		var res1, res2 CreateKeySetResponse

		require.NoError(t, json.Unmarshal(first.Bytes(), &res1))
		require.NoError(t, json.Unmarshal(second.Bytes(), &res2))

		require.Equal(t, res1.VerificationMethod, res2.VerificationMethod)
		require.True(t, strings.HasPrefix(res1.VerificationMethod, res1.DID+"#z"))
		require.NotEmpty(t, res1.PublicKey)
		require.Len(t, res1.PrivateKey, 64)
		require.Empty(t, res2.PrivateKey)
	})

	t.Run("random key without request body", func(t *testing.T) {
		var b bytes.Buffer

		require.Nil(t, New(localbbs.New()).CreateKeySet(&b, nil))
		require.Contains(t, b.String(), "did:key:z")
	})

	t.Run("validation errors", func(t *testing.T) {
		for _, body := range []string{`{`, `{"seed":"xyz"}`} {
			var b bytes.Buffer

			cmdErr := New(localbbs.New()).CreateKeySet(&b, strings.NewReader(body))
			require.NotNil(t, cmdErr)
			require.Equal(t, command.ValidationError, cmdErr.Type())
			require.Equal(t, InvalidRequestErrorCode, cmdErr.Code())
		}
	})

	t.Run("key store error", func(t *testing.T) {
		var b bytes.Buffer

		cmdErr := New(&failingKeyStore{err: errors.New("store failure")}).CreateKeySet(&b, strings.NewReader(`{}`))
		require.NotNil(t, cmdErr)
		require.Equal(t, command.ExecuteError, cmdErr.Type())
		require.Equal(t, CreateKeySetError, cmdErr.Code())
		require.Contains(t, cmdErr.Error(), "store failure")
	})
}

func TestImportKey(t *testing.T) {
	keyPair, err := localbbs.New().Create(bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		keys := localbbs.New()

		var b bytes.Buffer

		cmdErr := New(keys).ImportKey(&b,
			strings.NewReader(`{"privateKey":"`+hex.EncodeToString(keyPair.PrivateKey)+`"}`))
		require.Nil(t, cmdErr)

		var res CreateKeySetResponse
		require.NoError(t, json.Unmarshal(b.Bytes(), &res))
		require.Equal(t, keyPair.VerificationMethod, res.VerificationMethod)

		stored, err := keys.PrivateKey(res.VerificationMethod)
		require.NoError(t, err)
		require.Equal(t, keyPair.PrivateKey, stored)
	})

	tests := []struct {
		name string
		body string
		code command.Code
		typ  command.Type
	}{
		{name: "invalid json", body: `{`, code: InvalidRequestErrorCode, typ: command.ValidationError},
		{name: "missing key", body: `{}`, code: InvalidRequestErrorCode, typ: command.ValidationError},
		{name: "not hex", body: `{"privateKey":"zz"}`, code: InvalidRequestErrorCode, typ: command.ValidationError},
		{name: "invalid key", body: `{"privateKey":"0102"}`, code: ImportKeyError, typ: command.ExecuteError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b bytes.Buffer

			cmdErr := New(localbbs.New()).ImportKey(&b, strings.NewReader(tc.body))
			require.NotNil(t, cmdErr)
			require.Equal(t, tc.code, cmdErr.Code())
			require.Equal(t, tc.typ, cmdErr.Type())
		})
	}
}

type failingKeyStore struct {
	err error
}

func (f *failingKeyStore) Create([]byte) (*localbbs.KeyPair, error) {
	return nil, f.err
}

func (f *failingKeyStore) Import([]byte) (*localbbs.KeyPair, error) {
	return nil, f.err
}
