/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bbs2023

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/aries-bbs2023-go/pkg/doc/ld/documentloader"
)

func TestHeaderProtector(t *testing.T) {
	loader, err := documentloader.NewDocumentLoader()
	require.NoError(t, err)

	t.Run("mandatory mode", func(t *testing.T) {
		protector := NewHeaderProtector(HeaderModeMandatory, loader)
		require.Equal(t, HeaderModeMandatory, protector.Mode())

		first, err := protector.Header(IndexSet{6, 7, 9})
		require.NoError(t, err)
		require.NotEmpty(t, first)
		require.Contains(t, string(first), mandatoryHeaderType)

		second, err := protector.Header(IndexSet{6, 7, 9})
		require.NoError(t, err)
		require.Equal(t, first, second)

		altered, err := protector.Header(IndexSet{6, 7})
		require.NoError(t, err)
		require.NotEqual(t, first, altered)

		shifted, err := protector.Header(IndexSet{6, 7, 10})
		require.NoError(t, err)
		require.NotEqual(t, first, shifted)

		empty, err := protector.Header(IndexSet{})
		require.NoError(t, err)
		require.NotEmpty(t, empty)
		require.NotEqual(t, first, empty)
	})

	t.Run("none mode", func(t *testing.T) {
		protector := NewHeaderProtector(HeaderModeNone, loader)

		header, err := protector.Header(nil)
		require.NoError(t, err)
		require.Empty(t, header)

		_, err = protector.Header(IndexSet{1})
		require.ErrorIs(t, err, ErrMandatoryDisclosureDisabled)
	})

	t.Run("missing loader", func(t *testing.T) {
		_, err := NewHeaderProtector(HeaderModeMandatory, nil).Header(IndexSet{1})
		require.ErrorIs(t, err, ErrTransformation)
	})
}

func TestParseHeaderMode(t *testing.T) {
	tests := []struct {
		in      string
		want    HeaderMode
		wantErr bool
	}{
		{in: "", want: HeaderModeMandatory},
		{in: "mandatory", want: HeaderModeMandatory},
		{in: "NONE", want: HeaderModeNone},
		{in: "full", wantErr: true},
	}

	for _, tc := range tests {
		mode, err := ParseHeaderMode(tc.in)
		if tc.wantErr {
			require.Error(t, err)

			continue
		}

		require.NoError(t, err)
		require.Equal(t, tc.want, mode)
	}

	require.Equal(t, "mandatory", HeaderModeMandatory.String())
	require.Equal(t, "none", HeaderModeNone.String())
	require.Equal(t, "HeaderMode(7)", HeaderMode(7).String())
}
