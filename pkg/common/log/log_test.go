/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log/mocklogger"
	"github.com/hyperledger/aries-bbs2023-go/spi/log"
)

func TestCustomProvider(t *testing.T) {
	mockLogger := &mocklogger.MockLogger{}
	provider := &mocklogger.Provider{MockLogger: mockLogger}
	Initialize(provider)

	const module = "log-test"

	logger := New(module)
	SetLevel(module, log.WARNING)
	require.Equal(t, log.WARNING, GetLevel(module))
	require.False(t, IsEnabledFor(module, log.INFO))

	logger.Infof("dropped %d", 1)
	logger.Warnf("kept %d", 2)
	logger.Errorf("kept %d", 3)

	require.True(t, mockLogger.Contains("log-test WARN kept 2"))
	require.True(t, mockLogger.Contains("log-test ERROR kept 3"))
	require.False(t, mockLogger.Contains("log-test INFO dropped 1"))

	level, err := ParseLevel("debug")
	require.NoError(t, err)
	SetLevel(module, level)

	logger.Debugf("now visible")
	require.True(t, mockLogger.Contains("log-test DEBUG now visible"))
}
