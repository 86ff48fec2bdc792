/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package modlog wraps a log.Logger so that each module is filtered by its own level.
package modlog

import (
	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log/internal/metadata"
	"github.com/hyperledger/aries-bbs2023-go/spi/log"
)

// NewModLog returns a module scoped wrapper around logger.
func NewModLog(logger log.Logger, module string) *ModLog {
	return &ModLog{logger: logger, module: module}
}

// ModLog filters messages by the level configured for its module (default INFO).
type ModLog struct {
	logger log.Logger
	module string
}

// Fatalf calls underlying logger.Fatalf.
func (m *ModLog) Fatalf(format string, args ...interface{}) {
	m.logger.Fatalf(format, args...)
}

// Panicf calls underlying logger.Panicf.
func (m *ModLog) Panicf(format string, args ...interface{}) {
	m.logger.Panicf(format, args...)
}

// Debugf logs if DEBUG is enabled for the module.
func (m *ModLog) Debugf(format string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, log.DEBUG) {
		m.logger.Debugf(format, args...)
	}
}

// Infof logs if INFO is enabled for the module.
func (m *ModLog) Infof(format string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, log.INFO) {
		m.logger.Infof(format, args...)
	}
}

// Warnf logs if WARNING is enabled for the module.
func (m *ModLog) Warnf(format string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, log.WARNING) {
		m.logger.Warnf(format, args...)
	}
}

// Errorf logs if ERROR is enabled for the module.
func (m *ModLog) Errorf(format string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, log.ERROR) {
		m.logger.Errorf(format, args...)
	}
}
