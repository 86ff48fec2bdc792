/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mocklogger

import (
	"fmt"
	"sync"

	"github.com/hyperledger/aries-bbs2023-go/spi/log"
)

// MockLogger is a mocked logger that can be used for testing. It records every line it receives.
type MockLogger struct {
	mu    sync.Mutex
	Lines []string
}

func (l *MockLogger) record(module, level, msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.Lines = append(l.Lines, fmt.Sprintf("%s %s %s", module, level, fmt.Sprintf(msg, args...)))
}

// Contains reports whether a line equal to line was recorded.
func (l *MockLogger) Contains(line string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, recorded := range l.Lines {
		if recorded == line {
			return true
		}
	}

	return false
}

// Provider is a mock logger provider that can be used for testing.
type Provider struct {
	MockLogger *MockLogger
}

// GetLogger returns a logger writing into the provider's MockLogger.
func (p *Provider) GetLogger(module string) log.Logger {
	return &moduleLogger{module: module, logger: p.MockLogger}
}

type moduleLogger struct {
	module string
	logger *MockLogger
}

func (m *moduleLogger) Panicf(msg string, args ...interface{}) {
	m.logger.record(m.module, "PANIC", msg, args...)
}

func (m *moduleLogger) Fatalf(msg string, args ...interface{}) {
	m.logger.record(m.module, "FATAL", msg, args...)
}

func (m *moduleLogger) Errorf(msg string, args ...interface{}) {
	m.logger.record(m.module, "ERROR", msg, args...)
}

func (m *moduleLogger) Warnf(msg string, args ...interface{}) {
	m.logger.record(m.module, "WARN", msg, args...)
}

func (m *moduleLogger) Infof(msg string, args ...interface{}) {
	m.logger.record(m.module, "INFO", msg, args...)
}

func (m *moduleLogger) Debugf(msg string, args ...interface{}) {
	m.logger.record(m.module, "DEBUG", msg, args...)
}
