/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package log implements a generic string logger for fmt-style log messages intended for developers & debugging.
package log

import (
	"sync"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log/internal/metadata"
	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log/internal/modlog"
	"github.com/hyperledger/aries-bbs2023-go/spi/log"
)

//nolint:lll
const (
	loggerNotInitializedMsg = "Default logger initialized (please call log.Initialize() if you wish to use a custom logger)"
	loggerModule            = "bbs2023/common"
)

//nolint:gochecknoglobals
var (
	loggerProviderInstance log.LoggerProvider
	loggerProviderOnce     sync.Once
)

// Log encapsulates the default or a custom logger to provide module and level based logging.
type Log struct {
	instance log.Logger
	module   string
	once     sync.Once
}

// New creates a Logger for the given module.
// note: the underlying logger instance is lazy initialized on first use.
func New(module string) *Log {
	return &Log{module: module}
}

// Initialize sets a custom logging provider. It must be called before the first log line is written.
func Initialize(l log.LoggerProvider) {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = &modlogProvider{l}
		loggerProviderInstance.GetLogger(loggerModule).Debugf("Logger provider initialized")
	})
}

func loggerProvider() log.LoggerProvider {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = &modlogProvider{}
		loggerProviderInstance.GetLogger(loggerModule).Debugf(loggerNotInitializedMsg)
	})

	return loggerProviderInstance
}

type modlogProvider struct {
	custom log.LoggerProvider
}

func (p *modlogProvider) GetLogger(module string) log.Logger {
	var logger log.Logger
	if p.custom != nil {
		logger = p.custom.GetLogger(module)
	} else {
		logger = modlog.NewDefLog(module)
	}

	return modlog.NewModLog(logger, module)
}

// Fatalf calls Fatalf of the underlying logger.
func (l *Log) Fatalf(msg string, args ...interface{}) {
	l.logger().Fatalf(msg, args...)
}

// Panicf calls Panicf of the underlying logger.
func (l *Log) Panicf(msg string, args ...interface{}) {
	l.logger().Panicf(msg, args...)
}

// Debugf calls Debugf of the underlying logger.
func (l *Log) Debugf(msg string, args ...interface{}) {
	l.logger().Debugf(msg, args...)
}

// Infof calls Infof of the underlying logger.
func (l *Log) Infof(msg string, args ...interface{}) {
	l.logger().Infof(msg, args...)
}

// Warnf calls Warnf of the underlying logger.
func (l *Log) Warnf(msg string, args ...interface{}) {
	l.logger().Warnf(msg, args...)
}

// Errorf calls Errorf of the underlying logger.
func (l *Log) Errorf(msg string, args ...interface{}) {
	l.logger().Errorf(msg, args...)
}

func (l *Log) logger() log.Logger {
	l.once.Do(func() {
		l.instance = loggerProvider().GetLogger(l.module)
	})

	return l.instance
}

// SetLevel sets the logging level of a module. If not set, the default level is INFO.
func SetLevel(module string, level log.Level) {
	metadata.SetLevel(module, level)
}

// GetLevel returns the logging level of a module.
func GetLevel(module string) log.Level {
	return metadata.GetLevel(module)
}

// IsEnabledFor reports whether the level is enabled for the module.
func IsEnabledFor(module string, level log.Level) bool {
	return metadata.IsEnabledFor(module, level)
}

// ParseLevel returns the log level from a string representation.
func ParseLevel(level string) (log.Level, error) {
	return metadata.ParseLevel(level)
}

// ShowCallerInfo shows caller info in log lines for the given module and level.
func ShowCallerInfo(module string, level log.Level) {
	metadata.ShowCallerInfo(module, level)
}

// HideCallerInfo hides caller info in log lines for the given module and level.
func HideCallerInfo(module string, level log.Level) {
	metadata.HideCallerInfo(module, level)
}
