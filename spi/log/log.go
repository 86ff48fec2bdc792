/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package log defines the logging contract shared by the bbs2023 packages and
// any custom logging backend plugged into them.
package log

// Level is a log level for a logging message.
type Level int

// Log levels, most severe first.
const (
	CRITICAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

// Logger represents a general-purpose fmt-style logger.
type Logger interface {
	Panicf(msg string, args ...interface{})
	Fatalf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Debugf(msg string, args ...interface{})
}

// LoggerProvider is a factory for module scoped loggers.
type LoggerProvider interface {
	GetLogger(module string) Logger
}
