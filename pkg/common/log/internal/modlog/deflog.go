/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import (
	"fmt"
	"io"
	builtinlog "log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hyperledger/aries-bbs2023-go/pkg/common/log/internal/metadata"
	"github.com/hyperledger/aries-bbs2023-go/spi/log"
)

const (
	logLevelFormatter   = "UTC %s-> %s "
	logPrefixFormatter  = " [%s] "
	callerInfoFormatter = "- %s "
)

// NewDefLog returns the built-in logger for the given module.
func NewDefLog(module string) *DefLog {
	logger := builtinlog.New(os.Stdout, fmt.Sprintf(logPrefixFormatter, module),
		builtinlog.Ldate|builtinlog.Ltime|builtinlog.LUTC)

	return &DefLog{logger: logger, module: module}
}

// DefLog is the built-in logger on top of the standard library log package.
// Log Format : [<MODULE NAME>] <TIME IN UTC> - <CALLER INFO> -> <LOG LEVEL> <LOG TEXT>.
type DefLog struct {
	logger *builtinlog.Logger
	module string
}

// Fatalf is CRITICAL log formatted followed by a call to os.Exit(1).
func (l *DefLog) Fatalf(format string, args ...interface{}) {
	l.logf(log.CRITICAL, format, args...)
	os.Exit(1)
}

// Panicf is CRITICAL log formatted followed by a call to panic().
func (l *DefLog) Panicf(format string, args ...interface{}) {
	l.logf(log.CRITICAL, format, args...)
	panic(fmt.Sprintf(format, args...))
}

// Debugf logs verbose messages.
func (l *DefLog) Debugf(format string, args ...interface{}) {
	l.logf(log.DEBUG, format, args...)
}

// Infof logs general information messages.
func (l *DefLog) Infof(format string, args ...interface{}) {
	l.logf(log.INFO, format, args...)
}

// Warnf logs possible errors.
func (l *DefLog) Warnf(format string, args ...interface{}) {
	l.logf(log.WARNING, format, args...)
}

// Errorf logs errors.
func (l *DefLog) Errorf(format string, args ...interface{}) {
	l.logf(log.ERROR, format, args...)
}

// SetOutput sets the output destination for the logger.
func (l *DefLog) SetOutput(output io.Writer) {
	l.logger.SetOutput(output)
}

func (l *DefLog) logf(level log.Level, format string, args ...interface{}) {
	const callDepth = 2

	customPrefix := fmt.Sprintf(logLevelFormatter, l.callerInfo(level), metadata.ParseString(level))

	err := l.logger.Output(callDepth, customPrefix+fmt.Sprintf(format, args...))
	if err != nil {
		fmt.Printf("error from logger.Output %v\n", err) //nolint:forbidigo
	}
}

// callerInfo walks the stack past the logging wrappers to find the function that logged.
func (l *DefLog) callerInfo(level log.Level) string {
	if !metadata.IsCallerInfoEnabled(l.module, level) {
		return ""
	}

	const (
		maxCallers = 8
		skip       = 4
		notFound   = "n/a"
	)

	pcs := make([]uintptr, maxCallers)

	n := runtime.Callers(skip, pcs)
	if n == 0 {
		return fmt.Sprintf(callerInfoFormatter, notFound)
	}

	frames := runtime.CallersFrames(pcs[:n])

	for f, more := frames.Next(); ; f, more = frames.Next() {
		_, fnName := filepath.Split(f.Function)

		if f.Function == "" {
			fnName = notFound
		}

		if !isLoggerFrame(fnName) {
			return fmt.Sprintf(callerInfoFormatter, fnName)
		}

		if !more {
			break
		}
	}

	return fmt.Sprintf(callerInfoFormatter, notFound)
}

func isLoggerFrame(fnName string) bool {
	return strings.HasPrefix(fnName, "log.(*Log)") ||
		strings.HasPrefix(fnName, "modlog.(*ModLog)") ||
		strings.HasPrefix(fnName, "modlog.(*DefLog)")
}
