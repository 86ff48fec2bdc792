/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metadata keeps the per-module logging configuration: enabled levels
// and whether caller information is printed.
package metadata

import (
	"errors"
	"strings"
	"sync"

	"github.com/hyperledger/aries-bbs2023-go/spi/log"
)

const (
	defaultLogLevel   = log.INFO
	defaultModuleName = ""
)

//nolint:gochecknoglobals
var (
	rwmutex    = &sync.RWMutex{}
	levels     = map[string]log.Level{}
	hideCaller = map[callerKey]bool{}

	levelNames = []string{"CRITICAL", "ERROR", "WARNING", "INFO", "DEBUG"}
)

type callerKey struct {
	module string
	level  log.Level
}

// SetLevel sets the log level for the given module. An empty module name sets the default.
func SetLevel(module string, level log.Level) {
	rwmutex.Lock()
	defer rwmutex.Unlock()

	levels[module] = level
}

// GetLevel returns the log level of the given module, falling back to the default level.
func GetLevel(module string) log.Level {
	rwmutex.RLock()
	defer rwmutex.RUnlock()

	return getLevel(module)
}

func getLevel(module string) log.Level {
	if level, ok := levels[module]; ok {
		return level
	}

	if level, ok := levels[defaultModuleName]; ok {
		return level
	}

	return defaultLogLevel
}

// IsEnabledFor reports whether messages of the given level are logged for the module.
func IsEnabledFor(module string, level log.Level) bool {
	rwmutex.RLock()
	defer rwmutex.RUnlock()

	return level <= getLevel(module)
}

// ShowCallerInfo enables caller info in log lines for the given module and level.
func ShowCallerInfo(module string, level log.Level) {
	rwmutex.Lock()
	defer rwmutex.Unlock()

	hideCaller[callerKey{module, level}] = false
}

// HideCallerInfo disables caller info in log lines for the given module and level.
func HideCallerInfo(module string, level log.Level) {
	rwmutex.Lock()
	defer rwmutex.Unlock()

	hideCaller[callerKey{module, level}] = true
}

// IsCallerInfoEnabled reports whether caller info is printed. Enabled unless hidden.
func IsCallerInfoEnabled(module string, level log.Level) bool {
	rwmutex.RLock()
	defer rwmutex.RUnlock()

	if hidden, ok := hideCaller[callerKey{module, level}]; ok {
		return !hidden
	}

	return !hideCaller[callerKey{defaultModuleName, level}]
}

// ParseLevel returns the log level from its case-insensitive name.
func ParseLevel(level string) (log.Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(name, level) {
			return log.Level(i), nil
		}
	}

	return log.ERROR, errors.New("logger: invalid log level")
}

// ParseString returns the name of the given log level.
func ParseString(level log.Level) string {
	if level < 0 || int(level) >= len(levelNames) {
		return "UNKNOWN"
	}

	return levelNames[level]
}
