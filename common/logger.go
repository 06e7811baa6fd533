// Copyright 2025 Contributors to the Senscloud project.
// SPDX-License-Identifier: Apache-2.0

package common

// Logger is the sink for debug output emitted at well-defined points of
// request signing and dispatch. It is out of the box compatible with
// `log.Log` in `github.com/apex/log`. Emitting to the sink never affects
// control flow or signing output.
type Logger interface {
	// Debug emits a debug message.
	Debug(msg string)

	// Debugf formats and emits a debug message.
	Debugf(format string, v ...interface{})
}

// DiscardLogger is the default Logger; it drops every message.
var DiscardLogger Logger = logDiscarder{}

type logDiscarder struct{}

func (logDiscarder) Debug(msg string) {}

func (logDiscarder) Debugf(format string, v ...interface{}) {}

// ValidLoggerOrDefault returns the supplied logger if non-nil, otherwise
// DiscardLogger.
func ValidLoggerOrDefault(logger Logger) Logger {
	if logger != nil {
		return logger
	}
	return DiscardLogger
}
