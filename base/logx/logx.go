// Copyright (c) 2025, Inkform Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for the animation core, built
// on [log/slog] with terminal-colored level labels. The active level is
// controlled by [UserLevel], which defaults per build tag (debug builds
// log everything).
package logx

import (
	"log/slog"
	"os"
)

// UserLevel is the minimum level that is actually logged. The default
// is set by build tags; see level_default.go.
var UserLevel = defaultUserLevel

var logger = slog.New(newHandler(os.Stderr))

// Debug logs a message at [slog.LevelDebug]. Recoverable evaluation
// degradations (malformed colors, unparsable timing) log here so they
// are visible in debug builds without polluting normal output.
func Debug(msg string, args ...any) {
	if UserLevel <= slog.LevelDebug {
		logger.Debug(msg, args...)
	}
}

// Info logs a message at [slog.LevelInfo].
func Info(msg string, args ...any) {
	if UserLevel <= slog.LevelInfo {
		logger.Info(msg, args...)
	}
}

// Warn logs a message at [slog.LevelWarn].
func Warn(msg string, args ...any) {
	if UserLevel <= slog.LevelWarn {
		logger.Warn(msg, args...)
	}
}

// Error logs a message at [slog.LevelError].
func Error(msg string, args ...any) {
	if UserLevel <= slog.LevelError {
		logger.Error(msg, args...)
	}
}

// LogError logs the error at [slog.LevelError] if it is non-nil, and
// returns it either way, so call sites can log and propagate in one
// expression.
func LogError(err error) error {
	if err != nil {
		Error(err.Error())
	}
	return err
}
