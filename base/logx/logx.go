// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides various helpful logging functions on top
// of the standard log/slog package, including a colored terminal handler.
package logx

import (
	"fmt"
	"log/slog"
	"os"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [LevelFromFlags] to the level the user passes.
var UserLevel = defaultUserLevel

var defaultUserLevel = slog.LevelInfo

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default [slog] logger to a colored terminal
// handler writing to stderr at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// PrintfInfo is equivalent to [fmt.Printf], but only prints if
// [UserLevel] is at or below [slog.LevelInfo].
func PrintfInfo(format string, a ...any) (n int, err error) {
	if UserLevel <= slog.LevelInfo {
		return fmt.Printf(format, a...)
	}
	return 0, nil
}
