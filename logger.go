// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lsystem

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false so callers
// never format attributes while logging is off.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(slog.New(discardHandler{}))
}

// SetLogger sets the logger used by lsystem and its sub-packages.
// The package is silent until SetLogger is called; passing nil makes it
// silent again. Safe for concurrent use.
//
// Levels:
//   - [slog.LevelDebug]: per-pass summaries (literal, rule and drop counts)
//   - [slog.LevelInfo]: fit transforms
//   - [slog.LevelWarn]: cursors left on the save stack at the end of a pass
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	activeLogger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
