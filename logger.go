// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"log/slog"

	"github.com/gogpu/ggchart/internal/logging"
)

// SetLogger configures the logger for ggchart and all its sub-packages.
// By default, ggchart produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by ggchart:
//   - [slog.LevelDebug]: instance lifecycle, resizes, pointer dispatch
//   - [slog.LevelWarn]: engine errors returned to the caller, skipped objects
//
// Example:
//
//	ggchart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by ggchart.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
