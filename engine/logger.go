// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"log/slog"

	"github.com/gogpu/ggchart/internal/logging"
)

// Logger returns the logger shared with ggchart.SetLogger.
func Logger() *slog.Logger {
	return logging.Logger()
}
