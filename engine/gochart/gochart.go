// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gochart

import "github.com/gogpu/ggchart/engine"

// Name is the backend name reported by New.
const Name = "gochart"

// New returns an engine drawing line, bar, pie and doughnut charts.
func New() *engine.Backend {
	return engine.NewBackend(Name, map[string]engine.PainterFactory{
		"line":     newLine,
		"bar":      newBar,
		"pie":      newPie,
		"doughnut": newDoughnut,
	})
}
