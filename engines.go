// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"github.com/gogpu/ggchart/engine"
	"github.com/gogpu/ggchart/engine/gochart"
	"github.com/gogpu/ggchart/engine/gonumplot"
)

// DefaultEngine returns an engine serving every built-in chart type:
// line, bar, pie and doughnut through go-chart, scatter, histogram and
// boxplot through gonum plot.
func DefaultEngine() engine.Engine {
	return engine.NewMux(gochart.New(), gonumplot.New())
}
