// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "errors"

// Common errors returned by ggchart.
var (
	// ErrDestroyed is returned when a destroyed chart is configured.
	ErrDestroyed = errors.New("ggchart: chart is destroyed")

	// ErrNoChartTypes is returned by Install when the engine builds no
	// chart type.
	ErrNoChartTypes = errors.New("ggchart: engine serves no chart types")
)
