// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gonumplot draws statistical charts with gonum.org/v1/plot.
//
// Plots are rasterized by vgimg at the surface device scale and blitted
// into the chart context at client size. Hit testing maps the elements
// back through the plot's data transforms.
package gonumplot
