// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gochart draws category charts with github.com/wcharczuk/go-chart.
//
// go-chart lays a chart out and issues drawing calls through its Renderer
// interface. Renderer implements that interface on a gg.Context and keeps
// every filled shape it was asked to draw, tagged with the style class
// name, so pointer positions can be mapped back to bars, slices and
// points:
//
//	engine.NewMux(gochart.New())
package gochart
