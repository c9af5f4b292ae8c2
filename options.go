// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"github.com/gogpu/ggchart/engine"
)

// Option configures a Chart during creation.
//
// Example:
//
//	c, err := ggchart.New(geom, cfg,
//	    ggchart.WithEngine(gochart.New()),
//	    ggchart.WithPixelRatio(2),
//	)
type Option func(*options)

type options struct {
	engine   engine.Engine
	registry *Registry
	ratio    float64
}

func defaultOptions() options {
	return options{
		engine:   DefaultEngine(),
		registry: defaultRegistry,
		ratio:    1,
	}
}

// WithEngine sets the engine building chart instances.
// Default is DefaultEngine.
func WithEngine(e engine.Engine) Option {
	return func(o *options) {
		if e != nil {
			o.engine = e
		}
	}
}

// WithRegistry sets the registry supplying plugins and defaults.
// Default is DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithPixelRatio sets the device pixel ratio used while the chart is not on
// a canvas. On a canvas the canvas ratio wins. Default is 1.
func WithPixelRatio(ratio float64) Option {
	return func(o *options) {
		if ratio > 0 {
			o.ratio = ratio
		}
	}
}
