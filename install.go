// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"

	"github.com/gogpu/ggchart/engine"
	"github.com/gogpu/ggchart/scene"
)

// Install registers the "chart" kind on r so that serialized charts can be
// loaded. A nil r installs on scene.DefaultRegistry. opts apply to every
// chart the factory builds.
//
// Returns ErrNoChartTypes if the configured engine builds nothing.
func Install(r *scene.Registry, opts ...Option) error {
	if r == nil {
		r = scene.DefaultRegistry()
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.engine.Types()) == 0 {
		return ErrNoChartTypes
	}
	if _, ok := r.Lookup(Kind); ok {
		Logger().Debug("ggchart: replacing installed kind", "kind", Kind)
	}
	r.Register(Kind, func(props map[string]any) (scene.Drawable, error) {
		return fromObject(props, opts...)
	})
	return nil
}

// fromObject builds a chart from the output of ToObject.
func fromObject(props map[string]any, opts ...Option) (*Chart, error) {
	g, err := scene.DecodeGeometry(props)
	if err != nil {
		return nil, err
	}
	cfg, err := engine.DecodeConfig(props[Kind])
	if err != nil {
		return nil, fmt.Errorf("ggchart: %w", err)
	}
	c, err := New(g, cfg, opts...)
	if err != nil {
		c.Destroy()
		return nil, err
	}
	return c, nil
}
