// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/surface"
)

// Common errors returned by engines and instances.
var (
	// ErrUnknownType is returned when no painter handles a chart type.
	ErrUnknownType = errors.New("engine: unknown chart type")

	// ErrDestroyed is returned when operations are attempted on a
	// destroyed instance.
	ErrDestroyed = errors.New("engine: instance is destroyed")

	// ErrNoData is returned when a chart has nothing to draw.
	ErrNoData = errors.New("engine: no data")
)

// Surface is the drawing target an instance is bound to.
// *surface.Virtual implements it.
type Surface interface {
	Draw(fn func(dc *gg.Context)) error
	Clear()
	Width() int
	Height() int
	ClientWidth() float64
	ClientHeight() float64
	PixelRatio() float64
	BoundingRect() surface.Rect
	ComputedStyle() surface.Style
	AddEventListener(kind string, fn func(surface.PointerEvent)) (remove func())
	RequestFrame(fn func(now time.Time)) bool
}

// Instance is a live chart bound to a surface.
type Instance interface {
	// Type returns the chart type the instance was created with.
	Type() string

	Data() Values
	SetData(Values)
	Options() Values
	SetOptions(Values)

	// Surface returns the surface the instance draws into.
	Surface() Surface

	// Update applies the current data and options and repaints.
	Update() error

	// Resize adapts the layout to the surface's current client size.
	Resize() error

	// Destroy releases the instance. Further calls return ErrDestroyed.
	Destroy()
}

// Engine creates instances.
type Engine interface {
	// Types returns the chart types the engine can build.
	Types() []string

	New(s Surface, cfg Config) (Instance, error)
}
