// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"image"
	"image/color"
	"time"

	"github.com/gogpu/gg"
	"github.com/jonboulle/clockwork"

	"github.com/gogpu/ggchart/internal/logging"
)

// Canvas is an ordered collection of drawables rendered onto a gg.Context.
// Later objects are drawn on top and receive pointer events first.
//
// Canvas is NOT safe for concurrent use; drive it from one goroutine, the
// same one that calls Loop().Step.
type Canvas struct {
	dc            *gg.Context
	ratio         float64
	background    color.Color
	objects       []Drawable
	loop          *Loop
	hovered       Drawable
	renderPending bool
	renders       int
}

// CanvasOption configures a Canvas.
type CanvasOption func(*canvasOptions)

type canvasOptions struct {
	ratio      float64
	clock      clockwork.Clock
	loop       *Loop
	background color.Color
}

// WithPixelRatio renders at ratio device pixels per logical pixel.
func WithPixelRatio(ratio float64) CanvasOption {
	return func(o *canvasOptions) {
		if ratio > 0 {
			o.ratio = ratio
		}
	}
}

// WithClock drives the canvas loop with clock.
func WithClock(clock clockwork.Clock) CanvasOption {
	return func(o *canvasOptions) {
		o.clock = clock
	}
}

// WithLoop shares an existing loop.
func WithLoop(l *Loop) CanvasOption {
	return func(o *canvasOptions) {
		o.loop = l
	}
}

// WithBackground fills the canvas with c before each render.
func WithBackground(c color.Color) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// NewCanvas creates a canvas of width × height logical pixels.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	o := canvasOptions{ratio: 1}
	for _, opt := range opts {
		opt(&o)
	}
	loop := o.loop
	if loop == nil {
		loop = NewLoop(o.clock)
	}
	return &Canvas{
		dc:         gg.NewContext(width, height, gg.WithDeviceScale(o.ratio)),
		ratio:      o.ratio,
		background: o.background,
		loop:       loop,
	}
}

// Loop returns the canvas loop.
func (c *Canvas) Loop() *Loop { return c.loop }

// PixelRatio returns the device pixel ratio.
func (c *Canvas) PixelRatio() float64 { return c.ratio }

// Width returns the logical width.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the logical height.
func (c *Canvas) Height() int { return c.dc.Height() }

// Context returns the drawing context of the canvas.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Image returns the last rendered frame.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// Renders returns how many times RenderAll ran.
func (c *Canvas) Renders() int { return c.renders }

// Add appends drawables and fires "added" on each.
func (c *Canvas) Add(ds ...Drawable) {
	for _, d := range ds {
		o := d.Object()
		if o.canvas != nil && o.canvas != c {
			o.canvas.Remove(d)
		}
		o.canvas = c
		c.objects = append(c.objects, d)
		o.Fire(EventAdded, Event{})
	}
	c.RequestRenderAll()
}

// Remove detaches d and fires "removed". It reports whether d was found.
func (c *Canvas) Remove(d Drawable) bool {
	for i, x := range c.objects {
		if x != d {
			continue
		}
		c.objects = append(c.objects[:i:i], c.objects[i+1:]...)
		if c.hovered == d {
			c.hovered = nil
		}
		o := d.Object()
		o.canvas = nil
		o.Fire(EventRemoved, Event{})
		c.RequestRenderAll()
		return true
	}
	return false
}

// Clear removes and destroys every object.
func (c *Canvas) Clear() {
	for len(c.objects) > 0 {
		d := c.objects[len(c.objects)-1]
		c.Remove(d)
		if x, ok := d.(Destroyer); ok {
			x.Destroy()
		}
	}
}

// Objects returns the drawables in paint order.
func (c *Canvas) Objects() []Drawable {
	return append([]Drawable(nil), c.objects...)
}

// RequestRenderAll schedules one RenderAll on the next loop frame.
// Requests made before that frame are coalesced.
func (c *Canvas) RequestRenderAll() {
	if c.renderPending {
		return
	}
	c.renderPending = true
	c.loop.RequestFrame(func(time.Time) {
		c.renderPending = false
		c.RenderAll()
	})
}

// RenderAll paints every visible object and clears dirty flags.
func (c *Canvas) RenderAll() {
	c.renders++
	if c.background != nil {
		c.dc.ClearWithColor(gg.FromColor(c.background))
	} else {
		c.dc.Clear()
	}
	for _, d := range c.objects {
		o := d.Object()
		if !o.Visible() {
			continue
		}
		c.dc.Push()
		c.dc.Transform(o.Matrix())
		d.Render(c.dc)
		c.dc.Pop()
		o.dirty = false
	}
}

// FindTarget returns the topmost visible object containing p, or nil.
func (c *Canvas) FindTarget(p gg.Point) Drawable {
	for i := len(c.objects) - 1; i >= 0; i-- {
		d := c.objects[i]
		o := d.Object()
		if o.Visible() && o.ContainsPoint(p) {
			return d
		}
	}
	return nil
}

// HandlePointer feeds a pointer event in scene coordinates. Pointer kinds
// are the object event names; EventMouseOut means the pointer left the
// canvas. Moving between objects fires "mouseout" on the old target and
// "mouseover" on the new one.
func (c *Canvas) HandlePointer(kind string, x, y float64) {
	p := gg.Pt(x, y)
	if kind == EventMouseOut {
		c.setHovered(nil, p)
		return
	}

	target := c.FindTarget(p)
	if kind == EventMouseMove {
		c.setHovered(target, p)
	}
	if target == nil {
		return
	}
	logging.Logger().Debug("scene: pointer", "kind", kind, "x", x, "y", y, "target", target.Object().Kind())
	target.Object().Fire(kind, Event{Pointer: p, Target: target})
}

func (c *Canvas) setHovered(d Drawable, p gg.Point) {
	if c.hovered == d {
		return
	}
	if c.hovered != nil {
		c.hovered.Object().Fire(EventMouseOut, Event{Pointer: p, Target: c.hovered})
	}
	c.hovered = d
	if d != nil {
		d.Object().Fire(EventMouseOver, Event{Pointer: p, Target: d})
	}
}

// Close destroys every object and releases the drawing context.
func (c *Canvas) Close() error {
	c.Clear()
	return c.dc.Close()
}
