// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/engine"
	"github.com/gogpu/ggchart/internal/debounce"
	"github.com/gogpu/ggchart/internal/merge"
	"github.com/gogpu/ggchart/scene"
	"github.com/gogpu/ggchart/surface"
)

// Kind is the scene kind of a chart object.
const Kind = "chart"

// ResizeDelay is the quiet period after the last "scaling" event before the
// surface is resized.
const ResizeDelay = 5 * time.Millisecond

// bakedOptions are the lowest configuration layer. The scene scales the
// chart, so the engine must not try to follow its container.
var bakedOptions = engine.Values{
	"responsive":          false,
	"maintainAspectRatio": false,
}

// forwarded maps scene pointer events to the surface events engines listen
// for.
var forwarded = []struct{ scene, surface string }{
	{scene.EventMouseMove, surface.MouseMove},
	{scene.EventMouseDown, surface.Click},
	{scene.EventMouseOut, surface.MouseOut},
	{scene.EventTouchStart, surface.TouchStart},
	{scene.EventTouchMove, surface.TouchMove},
}

// Chart is a scene object drawing a chart.
//
// The chart owns an engine instance bound to an off-screen surface sized
// to the object's scaled size times the device pixel ratio. The scene
// draws the surface as an image under the object transform, and pointer
// events on the object are mapped back into surface coordinates.
//
// A Chart is not safe for concurrent use. Like the rest of the scene it
// runs on the goroutine stepping the canvas loop.
type Chart struct {
	obj *scene.Object
	cfg engine.Config

	eng   engine.Engine
	reg   *Registry
	ratio float64

	surf   *surface.Virtual
	inst   engine.Instance
	resize *debounce.Debouncer

	offs      []func()
	destroyed bool
}

// New creates a chart with geometry g and configuration cfg and builds its
// engine instance.
//
// If the engine fails, New returns the chart together with the error. The
// chart has no instance then, and the next SetConfiguration retries.
func New(g scene.Geometry, cfg engine.Config, opts ...Option) (*Chart, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Chart{
		obj:   scene.NewObject(Kind, g),
		cfg:   cfg.Clone(),
		eng:   o.engine,
		reg:   o.registry,
		ratio: o.ratio,
	}
	c.obj.Bind(c)
	c.resize = debounce.New(ResizeDelay, c.resizeNow, c.scheduler)

	c.offs = append(c.offs,
		c.obj.On(scene.EventScaling, func(scene.Event) { c.resize.Trigger() }),
		c.obj.On(scene.EventResized, func(scene.Event) { c.resize.Trigger() }),
		c.obj.On(scene.EventAdded, c.attached),
		c.obj.On(scene.EventRemoved, c.detached),
	)
	for _, f := range forwarded {
		kind := f.surface
		c.offs = append(c.offs, c.obj.On(f.scene, func(ev scene.Event) { c.forward(kind, ev) }))
	}

	if err := c.create(); err != nil {
		return c, err
	}
	return c, nil
}

// Object implements scene.Drawable.
func (c *Chart) Object() *scene.Object { return c.obj }

// Configuration returns a copy of the stored configuration.
func (c *Chart) Configuration() engine.Config { return c.cfg.Clone() }

// Instance returns the live engine instance, or nil.
func (c *Chart) Instance() engine.Instance { return c.inst }

// Surface returns the chart's off-screen surface, or nil before the first
// instance was created.
func (c *Chart) Surface() *surface.Virtual { return c.surf }

// Set writes a property through the scene object. Key "chart" is routed to
// SetConfiguration.
func (c *Chart) Set(key string, value any) error {
	return c.obj.Set(key, value)
}

// SetProperty implements scene.PropertySetter.
func (c *Chart) SetProperty(key string, value any) (bool, error) {
	if key != Kind {
		return false, nil
	}
	partial, err := engine.DecodeConfig(value)
	if err != nil {
		return true, err
	}
	return true, c.SetConfiguration(partial)
}

// Property implements scene.PropertyGetter.
func (c *Chart) Property(key string) (any, bool) {
	if key != Kind {
		return nil, false
	}
	return c.cfg.Tree(), true
}

// SetConfiguration deep-merges partial onto the stored configuration.
//
// A partial naming a type other than the live instance's destroys the
// instance and creates a new one. Any other write updates the live
// instance in place. Without an instance, the write retries creation.
func (c *Chart) SetConfiguration(partial engine.Config) error {
	if c.destroyed {
		return ErrDestroyed
	}
	c.cfg = c.cfg.Merge(partial)
	defer c.obj.RequestRender()

	switch {
	case c.inst == nil:
		return c.create()
	case partial.Type != "" && partial.Type != c.inst.Type():
		Logger().Debug("ggchart: replacing instance", "from", c.inst.Type(), "to", partial.Type)
		c.inst.Destroy()
		c.inst = nil
		return c.create()
	}

	layered := c.layered()
	if c.cfg.Data != nil {
		c.inst.SetData(layered.Data)
	}
	if c.cfg.Options != nil {
		c.inst.SetOptions(layered.Options)
	}
	if err := c.inst.Update(); err != nil {
		Logger().Warn("ggchart: update failed", "type", c.inst.Type(), "err", err)
		return fmt.Errorf("ggchart: update instance: %w", err)
	}
	return nil
}

// layered returns the configuration handed to the engine: baked options,
// then the process defaults, then the object's configuration.
func (c *Chart) layered() engine.Config {
	defaults, plugins := c.reg.snapshot()

	out := engine.Config{
		Type:    c.cfg.Type,
		Data:    merge.Deep(nil, defaults.Data, c.cfg.Data),
		Options: merge.Deep(nil, bakedOptions, defaults.Options, c.cfg.Options),
		Hooks:   c.hooks(defaults.Hooks),
	}
	if out.Type == "" {
		out.Type = defaults.Type
	}
	out.Plugins = append(out.Plugins, plugins...)
	out.Plugins = append(out.Plugins, defaults.Plugins...)
	out.Plugins = append(out.Plugins, c.cfg.Plugins...)
	return out
}

// hooks composes the process hooks with the object's. The object hooks are
// read from the stored configuration when fired, so later writes take
// effect on the live instance.
func (c *Chart) hooks(process engine.Hooks) engine.Hooks {
	return engine.Hooks{
		OnResize: compose(process.OnResize, func() func(engine.Instance, engine.Size) {
			return c.cfg.Hooks.OnResize
		}, c.obj.RequestRender),
		OnProgress: compose(process.OnProgress, func() func(engine.Instance, engine.Animation) {
			return c.cfg.Hooks.OnProgress
		}, c.obj.RequestRender),
		OnComplete: compose(process.OnComplete, func() func(engine.Instance, engine.Animation) {
			return c.cfg.Hooks.OnComplete
		}, c.obj.RequestRender),
		OnHover: compose(process.OnHover, func() func(engine.Instance, engine.ElementEvent) {
			return c.cfg.Hooks.OnHover
		}, c.obj.RequestRender),
		OnClick: compose(process.OnClick, func() func(engine.Instance, engine.ElementEvent) {
			return c.cfg.Hooks.OnClick
		}, nil),
	}
}

func compose[T any](process func(engine.Instance, T), object func() func(engine.Instance, T), after func()) func(engine.Instance, T) {
	return func(inst engine.Instance, v T) {
		if process != nil {
			process(inst, v)
		}
		if fn := object(); fn != nil {
			fn(inst, v)
		}
		if after != nil {
			after()
		}
	}
}

// create builds a new instance on the chart's surface. The surface is
// created on first use and resized to the current scaled size afterwards.
func (c *Chart) create() error {
	w, h := c.obj.ScaledWidth(), c.obj.ScaledHeight()
	ratio := c.pixelRatio()
	if c.surf == nil {
		s, err := surface.New(w, h,
			surface.WithPixelRatio(ratio),
			surface.WithRectProvider(c.boundingRect),
		)
		if err != nil {
			return fmt.Errorf("ggchart: create surface: %w", err)
		}
		if cv := c.obj.Canvas(); cv != nil {
			s.SetScheduler(cv.Loop())
		}
		c.surf = s
	} else if err := c.fitSurface(w, h, ratio); err != nil {
		return err
	}

	cfg := c.layered()
	inst, err := c.eng.New(c.surf, cfg)
	if err != nil {
		Logger().Warn("ggchart: create instance failed", "type", cfg.Type, "err", err)
		return fmt.Errorf("ggchart: create instance: %w", err)
	}
	c.inst = inst
	Logger().Debug("ggchart: instance created", "type", cfg.Type, "width", w, "height", h, "ratio", ratio)
	c.obj.RequestRender()
	return nil
}

func (c *Chart) fitSurface(w, h, ratio float64) error {
	if err := c.surf.SetPixelRatio(ratio); err != nil {
		return fmt.Errorf("ggchart: resize surface: %w", err)
	}
	if err := c.surf.Resize(w, h); err != nil {
		return fmt.Errorf("ggchart: resize surface: %w", err)
	}
	return nil
}

// resizeNow is the debounced "scaling" handler.
func (c *Chart) resizeNow() {
	if c.destroyed || c.surf == nil {
		return
	}
	w, h := c.obj.ScaledWidth(), c.obj.ScaledHeight()
	if err := c.fitSurface(w, h, c.pixelRatio()); err != nil {
		Logger().Warn("ggchart: resize failed", "err", err)
		return
	}
	if c.inst != nil {
		if err := c.inst.Resize(); err != nil {
			Logger().Warn("ggchart: instance resize failed", "err", err)
		}
	}
	Logger().Debug("ggchart: surface resized", "width", w, "height", h)
	c.obj.RequestRender()
}

// scheduler is the debounce clock: the loop of the canvas the chart is on.
func (c *Chart) scheduler() debounce.Scheduler {
	if cv := c.obj.Canvas(); cv != nil {
		return cv.Loop()
	}
	return nil
}

func (c *Chart) pixelRatio() float64 {
	if cv := c.obj.Canvas(); cv != nil && cv.PixelRatio() > 0 {
		return cv.PixelRatio()
	}
	return c.ratio
}

// boundingRect reports the object's untransformed box in scene space.
func (c *Chart) boundingRect() surface.Rect {
	return surface.RectFromBounds(c.obj.Left(), c.obj.Top(), c.obj.ScaledWidth(), c.obj.ScaledHeight())
}

func (c *Chart) attached(scene.Event) {
	if c.surf != nil {
		c.surf.SetScheduler(c.obj.Canvas().Loop())
	}
	// The canvas may have a different pixel ratio.
	c.resize.Trigger()
}

func (c *Chart) detached(scene.Event) {
	if c.surf != nil {
		c.surf.SetScheduler(nil)
	}
}

// forward maps a scene pointer event into the surface's client space and
// dispatches it as kind.
func (c *Chart) forward(kind string, ev scene.Event) {
	if c.obj.Canvas() == nil || c.inst == nil || c.surf == nil {
		return
	}
	p := c.obj.ToLocalPoint(ev.Pointer, scene.OriginLeft, scene.OriginTop)
	if c.obj.FlipX() {
		p.X = c.obj.ScaledWidth() - p.X
	}
	if c.obj.FlipY() {
		p.Y = c.obj.ScaledHeight() - p.Y
	}
	c.surf.Dispatch(surface.PointerEvent{
		Kind:    kind,
		ClientX: c.obj.Left() + p.X,
		ClientY: c.obj.Top() + p.Y,
	})
}

// Render implements scene.Drawable. It draws the surface centered on the
// origin at the unscaled object size; the canvas has applied the object
// transform.
func (c *Chart) Render(dc *gg.Context) {
	if c.inst == nil || c.surf == nil {
		return
	}
	img := c.surf.Snapshot()
	if img == nil {
		return
	}
	w, h := c.obj.Width(), c.obj.Height()
	dc.DrawImageEx(img, gg.DrawImageOptions{
		X:         -w / 2,
		Y:         -h / 2,
		DstWidth:  w,
		DstHeight: h,
	})
}

// ToObject implements scene.Drawable. The configuration is included under
// "chart" without hooks or plugins.
func (c *Chart) ToObject(extra ...string) map[string]any {
	return c.obj.ToObject(append(extra, Kind)...)
}

// Destroy stops pending resizes, removes event subscriptions, destroys the
// instance and closes the surface. It is idempotent.
func (c *Chart) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.resize.Stop()
	for _, off := range c.offs {
		off()
	}
	c.offs = nil
	if c.inst != nil {
		c.inst.Destroy()
		c.inst = nil
	}
	if c.surf != nil {
		if err := c.surf.Close(); err != nil {
			Logger().Warn("ggchart: close surface", "err", err)
		}
	}
	Logger().Debug("ggchart: chart destroyed")
}

// Destroyed reports whether Destroy was called.
func (c *Chart) Destroyed() bool { return c.destroyed }

var (
	_ scene.Drawable       = (*Chart)(nil)
	_ scene.Destroyer      = (*Chart)(nil)
	_ scene.PropertySetter = (*Chart)(nil)
	_ scene.PropertyGetter = (*Chart)(nil)
)
