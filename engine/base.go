// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"math"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/internal/merge"
	"github.com/gogpu/ggchart/surface"
)

// Element is a hit-testable part of a chart: a bar, a slice, a point.
type Element struct {
	Dataset int
	Index   int
	Label   string
	Value   float64
	// X and Y anchor the tooltip, in chart pixels.
	X, Y float64
}

// Frame is everything a Painter needs for one paint.
type Frame struct {
	Width, Height float64
	Progress      float64
	Data          Data
	Options       Options
	Active        *Element
}

// Painter draws one chart type.
type Painter interface {
	// Paint draws f onto dc in chart pixels. dc is cleared beforehand.
	Paint(dc *gg.Context, f Frame) error

	// ElementAt returns the element at x, y of the last painted frame.
	ElementAt(x, y float64) (Element, bool)
}

// pointerKinds are the surface events an instance listens to.
var pointerKinds = []string{
	surface.MouseMove,
	surface.Click,
	surface.MouseOut,
	surface.TouchStart,
	surface.TouchMove,
}

// Base is the shared Instance implementation. It owns decoding, animation,
// interaction and plugins; a Painter draws.
//
// Base is NOT safe for concurrent use. All callbacks run from the
// surface's frame scheduler or from the caller of its methods.
type Base struct {
	kind    string
	surf    Surface
	painter Painter
	fonts   *Fonts

	data    Values
	options Values
	parsed  Data
	opts    Options

	hooks   Hooks
	plugins []Plugin

	size      Size
	active    *Element
	animSeq   int
	animating bool
	progress  float64
	removers  []func()
	destroyed bool
}

// NewBase creates an instance drawing with p and starts its initial
// animation. It fails if data or options cannot be decoded or if the
// first paint fails.
func NewBase(kind string, s Surface, cfg Config, p Painter) (*Base, error) {
	b := &Base{
		kind:    kind,
		surf:    s,
		painter: p,
		fonts:   DefaultFonts(),
		data:    merge.Clone(cfg.Data),
		options: merge.Clone(cfg.Options),
		hooks:   cfg.Hooks,
		plugins: append([]Plugin(nil), cfg.Plugins...),
		size:    Size{Width: s.ClientWidth(), Height: s.ClientHeight()},
	}
	if err := b.decode(); err != nil {
		return nil, err
	}
	if err := b.paint(0); err != nil {
		return nil, err
	}
	for _, k := range pointerKinds {
		b.removers = append(b.removers, s.AddEventListener(k, b.handlePointer))
	}
	Logger().Debug("engine: instance created", "type", kind, "width", b.size.Width, "height", b.size.Height)
	b.animate()
	return b, nil
}

// Type implements Instance.
func (b *Base) Type() string { return b.kind }

// Data returns the raw data tree applied by the next Update.
func (b *Base) Data() Values { return b.data }

// SetData replaces the raw data tree. Call Update to apply it.
func (b *Base) SetData(v Values) { b.data = v }

// Options returns the raw options tree applied by the next Update.
func (b *Base) Options() Values { return b.options }

// SetOptions replaces the raw options tree. Call Update to apply it.
func (b *Base) SetOptions(v Values) { b.options = v }

// Surface implements Instance.
func (b *Base) Surface() Surface { return b.surf }

// Painter returns the painter the instance draws with.
func (b *Base) Painter() Painter { return b.painter }

// Size returns the layout size of the last paint.
func (b *Base) Size() Size { return b.size }

// Animating reports whether an animation is in flight.
func (b *Base) Animating() bool { return b.animating }

// Active returns the element under the pointer, if any.
func (b *Base) Active() (Element, bool) {
	if b.active == nil {
		return Element{}, false
	}
	return *b.active, true
}

// ParsedData returns the decoded data of the last update.
func (b *Base) ParsedData() Data { return b.parsed }

// ParsedOptions returns the decoded options of the last update.
func (b *Base) ParsedOptions() Options { return b.opts }

// Update re-decodes data and options and animates to the new state.
func (b *Base) Update() error {
	if b.destroyed {
		return ErrDestroyed
	}
	if err := b.decode(); err != nil {
		return err
	}
	b.animate()
	return nil
}

// Resize takes the surface client size as the new layout size. OnResize
// fires when it changed. The chart is repainted without animation.
func (b *Base) Resize() error {
	if b.destroyed {
		return ErrDestroyed
	}
	size := Size{Width: b.surf.ClientWidth(), Height: b.surf.ClientHeight()}
	if size != b.size {
		b.size = size
		Logger().Debug("engine: instance resized", "type", b.kind, "width", size.Width, "height", size.Height)
		if b.hooks.OnResize != nil {
			b.hooks.OnResize(b, size)
		}
	}
	b.stopAnimation()
	return b.paintFrame(1, Animation{Progress: 1, Done: true})
}

// Destroy stops the animation, unbinds pointer events and clears the
// surface. It is idempotent.
func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.stopAnimation()
	for _, remove := range b.removers {
		remove()
	}
	b.removers = nil
	for _, p := range b.plugins {
		if p.Destroy != nil {
			p.Destroy(b)
		}
	}
	b.surf.Clear()
	Logger().Debug("engine: instance destroyed", "type", b.kind)
}

// Destroyed reports whether Destroy was called.
func (b *Base) Destroyed() bool { return b.destroyed }

func (b *Base) decode() error {
	d, err := DecodeData(b.data)
	if err != nil {
		return err
	}
	o, err := DecodeOptions(b.options)
	if err != nil {
		return err
	}
	b.parsed, b.opts = d, o
	return nil
}

func (b *Base) stopAnimation() {
	b.animSeq++
	b.animating = false
}

// animate runs progress from 0 to 1 over the configured duration on
// surface frames. Without a frame scheduler, or with a zero duration, the
// final frame is painted at once.
func (b *Base) animate() {
	b.stopAnimation()
	dur := b.opts.AnimationDuration()
	if dur <= 0 {
		b.finish(0)
		return
	}

	seq := b.animSeq
	var start time.Time
	var tick func(now time.Time)
	tick = func(now time.Time) {
		if b.destroyed || seq != b.animSeq {
			return
		}
		if start.IsZero() {
			start = now
		}
		elapsed := now.Sub(start)
		t := math.Min(1, float64(elapsed)/float64(dur))
		if t >= 1 {
			b.animating = false
			b.finish(elapsed)
			return
		}
		a := Animation{Progress: easeOutQuart(t), Elapsed: elapsed}
		b.repaint(a.Progress, a)
		if !b.surf.RequestFrame(tick) {
			b.animating = false
			b.finish(elapsed)
		}
	}

	b.animating = true
	if !b.surf.RequestFrame(tick) {
		b.animating = false
		b.finish(0)
	}
}

func (b *Base) finish(elapsed time.Duration) {
	a := Animation{Progress: 1, Elapsed: elapsed, Done: true}
	b.repaint(1, a)
	if b.hooks.OnComplete != nil {
		b.hooks.OnComplete(b, a)
	}
}

// paintFrame paints and reports the frame to OnProgress.
func (b *Base) paintFrame(progress float64, a Animation) error {
	err := b.paint(progress)
	if err == nil && b.hooks.OnProgress != nil {
		b.hooks.OnProgress(b, a)
	}
	return err
}

// repaint is paintFrame for frame callbacks, which have no caller to
// return the error to.
func (b *Base) repaint(progress float64, a Animation) {
	if err := b.paintFrame(progress, a); err != nil {
		Logger().Warn("engine: paint failed", "type", b.kind, "progress", progress, "err", err)
	}
}

func (b *Base) paint(progress float64) error {
	b.progress = progress
	f := Frame{
		Width:    b.size.Width,
		Height:   b.size.Height,
		Progress: progress,
		Data:     b.parsed,
		Options:  b.opts,
		Active:   b.active,
	}
	var paintErr error
	err := b.surf.Draw(func(dc *gg.Context) {
		dc.Clear()
		for _, p := range b.plugins {
			if p.BeforeDraw != nil {
				dc.Push()
				p.BeforeDraw(b, dc)
				dc.Pop()
			}
		}
		dc.Push()
		paintErr = b.painter.Paint(dc, f)
		dc.Pop()
		if b.active != nil && b.opts.ShowTooltips() {
			drawTooltip(dc, b.fonts, *b.active, b.opts.Locale, f.Width, f.Height)
		}
		for _, p := range b.plugins {
			if p.AfterDraw != nil {
				dc.Push()
				p.AfterDraw(b, dc)
				dc.Pop()
			}
		}
	})
	if err != nil {
		return err
	}
	return paintErr
}

// RelativePosition maps client coordinates to chart pixels using the
// surface bounding rectangle and padding.
func RelativePosition(s Surface, clientX, clientY float64) (x, y float64) {
	rect := s.BoundingRect()
	pad := s.ComputedStyle().Padding
	w := rect.Width - pad.Left - pad.Right
	h := rect.Height - pad.Top - pad.Bottom
	if w <= 0 || h <= 0 {
		return -1, -1
	}
	ratio := s.PixelRatio()
	x = (clientX - rect.Left - pad.Left) / w * float64(s.Width()) / ratio
	y = (clientY - rect.Top - pad.Top) / h * float64(s.Height()) / ratio
	return x, y
}

func (b *Base) handlePointer(ev surface.PointerEvent) {
	if b.destroyed {
		return
	}
	x, y := RelativePosition(b.surf, ev.ClientX, ev.ClientY)

	var hit *Element
	if ev.Kind != surface.MouseOut {
		if e, ok := b.painter.ElementAt(x, y); ok {
			hit = &e
		}
	}

	changed := !sameElement(b.active, hit)
	b.active = hit

	ee := ElementEvent{Kind: ev.Kind, X: x, Y: y, Element: hit}
	if b.hooks.OnHover != nil {
		b.hooks.OnHover(b, ee)
	}
	if ev.Kind == surface.Click && b.hooks.OnClick != nil {
		b.hooks.OnClick(b, ee)
	}
	if changed && !b.animating {
		b.repaint(b.progress, Animation{Progress: b.progress, Done: true})
	}
}

func sameElement(a, b *Element) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Dataset == b.Dataset && a.Index == b.Index
}

func easeOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}
