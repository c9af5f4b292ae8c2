// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/gogpu/gg"
)

// Common errors returned by surface operations.
var (
	// ErrClosed is returned when operations are attempted on a closed surface.
	ErrClosed = errors.New("surface: surface is closed")

	// ErrInvalidSize is returned when width, height or pixel ratio is invalid.
	ErrInvalidSize = errors.New("surface: invalid size")
)

// Rect is a bounding rectangle in client coordinates.
// X and Y hold the center of the rectangle.
type Rect struct {
	X, Y                     float64
	Left, Top, Right, Bottom float64
	Width, Height            float64
}

// RectFromBounds builds a Rect from its top-left corner and size.
func RectFromBounds(left, top, width, height float64) Rect {
	return Rect{
		X:      left + width/2,
		Y:      top + height/2,
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
		Width:  width,
		Height: height,
	}
}

// Padding holds per-side padding in logical pixels.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Style is the computed style an engine may query for layout.
type Style struct {
	Padding Padding
}

// RectProvider reports the surface's bounding rectangle.
type RectProvider func() Rect

// StyleProvider reports the surface's computed style.
type StyleProvider func() Style

// FrameScheduler runs fn on the next frame of the host render loop.
type FrameScheduler interface {
	RequestFrame(fn func(now time.Time))
}

// PointerEvent is a pointer or touch event in client coordinates.
type PointerEvent struct {
	Kind    string
	ClientX float64
	ClientY float64
}

// Pointer event kinds understood by chart engines.
const (
	MouseMove  = "mousemove"
	Click      = "click"
	MouseOut   = "mouseout"
	TouchStart = "touchstart"
	TouchMove  = "touchmove"
)

type listener struct {
	fn func(PointerEvent)
}

// Virtual is an invisible drawing surface backed by a gg.Context.
type Virtual struct {
	dc    *gg.Context
	ratio float64

	// width and height are the requested client size; dw and dh the
	// device size derived from it.
	width, height float64
	dw, dh        int

	rect      RectProvider
	style     StyleProvider
	scheduler FrameScheduler
	listeners map[string][]*listener
	snapshot  *gg.ImageBuf
	dirty     bool
	closed    bool
}

// New creates a surface with a client size of width × height logical
// pixels. The buffer holds floor(size × ratio) device pixels, so the
// client size reported back is the device size divided by the ratio.
//
// Returns error if either device dimension is below one pixel.
func New(width, height float64, opts ...Option) (*Virtual, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.ratio <= 0 || math.IsNaN(o.ratio) {
		return nil, fmt.Errorf("%w: pixel ratio=%v", ErrInvalidSize, o.ratio)
	}
	dw, dh, err := deviceSize(width, height, o.ratio)
	if err != nil {
		return nil, err
	}
	lw, lh := backingSize(dw, dh, o.ratio)

	v := &Virtual{
		dc:        gg.NewContext(lw, lh, gg.WithDeviceScale(o.ratio)),
		ratio:     o.ratio,
		width:     width,
		height:    height,
		dw:        dw,
		dh:        dh,
		rect:      o.rect,
		style:     o.style,
		scheduler: o.scheduler,
		listeners: make(map[string][]*listener),
		dirty:     true,
	}
	return v, nil
}

// deviceEpsilon absorbs float error in size × ratio, e.g. 0.29 × 100.
const deviceEpsilon = 1e-9

// deviceSize truncates the scaled client size to whole device pixels.
func deviceSize(width, height, ratio float64) (int, int, error) {
	w := int(math.Floor(width*ratio + deviceEpsilon))
	h := int(math.Floor(height*ratio + deviceEpsilon))
	if w <= 0 || h <= 0 || math.IsNaN(width) || math.IsNaN(height) {
		return 0, 0, fmt.Errorf("%w: width=%v, height=%v", ErrInvalidSize, width, height)
	}
	return w, h, nil
}

// backingSize is the smallest whole logical size whose gg buffer covers
// dw × dh device pixels.
func backingSize(dw, dh int, ratio float64) (int, int) {
	lw := int(math.Ceil(float64(dw)/ratio - deviceEpsilon))
	lh := int(math.Ceil(float64(dh)/ratio - deviceEpsilon))
	return max(lw, 1), max(lh, 1)
}

// Context returns the gg drawing context, in logical coordinates.
// Call MarkDirty after drawing on it directly, or use Draw.
//
// Returns nil if the surface is closed.
func (v *Virtual) Context() *gg.Context {
	if v.closed {
		return nil
	}
	return v.dc
}

// Draw calls fn with the drawing context and marks the surface dirty.
func (v *Virtual) Draw(fn func(dc *gg.Context)) error {
	if v.closed {
		return ErrClosed
	}
	fn(v.dc)
	v.dirty = true
	return nil
}

// MarkDirty invalidates the cached snapshot.
func (v *Virtual) MarkDirty() {
	v.dirty = true
}

// Clear erases the surface to transparent.
func (v *Virtual) Clear() {
	if v.closed {
		return
	}
	v.dc.Clear()
	v.dirty = true
}

// Width returns the buffer width in device pixels.
func (v *Virtual) Width() int {
	if v.closed {
		return 0
	}
	return v.dw
}

// Height returns the buffer height in device pixels.
func (v *Virtual) Height() int {
	if v.closed {
		return 0
	}
	return v.dh
}

// ClientWidth returns the width in logical pixels: Width() / PixelRatio().
func (v *Virtual) ClientWidth() float64 {
	return float64(v.Width()) / v.ratio
}

// ClientHeight returns the height in logical pixels: Height() / PixelRatio().
func (v *Virtual) ClientHeight() float64 {
	return float64(v.Height()) / v.ratio
}

// PixelRatio returns the device pixel ratio.
func (v *Virtual) PixelRatio() float64 {
	return v.ratio
}

// BoundingRect returns the rectangle reported by the rect provider, or the
// client area at the origin when none was given.
func (v *Virtual) BoundingRect() Rect {
	if v.rect != nil {
		return v.rect()
	}
	return RectFromBounds(0, 0, v.ClientWidth(), v.ClientHeight())
}

// ComputedStyle returns the style reported by the style provider.
// The default style has zero padding.
func (v *Virtual) ComputedStyle() Style {
	if v.style != nil {
		return v.style()
	}
	return Style{}
}

// SetRectProvider replaces the rect provider. Nil restores the default.
func (v *Virtual) SetRectProvider(p RectProvider) {
	v.rect = p
}

// SetScheduler replaces the frame scheduler.
func (v *Virtual) SetScheduler(s FrameScheduler) {
	v.scheduler = s
}

// RequestFrame schedules fn on the next host frame. It returns false, and
// does not call fn, when no scheduler is set or the surface is closed.
func (v *Virtual) RequestFrame(fn func(now time.Time)) bool {
	if v.closed || v.scheduler == nil {
		return false
	}
	v.scheduler.RequestFrame(fn)
	return true
}

// Resize sets a new client size in logical pixels. The buffer is
// reallocated at the current pixel ratio and cleared. Resizing to the same
// device size is a no-op.
func (v *Virtual) Resize(width, height float64) error {
	if v.closed {
		return ErrClosed
	}
	dw, dh, err := deviceSize(width, height, v.ratio)
	if err != nil {
		return err
	}
	v.width, v.height = width, height
	if dw == v.dw && dh == v.dh {
		return nil
	}
	return v.fit(dw, dh)
}

func (v *Virtual) fit(dw, dh int) error {
	lw, lh := backingSize(dw, dh, v.ratio)
	if err := v.dc.Resize(lw, lh); err != nil {
		return fmt.Errorf("surface: context resize failed: %w", err)
	}
	v.dw, v.dh = dw, dh
	v.dirty = true
	return nil
}

// SetPixelRatio changes the device pixel ratio, keeping the requested
// client size.
func (v *Virtual) SetPixelRatio(ratio float64) error {
	if v.closed {
		return ErrClosed
	}
	if ratio <= 0 || math.IsNaN(ratio) {
		return fmt.Errorf("%w: pixel ratio=%v", ErrInvalidSize, ratio)
	}
	if ratio == v.ratio {
		return nil
	}
	dw, dh, err := deviceSize(v.width, v.height, ratio)
	if err != nil {
		return err
	}
	v.dc.SetDeviceScale(ratio)
	v.ratio = ratio
	return v.fit(dw, dh)
}

// Snapshot returns the current pixels at device resolution. The image is
// cached until the surface is drawn on again.
//
// Returns nil if the surface is closed.
func (v *Virtual) Snapshot() *gg.ImageBuf {
	if v.closed {
		return nil
	}
	if v.dirty || v.snapshot == nil {
		v.snapshot = gg.ImageBufFromImage(v.crop(v.dc.Image()))
		v.dirty = false
	}
	return v.snapshot
}

// crop trims the backing buffer's spare edge to the device size.
func (v *Virtual) crop(img image.Image) image.Image {
	r := image.Rect(0, 0, v.dw, v.dh)
	if img.Bounds() == r {
		return img
	}
	if sub, ok := img.(interface {
		SubImage(image.Rectangle) image.Image
	}); ok {
		return sub.SubImage(r)
	}
	return img
}

// AddEventListener registers fn for events of the given kind and returns a
// function that removes it.
func (v *Virtual) AddEventListener(kind string, fn func(PointerEvent)) (remove func()) {
	l := &listener{fn: fn}
	v.listeners[kind] = append(v.listeners[kind], l)
	return func() {
		ls := v.listeners[kind]
		for i, x := range ls {
			if x == l {
				v.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers ev to the listeners of ev.Kind in registration order.
// It reports whether at least one listener received the event.
func (v *Virtual) Dispatch(ev PointerEvent) bool {
	if v.closed {
		return false
	}
	ls := v.listeners[ev.Kind]
	if len(ls) == 0 {
		return false
	}
	for _, l := range append([]*listener(nil), ls...) {
		l.fn(ev)
	}
	return true
}

// Closed reports whether Close has been called.
func (v *Virtual) Closed() bool {
	return v.closed
}

// Close releases the drawing context and drops all listeners.
// Close is idempotent.
func (v *Virtual) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.listeners = nil
	v.snapshot = nil
	return v.dc.Close()
}
