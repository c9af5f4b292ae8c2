// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"math"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gogpu/gg"
)

// Geometry is the placement of an object in scene coordinates.
//
// Left and Top locate the object's top-left corner. Width and Height are
// unscaled. Angle is in degrees, clockwise, around the object's center.
type Geometry struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	ScaleX float64 `json:"scaleX"`
	ScaleY float64 `json:"scaleY"`
	Angle  float64 `json:"angle"`
	FlipX  bool    `json:"flipX"`
	FlipY  bool    `json:"flipY"`
	Hidden bool    `json:"hidden,omitempty"`
}

func (g Geometry) normalized() Geometry {
	if g.ScaleX == 0 {
		g.ScaleX = 1
	}
	if g.ScaleY == 0 {
		g.ScaleY = 1
	}
	return g
}

// Origin names an anchor along one axis of an object's bounding box.
type Origin int

// Anchors. OriginLeft doubles as top and OriginRight as bottom.
const (
	OriginLeft Origin = iota
	OriginCenter
	OriginRight

	OriginTop    = OriginLeft
	OriginBottom = OriginRight
)

func (o Origin) offset(size float64) float64 {
	switch o {
	case OriginLeft:
		return size / 2
	case OriginRight:
		return -size / 2
	default:
		return 0
	}
}

// Event names fired by objects.
const (
	EventScaling    = "scaling"
	EventResized    = "resized"
	EventMoving     = "moving"
	EventRotating   = "rotating"
	EventModified   = "modified"
	EventAdded      = "added"
	EventRemoved    = "removed"
	EventMouseMove  = "mousemove"
	EventMouseDown  = "mousedown"
	EventMouseUp    = "mouseup"
	EventMouseOver  = "mouseover"
	EventMouseOut   = "mouseout"
	EventTouchStart = "touchstart"
	EventTouchMove  = "touchmove"
)

// Event is delivered to object handlers.
type Event struct {
	Name    string
	Pointer gg.Point
	Target  Drawable
}

type handler struct {
	fn func(Event)
}

// PropertySetter intercepts property writes on an Object. It reports
// whether it handled the key; unhandled keys are applied by the Object.
type PropertySetter interface {
	SetProperty(key string, value any) (handled bool, err error)
}

// PropertyGetter exposes extra properties for serialization.
type PropertyGetter interface {
	Property(key string) (any, bool)
}

// Object is the base every drawable delegates to. It owns geometry,
// events, the dirty flag and the back reference to its canvas.
type Object struct {
	kind     string
	geom     Geometry
	owner    Drawable
	setter   PropertySetter
	canvas   *Canvas
	dirty    bool
	props    map[string]any
	handlers map[string][]*handler
}

// NewObject creates an object of the given kind.
func NewObject(kind string, g Geometry) *Object {
	return &Object{
		kind:     kind,
		geom:     g.normalized(),
		dirty:    true,
		props:    make(map[string]any),
		handlers: make(map[string][]*handler),
	}
}

// Bind sets the drawable that owns o and, when it implements
// PropertySetter, routes property writes through it first.
func (o *Object) Bind(owner Drawable) {
	o.owner = owner
	if s, ok := owner.(PropertySetter); ok {
		o.setter = s
	}
}

// Kind returns the serialization discriminator.
func (o *Object) Kind() string { return o.kind }

// Owner returns the bound drawable, or nil.
func (o *Object) Owner() Drawable { return o.owner }

// Geometry returns a copy of the current geometry.
func (o *Object) Geometry() Geometry { return o.geom }

// Left returns the x coordinate of the left edge, before rotation.
func (o *Object) Left() float64 { return o.geom.Left }

// Top returns the y coordinate of the top edge, before rotation.
func (o *Object) Top() float64 { return o.geom.Top }

// Width returns the unscaled width.
func (o *Object) Width() float64 { return o.geom.Width }

// Height returns the unscaled height.
func (o *Object) Height() float64 { return o.geom.Height }

// ScaleX returns the horizontal scale factor.
func (o *Object) ScaleX() float64 { return o.geom.ScaleX }

// ScaleY returns the vertical scale factor.
func (o *Object) ScaleY() float64 { return o.geom.ScaleY }

// Angle returns the rotation in degrees.
func (o *Object) Angle() float64 { return o.geom.Angle }

// FlipX reports whether the object is mirrored horizontally.
func (o *Object) FlipX() bool { return o.geom.FlipX }

// FlipY reports whether the object is mirrored vertically.
func (o *Object) FlipY() bool { return o.geom.FlipY }

// Visible reports whether the object is drawn and hit tested.
func (o *Object) Visible() bool { return !o.geom.Hidden }

// ScaledWidth returns Width * |ScaleX|.
func (o *Object) ScaledWidth() float64 {
	return o.geom.Width * math.Abs(o.geom.ScaleX)
}

// ScaledHeight returns Height * |ScaleY|.
func (o *Object) ScaledHeight() float64 {
	return o.geom.Height * math.Abs(o.geom.ScaleY)
}

func (o *Object) radians() float64 {
	return o.geom.Angle * math.Pi / 180
}

// Center returns the center point in scene coordinates.
func (o *Object) Center() gg.Point {
	half := gg.Pt(o.ScaledWidth()/2, o.ScaledHeight()/2).Rotate(o.radians())
	return gg.Pt(o.geom.Left, o.geom.Top).Add(half)
}

// Matrix maps object space, centered on the origin and unscaled, into
// scene space.
func (o *Object) Matrix() gg.Matrix {
	sx, sy := o.geom.ScaleX, o.geom.ScaleY
	if o.geom.FlipX {
		sx = -sx
	}
	if o.geom.FlipY {
		sy = -sy
	}
	c := o.Center()
	return gg.Translate(c.X, c.Y).
		Multiply(gg.Rotate(o.radians())).
		Multiply(gg.Scale(sx, sy))
}

// ToLocalPoint converts a scene point into the object's unrotated, scaled
// frame, relative to the anchor named by originX and originY.
// Flips are not applied.
func (o *Object) ToLocalPoint(p gg.Point, originX, originY Origin) gg.Point {
	local := p.Sub(o.Center()).Rotate(-o.radians())
	return gg.Pt(
		local.X+originX.offset(o.ScaledWidth()),
		local.Y+originY.offset(o.ScaledHeight()),
	)
}

// ContainsPoint reports whether p falls inside the transformed bounds.
func (o *Object) ContainsPoint(p gg.Point) bool {
	l := o.ToLocalPoint(p, OriginCenter, OriginCenter)
	return math.Abs(l.X) <= o.ScaledWidth()/2 && math.Abs(l.Y) <= o.ScaledHeight()/2
}

// Canvas returns the canvas the object is attached to, or nil.
func (o *Object) Canvas() *Canvas { return o.canvas }

// Dirty reports whether the object changed since it was last rendered.
func (o *Object) Dirty() bool { return o.dirty }

// SetDirty sets the dirty flag.
func (o *Object) SetDirty(dirty bool) { o.dirty = dirty }

// RequestRender marks the object dirty and asks its canvas, if any, for a
// repaint.
func (o *Object) RequestRender() {
	o.dirty = true
	if o.canvas != nil {
		o.canvas.RequestRenderAll()
	}
}

// SetPosition moves the top-left corner and fires "moving".
func (o *Object) SetPosition(left, top float64) {
	o.geom.Left, o.geom.Top = left, top
	o.Fire(EventMoving, Event{})
	o.RequestRender()
}

// SetScale sets both scale factors and fires "scaling".
func (o *Object) SetScale(sx, sy float64) {
	o.geom.ScaleX, o.geom.ScaleY = sx, sy
	o.Fire(EventScaling, Event{})
	o.RequestRender()
}

// SetAngle sets the rotation in degrees and fires "rotating".
func (o *Object) SetAngle(deg float64) {
	o.geom.Angle = deg
	o.Fire(EventRotating, Event{})
	o.RequestRender()
}

// Set writes a property. Writes go to the bound PropertySetter first;
// geometry keys are decoded with weak typing; any other key is stored as
// an extra property.
func (o *Object) Set(key string, value any) error {
	if o.setter != nil {
		handled, err := o.setter.SetProperty(key, value)
		if handled {
			return err
		}
	}
	if err := o.setGeometry(key, value); err != nil {
		return fmt.Errorf("scene: set %q: %w", key, err)
	}
	o.RequestRender()
	return nil
}

func (o *Object) setGeometry(key string, value any) error {
	var f float64
	var b bool
	switch key {
	case "left", "top", "width", "height", "scaleX", "scaleY", "angle":
		if err := mapstructure.WeakDecode(value, &f); err != nil {
			return err
		}
	case "flipX", "flipY", "hidden":
		if err := mapstructure.WeakDecode(value, &b); err != nil {
			return err
		}
	case "type":
		return nil
	default:
		o.props[key] = value
		return nil
	}

	switch key {
	case "left":
		o.geom.Left = f
	case "top":
		o.geom.Top = f
	case "width":
		o.geom.Width = f
		o.Fire(EventResized, Event{})
	case "height":
		o.geom.Height = f
		o.Fire(EventResized, Event{})
	case "scaleX":
		o.geom.ScaleX = f
		o.Fire(EventScaling, Event{})
	case "scaleY":
		o.geom.ScaleY = f
		o.Fire(EventScaling, Event{})
	case "angle":
		o.geom.Angle = f
	case "flipX":
		o.geom.FlipX = b
	case "flipY":
		o.geom.FlipY = b
	case "hidden":
		o.geom.Hidden = b
	}
	return nil
}

// Get returns an extra property stored by Set.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.props[key]
	return v, ok
}

// On registers fn for the named event and returns a function removing it.
func (o *Object) On(name string, fn func(Event)) (off func()) {
	h := &handler{fn: fn}
	o.handlers[name] = append(o.handlers[name], h)
	return func() {
		hs := o.handlers[name]
		for i, x := range hs {
			if x == h {
				o.handlers[name] = append(hs[:i:i], hs[i+1:]...)
				return
			}
		}
	}
}

// Fire calls the handlers of the named event in registration order.
func (o *Object) Fire(name string, ev Event) {
	hs := o.handlers[name]
	if len(hs) == 0 {
		return
	}
	ev.Name = name
	if ev.Target == nil {
		ev.Target = o.owner
	}
	for _, h := range append([]*handler(nil), hs...) {
		h.fn(ev)
	}
}

// ToObject returns the serializable base fields plus each named extra
// property. Extra properties are looked up on the owner first.
func (o *Object) ToObject(extra ...string) map[string]any {
	g := o.geom
	m := map[string]any{
		"type":   o.kind,
		"left":   g.Left,
		"top":    g.Top,
		"width":  g.Width,
		"height": g.Height,
		"scaleX": g.ScaleX,
		"scaleY": g.ScaleY,
		"angle":  g.Angle,
		"flipX":  g.FlipX,
		"flipY":  g.FlipY,
	}
	if g.Hidden {
		m["hidden"] = true
	}
	getter, _ := o.owner.(PropertyGetter)
	for _, key := range extra {
		if getter != nil {
			if v, ok := getter.Property(key); ok {
				m[key] = v
				continue
			}
		}
		if v, ok := o.props[key]; ok {
			m[key] = v
		}
	}
	return m
}

// DecodeGeometry reads geometry fields from a serialized object.
func DecodeGeometry(props map[string]any) (Geometry, error) {
	var g Geometry
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &g,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return g, err
	}
	if err := dec.Decode(props); err != nil {
		return g, fmt.Errorf("scene: decode geometry: %w", err)
	}
	return g.normalized(), nil
}
