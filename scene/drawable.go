// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/gogpu/gg"
)

// Drawable is anything a Canvas can hold. Implementations hold an *Object
// and delegate geometry, events and serialization to it.
type Drawable interface {
	// Object returns the base object.
	Object() *Object

	// Render draws in object space: the origin is the object's center and
	// one unit is one unscaled pixel. The canvas has already applied the
	// object transform.
	Render(dc *gg.Context)

	// ToObject returns a serializable snapshot. extra names additional
	// properties to include.
	ToObject(extra ...string) map[string]any
}

// Destroyer is implemented by drawables that own resources.
type Destroyer interface {
	Destroy()
}

// Rect is a filled rectangle.
type Rect struct {
	obj  *Object
	Fill string
}

// NewRect creates a rectangle filled with a hex color.
func NewRect(g Geometry, fill string) *Rect {
	r := &Rect{obj: NewObject("rect", g), Fill: fill}
	r.obj.Bind(r)
	return r
}

// Object implements Drawable.
func (r *Rect) Object() *Object { return r.obj }

// Render fills the rectangle centered on the origin.
func (r *Rect) Render(dc *gg.Context) {
	w, h := r.obj.Width(), r.obj.Height()
	dc.SetColor(gg.Hex(r.Fill))
	dc.DrawRectangle(-w/2, -h/2, w, h)
	_ = dc.Fill()
}

// ToObject implements Drawable. The fill is saved under "fill".
func (r *Rect) ToObject(extra ...string) map[string]any {
	return r.obj.ToObject(append(extra, "fill")...)
}

// Property implements PropertyGetter.
func (r *Rect) Property(key string) (any, bool) {
	if key == "fill" {
		return r.Fill, true
	}
	return nil, false
}

// SetProperty implements PropertySetter.
func (r *Rect) SetProperty(key string, value any) (bool, error) {
	if key != "fill" {
		return false, nil
	}
	s, _ := value.(string)
	r.Fill = s
	r.obj.RequestRender()
	return true, nil
}

func newRectFromProps(props map[string]any) (Drawable, error) {
	g, err := DecodeGeometry(props)
	if err != nil {
		return nil, err
	}
	fill, _ := props["fill"].(string)
	return NewRect(g, fill), nil
}
