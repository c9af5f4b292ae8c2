// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestScaledSize(t *testing.T) {
	o := NewObject("rect", Geometry{Width: 100, Height: 50, ScaleX: 2, ScaleY: -3})
	if got := o.ScaledWidth(); got != 200 {
		t.Errorf("ScaledWidth() = %v, want 200", got)
	}
	if got := o.ScaledHeight(); got != 150 {
		t.Errorf("ScaledHeight() = %v, want 150", got)
	}
}

func TestDefaultScale(t *testing.T) {
	o := NewObject("rect", Geometry{Width: 10, Height: 10})
	if o.ScaleX() != 1 || o.ScaleY() != 1 {
		t.Errorf("scale = (%v, %v), want (1, 1)", o.ScaleX(), o.ScaleY())
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		want gg.Point
	}{
		{"unrotated", Geometry{Left: 10, Top: 20, Width: 100, Height: 50}, gg.Pt(60, 45)},
		{"scaled", Geometry{Left: 10, Top: 20, Width: 100, Height: 50, ScaleX: 2, ScaleY: 2}, gg.Pt(110, 70)},
		{"rotated 90", Geometry{Left: 0, Top: 0, Width: 100, Height: 50, Angle: 90}, gg.Pt(-25, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewObject("rect", tt.g).Center()
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("Center() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToLocalPoint(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
		p    gg.Point
		want gg.Point
	}{
		{"top-left corner", Geometry{Left: 10, Top: 20, Width: 100, Height: 50}, gg.Pt(10, 20), gg.Pt(0, 0)},
		{"inside", Geometry{Left: 10, Top: 20, Width: 100, Height: 50}, gg.Pt(40, 30), gg.Pt(30, 10)},
		{"scaled stays in scaled units", Geometry{Left: 0, Top: 0, Width: 100, Height: 50, ScaleX: 2, ScaleY: 2}, gg.Pt(200, 100), gg.Pt(200, 100)},
		// Rotated 90 degrees around its center: the top-left corner stays
		// at (left, top) and local +x points down the scene.
		{"rotated", Geometry{Left: 0, Top: 0, Width: 100, Height: 50, Angle: 90}, gg.Pt(0, 30), gg.Pt(30, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewObject("rect", tt.g).ToLocalPoint(tt.p, OriginLeft, OriginTop)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("ToLocalPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrixMatchesLocalPoint(t *testing.T) {
	o := NewObject("rect", Geometry{Left: 30, Top: 40, Width: 80, Height: 60, ScaleX: 1.5, ScaleY: 0.5, Angle: 33})
	// Object-space corner (-w/2, -h/2) is the top-left corner.
	p := o.Matrix().TransformPoint(gg.Pt(-40, -30))
	local := o.ToLocalPoint(p, OriginLeft, OriginTop)
	if !near(local.X, 0) || !near(local.Y, 0) {
		t.Errorf("top-left corner maps to %v, want (0, 0)", local)
	}
	if !near(p.X, 30) || !near(p.Y, 40) {
		t.Errorf("top-left corner at %v, want (30, 40)", p)
	}
}

func TestContainsPoint(t *testing.T) {
	o := NewObject("rect", Geometry{Left: 0, Top: 0, Width: 100, Height: 50})
	if !o.ContainsPoint(gg.Pt(50, 25)) {
		t.Error("ContainsPoint(center) = false")
	}
	if o.ContainsPoint(gg.Pt(101, 25)) {
		t.Error("ContainsPoint(outside) = true")
	}
}

type interceptor struct {
	obj  *Object
	seen map[string]any
	err  error
}

func (i *interceptor) Object() *Object                         { return i.obj }
func (i *interceptor) Render(*gg.Context)                      {}
func (i *interceptor) ToObject(extra ...string) map[string]any { return i.obj.ToObject(extra...) }

func (i *interceptor) SetProperty(key string, value any) (bool, error) {
	if key != "special" {
		return false, nil
	}
	i.seen[key] = value
	return true, i.err
}

func (i *interceptor) Property(key string) (any, bool) {
	v, ok := i.seen[key]
	return v, ok
}

func TestSetInterception(t *testing.T) {
	d := &interceptor{obj: NewObject("x", Geometry{Width: 1, Height: 1}), seen: map[string]any{}}
	d.obj.Bind(d)

	if err := d.obj.Set("special", 42); err != nil {
		t.Fatalf("Set(special) error = %v", err)
	}
	if d.seen["special"] != 42 {
		t.Errorf("interceptor saw %v, want 42", d.seen["special"])
	}
	if _, ok := d.obj.Get("special"); ok {
		t.Error("intercepted key was also stored on the object")
	}

	if err := d.obj.Set("left", "12.5"); err != nil {
		t.Fatalf("Set(left) error = %v", err)
	}
	if d.obj.Left() != 12.5 {
		t.Errorf("Left() = %v, want 12.5", d.obj.Left())
	}

	d.err = errors.New("boom")
	if err := d.obj.Set("special", 1); err == nil {
		t.Error("Set() did not return interceptor error")
	}
}

func TestSetScaleFiresScaling(t *testing.T) {
	o := NewObject("rect", Geometry{Width: 10, Height: 10})
	n := 0
	off := o.On(EventScaling, func(Event) { n++ })

	o.SetScale(2, 2)
	_ = o.Set("scaleX", 3)
	off()
	o.SetScale(1, 1)

	if n != 2 {
		t.Errorf("scaling fired %d times, want 2", n)
	}
}

func TestSetSizeFiresResized(t *testing.T) {
	o := NewObject("rect", Geometry{Width: 10, Height: 10})
	resized, scaling := 0, 0
	o.On(EventResized, func(Event) { resized++ })
	o.On(EventScaling, func(Event) { scaling++ })

	_ = o.Set("width", 20)
	_ = o.Set("height", "30")
	_ = o.Set("left", 5)

	if resized != 2 || scaling != 0 {
		t.Errorf("resized = %d, scaling = %d, want 2, 0", resized, scaling)
	}
	if o.ScaledWidth() != 20 || o.ScaledHeight() != 30 {
		t.Errorf("scaled size = %vx%v, want 20x30", o.ScaledWidth(), o.ScaledHeight())
	}
}

func TestToObject(t *testing.T) {
	d := &interceptor{obj: NewObject("x", Geometry{Left: 1, Top: 2, Width: 3, Height: 4, FlipX: true}), seen: map[string]any{"special": "v"}}
	d.obj.Bind(d)
	_ = d.obj.Set("note", "hello")

	m := d.obj.ToObject("special", "note", "missing")
	if m["type"] != "x" || m["left"] != 1.0 || m["flipX"] != true {
		t.Errorf("base fields = %v", m)
	}
	if m["special"] != "v" {
		t.Errorf("special = %v, want v", m["special"])
	}
	if m["note"] != "hello" {
		t.Errorf("note = %v, want hello", m["note"])
	}
	if _, ok := m["missing"]; ok {
		t.Error("missing key present")
	}
}

func TestDecodeGeometry(t *testing.T) {
	g, err := DecodeGeometry(map[string]any{
		"type": "chart", "left": "5", "top": 6, "width": 100.0, "height": 50, "flipY": true,
	})
	if err != nil {
		t.Fatalf("DecodeGeometry() error = %v", err)
	}
	want := Geometry{Left: 5, Top: 6, Width: 100, Height: 50, ScaleX: 1, ScaleY: 1, FlipY: true}
	if g != want {
		t.Errorf("DecodeGeometry() = %+v, want %+v", g, want)
	}
}
