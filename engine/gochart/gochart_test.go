// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gochart

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/gogpu/ggchart/engine"
	"github.com/gogpu/ggchart/surface"
)

func TestParseClass(t *testing.T) {
	tests := []struct {
		class       string
		ds, i       int
		element, ok bool
	}{
		{elementClass(2, 5), 2, 5, true, true},
		{seriesClass(3), 3, 0, false, true},
		{"", 0, 0, false, false},
		{"bar", 0, 0, false, false},
	}
	for _, tt := range tests {
		ds, i, element, ok := parseClass(tt.class)
		if ds != tt.ds || i != tt.i || element != tt.element || ok != tt.ok {
			t.Errorf("parseClass(%q) = %d, %d, %v, %v; want %d, %d, %v, %v",
				tt.class, ds, i, element, ok, tt.ds, tt.i, tt.element, tt.ok)
		}
	}
}

func box(r *Renderer, class string, l, t, rt, b int) {
	r.SetClassName(class)
	r.SetFillColor(drawing.ColorBlue)
	r.SetStrokeColor(drawing.ColorBlack)
	r.MoveTo(l, t)
	r.LineTo(rt, t)
	r.LineTo(rt, b)
	r.LineTo(l, b)
	r.LineTo(l, t)
	r.FillStroke()
	r.ResetStyle()
}

func TestRendererHit(t *testing.T) {
	dc := gg.NewContext(100, 100)
	r := NewRenderer(dc)

	box(r, "a", 0, 0, 50, 50)
	box(r, "a", 50, 0, 100, 50)
	box(r, "", 40, 40, 60, 60)

	if class, nth, _, ok := r.Hit(10, 10); !ok || class != "a" || nth != 0 {
		t.Errorf("Hit(10, 10) = %q, %d, %v", class, nth, ok)
	}
	class, nth, center, ok := r.Hit(90, 10)
	if !ok || class != "a" || nth != 1 {
		t.Errorf("Hit(90, 10) = %q, %d, %v", class, nth, ok)
	}
	if center != gg.Pt(75, 25) {
		t.Errorf("center = %v, want (75, 25)", center)
	}
	if _, _, _, ok := r.Hit(45, 45); ok {
		t.Error("Hit(45, 45) reported a shape under an unclassed one")
	}
	if _, _, _, ok := r.Hit(10, 90); ok {
		t.Error("Hit(10, 90) reported a shape outside every path")
	}

	r.Reset()
	if _, _, _, ok := r.Hit(10, 10); ok {
		t.Error("Hit after Reset reported a shape")
	}
}

func TestRendererStrokeIsNotHitTestable(t *testing.T) {
	r := NewRenderer(gg.NewContext(50, 50))
	r.SetClassName("line")
	r.SetStrokeColor(drawing.ColorBlack)
	r.MoveTo(0, 0)
	r.LineTo(50, 50)
	r.LineTo(0, 50)
	r.Stroke()
	if _, _, _, ok := r.Hit(10, 40); ok {
		t.Error("stroked path was recorded")
	}
}

func TestRendererArcAndCircle(t *testing.T) {
	r := NewRenderer(gg.NewContext(200, 200))

	r.SetClassName("wedge")
	r.SetFillColor(drawing.ColorRed)
	r.MoveTo(100, 100)
	r.ArcTo(100, 100, 50, 50, 0, 1.5707963267948966)
	r.LineTo(100, 100)
	r.Close()
	r.FillStroke()

	r.SetClassName("dot")
	r.Circle(5, 20, 20)
	r.FillStroke()

	if class, _, _, ok := r.Hit(120, 120); !ok || class != "wedge" {
		t.Errorf("Hit(120, 120) = %q, %v; want wedge", class, ok)
	}
	if _, _, _, ok := r.Hit(80, 120); ok {
		t.Error("Hit(80, 120) is outside the quarter wedge")
	}
	if class, _, _, ok := r.Hit(22, 19); !ok || class != "dot" {
		t.Errorf("Hit(22, 19) = %q, %v; want dot", class, ok)
	}
}

func TestRendererPixels(t *testing.T) {
	dc := gg.NewContext(20, 20)
	r := NewRenderer(dc)
	r.SetFillColor(drawing.ColorRed)
	r.SetStrokeColor(drawing.ColorTransparent)
	r.MoveTo(0, 0)
	r.LineTo(20, 0)
	r.LineTo(20, 20)
	r.LineTo(0, 20)
	r.Close()
	r.FillStroke()

	got := gg.FromColor(dc.Image().At(10, 10))
	if got.R < 0.9 || got.G > 0.1 || got.B > 0.1 {
		t.Errorf("pixel = %+v, want red", got)
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Save() wrote nothing")
	}
	if err := r.Save(nil); err != nil {
		t.Errorf("Save(nil) error = %v", err)
	}
}

func TestRendererMeasureText(t *testing.T) {
	r := NewRenderer(gg.NewContext(10, 10))
	r.SetFontSize(12)
	b := r.MeasureText("hello")
	if b.Width() <= 0 || b.Height() <= 0 {
		t.Fatalf("MeasureText() = %+v, want a non-empty box", b)
	}
	r.SetTextRotation(1.5707963267948966)
	rb := r.MeasureText("hello")
	if rb.Height() < b.Width()-1 {
		t.Errorf("rotated box = %+v, want height close to width %d", rb, b.Width())
	}
}

func frame(t *testing.T, w, h float64, data engine.Values) engine.Frame {
	t.Helper()
	d, err := engine.DecodeData(data)
	if err != nil {
		t.Fatalf("DecodeData() error = %v", err)
	}
	return engine.Frame{Width: w, Height: h, Progress: 1, Data: d}
}

// classed returns the recorded shapes carrying class.
func classed(p *painter, class string) []shape {
	var out []shape
	for _, s := range p.last.shapes {
		if s.class == class {
			out = append(out, s)
		}
	}
	return out
}

func TestBarPainter(t *testing.T) {
	p := newBar().(*painter)
	f := frame(t, 400, 300, engine.Values{
		"labels": []any{"a", "b", "c"},
		"datasets": []any{
			map[string]any{"label": "one", "data": []any{1, 5, 3}},
			map[string]any{"label": "two", "data": []any{2, 4}},
		},
	})
	if err := p.Paint(gg.NewContext(400, 300), f); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}

	for _, tt := range []struct{ ds, i int }{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}} {
		shapes := classed(p, elementClass(tt.ds, tt.i))
		if len(shapes) != 1 {
			t.Fatalf("bar %d/%d recorded %d times", tt.ds, tt.i, len(shapes))
		}
		c := shapes[0].center()
		e, ok := p.ElementAt(c.X, c.Y)
		if !ok {
			t.Fatalf("ElementAt(%v) found nothing for bar %d/%d", c, tt.ds, tt.i)
		}
		want := f.Data.Datasets[tt.ds].Values()[tt.i]
		if e.Dataset != tt.ds || e.Index != tt.i || e.Value != want || e.Label != f.Data.Labels[tt.i] {
			t.Errorf("ElementAt = %+v, want dataset %d index %d value %v", e, tt.ds, tt.i, want)
		}
	}

	tall := classed(p, elementClass(0, 1))[0]
	short := classed(p, elementClass(0, 0))[0]
	if tall.min.Y >= short.min.Y {
		t.Errorf("bar 5 top %v not above bar 1 top %v", tall.min.Y, short.min.Y)
	}
}

func TestBarPainterProgress(t *testing.T) {
	data := engine.Values{
		"labels":   []any{"a"},
		"datasets": []any{map[string]any{"data": []any{10}}},
	}
	height := func(progress float64) float64 {
		p := newBar().(*painter)
		f := frame(t, 200, 200, data)
		f.Progress = progress
		if err := p.Paint(gg.NewContext(200, 200), f); err != nil {
			t.Fatalf("Paint() error = %v", err)
		}
		s := classed(p, elementClass(0, 0))
		if len(s) != 1 {
			t.Fatalf("bar recorded %d times", len(s))
		}
		return s[0].max.Y - s[0].min.Y
	}
	if half, full := height(0.5), height(1); half >= full || half <= 0 {
		t.Errorf("bar height at 0.5 = %v, at 1 = %v", half, full)
	}
}

func TestPiePainter(t *testing.T) {
	for _, kind := range []string{"pie", "doughnut"} {
		t.Run(kind, func(t *testing.T) {
			p := newPie().(*painter)
			if kind == "doughnut" {
				p = newDoughnut().(*painter)
			}
			f := frame(t, 300, 300, engine.Values{
				"labels":   []any{"n", "e", "s", "w"},
				"datasets": []any{map[string]any{"data": []any{1, 1, 1, 1}}},
			})
			if err := p.Paint(gg.NewContext(300, 300), f); err != nil {
				t.Fatalf("Paint() error = %v", err)
			}
			seen := map[int]bool{}
			for i := 0; i < 4; i++ {
				shapes := classed(p, elementClass(0, i))
				if len(shapes) != 1 {
					t.Fatalf("slice %d recorded %d times", i, len(shapes))
				}
				c := shapes[0].center()
				e, ok := p.ElementAt(c.X, c.Y)
				if !ok {
					t.Fatalf("ElementAt(%v) found nothing for slice %d", c, i)
				}
				seen[e.Index] = true
				if e.Value != 1 {
					t.Errorf("slice %d value = %v, want 1", i, e.Value)
				}
			}
			if len(seen) != 4 {
				t.Errorf("distinct slices hit = %v, want 4", seen)
			}
		})
	}
}

func TestDoughnutHole(t *testing.T) {
	p := newDoughnut().(*painter)
	f := frame(t, 300, 300, engine.Values{
		"datasets": []any{map[string]any{"data": []any{1, 2}}},
	})
	if err := p.Paint(gg.NewContext(300, 300), f); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	var cx, cy float64
	for _, s := range classed(p, elementClass(0, 1)) {
		// Every slice starts at the chart center.
		cx, cy = s.subpaths[0][0].X, s.subpaths[0][0].Y
	}
	if _, ok := p.ElementAt(cx+1, cy+1); ok {
		t.Error("ElementAt inside the hole reported a slice")
	}
}

func TestLinePainter(t *testing.T) {
	p := newLine().(*painter)
	f := frame(t, 400, 300, engine.Values{
		"labels": []any{"a", "b", "c"},
		"datasets": []any{
			map[string]any{"label": "x", "data": []any{1, 3, 2}},
			map[string]any{"label": "y", "data": []any{2, 1}, "hidden": true},
		},
	})
	if err := p.Paint(gg.NewContext(400, 300), f); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	dots := classed(p, seriesClass(0))
	if len(dots) != 3 {
		t.Fatalf("dots = %d, want 3", len(dots))
	}
	if n := len(classed(p, seriesClass(1))); n != 0 {
		t.Errorf("hidden dataset drew %d dots", n)
	}
	c := dots[1].center()
	e, ok := p.ElementAt(c.X, c.Y)
	if !ok {
		t.Fatalf("ElementAt(%v) found nothing", c)
	}
	want := engine.Element{Dataset: 0, Index: 1, Label: "b", Value: 3, X: c.X, Y: c.Y}
	if diff := cmp.Diff(want, e); diff != "" {
		t.Errorf("ElementAt mismatch (-want +got):\n%s", diff)
	}
}

func TestPaintEmpty(t *testing.T) {
	for _, kind := range []string{"line", "bar", "pie", "doughnut"} {
		for _, data := range []engine.Values{
			{},
			{"datasets": []any{map[string]any{"data": []any{}}}},
			{"datasets": []any{map[string]any{"data": []any{0, 0}}}},
		} {
			inst, err := New().New(newSurface(t), engine.Config{Type: kind, Data: data, Options: engine.Values{"animation": false}})
			if err != nil {
				t.Errorf("%s with %v: New() error = %v", kind, data, err)
				continue
			}
			inst.Destroy()
		}
	}
}

func TestBackend(t *testing.T) {
	b := New()
	if diff := cmp.Diff([]string{"bar", "doughnut", "line", "pie"}, b.Types()); diff != "" {
		t.Errorf("Types() mismatch (-want +got):\n%s", diff)
	}
	_, err := b.New(newSurface(t), engine.Config{Type: "radar"})
	if !errors.Is(err, engine.ErrUnknownType) {
		t.Errorf("New(radar) error = %v, want ErrUnknownType", err)
	}
}

func TestBackendPointer(t *testing.T) {
	s := newSurface(t)
	inst, err := New().New(s, engine.Config{
		Type: "bar",
		Data: engine.Values{
			"labels":   []any{"only"},
			"datasets": []any{map[string]any{"data": []any{4}}},
		},
		Options: engine.Values{"animation": false},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer inst.Destroy()

	p := inst.(*engine.Base).Painter().(*painter)
	bars := classed(p, elementClass(0, 0))
	if len(bars) != 1 {
		t.Fatalf("bars = %d, want 1", len(bars))
	}
	c := bars[0].center()
	s.Dispatch(surface.PointerEvent{Kind: surface.MouseMove, ClientX: c.X, ClientY: c.Y})
	e, ok := inst.(*engine.Base).Active()
	if !ok || e.Label != "only" || e.Value != 4 {
		t.Errorf("Active() = %+v, %v", e, ok)
	}
}

func newSurface(t *testing.T) *surface.Virtual {
	t.Helper()
	s, err := surface.New(320, 240)
	if err != nil {
		t.Fatalf("surface.New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}
