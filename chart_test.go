// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"

	"github.com/gogpu/ggchart/engine"
	"github.com/gogpu/ggchart/scene"
	"github.com/gogpu/ggchart/surface"
)

// recorder is an engine counting what charts ask of it.
type recorder struct {
	created   int
	destroyed int
	updates   int
	resizes   int
	events    []surface.PointerEvent
	last      *fakeInstance
	err       error
}

func (r *recorder) Types() []string { return []string{"bar", "line", "pie"} }

func (r *recorder) New(s engine.Surface, cfg engine.Config) (engine.Instance, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.created++
	inst := &fakeInstance{
		rec:     r,
		kind:    cfg.Type,
		surf:    s,
		data:    cfg.Data,
		options: cfg.Options,
		hooks:   cfg.Hooks,
		plugins: cfg.Plugins,
	}
	for _, kind := range []string{surface.MouseMove, surface.Click, surface.MouseOut, surface.TouchStart, surface.TouchMove} {
		inst.removers = append(inst.removers, s.AddEventListener(kind, func(ev surface.PointerEvent) {
			r.events = append(r.events, ev)
		}))
	}
	inst.fill()
	r.last = inst
	return inst, nil
}

type fakeInstance struct {
	rec       *recorder
	kind      string
	surf      engine.Surface
	data      engine.Values
	options   engine.Values
	hooks     engine.Hooks
	plugins   []engine.Plugin
	removers  []func()
	destroyed bool
}

// fill paints the whole surface red.
func (f *fakeInstance) fill() {
	_ = f.surf.Draw(func(dc *gg.Context) {
		dc.SetRGB(1, 0, 0)
		dc.DrawRectangle(0, 0, f.surf.ClientWidth(), f.surf.ClientHeight())
		_ = dc.Fill()
	})
}

func (f *fakeInstance) Type() string               { return f.kind }
func (f *fakeInstance) Data() engine.Values        { return f.data }
func (f *fakeInstance) SetData(v engine.Values)    { f.data = v }
func (f *fakeInstance) Options() engine.Values     { return f.options }
func (f *fakeInstance) SetOptions(v engine.Values) { f.options = v }
func (f *fakeInstance) Surface() engine.Surface    { return f.surf }

func (f *fakeInstance) Update() error {
	f.rec.updates++
	return nil
}

func (f *fakeInstance) Resize() error {
	f.rec.resizes++
	f.fill()
	return nil
}

func (f *fakeInstance) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	f.rec.destroyed++
	for _, remove := range f.removers {
		remove()
	}
}

func barConfig() engine.Config {
	return engine.Config{
		Type: "bar",
		Data: engine.Values{
			"labels": []any{"a", "b"},
			"datasets": []any{
				map[string]any{"label": "s", "data": []any{1.0, 2.0}},
			},
		},
		Options: engine.Values{
			"title": map[string]any{"text": "t"},
		},
	}
}

var box = scene.Geometry{Left: 10, Top: 20, Width: 100, Height: 50}

func newChart(t *testing.T, g scene.Geometry, cfg engine.Config) (*Chart, *recorder, *Registry) {
	t.Helper()
	rec := &recorder{}
	reg := NewRegistry()
	c, err := New(g, cfg, WithEngine(rec), WithRegistry(reg))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c, rec, reg
}

func newCanvas(ratio float64) (*scene.Canvas, *clockwork.FakeClock) {
	clk := clockwork.NewFakeClock()
	return scene.NewCanvas(200, 100, scene.WithClock(clk), scene.WithPixelRatio(ratio)), clk
}

// settle steps the loop until nothing is pending.
func settle(t *testing.T, cv *scene.Canvas, clk *clockwork.FakeClock) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		cv.Loop().Step()
		if cv.Loop().Idle() {
			return
		}
		clk.Advance(16 * time.Millisecond)
	}
	t.Fatal("loop did not settle")
}

func TestNewCreatesInstance(t *testing.T) {
	c, rec, _ := newChart(t, box, barConfig())
	if rec.created != 1 {
		t.Errorf("created = %d, want 1", rec.created)
	}
	if c.Instance() == nil || c.Instance().Type() != "bar" {
		t.Fatalf("Instance() = %v, want bar instance", c.Instance())
	}
	s := c.Surface()
	if s.Width() != 100 || s.Height() != 50 {
		t.Errorf("surface = %dx%d, want 100x50", s.Width(), s.Height())
	}
	if c.Object().Kind() != Kind {
		t.Errorf("Kind() = %q, want %q", c.Object().Kind(), Kind)
	}
}

func TestSetConfigurationMerges(t *testing.T) {
	c, rec, _ := newChart(t, box, barConfig())
	first := c.Instance()

	err := c.SetConfiguration(engine.Config{
		Options: engine.Values{"title": map[string]any{"display": true}},
	})
	if err != nil {
		t.Fatalf("SetConfiguration() error = %v", err)
	}

	want := engine.Values{"title": map[string]any{"text": "t", "display": true}}
	if diff := cmp.Diff(want, c.Configuration().Options); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(barConfig().Data, c.Configuration().Data); diff != "" {
		t.Errorf("data changed (-want +got):\n%s", diff)
	}
	if c.Instance() != first {
		t.Error("instance replaced by a same-type write")
	}
	if rec.created != 1 || rec.updates != 1 {
		t.Errorf("created, updates = %d, %d, want 1, 1", rec.created, rec.updates)
	}
}

func TestSetConfigurationMonotonic(t *testing.T) {
	c, _, _ := newChart(t, box, barConfig())
	writes := []engine.Values{
		{"legend": map[string]any{"display": false}},
		{"scales": map[string]any{"y": map[string]any{"min": 0.0}}},
		{"scales": map[string]any{"y": map[string]any{"max": 10.0}}},
		{"animation": map[string]any{"duration": 0.0}},
	}
	var seen []engine.Values
	for _, w := range writes {
		if err := c.SetConfiguration(engine.Config{Options: w}); err != nil {
			t.Fatalf("SetConfiguration(%v) error = %v", w, err)
		}
		seen = append(seen, w)
		opts := c.Configuration().Options
		if _, ok := opts["title"]; !ok {
			t.Errorf("after %v: title lost", w)
		}
		for _, s := range seen {
			for k := range s {
				if _, ok := opts[k]; !ok {
					t.Errorf("after %v: key %q lost", w, k)
				}
			}
		}
	}
	y := c.Configuration().Options["scales"].(map[string]any)["y"]
	if diff := cmp.Diff(map[string]any{"min": 0.0, "max": 10.0}, y); diff != "" {
		t.Errorf("scales.y mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeChangeReplacesInstance(t *testing.T) {
	c, rec, _ := newChart(t, box, barConfig())
	first := c.Instance().(*fakeInstance)

	if err := c.SetConfiguration(engine.Config{Type: "pie"}); err != nil {
		t.Fatalf("SetConfiguration() error = %v", err)
	}
	if !first.destroyed {
		t.Error("old instance not destroyed")
	}
	if rec.created != 2 || rec.destroyed != 1 || rec.updates != 0 {
		t.Errorf("created, destroyed, updates = %d, %d, %d, want 2, 1, 0", rec.created, rec.destroyed, rec.updates)
	}
	if got := c.Instance().Type(); got != "pie" {
		t.Errorf("Type() = %q, want pie", got)
	}
	if diff := cmp.Diff(barConfig().Data, rec.last.data); diff != "" {
		t.Errorf("new instance data (-want +got):\n%s", diff)
	}

	// Naming the current type is an ordinary update.
	if err := c.SetConfiguration(engine.Config{Type: "pie"}); err != nil {
		t.Fatalf("SetConfiguration() error = %v", err)
	}
	if rec.created != 2 || rec.updates != 1 {
		t.Errorf("created, updates = %d, %d, want 2, 1", rec.created, rec.updates)
	}
}

func TestLayeredConfiguration(t *testing.T) {
	rec := &recorder{}
	reg := NewRegistry()
	reg.AddPlugins(engine.Plugin{ID: "registry"})
	reg.SetDefaults(engine.Config{
		Options: engine.Values{
			"responsive": true,
			"legend":     map[string]any{"display": false},
			"title":      map[string]any{"text": "default", "display": true},
		},
		Plugins: []engine.Plugin{{ID: "defaults"}},
	})
	cfg := barConfig()
	cfg.Plugins = []engine.Plugin{{ID: "object"}}

	c, err := New(box, cfg, WithEngine(rec), WithRegistry(reg))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := engine.Values{
		"responsive":          true,
		"maintainAspectRatio": false,
		"legend":              map[string]any{"display": false},
		"title":               map[string]any{"text": "t", "display": true},
	}
	if diff := cmp.Diff(want, rec.last.options); diff != "" {
		t.Errorf("engine options (-want +got):\n%s", diff)
	}
	var ids []string
	for _, p := range rec.last.plugins {
		ids = append(ids, p.ID)
	}
	if diff := cmp.Diff([]string{"registry", "defaults", "object"}, ids); diff != "" {
		t.Errorf("plugin order (-want +got):\n%s", diff)
	}
	if _, ok := c.Configuration().Options["responsive"]; ok {
		t.Error("defaults leaked into the stored configuration")
	}

	// Hot updates hand the engine the same layers.
	if err := c.SetConfiguration(engine.Config{Options: engine.Values{"responsive": false}}); err != nil {
		t.Fatalf("SetConfiguration() error = %v", err)
	}
	want["responsive"] = false
	if diff := cmp.Diff(want, rec.last.options); diff != "" {
		t.Errorf("updated options (-want +got):\n%s", diff)
	}
}

func TestDefaultType(t *testing.T) {
	rec := &recorder{}
	reg := NewRegistry()
	reg.SetDefaults(engine.Config{Type: "line"})
	cfg := barConfig()
	cfg.Type = ""

	c, err := New(box, cfg, WithEngine(rec), WithRegistry(reg))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := c.Instance().Type(); got != "line" {
		t.Errorf("Type() = %q, want line", got)
	}
}

func TestHooksCompose(t *testing.T) {
	var calls []string
	rec := &recorder{}
	reg := NewRegistry()
	reg.SetDefaults(engine.Config{Hooks: engine.Hooks{
		OnResize:   func(engine.Instance, engine.Size) { calls = append(calls, "process resize") },
		OnProgress: func(engine.Instance, engine.Animation) { calls = append(calls, "process progress") },
	}})
	cfg := barConfig()
	var got engine.Instance
	cfg.Hooks = engine.Hooks{
		OnResize: func(inst engine.Instance, _ engine.Size) {
			got = inst
			calls = append(calls, "object resize")
		},
		OnProgress: func(engine.Instance, engine.Animation) { calls = append(calls, "object progress") },
	}
	c, err := New(box, cfg, WithEngine(rec), WithRegistry(reg))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	cv, clk := newCanvas(1)
	defer cv.Close()
	cv.Add(c)
	settle(t, cv, clk)
	renders := cv.Renders()
	c.Object().SetDirty(false)

	h := rec.last.hooks
	h.OnResize(rec.last, engine.Size{Width: 1, Height: 1})
	h.OnProgress(rec.last, engine.Animation{Progress: 0.5})

	want := []string{"process resize", "object resize", "process progress", "object progress"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Errorf("hook calls (-want +got):\n%s", diff)
	}
	if got != c.Instance() {
		t.Error("object hook did not receive the live instance")
	}
	if !c.Object().Dirty() {
		t.Error("object not marked dirty")
	}
	settle(t, cv, clk)
	if cv.Renders() != renders+1 {
		t.Errorf("renders = %d, want %d", cv.Renders(), renders+1)
	}

	// Object hooks are read when fired.
	calls = nil
	err = c.SetConfiguration(engine.Config{Hooks: engine.Hooks{
		OnResize: func(engine.Instance, engine.Size) { calls = append(calls, "new resize") },
	}})
	if err != nil {
		t.Fatalf("SetConfiguration() error = %v", err)
	}
	h.OnResize(rec.last, engine.Size{})
	if diff := cmp.Diff([]string{"process resize", "new resize"}, calls); diff != "" {
		t.Errorf("hook calls after write (-want +got):\n%s", diff)
	}
}

func TestResizeDebounced(t *testing.T) {
	c, rec, _ := newChart(t, box, barConfig())
	cv, clk := newCanvas(2)
	defer cv.Close()
	cv.Add(c)
	settle(t, cv, clk)

	s := c.Surface()
	if s.Width() != 200 || s.Height() != 100 {
		t.Fatalf("surface after attach = %dx%d, want 200x100", s.Width(), s.Height())
	}
	rec.resizes = 0

	c.Object().SetScale(2, 2)
	c.Object().SetScale(3, 1.5)
	cv.Loop().Step()
	if rec.resizes != 0 {
		t.Fatalf("resizes before quiet period = %d, want 0", rec.resizes)
	}

	clk.Advance(ResizeDelay)
	cv.Loop().Step()
	if rec.resizes != 1 {
		t.Errorf("resizes = %d, want 1", rec.resizes)
	}
	if s.Width() != 600 || s.Height() != 150 {
		t.Errorf("surface = %dx%d, want 600x150", s.Width(), s.Height())
	}
	if s.ClientWidth() != 300 || s.ClientHeight() != 75 {
		t.Errorf("client = %vx%v, want 300x75", s.ClientWidth(), s.ClientHeight())
	}
	if diff := cmp.Diff(surface.RectFromBounds(10, 20, 300, 75), s.BoundingRect()); diff != "" {
		t.Errorf("BoundingRect() (-want +got):\n%s", diff)
	}
	if got := s.BoundingRect(); got.X != 160 || got.Y != 57.5 {
		t.Errorf("rect center = (%v, %v), want (160, 57.5)", got.X, got.Y)
	}
	if s.ComputedStyle() != (surface.Style{}) {
		t.Errorf("ComputedStyle() = %+v, want zero padding", s.ComputedStyle())
	}
}

func TestResizeFollowsSize(t *testing.T) {
	c, rec, _ := newChart(t, box, barConfig())
	cv, clk := newCanvas(2)
	defer cv.Close()
	cv.Add(c)
	settle(t, cv, clk)
	rec.resizes = 0

	if err := c.Set("width", 126.25); err != nil {
		t.Fatalf("Set(width) error = %v", err)
	}
	if err := c.Set("height", 63.75); err != nil {
		t.Fatalf("Set(height) error = %v", err)
	}
	clk.Advance(ResizeDelay)
	cv.Loop().Step()

	if rec.resizes != 1 {
		t.Errorf("resizes = %d, want 1", rec.resizes)
	}
	s := c.Surface()
	if s.Width() != 252 || s.Height() != 127 {
		t.Errorf("surface = %dx%d, want 252x127", s.Width(), s.Height())
	}
	if s.ClientWidth() != 126 || s.ClientHeight() != 63.5 {
		t.Errorf("client = %vx%v, want 126x63.5", s.ClientWidth(), s.ClientHeight())
	}
}

func TestResizeWithoutCanvasIsImmediate(t *testing.T) {
	c, rec, _ := newChart(t, box, barConfig())
	c.Object().SetScale(2, 2)
	if rec.resizes != 1 {
		t.Errorf("resizes = %d, want 1", rec.resizes)
	}
	if s := c.Surface(); s.Width() != 200 || s.Height() != 100 {
		t.Errorf("surface = %dx%d, want 200x100", s.Width(), s.Height())
	}
}

func TestDestroyCancelsResize(t *testing.T) {
	c, rec, _ := newChart(t, box, barConfig())
	cv, clk := newCanvas(1)
	defer cv.Close()
	cv.Add(c)
	settle(t, cv, clk)
	rec.resizes = 0

	c.Object().SetScale(2, 2)
	s := c.Surface()
	c.Destroy()
	clk.Advance(time.Second)
	cv.Loop().Step()

	if rec.resizes != 0 {
		t.Errorf("resizes after Destroy = %d, want 0", rec.resizes)
	}
	if rec.destroyed != 1 || c.Instance() != nil {
		t.Errorf("destroyed = %d, instance = %v, want 1, nil", rec.destroyed, c.Instance())
	}
	if !s.Closed() {
		t.Error("surface not closed")
	}
	if err := c.SetConfiguration(barConfig()); !errors.Is(err, ErrDestroyed) {
		t.Errorf("SetConfiguration() error = %v, want ErrDestroyed", err)
	}

	c.Destroy()
	if rec.destroyed != 1 {
		t.Errorf("destroyed after second Destroy = %d, want 1", rec.destroyed)
	}
}

func TestForwardPointer(t *testing.T) {
	tests := []struct {
		name    string
		g       scene.Geometry
		pointer gg.Point
		want    gg.Point
	}{
		{"plain", box, gg.Pt(40, 30), gg.Pt(40, 30)},
		{"top-left corner", box, gg.Pt(10, 20), gg.Pt(10, 20)},
		{"flipX right edge", scene.Geometry{Left: 10, Top: 20, Width: 100, Height: 50, FlipX: true}, gg.Pt(110, 30), gg.Pt(10, 30)},
		{"flipX left edge", scene.Geometry{Left: 10, Top: 20, Width: 100, Height: 50, FlipX: true}, gg.Pt(10, 30), gg.Pt(110, 30)},
		{"flipY", scene.Geometry{Left: 10, Top: 20, Width: 100, Height: 50, FlipY: true}, gg.Pt(40, 60), gg.Pt(40, 30)},
		{"scaled", scene.Geometry{Left: 10, Top: 20, Width: 100, Height: 50, ScaleX: 2, ScaleY: 2}, gg.Pt(70, 40), gg.Pt(70, 40)},
		// Rotated 90 degrees: the top-left corner stays put and local +x
		// points down the scene.
		{"rotated", scene.Geometry{Left: 10, Top: 20, Width: 100, Height: 50, Angle: 90}, gg.Pt(10, 50), gg.Pt(40, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec, _ := newChart(t, tt.g, barConfig())
			cv, _ := newCanvas(1)
			defer cv.Close()
			cv.Add(c)

			c.Object().Fire(scene.EventMouseMove, scene.Event{Pointer: tt.pointer})
			if len(rec.events) != 1 {
				t.Fatalf("events = %d, want 1", len(rec.events))
			}
			ev := rec.events[0]
			if math.Abs(ev.ClientX-tt.want.X) > 1e-6 || math.Abs(ev.ClientY-tt.want.Y) > 1e-6 {
				t.Errorf("client = (%v, %v), want (%v, %v)", ev.ClientX, ev.ClientY, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestForwardKinds(t *testing.T) {
	tests := []struct {
		scene, surface string
	}{
		{scene.EventMouseMove, surface.MouseMove},
		{scene.EventMouseDown, surface.Click},
		{scene.EventMouseOut, surface.MouseOut},
		{scene.EventTouchStart, surface.TouchStart},
		{scene.EventTouchMove, surface.TouchMove},
	}
	for _, tt := range tests {
		t.Run(tt.scene, func(t *testing.T) {
			c, rec, _ := newChart(t, box, barConfig())
			cv, _ := newCanvas(1)
			defer cv.Close()
			cv.Add(c)

			c.Object().Fire(tt.scene, scene.Event{Pointer: gg.Pt(20, 30)})
			if len(rec.events) != 1 || rec.events[0].Kind != tt.surface {
				t.Errorf("events = %+v, want one %q", rec.events, tt.surface)
			}
		})
	}

	c, rec, _ := newChart(t, box, barConfig())
	cv, _ := newCanvas(1)
	defer cv.Close()
	cv.Add(c)
	c.Object().Fire(scene.EventMouseUp, scene.Event{Pointer: gg.Pt(20, 30)})
	if len(rec.events) != 0 {
		t.Errorf("mouseup forwarded: %+v", rec.events)
	}
}

func TestForwardNoOp(t *testing.T) {
	t.Run("detached", func(t *testing.T) {
		c, rec, _ := newChart(t, box, barConfig())
		c.Object().Fire(scene.EventMouseMove, scene.Event{Pointer: gg.Pt(20, 30)})
		if len(rec.events) != 0 {
			t.Errorf("events = %+v, want none", rec.events)
		}
	})

	t.Run("no instance", func(t *testing.T) {
		rec := &recorder{err: errors.New("boom")}
		c, err := New(box, barConfig(), WithEngine(rec), WithRegistry(NewRegistry()))
		if err == nil {
			t.Fatal("New() error = nil, want error")
		}
		cv, _ := newCanvas(1)
		defer cv.Close()
		cv.Add(c)
		c.Object().Fire(scene.EventMouseMove, scene.Event{Pointer: gg.Pt(20, 30)})
		if len(rec.events) != 0 {
			t.Errorf("events = %+v, want none", rec.events)
		}
	})

	t.Run("destroyed", func(t *testing.T) {
		c, rec, _ := newChart(t, box, barConfig())
		cv, _ := newCanvas(1)
		defer cv.Close()
		cv.Add(c)
		c.Destroy()
		c.Object().Fire(scene.EventMouseMove, scene.Event{Pointer: gg.Pt(20, 30)})
		if len(rec.events) != 0 {
			t.Errorf("events = %+v, want none", rec.events)
		}
	})
}

func TestCreateFailureRetries(t *testing.T) {
	boom := errors.New("boom")
	rec := &recorder{err: boom}
	c, err := New(box, barConfig(), WithEngine(rec), WithRegistry(NewRegistry()))
	if !errors.Is(err, boom) {
		t.Fatalf("New() error = %v, want boom", err)
	}
	if c == nil || c.Instance() != nil {
		t.Fatalf("New() = %v, want chart without instance", c)
	}
	if c.Configuration().Type != "bar" {
		t.Errorf("configuration lost: %+v", c.Configuration())
	}

	rec.err = nil
	if err := c.SetConfiguration(engine.Config{Options: engine.Values{"legend": map[string]any{"display": false}}}); err != nil {
		t.Fatalf("SetConfiguration() error = %v", err)
	}
	if rec.created != 1 || c.Instance() == nil {
		t.Errorf("created = %d, instance = %v, want 1 and an instance", rec.created, c.Instance())
	}
}

func TestSetRoutesChartKey(t *testing.T) {
	c, rec, _ := newChart(t, box, barConfig())

	if err := c.Set("chart", map[string]any{"type": "pie"}); err != nil {
		t.Fatalf("Set(chart) error = %v", err)
	}
	if got := c.Instance().Type(); got != "pie" {
		t.Errorf("Type() = %q, want pie", got)
	}
	if err := c.Set("left", 5); err != nil {
		t.Fatalf("Set(left) error = %v", err)
	}
	if c.Object().Left() != 5 {
		t.Errorf("Left() = %v, want 5", c.Object().Left())
	}
	if rec.created != 2 {
		t.Errorf("created = %d, want 2", rec.created)
	}
	if err := c.Set("chart", "not a config"); err == nil {
		t.Error("Set(chart, string) error = nil, want error")
	}
}

func TestRender(t *testing.T) {
	c, _, _ := newChart(t, scene.Geometry{Left: 50, Top: 25, Width: 100, Height: 50}, barConfig())
	cv, clk := newCanvas(2)
	defer cv.Close()
	cv.Add(c)
	settle(t, cv, clk)

	img := cv.Image()
	if r, _, _, a := img.At(200, 100).RGBA(); r>>8 != 255 || a>>8 != 255 {
		t.Errorf("chart center = (%d, %d), want opaque red", r>>8, a>>8)
	}
	if _, _, _, a := img.At(20, 20).RGBA(); a != 0 {
		t.Errorf("outside alpha = %d, want 0", a)
	}
}

func TestToObject(t *testing.T) {
	c, _, _ := newChart(t, box, barConfig())
	c.cfg.Hooks.OnResize = func(engine.Instance, engine.Size) {}

	obj := c.ToObject()
	if obj["type"] != Kind {
		t.Errorf("type = %v, want %q", obj["type"], Kind)
	}
	if diff := cmp.Diff(barConfig().Tree(), obj["chart"]); diff != "" {
		t.Errorf("chart (-want +got):\n%s", diff)
	}
}
