// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/engine"
	"github.com/gogpu/ggchart/scene"
)

func newDemoCmd() *cobra.Command {
	var (
		output string
		width  int
		height int
		dpr    float64
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a demo scene with every chart type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return demo(output, width, height, dpr)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "demo.png", "Output PNG file")
	cmd.Flags().IntVar(&width, "width", 960, "Canvas width")
	cmd.Flags().IntVar(&height, "height", 640, "Canvas height")
	cmd.Flags().Float64Var(&dpr, "dpr", 1, "Device pixel ratio")
	return cmd
}

// backdrop fills its box with a vertical gradient made of bands.
type backdrop struct {
	obj *scene.Object
}

func newBackdrop(w, h float64) *backdrop {
	b := &backdrop{obj: scene.NewObject("backdrop", scene.Geometry{Width: w, Height: h})}
	b.obj.Bind(b)
	return b
}

func (b *backdrop) Object() *scene.Object { return b.obj }

func (b *backdrop) Render(dc *gg.Context) {
	const steps = 100
	w, h := b.obj.Width(), b.obj.Height()
	for i := 0; i < steps; i++ {
		t := float64(i) / steps
		dc.SetColor(gg.RGB(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2))
		dc.DrawRectangle(-w/2, -h/2+h*t, w, h/steps+1)
		_ = dc.Fill()
	}
}

func (b *backdrop) ToObject(extra ...string) map[string]any {
	return b.obj.ToObject(extra...)
}

func demoCharts() []struct {
	geom scene.Geometry
	cfg  engine.Config
} {
	week := []any{"mon", "tue", "wed", "thu", "fri"}
	title := func(s string) engine.Values {
		return engine.Values{"title": map[string]any{"display": true, "text": s}}
	}
	return []struct {
		geom scene.Geometry
		cfg  engine.Config
	}{
		{
			scene.Geometry{Left: 20, Top: 20, Width: 300, Height: 200},
			engine.Config{Type: "bar", Options: title("Orders"), Data: engine.Values{
				"labels": week,
				"datasets": []any{
					map[string]any{"label": "web", "data": []any{12, 19, 3, 5, 2}},
					map[string]any{"label": "store", "data": []any{7, 11, 5, 8, 3}},
				},
			}},
		},
		{
			scene.Geometry{Left: 340, Top: 20, Width: 300, Height: 200, Angle: 4},
			engine.Config{Type: "line", Options: title("Latency"), Data: engine.Values{
				"labels":   week,
				"datasets": []any{map[string]any{"label": "p99", "data": []any{120, 90, 140, 80, 100}}},
			}},
		},
		{
			scene.Geometry{Left: 660, Top: 20, Width: 200, Height: 200},
			engine.Config{Type: "doughnut", Data: engine.Values{
				"labels":   []any{"a", "b", "c"},
				"datasets": []any{map[string]any{"data": []any{3, 2, 1}}},
			}},
		},
		{
			scene.Geometry{Left: 20, Top: 260, Width: 300, Height: 200, ScaleX: 1.2, ScaleY: 1.2},
			engine.Config{Type: "scatter", Options: title("Samples"), Data: engine.Values{
				"datasets": []any{map[string]any{"label": "run", "data": []any{
					map[string]any{"x": 1, "y": 2}, map[string]any{"x": 2, "y": 3},
					map[string]any{"x": 3, "y": 1}, map[string]any{"x": 4, "y": 4},
				}}},
			}},
		},
		{
			scene.Geometry{Left: 420, Top: 260, Width: 240, Height: 200, FlipX: true},
			engine.Config{Type: "histogram", Options: title("Sizes"), Data: engine.Values{
				"datasets": []any{map[string]any{"label": "kb", "data": []any{1, 2, 2, 3, 3, 3, 4, 4, 5, 8}}},
			}},
		},
		{
			scene.Geometry{Left: 680, Top: 260, Width: 240, Height: 200},
			engine.Config{Type: "boxplot", Data: engine.Values{
				"datasets": []any{
					map[string]any{"label": "a", "data": []any{1, 2, 3, 4, 5, 9}},
					map[string]any{"label": "b", "data": []any{2, 3, 3, 4, 6}},
				},
			}},
		},
	}
}

func demo(output string, width, height int, dpr float64) error {
	clk := clockwork.NewFakeClock()
	cv := scene.NewCanvas(width, height, scene.WithClock(clk), scene.WithPixelRatio(dpr))
	defer cv.Close()

	reg := ggchart.NewRegistry()
	reg.AddPlugins(engine.BackgroundPlugin("#ffffffe0"))

	cv.Add(newBackdrop(float64(width), float64(height)))
	for i, d := range demoCharts() {
		c, err := ggchart.New(d.geom, d.cfg, ggchart.WithRegistry(reg))
		if err != nil {
			return fmt.Errorf("chart %d (%s): %w", i, d.cfg.Type, err)
		}
		cv.Add(c)
	}
	if err := settle(cv, clk); err != nil {
		return err
	}
	cv.RenderAll()
	return writePNG(output, cv)
}
