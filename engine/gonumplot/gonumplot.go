// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gonumplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/gogpu/ggchart/engine"
)

// Name is the backend name reported by New.
const Name = "gonumplot"

// DefaultBins is the histogram bin count used when options set none.
const DefaultBins = 10

// New returns an engine drawing scatter, histogram and boxplot charts.
func New() *engine.Backend {
	return engine.NewBackend(Name, map[string]engine.PainterFactory{
		"scatter":   func() engine.Painter { return &painter{build: buildScatter} },
		"histogram": func() engine.Painter { return &painter{build: buildHistogram} },
		"boxplot":   func() engine.Painter { return &painter{build: buildBoxPlot} },
	})
}

// target is a hit-testable element placed in data coordinates. Its
// geometry is resolved against the data canvas after layout.
type target struct {
	elem engine.Element
	// ax, ay anchor the tooltip in data coordinates.
	ax, ay   float64
	contains func(x, y float64) bool
}

// layout maps data coordinates to chart pixels of the last paint.
type layout struct {
	x, y   func(float64) vg.Length
	height float64
}

func (l layout) px(x, y float64) (float64, float64) {
	return float64(l.x(x)), l.height - float64(l.y(y))
}

// builder fills p for one frame and returns the elements it placed.
type builder func(p *plot.Plot, f engine.Frame, l *layout) ([]target, error)

type painter struct {
	build   builder
	targets []target
}

func (p *painter) Paint(dc *gg.Context, f engine.Frame) error {
	p.targets = nil
	if f.Width < 1 || f.Height < 1 {
		return nil
	}

	plt := plot.New()
	plt.BackgroundColor = nil
	plt.Title.Text = title(f.Options)
	plt.X.Label.Text = f.Options.Scales.X.Label
	plt.Y.Label.Text = f.Options.Scales.Y.Label

	l := &layout{height: f.Height}
	targets, err := p.build(plt, f, l)
	if err != nil {
		return fmt.Errorf("gonumplot: %w", err)
	}
	if targets == nil {
		return nil
	}
	if m := f.Options.Scales.Y.Min; m != nil {
		plt.Y.Min = *m
	}
	if m := f.Options.Scales.Y.Max; m != nil {
		plt.Y.Max = *m
	}

	ratio := 1.0
	if dc.Width() > 0 {
		ratio = float64(dc.PixelWidth()) / float64(dc.Width())
	}
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(f.Width), vg.Length(f.Height)),
		vgimg.UseDPI(max(1, int(math.Round(vg.Inch.Points()*ratio)))),
		vgimg.UseBackgroundColor(color.Transparent),
	)
	canvas := draw.New(c)
	plt.Draw(canvas)

	data := plt.DataCanvas(canvas)
	l.x, l.y = plt.Transforms(&data)
	for i := range targets {
		t := &targets[i]
		t.elem.X, t.elem.Y = l.px(t.ax, t.ay)
	}
	p.targets = targets

	dc.DrawImageEx(gg.ImageBufFromImage(c.Image()), gg.DrawImageOptions{
		DstWidth:  f.Width,
		DstHeight: f.Height,
	})
	return nil
}

func (p *painter) ElementAt(x, y float64) (engine.Element, bool) {
	for i := len(p.targets) - 1; i >= 0; i-- {
		if p.targets[i].contains(x, y) {
			return p.targets[i].elem, true
		}
	}
	return engine.Element{}, false
}

func title(o engine.Options) string {
	if o.Title.Display {
		return o.Title.Text
	}
	return ""
}

func addLegend(plt *plot.Plot, f engine.Frame, name string, thumb plot.Thumbnailer) {
	if f.Options.ShowLegend() && name != "" {
		plt.Legend.Add(name, thumb)
	}
}

// glyphRadius is the scatter point radius in chart pixels.
const glyphRadius = 3

func buildScatter(plt *plot.Plot, f engine.Frame, l *layout) ([]target, error) {
	var targets []target
	lo, hi := math.Inf(1), math.Inf(-1)
	for d, ds := range f.Data.Datasets {
		if ds.Hidden {
			continue
		}
		pts := ds.Points()
		if len(pts) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(pts))
		for i, pt := range pts {
			lo, hi = math.Min(lo, pt.Y), math.Max(hi, pt.Y)
			xys[i] = plotter.XY{X: pt.X, Y: pt.Y * f.Progress}
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  ds.Fill(d, 0),
			Radius: vg.Length(glyphRadius),
			Shape:  draw.CircleGlyph{},
		}
		plt.Add(s)
		addLegend(plt, f, ds.Label, s)

		for i, xy := range xys {
			targets = append(targets, pointTarget(l, engine.Element{
				Dataset: d,
				Index:   i,
				Label:   ds.Label,
				Value:   pts[i].Y,
			}, xy.X, xy.Y))
		}
	}
	if targets == nil {
		return nil, nil
	}
	plt.Y.Min = math.Min(plt.Y.Min, math.Min(lo, 0))
	plt.Y.Max = math.Max(plt.Y.Max, hi)
	return targets, nil
}

func pointTarget(l *layout, e engine.Element, x, y float64) target {
	t := target{elem: e, ax: x, ay: y}
	t.contains = func(px, py float64) bool {
		cx, cy := l.px(x, y)
		return math.Hypot(px-cx, py-cy) <= glyphRadius+2
	}
	return t
}

func buildHistogram(plt *plot.Plot, f engine.Frame, l *layout) ([]target, error) {
	bins := f.Options.Bins
	if bins <= 0 {
		bins = DefaultBins
	}
	for d, ds := range f.Data.Datasets {
		if ds.Hidden || len(ds.Data) == 0 {
			continue
		}
		h, err := plotter.NewHist(plotter.Values(ds.Values()), bins)
		if err != nil {
			return nil, err
		}
		h.FillColor = ds.Fill(d, 0)
		h.LineStyle.Color = ds.Stroke(d, 0)

		var top float64
		targets := make([]target, 0, len(h.Bins))
		for i := range h.Bins {
			b := &h.Bins[i]
			top = math.Max(top, b.Weight)
			targets = append(targets, binTarget(l, engine.Element{
				Dataset: d,
				Index:   i,
				Label:   fmt.Sprintf("[%g, %g)", b.Min, b.Max),
				Value:   b.Weight,
			}, b.Min, b.Max, b.Weight*f.Progress))
			b.Weight *= f.Progress
		}
		plt.Add(h)
		addLegend(plt, f, ds.Label, h)
		plt.Y.Max = math.Max(plt.Y.Max, top)
		return targets, nil
	}
	return nil, nil
}

func binTarget(l *layout, e engine.Element, x0, x1, weight float64) target {
	t := target{elem: e, ax: (x0 + x1) / 2, ay: weight}
	t.contains = func(px, py float64) bool {
		left, bottom := l.px(x0, 0)
		right, top := l.px(x1, weight)
		return px >= left && px <= right && py >= top && py <= bottom
	}
	return t
}

// boxWidth is the box width in chart pixels.
const boxWidth = 24

func buildBoxPlot(plt *plot.Plot, f engine.Frame, l *layout) ([]target, error) {
	var targets []target
	var names []string
	for d, ds := range f.Data.Datasets {
		if ds.Hidden || len(ds.Data) == 0 {
			continue
		}
		loc := float64(len(names))
		b, err := plotter.NewBoxPlot(vg.Length(boxWidth), loc, plotter.Values(ds.Values()))
		if err != nil {
			return nil, err
		}
		b.FillColor = ds.Fill(d, 0)
		b.BoxStyle.Color = ds.Stroke(d, 0)
		plt.Add(b)

		name := ds.Label
		if name == "" {
			name = fmt.Sprint(d)
		}
		names = append(names, name)
		targets = append(targets, boxTarget(l, engine.Element{
			Dataset: d,
			Label:   name,
			Value:   b.Median,
		}, loc, b.AdjLow, b.AdjHigh))
	}
	if targets == nil {
		return nil, nil
	}
	plt.NominalX(names...)
	return targets, nil
}

func boxTarget(l *layout, e engine.Element, loc, low, high float64) target {
	t := target{elem: e, ax: loc, ay: high}
	t.contains = func(px, py float64) bool {
		cx, bottom := l.px(loc, low)
		_, top := l.px(loc, high)
		return math.Abs(px-cx) <= boxWidth/2 && py >= top && py <= bottom
	}
	return t
}
