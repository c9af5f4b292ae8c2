// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gochart

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/gogpu/ggchart/engine"
)

// classPrefix tags styles of hit-testable elements. Element classes are
// "ggchart-<dataset>-<index>", series classes "ggchart-<dataset>".
const classPrefix = "ggchart-"

func elementClass(ds, i int) string { return fmt.Sprintf("%s%d-%d", classPrefix, ds, i) }

func seriesClass(ds int) string { return fmt.Sprintf("%s%d", classPrefix, ds) }

// parseClass returns the dataset and, for element classes, the index.
func parseClass(class string) (ds, i int, element bool, ok bool) {
	n, _ := fmt.Sscanf(class, classPrefix+"%d-%d", &ds, &i)
	switch n {
	case 2:
		return ds, i, true, true
	case 1:
		return ds, 0, false, true
	}
	return 0, 0, false, false
}

// renderable is implemented by every go-chart chart type.
type renderable = interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// painter paints one chart type through go-chart and hit tests the shapes
// it drew.
type painter struct {
	build func(f engine.Frame, w, h int) renderable
	last  *Renderer
	frame engine.Frame
}

func (p *painter) Paint(dc *gg.Context, f engine.Frame) error {
	r := NewRenderer(dc)
	p.last = r
	p.frame = f

	w, h := int(math.Round(f.Width)), int(math.Round(f.Height))
	if w <= 0 || h <= 0 {
		return nil
	}
	c := p.build(f, w, h)
	if c == nil {
		return nil
	}
	if err := c.Render(r.Provider(), nil); err != nil {
		return fmt.Errorf("gochart: %w", err)
	}
	return nil
}

func (p *painter) ElementAt(x, y float64) (engine.Element, bool) {
	if p.last == nil {
		return engine.Element{}, false
	}
	class, nth, at, ok := p.last.Hit(x, y)
	if !ok {
		return engine.Element{}, false
	}
	ds, i, element, ok := parseClass(class)
	if !ok {
		return engine.Element{}, false
	}
	if !element {
		i = nth
	}
	datasets := p.frame.Data.Datasets
	if ds >= len(datasets) {
		return engine.Element{}, false
	}
	values := datasets[ds].Values()
	if i >= len(values) {
		return engine.Element{}, false
	}
	e := engine.Element{
		Dataset: ds,
		Index:   i,
		Label:   label(p.frame.Data, i),
		Value:   values[i],
		X:       at.X,
		Y:       at.Y,
	}
	return e, true
}

func label(d engine.Data, i int) string {
	if i < len(d.Labels) {
		return d.Labels[i]
	}
	return ""
}

func isActive(f engine.Frame, ds, i int) bool {
	return f.Active != nil && f.Active.Dataset == ds && f.Active.Index == i
}

func toDrawing(c color.Color) drawing.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// darker is the highlight border of an active element.
func darker(c color.Color) drawing.Color {
	d := toDrawing(c)
	d.R, d.G, d.B = d.R*3/4, d.G*3/4, d.B*3/4
	d.A = 255
	return d
}

func transparent() chart.Style {
	return chart.Style{
		FillColor:   drawing.ColorTransparent,
		StrokeColor: drawing.ColorTransparent,
	}
}

func title(o engine.Options) string {
	if o.Title.Display {
		return o.Title.Text
	}
	return ""
}

// valueRange returns the y range of all visible datasets, widened to
// include zero and overridden by the configured axis bounds.
func valueRange(f engine.Frame) (lo, hi float64) {
	lo, hi = 0, 0
	for _, ds := range f.Data.Datasets {
		if ds.Hidden {
			continue
		}
		for _, v := range ds.Values() {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi > lo {
		round := chart.GetRoundToForDelta(hi - lo)
		lo, hi = chart.RoundDown(lo, round), chart.RoundUp(hi, round)
	}
	if m := f.Options.Scales.Y.Min; m != nil {
		lo = *m
	}
	if m := f.Options.Scales.Y.Max; m != nil {
		hi = *m
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// grow moves v from base toward its final value as progress goes 0 to 1.
func grow(base, v, progress float64) float64 {
	return base + (v-base)*progress
}

func newLine() engine.Painter {
	return &painter{build: buildLine}
}

func buildLine(f engine.Frame, w, h int) renderable {
	lo, hi := valueRange(f)
	base := math.Max(lo, math.Min(0, hi))

	xlo, xhi := math.Inf(1), math.Inf(-1)
	c := chart.Chart{
		Title:      title(f.Options),
		Width:      w,
		Height:     h,
		Background: transparent(),
		Canvas:     transparent(),
		XAxis:      chart.XAxis{Name: f.Options.Scales.X.Label},
		YAxis: chart.YAxis{
			Name:  f.Options.Scales.Y.Label,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
	}
	for d, ds := range f.Data.Datasets {
		if ds.Hidden {
			continue
		}
		pts := ds.Points()
		if len(pts) == 0 {
			continue
		}
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for i, pt := range pts {
			xs[i] = pt.X
			ys[i] = grow(base, pt.Y, f.Progress)
			xlo, xhi = math.Min(xlo, pt.X), math.Max(xhi, pt.X)
		}
		width := ds.BorderWidth
		if width <= 0 {
			width = chart.DefaultSeriesLineWidth
		}
		c.Series = append(c.Series, chart.ContinuousSeries{
			Name: ds.Label,
			Style: chart.Style{
				ClassName:   seriesClass(d),
				StrokeColor: toDrawing(ds.Stroke(d, 0)),
				StrokeWidth: width,
				DotColor:    toDrawing(ds.Fill(d, 0)),
				DotWidth:    width + 1,
			},
			XValues: xs,
			YValues: ys,
		})
	}
	if len(c.Series) == 0 {
		return nil
	}
	if m := f.Options.Scales.X.Min; m != nil {
		xlo = *m
	}
	if m := f.Options.Scales.X.Max; m != nil {
		xhi = *m
	}
	if xhi <= xlo {
		xlo, xhi = xlo-0.5, xlo+0.5
	}
	c.XAxis.Range = &chart.ContinuousRange{Min: xlo, Max: xhi}
	if n := len(f.Data.Labels); n >= 2 {
		for i, l := range f.Data.Labels {
			c.XAxis.Ticks = append(c.XAxis.Ticks, chart.Tick{Value: float64(i), Label: l})
		}
	}
	if f.Options.ShowLegend() && len(c.Series) > 1 {
		c.Elements = []chart.Renderable{chart.Legend(&c)}
	}
	return c
}

func newBar() engine.Painter {
	return &painter{build: buildBar}
}

func buildBar(f engine.Frame, w, h int) renderable {
	lo, hi := valueRange(f)
	base := math.Max(lo, math.Min(0, hi))

	c := chart.BarChart{
		Title:        title(f.Options),
		Width:        w,
		Height:       h,
		Background:   transparent(),
		Canvas:       transparent(),
		UseBaseValue: true,
		BaseValue:    base,
		YAxis: chart.YAxis{
			Name:  f.Options.Scales.Y.Label,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
	}
	n := 0
	for _, ds := range f.Data.Datasets {
		if !ds.Hidden {
			n = max(n, len(ds.Data))
		}
	}
	for i := 0; i < n; i++ {
		first := true
		for d, ds := range f.Data.Datasets {
			if ds.Hidden || i >= len(ds.Data) {
				continue
			}
			v := ds.Values()[i]
			style := chart.Style{
				ClassName:   elementClass(d, i),
				FillColor:   toDrawing(ds.Fill(d, i)),
				StrokeColor: toDrawing(ds.Stroke(d, i)),
				StrokeWidth: math.Max(ds.BorderWidth, 1),
			}
			if isActive(f, d, i) {
				style.StrokeColor = darker(ds.Fill(d, i))
				style.StrokeWidth = style.StrokeWidth + 2
			}
			bar := chart.Value{Value: grow(base, v, f.Progress), Style: style}
			if first {
				bar.Label = label(f.Data, i)
				first = false
			}
			c.Bars = append(c.Bars, bar)
		}
	}
	if len(c.Bars) == 0 {
		return nil
	}
	return c
}

// sliceValues returns the values of the first visible dataset as pie
// slices scaled by progress, plus a transparent filler covering the rest
// of the circle.
func sliceValues(f engine.Frame) []chart.Value {
	for d, ds := range f.Data.Datasets {
		if ds.Hidden {
			continue
		}
		var total float64
		values := ds.Values()
		for _, v := range values {
			if v > 0 {
				total += v
			}
		}
		if total <= 0 {
			return nil
		}
		out := make([]chart.Value, 0, len(values)+1)
		for i, v := range values {
			style := chart.Style{
				ClassName:   elementClass(d, i),
				FillColor:   toDrawing(ds.Fill(d, i)),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: math.Max(ds.BorderWidth, 2),
			}
			if isActive(f, d, i) {
				style.StrokeColor = darker(ds.Fill(d, i))
			}
			if v < 0 {
				v = 0
			}
			out = append(out, chart.Value{Label: label(f.Data, i), Value: v * f.Progress, Style: style})
		}
		// A lone slice is drawn as an unfilled circle, so the filler never
		// fully vanishes.
		rest := math.Max(total*(1-f.Progress), total*1e-6)
		out = append(out, chart.Value{Value: rest, Style: transparent()})
		return out
	}
	return nil
}

func newPie() engine.Painter {
	return &painter{build: buildPie}
}

func buildPie(f engine.Frame, w, h int) renderable {
	values := sliceValues(f)
	if values == nil {
		return nil
	}
	return chart.PieChart{
		Title:      title(f.Options),
		Width:      w,
		Height:     h,
		Background: transparent(),
		Canvas:     transparent(),
		Values:     values,
	}
}

func newDoughnut() engine.Painter {
	return &painter{build: buildDoughnut}
}

func buildDoughnut(f engine.Frame, w, h int) renderable {
	values := sliceValues(f)
	if values == nil {
		return nil
	}
	return chart.DonutChart{
		Title:      title(f.Options),
		Width:      w,
		Height:     h,
		Background: transparent(),
		Canvas:     transparent(),
		Values:     values,
	}
}
