// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gochart

import (
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/wcharczuk/go-chart/v2/roboto"

	"github.com/gogpu/ggchart/engine"
)

// circleSegments is the number of edges used to record a circle for hit
// testing.
const circleSegments = 24

var (
	fontsMu sync.RWMutex
	fonts   = map[string]*engine.Fonts{}
	roboFnt = engine.NewFonts(roboto.Roboto)
)

// RegisterFont makes a TrueType font usable by chart styles. go-chart
// hands fonts to renderers as parsed *truetype.Font values; the family
// name links them back to ttf.
func RegisterFont(ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return err
	}
	fontsMu.Lock()
	fonts[f.Name(truetype.NameIDFontFamily)] = engine.NewFonts(ttf)
	fontsMu.Unlock()
	return nil
}

func fontsFor(f *truetype.Font) *engine.Fonts {
	if f == nil {
		return roboFnt
	}
	fontsMu.RLock()
	defer fontsMu.RUnlock()
	if fs, ok := fonts[f.Name(truetype.NameIDFontFamily)]; ok {
		return fs
	}
	return roboFnt
}

// shape is a filled and stroked path recorded for hit testing.
type shape struct {
	class    string
	subpaths [][]gg.Point
	min, max gg.Point
}

func (s *shape) contains(x, y float64) bool {
	if x < s.min.X || x > s.max.X || y < s.min.Y || y > s.max.Y {
		return false
	}
	in := false
	for _, poly := range s.subpaths {
		n := len(poly)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := poly[i], poly[j]
			if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
				in = !in
			}
		}
	}
	return in
}

func (s *shape) center() gg.Point {
	return gg.Pt((s.min.X+s.max.X)/2, (s.min.Y+s.max.Y)/2)
}

// Renderer is a go-chart renderer drawing onto a gg.Context. Besides
// painting it records every FillStroke path together with the class name
// active at the time, so painters can hit test what go-chart laid out.
type Renderer struct {
	dc  *gg.Context
	dpi float64

	class       string
	strokeColor drawing.Color
	fillColor   drawing.Color
	strokeWidth float64
	dashes      []float64

	fonts        *engine.Fonts
	fontSize     float64
	fontColor    drawing.Color
	textRotation float64

	subpaths [][]gg.Point
	shapes   []shape
}

// NewRenderer returns a renderer drawing into dc.
func NewRenderer(dc *gg.Context) *Renderer {
	return &Renderer{
		dc:          dc,
		dpi:         chart.DefaultDPI,
		strokeWidth: chart.DefaultStrokeWidth,
		fonts:       roboFnt,
		fontSize:    chart.DefaultFontSize,
	}
}

// Provider returns a chart.RendererProvider handing out r for any size.
// The chart size is set on the chart itself.
func (r *Renderer) Provider() chart.RendererProvider {
	return func(int, int) (chart.Renderer, error) {
		return r, nil
	}
}

// ResetStyle should reset any style related settings on the renderer.
func (r *Renderer) ResetStyle() {
	r.class = ""
	r.strokeColor = drawing.Color{}
	r.fillColor = drawing.Color{}
	r.strokeWidth = chart.DefaultStrokeWidth
	r.dashes = nil
	r.fontColor = drawing.Color{}
	r.textRotation = 0
}

// GetDPI gets the DPI for the renderer.
func (r *Renderer) GetDPI() float64 { return r.dpi }

// SetDPI sets the DPI for the renderer.
func (r *Renderer) SetDPI(dpi float64) { r.dpi = dpi }

// SetClassName sets the current class name.
func (r *Renderer) SetClassName(name string) { r.class = name }

// SetStrokeColor sets the current stroke color.
func (r *Renderer) SetStrokeColor(c drawing.Color) { r.strokeColor = c }

// SetFillColor sets the current fill color.
func (r *Renderer) SetFillColor(c drawing.Color) { r.fillColor = c }

// SetStrokeWidth sets the stroke width.
func (r *Renderer) SetStrokeWidth(width float64) { r.strokeWidth = width }

// SetStrokeDashArray sets the stroke dash array.
func (r *Renderer) SetStrokeDashArray(dashes []float64) {
	r.dashes = append(r.dashes[:0], dashes...)
}

// MoveTo moves the cursor to a given point.
func (r *Renderer) MoveTo(x, y int) {
	r.moveTo(float64(x), float64(y))
}

// LineTo both starts a shape and draws a line to a given point
// from the previous point.
func (r *Renderer) LineTo(x, y int) {
	r.lineTo(float64(x), float64(y))
}

// QuadCurveTo draws a quad curve.
func (r *Renderer) QuadCurveTo(cx, cy, x, y int) {
	if len(r.subpaths) == 0 {
		r.moveTo(float64(cx), float64(cy))
	}
	r.dc.QuadraticTo(float64(cx), float64(cy), float64(x), float64(y))
	r.record(float64(cx), float64(cy))
	r.record(float64(x), float64(y))
}

// ArcTo draws an arc around (cx, cy) with radii rx, ry starting at
// startAngle and sweeping delta radians. The start point is joined to the
// current path, or starts one.
func (r *Renderer) ArcTo(cx, cy int, rx, ry, startAngle, delta float64) {
	x0, y0 := float64(cx), float64(cy)
	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 32)))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		a := startAngle + delta*float64(i)/float64(n)
		x, y := x0+math.Cos(a)*rx, y0+math.Sin(a)*ry
		if i == 0 && len(r.subpaths) == 0 {
			r.moveTo(x, y)
			continue
		}
		r.lineTo(x, y)
	}
}

// Close finalizes a shape as drawn by LineTo.
func (r *Renderer) Close() {
	r.dc.ClosePath()
}

// Stroke strokes the path.
func (r *Renderer) Stroke() {
	r.stroke()
	r.endPath()
}

// Fill fills the path, but does not stroke.
func (r *Renderer) Fill() {
	r.fill(false)
	r.endPath()
}

// FillStroke fills and strokes a path.
func (r *Renderer) FillStroke() {
	r.capture()
	r.fill(true)
	r.stroke()
	r.endPath()
}

// Circle draws a circle at the given coords with a given radius.
func (r *Renderer) Circle(radius float64, x, y int) {
	cx, cy := float64(x), float64(y)
	r.dc.DrawCircle(cx, cy, radius)
	poly := make([]gg.Point, 0, circleSegments)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		poly = append(poly, gg.Pt(cx+math.Cos(a)*radius, cy+math.Sin(a)*radius))
	}
	r.subpaths = append(r.subpaths, poly)
}

// SetFont sets a font for a text field.
func (r *Renderer) SetFont(f *truetype.Font) { r.fonts = fontsFor(f) }

// SetFontColor sets a font's color.
func (r *Renderer) SetFontColor(c drawing.Color) { r.fontColor = c }

// SetFontSize sets the font size for a text field.
func (r *Renderer) SetFontSize(size float64) { r.fontSize = size }

// Text draws a text blob with its baseline at (x, y).
func (r *Renderer) Text(body string, x, y int) {
	face := r.face()
	if face == nil || r.fontColor.IsTransparent() {
		return
	}
	r.dc.Push()
	r.dc.SetFont(face)
	r.dc.SetColor(r.fontColor)
	if r.textRotation != 0 {
		r.dc.Translate(float64(x), float64(y))
		r.dc.Rotate(r.textRotation)
		r.dc.DrawString(body, 0, 0)
	} else {
		r.dc.DrawString(body, float64(x), float64(y))
	}
	r.dc.Pop()
}

// MeasureText measures text.
func (r *Renderer) MeasureText(body string) chart.Box {
	face := r.face()
	if face == nil {
		return chart.Box{}
	}
	w := face.Advance(body)
	h := face.Metrics().Ascent
	box := chart.Box{Right: int(math.Ceil(w)), Bottom: int(math.Ceil(h))}
	if r.textRotation == 0 {
		return box
	}
	return box.Corners().Rotate(chart.RadiansToDegrees(r.textRotation)).Box()
}

// SetTextRotation sets a rotation for drawing elements.
func (r *Renderer) SetTextRotation(radians float64) { r.textRotation = radians }

// ClearTextRotation clears rotation.
func (r *Renderer) ClearTextRotation() { r.textRotation = 0 }

// Save encodes the context as PNG into w. A nil writer keeps the drawing
// in the context only.
func (r *Renderer) Save(w io.Writer) error {
	if w == nil {
		return nil
	}
	return r.dc.EncodePNG(w)
}

// Reset drops recorded shapes before a new paint.
func (r *Renderer) Reset() {
	r.ResetStyle()
	r.subpaths = nil
	r.shapes = r.shapes[:0]
	r.dc.ClearPath()
}

// Hit returns the class of the topmost recorded shape containing (x, y)
// and the index of that shape among shapes of the same class. An
// unclassed shape on top occludes everything below it.
func (r *Renderer) Hit(x, y float64) (class string, nth int, center gg.Point, ok bool) {
	for i := len(r.shapes) - 1; i >= 0; i-- {
		s := &r.shapes[i]
		if !s.contains(x, y) {
			continue
		}
		if s.class == "" {
			return "", 0, gg.Point{}, false
		}
		for j := 0; j < i; j++ {
			if r.shapes[j].class == s.class {
				nth++
			}
		}
		return s.class, nth, s.center(), true
	}
	return "", 0, gg.Point{}, false
}

func (r *Renderer) face() text.Face {
	return r.fonts.Face(r.fontSize * r.dpi / 72)
}

func (r *Renderer) moveTo(x, y float64) {
	r.dc.MoveTo(x, y)
	r.subpaths = append(r.subpaths, []gg.Point{gg.Pt(x, y)})
}

func (r *Renderer) lineTo(x, y float64) {
	if len(r.subpaths) == 0 {
		r.moveTo(x, y)
		return
	}
	r.dc.LineTo(x, y)
	r.record(x, y)
}

func (r *Renderer) record(x, y float64) {
	last := len(r.subpaths) - 1
	r.subpaths[last] = append(r.subpaths[last], gg.Pt(x, y))
}

// capture stores the current path as a hit-testable shape.
func (r *Renderer) capture() {
	if len(r.subpaths) == 0 {
		return
	}
	s := shape{
		class:    r.class,
		subpaths: r.subpaths,
		min:      gg.Pt(math.Inf(1), math.Inf(1)),
		max:      gg.Pt(math.Inf(-1), math.Inf(-1)),
	}
	for _, poly := range r.subpaths {
		for _, p := range poly {
			s.min = gg.Pt(math.Min(s.min.X, p.X), math.Min(s.min.Y, p.Y))
			s.max = gg.Pt(math.Max(s.max.X, p.X), math.Max(s.max.Y, p.Y))
		}
	}
	r.shapes = append(r.shapes, s)
}

func (r *Renderer) fill(preserve bool) {
	if r.fillColor.IsTransparent() {
		return
	}
	r.dc.SetColor(r.fillColor)
	if preserve {
		_ = r.dc.FillPreserve()
		return
	}
	_ = r.dc.Fill()
}

func (r *Renderer) stroke() {
	if r.strokeColor.IsTransparent() || r.strokeWidth <= 0 {
		return
	}
	r.dc.SetColor(r.strokeColor)
	r.dc.SetLineWidth(r.strokeWidth)
	if len(r.dashes) > 0 {
		r.dc.SetDash(r.dashes...)
	} else {
		r.dc.ClearDash()
	}
	_ = r.dc.Stroke()
}

// endPath drops whatever path is left after painting.
func (r *Renderer) endPath() {
	r.dc.ClearPath()
	r.subpaths = nil
}
