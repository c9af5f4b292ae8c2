// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"image/color"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Data is the decoded form of Config.Data.
type Data struct {
	Labels   []string  `mapstructure:"labels"`
	Datasets []Dataset `mapstructure:"datasets"`
}

// Dataset is one data series.
//
// Data holds numbers for category charts, or {x, y} maps for point
// charts. Colors are a single color string or one string per element.
type Dataset struct {
	Label           string  `mapstructure:"label"`
	Data            []any   `mapstructure:"data"`
	BackgroundColor any     `mapstructure:"backgroundColor"`
	BorderColor     any     `mapstructure:"borderColor"`
	BorderWidth     float64 `mapstructure:"borderWidth"`
	Hidden          bool    `mapstructure:"hidden"`
}

// Point is an x/y data point.
type Point struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

// Values returns the dataset as numbers. Point entries contribute their y.
// Entries that are neither are read as 0.
func (d Dataset) Values() []float64 {
	out := make([]float64, len(d.Data))
	for i, v := range d.Data {
		if p, ok := asPoint(v); ok {
			out[i] = p.Y
			continue
		}
		_ = mapstructure.WeakDecode(v, &out[i])
	}
	return out
}

// Points returns the dataset as points. Plain numbers become (index, v).
func (d Dataset) Points() []Point {
	out := make([]Point, len(d.Data))
	for i, v := range d.Data {
		if p, ok := asPoint(v); ok {
			out[i] = p
			continue
		}
		out[i].X = float64(i)
		_ = mapstructure.WeakDecode(v, &out[i].Y)
	}
	return out
}

func asPoint(v any) (Point, bool) {
	switch v.(type) {
	case map[string]any, map[any]any:
	default:
		return Point{}, false
	}
	var p Point
	if err := mapstructure.WeakDecode(v, &p); err != nil {
		return Point{}, false
	}
	return p, true
}

// Fill returns the background color of element i of dataset index ds.
func (d Dataset) Fill(ds, i int) color.Color {
	return pickColor(d.BackgroundColor, i, Palette(ds))
}

// Stroke returns the border color of element i of dataset index ds.
func (d Dataset) Stroke(ds, i int) color.Color {
	return pickColor(d.BorderColor, i, Palette(ds))
}

func pickColor(v any, i int, fallback color.Color) color.Color {
	switch x := v.(type) {
	case string:
		return ParseColor(x, fallback)
	case []any:
		if len(x) == 0 {
			return fallback
		}
		s, _ := x[i%len(x)].(string)
		return ParseColor(s, fallback)
	case []string:
		if len(x) == 0 {
			return fallback
		}
		return ParseColor(x[i%len(x)], fallback)
	}
	return fallback
}

// Options is the decoded form of Config.Options.
type Options struct {
	Responsive          bool             `mapstructure:"responsive"`
	MaintainAspectRatio bool             `mapstructure:"maintainAspectRatio"`
	Title               TitleOptions     `mapstructure:"title"`
	Legend              LegendOptions    `mapstructure:"legend"`
	Tooltips            TooltipOptions   `mapstructure:"tooltips"`
	Animation           AnimationOptions `mapstructure:"animation"`
	Scales              ScalesOptions    `mapstructure:"scales"`
	Locale              string           `mapstructure:"locale"`
	Bins                int              `mapstructure:"bins"`
}

// TitleOptions configure the chart title.
type TitleOptions struct {
	Display bool   `mapstructure:"display"`
	Text    string `mapstructure:"text"`
}

// LegendOptions configure the dataset legend.
type LegendOptions struct {
	Display *bool `mapstructure:"display"`
}

// TooltipOptions configure the hover tooltip.
type TooltipOptions struct {
	Enabled *bool `mapstructure:"enabled"`
}

// AnimationOptions configure update animations.
type AnimationOptions struct {
	// Duration in milliseconds.
	Duration *float64 `mapstructure:"duration"`
}

// ScalesOptions hold the axis options.
type ScalesOptions struct {
	X AxisOptions `mapstructure:"x"`
	Y AxisOptions `mapstructure:"y"`
}

// AxisOptions configure one axis. Nil bounds are computed from the data.
type AxisOptions struct {
	Min   *float64 `mapstructure:"min"`
	Max   *float64 `mapstructure:"max"`
	Label string   `mapstructure:"label"`
}

// DefaultAnimationDuration is used when options do not set one.
const DefaultAnimationDuration = 1000 * time.Millisecond

// AnimationDuration returns the configured duration.
func (o Options) AnimationDuration() time.Duration {
	if o.Animation.Duration == nil {
		return DefaultAnimationDuration
	}
	return time.Duration(*o.Animation.Duration * float64(time.Millisecond))
}

// ShowLegend reports whether the legend is drawn. Default true.
func (o Options) ShowLegend() bool {
	return o.Legend.Display == nil || *o.Legend.Display
}

// ShowTooltips reports whether hovering shows a tooltip. Default true.
func (o Options) ShowTooltips() bool {
	return o.Tooltips.Enabled == nil || *o.Tooltips.Enabled
}

// DecodeData decodes a data tree.
func DecodeData(v Values) (Data, error) {
	var d Data
	if err := decode(v, &d); err != nil {
		return d, fmt.Errorf("engine: decode data: %w", err)
	}
	return d, nil
}

// DecodeOptions decodes an options tree. "animation: false" is read as a
// zero duration.
func DecodeOptions(v Values) (Options, error) {
	var o Options
	if a, ok := v["animation"].(bool); ok {
		v = shallowWith(v, "animation", Values{"duration": animationOff(a)})
	}
	if t, ok := v["title"].(string); ok {
		v = shallowWith(v, "title", Values{"display": t != "", "text": t})
	}
	if err := decode(v, &o); err != nil {
		return o, fmt.Errorf("engine: decode options: %w", err)
	}
	return o, nil
}

func animationOff(enabled bool) any {
	if enabled {
		return nil
	}
	return 0
}

func shallowWith(v Values, key string, val any) Values {
	out := make(Values, len(v))
	for k, x := range v {
		out[k] = x
	}
	out[key] = val
	return out
}

func decode(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       requireList,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

// requireList rejects scalars decoded into slices. Weak typing would
// otherwise wrap them in a one-element list.
func requireList(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Slice || data == nil {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Slice, reflect.Array:
		return data, nil
	}
	return nil, fmt.Errorf("expected a list for %s, got %T", to, data)
}
