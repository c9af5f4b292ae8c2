// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Transparent is the zero color.
var Transparent = color.NRGBA{}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r, g, b)" and
// "rgba(r, g, b, a)". It returns fallback for anything else.
func ParseColor(s string, fallback color.Color) color.Color {
	c, err := parseColor(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return c
}

func parseColor(s string) (color.NRGBA, error) {
	switch {
	case strings.HasPrefix(s, "#") && len(s) == 9:
		base, err := colorful.Hex(s[:7])
		if err != nil {
			return color.NRGBA{}, err
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, err
		}
		r, g, b := base.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: uint8(a)}, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, err
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	case strings.HasPrefix(s, "rgba("):
		var r, g, b uint8
		var a float64
		if _, err := fmt.Sscanf(s, "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err != nil {
			return color.NRGBA{}, err
		}
		return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(a) * 255))}, nil
	case strings.HasPrefix(s, "rgb("):
		var r, g, b uint8
		if _, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return color.NRGBA{}, err
		}
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}
	return color.NRGBA{}, fmt.Errorf("engine: unsupported color %q", s)
}

// Palette returns the i-th default series color. Hues are spread by the
// golden angle in HCL space so neighbouring series stay distinct.
func Palette(i int) color.NRGBA {
	const golden = 137.508
	h := math.Mod(210+float64(i)*golden, 360)
	r, g, b := colorful.Hcl(h, 0.55, 0.65).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(clamp01(a) * 255))
	return n
}

// Hex formats c as "#rrggbb".
func Hex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
