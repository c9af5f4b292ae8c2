// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	tooltipFontSize = 12
	tooltipPadding  = 6
	tooltipOffset   = 8
)

// TooltipText formats the label shown for e, grouping digits for the
// given BCP 47 locale. An empty locale means English.
func TooltipText(e Element, locale string) string {
	tag := language.English
	if locale != "" {
		if t, err := language.Parse(locale); err == nil {
			tag = t
		}
	}
	p := message.NewPrinter(tag)
	value := p.Sprintf("%v", e.Value)
	if e.Value == math.Trunc(e.Value) && math.Abs(e.Value) < 1e15 {
		value = p.Sprintf("%d", int64(e.Value))
	}
	if e.Label == "" {
		return value
	}
	return e.Label + ": " + value
}

// drawTooltip draws a dark box with the element text next to its anchor,
// kept inside width × height.
func drawTooltip(dc *gg.Context, fonts *Fonts, e Element, locale string, width, height float64) {
	face := fonts.Face(tooltipFontSize)
	if face == nil {
		return
	}
	dc.SetFont(face)
	s := TooltipText(e, locale)
	tw, th := dc.MeasureString(s)
	bw, bh := tw+2*tooltipPadding, th+2*tooltipPadding

	x := e.X + tooltipOffset
	if x+bw > width {
		x = e.X - tooltipOffset - bw
	}
	y := e.Y - bh/2
	x = math.Max(0, x)
	y = math.Max(0, math.Min(y, height-bh))

	dc.SetColor(WithAlpha(gg.Hex("#000000"), 0.8))
	dc.DrawRoundedRectangle(x, y, bw, bh, 4)
	_ = dc.Fill()
	dc.SetColor(gg.Hex("#ffffff"))
	dc.DrawStringAnchored(s, x+bw/2, y+bh/2, 0.5, 0.5)
}
