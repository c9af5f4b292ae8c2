// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/gogpu/gg"
)

// Plugin hooks into every paint of an instance.
type Plugin struct {
	ID string

	// BeforeDraw runs after the surface is cleared, before the chart.
	BeforeDraw func(inst Instance, dc *gg.Context)

	// AfterDraw runs after the chart and tooltip are drawn.
	AfterDraw func(inst Instance, dc *gg.Context)

	// Destroy runs when the instance is destroyed.
	Destroy func(inst Instance)
}

// BackgroundPlugin fills the chart area with a solid color.
func BackgroundPlugin(hex string) Plugin {
	c := ParseColor(hex, Transparent)
	return Plugin{
		ID: "background",
		BeforeDraw: func(inst Instance, dc *gg.Context) {
			s := inst.Surface()
			dc.SetColor(c)
			dc.DrawRectangle(0, 0, s.ClientWidth(), s.ClientHeight())
			_ = dc.Fill()
		},
	}
}
