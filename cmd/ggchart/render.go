// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/gogpu/gg"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/scene"
)

// Default canvas size when neither the document nor the flags set one.
const (
	defaultWidth  = 800
	defaultHeight = 600
)

// frameInterval is the simulated frame period used to play animations.
const frameInterval = 16 * time.Millisecond

// maxFrames bounds how long render waits for animations to settle.
const maxFrames = 10000

type renderOptions struct {
	input    string
	output   string
	defaults string
	dpr      float64
	width    int
	height   int
}

func newRenderCmd() *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene document to PNG",
		Long: `render loads a JSON or YAML scene document, builds its objects,
plays chart animations to the end and writes the canvas as PNG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(o)
		},
	}
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "Scene document (.json, .yaml)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "scene.png", "Output PNG file")
	cmd.Flags().StringVar(&o.defaults, "defaults", "", "TOML file with process-wide chart defaults")
	cmd.Flags().Float64Var(&o.dpr, "dpr", 1, "Device pixel ratio")
	cmd.Flags().IntVar(&o.width, "width", 0, "Canvas width (default: document width or 800)")
	cmd.Flags().IntVar(&o.height, "height", 0, "Canvas height (default: document height or 600)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func render(o renderOptions) error {
	if o.dpr <= 0 {
		return fmt.Errorf("invalid --dpr %v", o.dpr)
	}
	tree, err := readTree(o.input)
	if err != nil {
		return err
	}
	doc, err := scene.DecodeDocument(tree)
	if err != nil {
		return err
	}

	reg := ggchart.NewRegistry()
	if o.defaults != "" {
		if err := loadDefaults(o.defaults, reg); err != nil {
			return err
		}
	}
	kinds := scene.NewRegistry()
	if err := ggchart.Install(kinds, ggchart.WithRegistry(reg), ggchart.WithPixelRatio(o.dpr)); err != nil {
		return err
	}

	w, h := pick(o.width, doc.Width, defaultWidth), pick(o.height, doc.Height, defaultHeight)
	clk := clockwork.NewFakeClock()
	opts := []scene.CanvasOption{scene.WithClock(clk), scene.WithPixelRatio(o.dpr)}
	if doc.Background != "" {
		opts = append(opts, scene.WithBackground(gg.Hex(doc.Background)))
	} else {
		opts = append(opts, scene.WithBackground(color.White))
	}
	cv := scene.NewCanvas(w, h, opts...)
	defer cv.Close()

	if err := cv.Load(doc, kinds); err != nil {
		return err
	}
	if err := settle(cv, clk); err != nil {
		return err
	}
	cv.RenderAll()
	ggchart.Logger().Debug("ggchart: rendered", "objects", len(cv.Objects()), "width", w, "height", h, "dpr", o.dpr)
	return writePNG(o.output, cv)
}

func pick(vals ...int) int {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}

// settle fast-forwards the canvas loop until no timer or frame is pending.
func settle(cv *scene.Canvas, clk *clockwork.FakeClock) error {
	loop := cv.Loop()
	for i := 0; i < maxFrames; i++ {
		loop.Step()
		if loop.Idle() {
			return nil
		}
		clk.Advance(frameInterval)
	}
	return errors.New("scene did not settle")
}

func writePNG(path string, cv *scene.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return cv.Context().EncodePNG(f)
}
