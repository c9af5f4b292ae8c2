// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggchart embeds charts in a gg scene as ordinary objects.
//
// # Overview
//
// A Chart is a scene object like a rectangle: it can be moved, scaled,
// rotated, flipped and serialized. Behind it lives a chart engine instance
// that draws into an off-screen surface. The scene draws that surface as
// an image under the object transform, and pointer events on the object
// are mapped back into surface coordinates so tooltips and clicks keep
// working.
//
// # Quick Start
//
//	cv := scene.NewCanvas(800, 600)
//
//	c, err := ggchart.New(scene.Geometry{Left: 40, Top: 40, Width: 320, Height: 200},
//	    engine.Config{
//	        Type: "bar",
//	        Data: engine.Values{
//	            "labels":   []any{"a", "b", "c"},
//	            "datasets": []any{map[string]any{"label": "sales", "data": []any{3, 1, 2}}},
//	        },
//	    })
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cv.Add(c)
//	_ = cv.Loop().RunUntilIdle(ctx, 16*time.Millisecond)
//
// # Configuration
//
// Configuration writes go through SetConfiguration or Set("chart", v) and
// are deep-merged onto the stored configuration. Changing the chart type
// replaces the instance; any other write updates it in place.
//
// The engine sees three layers, lowest first: non-responsive layout flags,
// the Registry defaults, and the chart's own configuration. Registry hooks
// run before the chart's hooks.
//
// # Serialization
//
// Install registers the "chart" kind on a scene.Registry so documents
// written by scene.Canvas.ToJSON load back into charts.
package ggchart
