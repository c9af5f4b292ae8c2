// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package engine defines the chart engine contract and a shared instance
// implementation.
//
// An Engine builds an Instance bound to a Surface from a Config. The
// Instance draws into the surface, listens to its pointer events and
// reports layout and animation changes through Hooks. It never touches
// the host scene: the host composites the surface pixels itself.
//
// Base implements everything an Instance needs except the drawing of a
// particular chart type, which is delegated to a Painter. Backend maps
// chart types to painters and Mux routes types across backends:
//
//	eng := engine.NewMux(gochart.New(), gonumplot.New())
//	inst, err := eng.New(surf, engine.Config{Type: "bar", Data: data})
//
// The lifecycle mirrors a browser chart library:
//
//   - New decodes data and options and starts the initial animation.
//   - SetData / SetOptions replace the raw trees; Update re-decodes them
//     and animates to the new state.
//   - Resize re-reads the surface client size, fires OnResize if it
//     changed and repaints without animation.
//   - Destroy stops animation, unbinds events and clears the surface.
package engine
