// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides an off-screen drawing surface for chart engines.
//
// A Virtual surface looks like an ordinary, fully visible canvas to the
// engine that draws into it: it has a device-pixel buffer, a client size in
// logical pixels, a bounding rectangle, a computed style and a pointer event
// target. None of it is backed by a real window. The host supplies the
// bounding rectangle and style through providers and composites the pixel
// buffer wherever it wants, under any transform.
//
// # Sizes
//
// The buffer is a gg.Context created with gg.WithDeviceScale, so
//
//	Width()       == round(clientWidth) * pixelRatio   // device pixels
//	ClientWidth() == Width() / pixelRatio               // logical pixels
//
// Engines draw in logical coordinates on Context(); the device scale is
// applied by gg.
//
// # Events
//
// Pointer events are plain values dispatched synchronously to listeners
// registered with AddEventListener. Coordinates are client coordinates,
// the same space as BoundingRect.
//
// Virtual is NOT safe for concurrent use.
package surface
