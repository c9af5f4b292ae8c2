// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package scene is a small retained-mode scene graph on top of gg.
//
// A Canvas holds Drawables. Each Drawable delegates to an *Object that
// carries geometry (position, size, scale, rotation, flips), an event
// stream, a dirty flag and a back reference to its canvas. Rendering
// applies the object transform and calls Drawable.Render with the origin
// at the object's center.
//
// All deferred work goes through the canvas Loop and runs from Loop.Step,
// so drawables never see concurrent callbacks.
//
// Objects serialize to plain maps (Drawable.ToObject) and are rebuilt from
// them through a Registry of factories keyed by kind.
package scene
