// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import "time"

// Size is a layout size in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Animation describes one animation frame.
type Animation struct {
	// Progress runs from 0 to 1, eased.
	Progress float64
	// Elapsed is the time since the first frame.
	Elapsed time.Duration
	// Done is set on the final frame.
	Done bool
}

// ElementEvent is passed to interaction hooks.
type ElementEvent struct {
	Kind string
	// X and Y are in chart pixels.
	X, Y float64
	// Element is the element under the pointer, or nil.
	Element *Element
}

// Hooks are callbacks fired by an instance. Any of them may be nil.
type Hooks struct {
	OnResize   func(inst Instance, size Size)
	OnProgress func(inst Instance, a Animation)
	OnComplete func(inst Instance, a Animation)
	OnClick    func(inst Instance, ev ElementEvent)
	OnHover    func(inst Instance, ev ElementEvent)
}

// Override returns h with every hook set in o replacing h's.
func (h Hooks) Override(o Hooks) Hooks {
	if o.OnResize != nil {
		h.OnResize = o.OnResize
	}
	if o.OnProgress != nil {
		h.OnProgress = o.OnProgress
	}
	if o.OnComplete != nil {
		h.OnComplete = o.OnComplete
	}
	if o.OnClick != nil {
		h.OnClick = o.OnClick
	}
	if o.OnHover != nil {
		h.OnHover = o.OnHover
	}
	return h
}

// Then returns hooks calling h and then next for every event.
func (h Hooks) Then(next Hooks) Hooks {
	return Hooks{
		OnResize:   chain2(h.OnResize, next.OnResize),
		OnProgress: chain2(h.OnProgress, next.OnProgress),
		OnComplete: chain2(h.OnComplete, next.OnComplete),
		OnClick:    chain2(h.OnClick, next.OnClick),
		OnHover:    chain2(h.OnHover, next.OnHover),
	}
}

func chain2[T any](a, b func(Instance, T)) func(Instance, T) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(inst Instance, v T) {
		a(inst, v)
		b(inst, v)
	}
}
