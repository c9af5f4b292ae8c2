// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// Option configures a Virtual surface.
type Option func(*options)

type options struct {
	ratio     float64
	rect      RectProvider
	style     StyleProvider
	scheduler FrameScheduler
}

func defaultOptions() options {
	return options{ratio: 1}
}

// WithPixelRatio sets the device pixel ratio. Default is 1.
func WithPixelRatio(ratio float64) Option {
	return func(o *options) {
		o.ratio = ratio
	}
}

// WithRectProvider sets the bounding rectangle source.
func WithRectProvider(p RectProvider) Option {
	return func(o *options) {
		o.rect = p
	}
}

// WithStyleProvider sets the computed style source.
func WithStyleProvider(p StyleProvider) Option {
	return func(o *options) {
		o.style = p
	}
}

// WithScheduler sets the frame scheduler used by RequestFrame.
func WithScheduler(s FrameScheduler) Option {
	return func(o *options) {
		o.scheduler = s
	}
}
