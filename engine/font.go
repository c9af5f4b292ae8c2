// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggchart/internal/cache"
)

// maxFaces bounds the faces kept per font. Face sizes include the device
// pixel ratio.
const maxFaces = 32

// Fonts caches faces of one font source by size.
type Fonts struct {
	once  sync.Once
	data  []byte
	src   *text.FontSource
	err   error
	faces *cache.Cache[float64, text.Face]
}

// NewFonts returns a cache over the TrueType data ttf.
func NewFonts(ttf []byte) *Fonts {
	return &Fonts{data: ttf, faces: cache.New[float64, text.Face](maxFaces)}
}

var defaultFonts = NewFonts(goregular.TTF)

// DefaultFonts returns the cache of the Go Regular font.
func DefaultFonts() *Fonts {
	return defaultFonts
}

// Face returns a face of the given size in pixels, or nil if the font
// could not be parsed.
func (f *Fonts) Face(size float64) text.Face {
	f.once.Do(func() {
		f.src, f.err = text.NewFontSource(f.data)
		if f.err != nil {
			Logger().Warn("engine: font parse failed", "err", f.err)
		}
	})
	if f.err != nil {
		return nil
	}
	return f.faces.GetOrCreate(size, func() text.Face {
		return f.src.Face(size)
	})
}
