// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a small generic LRU cache.
//
//	faces := cache.New[float64, text.Face](32)
//	face := faces.GetOrCreate(12, func() text.Face { return src.Face(12) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
