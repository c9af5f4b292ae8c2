// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"sort"
)

// PainterFactory returns a fresh painter for one instance.
type PainterFactory func() Painter

// Backend is an Engine building Base instances from a fixed set of
// painters.
type Backend struct {
	name     string
	painters map[string]PainterFactory
}

// NewBackend creates a backend. painters maps chart types to factories.
func NewBackend(name string, painters map[string]PainterFactory) *Backend {
	m := make(map[string]PainterFactory, len(painters))
	for k, v := range painters {
		m[k] = v
	}
	return &Backend{name: name, painters: m}
}

// Name returns the backend name.
func (b *Backend) Name() string { return b.name }

// Types returns the supported chart types in sorted order.
func (b *Backend) Types() []string {
	types := make([]string, 0, len(b.painters))
	for k := range b.painters {
		types = append(types, k)
	}
	sort.Strings(types)
	return types
}

// New builds a Base instance for cfg.Type.
func (b *Backend) New(s Surface, cfg Config) (Instance, error) {
	f, ok := b.painters[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q (backend %s)", ErrUnknownType, cfg.Type, b.name)
	}
	inst, err := NewBase(cfg.Type, s, cfg, f())
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// Mux routes chart types to the first engine that supports them.
type Mux struct {
	engines []Engine
	byType  map[string]Engine
}

// NewMux creates a mux over engines. Earlier engines win on conflicts.
func NewMux(engines ...Engine) *Mux {
	m := &Mux{byType: make(map[string]Engine)}
	for _, e := range engines {
		m.Add(e)
	}
	return m
}

// Add appends an engine. Types already routed keep their engine.
func (m *Mux) Add(e Engine) {
	m.engines = append(m.engines, e)
	for _, t := range e.Types() {
		if _, ok := m.byType[t]; !ok {
			m.byType[t] = e
		}
	}
}

// Types returns every routed chart type in sorted order.
func (m *Mux) Types() []string {
	types := make([]string, 0, len(m.byType))
	for t := range m.byType {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// New builds an instance with the engine routed for cfg.Type.
func (m *Mux) New(s Surface, cfg Config) (Instance, error) {
	e, ok := m.byType[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, cfg.Type)
	}
	return e.New(s, cfg)
}
