// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownKind is returned when a serialized object names a kind with no
// registered factory.
var ErrUnknownKind = errors.New("scene: unknown kind")

// Factory builds a drawable from its serialized form.
type Factory func(props map[string]any) (Drawable, error)

// defaultRegistry is the registry used by package-level functions.
var defaultRegistry = NewRegistry()

// Registry maps object kinds to factories.
//
// Example registration:
//
//	func init() {
//	    scene.Register("star", newStarFromProps)
//	}
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry with the built-in kinds registered.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("rect", newRectFromProps)
	return r
}

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds kind to the default registry.
func Register(kind string, f Factory) {
	defaultRegistry.Register(kind, f)
}

// Register adds or replaces the factory for kind.
func (r *Registry) Register(kind string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.factories == nil {
		r.factories = make(map[string]Factory)
	}
	r.factories[kind] = f
}

// Unregister removes kind.
func (r *Registry) Unregister(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.factories, kind)
}

// Lookup returns the factory for kind.
func (r *Registry) Lookup(kind string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[kind]
	return f, ok
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// New builds a drawable from props using props["type"] as the kind.
func (r *Registry) New(props map[string]any) (Drawable, error) {
	kind, _ := props["type"].(string)
	f, ok := r.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return f(props)
}
