// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"sync"

	"github.com/gogpu/ggchart/engine"
)

// defaultRegistry holds the process-wide plugins and defaults.
var defaultRegistry = NewRegistry()

// Registry holds plugins and default configuration applied to every chart
// created with it. Charts read the registry each time they build or update
// their instance.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	plugins  []engine.Plugin
	defaults engine.Config
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// DefaultRegistry returns the process-wide registry used by charts created
// without WithRegistry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// AddPlugins appends plugins applied to every future instance.
func (r *Registry) AddPlugins(plugins ...engine.Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plugins = append(r.plugins, plugins...)
}

// SetDefaults deep-merges partial onto the default configuration. Hooks in
// partial run after the hooks already registered instead of replacing
// them.
func (r *Registry) SetDefaults(partial engine.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hooks := r.defaults.Hooks.Then(partial.Hooks)
	partial.Hooks = engine.Hooks{}
	r.defaults = r.defaults.Merge(partial)
	r.defaults.Hooks = hooks
}

// Defaults returns a copy of the default configuration.
func (r *Registry) Defaults() engine.Config {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.defaults.Clone()
}

// Plugins returns the registered plugins.
func (r *Registry) Plugins() []engine.Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]engine.Plugin(nil), r.plugins...)
}

func (r *Registry) snapshot() (engine.Config, []engine.Plugin) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.defaults.Clone(), append([]engine.Plugin(nil), r.plugins...)
}

// AddPlugins appends plugins to the default registry.
func AddPlugins(plugins ...engine.Plugin) {
	defaultRegistry.AddPlugins(plugins...)
}

// SetDefaults merges partial into the default registry's configuration.
func SetDefaults(partial engine.Config) {
	defaultRegistry.SetDefaults(partial)
}
