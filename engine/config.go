// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/gogpu/ggchart/internal/merge"
)

// Values is a nested configuration tree.
type Values = map[string]any

// Config describes a chart. Data and Options are free-form trees so they
// can be merged and serialized without knowing the chart type; Base
// decodes them into Data and Options when painting.
//
// Plugins and Hooks hold functions and are not serialized.
type Config struct {
	Type    string   `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
	Data    Values   `json:"data,omitempty" yaml:"data,omitempty" mapstructure:"data"`
	Options Values   `json:"options,omitempty" yaml:"options,omitempty" mapstructure:"options"`
	Plugins []Plugin `json:"-" yaml:"-" mapstructure:"-"`
	Hooks   Hooks    `json:"-" yaml:"-" mapstructure:"-"`
}

// Merge returns c with partial deep-merged onto it. Type is replaced when
// partial names one. Data and Options merge key by key. Plugins replace
// when partial has any. Hooks set in partial replace those in c.
func (c Config) Merge(partial Config) Config {
	out := Config{
		Type:    c.Type,
		Data:    mergeValues(c.Data, partial.Data),
		Options: mergeValues(c.Options, partial.Options),
		Plugins: c.Plugins,
		Hooks:   c.Hooks.Override(partial.Hooks),
	}
	if partial.Type != "" {
		out.Type = partial.Type
	}
	if partial.Plugins != nil {
		out.Plugins = append([]Plugin(nil), partial.Plugins...)
	}
	return out
}

func mergeValues(dst, src Values) Values {
	if dst == nil && src == nil {
		return nil
	}
	return merge.Deep(dst, src)
}

// Clone returns a deep copy. Plugins and hooks are shared.
func (c Config) Clone() Config {
	return Config{
		Type:    c.Type,
		Data:    merge.Clone(c.Data),
		Options: merge.Clone(c.Options),
		Plugins: append([]Plugin(nil), c.Plugins...),
		Hooks:   c.Hooks,
	}
}

// Tree returns the serializable part of c as a plain tree.
func (c Config) Tree() Values {
	t := Values{}
	if c.Type != "" {
		t["type"] = c.Type
	}
	if c.Data != nil {
		t["data"] = merge.Clone(c.Data)
	}
	if c.Options != nil {
		t["options"] = merge.Clone(c.Options)
	}
	return t
}

// DecodeConfig converts a Config, *Config or tree into a Config.
func DecodeConfig(v any) (Config, error) {
	switch x := v.(type) {
	case Config:
		return x, nil
	case *Config:
		if x == nil {
			return Config{}, nil
		}
		return *x, nil
	case nil:
		return Config{}, nil
	}

	var c Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &c,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return c, err
	}
	if err := dec.Decode(v); err != nil {
		return c, fmt.Errorf("engine: decode config: %w", err)
	}
	return c, nil
}
