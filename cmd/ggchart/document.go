// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/engine"
)

// format is a document encoding chosen by file extension.
type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("unsupported document extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
}

// readTree decodes a JSON or YAML document into a generic tree.
func readTree(path string) (map[string]any, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(data, &tree)
	default:
		err = json.Unmarshal(data, &tree)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return tree, nil
}

// writeTree encodes tree as JSON or YAML depending on the extension of
// path.
func writeTree(path string, tree any) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch f {
	case formatYAML:
		data, err = yaml.Marshal(tree)
	default:
		data, err = json.MarshalIndent(tree, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// defaultsFile is the TOML file passed with --defaults.
//
//	background = "#ffffff"
//
//	[chart.options.title]
//	display = true
type defaultsFile struct {
	Background string         `toml:"background"`
	Chart      map[string]any `toml:"chart"`
}

// loadDefaults reads a defaults file into r.
func loadDefaults(path string, r *ggchart.Registry) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var d defaultsFile
	if err := toml.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	cfg, err := engine.DecodeConfig(d.Chart)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	r.SetDefaults(cfg)
	if d.Background != "" {
		r.AddPlugins(engine.BackgroundPlugin(d.Background))
	}
	return nil
}
