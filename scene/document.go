// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"encoding/json"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/gogpu/ggchart/internal/logging"
)

// Document is the serialized form of a canvas.
type Document struct {
	Width      int              `json:"width,omitempty" yaml:"width,omitempty"`
	Height     int              `json:"height,omitempty" yaml:"height,omitempty"`
	Background string           `json:"background,omitempty" yaml:"background,omitempty"`
	Objects    []map[string]any `json:"objects" yaml:"objects"`
}

// DecodeDocument converts a generic tree, as produced by a YAML or JSON
// decoder, into a Document.
func DecodeDocument(tree map[string]any) (Document, error) {
	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &doc,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return doc, err
	}
	if err := dec.Decode(tree); err != nil {
		return doc, fmt.Errorf("scene: decode document: %w", err)
	}
	return doc, nil
}

// ToDocument snapshots every object.
func (c *Canvas) ToDocument() Document {
	doc := Document{
		Width:   c.Width(),
		Height:  c.Height(),
		Objects: make([]map[string]any, 0, len(c.objects)),
	}
	for _, d := range c.objects {
		doc.Objects = append(doc.Objects, d.ToObject())
	}
	return doc
}

// ToJSON returns the JSON encoding of ToDocument.
func (c *Canvas) ToJSON() ([]byte, error) {
	return json.Marshal(c.ToDocument())
}

// Load replaces the canvas content with the objects of doc, built by the
// factories of r. On error the objects built so far stay on the canvas.
func (c *Canvas) Load(doc Document, r *Registry) error {
	if r == nil {
		r = defaultRegistry
	}
	c.Clear()
	for i, props := range doc.Objects {
		d, err := r.New(props)
		if err != nil {
			logging.Logger().Warn("scene: load object failed", "index", i, "err", err)
			return fmt.Errorf("scene: object %d: %w", i, err)
		}
		c.Add(d)
	}
	return nil
}

// LoadJSON decodes data and calls Load.
func (c *Canvas) LoadJSON(data []byte, r *Registry) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("scene: decode json: %w", err)
	}
	return c.Load(doc, r)
}
