// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart/scene"
)

func newConvertCmd() *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a scene document between JSON and YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return convert(input, output)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "Input document (.json, .yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output document (.json, .yaml)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

// convert re-encodes a document. It is validated as a scene document on
// the way through.
func convert(input, output string) error {
	tree, err := readTree(input)
	if err != nil {
		return err
	}
	doc, err := scene.DecodeDocument(tree)
	if err != nil {
		return err
	}
	return writeTree(output, doc)
}
