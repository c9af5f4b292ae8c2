// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command ggchart renders scene documents holding charts to PNG.
//
// Usage:
//
//	ggchart render -i scene.yaml -o scene.png --dpr 2
//	ggchart convert -i scene.json -o scene.yaml
//	ggchart demo -o demo.png
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "ggchart",
		Short:         "Render charts embedded in gg scenes",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				ggchart.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(newRenderCmd(), newConvertCmd(), newDemoCmd())
	return root
}
