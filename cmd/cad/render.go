package main

import (
	"fmt"
	"log/slog"
	"os"

	"cad-engine/internal/prefs"
	"cad-engine/internal/stl"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var flags sceneFlags
	var out string
	var format string
	cmd := &cobra.Command{
		Use:   "render [scene.yaml]",
		Short: "Evaluate a scene and write an STL file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := prefs.Load()
			if err != nil {
				return err
			}
			if format == "" {
				format = p.STLFormat
			}
			if format != "binary" && format != "ascii" {
				return fmt.Errorf("unknown STL format %q (want binary or ascii)", format)
			}

			m, err := evaluateScene(flags, args)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create output file: %w", err)
			}
			defer f.Close()
			if format == "ascii" {
				err = stl.WriteASCII(f, "cad", m)
			} else {
				err = stl.WriteBinary(f, "cad", m)
			}
			if err != nil {
				return err
			}
			slog.Info("wrote STL",
				"path", out,
				"format", format,
				"triangles", m.TriangleCount(),
			)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "model.stl", "output STL path")
	cmd.Flags().StringVar(&format, "format", "", "STL format: binary or ascii (default from prefs)")
	return cmd
}
