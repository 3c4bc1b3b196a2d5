package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var flags sceneFlags
	cmd := &cobra.Command{
		Use:   "info [scene.yaml]",
		Short: "Evaluate a scene and print mesh statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := evaluateScene(flags, args)
			if err != nil {
				return err
			}
			bounds := m.Bounds()
			extents := bounds.Extents()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "triangles: %d\n", m.TriangleCount())
			fmt.Fprintf(out, "vertices:  %d\n", m.VertexCount())
			fmt.Fprintf(out, "children:  %d\n", len(m.Children))
			fmt.Fprintf(out, "bounds:    min (%.3f, %.3f, %.3f) max (%.3f, %.3f, %.3f)\n",
				bounds.Min[0], bounds.Min[1], bounds.Min[2],
				bounds.Max[0], bounds.Max[1], bounds.Max[2])
			fmt.Fprintf(out, "size:      %.3f x %.3f x %.3f mm\n", extents[0], extents[1], extents[2])
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
