package main

import (
	"cad-engine/internal/prefs"
	"cad-engine/internal/preview"

	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var flags sceneFlags
	cmd := &cobra.Command{
		Use:   "preview [scene.yaml]",
		Short: "Evaluate a scene and show it in an interactive window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := prefs.Load()
			if err != nil {
				return err
			}
			m, err := evaluateScene(flags, args)
			if err != nil {
				return err
			}
			preview.Run(m, p)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
