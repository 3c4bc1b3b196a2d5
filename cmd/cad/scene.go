package main

import (
	"fmt"
	"log/slog"

	"cad-engine/internal/env"
	"cad-engine/internal/eval"
	"cad-engine/internal/mesh"
	"cad-engine/internal/procgen"
	"cad-engine/internal/scenefile"
	"cad-engine/internal/shape"

	"github.com/spf13/cobra"
)

// sceneFlags are the inputs shared by render, preview, and info: either a
// scene file argument or the built-in demo terrain.
type sceneFlags struct {
	demo     bool
	seed     int64
	tiles    int
	segments int
}

// register adds the shared flags to cmd.
func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.demo, "demo", false, "use the built-in demo terrain instead of a scene file")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "demo terrain noise seed (0 = default)")
	cmd.Flags().IntVar(&f.tiles, "tiles", 0, "demo terrain size in tiles per side (0 = default)")
	cmd.Flags().IntVar(&f.segments, "segments", 0, "default tessellation resolution override")
}

// buildDescription returns the shape tree for the given invocation: the
// scene file named by args[0], or the demo terrain when --demo is set.
func buildDescription(f sceneFlags, args []string) (shape.Shape, error) {
	if f.demo {
		opts := procgen.DefaultTerrainOptions()
		if f.seed != 0 {
			opts.Seed = f.seed
		}
		if f.tiles > 0 {
			opts.Width = f.tiles
			opts.Depth = f.tiles
		}
		slog.Debug("generating demo terrain", "tiles", opts.Width, "seed", opts.Seed)
		return procgen.Terrain(opts), nil
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("expected a scene file argument (or --demo)")
	}
	slog.Debug("loading scene file", "path", args[0])
	return scenefile.Load(args[0])
}

// evaluateScene builds the starting context (.env file, then process
// environment, then flags) and evaluates the description.
func evaluateScene(f sceneFlags, args []string) (*mesh.Mesh, error) {
	if err := env.LoadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	description, err := buildDescription(f, args)
	if err != nil {
		return nil, err
	}
	ctx := env.FromEnviron()
	if f.segments > 0 {
		ctx = env.With(ctx, env.SegmentsKey, f.segments)
	}
	m, err := eval.Evaluate(description, ctx)
	if err != nil {
		return nil, fmt.Errorf("evaluate scene: %w", err)
	}
	slog.Debug("scene evaluated", "triangles", m.TriangleCount(), "vertices", m.VertexCount())
	return m, nil
}
