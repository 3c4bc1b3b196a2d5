// Package procgen builds procedural demo scenes as shape descriptions.
// The terrain generator lays out a grid of cubes whose heights come from
// fractal value noise; it exists for the demo command and doubles as a
// large-tree fixture for the evaluator.
package procgen

import (
	"math"

	"cad-engine/internal/geom"
	"cad-engine/internal/shape"

	"github.com/ungerik/go3d/float64/vec3"
)

// TerrainOptions controls procedural terrain generation. Width/Depth are in
// tiles; TileSize is the world size of one tile on X/Y. HeightScale is the
// maximum tile height. Seed controls randomness; the same seed always
// yields the same description tree. Octaves, Frequency, Lacunarity, and
// Gain control the fractal noise shape.
type TerrainOptions struct {
	Width       int
	Depth       int
	TileSize    float64
	HeightScale float64

	Seed       int64
	Octaves    int
	Frequency  float64
	Lacunarity float64
	Gain       float64
}

// DefaultTerrainOptions returns a sane default configuration.
func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		Width:       16,
		Depth:       16,
		TileSize:    1.0,
		HeightScale: 3.0,
		Seed:        1,
		Octaves:     4,
		Frequency:   0.08,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

// minTileHeight keeps every tile visible even where the noise bottoms out.
const minTileHeight = 0.15

// Terrain builds a height map as a Group of translated cubes sitting on the
// XY plane, one cube per tile, centered around the origin. Each tile's Z
// extent is derived from fractal noise. Descriptions, not meshes: the
// result still goes through the evaluator like any authored tree.
func Terrain(opts TerrainOptions) shape.Shape {
	if opts.Width <= 0 {
		opts.Width = 16
	}
	if opts.Depth <= 0 {
		opts.Depth = 16
	}
	if opts.TileSize <= 0 {
		opts.TileSize = 1
	}
	if opts.HeightScale <= 0 {
		opts.HeightScale = 1
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}
	if opts.Frequency <= 0 {
		opts.Frequency = 0.05
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = 2.0
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}
	seed := opts.Seed
	if seed == 0 {
		seed = 1
	}

	// Center the map around the origin. First cube center is at
	// (-extentX + halfTile, -extentY + halfTile).
	halfTile := opts.TileSize * 0.5
	startX := -float64(opts.Width)*opts.TileSize*0.5 + halfTile
	startY := -float64(opts.Depth)*opts.TileSize*0.5 + halfTile

	tiles := make([]shape.Shape, 0, opts.Width*opts.Depth)
	for y := 0; y < opts.Depth; y++ {
		for x := 0; x < opts.Width; x++ {
			h := fractalValueNoise2D(
				float64(x)*opts.Frequency, float64(y)*opts.Frequency,
				seed, opts.Octaves, opts.Lacunarity, opts.Gain,
			)
			height := minTileHeight + h*(opts.HeightScale-minTileHeight)
			if math.IsNaN(height) || math.IsInf(height, 0) || height <= 0 {
				height = minTileHeight
			}
			tile := shape.Cube{Size: geom.NewSize(opts.TileSize, opts.TileSize, height)}
			offset := vec3.T{
				startX + float64(x)*opts.TileSize,
				startY + float64(y)*opts.TileSize,
				height * 0.5, // bottom at Z=0
			}
			tiles = append(tiles, shape.Translated(tile, offset))
		}
	}
	return shape.Composite{Name: "terrain", Body: shape.Union(tiles...)}
}

// fractalValueNoise2D is simple fractal value noise: layered smooth value
// noise with configurable octaves, lacunarity, and gain. Output is in [0,1].
func fractalValueNoise2D(x, y float64, seed int64, octaves int, lacunarity, gain float64) float64 {
	var sum, maxAmp float64
	amplitude := 1.0
	freq := 1.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*freq, y*freq, int32(seed)+int32(i)) * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise2D is smooth value noise in [0,1] using a hash-based lattice
// and cubic easing.
func valueNoise2D(x, y float64, seed int32) float64 {
	x0 := int32(math.Floor(x))
	y0 := int32(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	v00 := hash2D(x0, y0, seed)
	v10 := hash2D(x0+1, y0, seed)
	v01 := hash2D(x0, y0+1, seed)
	v11 := hash2D(x0+1, y0+1, seed)

	sx := smoothStep(tx)
	sy := smoothStep(ty)

	ix0 := lerp(v00, v10, sx)
	ix1 := lerp(v01, v11, sx)
	return lerp(ix0, ix1, sy)
}

// hash2D maps integer lattice coordinates to a deterministic pseudo-random
// float in [0,1].
func hash2D(x, y, seed int32) float64 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float64(n&0x7fffffff) * invMaxInt
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// smoothStep is Perlin-style cubic easing: 3t^2 - 2t^3.
func smoothStep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
