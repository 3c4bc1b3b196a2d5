package preview

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce
	// allocations.
	updateInterval = 30
)

// overlay draws model and runtime stats at the top-right of the window.
// Triangle/vertex counts are fixed per preview session; FPS and heap text
// are recomputed every updateInterval frames.
type overlay struct {
	trisText    string
	vertsText   string
	frameCount  uint32
	lastFpsText string
	lastMemText string
	memStats    runtime.MemStats
}

func newOverlay(triangles, vertices int) *overlay {
	return &overlay{
		trisText:  fmt.Sprintf("Tris: %d", triangles),
		vertsText: fmt.Sprintf("Verts: %d", vertices),
	}
}

// draw renders the overlay. Call after EndMode3D, inside the drawing block.
func (o *overlay) draw() {
	o.frameCount++
	if o.lastFpsText == "" || o.frameCount%updateInterval == 0 {
		o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		runtime.ReadMemStats(&o.memStats)
		mb := float64(o.memStats.Alloc) / (1024 * 1024)
		o.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(overlayPadding)
	for _, text := range []string{o.lastFpsText, o.trisText, o.vertsText, o.lastMemText} {
		w := rl.MeasureText(text, overlayFontSize)
		rl.DrawText(text, screenW-w-overlayPadding, y, overlayFontSize, rl.Green)
		y += overlayLineHeight
	}
}
