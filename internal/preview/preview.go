// Package preview renders an evaluated mesh in an interactive raylib
// window: free camera, editor grid, directional-light shading, and a stats
// overlay. Everything here is display-only; the mesh is read, never
// modified.
package preview

import (
	"cad-engine/internal/mesh"
	"cad-engine/internal/prefs"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the preview window and blocks until it is closed. Each frame
// updates the camera, then draws the grid, the model, and the overlay.
func Run(m *mesh.Mesh, p prefs.Prefs) {
	width := int32(p.WindowWidth)
	height := int32(p.WindowHeight)
	if width <= 0 || height <= 0 {
		width, height = 1280, 800
	}
	rl.InitWindow(width, height, "cad preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	view := newViewport(m.Bounds(), p.GridVisible)
	model := uploadModel(m)
	defer model.unload()
	overlay := newOverlay(m.TriangleCount(), m.VertexCount())

	for !rl.WindowShouldClose() {
		view.update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.BeginMode3D(view.camera)
		if view.gridVisible {
			drawEditorGrid()
		}
		model.draw(view.camera.Position)
		rl.EndMode3D()
		overlay.draw()
		rl.EndDrawing()
	}
}
