package preview

import (
	"cad-engine/internal/mesh"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	axisLineAlpha  = 220
)

// viewport holds the 3D camera and grid state. The camera starts framed on
// the model's bounding box and is driven by raylib's free-camera controls
// (mouse zoom/pan plus keyboard).
type viewport struct {
	camera      rl.Camera3D
	gridVisible bool
	cursorDone  bool
}

// newViewport returns a viewport with a perspective camera looking at the
// center of bounds from a distance proportional to the model size. The
// model is drawn Z-up mapped to raylib's Y-up (see model.draw), so the
// camera target swaps those axes too.
func newViewport(bounds mesh.Box, gridVisible bool) *viewport {
	center := bounds.Center()
	extents := bounds.Extents()
	size := math32.Max(float32(extents[0]), math32.Max(float32(extents[1]), float32(extents[2])))
	if size <= 0 {
		size = 10
	}
	dist := size * 1.5
	target := rl.NewVector3(float32(center[0]), float32(center[2]), float32(center[1]))

	v := &viewport{gridVisible: gridVisible}
	v.camera.Position = rl.NewVector3(target.X+dist, target.Y+dist, target.Z+dist)
	v.camera.Target = target
	v.camera.Up = rl.NewVector3(0, 1, 0)
	v.camera.Fovy = 45
	v.camera.Projection = rl.CameraPerspective
	return v
}

// update runs once per frame. Uses raylib UpdateCamera with CameraFree so
// the user can move the camera with mouse and keyboard. Cursor is disabled
// so the mouse is captured for camera control.
func (v *viewport) update() {
	if !v.cursorDone {
		rl.DisableCursor()
		v.cursorDone = true
	}
	rl.UpdateCamera(&v.camera, rl.CameraFree)
}

// drawEditorGrid draws a grid on the XZ plane with major/minor lines and
// axis lines through the origin (X=red, Y=green, Z=blue).
func drawEditorGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY := rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	var start, end rl.Vector3
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), 0, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), 0, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), 0, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), 0, float32(z)
		rl.DrawLine3D(start, end, c)
	}

	start.X, start.Y, start.Z = float32(-gridExtent), 0, 0
	end.X, end.Y, end.Z = float32(gridExtent), 0, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, float32(-gridExtent), 0
	end.X, end.Y, end.Z = 0, float32(gridExtent), 0
	rl.DrawLine3D(start, end, axisY)
	start.X, start.Y, start.Z = 0, 0, float32(-gridExtent)
	end.X, end.Y, end.Z = 0, 0, float32(gridExtent)
	rl.DrawLine3D(start, end, axisZ)
}
