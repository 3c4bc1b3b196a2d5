package preview

import (
	"cad-engine/internal/mesh"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// modelColor is the albedo tint for the previewed mesh.
var modelColor = rl.NewColor(170, 176, 190, 255)

// model is the evaluated mesh uploaded to the GPU, plus the material used
// to draw it. The Go-side buffers are retained so they outlive the upload.
type model struct {
	rm       rl.Mesh
	mtl      rl.Material
	vertices []float32
	normals  []float32
	uploaded bool
}

// uploadModel flattens the mesh's triangles into float32 vertex and normal
// buffers (three vertices per face, per-face normals) and uploads them.
// An empty mesh produces a model that draws nothing.
func uploadModel(m *mesh.Mesh) *model {
	mdl := &model{}
	tris := m.Triangles
	if len(tris) == 0 {
		return mdl
	}
	vcount := len(tris) * 3
	mdl.vertices = make([]float32, vcount*3)
	mdl.normals = make([]float32, vcount*3)
	for i, t := range tris {
		nx, ny, nz := faceNormal32(t)
		for c := 0; c < 3; c++ {
			base := (i*3 + c) * 3
			mdl.vertices[base+0] = float32(t[c][0])
			mdl.vertices[base+1] = float32(t[c][1])
			mdl.vertices[base+2] = float32(t[c][2])
			mdl.normals[base+0] = nx
			mdl.normals[base+1] = ny
			mdl.normals[base+2] = nz
		}
	}

	mdl.rm.VertexCount = int32(vcount)
	mdl.rm.TriangleCount = int32(len(tris))
	mdl.rm.Vertices = &mdl.vertices[0]
	mdl.rm.Normals = &mdl.normals[0]
	rl.UploadMesh(&mdl.rm, false)

	mdl.mtl = rl.LoadMaterialDefault()
	if albedo := mdl.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = modelColor
	}
	shader := loadLitShader()
	if rl.IsShaderValid(shader) {
		mdl.mtl.Shader = shader
	}
	mdl.uploaded = true
	return mdl
}

// draw renders the model between BeginMode3D and EndMode3D. Meshes are
// authored Z-up; raylib is Y-up, so the model is rotated -90° about X.
func (m *model) draw(viewPos rl.Vector3) {
	if !m.uploaded {
		return
	}
	setLitShaderUniforms(m.mtl.Shader, viewPos)
	transform := rl.MatrixRotateX(-math32.Pi / 2)
	rl.DrawMesh(m.rm, m.mtl, transform)
}

// unload releases GPU resources. Safe on an empty model.
func (m *model) unload() {
	if m.uploaded {
		rl.UnloadMesh(&m.rm)
	}
}

// faceNormal32 returns the unit normal of t in float32, or a Y-up fallback
// for degenerate triangles.
func faceNormal32(t mesh.Triangle) (nx, ny, nz float32) {
	e1x := float32(t[1][0] - t[0][0])
	e1y := float32(t[1][1] - t[0][1])
	e1z := float32(t[1][2] - t[0][2])
	e2x := float32(t[2][0] - t[0][0])
	e2y := float32(t[2][1] - t[0][1])
	e2z := float32(t[2][2] - t[0][2])
	nx = e1y*e2z - e1z*e2y
	ny = e1z*e2x - e1x*e2z
	nz = e1x*e2y - e1y*e2x
	length := math32.Sqrt(nx*nx + ny*ny + nz*nz)
	if length == 0 {
		return 0, 0, 1
	}
	return nx / length, ny / length, nz / length
}
