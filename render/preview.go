package render

import (
	"errors"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// View places the preview camera.
type View struct {
	// Lookat is the point the camera faces.
	Lookat r3.Vec
	// Up is the camera's up direction.
	Up r3.Vec
	// Eyepos is the camera position.
	Eyepos r3.Vec
	Near   float64
	Far    float64
}

// DefaultView looks at the wall from the front, slightly above and to the
// side, which keeps curvature visible on shallow arcs.
func DefaultView() View {
	return View{
		Up:     r3.Vec{Y: 1},
		Eyepos: r3.Vec{X: 1.5, Y: 1.2, Z: -3},
		Near:   1,
		Far:    10,
	}
}

// SavePreviewPNG renders a shaded still of the mesh to a PNG file. The
// render exists for shape verification only; the OBJ output remains the
// authoritative geometry. The mesh is fit to a bi-unit cube before
// rendering, so the view is independent of wall scale.
func SavePreviewPNG(path string, m *Mesh, view View) error {
	if len(m.Faces) == 0 {
		return errors.New("mesh has no faces")
	}
	const (
		width, height = 1280, 720
		scale         = 2 // supersample, downsampled below for antialiasing
		fovy          = 30
	)
	triangles := make([]*fauxgl.Triangle, 0, 2*len(m.Faces))
	for _, f := range m.Faces {
		a := fglVec(m.Vertices[f[0]])
		b := fglVec(m.Vertices[f[1]])
		c := fglVec(m.Vertices[f[2]])
		d := fglVec(m.Vertices[f[3]])
		triangles = append(triangles,
			fauxgl.NewTriangleForPoints(a, b, c),
			fauxgl.NewTriangleForPoints(a, c, d))
	}
	mesh := fauxgl.NewTriangleMesh(triangles)
	mesh.BiUnitCube()

	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	eye := fglVec(view.Eyepos)
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, fglVec(view.Lookat), fglVec(view.Up)).
		Perspective(fovy, aspect, view.Near, view.Far)
	light := fauxgl.V(-0.75, 1, 0.25).Normalize()
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor("#468966")
	context.Shader = shader
	context.DrawMesh(mesh)

	img := resize.Resize(width, height, context.Image(), resize.Bilinear)
	return fauxgl.SavePNG(path, img)
}

func fglVec(v r3.Vec) fauxgl.Vector {
	return fauxgl.Vector{X: v.X, Y: v.Y, Z: v.Z}
}
