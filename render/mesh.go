// Package render builds the polygon mesh of a cabinet wall and serializes
// it to mesh file formats. OBJ is the authoritative output; STL and the PNG
// preview are convenience exports derived from the same mesh.
package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ledsurface/ledwall"
)

// Mesh is the generated wall surface: a (wide+1)×(high+1) vertex grid in
// column-major order (all rows of column 0, then column 1, ...) with one
// normal and one UV per vertex, tessellated into one quad face per cabinet.
// Position, normal and UV share indices by construction. A Mesh is never
// mutated after Build returns it.
type Mesh struct {
	// Wide and High are cabinet counts, one less than the vertex grid
	// dimensions.
	Wide, High int

	Vertices []r3.Vec
	Normals  []r3.Vec
	UVs      []r2.Vec
	// Faces holds 0-based vertex indices per quad, wound counter-clockwise
	// when viewed from the interior of the curve.
	Faces [][4]int
}

// columnBasis gives the position (x,z) and outward normal (x,z) shared by
// every vertex in column x. The normal's y component is always zero.
type columnBasis func(x int) (px, pz, nx, nz float64)

func flatBasis(cabinetWidth float64) columnBasis {
	return func(x int) (px, pz, nx, nz float64) {
		return float64(x) * cabinetWidth, 0, 0, -1
	}
}

func curvedBasis(c ledwall.Curve, wide int) columnBasis {
	return func(x int) (px, pz, nx, nz float64) {
		angle := c.StartAngle + float64(x)/float64(wide)*c.CentralAngle
		sin, cos := math.Sincos(angle)
		return c.Radius * sin, c.Radius * (1 - cos), sin, -cos
	}
}

// Build generates the wall mesh for p following the solved curve c. The
// flat/curved decision is made once, by selecting the column basis; c.Flat
// also covers the single-column degenerate case where the radius is infinite.
// Build is pure and reentrant: concurrent calls with separate parameter sets
// need no coordination.
func Build(p ledwall.Params, c ledwall.Curve) *Mesh {
	wide, high := p.CabinetsWide, p.CabinetsHigh
	basis := curvedBasis(c, wide)
	if c.Flat() {
		basis = flatBasis(p.CabinetWidthMetres())
	}

	nv := (wide + 1) * (high + 1)
	m := &Mesh{
		Wide:     wide,
		High:     high,
		Vertices: make([]r3.Vec, 0, nv),
		Normals:  make([]r3.Vec, 0, nv),
		UVs:      make([]r2.Vec, 0, nv),
		Faces:    make([][4]int, 0, wide*high),
	}

	cabinetHeight := p.CabinetHeightMetres()
	for x := 0; x <= wide; x++ {
		px, pz, nx, nz := basis(x)
		for y := 0; y <= high; y++ {
			m.Vertices = append(m.Vertices, r3.Vec{X: px, Y: float64(y) * cabinetHeight, Z: pz})
			m.Normals = append(m.Normals, r3.Vec{X: nx, Z: nz})
			m.UVs = append(m.UVs, r2.Vec{X: float64(x) / float64(wide), Y: float64(y) / float64(high)})
		}
	}

	for x := 1; x <= wide; x++ {
		for y := 0; y < high; y++ {
			m.Faces = append(m.Faces, [4]int{
				m.Index(x-1, y),
				m.Index(x, y),
				m.Index(x, y+1),
				m.Index(x-1, y+1),
			})
		}
	}
	return m
}

// Index returns the flat array index of vertex grid cell (x, y).
func (m *Mesh) Index(x, y int) int { return x*(m.High+1) + y }

// Grid returns the vertex positions reshaped as [column][row], the layout
// preview consumers expect. Rows alias the mesh's vertex storage and must be
// treated as read-only.
func (m *Mesh) Grid() [][]r3.Vec {
	g := make([][]r3.Vec, m.Wide+1)
	for x := range g {
		g[x] = m.Vertices[x*(m.High+1) : (x+1)*(m.High+1)]
	}
	return g
}
