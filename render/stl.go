package render

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/hschendel/stl"
	"gonum.org/v1/gonum/spatial/r3"
)

// CreateSTL writes the wall mesh to path as a binary STL solid, splitting
// each quad face into two triangles. STL carries no texture coordinates, so
// the cabinet UV layout is dropped; use OBJ when the consumer needs it.
func CreateSTL(path string, m *Mesh) error {
	solid, err := Solid(m)
	if err != nil {
		return err
	}
	return solid.WriteFile(path)
}

// Solid converts the quad mesh to an STL solid. Quads split along the
// diagonal from corner 0 to corner 2, preserving the winding of the quad.
// Normals are recalculated from the triangle vertices since STL has no
// per-vertex normals.
func Solid(m *Mesh) (*stl.Solid, error) {
	solid := &stl.Solid{Name: "ledwall"}
	for i, f := range m.Faces {
		var q [4]stl.Vec3
		for j, idx := range f {
			v, err := vec32(m.Vertices[idx])
			if err != nil {
				return nil, fmt.Errorf("face %d: %w", i, err)
			}
			q[j] = v
		}
		solid.AppendTriangle(stl.Triangle{Vertices: [3]stl.Vec3{q[0], q[1], q[2]}})
		solid.AppendTriangle(stl.Triangle{Vertices: [3]stl.Vec3{q[0], q[2], q[3]}})
	}
	solid.RecalculateNormals()
	return solid, nil
}

// vec32 narrows a vertex to the float32 STL uses, rejecting coordinates that
// overflow. Near-zero tilt on a wide wall puts columns at enormous radii, so
// overflow is reachable from valid float64 input.
func vec32(v r3.Vec) (stl.Vec3, error) {
	s := stl.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
	for _, f := range s {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return s, fmt.Errorf("vertex %v does not fit in float32", v)
		}
	}
	return s, nil
}
