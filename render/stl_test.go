package render_test

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/ledsurface/ledwall/render"
)

func TestSolidTriangleCount(t *testing.T) {
	m := buildWall(4, 2, 5)
	solid, err := render.Solid(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(solid.Triangles) != 2*len(m.Faces) {
		t.Fatalf("triangle count %d, want %d", len(solid.Triangles), 2*len(m.Faces))
	}
	for i, tri := range solid.Triangles {
		n := tri.Normal
		if n[0] == 0 && n[1] == 0 && n[2] == 0 {
			t.Errorf("triangle %d has zero normal after recalculation", i)
		}
	}
}

func TestCreateSTL(t *testing.T) {
	m := buildWall(3, 2, 10)
	path := filepath.Join(t.TempDir(), "wall.stl")
	if err := render.CreateSTL(path, m); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	// Binary STL: 80-byte header, uint32 count, 50 bytes per triangle.
	want := int64(84 + 50*2*len(m.Faces))
	if info.Size() != want {
		t.Errorf("STL size %d, want %d", info.Size(), want)
	}
}

func TestSolidRejectsFloat32Overflow(t *testing.T) {
	m := buildWall(1, 1, 0)
	m.Vertices[0] = r3.Vec{X: 1e39} // beyond float32 range
	if _, err := render.Solid(m); err == nil {
		t.Fatal("expected overflow error for out-of-range vertex")
	}
}
