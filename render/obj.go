package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// WriteOBJ writes the mesh to w in Wavefront OBJ text format. Section order
// is fixed for consumer compatibility: comment header, all vertex positions,
// all texture coordinates, all normals, all faces. Floats are fixed-point
// with 6 decimals. Face lines carry 1-based index triples; each corner's
// position, UV and normal reuse one index because the mesh stores them
// congruently.
func WriteOBJ(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	// Write errors stick to the bufio.Writer and surface on Flush.
	bw.WriteString("# OBJ file\n")
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v.X, v.Y, v.Z)
	}
	for _, vt := range m.UVs {
		fmt.Fprintf(bw, "vt %.6f %.6f\n", vt.X, vt.Y)
	}
	for _, vn := range m.Normals {
		fmt.Fprintf(bw, "vn %.6f %.6f %.6f\n", vn.X, vn.Y, vn.Z)
	}
	for _, f := range m.Faces {
		a, b, c, d := f[0]+1, f[1]+1, f[2]+1, f[3]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d %d/%d/%d\n",
			a, a, a, b, b, b, c, c, c, d, d, d)
	}
	return bw.Flush()
}

// CreateOBJ writes the mesh to path. The file is written to a temporary
// sibling and renamed into place on success, so a failed write never leaves
// a truncated OBJ where consumers look for one.
func CreateOBJ(path string, m *Mesh) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".obj-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	err = WriteOBJ(tmp, m)
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, path)
}

// readOBJ parses the OBJ subset emitted by WriteOBJ back into a Mesh with
// 0-based face indices. Grid dimensions are not recoverable from the file
// and are left zero. Used to verify serialization round-trips.
func readOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vertex: %w", line, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "vt":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: want 2 texture coordinates, got %d", line, len(fields)-1)
			}
			u, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			m.UVs = append(m.UVs, r2.Vec{X: u, Y: v})
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: normal: %w", line, err)
			}
			m.Normals = append(m.Normals, v)
		case "f":
			if len(fields) != 5 {
				return nil, fmt.Errorf("line %d: want quad face, got %d corners", line, len(fields)-1)
			}
			var face [4]int
			for i, corner := range fields[1:] {
				idx, err := parseCorner(corner)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				face[i] = idx - 1
			}
			m.Faces = append(m.Faces, face)
		default:
			return nil, fmt.Errorf("line %d: unsupported element %q", line, fields[0])
		}
	}
	return m, sc.Err()
}

func parseVec3(fields []string) (r3.Vec, error) {
	if len(fields) != 3 {
		return r3.Vec{}, fmt.Errorf("want 3 components, got %d", len(fields))
	}
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return r3.Vec{}, err
		}
		c[i] = v
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

// parseCorner reads a v/vt/vn triple and requires the three indices to
// match, which is an invariant of the meshes this package writes.
func parseCorner(s string) (int, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, fmt.Errorf("corner %q: want v/vt/vn triple", s)
	}
	idx, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	if parts[1] != parts[0] || parts[2] != parts[0] {
		return 0, fmt.Errorf("corner %q: position/UV/normal indices differ", s)
	}
	return idx, nil
}
