package render_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ledsurface/ledwall/render"
)

func TestSavePreviewPNG(t *testing.T) {
	m := buildWall(8, 2, 5)
	path := filepath.Join(t.TempDir(), "wall.png")
	if err := render.SavePreviewPNG(path, m, render.DefaultView()); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	img, err := png.Decode(fp)
	if err != nil {
		t.Fatal(err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 1280 || bounds.Dy() != 720 {
		t.Errorf("preview size %dx%d, want 1280x720", bounds.Dx(), bounds.Dy())
	}
}

func TestSavePreviewPNGEmptyMesh(t *testing.T) {
	err := render.SavePreviewPNG(filepath.Join(t.TempDir(), "empty.png"), &render.Mesh{}, render.DefaultView())
	if err == nil {
		t.Fatal("expected error for mesh with no faces")
	}
}
