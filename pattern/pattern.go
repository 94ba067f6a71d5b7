// Package pattern generates cabinet addressing test images. The image is a
// grid of cabinet-sized tiles an installer displays on the physical wall to
// verify that every cabinet shows its own coordinate.
package pattern

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/ledsurface/ledwall"
)

const labelPt = 20 // label point size, matches a readable size on 64px tiles

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	checker    = color.RGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff} // light gray
	outline    = color.RGBA{A: 0xff}
)

// Generate renders the addressing test image for p: one tile per cabinet at
// the cabinet's pixel resolution, a light checkerboard fill on (x+y) parity,
// a black tile outline, and the cabinet's "x,y" coordinate centred in each
// tile. Output size is (CabinetsWide·TileWidth)×(CabinetsHigh·TileHeight).
func Generate(p ledwall.Params) (*image.RGBA, error) {
	face, err := labelFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	img := image.NewRGBA(image.Rect(0, 0, p.CabinetsWide*p.TileWidth, p.CabinetsHigh*p.TileHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for x := 0; x < p.CabinetsWide; x++ {
		for y := 0; y < p.CabinetsHigh; y++ {
			tile := image.Rect(x*p.TileWidth, y*p.TileHeight, (x+1)*p.TileWidth, (y+1)*p.TileHeight)
			if (x+y)%2 == 0 {
				draw.Draw(img, tile, image.NewUniform(checker), image.Point{}, draw.Src)
			}
			strokeRect(img, tile, outline)
			label(img, face, tile, fmt.Sprintf("%d,%d", x, y), labelColor(x, y))
		}
	}
	return img, nil
}

// Create writes the test image for p to path as a PNG, via a temporary
// sibling renamed into place on success.
func Create(path string, p ledwall.Params) error {
	img, err := Generate(p)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".png-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	err = png.Encode(tmp, img)
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

func labelFace() (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: labelPt}), nil
}

// labelColor derives a stable colour from the cabinet coordinate, so the
// same cabinet is labelled identically across runs while neighbours differ.
func labelColor(x, y int) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte{byte(x >> 8), byte(x), byte(y >> 8), byte(y)})
	s := h.Sum32()
	return color.RGBA{R: uint8(s >> 16), G: uint8(s >> 8), B: uint8(s), A: 0xff}
}

// strokeRect draws a 1px border just inside r.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

func label(img *image.RGBA, face font.Face, tile image.Rectangle, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	metrics := face.Metrics()
	d.Dot = fixed.Point26_6{
		X: fixed.I(tile.Min.X) + (fixed.I(tile.Dx())-d.MeasureString(text))/2,
		Y: fixed.I(tile.Min.Y) + (fixed.I(tile.Dy())+metrics.Ascent-metrics.Descent)/2,
	}
	d.DrawString(text)
}
