package ledwall_test

import (
	"strings"
	"testing"

	"github.com/ledsurface/ledwall"
)

func TestSummarize(t *testing.T) {
	s := ledwall.Summarize(validParams())
	if s.ArcLength != 18.0 {
		t.Errorf("arc length %v, want 18.0", s.ArcLength)
	}
	if s.Height != 4.0 {
		t.Errorf("height %v, want 4.0", s.Height)
	}
	if s.PixelsWide != 2304 || s.PixelsHigh != 512 {
		t.Errorf("resolution %dx%d, want 2304x512", s.PixelsWide, s.PixelsHigh)
	}
	if s.Cabinets != 288 {
		t.Errorf("cabinets %d, want 288", s.Cabinets)
	}
	if s.Pixels != 1179648 {
		t.Errorf("pixels %d, want 1179648", s.Pixels)
	}
	if s.AspectRatio != 4.5 {
		t.Errorf("aspect ratio %v, want 4.5", s.AspectRatio)
	}
	if s.ChordLength > s.ArcLength {
		t.Errorf("chord %v exceeds arc %v", s.ChordLength, s.ArcLength)
	}
}

// The summary recomputes the chord through the same solver the mesh uses,
// so the two can not drift apart.
func TestSummaryMatchesSolver(t *testing.T) {
	p := validParams()
	s := ledwall.Summarize(p)
	c := p.Curve()
	if s.ChordLength != c.ChordLength {
		t.Errorf("summary chord %v != solver chord %v", s.ChordLength, c.ChordLength)
	}
}

func TestSummaryString(t *testing.T) {
	got := ledwall.Summarize(validParams()).String()
	for _, want := range []string{
		"Wall Dimensions:\n",
		"  Arc Length: 18.00m\n",
		"  Height: 4.00m\n",
		"Total Resolution: 2304px x 512px\n",
		"Total Cabinets: 288\n",
		"Total Pixels: 1,179,648\n",
		"Aspect Ratio: 4.50\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
