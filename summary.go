package ledwall

import (
	"fmt"
	"strconv"
	"strings"
)

// Summary holds display-only dimensional statistics of a wall. It exists for
// operator reports and never feeds back into mesh generation, so a change
// here can not break geometry output.
type Summary struct {
	ArcLength   float64 // metres
	ChordLength float64 // metres
	Height      float64 // metres
	PixelsWide  int
	PixelsHigh  int
	Cabinets    int
	Pixels      int
	AspectRatio float64 // physical width over height
}

// Summarize computes wall statistics from p. The cabinet height must be
// positive (Params.Validate enforces this) or the aspect ratio is undefined.
func Summarize(p Params) Summary {
	c := p.Curve()
	pxWide := p.CabinetsWide * p.TileWidth
	pxHigh := p.CabinetsHigh * p.TileHeight
	totalWidth := float64(p.CabinetsWide) * p.CabinetWidth
	totalHeight := float64(p.CabinetsHigh) * p.CabinetHeight
	return Summary{
		ArcLength:   c.ArcLength,
		ChordLength: c.ChordLength,
		Height:      totalHeight * MetresPerMillimetre,
		PixelsWide:  pxWide,
		PixelsHigh:  pxHigh,
		Cabinets:    p.CabinetsWide * p.CabinetsHigh,
		Pixels:      pxWide * pxHigh,
		AspectRatio: totalWidth / totalHeight,
	}
}

// String renders the block of figures shown to installers.
func (s Summary) String() string {
	var b strings.Builder
	b.WriteString("Wall Dimensions:\n")
	fmt.Fprintf(&b, "  Arc Length: %.2fm\n", s.ArcLength)
	fmt.Fprintf(&b, "  Chord Length: %.2fm\n", s.ChordLength)
	fmt.Fprintf(&b, "  Height: %.2fm\n", s.Height)
	fmt.Fprintf(&b, "Total Resolution: %dpx x %dpx\n", s.PixelsWide, s.PixelsHigh)
	fmt.Fprintf(&b, "Total Cabinets: %d\n", s.Cabinets)
	fmt.Fprintf(&b, "Total Pixels: %s\n", groupThousands(s.Pixels))
	fmt.Fprintf(&b, "Aspect Ratio: %.2f\n", s.AspectRatio)
	return b.String()
}

// groupThousands formats n with comma separators (1179648 -> "1,179,648").
func groupThousands(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
