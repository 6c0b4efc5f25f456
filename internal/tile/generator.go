package tile

import (
	"math/rand/v2"
	"time"
)

// Source is the random capability the generator consumes. IntN returns a
// uniform integer in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed picks one from the
// clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

const (
	fillRange    = 24
	stripeCutoff = 1
	dotRange     = 16
)

type Generator struct {
	src     Source
	palette Palette
	size    int
}

func NewGenerator(src Source, p Palette, size int) *Generator {
	if size <= 0 {
		size = DefaultSize
	}
	return &Generator{src: src, palette: p, size: size}
}

// SetPalette changes the palette used by subsequent Generate calls.
// Styles already produced keep their colors.
func (g *Generator) SetPalette(p Palette) { g.palette = p }

func (g *Generator) Palette() Palette { return g.palette }

func (g *Generator) Size() int { return g.size }

// Generate draws a fresh style: fill, then corners, then the dot.
func (g *Generator) Generate() Style {
	return Style{
		Size:    g.size,
		Fill:    g.fill(),
		Corners: g.corners(),
		Dot:     g.src.IntN(dotRange) == 0,
	}
}

func (g *Generator) color() string {
	if len(g.palette.Colors) == 0 {
		return Transparent
	}
	return g.palette.Colors[g.src.IntN(len(g.palette.Colors))]
}

func (g *Generator) fill() Fill {
	if g.src.IntN(fillRange) > stripeCutoff {
		return Fill{Kind: FillSolid, Color: g.color()}
	}
	angle := StripeAngles[g.src.IntN(len(StripeAngles))]
	return Fill{
		Kind:  FillStripes,
		Color: g.color(),
		Alt:   g.palette.Background,
		Angle: angle,
	}
}

// corners removes random corners from the full set until n remain.
func (g *Generator) corners() CornerSet {
	n := g.src.IntN(len(AllCorners) + 1)
	remaining := append([]Corner(nil), AllCorners[:]...)
	for len(remaining) > n {
		i := g.src.IntN(len(remaining))
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	var set CornerSet
	for _, c := range remaining {
		set = set.With(c)
	}
	return set
}
