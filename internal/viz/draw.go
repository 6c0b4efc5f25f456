package viz

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/bauhaus/internal/flip"
	"github.com/san-kum/bauhaus/internal/tile"
)

// maxShade is how far a face darkens as it turns edge-on.
const maxShade = 0.35

// perspective is the viewer distance in tile edges.
const perspective = 4.0

// DrawGrid rasterizes the grid as it looks at virtual time now. Each pixel
// samples its centre point.
func (c *Canvas) DrawGrid(g *flip.Grid, now time.Duration, th Theme) {
	bg := th.Palette.Background
	c.Clear(bg)
	if g == nil {
		return
	}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			px := (float64(x) + 0.5) * UnitsPerPixel
			py := (float64(y) + 0.5) * UnitsPerPixel
			cell, u, v, ok := g.At(px, py)
			if !ok {
				continue
			}
			face, angle := cell.Visible(now)
			if col, hit := sampleFace(face.Style, cell.Axis(), angle, u, v, th); hit {
				c.Pix[y][x] = col
			}
		}
	}
}

// sampleFace returns the color of a face turned angle degrees about axis,
// at tile point (u, v). hit is false where the page shows through.
func sampleFace(s tile.Style, axis flip.Axis, angle, u, v float64, th Theme) (string, bool) {
	theta := angle * math.Pi / 180
	scale := math.Cos(theta)
	if scale < 1e-3 {
		return "", false
	}
	if axis == flip.AxisY {
		var ok bool
		if u, ok = unproject(u, scale, math.Sin(theta)); !ok {
			return "", false
		}
	} else {
		var ok bool
		if v, ok = unproject(v, scale, math.Sin(theta)); !ok {
			return "", false
		}
	}
	if !s.Contains(u, v) {
		return "", false
	}
	var col string
	if s.DotAt(u, v) {
		col = th.Dot
	} else {
		col = s.ColorAt(u, v)
	}
	if col == tile.Transparent || col == "" {
		return "", false
	}
	if scale < 1 {
		col = shade(col, maxShade*(1-scale))
	}
	return col, true
}

// unproject maps a screen coordinate across the rotation axis back onto the
// turned face. The face edge at positive offsets recedes from the viewer.
func unproject(w, cos, sin float64) (float64, bool) {
	sx := w - 0.5
	den := cos*perspective - sx*sin
	if den <= 0 {
		return 0, false
	}
	return 0.5 + sx*perspective/den, true
}

// shade darkens a hex color by blending toward black in Lab space.
// Unparseable colors are returned unchanged.
func shade(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return c.BlendLab(colorful.Color{}, amount).Clamped().Hex()
}
