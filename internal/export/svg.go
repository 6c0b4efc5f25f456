package export

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/san-kum/bauhaus/internal/flip"
	"github.com/san-kum/bauhaus/internal/sched"
	"github.com/san-kum/bauhaus/internal/tile"
	"github.com/san-kum/bauhaus/internal/viz"
)

// GridToSVG draws the face each cell shows at rest. Faces mid-flip are
// drawn as their resting target. Stripe fills become userSpace patterns
// shared between tiles with identical stripes and band phase.
func GridToSVG(g *flip.Grid, th viz.Theme) string {
	if g == nil {
		return ""
	}
	vp := g.Viewport()
	ox, oy := g.Offset()
	size := float64(g.TileSize())

	patterns := map[string]stripes{}
	var body strings.Builder
	g.Each(func(c *flip.Cell) {
		row, col := c.Pos()
		x := float64(ox) + float64(col)*size
		y := float64(oy) + float64(row)*size
		face := c.Shown()
		s := face.Style

		body.WriteString(fmt.Sprintf(`<g id="cell-%d-%d" data-face="%s">
`, row, col, face.ID))
		if !s.Fill.IsTransparent() {
			fill := s.Fill.Color
			if s.Fill.Kind == tile.FillStripes {
				phase := stripePhase(s.Fill.Angle, x, y, size)
				id := fmt.Sprintf("%s-%03d", patternID(s.Fill), int(math.Round(phase*10)))
				patterns[id] = stripes{fill: s.Fill, phase: phase}
				fill = "url(#" + id + ")"
			}
			body.WriteString(fmt.Sprintf(`<path fill="%s" d="%s"/>
`, fill, TilePath(s, x, y, size)))
		}
		if s.Dot {
			body.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, x+size/2, y+size/2, size*tile.DotRadius, th.Dot))
		}
		body.WriteString("</g>\n")
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, vp.W, vp.H, vp.W, vp.H, th.Palette.Background))

	if len(patterns) > 0 {
		ids := make([]string, 0, len(patterns))
		for id := range patterns {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		sb.WriteString("<defs>\n")
		for _, id := range ids {
			sb.WriteString(stripePattern(id, patterns[id].fill, patterns[id].phase))
		}
		sb.WriteString("</defs>\n")
	}

	sb.WriteString(body.String())
	sb.WriteString("</svg>")
	return sb.String()
}

func patternID(f tile.Fill) string {
	return fmt.Sprintf("stripes-%s-%s-%d",
		strings.TrimPrefix(f.Color, "#"), strings.TrimPrefix(f.Alt, "#"), (f.Angle+360)%360)
}

type stripes struct {
	fill  tile.Fill
	phase float64
}

// stripePhase returns how far along the gradient axis, modulo one stripe
// period, the tile at (x, y) starts. Bands are anchored where the axis
// enters the tile, as tile.Style.ColorAt draws them. The result is rounded
// to a tenth of a unit so neighbouring tiles can share a pattern.
func stripePhase(angle int, x, y, size float64) float64 {
	theta := float64(angle) * math.Pi / 180
	dx, dy := math.Sin(theta), -math.Cos(theta)
	length := size * (math.Abs(dx) + math.Abs(dy))
	cx, cy := x+size/2, y+size/2
	period := float64(2 * tile.StripeWidth)
	p := math.Mod(cx*dx+cy*dy-length/2, period)
	if p < 0 {
		p += period
	}
	p = math.Round(p*10) / 10
	if p >= period {
		p = 0
	}
	return p
}

// stripePattern builds vertical bands, rotates them so the band normal
// matches the gradient axis (vertical bands correspond to 90°) and shifts
// them by phase along that axis.
func stripePattern(id string, f tile.Fill, phase float64) string {
	w := tile.StripeWidth
	return fmt.Sprintf(`<pattern id="%s" patternUnits="userSpaceOnUse" width="%d" height="%d" patternTransform="rotate(%d) translate(%.1f,0)">
<rect width="%d" height="%d" fill="%s"/>
<rect x="%d" width="%d" height="%d" fill="%s"/>
</pattern>
`, id, 2*w, 2*w, f.Angle-90, phase, w, 2*w, f.Color, w, w, 2*w, f.Alt)
}

// TilePath returns the outline of a style placed at (x, y) with edge size,
// using elliptical arcs for rounded corners.
func TilePath(s tile.Style, x, y, size float64) string {
	r := s.Radii()
	tl, tr, bl, br := r[0]*size, r[1]*size, r[2]*size, r[3]*size

	var p strings.Builder
	p.WriteString(fmt.Sprintf("M%.1f,%.1f", x+tl, y))
	p.WriteString(fmt.Sprintf(" H%.1f", x+size-tr))
	if tr > 0 {
		p.WriteString(fmt.Sprintf(" A%.1f,%.1f 0 0 1 %.1f,%.1f", tr, tr, x+size, y+tr))
	}
	p.WriteString(fmt.Sprintf(" V%.1f", y+size-br))
	if br > 0 {
		p.WriteString(fmt.Sprintf(" A%.1f,%.1f 0 0 1 %.1f,%.1f", br, br, x+size-br, y+size))
	}
	p.WriteString(fmt.Sprintf(" H%.1f", x+bl))
	if bl > 0 {
		p.WriteString(fmt.Sprintf(" A%.1f,%.1f 0 0 1 %.1f,%.1f", bl, bl, x, y+size-bl))
	}
	p.WriteString(fmt.Sprintf(" V%.1f", y+tl))
	if tl > 0 {
		p.WriteString(fmt.Sprintf(" A%.1f,%.1f 0 0 1 %.1f,%.1f", tl, tl, x+tl, y))
	}
	p.WriteString(" Z")
	return p.String()
}

// Frames advances the clock and renders one SVG per step, for exporting a
// short time-lapse of the grid.
func Frames(g *flip.Grid, clock *sched.Scheduler, th viz.Theme, n int, step time.Duration) []string {
	frames := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			clock.Advance(step)
		}
		frames = append(frames, GridToSVG(g, th))
	}
	return frames
}
