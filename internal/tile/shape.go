package tile

import "math"

// DotRadius is the radius of the centre dot as a fraction of the tile size.
const DotRadius = 0.12

// Radii returns the effective corner radii as fractions of the tile edge,
// indexed like AllCorners. Rounded corners ask for 100%; when two rounded
// corners share a side every radius is scaled down uniformly so the pair
// fits, the same overlap rule browsers apply to border-radius.
func (s Style) Radii() [4]float64 {
	var r [4]float64
	for i, c := range AllCorners {
		if s.Corners.Has(c) {
			r[i] = 1
		}
	}
	tl, tr, bl, br := r[0], r[1], r[2], r[3]
	f := 1.0
	for _, sum := range []float64{tl + tr, bl + br, tl + bl, tr + br} {
		if sum > 0 && 1/sum < f {
			f = 1 / sum
		}
	}
	for i := range r {
		r[i] *= f
	}
	return r
}

// Contains reports whether the normalized point (u, v) lies inside the
// tile outline. Points outside [0,1]² are never inside.
func (s Style) Contains(u, v float64) bool {
	if u < 0 || v < 0 || u > 1 || v > 1 {
		return false
	}
	r := s.Radii()
	for i, c := range AllCorners {
		rad := r[i]
		if rad == 0 {
			continue
		}
		var cx, cy float64
		switch c {
		case TopLeft:
			if u >= rad || v >= rad {
				continue
			}
			cx, cy = rad, rad
		case TopRight:
			if u <= 1-rad || v >= rad {
				continue
			}
			cx, cy = 1-rad, rad
		case BottomLeft:
			if u >= rad || v <= 1-rad {
				continue
			}
			cx, cy = rad, 1-rad
		case BottomRight:
			if u <= 1-rad || v <= 1-rad {
				continue
			}
			cx, cy = 1-rad, 1-rad
		}
		dx, dy := u-cx, v-cy
		if dx*dx+dy*dy > rad*rad {
			return false
		}
	}
	return true
}

// ColorAt resolves the fill color at (u, v). The result may be Transparent.
// Stripes follow repeating-linear-gradient geometry: the gradient axis
// points up at 0° and turns clockwise, and the first band starts at the
// corner where the axis enters the tile.
func (s Style) ColorAt(u, v float64) string {
	if s.Fill.Kind != FillStripes {
		return s.Fill.Color
	}
	size := float64(s.Size)
	if size <= 0 {
		size = DefaultSize
	}
	theta := float64(s.Fill.Angle) * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)
	length := size*math.Abs(sin) + size*math.Abs(cos)
	x, y := (u-0.5)*size, (v-0.5)*size
	p := x*sin - y*cos + length/2
	band := int(math.Floor(p / StripeWidth))
	if band%2 == 0 {
		return s.Fill.Color
	}
	return s.Fill.Alt
}

// DotAt reports whether (u, v) falls on the decorative dot. Always false for
// styles without one.
func (s Style) DotAt(u, v float64) bool {
	if !s.Dot {
		return false
	}
	dx, dy := u-0.5, v-0.5
	return dx*dx+dy*dy <= DotRadius*DotRadius
}
