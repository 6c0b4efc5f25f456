package tile

import "strings"

const (
	// DefaultSize is the edge length of a tile in logical units.
	DefaultSize = 100
	// StripeWidth is the width of one stripe band; the pattern repeats
	// every 2*StripeWidth units.
	StripeWidth = 10
	// Transparent marks a palette entry that lets the page background show.
	Transparent = "transparent"
)

// StripeAngles are the orientations a striped fill can take, in degrees.
var StripeAngles = [...]int{0, 45, 90, -45}

type Corner uint8

const (
	TopLeft Corner = 1 << iota
	TopRight
	BottomLeft
	BottomRight
)

// AllCorners lists the corners in the order removal starts from.
var AllCorners = [...]Corner{TopLeft, TopRight, BottomLeft, BottomRight}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return "unknown"
}

// CornerSet is the subset of corners rendered fully rounded.
type CornerSet uint8

func (s CornerSet) Has(c Corner) bool { return uint8(s)&uint8(c) != 0 }

func (s CornerSet) With(c Corner) CornerSet { return CornerSet(uint8(s) | uint8(c)) }

// Len returns the number of rounded corners.
func (s CornerSet) Len() int {
	n := 0
	for _, c := range AllCorners {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// List returns the rounded corners in a fixed order.
func (s CornerSet) List() []Corner {
	out := make([]Corner, 0, 4)
	for _, c := range AllCorners {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s CornerSet) String() string {
	parts := make([]string, 0, 4)
	for _, c := range s.List() {
		parts = append(parts, c.String())
	}
	return "{" + strings.Join(parts, ",") + "}"
}

type FillKind int

const (
	FillSolid FillKind = iota
	FillStripes
)

func (k FillKind) String() string {
	if k == FillStripes {
		return "stripes"
	}
	return "solid"
}

// Fill describes the background of a tile. For solid fills only Color is
// used. Stripes alternate Color and Alt every StripeWidth units along the
// gradient axis given by Angle.
type Fill struct {
	Kind  FillKind
	Color string
	Alt   string
	Angle int
}

// IsTransparent reports whether a solid fill lets the background through.
func (f Fill) IsTransparent() bool {
	return f.Kind == FillSolid && f.Color == Transparent
}

// Style is one generated tile appearance.
type Style struct {
	Size    int
	Fill    Fill
	Corners CornerSet
	Dot     bool
}
