package tile

import (
	"math"
	"testing"
)

func corners(cs ...Corner) CornerSet {
	var s CornerSet
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

func TestStyle_Radii(t *testing.T) {
	tests := []struct {
		name    string
		corners CornerSet
		want    [4]float64
	}{
		{"none", corners(), [4]float64{0, 0, 0, 0}},
		{"single", corners(TopLeft), [4]float64{1, 0, 0, 0}},
		{"diagonal", corners(TopLeft, BottomRight), [4]float64{1, 0, 0, 1}},
		{"adjacent", corners(TopLeft, TopRight), [4]float64{0.5, 0.5, 0, 0}},
		{"all", corners(AllCorners[:]...), [4]float64{0.5, 0.5, 0.5, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Style{Corners: tt.corners}.Radii()
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("Radii() = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestStyle_Contains(t *testing.T) {
	tests := []struct {
		name    string
		corners CornerSet
		u, v    float64
		want    bool
	}{
		{"square corner", corners(), 0.01, 0.01, true},
		{"outside", corners(), 1.2, 0.5, false},
		{"rounded corner cut", corners(TopLeft), 0.1, 0.1, false},
		{"rounded far side", corners(TopLeft), 0.99, 0.99, true},
		{"rounded middle", corners(TopLeft), 0.5, 0.5, true},
		{"other corner untouched", corners(TopLeft), 0.99, 0.01, true},
		{"circle edge", corners(AllCorners[:]...), 0.02, 0.5, true},
		{"circle corner", corners(AllCorners[:]...), 0.05, 0.05, false},
		{"bottom right cut", corners(BottomRight), 0.95, 0.95, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Style{Corners: tt.corners}).Contains(tt.u, tt.v); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestStyle_ColorAt(t *testing.T) {
	stripes := func(angle int) Style {
		return Style{Size: DefaultSize, Fill: Fill{Kind: FillStripes, Color: "A", Alt: "B", Angle: angle}}
	}

	tests := []struct {
		name  string
		style Style
		u, v  float64
		want  string
	}{
		{"solid", Style{Fill: Fill{Kind: FillSolid, Color: "#022859"}}, 0.3, 0.3, "#022859"},
		{"0deg bottom band", stripes(0), 0.5, 0.99, "A"},
		{"0deg second band", stripes(0), 0.5, 0.85, "B"},
		{"90deg left band", stripes(90), 0.05, 0.5, "A"},
		{"90deg second band", stripes(90), 0.15, 0.5, "B"},
		{"90deg third band", stripes(90), 0.25, 0.5, "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.ColorAt(tt.u, tt.v); got != tt.want {
				t.Errorf("ColorAt(%v, %v) = %s, want %s", tt.u, tt.v, got, tt.want)
			}
		})
	}
}

func TestStyle_ColorAt_DiagonalAlternates(t *testing.T) {
	s := Style{Size: DefaultSize, Fill: Fill{Kind: FillStripes, Color: "A", Alt: "B", Angle: 45}}

	// At 45° the gradient runs from the bottom-left corner to the top-right
	// one, so the anti-diagonal crosses every band. Sample each band centre.
	diag := float64(DefaultSize) * math.Sqrt2
	for k := 0; float64(k*StripeWidth+StripeWidth/2) < diag; k++ {
		f := float64(k*StripeWidth+StripeWidth/2) / diag
		want := "A"
		if k%2 == 1 {
			want = "B"
		}
		if got := s.ColorAt(f, 1-f); got != want {
			t.Errorf("band %d: ColorAt(%.3f, %.3f) = %s, want %s", k, f, 1-f, got, want)
		}
	}

	// the main diagonal is perpendicular to the gradient and stays in one band
	first := s.ColorAt(0, 0)
	for i := 1; i <= 20; i++ {
		f := float64(i) / 20
		if got := s.ColorAt(f, f); got != first {
			t.Errorf("ColorAt(%v, %v) = %s, want %s", f, f, got, first)
		}
	}
}

func TestStyle_DotAt(t *testing.T) {
	s := Style{Dot: true}
	if !s.DotAt(0.5, 0.5) {
		t.Error("centre should be on the dot")
	}
	if s.DotAt(0.9, 0.9) {
		t.Error("corner should be off the dot")
	}
	if (Style{}).DotAt(0.5, 0.5) {
		t.Error("style without dot reported one")
	}
}

func TestCornerSet_String(t *testing.T) {
	got := corners(TopRight, BottomLeft).String()
	if got != "{top-right,bottom-left}" {
		t.Errorf("String() = %q", got)
	}
}
