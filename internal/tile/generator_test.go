package tile

import (
	"math"
	"testing"
)

// seqSource replays fixed draws and fails the test on out-of-range values.
type seqSource struct {
	t    *testing.T
	vals []int
	pos  int
}

func (s *seqSource) IntN(n int) int {
	s.t.Helper()
	if s.pos >= len(s.vals) {
		s.t.Fatalf("source exhausted after %d draws", s.pos)
	}
	v := s.vals[s.pos]
	s.pos++
	if v < 0 || v >= n {
		s.t.Fatalf("draw %d: value %d out of range [0,%d)", s.pos, v, n)
	}
	return v
}

func TestGenerate_Solid(t *testing.T) {
	// fill>1, color 3, four corners kept, dot
	src := &seqSource{t: t, vals: []int{5, 3, 4, 0}}
	s := NewGenerator(src, Bauhaus, DefaultSize).Generate()

	if s.Fill.Kind != FillSolid {
		t.Fatalf("expected solid fill, got %v", s.Fill.Kind)
	}
	if s.Fill.Color != "#F2CB05" {
		t.Errorf("expected #F2CB05, got %s", s.Fill.Color)
	}
	if s.Corners.Len() != 4 {
		t.Errorf("expected 4 corners, got %v", s.Corners)
	}
	if !s.Dot {
		t.Error("expected dot")
	}
	if s.Size != DefaultSize {
		t.Errorf("expected size %d, got %d", DefaultSize, s.Size)
	}
}

func TestGenerate_Stripes(t *testing.T) {
	// fill=1 stripes, angle idx 2 (90°), color 0, zero corners (4 removals), no dot
	src := &seqSource{t: t, vals: []int{1, 2, 0, 0, 0, 0, 0, 0, 7}}
	s := NewGenerator(src, Bauhaus, DefaultSize).Generate()

	if s.Fill.Kind != FillStripes {
		t.Fatalf("expected stripes, got %v", s.Fill.Kind)
	}
	if s.Fill.Angle != 90 {
		t.Errorf("expected angle 90, got %d", s.Fill.Angle)
	}
	if s.Fill.Color != "#F20505" {
		t.Errorf("expected #F20505, got %s", s.Fill.Color)
	}
	if s.Fill.Alt != Bauhaus.Background {
		t.Errorf("expected stripe alt %s, got %s", Bauhaus.Background, s.Fill.Alt)
	}
	if s.Corners.Len() != 0 {
		t.Errorf("expected no corners, got %v", s.Corners)
	}
	if s.Dot {
		t.Error("expected no dot")
	}
}

func TestGenerate_CornerRemoval(t *testing.T) {
	// two corners: drop index 0 (top-left) then index 2 of the rest (bottom-right)
	src := &seqSource{t: t, vals: []int{10, 0, 2, 0, 2, 3}}
	s := NewGenerator(src, Bauhaus, DefaultSize).Generate()

	want := CornerSet(0).With(TopRight).With(BottomLeft)
	if s.Corners != want {
		t.Errorf("expected %v, got %v", want, s.Corners)
	}
}

func TestGenerate_CornersDistinct(t *testing.T) {
	gen := NewGenerator(NewSource(1), Bauhaus, DefaultSize)
	for i := 0; i < 10000; i++ {
		s := gen.Generate()
		list := s.Corners.List()
		if len(list) > 4 {
			t.Fatalf("sample %d: %d corners", i, len(list))
		}
		seen := map[Corner]bool{}
		for _, c := range list {
			if seen[c] {
				t.Fatalf("sample %d: duplicate corner %v", i, c)
			}
			seen[c] = true
		}
	}
}

func TestGenerate_Frequencies(t *testing.T) {
	const n = 200000
	gen := NewGenerator(NewSource(7), Bauhaus, DefaultSize)

	striped, dots := 0, 0
	counts := [5]int{}
	for i := 0; i < n; i++ {
		s := gen.Generate()
		if s.Fill.Kind == FillStripes {
			striped++
		}
		if s.Dot {
			dots++
		}
		counts[s.Corners.Len()]++
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"striped", float64(striped) / n, 2.0 / 24},
		{"solid", float64(n-striped) / n, 22.0 / 24},
		{"dot", float64(dots) / n, 1.0 / 16},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 0.005 {
			t.Errorf("%s: frequency %.4f, want %.4f", tt.name, tt.got, tt.want)
		}
	}
	for k, c := range counts {
		if f := float64(c) / n; math.Abs(f-0.2) > 0.01 {
			t.Errorf("corner count %d: frequency %.4f, want 0.2", k, f)
		}
	}
}

func TestGenerator_SetPalette(t *testing.T) {
	mono := Palette{Colors: []string{"#000000"}, Background: "#FFFFFF"}
	gen := NewGenerator(NewSource(3), Bauhaus, DefaultSize)
	gen.SetPalette(mono)

	for i := 0; i < 500; i++ {
		s := gen.Generate()
		if s.Fill.Color != "#000000" {
			t.Fatalf("expected palette color, got %s", s.Fill.Color)
		}
		if s.Fill.Kind == FillStripes && s.Fill.Alt != "#FFFFFF" {
			t.Fatalf("expected stripe alt #FFFFFF, got %s", s.Fill.Alt)
		}
	}
}

func TestNewGenerator_DefaultSize(t *testing.T) {
	gen := NewGenerator(NewSource(1), Bauhaus, 0)
	if gen.Size() != DefaultSize {
		t.Errorf("expected %d, got %d", DefaultSize, gen.Size())
	}
}
