package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bauhaus/internal/tile"
)

// Expected branch probabilities of the generator.
const (
	ExpectedStriped = 2.0 / 24
	ExpectedDot     = 1.0 / 16
	ExpectedCorners = 1.0 / 5
)

// Stats summarizes a sample of generated styles.
type Stats struct {
	N           int
	Striped     int
	Transparent int
	Dots        int
	Corners     [5]int
	Angles      map[int]int
	Colors      map[string]int
	// StripedShare[i] is the running striped fraction after i+1 samples.
	StripedShare []float64
}

// Sample draws n styles from gen.
func Sample(gen *tile.Generator, n int) Stats {
	st := Stats{
		N:            n,
		Angles:       make(map[int]int),
		Colors:       make(map[string]int),
		StripedShare: make([]float64, 0, n),
	}
	for i := 0; i < n; i++ {
		s := gen.Generate()
		switch {
		case s.Fill.Kind == tile.FillStripes:
			st.Striped++
			st.Angles[s.Fill.Angle]++
		case s.Fill.IsTransparent():
			st.Transparent++
		default:
			st.Colors[s.Fill.Color]++
		}
		if s.Dot {
			st.Dots++
		}
		st.Corners[s.Corners.Len()]++
		st.StripedShare = append(st.StripedShare, float64(st.Striped)/float64(i+1))
	}
	return st
}

func (s Stats) frac(k int) float64 {
	if s.N == 0 {
		return 0
	}
	return float64(k) / float64(s.N)
}

func (s Stats) StripedFrac() float64     { return s.frac(s.Striped) }
func (s Stats) TransparentFrac() float64 { return s.frac(s.Transparent) }
func (s Stats) DotFrac() float64         { return s.frac(s.Dots) }

// CornerFrac returns the share of samples with k rounded corners.
func (s Stats) CornerFrac(k int) float64 {
	if k < 0 || k >= len(s.Corners) {
		return 0
	}
	return s.frac(s.Corners[k])
}

// StdErr is the binomial standard error of a proportion p over the sample.
func (s Stats) StdErr(p float64) float64 {
	if s.N == 0 {
		return math.Inf(1)
	}
	return math.Sqrt(p * (1 - p) / float64(s.N))
}

// Within reports whether every tracked frequency is within z standard
// errors of its expected value.
func (s Stats) Within(z float64) bool {
	checks := [][2]float64{
		{s.StripedFrac(), ExpectedStriped},
		{s.DotFrac(), ExpectedDot},
	}
	for k := range s.Corners {
		checks = append(checks, [2]float64{s.CornerFrac(k), ExpectedCorners})
	}
	for _, c := range checks {
		if math.Abs(c[0]-c[1]) > z*s.StdErr(c[1]) {
			return false
		}
	}
	return true
}

// Plot draws the running striped share against its expected value.
func (s Stats) Plot(width, height int) string {
	if len(s.StripedShare) < 2 {
		return ""
	}
	// asciigraph needs two columns to interpolate a series
	if width == 1 {
		width = 2
	}
	series := downsample(s.StripedShare, width)
	expected := make([]float64, len(series))
	for i := range expected {
		expected[i] = ExpectedStriped
	}
	return asciigraph.PlotMany([][]float64{series, expected},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Default),
		asciigraph.Caption("striped share (running) vs 2/24"))
}

// downsample keeps at most n evenly spaced points, always including the
// last one.
func downsample(xs []float64, n int) []float64 {
	if n <= 0 || len(xs) <= n {
		return xs
	}
	if n == 1 {
		return xs[len(xs)-1:]
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = xs[i*(len(xs)-1)/(n-1)]
	}
	return out
}

// Report formats the sample as a table.
func (s Stats) Report() string {
	var b strings.Builder
	row := func(label string, got, want float64) {
		b.WriteString(fmt.Sprintf("%-14s %7.4f   expected %7.4f   ±%.4f\n", label, got, want, 3*s.StdErr(want)))
	}
	b.WriteString(fmt.Sprintf("samples        %d\n\n", s.N))
	row("striped", s.StripedFrac(), ExpectedStriped)
	row("dot", s.DotFrac(), ExpectedDot)
	for k := range s.Corners {
		row(fmt.Sprintf("corners=%d", k), s.CornerFrac(k), ExpectedCorners)
	}
	b.WriteString(fmt.Sprintf("%-14s %7.4f\n", "transparent", s.TransparentFrac()))

	if len(s.Angles) > 0 {
		angles := make([]int, 0, len(s.Angles))
		for a := range s.Angles {
			angles = append(angles, a)
		}
		sort.Ints(angles)
		b.WriteString("\nstripe angles\n")
		for _, a := range angles {
			b.WriteString(fmt.Sprintf("  %4d°  %d\n", a, s.Angles[a]))
		}
	}
	return b.String()
}
