// Package tile generates the randomized Bauhaus tile styles shown on each
// face of a flip card.
//
// A [Style] is a value: once produced by [Generator.Generate] it is never
// mutated. The generator draws every random decision from an injected
// [Source], so tests can substitute a scripted sequence:
//
//	gen := tile.NewGenerator(tile.NewSource(42), tile.Bauhaus, tile.DefaultSize)
//	s := gen.Generate()
//
// # Geometry
//
// Styles also answer the rasterization questions renderers need, in
// normalized tile coordinates (u, v) ∈ [0,1]²:
//
//   - [Style.Contains]: inside the rounded outline
//   - [Style.ColorAt]: fill color at a point (may be [Transparent])
//   - [Style.DotAt]: inside the decorative centre dot
package tile
