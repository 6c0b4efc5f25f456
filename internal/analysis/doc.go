// Package analysis characterizes the tile generator statistically.
//
// The generator has no deterministic output worth asserting, so its
// contract is expressed as frequencies: how often stripes, dots and each
// corner count appear over a large sample, and how fast the striped share
// converges.
package analysis
