// Package flip composes the grid of independently flipping tiles.
//
// Each [Cell] owns two faces and a pending timer on a shared
// [sched.Scheduler]. When the timer fires the cell swaps the shown face,
// regenerates the face that just went out of view, starts a [Transition]
// and schedules its next flip. A [Grid] measures the viewport once and
// creates one cell per position.
//
// # Lifecycle
//
//	clock := sched.New()
//	g := flip.NewGrid(flip.Size{W: 1000, H: 800}, flip.Options{...})
//	defer g.Close()
//	clock.Advance(16 * time.Millisecond)
//
// Everything here runs on one goroutine; cells never share mutable state.
package flip
