package flip

import "time"

// Transition is an exit-then-enter flip. The outgoing face turns from
// face-on to edge-on over Duration, then the incoming face turns from
// edge-on back to rest over another Duration. Only one face is visible at
// any instant.
type Transition struct {
	Start    time.Duration
	Duration time.Duration
	Axis     Axis
	Out      Face
	In       Face
}

// At samples the transition. angle is 0 when a face is square to the
// viewer and 90 when it is edge-on.
func (t Transition) At(now time.Duration) (f Face, angle float64, done bool) {
	elapsed := now - t.Start
	if t.Duration <= 0 || elapsed >= 2*t.Duration {
		return t.In, 0, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed < t.Duration {
		return t.Out, 90 * float64(elapsed) / float64(t.Duration), false
	}
	p := float64(elapsed-t.Duration) / float64(t.Duration)
	return t.In, 90 * (1 - p), false
}
