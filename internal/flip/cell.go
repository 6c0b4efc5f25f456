package flip

import (
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/bauhaus/internal/sched"
	"github.com/san-kum/bauhaus/internal/tile"
)

type Axis int

const (
	AxisY Axis = iota
	AxisX
)

func (a Axis) String() string {
	if a == AxisX {
		return "rotateX"
	}
	return "rotateY"
}

// Side names one of the two faces of a cell.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) Other() Side { return 1 - s }

func (s Side) String() string {
	if s == SideA {
		return "showing-A"
	}
	return "showing-B"
}

// Face is one generated style with its own identity. Regenerating a face
// always produces a new ID, so renderers never mistake it for the old one.
type Face struct {
	ID    uuid.UUID
	Style tile.Style
}

// Timing bounds the random flip delay and sets the length of each half of
// the flip animation.
type Timing struct {
	MinDelay     time.Duration
	MaxDelay     time.Duration
	FlipDuration time.Duration
}

var DefaultTiming = Timing{
	MinDelay:     5 * time.Second,
	MaxDelay:     60 * time.Second,
	FlipDuration: 500 * time.Millisecond,
}

// Options carries the collaborators every cell needs.
type Options struct {
	Gen    *tile.Generator
	Rand   tile.Source
	Clock  *sched.Scheduler
	Timing Timing
	// OnFlip, if set, runs after each flip with the cell already updated.
	OnFlip func(*Cell)
}

type Cell struct {
	id       uuid.UUID
	row, col int
	opts     Options
	axis     Axis
	faces    [2]Face
	showing  Side
	timer    *sched.Timer
	trans    *Transition
	flips    int
	closed   bool
}

// NewCell builds a cell showing side B, with side A generated but hidden,
// and schedules its first flip.
func NewCell(row, col int, opts Options) *Cell {
	c := &Cell{
		id:   uuid.New(),
		row:  row,
		col:  col,
		opts: opts,
	}
	c.faces[SideA] = c.newFace()
	c.faces[SideB] = c.newFace()
	c.showing = SideB
	c.axis = Axis(opts.Rand.IntN(2))
	c.schedule()
	return c
}

func (c *Cell) newFace() Face {
	return Face{ID: uuid.New(), Style: c.opts.Gen.Generate()}
}

// delay draws a whole-millisecond delay uniformly from [MinDelay, MaxDelay].
func (c *Cell) delay() time.Duration {
	lo := c.opts.Timing.MinDelay.Milliseconds()
	hi := c.opts.Timing.MaxDelay.Milliseconds()
	if hi <= lo {
		return time.Duration(lo) * time.Millisecond
	}
	return time.Duration(lo+int64(c.opts.Rand.IntN(int(hi-lo+1)))) * time.Millisecond
}

func (c *Cell) schedule() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = c.opts.Clock.AfterFunc(c.delay(), c.Flip)
}

// Flip shows the hidden face, replaces the face that just went out of view
// with a fresh one and reschedules. It is a no-op on a closed cell.
func (c *Cell) Flip() {
	if c.closed {
		return
	}
	out := c.faces[c.showing]
	c.showing = c.showing.Other()
	c.faces[c.showing.Other()] = c.newFace()
	c.trans = &Transition{
		Start:    c.opts.Clock.Now(),
		Duration: c.opts.Timing.FlipDuration,
		Axis:     c.axis,
		Out:      out,
		In:       c.faces[c.showing],
	}
	c.flips++
	c.schedule()
	if c.opts.OnFlip != nil {
		c.opts.OnFlip(c)
	}
}

// Close cancels the pending timer. A closed cell never flips again.
func (c *Cell) Close() {
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Cell) ID() uuid.UUID       { return c.id }
func (c *Cell) Pos() (row, col int) { return c.row, c.col }
func (c *Cell) Axis() Axis          { return c.axis }
func (c *Cell) Showing() Side       { return c.showing }
func (c *Cell) Flips() int          { return c.flips }
func (c *Cell) Closed() bool        { return c.closed }

// Face returns the face on the given side.
func (c *Cell) Face(s Side) Face { return c.faces[s] }

// Shown returns the face the cell currently displays at rest.
func (c *Cell) Shown() Face { return c.faces[c.showing] }

// Hidden returns the face waiting for the next flip.
func (c *Cell) Hidden() Face { return c.faces[c.showing.Other()] }

// NextFlip returns when the pending timer fires.
func (c *Cell) NextFlip() (time.Duration, bool) {
	if c.timer == nil || !c.timer.Pending() {
		return 0, false
	}
	return c.timer.When(), true
}

// Transition returns the running flip animation, if any.
func (c *Cell) Transition() (Transition, bool) {
	if c.trans == nil {
		return Transition{}, false
	}
	return *c.trans, true
}

// Visible returns the face to draw at now and its rotation away from
// face-on, in degrees within [0, 90].
func (c *Cell) Visible(now time.Duration) (Face, float64) {
	if c.trans == nil {
		return c.Shown(), 0
	}
	f, angle, _ := c.trans.At(now)
	return f, angle
}

// Settle drops a finished transition. It reports whether the cell is at
// rest afterwards.
func (c *Cell) Settle(now time.Duration) bool {
	if c.trans == nil {
		return true
	}
	if _, _, done := c.trans.At(now); done {
		c.trans = nil
		return true
	}
	return false
}
