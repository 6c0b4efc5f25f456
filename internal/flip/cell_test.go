package flip

import (
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/san-kum/bauhaus/internal/sched"
	"github.com/san-kum/bauhaus/internal/tile"
)

func testOptions(seed int64) Options {
	src := tile.NewSource(seed)
	return Options{
		Gen:    tile.NewGenerator(src, tile.Bauhaus, tile.DefaultSize),
		Rand:   src,
		Clock:  sched.New(),
		Timing: DefaultTiming,
	}
}

func expectPendingInRange(c *Cell, now time.Duration) {
	next, ok := c.NextFlip()
	ExpectWithOffset(1, ok).To(BeTrue(), "cell should have a pending flip")
	ExpectWithOffset(1, next-now).To(BeNumerically(">=", 5*time.Second))
	ExpectWithOffset(1, next-now).To(BeNumerically("<=", 60*time.Second))
}

// advanceToNext moves the clock to the cell's pending deadline.
func advanceToNext(clock *sched.Scheduler, c *Cell) {
	next, ok := c.NextFlip()
	ExpectWithOffset(1, ok).To(BeTrue())
	clock.AdvanceTo(next)
}

var _ = Describe("Cell", func() {
	var (
		opts  Options
		clock *sched.Scheduler
		cell  *Cell
	)

	BeforeEach(func() {
		opts = testOptions(11)
		clock = opts.Clock
		cell = NewCell(0, 0, opts)
	})

	Context("when created", func() {
		It("shows side B", func() {
			Expect(cell.Showing()).To(Equal(SideB))
			Expect(cell.Shown().ID).To(Equal(cell.Face(SideB).ID))
		})

		It("generates side A eagerly with its own identity", func() {
			a, b := cell.Face(SideA), cell.Face(SideB)
			Expect(a.ID).NotTo(Equal(uuid.Nil))
			Expect(a.ID).NotTo(Equal(b.ID))
			Expect(a.Style.Size).To(Equal(tile.DefaultSize))
		})

		It("schedules exactly one flip within the delay window", func() {
			Expect(clock.Len()).To(Equal(1))
			expectPendingInRange(cell, 0)
		})

		It("has no running transition", func() {
			_, ok := cell.Transition()
			Expect(ok).To(BeFalse())
			f, angle := cell.Visible(0)
			Expect(f.ID).To(Equal(cell.Shown().ID))
			Expect(angle).To(BeZero())
		})
	})

	Context("when the timer fires", func() {
		It("shows the other side", func() {
			hidden := cell.Hidden().ID
			advanceToNext(clock, cell)

			Expect(cell.Showing()).To(Equal(SideA))
			Expect(cell.Shown().ID).To(Equal(hidden))
			Expect(cell.Flips()).To(Equal(1))
		})

		It("regenerates the side that went out of view", func() {
			shown := cell.Shown().ID
			advanceToNext(clock, cell)

			Expect(cell.Hidden().ID).NotTo(Equal(shown))
			Expect(cell.Hidden().ID).NotTo(Equal(cell.Shown().ID))
		})

		It("never reuses a face identity", func() {
			seen := map[uuid.UUID]bool{
				cell.Face(SideA).ID: true,
				cell.Face(SideB).ID: true,
			}
			for i := 0; i < 50; i++ {
				advanceToNext(clock, cell)
				id := cell.Hidden().ID
				Expect(seen).NotTo(HaveKey(id))
				seen[id] = true
			}
			Expect(cell.Flips()).To(Equal(50))
		})

		It("reschedules a single pending flip", func() {
			advanceToNext(clock, cell)
			Expect(clock.Len()).To(Equal(1))
			expectPendingInRange(cell, clock.Now())
		})

		It("keeps its rotation axis", func() {
			axis := cell.Axis()
			for i := 0; i < 10; i++ {
				advanceToNext(clock, cell)
				Expect(cell.Axis()).To(Equal(axis))
				tr, ok := cell.Transition()
				Expect(ok).To(BeTrue())
				Expect(tr.Axis).To(Equal(axis))
			}
		})

		It("calls the flip hook", func() {
			var got []*Cell
			opts.OnFlip = func(c *Cell) { got = append(got, c) }
			hooked := NewCell(1, 2, opts)
			advanceToNext(clock, hooked)

			Expect(got).To(ConsistOf(hooked))
		})
	})

	Context("while animating", func() {
		var start time.Duration
		var out, in Face

		BeforeEach(func() {
			out = cell.Shown()
			in = cell.Hidden()
			advanceToNext(clock, cell)
			start = clock.Now()
		})

		It("turns the outgoing face away first", func() {
			f, angle := cell.Visible(start)
			Expect(f.ID).To(Equal(out.ID))
			Expect(angle).To(BeNumerically("~", 0, 1e-9))

			f, angle = cell.Visible(start + 250*time.Millisecond)
			Expect(f.ID).To(Equal(out.ID))
			Expect(angle).To(BeNumerically("~", 45, 1e-9))
		})

		It("then turns the incoming face to rest", func() {
			f, angle := cell.Visible(start + 750*time.Millisecond)
			Expect(f.ID).To(Equal(in.ID))
			Expect(angle).To(BeNumerically("~", 45, 1e-9))

			f, angle = cell.Visible(start + time.Second)
			Expect(f.ID).To(Equal(in.ID))
			Expect(angle).To(BeZero())
		})

		It("settles once both halves finish", func() {
			Expect(cell.Settle(start + 600*time.Millisecond)).To(BeFalse())
			Expect(cell.Settle(start + time.Second)).To(BeTrue())
			_, ok := cell.Transition()
			Expect(ok).To(BeFalse())
		})
	})

	Context("when forced to flip", func() {
		It("replaces the pending timer", func() {
			before, _ := cell.NextFlip()
			clock.Advance(time.Second)
			cell.Flip()

			Expect(clock.Len()).To(Equal(1))
			after, ok := cell.NextFlip()
			Expect(ok).To(BeTrue())
			Expect(after).NotTo(Equal(before))
			expectPendingInRange(cell, clock.Now())
		})
	})

	Context("when closed", func() {
		It("cancels the pending timer", func() {
			cell.Close()
			Expect(clock.Len()).To(BeZero())
			_, ok := cell.NextFlip()
			Expect(ok).To(BeFalse())
		})

		It("never flips afterwards", func() {
			cell.Close()
			clock.Advance(10 * time.Minute)
			cell.Flip()

			Expect(cell.Flips()).To(BeZero())
			Expect(cell.Showing()).To(Equal(SideB))
			Expect(cell.Closed()).To(BeTrue())
		})
	})
})

var _ = Describe("Transition", func() {
	It("completes immediately without a duration", func() {
		tr := Transition{Start: time.Second, In: Face{ID: uuid.New()}}
		f, angle, done := tr.At(time.Second)
		Expect(done).To(BeTrue())
		Expect(angle).To(BeZero())
		Expect(f.ID).To(Equal(tr.In.ID))
	})

	It("clamps samples taken before the start", func() {
		tr := Transition{Start: time.Second, Duration: time.Second, Out: Face{ID: uuid.New()}}
		f, angle, done := tr.At(0)
		Expect(done).To(BeFalse())
		Expect(angle).To(BeZero())
		Expect(f.ID).To(Equal(tr.Out.ID))
	})
})
