// Package loop paces fixed-timestep simulation against wall-clock time.
package loop

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultStep is one simulation tick at 60 ticks per second.
const DefaultStep = time.Second / 60

// Accumulator turns elapsed wall time into a count of due ticks. Time that
// does not fill a whole tick carries into the next call.
type Accumulator struct {
	Step     time.Duration
	MaxSteps int // catch-up cap per call; zero means unbounded

	pending time.Duration
}

func NewAccumulator(step time.Duration, maxSteps int) *Accumulator {
	return &Accumulator{Step: step, MaxSteps: maxSteps}
}

// Advance adds elapsed time and returns how many ticks are due. When the cap
// trims a backlog the excess whole ticks are dropped, the sub-tick remainder
// is kept.
func (a *Accumulator) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		a.pending += elapsed
	}
	steps := int(a.pending / a.Step)
	a.pending -= time.Duration(steps) * a.Step

	if a.MaxSteps > 0 && steps > a.MaxSteps {
		log.WithFields(log.Fields{"due": steps, "cap": a.MaxSteps}).Warn("simulation fell behind, dropping ticks")
		steps = a.MaxSteps
	}
	return steps
}

// Pending returns the carried-over time.
func (a *Accumulator) Pending() time.Duration {
	return a.pending
}

// Alpha is the fraction of a tick carried over, for render interpolation.
func (a *Accumulator) Alpha() float64 {
	return float64(a.pending) / float64(a.Step)
}

func (a *Accumulator) Reset() {
	a.pending = 0
}
