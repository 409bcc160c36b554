package loop

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// TickFunc runs one simulation tick. Returning false stops the runner.
type TickFunc func(tick uint64) bool

// Runner drives a TickFunc in real time from a ticker. Missed ticks are caught
// up through an Accumulator.
type Runner struct {
	tickRate int
	acc      *Accumulator
	stopChan chan struct{}
	stopOnce sync.Once
	ticks    uint64
}

func NewRunner(tickRate int) *Runner {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Runner{
		tickRate: tickRate,
		acc:      NewAccumulator(time.Second/time.Duration(tickRate), 5),
		stopChan: make(chan struct{}),
	}
}

// Run blocks until fn returns false, Stop is called or ctx is done. It returns
// ctx.Err() in the last case and nil otherwise.
func (r *Runner) Run(ctx context.Context, fn TickFunc) error {
	ticker := time.NewTicker(r.acc.Step)
	defer ticker.Stop()

	log.WithField("tps", r.tickRate).Info("runner started")
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			log.WithField("ticks", r.ticks).Info("runner cancelled")
			return ctx.Err()
		case <-r.stopChan:
			log.WithField("ticks", r.ticks).Info("runner stopped")
			return nil
		case now := <-ticker.C:
			due := r.acc.Advance(now.Sub(last))
			last = now
			for range due {
				r.ticks++
				if !fn(r.ticks) {
					log.WithField("ticks", r.ticks).Info("runner finished")
					return nil
				}
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
}

// Ticks returns how many ticks have run. Only read it after Run returns.
func (r *Runner) Ticks() uint64 {
	return r.ticks
}
