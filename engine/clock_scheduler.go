package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/lcd-pong/core"
	"github.com/lixenwraith/lcd-pong/physics"
	"github.com/lixenwraith/lcd-pong/status"
)

// TickScheduler divides a base-rate timer down to the physics cadence
// Each Divider-th base tick advances physics once and raises the redraw flag,
// unless the previous frame is still waiting to be drawn
// That advance is skipped on purpose: staged positions have one writer until
// the main loop commits them, so physics never overwrites an undrawn frame
type TickScheduler struct {
	gc      *GameContext
	physics *physics.Engine
	clock   Clock

	interval time.Duration
	divider  int
	count    int // owned by the tick goroutine

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statTicks    *atomic.Int64
	statAdvances *atomic.Int64
	statDropped  *atomic.Int64
	statAwake    *atomic.Bool
}

// NewTickScheduler creates a scheduler firing baseHz times a second
func NewTickScheduler(gc *GameContext, eng *physics.Engine, clock Clock, baseHz, divider int) *TickScheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	reg := gc.Status
	return &TickScheduler{
		gc:           gc,
		physics:      eng,
		clock:        clock,
		interval:     time.Second / time.Duration(baseHz),
		divider:      divider,
		stopChan:     make(chan struct{}),
		statTicks:    reg.Ints.Get(status.MetricTicks),
		statAdvances: reg.Ints.Get(status.MetricAdvances),
		statDropped:  reg.Ints.Get(status.MetricDropped),
		statAwake:    reg.Bools.Get(status.MetricAwake),
	}
}

// Interval returns the base tick period
func (ts *TickScheduler) Interval() time.Duration {
	return ts.interval
}

// Start begins the tick loop
func (ts *TickScheduler) Start() {
	if ts.running.CompareAndSwap(false, true) {
		ts.wg.Add(1)
		core.Go(ts.loop)
	}
}

// Stop halts the tick loop and waits for it to exit
func (ts *TickScheduler) Stop() {
	ts.stopOnce.Do(func() {
		if ts.running.CompareAndSwap(true, false) {
			close(ts.stopChan)
			ts.wg.Wait()
		}
	})
}

func (ts *TickScheduler) loop() {
	defer ts.wg.Done()

	ticker := ts.clock.NewTicker(ts.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ts.stopChan:
			return
		case <-ticker.C():
			ts.Tick()
		}
	}
}

// Tick handles one base-rate timer fire, returns true if physics advanced
// Safe to call directly when no loop is running
func (ts *TickScheduler) Tick() bool {
	ts.statTicks.Add(1)
	ts.count++
	if ts.count < ts.divider {
		return false
	}
	ts.count = 0

	if ts.gc.RedrawPending() {
		if ts.statDropped.Add(1)%100 == 1 {
			log.Printf("scheduler: advance skipped, redraw still pending (dropped=%d)", ts.statDropped.Load())
		}
		return false
	}

	ts.statAwake.Store(true)
	ts.gc.Advance(ts.physics)
	ts.statAdvances.Add(1)
	ts.gc.RequestRedraw()
	ts.statAwake.Store(false)
	return true
}
