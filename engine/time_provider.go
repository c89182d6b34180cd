package engine

import (
	"sync"
	"time"
)

// Ticker delivers periodic timer fires
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock is the timer collaborator: the base-rate tick and timed waits
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the wall clock
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) NewTicker(d time.Duration) Ticker {
	return systemTicker{time.NewTicker(d)}
}

func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }

// ManualClock is a Clock driven by Advance, for tests
// Tick delivery is synchronous: Advance returns once every fire was received
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
	waiters []manualWaiter
}

type manualWaiter struct {
	at time.Time
	ch chan time.Time
}

type manualTicker struct {
	period time.Duration
	next   time.Time
	ch     chan time.Time
	done   chan struct{}
	once   sync.Once
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }
func (t *manualTicker) Stop()               { t.once.Do(func() { close(t.done) }) }

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *ManualClock) NewTicker(d time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTicker{
		period: d,
		next:   m.now.Add(d),
		ch:     make(chan time.Time),
		done:   make(chan struct{}),
	}
	m.tickers = append(m.tickers, t)
	return t
}

func (m *ManualClock) After(d time.Duration) <-chan time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan time.Time, 1)
	if d <= 0 {
		ch <- m.now
		return ch
	}
	m.waiters = append(m.waiters, manualWaiter{at: m.now.Add(d), ch: ch})
	return ch
}

// Tickers returns the number of tickers created so far
func (m *ManualClock) Tickers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tickers)
}

// Advance moves time forward, firing due tickers one period at a time and
// releasing expired waits
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		var due *manualTicker
		for _, t := range m.tickers {
			if !t.next.After(target) && (due == nil || t.next.Before(due.next)) {
				due = t
			}
		}
		if due == nil {
			m.now = target
			m.releaseWaiters()
			m.mu.Unlock()
			return
		}
		at := due.next
		due.next = due.next.Add(due.period)
		m.now = at
		m.releaseWaiters()
		m.mu.Unlock()

		select {
		case due.ch <- at:
		case <-due.done:
		}
	}
}

func (m *ManualClock) releaseWaiters() {
	kept := m.waiters[:0]
	for _, w := range m.waiters {
		if !w.at.After(m.now) {
			w.ch <- w.at
			continue
		}
		kept = append(kept, w)
	}
	m.waiters = kept
}
