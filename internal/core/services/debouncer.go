package services

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period between the last keystroke and the query.
const DefaultDebounce = 150 * time.Millisecond

// Debouncer delivers the last pushed value once input has been quiet for
// the configured delay. Only the trailing edge fires.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(term string)
	timer   *time.Timer
	gen     uint64
	pending string
	armed   bool
}

// NewDebouncer creates a debouncer that calls fn after delay of quiet.
// A non-positive delay uses DefaultDebounce.
func NewDebouncer(delay time.Duration, fn func(term string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{
		delay: delay,
		fn:    fn,
	}
}

// Push records term and restarts the quiet period.
func (d *Debouncer) Push(term string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = term
	d.armed = true
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen)
	})
}

// flush fires the pending term now, if any.
func (d *Debouncer) flush() {
	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return
	}
	term := d.disarm()
	d.mu.Unlock()

	d.fn(term)
}

// Stop cancels the pending term without firing it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disarm()
}

// isPending reports whether a term is waiting for the quiet period.
func (d *Debouncer) isPending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	// A timer whose Stop lost the race still runs; its generation is stale.
	if gen != d.gen || !d.armed {
		d.mu.Unlock()
		return
	}
	term := d.disarm()
	d.mu.Unlock()

	d.fn(term)
}

// disarm must be called with mu held.
func (d *Debouncer) disarm() string {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	term := d.pending
	d.pending = ""
	d.armed = false
	return term
}
