package shop

import (
	"sync"
	"time"
)

// BatchSize is how many products each reveal step adds to the viewport.
const BatchSize = 12

// PriceStep is the granularity of the price range inputs.
const PriceStep = 10000

// revealDelay debounces the reveal so rapid sentinel hits load one batch at a
// time instead of dumping the whole result set.
const revealDelay = 220 * time.Millisecond

// ProximityObserver watches the reveal sentinel and invokes the callback every
// time it comes near the viewport. Observe returns a detach function; an error
// means the environment cannot observe and the view degrades to a fixed prefix.
type ProximityObserver interface {
	Observe(callback func()) (func(), error)
}

// Scheduler runs fn after d and returns a cancel function. Injected so tests
// can drive the debounce synchronously.
type Scheduler func(d time.Duration, fn func()) func()

func stdScheduler(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Reveal is the incremental reveal state machine: Idle(count) until the
// sentinel triggers, LoadingMore(count) while the debounce runs, then back to
// Idle with count grown by one batch, clamped to the result length.
type Reveal struct {
	mu       sync.Mutex
	schedule Scheduler
	delay    time.Duration
	batch    int
	count    int
	total    int
	loading  bool
	cancel   func()
	closed   bool
}

func NewReveal(batch int, delay time.Duration, schedule Scheduler) *Reveal {
	if schedule == nil {
		schedule = stdScheduler
	}
	return &Reveal{
		schedule: schedule,
		delay:    delay,
		batch:    batch,
		count:    batch,
	}
}

// Rebind resets the machine to Idle(batch) for a reshaped result set. Any
// pending reveal is invalidated; a timer that already fired is superseded.
func (r *Reveal) Rebind(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.loading = false
	r.count = r.batch
	r.total = total
}

// Seed moves the reveal cursor directly, used when a client rehydrates a view
// with a prefix it had already revealed. The cursor never goes below one batch.
func (r *Reveal) Seed(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if count < r.batch {
		count = r.batch
	}
	r.count = count
}

// Trigger is called on sentinel proximity. It is a no-op while loading, after
// Close, or when everything is already revealed.
func (r *Reveal) Trigger() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.loading || r.count >= r.total {
		return
	}
	r.loading = true
	r.cancel = r.schedule(r.delay, r.complete)
}

func (r *Reveal) complete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || !r.loading {
		return
	}
	r.loading = false
	r.cancel = nil
	r.count += r.batch
	if r.count > r.total {
		r.count = r.total
	}
}

func (r *Reveal) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

func (r *Reveal) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

func (r *Reveal) HasMore() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count < r.total
}

// Close invalidates any pending reveal; no state changes after it returns.
func (r *Reveal) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.closed = true
}
