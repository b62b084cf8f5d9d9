package sandpack

// Debouncer coalesces a burst of calls into a single trailing invocation once
// the burst has been quiet for Delay seconds. It is frame-driven: callers
// advance it with Update(dt) each tick. No goroutines or timers are involved,
// matching the package's cooperative single-threaded model.
//
// A Delay of zero coalesces only calls arriving within the same tick: any
// number of Call invocations between two Updates produce exactly one firing
// on the next Update.
type Debouncer struct {
	delay   float64
	elapsed float64
	armed   bool
	fn      func()
}

// NewDebouncer creates a debouncer that invokes fn after delay seconds of
// quiescence following the last Call. Panics if fn is nil or delay negative.
func NewDebouncer(delay float64, fn func()) *Debouncer {
	if fn == nil {
		panic("sandpack: debouncer requires a callback")
	}
	if delay < 0 {
		panic("sandpack: debouncer delay must be non-negative")
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Call arms the debouncer and resets the quiescence timer. Repeated calls
// while armed keep pushing the firing back.
func (d *Debouncer) Call() {
	d.armed = true
	d.elapsed = 0
}

// Update advances the quiescence timer by dt seconds and fires the callback
// once the delay has elapsed with no intervening Call.
func (d *Debouncer) Update(dt float64) {
	if !d.armed {
		return
	}
	d.elapsed += dt
	if d.elapsed >= d.delay {
		d.armed = false
		d.elapsed = 0
		d.fn()
	}
}

// Pending reports whether a firing is armed but has not happened yet.
func (d *Debouncer) Pending() bool {
	return d.armed
}

// Cancel disarms a pending firing without invoking the callback.
func (d *Debouncer) Cancel() {
	d.armed = false
	d.elapsed = 0
}
