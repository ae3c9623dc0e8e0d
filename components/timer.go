package components

// Timer is a fixed-duration countdown advanced once per frame. Non-repeating
// timers saturate at their duration; repeating timers wrap and report
// JustFinished on every lap.
type Timer struct {
	Duration  float64 // seconds
	Elapsed   float64
	Repeating bool

	justFinished bool
}

func NewTimer(duration float64, repeating bool) Timer {
	return Timer{Duration: duration, Repeating: repeating}
}

func (t *Timer) Tick(dt float64) {
	t.justFinished = false
	if !t.Repeating && t.Elapsed >= t.Duration {
		return
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.justFinished = true
		if t.Repeating {
			t.Elapsed -= t.Duration
		} else {
			t.Elapsed = t.Duration
		}
	}
}

// Finished reports whether a non-repeating timer has run its full duration.
func (t *Timer) Finished() bool {
	return !t.Repeating && t.Elapsed >= t.Duration
}

// JustFinished reports whether the timer crossed its duration on the last Tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

func (t *Timer) Reset() {
	t.Elapsed = 0
	t.justFinished = false
}
