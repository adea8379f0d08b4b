// Package perf instruments a generation run: wall clock per sink call and
// peak memory for the final summary.
package perf

import "time"

// StopWatch accumulates durations of repeated calls.
type StopWatch struct {
	Count int
	Total time.Duration
}

func (w *StopWatch) TimeIt(fn func()) {
	defer w.start()()
	fn()
}

// start returns the func closing the measure.
func (w *StopWatch) start() func() {
	startTime := time.Now()
	return func() {
		w.Count++
		w.Total += time.Since(startTime)
	}
}
