package timing

import "time"

// Clock supplies the current wall-clock time. It is injected into
// measurements so tests can substitute a deterministic time source.
type Clock func() time.Time

// SystemClock reads the system wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// Measure runs fn once and returns the elapsed wall-clock time in
// milliseconds, as the difference of two clock readings around the call.
func Measure(clock Clock, fn func()) float64 {
	start := clock()
	fn()
	end := clock()

	return float64(end.Sub(start)) / float64(time.Millisecond)
}
