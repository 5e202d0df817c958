package ports

import "time"

// Clock abstracts the current time. Every time-dependent service takes a
// Clock so tests can pin "now".
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation of Clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }
