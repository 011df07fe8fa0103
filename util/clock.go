package util

import "time"

// Clock is the time source a Timer measures against.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	// carries a monotonic reading, which Time.Sub prefers
	return time.Now()
}

func SystemClock() Clock {
	return systemClock{}
}
