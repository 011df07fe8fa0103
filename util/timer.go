package util

import (
	"fmt"
	"strings"
	"time"
)

// Unit is the granularity Timer.Time reports in.
type Unit time.Duration

const (
	Milliseconds = Unit(time.Millisecond)
	Seconds      = Unit(time.Second)
	Minutes      = Unit(time.Minute)
	Hours        = Unit(time.Hour)
)

func (unit Unit) String() string {
	switch unit {
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	case Minutes:
		return "m"
	case Hours:
		return "h"
	}
	return time.Duration(unit).String()
}

func ParseUnit(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ms", "millisecond", "milliseconds":
		return Milliseconds, nil
	case "s", "second", "seconds":
		return Seconds, nil
	case "m", "min", "minute", "minutes":
		return Minutes, nil
	case "h", "hour", "hours":
		return Hours, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, value)
}

// Timer is a stopwatch accumulating the time spent running
// across any number of start/stop intervals.
// It is not safe for concurrent use.
type Timer struct {
	clock   Clock
	running bool
	start   time.Time
	elapsed time.Duration
}

// NewTimer returns a stopped timer. The zero Timer is also ready
// to use and measures against SystemClock.
func NewTimer(clocks ...Clock) *Timer {
	return &Timer{clock: First(clocks, SystemClock())}
}

func (timer *Timer) now() time.Time {
	if timer.clock == nil {
		timer.clock = SystemClock()
	}
	return timer.clock.Now()
}

func (timer *Timer) IsRunning() bool {
	return timer.running
}

// Toggle starts a stopped timer or stops a running one,
// folding the closed interval into the accumulated time.
func (timer *Timer) Toggle() {
	now := timer.now()
	if timer.running {
		timer.elapsed += timer.since(now)
	} else {
		timer.start = now
	}
	timer.running = !timer.running
}

func (timer *Timer) Start() {
	if !timer.running {
		timer.Toggle()
	}
}

func (timer *Timer) Stop() {
	if timer.running {
		timer.Toggle()
	}
}

// Reset zeroes the accumulated time without touching the running flag:
// a running timer keeps running, measuring from now on.
func (timer *Timer) Reset() {
	timer.elapsed = 0
	if timer.running {
		timer.start = timer.now()
	}
}

func (timer *Timer) Elapsed() time.Duration {
	if !timer.running {
		return timer.elapsed
	}
	return timer.elapsed + timer.since(timer.now())
}

// Time returns the elapsed time converted to the given unit, seconds by default.
func (timer *Timer) Time(units ...Unit) float64 {
	unit := First(units, Seconds)
	unit = Ternary(unit > 0, unit, Seconds)
	return float64(timer.Elapsed()) / float64(unit)
}

func (timer *Timer) String() string {
	return timer.Elapsed().String()
}

func (timer *Timer) since(now time.Time) time.Duration {
	if interval := now.Sub(timer.start); interval > 0 {
		return interval
	}
	return 0
}
