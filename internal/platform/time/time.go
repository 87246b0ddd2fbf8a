// Package time contains time related helpers
package time

import "time"

// Clock is the seam for components that expire or window by wall time
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System is the real clock
var System Clock = systemClock{}

// Or returns c, or System when c is nil
func Or(c Clock) Clock {
	if c == nil {
		return System
	}
	return c
}
