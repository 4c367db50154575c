package clock

import "time"

// Clock supplies the current time. Services take it as a dependency so
// timestamps are computed per call, never frozen at package init.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// System returns a Clock backed by the wall clock in UTC.
func System() Clock {
	return systemClock{}
}
