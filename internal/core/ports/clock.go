package ports

import "time"

// Clock supplies the current instant to services so lifecycle tests can fix
// "now" instead of reading the system clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock, reading the system time in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
