package chrono

import (
	"planzajec-backend/lib/timezone"
	"time"
)

// ClockSource is the interface that anything depending on the current time should use.
type ClockSource interface {
	// Now returns the current time in timezone.Location.
	Now() time.Time
}

// System reads the wall clock on every call.
type System struct{}

func (System) Now() time.Time {
	return timezone.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f).In(timezone.Location)
}
