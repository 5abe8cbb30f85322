package service

import "time"

// Clock returns the current time in the club's time zone.
type Clock func() time.Time

func NewClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}
