package models

import (
	"time"
)

// Now returns the current time in UTC truncated to microseconds, the
// resolution Postgres stores timestamps at.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
