package domain

import "time"

// Clock supplies the current time. Injecting it keeps timestamp-producing
// code deterministic under test.
type Clock func() time.Time

// SystemClock returns the real wall-clock time.
func SystemClock() time.Time {
	return time.Now()
}
