package validation

import "time"

// Clock isolates the one wall-clock read the rule engine makes so date
// rules stay deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }
