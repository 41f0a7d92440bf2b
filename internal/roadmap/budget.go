package roadmap

import (
	"math"
	"time"
)

// Clock supplies the current time. Generation reads "today" through a Clock
// so results are reproducible in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// DayBudget returns ceil((deadline - today) / 24h), the number of calendar days
// a roadmap may span. Zero or negative results mean nothing can be scheduled;
// they are returned unchanged and the distributor treats them as empty.
func DayBudget(today, deadline time.Time) int {
	diff := deadline.Sub(today)
	return int(math.Ceil(diff.Hours() / 24))
}
