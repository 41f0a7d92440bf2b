package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

const (
	MinHoursPerDay = 0.5
	MaxHoursPerDay = 12.0
)

// GoalInput is the user-supplied description of a new goal.
type GoalInput struct {
	Goal        string
	Level       string
	HoursPerDay float64
	Deadline    time.Time
}

// Validate reports every problem with the input at once. The roadmap
// generator accepts anything; this is where stricter rules are enforced
// before a plan is persisted.
func (in GoalInput) Validate(today time.Time) error {
	var errs []error
	if strings.TrimSpace(in.Goal) == "" {
		errs = append(errs, errors.New("goal is required"))
	}
	if _, err := ParseLevel(in.Level); err != nil {
		errs = append(errs, err)
	}
	if math.IsNaN(in.HoursPerDay) || in.HoursPerDay < MinHoursPerDay || in.HoursPerDay > MaxHoursPerDay {
		errs = append(errs, fmt.Errorf("hours per day must be between %g and %g, got %g", MinHoursPerDay, MaxHoursPerDay, in.HoursPerDay))
	}
	if in.Deadline.IsZero() {
		errs = append(errs, errors.New("deadline is required"))
	} else if !DateOnly(in.Deadline).After(DateOnly(today)) {
		errs = append(errs, fmt.Errorf("deadline %s must be after %s", in.Deadline.Format(DateLayout), today.Format(DateLayout)))
	}
	return errors.Join(errs...)
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a YYYY-MM-DD date with a field-aware error.
func ParseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, value)
	}
	return t, nil
}
