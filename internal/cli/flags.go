package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/skillpilot/internal/contract"
	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value holding a YYYY-MM-DD date at UTC midnight.
type dateValue struct {
	t *time.Time
}

func newDateValue(p *time.Time) *dateValue {
	return &dateValue{t: p}
}

func (d *dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format(domain.DateLayout)
}

func (d *dateValue) Set(s string) error {
	t, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	*d.t = t
	return nil
}

func (d *dateValue) Type() string { return "date" }

// deadlineFlags is the --deadline / --days pair shared by create, preview and
// regenerate.
type deadlineFlags struct {
	deadline time.Time
	days     int
}

func (f *deadlineFlags) register(fs *pflag.FlagSet) {
	fs.Var(newDateValue(&f.deadline), "deadline", "Deadline (YYYY-MM-DD)")
	fs.IntVar(&f.days, "days", 0, "Deadline as a number of days from today")
}

// resolve returns the deadline as a calendar date. A zero result means
// neither flag was given.
func (f *deadlineFlags) resolve(now time.Time) (time.Time, error) {
	switch {
	case f.days != 0 && !f.deadline.IsZero():
		return time.Time{}, errors.New("use either --deadline or --days, not both")
	case f.days < 0:
		return time.Time{}, fmt.Errorf("--days must be positive, got %d", f.days)
	case f.days > 0:
		return daysFromToday(now, f.days), nil
	}
	return f.deadline, nil
}

// planFlags collects the goal description flags.
type planFlags struct {
	goal  string
	level string
	hours float64
	deadlineFlags
}

func (f *planFlags) register(fs *pflag.FlagSet, defaultHours float64) {
	fs.StringVar(&f.goal, "goal", "", "Learning goal, e.g. \"Become a Frontend Developer\"")
	fs.StringVar(&f.level, "level", string(domain.LevelBeginner), "Level: beginner, intermediate or advanced")
	fs.Float64Var(&f.hours, "hours", defaultHours, "Hours available per day")
	f.deadlineFlags.register(fs)
}

func (f *planFlags) request(now time.Time) (contract.CreatePlanRequest, error) {
	deadline, err := f.resolve(now)
	if err != nil {
		return contract.CreatePlanRequest{}, err
	}
	return contract.CreatePlanRequest{
		Goal:        f.goal,
		Level:       f.level,
		HoursPerDay: f.hours,
		Deadline:    deadline,
	}, nil
}

// daysFromToday returns the calendar date n days after now's local date.
func daysFromToday(now time.Time, n int) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, time.UTC)
}
