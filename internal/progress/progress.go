// Package progress derives completion analytics from a goal's persisted tasks.
// Every function is pure: callers pass "today" explicitly.
package progress

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/skillpilot/internal/domain"
)

// MaxCatchUpItems caps the number of suggestions in a catch-up plan.
const MaxCatchUpItems = 3

// WeekWindowDays is how far back WeeklyCompleted looks.
const WeekWindowDays = 7

// onTrackRatio is the share of expected progress that still counts as on track.
const onTrackRatio = 0.8

type StreakResult struct {
	Current int
	Longest int
}

type MissedDay struct {
	Day          int
	Topic        string
	ExpectedDate time.Time
}

type CatchUpItem struct {
	Day        int
	Topic      string
	Priority   domain.Priority
	Suggestion string
}

type CatchUp struct {
	NeedsCatchUp bool
	Message      string
	MissedCount  int
	Plan         []CatchUpItem
}

// Analytics is the full progress snapshot of one goal.
type Analytics struct {
	CompletionPct   float64
	Streak          StreakResult
	CompletedTasks  int
	PendingTasks    int
	TotalTasks      int
	WeeklyCompleted int
	DaysRemaining   int
	Pace            domain.Pace
}

// CompletionPercentage returns completed/total*100, or 0 for no tasks.
func CompletionPercentage(tasks []*domain.Task) float64 {
	if len(tasks) == 0 {
		return 0
	}
	return float64(countCompleted(tasks)) / float64(len(tasks)) * 100
}

// Streaks walks tasks in day order. The current streak is the run of
// completed tasks ending at the last task; the longest is the best run seen.
func Streaks(tasks []*domain.Task) StreakResult {
	var res StreakResult
	for _, t := range byDay(tasks) {
		if t.IsCompleted() {
			res.Current++
			res.Longest = max(res.Longest, res.Current)
		} else {
			res.Current = 0
		}
	}
	return res
}

// MissedDays lists pending tasks whose expected date is on or before today.
func MissedDays(start, today time.Time, tasks []*domain.Task) []MissedDay {
	today = utcDate(today)
	var missed []MissedDay
	for _, t := range byDay(tasks) {
		if t.IsCompleted() {
			continue
		}
		expected := t.ExpectedDate(utcDate(start))
		if expected.After(today) {
			continue
		}
		missed = append(missed, MissedDay{Day: t.Day, Topic: t.Topic, ExpectedDate: expected})
	}
	return missed
}

// CatchUpPlan suggests how to recover missed days: the first is due today at
// high priority, the following ones one day apart at medium priority.
func CatchUpPlan(missed []MissedDay) CatchUp {
	if len(missed) == 0 {
		return CatchUp{Message: "Great! You are on track.", Plan: []CatchUpItem{}}
	}

	plan := make([]CatchUpItem, 0, MaxCatchUpItems)
	for i, m := range missed[:min(len(missed), MaxCatchUpItems)] {
		item := CatchUpItem{Day: m.Day, Topic: m.Topic, Priority: domain.PriorityMedium}
		if i == 0 {
			item.Priority = domain.PriorityHigh
			item.Suggestion = "Complete today: " + m.Topic
		} else {
			item.Suggestion = fmt.Sprintf("Complete in %d days: %s", i, m.Topic)
		}
		plan = append(plan, item)
	}

	return CatchUp{
		NeedsCatchUp: true,
		Message:      fmt.Sprintf("You have %d task(s) to catch up on", len(missed)),
		MissedCount:  len(missed),
		Plan:         plan,
	}
}

// DaysRemaining counts calendar days from today to the deadline, never below zero.
func DaysRemaining(deadline, today time.Time) int {
	return max(0, daysBetween(today, deadline))
}

// Pace compares actual completion with the share of the plan's calendar
// span that has elapsed.
func Pace(start, deadline, today time.Time, completionPct float64) domain.Pace {
	total := daysBetween(start, deadline)
	if total <= 0 {
		return domain.PaceOnTrack
	}
	expected := float64(daysBetween(start, today)) / float64(total) * 100
	switch {
	case completionPct >= expected:
		return domain.PaceAhead
	case completionPct >= expected*onTrackRatio:
		return domain.PaceOnTrack
	default:
		return domain.PaceBehind
	}
}

// WeeklyCompleted counts tasks completed between today minus WeekWindowDays
// and today, both inclusive.
func WeeklyCompleted(tasks []*domain.Task, today time.Time) int {
	today = utcDate(today)
	from := today.AddDate(0, 0, -WeekWindowDays)
	n := 0
	for _, t := range tasks {
		if !t.IsCompleted() || t.CompletedAt == nil {
			continue
		}
		d := utcDate(*t.CompletedAt)
		if !d.Before(from) && !d.After(today) {
			n++
		}
	}
	return n
}

// DayNumber is the 1-based plan day that today falls on.
func DayNumber(start, today time.Time) int {
	return daysBetween(start, today) + 1
}

// TodayTask returns today's task when it is still pending, or nil when it is
// done, not yet started or outside the plan.
func TodayTask(start, today time.Time, tasks []*domain.Task) *domain.Task {
	day := DayNumber(start, today)
	for _, t := range tasks {
		if t.Day == day && !t.IsCompleted() {
			return t
		}
	}
	return nil
}

// Summarize builds the analytics snapshot of a goal as of today.
func Summarize(goal *domain.Goal, tasks []*domain.Task, today time.Time) Analytics {
	completed := countCompleted(tasks)
	pct := CompletionPercentage(tasks)
	pace := domain.PaceOnTrack
	if len(tasks) > 0 {
		pace = Pace(goal.StartDate, goal.Deadline, today, pct)
	}
	return Analytics{
		CompletionPct:   math.Round(pct*100) / 100,
		Streak:          Streaks(tasks),
		CompletedTasks:  completed,
		PendingTasks:    len(tasks) - completed,
		TotalTasks:      len(tasks),
		WeeklyCompleted: WeeklyCompleted(tasks, today),
		DaysRemaining:   DaysRemaining(goal.Deadline, today),
		Pace:            pace,
	}
}

func countCompleted(tasks []*domain.Task) int {
	n := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			n++
		}
	}
	return n
}

func byDay(tasks []*domain.Task) []*domain.Task {
	sorted := make([]*domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Day < sorted[j].Day })
	return sorted
}

// utcDate drops the clock part, keeping the calendar date as seen in t's location.
func utcDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(utcDate(to).Sub(utcDate(from)).Hours() / 24)
}
