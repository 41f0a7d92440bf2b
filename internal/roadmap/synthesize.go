package roadmap

import (
	"fmt"
	"math"
	"strconv"
)

// Level is the learner's self-reported skill level.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// StatusPending is the status of every freshly generated task.
const StatusPending = "pending"

// DefaultHoursPerDay replaces a non-positive or NaN daily budget.
const DefaultHoursPerDay = 2.0

// Task is one day of a generated roadmap.
type Task struct {
	Day         int
	Topic       string
	Category    string
	Status      string
	Duration    string
	Resources   []string
	Description string
}

// Synthesize attaches duration, resources and a level-specific description to
// a scheduled slot. A day packing several topics is described with the same
// level template applied to its joined label, not a generic "Focus on" line.
func Synthesize(slot Slot, level Level, hoursPerDay float64) Task {
	task := Task{
		Day:      slot.Day,
		Topic:    slot.Topic,
		Category: slot.Category,
		Status:   StatusPending,
		Duration: FormatDuration(hoursPerDay),
	}
	if slot.Practice {
		task.Resources = []string{"Review previous topics", "Work on projects", "Practice coding challenges"}
		task.Description = "Consolidate your learning through practice and hands-on projects."
		return task
	}
	task.Resources = Resources(slot.Topic)
	task.Description = Describe(slot.Topic, level)
	return task
}

// FormatDuration renders hours as "{h} hours" using the shortest decimal form
// of h. The value is not rounded. Zero and NaN mean "not given" and render the
// default; any other value, negative ones included, is shown as is.
func FormatDuration(hoursPerDay float64) string {
	if math.IsNaN(hoursPerDay) || hoursPerDay == 0 {
		hoursPerDay = DefaultHoursPerDay
	}
	return strconv.FormatFloat(hoursPerDay, 'f', -1, 64) + " hours"
}

// Resources returns the three study resources suggested for a topic label.
func Resources(topic string) []string {
	return []string{
		fmt.Sprintf("📺 Video Tutorial: %s", topic),
		fmt.Sprintf("📖 Read: %s Documentation", topic),
		fmt.Sprintf("💻 Practice: Build a %s project", topic),
	}
}

// Describe returns the level-specific description for a topic label.
// Unknown levels get the beginner phrasing.
func Describe(topic string, level Level) string {
	switch level {
	case LevelIntermediate:
		return fmt.Sprintf("Deep dive into %s with practical examples. Build on your existing foundation.", topic)
	case LevelAdvanced:
		return fmt.Sprintf("Master %s with advanced concepts and best practices. Optimize your skills.", topic)
	default:
		return fmt.Sprintf("Learn the fundamentals of %s from scratch. Perfect for beginners with no prior experience.", topic)
	}
}
