package roadmap

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "2 hours", FormatDuration(2))
	assert.Equal(t, "1.5 hours", FormatDuration(1.5))
	assert.Equal(t, "0.5 hours", FormatDuration(0.5))
	assert.Equal(t, "12 hours", FormatDuration(12))
	assert.Equal(t, "2 hours", FormatDuration(0), "zero falls back to the default budget")
	assert.Equal(t, "-1 hours", FormatDuration(-1), "negative values are rendered as given")
	assert.Equal(t, "2 hours", FormatDuration(math.NaN()))
}

func TestDescribe_PerLevel(t *testing.T) {
	assert.Equal(t,
		"Learn the fundamentals of Go from scratch. Perfect for beginners with no prior experience.",
		Describe("Go", LevelBeginner))
	assert.Equal(t,
		"Deep dive into Go with practical examples. Build on your existing foundation.",
		Describe("Go", LevelIntermediate))
	assert.Equal(t,
		"Master Go with advanced concepts and best practices. Optimize your skills.",
		Describe("Go", LevelAdvanced))
	assert.Equal(t, Describe("Go", LevelBeginner), Describe("Go", Level("expert")))
}

func TestResources(t *testing.T) {
	assert.Equal(t, []string{
		"📺 Video Tutorial: CSS Grid System",
		"📖 Read: CSS Grid System Documentation",
		"💻 Practice: Build a CSS Grid System project",
	}, Resources("CSS Grid System"))
}

func TestSynthesize_TopicSlot(t *testing.T) {
	task := Synthesize(Slot{Day: 3, Topic: "Docker Basics", Category: "Containers"}, LevelAdvanced, 4)

	assert.Equal(t, 3, task.Day)
	assert.Equal(t, "Docker Basics", task.Topic)
	assert.Equal(t, "Containers", task.Category)
	assert.Equal(t, "pending", task.Status)
	assert.Equal(t, "4 hours", task.Duration)
	assert.Equal(t, Resources("Docker Basics"), task.Resources)
	assert.Equal(t, Describe("Docker Basics", LevelAdvanced), task.Description)
}

func TestSynthesize_PackedDayUsesLevelTemplate(t *testing.T) {
	label := "Docker Basics" + TopicSeparator + "Docker Compose"
	task := Synthesize(Slot{Day: 1, Topic: label, Category: "Containers"}, LevelBeginner, 2)

	assert.Equal(t,
		"Learn the fundamentals of Docker Basics & Docker Compose from scratch. Perfect for beginners with no prior experience.",
		task.Description)
	assert.NotContains(t, task.Description, "Focus on")
	assert.Equal(t, Resources(label), task.Resources)
}

func TestSynthesize_PracticeSlot(t *testing.T) {
	task := Synthesize(Slot{Day: 9, Topic: "Practice & Review Day 2", Category: "Practice", Practice: true}, LevelIntermediate, 1)

	assert.Equal(t, "Consolidate your learning through practice and hands-on projects.", task.Description)
	assert.Equal(t, []string{"Review previous topics", "Work on projects", "Practice coding challenges"}, task.Resources)
}

func TestDayBudget(t *testing.T) {
	today := time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, 15, DayBudget(today, today.AddDate(0, 0, 15)))
	assert.Equal(t, 1, DayBudget(today, today.Add(time.Hour)), "partial days round up")
	assert.Equal(t, 0, DayBudget(today, today))
	assert.Equal(t, -2, DayBudget(today, today.AddDate(0, 0, -2)))
}
