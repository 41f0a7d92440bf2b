package domain

import (
	"fmt"
	"strings"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// ValidLevels is the canonical set of accepted level strings, in display order.
var ValidLevels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseLevel accepts a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range ValidLevels {
		if l == v {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q (expected beginner, intermediate or advanced)", s)
}

type GoalStatus string

const (
	GoalActive   GoalStatus = "active"
	GoalArchived GoalStatus = "archived"
)

type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// Pace compares actual completion against the share of the plan that has elapsed.
type Pace string

const (
	PaceAhead   Pace = "ahead"
	PaceOnTrack Pace = "on_track"
	PaceBehind  Pace = "behind"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)
