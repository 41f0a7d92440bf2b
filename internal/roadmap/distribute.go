package roadmap

import (
	"fmt"
	"strings"
)

const (
	// TopicSeparator joins the topics packed into one day. Display code splits
	// on it, so it must stay stable.
	TopicSeparator = " & "

	practiceCategory = "Practice"
	mixedCategory    = "Mixed"
)

// Slot is one scheduled day before task metadata is attached.
type Slot struct {
	Day      int
	Topic    string
	Category string
	Practice bool
}

// Distribute maps topics onto days calendar days.
//
//   - No topics or no days: nothing is scheduled.
//   - Topics fit (n <= days): one topic per day in order, then "Practice & Review
//     Day k" padding until every day is filled.
//   - Topics overflow (n > days): ceil(n/days) consecutive topics per day, joined
//     with TopicSeparator, categorized by the first topic of the day.
//
// The overflow case always yields exactly days entries. Because the per-day
// size is rounded up, trailing days can end up with short or empty slices; an
// empty day has an empty topic and the Mixed category.
func Distribute(topics []FlatTopic, days int) []Slot {
	n := len(topics)
	if n == 0 || days <= 0 {
		return []Slot{}
	}
	if n <= days {
		return distributeSparse(topics, days)
	}
	return distributeDense(topics, days)
}

func distributeSparse(topics []FlatTopic, days int) []Slot {
	n := len(topics)
	slots := make([]Slot, 0, days)
	for i, t := range topics {
		slots = append(slots, Slot{Day: i + 1, Topic: t.Topic, Category: t.Category})
	}
	for day := n + 1; day <= days; day++ {
		slots = append(slots, Slot{
			Day:      day,
			Topic:    fmt.Sprintf("Practice & Review Day %d", day-n),
			Category: practiceCategory,
			Practice: true,
		})
	}
	return slots
}

func distributeDense(topics []FlatTopic, days int) []Slot {
	n := len(topics)
	perDay := (n + days - 1) / days

	slots := make([]Slot, 0, days)
	for day := 1; day <= days; day++ {
		start := min((day-1)*perDay, n)
		end := min(day*perDay, n)
		chunk := topics[start:end]

		names := make([]string, len(chunk))
		for i, t := range chunk {
			names[i] = t.Topic
		}
		category := mixedCategory
		if len(chunk) > 0 {
			category = chunk[0].Category
		}
		slots = append(slots, Slot{
			Day:      day,
			Topic:    strings.Join(names, TopicSeparator),
			Category: category,
		})
	}
	return slots
}
