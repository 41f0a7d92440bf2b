package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var shortIDPattern = regexp.MustCompile(`^[A-Z]{2,6}[0-9]{2,4}$`)

// Goal is a persisted learning goal. Its tasks are stored separately.
type Goal struct {
	ID          string
	ShortID     string
	Title       string
	Level       Level
	HoursPerDay float64
	StartDate   time.Time
	Deadline    time.Time
	CatalogKey  string
	Status      GoalStatus
	ArchivedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateShortID checks that ShortID matches the required format:
// 2-6 uppercase letters followed by 2-4 digits (e.g. FE01, DATA0042).
func (g *Goal) ValidateShortID() error {
	if g.ShortID == "" {
		return fmt.Errorf("short ID is required")
	}
	if !shortIDPattern.MatchString(g.ShortID) {
		return fmt.Errorf("short ID %q must be 2-6 uppercase letters followed by 2-4 digits (e.g. FE01)", g.ShortID)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers ShortID; if empty it truncates ID to 8 characters.
func (g *Goal) DisplayID() string {
	if g.ShortID != "" {
		return g.ShortID
	}
	if len(g.ID) >= 8 {
		return g.ID[:8]
	}
	return g.ID
}

func (g *Goal) IsArchived() bool {
	return g.Status == GoalArchived
}

// ShortIDPrefix derives the letter part of a short ID from a goal title:
// the first letters of up to four significant words, or the first letters of
// a single word, padded with X to at least two letters.
func ShortIDPrefix(title string) string {
	var words []string
	for _, w := range strings.Fields(strings.ToUpper(title)) {
		w = strings.Map(func(r rune) rune {
			if r >= 'A' && r <= 'Z' {
				return r
			}
			return -1
		}, w)
		if w == "" || stopWords[w] {
			continue
		}
		words = append(words, w)
	}

	var prefix string
	switch len(words) {
	case 0:
		prefix = "GL"
	case 1:
		prefix = words[0][:min(len(words[0]), 4)]
	default:
		for _, w := range words[:min(len(words), 4)] {
			prefix += w[:1]
		}
	}
	for len(prefix) < 2 {
		prefix += "X"
	}
	return prefix
}

// FormatShortID joins a prefix and a sequence number into a short ID.
func FormatShortID(prefix string, seq int) string {
	return fmt.Sprintf("%s%02d", prefix, seq)
}

var stopWords = map[string]bool{
	"A": true, "AN": true, "THE": true, "TO": true, "OF": true, "AND": true,
	"BECOME": true, "LEARN": true, "MASTER": true, "IN": true, "FOR": true,
}
