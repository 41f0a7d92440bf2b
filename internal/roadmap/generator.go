// Package roadmap turns a learning goal into a day-by-day study plan.
//
// Generation is deterministic: the goal is classified against a curriculum
// catalog, the curriculum is spread over the days left before the deadline,
// and each day gets templated resources and a description. Nothing in this
// package performs I/O or returns errors; inputs that cannot produce a plan
// degrade to an empty or default result.
package roadmap

import "time"

// GoalSpec describes what to learn and how much time is available.
type GoalSpec struct {
	Goal        string
	Level       Level
	HoursPerDay float64
	Deadline    time.Time
}

// Generator produces roadmaps from a catalog and a clock. A Generator holds no
// mutable state and may be shared between goroutines.
type Generator struct {
	catalog *Catalog
	clock   Clock
}

// Option configures a Generator.
type Option func(*Generator)

// WithCatalog replaces the built-in catalog.
func WithCatalog(c *Catalog) Option {
	return func(g *Generator) {
		if c != nil {
			g.catalog = c
		}
	}
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.clock = c
		}
	}
}

// NewGenerator creates a Generator using the built-in catalog and the system
// clock unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		catalog: DefaultCatalog(),
		clock:   SystemClock{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Catalog returns the catalog the generator classifies against.
func (g *Generator) Catalog() *Catalog { return g.catalog }

// Generate builds the roadmap for spec. Day values run 1..len with len never
// exceeding the day budget; a deadline that is not in the future yields an
// empty slice.
func (g *Generator) Generate(spec GoalSpec) []Task {
	return g.GenerateFrom(g.clock.Now(), spec)
}

// GenerateFrom is Generate with an explicit "today". Callers that store
// deadlines as calendar dates pass today's calendar date in the same form, so
// the budget counts whole days instead of the hours left in the current one.
func (g *Generator) GenerateFrom(today time.Time, spec GoalSpec) []Task {
	entries := g.catalog.Classify(spec.Goal)
	topics := Flatten(entries)
	days := DayBudget(today, spec.Deadline)

	slots := Distribute(topics, days)
	tasks := make([]Task, 0, len(slots))
	for _, s := range slots {
		tasks = append(tasks, Synthesize(s, spec.Level, spec.HoursPerDay))
	}
	return tasks
}

// GenerateRoadmap generates a roadmap with the built-in catalog and the system clock.
func GenerateRoadmap(spec GoalSpec) []Task {
	return NewGenerator().Generate(spec)
}
