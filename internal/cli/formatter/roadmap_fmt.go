package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/skillpilot/internal/contract"
	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/alexanderramin/skillpilot/internal/roadmap"
)

const (
	listProgressBarWidth   = 10
	detailProgressBarWidth = 24
	topicColumnWidth       = 60
)

// FormatPreview renders a generated, unsaved roadmap.
func FormatPreview(resp *contract.PreviewResponse) string {
	var b strings.Builder

	b.WriteString(Bold(resp.Goal) + "  " + LevelBadge(resp.Level) + "\n")
	curriculum := resp.CatalogKey
	if !resp.Matched {
		curriculum = "general (no specific match)"
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("CURRICULUM"), StyleBlue.Render(curriculum)))
	b.WriteString(fmt.Sprintf("%s  %d\n\n", Dim("DAYS      "), len(resp.Tasks)))

	if len(resp.Tasks) == 0 {
		b.WriteString(Dim("No days left before the deadline; nothing to schedule.") + "\n")
		return RenderBox("Roadmap preview", b.String())
	}

	rows := make([][]string, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.Day),
			categoryLabel(t.Category),
			Truncate(t.Topic, topicColumnWidth),
			Dim(t.Duration),
		})
	}
	b.WriteString(RenderTable([]string{"DAY", "CATEGORY", "TOPIC", "TIME"}, rows))
	return RenderBox("Roadmap preview", b.String())
}

// FormatPlanList renders one row per goal.
func FormatPlanList(summaries []contract.PlanSummary, now time.Time) string {
	if len(summaries) == 0 {
		return Dim("No goals yet. Create one with: skillpilot plan create") + "\n"
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		g := s.Goal
		rows = append(rows, []string{
			g.DisplayID(),
			Bold(Truncate(g.Title, 40)),
			LevelBadge(g.Level),
			RenderProgress(s.CompletionPct, listProgressBarWidth),
			fmt.Sprintf("%d/%d", s.CompletedTasks, s.TotalTasks),
			DeadlineStyled(g.Deadline, now),
			GoalStatusPill(g.Status),
		})
	}
	table := RenderTable([]string{"ID", "GOAL", "LEVEL", "PROGRESS", "DAYS", "DEADLINE", "STATUS"}, rows)
	return RenderBox("Goals", table)
}

// FormatPlanDetail renders a goal header followed by its full roadmap.
func FormatPlanDetail(detail *contract.PlanDetail, now time.Time) string {
	g := detail.Goal
	var b strings.Builder

	completed := 0
	for _, t := range detail.Tasks {
		if t.IsCompleted() {
			completed++
		}
	}
	pct := 0.0
	if len(detail.Tasks) > 0 {
		pct = float64(completed) / float64(len(detail.Tasks)) * 100
	}

	b.WriteString(Bold(g.Title) + "  " + LevelBadge(g.Level) + "  " + GoalStatusPill(g.Status) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("ID       "), g.DisplayID()))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("STARTED  "), g.StartDate.Format(domain.DateLayout)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("DEADLINE "), DeadlineStyled(g.Deadline, now)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("DAILY    "), roadmap.FormatDuration(g.HoursPerDay)))
	b.WriteString(fmt.Sprintf("%s  %s %s\n\n", Dim("PROGRESS "),
		RenderProgress(pct, detailProgressBarWidth), Dim(fmt.Sprintf("(%d/%d days)", completed, len(detail.Tasks)))))

	today := dayOf(now)
	rows := make([][]string, 0, len(detail.Tasks))
	for _, t := range detail.Tasks {
		date := t.ExpectedDate(g.StartDate)
		dateStr := Dim(date.Format("Mon Jan 2"))
		if dayOf(date).Equal(today) {
			dateStr = StyleYellow.Render(date.Format("Mon Jan 2"))
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.Day),
			TaskCheck(t.Status),
			dateStr,
			categoryLabel(t.Category),
			Truncate(t.Topic, topicColumnWidth),
		})
	}
	b.WriteString(RenderTable([]string{"DAY", "", "DATE", "CATEGORY", "TOPIC"}, rows))
	return RenderBox("Roadmap", b.String())
}

// FormatTaskCard renders one roadmap day with its description and resources.
func FormatTaskCard(g *domain.Goal, t *domain.Task) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", TaskCheck(t.Status), Bold(t.Topic)))
	b.WriteString(categoryLabel(t.Category) + Dim("  ·  "+t.Duration+"  ·  "+t.ExpectedDate(g.StartDate).Format("Mon Jan 2")) + "\n\n")
	if t.Description != "" {
		b.WriteString(StyleFg.Render(t.Description) + "\n\n")
	}
	if len(t.Resources) > 0 {
		b.WriteString(Dim("RESOURCES") + "\n")
		for _, r := range t.Resources {
			b.WriteString("  " + r + "\n")
		}
	}
	return RenderBox(fmt.Sprintf("%s · Day %d", g.DisplayID(), t.Day), strings.TrimRight(b.String(), "\n"))
}

func categoryLabel(c string) string {
	if c == "" {
		return Dim("--")
	}
	return StylePurple.Render(c)
}
