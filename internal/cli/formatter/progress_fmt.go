package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpilot/internal/contract"
)

const statsProgressBarWidth = 20

// FormatAnalytics renders the progress dashboard of a goal.
func FormatAnalytics(resp *contract.AnalyticsResponse) string {
	var b strings.Builder
	g := resp.Goal

	b.WriteString(Bold(g.Title) + "  " + LevelBadge(g.Level) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("COMPLETION "), RenderProgress(resp.CompletionPct, statsProgressBarWidth)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("PACE       "), PaceIndicator(resp.Pace)))
	b.WriteString(fmt.Sprintf("%s  %s %s\n", Dim("STREAK     "),
		StyleYellow.Render(fmt.Sprintf("%d", resp.Streak.Current)),
		Dim(fmt.Sprintf("(longest %d)", resp.Streak.Longest))))
	b.WriteString(fmt.Sprintf("%s  %s %s\n", Dim("TASKS      "),
		StyleGreen.Render(fmt.Sprintf("%d done", resp.CompletedTasks)),
		Dim(fmt.Sprintf("· %d pending · %d total", resp.PendingTasks, resp.TotalTasks))))
	b.WriteString(fmt.Sprintf("%s  %d\n", Dim("THIS WEEK  "), resp.WeeklyCompleted))
	b.WriteString(fmt.Sprintf("%s  %d\n", Dim("DAYS LEFT  "), resp.DaysRemaining))

	return RenderBox("Progress", b.String())
}

// FormatCatchUp renders the catch-up plan of a goal.
func FormatCatchUp(resp *contract.CatchUpResponse) string {
	if !resp.NeedsCatchUp {
		return RenderBox("Catch-up", StyleGreen.Render(resp.Message))
	}

	var b strings.Builder
	b.WriteString(StyleYellow.Render(resp.Message) + "\n\n")

	rows := make([][]string, 0, len(resp.Plan))
	for _, item := range resp.Plan {
		rows = append(rows, []string{
			fmt.Sprintf("%d", item.Day),
			PriorityBadge(item.Priority),
			Truncate(item.Suggestion, topicColumnWidth+16),
		})
	}
	b.WriteString(RenderTable([]string{"DAY", "PRIORITY", "SUGGESTION"}, rows))
	if extra := resp.MissedCount - len(resp.Plan); extra > 0 {
		b.WriteString(Dim(fmt.Sprintf("\n…and %d more missed day(s)", extra)) + "\n")
	}
	return RenderBox("Catch-up", b.String())
}

// FormatReminder renders today's task of a goal.
func FormatReminder(resp *contract.ReminderResponse) string {
	g := resp.Goal
	if !resp.ShouldRemind {
		msg := fmt.Sprintf("Nothing pending for day %d of %s.", resp.DayNumber, g.DisplayID())
		if g.IsArchived() {
			msg = fmt.Sprintf("%s is archived.", g.DisplayID())
		}
		return StyleGreen.Render(msg) + "\n"
	}
	return FormatTaskCard(g, resp.Task) + "\n" +
		Dim(fmt.Sprintf("Set aside %s today. Mark it done with: skillpilot task done %s %d",
			resp.TimeRequired, g.DisplayID(), resp.Task.Day)) + "\n"
}

// FormatActivity renders recently completed days across goals. labels maps a
// goal ID to the label shown for it.
func FormatActivity(resp *contract.ActivityResponse, labels map[string]string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s since %s\n\n",
		StyleGreen.Render(fmt.Sprintf("%d day(s) completed", len(resp.Completed))),
		resp.Since.Format("Jan 2")))

	if len(resp.Completed) > 0 {
		rows := make([][]string, 0, len(resp.Completed))
		for _, t := range resp.Completed {
			label := labels[t.GoalID]
			if label == "" {
				label = Dim("--")
			}
			when := ""
			if t.CompletedAt != nil {
				when = t.CompletedAt.Local().Format("Mon Jan 2")
			}
			rows = append(rows, []string{label, fmt.Sprintf("%d", t.Day), Truncate(t.Topic, topicColumnWidth), Dim(when)})
		}
		b.WriteString(RenderTable([]string{"GOAL", "DAY", "TOPIC", "DONE"}, rows))
	}
	return RenderBox("Activity", b.String())
}
