package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpilot/internal/roadmap"
)

// FormatCatalogList renders every curriculum key with its size.
func FormatCatalogList(c *roadmap.Catalog) string {
	keys := append(c.Keys(), roadmap.DefaultKey)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		entries, _ := c.Curriculum(k)
		matchOn := k
		if f := strings.Fields(k); len(f) > 0 {
			matchOn = f[0]
		}
		if k == roadmap.DefaultKey {
			matchOn = Dim("anything else")
		}
		rows = append(rows, []string{
			Bold(k),
			matchOn,
			fmt.Sprintf("%d", len(entries)),
			fmt.Sprintf("%d", c.TopicCount(k)),
		})
	}
	return RenderBox("Catalog", RenderTable([]string{"KEY", "MATCHES", "CATEGORIES", "TOPICS"}, rows))
}

// FormatCurriculum renders the categories and topics of one curriculum.
func FormatCurriculum(key string, entries []roadmap.CatalogEntry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StylePurple.Render(e.Category) + Dim(fmt.Sprintf(" (%d)", len(e.Topics))) + "\n")
		for _, t := range e.Topics {
			b.WriteString("  " + Dim("·") + " " + t + "\n")
		}
	}
	return RenderBox(key, strings.TrimRight(b.String(), "\n"))
}
