package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a completion percentage (0-100) as a bar like
// [████░░░░]  45%. Green above 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	frac := min(max(pct/100, 0), 1)
	width = max(width, 2)

	filled := min(int(frac*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if frac < 0.33 {
		style = StyleRed
	} else if frac < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), frac*100)
}
