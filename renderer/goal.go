package renderer

import (
	"fmt"
	"strings"

	"github.com/calibre47/watchdesk"
)

// GoalMarkdown renders the annual goal projection.
func GoalMarkdown(r *watchdesk.GoalReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %d Goal: %s\n\n", r.On.Year(), r.Target)
	fmt.Fprintf(&b, "*As of %s*\n\n", r.On)

	t := newTable(&b, "Metric", "Value")
	t.row("Profit this year", r.CurrentYearProfit.SignedString())
	t.row("Progress", progressBar(r.Progress)+" "+r.Progress.String())
	t.row("Remaining", r.Remaining.String())
	t.row("Days left", fmt.Sprintf("%d", r.DaysLeft))
	t.row("Needed per day", r.DailyTarget.String())
	t.row("On track", checkmark(r.OnTrack))
	return b.String()
}

// progressBar draws a ten-slot unicode bar for a 0-100 percentage.
func progressBar(p watchdesk.Percent) string {
	filled := int(p) / 10
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
