package renderer

import (
	"fmt"
	"strings"

	"github.com/calibre47/watchdesk"
)

// DashboardMarkdown renders the full desk dashboard: per-record metrics,
// then the monthly and goal sections.
func DashboardMarkdown(r *watchdesk.DashboardReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Watch Desk on %s\n\n", r.On)

	if len(r.Rows) == 0 {
		fmt.Fprintln(&b, "*Inventory is empty.*")
	} else {
		t := newTable(&b, "Watch", "Status", "Net Profit", "Hold")
		for _, row := range r.Rows {
			status := "in stock"
			profit := "-"
			if row.Watch.Sold() {
				status = "sold"
				profit = row.NetProfit.SignedString()
			}
			hold := "-"
			if row.HoldKnown {
				hold = fmt.Sprintf("%dd", row.HoldDays)
			}
			t.row(nonEmpty(row.Watch.Label(), row.Watch.ID), status, profit, hold)
		}
		fmt.Fprintln(&b)
	}

	b.WriteString(MonthlyMarkdown(r.Monthly))
	fmt.Fprintln(&b)
	b.WriteString(GoalMarkdown(r.Goal))
	return b.String()
}
