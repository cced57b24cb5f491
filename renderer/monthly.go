package renderer

import (
	"fmt"
	"strings"

	"github.com/calibre47/watchdesk"
)

// MonthlyMarkdown renders the month-by-month profit aggregation.
func MonthlyMarkdown(r *watchdesk.MonthlyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Monthly Profit (%s)\n\n", r.Currency)

	if len(r.Buckets) == 0 {
		fmt.Fprintln(&b, "*No completed sales yet.*")
		return b.String()
	}

	t := newTable(&b, "Month", "Sold", "Profit")
	for _, bucket := range r.Buckets {
		t.row(bucket.Period, fmt.Sprintf("%d", bucket.Count), bucket.Profit.SignedString())
	}
	t.row(bold("Total"), bold(fmt.Sprintf("%d", r.TotalCount())), bold(r.TotalProfit().SignedString()))
	return b.String()
}
