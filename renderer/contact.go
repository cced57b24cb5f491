package renderer

import (
	"fmt"
	"strings"

	"github.com/calibre47/watchdesk"
)

// ContactMarkdown renders the relationship summary of one contact.
func ContactMarkdown(r *watchdesk.ContactReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", nonEmpty(r.Contact.Name, r.Contact.ID), r.Contact.Kind.Label())
	fmt.Fprintf(&b, "*As of %s*\n\n", r.On)

	t := newTable(&b, "", "Count", "Total", "Average", "Last 90d")
	t.row("Sold to them", fmt.Sprintf("%d", r.Sales.Count), r.Sales.Total.String(), r.Sales.Average.String(), fmt.Sprintf("%d", r.Sales.Recent))
	t.row("Bought from them", fmt.Sprintf("%d", r.Purchases.Count), r.Purchases.Total.String(), r.Purchases.Average.String(), fmt.Sprintf("%d", r.Purchases.Recent))
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "- Total volume: %s\n", r.Relationship.TotalVolume)
	fmt.Fprintf(&b, "- Net position: %s\n", r.Relationship.NetProfit.SignedString())
	if r.Relationship.FavoriteBrand != "" {
		fmt.Fprintf(&b, "- Favorite brand: %s\n", r.Relationship.FavoriteBrand)
	}
	return b.String()
}
