package watchdesk

import "github.com/calibre47/watchdesk/date"

// recentWindowDays is the trailing window used to qualify recent activity
// with a contact.
const recentWindowDays = 90

// SideSummary aggregates one direction of business with a contact.
type SideSummary struct {
	Count   int
	Total   Money
	Average Money // zero when the side has no records
	Recent  int   // records whose anchor date falls in the trailing 90 days
}

// RelationshipSummary is the combined position with a contact.
type RelationshipSummary struct {
	TotalVolume   Money  // purchases total + sales total
	NetProfit     Money  // sales total - purchases total
	FavoriteBrand string // most traded brand across both sides, first encountered wins ties
}

// ContactReport summarizes the trading relationship with one contact, from
// the owning desk's perspective: buyer-role associations are the desk's
// sales to the contact, seller-role associations are its purchases from
// them.
type ContactReport struct {
	Contact      Contact
	On           date.Date // reference date anchoring the recency windows
	Purchases    SideSummary
	Sales        SideSummary
	Relationship RelationshipSummary
}

// NewContactReport computes the relationship summary of one contact over
// the inventory snapshot. Associations pointing at unknown records are
// ignored. Sales recency is anchored on the sale date, purchase recency on
// the acquisition date.
func NewContactReport(c Contact, inv *Inventory, book *ContactBook, on date.Date) *ContactReport {
	report := &ContactReport{Contact: c, On: on}
	window := date.Trailing(on, recentWindowDays)

	brandOrder := make([]string, 0, 8)
	brandCount := make(map[string]int)
	countBrand := func(brand string) {
		if brand == "" {
			return
		}
		if _, seen := brandCount[brand]; !seen {
			brandOrder = append(brandOrder, brand)
		}
		brandCount[brand]++
	}

	for a := range book.Associations(c.ID) {
		w, ok := inv.Watch(a.WatchID)
		if !ok {
			continue
		}
		countBrand(w.Brand)

		switch a.Role {
		case RoleBuyer:
			// The contact bought this watch: a sale for the desk.
			report.Sales.Count++
			report.Sales.Total = report.Sales.Total.Add(w.Sale())
			if !w.DateSold.IsZero() && window.Contains(w.DateSold) {
				report.Sales.Recent++
			}
		case RoleSeller:
			// The contact sold this watch to the desk: a purchase.
			report.Purchases.Count++
			report.Purchases.Total = report.Purchases.Total.Add(w.Purchase())
			if !w.InDate.IsZero() && window.Contains(w.InDate) {
				report.Purchases.Recent++
			}
		}
	}

	if report.Sales.Count > 0 {
		report.Sales.Average = report.Sales.Total.Div(report.Sales.Count)
	}
	if report.Purchases.Count > 0 {
		report.Purchases.Average = report.Purchases.Total.Div(report.Purchases.Count)
	}

	report.Relationship.TotalVolume = report.Sales.Total.Add(report.Purchases.Total)
	report.Relationship.NetProfit = report.Sales.Total.Sub(report.Purchases.Total)

	best := 0
	for _, brand := range brandOrder {
		if brandCount[brand] > best {
			best = brandCount[brand]
			report.Relationship.FavoriteBrand = brand
		}
	}
	return report
}
