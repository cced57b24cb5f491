package watchdesk

import "sort"

// MonthlyBucket aggregates the sold records of one calendar month.
type MonthlyBucket struct {
	Period string // "YYYY-MM" of the sale dates
	Profit Money
	Count  int
}

// MonthlyReport is the month-by-month profit aggregation of the inventory.
//
// Only "sellable and sold" records participate: dateSold, priceSold AND
// purchasePrice all present. Months with no qualifying sale are simply
// absent, callers must not assume contiguous coverage.
type MonthlyReport struct {
	Currency string
	Buckets  []MonthlyBucket
}

// NewMonthlyReport aggregates sold records by the calendar month of their
// sale date, ascending. Buckets are built fresh on every call from the
// current record set.
func NewMonthlyReport(inv *Inventory) *MonthlyReport {
	type bucket struct {
		profit Money
		count  int
	}
	buckets := make(map[string]bucket)

	for _, w := range inv.Watches(Sold) {
		if w.PurchasePrice == nil {
			// Sold but not sellable: without a purchase price the profit
			// figure would be meaningless, so the record joins no bucket.
			continue
		}
		key := w.DateSold.MonthKey()
		b := buckets[key]
		b.profit = b.profit.Add(w.NetProfit())
		b.count++
		buckets[key] = b
	}

	report := &MonthlyReport{Currency: inv.Currency()}
	for key, b := range buckets {
		report.Buckets = append(report.Buckets, MonthlyBucket{Period: key, Profit: b.profit, Count: b.count})
	}
	// Lexicographic order is chronological order for zero-padded "YYYY-MM" keys.
	sort.Slice(report.Buckets, func(i, j int) bool {
		return report.Buckets[i].Period < report.Buckets[j].Period
	})
	return report
}

// TotalProfit sums the profit over all buckets.
func (r *MonthlyReport) TotalProfit() Money {
	total := M(0, r.Currency)
	for _, b := range r.Buckets {
		total = total.Add(b.Profit)
	}
	return total
}

// TotalCount sums the sold count over all buckets.
func (r *MonthlyReport) TotalCount() int {
	var n int
	for _, b := range r.Buckets {
		n += b.Count
	}
	return n
}
