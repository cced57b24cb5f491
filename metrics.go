package watchdesk

import "github.com/calibre47/watchdesk/date"

// NetProfit derives the net profit of a single record:
//
//	priceSold - (purchasePrice + accessoriesCost) - fees - shipping - taxes
//
// with every absent term counting as zero. It is total: a record with no
// sale price yields its pure cost as a negative figure, so callers that
// aggregate "sold" profit must filter on Sold() themselves.
func (w Watch) NetProfit() Money {
	return w.Sale().
		Sub(w.Purchase().Add(w.AccessoriesCost)).
		Sub(w.Fees).
		Sub(w.Shipping).
		Sub(w.Taxes)
}

// HoldDays returns the number of whole days the watch was held, from inDate
// to dateSold. It returns false when either date is missing, or when the
// sale date is not strictly after the acquisition date: a non-positive hold
// is treated as invalid data (clock skew, data entry) rather than a valid
// zero-day flip.
func (w Watch) HoldDays() (int, bool) {
	return holdDays(w.InDate, w.DateSold)
}

func holdDays(in, sold date.Date) (int, bool) {
	if in.IsZero() || sold.IsZero() {
		return 0, false
	}
	if !sold.After(in) {
		return 0, false
	}
	return sold.Sub(in), true
}
