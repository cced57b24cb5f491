package watchdesk

import "github.com/calibre47/watchdesk/date"

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// USDp is a helper for tests to create an optional dollar amount
func USDp(v float64) *Money {
	m := USD(v)
	return &m
}

// soldWatch builds a minimal sold record for tests.
func soldWatch(id string, purchase, sale float64, in, out string) Watch {
	return Watch{
		ID:            id,
		Brand:         "Rolex",
		Model:         "Submariner",
		PurchasePrice: USDp(purchase),
		InDate:        date.MustParse(in),
		PriceSold:     USDp(sale),
		DateSold:      date.MustParse(out),
	}
}
