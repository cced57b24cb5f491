package watchdesk

import (
	"encoding/json"

	"github.com/calibre47/watchdesk/date"
	"github.com/shopspring/decimal"
)

// This file is the record normalizer: the single place where raw, optional,
// possibly malformed fields become values safe for arithmetic. Absent or
// malformed amounts normalize to absent (zero in arithmetic), absent or
// unparseable dates to the zero date. Normalization never fails: degenerate
// input produces a degenerate value, not an error.

// normalizeAmount interprets a raw JSON value as a monetary amount in the
// given currency. The boolean reports presence: null, missing, non-numeric,
// or otherwise malformed values are absent.
func normalizeAmount(raw json.RawMessage, currency string) (Money, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return Money{}, false
	}
	var d decimal.Decimal
	// decimal accepts both bare numbers and numeric strings.
	if err := json.Unmarshal(raw, &d); err != nil {
		return Money{}, false
	}
	return M(d, currency), true
}

// normalizeDate interprets a raw JSON value as an ISO-8601 calendar date.
// Absent or unparseable values yield the zero date, never an epoch default.
func normalizeDate(raw json.RawMessage) date.Date {
	if len(raw) == 0 || string(raw) == "null" {
		return date.Date{}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return date.Date{}
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}
	}
	return d
}

// amountOf is normalizeAmount for already-decoded JSON values, as produced
// by jsonpath lookups on the dashboard export.
func amountOf(v any, currency string) (Money, bool) {
	switch x := v.(type) {
	case float64:
		return M(x, currency), true
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return Money{}, false
		}
		return M(d, currency), true
	case string:
		d, err := decimal.NewFromString(x)
		if err != nil {
			return Money{}, false
		}
		return M(d, currency), true
	default:
		return Money{}, false
	}
}

// dateOf is normalizeDate for already-decoded JSON values.
func dateOf(v any) date.Date {
	s, ok := v.(string)
	if !ok {
		return date.Date{}
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}
	}
	return d
}

// stringOf returns the value when it is a string, and "" otherwise.
func stringOf(v any) string {
	s, _ := v.(string)
	return s
}

// watchLine is the wire shape of one inventory snapshot line. Optional
// fields stay raw so the normalizer decides their fate.
type watchLine struct {
	ID              string          `json:"id"`
	Brand           string          `json:"brand"`
	Model           string          `json:"model"`
	Reference       string          `json:"reference"`
	PurchasePrice   json.RawMessage `json:"purchasePrice"`
	AccessoriesCost json.RawMessage `json:"accessoriesCost"`
	InDate          json.RawMessage `json:"inDate"`
	PriceSold       json.RawMessage `json:"priceSold"`
	DateSold        json.RawMessage `json:"dateSold"`
	Fees            json.RawMessage `json:"fees"`
	Shipping        json.RawMessage `json:"shipping"`
	Taxes           json.RawMessage `json:"taxes"`
	SellerID        string          `json:"sellerContactId"`
	BuyerID         string          `json:"buyerContactId"`
}

// normalize turns the wire line into a Watch safe for arithmetic.
func (l watchLine) normalize(currency string) Watch {
	w := Watch{
		ID:        l.ID,
		Brand:     l.Brand,
		Model:     l.Model,
		Reference: l.Reference,
		InDate:    normalizeDate(l.InDate),
		DateSold:  normalizeDate(l.DateSold),
		SellerID:  l.SellerID,
		BuyerID:   l.BuyerID,
	}
	if m, ok := normalizeAmount(l.PurchasePrice, currency); ok {
		w.PurchasePrice = &m
	}
	if m, ok := normalizeAmount(l.PriceSold, currency); ok {
		w.PriceSold = &m
	}
	w.AccessoriesCost, _ = normalizeAmount(l.AccessoriesCost, currency)
	w.Fees, _ = normalizeAmount(l.Fees, currency)
	w.Shipping, _ = normalizeAmount(l.Shipping, currency)
	w.Taxes, _ = normalizeAmount(l.Taxes, currency)
	return w
}
