package watchdesk

import (
	"github.com/calibre47/watchdesk/date"
)

// Watch represents one inventory item with its full lifecycle: identity,
// acquisition, and (once sold) disposition.
//
// Optional fields use explicit optional encodings, normalized once at the
// decoding boundary: an absent amount is a nil pointer (treated as zero in
// arithmetic), an absent date is the zero date.Date (dependent figures are
// reported as not computable, never defaulted to an epoch).
type Watch struct {
	ID        string
	Brand     string
	Model     string
	Reference string

	// acquisition
	PurchasePrice   *Money // nil when unknown
	AccessoriesCost Money
	InDate          date.Date // zero when unknown

	// disposition. The record is "sold" iff both DateSold and PriceSold are present.
	PriceSold *Money
	DateSold  date.Date
	Fees      Money
	Shipping  Money
	Taxes     Money

	// counterparty references, optional foreign keys into the contact book.
	SellerID string
	BuyerID  string
}

// Sold reports whether the watch has been disposed of: both a sale date and
// a sale price are present. Unsold records contribute nothing to profit or
// leaderboard aggregates but still count on the purchase side of contact
// metrics.
func (w Watch) Sold() bool { return w.PriceSold != nil && !w.DateSold.IsZero() }

// Purchase returns the purchase price, zero when unknown.
func (w Watch) Purchase() Money { return deref(w.PurchasePrice) }

// Sale returns the sale price, zero when unknown.
func (w Watch) Sale() Money { return deref(w.PriceSold) }

// Label returns a short human identification of the watch.
func (w Watch) Label() string {
	s := w.Brand
	if w.Model != "" {
		s += " " + w.Model
	}
	if w.Reference != "" {
		s += " (" + w.Reference + ")"
	}
	return s
}

func deref(m *Money) Money {
	if m == nil {
		return Money{}
	}
	return *m
}

// MarshalJSON writes the watch in its canonical snapshot form: amounts as
// plain numbers, dates as ISO-8601 strings, absent fields omitted.
func (w Watch) MarshalJSON() ([]byte, error) {
	var o jsonObjectWriter
	o.Append("id", w.ID)
	o.Optional("brand", w.Brand)
	o.Optional("model", w.Model)
	o.Optional("reference", w.Reference)
	if w.PurchasePrice != nil {
		o.Append("purchasePrice", w.PurchasePrice.value)
	}
	if !w.AccessoriesCost.IsZero() {
		o.Append("accessoriesCost", w.AccessoriesCost.value)
	}
	o.Optional("inDate", w.InDate)
	if w.PriceSold != nil {
		o.Append("priceSold", w.PriceSold.value)
	}
	o.Optional("dateSold", w.DateSold)
	if !w.Fees.IsZero() {
		o.Append("fees", w.Fees.value)
	}
	if !w.Shipping.IsZero() {
		o.Append("shipping", w.Shipping.value)
	}
	if !w.Taxes.IsZero() {
		o.Append("taxes", w.Taxes.value)
	}
	o.Optional("sellerContactId", w.SellerID)
	o.Optional("buyerContactId", w.BuyerID)
	return o.MarshalJSON()
}
