package watchdesk

import (
	"iter"
	"sort"

	"github.com/calibre47/watchdesk/date"
)

// Inventory is the snapshot collection of watch records the reports are
// computed from. Records are kept in acquisition order (stable, records
// without an inDate first), and all reads are non-mutating: reports take
// read-only views and allocate their outputs fresh.
type Inventory struct {
	watches  []Watch
	currency string
}

// NewInventory creates an empty inventory whose amounts are expressed in the
// given reporting currency.
func NewInventory(currency string) *Inventory {
	return &Inventory{currency: currency}
}

// Currency returns the reporting currency of the inventory.
func (inv *Inventory) Currency() string { return inv.currency }

// Len returns the number of records.
func (inv *Inventory) Len() int { return len(inv.watches) }

// Zero returns the zero amount in the inventory's reporting currency.
func (inv *Inventory) Zero() Money { return M(0, inv.currency) }

// Append adds records to the inventory and maintains the acquisition order.
func (inv *Inventory) Append(ws ...Watch) {
	inv.watches = append(inv.watches, ws...)
	// Stable, so records sharing an inDate keep their insertion order.
	sort.SliceStable(inv.watches, func(i, j int) bool {
		return inv.watches[i].InDate.Before(inv.watches[j].InDate)
	})
}

// Watch returns the record with this id.
func (inv *Inventory) Watch(id string) (Watch, bool) {
	for _, w := range inv.watches {
		if w.ID == id {
			return w, true
		}
	}
	return Watch{}, false
}

// Watches returns an iterator over records, restricted to those accepted by
// every given filter.
func (inv *Inventory) Watches(filters ...func(Watch) bool) iter.Seq2[int, Watch] {
	return func(yield func(int, Watch) bool) {
	next:
		for i, w := range inv.watches {
			for _, filter := range filters {
				if !filter(w) {
					continue next
				}
			}
			if !yield(i, w) {
				return
			}
		}
	}
}

// Sold is a filter accepting sold records.
func Sold(w Watch) bool { return w.Sold() }

// SoldIn returns a filter accepting records sold during the calendar year.
func SoldIn(year int) func(Watch) bool {
	return func(w Watch) bool {
		return w.Sold() && w.DateSold.Year() == year
	}
}

// ByBrand returns a filter accepting records of the given brand.
func ByBrand(brand string) func(Watch) bool {
	return func(w Watch) bool { return w.Brand == brand }
}

// SoldDuring returns a filter accepting records sold within the range.
func SoldDuring(r date.Range) func(Watch) bool {
	return func(w Watch) bool { return w.Sold() && r.Contains(w.DateSold) }
}
