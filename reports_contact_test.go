package watchdesk

import (
	"testing"

	"github.com/calibre47/watchdesk/date"
)

func TestContactReport_NetPosition(t *testing.T) {
	inv := NewInventory("USD")
	inv.Append(
		soldWatch("w1", 800, 1000, "2024-01-10", "2024-02-20"),
		Watch{ID: "w2", Brand: "Omega", PurchasePrice: USDp(600), InDate: date.MustParse("2024-03-01")},
	)
	book := NewContactBook()
	c := Contact{ID: "c1", Name: "Mara", Kind: KindTrader}
	book.Add(c)
	book.Assign(Association{ContactID: "c1", WatchID: "w1", Role: RoleBuyer})  // desk sold w1 to c1
	book.Assign(Association{ContactID: "c1", WatchID: "w2", Role: RoleSeller}) // desk bought w2 from c1

	report := NewContactReport(c, inv, book, date.MustParse("2024-06-30"))

	if report.Sales.Count != 1 || !report.Sales.Total.Equal(USD(1000)) {
		t.Errorf("sales = %+v", report.Sales)
	}
	if report.Purchases.Count != 1 || !report.Purchases.Total.Equal(USD(600)) {
		t.Errorf("purchases = %+v", report.Purchases)
	}
	if !report.Relationship.NetProfit.Equal(USD(400)) {
		t.Errorf("NetProfit = %s, want %s", report.Relationship.NetProfit, USD(400))
	}
	if !report.Relationship.TotalVolume.Equal(USD(1600)) {
		t.Errorf("TotalVolume = %s, want %s", report.Relationship.TotalVolume, USD(1600))
	}
}

func TestContactReport_RecentWindows(t *testing.T) {
	inv := NewInventory("USD")
	inv.Append(
		soldWatch("recent", 100, 200, "2024-01-01", "2024-06-01"),
		soldWatch("old", 100, 200, "2024-01-01", "2024-02-01"),
		Watch{ID: "boughtRecent", PurchasePrice: USDp(100), InDate: date.MustParse("2024-05-15")},
		Watch{ID: "boughtOld", PurchasePrice: USDp(100), InDate: date.MustParse("2023-11-15")},
	)
	book := NewContactBook()
	c := Contact{ID: "c1"}
	book.Add(c)
	book.Assign(Association{ContactID: "c1", WatchID: "recent", Role: RoleBuyer})
	book.Assign(Association{ContactID: "c1", WatchID: "old", Role: RoleBuyer})
	book.Assign(Association{ContactID: "c1", WatchID: "boughtRecent", Role: RoleSeller})
	book.Assign(Association{ContactID: "c1", WatchID: "boughtOld", Role: RoleSeller})

	// 90-day window anchored on June 30 reaches back to April 2.
	report := NewContactReport(c, inv, book, date.MustParse("2024-06-30"))

	if report.Sales.Recent != 1 {
		t.Errorf("Sales.Recent = %d, want 1", report.Sales.Recent)
	}
	if report.Purchases.Recent != 1 {
		t.Errorf("Purchases.Recent = %d, want 1", report.Purchases.Recent)
	}
	if report.Sales.Count != 2 || report.Purchases.Count != 2 {
		t.Errorf("window must not shrink the overall counts: %+v", report)
	}
}

func TestContactReport_FavoriteBrand(t *testing.T) {
	inv := NewInventory("USD")
	inv.Append(
		Watch{ID: "w1", Brand: "Omega", PurchasePrice: USDp(1), InDate: date.MustParse("2024-01-01")},
		Watch{ID: "w2", Brand: "Rolex", PurchasePrice: USDp(1), InDate: date.MustParse("2024-01-02")},
		Watch{ID: "w3", Brand: "Rolex", PurchasePrice: USDp(1), InDate: date.MustParse("2024-01-03")},
		soldWatch("w4", 1, 2, "2024-01-04", "2024-02-01"), // Rolex (helper brand)
	)
	book := NewContactBook()
	c := Contact{ID: "c1"}
	book.Add(c)
	book.Assign(Association{ContactID: "c1", WatchID: "w1", Role: RoleSeller})
	book.Assign(Association{ContactID: "c1", WatchID: "w2", Role: RoleSeller})
	book.Assign(Association{ContactID: "c1", WatchID: "w3", Role: RoleSeller})
	book.Assign(Association{ContactID: "c1", WatchID: "w4", Role: RoleBuyer})

	report := NewContactReport(c, inv, book, date.MustParse("2024-06-30"))
	if report.Relationship.FavoriteBrand != "Rolex" {
		t.Errorf("FavoriteBrand = %q, want Rolex", report.Relationship.FavoriteBrand)
	}
}

func TestContactReport_FavoriteBrandTieFirstEncountered(t *testing.T) {
	inv := NewInventory("USD")
	inv.Append(
		Watch{ID: "w1", Brand: "Omega", PurchasePrice: USDp(1), InDate: date.MustParse("2024-01-01")},
		Watch{ID: "w2", Brand: "Tudor", PurchasePrice: USDp(1), InDate: date.MustParse("2024-01-02")},
	)
	book := NewContactBook()
	c := Contact{ID: "c1"}
	book.Add(c)
	book.Assign(Association{ContactID: "c1", WatchID: "w1", Role: RoleSeller})
	book.Assign(Association{ContactID: "c1", WatchID: "w2", Role: RoleSeller})

	report := NewContactReport(c, inv, book, date.MustParse("2024-06-30"))
	if report.Relationship.FavoriteBrand != "Omega" {
		t.Errorf("FavoriteBrand = %q, want first-encountered Omega on tie", report.Relationship.FavoriteBrand)
	}
}

func TestContactReport_UnknownWatchIgnored(t *testing.T) {
	inv := NewInventory("USD")
	book := NewContactBook()
	c := Contact{ID: "c1"}
	book.Add(c)
	book.Assign(Association{ContactID: "c1", WatchID: "ghost", Role: RoleBuyer})

	report := NewContactReport(c, inv, book, date.MustParse("2024-06-30"))
	if report.Sales.Count != 0 || !report.Sales.Average.IsZero() {
		t.Errorf("dangling association must be ignored: %+v", report)
	}
}

func TestContactBook_AssignOverwrites(t *testing.T) {
	book := NewContactBook()
	if displaced := book.Assign(Association{ContactID: "c1", WatchID: "w1", Role: RoleBuyer}); displaced != "" {
		t.Errorf("first assignment displaced %q, want none", displaced)
	}
	// same contact again: no displacement
	if displaced := book.Assign(Association{ContactID: "c1", WatchID: "w1", Role: RoleBuyer}); displaced != "" {
		t.Errorf("re-assignment of same contact displaced %q, want none", displaced)
	}
	// another contact takes the buyer slot
	if displaced := book.Assign(Association{ContactID: "c2", WatchID: "w1", Role: RoleBuyer}); displaced != "c1" {
		t.Errorf("displaced = %q, want c1", displaced)
	}
	// the seller slot is independent
	if displaced := book.Assign(Association{ContactID: "c1", WatchID: "w1", Role: RoleSeller}); displaced != "" {
		t.Errorf("seller slot displaced %q, want none", displaced)
	}

	var buyers int
	for a := range book.AllAssociations() {
		if a.WatchID == "w1" && a.Role == RoleBuyer {
			buyers++
			if a.ContactID != "c2" {
				t.Errorf("buyer slot holder = %s, want c2", a.ContactID)
			}
		}
	}
	if buyers != 1 {
		t.Errorf("watch must keep a single buyer association, got %d", buyers)
	}
}
