package watchdesk

import (
	"strings"
	"testing"
)

const exportFixture = `{
  "exportedAt": "2024-07-01T10:00:00Z",
  "watches": [
    {"id": "w1", "brand": "Rolex", "model": "GMT", "purchasePrice": 9000, "inDate": "2024-01-05", "priceSold": 11000, "dateSold": "2024-03-10"},
    {"brand": "Omega", "purchasePrice": "not a number", "inDate": "2024-02-01"}
  ],
  "contacts": [
    {"id": "c1", "name": "Mara", "kind": "trader"},
    {"name": "Unnamed"}
  ],
  "associations": [
    {"contactId": "c1", "watchId": "w1", "role": "buyer"},
    {"contactId": "c1", "watchId": "w1", "role": "courier"},
    {"watchId": "w1", "role": "seller"}
  ]
}`

func TestImportExport(t *testing.T) {
	inv, book, err := ImportExport(strings.NewReader(exportFixture), "USD")
	if err != nil {
		t.Fatalf("ImportExport() error = %v", err)
	}

	if inv.Len() != 2 {
		t.Fatalf("inventory Len() = %d, want 2", inv.Len())
	}
	w1, ok := inv.Watch("w1")
	if !ok || !w1.NetProfit().Equal(USD(2000)) {
		t.Errorf("w1 = %+v", w1)
	}

	// the id-less watch got a minted id, and its malformed price is absent
	var minted Watch
	for _, w := range inv.Watches(ByBrand("Omega")) {
		minted = w
	}
	if minted.ID == "" {
		t.Errorf("imported watch without id must receive one")
	}
	if minted.PurchasePrice != nil {
		t.Errorf("malformed purchasePrice must be absent: %+v", minted.PurchasePrice)
	}

	if book.Len() != 2 {
		t.Fatalf("book Len() = %d, want 2", book.Len())
	}

	// only the one well-formed association survives
	var kept int
	for range book.AllAssociations() {
		kept++
	}
	if kept != 1 {
		t.Errorf("kept %d associations, want 1", kept)
	}
}

const leaderboardFixture = `{
  "leaderboard": {
    "season": "2024",
    "participants": [
      {"id": "p1", "name": "Ana", "watches": [
        {"id": "a1", "purchasePrice": 100, "priceSold": 600, "inDate": "2024-01-01", "dateSold": "2024-02-01"}
      ]},
      {"id": "p2", "name": "Ben", "watches": []}
    ]
  }
}`

func TestImportLeaderboard(t *testing.T) {
	season, participants, err := ImportLeaderboard(strings.NewReader(leaderboardFixture), "USD")
	if err != nil {
		t.Fatalf("ImportLeaderboard() error = %v", err)
	}
	if season != "2024" {
		t.Errorf("season = %q, want 2024", season)
	}
	if len(participants) != 2 {
		t.Fatalf("got %d participants, want 2", len(participants))
	}

	report := NewLeaderboardReport(participants, "p1", season)
	if report.UserRank != 1 {
		t.Errorf("UserRank = %d, want 1", report.UserRank)
	}
	if !report.Entries[0].TotalProfit.Equal(USD(500)) {
		t.Errorf("TotalProfit = %s, want %s", report.Entries[0].TotalProfit, USD(500))
	}
}

func TestImportExport_EmptySections(t *testing.T) {
	inv, book, err := ImportExport(strings.NewReader(`{"watches": []}`), "USD")
	if err != nil {
		t.Fatalf("ImportExport() error = %v", err)
	}
	if inv.Len() != 0 || book.Len() != 0 {
		t.Errorf("empty export must yield empty collections")
	}
}

func TestImportExport_BadDocument(t *testing.T) {
	if _, _, err := ImportExport(strings.NewReader("nope"), "USD"); err == nil {
		t.Errorf("expected error on a non-JSON document")
	}
}
