package watchdesk

import (
	"reflect"
	"testing"

	"github.com/calibre47/watchdesk/date"
)

func TestDashboardReport(t *testing.T) {
	inv := NewInventory("USD")
	inv.Append(testInventory()...)
	on := date.MustParse("2024-07-02")

	report := NewDashboardReport(inv, USD(100000), on)

	if len(report.Rows) != inv.Len() {
		t.Fatalf("got %d rows, want %d", len(report.Rows), inv.Len())
	}
	for _, row := range report.Rows {
		if !row.NetProfit.Equal(row.Watch.NetProfit()) {
			t.Errorf("%s: annotated profit diverges from source fields", row.Watch.ID)
		}
		days, known := row.Watch.HoldDays()
		if row.HoldKnown != known || row.HoldDays != days {
			t.Errorf("%s: annotated hold time diverges from source fields", row.Watch.ID)
		}
	}
	if report.Monthly == nil || report.Goal == nil {
		t.Fatalf("dashboard must carry the monthly and goal reports")
	}
	if !report.Goal.CurrentYearProfit.Equal(USD(2500)) { // 1000 + 500 + 100 + 900
		t.Errorf("CurrentYearProfit = %s", report.Goal.CurrentYearProfit)
	}
}

// Recomputing on the same snapshot yields an identical report.
func TestDashboardReport_Idempotent(t *testing.T) {
	inv := NewInventory("USD")
	inv.Append(testInventory()...)
	on := date.MustParse("2024-07-02")

	a := NewDashboardReport(inv, USD(100000), on)
	b := NewDashboardReport(inv, USD(100000), on)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("recompute on an unchanged snapshot must be identical")
	}
}
