package watchdesk

import "github.com/calibre47/watchdesk/date"

// WatchMetrics is one record annotated with its derived figures. The
// figures are recomputed from source fields on every pass, never stored.
type WatchMetrics struct {
	Watch     Watch
	NetProfit Money
	HoldDays  int
	HoldKnown bool // false when the hold time is not computable
}

// DashboardReport is the full recompute of the desk's analytics over one
// inventory snapshot: per-record metrics, the monthly aggregation, and the
// annual goal projection. It is a plain data structure, safe to serialize,
// and rebuilding it on the same snapshot yields an identical report.
type DashboardReport struct {
	On       date.Date
	Currency string
	Rows     []WatchMetrics
	Monthly  *MonthlyReport
	Goal     *GoalReport
}

// NewDashboardReport recomputes every derived figure from the snapshot.
// Callers invoke it whenever their record collection changes; there is no
// subscription machinery in the engine.
func NewDashboardReport(inv *Inventory, target Money, on date.Date) *DashboardReport {
	report := &DashboardReport{
		On:       on,
		Currency: inv.Currency(),
		Rows:     make([]WatchMetrics, 0, inv.Len()),
		Monthly:  NewMonthlyReport(inv),
		Goal:     NewGoalReport(inv, target, on),
	}
	for _, w := range inv.Watches() {
		row := WatchMetrics{Watch: w, NetProfit: w.NetProfit()}
		row.HoldDays, row.HoldKnown = w.HoldDays()
		report.Rows = append(report.Rows, row)
	}
	return report
}
