package watchdesk

import "github.com/calibre47/watchdesk/date"

// GoalReport is the projection of the desk's profit toward a fixed annual
// target, anchored on an explicit reference date so the computation stays
// deterministic and testable.
type GoalReport struct {
	On     date.Date // reference date, the "today" of the projection
	Target Money

	CurrentYearProfit Money
	Progress          Percent // capped at 100, excess shows through Remaining
	Remaining         Money   // never negative
	DaysLeft          int     // whole days left in the year, reference day included, never negative
	DailyTarget       Money   // pace required from here to year end
	OnTrack           bool    // achieved daily pace >= pace required from day 1
}

// NewGoalReport computes progress toward the annual profit target for the
// calendar year of the reference date. Degenerate inputs (zero target, year
// end) produce clamped, well-defined figures rather than errors.
func NewGoalReport(inv *Inventory, target Money, on date.Date) *GoalReport {
	profit := inv.Zero()
	for _, w := range inv.Watches(SoldIn(on.Year())) {
		profit = profit.Add(w.NetProfit())
	}

	report := &GoalReport{
		On:                on,
		Target:            target,
		CurrentYearProfit: profit,
	}

	if target.IsPositive() {
		report.Progress = Percent(100 * profit.AsFloat() / target.AsFloat())
		if report.Progress > 100 {
			report.Progress = 100
		}
	}

	report.Remaining = target.Sub(profit)
	if report.Remaining.IsNegative() {
		report.Remaining = inv.Zero()
	}

	report.DaysLeft = on.EndOfYear().Sub(on) + 1 // the reference day still counts
	if report.DaysLeft < 0 {
		report.DaysLeft = 0
	}

	report.DailyTarget = report.Remaining.Div(max(1, report.DaysLeft))

	// On track compares the pace achieved since January 1 against the pace
	// that would have been required from day 1, not merely whether the
	// remaining daily quota looks small.
	elapsed := max(1, on.DayOfYear())
	achieved := profit.AsFloat() / float64(elapsed)
	required := target.AsFloat() / float64(on.DaysInYear())
	report.OnTrack = achieved >= required

	return report
}
