package date

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// Trailing returns the range covering the n days ending on (and including) d.
func Trailing(d Date, n int) Range {
	return Range{From: d.Add(1 - n), To: d}
}

// Year returns the range covering the whole calendar year of d.
func Year(d Date) Range {
	return Range{From: New(d.Year(), 1, 1), To: d.EndOfYear()}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int { return r.To.Sub(r.From) + 1 }
