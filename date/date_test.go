package date

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remains true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestSub(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2024-01-01", "2024-01-31", 30},
		{"2024-01-31", "2024-01-01", -30},
		{"2024-02-28", "2024-03-01", 2}, // leap year
		{"2025-02-28", "2025-03-01", 1},
		{"2025-06-10", "2025-06-10", 0},
	}
	for _, tc := range tests {
		got := MustParse(tc.to).Sub(MustParse(tc.from))
		if got != tc.want {
			t.Errorf("%s.Sub(%s) = %d, want %d", tc.to, tc.from, got, tc.want)
		}
	}
}

func TestParse_Lenient(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d != New(2025, time.July, 1) {
		t.Errorf("Parse() = %v, want 2025-07-01", d)
	}
	if _, err := Parse("not-a-date"); err == nil {
		t.Errorf("Parse() expected error on malformed input")
	}
}

func TestMonthKey(t *testing.T) {
	if got := New(2025, time.March, 9).MonthKey(); got != "2025-03" {
		t.Errorf("MonthKey() = %q, want %q", got, "2025-03")
	}
}

func TestYearBoundaries(t *testing.T) {
	d := New(2024, time.July, 2)
	if got := d.DayOfYear(); got != 184 { // 2024 is a leap year
		t.Errorf("DayOfYear() = %d, want 184", got)
	}
	if got := d.DaysInYear(); got != 366 {
		t.Errorf("DaysInYear() = %d, want 366", got)
	}
	if got := d.EndOfYear(); got != New(2024, time.December, 31) {
		t.Errorf("EndOfYear() = %v", got)
	}

	d = New(2025, time.July, 2)
	if got := d.DayOfYear(); got != 183 {
		t.Errorf("DayOfYear() = %d, want 183", got)
	}
	if got := d.DaysInYear(); got != 365 {
		t.Errorf("DaysInYear() = %d, want 365", got)
	}
}

func TestTrailingRange(t *testing.T) {
	on := New(2025, time.June, 30)
	win := Trailing(on, 90)
	if !win.Contains(on) {
		t.Errorf("trailing window must contain anchor day")
	}
	if !win.Contains(on.Add(-89)) {
		t.Errorf("trailing window must contain its oldest day")
	}
	if win.Contains(on.Add(-90)) {
		t.Errorf("trailing window must not contain the day before its oldest day")
	}
	if win.Days() != 90 {
		t.Errorf("Days() = %d, want 90", win.Days())
	}
}

func TestZeroDate(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Errorf("zero value must report IsZero")
	}
	if MustParse("2025-01-01").IsZero() {
		t.Errorf("parsed date must not report IsZero")
	}
}
