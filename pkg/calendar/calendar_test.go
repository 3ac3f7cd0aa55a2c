package calendar

import (
	"testing"
	"time"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"january", 2024, time.January, 31},
		{"february leap", 2024, time.February, 29},
		{"february non-leap", 2023, time.February, 28},
		{"april", 2024, time.April, 30},
		{"december", 2024, time.December, 31},
		{"century non-leap", 1900, time.February, 28},
		{"quad-century leap", 2000, time.February, 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysIn(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	mid := Date(2024, time.February, 14)

	if got, want := MonthStart(mid), Date(2024, time.February, 1); !got.Equal(want) {
		t.Errorf("MonthStart = %v, want %v", got, want)
	}
	if got, want := MonthEnd(mid), Date(2024, time.February, 29); !got.Equal(want) {
		t.Errorf("MonthEnd = %v, want %v", got, want)
	}
	if got, want := NextMonth(mid), Date(2024, time.March, 1); !got.Equal(want) {
		t.Errorf("NextMonth = %v, want %v", got, want)
	}

	// Year rollover
	if got, want := NextMonth(Date(2024, time.December, 31)), Date(2025, time.January, 1); !got.Equal(want) {
		t.Errorf("NextMonth(december) = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", Date(2024, time.January, 1), Date(2024, time.January, 1), 0},
		{"one week", Date(2024, time.January, 1), Date(2024, time.January, 8), 7},
		{"across month", Date(2024, time.January, 31), Date(2024, time.February, 2), 2},
		{"across year", Date(2023, time.December, 30), Date(2024, time.January, 2), 3},
		{"negative", Date(2024, time.January, 8), Date(2024, time.January, 1), -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSkipWeekend(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday unchanged", Date(2024, time.January, 1), Date(2024, time.January, 1)},
		{"friday unchanged", Date(2024, time.January, 5), Date(2024, time.January, 5)},
		{"saturday to monday", Date(2024, time.January, 6), Date(2024, time.January, 8)},
		{"sunday to monday", Date(2024, time.January, 7), Date(2024, time.January, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SkipWeekend(tt.in); !got.Equal(tt.want) {
				t.Errorf("SkipWeekend(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestShadowDuration(t *testing.T) {
	// 2024-01-01 is a Monday.
	mon := Date(2024, time.January, 1)

	tests := []struct {
		name  string
		start time.Time
		days  int
		want  int
	}{
		{"ends saturday", mon, 5, 7},  // exclusive end Jan 6 (Sat) -> Mon
		{"ends sunday", mon, 6, 7},    // exclusive end Jan 7 (Sun) -> Mon
		{"ends weekday", mon, 4, 4},   // exclusive end Jan 5 (Fri)
		{"full week", mon, 7, 7},      // exclusive end Jan 8 (Mon)
		{"two weeks", mon, 12, 14},    // exclusive end Jan 13 (Sat)
		{"zero days", mon, 0, 0},      // ends where it starts
		{"tuesday start", Date(2024, time.January, 2), 4, 6}, // exclusive end Jan 6 (Sat)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShadowDuration(tt.start, tt.days); got != tt.want {
				t.Errorf("ShadowDuration(%v, %d) = %d, want %d", tt.start, tt.days, got, tt.want)
			}
		})
	}
}

func TestMonthStarts(t *testing.T) {
	got := MonthStarts(Date(2023, time.November, 12), Date(2024, time.February, 3))
	want := []time.Time{
		Date(2023, time.November, 1),
		Date(2023, time.December, 1),
		Date(2024, time.January, 1),
		Date(2024, time.February, 1),
	}

	if len(got) != len(want) {
		t.Fatalf("MonthStarts returned %d months, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("MonthStarts[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// Single month span
	single := MonthStarts(Date(2024, time.June, 5), Date(2024, time.June, 25))
	if len(single) != 1 || !single[0].Equal(Date(2024, time.June, 1)) {
		t.Errorf("MonthStarts(single month) = %v, want [2024-06-01]", single)
	}
}
