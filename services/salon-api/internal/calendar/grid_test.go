package calendar

import (
	"testing"
	"time"
)

func TestMonthGridLeapFebruary(t *testing.T) {
	ref := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	grid := MonthGrid(ref, time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))

	if len(grid.Cells) != 29 {
		t.Fatalf("leap February has %d cells, want 29", len(grid.Cells))
	}
	// 2024-02-01 is a Thursday
	if grid.LeadingBlanks != 4 {
		t.Fatalf("leading blanks = %d, want 4", grid.LeadingBlanks)
	}
	if grid.Cells[0].Date != "2024-02-01" {
		t.Fatalf("first cell date = %s", grid.Cells[0].Date)
	}
	if !grid.Cells[9].Today {
		t.Fatalf("day 10 not marked today")
	}
}

func TestMonthGridSundayStart(t *testing.T) {
	// December 2024 starts on a Sunday and has 31 days
	ref := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	grid := MonthGrid(ref, time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC))

	if len(grid.Cells) != 31 {
		t.Fatalf("December has %d cells, want 31", len(grid.Cells))
	}
	if grid.LeadingBlanks != 0 {
		t.Fatalf("leading blanks = %d, want 0", grid.LeadingBlanks)
	}
	for _, cell := range grid.Cells {
		if cell.Today {
			t.Fatalf("today marked in a different month: %+v", cell)
		}
	}
}

func TestDateStringZeroPads(t *testing.T) {
	if got := DateString(2025, time.March, 5); got != "2025-03-05" {
		t.Fatalf("DateString = %s", got)
	}
}

func TestNavigate(t *testing.T) {
	ref := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	next := Navigate(ref, GranularityMonth, 1)
	if next.Year() != 2025 || next.Month() != time.February {
		t.Fatalf("month +1 from Jan 31 landed on %v", next)
	}
	prev := Navigate(ref, GranularityMonth, -1)
	if prev.Month() != time.December || prev.Year() != 2024 {
		t.Fatalf("month -1 from Jan landed on %v", prev)
	}

	week := Navigate(ref, GranularityWeek, 1)
	if week.Day() != 7 || week.Month() != time.February {
		t.Fatalf("week +1 landed on %v", week)
	}

	day := Navigate(ref, GranularityDay, -1)
	if day.Day() != 30 || day.Month() != time.January {
		t.Fatalf("day -1 landed on %v", day)
	}
}
