package calendar

import (
	"fmt"
	"time"
)

// Granularity selects how far Navigate moves the reference date.
type Granularity string

const (
	GranularityMonth Granularity = "month"
	GranularityWeek  Granularity = "week"
	GranularityDay   Granularity = "day"
)

// DayCell is one date cell in the month grid.
type DayCell struct {
	Day   int    `json:"day"`
	Date  string `json:"date"`
	Today bool   `json:"today"`
}

// Grid is a 7-column month layout: LeadingBlanks empty cells (the weekday
// index of the 1st, Sunday = 0) followed by one cell per day of the month.
type Grid struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	LeadingBlanks int       `json:"leading_blanks"`
	Cells         []DayCell `json:"cells"`
}

// MonthGrid lays out the month containing ref. Today highlighting compares
// against now's day, month and year.
func MonthGrid(ref time.Time, now time.Time) Grid {
	year, month, _ := ref.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	grid := Grid{
		Year:          year,
		Month:         int(month),
		LeadingBlanks: int(first.Weekday()),
		Cells:         make([]DayCell, 0, daysInMonth),
	}
	nowYear, nowMonth, nowDay := now.Date()
	for day := 1; day <= daysInMonth; day++ {
		grid.Cells = append(grid.Cells, DayCell{
			Day:   day,
			Date:  DateString(year, month, day),
			Today: year == nowYear && month == nowMonth && day == nowDay,
		})
	}
	return grid
}

// DateString renders the zero-padded YYYY-MM-DD form used everywhere
// appointments bind to days. Binding is literal string equality, so padding
// here must match what the booking flow stores.
func DateString(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Navigate moves the reference date by delta steps of the given granularity:
// whole months, 7-day weeks or single days. Month moves pin to the 1st so a
// Jan 31 reference cannot skip February.
func Navigate(ref time.Time, g Granularity, delta int) time.Time {
	switch g {
	case GranularityMonth:
		year, month, _ := ref.Date()
		return time.Date(year, month, 1, 0, 0, 0, 0, ref.Location()).AddDate(0, delta, 0)
	case GranularityWeek:
		return ref.AddDate(0, 0, 7*delta)
	default:
		return ref.AddDate(0, 0, delta)
	}
}
