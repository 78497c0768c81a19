package console

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
)

// FilterAll is the identity professional filter.
const FilterAll = "all"

// FilterByProfessional keeps rows assigned to the given professional id,
// preserving relative order. "all" returns every row unchanged; the empty
// id matches unassigned rows.
func FilterByProfessional(appointments []model.Appointment, id string) []model.Appointment {
	if id == FilterAll {
		return appointments
	}
	out := make([]model.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.Professional.ID() == id {
			out = append(out, appt)
		}
	}
	return out
}

// AppointmentsForDay binds rows to a calendar cell by literal string
// equality against the cell's YYYY-MM-DD date. Unscheduled rows never match.
func AppointmentsForDay(appointments []model.Appointment, date string) []model.Appointment {
	out := make([]model.Appointment, 0)
	for _, appt := range appointments {
		if appt.Day.Scheduled() && appt.Day.String() == date {
			out = append(out, appt)
		}
	}
	return out
}

// RecentFirst orders rows newest-created first for the flat list view.
func RecentFirst(appointments []model.Appointment) []model.Appointment {
	out := make([]model.Appointment, len(appointments))
	copy(out, appointments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// HistoryQuery narrows the history view. Zero values mean "no restriction".
type HistoryQuery struct {
	Search string
	Status model.Status
	Desc   bool
}

// History filters by case-insensitive client name/phone substring and exact
// status, then orders by day and time with unscheduled rows last. Desc flips
// the day/time ordering.
func History(appointments []model.Appointment, q HistoryQuery) []model.Appointment {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]model.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if q.Status != "" && appt.Status != q.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(appt.ClientName), search) &&
			!strings.Contains(appt.ClientPhone, search) {
			continue
		}
		out = append(out, appt)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Day.Scheduled() != b.Day.Scheduled() {
			return a.Day.Scheduled()
		}
		if q.Desc {
			a, b = b, a
		}
		if a.Day.String() != b.Day.String() {
			return a.Day.String() < b.Day.String()
		}
		return a.Time.String() < b.Time.String()
	})
	return out
}

// MonthSales is one row of the yearly sales report.
type MonthSales struct {
	Month   int `json:"month"`
	Revenue int `json:"revenue"`
	Count   int `json:"count"`
}

// SalesReport aggregates confirmed revenue for one year, month by month.
type SalesReport struct {
	Year      int          `json:"year"`
	Months    []MonthSales `json:"months"`
	Revenue   int          `json:"revenue"`
	Count     int          `json:"count"`
	AvgTicket int          `json:"avg_ticket"`
}

// SalesYears lists the distinct years present in scheduled appointment
// dates, newest first. An empty ledger yields the current year so the
// report always has a selectable year.
func SalesYears(appointments []model.Appointment, now time.Time) []int {
	seen := make(map[int]bool)
	for _, appt := range appointments {
		if year, _, ok := yearMonth(appt.Day); ok {
			seen[year] = true
		}
	}
	if len(seen) == 0 {
		return []int{now.Year()}
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// Sales groups confirmed rows by the month of their scheduled day and sums
// service prices per month for the given year. Unscheduled rows never
// contribute; dangling service ids count as zero-revenue line items.
func Sales(appointments []model.Appointment, services []model.Service, year int) SalesReport {
	priceByID := make(map[string]int, len(services))
	for _, svc := range services {
		priceByID[svc.ID] = svc.Price
	}
	report := SalesReport{Year: year, Months: make([]MonthSales, 12)}
	for i := range report.Months {
		report.Months[i].Month = i + 1
	}
	for _, appt := range appointments {
		if appt.Status != model.StatusConfirmed {
			continue
		}
		y, m, ok := yearMonth(appt.Day)
		if !ok || y != year || m < 1 || m > 12 {
			continue
		}
		row := &report.Months[m-1]
		row.Revenue += priceByID[appt.ServiceID]
		row.Count++
	}
	for _, row := range report.Months {
		report.Revenue += row.Revenue
		report.Count += row.Count
	}
	if report.Count > 0 {
		report.AvgTicket = report.Revenue / report.Count
	}
	return report
}

// yearMonth pulls the numeric year and month out of a scheduled day's
// literal YYYY-MM-DD string.
func yearMonth(day model.DayRef) (int, int, bool) {
	if !day.Scheduled() {
		return 0, 0, false
	}
	parts := strings.SplitN(day.String(), "-", 3)
	if len(parts) != 3 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}

// Stats is the admin dashboard header.
type Stats struct {
	Total        int `json:"total"`
	Pending      int `json:"pending"`
	RemindersDue int `json:"reminders_due"`
	Revenue      int `json:"revenue"`
}

// Summarize counts the ledger for the dashboard. Revenue sums the price of
// every confirmed row's service; dangling service ids contribute zero.
// remindersDue is computed by the reminder dispatcher and passed through.
func Summarize(appointments []model.Appointment, services []model.Service, remindersDue int) Stats {
	priceByID := make(map[string]int, len(services))
	for _, svc := range services {
		priceByID[svc.ID] = svc.Price
	}
	stats := Stats{Total: len(appointments), RemindersDue: remindersDue}
	for _, appt := range appointments {
		switch appt.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusConfirmed:
			stats.Revenue += priceByID[appt.ServiceID]
		}
	}
	return stats
}
