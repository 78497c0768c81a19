package console

import (
	"testing"
	"time"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
)

func ledgerFixture() []model.Appointment {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return []model.Appointment{
		{ID: "a1", ClientName: "Maria Souza", ClientPhone: "11999990001", ServiceID: "s1",
			Professional: model.ProfessionalID("p1"), Day: model.Day("2025-03-10"), Time: model.TimeOfDay("10:00"),
			Status: model.StatusConfirmed, CreatedAt: base},
		{ID: "a2", ClientName: "João Lima", ClientPhone: "11999990002", ServiceID: "s2",
			Professional: model.ProfessionalID("p2"), Day: model.Day("2025-03-10"), Time: model.TimeOfDay("09:00"),
			Status: model.StatusPending, CreatedAt: base.Add(time.Hour)},
		{ID: "a3", ClientName: "Maria Costa", ClientPhone: "11999990003", ServiceID: "s1",
			Professional: model.ProfessionalID("p1"), Day: model.Day("2025-03-12"), Time: model.TimeOfDay("14:00"),
			Status: model.StatusCancelled, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "a4", ClientName: "Pedro Dias", ClientPhone: "11999990004", ServiceID: "gone",
			Professional: model.AnyProfessional(), Day: model.Unscheduled(), Time: model.NoTime(),
			Status: model.StatusConfirmed, CreatedAt: base.Add(3 * time.Hour)},
	}
}

func TestFilterByProfessional(t *testing.T) {
	appts := ledgerFixture()

	all := FilterByProfessional(appts, FilterAll)
	if len(all) != len(appts) {
		t.Fatalf("all filter dropped rows: %d", len(all))
	}
	for i := range all {
		if all[i].ID != appts[i].ID {
			t.Fatalf("all filter reordered rows")
		}
	}

	p1 := FilterByProfessional(appts, "p1")
	if len(p1) != 2 || p1[0].ID != "a1" || p1[1].ID != "a3" {
		t.Fatalf("p1 filter wrong: %+v", p1)
	}

	unassigned := FilterByProfessional(appts, "")
	if len(unassigned) != 1 || unassigned[0].ID != "a4" {
		t.Fatalf("unassigned filter wrong: %+v", unassigned)
	}
}

func TestAppointmentsForDayUsesLiteralEquality(t *testing.T) {
	appts := ledgerFixture()

	day := AppointmentsForDay(appts, "2025-03-10")
	if len(day) != 2 {
		t.Fatalf("got %d rows for 2025-03-10, want 2", len(day))
	}
	// unpadded form must not match: binding is string equality
	if got := AppointmentsForDay(appts, "2025-3-10"); len(got) != 0 {
		t.Fatalf("unpadded date matched %d rows", len(got))
	}
	if got := AppointmentsForDay(appts, model.Undetermined); len(got) != 0 {
		t.Fatalf("sentinel date matched unscheduled rows")
	}
}

func TestRecentFirst(t *testing.T) {
	appts := ledgerFixture()
	recent := RecentFirst(appts)
	if recent[0].ID != "a4" || recent[len(recent)-1].ID != "a1" {
		t.Fatalf("list not reverse-chronological: %s ... %s", recent[0].ID, recent[len(recent)-1].ID)
	}
	if appts[0].ID != "a1" {
		t.Fatalf("input mutated")
	}
}

func TestHistorySearchAndStatus(t *testing.T) {
	appts := ledgerFixture()

	byName := History(appts, HistoryQuery{Search: "maria"})
	if len(byName) != 2 {
		t.Fatalf("name search got %d rows, want 2", len(byName))
	}
	if byName[0].ID != "a1" || byName[1].ID != "a3" {
		t.Fatalf("history not ordered by day: %+v", byName)
	}

	byPhone := History(appts, HistoryQuery{Search: "0002"})
	if len(byPhone) != 1 || byPhone[0].ID != "a2" {
		t.Fatalf("phone search wrong: %+v", byPhone)
	}

	desc := History(appts, HistoryQuery{Search: "maria", Desc: true})
	if desc[0].ID != "a3" || desc[1].ID != "a1" {
		t.Fatalf("descending order wrong: %+v", desc)
	}

	confirmed := History(appts, HistoryQuery{Status: model.StatusConfirmed})
	if len(confirmed) != 2 {
		t.Fatalf("status filter got %d rows, want 2", len(confirmed))
	}
	// unscheduled rows sort last
	if confirmed[len(confirmed)-1].ID != "a4" {
		t.Fatalf("unscheduled row not last: %+v", confirmed)
	}
}

func TestSummarize(t *testing.T) {
	appts := ledgerFixture()
	services := []model.Service{
		{ID: "s1", Price: 120},
		{ID: "s2", Price: 45},
	}
	stats := Summarize(appts, services, 3)
	if stats.Total != 4 {
		t.Fatalf("total = %d", stats.Total)
	}
	if stats.Pending != 1 {
		t.Fatalf("pending = %d", stats.Pending)
	}
	if stats.RemindersDue != 3 {
		t.Fatalf("reminders due = %d", stats.RemindersDue)
	}
	// a1 confirmed s1 = 120; a4 confirmed but dangling service = 0
	if stats.Revenue != 120 {
		t.Fatalf("revenue = %d, want 120", stats.Revenue)
	}
}

func TestSalesGroupsConfirmedRevenueByMonth(t *testing.T) {
	services := []model.Service{{ID: "s1", Price: 120}, {ID: "s2", Price: 45}}
	appts := append(ledgerFixture(), []model.Appointment{
		{ID: "a5", ClientName: "Rita Alves", ClientPhone: "11999990005", ServiceID: "s2",
			Professional: model.ProfessionalID("p1"), Day: model.Day("2025-07-02"), Time: model.TimeOfDay("11:00"),
			Status: model.StatusConfirmed},
		{ID: "a6", ClientName: "Rita Alves", ClientPhone: "11999990005", ServiceID: "s1",
			Professional: model.ProfessionalID("p1"), Day: model.Day("2024-07-02"), Time: model.TimeOfDay("11:00"),
			Status: model.StatusConfirmed},
	}...)

	report := Sales(appts, services, 2025)
	if report.Year != 2025 || len(report.Months) != 12 {
		t.Fatalf("report shape wrong: year=%d months=%d", report.Year, len(report.Months))
	}
	march := report.Months[2]
	if march.Month != 3 || march.Revenue != 120 || march.Count != 1 {
		t.Fatalf("march wrong: %+v", march)
	}
	july := report.Months[6]
	if july.Revenue != 45 || july.Count != 1 {
		t.Fatalf("july wrong: %+v", july)
	}
	// pending and cancelled rows, other years, and unscheduled rows stay out
	if report.Revenue != 165 || report.Count != 2 {
		t.Fatalf("totals wrong: revenue=%d count=%d", report.Revenue, report.Count)
	}
	if report.AvgTicket != 82 {
		t.Fatalf("avg ticket wrong: %d", report.AvgTicket)
	}
}

func TestSalesCountsDanglingServiceAtZero(t *testing.T) {
	appts := []model.Appointment{
		{ID: "a1", ServiceID: "gone", Day: model.Day("2025-05-01"),
			Status: model.StatusConfirmed},
	}
	report := Sales(appts, nil, 2025)
	may := report.Months[4]
	if may.Count != 1 || may.Revenue != 0 {
		t.Fatalf("dangling service row: %+v", may)
	}
	if report.AvgTicket != 0 {
		t.Fatalf("avg ticket for zero revenue: %d", report.AvgTicket)
	}
}

func TestSalesYears(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	years := SalesYears(ledgerFixture(), now)
	if len(years) != 1 || years[0] != 2025 {
		t.Fatalf("years from fixture: %v", years)
	}

	mixed := append(ledgerFixture(), model.Appointment{
		ID: "a9", ServiceID: "s1", Day: model.Day("2023-11-20"), Status: model.StatusPending,
	})
	years = SalesYears(mixed, now)
	if len(years) != 2 || years[0] != 2025 || years[1] != 2023 {
		t.Fatalf("years newest first: %v", years)
	}

	if got := SalesYears(nil, now); len(got) != 1 || got[0] != 2026 {
		t.Fatalf("empty ledger fallback: %v", got)
	}
}
