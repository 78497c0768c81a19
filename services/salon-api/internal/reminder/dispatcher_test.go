package reminder

import (
	"testing"
	"time"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
)

func TestDueWindow(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC)
	base := model.Appointment{
		ID: "a1", ClientName: "Maria", ClientPhone: "119", ServiceID: "s1",
		Day: model.Day("2024-06-11"), Time: model.TimeOfDay("10:00"),
		Status: model.StatusConfirmed,
	}

	if got := Due([]model.Appointment{base}, now); len(got) != 1 || got[0].ID != "a1" {
		t.Fatalf("confirmed tomorrow not due: %+v", got)
	}

	pending := base
	pending.Status = model.StatusPending
	if got := Due([]model.Appointment{pending}, now); len(got) != 0 {
		t.Fatalf("pending row due: %+v", got)
	}

	reminded := base
	reminded.ReminderSent = true
	if got := Due([]model.Appointment{reminded}, now); len(got) != 0 {
		t.Fatalf("already-reminded row due: %+v", got)
	}

	today := base
	today.Day = model.Day("2024-06-10")
	if got := Due([]model.Appointment{today}, now); len(got) != 0 {
		t.Fatalf("same-day row due: %+v", got)
	}

	unscheduled := base
	unscheduled.Day = model.Unscheduled()
	if got := Due([]model.Appointment{unscheduled}, now); len(got) != 0 {
		t.Fatalf("unscheduled row due: %+v", got)
	}
}

func TestDueAcrossMonthBoundary(t *testing.T) {
	now := time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)
	appt := model.Appointment{
		ID: "a1", Day: model.Day("2024-03-01"), Status: model.StatusConfirmed,
	}
	if got := Due([]model.Appointment{appt}, now); len(got) != 1 {
		t.Fatalf("leap Feb 29 -> Mar 1 not due")
	}
}
