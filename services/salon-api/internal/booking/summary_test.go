package booking

import (
	"strings"
	"testing"
	"time"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
)

func TestOrderSummaryListsItemsAndTotal(t *testing.T) {
	catalog := testCatalog()
	professionals := []model.Professional{{ID: "p1", Name: "Ana Silva", IsActive: true}}
	appts := []model.Appointment{
		{ID: "a1b2c3d4-0000", ClientName: "Maria", ClientPhone: "119", ServiceID: "s1",
			Professional: model.ProfessionalID("p1"), Day: model.Day("2025-03-15"), Time: model.TimeOfDay("14:30"),
			Status: model.StatusPending, CreatedAt: time.Now()},
		{ID: "e5f6", ClientName: "Maria", ClientPhone: "119", ServiceID: "s2",
			Professional: model.ProfessionalID("p1"), Day: model.Day("2025-03-15"), Time: model.TimeOfDay("14:30"),
			Status: model.StatusPending, CreatedAt: time.Now()},
	}
	got := OrderSummary(appts, catalog, professionals, "Glow Beauty Studio")
	for _, want := range []string{"Glow Beauty Studio", "Maria", "Ana Silva", "2025-03-15", "14:30", "Corte Feminino", "Manicure", "R$ 165,00"} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestOrderSummarySkipsUnchosenFields(t *testing.T) {
	catalog := testCatalog()
	appts := []model.Appointment{
		{ID: "a1", ClientName: "Maria", ClientPhone: "119", ServiceID: "s2",
			Professional: model.AnyProfessional(), Day: model.Unscheduled(), Time: model.NoTime(),
			Status: model.StatusPending, CreatedAt: time.Now()},
	}
	got := OrderSummary(appts, catalog, nil, "Glow Beauty Studio")
	if strings.Contains(got, "Profissional:") || strings.Contains(got, "Data:") || strings.Contains(got, "Horário:") {
		t.Fatalf("summary includes unchosen fields:\n%s", got)
	}
	if strings.Contains(got, model.Undetermined) {
		t.Fatalf("sentinel leaked into summary:\n%s", got)
	}
}

func TestOrderSummaryToleratesDanglingService(t *testing.T) {
	appts := []model.Appointment{
		{ID: "a1", ClientName: "Maria", ClientPhone: "119", ServiceID: "gone",
			Status: model.StatusPending, CreatedAt: time.Now()},
	}
	got := OrderSummary(appts, testCatalog(), nil, "Glow Beauty Studio")
	if !strings.Contains(got, "(removido)") {
		t.Fatalf("dangling service not tolerated:\n%s", got)
	}
	if !strings.Contains(got, "Total: R$ 0,00") {
		t.Fatalf("dangling service counted in total:\n%s", got)
	}
}
