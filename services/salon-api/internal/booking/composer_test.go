package booking

import (
	"fmt"
	"testing"
	"time"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
)

func testCatalog() []model.Service {
	return []model.Service{
		{ID: "s1", Name: "Corte Feminino", Price: 120, Duration: 60, CategoryID: "cat1", IsActive: true},
		{ID: "s2", Name: "Manicure", Price: 45, Duration: 40, CategoryID: "cat2", IsActive: true},
		{ID: "s3", Name: "Maquiagem", Price: 90, Duration: 50, CategoryID: "cat3", IsActive: true},
	}
}

func TestToggleServiceIsIdempotentOverTwoCalls(t *testing.T) {
	catalog := testCatalog()
	c := NewComposer()
	c.ToggleService(catalog[0])

	before := c.Total()
	c.ToggleService(catalog[1])
	c.ToggleService(catalog[1])

	if got := c.Total(); got != before {
		t.Fatalf("total changed after double toggle: got %d want %d", got, before)
	}
	cart := c.Cart()
	if len(cart) != 1 || cart[0].ID != "s1" {
		t.Fatalf("unexpected cart after double toggle: %+v", cart)
	}
}

func TestTotalSumsCartPrices(t *testing.T) {
	catalog := testCatalog()
	c := NewComposer()
	if c.Total() != 0 {
		t.Fatalf("empty cart total = %d, want 0", c.Total())
	}
	for _, svc := range catalog {
		c.ToggleService(svc)
	}
	if got := c.Total(); got != 120+45+90 {
		t.Fatalf("total = %d, want %d", got, 120+45+90)
	}
}

func TestSubmitFansOutOneRowPerService(t *testing.T) {
	catalog := testCatalog()
	c := NewComposer()
	for _, svc := range catalog {
		c.ToggleService(svc)
	}
	c.SetProfessional(model.ProfessionalID("p1"))
	c.SetDay(model.Day("2025-03-15"))
	c.SetTime(model.TimeOfDay("14:30"))
	c.AdvanceToCheckout()

	seq := 0
	newID := func() string {
		seq++
		return fmt.Sprintf("appt-%d", seq)
	}
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := c.Submit("Maria", "11 98888-7777", now, newID)

	if len(rows) != len(catalog) {
		t.Fatalf("got %d rows, want %d", len(rows), len(catalog))
	}
	seen := map[string]bool{}
	for i, appt := range rows {
		if seen[appt.ID] {
			t.Fatalf("duplicate id %s", appt.ID)
		}
		seen[appt.ID] = true
		if appt.ServiceID != catalog[i].ID {
			t.Fatalf("row %d service = %s, want %s", i, appt.ServiceID, catalog[i].ID)
		}
		if appt.ClientName != "Maria" || appt.ClientPhone != "11 98888-7777" {
			t.Fatalf("row %d client fields wrong: %+v", i, appt)
		}
		if appt.Professional.ID() != "p1" || appt.Day.String() != "2025-03-15" || appt.Time.String() != "14:30" {
			t.Fatalf("row %d shared fields wrong: %+v", i, appt)
		}
		if appt.Status != model.StatusPending {
			t.Fatalf("row %d status = %s, want pending", i, appt.Status)
		}
		if appt.ReminderSent {
			t.Fatalf("row %d reminder_sent set on creation", i)
		}
		if !appt.CreatedAt.Equal(now) {
			t.Fatalf("row %d created_at = %v, want %v", i, appt.CreatedAt, now)
		}
	}
	if c.Step() != StepSuccess {
		t.Fatalf("step after submit = %s, want success", c.Step())
	}
}

func TestSubmitRejectsMissingInput(t *testing.T) {
	catalog := testCatalog()
	now := time.Now()
	newID := func() string { return "x" }

	empty := NewComposer()
	empty.AdvanceToCheckout()
	if rows := empty.Submit("Maria", "119", now, newID); rows != nil {
		t.Fatalf("empty cart submitted %d rows", len(rows))
	}
	if empty.Step() != StepCheckout {
		t.Fatalf("step advanced on rejected submit: %s", empty.Step())
	}

	c := NewComposer()
	c.ToggleService(catalog[0])
	c.AdvanceToCheckout()
	if rows := c.Submit("  ", "119", now, newID); rows != nil {
		t.Fatalf("blank name submitted %d rows", len(rows))
	}
	if rows := c.Submit("Maria", "", now, newID); rows != nil {
		t.Fatalf("blank phone submitted %d rows", len(rows))
	}
}

func TestSyncExternalSelectionOverwritesCart(t *testing.T) {
	catalog := testCatalog()
	c := NewComposer()
	c.SyncExternalSelection([]string{"s1", "s2"}, catalog)
	if got := cartIDs(c); len(got) != 2 || !got["s1"] || !got["s2"] {
		t.Fatalf("cart after seed: %v", got)
	}

	c.SyncExternalSelection([]string{"s1", "s2", "s3"}, catalog)
	if got := cartIDs(c); len(got) != 3 {
		t.Fatalf("cart after grow: %v", got)
	}

	c.SyncExternalSelection(nil, catalog)
	if got := cartIDs(c); len(got) != 0 {
		t.Fatalf("cart after clear: %v", got)
	}
}

func TestSyncExternalSelectionCollapsesRepeatedIDs(t *testing.T) {
	catalog := testCatalog()
	c := NewComposer()

	c.SyncExternalSelection([]string{"s1", "s1"}, catalog)
	cart := c.Cart()
	if len(cart) != 1 || cart[0].ID != "s1" {
		t.Fatalf("repeated id produced %d cart entries: %+v", len(cart), cart)
	}
	if got := c.Total(); got != 120 {
		t.Fatalf("total double-counted: %d", got)
	}

	// repeated ids with identical distinct membership must be a no-op
	c.SyncExternalSelection([]string{"s1", "s1", "s1"}, catalog)
	if len(c.Cart()) != 1 {
		t.Fatalf("no-op sync changed cart: %+v", c.Cart())
	}

	c.SyncExternalSelection([]string{"s2", "s2", "s1"}, catalog)
	if got := c.Cart(); len(got) != 2 || got[0].ID != "s2" || got[1].ID != "s1" {
		t.Fatalf("cart after mixed repeated sync: %+v", got)
	}
	if got := c.Total(); got != 165 {
		t.Fatalf("total after mixed repeated sync: %d", got)
	}
}

func TestSyncExternalSelectionIsStableOnSameMembership(t *testing.T) {
	catalog := testCatalog()
	c := NewComposer()
	c.ToggleService(catalog[1])
	c.ToggleService(catalog[0])

	// same membership, different order: cart must keep its selection order
	c.SyncExternalSelection([]string{"s1", "s2"}, catalog)
	cart := c.Cart()
	if len(cart) != 2 || cart[0].ID != "s2" || cart[1].ID != "s1" {
		t.Fatalf("cart reordered on no-op sync: %+v", cart)
	}
}

func TestResetReturnsToSelection(t *testing.T) {
	catalog := testCatalog()
	c := NewComposer()
	c.ToggleService(catalog[0])
	c.SetDay(model.Day("2025-03-15"))
	c.AdvanceToCheckout()

	c.Reset()
	if c.Step() != StepSelection {
		t.Fatalf("step after reset = %s", c.Step())
	}
	if len(c.Cart()) != 0 || c.Day().Scheduled() || c.Time().Chosen() || c.Professional().Assigned() {
		t.Fatalf("composer not cleared on reset")
	}
}

func cartIDs(c *Composer) map[string]bool {
	out := map[string]bool{}
	for _, svc := range c.Cart() {
		out[svc.ID] = true
	}
	return out
}
