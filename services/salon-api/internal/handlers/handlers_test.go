package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
)

func TestFindService(t *testing.T) {
	services := []model.Service{{ID: "s1"}, {ID: "s2"}}
	if _, ok := findService(services, "s2"); !ok {
		t.Fatal("existing service not found")
	}
	if _, ok := findService(services, "s9"); ok {
		t.Fatal("missing service reported found")
	}
}

func TestProfessionalFilterDefaultsToAll(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/admin/appointments", nil)
	if got := professionalFilter(r); got != "all" {
		t.Fatalf("default filter = %q", got)
	}
	r = httptest.NewRequest("GET", "/api/v1/admin/appointments?professional=p1", nil)
	if got := professionalFilter(r); got != "p1" {
		t.Fatalf("filter = %q", got)
	}
}

func TestScheduleRefRelativeNavigation(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.Local)

	r := httptest.NewRequest("GET", "/api/v1/admin/schedule?ref=2025-01-31&view=month&delta=1", nil)
	if got := scheduleRef(r, now); got.Year() != 2025 || got.Month() != time.February || got.Day() != 1 {
		t.Fatalf("month step from Jan 31 landed on %v", got)
	}

	r = httptest.NewRequest("GET", "/api/v1/admin/schedule?ref=2025-03-01&view=week&delta=-1", nil)
	if got := scheduleRef(r, now).Format("2006-01-02"); got != "2025-02-22" {
		t.Fatalf("week step back = %s", got)
	}

	// absolute year/month still resolves, and delta steps from it
	r = httptest.NewRequest("GET", "/api/v1/admin/schedule?year=2024&month=12&delta=2", nil)
	if got := scheduleRef(r, now); got.Year() != 2025 || got.Month() != time.February {
		t.Fatalf("absolute+delta landed on %v", got)
	}

	// bare request shows the current month
	r = httptest.NewRequest("GET", "/api/v1/admin/schedule", nil)
	if got := scheduleRef(r, now); got.Year() != 2025 || got.Month() != time.March {
		t.Fatalf("default ref = %v", got)
	}

	// unknown view falls back to month steps
	r = httptest.NewRequest("GET", "/api/v1/admin/schedule?ref=2025-03-10&view=fortnight&delta=1", nil)
	if got := scheduleRef(r, now); got.Month() != time.April || got.Day() != 1 {
		t.Fatalf("unknown granularity landed on %v", got)
	}
}

func TestRequireMethod(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/x", nil)
	if requireMethod(w, r, "POST") {
		t.Fatal("GET accepted for POST-only route")
	}
	if w.Code != 405 {
		t.Fatalf("status = %d, want 405", w.Code)
	}
}
