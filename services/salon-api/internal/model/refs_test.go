package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDayRefSentinelMapping(t *testing.T) {
	if Day("").Scheduled() || Day(Undetermined).Scheduled() {
		t.Fatal("sentinel inputs produced a scheduled day")
	}
	if got := Unscheduled().String(); got != Undetermined {
		t.Fatalf("unscheduled wire value = %q", got)
	}
	d := Day("2025-03-15")
	if !d.Scheduled() || d.String() != "2025-03-15" {
		t.Fatalf("real date mangled: %q", d.String())
	}
}

func TestProfessionalRefWireValues(t *testing.T) {
	if AnyProfessional().Assigned() {
		t.Fatal("any-professional marked assigned")
	}
	if AnyProfessional().ID() != "" {
		t.Fatalf("any-professional id = %q", AnyProfessional().ID())
	}
	if ProfessionalID("").Assigned() {
		t.Fatal("empty id marked assigned")
	}
	if !ProfessionalID("p1").Assigned() {
		t.Fatal("real id not assigned")
	}
}

func TestAppointmentJSONRoundTrip(t *testing.T) {
	appt := Appointment{
		ID:          "a1",
		ClientName:  "Maria",
		ClientPhone: "11 98888-7777",
		ServiceID:   "s1",
		Status:      StatusPending,
		CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(appt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var wire map[string]any
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal into map: %v", err)
	}
	if wire["professional_id"] != "" {
		t.Fatalf("unassigned professional on wire = %v", wire["professional_id"])
	}
	if wire["date"] != Undetermined || wire["time"] != Undetermined {
		t.Fatalf("sentinel date/time on wire = %v / %v", wire["date"], wire["time"])
	}

	var back Appointment
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Day.Scheduled() || back.Time.Chosen() || back.Professional.Assigned() {
		t.Fatal("sentinels decoded as real values")
	}
	if back.Status != StatusPending || back.ClientName != "Maria" {
		t.Fatalf("fields lost in round trip: %+v", back)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled} {
		if !s.Valid() {
			t.Fatalf("%s reported invalid", s)
		}
	}
	if Status("done").Valid() {
		t.Fatal("unknown status reported valid")
	}
}
