package model

import "encoding/json"

// The wire format uses sentinel strings for optional appointment fields: an
// empty professional id meaning "any professional" and the literal
// "undetermined" for a date or time the client skipped. The refs below keep
// those values at the storage/JSON boundary while giving the core an explicit
// assigned/unassigned distinction, so a sentinel can never be mistaken for a
// real foreign key.

const Undetermined = "undetermined"

// ProfessionalRef is either a staff member's id or "any professional".
type ProfessionalRef struct {
	id string
}

func AnyProfessional() ProfessionalRef {
	return ProfessionalRef{}
}

func ProfessionalID(id string) ProfessionalRef {
	return ProfessionalRef{id: id}
}

func (r ProfessionalRef) Assigned() bool {
	return r.id != ""
}

// ID returns the referenced professional id, or "" when unassigned.
func (r ProfessionalRef) ID() string {
	return r.id
}

// MarshalJSON emits the raw id; "" means unassigned on the wire.
func (r ProfessionalRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.id)
}

func (r *ProfessionalRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*r = ProfessionalID(id)
	return nil
}

// DayRef is either a calendar date string (YYYY-MM-DD, zero-padded) or the
// unscheduled placeholder. The value is kept as the literal string the client
// supplied: day binding in the console is exact string equality.
type DayRef struct {
	value string
}

func Unscheduled() DayRef {
	return DayRef{}
}

func Day(value string) DayRef {
	if value == "" || value == Undetermined {
		return DayRef{}
	}
	return DayRef{value: value}
}

func (d DayRef) Scheduled() bool {
	return d.value != ""
}

// String returns the calendar date string, or the undetermined sentinel.
func (d DayRef) String() string {
	if d.value == "" {
		return Undetermined
	}
	return d.value
}

func (d DayRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DayRef) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*d = Day(value)
	return nil
}

// TimeRef is an HH:mm slot, free text, or the undetermined placeholder.
type TimeRef struct {
	value string
}

func NoTime() TimeRef {
	return TimeRef{}
}

func TimeOfDay(value string) TimeRef {
	if value == "" || value == Undetermined {
		return TimeRef{}
	}
	return TimeRef{value: value}
}

func (t TimeRef) Chosen() bool {
	return t.value != ""
}

func (t TimeRef) String() string {
	if t.value == "" {
		return Undetermined
	}
	return t.value
}

func (t TimeRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeRef) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*t = TimeOfDay(value)
	return nil
}
