package outbox

// Event is the domain event envelope written to the outbox table.
// The Kafka topic name equals EventType.
type Event struct {
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

const (
	EventAppointmentBooked  = "salon.appointment.booked.v1"
	EventStatusChanged      = "salon.appointment.status_changed.v1"
	EventReminderRequested  = "salon.reminder.requested.v1"
	EventAppointmentDeleted = "salon.appointment.deleted.v1"
)
