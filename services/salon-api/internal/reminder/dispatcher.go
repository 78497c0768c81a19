package reminder

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/ledger"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/outbox"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/whatsapp"
)

// Due returns the rows needing a reminder right now: confirmed, not yet
// reminded, and dated exactly one calendar day after now. The set is purely
// derived; nothing is persisted until a reminder is actually sent.
func Due(appointments []model.Appointment, now time.Time) []model.Appointment {
	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	out := make([]model.Appointment, 0)
	for _, appt := range appointments {
		if appt.Status != model.StatusConfirmed || appt.ReminderSent {
			continue
		}
		if appt.Day.Scheduled() && appt.Day.String() == tomorrow {
			out = append(out, appt)
		}
	}
	return out
}

// Dispatcher sends individual reminders and flags the row as reminded.
type Dispatcher struct {
	ledger *ledger.Repository
	outbox *outbox.Repository
	sender whatsapp.Sender
	logger *slog.Logger
}

func NewDispatcher(ledgerRepo *ledger.Repository, outboxRepo *outbox.Repository, sender whatsapp.Sender, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		ledger: ledgerRepo,
		outbox: outboxRepo,
		sender: sender,
		logger: logger,
	}
}

type reminderEvent struct {
	AppointmentID string `json:"appointment_id"`
	ClientPhone   string `json:"client_phone"`
	Link          string `json:"link"`
	Body          string `json:"body"`
}

// Send builds the reminder message for one appointment, commits
// reminder_sent together with the outbound event, then fires the webhook
// hand-off. Re-sending an already-reminded row is allowed: the flag is
// simply re-asserted and the hand-off re-triggered. Delivery is
// at-least-attempted; a failed hand-off does not roll the flag back.
func (d *Dispatcher) Send(ctx context.Context, appt model.Appointment, serviceName, salonName string) (string, error) {
	body := whatsapp.ReminderMessage(appt.ClientName, appt.Day.String(), appt.Time.String(), serviceName, salonName)
	link := whatsapp.DeepLink(appt.ClientPhone, body)

	tx, err := d.ledger.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := d.ledger.MarkReminderSent(ctx, tx, appt.ID); err != nil {
		return "", err
	}
	payload, err := json.Marshal(reminderEvent{
		AppointmentID: appt.ID,
		ClientPhone:   whatsapp.DigitsOnly(appt.ClientPhone),
		Link:          link,
		Body:          body,
	})
	if err != nil {
		return "", err
	}
	evt := outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.ID,
		EventType:     outbox.EventReminderRequested,
		Payload:       payload,
	}
	if err := d.outbox.Insert(ctx, tx, evt); err != nil {
		return "", err
	}
	if err := tx.Commit(ctx); err != nil {
		return "", err
	}

	if err := d.sender.Send(ctx, appt.ClientPhone, link, body); err != nil {
		d.logger.Warn("reminder hand-off failed",
			slog.String("appointment_id", appt.ID),
			slog.String("provider", d.sender.ProviderID()),
			slog.String("error", err.Error()),
		)
	}
	return link, nil
}
