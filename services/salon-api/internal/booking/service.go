package booking

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/ledger"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/outbox"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/whatsapp"
)

// Service persists submitted appointments and triggers the outbound
// WhatsApp hand-off to the salon.
type Service struct {
	ledger *ledger.Repository
	outbox *outbox.Repository
	sender whatsapp.Sender
	logger *slog.Logger
}

func NewService(ledgerRepo *ledger.Repository, outboxRepo *outbox.Repository, sender whatsapp.Sender, logger *slog.Logger) *Service {
	return &Service{
		ledger: ledgerRepo,
		outbox: outboxRepo,
		sender: sender,
		logger: logger,
	}
}

// SubmitResult reports how a checkout landed. Persisted carries the rows
// that actually committed; a partial batch is possible when a later row
// fails after earlier rows committed.
type SubmitResult struct {
	Persisted []model.Appointment
	Link      string
}

// Persist commits each appointment in its own transaction together with its
// booked event, so every committed row has a matching event and a mid-batch
// failure leaves earlier rows intact. It then composes the order summary,
// builds the salon deep link and fires the webhook hand-off without waiting
// on delivery.
func (s *Service) Persist(ctx context.Context, appointments []model.Appointment, services []model.Service, professionals []model.Professional, settings model.SiteSettings) (SubmitResult, error) {
	var result SubmitResult
	for _, appt := range appointments {
		if err := s.persistOne(ctx, appt); err != nil {
			s.logger.Error("appointment persist failed",
				slog.String("appointment_id", appt.ID),
				slog.Int("committed", len(result.Persisted)),
				slog.String("error", err.Error()),
			)
			return result, err
		}
		result.Persisted = append(result.Persisted, appt)
	}

	summary := OrderSummary(result.Persisted, services, professionals, settings.SalonName)
	result.Link = whatsapp.DeepLink(settings.WhatsAppNumber, summary)
	if err := s.sender.Send(ctx, settings.WhatsAppNumber, result.Link, summary); err != nil {
		// at-least-attempted: the booking stands even when the hand-off fails
		s.logger.Warn("booking hand-off failed",
			slog.String("provider", s.sender.ProviderID()),
			slog.String("error", err.Error()),
		)
	}
	return result, nil
}

func (s *Service) persistOne(ctx context.Context, appt model.Appointment) error {
	tx, err := s.ledger.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := s.ledger.Insert(ctx, tx, appt); err != nil {
		return err
	}
	payload, err := json.Marshal(appt)
	if err != nil {
		return err
	}
	evt := outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.ID,
		EventType:     outbox.EventAppointmentBooked,
		Payload:       payload,
	}
	if err := s.outbox.Insert(ctx, tx, evt); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
