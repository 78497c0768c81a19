package storage

import (
	"context"

	"github.com/cvapp9594-svg/salao225/libs/db"
)

type Delivery struct {
	EventID       string
	EventType     string
	AppointmentID string
	Recipient     string
	Link          string
	Body          string
	Status        string
}

type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Insert(ctx context.Context, d Delivery) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO deliveries (event_id, event_type, appointment_id, recipient, link, body, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, d.EventID, d.EventType, d.AppointmentID, d.Recipient, d.Link, d.Body, d.Status)
	return err
}

// Migrate creates the notifier's own tables: the inbox dedupe log and the
// delivery record.
func Migrate(ctx context.Context, pool *db.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS inbox_events (
			event_id TEXT PRIMARY KEY,
			event_type TEXT NOT NULL,
			received_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS deliveries (
			id BIGSERIAL PRIMARY KEY,
			event_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			appointment_id TEXT NOT NULL,
			recipient TEXT NOT NULL DEFAULT '',
			link TEXT NOT NULL DEFAULT '',
			body TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
