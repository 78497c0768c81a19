package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cvapp9594-svg/salao225/libs/db"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
)

var ErrNotFound = errors.New("appointment not found")

// Repository is the single mutable source of truth for bookings. Every
// mutation targets individual rows by primary key, so concurrent sessions
// upserting different rows can no longer clobber each other the way the old
// read-whole/write-whole pattern could. A multi-row checkout still commits
// row by row and may land partially on failure; callers accept that.
type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

// Insert upserts one appointment row inside tx. The sentinel wire values
// ("" professional, "undetermined" date/time) are produced here from the
// typed refs.
func (r *Repository) Insert(ctx context.Context, tx pgx.Tx, appt model.Appointment) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO appointments
			(id, client_name, client_phone, service_id, professional_id, date, time, status, reminder_sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET client_name = EXCLUDED.client_name,
			client_phone = EXCLUDED.client_phone,
			service_id = EXCLUDED.service_id,
			professional_id = EXCLUDED.professional_id,
			date = EXCLUDED.date,
			time = EXCLUDED.time,
			status = EXCLUDED.status,
			reminder_sent = EXCLUDED.reminder_sent
	`, appt.ID, appt.ClientName, appt.ClientPhone, appt.ServiceID,
		appt.Professional.ID(), appt.Day.String(), appt.Time.String(),
		string(appt.Status), appt.ReminderSent, appt.CreatedAt)
	return err
}

func (r *Repository) List(ctx context.Context) ([]model.Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, client_name, client_phone, service_id, professional_id, date, time, status, reminder_sent, created_at
		FROM appointments
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, appt)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}

func (r *Repository) Get(ctx context.Context, id string) (model.Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, client_name, client_phone, service_id, professional_id, date, time, status, reminder_sent, created_at
		FROM appointments
		WHERE id = $1
	`, id)
	appt, err := scanAppointment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Appointment{}, ErrNotFound
	}
	return appt, err
}

// SetStatus rewrites exactly one row's status. Any status is reachable from
// any other; callers validate the value itself.
func (r *Repository) SetStatus(ctx context.Context, tx pgx.Tx, id string, status model.Status) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments SET status = $2 WHERE id = $1
	`, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkReminderSent asserts the reminder flag on one row. Re-asserting an
// already-set flag is a no-op by design (re-sends are allowed).
func (r *Repository) MarkReminderSent(ctx context.Context, tx pgx.Tx, id string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments SET reminder_sent = true WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, tx pgx.Tx, id string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (model.Appointment, error) {
	var (
		appt           model.Appointment
		professionalID string
		day            string
		timeOfDay      string
		status         string
		createdAt      time.Time
	)
	err := row.Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.ClientPhone,
		&appt.ServiceID,
		&professionalID,
		&day,
		&timeOfDay,
		&status,
		&appt.ReminderSent,
		&createdAt,
	)
	if err != nil {
		return model.Appointment{}, err
	}
	appt.Professional = model.ProfessionalID(professionalID)
	appt.Day = model.Day(day)
	appt.Time = model.TimeOfDay(timeOfDay)
	appt.Status = model.Status(status)
	appt.CreatedAt = createdAt
	return appt, nil
}
