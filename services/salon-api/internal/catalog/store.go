package catalog

import (
	"context"
	"log/slog"

	"github.com/cvapp9594-svg/salao225/libs/db"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
)

// Store holds Services and Categories. Reads never fail the caller: on a
// query error or an empty table the built-in default dataset is served
// instead, matching the site's behavior before any admin has saved anything.
type Store struct {
	pool   *db.Pool
	logger *slog.Logger
}

func NewStore(pool *db.Pool, logger *slog.Logger) *Store {
	return &Store{pool: pool, logger: logger}
}

func (s *Store) ListServices(ctx context.Context) []model.Service {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, price, duration_minutes, category_id, is_active
		FROM services
		ORDER BY id
	`)
	if err != nil {
		s.logger.Warn("services read failed; serving defaults", "err", err)
		return DefaultServices()
	}
	defer rows.Close()

	var out []model.Service
	for rows.Next() {
		var svc model.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Price, &svc.Duration, &svc.CategoryID, &svc.IsActive); err != nil {
			s.logger.Warn("services scan failed; serving defaults", "err", err)
			return DefaultServices()
		}
		out = append(out, svc)
	}
	if rows.Err() != nil {
		s.logger.Warn("services read failed; serving defaults", "err", rows.Err())
		return DefaultServices()
	}
	if len(out) == 0 {
		return DefaultServices()
	}
	return out
}

// ActiveServices filters the catalog down to what the booking flow may offer.
func (s *Store) ActiveServices(ctx context.Context) []model.Service {
	all := s.ListServices(ctx)
	out := make([]model.Service, 0, len(all))
	for _, svc := range all {
		if svc.IsActive {
			out = append(out, svc)
		}
	}
	return out
}

func (s *Store) ListCategories(ctx context.Context) []model.Category {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		s.logger.Warn("categories read failed; serving defaults", "err", err)
		return DefaultCategories()
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			s.logger.Warn("categories scan failed; serving defaults", "err", err)
			return DefaultCategories()
		}
		out = append(out, cat)
	}
	if rows.Err() != nil {
		s.logger.Warn("categories read failed; serving defaults", "err", rows.Err())
		return DefaultCategories()
	}
	if len(out) == 0 {
		return DefaultCategories()
	}
	return out
}

func (s *Store) UpsertServices(ctx context.Context, services []model.Service) error {
	for _, svc := range services {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO services (id, name, description, price, duration_minutes, category_id, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name,
				description = EXCLUDED.description,
				price = EXCLUDED.price,
				duration_minutes = EXCLUDED.duration_minutes,
				category_id = EXCLUDED.category_id,
				is_active = EXCLUDED.is_active
		`, svc.ID, svc.Name, svc.Description, svc.Price, svc.Duration, svc.CategoryID, svc.IsActive)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	return err
}

func (s *Store) UpsertCategories(ctx context.Context, categories []model.Category) error {
	for _, cat := range categories {
		_, err := s.pool.Exec(ctx, `
			INSERT INTO categories (id, name)
			VALUES ($1, $2)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name
		`, cat.ID, cat.Name)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}
