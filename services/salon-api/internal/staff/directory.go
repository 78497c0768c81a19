package staff

import (
	"context"
	"log/slog"

	"github.com/cvapp9594-svg/salao225/libs/db"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
)

// Directory holds Professionals and their offered-service associations.
// Like the catalog, reads fall back to the built-in default roster rather
// than surfacing an error to the booking flow.
type Directory struct {
	pool   *db.Pool
	logger *slog.Logger
}

func NewDirectory(pool *db.Pool, logger *slog.Logger) *Directory {
	return &Directory{pool: pool, logger: logger}
}

func DefaultProfessionals() []model.Professional {
	return []model.Professional{
		{
			ID:       "p1",
			Name:     "Ana Silva",
			Role:     "Hair Stylist",
			Avatar:   "https://i.pravatar.cc/150?u=ana",
			Bio:      "Especialista em cortes e coloração.",
			Services: []string{"1"},
			IsActive: true,
		},
	}
}

func (d *Directory) List(ctx context.Context) []model.Professional {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, role, avatar, bio, service_ids, is_active
		FROM professionals
		ORDER BY id
	`)
	if err != nil {
		d.logger.Warn("professionals read failed; serving defaults", "err", err)
		return DefaultProfessionals()
	}
	defer rows.Close()

	var out []model.Professional
	for rows.Next() {
		var p model.Professional
		if err := rows.Scan(&p.ID, &p.Name, &p.Role, &p.Avatar, &p.Bio, &p.Services, &p.IsActive); err != nil {
			d.logger.Warn("professionals scan failed; serving defaults", "err", err)
			return DefaultProfessionals()
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		d.logger.Warn("professionals read failed; serving defaults", "err", rows.Err())
		return DefaultProfessionals()
	}
	if len(out) == 0 {
		return DefaultProfessionals()
	}
	return out
}

// ListAvailable returns professionals marked available, regardless of which
// services they offer. Capability is advisory during selection; the offered
// services are still exposed for display.
func (d *Directory) ListAvailable(ctx context.Context) []model.Professional {
	all := d.List(ctx)
	out := make([]model.Professional, 0, len(all))
	for _, p := range all {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func (d *Directory) Upsert(ctx context.Context, professionals []model.Professional) error {
	for _, p := range professionals {
		if p.Services == nil {
			p.Services = []string{}
		}
		_, err := d.pool.Exec(ctx, `
			INSERT INTO professionals (id, name, role, avatar, bio, service_ids, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name,
				role = EXCLUDED.role,
				avatar = EXCLUDED.avatar,
				bio = EXCLUDED.bio,
				service_ids = EXCLUDED.service_ids,
				is_active = EXCLUDED.is_active
		`, p.ID, p.Name, p.Role, p.Avatar, p.Bio, p.Services, p.IsActive)
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *Directory) Delete(ctx context.Context, id string) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM professionals WHERE id = $1`, id)
	return err
}
