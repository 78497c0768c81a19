package sitecfg

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/cvapp9594-svg/salao225/libs/db"
	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/model"
)

const settingsKey = "default"

// Store persists the single SiteSettings document. Reads substitute the
// built-in defaults on any failure so the public site always renders.
type Store struct {
	pool   *db.Pool
	logger *slog.Logger
}

func NewStore(pool *db.Pool, logger *slog.Logger) *Store {
	return &Store{pool: pool, logger: logger}
}

func (s *Store) Get(ctx context.Context) model.SiteSettings {
	var raw []byte
	err := s.pool.QueryRow(ctx, `
		SELECT payload FROM site_settings WHERE id = $1
	`, settingsKey).Scan(&raw)
	if err != nil {
		return Defaults()
	}

	var settings model.SiteSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		s.logger.Warn("settings payload corrupt; serving defaults", "err", err)
		return Defaults()
	}
	if settings.SalonName == "" {
		return Defaults()
	}
	return settings
}

func (s *Store) Upsert(ctx context.Context, settings model.SiteSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO site_settings (id, payload)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET payload = EXCLUDED.payload,
			updated_at = now()
	`, settingsKey, raw)
	return err
}
