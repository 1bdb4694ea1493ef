package postgresql

import (
	"context"
	"database/sql"

	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
)

func (h *FogDb) GetConfigValue(ctx context.Context, key string) (string, error) {
	var value string
	err := h.conn().QueryRowContext(ctx, `SELECT value FROM configs WHERE key = $1;`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", dberror.ErrNotFound.Msg("config key " + key + " not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("key", key).Msg("failed to retrieve config value")
		return "", dberror.ErrDatabase.Err(err)
	}
	return value, nil
}

func (h *FogDb) SetConfigValue(ctx context.Context, key, value string) error {
	_, err := h.conn().ExecContext(ctx, `
		INSERT INTO configs (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value;`, key, value)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("key", key).Msg("failed to store config value")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

func (h *FogDb) DeleteConfigValue(ctx context.Context, key string) error {
	result, err := h.conn().ExecContext(ctx, `DELETE FROM configs WHERE key = $1;`, key)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("key", key).Msg("failed to delete config value")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "config key")
}

func (h *FogDb) ListConfig(ctx context.Context) ([]models.Config, error) {
	rows, err := h.conn().QueryContext(ctx, `SELECT key, value FROM configs ORDER BY key;`)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list config")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var entries []models.Config
	for rows.Next() {
		var c models.Config
		if err := rows.Scan(&c.Key, &c.Value); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		entries = append(entries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return entries, nil
}
