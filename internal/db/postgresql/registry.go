package postgresql

import (
	"context"
	"database/sql"

	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
)

const registryColumns = `id, url, is_public, secure, certificate, requires_cert, user_name, password, user_email, user_id`

func scanRegistry(row interface{ Scan(...any) error }, r *models.Registry) error {
	return row.Scan(&r.ID, &r.URL, &r.IsPublic, &r.Secure, &r.Certificate, &r.RequiresCert,
		&r.Username, &r.Password, &r.UserEmail, &r.UserID)
}

func (h *FogDb) CreateRegistry(ctx context.Context, r *models.Registry) error {
	query := `
		INSERT INTO registries (url, is_public, secure, certificate, requires_cert, user_name, password, user_email, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	row := h.conn().QueryRowContext(ctx, query, r.URL, r.IsPublic, r.Secure, r.Certificate, r.RequiresCert,
		r.Username, r.Password, r.UserEmail, r.UserID)
	if err := row.Scan(&r.ID); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("url", r.URL).Msg("failed to insert registry")
		return dberror.FromPgError(err)
	}
	return nil
}

func (h *FogDb) GetRegistry(ctx context.Context, id int64) (*models.Registry, error) {
	var r models.Registry
	err := scanRegistry(h.conn().QueryRowContext(ctx, `SELECT `+registryColumns+` FROM registries WHERE id = $1;`, id), &r)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Int64("id", id).Msg("registry not found")
			return nil, dberror.ErrNotFound.Msg("registry not found")
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to retrieve registry")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return &r, nil
}

// ListRegistries returns the public registries plus, when userID is set, the
// registries owned by that user. A nil userID returns every registry.
func (h *FogDb) ListRegistries(ctx context.Context, userID *int64) ([]models.Registry, error) {
	query := `SELECT ` + registryColumns + ` FROM registries`
	var args []any
	if userID != nil {
		query += ` WHERE is_public OR user_id = $1`
		args = append(args, *userID)
	}
	rows, err := h.conn().QueryContext(ctx, query+` ORDER BY id;`, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list registries")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var registries []models.Registry
	for rows.Next() {
		var r models.Registry
		if err := scanRegistry(rows, &r); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan registry")
			return nil, dberror.ErrDatabase.Err(err)
		}
		registries = append(registries, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return registries, nil
}

func (h *FogDb) UpdateRegistry(ctx context.Context, r *models.Registry) error {
	query := `
		UPDATE registries
		SET url = $2, is_public = $3, secure = $4, certificate = $5, requires_cert = $6,
			user_name = $7, password = $8, user_email = $9
		WHERE id = $1;
	`
	result, err := h.conn().ExecContext(ctx, query, r.ID, r.URL, r.IsPublic, r.Secure, r.Certificate,
		r.RequiresCert, r.Username, r.Password, r.UserEmail)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", r.ID).Msg("failed to update registry")
		return dberror.FromPgError(err)
	}
	return checkAffected(ctx, result, "registry")
}

// DeleteRegistry removes a registry. Catalog items referencing it keep
// existing with a null registry.
func (h *FogDb) DeleteRegistry(ctx context.Context, id int64) error {
	result, err := h.conn().ExecContext(ctx, `DELETE FROM registries WHERE id = $1;`, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete registry")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "registry")
}
