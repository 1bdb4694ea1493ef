package postgresql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
)

const trackColumns = `id, name, description, is_activated, user_id, created_at, updated_at`

func scanTrack(row interface{ Scan(...any) error }, t *models.Track) error {
	return row.Scan(&t.ID, &t.Name, &t.Description, &t.IsActivated, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
}

func (h *FogDb) CreateTrack(ctx context.Context, t *models.Track) error {
	query := `
		INSERT INTO tracks (name, description, is_activated, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at;
	`
	row := h.conn().QueryRowContext(ctx, query, t.Name, t.Description, t.IsActivated, t.UserID)
	if err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("name", t.Name).Msg("failed to insert track")
		return dberror.FromPgError(err)
	}
	return nil
}

func (h *FogDb) GetTrack(ctx context.Context, id int64) (*models.Track, error) {
	var t models.Track
	err := scanTrack(h.conn().QueryRowContext(ctx, `SELECT `+trackColumns+` FROM tracks WHERE id = $1;`, id), &t)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Int64("id", id).Msg("track not found")
			return nil, dberror.ErrNotFound.Msg("track not found")
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to retrieve track")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return &t, nil
}

// ListTracks returns the tracks of userID, or every track when userID is nil.
func (h *FogDb) ListTracks(ctx context.Context, userID *int64) ([]models.Track, error) {
	query := `SELECT ` + trackColumns + ` FROM tracks`
	var args []any
	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}
	return h.queryTracks(ctx, query+` ORDER BY id;`, args...)
}

// ListTracksForFog returns the tracks having at least one element instance on the fog.
func (h *FogDb) ListTracksForFog(ctx context.Context, fogID uuid.UUID) ([]models.Track, error) {
	query := `
		SELECT ` + trackColumns + ` FROM tracks
		WHERE id IN (SELECT track_id FROM element_instances WHERE fog_uuid = $1)
		ORDER BY id;`
	return h.queryTracks(ctx, query, fogID)
}

func (h *FogDb) queryTracks(ctx context.Context, query string, args ...any) ([]models.Track, error) {
	rows, err := h.conn().QueryContext(ctx, query, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list tracks")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var tracks []models.Track
	for rows.Next() {
		var t models.Track
		if err := scanTrack(rows, &t); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan track")
			return nil, dberror.ErrDatabase.Err(err)
		}
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return tracks, nil
}

func (h *FogDb) UpdateTrack(ctx context.Context, t *models.Track) error {
	query := `
		UPDATE tracks
		SET name = $2, description = $3, is_activated = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at;
	`
	if err := h.conn().QueryRowContext(ctx, query, t.ID, t.Name, t.Description, t.IsActivated).Scan(&t.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Int64("id", t.ID).Msg("track not found for update")
			return dberror.ErrNotFound.Msg("track not found for update")
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", t.ID).Msg("failed to update track")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// DeleteTrack removes a track. Its element instances go with it.
func (h *FogDb) DeleteTrack(ctx context.Context, id int64) error {
	result, err := h.conn().ExecContext(ctx, `DELETE FROM tracks WHERE id = $1;`, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete track")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "track")
}
