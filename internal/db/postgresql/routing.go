package postgresql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
)

func (h *FogDb) CreateRouting(ctx context.Context, r *models.Routing) error {
	query := `
		INSERT INTO routings (publisher_uuid, destination_uuid)
		VALUES ($1, $2)
		ON CONFLICT (publisher_uuid, destination_uuid) DO NOTHING
		RETURNING id;
	`
	if err := h.conn().QueryRowContext(ctx, query, r.PublisherUUID, r.DestinationUUID).Scan(&r.ID); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("publisher", r.PublisherUUID.String()).Str("destination", r.DestinationUUID.String()).Msg("route already exists")
			return dberror.ErrAlreadyExists.Msg("route already exists")
		}
		log.Ctx(ctx).Error().Err(err).Str("publisher", r.PublisherUUID.String()).Msg("failed to insert route")
		return dberror.FromPgError(err)
	}
	return nil
}

func (h *FogDb) DeleteRouting(ctx context.Context, publisher, destination uuid.UUID) error {
	result, err := h.conn().ExecContext(ctx, `
		DELETE FROM routings WHERE publisher_uuid = $1 AND destination_uuid = $2;`, publisher, destination)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("publisher", publisher.String()).Msg("failed to delete route")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "route")
}

// ListRoutingsByFog returns the routes whose publisher runs on the fog.
func (h *FogDb) ListRoutingsByFog(ctx context.Context, fogID uuid.UUID) ([]models.Routing, error) {
	rows, err := h.conn().QueryContext(ctx, `
		SELECT r.id, r.publisher_uuid, r.destination_uuid
		FROM routings r JOIN element_instances e ON e.uuid = r.publisher_uuid
		WHERE e.fog_uuid = $1
		ORDER BY r.id;`, fogID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("fog_uuid", fogID.String()).Msg("failed to list routes")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var routes []models.Routing
	for rows.Next() {
		var r models.Routing
		if err := rows.Scan(&r.ID, &r.PublisherUUID, &r.DestinationUUID); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return routes, nil
}
