package postgresql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
)

const elementInstanceColumns = `uuid, name, config, config_last_updated, catalog_item_id, track_id, fog_uuid,
	root_host_access, log_size, rebuild, user_id, created_at, updated_at`

func scanElementInstance(row interface{ Scan(...any) error }, e *models.ElementInstance) error {
	return row.Scan(&e.UUID, &e.Name, &e.Config, &e.ConfigLastUpdated, &e.CatalogItemID, &e.TrackID, &e.FogUUID,
		&e.RootHostAccess, &e.LogSize, &e.Rebuild, &e.UserID, &e.CreatedAt, &e.UpdatedAt)
}

// CreateElementInstance inserts an element instance, assigning a UUID if needed.
func (h *FogDb) CreateElementInstance(ctx context.Context, e *models.ElementInstance) error {
	if e.UUID == uuid.Nil {
		e.UUID = uuid.New()
	}
	query := `
		INSERT INTO element_instances (uuid, name, config, config_last_updated, catalog_item_id, track_id,
			fog_uuid, root_host_access, log_size, rebuild, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at;
	`
	row := h.conn().QueryRowContext(ctx, query, e.UUID, e.Name, e.Config, e.ConfigLastUpdated, e.CatalogItemID,
		e.TrackID, e.FogUUID, e.RootHostAccess, e.LogSize, e.Rebuild, e.UserID)
	if err := row.Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("uuid", e.UUID.String()).Msg("failed to insert element instance")
		return dberror.FromPgError(err)
	}
	return nil
}

func (h *FogDb) GetElementInstance(ctx context.Context, id uuid.UUID) (*models.ElementInstance, error) {
	var e models.ElementInstance
	row := h.conn().QueryRowContext(ctx, `SELECT `+elementInstanceColumns+` FROM element_instances WHERE uuid = $1;`, id)
	if err := scanElementInstance(row, &e); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("uuid", id.String()).Msg("element instance not found")
			return nil, dberror.ErrNotFound.Msg("element instance not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("uuid", id.String()).Msg("failed to retrieve element instance")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return &e, nil
}

func (h *FogDb) ListElementInstancesByTrack(ctx context.Context, trackID int64) ([]models.ElementInstance, error) {
	return h.queryElementInstances(ctx, `SELECT `+elementInstanceColumns+` FROM element_instances
		WHERE track_id = $1 ORDER BY created_at;`, trackID)
}

func (h *FogDb) ListElementInstancesByFog(ctx context.Context, fogID uuid.UUID) ([]models.ElementInstance, error) {
	return h.queryElementInstances(ctx, `SELECT `+elementInstanceColumns+` FROM element_instances
		WHERE fog_uuid = $1 ORDER BY created_at;`, fogID)
}

func (h *FogDb) queryElementInstances(ctx context.Context, query string, args ...any) ([]models.ElementInstance, error) {
	rows, err := h.conn().QueryContext(ctx, query, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list element instances")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var instances []models.ElementInstance
	for rows.Next() {
		var e models.ElementInstance
		if err := scanElementInstance(rows, &e); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan element instance")
			return nil, dberror.ErrDatabase.Err(err)
		}
		instances = append(instances, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return instances, nil
}

func (h *FogDb) UpdateElementInstance(ctx context.Context, e *models.ElementInstance) error {
	query := `
		UPDATE element_instances
		SET name = $2, config = $3, config_last_updated = $4, fog_uuid = $5, root_host_access = $6,
			log_size = $7, rebuild = $8, updated_at = now()
		WHERE uuid = $1
		RETURNING updated_at;
	`
	row := h.conn().QueryRowContext(ctx, query, e.UUID, e.Name, e.Config, e.ConfigLastUpdated, e.FogUUID,
		e.RootHostAccess, e.LogSize, e.Rebuild)
	if err := row.Scan(&e.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("uuid", e.UUID.String()).Msg("element instance not found for update")
			return dberror.ErrNotFound.Msg("element instance not found for update")
		}
		log.Ctx(ctx).Error().Err(err).Str("uuid", e.UUID.String()).Msg("failed to update element instance")
		return dberror.FromPgError(err)
	}
	return nil
}

func (h *FogDb) DeleteElementInstance(ctx context.Context, id uuid.UUID) error {
	result, err := h.conn().ExecContext(ctx, `DELETE FROM element_instances WHERE uuid = $1;`, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("uuid", id.String()).Msg("failed to delete element instance")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "element instance")
}

func (h *FogDb) CreatePort(ctx context.Context, p *models.ElementInstancePort) error {
	query := `
		INSERT INTO element_instance_ports (element_instance_uuid, port_internal, port_external, is_public)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (element_instance_uuid, port_internal) DO NOTHING
		RETURNING id;
	`
	row := h.conn().QueryRowContext(ctx, query, p.ElementInstanceUUID, p.PortInternal, p.PortExternal, p.IsPublic)
	if err := row.Scan(&p.ID); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Int("port_internal", p.PortInternal).Msg("port mapping already exists")
			return dberror.ErrAlreadyExists.Msg("port mapping already exists")
		}
		log.Ctx(ctx).Error().Err(err).Int("port_internal", p.PortInternal).Msg("failed to insert port mapping")
		return dberror.FromPgError(err)
	}
	return nil
}

func (h *FogDb) ListPorts(ctx context.Context, elementID uuid.UUID) ([]models.ElementInstancePort, error) {
	rows, err := h.conn().QueryContext(ctx, `
		SELECT id, element_instance_uuid, port_internal, port_external, is_public
		FROM element_instance_ports WHERE element_instance_uuid = $1 ORDER BY port_internal;`, elementID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("uuid", elementID.String()).Msg("failed to list ports")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var ports []models.ElementInstancePort
	for rows.Next() {
		var p models.ElementInstancePort
		if err := rows.Scan(&p.ID, &p.ElementInstanceUUID, &p.PortInternal, &p.PortExternal, &p.IsPublic); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		ports = append(ports, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return ports, nil
}

// SetPortPublic opens or closes the comsat pipe of a port.
func (h *FogDb) SetPortPublic(ctx context.Context, elementID uuid.UUID, portInternal int, public bool) error {
	result, err := h.conn().ExecContext(ctx, `
		UPDATE element_instance_ports SET is_public = $3
		WHERE element_instance_uuid = $1 AND port_internal = $2;`, elementID, portInternal, public)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("uuid", elementID.String()).Msg("failed to update port")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "port mapping")
}

func (h *FogDb) DeletePort(ctx context.Context, elementID uuid.UUID, portInternal int) error {
	result, err := h.conn().ExecContext(ctx, `
		DELETE FROM element_instance_ports
		WHERE element_instance_uuid = $1 AND port_internal = $2;`, elementID, portInternal)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("uuid", elementID.String()).Msg("failed to delete port")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "port mapping")
}
