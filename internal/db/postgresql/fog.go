package postgresql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
)

const fogColumns = `uuid, name, location, latitude, longitude, description, fog_type_id,
	daemon_status, daemon_operating_duration, daemon_last_start, memory_usage, disk_usage, cpu_usage,
	memory_violation, disk_violation, cpu_violation, repository_count, repository_status, system_time,
	last_status_time, ip_address, processed_messages, message_speed, last_command_time, version, status_info,
	network_interface, docker_url, disk_limit, disk_directory, memory_limit, cpu_limit, log_limit,
	log_directory, log_file_count, status_frequency, change_frequency, device_scan_frequency,
	last_active, access_token, user_id, created_at, updated_at`

func scanFog(row interface{ Scan(...any) error }, f *models.Fog) error {
	s := &f.FogStatus
	c := &f.FogAgentConfig
	return row.Scan(&f.UUID, &f.Name, &f.Location, &f.Latitude, &f.Longitude, &f.Description, &f.FogTypeID,
		&s.DaemonStatus, &s.DaemonOperatingDuration, &s.DaemonLastStart, &s.MemoryUsage, &s.DiskUsage, &s.CPUUsage,
		&s.MemoryViolation, &s.DiskViolation, &s.CPUViolation, &s.RepositoryCount, &s.RepositoryStatus, &s.SystemTime,
		&s.LastStatusTime, &s.IPAddress, &s.ProcessedMessages, &s.MessageSpeed, &s.LastCommandTime, &s.Version, &s.StatusInfo,
		&c.NetworkInterface, &c.DockerURL, &c.DiskLimit, &c.DiskDirectory, &c.MemoryLimit, &c.CPULimit, &c.LogLimit,
		&c.LogDirectory, &c.LogFileCount, &c.StatusFrequency, &c.ChangeFrequency, &c.DeviceScanFrequency,
		&f.LastActive, &f.AccessToken, &f.UserID, &f.CreatedAt, &f.UpdatedAt)
}

// CreateFog inserts a fog node along with its change tracking row.
// A UUID is assigned if the fog does not carry one.
func (h *FogDb) CreateFog(ctx context.Context, fog *models.Fog) error {
	if fog.UUID == uuid.Nil {
		fog.UUID = uuid.New()
	}
	c := fog.FogAgentConfig
	return h.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO fogs (uuid, name, location, latitude, longitude, description, fog_type_id,
				network_interface, docker_url, disk_limit, disk_directory, memory_limit, cpu_limit, log_limit,
				log_directory, log_file_count, status_frequency, change_frequency, device_scan_frequency, user_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
			ON CONFLICT (uuid) DO NOTHING
			RETURNING created_at, updated_at;
		`
		row := tx.QueryRowContext(ctx, query, fog.UUID, fog.Name, fog.Location, fog.Latitude, fog.Longitude,
			fog.Description, fog.FogTypeID, c.NetworkInterface, c.DockerURL, c.DiskLimit, c.DiskDirectory,
			c.MemoryLimit, c.CPULimit, c.LogLimit, c.LogDirectory, c.LogFileCount, c.StatusFrequency,
			c.ChangeFrequency, c.DeviceScanFrequency, fog.UserID)
		if err := row.Scan(&fog.CreatedAt, &fog.UpdatedAt); err != nil {
			if err == sql.ErrNoRows {
				log.Ctx(ctx).Info().Str("uuid", fog.UUID.String()).Msg("fog already exists")
				return dberror.ErrAlreadyExists.Msg("fog already exists")
			}
			log.Ctx(ctx).Error().Err(err).Str("uuid", fog.UUID.String()).Msg("failed to insert fog")
			return dberror.FromPgError(err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO change_trackings (fog_uuid) VALUES ($1);`, fog.UUID); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("uuid", fog.UUID.String()).Msg("failed to insert change tracking")
			return dberror.FromPgError(err)
		}
		return nil
	})
}

func (h *FogDb) GetFog(ctx context.Context, id uuid.UUID) (*models.Fog, error) {
	var fog models.Fog
	err := scanFog(h.conn().QueryRowContext(ctx, `SELECT `+fogColumns+` FROM fogs WHERE uuid = $1;`, id), &fog)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("uuid", id.String()).Msg("fog not found")
			return nil, dberror.ErrNotFound.Msg("fog not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("uuid", id.String()).Msg("failed to retrieve fog")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return &fog, nil
}

// ListFogs returns the fogs owned by userID, or every fog when userID is nil.
func (h *FogDb) ListFogs(ctx context.Context, userID *int64) ([]models.Fog, error) {
	query := `SELECT ` + fogColumns + ` FROM fogs`
	var args []any
	if userID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *userID)
	}
	rows, err := h.conn().QueryContext(ctx, query+` ORDER BY created_at;`, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list fogs")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var fogs []models.Fog
	for rows.Next() {
		var fog models.Fog
		if err := scanFog(rows, &fog); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan fog")
			return nil, dberror.ErrDatabase.Err(err)
		}
		fogs = append(fogs, fog)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return fogs, nil
}

// UpdateFog writes the user editable fields and the agent configuration.
func (h *FogDb) UpdateFog(ctx context.Context, fog *models.Fog) error {
	c := fog.FogAgentConfig
	query := `
		UPDATE fogs
		SET name = $2, location = $3, latitude = $4, longitude = $5, description = $6, fog_type_id = $7,
			network_interface = $8, docker_url = $9, disk_limit = $10, disk_directory = $11, memory_limit = $12,
			cpu_limit = $13, log_limit = $14, log_directory = $15, log_file_count = $16, status_frequency = $17,
			change_frequency = $18, device_scan_frequency = $19, updated_at = now()
		WHERE uuid = $1;
	`
	result, err := h.conn().ExecContext(ctx, query, fog.UUID, fog.Name, fog.Location, fog.Latitude, fog.Longitude,
		fog.Description, fog.FogTypeID, c.NetworkInterface, c.DockerURL, c.DiskLimit, c.DiskDirectory, c.MemoryLimit,
		c.CPULimit, c.LogLimit, c.LogDirectory, c.LogFileCount, c.StatusFrequency, c.ChangeFrequency,
		c.DeviceScanFrequency)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("uuid", fog.UUID.String()).Msg("failed to update fog")
		return dberror.FromPgError(err)
	}
	return checkAffected(ctx, result, "fog")
}

// UpdateFogStatus stores a status report from the agent.
func (h *FogDb) UpdateFogStatus(ctx context.Context, id uuid.UUID, s models.FogStatus, lastActive int64) error {
	if s.StatusInfo.Status == pgtype.Undefined {
		s.StatusInfo.Status = pgtype.Null
	}
	query := `
		UPDATE fogs
		SET daemon_status = $2, daemon_operating_duration = $3, daemon_last_start = $4, memory_usage = $5,
			disk_usage = $6, cpu_usage = $7, memory_violation = $8, disk_violation = $9, cpu_violation = $10,
			repository_count = $11, repository_status = $12, system_time = $13, last_status_time = $14,
			ip_address = $15, processed_messages = $16, message_speed = $17, last_command_time = $18,
			version = $19, status_info = $20, last_active = $21
		WHERE uuid = $1;
	`
	result, err := h.conn().ExecContext(ctx, query, id, s.DaemonStatus, s.DaemonOperatingDuration, s.DaemonLastStart,
		s.MemoryUsage, s.DiskUsage, s.CPUUsage, s.MemoryViolation, s.DiskViolation, s.CPUViolation,
		s.RepositoryCount, s.RepositoryStatus, s.SystemTime, s.LastStatusTime, s.IPAddress, s.ProcessedMessages,
		s.MessageSpeed, s.LastCommandTime, s.Version, s.StatusInfo, lastActive)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("uuid", id.String()).Msg("failed to update fog status")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "fog")
}

// ProvisionFog sets the fog type and access token issued during provisioning.
func (h *FogDb) ProvisionFog(ctx context.Context, id uuid.UUID, fogTypeID int, token string, lastActive int64) error {
	query := `
		UPDATE fogs
		SET fog_type_id = $2, access_token = $3, last_active = $4, updated_at = now()
		WHERE uuid = $1;
	`
	result, err := h.conn().ExecContext(ctx, query, id, fogTypeID, token, lastActive)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("uuid", id.String()).Msg("failed to provision fog")
		return dberror.FromPgError(err)
	}
	return checkAffected(ctx, result, "fog")
}

func (h *FogDb) DeleteFog(ctx context.Context, id uuid.UUID) error {
	result, err := h.conn().ExecContext(ctx, `DELETE FROM fogs WHERE uuid = $1;`, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("uuid", id.String()).Msg("failed to delete fog")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "fog")
}

func (h *FogDb) ListFogTypes(ctx context.Context) ([]models.FogType, error) {
	rows, err := h.conn().QueryContext(ctx, `SELECT id, name, image, description FROM fog_types ORDER BY id;`)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list fog types")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var types []models.FogType
	for rows.Next() {
		var t models.FogType
		if err := rows.Scan(&t.ID, &t.Name, &t.Image, &t.Description); err != nil {
			return nil, dberror.ErrDatabase.Err(err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return types, nil
}

func (h *FogDb) GetFogType(ctx context.Context, id int) (*models.FogType, error) {
	var t models.FogType
	row := h.conn().QueryRowContext(ctx, `SELECT id, name, image, description FROM fog_types WHERE id = $1;`, id)
	if err := row.Scan(&t.ID, &t.Name, &t.Image, &t.Description); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Int("id", id).Msg("fog type not found")
			return nil, dberror.ErrNotFound.Msg("fog type not found")
		}
		log.Ctx(ctx).Error().Err(err).Int("id", id).Msg("failed to retrieve fog type")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return &t, nil
}
