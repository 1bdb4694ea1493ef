package postgresql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
)

// CreateProvisionKey stores a new provisioning key. A fog holds at most one
// key at a time, so earlier keys of the fog are removed first.
func (h *FogDb) CreateProvisionKey(ctx context.Context, key *models.ProvisionKey) error {
	return h.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM fog_provision_keys WHERE fog_uuid = $1;`, key.FogUUID); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("fog_uuid", key.FogUUID.String()).Msg("failed to remove old provision keys")
			return dberror.ErrDatabase.Err(err)
		}
		query := `
			INSERT INTO fog_provision_keys (provisioning_key, expiration_time, fog_uuid)
			VALUES ($1, $2, $3)
			ON CONFLICT (provisioning_key) DO NOTHING
			RETURNING provisioning_key;
		`
		var inserted string
		err := tx.QueryRowContext(ctx, query, key.Key, key.ExpirationTime, key.FogUUID).Scan(&inserted)
		if err != nil {
			if err == sql.ErrNoRows {
				log.Ctx(ctx).Info().Str("fog_uuid", key.FogUUID.String()).Msg("provision key collision")
				return dberror.ErrAlreadyExists.Msg("provision key already exists")
			}
			log.Ctx(ctx).Error().Err(err).Str("fog_uuid", key.FogUUID.String()).Msg("failed to insert provision key")
			return dberror.FromPgError(err)
		}
		return nil
	})
}

func (h *FogDb) GetProvisionKey(ctx context.Context, key string) (*models.ProvisionKey, error) {
	var pk models.ProvisionKey
	row := h.conn().QueryRowContext(ctx, `
		SELECT provisioning_key, expiration_time, fog_uuid FROM fog_provision_keys
		WHERE provisioning_key = $1;`, key)
	if err := row.Scan(&pk.Key, &pk.ExpirationTime, &pk.FogUUID); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Msg("provision key not found")
			return nil, dberror.ErrNotFound.Msg("provision key not found")
		}
		log.Ctx(ctx).Error().Err(err).Msg("failed to retrieve provision key")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return &pk, nil
}

func (h *FogDb) DeleteProvisionKey(ctx context.Context, key string) error {
	result, err := h.conn().ExecContext(ctx, `DELETE FROM fog_provision_keys WHERE provisioning_key = $1;`, key)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to delete provision key")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "provision key")
}

// DeleteProvisionKeysForFog removes every key issued for the fog. It is not an
// error if there are none.
func (h *FogDb) DeleteProvisionKeysForFog(ctx context.Context, fogID uuid.UUID) error {
	_, err := h.conn().ExecContext(ctx, `DELETE FROM fog_provision_keys WHERE fog_uuid = $1;`, fogID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("fog_uuid", fogID.String()).Msg("failed to delete provision keys")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}
