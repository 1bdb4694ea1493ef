package postgresql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/types"
	"github.com/rs/zerolog/log"
)

func (h *FogDb) GetChangeTracking(ctx context.Context, fogID uuid.UUID) (*models.ChangeTracking, error) {
	var ct models.ChangeTracking
	row := h.conn().QueryRowContext(ctx, `
		SELECT fog_uuid, config, container_config, container_list, routing, registries
		FROM change_trackings WHERE fog_uuid = $1;`, fogID)
	err := row.Scan(&ct.FogUUID, &ct.Config, &ct.ContainerConfig, &ct.ContainerList, &ct.Routing, &ct.Registries)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("fog_uuid", fogID.String()).Msg("change tracking not found")
			return nil, dberror.ErrNotFound.Msg("change tracking not found")
		}
		log.Ctx(ctx).Error().Err(err).Str("fog_uuid", fogID.String()).Msg("failed to retrieve change tracking")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return &ct, nil
}

// TouchChangeTracking stamps the given categories of each fog with at (unix millis).
// Fogs without a tracking row are skipped.
func (h *FogDb) TouchChangeTracking(ctx context.Context, fogIDs []uuid.UUID, at int64, categories ...types.ChangeCategory) error {
	if len(fogIDs) == 0 || len(categories) == 0 {
		return nil
	}
	sets := make([]string, 0, len(categories))
	for _, c := range categories {
		if !c.IsValid() {
			log.Ctx(ctx).Error().Str("category", string(c)).Msg("invalid change category")
			return dberror.ErrInvalidInput.Msg("invalid change category " + string(c))
		}
		sets = append(sets, string(c)+" = $2")
	}
	query := `UPDATE change_trackings SET ` + strings.Join(sets, ", ") + ` WHERE fog_uuid = $1;`

	return h.withTx(ctx, func(tx *sql.Tx) error {
		for _, id := range fogIDs {
			if _, err := tx.ExecContext(ctx, query, id, at); err != nil {
				log.Ctx(ctx).Error().Err(err).Str("fog_uuid", id.String()).Msg("failed to update change tracking")
				return dberror.ErrDatabase.Err(err)
			}
		}
		return nil
	})
}
