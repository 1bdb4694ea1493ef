package postgresql

import (
	"context"
	"database/sql"

	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
)

const catalogItemColumns = `id, name, description, category, config_example, publisher, disk_required,
	ram_required, picture, is_public, registry_id, user_id, created_at, updated_at`

func scanCatalogItem(row interface{ Scan(...any) error }, c *models.CatalogItem) error {
	return row.Scan(&c.ID, &c.Name, &c.Description, &c.Category, &c.ConfigExample, &c.Publisher,
		&c.DiskRequired, &c.RAMRequired, &c.Picture, &c.IsPublic, &c.RegistryID, &c.UserID,
		&c.CreatedAt, &c.UpdatedAt)
}

// CreateCatalogItem inserts the item with its images and info types in one transaction.
func (h *FogDb) CreateCatalogItem(ctx context.Context, item *models.CatalogItem) error {
	return h.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			INSERT INTO catalog_items (name, description, category, config_example, publisher,
				disk_required, ram_required, picture, is_public, registry_id, user_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at, updated_at;
		`
		row := tx.QueryRowContext(ctx, query, item.Name, item.Description, item.Category, item.ConfigExample,
			item.Publisher, item.DiskRequired, item.RAMRequired, item.Picture, item.IsPublic, item.RegistryID, item.UserID)
		if err := row.Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("name", item.Name).Msg("failed to insert catalog item")
			return dberror.FromPgError(err)
		}
		return writeCatalogItemDetails(ctx, tx, item)
	})
}

// writeCatalogItemDetails replaces the images and info types of an item.
func writeCatalogItemDetails(ctx context.Context, tx *sql.Tx, item *models.CatalogItem) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_item_images WHERE catalog_item_id = $1;`, item.ID); err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", item.ID).Msg("failed to clear catalog item images")
		return dberror.ErrDatabase.Err(err)
	}
	for _, img := range item.Images {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO catalog_item_images (catalog_item_id, fog_type_id, container_image)
			VALUES ($1, $2, $3);`, item.ID, img.FogTypeID, img.ContainerImage)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Int64("id", item.ID).Int("fog_type_id", img.FogTypeID).Msg("failed to insert catalog item image")
			return dberror.FromPgError(err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_item_info_types WHERE catalog_item_id = $1;`, item.ID); err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", item.ID).Msg("failed to clear catalog item info types")
		return dberror.ErrDatabase.Err(err)
	}
	for direction, t := range map[string]*models.CatalogItemInfoType{
		models.InfoTypeInput:  item.InputType,
		models.InfoTypeOutput: item.OutputType,
	} {
		if t == nil {
			continue
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO catalog_item_info_types (catalog_item_id, direction, info_type, info_format)
			VALUES ($1, $2, $3, $4);`, item.ID, direction, t.InfoType, t.InfoFormat)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Int64("id", item.ID).Str("direction", direction).Msg("failed to insert catalog item info type")
			return dberror.ErrDatabase.Err(err)
		}
	}
	return nil
}

func (h *FogDb) GetCatalogItem(ctx context.Context, id int64) (*models.CatalogItem, error) {
	var item models.CatalogItem
	row := h.conn().QueryRowContext(ctx, `SELECT `+catalogItemColumns+` FROM catalog_items WHERE id = $1;`, id)
	if err := scanCatalogItem(row, &item); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Int64("id", id).Msg("catalog item not found")
			return nil, dberror.ErrNotFound.Msg("catalog item not found")
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to retrieve catalog item")
		return nil, dberror.ErrDatabase.Err(err)
	}
	if err := h.loadCatalogItemDetails(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (h *FogDb) loadCatalogItemDetails(ctx context.Context, item *models.CatalogItem) error {
	rows, err := h.conn().QueryContext(ctx, `
		SELECT container_image, fog_type_id FROM catalog_item_images
		WHERE catalog_item_id = $1 ORDER BY fog_type_id;`, item.ID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", item.ID).Msg("failed to load catalog item images")
		return dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()
	item.Images = []models.CatalogItemImage{}
	for rows.Next() {
		var img models.CatalogItemImage
		if err := rows.Scan(&img.ContainerImage, &img.FogTypeID); err != nil {
			return dberror.ErrDatabase.Err(err)
		}
		item.Images = append(item.Images, img)
	}
	if err := rows.Err(); err != nil {
		return dberror.ErrDatabase.Err(err)
	}

	infoRows, err := h.conn().QueryContext(ctx, `
		SELECT direction, info_type, info_format FROM catalog_item_info_types
		WHERE catalog_item_id = $1;`, item.ID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", item.ID).Msg("failed to load catalog item info types")
		return dberror.ErrDatabase.Err(err)
	}
	defer infoRows.Close()
	for infoRows.Next() {
		var direction string
		var t models.CatalogItemInfoType
		if err := infoRows.Scan(&direction, &t.InfoType, &t.InfoFormat); err != nil {
			return dberror.ErrDatabase.Err(err)
		}
		if direction == models.InfoTypeInput {
			item.InputType = &t
		} else {
			item.OutputType = &t
		}
	}
	if err := infoRows.Err(); err != nil {
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// ListCatalogItems returns public items plus the items owned by userID.
// A nil userID returns every item.
func (h *FogDb) ListCatalogItems(ctx context.Context, userID *int64) ([]models.CatalogItem, error) {
	query := `SELECT ` + catalogItemColumns + ` FROM catalog_items`
	var args []any
	if userID != nil {
		query += ` WHERE is_public OR user_id = $1`
		args = append(args, *userID)
	}
	rows, err := h.conn().QueryContext(ctx, query+` ORDER BY id;`, args...)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list catalog items")
		return nil, dberror.ErrDatabase.Err(err)
	}
	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		if err := scanCatalogItem(rows, &item); err != nil {
			rows.Close()
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan catalog item")
			return nil, dberror.ErrDatabase.Err(err)
		}
		items = append(items, item)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}

	// details are loaded once the listing cursor is closed; the connection serves one query at a time
	for i := range items {
		if err := h.loadCatalogItemDetails(ctx, &items[i]); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// UpdateCatalogItem overwrites every column of the item and replaces its images and info types.
func (h *FogDb) UpdateCatalogItem(ctx context.Context, item *models.CatalogItem) error {
	return h.withTx(ctx, func(tx *sql.Tx) error {
		query := `
			UPDATE catalog_items
			SET name = $2, description = $3, category = $4, config_example = $5, publisher = $6,
				disk_required = $7, ram_required = $8, picture = $9, is_public = $10, registry_id = $11,
				updated_at = now()
			WHERE id = $1
			RETURNING updated_at;
		`
		row := tx.QueryRowContext(ctx, query, item.ID, item.Name, item.Description, item.Category, item.ConfigExample,
			item.Publisher, item.DiskRequired, item.RAMRequired, item.Picture, item.IsPublic, item.RegistryID)
		if err := row.Scan(&item.UpdatedAt); err != nil {
			if err == sql.ErrNoRows {
				log.Ctx(ctx).Info().Int64("id", item.ID).Msg("catalog item not found for update")
				return dberror.ErrNotFound.Msg("catalog item not found for update")
			}
			log.Ctx(ctx).Error().Err(err).Int64("id", item.ID).Msg("failed to update catalog item")
			return dberror.FromPgError(err)
		}
		return writeCatalogItemDetails(ctx, tx, item)
	})
}

func (h *FogDb) DeleteCatalogItem(ctx context.Context, id int64) error {
	result, err := h.conn().ExecContext(ctx, `DELETE FROM catalog_items WHERE id = $1;`, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete catalog item")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "catalog item")
}
