package catalogmanager

import (
	"context"
	"encoding/json"
	"errors"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

const (
	defaultRegistryID = 1
	defaultPicture    = "images/shared/default.png"
)

// A nil user means the administrative CLI scope: every item is visible and
// modifiable. Otherwise a user sees public items and the items they own, and
// may only modify their own.

// CreateCatalogItem stores a new catalog item owned by user.
func CreateCatalogItem(ctx context.Context, user *models.User, spec *CatalogItemSpec) (*models.CatalogItem, apperrors.Error) {
	if user == nil {
		return nil, ErrUserRequired
	}
	if spec == nil || spec.Name == nil {
		return nil, ErrInvalidCatalogItem.Msg("name is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	item := &models.CatalogItem{
		ConfigExample: "{}",
		Picture:       defaultPicture,
		UserID:        &user.ID,
	}
	spec.applyTo(item)
	if item.RegistryID == nil {
		item.RegistryID = lo.ToPtr(int64(defaultRegistryID))
	}

	if err := db.DB(ctx).CreateCatalogItem(ctx, item); err != nil {
		return nil, saveError(ctx, err)
	}
	return item, nil
}

// GetCatalogItem loads an item visible to user.
func GetCatalogItem(ctx context.Context, user *models.User, id int64) (*models.CatalogItem, apperrors.Error) {
	item, err := db.DB(ctx).GetCatalogItem(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrCatalogItemNotFound
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to load catalog item")
		return nil, ErrUnableToLoad.Err(err)
	}
	if !visible(user, item) {
		return nil, ErrCatalogItemNotFound
	}
	return item, nil
}

func ListCatalogItems(ctx context.Context, user *models.User) ([]models.CatalogItem, apperrors.Error) {
	var userID *int64
	if user != nil {
		userID = &user.ID
	}
	items, err := db.DB(ctx).ListCatalogItems(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list catalog items")
		return nil, ErrUnableToLoad.Err(err)
	}
	if items == nil {
		items = []models.CatalogItem{}
	}
	return items, nil
}

// UpdateCatalogItem applies spec to the stored item as a JSON merge patch:
// only the fields present in spec change, and a supplied images list
// replaces the stored one. An image entry without a container image keeps
// the stored image of its fog type.
func UpdateCatalogItem(ctx context.Context, user *models.User, id int64, spec *CatalogItemSpec) (*models.CatalogItem, apperrors.Error) {
	if spec == nil {
		return nil, ErrInvalidCatalogItem.Msg("empty update")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	item, aerr := loadOwned(ctx, user, id)
	if aerr != nil {
		return nil, aerr
	}

	patch := *spec
	patch.Images = keepStoredImages(spec.Images, item.Images)
	merged, err := mergeSpec(specFromItem(item), &patch)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to merge catalog item")
		return nil, ErrInvalidCatalogItem.Err(err)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	merged.applyTo(item)

	if err := db.DB(ctx).UpdateCatalogItem(ctx, item); err != nil {
		return nil, saveError(ctx, err)
	}
	return item, nil
}

func keepStoredImages(images []ImageSpec, stored []models.CatalogItemImage) []ImageSpec {
	if images == nil {
		return nil
	}
	return lo.Map(images, func(img ImageSpec, _ int) ImageSpec {
		if img.ContainerImage != nil {
			return img
		}
		if cur, ok := lo.Find(stored, func(s models.CatalogItemImage) bool { return s.FogTypeID == img.FogTypeID }); ok {
			img.ContainerImage = lo.ToPtr(cur.ContainerImage)
		}
		return img
	})
}

func mergeSpec(base, patch *CatalogItemSpec) (*CatalogItemSpec, error) {
	baseJSON, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	mergedJSON, err := jsonpatch.MergePatch(baseJSON, patchJSON)
	if err != nil {
		return nil, err
	}
	merged := &CatalogItemSpec{}
	if err := json.Unmarshal(mergedJSON, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func DeleteCatalogItem(ctx context.Context, user *models.User, id int64) apperrors.Error {
	if _, err := loadOwned(ctx, user, id); err != nil {
		return err
	}
	if err := db.DB(ctx).DeleteCatalogItem(ctx, id); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrCatalogItemNotFound
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete catalog item")
		return ErrUnableToSave.Err(err)
	}
	return nil
}

func loadOwned(ctx context.Context, user *models.User, id int64) (*models.CatalogItem, apperrors.Error) {
	item, err := GetCatalogItem(ctx, user, id)
	if err != nil {
		return nil, err
	}
	if !owned(user, item) {
		log.Ctx(ctx).Info().Int64("id", id).Int64("user_id", user.ID).Msg("catalog item not owned by user")
		return nil, ErrCatalogItemNotFound
	}
	return item, nil
}

func visible(user *models.User, item *models.CatalogItem) bool {
	return item.IsPublic || owned(user, item)
}

func owned(user *models.User, item *models.CatalogItem) bool {
	if user == nil {
		return true
	}
	return item.UserID != nil && *item.UserID == user.ID
}

func saveError(ctx context.Context, err error) apperrors.Error {
	if errors.Is(err, dberror.ErrInvalidReference) {
		return ErrInvalidRegistry
	}
	if errors.Is(err, dberror.ErrNotFound) {
		return ErrCatalogItemNotFound
	}
	log.Ctx(ctx).Error().Err(err).Msg("failed to save catalog item")
	return ErrUnableToSave.Err(err)
}
