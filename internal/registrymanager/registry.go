// Package registrymanager manages the container registries fog agents pull
// microservice images from.
package registrymanager

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/mugiliam/fogcontroller/internal/changetracker"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/schemavalidator"
	"github.com/mugiliam/fogcontroller/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Registries 1 (docker hub) and 2 (the agent's local cache) are seeded by
// the schema and shared by everyone.
const lastBuiltinRegistry = 2

type RegistrySpec struct {
	URL          *string `json:"url,omitempty" validate:"omitempty,notBlank"`
	IsPublic     *bool   `json:"isPublic,omitempty"`
	Secure       *bool   `json:"secure,omitempty"`
	Certificate  *string `json:"certificate,omitempty"`
	RequiresCert *bool   `json:"requiresCert,omitempty"`
	Username     *string `json:"username,omitempty"`
	Password     *string `json:"password,omitempty"`
	UserEmail    *string `json:"userEmail,omitempty" validate:"omitempty,email"`
}

func (s *RegistrySpec) Validate() apperrors.Error {
	if ves := schemavalidator.Struct(s); ves != nil {
		return ErrInvalidRegistry.Err(ves)
	}
	return nil
}

// CreateRegistry adds a registry owned by user. A nil user creates an
// unowned registry from the CLI.
func CreateRegistry(ctx context.Context, user *models.User, spec *RegistrySpec) (*models.Registry, apperrors.Error) {
	if spec == nil || spec.URL == nil {
		return nil, ErrInvalidRegistry.Msg("url is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	r := &models.Registry{IsPublic: true, Secure: true}
	if user != nil {
		r.UserID = &user.ID
	}
	spec.applyTo(r)
	if err := db.DB(ctx).CreateRegistry(ctx, r); err != nil {
		return nil, saveError(ctx, err)
	}
	touchFogs(ctx, r)
	return r, nil
}

func GetRegistry(ctx context.Context, user *models.User, id int64) (*models.Registry, apperrors.Error) {
	r, err := db.DB(ctx).GetRegistry(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrRegistryNotFound
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to load registry")
		return nil, ErrUnableToLoad.Err(err)
	}
	if user != nil && !r.IsPublic && !ownedBy(r, user) {
		return nil, ErrRegistryNotFound
	}
	return r, nil
}

func ListRegistries(ctx context.Context, user *models.User) ([]models.Registry, apperrors.Error) {
	var userID *int64
	if user != nil {
		userID = &user.ID
	}
	rs, err := db.DB(ctx).ListRegistries(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list registries")
		return nil, ErrUnableToLoad.Err(err)
	}
	if rs == nil {
		rs = []models.Registry{}
	}
	return rs, nil
}

func UpdateRegistry(ctx context.Context, user *models.User, id int64, spec *RegistrySpec) (*models.Registry, apperrors.Error) {
	if spec == nil {
		return nil, ErrInvalidRegistry.Msg("empty update")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	r, aerr := loadModifiable(ctx, user, id)
	if aerr != nil {
		return nil, aerr
	}
	spec.applyTo(r)
	if err := db.DB(ctx).UpdateRegistry(ctx, r); err != nil {
		return nil, saveError(ctx, err)
	}
	touchFogs(ctx, r)
	return r, nil
}

func DeleteRegistry(ctx context.Context, user *models.User, id int64) apperrors.Error {
	r, aerr := loadModifiable(ctx, user, id)
	if aerr != nil {
		return aerr
	}
	if err := db.DB(ctx).DeleteRegistry(ctx, id); err != nil {
		return saveError(ctx, err)
	}
	touchFogs(ctx, r)
	return nil
}

func loadModifiable(ctx context.Context, user *models.User, id int64) (*models.Registry, apperrors.Error) {
	if id <= lastBuiltinRegistry {
		return nil, ErrBuiltinRegistry
	}
	r, err := GetRegistry(ctx, user, id)
	if err != nil {
		return nil, err
	}
	if user != nil && !ownedBy(r, user) {
		return nil, ErrRegistryNotFound
	}
	return r, nil
}

func ownedBy(r *models.Registry, user *models.User) bool {
	return r.UserID != nil && *r.UserID == user.ID
}

// touchFogs flags a registry change to every fog that can see r: the owner's
// fogs, or all fogs for a public or unowned registry. Failures are logged
// only; the registry itself was saved.
func touchFogs(ctx context.Context, r *models.Registry) {
	var owner *int64
	if !r.IsPublic {
		owner = r.UserID
	}
	fogs, err := db.DB(ctx).ListFogs(ctx, owner)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("registry_id", r.ID).Msg("failed to list fogs for registry change")
		return
	}
	ids := lo.Map(fogs, func(f models.Fog, _ int) uuid.UUID { return f.UUID })
	_ = changetracker.Touch(ctx, ids, types.ChangeRegistries)
}

func (s *RegistrySpec) applyTo(r *models.Registry) {
	setIf(&r.URL, s.URL)
	setIf(&r.IsPublic, s.IsPublic)
	setIf(&r.Secure, s.Secure)
	setIf(&r.Certificate, s.Certificate)
	setIf(&r.RequiresCert, s.RequiresCert)
	setIf(&r.Username, s.Username)
	setIf(&r.Password, s.Password)
	setIf(&r.UserEmail, s.UserEmail)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func saveError(ctx context.Context, err error) apperrors.Error {
	switch {
	case errors.Is(err, dberror.ErrNotFound):
		return ErrRegistryNotFound
	case errors.Is(err, dberror.ErrInvalidReference):
		return ErrInvalidRegistry.Msg("registry owner does not exist")
	}
	log.Ctx(ctx).Error().Err(err).Msg("failed to save registry")
	return ErrUnableToSave.Err(err)
}
