package trackmanager

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/mugiliam/fogcontroller/internal/catalogmanager"
	"github.com/mugiliam/fogcontroller/internal/changetracker"
	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/fogmanager"
	"github.com/mugiliam/fogcontroller/internal/schemavalidator"
	"github.com/mugiliam/fogcontroller/internal/types"
	"github.com/rs/zerolog/log"
	"sigs.k8s.io/yaml"
)

// ElementInstanceSpec describes an element instance: a catalog item placed
// in a track and, optionally, on a fog.
type ElementInstanceSpec struct {
	Name           *string    `json:"name,omitempty" validate:"omitempty,notBlank"`
	CatalogItemID  *int64     `json:"catalogItemId,omitempty" validate:"omitempty,min=1"`
	TrackID        *int64     `json:"trackId,omitempty" validate:"omitempty,min=1"`
	FogUUID        *uuid.UUID `json:"fogInstanceId,omitempty"`
	Config         *string    `json:"config,omitempty" validate:"omitempty,json"`
	RootHostAccess *bool      `json:"rootHostAccess,omitempty"`
	LogSize        *int64     `json:"logSize,omitempty" validate:"omitempty,min=0"`
	Rebuild        *bool      `json:"rebuild,omitempty"`
	Ports          []PortSpec `json:"ports,omitempty" validate:"omitempty,unique=Internal,dive"`
}

type PortSpec struct {
	Internal     int  `json:"internal" validate:"min=1,max=65535"`
	External     int  `json:"external" validate:"min=1,max=65535"`
	PublicAccess bool `json:"publicAccess"`
}

const elementInstanceSchema = `{
	"type": "object",
	"properties": {
		"name":           {"type": "string", "minLength": 1},
		"catalogItemId":  {"type": "integer", "minimum": 1},
		"trackId":        {"type": "integer", "minimum": 1},
		"fogInstanceId":  {"type": "string", "pattern": "^[0-9a-fA-F-]{36}$"},
		"config":         {"type": "string"},
		"rootHostAccess": {"type": "boolean"},
		"logSize":        {"type": "integer", "minimum": 0},
		"rebuild":        {"type": "boolean"},
		"ports": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"internal":     {"type": "integer", "minimum": 1, "maximum": 65535},
					"external":     {"type": "integer", "minimum": 1, "maximum": 65535},
					"publicAccess": {"type": "boolean"}
				},
				"required":             ["internal", "external"],
				"additionalProperties": false
			}
		}
	},
	"additionalProperties": false
}`

var elementSchema = schemavalidator.MustCompile(elementInstanceSchema)

// ParseElementInstanceSpec decodes a JSON or YAML payload, checks it against
// the element instance schema and validates the result.
func ParseElementInstanceSpec(data []byte) (*ElementInstanceSpec, apperrors.Error) {
	if len(data) == 0 {
		return nil, ErrInvalidElementInstance.Msg("empty element instance")
	}
	j, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, ErrInvalidElementInstance.Err(err)
	}
	if ves := elementSchema.Validate(j); ves != nil {
		return nil, ErrInvalidElementInstance.Err(ves)
	}
	spec := &ElementInstanceSpec{}
	if err := json.Unmarshal(j, spec); err != nil {
		return nil, ErrInvalidElementInstance.Err(err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}

func (s *ElementInstanceSpec) Validate() apperrors.Error {
	if ves := schemavalidator.Struct(s); ves != nil {
		return ErrInvalidElementInstance.Err(ves)
	}
	return nil
}

// BuildElementInstance adds a catalog item to a track without placing it on
// a fog.
func BuildElementInstance(ctx context.Context, user *models.User, spec *ElementInstanceSpec) (*models.ElementInstance, apperrors.Error) {
	if spec != nil {
		s := *spec
		s.FogUUID = nil
		s.Ports = nil
		spec = &s
	}
	return CreateElementInstance(ctx, user, spec)
}

// CreateElementInstance creates an element instance with its port mappings.
// The config defaults to the catalog item's example config.
func CreateElementInstance(ctx context.Context, user *models.User, spec *ElementInstanceSpec) (*models.ElementInstance, apperrors.Error) {
	if user == nil {
		return nil, ErrUserRequired
	}
	if spec == nil || spec.Name == nil || spec.CatalogItemID == nil || spec.TrackID == nil {
		return nil, ErrInvalidElementInstance.Msg("name, catalogItemId and trackId are required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if _, err := GetTrack(ctx, user, *spec.TrackID); err != nil {
		return nil, err
	}
	item, err := catalogmanager.GetCatalogItem(ctx, user, *spec.CatalogItemID)
	if err != nil {
		return nil, err
	}
	if spec.FogUUID != nil {
		if _, err := fogmanager.GetFog(ctx, user, *spec.FogUUID); err != nil {
			return nil, err
		}
	}

	now := common.NowMillis(ctx)
	e := &models.ElementInstance{
		Name:              *spec.Name,
		Config:            item.ConfigExample,
		ConfigLastUpdated: now,
		CatalogItemID:     item.ID,
		TrackID:           *spec.TrackID,
		FogUUID:           spec.FogUUID,
		UserID:            &user.ID,
	}
	setIf(&e.Config, spec.Config)
	setIf(&e.RootHostAccess, spec.RootHostAccess)
	setIf(&e.LogSize, spec.LogSize)
	setIf(&e.Rebuild, spec.Rebuild)
	if err := db.DB(ctx).CreateElementInstance(ctx, e); err != nil {
		return nil, saveError(ctx, err)
	}
	for _, p := range spec.Ports {
		port := &models.ElementInstancePort{
			ElementInstanceUUID: e.UUID,
			PortInternal:        p.Internal,
			PortExternal:        p.External,
			IsPublic:            p.PublicAccess,
		}
		if err := db.DB(ctx).CreatePort(ctx, port); err != nil {
			return nil, saveError(ctx, err)
		}
	}
	if err := changetracker.TouchFog(ctx, e.FogUUID, types.ChangeContainerList, types.ChangeContainerConfig); err != nil {
		return nil, err
	}
	return e, nil
}

func GetElementInstance(ctx context.Context, user *models.User, id uuid.UUID) (*models.ElementInstance, apperrors.Error) {
	e, err := db.DB(ctx).GetElementInstance(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrElementInstanceNotFound
		}
		log.Ctx(ctx).Error().Err(err).Str("uuid", id.String()).Msg("failed to load element instance")
		return nil, ErrUnableToLoad.Err(err)
	}
	if !ownedBy(user, e.UserID) {
		return nil, ErrElementInstanceNotFound
	}
	return e, nil
}

func ListElementInstances(ctx context.Context, user *models.User, trackID int64) ([]models.ElementInstance, apperrors.Error) {
	if _, err := GetTrack(ctx, user, trackID); err != nil {
		return nil, err
	}
	es, err := db.DB(ctx).ListElementInstancesByTrack(ctx, trackID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("track_id", trackID).Msg("failed to list element instances")
		return nil, ErrUnableToLoad.Err(err)
	}
	return nonNil(es), nil
}

// UpdateElementInstance changes the supplied fields. The track and catalog
// item of an instance are fixed at creation and ignored here. Moving an
// instance to another fog flags both fogs.
func UpdateElementInstance(ctx context.Context, user *models.User, id uuid.UUID, spec *ElementInstanceSpec) (*models.ElementInstance, apperrors.Error) {
	if spec == nil {
		return nil, ErrInvalidElementInstance.Msg("empty update")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	e, aerr := GetElementInstance(ctx, user, id)
	if aerr != nil {
		return nil, aerr
	}
	if spec.FogUUID != nil {
		if _, err := fogmanager.GetFog(ctx, user, *spec.FogUUID); err != nil {
			return nil, err
		}
	}

	oldFog := e.FogUUID
	categories := []types.ChangeCategory{types.ChangeContainerList}
	setIf(&e.Name, spec.Name)
	setIf(&e.RootHostAccess, spec.RootHostAccess)
	setIf(&e.LogSize, spec.LogSize)
	setIf(&e.Rebuild, spec.Rebuild)
	if spec.Config != nil && *spec.Config != e.Config {
		e.Config = *spec.Config
		e.ConfigLastUpdated = common.NowMillis(ctx)
		categories = append(categories, types.ChangeContainerConfig)
	}
	if spec.FogUUID != nil {
		e.FogUUID = spec.FogUUID
		if oldFog == nil || *oldFog != *spec.FogUUID {
			categories = append(categories, types.ChangeContainerConfig, types.ChangeRouting)
		}
	}

	if err := db.DB(ctx).UpdateElementInstance(ctx, e); err != nil {
		return nil, elementSaveError(ctx, err)
	}
	fogs := []uuid.UUID{}
	for _, f := range []*uuid.UUID{oldFog, e.FogUUID} {
		if f != nil {
			fogs = append(fogs, *f)
		}
	}
	if err := changetracker.Touch(ctx, fogs, categories...); err != nil {
		return nil, err
	}
	return e, nil
}

func UpdateElementConfig(ctx context.Context, user *models.User, id uuid.UUID, config string) (*models.ElementInstance, apperrors.Error) {
	return UpdateElementInstance(ctx, user, id, &ElementInstanceSpec{Config: &config})
}

func UpdateElementName(ctx context.Context, user *models.User, id uuid.UUID, name string) (*models.ElementInstance, apperrors.Error) {
	return UpdateElementInstance(ctx, user, id, &ElementInstanceSpec{Name: &name})
}

func DeleteElementInstance(ctx context.Context, user *models.User, id uuid.UUID) apperrors.Error {
	e, aerr := GetElementInstance(ctx, user, id)
	if aerr != nil {
		return aerr
	}
	if err := db.DB(ctx).DeleteElementInstance(ctx, id); err != nil {
		return elementSaveError(ctx, err)
	}
	return changetracker.TouchFog(ctx, e.FogUUID, types.ChangeContainerList, types.ChangeContainerConfig, types.ChangeRouting)
}

func elementSaveError(ctx context.Context, err error) apperrors.Error {
	if errors.Is(err, dberror.ErrNotFound) {
		return ErrElementInstanceNotFound
	}
	return saveError(ctx, err)
}
