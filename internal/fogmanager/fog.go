// Package fogmanager manages fog nodes: their lifecycle as seen by users,
// provisioning, and the views the fog agent polls.
package fogmanager

import (
	"context"
	"encoding/json"
	"errors"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/mugiliam/fogcontroller/internal/changetracker"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/schemavalidator"
	"github.com/mugiliam/fogcontroller/internal/types"
	"github.com/rs/zerolog/log"
)

const defaultFogName = "Unnamed ioFog 1"

// FogSpec holds the user editable fields of a fog, including the agent
// configuration the agent picks up on its next config poll.
type FogSpec struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,notBlank"`
	Location    *string  `json:"location,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Description *string  `json:"description,omitempty"`
	FogTypeID   *int     `json:"fogTypeId,omitempty" validate:"omitempty,fogType"`

	AgentConfigSpec
}

type AgentConfigSpec struct {
	NetworkInterface    *string  `json:"networkInterface,omitempty"`
	DockerURL           *string  `json:"dockerUrl,omitempty"`
	DiskLimit           *float64 `json:"diskLimit,omitempty" validate:"omitempty,gte=0"`
	DiskDirectory       *string  `json:"diskDirectory,omitempty"`
	MemoryLimit         *float64 `json:"memoryLimit,omitempty" validate:"omitempty,gte=0"`
	CPULimit            *float64 `json:"cpuLimit,omitempty" validate:"omitempty,gte=0,lte=100"`
	LogLimit            *float64 `json:"logLimit,omitempty" validate:"omitempty,gte=0"`
	LogDirectory        *string  `json:"logDirectory,omitempty"`
	LogFileCount        *int     `json:"logFileCount,omitempty" validate:"omitempty,gte=1"`
	StatusFrequency     *int     `json:"statusFrequency,omitempty" validate:"omitempty,gte=1"`
	ChangeFrequency     *int     `json:"changeFrequency,omitempty" validate:"omitempty,gte=1"`
	DeviceScanFrequency *int     `json:"deviceScanFrequency,omitempty" validate:"omitempty,gte=1"`
}

func (s *FogSpec) Validate() apperrors.Error {
	if ves := schemavalidator.Struct(s); ves != nil {
		return ErrInvalidFog.Err(ves)
	}
	return nil
}

func (s *AgentConfigSpec) Validate() apperrors.Error {
	if ves := schemavalidator.Struct(s); ves != nil {
		return ErrInvalidFog.Err(ves)
	}
	return nil
}

// CreateFogOfType creates an unnamed fog of the given type with the default
// agent configuration.
func CreateFogOfType(ctx context.Context, user *models.User, fogType types.FogTypeId) (*models.Fog, apperrors.Error) {
	if !fogType.IsValid() {
		return nil, ErrInvalidFogType
	}
	t := int(fogType)
	return CreateFog(ctx, user, &FogSpec{FogTypeID: &t})
}

// CreateFog creates a fog owned by user from spec; unset fields take the
// schema defaults.
func CreateFog(ctx context.Context, user *models.User, spec *FogSpec) (*models.Fog, apperrors.Error) {
	if user == nil {
		return nil, ErrUserRequired
	}
	if spec == nil {
		spec = &FogSpec{}
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	fog := newFog()
	fog.UserID = &user.ID
	if err := mergeInto(fog, spec); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to apply fog spec")
		return nil, ErrInvalidFog.Err(err)
	}
	if err := db.DB(ctx).CreateFog(ctx, fog); err != nil {
		return nil, saveError(ctx, err)
	}
	return fog, nil
}

// newFog returns a fog carrying the column defaults of the fogs table.
func newFog() *models.Fog {
	return &models.Fog{
		Name: defaultFogName,
		FogStatus: models.FogStatus{
			DaemonStatus: "UNKNOWN",
			IPAddress:    "0.0.0.0",
		},
		FogAgentConfig: models.FogAgentConfig{
			NetworkInterface:    "eth0",
			DockerURL:           "unix:///var/run/docker.sock",
			DiskLimit:           50,
			DiskDirectory:       "/var/lib/iofog/",
			MemoryLimit:         4096,
			CPULimit:            80,
			LogLimit:            10,
			LogDirectory:        "/var/log/iofog/",
			LogFileCount:        10,
			StatusFrequency:     10,
			ChangeFrequency:     20,
			DeviceScanFrequency: 60,
		},
	}
}

func GetFog(ctx context.Context, user *models.User, id uuid.UUID) (*models.Fog, apperrors.Error) {
	fog, err := db.DB(ctx).GetFog(ctx, id)
	if err != nil {
		return nil, loadError(ctx, err)
	}
	if !owned(user, fog) {
		log.Ctx(ctx).Info().Str("uuid", id.String()).Msg("fog not owned by user")
		return nil, ErrFogNotFound
	}
	return fog, nil
}

func ListFogs(ctx context.Context, user *models.User) ([]models.Fog, apperrors.Error) {
	var userID *int64
	if user != nil {
		userID = &user.ID
	}
	fogs, err := db.DB(ctx).ListFogs(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list fogs")
		return nil, ErrUnableToLoad.Err(err)
	}
	if fogs == nil {
		fogs = []models.Fog{}
	}
	return fogs, nil
}

// UpdateFog merges spec into the stored fog and flags a config change for
// the agent.
func UpdateFog(ctx context.Context, user *models.User, id uuid.UUID, spec *FogSpec) (*models.Fog, apperrors.Error) {
	if spec == nil {
		return nil, ErrInvalidFog.Msg("empty update")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	fog, aerr := GetFog(ctx, user, id)
	if aerr != nil {
		return nil, aerr
	}
	if err := mergeInto(fog, spec); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to merge fog spec")
		return nil, ErrInvalidFog.Err(err)
	}
	if err := db.DB(ctx).UpdateFog(ctx, fog); err != nil {
		return nil, saveError(ctx, err)
	}
	if err := changetracker.Touch(ctx, []uuid.UUID{fog.UUID}, types.ChangeConfig); err != nil {
		return nil, err
	}
	return fog, nil
}

func DeleteFog(ctx context.Context, user *models.User, id uuid.UUID) apperrors.Error {
	if _, err := GetFog(ctx, user, id); err != nil {
		return err
	}
	if err := db.DB(ctx).DeleteFog(ctx, id); err != nil {
		return saveError(ctx, err)
	}
	return nil
}

func ListFogTypes(ctx context.Context) ([]models.FogType, apperrors.Error) {
	ts, err := db.DB(ctx).ListFogTypes(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list fog types")
		return nil, ErrUnableToLoad.Err(err)
	}
	return ts, nil
}

// mergeInto applies spec to dst as a JSON merge patch. Fields hidden from
// JSON, such as the access token, are left untouched.
func mergeInto(dst any, spec any) error {
	base, err := json.Marshal(dst)
	if err != nil {
		return err
	}
	patch, err := json.Marshal(spec)
	if err != nil {
		return err
	}
	merged, err := jsonpatch.MergePatch(base, patch)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, dst)
}

// A nil user is the administrative CLI scope.
func owned(user *models.User, fog *models.Fog) bool {
	if user == nil {
		return true
	}
	return fog.UserID != nil && *fog.UserID == user.ID
}

func loadError(ctx context.Context, err error) apperrors.Error {
	if errors.Is(err, dberror.ErrNotFound) {
		return ErrFogNotFound
	}
	log.Ctx(ctx).Error().Err(err).Msg("failed to load fog")
	return ErrUnableToLoad.Err(err)
}

func saveError(ctx context.Context, err error) apperrors.Error {
	switch {
	case errors.Is(err, dberror.ErrNotFound):
		return ErrFogNotFound
	case errors.Is(err, dberror.ErrInvalidReference):
		return ErrInvalidFogType
	}
	log.Ctx(ctx).Error().Err(err).Msg("failed to save fog")
	return ErrUnableToSave.Err(err)
}
