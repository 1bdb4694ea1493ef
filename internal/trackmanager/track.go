// Package trackmanager manages tracks (flows) and the element instances,
// port mappings and routes that make them up. Every change that affects
// what a fog runs is flagged in that fog's change tracking.
package trackmanager

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

type TrackSpec struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,notBlank"`
	Description *string `json:"description,omitempty"`
	IsActivated *bool   `json:"isActivated,omitempty"`
}

func (s *TrackSpec) Validate() apperrors.Error {
	if ves := schemavalidator.Struct(s); ves != nil {
		return ErrInvalidTrack.Err(ves)
	}
	return nil
}

func CreateTrack(ctx context.Context, user *models.User, spec *TrackSpec) (*models.Track, apperrors.Error) {
	if user == nil {
		return nil, ErrUserRequired
	}
	if spec == nil || spec.Name == nil {
		return nil, ErrInvalidTrack.Msg("name is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	t := &models.Track{UserID: &user.ID}
	spec.applyTo(t)
	if err := db.DB(ctx).CreateTrack(ctx, t); err != nil {
		return nil, saveError(ctx, err)
	}
	return t, nil
}

func GetTrack(ctx context.Context, user *models.User, id int64) (*models.Track, apperrors.Error) {
	t, err := db.DB(ctx).GetTrack(ctx, id)
	if err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return nil, ErrTrackNotFound
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to load track")
		return nil, ErrUnableToLoad.Err(err)
	}
	if !ownedBy(user, t.UserID) {
		return nil, ErrTrackNotFound
	}
	return t, nil
}

func ListTracks(ctx context.Context, user *models.User) ([]models.Track, apperrors.Error) {
	var userID *int64
	if user != nil {
		userID = &user.ID
	}
	ts, err := db.DB(ctx).ListTracks(ctx, userID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list tracks")
		return nil, ErrUnableToLoad.Err(err)
	}
	return nonNil(ts), nil
}

// ListTracksForFog lists the tracks with elements placed on fog fogID.
func ListTracksForFog(ctx context.Context, user *models.User, fogID uuid.UUID) ([]models.Track, apperrors.Error) {
	ts, err := db.DB(ctx).ListTracksForFog(ctx, fogID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("fog_uuid", fogID.String()).Msg("failed to list tracks for fog")
		return nil, ErrUnableToLoad.Err(err)
	}
	return nonNil(lo.Filter(ts, func(t models.Track, _ int) bool { return ownedBy(user, t.UserID) })), nil
}

// UpdateTrack changes the supplied fields of a track. Activating or
// deactivating a track changes what its fogs run.
func UpdateTrack(ctx context.Context, user *models.User, id int64, spec *TrackSpec) (*models.Track, apperrors.Error) {
	if spec == nil {
		return nil, ErrInvalidTrack.Msg("empty update")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	t, aerr := GetTrack(ctx, user, id)
	if aerr != nil {
		return nil, aerr
	}
	wasActive := t.IsActivated
	spec.applyTo(t)
	if err := db.DB(ctx).UpdateTrack(ctx, t); err != nil {
		return nil, saveError(ctx, err)
	}
	if wasActive != t.IsActivated {
		if err := touchTrackFogs(ctx, t.ID, types.ChangeContainerList, types.ChangeRouting); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// DeleteTrack removes a track together with its element instances.
func DeleteTrack(ctx context.Context, user *models.User, id int64) apperrors.Error {
	if _, err := GetTrack(ctx, user, id); err != nil {
		return err
	}
	fogs, aerr := trackFogs(ctx, id)
	if aerr != nil {
		return aerr
	}
	if err := db.DB(ctx).DeleteTrack(ctx, id); err != nil {
		return saveError(ctx, err)
	}
	return changetracker.Touch(ctx, fogs, types.ChangeContainerList, types.ChangeContainerConfig, types.ChangeRouting)
}

func touchTrackFogs(ctx context.Context, trackID int64, categories ...types.ChangeCategory) apperrors.Error {
	fogs, err := trackFogs(ctx, trackID)
	if err != nil {
		return err
	}
	return changetracker.Touch(ctx, fogs, categories...)
}

// trackFogs returns the fogs the elements of a track are placed on.
func trackFogs(ctx context.Context, trackID int64) ([]uuid.UUID, apperrors.Error) {
	elements, err := db.DB(ctx).ListElementInstancesByTrack(ctx, trackID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("track_id", trackID).Msg("failed to list element instances")
		return nil, ErrUnableToLoad.Err(err)
	}
	return lo.FilterMap(elements, func(e models.ElementInstance, _ int) (uuid.UUID, bool) {
		if e.FogUUID == nil {
			return uuid.Nil, false
		}
		return *e.FogUUID, true
	}), nil
}

func (s *TrackSpec) applyTo(t *models.Track) {
	setIf(&t.Name, s.Name)
	setIf(&t.Description, s.Description)
	setIf(&t.IsActivated, s.IsActivated)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// A nil user is the administrative CLI scope.
func ownedBy(user *models.User, owner *int64) bool {
	if user == nil {
		return true
	}
	return owner != nil && *owner == user.ID
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func saveError(ctx context.Context, err error) apperrors.Error {
	switch {
	case errors.Is(err, dberror.ErrNotFound):
		return ErrTrackNotFound
	case errors.Is(err, dberror.ErrInvalidReference):
		return ErrInvalidReference
	case errors.Is(err, dberror.ErrAlreadyExists):
		return ErrAlreadyExists
	}
	log.Ctx(ctx).Error().Err(err).Msg("failed to save track")
	return ErrUnableToSave.Err(err)
}
