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
)

func ListPorts(ctx context.Context, user *models.User, elementID uuid.UUID) ([]models.ElementInstancePort, apperrors.Error) {
	if _, err := GetElementInstance(ctx, user, elementID); err != nil {
		return nil, err
	}
	ports, err := db.DB(ctx).ListPorts(ctx, elementID)
	if err != nil {
		return nil, ErrUnableToLoad.Err(err)
	}
	return nonNil(ports), nil
}

// CreatePort maps an internal container port of an element instance to a
// port on its fog.
func CreatePort(ctx context.Context, user *models.User, elementID uuid.UUID, spec PortSpec) (*models.ElementInstancePort, apperrors.Error) {
	if ves := schemavalidator.Struct(&spec); ves != nil {
		return nil, ErrInvalidElementInstance.Err(ves)
	}
	e, aerr := GetElementInstance(ctx, user, elementID)
	if aerr != nil {
		return nil, aerr
	}
	p := &models.ElementInstancePort{
		ElementInstanceUUID: elementID,
		PortInternal:        spec.Internal,
		PortExternal:        spec.External,
		IsPublic:            spec.PublicAccess,
	}
	if err := db.DB(ctx).CreatePort(ctx, p); err != nil {
		return nil, saveError(ctx, err)
	}
	if err := changetracker.TouchFog(ctx, e.FogUUID, types.ChangeContainerList); err != nil {
		return nil, err
	}
	return p, nil
}

func DeletePort(ctx context.Context, user *models.User, elementID uuid.UUID, internal int) apperrors.Error {
	e, aerr := GetElementInstance(ctx, user, elementID)
	if aerr != nil {
		return aerr
	}
	if err := db.DB(ctx).DeletePort(ctx, elementID, internal); err != nil {
		return portError(ctx, err)
	}
	return changetracker.TouchFog(ctx, e.FogUUID, types.ChangeContainerList)
}

// SetComsatPipe opens or closes public access to a mapped port.
func SetComsatPipe(ctx context.Context, user *models.User, elementID uuid.UUID, internal int, open bool) apperrors.Error {
	e, aerr := GetElementInstance(ctx, user, elementID)
	if aerr != nil {
		return aerr
	}
	if err := db.DB(ctx).SetPortPublic(ctx, elementID, internal, open); err != nil {
		return portError(ctx, err)
	}
	return changetracker.TouchFog(ctx, e.FogUUID, types.ChangeContainerList)
}

func portError(ctx context.Context, err error) apperrors.Error {
	if errors.Is(err, dberror.ErrNotFound) {
		return ErrPortNotFound
	}
	log.Ctx(ctx).Error().Err(err).Msg("failed to save port mapping")
	return ErrUnableToSave.Err(err)
}

// CreateRoute sends the output of publisher to destination. Both instances
// must belong to user; the fogs of both are flagged.
func CreateRoute(ctx context.Context, user *models.User, publisher, destination uuid.UUID) (*models.Routing, apperrors.Error) {
	if publisher == destination {
		return nil, ErrInvalidElementInstance.Msg("an element instance cannot route to itself")
	}
	pub, aerr := GetElementInstance(ctx, user, publisher)
	if aerr != nil {
		return nil, aerr
	}
	dest, aerr := GetElementInstance(ctx, user, destination)
	if aerr != nil {
		return nil, aerr
	}
	r := &models.Routing{PublisherUUID: publisher, DestinationUUID: destination}
	if err := db.DB(ctx).CreateRouting(ctx, r); err != nil {
		return nil, saveError(ctx, err)
	}
	if err := touchRouteFogs(ctx, pub, dest); err != nil {
		return nil, err
	}
	return r, nil
}

func DeleteRoute(ctx context.Context, user *models.User, publisher, destination uuid.UUID) apperrors.Error {
	pub, aerr := GetElementInstance(ctx, user, publisher)
	if aerr != nil {
		return aerr
	}
	dest, aerr := GetElementInstance(ctx, user, destination)
	if aerr != nil {
		return aerr
	}
	if err := db.DB(ctx).DeleteRouting(ctx, publisher, destination); err != nil {
		if errors.Is(err, dberror.ErrNotFound) {
			return ErrRouteNotFound
		}
		return saveError(ctx, err)
	}
	return touchRouteFogs(ctx, pub, dest)
}

func touchRouteFogs(ctx context.Context, elements ...*models.ElementInstance) apperrors.Error {
	var fogs []uuid.UUID
	for _, e := range elements {
		if e.FogUUID != nil {
			fogs = append(fogs, *e.FogUUID)
		}
	}
	return changetracker.Touch(ctx, fogs, types.ChangeRouting)
}
