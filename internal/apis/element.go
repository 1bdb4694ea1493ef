package apis

import (
	"context"
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/httpx"
	"github.com/mugiliam/fogcontroller/internal/trackmanager"
)

const instanceIDParam = "instanceId"

func listTrackElements(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	trackID, err := q.int64Param("trackId")
	if err != nil {
		return nil, err
	}
	elements, aerr := trackmanager.ListElementInstances(ctx, common.UserFromContext(ctx), trackID)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"elements": elements}), nil
}

type createElementFunc func(context.Context, *models.User, *trackmanager.ElementInstanceSpec) (*models.ElementInstance, apperrors.Error)

func elementCreator(create createElementFunc) httpx.HandlerFunc {
	return func(r *http.Request) (*httpx.Response, error) {
		ctx := r.Context()
		q, err := newRequest(r)
		if err != nil {
			return nil, err
		}
		b, err := q.payload(instanceIDParam)
		if err != nil {
			return nil, err
		}
		spec, aerr := trackmanager.ParseElementInstanceSpec(b)
		if aerr != nil {
			return nil, aerr
		}
		e, aerr := create(ctx, common.UserFromContext(ctx), spec)
		if aerr != nil {
			return nil, aerr
		}
		return ok(ctx, map[string]any{"id": e.UUID, "element": e}), nil
	}
}

func updateElementInstance(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.uuidParam(instanceIDParam)
	if err != nil {
		return nil, err
	}
	b, err := q.payload(instanceIDParam)
	if err != nil {
		return nil, err
	}
	spec, aerr := trackmanager.ParseElementInstanceSpec(b)
	if aerr != nil {
		return nil, aerr
	}
	e, aerr := trackmanager.UpdateElementInstance(ctx, common.UserFromContext(ctx), id, spec)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"id": e.UUID, "element": e}), nil
}

func updateElementConfig(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.uuidParam(instanceIDParam)
	if err != nil {
		return nil, err
	}
	config, err := q.required("config")
	if err != nil {
		return nil, err
	}
	e, aerr := trackmanager.UpdateElementConfig(ctx, common.UserFromContext(ctx), id, config)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"id": e.UUID}), nil
}

func updateElementName(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.uuidParam(instanceIDParam)
	if err != nil {
		return nil, err
	}
	name, err := q.required("name")
	if err != nil {
		return nil, err
	}
	e, aerr := trackmanager.UpdateElementName(ctx, common.UserFromContext(ctx), id, name)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"id": e.UUID}), nil
}

func deleteElementInstance(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.uuidParam(instanceIDParam)
	if err != nil {
		return nil, err
	}
	if aerr := trackmanager.DeleteElementInstance(ctx, common.UserFromContext(ctx), id); aerr != nil {
		return nil, aerr
	}
	return ok(ctx, nil), nil
}

func comsatPipe(open bool) httpx.HandlerFunc {
	return func(r *http.Request) (*httpx.Response, error) {
		ctx := r.Context()
		q, err := newRequest(r)
		if err != nil {
			return nil, err
		}
		id, err := q.uuidParam(instanceIDParam)
		if err != nil {
			return nil, err
		}
		internal, err := q.intParam("internalPort")
		if err != nil {
			return nil, err
		}
		if aerr := trackmanager.SetComsatPipe(ctx, common.UserFromContext(ctx), id, internal, open); aerr != nil {
			return nil, aerr
		}
		return ok(ctx, nil), nil
	}
}

func createPort(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.uuidParam(instanceIDParam)
	if err != nil {
		return nil, err
	}
	spec := trackmanager.PortSpec{}
	if spec.Internal, err = q.intParam("internalPort"); err != nil {
		return nil, err
	}
	if spec.External, err = q.intParam("externalPort"); err != nil {
		return nil, err
	}
	public, err := q.optBool("publicAccess")
	if err != nil {
		return nil, err
	}
	spec.PublicAccess = public != nil && *public
	port, aerr := trackmanager.CreatePort(ctx, common.UserFromContext(ctx), id, spec)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"port": port}), nil
}

func deletePort(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.uuidParam(instanceIDParam)
	if err != nil {
		return nil, err
	}
	internal, err := q.intParam("internalPort")
	if err != nil {
		return nil, err
	}
	if aerr := trackmanager.DeletePort(ctx, common.UserFromContext(ctx), id, internal); aerr != nil {
		return nil, aerr
	}
	return ok(ctx, nil), nil
}

func createRoute(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	pub, err := q.uuidParam("publisherInstanceId")
	if err != nil {
		return nil, err
	}
	dest, err := q.uuidParam("destinationInstanceId")
	if err != nil {
		return nil, err
	}
	route, aerr := trackmanager.CreateRoute(ctx, common.UserFromContext(ctx), pub, dest)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"route": route}), nil
}

func deleteRoute(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	pub, err := q.uuidParam("publisherInstanceId")
	if err != nil {
		return nil, err
	}
	dest, err := q.uuidParam("destinationInstanceId")
	if err != nil {
		return nil, err
	}
	if aerr := trackmanager.DeleteRoute(ctx, common.UserFromContext(ctx), pub, dest); aerr != nil {
		return nil, aerr
	}
	return ok(ctx, nil), nil
}
