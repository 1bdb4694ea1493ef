package apis

import (
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/httpx"
	"github.com/mugiliam/fogcontroller/internal/trackmanager"
)

func trackSpec(q *request) (*trackmanager.TrackSpec, error) {
	activated, err := q.optBool("isActivated")
	if err != nil {
		return nil, err
	}
	return &trackmanager.TrackSpec{
		Name:        q.optString("name"),
		Description: q.optString("description"),
		IsActivated: activated,
	}, nil
}

func createTrack(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	spec, err := trackSpec(q)
	if err != nil {
		return nil, err
	}
	t, aerr := trackmanager.CreateTrack(ctx, common.UserFromContext(ctx), spec)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"id": t.ID, "track": t}), nil
}

func updateTrack(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.int64Param("trackId")
	if err != nil {
		return nil, err
	}
	spec, err := trackSpec(q)
	if err != nil {
		return nil, err
	}
	t, aerr := trackmanager.UpdateTrack(ctx, common.UserFromContext(ctx), id, spec)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"id": t.ID, "track": t}), nil
}

func deleteTrack(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.int64Param("trackId")
	if err != nil {
		return nil, err
	}
	if aerr := trackmanager.DeleteTrack(ctx, common.UserFromContext(ctx), id); aerr != nil {
		return nil, aerr
	}
	return ok(ctx, nil), nil
}
