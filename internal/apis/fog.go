package apis

import (
	"encoding/json"
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/fogmanager"
	"github.com/mugiliam/fogcontroller/internal/httpx"
	"github.com/mugiliam/fogcontroller/internal/trackmanager"
	"github.com/mugiliam/fogcontroller/internal/types"
)

func listUserFogs(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	userID, err := q.int64Param("userId")
	if err != nil {
		return nil, err
	}
	user := common.UserFromContext(ctx)
	if user.ID != userID {
		return nil, httpx.ErrUnauthorized()
	}
	fogs, aerr := fogmanager.ListFogs(ctx, user)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"instances": fogs}), nil
}

func listFogs(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	fogs, aerr := fogmanager.ListFogs(ctx, common.UserFromContext(ctx))
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"fabrics": fogs}), nil
}

func listFogTypes(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	fogTypes, aerr := fogmanager.ListFogTypes(ctx)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"fabricTypes": fogTypes}), nil
}

func createFogOfType(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	fogType, err := q.intParam("type")
	if err != nil {
		return nil, err
	}
	fog, aerr := fogmanager.CreateFogOfType(ctx, common.UserFromContext(ctx), types.FogTypeId(fogType))
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"id": fog.UUID}), nil
}

func parseFogSpec(b []byte) (*fogmanager.FogSpec, error) {
	spec := &fogmanager.FogSpec{}
	if len(b) == 0 {
		return spec, nil
	}
	if err := json.Unmarshal(b, spec); err != nil {
		return nil, fogmanager.ErrInvalidFog.Err(err)
	}
	return spec, nil
}

func createFog(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	b, err := q.payload(instanceIDParam)
	if err != nil {
		return nil, err
	}
	spec, err := parseFogSpec(b)
	if err != nil {
		return nil, err
	}
	fog, aerr := fogmanager.CreateFog(ctx, common.UserFromContext(ctx), spec)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"id": fog.UUID, "instance": fog}), nil
}

func updateFog(r *http.Request) (*httpx.Response, error) {
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
	spec, err := parseFogSpec(b)
	if err != nil {
		return nil, err
	}
	fog, aerr := fogmanager.UpdateFog(ctx, common.UserFromContext(ctx), id, spec)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"id": fog.UUID, "instance": fog}), nil
}

func deleteFog(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.uuidParam(instanceIDParam)
	if err != nil {
		return nil, err
	}
	if aerr := fogmanager.DeleteFog(ctx, common.UserFromContext(ctx), id); aerr != nil {
		return nil, aerr
	}
	return ok(ctx, nil), nil
}

func issueProvisionKey(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.uuidParam(instanceIDParam)
	if err != nil {
		return nil, err
	}
	ttl := common.ConfigFromContext(ctx).Fog.ProvisionKeyTTL
	key, aerr := fogmanager.IssueProvisionKey(ctx, common.UserFromContext(ctx), id, ttl)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{
		"provisionKey":   key.Key,
		"expirationTime": key.ExpirationTime,
	}), nil
}

func deleteProvisionKeys(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.uuidParam(instanceIDParam)
	if err != nil {
		return nil, err
	}
	if aerr := fogmanager.DeleteProvisionKeys(ctx, common.UserFromContext(ctx), id); aerr != nil {
		return nil, aerr
	}
	return ok(ctx, nil), nil
}

func viewerAccess(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.uuidParam(instanceIDParam)
	if err != nil {
		return nil, err
	}
	host := common.ConfigFromContext(ctx).Fog.ComsatHost
	pipes, aerr := fogmanager.ViewerAccess(ctx, common.UserFromContext(ctx), id, host)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"access": pipes}), nil
}

func listFogTracks(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	id, err := q.uuidParam(instanceIDParam)
	if err != nil {
		return nil, err
	}
	tracks, aerr := trackmanager.ListTracksForFog(ctx, common.UserFromContext(ctx), id)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"tracks": tracks}), nil
}
