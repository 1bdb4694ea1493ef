package apis

import (
	"encoding/json"
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/fogmanager"
	"github.com/mugiliam/fogcontroller/internal/httpx"
	"github.com/mugiliam/fogcontroller/internal/types"
)

// Agent handlers run behind LoadFog, so the fog in the context is never nil.

func provisionFog(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	key, err := q.required("provisionKey")
	if err != nil {
		return nil, err
	}
	fogType, err := q.intParam("fabricType")
	if err != nil {
		return nil, err
	}
	p, aerr := fogmanager.Provision(ctx, key, types.FogTypeId(fogType))
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"id": p.ID, "token": p.Token}), nil
}

func fogChanges(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	since, err := q.int64Param("TimeStamp")
	if err != nil {
		return nil, err
	}
	changes, aerr := fogmanager.Changes(ctx, common.FogFromContext(ctx), since)
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"changes": changes}), nil
}

func fogConfig(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	return ok(ctx, map[string]any{"config": fogmanager.GetAgentConfig(common.FogFromContext(ctx))}), nil
}

func fogConfigChanges(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	var spec *fogmanager.AgentConfigSpec
	if q.PostForm != nil {
		s, aerr := fogmanager.AgentConfigSpecFromForm(q.PostForm)
		if aerr != nil {
			return nil, aerr
		}
		spec = s
	} else {
		spec = &fogmanager.AgentConfigSpec{}
		if len(q.body) > 0 {
			if err := json.Unmarshal(q.body, spec); err != nil {
				return nil, fogmanager.ErrInvalidFog.Err(err)
			}
		}
	}
	if aerr := fogmanager.UpdateAgentConfig(ctx, common.FogFromContext(ctx), spec); aerr != nil {
		return nil, aerr
	}
	return ok(ctx, nil), nil
}

func fogStatus(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	q, err := newRequest(r)
	if err != nil {
		return nil, err
	}
	var spec *fogmanager.StatusSpec
	if q.PostForm != nil {
		s, aerr := fogmanager.StatusSpecFromForm(q.PostForm)
		if aerr != nil {
			return nil, aerr
		}
		spec = s
	} else {
		spec = &fogmanager.StatusSpec{}
		if len(q.body) > 0 {
			if err := json.Unmarshal(q.body, spec); err != nil {
				return nil, fogmanager.ErrInvalidFog.Err(err)
			}
		}
	}
	if aerr := fogmanager.UpdateStatus(ctx, common.FogFromContext(ctx), spec); aerr != nil {
		return nil, aerr
	}
	return ok(ctx, nil), nil
}

func fogContainerConfig(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	configs, aerr := fogmanager.ContainerConfigs(ctx, common.FogFromContext(ctx))
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"containerconfig": configs}), nil
}

func fogContainerList(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	containers, aerr := fogmanager.ContainerList(ctx, common.FogFromContext(ctx))
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"containerlist": containers}), nil
}

func fogRegistries(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	registries, aerr := fogmanager.Registries(ctx, common.FogFromContext(ctx))
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"registries": registries}), nil
}

func fogRouting(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	routes, aerr := fogmanager.Routing(ctx, common.FogFromContext(ctx))
	if aerr != nil {
		return nil, aerr
	}
	return ok(ctx, map[string]any{"routing": routes}), nil
}
