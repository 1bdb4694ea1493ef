package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/fogcontroller/internal/httpx"
	"github.com/mugiliam/fogcontroller/internal/trackmanager"
)

type route struct {
	Method  string
	Path    string
	Handler httpx.HandlerFunc
}

var publicHandlers = []route{
	{
		Method:  http.MethodGet,
		Path:    "/",
		Handler: getStatus,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/status",
		Handler: getStatus,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/status",
		Handler: getStatus,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/getfabrictypes",
		Handler: listFogTypes,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/instance/provision/key/{provisionKey}/fabrictype/{fabricType}",
		Handler: provisionFog,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/instance/provision/key/{provisionKey}/fabrictype/{fabricType}",
		Handler: provisionFog,
	},
}

// authoringHandlers act on behalf of the user owning the request token.
var authoringHandlers = []route{
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/organization/element/create",
		Handler: createCatalogItem,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/organization/element/update",
		Handler: updateCatalogItem,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/organization/element/delete",
		Handler: deleteCatalogItem,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/authoring/fabric/track/element/list/{trackId}",
		Handler: listTrackElements,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/element/instance/create",
		Handler: elementCreator(trackmanager.CreateElementInstance),
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/build/element/instance/create",
		Handler: elementCreator(trackmanager.BuildElementInstance),
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/element/instance/update",
		Handler: updateElementInstance,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/element/instance/config/update",
		Handler: updateElementConfig,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/element/instance/name/update",
		Handler: updateElementName,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/element/instance/delete",
		Handler: deleteElementInstance,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/element/instance/comsat/pipe/create",
		Handler: comsatPipe(true),
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/element/instance/comsat/pipe/delete",
		Handler: comsatPipe(false),
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/element/instance/port/create",
		Handler: createPort,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/element/instance/port/delete",
		Handler: deletePort,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/element/instance/route/create",
		Handler: createRoute,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/element/instance/route/delete",
		Handler: deleteRoute,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/authoring/integrator/instances/list/{userId}",
		Handler: listUserFogs,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/instance/create/type/{type}",
		Handler: createFogOfType,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/instance/getfabriclist",
		Handler: listFogs,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/fabric/instance/delete",
		Handler: deleteFog,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/integrator/instance/delete",
		Handler: deleteFog,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/integrator/instance/create",
		Handler: createFog,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/integrator/instance/update",
		Handler: updateFog,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/authoring/fabric/provisionkey/instanceid/{instanceId}",
		Handler: issueProvisionKey,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/fabric/provisioningkey/list/delete",
		Handler: deleteProvisionKeys,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/authoring/fabric/viewer/access",
		Handler: viewerAccess,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/authoring/fabric/track/list/{instanceId}",
		Handler: listFogTracks,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/user/track/create",
		Handler: createTrack,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/user/track/update",
		Handler: updateTrack,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/fabric/track/update",
		Handler: updateTrack,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/authoring/fabric/track/delete",
		Handler: deleteTrack,
	},
}

// agentHandlers serve the fog agent, authenticated by the fog id and token in the path.
var agentHandlers = []route{
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/instance/changes/id/{ID}/token/{Token}/timestamp/{TimeStamp}",
		Handler: fogChanges,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/instance/changes/id/{ID}/token/{Token}/timestamp/{TimeStamp}",
		Handler: fogChanges,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/instance/config/id/{ID}/token/{Token}",
		Handler: fogConfig,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/instance/config/id/{ID}/token/{Token}",
		Handler: fogConfig,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/instance/config/changes/id/{ID}/token/{Token}",
		Handler: fogConfigChanges,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/instance/status/id/{ID}/token/{Token}",
		Handler: fogStatus,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/instance/containerconfig/id/{ID}/token/{Token}",
		Handler: fogContainerConfig,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/instance/containerconfig/id/{ID}/token/{Token}",
		Handler: fogContainerConfig,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/instance/containerlist/id/{ID}/token/{Token}",
		Handler: fogContainerList,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/instance/containerlist/id/{ID}/token/{Token}",
		Handler: fogContainerList,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/instance/registries/id/{ID}/token/{Token}",
		Handler: fogRegistries,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/instance/registries/id/{ID}/token/{Token}",
		Handler: fogRegistries,
	},
	{
		Method:  http.MethodGet,
		Path:    "/api/v2/instance/routing/id/{ID}/token/{Token}",
		Handler: fogRouting,
	},
	{
		Method:  http.MethodPost,
		Path:    "/api/v2/instance/routing/id/{ID}/token/{Token}",
		Handler: fogRouting,
	},
}

// Router mounts every fog controller route on r.
func Router(r chi.Router) {
	mount(r, publicHandlers)
	r.Group(func(r chi.Router) {
		r.Use(LoadUser)
		mount(r, authoringHandlers)
	})
	r.Group(func(r chi.Router) {
		r.Use(LoadFog)
		mount(r, agentHandlers)
	})
}

func mount(r chi.Router, routes []route) {
	for _, h := range routes {
		r.Method(h.Method, h.Path, httpx.WrapHttpRsp(h.Handler))
	}
}
