package apis

import (
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/httpx"
	"github.com/mugiliam/fogcontroller/pkg/api"
	"github.com/rs/zerolog/log"
)

func getStatus(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()
	log.Ctx(ctx).Debug().Msg("GetStatus")
	rsp := &api.StatusRsp{
		Status:        "ok",
		Timestamp:     common.NowMillis(ctx),
		ServerVersion: api.ServerVersion,
		ApiVersion:    api.ApiVersion_2_0,
	}
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}, nil
}
