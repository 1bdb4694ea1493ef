package httpx

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Response is the typed result of a handler. Response may be a []byte holding
// pre-encoded JSON or any value that encoding/json can marshal.
type Response struct {
	StatusCode int
	Location   string
	Response   any
}

// HandlerFunc is a handler that reports its outcome instead of writing it.
type HandlerFunc func(r *http.Request) (*Response, error)

// WrapHttpRsp adapts a HandlerFunc to net/http. Errors are translated by SendError.
func WrapHttpRsp(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rsp, err := h(r)
		if err != nil {
			SendError(r.Context(), w, err)
			return
		}
		if rsp == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		if rsp.Location != "" {
			w.Header().Set("Location", rsp.Location)
		}
		if rsp.Response == nil {
			w.WriteHeader(rsp.StatusCode)
			return
		}
		if b, ok := rsp.Response.([]byte); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(rsp.StatusCode)
			_, _ = w.Write(b)
			return
		}
		SendJsonRsp(r.Context(), w, rsp.StatusCode, rsp.Response)
	}
}

func SendJsonRsp(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to marshal response")
		SendUnexpected(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(b)
}
