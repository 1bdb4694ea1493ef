package apis

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/fogmanager"
	"github.com/mugiliam/fogcontroller/internal/httpx"
	"github.com/mugiliam/fogcontroller/internal/usermanager"
	"github.com/tidwall/gjson"
)

const tokenParam = "t"

// LoadUser authenticates authoring requests by the user's access token.
func LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		user, err := usermanager.Authenticate(ctx, userToken(r))
		if err != nil {
			httpx.SendError(ctx, w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(common.SetUserInContext(ctx, user)))
	})
}

func userToken(r *http.Request) string {
	if t := r.URL.Query().Get(tokenParam); t != "" {
		return t
	}
	if h := r.Header.Get("Authorization"); len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	if isForm(r) {
		return r.PostFormValue(tokenParam)
	}
	if r.Body == nil {
		return ""
	}
	// Peek at a JSON body; handlers read it again.
	b, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodySize))
	r.Body = io.NopCloser(bytes.NewReader(b))
	if err != nil {
		return ""
	}
	return gjson.GetBytes(b, tokenParam).String()
}

// LoadFog authenticates agent requests by the fog id and token in the path.
func LoadFog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		fog, err := fogmanager.Authenticate(ctx, chi.URLParam(r, "ID"), chi.URLParam(r, "Token"))
		if err != nil {
			httpx.SendError(ctx, w, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(common.SetFogInContext(ctx, fog)))
	})
}
