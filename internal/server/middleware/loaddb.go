package middleware

import (
	"context"
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/httpx"
	"github.com/rs/zerolog/log"
)

// Connector borrows a database connection and returns a context carrying it.
type Connector func(ctx context.Context) (context.Context, error)

// LoadScopedDB gives every request its own connection, returned to the pool
// once the request is served.
func LoadScopedDB(connect Connector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := connect(r.Context())
			if err != nil {
				log.Ctx(r.Context()).Error().Err(err).Msg("no database connection for request")
				httpx.SendUnexpected(w)
				return
			}
			defer db.DB(ctx).Close(ctx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
