package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mugiliam/fogcontroller/internal/config"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopDB struct {
	db.DB_
	closed *int
}

func (d nopDB) Close(context.Context) { *d.closed++ }

func fakeConnector(closed *int) func(ctx context.Context) (context.Context, error) {
	return func(ctx context.Context) (context.Context, error) {
		return db.WithDB(ctx, nopDB{closed: closed}), nil
	}
}

func newTestServer(t *testing.T, cfg config.Config, opts ...Option) (*FogControllerServer, *bytes.Buffer) {
	t.Helper()
	var logBuf bytes.Buffer
	closed := 0
	opts = append([]Option{
		WithConnector(fakeConnector(&closed)),
		WithLogger(zerolog.New(&logBuf)),
	}, opts...)
	s, err := CreateNewServer(cfg, nil, opts...)
	require.NoError(t, err, "create new server")
	return s, &logBuf
}

func executeTestRequest(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	s, _ := newTestServer(t, config.Default())
	s.MountHandlers()

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)
	return rr
}

func checkHeader(t *testing.T, h http.Header) {
	expected := "application/json"
	got := h.Get("Content-Type")
	assert.Equal(t, expected, got, "Content-Type expected %s, got %s", expected, got)
	assert.NotEmpty(t, h.Get("X-Request-ID"), "No Request Id")
}

func compareJson(t *testing.T, expected any, actual string) {
	j, err := json.Marshal(expected)
	assert.NoError(t, err, "json marshal")
	assert.JSONEq(t, string(j), actual, "Expected: %v\n Got: %v\n", expected, actual)
}
