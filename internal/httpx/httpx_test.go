package httpx

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.Handler) (*httptest.ResponseRecorder, *bytes.Buffer) {
	t.Helper()
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)
	handler := RequestLogger(logger)(Recoverer(h))
	req := httptest.NewRequest(http.MethodPost, "/api/v2/authoring/element/instance/update", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr, &logBuf
}

func TestWrapHttpRspSuccess(t *testing.T) {
	rr, _ := serve(t, WrapHttpRsp(func(r *http.Request) (*Response, error) {
		return &Response{StatusCode: http.StatusOK, Response: map[string]string{"status": "ok"}}, nil
	}))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestUnhandledErrorIsGeneric500(t *testing.T) {
	internal := errors.New("pq: relation \"fogs\" does not exist")
	rr, logBuf := serve(t, WrapHttpRsp(func(r *http.Request) (*Response, error) {
		return nil, internal
	}))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, UnexpectedErrorMsg, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "relation")
	assert.Contains(t, logBuf.String(), "relation")
}

func TestServerSideAppErrorIsGeneric500(t *testing.T) {
	dbErr := apperrors.New("db error").SetStatusCode(http.StatusInternalServerError)
	rr, _ := serve(t, WrapHttpRsp(func(r *http.Request) (*Response, error) {
		return nil, dbErr.Msg("failed to insert fog")
	}))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, UnexpectedErrorMsg, rr.Body.String())
}

func TestPanicIsGeneric500(t *testing.T) {
	rr, logBuf := serve(t, WrapHttpRsp(func(r *http.Request) (*Response, error) {
		var m map[string]int
		m["boom"] = 1
		return nil, nil
	}))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, UnexpectedErrorMsg, rr.Body.String())
	assert.Contains(t, logBuf.String(), "stack")
}

func TestClientErrorsAreSent(t *testing.T) {
	notFound := apperrors.New("error in processing track").New("track not found").SetStatusCode(http.StatusNotFound)
	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{
			name:     "httpx error",
			err:      ErrUnauthorized("invalid fog token"),
			code:     http.StatusUnauthorized,
			expected: `{"status":"failure","errormessage":"invalid fog token"}`,
		},
		{
			name:     "app error with client status",
			err:      notFound.Msg("track 7 not found"),
			code:     http.StatusNotFound,
			expected: `{"status":"failure","errormessage":"track 7 not found"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, _ := serve(t, WrapHttpRsp(func(r *http.Request) (*Response, error) {
				return nil, tt.err
			}))
			require.Equal(t, tt.code, rr.Code)
			assert.JSONEq(t, tt.expected, rr.Body.String())
		})
	}
}
