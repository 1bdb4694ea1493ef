package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mugiliam/fogcontroller/internal/apperrors"
	"github.com/rs/zerolog/log"
)

// UnexpectedErrorMsg is the only text a client sees for an unhandled error.
const UnexpectedErrorMsg = "Hmm, what you have encountered is unexpected. If problem persists, contact app provider."

// Error is a failure meant to be shown to the client.
type Error struct {
	StatusCode  int
	Description string
}

type errorRsp struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"errormessage"`
}

func (e *Error) Error() string {
	return e.Description
}

func (e *Error) Send(w http.ResponseWriter) {
	b, _ := json.Marshal(errorRsp{Status: "failure", ErrorMessage: e.Description})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_, _ = w.Write(b)
}

func newError(code int, def string, desc ...string) *Error {
	e := &Error{StatusCode: code, Description: def}
	if len(desc) > 0 {
		e.Description = desc[0]
	}
	return e
}

func ErrInvalidRequest(desc ...string) *Error {
	return newError(http.StatusBadRequest, "invalid request", desc...)
}

func ErrUnableToReadRequest(desc ...string) *Error {
	return newError(http.StatusBadRequest, "unable to read request", desc...)
}

func ErrUnauthorized(desc ...string) *Error {
	return newError(http.StatusUnauthorized, "unauthorized", desc...)
}

func ErrNotFound(desc ...string) *Error {
	return newError(http.StatusNotFound, "not found", desc...)
}

// SendError writes err to the client. Client errors (an *Error or an
// apperrors.Error carrying a 4xx status) are sent as is; anything else is
// logged and answered with a generic 500.
func SendError(ctx context.Context, w http.ResponseWriter, err error) {
	var he *Error
	if errors.As(err, &he) && isClientError(he.StatusCode) {
		he.Send(w)
		return
	}
	var ae apperrors.Error
	if errors.As(err, &ae) && isClientError(ae.StatusCode()) {
		(&Error{StatusCode: ae.StatusCode(), Description: ae.ErrorAll()}).Send(w)
		return
	}
	log.Ctx(ctx).Error().Err(err).Msg("App crashed with error")
	SendUnexpected(w)
}

// SendUnexpected writes the fixed 500 response.
func SendUnexpected(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(UnexpectedErrorMsg))
}

func isClientError(code int) bool {
	return code >= 400 && code < 500
}
