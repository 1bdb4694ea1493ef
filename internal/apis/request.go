package apis

import (
	"context"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/httpx"
	"github.com/mugiliam/fogcontroller/internal/schemavalidator"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const maxBodySize = 1 << 20

// request gives handlers one view over the places a parameter may come
// from: the path, the query string, a form body or a JSON body.
type request struct {
	*http.Request
	body []byte
}

func newRequest(r *http.Request) (*request, error) {
	q := &request{Request: r}
	if isForm(r) {
		if err := r.ParseForm(); err != nil {
			return nil, httpx.ErrUnableToReadRequest()
		}
		return q, nil
	}
	if r.Body == nil {
		return q, nil
	}
	b, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodySize))
	if err != nil {
		return nil, httpx.ErrUnableToReadRequest()
	}
	q.body = b
	return q, nil
}

func isForm(r *http.Request) bool {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mt == "application/x-www-form-urlencoded" || mt == "multipart/form-data"
}

func (q *request) param(name string) string {
	if v := chi.URLParam(q.Request, name); v != "" {
		return v
	}
	if v := q.URL.Query().Get(name); v != "" {
		return v
	}
	if q.PostForm != nil {
		if v := q.PostForm.Get(name); v != "" {
			return v
		}
	}
	if len(q.body) > 0 {
		res := gjson.GetBytes(q.body, name)
		if res.Type == gjson.String {
			return res.Str
		}
		if res.Exists() && res.Type != gjson.Null {
			return res.Raw
		}
	}
	return ""
}

func (q *request) required(name string) (string, error) {
	v := q.param(name)
	if v == "" {
		return "", httpx.ErrInvalidRequest(name + " is required")
	}
	return v, nil
}

func (q *request) int64Param(name string) (int64, error) {
	v, err := q.required(name)
	if err != nil {
		return 0, err
	}
	n, err := schemavalidator.ParseInt64(v)
	if err != nil {
		return 0, httpx.ErrInvalidRequest("invalid " + name)
	}
	return n, nil
}

func (q *request) intParam(name string) (int, error) {
	n, err := q.int64Param(name)
	return int(n), err
}

func (q *request) uuidParam(name string) (uuid.UUID, error) {
	v, err := q.required(name)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, httpx.ErrInvalidRequest("invalid " + name)
	}
	return id, nil
}

// optString and optBool return nil for an absent parameter.
func (q *request) optString(name string) *string {
	if v := q.param(name); v != "" {
		return &v
	}
	return nil
}

func (q *request) optBool(name string) (*bool, error) {
	v := q.param(name)
	if v == "" {
		return nil, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, httpx.ErrInvalidRequest("invalid " + name)
	}
	return &b, nil
}

// payload returns the JSON body without the given keys, which address the
// object rather than describe it. The access token is always dropped.
func (q *request) payload(drop ...string) ([]byte, error) {
	if q.PostForm != nil && len(q.body) == 0 {
		return nil, httpx.ErrInvalidRequest("expected a JSON body")
	}
	b := q.body
	for _, k := range append(drop, tokenParam) {
		if !gjson.GetBytes(b, k).Exists() {
			continue
		}
		var err error
		if b, err = sjson.DeleteBytes(b, k); err != nil {
			return nil, httpx.ErrInvalidRequest()
		}
	}
	return b, nil
}

// ok wraps fields in the success envelope the UI and agents expect.
func ok(ctx context.Context, fields map[string]any) *httpx.Response {
	rsp := lo.Assign(map[string]any{
		"status":    "ok",
		"timestamp": common.NowMillis(ctx),
	}, fields)
	return &httpx.Response{StatusCode: http.StatusOK, Response: rsp}
}
