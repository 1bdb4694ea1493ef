package server

import (
	"net/http"
	"testing"

	"github.com/mugiliam/fogcontroller/pkg/api"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
)

func TestGetStatus(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		req, _ := http.NewRequest(method, "/api/v2/status", nil)

		response := executeTestRequest(t, req)
		require.Equal(t, http.StatusOK, response.Code)
		checkHeader(t, response.Result().Header)

		// the timestamp is the only moving part
		body, err := sjson.Delete(response.Body.String(), "timestamp")
		require.NoError(t, err)
		compareJson(t, map[string]string{
			"status":        "ok",
			"serverVersion": api.ServerVersion,
			"apiVersion":    api.ApiVersion_2_0,
		}, body)
	}
}
