// Package api holds the wire types shared by the fog controller server and
// its clients.
package api

const (
	ApiVersion_2_0 = "2.0"
	ServerVersion  = "FogController: 1.0.0"
)

// StatusRsp is the body of the main page and of /api/v2/status.
type StatusRsp struct {
	Status        string `json:"status"`
	Timestamp     int64  `json:"timestamp"`
	ServerVersion string `json:"serverVersion"`
	ApiVersion    string `json:"apiVersion"`
}
