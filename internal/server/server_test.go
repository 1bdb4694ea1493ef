package server

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mugiliam/fogcontroller/internal/config"
	"github.com/mugiliam/fogcontroller/internal/httpx"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNewServerRequiresDatabase(t *testing.T) {
	_, err := CreateNewServer(config.Default(), nil)
	assert.ErrorIs(t, err, errNoDatabase)
}

func TestRequestReturnsConnection(t *testing.T) {
	closed := 0
	s, err := CreateNewServer(config.Default(), nil, WithConnector(fakeConnector(&closed)))
	require.NoError(t, err)
	s.MountHandlers()

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, closed)
}

func TestConnectionFailureIsGeneric500(t *testing.T) {
	s, logBuf := newTestServer(t, config.Default(), WithConnector(func(ctx context.Context) (context.Context, error) {
		return ctx, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	}))
	s.MountHandlers()

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v2/getfabrictypes", nil))
	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, httpx.UnexpectedErrorMsg, rr.Body.String())
	assert.Contains(t, logBuf.String(), "connection refused")
}

func TestHandleCORS(t *testing.T) {
	cfg := config.Default()
	cfg.Server.HandleCORS = true
	cfg.Server.CORSOrigin = "https://console.example.com"
	s, _ := newTestServer(t, cfg)
	s.MountHandlers()

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/v2/status", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://console.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRunPlainHTTP(t *testing.T) {
	s, _ := newTestServer(t, config.Default())
	var gotSecure *bool
	s.listen = func(srv *http.Server, secure bool) error {
		gotSecure = &secure
		assert.Equal(t, ":54421", srv.Addr)
		assert.Nil(t, srv.TLSConfig)
		return http.ErrServerClosed
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Run(ctx))
	require.NotNil(t, gotSecure)
	assert.False(t, *gotSecure)
}

func TestRunWithUnreadableSSLDoesNotListen(t *testing.T) {
	cfg := config.Default()
	cfg.Server.SSLKey = "/etc/fogcontroller/missing.key"
	cfg.Server.SSLCert = "/etc/fogcontroller/missing.crt"
	s, logBuf := newTestServer(t, cfg, WithFs(afero.NewMemMapFs()))
	s.listen = func(*http.Server, bool) error {
		t.Error("listener must not start")
		return nil
	}
	assert.NoError(t, s.Run(context.Background()))
	assert.Contains(t, logBuf.String(), "invalid SSL configuration")
	assert.Contains(t, logBuf.String(), "missing.key")
}

func TestRunWithSSLRequestsClientCerts(t *testing.T) {
	certPEM, keyPEM := selfSigned(t)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/ssl/server.key", keyPEM, 0o600))
	require.NoError(t, afero.WriteFile(fs, "/ssl/server.crt", certPEM, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/ssl/intermediate.crt", certPEM, 0o644))

	cfg := config.Default()
	cfg.Server.SSLKey = "/ssl/server.key"
	cfg.Server.SSLCert = "/ssl/server.crt"
	cfg.Server.IntermediateCert = "/ssl/intermediate.crt"
	s, _ := newTestServer(t, cfg, WithFs(fs))

	called := false
	s.listen = func(srv *http.Server, secure bool) error {
		called = true
		assert.True(t, secure)
		require.NotNil(t, srv.TLSConfig)
		assert.Equal(t, tls.RequestClientCert, srv.TLSConfig.ClientAuth)
		require.Len(t, srv.TLSConfig.Certificates, 1)
		assert.Len(t, srv.TLSConfig.Certificates[0].Certificate, 2, "leaf followed by the intermediate")
		return http.ErrServerClosed
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Run(ctx))
	assert.True(t, called)
}

func selfSigned(t *testing.T) (certPEM, keyPEM []byte) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "fogcontroller.local"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		DNSNames:     []string{"fogcontroller.local"},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	return certPEM, keyPEM
}
