package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mugiliam/fogcontroller/internal/apis"
	"github.com/mugiliam/fogcontroller/internal/config"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dbmanager"
	"github.com/mugiliam/fogcontroller/internal/httpx"
	"github.com/mugiliam/fogcontroller/internal/server/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

var errNoDatabase = errors.New("server has no database")

type FogControllerServer struct {
	Router  *chi.Mux
	cfg     config.Config
	connect middleware.Connector
	fs      afero.Fs
	logger  zerolog.Logger
	listen  func(srv *http.Server, secure bool) error
}

type Option func(*FogControllerServer)

// WithFs sets the filesystem SSL material is read from.
func WithFs(fs afero.Fs) Option {
	return func(s *FogControllerServer) { s.fs = fs }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *FogControllerServer) { s.logger = l }
}

// WithConnector replaces the pool backed connector.
func WithConnector(c middleware.Connector) Option {
	return func(s *FogControllerServer) { s.connect = c }
}

// CreateNewServer builds a server for cfg. Every request borrows a
// connection from pool.
func CreateNewServer(cfg config.Config, pool *dbmanager.Pool, opts ...Option) (*FogControllerServer, error) {
	s := &FogControllerServer{
		Router: chi.NewRouter(),
		cfg:    cfg,
		fs:     afero.NewOsFs(),
		logger: log.Logger,
		listen: func(srv *http.Server, secure bool) error {
			if secure {
				return srv.ListenAndServeTLS("", "")
			}
			return srv.ListenAndServe()
		},
	}
	if pool != nil {
		s.connect = func(ctx context.Context) (context.Context, error) {
			return db.ConnCtx(ctx, pool)
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.connect == nil {
		return nil, errNoDatabase
	}
	return s, nil
}

func (s *FogControllerServer) MountHandlers() {
	s.Router.Use(httpx.RequestLogger(s.logger), httpx.Recoverer)
	if s.cfg.Server.HandleCORS {
		s.Router.Use(s.HandleCORS)
	}
	s.Router.Use(middleware.LoadConfig(&s.cfg), middleware.LoadScopedDB(s.connect))
	apis.Router(s.Router)

	walkFunc := func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		s.logger.Trace().Str("method", method).Str("route", route).Msg("route")
		return nil
	}
	if err := chi.Walk(s.Router, walkFunc); err != nil {
		s.logger.Error().Err(err).Msg("unable to walk routes")
	}
}

func (s *FogControllerServer) HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.Server.CORSOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization")

		if r.Method == http.MethodOptions {
			log.Ctx(r.Context()).Debug().Msg("OPTIONS request")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// tlsConfig loads the server certificate, followed by the intermediate chain
// when one is configured. Client certificates are requested but never
// verified; callers authenticate with access tokens instead.
func (s *FogControllerServer) tlsConfig() (*tls.Config, error) {
	c := s.cfg.Server
	key, err := afero.ReadFile(s.fs, c.SSLKey)
	if err != nil {
		return nil, fmt.Errorf("reading ssl key: %w", err)
	}
	cert, err := afero.ReadFile(s.fs, c.SSLCert)
	if err != nil {
		return nil, fmt.Errorf("reading ssl cert: %w", err)
	}
	if c.IntermediateCert != "" {
		chain, err := afero.ReadFile(s.fs, c.IntermediateCert)
		if err != nil {
			return nil, fmt.Errorf("reading intermediate cert: %w", err)
		}
		cert = append(append(cert, '\n'), chain...)
	}
	pair, err := tls.X509KeyPair(cert, key)
	if err != nil {
		return nil, fmt.Errorf("loading key pair: %w", err)
	}
	return &tls.Config{
		Certificates: []tls.Certificate{pair},
		ClientAuth:   tls.RequestClientCert,
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// Run serves until ctx is done, then shuts down gracefully. HTTPS is used
// when an SSL key is configured. Unreadable SSL material is logged and the
// server is not started.
func (s *FogControllerServer) Run(ctx context.Context) error {
	baseCtx := s.logger.WithContext(context.WithoutCancel(ctx))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	secure := s.cfg.Server.SSLKey != ""
	if secure {
		tc, err := s.tlsConfig()
		if err != nil {
			s.logger.Error().Err(err).
				Str("ssl_key", s.cfg.Server.SSLKey).
				Str("ssl_cert", s.cfg.Server.SSLCert).
				Msg("invalid SSL configuration, server not started")
			return nil
		}
		srv.TLSConfig = tc
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info().Int("port", s.cfg.Server.Port).Bool("https", secure).Msg("fog controller listening")
		if err := s.listen(srv, secure); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		s.logger.Info().Msg("shutting down")
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
