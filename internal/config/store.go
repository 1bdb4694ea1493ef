package config

import (
	"context"
	"errors"

	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/schemavalidator"
	"github.com/rs/zerolog/log"
)

// Keys of the database config store.
const (
	KeyPort             = "port"
	KeySSLKey           = "ssl_key"
	KeySSLCert          = "ssl_cert"
	KeyIntermediateCert = "intermediate_cert"
	KeyComsatHost       = "comsat_host"
)

var StoreKeys = []string{KeyPort, KeySSLKey, KeySSLCert, KeyIntermediateCert, KeyComsatHost}

// Source reads a single value from the config store.
type Source interface {
	GetConfigValue(ctx context.Context, key string) (string, error)
}

// Store resolves runtime settings from the database, falling back to the
// file configuration for any key that is absent or unreadable.
type Store struct {
	src  Source
	file Config
}

func NewStore(src Source, file Config) *Store {
	return &Store{src: src, file: file}
}

// Resolved returns a copy of the file configuration with the stored
// overrides applied.
func (s *Store) Resolved(ctx context.Context) Config {
	c := s.file
	c.Server.Port = s.int(ctx, KeyPort, c.Server.Port)
	c.Server.SSLKey = s.string(ctx, KeySSLKey, c.Server.SSLKey)
	c.Server.SSLCert = s.string(ctx, KeySSLCert, c.Server.SSLCert)
	c.Server.IntermediateCert = s.string(ctx, KeyIntermediateCert, c.Server.IntermediateCert)
	c.Fog.ComsatHost = s.string(ctx, KeyComsatHost, c.Fog.ComsatHost)
	return c
}

func (s *Store) lookup(ctx context.Context, key string) (string, bool) {
	if s.src == nil {
		return "", false
	}
	v, err := s.src.GetConfigValue(ctx, key)
	if err != nil {
		if !errors.Is(err, dberror.ErrNotFound) {
			log.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("config store unavailable, using file value")
		}
		return "", false
	}
	return v, true
}

func (s *Store) string(ctx context.Context, key, fallback string) string {
	if v, ok := s.lookup(ctx, key); ok {
		return v
	}
	return fallback
}

func (s *Store) int(ctx context.Context, key string, fallback int) int {
	v, ok := s.lookup(ctx, key)
	if !ok {
		return fallback
	}
	n, err := schemavalidator.ParseInt(v)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("key", key).Str("value", v).Msg("invalid config value, using file value")
		return fallback
	}
	return n
}
