package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/db/dbmanager"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/db/postgresql"
	"github.com/mugiliam/fogcontroller/internal/types"
	"github.com/rs/zerolog/log"
)

// DB_ is the data access interface of the fog controller. It wraps a single
// pooled connection for the lifetime of a request or CLI invocation.
type DB_ interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByAccessToken(ctx context.Context, token string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error

	// Registries
	CreateRegistry(ctx context.Context, r *models.Registry) error
	GetRegistry(ctx context.Context, id int64) (*models.Registry, error)
	ListRegistries(ctx context.Context, userID *int64) ([]models.Registry, error)
	UpdateRegistry(ctx context.Context, r *models.Registry) error
	DeleteRegistry(ctx context.Context, id int64) error

	// Catalog items
	CreateCatalogItem(ctx context.Context, item *models.CatalogItem) error
	GetCatalogItem(ctx context.Context, id int64) (*models.CatalogItem, error)
	ListCatalogItems(ctx context.Context, userID *int64) ([]models.CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, item *models.CatalogItem) error
	DeleteCatalogItem(ctx context.Context, id int64) error

	// Fogs
	CreateFog(ctx context.Context, fog *models.Fog) error
	GetFog(ctx context.Context, id uuid.UUID) (*models.Fog, error)
	ListFogs(ctx context.Context, userID *int64) ([]models.Fog, error)
	UpdateFog(ctx context.Context, fog *models.Fog) error
	UpdateFogStatus(ctx context.Context, id uuid.UUID, s models.FogStatus, lastActive int64) error
	ProvisionFog(ctx context.Context, id uuid.UUID, fogTypeID int, token string, lastActive int64) error
	DeleteFog(ctx context.Context, id uuid.UUID) error
	ListFogTypes(ctx context.Context) ([]models.FogType, error)
	GetFogType(ctx context.Context, id int) (*models.FogType, error)

	// Provisioning
	CreateProvisionKey(ctx context.Context, key *models.ProvisionKey) error
	GetProvisionKey(ctx context.Context, key string) (*models.ProvisionKey, error)
	DeleteProvisionKey(ctx context.Context, key string) error
	DeleteProvisionKeysForFog(ctx context.Context, fogID uuid.UUID) error

	// Change tracking
	GetChangeTracking(ctx context.Context, fogID uuid.UUID) (*models.ChangeTracking, error)
	TouchChangeTracking(ctx context.Context, fogIDs []uuid.UUID, at int64, categories ...types.ChangeCategory) error

	// Tracks
	CreateTrack(ctx context.Context, t *models.Track) error
	GetTrack(ctx context.Context, id int64) (*models.Track, error)
	ListTracks(ctx context.Context, userID *int64) ([]models.Track, error)
	ListTracksForFog(ctx context.Context, fogID uuid.UUID) ([]models.Track, error)
	UpdateTrack(ctx context.Context, t *models.Track) error
	DeleteTrack(ctx context.Context, id int64) error

	// Element instances, ports and routes
	CreateElementInstance(ctx context.Context, e *models.ElementInstance) error
	GetElementInstance(ctx context.Context, id uuid.UUID) (*models.ElementInstance, error)
	ListElementInstancesByTrack(ctx context.Context, trackID int64) ([]models.ElementInstance, error)
	ListElementInstancesByFog(ctx context.Context, fogID uuid.UUID) ([]models.ElementInstance, error)
	UpdateElementInstance(ctx context.Context, e *models.ElementInstance) error
	DeleteElementInstance(ctx context.Context, id uuid.UUID) error
	CreatePort(ctx context.Context, p *models.ElementInstancePort) error
	ListPorts(ctx context.Context, elementID uuid.UUID) ([]models.ElementInstancePort, error)
	SetPortPublic(ctx context.Context, elementID uuid.UUID, portInternal int, public bool) error
	DeletePort(ctx context.Context, elementID uuid.UUID, portInternal int) error
	CreateRouting(ctx context.Context, r *models.Routing) error
	DeleteRouting(ctx context.Context, publisher, destination uuid.UUID) error
	ListRoutingsByFog(ctx context.Context, fogID uuid.UUID) ([]models.Routing, error)

	// Config store
	GetConfigValue(ctx context.Context, key string) (string, error)
	SetConfigValue(ctx context.Context, key, value string) error
	DeleteConfigValue(ctx context.Context, key string) error
	ListConfig(ctx context.Context) ([]models.Config, error)

	// Close returns the connection to the pool.
	Close(ctx context.Context)
}

var _ DB_ = (*postgresql.FogDb)(nil)

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "FogControllerDb"

// ConnCtx borrows a connection from pool and stores it in the returned context.
func ConnCtx(ctx context.Context, pool *dbmanager.Pool) (context.Context, error) {
	conn, err := pool.Conn(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to get db connection")
		return ctx, err
	}
	return context.WithValue(ctx, ctxDbKey, postgresql.NewFogDb(conn)), nil
}

// WithDB stores an existing DB_ in the context.
func WithDB(ctx context.Context, d DB_) context.Context {
	return context.WithValue(ctx, ctxDbKey, d)
}

func DB(ctx context.Context) DB_ {
	if d, ok := ctx.Value(ctxDbKey).(DB_); ok {
		return d
	}
	log.Ctx(ctx).Error().Msg("unable to get db connection from context")
	return nil
}
