package cli

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/catalogmanager"
	"github.com/mugiliam/fogcontroller/internal/config"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/fogmanager"
	"github.com/mugiliam/fogcontroller/internal/registrymanager"
	"github.com/mugiliam/fogcontroller/internal/trackmanager"
	"github.com/mugiliam/fogcontroller/internal/usermanager"
)

//go:generate mockgen -destination=./mocks/mock_services.go -package=mocks github.com/mugiliam/fogcontroller/internal/cli CatalogService,RegistryService,FogService,TrackService,UserService,ConfigService

// The services run in the administrative scope: only creates take a user,
// which becomes the owner of the new object.

type CatalogService interface {
	CreateCatalogItem(ctx context.Context, user *models.User, spec *catalogmanager.CatalogItemSpec) (*models.CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, id int64, spec *catalogmanager.CatalogItemSpec) (*models.CatalogItem, error)
	DeleteCatalogItem(ctx context.Context, id int64) error
	ListCatalogItems(ctx context.Context) ([]models.CatalogItem, error)
	GetCatalogItem(ctx context.Context, id int64) (*models.CatalogItem, error)
}

type RegistryService interface {
	CreateRegistry(ctx context.Context, user *models.User, spec *registrymanager.RegistrySpec) (*models.Registry, error)
	UpdateRegistry(ctx context.Context, id int64, spec *registrymanager.RegistrySpec) (*models.Registry, error)
	DeleteRegistry(ctx context.Context, id int64) error
	ListRegistries(ctx context.Context) ([]models.Registry, error)
}

type FogService interface {
	CreateFog(ctx context.Context, user *models.User, spec *fogmanager.FogSpec) (*models.Fog, error)
	UpdateFog(ctx context.Context, id uuid.UUID, spec *fogmanager.FogSpec) (*models.Fog, error)
	DeleteFog(ctx context.Context, id uuid.UUID) error
	ListFogs(ctx context.Context) ([]models.Fog, error)
	GetFog(ctx context.Context, id uuid.UUID) (*models.Fog, error)
	IssueProvisionKey(ctx context.Context, id uuid.UUID) (*models.ProvisionKey, error)
}

type TrackService interface {
	CreateTrack(ctx context.Context, user *models.User, spec *trackmanager.TrackSpec) (*models.Track, error)
	UpdateTrack(ctx context.Context, id int64, spec *trackmanager.TrackSpec) (*models.Track, error)
	DeleteTrack(ctx context.Context, id int64) error
	ListTracks(ctx context.Context) ([]models.Track, error)
	GetTrack(ctx context.Context, id int64) (*models.Track, error)
}

type UserService interface {
	CreateUser(ctx context.Context, spec *usermanager.UserSpec) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, spec *usermanager.UserSpec) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	RegenerateToken(ctx context.Context, id int64) (*models.User, error)
}

type ConfigService interface {
	SetConfigValue(ctx context.Context, key, value string) error
	DeleteConfigValue(ctx context.Context, key string) error
	ListConfig(ctx context.Context) ([]models.Config, error)
}

type Services struct {
	Catalog  CatalogService
	Registry RegistryService
	Fogs     FogService
	Tracks   TrackService
	Users    UserService
	Config   ConfigService
}

// NewServices returns services backed by the domain managers. Every call
// expects a database connection in its context.
func NewServices(cfg config.Config) *Services {
	m := managers{provisionKeyTTL: cfg.Fog.ProvisionKeyTTL}
	return &Services{
		Catalog:  m,
		Registry: m,
		Fogs:     m,
		Tracks:   m,
		Users:    m,
		Config:   m,
	}
}

type managers struct {
	provisionKeyTTL time.Duration
}

func (managers) CreateCatalogItem(ctx context.Context, user *models.User, spec *catalogmanager.CatalogItemSpec) (*models.CatalogItem, error) {
	return catalogmanager.CreateCatalogItem(ctx, user, spec)
}

func (managers) UpdateCatalogItem(ctx context.Context, id int64, spec *catalogmanager.CatalogItemSpec) (*models.CatalogItem, error) {
	return catalogmanager.UpdateCatalogItem(ctx, nil, id, spec)
}

func (managers) DeleteCatalogItem(ctx context.Context, id int64) error {
	return catalogmanager.DeleteCatalogItem(ctx, nil, id)
}

func (managers) ListCatalogItems(ctx context.Context) ([]models.CatalogItem, error) {
	return catalogmanager.ListCatalogItems(ctx, nil)
}

func (managers) GetCatalogItem(ctx context.Context, id int64) (*models.CatalogItem, error) {
	return catalogmanager.GetCatalogItem(ctx, nil, id)
}

func (managers) CreateRegistry(ctx context.Context, user *models.User, spec *registrymanager.RegistrySpec) (*models.Registry, error) {
	return registrymanager.CreateRegistry(ctx, user, spec)
}

func (managers) UpdateRegistry(ctx context.Context, id int64, spec *registrymanager.RegistrySpec) (*models.Registry, error) {
	return registrymanager.UpdateRegistry(ctx, nil, id, spec)
}

func (managers) DeleteRegistry(ctx context.Context, id int64) error {
	return registrymanager.DeleteRegistry(ctx, nil, id)
}

func (managers) ListRegistries(ctx context.Context) ([]models.Registry, error) {
	return registrymanager.ListRegistries(ctx, nil)
}

func (managers) CreateFog(ctx context.Context, user *models.User, spec *fogmanager.FogSpec) (*models.Fog, error) {
	return fogmanager.CreateFog(ctx, user, spec)
}

func (managers) UpdateFog(ctx context.Context, id uuid.UUID, spec *fogmanager.FogSpec) (*models.Fog, error) {
	return fogmanager.UpdateFog(ctx, nil, id, spec)
}

func (managers) DeleteFog(ctx context.Context, id uuid.UUID) error {
	return fogmanager.DeleteFog(ctx, nil, id)
}

func (managers) ListFogs(ctx context.Context) ([]models.Fog, error) {
	return fogmanager.ListFogs(ctx, nil)
}

func (managers) GetFog(ctx context.Context, id uuid.UUID) (*models.Fog, error) {
	return fogmanager.GetFog(ctx, nil, id)
}

func (m managers) IssueProvisionKey(ctx context.Context, id uuid.UUID) (*models.ProvisionKey, error) {
	return fogmanager.IssueProvisionKey(ctx, nil, id, m.provisionKeyTTL)
}

func (managers) CreateTrack(ctx context.Context, user *models.User, spec *trackmanager.TrackSpec) (*models.Track, error) {
	return trackmanager.CreateTrack(ctx, user, spec)
}

func (managers) UpdateTrack(ctx context.Context, id int64, spec *trackmanager.TrackSpec) (*models.Track, error) {
	return trackmanager.UpdateTrack(ctx, nil, id, spec)
}

func (managers) DeleteTrack(ctx context.Context, id int64) error {
	return trackmanager.DeleteTrack(ctx, nil, id)
}

func (managers) ListTracks(ctx context.Context) ([]models.Track, error) {
	return trackmanager.ListTracks(ctx, nil)
}

func (managers) GetTrack(ctx context.Context, id int64) (*models.Track, error) {
	return trackmanager.GetTrack(ctx, nil, id)
}

func (managers) CreateUser(ctx context.Context, spec *usermanager.UserSpec) (*models.User, error) {
	return usermanager.CreateUser(ctx, spec)
}

func (managers) UpdateUser(ctx context.Context, id int64, spec *usermanager.UserSpec) (*models.User, error) {
	return usermanager.UpdateUser(ctx, id, spec)
}

func (managers) DeleteUser(ctx context.Context, id int64) error {
	return usermanager.DeleteUser(ctx, id)
}

func (managers) ListUsers(ctx context.Context) ([]models.User, error) {
	return usermanager.ListUsers(ctx)
}

func (managers) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return usermanager.GetUser(ctx, id)
}

func (managers) RegenerateToken(ctx context.Context, id int64) (*models.User, error) {
	return usermanager.RegenerateToken(ctx, id)
}

func (managers) SetConfigValue(ctx context.Context, key, value string) error {
	return db.DB(ctx).SetConfigValue(ctx, key, value)
}

func (managers) DeleteConfigValue(ctx context.Context, key string) error {
	return db.DB(ctx).DeleteConfigValue(ctx, key)
}

func (managers) ListConfig(ctx context.Context) ([]models.Config, error) {
	return db.DB(ctx).ListConfig(ctx)
}
