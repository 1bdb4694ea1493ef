package registrymanager

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registryDB struct {
	db.DB_
	registries map[int64]*models.Registry
	fogs       []models.Fog
	touched    map[uuid.UUID][]types.ChangeCategory
}

func newRegistryDB() *registryDB {
	return &registryDB{
		registries: map[int64]*models.Registry{
			1: {ID: 1, URL: "registry.hub.docker.com", IsPublic: true, Secure: true},
			2: {ID: 2, URL: "from_cache", IsPublic: true, Secure: true},
		},
		touched: map[uuid.UUID][]types.ChangeCategory{},
	}
}

func (d *registryDB) CreateRegistry(_ context.Context, r *models.Registry) error {
	r.ID = int64(len(d.registries) + 1)
	c := *r
	d.registries[r.ID] = &c
	return nil
}

func (d *registryDB) GetRegistry(_ context.Context, id int64) (*models.Registry, error) {
	r, ok := d.registries[id]
	if !ok {
		return nil, dberror.ErrNotFound
	}
	c := *r
	return &c, nil
}

func (d *registryDB) UpdateRegistry(_ context.Context, r *models.Registry) error {
	c := *r
	d.registries[r.ID] = &c
	return nil
}

func (d *registryDB) DeleteRegistry(_ context.Context, id int64) error {
	delete(d.registries, id)
	return nil
}

func (d *registryDB) ListFogs(_ context.Context, userID *int64) ([]models.Fog, error) {
	return lo.Filter(d.fogs, func(f models.Fog, _ int) bool {
		return userID == nil || (f.UserID != nil && *f.UserID == *userID)
	}), nil
}

func (d *registryDB) TouchChangeTracking(_ context.Context, ids []uuid.UUID, _ int64, categories ...types.ChangeCategory) error {
	for _, id := range ids {
		d.touched[id] = append(d.touched[id], categories...)
	}
	return nil
}

func TestRegistryLifecycle(t *testing.T) {
	store := newRegistryDB()
	owner := &models.User{ID: 1}
	other := &models.User{ID: 2}
	ownFog := models.Fog{UUID: uuid.New(), UserID: &owner.ID}
	otherFog := models.Fog{UUID: uuid.New(), UserID: &other.ID}
	store.fogs = []models.Fog{ownFog, otherFog}
	ctx := db.WithDB(context.Background(), store)

	_, err := CreateRegistry(ctx, owner, &RegistrySpec{Username: lo.ToPtr("me")})
	assert.ErrorIs(t, err, ErrInvalidRegistry)

	r, err := CreateRegistry(ctx, owner, &RegistrySpec{
		URL:      lo.ToPtr("registry.example.com"),
		IsPublic: lo.ToPtr(false),
		Username: lo.ToPtr("me"),
	})
	require.Nil(t, err)
	assert.True(t, r.Secure)
	assert.Equal(t, []types.ChangeCategory{types.ChangeRegistries}, store.touched[ownFog.UUID])
	assert.Empty(t, store.touched[otherFog.UUID])

	_, err = GetRegistry(ctx, other, r.ID)
	assert.ErrorIs(t, err, ErrRegistryNotFound)

	r, err = UpdateRegistry(ctx, owner, r.ID, &RegistrySpec{Password: lo.ToPtr("secret")})
	require.Nil(t, err)
	assert.Equal(t, "me", r.Username)
	assert.Equal(t, "secret", r.Password)

	_, err = UpdateRegistry(ctx, other, r.ID, &RegistrySpec{Password: lo.ToPtr("x")})
	assert.ErrorIs(t, err, ErrRegistryNotFound)

	assert.ErrorIs(t, DeleteRegistry(ctx, nil, 1), ErrBuiltinRegistry)
	assert.Nil(t, DeleteRegistry(ctx, owner, r.ID))
	assert.NotContains(t, store.registries, r.ID)
}

func TestInvalidEmail(t *testing.T) {
	ctx := db.WithDB(context.Background(), newRegistryDB())
	_, err := CreateRegistry(ctx, nil, &RegistrySpec{URL: lo.ToPtr("r.example.com"), UserEmail: lo.ToPtr("nope")})
	require.Error(t, err)
	assert.Equal(t, 400, err.StatusCode())
}
