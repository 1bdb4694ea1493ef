package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/config"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/dbmanager"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *dbmanager.Pool

func TestMain(m *testing.M) {
	url := os.Getenv("FOG_TEST_DATABASE_URL")
	if url == "" {
		os.Exit(m.Run())
	}
	ctx := log.Logger.WithContext(context.Background())
	pool, err := dbmanager.Open(ctx, config.DatabaseConfig{URL: url})
	if err != nil {
		log.Fatal().Err(err).Msg("unable to open test database")
	}
	if err := Migrate(ctx, pool.DB()); err != nil {
		log.Fatal().Err(err).Msg("unable to migrate test database")
	}
	testPool = pool
	code := m.Run()
	pool.Close()
	os.Exit(code)
}

func newDb(t *testing.T) context.Context {
	t.Helper()
	if testPool == nil {
		t.Skip("FOG_TEST_DATABASE_URL not set")
	}
	ctx := log.Logger.WithContext(context.Background())
	ctx, err := ConnCtx(ctx, testPool)
	require.NoError(t, err)
	t.Cleanup(func() { DB(ctx).Close(ctx) })
	return ctx
}

func newUser(t *testing.T, ctx context.Context) *models.User {
	t.Helper()
	u := &models.User{
		FirstName:   "Test",
		LastName:    "User",
		Email:       ksuid.New().String() + "@example.com",
		AccessToken: ksuid.New().String(),
	}
	require.NoError(t, DB(ctx).CreateUser(ctx, u))
	t.Cleanup(func() { _ = DB(ctx).DeleteUser(ctx, u.ID) })
	return u
}

func TestCreateUser(t *testing.T) {
	ctx := newDb(t)
	u := newUser(t, ctx)
	assert.NotZero(t, u.ID)

	// same email again
	err := DB(ctx).CreateUser(ctx, &models.User{Email: u.Email})
	assert.ErrorIs(t, err, dberror.ErrAlreadyExists)

	got, err := DB(ctx).GetUserByAccessToken(ctx, u.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, u.Email, got.Email)

	_, err = DB(ctx).GetUser(ctx, -1)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestCatalogItem(t *testing.T) {
	ctx := newDb(t)
	u := newUser(t, ctx)

	registry := &models.Registry{URL: "registry.example.com", IsPublic: false, Secure: true, UserID: &u.ID}
	require.NoError(t, DB(ctx).CreateRegistry(ctx, registry))

	item := &models.CatalogItem{
		Name:         "Temperature Sensor",
		Category:     "SENSORS",
		DiskRequired: 10,
		RegistryID:   &registry.ID,
		UserID:       &u.ID,
		Images: []models.CatalogItemImage{
			{ContainerImage: "iofog/sensor", FogTypeID: 1},
			{ContainerImage: "iofog/sensor-arm", FogTypeID: 2},
		},
		InputType:  &models.CatalogItemInfoType{InfoType: "text", InfoFormat: "utf-8"},
		OutputType: &models.CatalogItemInfoType{InfoType: "temperature", InfoFormat: "celsius"},
	}
	require.NoError(t, DB(ctx).CreateCatalogItem(ctx, item))
	assert.NotZero(t, item.ID)

	got, err := DB(ctx).GetCatalogItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Images, got.Images)
	assert.Equal(t, "temperature", got.OutputType.InfoType)
	assert.Equal(t, "utf-8", got.InputType.InfoFormat)

	got.Images = got.Images[:1]
	got.OutputType = nil
	got.Description = "updated"
	require.NoError(t, DB(ctx).UpdateCatalogItem(ctx, got))
	got, err = DB(ctx).GetCatalogItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Len(t, got.Images, 1)
	assert.Nil(t, got.OutputType)
	assert.Equal(t, "updated", got.Description)

	// deleting the registry leaves the item with a null registry
	require.NoError(t, DB(ctx).DeleteRegistry(ctx, registry.ID))
	got, err = DB(ctx).GetCatalogItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.RegistryID)

	items, err := DB(ctx).ListCatalogItems(ctx, &u.ID)
	require.NoError(t, err)
	assert.Contains(t, itemIDs(items), item.ID)

	// deleting the owner cascades
	require.NoError(t, DB(ctx).DeleteUser(ctx, u.ID))
	_, err = DB(ctx).GetCatalogItem(ctx, item.ID)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func itemIDs(items []models.CatalogItem) []int64 {
	ids := make([]int64, 0, len(items))
	for _, i := range items {
		ids = append(ids, i.ID)
	}
	return ids
}

func TestFogAndChangeTracking(t *testing.T) {
	ctx := newDb(t)
	u := newUser(t, ctx)

	fog := &models.Fog{Name: "edge-1", FogTypeID: 1, UserID: &u.ID}
	fog.FogAgentConfig = models.FogAgentConfig{
		NetworkInterface: "eth0",
		DockerURL:        "unix:///var/run/docker.sock",
		DiskLimit:        50,
		DiskDirectory:    "/var/lib/iofog/",
		MemoryLimit:      4096,
		CPULimit:         80,
		LogLimit:         10,
		LogDirectory:     "/var/log/iofog/",
		LogFileCount:     10,
		StatusFrequency:  10,
		ChangeFrequency:  20,
	}
	require.NoError(t, DB(ctx).CreateFog(ctx, fog))
	assert.NotEqual(t, uuid.Nil, fog.UUID)

	ct, err := DB(ctx).GetChangeTracking(ctx, fog.UUID)
	require.NoError(t, err)
	assert.Zero(t, ct.Config)

	require.NoError(t, DB(ctx).TouchChangeTracking(ctx, []uuid.UUID{fog.UUID}, 1234, types.ChangeConfig, types.ChangeRouting))
	ct, err = DB(ctx).GetChangeTracking(ctx, fog.UUID)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), ct.Config)
	assert.Equal(t, int64(1234), ct.Routing)
	assert.Zero(t, ct.ContainerList)

	err = DB(ctx).TouchChangeTracking(ctx, []uuid.UUID{fog.UUID}, 1, types.ChangeCategory("uuid"))
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)

	key := &models.ProvisionKey{Key: "ab12cd34", ExpirationTime: 99, FogUUID: fog.UUID}
	require.NoError(t, DB(ctx).CreateProvisionKey(ctx, key))
	got, err := DB(ctx).GetProvisionKey(ctx, "ab12cd34")
	require.NoError(t, err)
	assert.Equal(t, fog.UUID, got.FogUUID)

	require.NoError(t, DB(ctx).ProvisionFog(ctx, fog.UUID, 2, "token", 5))
	f, err := DB(ctx).GetFog(ctx, fog.UUID)
	require.NoError(t, err)
	assert.Equal(t, "token", f.AccessToken)
	assert.Equal(t, 2, f.FogTypeID)

	require.NoError(t, DB(ctx).DeleteFog(ctx, fog.UUID))
	_, err = DB(ctx).GetProvisionKey(ctx, "ab12cd34")
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestTrackElementsAndRoutes(t *testing.T) {
	ctx := newDb(t)
	u := newUser(t, ctx)

	item := &models.CatalogItem{Name: "Relay", UserID: &u.ID}
	require.NoError(t, DB(ctx).CreateCatalogItem(ctx, item))
	fog := &models.Fog{Name: "edge-2", UserID: &u.ID}
	require.NoError(t, DB(ctx).CreateFog(ctx, fog))
	track := &models.Track{Name: "flow", UserID: &u.ID}
	require.NoError(t, DB(ctx).CreateTrack(ctx, track))

	pub := &models.ElementInstance{Name: "pub", Config: "{}", CatalogItemID: item.ID, TrackID: track.ID, FogUUID: &fog.UUID, UserID: &u.ID}
	dst := &models.ElementInstance{Name: "dst", Config: "{}", CatalogItemID: item.ID, TrackID: track.ID, FogUUID: &fog.UUID, UserID: &u.ID}
	require.NoError(t, DB(ctx).CreateElementInstance(ctx, pub))
	require.NoError(t, DB(ctx).CreateElementInstance(ctx, dst))

	tracks, err := DB(ctx).ListTracksForFog(ctx, fog.UUID)
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, track.ID, tracks[0].ID)

	port := &models.ElementInstancePort{ElementInstanceUUID: pub.UUID, PortInternal: 80, PortExternal: 8080}
	require.NoError(t, DB(ctx).CreatePort(ctx, port))
	assert.ErrorIs(t, DB(ctx).CreatePort(ctx, port), dberror.ErrAlreadyExists)
	require.NoError(t, DB(ctx).SetPortPublic(ctx, pub.UUID, 80, true))
	ports, err := DB(ctx).ListPorts(ctx, pub.UUID)
	require.NoError(t, err)
	require.Len(t, ports, 1)
	assert.True(t, ports[0].IsPublic)

	require.NoError(t, DB(ctx).CreateRouting(ctx, &models.Routing{PublisherUUID: pub.UUID, DestinationUUID: dst.UUID}))
	routes, err := DB(ctx).ListRoutingsByFog(ctx, fog.UUID)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, dst.UUID, routes[0].DestinationUUID)

	// deleting the fog detaches instances instead of removing them
	require.NoError(t, DB(ctx).DeleteFog(ctx, fog.UUID))
	e, err := DB(ctx).GetElementInstance(ctx, pub.UUID)
	require.NoError(t, err)
	assert.Nil(t, e.FogUUID)

	require.NoError(t, DB(ctx).DeleteTrack(ctx, track.ID))
	_, err = DB(ctx).GetElementInstance(ctx, pub.UUID)
	assert.ErrorIs(t, err, dberror.ErrNotFound)
}

func TestConfigStore(t *testing.T) {
	ctx := newDb(t)
	key := "test_" + ksuid.New().String()

	_, err := DB(ctx).GetConfigValue(ctx, key)
	assert.ErrorIs(t, err, dberror.ErrNotFound)

	require.NoError(t, DB(ctx).SetConfigValue(ctx, key, "1"))
	require.NoError(t, DB(ctx).SetConfigValue(ctx, key, "2"))
	v, err := DB(ctx).GetConfigValue(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	require.NoError(t, DB(ctx).DeleteConfigValue(ctx, key))
	assert.ErrorIs(t, DB(ctx).DeleteConfigValue(ctx, key), dberror.ErrNotFound)
}
