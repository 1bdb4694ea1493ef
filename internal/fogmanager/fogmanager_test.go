package fogmanager

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/mugiliam/fogcontroller/internal/common"
	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/mugiliam/fogcontroller/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type fogDB struct {
	db.DB_
	fogs       map[uuid.UUID]*models.Fog
	keys       map[string]*models.ProvisionKey
	tracking   map[uuid.UUID]*models.ChangeTracking
	elements   []models.ElementInstance
	ports      map[uuid.UUID][]models.ElementInstancePort
	items      map[int64]*models.CatalogItem
	registries map[int64]*models.Registry
	routings   []models.Routing
}

func newFogDB() *fogDB {
	return &fogDB{
		fogs:       map[uuid.UUID]*models.Fog{},
		keys:       map[string]*models.ProvisionKey{},
		tracking:   map[uuid.UUID]*models.ChangeTracking{},
		ports:      map[uuid.UUID][]models.ElementInstancePort{},
		items:      map[int64]*models.CatalogItem{},
		registries: map[int64]*models.Registry{1: {ID: 1, URL: "registry.hub.docker.com"}},
	}
}

func (d *fogDB) CreateFog(_ context.Context, f *models.Fog) error {
	if f.UUID == uuid.Nil {
		f.UUID = uuid.New()
	}
	c := *f
	d.fogs[f.UUID] = &c
	d.tracking[f.UUID] = &models.ChangeTracking{FogUUID: f.UUID}
	return nil
}

func (d *fogDB) GetFog(_ context.Context, id uuid.UUID) (*models.Fog, error) {
	f, ok := d.fogs[id]
	if !ok {
		return nil, dberror.ErrNotFound
	}
	c := *f
	return &c, nil
}

func (d *fogDB) UpdateFog(_ context.Context, f *models.Fog) error {
	cur, ok := d.fogs[f.UUID]
	if !ok {
		return dberror.ErrNotFound
	}
	c := *f
	c.AccessToken = cur.AccessToken
	c.FogStatus = cur.FogStatus
	d.fogs[f.UUID] = &c
	return nil
}

func (d *fogDB) UpdateFogStatus(_ context.Context, id uuid.UUID, s models.FogStatus, lastActive int64) error {
	d.fogs[id].FogStatus = s
	d.fogs[id].LastActive = lastActive
	return nil
}

func (d *fogDB) ProvisionFog(_ context.Context, id uuid.UUID, fogTypeID int, token string, lastActive int64) error {
	f := d.fogs[id]
	f.FogTypeID, f.AccessToken, f.LastActive = fogTypeID, token, lastActive
	return nil
}

func (d *fogDB) CreateProvisionKey(_ context.Context, k *models.ProvisionKey) error {
	for key, pk := range d.keys {
		if pk.FogUUID == k.FogUUID {
			delete(d.keys, key)
		}
	}
	c := *k
	d.keys[k.Key] = &c
	return nil
}

func (d *fogDB) GetProvisionKey(_ context.Context, key string) (*models.ProvisionKey, error) {
	pk, ok := d.keys[key]
	if !ok {
		return nil, dberror.ErrNotFound
	}
	return pk, nil
}

func (d *fogDB) DeleteProvisionKey(_ context.Context, key string) error {
	delete(d.keys, key)
	return nil
}

func (d *fogDB) GetChangeTracking(_ context.Context, id uuid.UUID) (*models.ChangeTracking, error) {
	ct, ok := d.tracking[id]
	if !ok {
		return nil, dberror.ErrNotFound
	}
	c := *ct
	return &c, nil
}

func (d *fogDB) TouchChangeTracking(_ context.Context, ids []uuid.UUID, at int64, categories ...types.ChangeCategory) error {
	for _, id := range ids {
		ct := d.tracking[id]
		for _, c := range categories {
			switch c {
			case types.ChangeConfig:
				ct.Config = at
			case types.ChangeContainerConfig:
				ct.ContainerConfig = at
			case types.ChangeContainerList:
				ct.ContainerList = at
			case types.ChangeRouting:
				ct.Routing = at
			case types.ChangeRegistries:
				ct.Registries = at
			}
		}
	}
	return nil
}

func (d *fogDB) ListElementInstancesByFog(_ context.Context, id uuid.UUID) ([]models.ElementInstance, error) {
	return lo.Filter(d.elements, func(e models.ElementInstance, _ int) bool {
		return e.FogUUID != nil && *e.FogUUID == id
	}), nil
}

func (d *fogDB) ListPorts(_ context.Context, id uuid.UUID) ([]models.ElementInstancePort, error) {
	return d.ports[id], nil
}

func (d *fogDB) GetCatalogItem(_ context.Context, id int64) (*models.CatalogItem, error) {
	item, ok := d.items[id]
	if !ok {
		return nil, dberror.ErrNotFound
	}
	return item, nil
}

func (d *fogDB) GetRegistry(_ context.Context, id int64) (*models.Registry, error) {
	r, ok := d.registries[id]
	if !ok {
		return nil, dberror.ErrNotFound
	}
	return r, nil
}

func (d *fogDB) ListRoutingsByFog(_ context.Context, _ uuid.UUID) ([]models.Routing, error) {
	return d.routings, nil
}

func newCtx(store *fogDB) (context.Context, *clock.Mock) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	return common.SetClockInContext(db.WithDB(context.Background(), store), mock), mock
}

func TestProvisioning(t *testing.T) {
	store := newFogDB()
	ctx, mock := newCtx(store)
	user := &models.User{ID: 3}

	fog, err := CreateFogOfType(ctx, user, types.FogTypeUnspecified)
	require.Nil(t, err)
	assert.Equal(t, defaultFogName, fog.Name)
	assert.Equal(t, 20, fog.ChangeFrequency)

	key, err := IssueProvisionKey(ctx, user, fog.UUID, 20*time.Minute)
	require.Nil(t, err)
	assert.Len(t, key.Key, 8)
	assert.Equal(t, mock.Now().Add(20*time.Minute).UnixMilli(), key.ExpirationTime)

	_, err = IssueProvisionKey(ctx, &models.User{ID: 4}, fog.UUID, time.Minute)
	assert.ErrorIs(t, err, ErrFogNotFound)

	_, err = Provision(ctx, key.Key, types.FogTypeUnspecified)
	assert.ErrorIs(t, err, ErrInvalidFogType)
	_, err = Provision(ctx, "nokey123", types.FogTypeARM)
	assert.ErrorIs(t, err, ErrInvalidProvisionKey)

	p, err := Provision(ctx, key.Key, types.FogTypeARM)
	require.Nil(t, err)
	assert.Equal(t, fog.UUID, p.ID)
	assert.NotEmpty(t, p.Token)
	assert.Empty(t, store.keys)
	assert.Equal(t, int(types.FogTypeARM), store.fogs[fog.UUID].FogTypeID)

	changes, err := Changes(ctx, store.fogs[fog.UUID], mock.Now().UnixMilli()-1)
	require.Nil(t, err)
	assert.True(t, changes.Config && changes.ContainerList && changes.Registries)

	authed, err := Authenticate(ctx, fog.UUID.String(), p.Token)
	require.Nil(t, err)
	assert.Equal(t, fog.UUID, authed.UUID)
	_, err = Authenticate(ctx, fog.UUID.String(), "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = Authenticate(ctx, "not-a-uuid", p.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProvisionRejectsExpiredKey(t *testing.T) {
	store := newFogDB()
	ctx, mock := newCtx(store)
	user := &models.User{ID: 1}

	fog, err := CreateFogOfType(ctx, user, types.FogTypeX86)
	require.Nil(t, err)
	key, err := IssueProvisionKey(ctx, user, fog.UUID, 20*time.Minute)
	require.Nil(t, err)

	mock.Add(21 * time.Minute)
	_, err = Provision(ctx, key.Key, types.FogTypeX86)
	assert.ErrorIs(t, err, ErrProvisionKeyExpired)
	assert.ErrorIs(t, err, ErrInvalidProvisionKey)
	assert.Empty(t, store.fogs[fog.UUID].AccessToken)
}

func TestUpdateFogMergesSuppliedFields(t *testing.T) {
	store := newFogDB()
	ctx, mock := newCtx(store)
	user := &models.User{ID: 1}

	fog, err := CreateFog(ctx, user, &FogSpec{Name: lo.ToPtr("edge-1"), Location: lo.ToPtr("Lab")})
	require.Nil(t, err)
	mock.Add(time.Second)

	_, err = UpdateFog(ctx, user, fog.UUID, &FogSpec{Latitude: lo.ToPtr(91.0)})
	assert.ErrorIs(t, err, ErrInvalidFog)

	updated, err := UpdateFog(ctx, user, fog.UUID, &FogSpec{
		Description:     lo.ToPtr("rooftop"),
		AgentConfigSpec: AgentConfigSpec{CPULimit: lo.ToPtr(50.0)},
	})
	require.Nil(t, err)
	assert.Equal(t, "edge-1", updated.Name)
	assert.Equal(t, "Lab", updated.Location)
	assert.Equal(t, "rooftop", updated.Description)
	assert.Equal(t, 50.0, updated.CPULimit)
	assert.Equal(t, 4096.0, updated.MemoryLimit)
	assert.Equal(t, mock.Now().UnixMilli(), store.tracking[fog.UUID].Config)
	assert.Zero(t, store.tracking[fog.UUID].ContainerList)
}

func TestStatusFromForm(t *testing.T) {
	store := newFogDB()
	ctx, mock := newCtx(store)
	fog, err := CreateFog(ctx, &models.User{ID: 1}, nil)
	require.Nil(t, err)

	form := url.Values{
		"daemonstatus":  {"RUNNING"},
		"memoryusage":   {"312.5"},
		"systemtime":    {"1714564800000"},
		"elementstatus": {`[{"id":"abc","status":"RUNNING"}]`},
	}
	spec, err := StatusSpecFromForm(form)
	require.Nil(t, err)
	require.Nil(t, UpdateStatus(ctx, fog, spec))

	stored := store.fogs[fog.UUID]
	assert.Equal(t, "RUNNING", stored.DaemonStatus)
	assert.Equal(t, 312.5, stored.MemoryUsage)
	assert.Equal(t, int64(1714564800000), stored.SystemTime)
	assert.Equal(t, "0.0.0.0", stored.IPAddress)
	assert.Equal(t, mock.Now().UnixMilli(), stored.LastActive)
	assert.Equal(t, "RUNNING", gjson.GetBytes(stored.StatusInfo.Bytes, "elementStatus.0.status").String())

	_, err = StatusSpecFromForm(url.Values{"memoryusage": {"lots"}})
	assert.ErrorIs(t, err, ErrInvalidFog)
}

func TestContainerListPicksImageForFogType(t *testing.T) {
	store := newFogDB()
	ctx, _ := newCtx(store)
	fog, err := CreateFogOfType(ctx, &models.User{ID: 1}, types.FogTypeARM)
	require.Nil(t, err)

	store.items[10] = &models.CatalogItem{
		ID:         10,
		RegistryID: lo.ToPtr(int64(1)),
		Images: []models.CatalogItemImage{
			{ContainerImage: "iofog/sensor", FogTypeID: 1},
			{ContainerImage: "iofog/sensor-arm", FogTypeID: 2},
		},
	}
	store.items[11] = &models.CatalogItem{
		ID:     11,
		Images: []models.CatalogItemImage{{ContainerImage: "iofog/x86-only", FogTypeID: 1}},
	}
	withImage := models.ElementInstance{UUID: uuid.New(), CatalogItemID: 10, FogUUID: &fog.UUID, Rebuild: true}
	withoutImage := models.ElementInstance{UUID: uuid.New(), CatalogItemID: 11, FogUUID: &fog.UUID}
	store.elements = []models.ElementInstance{withImage, withoutImage}
	store.ports[withImage.UUID] = []models.ElementInstancePort{{PortInternal: 80, PortExternal: 8080}}

	containers, err := ContainerList(ctx, fog)
	require.Nil(t, err)
	require.Len(t, containers, 1)
	assert.Equal(t, withImage.UUID, containers[0].ID)
	assert.Equal(t, "iofog/sensor-arm", containers[0].ImageID)
	assert.Equal(t, "registry.hub.docker.com", containers[0].RegistryURL)
	assert.True(t, containers[0].RebuildRequired)
	assert.Equal(t, []PortMapping{{Internal: 80, External: 8080}}, containers[0].PortMappings)
}

func TestRoutingGroupsByPublisher(t *testing.T) {
	store := newFogDB()
	ctx, _ := newCtx(store)
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	store.routings = []models.Routing{
		{PublisherUUID: b, DestinationUUID: a},
		{PublisherUUID: a, DestinationUUID: b},
		{PublisherUUID: b, DestinationUUID: c},
	}
	routes, err := Routing(ctx, &models.Fog{UUID: uuid.New()})
	require.Nil(t, err)
	assert.Equal(t, []Route{
		{Container: b, Receivers: []uuid.UUID{a, c}},
		{Container: a, Receivers: []uuid.UUID{b}},
	}, routes)
}
